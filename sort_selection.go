package sortviz

// selectionSortSteps simulates selection sort over work. For each position x
// it scans the unsorted suffix for the minimum, emitting a small Compare per
// candidate against the slot being filled. Ties keep the earlier-found
// minimum. When the minimum is not already at x, a large Compare and a Swap
// move it into place.
func selectionSortSteps(work []TraitValuer, trait Trait, emit emitFunc) error {
	n := len(work)
	for x := 0; x < n-1; x++ {
		lowest := x
		lowestVal, err := traitValue(work, x, trait)
		if err != nil {
			return err
		}
		for y := x + 1; y < n; y++ {
			if err := emit(Compare{I: y, J: x, Intensity: IntensitySmall}); err != nil {
				return err
			}
			v, err := traitValue(work, y, trait)
			if err != nil {
				return err
			}
			if v < lowestVal {
				lowest = y
				lowestVal = v
			}
		}
		if lowest != x {
			if err := emit(Compare{I: x, J: lowest, Intensity: IntensityLarge}); err != nil {
				return err
			}
			work[x], work[lowest] = work[lowest], work[x]
			if err := emit(Swap{I: x, J: lowest}); err != nil {
				return err
			}
		}
	}
	return nil
}
