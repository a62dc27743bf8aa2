package sortviz

// bubbleSortSteps simulates adjacent-pair bubble sort over work, emitting one
// small Compare per inspected pair and a large Compare plus a Swap for every
// pair that was out of order. After each pass the unsorted bound shrinks to
// the lower position of the pass's last swap, so a pass with no swaps ends
// the sort.
func bubbleSortSteps(work []TraitValuer, trait Trait, emit emitFunc) error {
	limit := len(work) - 1
	for limit > 0 {
		last := 0
		for i := 1; i <= limit; i++ {
			if err := emit(Compare{I: i, J: i - 1, Intensity: IntensitySmall}); err != nil {
				return err
			}
			cur, err := traitValue(work, i, trait)
			if err != nil {
				return err
			}
			prev, err := traitValue(work, i-1, trait)
			if err != nil {
				return err
			}
			if cur < prev {
				if err := emit(Compare{I: i, J: i - 1, Intensity: IntensityLarge}); err != nil {
					return err
				}
				work[i], work[i-1] = work[i-1], work[i]
				if err := emit(Swap{I: i, J: i - 1}); err != nil {
					return err
				}
				last = i - 1
			}
		}
		limit = last
	}
	return nil
}
