package sortviz

// insertionSortSteps simulates insertion sort over work. Each outer iteration
// lifts the item at i out with a Hold, slides larger neighbors one slot to the
// right until the insertion point is found, and places the held item back with
// an Unhold. The Unhold carries no index; the destination is implied by the
// Slide steps since the Hold.
func insertionSortSteps(work []TraitValuer, trait Trait, emit emitFunc) error {
	for i := 1; i < len(work); i++ {
		if err := emit(Hold{Index: i}); err != nil {
			return err
		}
		held := work[i]
		heldVal, err := traitValue(work, i, trait)
		if err != nil {
			return err
		}
		a := i
		for a > 0 {
			prev, err := traitValue(work, a-1, trait)
			if err != nil {
				return err
			}
			if heldVal >= prev {
				break
			}
			if err := emit(Slide{From: a - 1, To: a}); err != nil {
				return err
			}
			work[a] = work[a-1]
			a--
		}
		work[a] = held
		if err := emit(Unhold{}); err != nil {
			return err
		}
	}
	return nil
}
