package sortviz

// mergeSortSteps simulates a recursive top-down merge sort over work. The
// step accumulator is threaded explicitly through the recursion via emit, so
// every call is independently reentrant; there is no shared trace state.
func mergeSortSteps(work []TraitValuer, trait Trait, emit emitFunc) error {
	return mergeSortRun(work, 0, trait, emit)
}

// mergeSortRun sorts run in place. run is a window into the full working
// array starting at absolute position offset; every emitted index is
// offset-corrected so steps always speak in original-array coordinates.
func mergeSortRun(run []TraitValuer, offset int, trait Trait, emit emitFunc) error {
	if len(run) < 2 {
		return nil
	}
	mid := len(run) / 2
	if err := mergeSortRun(run[:mid], offset, trait, emit); err != nil {
		return err
	}
	if err := mergeSortRun(run[mid:], offset+mid, trait, emit); err != nil {
		return err
	}
	return mergeRuns(run, mid, offset, trait, emit)
}

// mergeRuns interleaves the two sorted halves run[:mid] and run[mid:] through
// the joining area. Each element moves with one Join step from its current
// absolute position to the next free slot of the area. Equal values move the
// left element first, so the earlier-indexed half wins ties and the sort
// stays stable. A single MergeComplete closes the merge and collapses the
// area back into the array.
func mergeRuns(run []TraitValuer, mid, offset int, trait Trait, emit emitFunc) error {
	joined := make([]TraitValuer, 0, len(run))
	li, ri := 0, mid

	joinLeft := func() error {
		if err := emit(Join{From: offset + li, To: offset + len(joined)}); err != nil {
			return err
		}
		joined = append(joined, run[li])
		li++
		return nil
	}
	joinRight := func() error {
		if err := emit(Join{From: offset + ri, To: offset + len(joined)}); err != nil {
			return err
		}
		joined = append(joined, run[ri])
		ri++
		return nil
	}

	for li < mid && ri < len(run) {
		lv, ok := run[li].TraitValue(trait)
		if !ok {
			return NewMissingTraitError(trait, offset+li)
		}
		rv, ok := run[ri].TraitValue(trait)
		if !ok {
			return NewMissingTraitError(trait, offset+ri)
		}
		switch {
		case lv < rv:
			if err := joinLeft(); err != nil {
				return err
			}
		case lv > rv:
			if err := joinRight(); err != nil {
				return err
			}
		default:
			if err := joinLeft(); err != nil {
				return err
			}
			if err := joinRight(); err != nil {
				return err
			}
		}
	}
	for li < mid {
		if err := joinLeft(); err != nil {
			return err
		}
	}
	for ri < len(run) {
		if err := joinRight(); err != nil {
			return err
		}
	}

	copy(run, joined)
	return emit(MergeComplete{})
}
