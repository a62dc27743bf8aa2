// Package sortviz computes replayable traces of sorting algorithms for an
// animation layer to render. A sort call does not return the sorted items;
// it returns the ordered sequence of atomic steps (compares, swaps, slides,
// holds, joins, merge completions) the chosen algorithm performed while
// sorting a private copy of the input. Replaying those steps against a copy
// of the original array reproduces the sorted result exactly.
package sortviz

import (
	"go.uber.org/zap"
)

// Sort runs algorithm over a private copy of items, comparing by trait, and
// returns the full step trace. The caller's slice and items are never
// mutated. An empty input returns an EmptyInputError; an item missing the
// requested trait aborts at the first comparison that needs it with a
// MissingTraitError and no partial trace.
func Sort(items []TraitValuer, trait Trait, algorithm Algorithm) ([]Step, error) {
	return SortConfig(items, trait, algorithm, nil)
}

// SortConfig is Sort with a Config. config can be nil to use the defaults,
// or set only the non-default values desired.
func SortConfig(items []TraitValuer, trait Trait, algorithm Algorithm, config *Config) ([]Step, error) {
	cfg := mergeConfig(config)
	if len(items) == 0 {
		return nil, NewEmptyInputError()
	}

	work := make([]TraitValuer, len(items))
	copy(work, items)

	steps := make([]Step, 0, len(items))
	emit := func(s Step) error {
		steps = append(steps, s)
		return nil
	}
	if err := runAlgorithm(work, trait, algorithm, cfg, emit); err != nil {
		return nil, err
	}

	cfg.Logger.Debug("sort trace complete",
		zap.Stringer("algorithm", algorithm),
		zap.String("trait", string(trait)),
		zap.Int("items", len(items)),
		zap.Int("steps", len(steps)))
	return steps, nil
}

// RandomizePositions returns the step trace of three Fisher-Yates shuffle
// passes over items. It always succeeds: shuffling never compares traits,
// and inputs of one or zero items yield an empty trace. It is generic
// because any slice can be randomized, not only trait-carrying items.
func RandomizePositions[E any](items []E) []Step {
	return RandomizePositionsConfig(items, nil)
}

// RandomizePositionsConfig is RandomizePositions with a Config controlling
// the number of passes and the randomness source.
func RandomizePositionsConfig[E any](items []E, config *Config) []Step {
	cfg := mergeConfig(config)
	var steps []Step
	// the emit func never errors here, shuffling cannot fail
	_ = shuffleSteps(len(items), cfg.RandomizeRounds, cfg.newRand(), func(s Step) error {
		steps = append(steps, s)
		return nil
	})
	return steps
}

// runAlgorithm dispatches to the step generator for algorithm, feeding every
// step to emit as it is produced. work is mutated; it must be the engine's
// private copy.
func runAlgorithm(work []TraitValuer, trait Trait, algorithm Algorithm, cfg *Config, emit emitFunc) error {
	switch algorithm {
	case BubbleSort:
		return bubbleSortSteps(work, trait, emit)
	case InsertionSort:
		return insertionSortSteps(work, trait, emit)
	case SelectionSort:
		return selectionSortSteps(work, trait, emit)
	case MergeSort:
		return mergeSortSteps(work, trait, emit)
	case StupidSort:
		return shuffleSteps(len(work), cfg.StupidSortRounds, cfg.newRand(), emit)
	default:
		return NewUnknownAlgorithmError(algorithm.String())
	}
}

// traitValue reads the sort key of items[i], converting an absent trait into
// the engine's uniform checked failure.
func traitValue(items []TraitValuer, i int, trait Trait) (float64, error) {
	v, ok := items[i].TraitValue(trait)
	if !ok {
		return 0, NewMissingTraitError(trait, i)
	}
	return v, nil
}
