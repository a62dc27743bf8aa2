package sortviz

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// StreamSort is Sort with channel delivery: steps are sent on the returned
// step channel as the algorithm produces them, and at most one error is sent
// on the error channel. Both channels are closed when the worker exits.
// Canceling ctx aborts the sort and surfaces ctx.Err().
//
// Unlike the buffered Sort, a failing stream delivers a prefix of steps
// before the error; a consumer that receives an error must discard the steps
// it already received. config can be nil for the defaults.
func StreamSort(ctx context.Context, items []TraitValuer, trait Trait, algorithm Algorithm, config *Config) (<-chan Step, <-chan error) {
	cfg := mergeConfig(config)
	return stream(ctx, cfg, func(emit emitFunc) error {
		if len(items) == 0 {
			return NewEmptyInputError()
		}
		work := make([]TraitValuer, len(items))
		copy(work, items)
		return runAlgorithm(work, trait, algorithm, cfg, emit)
	})
}

// StreamRandomize is RandomizePositions with channel delivery. It never
// fails on its own; the only error it can surface is ctx.Err().
func StreamRandomize[E any](ctx context.Context, items []E, config *Config) (<-chan Step, <-chan error) {
	cfg := mergeConfig(config)
	return stream(ctx, cfg, func(emit emitFunc) error {
		return shuffleSteps(len(items), cfg.RandomizeRounds, cfg.newRand(), emit)
	})
}

// stream runs a step generator on a worker goroutine, bridging its emit
// callback onto a buffered channel. Sends race against ctx so a canceled
// consumer never wedges the worker.
func stream(ctx context.Context, cfg *Config, run func(emitFunc) error) (<-chan Step, <-chan error) {
	stepChan := make(chan Step, cfg.StreamBufferSize)
	errChan := make(chan error, 1)

	var group errgroup.Group
	group.Go(func() error {
		return run(func(s Step) error {
			select {
			case stepChan <- s:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		})
	})
	go func() {
		if err := group.Wait(); err != nil {
			errChan <- err
		}
		close(stepChan)
		close(errChan)
	}()

	return stepChan, errChan
}
