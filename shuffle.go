package sortviz

import "math/rand"

// shuffleSteps emits the swaps of rounds consecutive Fisher-Yates passes over
// an array of n positions. Each pass draws, for every index i, a uniform
// offset d in [0, n-i); d == 0 means the element stays put and no step is
// emitted, otherwise positions i and i+d swap. Shuffling never reads item
// values, so it cannot fail on a missing trait. Arrays of one or zero
// elements yield no steps.
func shuffleSteps(n, rounds int, rng *rand.Rand, emit emitFunc) error {
	if n < 2 {
		return nil
	}
	for r := 0; r < rounds; r++ {
		for i := 0; i < n-1; i++ {
			d := rng.Intn(n - i)
			if d == 0 {
				continue
			}
			if err := emit(Swap{I: i, J: i + d}); err != nil {
				return err
			}
		}
	}
	return nil
}
