package sortviz

import (
	"math/rand"
	"time"

	"go.uber.org/zap"
)

// Config holds configuration settings for sortviz
type Config struct {
	StupidSortRounds int         // number of full shuffle passes performed by the stupid sort
	RandomizeRounds  int         // number of full shuffle passes performed by RandomizePositions
	StreamBufferSize int         // channel buffer size for steps delivered by the streaming API
	Rand             *rand.Rand  // randomness source for shuffles; nil seeds a fresh one per call
	Logger           *zap.Logger // engine debug logging; nil means no logging
}

// DefaultConfig returns the default configuration options used if none provided.
// Rand is left nil on purpose: each sort call seeds its own source so that
// concurrent calls never share one. A caller that sets Rand (for determinism)
// must not share that Config across concurrent sort calls.
func DefaultConfig() *Config {
	return &Config{
		StupidSortRounds: 6,
		RandomizeRounds:  3,
		StreamBufferSize: 16,
		Rand:             nil,
		Logger:           zap.NewNop(),
	}
}

// mergeConfig takes a provided config and replaces any values not set with the defaults
func mergeConfig(c *Config) *Config {
	d := DefaultConfig()
	if c == nil {
		return d
	}
	out := *c
	if out.StupidSortRounds <= 0 {
		out.StupidSortRounds = d.StupidSortRounds
	}
	if out.RandomizeRounds <= 0 {
		out.RandomizeRounds = d.RandomizeRounds
	}
	if out.StreamBufferSize <= 0 {
		out.StreamBufferSize = d.StreamBufferSize
	}
	if out.Logger == nil {
		out.Logger = d.Logger
	}
	// Rand stays nil unless the caller set it; newRand supplies one per call.
	return &out
}

// newRand returns the configured randomness source, or a freshly seeded one
// scoped to a single sort call.
func (c *Config) newRand() *rand.Rand {
	if c.Rand != nil {
		return c.Rand
	}
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// SeededRand returns a randomness source for Config.Rand that makes shuffle
// traces reproducible across calls with the same seed.
func SeededRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
