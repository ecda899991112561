package pocketcube

import (
	"fmt"
	"math/rand/v2"
)

// ScrambleOption configures Scramble behavior.
type ScrambleOption func(*scrambleConfig)

type scrambleConfig struct {
	rng        *rand.Rand
	maxRetries int
}

func defaultScrambleConfig() *scrambleConfig {
	return &scrambleConfig{
		rng:        nil, // package-level source
		maxRetries: 64,
	}
}

func (c *scrambleConfig) intN(n int) int {
	if c.rng != nil {
		return c.rng.IntN(n)
	}
	return rand.IntN(n)
}

// WithRand sets the random source used to pick moves.
// Pass a seeded source for reproducible scrambles.
func WithRand(rng *rand.Rand) ScrambleOption {
	return func(c *scrambleConfig) {
		c.rng = rng
	}
}

// WithMaxRetries sets how many rejected moves Scramble tolerates per step
// before giving up with ErrScrambleStuck. The default is 64.
func WithMaxRetries(n int) ScrambleOption {
	return func(c *scrambleConfig) {
		c.maxRetries = n
	}
}

// Scramble applies exactly steps uniformly random moves to c and returns the
// resulting configuration. A chosen move is rejected and redrawn if it lands
// on a configuration already produced during this call (the starting cube
// included), so the scramble path visits steps+1 distinct configurations.
//
// With six moves and at most a handful of visited neighbors the retry loop
// terminates almost immediately in practice, but it is capped per step
// rather than unbounded: if every draw keeps hitting visited configurations
// Scramble returns ErrScrambleStuck.
func Scramble(c *Cube, steps int, opts ...ScrambleOption) (*Cube, error) {
	cfg := defaultScrambleConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	seen := newCubeSet()
	seen.add(c)

	cur := c
	for n := 0; n < steps; n++ {
		placed := false
		for try := 0; try < cfg.maxRetries; try++ {
			next := cur.Transform(Move(cfg.intN(NumMoves)))
			if !seen.add(next) {
				continue
			}
			cur = next
			placed = true
			break
		}
		if !placed {
			return nil, fmt.Errorf("%w: step %d of %d", ErrScrambleStuck, n+1, steps)
		}
	}

	return cur, nil
}
