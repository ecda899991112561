package pocketcube

import (
	"errors"
	"math/rand/v2"
	"testing"
)

// pathStates collects c and its ancestry up to the root, terminal first.
func pathStates(c *Cube) []*Cube {
	var states []*Cube
	for {
		states = append(states, c)
		parent, _, ok := c.Parent()
		if !ok {
			return states
		}
		c = parent
	}
}

func TestScrambleNoRevisit(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 1))
	for steps := 1; steps <= 5; steps++ {
		for trial := 0; trial < 50; trial++ {
			c, err := Scramble(New(), steps, WithRand(rng))
			if err != nil {
				t.Fatalf("steps=%d trial=%d: %v", steps, trial, err)
			}

			states := pathStates(c)
			if len(states) != steps+1 {
				t.Fatalf("steps=%d: path has %d states, want %d", steps, len(states), steps+1)
			}
			for i := 0; i < len(states); i++ {
				for j := i + 1; j < len(states); j++ {
					if states[i].Equal(states[j]) {
						t.Errorf("steps=%d: states %d and %d are equal", steps, i, j)
					}
				}
			}
		}
	}
}

func TestScrambleZeroSteps(t *testing.T) {
	c := New()
	got, err := Scramble(c, 0)
	if err != nil {
		t.Fatalf("Scramble(c, 0) failed: %v", err)
	}
	if got != c {
		t.Error("Scramble with zero steps should return the input cube")
	}
}

func TestScrambleDeterministicWithSeed(t *testing.T) {
	a, err := Scramble(New(), 10, WithRand(rand.New(rand.NewPCG(42, 42))))
	if err != nil {
		t.Fatal(err)
	}
	b, err := Scramble(New(), 10, WithRand(rand.New(rand.NewPCG(42, 42))))
	if err != nil {
		t.Fatal(err)
	}
	if !a.Equal(b) {
		t.Error("Scramble with the same seed should produce the same configuration")
	}
}

func TestScrambleStuck(t *testing.T) {
	// With zero retries no move can ever be placed
	_, err := Scramble(New(), 1, WithMaxRetries(0))
	if !errors.Is(err, ErrScrambleStuck) {
		t.Errorf("Scramble with no retry budget = %v, want ErrScrambleStuck", err)
	}
}
