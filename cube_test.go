package pocketcube

import (
	"math/rand/v2"
	"testing"
)

func TestNewIsSolved(t *testing.T) {
	c := New()
	if !c.IsSolved() {
		t.Error("New cube should be solved")
	}
	for i, f := range c.Facelets() {
		if f != Color(i/4) {
			t.Errorf("facelet %d = %v, want %v", i, f, Color(i/4))
		}
	}
}

func TestSingleMoveBreaksSolved(t *testing.T) {
	c := New().Transform(Right)
	if c.IsSolved() {
		t.Error("Cube should not be solved after a right turn")
	}
}

func TestInverseIdentity_AllMoves(t *testing.T) {
	// m then NumMoves-1-m must reproduce the original exactly
	for m := Move(0); m < NumMoves; m++ {
		c := New()
		back := c.Transform(m).Transform(m.Inverse())
		if !back.Equal(c) {
			t.Errorf("%s then %s should be the identity", m.Name(), m.Inverse().Name())
			t.Log(back.String())
		}
	}
}

func TestInverseIdentity_ScrambledCubes(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 7))
	for trial := 0; trial < 20; trial++ {
		c, err := Scramble(New(), 8, WithRand(rng))
		if err != nil {
			t.Fatalf("scramble: %v", err)
		}
		for m := Move(0); m < NumMoves; m++ {
			back := c.Transform(m).Transform(m.Inverse())
			if !back.Equal(c) {
				t.Errorf("trial %d: %s then %s should be the identity", trial, m.Name(), m.Inverse().Name())
			}
		}
	}
}

func TestFourTurnsReturnToStart(t *testing.T) {
	for _, m := range []Move{Front, Right, Top} {
		c := New()
		cur := c
		for i := 0; i < 4; i++ {
			cur = cur.Transform(m)
		}
		if !cur.Equal(c) {
			t.Errorf("%s x 4 should return to solved", m.Name())
			t.Log(cur.String())
		}
	}
}

func TestPermutationInvariant(t *testing.T) {
	// Every reachable configuration has exactly 4 stickers of each color
	rng := rand.New(rand.NewPCG(11, 11))
	c, err := Scramble(New(), 12, WithRand(rng))
	if err != nil {
		t.Fatalf("scramble: %v", err)
	}

	for cur := c; cur != nil; {
		var counts [6]int
		for _, f := range cur.Facelets() {
			counts[f]++
		}
		for color, n := range counts {
			if n != 4 {
				t.Errorf("color %v appears %d times, want 4", Color(color), n)
			}
		}
		parent, _, ok := cur.Parent()
		if !ok {
			break
		}
		cur = parent
	}
}

func TestRootDiscardsAncestry(t *testing.T) {
	c := New().Transform(Front).Transform(Top)
	root := Root(c)

	if !root.Equal(c) {
		t.Error("Root should preserve the facelet array")
	}
	if _, _, ok := root.Parent(); ok {
		t.Error("Root should have no parent")
	}
	if _, _, ok := c.Parent(); !ok {
		t.Error("Original cube should keep its ancestry")
	}
}

func TestTransformRecordsProvenance(t *testing.T) {
	c := New()
	child := c.Transform(Top)

	parent, move, ok := child.Parent()
	if !ok {
		t.Fatal("Transformed cube should have a parent")
	}
	if parent != c {
		t.Error("Parent should be the source configuration")
	}
	if move != Top {
		t.Errorf("Parent move = %v, want %v", move, Top)
	}
}

func TestTransformInvalidMovePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Transform with an out-of-range move should panic")
		}
	}()
	New().Transform(Move(6))
}

func TestDistance(t *testing.T) {
	c := New()
	if d := c.Distance(c); d != 0 {
		t.Errorf("Distance(c, c) = %d, want 0", d)
	}

	moved := c.Transform(Front)
	d := c.Distance(moved)
	if d <= 0 || d > NumFacelets {
		t.Errorf("Distance after one move = %d, want in (0, %d]", d, NumFacelets)
	}
	if d2 := moved.Distance(c); d2 != d {
		t.Errorf("Distance should be symmetric: %d vs %d", d, d2)
	}
}

func TestEqualHashConsistency(t *testing.T) {
	// f f f f returns to solved through a different ancestry; equal
	// configurations must hash equal within a run
	a := New()
	b := New().Transform(Front).Transform(Front).Transform(Front).Transform(Front)

	if !a.Equal(b) {
		t.Fatal("front x 4 should return to solved")
	}
	if a.Hash() != b.Hash() {
		t.Error("Equal cubes should have equal hashes")
	}

	moved := a.Transform(Right)
	h1, h2 := moved.Hash(), moved.Hash()
	if h1 != h2 {
		t.Error("Hash should be deterministic within a run")
	}
	if moved.Hash() == a.Hash() {
		// Not strictly impossible, but with random 64-bit coefficients a
		// collision here means the projection is broken.
		t.Log("warning: unequal cubes collided")
	}
}

func TestStringLayout(t *testing.T) {
	got := New().String()
	want := "(W,W)\n" +
		"(W,W)\n" +
		"  |\n" +
		"(G,G) _ (R,R) _ (B,B) _ (O,O)\n" +
		"(G,G)   (R,R)   (B,B)   (O,O)\n" +
		"  |\n" +
		"(Y,Y)\n" +
		"(Y,Y)\n"
	if got != want {
		t.Errorf("solved cube layout mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}
