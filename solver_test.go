package pocketcube

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolveSolvedCube_ZeroLengthPath(t *testing.T) {
	for _, strategy := range []Strategy{Bidirectional, BFS, Greedy} {
		t.Run(strategy.String(), func(t *testing.T) {
			sol, err := Solve(New(), WithStrategy(strategy))
			require.NoError(t, err)
			assert.Equal(t, 0, sol.Len())
			assert.True(t, sol.Terminal.IsSolved())
		})
	}
}

func TestSolveNilCube(t *testing.T) {
	_, err := Solve(nil)
	assert.ErrorIs(t, err, ErrNilCube)
}

func TestFrontRightScenario(t *testing.T) {
	// Scramble the solved cube with front then right. The recorded path
	// must read back in that order, and solving must undo it in two moves.
	scrambled := New().Transform(Front).Transform(Right)

	path := Path(scrambled)
	require.Equal(t, 2, path.Len())
	assert.Equal(t, []string{"front", "right"}, path.MoveNames())
	assert.True(t, path.Replay(path.Start).Equal(scrambled))

	sol, err := Solve(scrambled)
	require.NoError(t, err)
	assert.Equal(t, 2, sol.Len())
	assert.True(t, sol.Replay(Root(scrambled)).IsSolved())
}

func TestBFSOptimality(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 3))
	for k := 1; k <= 4; k++ {
		scrambled, err := Scramble(New(), k, WithRand(rng))
		require.NoError(t, err)

		sol, err := Solve(scrambled, WithStrategy(BFS))
		require.NoError(t, err)
		assert.LessOrEqual(t, sol.Len(), k, "BFS path for a %d-move scramble", k)
		assert.True(t, sol.Replay(Root(scrambled)).IsSolved())
	}
}

func TestBidirectionalOptimality(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 5))
	for k := 1; k <= 7; k++ {
		scrambled, err := Scramble(New(), k, WithRand(rng))
		require.NoError(t, err)

		sol, err := Solve(scrambled, WithStrategy(Bidirectional))
		require.NoError(t, err)
		assert.LessOrEqual(t, sol.Len(), k, "bidirectional path for a %d-move scramble", k)
		assert.True(t, sol.Replay(Root(scrambled)).IsSolved(),
			"replaying the path must reach the goal exactly")
	}
}

func TestGreedyFindsSolution(t *testing.T) {
	// The facelet-distance heuristic is weak, so the path may be longer
	// than the scramble. It still has to be a valid path to the goal.
	scrambled := New().Transform(Top).Transform(Right)

	sol, err := Solve(scrambled, WithStrategy(Greedy))
	require.NoError(t, err)
	assert.Greater(t, sol.Len(), 0)
	assert.True(t, sol.Replay(Root(scrambled)).IsSolved())
}

func TestSolveWithGoal(t *testing.T) {
	goal := New().Transform(Front)
	start := goal.Transform(Right).Transform(Top)

	sol, err := Solve(start, WithGoal(goal))
	require.NoError(t, err)
	assert.LessOrEqual(t, sol.Len(), 2)
	assert.True(t, sol.Replay(Root(start)).Equal(goal))
}

func TestSolveProgressCallback(t *testing.T) {
	scrambled := New().Transform(Front).Transform(Top)

	var last int
	_, err := Solve(scrambled, WithProgress(func(expanded int) {
		assert.Greater(t, expanded, last)
		last = expanded
	}))
	require.NoError(t, err)
	assert.Greater(t, last, 0, "progress callback should have fired")
}

func TestSolveDiscardsStartAncestry(t *testing.T) {
	scrambled := New().Transform(Front).Transform(Right).Transform(Top)

	sol, err := Solve(scrambled)
	require.NoError(t, err)

	if _, _, ok := sol.Start.Parent(); ok {
		t.Error("search root should have no ancestry")
	}
	assert.True(t, sol.Start.Equal(scrambled))
}

func TestParseStrategy(t *testing.T) {
	cases := map[string]Strategy{
		"bfs":           BFS,
		"bidirectional": Bidirectional,
		"bidi":          Bidirectional,
		"greedy":        Greedy,
		"Best-First":    Greedy,
	}
	for in, want := range cases {
		got, err := ParseStrategy(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseStrategy("dfs")
	assert.ErrorIs(t, err, ErrUnknownStrategy)
}

func TestStrategyNotationRoundTrip(t *testing.T) {
	for _, s := range []Strategy{Bidirectional, BFS, Greedy} {
		got, err := ParseStrategy(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}
}
