package pocketcube

import "slices"

// Step is one move of a solution path together with the configuration it
// produced.
type Step struct {
	Move  Move
	State *Cube
}

// Solution is the move sequence recovered from a search result's ancestry.
type Solution struct {
	// Start is the configuration the search ran from (ancestry reset).
	Start *Cube
	// Terminal is the goal-equal configuration the search returned. Its
	// parent chain is the source of Steps.
	Terminal *Cube
	// Steps lists the moves from Start to Terminal in order.
	Steps []Step
	// Expanded counts the configurations the search expanded.
	Expanded int
	// Strategy is the search strategy that produced this solution.
	Strategy Strategy
}

// Path extracts the move sequence from a configuration's ancestry by walking
// parent links back to the root. No search is performed; any cube reached
// via Transform calls can be turned into a Solution this way.
func Path(terminal *Cube) *Solution {
	return newSolution(rootOf(terminal), terminal, 0, Bidirectional)
}

func rootOf(c *Cube) *Cube {
	for c.parent != nil {
		c = c.parent
	}
	return c
}

func newSolution(start, terminal *Cube, expanded int, strategy Strategy) *Solution {
	var steps []Step
	for c := terminal; c.parent != nil; c = c.parent {
		steps = append(steps, Step{Move: c.parentMove, State: c})
	}
	slices.Reverse(steps)

	return &Solution{
		Start:    start,
		Terminal: terminal,
		Steps:    steps,
		Expanded: expanded,
		Strategy: strategy,
	}
}

// Len returns the total step count.
func (s *Solution) Len() int {
	return len(s.Steps)
}

// Moves returns the moves of the path in order.
func (s *Solution) Moves() []Move {
	moves := make([]Move, len(s.Steps))
	for i, step := range s.Steps {
		moves[i] = step.Move
	}
	return moves
}

// MoveNames returns the display names of the path's moves in order,
// e.g. ["front", "right"].
func (s *Solution) MoveNames() []string {
	names := make([]string, len(s.Steps))
	for i, step := range s.Steps {
		names[i] = step.Move.Name()
	}
	return names
}

// Notation returns the path as a space-separated notation string.
func (s *Solution) Notation() string {
	return FormatMoves(s.Moves())
}

// Replay applies the solution's moves to from and returns the resulting
// configuration. Replaying from the solution's own start must land on a
// configuration equal to Terminal.
func (s *Solution) Replay(from *Cube) *Cube {
	cur := from
	for _, step := range s.Steps {
		cur = cur.Transform(step.Move)
	}
	return cur
}
