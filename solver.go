package pocketcube

import (
	"container/heap"
	"fmt"
	"strings"
)

// Strategy selects how Solve explores the configuration graph.
type Strategy int

const (
	// Bidirectional advances two breadth-first frontiers in lockstep, one
	// from the start and one from the goal, and joins the paths where they
	// meet. This is the default and by far the best performer.
	Bidirectional Strategy = iota

	// BFS is single-frontier breadth-first search with no revisit
	// detection. It returns shortest paths but revisits configurations
	// freely, so its cost grows as 6^depth.
	BFS

	// Greedy is best-first search ordered by facelet distance to the goal,
	// with a visited set marked at enqueue time. The heuristic correlates
	// weakly with move distance, so Greedy usually expands more nodes than
	// the breadth-first variants and its paths are not minimal.
	Greedy
)

func (s Strategy) String() string {
	switch s {
	case Bidirectional:
		return "bidirectional"
	case BFS:
		return "bfs"
	case Greedy:
		return "greedy"
	default:
		return "?"
	}
}

// ParseStrategy parses a strategy name as used on the command line.
func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bidirectional", "bidi":
		return Bidirectional, nil
	case "bfs":
		return BFS, nil
	case "greedy", "best-first":
		return Greedy, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
	}
}

// Option configures Solve behavior.
type Option func(*solveConfig)

type solveConfig struct {
	goal     *Cube
	strategy Strategy
	progress func(expanded int)
}

func defaultSolveConfig() *solveConfig {
	return &solveConfig{
		goal:     nil, // solved state
		strategy: Bidirectional,
	}
}

// WithGoal sets the target configuration. The default goal is the solved
// cube. The goal's ancestry, if any, is ignored.
func WithGoal(goal *Cube) Option {
	return func(c *solveConfig) {
		c.goal = goal
	}
}

// WithStrategy selects the search strategy. The default is Bidirectional.
func WithStrategy(s Strategy) Option {
	return func(c *solveConfig) {
		c.strategy = s
	}
}

// WithProgress sets a callback invoked once per expanded configuration with
// the running expansion count. Used by the CLI for its progress dots.
func WithProgress(fn func(expanded int)) Option {
	return func(c *solveConfig) {
		c.progress = fn
	}
}

// Solve searches for a move sequence taking start to the goal configuration
// and returns it as a Solution. The search runs on a fresh copy of start, so
// any ancestry on the argument is discarded. If the frontier empties without
// reaching the goal, Solve returns ErrNoSolution.
func Solve(start *Cube, opts ...Option) (*Solution, error) {
	if start == nil {
		return nil, ErrNilCube
	}

	cfg := defaultSolveConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	goal := cfg.goal
	if goal == nil {
		goal = New()
	}

	root := Root(start)
	if root.Equal(goal) {
		return newSolution(root, root, 0, cfg.strategy), nil
	}

	var (
		terminal *Cube
		expanded int
		err      error
	)
	switch cfg.strategy {
	case Bidirectional:
		terminal, expanded, err = solveBidirectional(root, goal, cfg.progress)
	case BFS:
		terminal, expanded, err = solveBFS(root, goal, cfg.progress)
	case Greedy:
		terminal, expanded, err = solveGreedy(root, goal, cfg.progress)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownStrategy, int(cfg.strategy))
	}
	if err != nil {
		return nil, err
	}

	return newSolution(root, terminal, expanded, cfg.strategy), nil
}

// solveBFS is plain breadth-first search. Children are enqueued
// unconditionally, so states are revisited; the first goal hit is still at
// minimal depth because the frontier is explored level by level.
func solveBFS(start, goal *Cube, tick func(int)) (*Cube, int, error) {
	queue := []*Cube{start}
	expanded := 0

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		expanded++
		if tick != nil {
			tick(expanded)
		}

		for m := Move(0); m < NumMoves; m++ {
			child := cur.Transform(m)
			if child.Equal(goal) {
				return child, expanded, nil
			}
			queue = append(queue, child)
		}
	}

	return nil, expanded, ErrNoSolution
}

// solveBidirectional runs two breadth-first frontiers at once, one rooted at
// the start and one at the goal. Every configuration the goal side has ever
// produced sits in a lookup set keyed by configuration; each iteration the
// goal side expands one node first, then the start side expands one node and
// checks its children against that set. The strict ordering is what makes
// the first hit land on the minimal combined depth.
func solveBidirectional(start, goal *Cube, tick func(int)) (*Cube, int, error) {
	goalRoot := Root(goal)
	goalSeen := newCubeSet()
	goalSeen.add(goalRoot)

	startQueue := []*Cube{start}
	goalQueue := []*Cube{goalRoot}
	expanded := 0

	for len(startQueue) > 0 && len(goalQueue) > 0 {
		g := goalQueue[0]
		goalQueue = goalQueue[1:]
		for m := Move(0); m < NumMoves; m++ {
			child := g.Transform(m)
			goalSeen.add(child)
			goalQueue = append(goalQueue, child)
		}

		s := startQueue[0]
		startQueue = startQueue[1:]
		expanded += 2
		if tick != nil {
			tick(expanded)
		}

		for m := Move(0); m < NumMoves; m++ {
			child := s.Transform(m)
			if entry, ok := goalSeen.get(child); ok {
				return joinPaths(child, entry), expanded, nil
			}
			startQueue = append(startQueue, child)
		}
	}

	return nil, expanded, ErrNoSolution
}

// joinPaths extends the start-side meeting configuration to the true goal.
// entry is the matching cube from the goal-side set; its ancestry leads back
// to the goal, one recorded move per hop. Undoing those moves in order walks
// the meeting configuration the rest of the way, growing its ancestry into a
// full start-to-goal path.
func joinPaths(meeting, entry *Cube) *Cube {
	cur := meeting
	for entry.parent != nil {
		cur = cur.Transform(entry.parentMove.Inverse())
		entry = entry.parent
	}
	return cur
}

// solveGreedy is best-first search over a priority frontier ordered by
// facelet distance to the goal. Configurations are marked visited at enqueue
// time, the start included, and visited children are dropped.
func solveGreedy(start, goal *Cube, tick func(int)) (*Cube, int, error) {
	visited := newCubeSet()
	visited.add(start)

	frontier := &priorityFrontier{{cube: start, priority: start.Distance(goal)}}
	heap.Init(frontier)
	expanded := 0

	for frontier.Len() > 0 {
		cur := heap.Pop(frontier).(heapItem).cube
		expanded++
		if tick != nil {
			tick(expanded)
		}

		for m := Move(0); m < NumMoves; m++ {
			child := cur.Transform(m)
			if child.Equal(goal) {
				return child, expanded, nil
			}
			if !visited.add(child) {
				continue
			}
			heap.Push(frontier, heapItem{cube: child, priority: child.Distance(goal)})
		}
	}

	return nil, expanded, ErrNoSolution
}
