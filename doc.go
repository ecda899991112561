// Package pocketcube models a 2x2 pocket cube as a finite state space and
// finds shortest move sequences between configurations via graph search.
//
// # Quick Start
//
// Scramble a solved cube and solve it back:
//
//	scrambled, err := pocketcube.Scramble(pocketcube.New(), 6)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	sol, err := pocketcube.Solve(scrambled)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(sol.Notation()) // e.g. "T' R F"
//
// # Configurations
//
// A Cube is an immutable assignment of six colors to 24 facelets. Moves never
// mutate a Cube: Transform returns a new Cube that remembers its parent and
// the move that produced it, so any cube reached by a search carries its full
// ancestry back to the search root. Path extracts that ancestry as an ordered
// move list.
//
// # Search Strategies
//
// Three strategies explore the configuration graph:
//
//   - Bidirectional (default): two breadth-first frontiers advanced in
//     lockstep from start and goal. By far the best performer.
//   - BFS: single-frontier breadth-first search with no revisit detection.
//     Optimal, but cost grows exponentially with solution depth.
//   - Greedy: best-first search ordered by facelet mismatch count. The
//     heuristic correlates weakly with move distance, so this usually loses
//     to the breadth-first variants. Kept for comparison.
//
// BFS and Bidirectional return shortest paths by move count. If a search
// frontier empties without reaching the goal, Solve returns ErrNoSolution.
package pocketcube
