package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mfeldt/pocketcube"
	"github.com/mfeldt/pocketcube/internal/storage"
)

var (
	solveScramble string
	solveSteps    int
	solveSeed     int64
	solveStrategy string
	solveNoStore  bool
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Scramble a cube and search for a solution",
	Long: `Scramble a cube and search for a shortest move sequence back to solved.

The scramble is either random (--steps, optionally --seed) or given
explicitly in move notation (--scramble "F R T'"). Strategies:

  bidirectional  two breadth-first frontiers meeting in the middle (default)
  bfs            single-frontier breadth-first search, no revisit detection
  greedy         best-first on facelet distance; usually slower, kept for
                 comparison

Solved cubes are stored in the history database unless --no-store is set.`,
	RunE: runSolve,
}

func init() {
	rootCmd.AddCommand(solveCmd)
	solveCmd.Flags().StringVar(&solveScramble, "scramble", "", "Explicit scramble in move notation (e.g. \"F R T'\")")
	solveCmd.Flags().IntVar(&solveSteps, "steps", 8, "Number of random scramble moves")
	solveCmd.Flags().Int64Var(&solveSeed, "seed", 0, "Random seed for the scramble (0 = random)")
	solveCmd.Flags().StringVar(&solveStrategy, "strategy", "bidirectional", "Search strategy: bidirectional, bfs, greedy")
	solveCmd.Flags().BoolVar(&solveNoStore, "no-store", false, "Do not record the solve in the history database")
}

// dotTicker prints one progress dot per expanded configuration, 80 to a line.
type dotTicker struct {
	n int
}

func (d *dotTicker) tick(int) {
	d.n++
	if d.n%80 == 0 {
		fmt.Println(".")
	} else {
		fmt.Print(".")
	}
}

func (d *dotTicker) finish() {
	if d.n%80 != 0 {
		fmt.Println()
	}
}

func runSolve(cmd *cobra.Command, args []string) error {
	strategy, err := pocketcube.ParseStrategy(solveStrategy)
	if err != nil {
		return err
	}

	// Build the start configuration
	var scrambled *pocketcube.Cube
	if solveScramble != "" {
		moves, err := pocketcube.ParseMoves(solveScramble)
		if err != nil {
			return err
		}
		scrambled = pocketcube.New()
		for _, m := range moves {
			scrambled = scrambled.Transform(m)
		}
	} else {
		scrambled, err = makeScramble(solveSteps, solveSeed)
		if err != nil {
			return err
		}
	}

	scramblePath := pocketcube.Path(scrambled)
	fmt.Println(titleStyle.Render("Scramble"))
	fmt.Println(moveStyle.Render(scramblePath.Notation()))
	fmt.Print(renderCube(scrambled))
	fmt.Println()

	// Search
	fmt.Printf("Searching (%s)\n", strategy)
	ticker := &dotTicker{}
	started := time.Now()
	sol, err := pocketcube.Solve(scrambled,
		pocketcube.WithStrategy(strategy),
		pocketcube.WithProgress(ticker.tick),
	)
	ticker.finish()
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}
	elapsed := time.Since(started)

	// Replay the path before reporting it
	if !sol.Replay(sol.Start).Equal(sol.Terminal) {
		return fmt.Errorf("internal error: replayed path does not reach the goal")
	}

	fmt.Println()
	fmt.Println(titleStyle.Render("Solution"))
	fmt.Println(moveStyle.Render(sol.Notation()))
	fmt.Printf("%d steps, %d configurations expanded in %s\n", sol.Len(), sol.Expanded, elapsed.Round(time.Millisecond))

	if verbose {
		for i, step := range sol.Steps {
			fmt.Printf("\nMove %d: %s\n", i+1, step.Move.Name())
			fmt.Print(renderCube(step.State))
		}
	}

	if solveNoStore {
		return nil
	}

	// Record the solve
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	repo := storage.NewSolveRepository(db)
	id, err := repo.Create(storage.Solve{
		Strategy:   strategy.String(),
		Scramble:   scramblePath.Notation(),
		Solution:   sol.Notation(),
		Steps:      sol.Len(),
		Expanded:   sol.Expanded,
		DurationMs: elapsed.Milliseconds(),
	})
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(statusStyle.Render("Recorded solve " + id))
	return nil
}
