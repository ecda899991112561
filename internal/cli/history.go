package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mfeldt/pocketcube/internal/storage"
)

var (
	historyLimit int
	showLast     bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded solves",
	Long:  `Display a list of recorded solves, newest first.`,
	RunE:  runHistory,
}

var showCmd = &cobra.Command{
	Use:   "show [solve-id]",
	Short: "Show details of a recorded solve",
	Long: `Display a recorded solve: scramble, solution, strategy, and search cost.

Use --last to show the most recent solve.`,
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Maximum number of solves to display")

	rootCmd.AddCommand(showCmd)
	showCmd.Flags().BoolVar(&showLast, "last", false, "Show the most recent solve")
}

func runHistory(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	solves, err := storage.NewSolveRepository(db).List(historyLimit)
	if err != nil {
		return err
	}

	if len(solves) == 0 {
		fmt.Println("No solves recorded yet. Run 'pocketcube solve' first.")
		return nil
	}

	fmt.Println(titleStyle.Render("Solve history"))
	fmt.Println()
	for _, s := range solves {
		fmt.Printf("%s  %s  %-13s  %2d steps  %8d expanded  %6dms\n",
			s.SolveID[:8],
			s.CreatedAt.Local().Format(time.DateTime),
			s.Strategy,
			s.Steps,
			s.Expanded,
			s.DurationMs,
		)
	}
	fmt.Println()
	fmt.Println(helpStyle.Render("Use 'pocketcube show <id>' or 'pocketcube replay <id>' with a full or partial ID."))

	return nil
}

func runShow(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	solve, err := lookupSolve(db, args)
	if err != nil {
		return err
	}

	fmt.Println(titleStyle.Render("Solve " + solve.SolveID))
	fmt.Printf("Recorded: %s\n", solve.CreatedAt.Local().Format(time.DateTime))
	fmt.Printf("Strategy: %s\n", solve.Strategy)
	fmt.Printf("Scramble: %s\n", moveStyle.Render(solve.Scramble))
	fmt.Printf("Solution: %s\n", moveStyle.Render(solve.Solution))
	fmt.Printf("Steps: %d   Expanded: %d   Duration: %dms\n", solve.Steps, solve.Expanded, solve.DurationMs)

	return nil
}

// lookupSolve resolves a solve from the --last flag or an ID argument.
// A partial ID matches if exactly one recorded solve starts with it.
func lookupSolve(db *storage.DB, args []string) (*storage.Solve, error) {
	repo := storage.NewSolveRepository(db)

	if showLast || len(args) == 0 {
		solve, err := repo.Latest()
		if errors.Is(err, storage.ErrSolveNotFound) {
			return nil, fmt.Errorf("no solves recorded yet")
		}
		return solve, err
	}

	id := args[0]
	if solve, err := repo.Get(id); err == nil {
		return solve, nil
	}

	// Partial ID: scan recent solves for a unique prefix match
	solves, err := repo.List(1000)
	if err != nil {
		return nil, err
	}
	var match *storage.Solve
	for i := range solves {
		if len(solves[i].SolveID) >= len(id) && solves[i].SolveID[:len(id)] == id {
			if match != nil {
				return nil, fmt.Errorf("ambiguous solve ID %q", id)
			}
			match = &solves[i]
		}
	}
	if match == nil {
		return nil, fmt.Errorf("%w: %s", storage.ErrSolveNotFound, id)
	}
	return match, nil
}
