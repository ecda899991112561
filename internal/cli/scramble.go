package cli

import (
	"fmt"
	"math/rand/v2"

	"github.com/spf13/cobra"

	"github.com/mfeldt/pocketcube"
)

var (
	scrambleSteps int
	scrambleSeed  int64
)

var scrambleCmd = &cobra.Command{
	Use:   "scramble",
	Short: "Print a random scramble",
	Long: `Apply a number of random moves to a solved cube and print the resulting
scramble. Each move is guaranteed to reach a configuration the scramble has
not visited before. Use --seed for a reproducible scramble.`,
	RunE: runScramble,
}

func init() {
	rootCmd.AddCommand(scrambleCmd)
	scrambleCmd.Flags().IntVar(&scrambleSteps, "steps", 8, "Number of scramble moves")
	scrambleCmd.Flags().Int64Var(&scrambleSeed, "seed", 0, "Random seed (0 = random)")
}

func runScramble(cmd *cobra.Command, args []string) error {
	scrambled, err := makeScramble(scrambleSteps, scrambleSeed)
	if err != nil {
		return err
	}

	path := pocketcube.Path(scrambled)
	fmt.Println(titleStyle.Render("Scramble"))
	fmt.Println(moveStyle.Render(path.Notation()))
	fmt.Println()
	fmt.Print(renderCube(scrambled))

	return nil
}

// makeScramble scrambles a solved cube, optionally with a fixed seed.
func makeScramble(steps int, seed int64) (*pocketcube.Cube, error) {
	opts := []pocketcube.ScrambleOption{}
	if seed != 0 {
		rng := rand.New(rand.NewPCG(uint64(seed), uint64(seed)))
		opts = append(opts, pocketcube.WithRand(rng))
	}

	scrambled, err := pocketcube.Scramble(pocketcube.New(), steps, opts...)
	if err != nil {
		return nil, fmt.Errorf("scramble failed: %w", err)
	}
	return scrambled, nil
}
