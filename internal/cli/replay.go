package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/mfeldt/pocketcube"
	"github.com/mfeldt/pocketcube/internal/storage"
)

var replayCmd = &cobra.Command{
	Use:   "replay [solve-id]",
	Short: "Step through a recorded solve",
	Long: `Step through a recorded solve move by move in an interactive view.

Without an ID the most recent solve is replayed. Arrow keys (or space/n and
b) step forward and backward through the solution.`,
	RunE: runReplayCmd,
}

func init() {
	rootCmd.AddCommand(replayCmd)
	replayCmd.Flags().BoolVar(&showLast, "last", false, "Replay the most recent solve")
}

func runReplayCmd(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	solve, err := lookupSolve(db, args)
	if err != nil {
		return err
	}

	model, err := newReplayModel(solve)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("replay error: %w", err)
	}

	return nil
}

// replayModel steps through the states of a recorded solve. Index 0 is the
// scrambled start; index i > 0 is the state after solution move i.
type replayModel struct {
	solve    *storage.Solve
	moves    []pocketcube.Move
	states   []*pocketcube.Cube
	index    int
	quitting bool
}

func newReplayModel(solve *storage.Solve) (*replayModel, error) {
	scrambleMoves, err := pocketcube.ParseMoves(solve.Scramble)
	if err != nil {
		return nil, fmt.Errorf("stored scramble is invalid: %w", err)
	}
	solutionMoves, err := pocketcube.ParseMoves(solve.Solution)
	if err != nil {
		return nil, fmt.Errorf("stored solution is invalid: %w", err)
	}

	cur := pocketcube.New()
	for _, m := range scrambleMoves {
		cur = cur.Transform(m)
	}

	states := []*pocketcube.Cube{cur}
	for _, m := range solutionMoves {
		cur = cur.Transform(m)
		states = append(states, cur)
	}

	return &replayModel{
		solve:  solve,
		moves:  solutionMoves,
		states: states,
	}, nil
}

func (m *replayModel) Init() tea.Cmd {
	return nil
}

func (m *replayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "right", " ", "n":
			if m.index < len(m.states)-1 {
				m.index++
			}

		case "left", "b":
			if m.index > 0 {
				m.index--
			}

		case "r":
			m.index = 0

		case "e", "end":
			m.index = len(m.states) - 1
		}
	}

	return m, nil
}

func (m *replayModel) View() string {
	if m.quitting {
		return "Replay ended.\n"
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Solve replay " + m.solve.SolveID[:8]))
	b.WriteString("\n\n")

	b.WriteString(statusStyle.Render(fmt.Sprintf("Step %d/%d", m.index, len(m.states)-1)))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Scramble: %s\n", moveStyle.Render(m.solve.Scramble)))

	// Solution moves with the current position highlighted
	b.WriteString("Solution: ")
	for i, move := range m.moves {
		token := move.Notation()
		if i == m.index-1 {
			token = titleStyle.Render(token)
		} else {
			token = moveStyle.Render(token)
		}
		b.WriteString(token)
		if i < len(m.moves)-1 {
			b.WriteString(" ")
		}
	}
	b.WriteString("\n\n")

	b.WriteString(renderCube(m.states[m.index]))
	b.WriteString("\n")

	if m.index == len(m.states)-1 && m.states[m.index].IsSolved() {
		b.WriteString(moveStyle.Render("SOLVED!"))
		b.WriteString("\n")
	} else if m.index > 0 {
		b.WriteString(fmt.Sprintf("Last move: %s\n", m.moves[m.index-1].Name()))
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("←/→=step  r=reset  e=end  q=quit"))
	b.WriteString("\n")

	return b.String()
}
