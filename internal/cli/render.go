package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mfeldt/pocketcube"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	moveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true)
)

// stickerStyles maps each color to a styled two-character block.
var stickerStyles = map[pocketcube.Color]lipgloss.Style{
	pocketcube.Green:  lipgloss.NewStyle().Background(lipgloss.Color("28")).Foreground(lipgloss.Color("255")),
	pocketcube.Red:    lipgloss.NewStyle().Background(lipgloss.Color("160")).Foreground(lipgloss.Color("255")),
	pocketcube.Blue:   lipgloss.NewStyle().Background(lipgloss.Color("27")).Foreground(lipgloss.Color("255")),
	pocketcube.Orange: lipgloss.NewStyle().Background(lipgloss.Color("208")).Foreground(lipgloss.Color("232")),
	pocketcube.White:  lipgloss.NewStyle().Background(lipgloss.Color("255")).Foreground(lipgloss.Color("232")),
	pocketcube.Yellow: lipgloss.NewStyle().Background(lipgloss.Color("226")).Foreground(lipgloss.Color("232")),
}

func sticker(c pocketcube.Color) string {
	style, ok := stickerStyles[c]
	if !ok {
		return "??"
	}
	return style.Render(c.String() + " ")
}

// renderCube draws the unfolded cube layout with colored sticker blocks:
// top face above the front, bottom below it, and the front, right, back and
// left faces in a row. Facelet order follows the documented index layout.
func renderCube(c *pocketcube.Cube) string {
	f := c.Facelets()

	var b strings.Builder

	// top face, above the front column
	b.WriteString(sticker(f[16]) + sticker(f[17]) + "\n")
	b.WriteString(sticker(f[19]) + sticker(f[18]) + "\n")

	// front, right, back, left
	rows := [2][8]int{
		{0, 1, 4, 5, 8, 9, 12, 13},
		{3, 2, 7, 6, 11, 10, 15, 14},
	}
	for _, row := range rows {
		for i, idx := range row {
			if i > 0 && i%2 == 0 {
				b.WriteString("  ")
			}
			b.WriteString(sticker(f[idx]))
		}
		b.WriteString("\n")
	}

	// bottom face
	b.WriteString(sticker(f[20]) + sticker(f[21]) + "\n")
	b.WriteString(sticker(f[23]) + sticker(f[22]) + "\n")

	return b.String()
}
