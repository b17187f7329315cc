package ui

import (
	"strconv"
	"strings"

	"github.com/Mshel/dungeoneer/internal/game"
	"github.com/charmbracelet/lipgloss"
)

// ReferenceState renders the tile reference sheet of the dev build.
type ReferenceState struct {
	ScreenWidth  int
	ScreenHeight int
}

var (
	referenceHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("15")).
				Background(lipgloss.Color("236")).
				Padding(0, 1).
				Align(lipgloss.Center)

	referenceRowStyle = lipgloss.NewStyle().
				Padding(0, 1)

	referenceBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.NormalBorder(), false, false, true, false).
				BorderForeground(lipgloss.Color("8"))
)

// RenderReferenceScreen draws every tile index with its glyph.
func (r ReferenceState) RenderReferenceScreen() string {
	var tableContent strings.Builder

	indexWidth := 7
	glyphWidth := 7
	nameWidth := 18

	// --- Header ---
	header := lipgloss.JoinHorizontal(lipgloss.Top,
		referenceHeaderStyle.Width(indexWidth).Render("Index"),
		referenceHeaderStyle.Width(glyphWidth).Render("Tile"),
		referenceHeaderStyle.Width(nameWidth).Render("Name"),
	)
	tableContent.WriteString(header + "\n")

	// --- Rows ---
	for _, def := range game.TileCatalog() {
		glyphStyle := referenceRowStyle.
			Background(lipgloss.Color("233")).
			Foreground(lipgloss.Color(def.Color))

		row := lipgloss.JoinHorizontal(lipgloss.Top,
			referenceRowStyle.Width(indexWidth).Render(strconv.Itoa(def.Index)),
			glyphStyle.Width(glyphWidth).Render(strings.Repeat(def.Glyph, 2)),
			referenceRowStyle.Width(nameWidth).Render(def.Name),
		)

		tableContent.WriteString(referenceBorderStyle.Render(row) + "\n")
	}

	// --- Title & Instructions ---
	title := lipgloss.NewStyle().Bold(true).Padding(1, 0).Render("TILE REFERENCE")
	instruction := lipgloss.NewStyle().Faint(true).Margin(1, 0).Render("Press ESC, ENTER or R to return to the dungeon.")

	finalContent := lipgloss.JoinVertical(lipgloss.Center,
		title,
		tableContent.String(),
		instruction,
	)

	return lipgloss.Place(r.ScreenWidth, r.ScreenHeight,
		lipgloss.Center, lipgloss.Center,
		lipgloss.NewStyle().Border(lipgloss.ThickBorder()).Render(finalContent),
	)
}
