package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// IntroModel holds the state for the main menu.
type IntroModel struct {
	selected int // 0: Enter the dungeon, 1: Quit
	dev      bool
	width    int
	height   int
}

func NewIntroModel(w, h int, dev bool) IntroModel {
	return IntroModel{selected: 0, dev: dev, width: w, height: h}
}

func (m IntroModel) Init() tea.Cmd { return nil }

func (m IntroModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tea.KeyMsg:
		switch msg.String() {
		case "left", "h", "a", "right", "l", "d", "tab":
			// two buttons, any horizontal key toggles
			m.selected = 1 - m.selected
		case "enter", " ":
			return m, func() tea.Msg { return IntroSubmitMsg(m.selected) }
		}
	}
	return m, nil
}

var dungeonAscii = `
 ██████╗ ██╗   ██╗███╗   ██╗ ██████╗ ███████╗ ██████╗ ███╗   ██╗
 ██╔══██╗██║   ██║████╗  ██║██╔════╝ ██╔════╝██╔═══██╗████╗  ██║
 ██║  ██║██║   ██║██╔██╗ ██║██║  ███╗█████╗  ██║   ██║██╔██╗ ██║
 ██║  ██║██║   ██║██║╚██╗██║██║   ██║██╔══╝  ██║   ██║██║╚██╗██║
 ██████╔╝╚██████╔╝██║ ╚████║╚██████╔╝███████╗╚██████╔╝██║ ╚████║
 ╚═════╝  ╚═════╝ ╚═╝  ╚═══╝ ╚═════╝ ╚══════╝ ╚═════╝ ╚═╝  ╚═══╝
`

var (
	asciiStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("172"))

	devBadgeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("205")).
			Padding(0, 1)

	introButtonStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("0")).
				Padding(0, 3).
				Margin(1, 2).
				Border(lipgloss.RoundedBorder())

	introSelectedButtonStyle = introButtonStyle.
					Background(lipgloss.Color("172")).
					Foreground(lipgloss.Color("0"))
)

func (m IntroModel) View() string {
	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(asciiStyle.Render(dungeonAscii))
	sb.WriteString("\n")
	if m.dev {
		sb.WriteString(devBadgeStyle.Render("DEV BUILD: tile editor enabled, walls are not solid"))
		sb.WriteString("\n")
	}

	enter := introButtonStyle.Render("Enter the Dungeon")
	quit := introButtonStyle.Render("Quit")

	// Apply selected style based on m.selected
	if m.selected == 0 {
		enter = introSelectedButtonStyle.Render("Enter the Dungeon")
	} else {
		quit = introSelectedButtonStyle.Render("Quit")
	}

	buttons := lipgloss.JoinHorizontal(lipgloss.Center, enter, quit)

	content := lipgloss.JoinVertical(lipgloss.Center, sb.String(), buttons)

	// Center the entire view within the terminal
	return lipgloss.Place(m.width, m.height,
		lipgloss.Center, lipgloss.Center,
		content,
	)
}
