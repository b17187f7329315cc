package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/Mshel/dungeoneer/internal/game"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// --- Internal Game States for GameViewModel ---

type GameState int

const (
	StatePlaying GameState = iota
	StateReference
)

var (
	mapViewStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 0)

	statusPanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("8")).
				Padding(1, 2)

	voidStyle = lipgloss.NewStyle().Background(lipgloss.Color("233"))

	actorColor      = lipgloss.Color("220")
	actorLungeColor = lipgloss.Color("231")
	markerColor     = lipgloss.Color("238")
	capturedColor   = lipgloss.Color("52")
)

const (
	mapViewPercentage  = 0.70
	statusPanelPadding = 4
	// the map border occupies one cell on each side
	mapOriginX = 1
	mapOriginY = 1
)

// frameTickMsg is one beat of the frame scheduler.
type frameTickMsg time.Time

func frameTick() tea.Cmd {
	return tea.Tick(game.FrameDuration, func(t time.Time) tea.Msg {
		return frameTickMsg(t)
	})
}

// --- GameViewModel Definition ---

type GameViewModel struct {
	ScreenWidth  int
	ScreenHeight int

	scene     *game.Scene
	keys      game.Bindings
	help      help.Model
	gameState GameState
	reference ReferenceState
}

func NewGameModel(scene *game.Scene, keys game.Bindings, screenWidth int, screenHeight int) GameViewModel {
	m := GameViewModel{
		ScreenWidth:  screenWidth,
		ScreenHeight: screenHeight,
		scene:        scene,
		keys:         keys,
		help:         help.New(),
		gameState:    StatePlaying,
		reference: ReferenceState{
			ScreenWidth:  screenWidth,
			ScreenHeight: screenHeight,
		},
	}
	m.resize()
	return m
}

// --- Init/Update/View Methods ---

func (m GameViewModel) Init() tea.Cmd {
	return frameTick()
}

func (m GameViewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameTickMsg:
		frame := m.scene.NextFrame(time.Time(msg))
		m.scene.Update(frame)
		return m, frameTick()

	case tea.WindowSizeMsg:
		m.ScreenWidth = msg.Width
		m.ScreenHeight = msg.Height
		m.reference.ScreenWidth = msg.Width
		m.reference.ScreenHeight = msg.Height
		m.resize()
		return m, nil

	case tea.KeyMsg:
		if m.gameState == StateReference {
			switch msg.String() {
			case "esc", "enter", "r":
				m.gameState = StatePlaying
			}
			return m, nil
		}

		if m.scene.Dev {
			switch {
			case key.Matches(msg, m.keys.Reference):
				m.gameState = StateReference
				return m, nil
			case key.Matches(msg, m.keys.ShowAll):
				m.scene.SelectLayer(game.LayerCommandShowAll)
				return m, nil
			case key.Matches(msg, m.keys.GroundOnly):
				m.scene.SelectLayer(game.LayerCommandGroundOnly)
				return m, nil
			case key.Matches(msg, m.keys.WallOnly):
				m.scene.SelectLayer(game.LayerCommandWallOnly)
				return m, nil
			}
		}

		m.scene.Input.HandleKey(msg, m.scene.Elapsed(time.Now()))
		return m, nil

	case tea.MouseMsg:
		cam := m.scene.Camera
		msg.X -= mapOriginX
		msg.Y -= mapOriginY
		if msg.X < 0 || msg.Y < 0 || msg.X >= cam.Cols || msg.Y >= cam.Rows {
			m.scene.Input.LeavePointer()
			return m, nil
		}
		m.scene.Input.HandleMouse(msg)
		return m, nil
	}

	return m, nil
}

// resize fits the camera to the map panel.
func (m *GameViewModel) resize() {
	mapWidth, _ := m.panelWidths()
	m.scene.Camera.Resize(mapWidth, max(0, m.ScreenHeight-2))
	m.scene.Camera.Follow(m.scene.Actor.Position())
}

func (m GameViewModel) panelWidths() (int, int) {
	mapWidth := int(float64(m.ScreenWidth) * mapViewPercentage)
	statusPanelWidth := max(0, m.ScreenWidth-mapWidth-statusPanelPadding-2)
	return mapWidth, statusPanelWidth
}

func (m GameViewModel) View() string {
	if m.gameState == StateReference {
		return m.reference.RenderReferenceScreen()
	}

	mapWidth, statusPanelWidth := m.panelWidths()
	mapContent := m.renderMap()
	statusContent := m.renderStatusPanel(statusPanelWidth)

	return lipgloss.JoinHorizontal(lipgloss.Top,
		mapViewStyle.Width(mapWidth).Height(max(0, m.ScreenHeight-2)).Render(mapContent),
		statusPanelStyle.Width(statusPanelWidth).Height(max(0, m.ScreenHeight-4)).Render(statusContent),
	)
}

type cellKey struct{ col, row int }

func (m GameViewModel) renderMap() string {
	var sb strings.Builder

	scene := m.scene
	cam := scene.Camera
	sprite := scene.Sprite

	actorCol, actorRow, actorVisible := cam.WorldToScreen(scene.Actor.Position())

	trail := make(map[cellKey]game.Afterimage)
	trailAlpha := make(map[cellKey]float64)
	for _, a := range sprite.Afterimages() {
		col, row, ok := cam.WorldToScreen(a.Position)
		if !ok {
			continue
		}
		k := cellKey{col, row}
		if alpha := sprite.Alpha(a); alpha > trailAlpha[k] {
			trailAlpha[k] = alpha
			trail[k] = a
		}
	}

	var marker, captured *game.Rect
	if scene.Dev {
		if scene.Picker.HasMarker {
			marker = &game.Rect{X: scene.Picker.Marker.X, Y: scene.Picker.Marker.Y, W: game.TileSize, H: game.TileSize}
		}
		if _, ok := scene.Stamper.Captured(); ok {
			captured = &game.Rect{X: scene.Stamper.CapturedMarker.X, Y: scene.Stamper.CapturedMarker.Y, W: game.TileSize, H: game.TileSize}
		}
	}

	for row := 0; row < cam.Rows; row++ {
		for col := 0; col < cam.Cols; col++ {
			world, _ := cam.ScreenToWorld(col, row)
			glyph, style := m.tileCell(world)

			switch {
			case marker != nil && marker.Contains(world):
				style = style.Background(markerColor)
			case captured != nil && captured.Contains(world):
				style = style.Background(capturedColor)
			}

			k := cellKey{col, row}
			if actorVisible && col == actorCol && row == actorRow {
				glyph = string(sprite.Glyph())
				style = actorStyle(style, sprite.BlendMode())
			} else if a, ok := trail[k]; ok {
				glyph = string(a.Glyph)
				style = style.Foreground(fadeColor(trailAlpha[k]))
			}

			sb.WriteString(style.Render(glyph))
		}
		if row < cam.Rows-1 {
			sb.WriteString("\n")
		}
	}

	return sb.String()
}

// tileCell picks the topmost visible tile at a world point.
func (m GameViewModel) tileCell(world game.Vec2) (string, lipgloss.Style) {
	tileMap := m.scene.Map
	c := game.WorldToTile(world)

	glyph, style := " ", voidStyle
	for _, layer := range tileMap.Layers {
		t, ok := tileMap.TileAt(layer.Name, c.X, c.Y)
		if !ok {
			continue
		}
		def, ok := game.LookupTile(t.Index)
		if !ok {
			continue
		}
		glyph = def.Glyph
		style = voidStyle.Foreground(lipgloss.Color(def.Color)).Faint(layer.Alpha < 1)
	}
	return glyph, style
}

func actorStyle(base lipgloss.Style, blend game.BlendMode) lipgloss.Style {
	if blend == game.BlendAdd {
		return base.Foreground(actorLungeColor).Bold(true).Faint(false)
	}
	return base.Foreground(actorColor).Bold(false).Faint(false)
}

// fadeColor maps trail alpha onto the 256-colour grey ramp.
func fadeColor(alpha float64) lipgloss.Color {
	shade := 232 + int(alpha*23/0.7+0.5)
	shade = max(232, min(255, shade))
	return lipgloss.Color(fmt.Sprintf("%d", shade))
}

// renderStatusPanel draws the actor and editor state plus the key help.
func (m GameViewModel) renderStatusPanel(width int) string {
	var statusContent strings.Builder
	scene := m.scene
	bold := lipgloss.NewStyle().Bold(true)

	statusContent.WriteString(bold.Render("--- Adventurer ---") + "\n")
	pos := scene.Actor.Position()
	tile := game.WorldToTile(pos)
	statusContent.WriteString(fmt.Sprintf("Position: %.0f, %.0f (tile %d, %d)\n", pos.X, pos.Y, tile.X, tile.Y))
	statusContent.WriteString(fmt.Sprintf("Facing: %s\n", scene.Actor.Facing))
	statusContent.WriteString(fmt.Sprintf("Speed: %.0f px/s\n", scene.Body.Velocity().Len()))
	statusContent.WriteString(fmt.Sprintf("State: %s\n", scene.VisualState()))
	if !scene.Actor.CanAttack(scene.Now()) {
		statusContent.WriteString(lipgloss.NewStyle().Faint(true).Render("Lunge cooling down") + "\n")
	}

	if scene.Dev {
		statusContent.WriteString("\n" + bold.Render("--- Tile Editor ---") + "\n")
		statusContent.WriteString(fmt.Sprintf("Layer: %s\n", scene.Layers.Active()))
		if t, ok := scene.Picker.Current(); ok {
			statusContent.WriteString(fmt.Sprintf("Pointer: %d, %d %s\n", t.X, t.Y, describeTile(t.Index)))
		} else {
			statusContent.WriteString("Pointer: -\n")
		}
		if c, ok := scene.Stamper.Captured(); ok {
			statusContent.WriteString(fmt.Sprintf("Captured: %s from %d, %d\n", describeTile(c.Index), c.X, c.Y))
		} else {
			statusContent.WriteString("Captured: none\n")
		}
		statusContent.WriteString(fmt.Sprintf("Stamper: %s\n", scene.Stamper.State()))
	}

	statusContent.WriteString("\n" + bold.Render("--- Controls ---") + "\n")
	m.help.Width = width
	if scene.Dev {
		statusContent.WriteString(m.help.FullHelpView(m.keys.FullHelp()))
	} else {
		statusContent.WriteString(m.help.ShortHelpView(m.keys.ShortHelp()))
	}
	statusContent.WriteString("\n\n" + lipgloss.NewStyle().Faint(true).Render(fmt.Sprintf("session %s", shortID(scene.ID.String()))))

	return statusContent.String()
}

func describeTile(index int) string {
	def, ok := game.LookupTile(index)
	if !ok {
		return "(empty)"
	}
	return fmt.Sprintf("#%d %s", def.Index, def.Name)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
