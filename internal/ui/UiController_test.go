package ui

import (
	"io"
	"strings"
	"testing"

	"github.com/Mshel/dungeoneer/internal/game"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
)

func testOptions(dev bool) game.SceneOptions {
	opts := game.DefaultSceneOptions()
	opts.Dev = dev
	opts.Logger = log.New(io.Discard)
	return opts
}

func TestIntroSelection(t *testing.T) {
	m := NewIntroModel(80, 24, false)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil || cmd() != IntroSubmitMsg(0) {
		t.Fatal("enter did not submit the first button")
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRight})
	_, cmd = next.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil || cmd() != IntroSubmitMsg(1) {
		t.Fatal("right then enter did not submit quit")
	}
}

func TestIntroShowsDevBadge(t *testing.T) {
	if strings.Contains(NewIntroModel(120, 40, false).View(), "DEV BUILD") {
		t.Error("dev badge shown in production")
	}
	if !strings.Contains(NewIntroModel(120, 40, true).View(), "DEV BUILD") {
		t.Error("dev badge missing")
	}
}

func TestControllerStartsGame(t *testing.T) {
	m := NewControllerModel(testOptions(false), 100, 30)

	next, cmd := m.Update(IntroSubmitMsg(0))
	c := next.(ControllerModel)
	if c.CurrentScreen != GameScreen || c.GameModel == nil {
		t.Fatalf("screen = %v, game model = %v", c.CurrentScreen, c.GameModel)
	}
	if cmd == nil {
		t.Error("game did not schedule its first frame")
	}
	if !strings.Contains(c.View(), "Adventurer") {
		t.Error("game view missing the status panel")
	}
}

func TestControllerQuit(t *testing.T) {
	m := NewControllerModel(testOptions(false), 100, 30)

	_, cmd := m.Update(IntroSubmitMsg(1))
	if cmd == nil {
		t.Fatal("quit button returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit button did not quit")
	}

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("q returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q did not quit")
	}
}

func newTestGame(dev bool) GameViewModel {
	opts := testOptions(dev)
	scene := game.NewScene(opts)
	return NewGameModel(scene, opts.Bindings, 100, 30)
}

func TestGameLayerKeysOnlyInDev(t *testing.T) {
	prod := newTestGame(false)
	prod.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'2'}})
	if prod.scene.Layers.Active() != game.LayerAll {
		t.Error("layer key handled outside DEV")
	}

	dev := newTestGame(true)
	dev.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'2'}})
	if dev.scene.Layers.Active() != game.LayerWall {
		t.Errorf("active layer = %v, want Wall", dev.scene.Layers.Active())
	}
	dev.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'0'}})
	if dev.scene.Layers.Active() != game.LayerAll {
		t.Errorf("active layer = %v, want All", dev.scene.Layers.Active())
	}
}

func TestGameReferenceScreen(t *testing.T) {
	m := newTestGame(true)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	g := next.(GameViewModel)
	if g.gameState != StateReference || !strings.Contains(g.View(), "TILE REFERENCE") {
		t.Fatal("reference screen not shown")
	}

	next, _ = g.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if next.(GameViewModel).gameState != StatePlaying {
		t.Error("esc did not return to the game")
	}
}

func TestGameMouseIsRelativeToMap(t *testing.T) {
	m := newTestGame(true)

	m.Update(tea.MouseMsg{X: 3, Y: 2, Action: tea.MouseActionMotion})
	in := m.scene.Input.Sample(0)
	if !in.HasPointer || in.PointerX != 3-mapOriginX || in.PointerY != 2-mapOriginY {
		t.Errorf("pointer = %d,%d has=%v", in.PointerX, in.PointerY, in.HasPointer)
	}

	m.Update(tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionMotion})
	if m.scene.Input.Sample(0).HasPointer {
		t.Error("pointer on the border counted as inside the map")
	}
}

func TestFadeColorRange(t *testing.T) {
	if got := fadeColor(1); got != "255" {
		t.Errorf("full alpha = %v", got)
	}
	if got := fadeColor(0); got != "232" {
		t.Errorf("zero alpha = %v", got)
	}
}
