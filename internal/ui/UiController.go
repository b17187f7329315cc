package ui

import (
	"time"

	"github.com/Mshel/dungeoneer/internal/game"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type Screen int

const (
	IntroScreen Screen = iota
	GameScreen
)

// Messages for state transitions
type IntroSubmitMsg int // 0 for Enter the Dungeon, 1 for Quit

type ControllerModel struct {
	CurrentScreen Screen
	SceneOptions  game.SceneOptions

	IntroModel tea.Model
	GameModel  tea.Model

	ScreenWidth  int
	ScreenHeight int
}

func NewControllerModel(opts game.SceneOptions, screenWidth int, screenHeight int) ControllerModel {
	return ControllerModel{
		CurrentScreen: IntroScreen,
		SceneOptions:  opts,

		IntroModel: NewIntroModel(screenWidth, screenHeight, opts.Dev),

		ScreenWidth:  screenWidth,
		ScreenHeight: screenHeight,
	}
}

func (m ControllerModel) Init() tea.Cmd {
	return m.IntroModel.Init()
}

func (m ControllerModel) View() string {
	switch m.CurrentScreen {
	case IntroScreen:
		return m.IntroModel.View()
	case GameScreen:
		if m.GameModel != nil {
			return m.GameModel.View()
		}
		return "Game Loading..."
	default:
		return "Unknown Screen"
	}
}

func (m ControllerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	// --- 1. Global Key Check (Check before the main switch) ---
	if msg, ok := msg.(tea.KeyMsg); ok {
		if key.Matches(msg, m.SceneOptions.Bindings.Quit) || msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	// --- 2. State Transition Message Handling ---
	switch msg := msg.(type) {
	case IntroSubmitMsg:
		if msg == 0 {
			m.CurrentScreen = GameScreen
			m.GameModel = m.startGame()
			return m, m.GameModel.Init()
		}
		return m, tea.Quit

	case tea.WindowSizeMsg:
		m.ScreenWidth = msg.Width
		m.ScreenHeight = msg.Height
		m.IntroModel, cmd = m.IntroModel.Update(msg)
		cmds = append(cmds, cmd)
		if m.GameModel != nil {
			m.GameModel, cmd = m.GameModel.Update(msg)
			cmds = append(cmds, cmd)
		}

	default:
		// --- 3. Message Delegation (Pass to the active model for all other messages) ---
		switch m.CurrentScreen {
		case IntroScreen:
			m.IntroModel, cmd = m.IntroModel.Update(msg)
			cmds = append(cmds, cmd)
		case GameScreen:
			if m.GameModel != nil {
				m.GameModel, cmd = m.GameModel.Update(msg)
				cmds = append(cmds, cmd)
			}
		}
	}

	return m, tea.Batch(cmds...)
}

// startGame builds a fresh scene for this session.
func (m ControllerModel) startGame() tea.Model {
	scene := game.NewScene(m.SceneOptions)
	scene.Start(time.Now())
	return NewGameModel(scene, m.SceneOptions.Bindings, m.ScreenWidth, m.ScreenHeight)
}
