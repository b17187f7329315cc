package game

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Bindings is the key map of a scene. Every direction carries two physical
// keys that are treated as the same logical control.
type Bindings struct {
	Left   key.Binding
	Right  key.Binding
	Up     key.Binding
	Down   key.Binding
	Attack key.Binding

	ShowAll    key.Binding
	GroundOnly key.Binding
	WallOnly   key.Binding
	Reference  key.Binding
	Quit       key.Binding
}

func DefaultBindings() Bindings {
	return NewBindings(
		[]string{"left", "a"},
		[]string{"right", "d"},
		[]string{"up", "w"},
		[]string{"down", "s"},
		[]string{" ", "space"},
	)
}

// NewBindings builds the key map from the configured movement and attack keys.
// Layer, reference and quit keys are fixed.
func NewBindings(left, right, up, down, attack []string) Bindings {
	return Bindings{
		Left:   key.NewBinding(key.WithKeys(left...), key.WithHelp(helpKeys(left), "left")),
		Right:  key.NewBinding(key.WithKeys(right...), key.WithHelp(helpKeys(right), "right")),
		Up:     key.NewBinding(key.WithKeys(up...), key.WithHelp(helpKeys(up), "up")),
		Down:   key.NewBinding(key.WithKeys(down...), key.WithHelp(helpKeys(down), "down")),
		Attack: key.NewBinding(key.WithKeys(attack...), key.WithHelp(helpKeys(attack), "lunge")),

		ShowAll:    key.NewBinding(key.WithKeys("0"), key.WithHelp("0", "all layers")),
		GroundOnly: key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "ground layer")),
		WallOnly:   key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "wall layer")),
		Reference:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "tile reference")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func helpKeys(keys []string) string {
	names := make([]string, 0, len(keys))
	for _, k := range keys {
		switch k {
		case " ", "space":
			k = "space"
		case "left":
			k = "←"
		case "right":
			k = "→"
		case "up":
			k = "↑"
		case "down":
			k = "↓"
		}
		if !contains(names, k) {
			names = append(names, k)
		}
	}
	return strings.Join(names, "/")
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// ShortHelp and FullHelp make Bindings a help.KeyMap.
func (b Bindings) ShortHelp() []key.Binding {
	return []key.Binding{b.Left, b.Right, b.Up, b.Down, b.Attack, b.Quit}
}

func (b Bindings) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{b.Left, b.Right, b.Up, b.Down, b.Attack},
		{b.ShowAll, b.GroundOnly, b.WallOnly, b.Reference, b.Quit},
	}
}

// Modifier names the mouse modifier that switches the stamper into capture mode.
type Modifier string

const (
	ModifierShift Modifier = "shift"
	ModifierAlt   Modifier = "alt"
	ModifierCtrl  Modifier = "ctrl"
)

// DefaultModifier is alt: most terminals keep shift+click for their own text
// selection and never report it.
const DefaultModifier = ModifierAlt

func (m Modifier) Valid() bool {
	return m == ModifierShift || m == ModifierAlt || m == ModifierCtrl
}

// InputState is the logical view of all controls for one frame.
type InputState struct {
	Left, Right, Up, Down bool
	Attack                bool

	PrimaryDown bool
	Modifier    bool

	// Pointer is the hovered terminal cell relative to the map viewport.
	PointerX, PointerY int
	HasPointer         bool
}

// InputSampler turns terminal key and mouse events into per-frame control
// state. Terminals only report key presses (and auto-repeat), so a key counts
// as held while its last press is younger than the hold window.
type InputSampler struct {
	bindings Bindings
	hold     time.Duration
	modifier Modifier

	lastPressed map[string]time.Duration

	primaryDown        bool
	modifierHeld       bool
	pointerX, pointerY int
	hasPointer         bool
}

func NewInputSampler(bindings Bindings, hold time.Duration, modifier Modifier) *InputSampler {
	if hold <= 0 {
		hold = DefaultKeyHold
	}
	if !modifier.Valid() {
		modifier = DefaultModifier
	}
	return &InputSampler{
		bindings:    bindings,
		hold:        hold,
		modifier:    modifier,
		lastPressed: make(map[string]time.Duration),
	}
}

func (s *InputSampler) HandleKey(msg tea.KeyMsg, now time.Duration) {
	s.lastPressed[msg.String()] = now
}

// HandleMouse records pointer position, primary button and modifier state.
// Coordinates must already be relative to the map viewport.
func (s *InputSampler) HandleMouse(msg tea.MouseMsg) {
	s.pointerX, s.pointerY = msg.X, msg.Y
	s.hasPointer = true

	switch s.modifier {
	case ModifierAlt:
		s.modifierHeld = msg.Alt
	case ModifierCtrl:
		s.modifierHeld = msg.Ctrl
	default:
		s.modifierHeld = msg.Shift
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			s.primaryDown = true
		}
	case tea.MouseActionRelease:
		// X10 mouse mode reports releases without a button
		if msg.Button == tea.MouseButtonLeft || msg.Button == tea.MouseButtonNone {
			s.primaryDown = false
		}
	}
}

// LeavePointer forgets the pointer, e.g. when it moves off the map viewport.
func (s *InputSampler) LeavePointer() {
	s.hasPointer = false
	s.primaryDown = false
}

func (s *InputSampler) Sample(now time.Duration) InputState {
	return InputState{
		Left:        s.isDown(s.bindings.Left, now),
		Right:       s.isDown(s.bindings.Right, now),
		Up:          s.isDown(s.bindings.Up, now),
		Down:        s.isDown(s.bindings.Down, now),
		Attack:      s.isDown(s.bindings.Attack, now),
		PrimaryDown: s.primaryDown,
		Modifier:    s.modifierHeld,
		PointerX:    s.pointerX,
		PointerY:    s.pointerY,
		HasPointer:  s.hasPointer,
	}
}

func (s *InputSampler) isDown(b key.Binding, now time.Duration) bool {
	for _, k := range b.Keys() {
		pressedAt, ok := s.lastPressed[k]
		if ok && now >= pressedAt && now-pressedAt <= s.hold {
			return true
		}
	}
	return false
}
