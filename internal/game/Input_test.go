package game

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyHeldWithinHoldWindow(t *testing.T) {
	s := NewInputSampler(DefaultBindings(), 200*time.Millisecond, ModifierShift)
	s.HandleKey(runeKey('a'), time.Second)

	tests := []struct {
		at   time.Duration
		left bool
	}{
		{time.Second, true},
		{time.Second + 150*time.Millisecond, true},
		{time.Second + 200*time.Millisecond, true},
		{time.Second + 201*time.Millisecond, false},
	}
	for _, tt := range tests {
		if got := s.Sample(tt.at).Left; got != tt.left {
			t.Errorf("at %v: left = %v, want %v", tt.at, got, tt.left)
		}
	}
}

func TestBothBindingsDriveTheSameDirection(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want func(InputState) bool
	}{
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, func(in InputState) bool { return in.Left }},
		{"a", runeKey('a'), func(in InputState) bool { return in.Left }},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, func(in InputState) bool { return in.Right }},
		{"d", runeKey('d'), func(in InputState) bool { return in.Right }},
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, func(in InputState) bool { return in.Up }},
		{"w", runeKey('w'), func(in InputState) bool { return in.Up }},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, func(in InputState) bool { return in.Down }},
		{"s", runeKey('s'), func(in InputState) bool { return in.Down }},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, func(in InputState) bool { return in.Attack }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewInputSampler(DefaultBindings(), DefaultKeyHold, ModifierShift)
			s.HandleKey(tt.msg, 0)
			if !tt.want(s.Sample(FrameDuration)) {
				t.Errorf("%q did not register", tt.msg.String())
			}
		})
	}
}

func TestUnboundKeyIsIgnored(t *testing.T) {
	s := NewInputSampler(DefaultBindings(), DefaultKeyHold, ModifierShift)
	s.HandleKey(runeKey('x'), 0)
	if in := s.Sample(0); in.Left || in.Right || in.Up || in.Down || in.Attack {
		t.Errorf("unbound key produced %+v", in)
	}
}

func TestCustomBindings(t *testing.T) {
	b := NewBindings([]string{"j"}, []string{"l"}, []string{"i"}, []string{"k"}, []string{"f"})
	s := NewInputSampler(b, DefaultKeyHold, ModifierShift)
	s.HandleKey(runeKey('a'), 0)
	s.HandleKey(runeKey('j'), 0)

	in := s.Sample(0)
	if !in.Left {
		t.Error("custom left key ignored")
	}
	s2 := NewInputSampler(b, DefaultKeyHold, ModifierShift)
	s2.HandleKey(runeKey('a'), 0)
	if s2.Sample(0).Left {
		t.Error("default left key still bound")
	}
}

func TestMouseButtonAndModifier(t *testing.T) {
	s := NewInputSampler(DefaultBindings(), DefaultKeyHold, ModifierShift)

	s.HandleMouse(tea.MouseMsg{X: 4, Y: 2, Shift: true, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	in := s.Sample(0)
	if !in.PrimaryDown || !in.Modifier || !in.HasPointer || in.PointerX != 4 || in.PointerY != 2 {
		t.Fatalf("after shift press: %+v", in)
	}

	// dragging without shift keeps the button down
	s.HandleMouse(tea.MouseMsg{X: 6, Y: 2, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	in = s.Sample(0)
	if !in.PrimaryDown || in.Modifier || in.PointerX != 6 {
		t.Fatalf("after drag: %+v", in)
	}

	s.HandleMouse(tea.MouseMsg{X: 6, Y: 2, Action: tea.MouseActionRelease, Button: tea.MouseButtonNone})
	if s.Sample(0).PrimaryDown {
		t.Error("button still down after release")
	}

	s.HandleMouse(tea.MouseMsg{X: 1, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonRight})
	if s.Sample(0).PrimaryDown {
		t.Error("right button counted as primary")
	}
}

func TestModifierSetting(t *testing.T) {
	s := NewInputSampler(DefaultBindings(), DefaultKeyHold, ModifierAlt)

	s.HandleMouse(tea.MouseMsg{Shift: true, Action: tea.MouseActionMotion})
	if s.Sample(0).Modifier {
		t.Error("shift counted while alt is the modifier")
	}
	s.HandleMouse(tea.MouseMsg{Alt: true, Action: tea.MouseActionMotion})
	if !s.Sample(0).Modifier {
		t.Error("alt not counted")
	}
}

func TestLeavePointer(t *testing.T) {
	s := NewInputSampler(DefaultBindings(), DefaultKeyHold, ModifierShift)
	s.HandleMouse(tea.MouseMsg{X: 3, Y: 3, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	s.LeavePointer()

	in := s.Sample(0)
	if in.HasPointer || in.PrimaryDown {
		t.Errorf("pointer still tracked: %+v", in)
	}
}

func TestSamplerDefaults(t *testing.T) {
	s := NewInputSampler(DefaultBindings(), 0, Modifier(""))

	// terminals swallow shift+click, so alt is the capture modifier
	s.HandleMouse(tea.MouseMsg{Shift: true, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if s.Sample(0).Modifier {
		t.Error("shift counted as the default modifier")
	}
	s.HandleMouse(tea.MouseMsg{Alt: true, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if !s.Sample(0).Modifier {
		t.Error("alt not counted as the default modifier")
	}
	if DefaultSceneOptions().Modifier != ModifierAlt {
		t.Errorf("scene modifier = %q, want alt", DefaultSceneOptions().Modifier)
	}

	// a held key must survive the auto-repeat delay before the first repeat
	s.HandleKey(tea.KeyMsg{Type: tea.KeyLeft}, 0)
	for _, delay := range []time.Duration{250 * time.Millisecond, 500 * time.Millisecond, 600 * time.Millisecond} {
		if !s.Sample(delay).Left {
			t.Errorf("key released before a %v repeat delay", delay)
		}
	}
	if s.Sample(time.Second).Left {
		t.Error("key still held a second after its last press")
	}
}
