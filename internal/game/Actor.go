package game

import "time"

type VisualState int

const (
	VisualIdle VisualState = iota
	VisualWalking
	VisualAttacking
)

func (v VisualState) String() string {
	switch v {
	case VisualWalking:
		return "walking"
	case VisualAttacking:
		return "attacking"
	default:
		return "idle"
	}
}

// Actor is the controllable character. Its position lives in the physics body
// and only changes when the body is integrated.
type Actor struct {
	Body   Body
	Facing Direction

	// Intent is the velocity resolved on the last processed frame.
	Intent Vec2

	AttackUntil       time.Duration
	AttackLockedUntil time.Duration
}

func NewActor(body Body) *Actor {
	return &Actor{
		Body:   body,
		Facing: DirDown,
	}
}

func (a *Actor) Position() Vec2 {
	return a.Body.Position()
}

// VisualState is derived from the stored fields and t, never stored.
func (a *Actor) VisualState(t time.Duration) VisualState {
	if t < a.AttackUntil {
		return VisualAttacking
	}
	if a.Intent.Len() > 0 {
		return VisualWalking
	}
	return VisualIdle
}

// CanAttack reports whether the cooldown window has passed at t.
func (a *Actor) CanAttack(t time.Duration) bool {
	return t > a.AttackLockedUntil
}
