package game

import "time"

const (
	TileSize        = 16
	WorldTileWidth  = 21
	WorldTileHeight = 21

	FrameDuration = 16 * time.Millisecond
	// frames arriving after a stall are clamped so a lunge cannot tunnel through a wall
	MaxFrameDelta = 100 * time.Millisecond

	DefaultWalkSpeed      = 125.0
	DefaultLungeSpeed     = 500.0
	DefaultAttackDuration = 165 * time.Millisecond
	DefaultCooldownRatio  = 2.0
	// A key counts as held this long after its last press. It has to outlast
	// the terminal's auto-repeat delay (250-660ms) or a held key stutters;
	// the cost is that the actor keeps moving this long after release.
	DefaultKeyHold = 600 * time.Millisecond

	DevCameraZoom        = 1
	ProductionCameraZoom = 2

	trailLifespan    = 200 * time.Millisecond
	trailStartAlpha  = 0.7
	DimmedLayerAlpha = 0.3

	// actor hit box, centred on the actor position
	actorHitWidth  = 12
	actorHitHeight = 10
)

// Tuning holds the actor constants that can be overridden from the config file.
type Tuning struct {
	WalkSpeed      float64
	LungeSpeed     float64
	AttackDuration time.Duration
	CooldownRatio  float64
}

func DefaultTuning() Tuning {
	return Tuning{
		WalkSpeed:      DefaultWalkSpeed,
		LungeSpeed:     DefaultLungeSpeed,
		AttackDuration: DefaultAttackDuration,
		CooldownRatio:  DefaultCooldownRatio,
	}
}

// AttackCooldown is the window after a swing during which no new swing can start.
func (t Tuning) AttackCooldown() time.Duration {
	return time.Duration(float64(t.AttackDuration) * t.CooldownRatio)
}
