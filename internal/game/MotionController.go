package game

import (
	"time"

	"github.com/charmbracelet/log"
)

// Body is the physics side of the actor.
type Body interface {
	Position() Vec2
	SetVelocity(v Vec2)
	// Blocked reports whether the body touched a collider in d during the last step.
	Blocked(d Direction) bool
}

type BlendMode int

const (
	BlendNormal BlendMode = iota
	BlendAdd
)

// Renderer is the animation side of the actor.
type Renderer interface {
	// Play is a no-op when key is already playing.
	Play(key AnimationKey)
	SetFlipX(flip bool)
	SetBlendMode(mode BlendMode)
	StartTrail()
	StopTrail()
	TrailActive() bool
}

// MotionController turns sampled input into actor velocity, facing and
// animation once per frame.
type MotionController struct {
	actor    *Actor
	renderer Renderer
	tuning   Tuning
	logger   *log.Logger
}

func NewMotionController(actor *Actor, renderer Renderer, tuning Tuning, logger *log.Logger) *MotionController {
	if logger == nil {
		logger = log.Default()
	}
	return &MotionController{
		actor:    actor,
		renderer: renderer,
		tuning:   tuning,
		logger:   logger,
	}
}

func (c *MotionController) Update(t time.Duration, in InputState) {
	actor := c.actor

	// mid-swing, nothing can interrupt the lunge
	if t < actor.AttackUntil {
		return
	}

	body := actor.Body
	var intent Vec2

	if in.Left && !body.Blocked(DirLeft) {
		intent.X = -1
	} else if in.Right && !body.Blocked(DirRight) {
		intent.X = 1
	}

	if in.Up && !body.Blocked(DirUp) {
		intent.Y = -1
	} else if in.Down && !body.Blocked(DirDown) {
		intent.Y = 1
	}

	var pose Pose
	switch {
	case in.Left || in.Right:
		if in.Left {
			actor.Facing = DirLeft
		} else {
			actor.Facing = DirRight
		}
		pose = Pose{Animation: AnimWalkSide, FlipX: actor.Facing == DirLeft}
	case in.Down:
		actor.Facing = DirDown
		pose = Pose{Animation: AnimWalkDown}
	case in.Up:
		actor.Facing = DirUp
		pose = Pose{Animation: AnimWalkUp}
	default:
		pose = idlePose(actor.Facing)
	}
	c.renderer.SetFlipX(pose.FlipX)

	if in.Attack && actor.CanAttack(t) && intent.Len() > 0 {
		actor.AttackUntil = t + c.tuning.AttackDuration
		actor.AttackLockedUntil = actor.AttackUntil + c.tuning.AttackCooldown()
		actor.Intent = intent.Normalize().Scale(c.tuning.LungeSpeed)
		body.SetVelocity(actor.Intent)

		c.renderer.StartTrail()
		c.renderer.SetBlendMode(BlendAdd)
		c.logger.Debug("Lunge started", "facing", actor.Facing, "until", actor.AttackUntil, "locked_until", actor.AttackLockedUntil)
		return
	}

	actor.Intent = intent.Normalize().Scale(c.tuning.WalkSpeed)
	body.SetVelocity(actor.Intent)

	c.renderer.Play(pose.Animation)
	c.renderer.SetBlendMode(BlendNormal)
	if c.renderer.TrailActive() {
		c.renderer.StopTrail()
	}
}
