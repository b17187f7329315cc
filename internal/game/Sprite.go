package game

import (
	"math"
	"time"
)

// Afterimage is one particle of the lunge trail.
type Afterimage struct {
	Position Vec2
	Glyph    rune
	Born     time.Duration
}

// Sprite is the terminal implementation of Renderer. It keeps the playing
// animation, flip and blend state plus the afterimage trail.
type Sprite struct {
	animation AnimationKey
	animStart time.Duration
	flipX     bool
	blend     BlendMode

	trailOn bool
	trail   []Afterimage

	now time.Duration
}

func NewSprite(initial AnimationKey) *Sprite {
	return &Sprite{animation: initial}
}

func (s *Sprite) Play(key AnimationKey) {
	if s.animation == key {
		return
	}
	s.animation = key
	s.animStart = s.now
}

func (s *Sprite) SetFlipX(flip bool)          { s.flipX = flip }
func (s *Sprite) SetBlendMode(mode BlendMode) { s.blend = mode }
func (s *Sprite) StartTrail()                 { s.trailOn = true }

// StopTrail stops emitting; afterimages already emitted fade out on their own.
func (s *Sprite) StopTrail() { s.trailOn = false }

func (s *Sprite) TrailActive() bool { return s.trailOn }

func (s *Sprite) Animation() AnimationKey { return s.animation }
func (s *Sprite) FlipX() bool             { return s.flipX }
func (s *Sprite) BlendMode() BlendMode    { return s.blend }

// Tick moves the sprite clock to t and drops expired afterimages.
func (s *Sprite) Tick(t time.Duration) {
	s.now = t
	alive := s.trail[:0]
	for _, a := range s.trail {
		if t-a.Born < trailLifespan {
			alive = append(alive, a)
		}
	}
	s.trail = alive
}

// Follow emits an afterimage at pos while the trail is on.
func (s *Sprite) Follow(pos Vec2) {
	if !s.trailOn {
		return
	}
	s.trail = append(s.trail, Afterimage{Position: pos, Glyph: s.Glyph(), Born: s.now})
}

// Glyph is the current animation frame, mirrored when flipped.
func (s *Sprite) Glyph() rune {
	anim, ok := Animations[s.animation]
	if !ok || len(anim.Frames) == 0 {
		return '@'
	}
	frame := int((s.now - s.animStart).Seconds() * anim.FrameRate)
	if anim.Repeat {
		frame %= len(anim.Frames)
	} else if frame >= len(anim.Frames) {
		frame = len(anim.Frames) - 1
	}
	r := anim.Frames[frame]
	if s.flipX {
		r = mirror(r)
	}
	return r
}

func (s *Sprite) Afterimages() []Afterimage {
	return s.trail
}

// Alpha fades an afterimage from 0.7 to 0 with a cubic ease-out over its lifespan.
func (s *Sprite) Alpha(a Afterimage) float64 {
	progress := float64(s.now-a.Born) / float64(trailLifespan)
	if progress >= 1 {
		return 0
	}
	if progress < 0 {
		progress = 0
	}
	eased := 1 - math.Pow(1-progress, 3)
	return trailStartAlpha * (1 - eased)
}
