package game

type AnimationKey string

const (
	AnimIdleDown AnimationKey = "idle-down"
	AnimIdleUp   AnimationKey = "idle-up"
	AnimIdleSide AnimationKey = "idle-side"
	AnimWalkDown AnimationKey = "walk-down"
	AnimWalkUp   AnimationKey = "walk-up"
	AnimWalkSide AnimationKey = "walk-side"
)

type Animation struct {
	Frames    []rune
	FrameRate float64
	Repeat    bool
}

// Side animations face right; left is drawn by mirroring them.
var Animations = map[AnimationKey]Animation{
	AnimIdleDown: {Frames: []rune{'▼'}, FrameRate: 1, Repeat: true},
	AnimIdleUp:   {Frames: []rune{'▲'}, FrameRate: 1, Repeat: true},
	AnimIdleSide: {Frames: []rune{'▶'}, FrameRate: 1, Repeat: true},
	AnimWalkDown: {Frames: []rune{'▼', '▽'}, FrameRate: 8, Repeat: true},
	AnimWalkUp:   {Frames: []rune{'▲', '△'}, FrameRate: 8, Repeat: true},
	AnimWalkSide: {Frames: []rune{'▶', '▷'}, FrameRate: 8, Repeat: true},
}

var mirroredRunes = map[rune]rune{
	'▶': '◀',
	'▷': '◁',
	'◀': '▶',
	'◁': '▷',
}

func mirror(r rune) rune {
	if m, ok := mirroredRunes[r]; ok {
		return m
	}
	return r
}

// Pose is an animation plus the horizontal flip it is drawn with.
type Pose struct {
	Animation AnimationKey
	FlipX     bool
}

func idlePose(facing Direction) Pose {
	switch facing {
	case DirLeft:
		return Pose{Animation: AnimIdleSide, FlipX: true}
	case DirRight:
		return Pose{Animation: AnimIdleSide}
	case DirUp:
		return Pose{Animation: AnimIdleUp}
	default:
		return Pose{Animation: AnimIdleDown}
	}
}
