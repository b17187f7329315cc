package game

import "math"

// Direction is one of the four cardinal directions. The zero value is Down,
// which is also the facing of an actor that never moved.
type Direction int

const (
	DirDown Direction = iota
	DirUp
	DirLeft
	DirRight
)

var directionNames = map[Direction]string{
	DirDown:  "down",
	DirUp:    "up",
	DirLeft:  "left",
	DirRight: "right",
}

func (d Direction) String() string {
	if name, ok := directionNames[d]; ok {
		return name
	}
	return "unknown"
}

type Vec2 struct {
	X, Y float64
}

func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Normalize returns the unit vector of v. The zero vector stays zero.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

type TileCoord struct {
	X, Y int
}

// WorldToTile floors a world position into the tile that contains it.
func WorldToTile(p Vec2) TileCoord {
	return TileCoord{
		X: int(math.Floor(p.X / TileSize)),
		Y: int(math.Floor(p.Y / TileSize)),
	}
}

// TileToWorld returns the top-left corner of a tile in world pixels.
func TileToWorld(c TileCoord) Vec2 {
	return Vec2{X: float64(c.X * TileSize), Y: float64(c.Y * TileSize)}
}

type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}
