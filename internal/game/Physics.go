package game

import (
	"math"
	"time"

	"github.com/solarlune/resolv"
)

const (
	wallTag  = "wall"
	actorTag = "actor"

	// distance probed on each side to decide whether the body is blocked
	touchProbe = 1.0
	// longest move resolved in one collision pass, so a lunge cannot skip a tile
	maxSubstep = TileSize / 2
)

// ArcadeBody is the actor's physics body. Walls are static resolv objects,
// one per solid tile of the wall layer, kept in sync with the tile map.
type ArcadeBody struct {
	space  *resolv.Space
	object *resolv.Object
	walls  map[TileCoord]*resolv.Object
	bounds Rect

	velocity Vec2
	blocked  [4]bool
	collide  bool
}

// NewArcadeBody places the body centred on spawn. With collide false the
// body passes through walls and only stops at the map edge.
func NewArcadeBody(m *TileMap, spawn Vec2, collide bool) *ArcadeBody {
	space := resolv.NewSpace(m.Width*TileSize, m.Height*TileSize, TileSize, TileSize)
	object := resolv.NewObject(spawn.X-actorHitWidth/2, spawn.Y-actorHitHeight/2, actorHitWidth, actorHitHeight, actorTag)
	space.Add(object)

	b := &ArcadeBody{
		space:   space,
		object:  object,
		walls:   make(map[TileCoord]*resolv.Object),
		bounds:  m.Bounds(),
		collide: collide,
	}

	for row := 0; row < m.Height; row++ {
		for col := 0; col < m.Width; col++ {
			if t, ok := m.TileAt(LayerWall, col, row); ok {
				b.SyncTile(t)
			}
		}
	}
	m.OnTileChanged(b.SyncTile)

	b.updateBlocked()
	return b
}

// SyncTile adds or removes the wall collider of a wall-layer tile.
func (b *ArcadeBody) SyncTile(t Tile) {
	if t.Layer != LayerWall {
		return
	}
	coord := t.Coord()
	existing, has := b.walls[coord]
	solid := IsSolid(t)

	switch {
	case solid && !has:
		pos := TileToWorld(coord)
		wall := resolv.NewObject(pos.X, pos.Y, TileSize, TileSize, wallTag)
		b.space.Add(wall)
		b.walls[coord] = wall
	case !solid && has:
		b.space.Remove(existing)
		delete(b.walls, coord)
	}
}

func (b *ArcadeBody) Position() Vec2 {
	return Vec2{X: b.object.X + b.object.W/2, Y: b.object.Y + b.object.H/2}
}

func (b *ArcadeBody) Velocity() Vec2 {
	return b.velocity
}

func (b *ArcadeBody) SetVelocity(v Vec2) {
	b.velocity = v
}

func (b *ArcadeBody) Blocked(d Direction) bool {
	if d < DirDown || d > DirRight {
		return false
	}
	return b.blocked[d]
}

// Step integrates the velocity over dt. Each axis stops at the first wall in
// its way and loses its velocity, like an arcade body without bounce.
func (b *ArcadeBody) Step(dt time.Duration) {
	secs := dt.Seconds()
	dx, dy := b.velocity.X*secs, b.velocity.Y*secs

	steps := int(math.Ceil(math.Max(math.Abs(dx), math.Abs(dy)) / maxSubstep))
	if steps > 0 {
		sx, sy := dx/float64(steps), dy/float64(steps)
		for i := 0; i < steps; i++ {
			if sx != 0 && b.velocity.X != 0 {
				b.moveX(sx)
			}
			if sy != 0 && b.velocity.Y != 0 {
				b.moveY(sy)
			}
		}
	}

	b.clampToBounds()
	b.updateBlocked()
}

func (b *ArcadeBody) moveX(dx float64) {
	obj := b.object
	x := obj.X + dx
	if walls := b.overlapping(dx, 0); len(walls) > 0 && !b.embedded() {
		// snap flush against the nearest wall so the contact stays exact
		for _, wall := range walls {
			if dx > 0 {
				x = math.Min(x, wall.X-obj.W)
			} else {
				x = math.Max(x, wall.X+wall.W)
			}
		}
		b.velocity.X = 0
	}
	obj.X = x
	obj.Update()
}

func (b *ArcadeBody) moveY(dy float64) {
	obj := b.object
	y := obj.Y + dy
	if walls := b.overlapping(0, dy); len(walls) > 0 && !b.embedded() {
		for _, wall := range walls {
			if dy > 0 {
				y = math.Min(y, wall.Y-obj.H)
			} else {
				y = math.Max(y, wall.Y+wall.H)
			}
		}
		b.velocity.Y = 0
	}
	obj.Y = y
	obj.Update()
}

// overlapping returns the walls the body would overlap after moving by dx,dy.
// resolv narrows the search to nearby cells; the overlap test is done here.
func (b *ArcadeBody) overlapping(dx, dy float64) []*resolv.Object {
	if !b.collide {
		return nil
	}
	collision := b.object.Check(dx, dy, wallTag)
	if collision == nil {
		return nil
	}

	obj := b.object
	x, y := obj.X+dx, obj.Y+dy
	var hits []*resolv.Object
	for _, wall := range collision.Objects {
		if x < wall.X+wall.W && x+obj.W > wall.X && y < wall.Y+wall.H && y+obj.H > wall.Y {
			hits = append(hits, wall)
		}
	}
	return hits
}

// embedded is true when a wall was painted on top of the body; it may then
// walk out freely.
func (b *ArcadeBody) embedded() bool {
	return len(b.overlapping(0, 0)) > 0
}

func (b *ArcadeBody) clampToBounds() {
	obj := b.object
	minX, maxX := b.bounds.X, b.bounds.X+b.bounds.W-obj.W
	minY, maxY := b.bounds.Y, b.bounds.Y+b.bounds.H-obj.H
	if obj.X < minX || obj.X > maxX || obj.Y < minY || obj.Y > maxY {
		obj.X = math.Max(minX, math.Min(obj.X, maxX))
		obj.Y = math.Max(minY, math.Min(obj.Y, maxY))
		obj.Update()
	}
}

func (b *ArcadeBody) updateBlocked() {
	obj := b.object
	embedded := b.embedded()
	touching := func(dx, dy float64) bool {
		return !embedded && len(b.overlapping(dx, dy)) > 0
	}

	b.blocked[DirLeft] = obj.X-touchProbe < b.bounds.X || touching(-touchProbe, 0)
	b.blocked[DirRight] = obj.X+obj.W+touchProbe > b.bounds.X+b.bounds.W || touching(touchProbe, 0)
	b.blocked[DirUp] = obj.Y-touchProbe < b.bounds.Y || touching(0, -touchProbe)
	b.blocked[DirDown] = obj.Y+obj.H+touchProbe > b.bounds.Y+b.bounds.H || touching(0, touchProbe)
}
