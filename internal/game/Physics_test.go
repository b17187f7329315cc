package game

import (
	"testing"
	"time"
)

func spawnPoint(m *TileMap) Vec2 {
	return tileCentre(m.Start.X, m.Start.Y)
}

// walk steps the body for up to two seconds of game time.
func walk(b *ArcadeBody, v Vec2) {
	for i := 0; i < 20; i++ {
		b.SetVelocity(v)
		b.Step(MaxFrameDelta)
	}
}

func TestBodyStopsAtWall(t *testing.T) {
	m := newTestMap()
	b := NewArcadeBody(m, spawnPoint(m), true)

	for _, d := range []Direction{DirLeft, DirRight, DirUp, DirDown} {
		if b.Blocked(d) {
			t.Fatalf("blocked %v at spawn", d)
		}
	}

	walk(b, Vec2{X: -DefaultWalkSpeed})

	// flush against the side wall in column 0
	want := float64(TileSize) + actorHitWidth/2
	if got := b.Position().X; got != want {
		t.Errorf("x = %v, want %v", got, want)
	}
	if !b.Blocked(DirLeft) {
		t.Error("not blocked on the left")
	}
	if b.Velocity() != (Vec2{}) {
		t.Errorf("velocity = %+v after hitting the wall, want zero", b.Velocity())
	}
	if b.Blocked(DirRight) {
		t.Error("blocked on the right")
	}
	if b.Position().Y != spawnPoint(m).Y {
		t.Errorf("y drifted to %v", b.Position().Y)
	}
}

func TestBodyStopsAtPaintedWall(t *testing.T) {
	m := newTestMap()
	b := NewArcadeBody(m, spawnPoint(m), true)

	m.PutTileAt(LayerWall, TilePillar, 8, m.Start.Y)
	walk(b, Vec2{X: -DefaultWalkSpeed})

	want := float64(9*TileSize) + actorHitWidth/2
	if got := b.Position().X; got != want {
		t.Errorf("x = %v, want %v", got, want)
	}
	if !b.Blocked(DirLeft) {
		t.Error("painted wall does not block")
	}
}

func TestBodyPassesErasedWall(t *testing.T) {
	m := newTestMap()
	b := NewArcadeBody(m, spawnPoint(m), true)

	m.PutTileAt(LayerWall, EmptyTile, 0, m.Start.Y)
	walk(b, Vec2{X: -DefaultWalkSpeed})

	// only the map edge is left
	if got := b.Position().X; got != actorHitWidth/2 {
		t.Errorf("x = %v, want %v", got, float64(actorHitWidth/2))
	}
	if !b.Blocked(DirLeft) {
		t.Error("map edge does not block")
	}
}

func TestLungeDoesNotTunnel(t *testing.T) {
	m := newTestMap()
	b := NewArcadeBody(m, spawnPoint(m), true)
	m.PutTileAt(LayerWall, TilePillar, m.Start.X, m.Start.Y-2)

	walk(b, Vec2{Y: -DefaultLungeSpeed})

	want := float64((m.Start.Y-1)*TileSize) + actorHitHeight/2
	if got := b.Position().Y; got != want {
		t.Errorf("y = %v, want %v", got, want)
	}
	if !b.Blocked(DirUp) {
		t.Error("not blocked upwards")
	}
}

func TestBodyWithoutCollisionIgnoresWalls(t *testing.T) {
	m := newTestMap()
	b := NewArcadeBody(m, spawnPoint(m), false)

	walk(b, Vec2{X: DefaultWalkSpeed})

	want := m.WidthInPixels() - actorHitWidth/2
	if got := b.Position().X; got != want {
		t.Errorf("x = %v, want %v", got, want)
	}
	if !b.Blocked(DirRight) {
		t.Error("map edge does not block")
	}
}

func TestEmbeddedBodyCanWalkOut(t *testing.T) {
	m := newTestMap()
	b := NewArcadeBody(m, spawnPoint(m), true)
	m.PutTileAt(LayerWall, TilePillar, m.Start.X, m.Start.Y)

	start := b.Position().X
	b.SetVelocity(Vec2{X: DefaultWalkSpeed})
	b.Step(MaxFrameDelta)

	if b.Position().X <= start {
		t.Errorf("stuck inside a painted wall at x = %v", b.Position().X)
	}
}

func TestStepZeroVelocity(t *testing.T) {
	m := newTestMap()
	b := NewArcadeBody(m, spawnPoint(m), true)
	before := b.Position()

	b.Step(time.Second)

	if b.Position() != before {
		t.Errorf("moved to %+v without velocity", b.Position())
	}
}
