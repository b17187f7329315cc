package game

import "testing"

func TestCameraCellSize(t *testing.T) {
	tests := []struct {
		zoom   int
		width  float64
		height float64
	}{
		{1, 8, 16},
		{2, 4, 8},
		{0, 8, 16},
	}
	for _, tt := range tests {
		c := NewCamera(10, 10, tt.zoom, Rect{W: 100, H: 100})
		if c.CellWidth() != tt.width || c.CellHeight() != tt.height {
			t.Errorf("zoom %d: cell = %vx%v, want %vx%v", tt.zoom, c.CellWidth(), c.CellHeight(), tt.width, tt.height)
		}
	}
}

func TestCameraFollowClampsToBounds(t *testing.T) {
	bounds := Rect{W: 336, H: 336}
	tests := []struct {
		name   string
		target Vec2
		x, y   float64
	}{
		{"top left corner", Vec2{X: 0, Y: 0}, 0, 0},
		{"bottom right corner", Vec2{X: 336, Y: 336}, 176, 176},
		{"middle", Vec2{X: 168, Y: 176}, 88, 96},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCamera(20, 10, 1, bounds)
			c.Follow(tt.target)
			if c.ScrollX != tt.x || c.ScrollY != tt.y {
				t.Errorf("scroll = %v,%v, want %v,%v", c.ScrollX, c.ScrollY, tt.x, tt.y)
			}
		})
	}
}

func TestCameraLargerThanMap(t *testing.T) {
	c := NewCamera(200, 100, 1, Rect{W: 336, H: 336})
	c.Follow(Vec2{X: 300, Y: 300})
	if c.ScrollX != 0 || c.ScrollY != 0 {
		t.Errorf("scroll = %v,%v, want 0,0", c.ScrollX, c.ScrollY)
	}
}

func TestCameraScreenWorldRoundTrip(t *testing.T) {
	c := NewCamera(20, 10, 2, Rect{W: 336, H: 336})
	c.ScrollX, c.ScrollY = 40, 24

	for _, cell := range [][2]int{{0, 0}, {5, 3}, {19, 9}} {
		p, ok := c.ScreenToWorld(cell[0], cell[1])
		if !ok {
			t.Fatalf("cell %v outside the viewport", cell)
		}
		col, row, ok := c.WorldToScreen(p)
		if !ok || col != cell[0] || row != cell[1] {
			t.Errorf("cell %v -> %+v -> %d,%d", cell, p, col, row)
		}
	}

	if _, ok := c.ScreenToWorld(20, 0); ok {
		t.Error("column past the viewport accepted")
	}
	if _, _, ok := c.WorldToScreen(Vec2{X: 39, Y: 30}); ok {
		t.Error("point left of the view accepted")
	}
}
