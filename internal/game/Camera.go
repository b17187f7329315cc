package game

import "math"

// Camera maps terminal cells of the map viewport to world pixels. One tile
// is drawn as 2*Zoom columns by Zoom rows, since terminal cells are about
// twice as tall as they are wide.
type Camera struct {
	ScrollX, ScrollY float64
	Cols, Rows       int
	Zoom             int
	Bounds           Rect
}

func NewCamera(cols, rows, zoom int, bounds Rect) *Camera {
	if zoom < 1 {
		zoom = 1
	}
	return &Camera{
		Cols:   max(0, cols),
		Rows:   max(0, rows),
		Zoom:   zoom,
		Bounds: bounds,
	}
}

// CellWidth is the world width of one terminal column.
func (c *Camera) CellWidth() float64 {
	return float64(TileSize) / float64(2*c.Zoom)
}

// CellHeight is the world height of one terminal row.
func (c *Camera) CellHeight() float64 {
	return float64(TileSize) / float64(c.Zoom)
}

func (c *Camera) Resize(cols, rows int) {
	c.Cols = max(0, cols)
	c.Rows = max(0, rows)
}

func (c *Camera) WorldView() Rect {
	return Rect{
		X: c.ScrollX,
		Y: c.ScrollY,
		W: float64(c.Cols) * c.CellWidth(),
		H: float64(c.Rows) * c.CellHeight(),
	}
}

// Follow centres the view on target, clamped to Bounds and snapped to whole cells.
func (c *Camera) Follow(target Vec2) {
	view := c.WorldView()
	c.ScrollX = clampScroll(target.X-view.W/2, c.Bounds.X, c.Bounds.W, view.W)
	c.ScrollY = clampScroll(target.Y-view.H/2, c.Bounds.Y, c.Bounds.H, view.H)

	c.ScrollX = math.Round(c.ScrollX/c.CellWidth()) * c.CellWidth()
	c.ScrollY = math.Round(c.ScrollY/c.CellHeight()) * c.CellHeight()
}

func clampScroll(scroll, boundsStart, boundsSize, viewSize float64) float64 {
	if viewSize >= boundsSize {
		return boundsStart
	}
	if scroll < boundsStart {
		return boundsStart
	}
	if scroll+viewSize > boundsStart+boundsSize {
		return boundsStart + boundsSize - viewSize
	}
	return scroll
}

// ScreenToWorld returns the world point at the centre of a viewport cell.
func (c *Camera) ScreenToWorld(col, row int) (Vec2, bool) {
	if col < 0 || row < 0 || col >= c.Cols || row >= c.Rows {
		return Vec2{}, false
	}
	return Vec2{
		X: c.ScrollX + (float64(col)+0.5)*c.CellWidth(),
		Y: c.ScrollY + (float64(row)+0.5)*c.CellHeight(),
	}, true
}

// WorldToScreen returns the viewport cell containing p.
func (c *Camera) WorldToScreen(p Vec2) (int, int, bool) {
	col := int(math.Floor((p.X - c.ScrollX) / c.CellWidth()))
	row := int(math.Floor((p.Y - c.ScrollY) / c.CellHeight()))
	if col < 0 || row < 0 || col >= c.Cols || row >= c.Rows {
		return 0, 0, false
	}
	return col, row, true
}
