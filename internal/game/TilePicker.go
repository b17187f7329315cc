package game

// TileGrid is the tile map as seen by the picker and stamper.
type TileGrid interface {
	TilesWithinWorldXY(x, y float64, cam *Camera) []Tile
	TileAt(layer LayerName, col, row int) (Tile, bool)
	PutTileAt(layer LayerName, index, col, row int) bool
}

// TilePicker resolves the pointer to a tile on the active layer and keeps the
// highlight marker on it.
type TilePicker struct {
	grid   TileGrid
	layers *LayerSelector

	// Marker is the top-left world corner of the last picked tile.
	Marker    Vec2
	HasMarker bool

	current Tile
	hasPick bool
}

func NewTilePicker(grid TileGrid, layers *LayerSelector) *TilePicker {
	return &TilePicker{grid: grid, layers: layers}
}

// Pick finds the tile under a world point. Tiles on inactive layers are
// skipped; when several layers match the last one in stacking order wins.
// Without a match the marker stays where it was.
func (p *TilePicker) Pick(world Vec2, cam *Camera) (Tile, bool) {
	active := p.layers.Active()

	var match Tile
	found := false
	for _, t := range p.grid.TilesWithinWorldXY(world.X, world.Y, cam) {
		if active != LayerAll && t.Layer != active {
			continue
		}
		match, found = t, true
	}

	p.hasPick = found
	if !found {
		return Tile{}, false
	}

	p.current = match
	p.Marker = TileToWorld(match.Coord())
	p.HasMarker = true
	return match, true
}

// PickPointer picks under the sampled pointer, if there is one.
func (p *TilePicker) PickPointer(in InputState, cam *Camera) (Tile, bool) {
	if !in.HasPointer {
		p.hasPick = false
		return Tile{}, false
	}
	world, ok := cam.ScreenToWorld(in.PointerX, in.PointerY)
	if !ok {
		p.hasPick = false
		return Tile{}, false
	}
	return p.Pick(world, cam)
}

// Current is the result of the latest pick.
func (p *TilePicker) Current() (Tile, bool) {
	return p.current, p.hasPick
}
