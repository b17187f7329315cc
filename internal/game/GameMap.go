package game

type LayerName string

const (
	LayerGround LayerName = "Ground"
	LayerWall   LayerName = "Wall"
	// LayerAll is not a real layer; as the active layer it means every layer is pickable.
	LayerAll LayerName = "All"
)

// EmptyTile is the index of a present but blank cell.
const EmptyTile = -1

type Tile struct {
	Index int
	X     int
	Y     int
	Layer LayerName
}

func (t Tile) Coord() TileCoord {
	return TileCoord{X: t.X, Y: t.Y}
}

type TileLayer struct {
	Name  LayerName
	Alpha float64
	cells [][]*Tile
}

// TileMap is a stack of equally sized tile layers. Layers earlier in the
// slice are drawn first.
type TileMap struct {
	Width  int
	Height int
	Layers []*TileLayer
	Start  TileCoord

	listeners []func(Tile)
}

func NewTileMap(width, height int, layers ...LayerName) *TileMap {
	m := &TileMap{Width: width, Height: height}
	for _, name := range layers {
		cells := make([][]*Tile, height)
		for row := range cells {
			cells[row] = make([]*Tile, width)
		}
		m.Layers = append(m.Layers, &TileLayer{Name: name, Alpha: 1, cells: cells})
	}
	return m
}

// GenerateDungeon builds the starting room: ground everywhere, walls on the
// outer ring and a few pillars. The wall layer is filled with EmptyTile so
// walls can be painted anywhere.
func GenerateDungeon(width, height int) *TileMap {
	m := NewTileMap(width, height, LayerGround, LayerWall)
	m.Start = TileCoord{X: width / 2, Y: height / 2}

	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			m.setTile(LayerGround, floorIndex(col, row), col, row)

			wall := EmptyTile
			if IsWall(row, col, width, height) {
				wall = wallIndex(col, row, width, height)
			}
			m.setTile(LayerWall, wall, col, row)
		}
	}

	for _, p := range pillarPositions(width, height) {
		if p == m.Start {
			continue
		}
		m.setTile(LayerWall, TilePillar, p.X, p.Y)
	}

	return m
}

func floorIndex(col, row int) int {
	return TileFloor + (col*7+row*13)%4
}

func wallIndex(col, row, width, height int) int {
	switch {
	case row == 0:
		return TileWallTop
	case row == height-1:
		return TileWallBottom
	case col == 0 || col == width-1:
		return TileWallSide
	}
	return TileWallTop
}

func pillarPositions(width, height int) []TileCoord {
	qx, qy := width/4, height/4
	return []TileCoord{
		{X: qx, Y: qy},
		{X: width - 1 - qx, Y: qy},
		{X: qx, Y: height - 1 - qy},
		{X: width - 1 - qx, Y: height - 1 - qy},
	}
}

func IsWall(row, col, width, height int) bool {
	if row <= 0 || col <= 0 {
		return true
	}
	if col >= width-1 || row >= height-1 {
		return true
	}
	return false
}

func (m *TileMap) Layer(name LayerName) *TileLayer {
	for _, l := range m.Layers {
		if l.Name == name {
			return l
		}
	}
	return nil
}

func (m *TileMap) WidthInPixels() float64  { return float64(m.Width * TileSize) }
func (m *TileMap) HeightInPixels() float64 { return float64(m.Height * TileSize) }

func (m *TileMap) Bounds() Rect {
	return Rect{W: m.WidthInPixels(), H: m.HeightInPixels()}
}

func (m *TileMap) inBounds(col, row int) bool {
	return col >= 0 && row >= 0 && col < m.Width && row < m.Height
}

// OnTileChanged registers fn to run after every PutTileAt.
func (m *TileMap) OnTileChanged(fn func(Tile)) {
	m.listeners = append(m.listeners, fn)
}

func (m *TileMap) TileAt(layer LayerName, col, row int) (Tile, bool) {
	l := m.Layer(layer)
	if l == nil || !m.inBounds(col, row) {
		return Tile{}, false
	}
	t := l.cells[row][col]
	if t == nil {
		return Tile{}, false
	}
	return *t, true
}

// PutTileAt overwrites the tile at (col,row) on layer with index.
func (m *TileMap) PutTileAt(layer LayerName, index, col, row int) bool {
	if !m.setTile(layer, index, col, row) {
		return false
	}
	t, _ := m.TileAt(layer, col, row)
	for _, fn := range m.listeners {
		fn(t)
	}
	return true
}

func (m *TileMap) setTile(layer LayerName, index, col, row int) bool {
	l := m.Layer(layer)
	if l == nil || !m.inBounds(col, row) {
		return false
	}
	l.cells[row][col] = &Tile{Index: index, X: col, Y: row, Layer: layer}
	return true
}

// TilesWithinWorldXY returns the tiles under a world point, one per layer that
// has a tile there, in stacking order. Points outside the camera's world view
// return nothing.
func (m *TileMap) TilesWithinWorldXY(x, y float64, cam *Camera) []Tile {
	p := Vec2{X: x, Y: y}
	if cam != nil && !cam.WorldView().Contains(p) {
		return nil
	}
	c := WorldToTile(p)
	if !m.inBounds(c.X, c.Y) {
		return nil
	}

	var tiles []Tile
	for _, l := range m.Layers {
		if t := l.cells[c.Y][c.X]; t != nil {
			tiles = append(tiles, *t)
		}
	}
	return tiles
}

func (m *TileMap) SetLayerAlpha(layer LayerName, alpha float64) {
	if l := m.Layer(layer); l != nil {
		l.Alpha = alpha
	}
}

// IsSolid reports whether a wall-layer tile blocks movement.
func IsSolid(t Tile) bool {
	return t.Layer == LayerWall && t.Index != EmptyTile
}
