package game

import "sort"

const (
	TileFloor      = 0 // 0..3 are floor variants
	TileWallTop    = 10
	TileWallSide   = 11
	TileWallBottom = 12
	TilePillar     = 13
)

// TileDef is how a tile index looks on screen.
type TileDef struct {
	Index int
	Name  string
	Glyph string
	Color string
}

var tileDefs = map[int]TileDef{
	TileFloor:      {Index: TileFloor, Name: "floor", Glyph: "·", Color: "240"},
	TileFloor + 1:  {Index: TileFloor + 1, Name: "floor (cracked)", Glyph: "˙", Color: "240"},
	TileFloor + 2:  {Index: TileFloor + 2, Name: "floor (pebbles)", Glyph: ",", Color: "239"},
	TileFloor + 3:  {Index: TileFloor + 3, Name: "floor (bare)", Glyph: " ", Color: "239"},
	TileWallTop:    {Index: TileWallTop, Name: "wall (top)", Glyph: "▀", Color: "172"},
	TileWallSide:   {Index: TileWallSide, Name: "wall (side)", Glyph: "█", Color: "172"},
	TileWallBottom: {Index: TileWallBottom, Name: "wall (bottom)", Glyph: "▄", Color: "172"},
	TilePillar:     {Index: TilePillar, Name: "pillar", Glyph: "▓", Color: "137"},
}

var unknownTile = TileDef{Index: EmptyTile, Name: "unknown", Glyph: "?", Color: "9"}

// LookupTile returns the definition of index. EmptyTile has no definition.
func LookupTile(index int) (TileDef, bool) {
	if index == EmptyTile {
		return TileDef{}, false
	}
	def, ok := tileDefs[index]
	if !ok {
		def = unknownTile
		def.Index = index
	}
	return def, true
}

// TileCatalog lists every known tile ordered by index.
func TileCatalog() []TileDef {
	defs := make([]TileDef, 0, len(tileDefs))
	for _, def := range tileDefs {
		defs = append(defs, def)
	}
	sort.Slice(defs, func(i, j int) bool {
		return defs[i].Index < defs[j].Index
	})
	return defs
}
