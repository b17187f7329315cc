package game

import "github.com/charmbracelet/log"

type StamperState int

const (
	StamperIdle StamperState = iota
	StamperCapturing
	StamperPainting
)

func (s StamperState) String() string {
	switch s {
	case StamperCapturing:
		return "capturing"
	case StamperPainting:
		return "painting"
	default:
		return "idle"
	}
}

// CapturedTile is the tile definition the stamper paints with and where it
// was taken from.
type CapturedTile struct {
	Index int
	X, Y  int
	Layer LayerName
}

// TileStamper is the pick-then-paint editor: primary button with the modifier
// captures the tile under the cursor, primary button alone paints it.
type TileStamper struct {
	grid     TileGrid
	state    StamperState
	captured *CapturedTile
	logger   *log.Logger

	CapturedMarker Vec2
}

func NewTileStamper(grid TileGrid, logger *log.Logger) *TileStamper {
	if logger == nil {
		logger = log.Default()
	}
	return &TileStamper{grid: grid, logger: logger}
}

func (s *TileStamper) State() StamperState {
	return s.state
}

func (s *TileStamper) Captured() (CapturedTile, bool) {
	if s.captured == nil {
		return CapturedTile{}, false
	}
	return *s.captured, true
}

// Update advances the stamper with this frame's input and pick.
func (s *TileStamper) Update(in InputState, pick Tile, picked bool) {
	if !in.PrimaryDown {
		s.state = StamperIdle
		return
	}
	if !picked {
		return
	}

	if in.Modifier {
		def, ok := s.grid.TileAt(pick.Layer, pick.X, pick.Y)
		if !ok {
			return
		}
		s.captured = &CapturedTile{Index: def.Index, X: def.X, Y: def.Y, Layer: def.Layer}
		s.CapturedMarker = TileToWorld(def.Coord())
		if s.state != StamperCapturing {
			s.logger.Debug("Tile captured", "index", def.Index, "x", def.X, "y", def.Y, "layer", def.Layer)
		}
		s.state = StamperCapturing
		return
	}

	// painting needs a prior capture
	if s.captured == nil {
		return
	}

	s.state = StamperPainting
	if current, ok := s.grid.TileAt(pick.Layer, pick.X, pick.Y); ok && current.Index == s.captured.Index {
		return
	}
	if s.grid.PutTileAt(pick.Layer, s.captured.Index, pick.X, pick.Y) {
		s.logger.Debug("Tile painted", "index", s.captured.Index, "x", pick.X, "y", pick.Y, "layer", pick.Layer)
	}
}
