package game

import "github.com/charmbracelet/log"

type LayerCommand int

const (
	LayerCommandShowAll LayerCommand = iota
	LayerCommandGroundOnly
	LayerCommandWallOnly
)

// LayerStyler is the part of the tile map that draws layers dimmed or opaque.
type LayerStyler interface {
	SetLayerAlpha(layer LayerName, alpha float64)
}

// LayerSelector owns the active layer used by the picker and stamper.
type LayerSelector struct {
	styler LayerStyler
	active LayerName
	logger *log.Logger
}

func NewLayerSelector(styler LayerStyler, logger *log.Logger) *LayerSelector {
	if logger == nil {
		logger = log.Default()
	}
	l := &LayerSelector{styler: styler, logger: logger}
	l.Apply(LayerCommandShowAll)
	return l
}

func (l *LayerSelector) Active() LayerName {
	return l.active
}

// Apply runs one layer command. Unknown commands leave everything untouched
// and report false.
func (l *LayerSelector) Apply(cmd LayerCommand) bool {
	var ground, wall float64
	var active LayerName

	switch cmd {
	case LayerCommandShowAll:
		ground, wall, active = 1, 1, LayerAll
	case LayerCommandGroundOnly:
		ground, wall, active = 1, DimmedLayerAlpha, LayerGround
	case LayerCommandWallOnly:
		ground, wall, active = DimmedLayerAlpha, 1, LayerWall
	default:
		return false
	}

	l.styler.SetLayerAlpha(LayerGround, ground)
	l.styler.SetLayerAlpha(LayerWall, wall)
	l.active = active
	l.logger.Debug("Active layer changed", "layer", active)
	return true
}
