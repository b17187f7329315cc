package game

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// FrameMsg is delivered by the frame scheduler once per rendered frame.
type FrameMsg struct {
	Time  time.Duration
	Delta time.Duration
}

type SceneOptions struct {
	// Dev enables the tile tooling (picker, stamper, layer switching) and
	// turns wall collisions off, like the development build of the game.
	Dev      bool
	Tuning   Tuning
	Bindings Bindings
	Modifier Modifier
	KeyHold  time.Duration
	Zoom     int
	Logger   *log.Logger
}

func DefaultSceneOptions() SceneOptions {
	return SceneOptions{
		Tuning:   DefaultTuning(),
		Bindings: DefaultBindings(),
		Modifier: DefaultModifier,
		KeyHold:  DefaultKeyHold,
	}
}

// Scene is one play session: the map, the actor and every per-frame
// component. Nothing in it is shared between sessions.
type Scene struct {
	ID  uuid.UUID
	Dev bool

	Map        *TileMap
	Actor      *Actor
	Body       *ArcadeBody
	Sprite     *Sprite
	Camera     *Camera
	Controller *MotionController
	Input      *InputSampler
	Layers     *LayerSelector
	Picker     *TilePicker
	Stamper    *TileStamper

	started   time.Time
	lastFrame time.Time
	now       time.Duration
}

func NewScene(opts SceneOptions) *Scene {
	id := uuid.New()
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	logger = logger.With("session", id.String())

	zoom := opts.Zoom
	if zoom < 1 {
		zoom = ProductionCameraZoom
		if opts.Dev {
			zoom = DevCameraZoom
		}
	}

	tileMap := GenerateDungeon(WorldTileWidth, WorldTileHeight)
	spawn := TileToWorld(tileMap.Start).Add(Vec2{X: TileSize / 2, Y: TileSize / 2})
	body := NewArcadeBody(tileMap, spawn, !opts.Dev)
	actor := NewActor(body)
	sprite := NewSprite(AnimIdleDown)
	layers := NewLayerSelector(tileMap, logger)

	scene := &Scene{
		ID:         id,
		Dev:        opts.Dev,
		Map:        tileMap,
		Actor:      actor,
		Body:       body,
		Sprite:     sprite,
		Camera:     NewCamera(0, 0, zoom, tileMap.Bounds()),
		Controller: NewMotionController(actor, sprite, opts.Tuning, logger),
		Input:      NewInputSampler(opts.Bindings, opts.KeyHold, opts.Modifier),
		Layers:     layers,
		Picker:     NewTilePicker(tileMap, layers),
		Stamper:    NewTileStamper(tileMap, logger),
	}
	scene.Camera.Follow(actor.Position())

	logger.Info("Scene created", "dev", opts.Dev, "zoom", zoom, "start_x", tileMap.Start.X, "start_y", tileMap.Start.Y)
	return scene
}

// Start anchors the scene clock.
func (s *Scene) Start(at time.Time) {
	s.started = at
	s.lastFrame = at
}

// Elapsed converts wall time to the scene clock.
func (s *Scene) Elapsed(at time.Time) time.Duration {
	return at.Sub(s.started)
}

// NextFrame builds the frame message for a tick at wall time at.
func (s *Scene) NextFrame(at time.Time) FrameMsg {
	delta := at.Sub(s.lastFrame)
	if delta < 0 {
		delta = 0
	}
	if delta > MaxFrameDelta {
		delta = MaxFrameDelta
	}
	s.lastFrame = at
	return FrameMsg{Time: s.Elapsed(at), Delta: delta}
}

func (s *Scene) Now() time.Duration {
	return s.now
}

// Update runs one frame: motion first, then physics and camera, then the
// tile tooling against the settled camera, then the sprite.
func (s *Scene) Update(frame FrameMsg) {
	if frame.Time < s.now {
		frame.Time = s.now
	}
	s.now = frame.Time

	in := s.Input.Sample(frame.Time)

	s.Sprite.Tick(frame.Time)
	s.Controller.Update(frame.Time, in)
	s.Body.Step(frame.Delta)
	s.Camera.Follow(s.Actor.Position())

	if s.Dev {
		pick, ok := s.Picker.PickPointer(in, s.Camera)
		s.Stamper.Update(in, pick, ok)
	}

	s.Sprite.Follow(s.Actor.Position())
}

// SelectLayer applies a layer command. Only the dev build can switch layers.
func (s *Scene) SelectLayer(cmd LayerCommand) bool {
	if !s.Dev {
		return false
	}
	return s.Layers.Apply(cmd)
}

func (s *Scene) VisualState() VisualState {
	return s.Actor.VisualState(s.now)
}
