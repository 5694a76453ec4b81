package scene

import (
	"github.com/Carmen-Shannon/oxy-fpscam/common"
	"github.com/Carmen-Shannon/oxy-fpscam/engine/camera"
	"github.com/Carmen-Shannon/oxy-fpscam/engine/config"
	"github.com/Carmen-Shannon/oxy-fpscam/engine/game_object"
	"github.com/Carmen-Shannon/oxy-fpscam/engine/input"
	"github.com/Carmen-Shannon/oxy-fpscam/engine/loop"
	"github.com/Carmen-Shannon/oxy-fpscam/engine/octree"
	"github.com/Carmen-Shannon/oxy-fpscam/engine/physics"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/sirupsen/logrus"
)

// SlowFactor scales every move while the slow-movement key is held.
const SlowFactor float32 = 0.5

// scene implements the Scene interface.
// It owns the camera, the player body kept in sync with it, the obstacle octree,
// and the frame clock that drives every per-frame task.
type scene struct {
	name   string
	active bool

	cam        camera.Camera
	player     game_object.GameObject
	controller *physics.Controller

	clock    loop.FrameClock
	index    *octree.Octree
	registry map[uint64]game_object.GameObject

	pointer *input.PointerTracker
	keys    map[uint32]bool

	step         float32
	verticalStep float32

	orient *loop.Task
	walk   *loop.Task

	cfg     config.Config
	panning bool
	objects []game_object.GameObject
	log     logrus.FieldLogger
}

// Scene is a first-person play space: a camera driven by a collision-resolving
// controller inside a set of box obstacles.
//
// Scene is not safe for concurrent use. Input methods and Update must be called
// from the same goroutine, normally the engine tick goroutine.
type Scene interface {
	// Name returns the scene's name.
	//
	// Returns:
	//   - string: the scene name
	Name() string

	// SetName sets the scene's name.
	//
	// Parameters:
	//   - name: the new name
	SetName(name string)

	// Active reports whether Update advances the scene.
	//
	// Returns:
	//   - bool: true if the scene is active
	Active() bool

	// SetActive pauses or resumes the scene. A paused scene keeps all its state.
	//
	// Parameters:
	//   - active: false to pause
	SetActive(active bool)

	// Camera returns the first-person camera.
	//
	// Returns:
	//   - camera.Camera: the scene camera
	Camera() camera.Camera

	// Player returns the body probed against the obstacles.
	//
	// Returns:
	//   - game_object.GameObject: the player body
	Player() game_object.GameObject

	// Controller returns the physics controller moving the camera.
	//
	// Returns:
	//   - *physics.Controller: the controller
	Controller() *physics.Controller

	// Clock returns the frame clock. Tasks scheduled on it run on every Update.
	//
	// Returns:
	//   - loop.FrameClock: the scene clock
	Clock() loop.FrameClock

	// Count returns the number of registered obstacles.
	//
	// Returns:
	//   - int: obstacle count
	Count() int

	// AddObject registers an obstacle. Adding an already registered object is a no-op.
	//
	// Parameters:
	//   - obj: the obstacle
	AddObject(obj game_object.GameObject)

	// RemoveObject unregisters an obstacle.
	//
	// Parameters:
	//   - id: the obstacle ID
	//
	// Returns:
	//   - bool: true if the obstacle was registered
	RemoveObject(id uint64) bool

	// Object looks up a registered obstacle.
	//
	// Parameters:
	//   - id: the obstacle ID
	//
	// Returns:
	//   - game_object.GameObject: the obstacle, or nil
	Object(id uint64) game_object.GameObject

	// MoveObject repositions an obstacle and reindexes it.
	//
	// Parameters:
	//   - id: the obstacle ID
	//   - pos: the new centre
	//
	// Returns:
	//   - bool: true if the obstacle was registered
	MoveObject(id uint64, pos mgl32.Vec3) bool

	// Query returns the enabled obstacles overlapping c.
	//
	// Parameters:
	//   - c: the collider to test
	//
	// Returns:
	//   - []common.Collider: overlapping obstacles
	Query(c common.Collider) []common.Collider

	// KeyDown handles a key press. Movement keys are held until KeyUp; the jump and
	// gravity keys act once per press.
	//
	// Parameters:
	//   - code: the key code
	KeyDown(code uint32)

	// KeyUp handles a key release.
	//
	// Parameters:
	//   - code: the key code
	KeyUp(code uint32)

	// PointerDown starts a look drag.
	//
	// Parameters:
	//   - id: pointer identifier
	//   - x, y: pointer position in pixels
	PointerDown(id int64, x, y float32)

	// PointerMove continues a look drag. Moves of other pointers are ignored.
	//
	// Parameters:
	//   - id: pointer identifier
	//   - x, y: pointer position in pixels
	PointerMove(id int64, x, y float32)

	// PointerUp ends a look drag.
	//
	// Parameters:
	//   - id: pointer identifier
	PointerUp(id int64)

	// ApplyConfig applies reloadable settings: physics schedule, step sizes and look
	// sensitivity. Spawn, obstacles and window settings only apply at construction.
	//
	// Parameters:
	//   - cfg: the new configuration
	//
	// Returns:
	//   - error: a validation error; nothing is applied
	ApplyConfig(cfg config.Config) error

	// Update advances the frame clock by one frame. Does nothing while paused.
	//
	// Parameters:
	//   - deltaTime: seconds since the previous frame
	Update(deltaTime float32)
}

var _ Scene = &scene{}
var _ physics.CollisionIndex = &scene{}

// NewScene builds a scene from its configuration: camera at the spawn point, player
// body of the configured size, obstacles indexed in an octree, and the per-frame
// orientation and walking tasks already running. Gravity starts enabled if the
// configuration asks for it.
//
// Parameters:
//   - options: functional options to configure the scene
//
// Returns:
//   - Scene: the newly created scene
func NewScene(options ...SceneBuilderOption) Scene {
	s := &scene{
		name:     "Default Scene",
		active:   true,
		clock:    loop.NewFrameClock(),
		registry: make(map[uint64]game_object.GameObject),
		keys:     make(map[uint32]bool),
		cfg:      config.Default(),
		panning:  true,
	}
	for _, opt := range options {
		opt(s)
	}
	if s.log == nil {
		s.log = logrus.StandardLogger()
	}
	s.log = s.log.WithField("scene", s.name)

	cfg := s.cfg
	spawn := mgl32.Vec3(cfg.World.Spawn)
	half := mgl32.Vec3(cfg.World.BodySize).Mul(0.5)
	s.cam = camera.NewCamera(
		camera.WithPosition(spawn[0], spawn[1], spawn[2]),
		camera.WithHalfExtents(half[0], half[1], half[2]),
		camera.WithAspect(float32(cfg.Engine.Width)/float32(cfg.Engine.Height)),
	)
	s.player = game_object.NewGameObject(
		game_object.WithPosition(spawn[0], spawn[1], spawn[2]),
		game_object.WithHalfExtents(half[0], half[1], half[2]),
	)

	h := cfg.World.HalfBounds
	s.index = octree.New(cube.Box(-h, -h, -h, h, h, h))
	for _, b := range cfg.World.Obstacles {
		s.AddObject(game_object.NewGameObject(
			game_object.WithPosition(b.Position[0], b.Position[1], b.Position[2]),
			game_object.WithSize(b.Size[0], b.Size[1], b.Size[2]),
		))
	}
	for _, obj := range s.objects {
		s.AddObject(obj)
	}
	s.objects = nil

	look := input.NewLook(
		input.WithSensitivity(cfg.Input.Sensitivity),
		input.WithMaxPitch(cfg.Input.MaxPitch),
	)
	if s.panning {
		look.Enable()
	}
	movement := camera.NewCameraController(s.cam,
		camera.WithPreMove(s.scaleStep),
		camera.WithOnMove(s.syncPlayer),
	)
	s.controller = physics.NewController(movement, s.clock,
		physics.WithLogger(s.log),
		physics.WithTuning(cfg.Physics),
		physics.WithLook(look),
		physics.WithCollision(s),
		physics.WithBody(s.player),
	)
	s.controller.SetDefault(cfg.Input.Yaw, cfg.Input.Pitch)
	s.step, s.verticalStep = cfg.Movement.Step, cfg.Movement.VerticalStep
	s.pointer = input.NewPointerTracker(s.controller.Pan)

	s.orient = loop.NewTask(s.clock, func(*loop.Task) { s.controller.Orient() })
	s.walk = loop.NewTask(s.clock, func(*loop.Task) { s.walkHeld() })
	s.orient.Start()
	s.walk.Start()

	if cfg.World.Gravity {
		if err := s.controller.EnableGravity(); err != nil {
			s.log.WithError(err).Error("gravity not started")
		}
	}
	return s
}

func (s *scene) Name() string {
	return s.name
}

func (s *scene) SetName(name string) {
	s.name = name
}

func (s *scene) Active() bool {
	return s.active
}

func (s *scene) SetActive(active bool) {
	s.active = active
}

func (s *scene) Camera() camera.Camera {
	return s.cam
}

func (s *scene) Player() game_object.GameObject {
	return s.player
}

func (s *scene) Controller() *physics.Controller {
	return s.controller
}

func (s *scene) Clock() loop.FrameClock {
	return s.clock
}

func (s *scene) Count() int {
	return len(s.registry)
}

func (s *scene) AddObject(obj game_object.GameObject) {
	if _, ok := s.registry[obj.ID()]; ok {
		return
	}
	s.registry[obj.ID()] = obj
	s.index.Insert(obj)
}

func (s *scene) RemoveObject(id uint64) bool {
	obj, ok := s.registry[id]
	if !ok {
		return false
	}
	delete(s.registry, id)
	s.index.Remove(obj)
	return true
}

func (s *scene) Object(id uint64) game_object.GameObject {
	return s.registry[id]
}

func (s *scene) MoveObject(id uint64, pos mgl32.Vec3) bool {
	obj, ok := s.registry[id]
	if !ok {
		return false
	}
	obj.SetPosition(pos)
	s.index.Update(obj)
	return true
}

func (s *scene) Query(c common.Collider) []common.Collider {
	hits := s.index.Query(c)
	n := 0
	for _, h := range hits {
		if obj, ok := h.(game_object.GameObject); ok && !obj.Enabled() {
			continue
		}
		hits[n] = h
		n++
	}
	return hits[:n]
}

func (s *scene) KeyDown(code uint32) {
	if s.keys[code] {
		return
	}
	s.keys[code] = true

	switch code {
	case common.KeySpace:
		if _, err := s.controller.Jump(); err != nil {
			s.log.WithError(err).Warn("jump failed")
		}
	case common.KeyG:
		if s.controller.GravityEnabled() {
			s.controller.DisableGravity()
			return
		}
		if err := s.controller.EnableGravity(); err != nil {
			s.log.WithError(err).Warn("gravity toggle failed")
		}
	}
}

func (s *scene) KeyUp(code uint32) {
	delete(s.keys, code)
}

func (s *scene) PointerDown(id int64, x, y float32) {
	s.pointer.Down(id, x, y)
}

func (s *scene) PointerMove(id int64, x, y float32) {
	s.pointer.Move(id, x, y)
}

func (s *scene) PointerUp(id int64) {
	s.pointer.Up(id)
}

func (s *scene) ApplyConfig(cfg config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := s.controller.SetTuning(cfg.Physics); err != nil {
		return err
	}
	s.step, s.verticalStep = cfg.Movement.Step, cfg.Movement.VerticalStep
	s.controller.Look().SetSensitivity(cfg.Input.Sensitivity)
	s.cfg = cfg
	s.log.Info("configuration applied")
	return nil
}

func (s *scene) Update(deltaTime float32) {
	if !s.active {
		return
	}
	s.clock.Advance(deltaTime)
}

// walkHeld applies one step for every held movement key.
func (s *scene) walkHeld() {
	c := s.controller
	for _, code := range common.MoveKeys {
		if !s.keys[code] {
			continue
		}
		switch code {
		case common.KeyW:
			c.MoveForward(s.step)
		case common.KeyS:
			c.MoveBack(s.step)
		case common.KeyA:
			c.MoveLeft(s.step)
		case common.KeyD:
			c.MoveRight(s.step)
		case common.KeyE:
			c.MoveUp(s.verticalStep)
		case common.KeyQ:
			c.MoveDown(s.verticalStep)
		}
	}
}

// scaleStep is the pre-move transform: every move is slowed while the slow key is held.
func (s *scene) scaleStep(step float32) float32 {
	if s.keys[common.KeyLeftCtrl] {
		return step * SlowFactor
	}
	return step
}

// syncPlayer is the post-move hook keeping the player body on the camera.
func (s *scene) syncPlayer() {
	s.player.SetPosition(s.cam.Position())
}
