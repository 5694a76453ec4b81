package physics

import (
	"errors"
	"io"
	"testing"

	"github.com/Carmen-Shannon/oxy-fpscam/common"
	"github.com/Carmen-Shannon/oxy-fpscam/engine/camera"
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/sirupsen/logrus"
)

const tolerance = 1e-5

func quietLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// floorIndex collides whenever the camera is at or below y = 0.
func floorIndex(cam camera.Camera) IndexFunc {
	return func(common.Collider) []common.Collider {
		if cam.Position().Y() <= 0 {
			return []common.Collider{cam}
		}
		return nil
	}
}

func blocking(blocked *bool, cam camera.Camera) IndexFunc {
	return func(common.Collider) []common.Collider {
		if *blocked {
			return []common.Collider{cam}
		}
		return nil
	}
}

func newTestController(cam camera.Camera, index CollisionIndex, options ...camera.CameraControllerOption) *Controller {
	cc := camera.NewCameraController(cam, options...)
	return NewController(cc, nil, WithLogger(quietLogger()), WithCollision(index), WithBody(cam))
}

func TestCollisionUndoRestoresPosition(t *testing.T) {
	moves := map[string]func(*Resolver, float32){
		"forward": (*Resolver).MoveForward,
		"back":    (*Resolver).MoveBack,
		"left":    (*Resolver).MoveLeft,
		"right":   (*Resolver).MoveRight,
		"up":      (*Resolver).MoveUp,
		"down":    (*Resolver).MoveDown,
	}
	// A transform that is neither odd nor linear.
	skew := func(s float32) float32 { return s*s + 0.01 }

	for name, move := range moves {
		for _, step := range []float32{0.01, 0.05, 0.5, 3, -0.2} {
			cam := camera.NewCamera(camera.WithPosition(1, 2, 3))
			camera.UpdateOrientation(cam, 0.7, 0.3)
			c := newTestController(cam, IndexFunc(func(common.Collider) []common.Collider {
				return []common.Collider{cam}
			}), camera.WithPreMove(skew))

			start := cam.Position()
			move(c.Resolver, step)
			if got := cam.Position(); !vecNear(got, start, tolerance) {
				t.Errorf("%s(%v): position %v, want %v", name, step, got, start)
			}
		}
	}
}

func TestFreeMoveIsApplied(t *testing.T) {
	cam := camera.NewCamera()
	camera.UpdateOrientation(cam, 0, 0)
	blocked := false
	c := newTestController(cam, blocking(&blocked, cam))

	c.MoveForward(1)
	if got := cam.Position(); !vecNear(got, mgl32.Vec3{0, 0, -1}, tolerance) {
		t.Fatalf("forward move not applied: %v", got)
	}
	blocked = true
	c.MoveUp(1)
	if got := cam.Position(); !vecNear(got, mgl32.Vec3{0, 0, -1}, tolerance) {
		t.Fatalf("blocked move left body at %v", got)
	}
	if !c.Collided() {
		t.Fatalf("expected Collided to report the blocking index")
	}
}

func TestUnboundMovePanics(t *testing.T) {
	r := NewResolver(camera.NewCameraController(camera.NewCamera()), quietLogger())

	defer func() {
		rec := recover()
		err, ok := rec.(error)
		if !ok || !errors.Is(err, ErrCollisionUnbound) || !errors.Is(err, ErrUnbound) {
			t.Fatalf("expected unbound panic, got %v", rec)
		}
	}()
	r.MoveForward(camera.DefaultStep)
}

func TestValidateReportsMissingCollaborators(t *testing.T) {
	cam := camera.NewCamera()
	c := NewController(camera.NewCameraController(cam), nil, WithLogger(quietLogger()))

	if err := c.EnableGravity(); !errors.Is(err, ErrCollisionUnbound) {
		t.Fatalf("expected ErrCollisionUnbound, got %v", err)
	}
	if c.GravityEnabled() {
		t.Fatalf("gravity enabled despite error")
	}

	c.BindCollision(floorIndex(cam))
	if _, err := c.Jump(); !errors.Is(err, ErrBodyUnbound) {
		t.Fatalf("expected ErrBodyUnbound, got %v", err)
	}

	c.BindBody(cam)
	if err := c.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := c.EnableGravity(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !c.GravityEnabled() {
		t.Fatalf("gravity not enabled")
	}
	c.DisableGravity()
	if c.GravityEnabled() {
		t.Fatalf("gravity still enabled")
	}
}

func TestGravityInertiaRamp(t *testing.T) {
	cam := camera.NewCamera(camera.WithPosition(0, 1000, 0))
	c := newTestController(cam, floorIndex(cam))
	g := c.Gravity()

	prev := float32(0)
	for i := 0; i < 40; i++ {
		g.Tick()
		if g.Inertia() < prev {
			t.Fatalf("tick %d: inertia decreased from %v to %v", i, prev, g.Inertia())
		}
		if !floatNear(g.TotalGravity(), 0.01+g.Inertia(), 1e-7) {
			t.Fatalf("tick %d: total %v, inertia %v", i, g.TotalGravity(), g.Inertia())
		}
		prev = g.Inertia()
	}
	if prev < 0.08 {
		t.Fatalf("inertia plateau %v below cap", prev)
	}
	g.Tick()
	if g.Inertia() != prev {
		t.Fatalf("inertia moved past plateau: %v -> %v", prev, g.Inertia())
	}
}

func TestGravityFallsTwicePerTickWhenBodyIsCamera(t *testing.T) {
	cam := camera.NewCamera(camera.WithPosition(0, 5, 0))
	moves := 0
	c := newTestController(cam, floorIndex(cam), camera.WithOnMove(func() { moves++ }))

	c.Gravity().Tick()
	total := c.TotalGravity()
	if !floatNear(total, 0.011, 1e-7) {
		t.Fatalf("first tick total %v", total)
	}
	if got := cam.Position().Y(); !floatNear(got, 5-2*total, tolerance) {
		t.Fatalf("y = %v, want %v", got, 5-2*total)
	}
	if moves != 1 {
		t.Fatalf("expected one hooked move, got %d", moves)
	}
}

func TestGravityLandingResetsInertia(t *testing.T) {
	cam := camera.NewCamera(camera.WithPosition(0, 10, 0))
	blocked := false
	moves := 0
	c := newTestController(cam, blocking(&blocked, cam), camera.WithOnMove(func() { moves++ }))
	g := c.Gravity()

	for i := 0; i < 20; i++ {
		g.Tick()
	}
	if g.Inertia() == 0 {
		t.Fatalf("expected inertia to build while falling")
	}

	blocked = true
	before, movesBefore := cam.Position(), moves
	g.Tick()
	if g.Inertia() != 0 {
		t.Fatalf("inertia %v after landing, want 0", g.Inertia())
	}
	if got := cam.Position(); !vecNear(got, before, tolerance) {
		t.Fatalf("landing moved body from %v to %v", before, got)
	}
	if moves != movesBefore {
		t.Fatalf("raw probe fired move hook")
	}
}

func TestGravityComesToRestAboveFloor(t *testing.T) {
	cam := camera.NewCamera(camera.WithPosition(0, 5, 0))
	c := newTestController(cam, floorIndex(cam))
	g := c.Gravity()

	for i := 0; i < 2000; i++ {
		g.Tick()
	}
	y := cam.Position().Y()
	if y <= 0 || y > 0.011+tolerance {
		t.Fatalf("rest y = %v, want (0, 0.011]", y)
	}
	if g.Inertia() != 0 {
		t.Fatalf("inertia %v at rest", g.Inertia())
	}
	g.Tick()
	if got := cam.Position().Y(); !floatNear(got, y, tolerance) {
		t.Fatalf("body moved at rest: %v -> %v", y, got)
	}
}

func TestJumpStepSequence(t *testing.T) {
	cam := camera.NewCamera(camera.WithPosition(0, 0.3, 0))
	var steps []float32
	c := newTestController(cam, floorIndex(cam), camera.WithPreMove(func(s float32) float32 {
		steps = append(steps, s)
		return s
	}))

	ok, err := c.Jump()
	if err != nil || !ok {
		t.Fatalf("Jump() = %v, %v", ok, err)
	}
	if got := cam.Position().Y(); !floatNear(got, 0.3, tolerance) {
		t.Fatalf("ground probe left body at %v", got)
	}
	if !c.Jumping() {
		t.Fatalf("expected jump in progress")
	}

	for i := 0; i < 14; i++ {
		c.JumpLoop().Tick()
	}
	if len(steps) != 14 {
		t.Fatalf("expected 14 upward moves, got %d: %v", len(steps), steps)
	}
	for i := 0; i < 13; i++ {
		want := 0.25 - 0.02*float32(i)
		if !floatNear(steps[i], want, tolerance) {
			t.Fatalf("step %d = %v, want %v", i, steps[i], want)
		}
	}
	if last := steps[13]; last >= 0 || !floatNear(last, -0.01, tolerance) {
		t.Fatalf("final step %v, want -0.01", last)
	}
	if c.Jumping() {
		t.Fatalf("jump did not stop")
	}
	if c.Impulse() != 0.25 {
		t.Fatalf("impulse %v not rearmed", c.Impulse())
	}
}

func TestJumpResetsInertia(t *testing.T) {
	cam := camera.NewCamera(camera.WithPosition(0, 3, 0))
	c := newTestController(cam, floorIndex(cam))
	for i := 0; i < 5; i++ {
		c.Gravity().Tick()
	}
	if c.Inertia() == 0 {
		t.Fatalf("expected inertia while falling")
	}

	cam.SetPosition(mgl32.Vec3{0, 0.3, 0})
	if ok, _ := c.Jump(); !ok {
		t.Fatalf("grounded jump refused")
	}
	if c.Inertia() != 0 {
		t.Fatalf("inertia %v after jump", c.Inertia())
	}
}

func TestAirborneJumpIsNoop(t *testing.T) {
	cam := camera.NewCamera(camera.WithPosition(0, 2, 0))
	c := newTestController(cam, floorIndex(cam))
	for i := 0; i < 3; i++ {
		c.Gravity().Tick()
	}
	pos, inertia := cam.Position(), c.Inertia()

	ok, err := c.Jump()
	if err != nil || ok {
		t.Fatalf("Jump() = %v, %v; want false, nil", ok, err)
	}
	if c.Jumping() || c.Inertia() != inertia || !vecNear(cam.Position(), pos, tolerance) {
		t.Fatalf("airborne jump changed state")
	}
}

func TestSetTuning(t *testing.T) {
	cam := camera.NewCamera()
	c := newTestController(cam, floorIndex(cam))

	bad := DefaultTuning()
	bad.JumpDecay = 0
	if err := c.SetTuning(bad); err == nil {
		t.Fatalf("expected invalid tuning to be rejected")
	}

	good := DefaultTuning()
	good.JumpImpulse = 0.4
	if err := c.SetTuning(good); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Impulse() != 0.4 {
		t.Fatalf("idle impulse %v not rearmed", c.Impulse())
	}
}

func TestSetDefaultOrientsCamera(t *testing.T) {
	cam := camera.NewCamera()
	c := newTestController(cam, floorIndex(cam))
	c.SetDefault(0, 0)

	if got := cam.WorldDirection(); !vecNear(got, common.WorldForward, tolerance) {
		t.Fatalf("direction %v, want %v", got, common.WorldForward)
	}
}

func TestRebindReplacesConstructionCollaborators(t *testing.T) {
	cam := camera.NewCamera()
	neverBlocked, alwaysBlocked := false, true
	c := newTestController(cam, blocking(&neverBlocked, cam))
	if c.Collided() {
		t.Fatalf("construction index should not collide")
	}

	c.BindCollision(blocking(&alwaysBlocked, cam))
	if !c.Collided() {
		t.Fatalf("rebound index was ignored")
	}
	c.MoveForward(1)
	if got := cam.Position(); !vecNear(got, mgl32.Vec3{}, tolerance) {
		t.Fatalf("move should be reverted by the rebound index, body at %v", got)
	}

	other := camera.NewCamera()
	other.SetPosition(mgl32.Vec3{5, 5, 5})
	c.BindBody(other)
	c.BindCollision(floorIndex(other))
	if c.Collided() {
		t.Fatalf("rebound body above the floor should not collide")
	}
}

func TestResolvedMoveAfterQuarterYaw(t *testing.T) {
	cam := camera.NewCamera()
	camera.UpdateOrientation(cam, math32.Pi/2, 0)
	blocked := false
	c := newTestController(cam, blocking(&blocked, cam))

	c.MoveForward(1)
	if got := cam.Position(); !vecNear(got, mgl32.Vec3{-1, 0, 0}, tolerance) {
		t.Fatalf("forward after quarter yaw should reach -X, got %v", got)
	}
}
