package camera

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

const tolerance = 1e-5

func TestOrientationFacing(t *testing.T) {
	cases := []struct {
		name       string
		yaw, pitch float32
		want       mgl32.Vec3
	}{
		{"rest", 0, 0, mgl32.Vec3{0, 0, -1}},
		{"yaw quarter", math32.Pi / 2, 0, mgl32.Vec3{-1, 0, 0}},
		{"pitch up", 0, math32.Pi / 4, mgl32.Vec3{0, math32.Sqrt2 / 2, -math32.Sqrt2 / 2}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cam := NewCamera()
			UpdateOrientation(cam, tc.yaw, tc.pitch)
			if got := cam.WorldDirection(); !vecNear(got, tc.want, tolerance) {
				t.Fatalf("expected direction %v, got %v", tc.want, got)
			}
		})
	}
}

func TestForwardSpeedIndependentOfPitch(t *testing.T) {
	for pitch := float32(-1.5); pitch <= 1.5; pitch += 0.1 {
		cam := NewCamera()
		UpdateOrientation(cam, 0.7, pitch)
		cc := NewCameraController(cam)

		cc.MoveForward(DefaultStep)
		d := cam.Position()
		if !floatNear(d.Len(), DefaultStep, tolerance) {
			t.Fatalf("pitch %v: expected displacement %v, got %v", pitch, DefaultStep, d.Len())
		}
		if d.Y() != 0 {
			t.Fatalf("pitch %v: forward move changed height to %v", pitch, d.Y())
		}
	}
}

func TestInversePrimitivesRestorePosition(t *testing.T) {
	start := mgl32.Vec3{1, 2, 3}
	// A transform that is not odd: f(-s) != -f(s).
	clamp := func(s float32) float32 { return max(0, min(s, 0.1)) }

	pairs := []struct {
		name          string
		apply, invert func(Mover, float32)
	}{
		{"forward/back", Mover.MoveForward, Mover.MoveBack},
		{"back/forward", Mover.MoveBack, Mover.MoveForward},
		{"left/right", Mover.MoveLeft, Mover.MoveRight},
		{"right/left", Mover.MoveRight, Mover.MoveLeft},
		{"up/down", Mover.MoveUp, Mover.MoveDown},
		{"down/up", Mover.MoveDown, Mover.MoveUp},
	}
	for _, p := range pairs {
		for _, step := range []float32{0.01, DefaultStep, 0.5, 3} {
			cam := NewCamera(WithPosition(start[0], start[1], start[2]))
			UpdateOrientation(cam, 0.4, -0.3)
			cc := NewCameraController(cam, WithPreMove(clamp))

			p.apply(cc, step)
			if vecNear(cam.Position(), start, tolerance) {
				t.Fatalf("%s step %v: move had no effect", p.name, step)
			}
			p.invert(cc, step)
			if got := cam.Position(); !vecNear(got, start, tolerance) {
				t.Fatalf("%s step %v: expected %v after inverse, got %v", p.name, step, start, got)
			}
		}
	}
}

func TestLateralAndVerticalAxes(t *testing.T) {
	cam := NewCamera()
	UpdateOrientation(cam, math32.Pi/2, 0.5)
	cc := NewCameraController(cam)

	cc.MoveRight(1)
	// Facing -X after a quarter yaw, so local right is -Z.
	if got := cam.Position(); !vecNear(got, mgl32.Vec3{0, 0, -1}, tolerance) {
		t.Fatalf("expected right move to -Z, got %v", got)
	}

	cam.SetPosition(mgl32.Vec3{})
	cc.MoveUp(DefaultVerticalStep)
	if got := cam.Position(); !vecNear(got, mgl32.Vec3{0, DefaultVerticalStep, 0}, tolerance) {
		t.Fatalf("expected straight vertical move, got %v", got)
	}
}

func TestHooks(t *testing.T) {
	cam := NewCamera()
	moves := 0
	cc := NewCameraController(cam,
		WithPreMove(func(s float32) float32 { return s * 2 }),
		WithOnMove(func() { moves++ }),
	)

	cc.MoveUp(1)
	if got := cam.Position().Y(); !floatNear(got, 2, tolerance) {
		t.Fatalf("expected pre-move transform to double the step, got %v", got)
	}
	cc.MoveLeft(1)
	if moves != 2 {
		t.Fatalf("expected 2 post-move notifications, got %d", moves)
	}

	cc.SetPreMove(nil)
	cc.SetOnMove(nil)
	cc.MoveDown(2)
	if got := cam.Position().Y(); !floatNear(got, 0, tolerance) {
		t.Fatalf("expected identity transform after reset, got %v", got)
	}
}

func TestCanMoveLock(t *testing.T) {
	cam := NewCamera()
	moves := 0
	cc := NewCameraController(cam, WithCanMove(false), WithOnMove(func() { moves++ }))

	cc.MoveForward(1)
	cc.MoveUp(1)
	if cam.Position() != (mgl32.Vec3{}) || moves != 0 {
		t.Fatalf("locked controller moved: pos %v, hooks %d", cam.Position(), moves)
	}

	cc.SetCanMove(true)
	cc.MoveUp(1)
	if !cc.CanMove() || moves != 1 {
		t.Fatalf("unlocked controller did not move")
	}
}

func TestViewMatrixFollowsCamera(t *testing.T) {
	cam := NewCamera(WithPosition(0, 2, 5), WithAspect(16.0/9.0))
	UpdateOrientation(cam, 0.3, -0.2)

	// The camera's own position must land on the view-space origin.
	p := cam.Position()
	v := cam.ViewMatrix().Mul4x1(p.Vec4(1))
	if !vecNear(v.Vec3(), mgl32.Vec3{}, 1e-4) {
		t.Fatalf("expected eye at view origin, got %v", v)
	}

	// A point straight ahead lies on the view -Z axis.
	ahead := p.Add(cam.WorldDirection().Mul(3))
	v = cam.ViewMatrix().Mul4x1(ahead.Vec4(1))
	if !vecNear(v.Vec3(), mgl32.Vec3{0, 0, -3}, 1e-4) {
		t.Fatalf("expected point ahead at (0,0,-3), got %v", v)
	}

	want := cam.ProjectionMatrix().Mul4(cam.ViewMatrix())
	if !matNear(cam.ViewProjectionMatrix(), want, 1e-5) {
		t.Fatalf("view-projection out of sync")
	}
}

func TestBBoxFollowsPosition(t *testing.T) {
	cam := NewCamera(WithHalfExtents(0.3, 0.9, 0.3), WithPosition(1, 1, 1))
	bb := cam.BBox()
	if !vecNear(bb.Min(), mgl32.Vec3{0.7, 0.1, 0.7}, tolerance) ||
		!vecNear(bb.Max(), mgl32.Vec3{1.3, 1.9, 1.3}, tolerance) {
		t.Fatalf("unexpected box %v..%v", bb.Min(), bb.Max())
	}
}

func TestQuarterYawResidueCompares(t *testing.T) {
	cam := NewCamera()
	UpdateOrientation(cam, math32.Pi/2, 0)

	// cos(pi/2) in float32 leaves ~1e-7 in the component that should be zero.
	want := mgl32.Vec3{-1, 0, 0}
	if !vecNear(cam.WorldDirection(), want, tolerance) {
		t.Fatalf("expected %v, got %v", want, cam.WorldDirection())
	}
	if !floatNear(math32.Cos(math32.Pi/2), 0, tolerance) {
		t.Fatalf("expected residue within tolerance of zero")
	}
	if vecNear(mgl32.Vec3{0, 0, 2 * tolerance}, mgl32.Vec3{}, tolerance) {
		t.Fatalf("vecNear accepted an offset beyond tolerance")
	}
}
