package engine

import (
	"io"
	"testing"
	"time"

	"github.com/Carmen-Shannon/oxy-fpscam/common"
	"github.com/Carmen-Shannon/oxy-fpscam/engine/config"
	"github.com/Carmen-Shannon/oxy-fpscam/engine/scene"
	"github.com/sirupsen/logrus"
)

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// runWithTimeout runs e and fails the test if it does not stop in time.
func runWithTimeout(t *testing.T, e Engine) {
	t.Helper()
	done := make(chan struct{})
	go func() {
		e.Run()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		e.Quit()
		t.Fatalf("engine did not stop")
	}
}

func TestEngineAdvancesScenesAndRunsPostedWork(t *testing.T) {
	cfg := config.Default()
	cfg.World.Gravity = false
	cfg.World.Spawn = [3]float32{0, 1, 0}
	s := scene.NewScene(scene.WithConfig(cfg), scene.WithLogger(quietLogger()))

	e := NewEngine(WithTickRate(500), WithScene(0, s), WithLogger(quietLogger()))
	e.Post(func() { s.KeyDown(common.KeyW) })

	var sawMove bool
	e.SetTickCallback(func(float32) {
		if s.Camera().Position().Z() < 0 {
			sawMove = true
		}
		if e.Ticks() >= 10 {
			e.Quit()
		}
	})
	runWithTimeout(t, e)

	if !sawMove {
		t.Fatalf("posted key press never moved the camera")
	}
	if s.Clock().Frame() < 10 {
		t.Fatalf("scene advanced %d frames", s.Clock().Frame())
	}
}

func TestEngineSkipsInactiveScenes(t *testing.T) {
	s := scene.NewScene(scene.WithActive(false), scene.WithLogger(quietLogger()))
	e := NewEngine(WithTickRate(500), WithScene(0, s), WithLogger(quietLogger()))
	e.SetTickCallback(func(float32) {
		if e.Ticks() >= 5 {
			e.Quit()
		}
	})
	runWithTimeout(t, e)
	if s.Clock().Frame() != 0 {
		t.Fatalf("inactive scene advanced")
	}
}

func TestEngineRecoversFromTickPanic(t *testing.T) {
	e := NewEngine(WithTickRate(500), WithLogger(quietLogger()))
	e.SetTickCallback(func(float32) { panic("boom") })
	runWithTimeout(t, e)
	if e.Ticks() != 0 {
		t.Fatalf("tick counted despite panic")
	}
}

func TestEngineSceneRegistry(t *testing.T) {
	e := NewEngine(WithLogger(quietLogger()))
	s := scene.NewScene(scene.WithLogger(quietLogger()))
	e.AddScene(3, s)
	if e.Scene(3) != s || len(e.Scenes()) != 1 {
		t.Fatalf("scene not registered")
	}
	e.RemoveScene(3)
	if e.Scene(3) != nil {
		t.Fatalf("scene not removed")
	}
	e.Quit()
	e.Quit()
}

func TestEngineAddsSceneThroughPostWhileRunning(t *testing.T) {
	e := NewEngine(WithTickRate(500), WithLogger(quietLogger()))
	late := scene.NewScene(scene.WithName("late"), scene.WithLogger(quietLogger()))

	e.SetTickCallback(func(float32) {
		if e.Ticks() == 2 {
			go e.Post(func() { e.AddScene(1, late) })
		}
		if late.Clock().Frame() >= 3 || e.Ticks() >= 500 {
			e.Quit()
		}
	})
	runWithTimeout(t, e)

	if late.Clock().Frame() < 3 {
		t.Fatalf("scene added via Post advanced %d frames", late.Clock().Frame())
	}
	if e.Scene(1) != late {
		t.Fatalf("scene added via Post not registered")
	}
}
