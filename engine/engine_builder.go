package engine

import (
	"time"

	"github.com/Carmen-Shannon/oxy-fpscam/engine/profiler"
	"github.com/Carmen-Shannon/oxy-fpscam/engine/scene"
	"github.com/sirupsen/logrus"
)

// EngineBuilderOption is a functional option for configuring an Engine.
type EngineBuilderOption func(*engine)

// WithProfiling sets whether the profiler reports from the start.
//
// Parameters:
//   - enabled: true to report tick rate and memory stats
//
// Returns:
//   - EngineBuilderOption: functional option to set profiling
func WithProfiling(enabled bool) EngineBuilderOption {
	return func(e *engine) {
		e.profilingEnabled = enabled
	}
}

// WithProfiler replaces the default profiler.
//
// Parameters:
//   - p: the profiler
//
// Returns:
//   - EngineBuilderOption: functional option to set the profiler
func WithProfiler(p *profiler.Profiler) EngineBuilderOption {
	return func(e *engine) {
		e.profiler = p
	}
}

// WithTickRate sets the tick rate in ticks per second. Values <= 0 mean 60.
//
// Parameters:
//   - fps: ticks per second
//
// Returns:
//   - EngineBuilderOption: functional option to set the tick rate
func WithTickRate(fps float64) EngineBuilderOption {
	return func(e *engine) {
		if fps <= 0 {
			fps = 60.0
		}
		e.engineTickRate = time.Duration(float64(time.Second) / fps)
	}
}

// WithWindow sets the window the engine runs in. Without one the engine runs headless.
//
// Parameters:
//   - w: the window
//
// Returns:
//   - EngineBuilderOption: functional option to set the window
func WithWindow(w Window) EngineBuilderOption {
	return func(e *engine) {
		e.window = w
	}
}

// WithScene registers a scene at the given key.
//
// Parameters:
//   - key: the ordering key
//   - s: the scene
//
// Returns:
//   - EngineBuilderOption: functional option to add the scene
func WithScene(key int, s scene.Scene) EngineBuilderOption {
	return func(e *engine) {
		e.scenes[key] = s
	}
}

// WithRenderFrameLimit sets the render frame rate cap. Values <= 0 uncap the loop.
//
// Parameters:
//   - fps: maximum frames per second
//
// Returns:
//   - EngineBuilderOption: functional option to set the frame cap
func WithRenderFrameLimit(fps float64) EngineBuilderOption {
	return func(e *engine) {
		if fps <= 0 {
			e.renderFrameLimit = 0
			return
		}
		e.renderFrameLimit = time.Duration(float64(time.Second) / fps)
	}
}

// WithLogger sets the engine logger.
//
// Parameters:
//   - log: the logger
//
// Returns:
//   - EngineBuilderOption: functional option to set the logger
func WithLogger(log logrus.FieldLogger) EngineBuilderOption {
	return func(e *engine) {
		e.log = log
	}
}
