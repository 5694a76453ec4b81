package engine

import (
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Carmen-Shannon/oxy-fpscam/engine/profiler"
	"github.com/Carmen-Shannon/oxy-fpscam/engine/scene"
	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
)

// Window is the part of a platform window the engine drives. window.Window satisfies it.
type Window interface {
	// SetResizeCallback registers a function called when the framebuffer size changes.
	SetResizeCallback(callback func(width, height int))

	// ProcessMessages pumps the OS event loop until the window closes.
	ProcessMessages()
}

// engine implements the Engine interface.
// Coordinates the tick, render and window threads.
type engine struct {
	tickRateChannel chan time.Duration // Channel for dynamic tick rate updates

	running atomic.Bool
	wg      sync.WaitGroup

	quitChannel chan struct{}
	quitOnce    sync.Once // Ensures quitChannel is only closed once

	window Window

	profiler         *profiler.Profiler
	profilingEnabled bool

	engineTickRate time.Duration
	tickCallback   func(deltaTime float32)
	renderCallback func(deltaTime float32)

	scenes map[int]scene.Scene

	postMu sync.Mutex
	posted []func()
	ticks  atomic.Uint64

	renderFrameLimit time.Duration // minimum frame duration; 0 = uncapped

	log logrus.FieldLogger
}

// Engine is the main entry point for the engine.
// It runs a fixed-rate tick loop that advances every active scene, a render loop for
// host-side presentation, and the window's event loop.
type Engine interface {
	// Window returns the window the engine runs in, or nil when headless.
	//
	// Returns:
	//   - Window: the window instance
	Window() Window

	// EnableProfiler enables tick-rate and memory reporting to the log.
	EnableProfiler()

	// DisableProfiler disables profiler reporting.
	DisableProfiler()

	// SetTickRate sets the engine tick rate in ticks per second.
	// Every active scene advances one frame per tick.
	//
	// Parameters:
	//   - fps: target ticks per second (defaults to 60 if <= 0)
	SetTickRate(fps float64)

	// SetTickCallback registers the function called each engine tick after the scenes advance.
	//
	// Parameters:
	//   - callback: function to call at the configured tick rate, receiving the delta time in seconds
	SetTickCallback(callback func(deltaTime float32))

	// SetRenderCallback registers the function called each render frame.
	// It runs on its own goroutine and must only read thread-safe state such as the camera.
	//
	// Parameters:
	//   - callback: function to call each render frame, receiving the delta time in seconds
	SetRenderCallback(callback func(deltaTime float32))

	// SetRenderFrameLimit sets the render frame rate cap in frames per second.
	// Pass 0 to uncap the render loop.
	//
	// Parameters:
	//   - fps: maximum render frames per second (0 = uncapped)
	SetRenderFrameLimit(fps float64)

	// AddScene registers a scene at the given key. Scenes advance in ascending key order.
	// The registry is not locked: once Run has started, call this only from the tick
	// goroutine, e.g. inside a Post callback.
	//
	// Parameters:
	//   - key: the ordering key
	//   - s: the Scene to register
	AddScene(key int, s scene.Scene)

	// RemoveScene removes the scene at the given key.
	// Same threading rule as AddScene: before Run, or via Post while running.
	//
	// Parameters:
	//   - key: the key of the scene to remove
	RemoveScene(key int)

	// Scene retrieves the scene registered at the given key.
	// Returns nil if no scene exists at that key. Same threading rule as AddScene.
	//
	// Parameters:
	//   - key: the key of the scene to retrieve
	//
	// Returns:
	//   - scene.Scene: the scene at the key, or nil if not found
	Scene(key int) scene.Scene

	// Scenes returns a copy of all registered scenes. Same threading rule as AddScene.
	//
	// Returns:
	//   - map[int]scene.Scene: a copy of the scenes map
	Scenes() map[int]scene.Scene

	// Post queues fn to run on the tick goroutine at the start of the next tick.
	// Safe to call from any goroutine; window callbacks use it to hand input to the scenes.
	//
	// Parameters:
	//   - fn: the work to run
	Post(fn func())

	// Ticks returns the number of ticks completed so far.
	//
	// Returns:
	//   - uint64: tick count
	Ticks() uint64

	// Run starts the engine and blocks until the window closes or Quit is called.
	// With a window, Run must be called from the main thread.
	Run()

	// Quit signals all engine goroutines to stop.
	// Safe to call multiple times; subsequent calls are no-ops.
	Quit()
}

// NewEngine creates a new Engine instance with the provided options.
//
// Parameters:
//   - options: functional options for engine configuration (profiling, tick rate, etc.)
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		tickRateChannel:  make(chan time.Duration, 1),
		quitChannel:      make(chan struct{}),
		scenes:           make(map[int]scene.Scene),
		engineTickRate:   time.Second / 60,
		renderFrameLimit: time.Second / 60,
	}

	for _, opt := range options {
		opt(e)
	}
	if e.log == nil {
		e.log = logrus.StandardLogger()
	}
	if e.profiler == nil {
		e.profiler = profiler.NewProfiler(profiler.WithLogger(e.log))
	}

	if e.window != nil {
		e.window.SetResizeCallback(func(width, height int) {
			if height <= 0 {
				return
			}
			e.Post(func() {
				for _, s := range e.scenes {
					if c := s.Camera(); c != nil {
						c.SetAspect(float32(width) / float32(height))
					}
				}
			})
		})
	}

	return e
}

func (e *engine) Window() Window {
	return e.window
}

func (e *engine) Run() {
	e.running.Store(true)
	e.log.WithField("tick_rate", e.engineTickRate).Info("engine started")
	e.handle()
	if e.window != nil {
		e.window.ProcessMessages()
		e.signalQuit()
	}
	e.wg.Wait()
	e.running.Store(false)
	e.log.WithField("ticks", e.ticks.Load()).Info("engine stopped")
}

func (e *engine) Quit() {
	e.signalQuit()
}

// signalQuit closes the quit channel to signal all goroutines to exit.
func (e *engine) signalQuit() {
	e.quitOnce.Do(func() {
		close(e.quitChannel)
	})
}

// handle launches the tick, render, and quit goroutines.
// Each goroutine is tracked by the engine's WaitGroup.
func (e *engine) handle() {
	e.wg.Add(3)
	go e.handleEngine()
	go e.handleRender()
	go e.handleQuit()
}

// handleEngine runs the fixed-rate tick loop in its own goroutine. Each tick drains
// posted work, advances the active scenes in key order, then fires the tick callback.
// Exits when the quit channel is closed.
func (e *engine) handleEngine() {
	defer e.wg.Done()
	defer e.recoverLoop("tick")

	ticker := time.NewTicker(e.engineTickRate)
	defer ticker.Stop()

	lastTick := time.Now()

	for {
		select {
		case <-e.quitChannel:
			return
		case <-ticker.C:
			now := time.Now()
			dt := float32(now.Sub(lastTick).Seconds())
			lastTick = now
			e.tick(dt)
		case newRate := <-e.tickRateChannel:
			ticker.Reset(newRate)
			e.engineTickRate = newRate
		}
	}
}

func (e *engine) tick(dt float32) {
	e.postMu.Lock()
	posted := e.posted
	e.posted = nil
	e.postMu.Unlock()
	for _, fn := range posted {
		fn()
	}

	for _, k := range e.sortedKeys() {
		if s := e.scenes[k]; s.Active() {
			s.Update(dt)
		}
	}

	if e.tickCallback != nil {
		e.tickCallback(dt)
	}

	n := e.ticks.Add(1)
	if e.profilingEnabled && e.profiler != nil {
		e.profiler.Tick(n)
	}
}

// handleRender runs the render loop in its own goroutine, calling the render callback
// once per frame and honouring the frame limit.
func (e *engine) handleRender() {
	defer e.wg.Done()
	defer e.recoverLoop("render")

	lastRender := time.Now()

	for {
		select {
		case <-e.quitChannel:
			return
		default:
			now := time.Now()
			dt := float32(now.Sub(lastRender).Seconds())
			lastRender = now

			if e.renderCallback != nil {
				e.renderCallback(dt)
			}

			if e.renderFrameLimit > 0 {
				elapsed := time.Since(lastRender)
				if remaining := e.renderFrameLimit - elapsed; remaining > 0 {
					time.Sleep(remaining)
				}
			}
		}
	}
}

// handleQuit blocks until the quit channel is closed, then decrements the WaitGroup.
func (e *engine) handleQuit() {
	defer e.wg.Done()
	<-e.quitChannel
}

// recoverLoop keeps a panic in an engine goroutine from crashing the process: the
// panic is logged, reported to Sentry, and the engine is shut down.
func (e *engine) recoverLoop(loop string) {
	r := recover()
	if r == nil {
		return
	}
	e.log.WithField("loop", loop).Errorf("recovered from panic: %v", r)

	hub := sentry.CurrentHub().Clone()
	hub.ConfigureScope(func(scope *sentry.Scope) {
		scope.SetTag("loop", loop)
		scope.SetTag("ticks", fmt.Sprint(e.ticks.Load()))
	})
	hub.Recover(r)
	hub.Flush(2 * time.Second)

	e.signalQuit()
}

func (e *engine) sortedKeys() []int {
	keys := make([]int, 0, len(e.scenes))
	for k := range e.scenes {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

func (e *engine) EnableProfiler() {
	e.profilingEnabled = true
}

func (e *engine) DisableProfiler() {
	e.profilingEnabled = false
}

// SetTickRate sets the engine tick rate in ticks per second.
// If the engine is running, the change takes effect immediately.
func (e *engine) SetTickRate(fps float64) {
	if fps <= 0 {
		fps = 60
	}
	newRate := time.Duration(float64(time.Second) / fps)

	if !e.running.Load() {
		e.engineTickRate = newRate
		return
	}
	// Replace any pending update rather than block.
	select {
	case e.tickRateChannel <- newRate:
	default:
		select {
		case <-e.tickRateChannel:
		default:
		}
		e.tickRateChannel <- newRate
	}
}

func (e *engine) SetTickCallback(callback func(deltaTime float32)) {
	e.tickCallback = callback
}

func (e *engine) SetRenderCallback(callback func(deltaTime float32)) {
	e.renderCallback = callback
}

func (e *engine) SetRenderFrameLimit(fps float64) {
	if fps <= 0 {
		e.renderFrameLimit = 0
		return
	}
	e.renderFrameLimit = time.Duration(float64(time.Second) / fps)
}

func (e *engine) AddScene(key int, s scene.Scene) {
	e.scenes[key] = s
}

func (e *engine) RemoveScene(key int) {
	delete(e.scenes, key)
}

func (e *engine) Scene(key int) scene.Scene {
	return e.scenes[key]
}

func (e *engine) Scenes() map[int]scene.Scene {
	cp := make(map[int]scene.Scene, len(e.scenes))
	for k, v := range e.scenes {
		cp[k] = v
	}
	return cp
}

func (e *engine) Post(fn func()) {
	e.postMu.Lock()
	e.posted = append(e.posted, fn)
	e.postMu.Unlock()
}

func (e *engine) Ticks() uint64 {
	return e.ticks.Load()
}
