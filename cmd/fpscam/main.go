// Command fpscam runs the first-person camera controller in a window: WASD to walk,
// E/Q to fly, Space to jump, G to toggle gravity, left Ctrl to move slowly, and a
// mouse drag to look around.
package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Carmen-Shannon/oxy-fpscam/engine"
	"github.com/Carmen-Shannon/oxy-fpscam/engine/config"
	"github.com/Carmen-Shannon/oxy-fpscam/engine/scene"
	"github.com/Carmen-Shannon/oxy-fpscam/engine/window"
	"github.com/getsentry/sentry-go"
	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/sirupsen/logrus"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file; reloaded on change")
	debug := flag.Bool("debug", false, "enable debug logging and the profiler")
	sentryDSN := flag.String("sentry-dsn", os.Getenv("SENTRY_DSN"), "Sentry DSN for panic reports")
	statsAddr := flag.String("statsview", "", "serve live runtime stats on this address, e.g. localhost:8080")
	headless := flag.Bool("headless", false, "run without a window until interrupted")
	flag.Parse()

	lg := logrus.New()
	lg.Formatter = &logrus.TextFormatter{ForceColors: true}
	if *debug {
		lg.Level = logrus.DebugLevel
	}

	// Fatal exits without running deferred calls, so it must come before the sentry flush is deferred.
	cfg, err := config.Load(*configPath)
	if err != nil {
		lg.WithError(err).Fatal("unable to load config")
	}

	if *sentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: *sentryDSN}); err != nil {
			lg.WithError(err).Warn("sentry disabled")
		}
		defer sentry.Flush(2 * time.Second)
	}

	if *statsAddr != "" {
		// set configurations before calling `statsview.New()` method
		viewer.SetConfiguration(viewer.WithTheme(viewer.ThemeWesteros), viewer.WithAddr(*statsAddr))
		mgr := statsview.New()
		go mgr.Start()
		lg.WithField("addr", *statsAddr).Info("statsview listening")
	}

	s := scene.NewScene(
		scene.WithName("fpscam"),
		scene.WithConfig(cfg),
		scene.WithLogger(lg),
	)

	opts := []engine.EngineBuilderOption{
		engine.WithTickRate(float64(cfg.Engine.TickRate)),
		engine.WithScene(0, s),
		engine.WithLogger(lg),
		engine.WithProfiling(*debug),
	}
	var win window.Window
	if !*headless {
		win = window.NewWindow(
			window.WithTitle(cfg.Engine.Title),
			window.WithSize(cfg.Engine.Width, cfg.Engine.Height),
		)
		opts = append(opts, engine.WithWindow(win))
	}
	eng := engine.NewEngine(opts...)

	if win != nil {
		bindInput(eng, win, s)
	} else {
		quitOnSignal(eng, lg)
	}

	if *configPath != "" {
		w, err := config.NewWatcher(*configPath, lg)
		if err != nil {
			lg.WithError(err).Warn("config hot reload disabled")
		} else {
			defer w.Close()
			go reloadConfig(eng, s, w, lg)
		}
	}

	eng.SetRenderCallback(hud(s, lg))

	eng.Run()
	if win != nil {
		_ = win.Close()
	}
}

// bindInput forwards window events to the scene. Window callbacks run on the main
// thread, so every event is posted to the tick goroutine that owns the scene.
func bindInput(eng engine.Engine, win window.Window, s scene.Scene) {
	win.SetKeyDownCallback(func(keyCode uint32) {
		eng.Post(func() { s.KeyDown(keyCode) })
	})
	win.SetKeyUpCallback(func(keyCode uint32) {
		eng.Post(func() { s.KeyUp(keyCode) })
	})
	win.SetPointerDownCallback(func(id int64, x, y float32) {
		eng.Post(func() { s.PointerDown(id, x, y) })
	})
	win.SetPointerMoveCallback(func(id int64, x, y float32) {
		eng.Post(func() { s.PointerMove(id, x, y) })
	})
	win.SetPointerUpCallback(func(id int64) {
		eng.Post(func() { s.PointerUp(id) })
	})
}

func quitOnSignal(eng engine.Engine, lg logrus.FieldLogger) {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	go func() {
		lg.WithField("signal", <-sig).Info("shutting down")
		eng.Quit()
	}()
}

func reloadConfig(eng engine.Engine, s scene.Scene, w *config.Watcher, lg logrus.FieldLogger) {
	for {
		select {
		case cfg, ok := <-w.Updates:
			if !ok {
				return
			}
			eng.Post(func() {
				if err := s.ApplyConfig(cfg); err != nil {
					lg.WithError(err).Warn("config rejected")
					return
				}
				eng.SetTickRate(float64(cfg.Engine.TickRate))
			})
		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			lg.WithError(err).Warn("config watcher")
		}
	}
}

// hud logs the camera pose once a second at debug level. It runs on the render
// goroutine and only touches the camera, which is safe to read concurrently.
func hud(s scene.Scene, lg logrus.FieldLogger) func(float32) {
	var elapsed float32
	return func(dt float32) {
		elapsed += dt
		if elapsed < 1 {
			return
		}
		elapsed = 0
		cam := s.Camera()
		lg.WithFields(logrus.Fields{
			"position":  cam.Position(),
			"direction": cam.WorldDirection(),
		}).Debug("camera")
	}
}
