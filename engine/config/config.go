// Package config loads the controller's tunables from YAML and watches the file for edits.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/Carmen-Shannon/oxy-fpscam/common"
	"github.com/Carmen-Shannon/oxy-fpscam/engine/camera"
	"github.com/Carmen-Shannon/oxy-fpscam/engine/input"
	"github.com/Carmen-Shannon/oxy-fpscam/engine/physics"
	"gopkg.in/yaml.v3"
)

// Config is the full set of tunables. Keys missing from the file keep their defaults.
type Config struct {
	Physics  physics.Tuning `yaml:"physics"`
	Movement Movement       `yaml:"movement"`
	Input    Input          `yaml:"input"`
	Engine   Engine         `yaml:"engine"`
	World    World          `yaml:"world"`
}

// Movement holds the per-keypress step sizes.
type Movement struct {
	Step         float32 `yaml:"step"`
	VerticalStep float32 `yaml:"vertical_step"`
}

// Input holds look sensitivity and starting orientation.
type Input struct {
	Sensitivity float32 `yaml:"sensitivity"`
	MaxPitch    float32 `yaml:"max_pitch"`
	Yaw         float32 `yaml:"yaw"`
	Pitch       float32 `yaml:"pitch"`
}

// Engine holds window and tick settings.
type Engine struct {
	TickRate int    `yaml:"tick_rate"`
	Title    string `yaml:"title"`
	Width    int    `yaml:"width"`
	Height   int    `yaml:"height"`
}

// Box is an axis-aligned obstacle given by its centre and full size.
type Box struct {
	Position [3]float32 `yaml:"position"`
	Size     [3]float32 `yaml:"size"`
}

// World describes the demo scene: where the player spawns and what it collides with.
type World struct {
	Spawn      [3]float32 `yaml:"spawn"`
	BodySize   [3]float32 `yaml:"body_size"`
	HalfBounds float32    `yaml:"half_bounds"`
	Gravity    bool       `yaml:"gravity"`
	Obstacles  []Box      `yaml:"obstacles"`
}

// Default returns the stock configuration: the default physics schedule, the default
// step sizes and sensitivity, a 60 Hz tick, and a single floor slab under the spawn.
func Default() Config {
	return Config{
		Physics: physics.DefaultTuning(),
		Movement: Movement{
			Step:         camera.DefaultStep,
			VerticalStep: camera.DefaultVerticalStep,
		},
		Input: Input{
			Sensitivity: input.DefaultSensitivity,
			MaxPitch:    common.RadianHalf,
			Yaw:         0,
			Pitch:       0,
		},
		Engine: Engine{
			TickRate: 60,
			Title:    "oxy-fpscam",
			Width:    1280,
			Height:   720,
		},
		World: World{
			Spawn:      [3]float32{0, 5, 0},
			BodySize:   [3]float32{0.6, 1.8, 0.6},
			HalfBounds: 64,
			Gravity:    true,
			Obstacles: []Box{
				{Position: [3]float32{0, -0.5, 0}, Size: [3]float32{64, 1, 64}},
			},
		},
	}
}

// Load reads a YAML file over the defaults. An empty path returns the defaults.
//
// Parameters:
//   - path: the YAML file
//
// Returns:
//   - Config: the merged configuration
//   - error: a read, decode or validation error wrapping the path
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: load %s: %w", path, err)
	}
	return Parse(path, data)
}

// Parse decodes YAML over the defaults. name is used only in error messages.
func Parse(name string, data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("config: unmarshal %s: %w", name, err)
	}
	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("config: validate %s: %w", name, err)
	}
	return cfg, nil
}

// normalize replaces zero values that have no sensible meaning with their defaults.
func (c *Config) normalize() {
	def := Default()
	c.Movement.Step = common.Coalesce(c.Movement.Step, def.Movement.Step)
	c.Movement.VerticalStep = common.Coalesce(c.Movement.VerticalStep, def.Movement.VerticalStep)
	c.Input.Sensitivity = common.Coalesce(c.Input.Sensitivity, def.Input.Sensitivity)
	c.Input.MaxPitch = common.Coalesce(c.Input.MaxPitch, def.Input.MaxPitch)
	c.Engine.TickRate = common.Coalesce(c.Engine.TickRate, def.Engine.TickRate)
	c.Engine.Title = common.Coalesce(c.Engine.Title, def.Engine.Title)
	c.Engine.Width = common.Coalesce(c.Engine.Width, def.Engine.Width)
	c.Engine.Height = common.Coalesce(c.Engine.Height, def.Engine.Height)
	c.World.HalfBounds = common.Coalesce(c.World.HalfBounds, def.World.HalfBounds)
	if c.World.BodySize == [3]float32{} {
		c.World.BodySize = def.World.BodySize
	}
}

// Validate checks the physics schedule and the values that must be positive.
func (c Config) Validate() error {
	var errs []error
	if err := c.Physics.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("physics: %w", err))
	}
	if c.Movement.Step < 0 || c.Movement.VerticalStep < 0 {
		errs = append(errs, errors.New("movement: steps must be >= 0"))
	}
	if c.Engine.TickRate < 0 {
		errs = append(errs, fmt.Errorf("engine: tick_rate must be > 0, got %d", c.Engine.TickRate))
	}
	for i, b := range c.World.Obstacles {
		if b.Size[0] <= 0 || b.Size[1] <= 0 || b.Size[2] <= 0 {
			errs = append(errs, fmt.Errorf("world: obstacle %d has non-positive size %v", i, b.Size))
		}
	}
	return errors.Join(errs...)
}
