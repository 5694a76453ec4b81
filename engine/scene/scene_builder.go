package scene

import (
	"github.com/Carmen-Shannon/oxy-fpscam/engine/config"
	"github.com/Carmen-Shannon/oxy-fpscam/engine/game_object"
	"github.com/sirupsen/logrus"
)

// SceneBuilderOption is a functional option for configuring a Scene.
// Use the With* functions to create options.
type SceneBuilderOption func(s *scene)

// WithName sets the scene name used in log fields.
//
// Parameters:
//   - name: the scene name
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithName(name string) SceneBuilderOption {
	return func(s *scene) {
		s.name = name
	}
}

// WithActive sets whether the scene starts active.
//
// Parameters:
//   - active: whether the scene is active
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithActive(active bool) SceneBuilderOption {
	return func(s *scene) {
		s.active = active
	}
}

// WithConfig sets the configuration the scene is built from.
//
// Parameters:
//   - cfg: the configuration
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithConfig(cfg config.Config) SceneBuilderOption {
	return func(s *scene) {
		s.cfg = cfg
	}
}

// WithObjects adds obstacles on top of those listed in the configuration.
//
// Parameters:
//   - objects: the obstacles to add
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithObjects(objects ...game_object.GameObject) SceneBuilderOption {
	return func(s *scene) {
		s.objects = append(s.objects, objects...)
	}
}

// WithPanning sets whether pointer drags turn the camera. Defaults to true.
//
// Parameters:
//   - enabled: false to ignore pointer input
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithPanning(enabled bool) SceneBuilderOption {
	return func(s *scene) {
		s.panning = enabled
	}
}

// WithLogger sets the logger for the scene and its controller.
//
// Parameters:
//   - log: the logger
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithLogger(log logrus.FieldLogger) SceneBuilderOption {
	return func(s *scene) {
		s.log = log
	}
}
