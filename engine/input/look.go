package input

import (
	"github.com/Carmen-Shannon/oxy-fpscam/common"
	"github.com/chewxy/math32"
)

// DefaultSensitivity converts pointer pixels to radians.
const DefaultSensitivity float32 = 0.005

// Look accumulates pointer deltas into first-person yaw and pitch.
// Pitch is clamped so the view never flips over the poles.
// Panning starts disabled; call Enable once the host is ready to take input.
type Look struct {
	yaw, pitch  float32
	sensitivity float32
	maxPitch    float32
	enabled     bool
}

// LookOption is a functional option for configuring a Look.
type LookOption func(*Look)

// WithSensitivity sets the radians-per-pixel factor.
//
// Parameters:
//   - s: sensitivity multiplier
//
// Returns:
//   - LookOption: functional option to set the sensitivity
func WithSensitivity(s float32) LookOption {
	return func(l *Look) {
		l.sensitivity = s
	}
}

// WithAngles sets the starting yaw and pitch.
//
// Parameters:
//   - yaw, pitch: angles in radians
//
// Returns:
//   - LookOption: functional option to set the initial angles
func WithAngles(yaw, pitch float32) LookOption {
	return func(l *Look) {
		l.yaw, l.pitch = yaw, pitch
	}
}

// WithMaxPitch sets the absolute pitch limit.
//
// Parameters:
//   - limit: maximum absolute pitch in radians
//
// Returns:
//   - LookOption: functional option to set the pitch limit
func WithMaxPitch(limit float32) LookOption {
	return func(l *Look) {
		l.maxPitch = math32.Abs(limit)
	}
}

// NewLook creates a Look facing yaw = π/2, pitch = -π/2 with the default sensitivity.
//
// Parameters:
//   - options: functional options to configure the look state
//
// Returns:
//   - *Look: the new look state, with panning disabled
func NewLook(options ...LookOption) *Look {
	l := &Look{
		yaw:         common.RadianHalf,
		pitch:       -common.RadianHalf,
		sensitivity: DefaultSensitivity,
		maxPitch:    common.RadianHalf,
	}
	for _, option := range options {
		option(l)
	}
	l.pitch = common.Clamp(l.pitch, -l.maxPitch, l.maxPitch)
	return l
}

// Apply turns a pointer delta into a yaw/pitch change. Ignored while panning is disabled.
//
// Parameters:
//   - d: the pointer delta
func (l *Look) Apply(d PointerDelta) {
	if !l.enabled {
		return
	}
	l.yaw += common.AngleDelta(-d.X, l.sensitivity)
	l.pitch = common.Clamp(l.pitch+common.AngleDelta(d.Y, l.sensitivity), -l.maxPitch, l.maxPitch)
}

// SetDefault jumps straight to the given angles.
func (l *Look) SetDefault(yaw, pitch float32) {
	l.yaw = yaw
	l.pitch = common.Clamp(pitch, -l.maxPitch, l.maxPitch)
}

// SetSensitivity changes the radians-per-pixel factor.
func (l *Look) SetSensitivity(s float32) { l.sensitivity = s }

// Angles returns the current yaw and pitch in radians.
func (l *Look) Angles() (yaw, pitch float32) { return l.yaw, l.pitch }

// Enable allows pointer deltas to pan the view.
func (l *Look) Enable() { l.enabled = true }

// Disable stops pointer deltas from panning the view.
func (l *Look) Disable() { l.enabled = false }

// Enabled reports whether panning is allowed.
func (l *Look) Enabled() bool { return l.enabled }
