package physics

import (
	"errors"
	"fmt"
)

// Tuning holds the constants of the gravity and jump schedules.
type Tuning struct {
	// BaseFall is the fall distance per tick before inertia is added.
	BaseFall float32 `yaml:"base_fall"`
	// InertiaSlowStep is added per tick while inertia is below InertiaSlowLimit.
	InertiaSlowStep float32 `yaml:"inertia_slow_step"`
	// InertiaSlowLimit is where the ramp switches to InertiaFastStep.
	InertiaSlowLimit float32 `yaml:"inertia_slow_limit"`
	// InertiaFastStep is added per tick while inertia is below InertiaCap.
	InertiaFastStep float32 `yaml:"inertia_fast_step"`
	// InertiaCap stops the ramp once reached.
	InertiaCap float32 `yaml:"inertia_cap"`
	// JumpImpulse is the first upward step of a jump.
	JumpImpulse float32 `yaml:"jump_impulse"`
	// JumpDecay is subtracted from the upward step each tick.
	JumpDecay float32 `yaml:"jump_decay"`
	// GroundProbe is how far below the body to look for ground before jumping.
	GroundProbe float32 `yaml:"ground_probe"`
}

// DefaultTuning returns the stock schedule: a fall that accelerates from 0.011 to
// roughly 0.09 per tick, and a jump that starts at 0.25 and decays by 0.02 per tick.
func DefaultTuning() Tuning {
	return Tuning{
		BaseFall:         0.01,
		InertiaSlowStep:  0.001,
		InertiaSlowLimit: 0.01,
		InertiaFastStep:  0.005,
		InertiaCap:       0.08,
		JumpImpulse:      0.25,
		JumpDecay:        0.02,
		GroundProbe:      0.5,
	}
}

// Validate rejects schedules that would never terminate or would run backwards.
func (t Tuning) Validate() error {
	var errs []error
	if t.BaseFall < 0 {
		errs = append(errs, fmt.Errorf("base_fall must be >= 0, got %v", t.BaseFall))
	}
	if t.InertiaSlowStep < 0 || t.InertiaFastStep < 0 {
		errs = append(errs, errors.New("inertia steps must be >= 0"))
	}
	if t.InertiaSlowLimit > t.InertiaCap {
		errs = append(errs, fmt.Errorf("inertia_slow_limit %v exceeds inertia_cap %v", t.InertiaSlowLimit, t.InertiaCap))
	}
	if t.JumpDecay <= 0 {
		errs = append(errs, fmt.Errorf("jump_decay must be > 0, got %v", t.JumpDecay))
	}
	if t.JumpImpulse < 0 {
		errs = append(errs, fmt.Errorf("jump_impulse must be >= 0, got %v", t.JumpImpulse))
	}
	if t.GroundProbe <= 0 {
		errs = append(errs, fmt.Errorf("ground_probe must be > 0, got %v", t.GroundProbe))
	}
	return errors.Join(errs...)
}
