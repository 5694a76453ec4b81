package physics

import (
	"github.com/Carmen-Shannon/oxy-fpscam/common"
	"github.com/Carmen-Shannon/oxy-fpscam/engine/loop"
	"github.com/sirupsen/logrus"
)

// Gravity is the falling loop. While enabled it runs once per frame: it ramps
// inertia, probes a raw drop of the body, and either lands (undoing the drop and
// resetting inertia) or follows up with a collision-resolved downward move.
// It never stops by itself; Disable is the only way back to idle.
type Gravity struct {
	resolver *Resolver
	tuning   *Tuning
	inertia  float32
	total    float32
	task     *loop.Task
	log      logrus.FieldLogger
}

func newGravity(r *Resolver, sched loop.Scheduler, tuning *Tuning, log logrus.FieldLogger) *Gravity {
	g := &Gravity{resolver: r, tuning: tuning, log: log}
	g.task = loop.NewTask(sched, func(*loop.Task) { g.step() })
	return g
}

// Enable starts falling. It fails if the collision index or body is unbound.
func (g *Gravity) Enable() error {
	if err := g.resolver.Validate(); err != nil {
		g.log.WithError(err).Error("cannot enable gravity")
		return err
	}
	if !g.task.Running() {
		g.log.Info("gravity enabled")
	}
	g.task.Start()
	return nil
}

// Disable stops falling before the next frame. Inertia is kept.
func (g *Gravity) Disable() {
	if g.task.Running() {
		g.log.Info("gravity disabled")
	}
	g.task.Stop()
}

// Enabled reports whether the loop is running.
func (g *Gravity) Enabled() bool {
	return g.task.Running()
}

// Tick runs one gravity step immediately, whether or not the loop is enabled.
func (g *Gravity) Tick() {
	g.task.Tick()
}

// Inertia returns the current fall acceleration ramp.
func (g *Gravity) Inertia() float32 {
	return g.inertia
}

// TotalGravity returns the fall distance computed on the most recent tick.
func (g *Gravity) TotalGravity() float32 {
	return g.total
}

// ResetInertia zeroes the ramp, as on landing.
func (g *Gravity) ResetInertia() {
	g.inertia = 0
}

func (g *Gravity) step() {
	r := g.resolver
	r.mustBeBound()

	g.advanceInertia()
	g.total = g.tuning.BaseFall + g.inertia

	// Raw probe: drop the body directly, outside the mover and its hooks.
	body := r.body
	body.SetPosition(common.Lift(body.Position(), -g.total))
	if len(r.index.Query(body)) != 0 {
		body.SetPosition(common.Lift(body.Position(), g.total))
		if g.inertia > g.tuning.InertiaSlowStep {
			g.log.WithField("fall", g.total).Debug("landed")
		}
		g.inertia = 0
		return
	}

	// Second, independent collision-resolved step through the mover.
	r.MoveDown(g.total)
}

// advanceInertia ramps slowly, then quickly, then holds at the cap.
func (g *Gravity) advanceInertia() {
	t := g.tuning
	switch {
	case g.inertia < t.InertiaSlowLimit:
		g.inertia += t.InertiaSlowStep
	case g.inertia < t.InertiaCap:
		g.inertia += t.InertiaFastStep
	}
}
