package physics

import (
	"github.com/Carmen-Shannon/oxy-fpscam/common"
	"github.com/Carmen-Shannon/oxy-fpscam/engine/loop"
	"github.com/sirupsen/logrus"
)

// Jump is the jump loop. A jump is a run of collision-resolved upward moves whose
// size shrinks by a fixed decay each frame; the loop stops itself on the first
// frame the step has gone negative and rearms the impulse for the next jump.
type Jump struct {
	resolver *Resolver
	gravity  *Gravity
	tuning   *Tuning
	impulse  float32
	task     *loop.Task
	log      logrus.FieldLogger
}

func newJump(r *Resolver, g *Gravity, sched loop.Scheduler, tuning *Tuning, log logrus.FieldLogger) *Jump {
	j := &Jump{resolver: r, gravity: g, tuning: tuning, impulse: tuning.JumpImpulse, log: log}
	j.task = loop.NewTask(sched, j.step)
	return j
}

// Jump starts a jump if the body is standing on something. It lowers the body by the
// ground probe distance, checks for collision, and always restores the body before
// returning. An airborne body leaves everything unchanged.
//
// Returns:
//   - bool: true if a jump started (or one was already in progress)
//   - error: a missing-collaborator error
func (j *Jump) Jump() (bool, error) {
	r := j.resolver
	if err := r.Validate(); err != nil {
		j.log.WithError(err).Error("cannot jump")
		return false, err
	}

	probe := j.tuning.GroundProbe
	body := r.body
	body.SetPosition(common.Lift(body.Position(), -probe))
	grounded := len(r.index.Query(body)) != 0
	body.SetPosition(common.Lift(body.Position(), probe))

	if !grounded {
		j.log.Debug("jump ignored: airborne")
		return false, nil
	}
	j.gravity.ResetInertia()
	if !j.task.Running() {
		j.log.WithField("impulse", j.impulse).Debug("jump started")
	}
	j.task.Start()
	return true, nil
}

// Tick runs one jump step immediately, whether or not a jump is in progress.
func (j *Jump) Tick() {
	j.task.Tick()
}

// Jumping reports whether the loop is running.
func (j *Jump) Jumping() bool {
	return j.task.Running()
}

// Impulse returns the upward step the next tick will apply.
func (j *Jump) Impulse() float32 {
	return j.impulse
}

// Cancel stops a jump in progress and rearms the impulse.
func (j *Jump) Cancel() {
	j.task.Stop()
	j.impulse = j.tuning.JumpImpulse
}

func (j *Jump) step(t *loop.Task) {
	j.resolver.MoveUp(j.impulse)
	if j.impulse >= 0 {
		j.impulse -= j.tuning.JumpDecay
		return
	}
	j.impulse = j.tuning.JumpImpulse
	t.Stop()
}
