package loop

// Task is a cancellable, restartable per-frame job. It is created once and
// started and stopped any number of times; it never needs to be recreated.
//
// Tick runs the body directly and does not require a scheduler, which lets
// tests step a task deterministically.
type Task struct {
	sched   Scheduler
	body    func(t *Task)
	handle  Handle
	running bool
	ticks   uint64
}

// NewTask creates an idle task. sched may be nil, in which case Start only
// flips the running state and the owner is expected to call Tick itself.
//
// Parameters:
//   - sched: the frame clock the task registers with while running
//   - body: the per-frame work; it receives the task so it can stop itself
//
// Returns:
//   - *Task: the idle task
func NewTask(sched Scheduler, body func(t *Task)) *Task {
	return &Task{sched: sched, body: body}
}

// Start moves the task from idle to running. Starting a running task is a no-op,
// so a task is never registered with its scheduler twice.
func (t *Task) Start() {
	if t.running {
		return
	}
	t.running = true
	if t.sched != nil {
		t.handle = t.sched.Schedule(func(float32) { t.Tick() })
	}
}

// Stop moves the task back to idle. It takes effect before the next scheduled tick;
// a tick already in progress runs to completion.
func (t *Task) Stop() {
	if !t.running {
		return
	}
	t.running = false
	if t.sched != nil {
		t.sched.Cancel(t.handle)
		t.handle = 0
	}
}

// Tick runs the body once.
func (t *Task) Tick() {
	t.ticks++
	t.body(t)
}

// Running reports whether the task is started.
func (t *Task) Running() bool {
	return t.running
}

// Ticks returns how many times the body has run over the task's lifetime.
func (t *Task) Ticks() uint64 {
	return t.ticks
}
