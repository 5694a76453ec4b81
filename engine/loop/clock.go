package loop

import (
	"github.com/elliotchance/orderedmap/v2"
)

// Handle identifies a callback registered with a Scheduler. The zero Handle is never issued.
type Handle uint64

// FrameFunc is invoked once per frame with the time since the previous frame in seconds.
type FrameFunc func(deltaTime float32)

// Scheduler is the minimal frame clock contract consumed by repeating tasks.
type Scheduler interface {
	// Schedule registers fn to run once per frame until cancelled.
	//
	// Parameters:
	//   - fn: the per-frame callback
	//
	// Returns:
	//   - Handle: token used to cancel the registration
	Schedule(fn FrameFunc) Handle

	// Cancel removes a registration. Cancelling an unknown or already cancelled handle is a no-op.
	//
	// Parameters:
	//   - h: the handle returned by Schedule
	Cancel(h Handle)
}

// FrameClock is a Scheduler driven by an explicit Advance call, normally from the engine tick.
// Callbacks run in the order they were scheduled. A FrameClock is not safe for concurrent use;
// it must be advanced and mutated from a single goroutine.
type FrameClock interface {
	Scheduler

	// Advance runs one frame. Callbacks cancelled earlier in the same frame are skipped;
	// callbacks scheduled during the frame first run on the next one.
	//
	// Parameters:
	//   - deltaTime: seconds since the previous frame
	Advance(deltaTime float32)

	// Frame returns the number of frames advanced so far.
	//
	// Returns:
	//   - uint64: completed frame count
	Frame() uint64

	// Len returns the number of active registrations.
	//
	// Returns:
	//   - int: registered callback count
	Len() int
}

type frameClockImpl struct {
	callbacks *orderedmap.OrderedMap[Handle, FrameFunc]
	next      Handle
	frame     uint64
}

var _ FrameClock = &frameClockImpl{}

// NewFrameClock creates an empty FrameClock.
//
// Returns:
//   - FrameClock: the new clock
func NewFrameClock() FrameClock {
	return &frameClockImpl{
		callbacks: orderedmap.NewOrderedMap[Handle, FrameFunc](),
	}
}

func (c *frameClockImpl) Schedule(fn FrameFunc) Handle {
	c.next++
	c.callbacks.Set(c.next, fn)
	return c.next
}

func (c *frameClockImpl) Cancel(h Handle) {
	c.callbacks.Delete(h)
}

func (c *frameClockImpl) Advance(deltaTime float32) {
	// Snapshot the keys so callbacks may schedule or cancel freely while the frame runs.
	for _, h := range c.callbacks.Keys() {
		fn, ok := c.callbacks.Get(h)
		if !ok {
			continue
		}
		fn(deltaTime)
	}
	c.frame++
}

func (c *frameClockImpl) Frame() uint64 {
	return c.frame
}

func (c *frameClockImpl) Len() int {
	return c.callbacks.Len()
}
