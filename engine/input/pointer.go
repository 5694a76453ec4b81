package input

// PointerDelta is a relative pointer movement in pixels, measured as previous minus
// current position: X is positive when the pointer moved left, Y when it moved up.
type PointerDelta struct {
	X, Y float32
}

// PointerTracker follows a single active pointer or touch and turns absolute
// positions into relative deltas. While one pointer is held, presses and moves
// from any other pointer are ignored.
type PointerTracker struct {
	down         bool
	id           int64
	lastX, lastY float32
	onMove       func(PointerDelta)
}

// NewPointerTracker creates an idle tracker. onMove, if non-nil, receives every delta
// produced by Move.
//
// Parameters:
//   - onMove: callback for relative movement
//
// Returns:
//   - *PointerTracker: the idle tracker
func NewPointerTracker(onMove func(PointerDelta)) *PointerTracker {
	return &PointerTracker{onMove: onMove}
}

// Down latches pointer id at (x, y) unless another pointer is already held.
//
// Parameters:
//   - id: the pointer or touch identifier
//   - x, y: position in pixels
func (p *PointerTracker) Down(id int64, x, y float32) {
	if p.down {
		return
	}
	p.down = true
	p.id = id
	p.lastX, p.lastY = x, y
}

// Move records a new position for pointer id and reports the delta since the last one.
// Positions from a pointer other than the latched one produce no delta.
//
// Parameters:
//   - id: the pointer or touch identifier
//   - x, y: position in pixels
//
// Returns:
//   - PointerDelta: previous minus current position
//   - bool: false if the event was ignored
func (p *PointerTracker) Move(id int64, x, y float32) (PointerDelta, bool) {
	if !p.down || id != p.id {
		return PointerDelta{}, false
	}
	d := PointerDelta{X: p.lastX - x, Y: p.lastY - y}
	p.lastX, p.lastY = x, y
	if p.onMove != nil {
		p.onMove(d)
	}
	return d, true
}

// Up releases pointer id if it is the one being tracked.
//
// Parameters:
//   - id: the pointer or touch identifier
func (p *PointerTracker) Up(id int64) {
	if !p.down || id != p.id {
		return
	}
	p.down = false
	p.id = 0
}

// Active returns the tracked pointer id, if any.
func (p *PointerTracker) Active() (int64, bool) {
	return p.id, p.down
}
