package window

import (
	"fmt"
	"runtime"
)

// Window is the platform window the engine runs inside. It owns the OS event loop
// and forwards key, pointer and resize events to the registered callbacks.
// Callbacks run on the thread that calls ProcessMessages.
type Window interface {
	// SetUpdateCallback registers a function called once per event-loop iteration.
	//
	// Parameters:
	//   - callback: function to call after each batch of events
	SetUpdateCallback(callback func())

	// SetResizeCallback registers a function called when the framebuffer size changes.
	//
	// Parameters:
	//   - callback: function receiving the new width and height in pixels
	SetResizeCallback(callback func(width, height int))

	// SetKeyDownCallback registers a function called on key press and key repeat.
	//
	// Parameters:
	//   - callback: function receiving the key code
	SetKeyDownCallback(callback func(keyCode uint32))

	// SetKeyUpCallback registers a function called on key release.
	//
	// Parameters:
	//   - callback: function receiving the key code
	SetKeyUpCallback(callback func(keyCode uint32))

	// SetPointerDownCallback registers a function called when a pointer goes down.
	// Mouse buttons are reported as pointers whose ID is the button number.
	//
	// Parameters:
	//   - callback: function receiving the pointer ID and position in pixels
	SetPointerDownCallback(callback func(id int64, x, y float32))

	// SetPointerMoveCallback registers a function called when the pointer moves.
	// The ID is that of the pointer currently down, or NoPointer while hovering.
	//
	// Parameters:
	//   - callback: function receiving the pointer ID and position in pixels
	SetPointerMoveCallback(callback func(id int64, x, y float32))

	// SetPointerUpCallback registers a function called when a pointer is released.
	//
	// Parameters:
	//   - callback: function receiving the pointer ID
	SetPointerUpCallback(callback func(id int64))

	// IsRunning reports whether the window is still open.
	//
	// Returns:
	//   - bool: false once the window has been asked to close
	IsRunning() bool

	// Close destroys the window and releases the platform.
	//
	// Returns:
	//   - error: error if the window was never created
	Close() error

	// ProcessMessages pumps the OS event loop until the window closes.
	// Must be called from the main thread.
	ProcessMessages()

	// Width returns the framebuffer width in pixels.
	//
	// Returns:
	//   - int: the width
	Width() int

	// Height returns the framebuffer height in pixels.
	//
	// Returns:
	//   - int: the height
	Height() int
}

// NoPointer is the pointer ID reported by move events while no pointer is down.
const NoPointer int64 = -1

// engineWindow is the platform-independent half of Window.
type engineWindow struct {
	title string

	width  int
	height int

	minWidth, minHeight int
	maxWidth, maxHeight int

	// held is the ID of the pointer currently down, or NoPointer.
	held int64

	internalWindow any

	onUpdate      func()
	onResize      func(width, height int)
	onKeyDown     func(keyCode uint32)
	onKeyUp       func(keyCode uint32)
	onPointerDown func(id int64, x, y float32)
	onPointerMove func(id int64, x, y float32)
	onPointerUp   func(id int64)
}

var _ Window = &engineWindow{}

// NewWindow creates and shows a platform window.
// Panics if the platform window cannot be created.
//
// Parameters:
//   - options: functional options to configure the window
//
// Returns:
//   - Window: the newly created window
func NewWindow(options ...WindowBuilderOption) Window {
	w := &engineWindow{
		title:     "oxy-fpscam",
		width:     1280,
		height:    720,
		minWidth:  320,
		minHeight: 200,
		held:      NoPointer,
	}
	for _, opt := range options {
		opt(w)
	}
	if err := newPlatformWindow(w); err != nil {
		panic(fmt.Sprintf("failed to create platform window: %v", err))
	}
	return w
}

func (w *engineWindow) SetUpdateCallback(callback func()) {
	w.onUpdate = callback
}

func (w *engineWindow) SetResizeCallback(callback func(width, height int)) {
	w.onResize = callback
}

func (w *engineWindow) SetKeyDownCallback(callback func(keyCode uint32)) {
	w.onKeyDown = callback
}

func (w *engineWindow) SetKeyUpCallback(callback func(keyCode uint32)) {
	w.onKeyUp = callback
}

func (w *engineWindow) SetPointerDownCallback(callback func(id int64, x, y float32)) {
	w.onPointerDown = callback
}

func (w *engineWindow) SetPointerMoveCallback(callback func(id int64, x, y float32)) {
	w.onPointerMove = callback
}

func (w *engineWindow) SetPointerUpCallback(callback func(id int64)) {
	w.onPointerUp = callback
}

func (w *engineWindow) IsRunning() bool {
	return platformIsRunningCheck(w)
}

func (w *engineWindow) Close() error {
	return platformCloseWindow(w)
}

func (w *engineWindow) ProcessMessages() {
	for w.IsRunning() {
		if succ := platformProcessMessages(w); !succ {
			break
		}

		if w.onUpdate != nil {
			w.onUpdate()
		}

		runtime.Gosched()
	}
}

func (w *engineWindow) Width() int {
	return w.width
}

func (w *engineWindow) Height() int {
	return w.height
}

// pointerDown records id as held and forwards the event. A second button pressed
// while one is held is forwarded too; the tracker downstream decides which one wins.
func (w *engineWindow) pointerDown(id int64, x, y float32) {
	if w.held == NoPointer {
		w.held = id
	}
	if w.onPointerDown != nil {
		w.onPointerDown(id, x, y)
	}
}

func (w *engineWindow) pointerMove(x, y float32) {
	if w.onPointerMove != nil {
		w.onPointerMove(w.held, x, y)
	}
}

func (w *engineWindow) pointerUp(id int64) {
	if w.held == id {
		w.held = NoPointer
	}
	if w.onPointerUp != nil {
		w.onPointerUp(id)
	}
}
