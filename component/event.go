package component

import (
	"github.com/gdamore/tcell/v2"
)

// MouseCapture is the exclusive claim on an in-progress mouse gesture. The
// dispatch context owns one instance and threads it through every event, so
// capture semantics are testable without a live terminal. The token is not
// reentrant across components: while one component holds it, every other
// component's request is denied until the gesture ends.
type MouseCapture struct {
	owner Component
}

// Capture grants the token iff it is free or already held by c.
func (m *MouseCapture) Capture(c Component) bool {
	if m.owner == nil || m.owner == c {
		m.owner = c
		return true
	}
	return false
}

// Release frees the token. The host calls it when the gesture ends.
func (m *MouseCapture) Release() {
	m.owner = nil
}

// Owner returns the component holding the token, or nil.
func (m *MouseCapture) Owner() Component {
	return m.owner
}

// Event is a single input delivered into the tree: either a keyboard event
// or a mouse event, as represented by tcell. It carries a reference to the
// dispatch context's MouseCapture so components can claim gestures.
type Event struct {
	key     *tcell.EventKey
	mouse   *tcell.EventMouse
	capture *MouseCapture
}

// NewKeyEvent wraps a keyboard event for dispatch.
func NewKeyEvent(ev *tcell.EventKey, capture *MouseCapture) Event {
	return Event{key: ev, capture: capture}
}

// NewMouseEvent wraps a mouse event for dispatch.
func NewMouseEvent(ev *tcell.EventMouse, capture *MouseCapture) Event {
	return Event{mouse: ev, capture: capture}
}

func (e Event) IsKey() bool   { return e.key != nil }
func (e Event) IsMouse() bool { return e.mouse != nil }

// Key returns the underlying keyboard event, or nil for mouse events.
func (e Event) Key() *tcell.EventKey { return e.key }

// Mouse returns the underlying mouse event, or nil for keyboard events.
func (e Event) Mouse() *tcell.EventMouse { return e.mouse }

// MousePosition returns the screen coordinates of a mouse event.
func (e Event) MousePosition() (x, y int) {
	if e.mouse == nil {
		return -1, -1
	}
	return e.mouse.Position()
}

// CaptureMouse requests the gesture for c. The caller must decline to act on
// the event when the request is denied. Events built without a dispatch
// context always grant.
func (e Event) CaptureMouse(c Component) bool {
	if e.capture == nil {
		return true
	}
	return e.capture.Capture(c)
}
