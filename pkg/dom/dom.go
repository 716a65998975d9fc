// Package dom abstracts the host document model behind small interfaces.
//
// The positioning engine never talks to a concrete UI toolkit or browser
// bridge directly. Everything it needs from the host — element geometry,
// style properties, attributes, event listeners, viewport size, deferred
// callbacks — is expressed as an interface in this package and injected
// into the controllers. This keeps the engine deterministic under test:
// the in-memory implementation in memory.go is a complete fake host.
//
// # Event Model
//
// Listeners are identified by the handle returned from AddListener, not
// by function identity. Dispatch works against a snapshot of the listener
// set taken when dispatch begins, so a listener registered while an event
// is being delivered does not observe that same event. Controllers rely
// on this when they attach document-level dismissal listeners from inside
// a click handler.
package dom

import "time"

// Rect is the measured bounding rectangle of an element, in viewport
// coordinates. All values are pixels.
type Rect struct {
	Left   float64
	Top    float64
	Width  float64
	Height float64
}

// Right returns the x coordinate of the rectangle's right edge.
func (r Rect) Right() float64 { return r.Left + r.Width }

// Bottom returns the y coordinate of the rectangle's bottom edge.
func (r Rect) Bottom() float64 { return r.Top + r.Height }

// EventType identifies a class of host events.
type EventType string

// Event types the engine listens for.
const (
	EventClick      EventType = "click"
	EventKeyDown    EventType = "keydown"
	EventResize     EventType = "resize"
	EventScroll     EventType = "scroll"
	EventMouseEnter EventType = "mouseenter"
	EventMouseLeave EventType = "mouseleave"
)

// KeyEscape is the key name carried by keydown events for the escape key.
const KeyEscape = "Escape"

// Event is a host event delivered to a Handler.
// Target is the innermost element the event originated on; it is nil for
// events without a meaningful target (resize, scroll).
type Event struct {
	Type   EventType
	Target Element
	Key    string
}

// Handler receives dispatched events.
type Handler func(Event)

// Listener is an opaque registration handle. Passing it back to
// RemoveListener detaches the handler it was created with.
type Listener struct {
	eventType EventType
	handler   Handler
}

// EventTarget is anything listeners can be attached to.
type EventTarget interface {
	// AddListener registers handler for events of the given type and
	// returns a handle for later removal.
	AddListener(t EventType, handler Handler) *Listener

	// RemoveListener detaches a previously registered listener.
	// Removing a nil or already-removed listener is a no-op.
	RemoveListener(l *Listener)
}

// Element is a positionable node in the host document.
type Element interface {
	EventTarget

	// BoundingRect measures the element's current rectangle. Each call
	// performs a fresh layout read; callers that need consistency across
	// several reads must cache the result themselves.
	BoundingRect() Rect

	// SetStyleProperty sets a custom style property. An empty value
	// clears the property.
	SetStyleProperty(name, value string)

	// StyleProperty returns the current value of a custom style
	// property, or the empty string when unset.
	StyleProperty(name string) string

	// SetAttribute sets an attribute to the given string value.
	SetAttribute(name, value string)

	// Attribute returns the current attribute value, or the empty
	// string when absent.
	Attribute(name string) string

	// Contains reports whether other is this element or one of its
	// descendants.
	Contains(other Element) bool

	// Hovered reports whether the pointer is currently over the element.
	Hovered() bool

	// AfterTransition invokes fn once the element's running style
	// transition completes, or immediately when none is running.
	AfterTransition(fn func())
}

// Window is the host viewport.
type Window interface {
	EventTarget

	// Size returns the viewport width and height in pixels.
	Size() (width, height float64)
}

// Document is the host document root. Dismissal listeners (outside click,
// escape key) attach here.
type Document interface {
	EventTarget

	// QuerySelector resolves a selector to a single element, or nil
	// when nothing matches.
	QuerySelector(selector string) Element
}

// Scheduler defers a callback. The engine uses it for the hover-leave
// debounce; tests substitute a manual implementation.
type Scheduler interface {
	After(d time.Duration, fn func())
}

// TimerScheduler is the production Scheduler, backed by the runtime timer.
type TimerScheduler struct{}

// After schedules fn to run after d on a new goroutine.
func (TimerScheduler) After(d time.Duration, fn func()) {
	time.AfterFunc(d, fn)
}

var _ Scheduler = TimerScheduler{}

// Environment bundles the host capabilities a controller needs.
type Environment struct {
	Window    Window
	Document  Document
	Scheduler Scheduler
}

// Complete reports whether every capability is present.
func (e Environment) Complete() bool {
	return e.Window != nil && e.Document != nil && e.Scheduler != nil
}
