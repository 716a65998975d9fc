package dom

import (
	"sort"
	"time"
)

// =============================================================================
// Listener bookkeeping shared by the in-memory targets
// =============================================================================

// listenerSet implements EventTarget for the in-memory host types.
type listenerSet struct {
	listeners []*Listener
}

// AddListener registers handler for events of type t.
func (s *listenerSet) AddListener(t EventType, handler Handler) *Listener {
	l := &Listener{eventType: t, handler: handler}
	s.listeners = append(s.listeners, l)
	return l
}

// RemoveListener detaches l. Unknown or nil listeners are ignored.
func (s *listenerSet) RemoveListener(l *Listener) {
	if l == nil {
		return
	}
	for i, candidate := range s.listeners {
		if candidate == l {
			s.listeners = append(s.listeners[:i], s.listeners[i+1:]...)
			return
		}
	}
}

// snapshot freezes the current listener list. Dispatching against a
// snapshot means listeners registered mid-delivery do not see the event.
func (s *listenerSet) snapshot() []*Listener {
	frozen := make([]*Listener, len(s.listeners))
	copy(frozen, s.listeners)
	return frozen
}

// dispatchTo delivers ev to every listener in the snapshot that matches
// the event type and is still registered.
func (s *listenerSet) dispatchTo(snapshot []*Listener, ev Event) {
	for _, l := range snapshot {
		if l.eventType == ev.Type && s.registered(l) {
			l.handler(ev)
		}
	}
}

func (s *listenerSet) dispatch(ev Event) {
	s.dispatchTo(s.snapshot(), ev)
}

func (s *listenerSet) registered(l *Listener) bool {
	for _, candidate := range s.listeners {
		if candidate == l {
			return true
		}
	}
	return false
}

// ListenerCount returns the number of registered listeners for t.
func (s *listenerSet) ListenerCount(t EventType) int {
	n := 0
	for _, l := range s.listeners {
		if l.eventType == t {
			n++
		}
	}
	return n
}

// =============================================================================
// MemoryElement
// =============================================================================

// MemoryElement is an in-memory Element for tests and non-browser hosts.
// It records style properties and attributes, tracks hover state and
// pending transitions, and counts geometry reads so tests can assert on
// measurement behavior.
type MemoryElement struct {
	listenerSet

	// ID labels the element in test failures and playground rendering.
	ID string

	rect      Rect
	rectReads int

	styles map[string]string
	attrs  map[string]string

	hovered       bool
	transitioning bool
	afterHooks    []func()

	parent   *MemoryElement
	children []*MemoryElement
}

// NewMemoryElement creates an element with the given id and rectangle.
func NewMemoryElement(id string, rect Rect) *MemoryElement {
	return &MemoryElement{
		ID:     id,
		rect:   rect,
		styles: make(map[string]string),
		attrs:  make(map[string]string),
	}
}

// BoundingRect returns the element's rectangle and counts the read.
func (e *MemoryElement) BoundingRect() Rect {
	e.rectReads++
	return e.rect
}

// SetRect replaces the element's rectangle, simulating movement or resize.
func (e *MemoryElement) SetRect(rect Rect) { e.rect = rect }

// RectReads returns how many times BoundingRect has been called.
func (e *MemoryElement) RectReads() int { return e.rectReads }

// SetStyleProperty sets or clears a custom style property.
func (e *MemoryElement) SetStyleProperty(name, value string) {
	e.styles[name] = value
}

// StyleProperty returns the current value of a custom style property.
func (e *MemoryElement) StyleProperty(name string) string {
	return e.styles[name]
}

// SetAttribute sets an attribute.
func (e *MemoryElement) SetAttribute(name, value string) {
	e.attrs[name] = value
}

// Attribute returns an attribute value, or "" when absent.
func (e *MemoryElement) Attribute(name string) string {
	return e.attrs[name]
}

// AppendChild makes child a descendant of e for containment checks.
func (e *MemoryElement) AppendChild(child *MemoryElement) {
	child.parent = e
	e.children = append(e.children, child)
}

// Contains reports whether other is e or a descendant of e.
func (e *MemoryElement) Contains(other Element) bool {
	node, ok := other.(*MemoryElement)
	if !ok {
		return false
	}
	for ; node != nil; node = node.parent {
		if node == e {
			return true
		}
	}
	return false
}

// SetHovered sets the simulated pointer-over state.
func (e *MemoryElement) SetHovered(hovered bool) { e.hovered = hovered }

// Hovered reports the simulated pointer-over state.
func (e *MemoryElement) Hovered() bool { return e.hovered }

// SetTransitioning toggles whether a style transition is running.
// While true, AfterTransition callbacks queue until CompleteTransitions.
func (e *MemoryElement) SetTransitioning(running bool) {
	e.transitioning = running
}

// AfterTransition runs fn immediately unless a transition is running,
// in which case fn queues until CompleteTransitions.
func (e *MemoryElement) AfterTransition(fn func()) {
	if !e.transitioning {
		fn()
		return
	}
	e.afterHooks = append(e.afterHooks, fn)
}

// CompleteTransitions ends the running transition and flushes queued
// AfterTransition callbacks in registration order.
func (e *MemoryElement) CompleteTransitions() {
	e.transitioning = false
	hooks := e.afterHooks
	e.afterHooks = nil
	for _, fn := range hooks {
		fn()
	}
}

// PendingTransitionHooks returns the number of queued callbacks.
func (e *MemoryElement) PendingTransitionHooks() int { return len(e.afterHooks) }

// Dispatch delivers ev to the element's own listeners. A nil target is
// filled in with the element itself.
func (e *MemoryElement) Dispatch(ev Event) {
	if ev.Target == nil {
		ev.Target = e
	}
	e.dispatch(ev)
}

// Click dispatches a click event targeting the element. Note this is the
// element phase only; use MemoryDocument.Click for bubbling behavior.
func (e *MemoryElement) Click() {
	e.Dispatch(Event{Type: EventClick, Target: e})
}

var _ Element = (*MemoryElement)(nil)

// =============================================================================
// MemoryWindow
// =============================================================================

// MemoryWindow is an in-memory viewport.
type MemoryWindow struct {
	listenerSet

	width  float64
	height float64
}

// NewMemoryWindow creates a viewport of the given size.
func NewMemoryWindow(width, height float64) *MemoryWindow {
	return &MemoryWindow{width: width, height: height}
}

// Size returns the viewport dimensions.
func (w *MemoryWindow) Size() (width, height float64) {
	return w.width, w.height
}

// Resize changes the viewport size and dispatches a resize event.
func (w *MemoryWindow) Resize(width, height float64) {
	w.width = width
	w.height = height
	w.dispatch(Event{Type: EventResize})
}

// EmitScroll dispatches a scroll event.
func (w *MemoryWindow) EmitScroll() {
	w.dispatch(Event{Type: EventScroll})
}

var _ Window = (*MemoryWindow)(nil)

// =============================================================================
// MemoryDocument
// =============================================================================

// MemoryDocument is an in-memory document root with a selector registry.
type MemoryDocument struct {
	listenerSet

	elements map[string]*MemoryElement
}

// NewMemoryDocument creates an empty document.
func NewMemoryDocument() *MemoryDocument {
	return &MemoryDocument{elements: make(map[string]*MemoryElement)}
}

// Register associates a selector with an element for QuerySelector.
func (d *MemoryDocument) Register(selector string, el *MemoryElement) {
	d.elements[selector] = el
}

// QuerySelector returns the registered element, or nil when unknown.
func (d *MemoryDocument) QuerySelector(selector string) Element {
	el, ok := d.elements[selector]
	if !ok {
		return nil
	}
	return el
}

// Click simulates a click on target bubbling up to the document: the
// target's own listeners run first, then the document listeners that were
// registered before delivery began. Passing nil simulates a click on
// empty space, delivering only the document phase.
func (d *MemoryDocument) Click(target Element) {
	ev := Event{Type: EventClick, Target: target}
	snapshot := d.snapshot()
	if el, ok := target.(*MemoryElement); ok && el != nil {
		el.Dispatch(ev)
	}
	d.dispatchTo(snapshot, ev)
}

// KeyDown dispatches a keydown event with the given key name.
func (d *MemoryDocument) KeyDown(key string) {
	d.dispatch(Event{Type: EventKeyDown, Key: key})
}

var _ Document = (*MemoryDocument)(nil)

// =============================================================================
// ManualScheduler
// =============================================================================

type scheduledCall struct {
	at  time.Duration
	seq int
	fn  func()
}

// ManualScheduler is a Scheduler driven by explicit Advance calls,
// giving tests full control over the hover-leave debounce clock.
type ManualScheduler struct {
	now     time.Duration
	seq     int
	pending []scheduledCall
}

// NewManualScheduler creates a scheduler at time zero.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

// After queues fn to fire once the clock advances by d.
func (s *ManualScheduler) After(d time.Duration, fn func()) {
	s.seq++
	s.pending = append(s.pending, scheduledCall{at: s.now + d, seq: s.seq, fn: fn})
}

// Advance moves the clock forward and fires every due callback in
// schedule order. Callbacks may schedule further work; anything falling
// due within the same advance fires too.
func (s *ManualScheduler) Advance(d time.Duration) {
	s.now += d
	for {
		due := -1
		for i, call := range s.pending {
			if call.at > s.now {
				continue
			}
			if due == -1 || call.at < s.pending[due].at ||
				(call.at == s.pending[due].at && call.seq < s.pending[due].seq) {
				due = i
			}
		}
		if due == -1 {
			return
		}
		call := s.pending[due]
		s.pending = append(s.pending[:due], s.pending[due+1:]...)
		call.fn()
	}
}

// PendingCount returns the number of callbacks not yet fired.
func (s *ManualScheduler) PendingCount() int { return len(s.pending) }

// NextDue returns the durations until each pending callback, sorted.
// Useful for asserting the debounce interval.
func (s *ManualScheduler) NextDue() []time.Duration {
	due := make([]time.Duration, 0, len(s.pending))
	for _, call := range s.pending {
		due = append(due, call.at-s.now)
	}
	sort.Slice(due, func(i, j int) bool { return due[i] < due[j] })
	return due
}

var _ Scheduler = (*ManualScheduler)(nil)

// NewMemoryEnvironment wires a complete in-memory Environment.
func NewMemoryEnvironment(width, height float64) (Environment, *MemoryWindow, *MemoryDocument, *ManualScheduler) {
	win := NewMemoryWindow(width, height)
	doc := NewMemoryDocument()
	sched := NewManualScheduler()
	return Environment{Window: win, Document: doc, Scheduler: sched}, win, doc, sched
}
