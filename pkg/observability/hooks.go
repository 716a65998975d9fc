// Package observability provides hooks for instrumenting the engine.
//
// Consumers register hook implementations at startup to observe position
// updates and overlay transitions without the engine depending on any
// metrics or tracing backend. The engine calls through the package-level
// accessors; the defaults are no-ops.
//
//	func main() {
//	    observability.SetPositionHooks(&myPositionHooks{})
//	    observability.SetOverlayHooks(&myOverlayHooks{})
//	    // ... run application
//	}
//
// Hooks are registered by the application, not by libraries, which keeps
// the dependency direction clean and avoids import cycles.
package observability

import "sync"

// PositionHooks receives events from position updates.
type PositionHooks interface {
	// OnPositionUpdate records a resolved position. id identifies the
	// controller instance; placement is the token in effect.
	OnPositionUpdate(id, placement string, x, y float64)
}

// OverlayHooks receives events from overlay state transitions.
type OverlayHooks interface {
	// OnShow records an overlay opening.
	OnShow(id string)

	// OnHide records an overlay closing.
	OnHide(id string)

	// OnOutsideDismiss records a close caused by an outside interaction
	// (document click or escape key) rather than an API call.
	OnOutsideDismiss(id string)
}

// NoopPositionHooks is a no-op implementation of PositionHooks.
type NoopPositionHooks struct{}

func (NoopPositionHooks) OnPositionUpdate(string, string, float64, float64) {}

// NoopOverlayHooks is a no-op implementation of OverlayHooks.
type NoopOverlayHooks struct{}

func (NoopOverlayHooks) OnShow(string)           {}
func (NoopOverlayHooks) OnHide(string)           {}
func (NoopOverlayHooks) OnOutsideDismiss(string) {}

var (
	mu            sync.RWMutex
	positionHooks PositionHooks = NoopPositionHooks{}
	overlayHooks  OverlayHooks  = NoopOverlayHooks{}
)

// SetPositionHooks registers the position hook implementation.
// Passing nil restores the no-op default.
func SetPositionHooks(h PositionHooks) {
	mu.Lock()
	defer mu.Unlock()
	if h == nil {
		h = NoopPositionHooks{}
	}
	positionHooks = h
}

// SetOverlayHooks registers the overlay hook implementation.
// Passing nil restores the no-op default.
func SetOverlayHooks(h OverlayHooks) {
	mu.Lock()
	defer mu.Unlock()
	if h == nil {
		h = NoopOverlayHooks{}
	}
	overlayHooks = h
}

// Position returns the registered position hooks.
func Position() PositionHooks {
	mu.RLock()
	defer mu.RUnlock()
	return positionHooks
}

// Overlay returns the registered overlay hooks.
func Overlay() OverlayHooks {
	mu.RLock()
	defer mu.RUnlock()
	return overlayHooks
}
