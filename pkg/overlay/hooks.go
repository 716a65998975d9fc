package overlay

// ToggleEvent is passed to OnToggle on every state transition.
type ToggleEvent struct {
	// Hidden is true when the overlay just transitioned to closed.
	Hidden bool
}

// BeforeHideResult is returned by the BeforeHide callback.
// CancelAction is read but never acted on: Hide always proceeds.
type BeforeHideResult struct {
	CancelAction bool
}

// Hooks are the optional lifecycle callbacks of an overlay. Every field
// may be nil. All callbacks are fire-and-forget except BeforeHide,
// whose result is received (see BeforeHideResult).
//
// Ordering on show: BeforeShow → attributes flip → OnToggle(hidden
// false) → OnShow. Ordering on hide: BeforeHide → attributes flip →
// (after the content transition completes) OnToggle(hidden true) →
// OnHide.
type Hooks struct {
	BeforeShow func()
	BeforeHide func() BeforeHideResult
	OnShow     func()
	OnHide     func()
	OnToggle   func(ToggleEvent)
}

func (h Hooks) beforeShow() {
	if h.BeforeShow != nil {
		h.BeforeShow()
	}
}

func (h Hooks) beforeHide() {
	if h.BeforeHide != nil {
		_ = h.BeforeHide()
	}
}

func (h Hooks) onShow() {
	if h.OnShow != nil {
		h.OnShow()
	}
}

func (h Hooks) onHide() {
	if h.OnHide != nil {
		h.OnHide()
	}
}

func (h Hooks) onToggle(hidden bool) {
	if h.OnToggle != nil {
		h.OnToggle(ToggleEvent{Hidden: hidden})
	}
}
