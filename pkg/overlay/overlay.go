// Package overlay layers open/close semantics on top of a positioned
// popper: a trigger strategy (click or hover), outside/inside dismissal
// rules, escape-key dismissal, and ARIA/data-state bookkeeping.
//
// The content element's data-state attribute is the single source of
// truth for "is this overlay open". The controller reads it back from
// the host rather than mirroring it in memory, so stylesheet selectors
// like [data-state="open"] can never disagree with the controller.
package overlay

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/fxui/popper/pkg/dom"
	"github.com/fxui/popper/pkg/errors"
	"github.com/fxui/popper/pkg/observability"
	"github.com/fxui/popper/pkg/popper"
)

// Strategy selects the interaction model that opens an overlay.
type Strategy string

// Trigger strategies.
const (
	StrategyClick Strategy = "click"
	StrategyHover Strategy = "hover"
)

// State is an overlay's open/close state as written to data-state.
type State string

// Overlay states.
const (
	StateOpen  State = "open"
	StateClose State = "close"
)

// Attributes the controller maintains on its elements.
const (
	// AttrState is set on the content element.
	AttrState = "data-state"

	// AttrAriaExpanded is set on the trigger element.
	AttrAriaExpanded = "aria-expanded"
)

// HoverLeaveDelay is the debounce before a hover-leave closes the
// overlay. The deferred check re-queries hover state when it fires, so
// re-entering within the window is a no-op; there is no timer
// cancellation.
const HoverLeaveDelay = 150 * time.Millisecond

// PopperOptions is the subset of popper configuration exposed on an
// overlay.
type PopperOptions struct {
	EventEffect popper.EventEffect
}

// Options configures a Controller.
type Options struct {
	// DefaultState is the initial state. Defaults to StateClose; an
	// overlay constructed with StateOpen performs the open transition
	// immediately.
	DefaultState State

	// PreventFromCloseOutside keeps outside dismissal (content clicks,
	// escape key) from closing the overlay.
	PreventFromCloseOutside bool

	// PreventCloseFromInside keeps clicks inside the trigger from
	// closing the overlay through the document-level handler.
	PreventCloseFromInside bool

	// Placement and Offset configure the owned popper controller.
	Placement popper.Placement
	Offset    float64

	// TriggerStrategy selects click or hover semantics.
	// Defaults to StrategyClick.
	TriggerStrategy Strategy

	// Popper carries pass-through popper configuration.
	Popper PopperOptions

	// Hooks are the optional lifecycle callbacks.
	Hooks Hooks

	// Logger receives debug logging. Defaults to a discard logger.
	Logger *log.Logger
}

// TriggerOptions reconfigures placement when swapping triggers.
// A nil Offset keeps the current offset.
type TriggerOptions struct {
	Placement popper.Placement
	Offset    *float64
}

// Controller is the overlay state machine. It exclusively owns one
// popper.Controller, created in New and torn down through Cleanup.
type Controller struct {
	id  string
	env dom.Environment

	trigger dom.Element
	content dom.Element

	strategy       Strategy
	preventOutside bool
	preventInside  bool
	hooks          Hooks
	logger         *log.Logger

	popper *popper.Controller

	triggerClick *dom.Listener
	triggerEnter *dom.Listener
	triggerLeave *dom.Listener
	contentLeave *dom.Listener
	docClick     *dom.Listener
	docKeydown   *dom.Listener
}

// New validates the configuration and creates an overlay Controller.
//
// trigger and content accept a selector string or a dom.Element; an
// unresolvable target fails with INVALID_TRIGGER_ELEMENT /
// INVALID_CONTENT_ELEMENT. A failed New leaves nothing attached.
func New(env dom.Environment, trigger, content any, opts *Options) (*Controller, error) {
	if !env.Complete() {
		return nil, errors.New(errors.ErrCodeInvalidEnvironment, "environment requires window, document, and scheduler")
	}

	triggerEl := dom.Resolve(env.Document, trigger)
	if triggerEl == nil {
		return nil, errors.New(errors.ErrCodeInvalidTriggerElement, "trigger element not found: %v", trigger)
	}
	contentEl := dom.Resolve(env.Document, content)
	if contentEl == nil {
		return nil, errors.New(errors.ErrCodeInvalidContentElement, "content element not found: %v", content)
	}

	if opts == nil {
		opts = &Options{}
	}

	strategy := opts.TriggerStrategy
	if strategy == "" {
		strategy = StrategyClick
	}
	defaultState := opts.DefaultState
	if defaultState == "" {
		defaultState = StateClose
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	pop, err := popper.New(env.Window, triggerEl, contentEl, &popper.Options{
		Placement:   opts.Placement,
		Offset:      opts.Offset,
		EventEffect: opts.Popper.EventEffect,
		Logger:      opts.Logger,
	})
	if err != nil {
		return nil, err
	}

	c := &Controller{
		id:             uuid.NewString(),
		env:            env,
		trigger:        triggerEl,
		content:        contentEl,
		strategy:       strategy,
		preventOutside: opts.PreventFromCloseOutside,
		preventInside:  opts.PreventCloseFromInside,
		hooks:          opts.Hooks,
		logger:         logger,
		popper:         pop,
	}

	dom.SetAttributes(contentEl, map[string]string{AttrState: string(defaultState)})
	dom.SetAttributes(triggerEl, map[string]string{AttrAriaExpanded: expanded(defaultState)})

	c.attachTriggerListeners()

	if defaultState == StateOpen {
		if err := c.Show(); err != nil {
			c.Cleanup()
			return nil, err
		}
	}

	return c, nil
}

// ID returns the controller's instance identifier.
func (c *Controller) ID() string { return c.id }

// Popper returns the owned popper controller.
func (c *Controller) Popper() *popper.Controller { return c.popper }

// IsOpen reads the open/close state back from the content element's
// data-state attribute.
func (c *Controller) IsOpen() bool {
	return c.content.Attribute(AttrState) == string(StateOpen)
}

// Toggle shows a closed overlay and hides an open one.
func (c *Controller) Toggle() error {
	if c.IsOpen() {
		c.Hide()
		return nil
	}
	return c.Show()
}

// Show performs the open transition: position the popper, attach the
// document-level dismissal listeners, flip data-state/aria-expanded,
// and run the show callbacks.
func (c *Controller) Show() error {
	if err := c.popper.UpdatePosition(); err != nil {
		return err
	}

	c.attachDocumentListeners()
	c.hooks.beforeShow()

	dom.SetAttributes(c.content, map[string]string{AttrState: string(StateOpen)})
	dom.SetAttributes(c.trigger, map[string]string{AttrAriaExpanded: "true"})

	c.hooks.onToggle(false)
	c.hooks.onShow()
	observability.Overlay().OnShow(c.id)
	c.logger.Debug("overlay shown", "overlay", c.id)
	return nil
}

// Hide performs the close transition. Visual and ARIA state flip
// immediately so stylesheets and assistive tech see the change at once;
// the OnToggle/OnHide callbacks and the popper's event teardown wait for
// the content element's transition to complete, so an exit animation is
// not interrupted by a premature position reset.
func (c *Controller) Hide() {
	c.hooks.beforeHide()

	dom.SetAttributes(c.content, map[string]string{AttrState: string(StateClose)})
	dom.SetAttributes(c.trigger, map[string]string{AttrAriaExpanded: "false"})

	c.detachDocumentListeners()
	if c.strategy == StrategyHover {
		c.detachLeaveWatchers()
	}

	c.content.AfterTransition(func() {
		c.hooks.onToggle(true)
		c.popper.CleanupEvents()
		c.hooks.onHide()
		observability.Overlay().OnHide(c.id)
		c.logger.Debug("overlay hidden", "overlay", c.id)
	})
}

// SetShowOptions reconfigures the owned popper and performs the open
// transition with the new placement.
func (c *Controller) SetShowOptions(opts popper.Reconfigure) error {
	if err := c.popper.Configure(opts); err != nil {
		return err
	}
	return c.Show()
}

// SetPopperTrigger swaps the anchor element at runtime: listeners move
// from the old trigger to the new one and the popper re-anchors. The
// overlay's open/close state is untouched.
func (c *Controller) SetPopperTrigger(trigger any, opts *TriggerOptions) error {
	newTrigger := dom.Resolve(c.env.Document, trigger)
	if newTrigger == nil {
		return errors.New(errors.ErrCodeInvalidTriggerElement, "trigger element not found: %v", trigger)
	}

	c.detachTriggerListeners()
	if c.strategy == StrategyHover {
		c.detachLeaveWatchers()
	}

	c.trigger = newTrigger
	if err := c.popper.SetReference(newTrigger); err != nil {
		return err
	}
	if opts != nil {
		if err := c.popper.Configure(popper.Reconfigure{Placement: opts.Placement, Offset: opts.Offset}); err != nil {
			return err
		}
	}

	dom.SetAttributes(newTrigger, map[string]string{AttrAriaExpanded: expanded(c.currentState())})
	c.attachTriggerListeners()
	return nil
}

// Cleanup detaches every listener the overlay owns and tears down the
// popper's events. The controller holds no resources afterwards.
func (c *Controller) Cleanup() {
	c.detachTriggerListeners()
	c.detachLeaveWatchers()
	c.detachDocumentListeners()
	c.popper.CleanupEvents()
}

// =============================================================================
// Event wiring
// =============================================================================

func (c *Controller) attachTriggerListeners() {
	c.detachTriggerListeners()
	if c.strategy == StrategyHover {
		c.triggerEnter = c.trigger.AddListener(dom.EventMouseEnter, func(dom.Event) {
			if err := c.Show(); err != nil {
				c.logger.Error("show on hover failed", "overlay", c.id, "err", err)
				return
			}
			c.armLeaveWatchers()
		})
		return
	}
	c.triggerClick = c.trigger.AddListener(dom.EventClick, func(dom.Event) {
		if err := c.Toggle(); err != nil {
			c.logger.Error("toggle on click failed", "overlay", c.id, "err", err)
		}
	})
}

func (c *Controller) detachTriggerListeners() {
	if c.triggerClick != nil {
		c.trigger.RemoveListener(c.triggerClick)
		c.triggerClick = nil
	}
	if c.triggerEnter != nil {
		c.trigger.RemoveListener(c.triggerEnter)
		c.triggerEnter = nil
	}
}

func (c *Controller) armLeaveWatchers() {
	c.detachLeaveWatchers()
	c.triggerLeave = c.trigger.AddListener(dom.EventMouseLeave, c.onLeave)
	c.contentLeave = c.content.AddListener(dom.EventMouseLeave, c.onLeave)
}

func (c *Controller) detachLeaveWatchers() {
	if c.triggerLeave != nil {
		c.trigger.RemoveListener(c.triggerLeave)
		c.triggerLeave = nil
	}
	if c.contentLeave != nil {
		c.content.RemoveListener(c.contentLeave)
		c.contentLeave = nil
	}
}

// onLeave schedules the debounced close. The deferred check re-queries
// hover state on both elements: moving from trigger onto content (or
// back) within the window finds the paired element hovered and no-ops.
func (c *Controller) onLeave(dom.Event) {
	c.env.Scheduler.After(HoverLeaveDelay, func() {
		if c.trigger.Hovered() || c.content.Hovered() {
			return
		}
		if c.IsOpen() {
			c.Hide()
		}
	})
}

func (c *Controller) attachDocumentListeners() {
	c.detachDocumentListeners()
	c.docClick = c.env.Document.AddListener(dom.EventClick, c.onDocumentClick)
	if c.strategy != StrategyHover {
		c.docKeydown = c.env.Document.AddListener(dom.EventKeyDown, c.onKeyDown)
	}
}

func (c *Controller) detachDocumentListeners() {
	if c.docClick != nil {
		c.env.Document.RemoveListener(c.docClick)
		c.docClick = nil
	}
	if c.docKeydown != nil {
		c.env.Document.RemoveListener(c.docKeydown)
		c.docKeydown = nil
	}
}

// onDocumentClick applies the dismissal rules: a click closes the open
// overlay unless it landed inside the trigger while inside-dismissal is
// prevented, or inside the content while outside-dismissal is
// prevented. With neither flag set any document click closes.
func (c *Controller) onDocumentClick(ev dom.Event) {
	if !c.IsOpen() {
		return
	}
	if ev.Target != nil {
		if c.preventInside && c.trigger.Contains(ev.Target) {
			return
		}
		if c.preventOutside && c.content.Contains(ev.Target) {
			return
		}
	}
	observability.Overlay().OnOutsideDismiss(c.id)
	c.Hide()
}

// onKeyDown closes on escape. Hover overlays never register this
// handler, and outside-dismissal prevention applies here too.
func (c *Controller) onKeyDown(ev dom.Event) {
	if ev.Key != dom.KeyEscape || !c.IsOpen() || c.preventOutside {
		return
	}
	observability.Overlay().OnOutsideDismiss(c.id)
	c.Hide()
}

func (c *Controller) currentState() State {
	if c.IsOpen() {
		return StateOpen
	}
	return StateClose
}

func expanded(s State) string {
	if s == StateOpen {
		return "true"
	}
	return "false"
}
