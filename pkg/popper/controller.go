package popper

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/fxui/popper/pkg/dom"
	"github.com/fxui/popper/pkg/errors"
	"github.com/fxui/popper/pkg/observability"
)

// Style custom properties carrying the resolved position. Consuming
// stylesheets translate the popper element using these; clearing sets
// both to the empty string.
const (
	StylePlacementX = "--fx-popper-placement-x"
	StylePlacementY = "--fx-popper-placement-y"
)

// EventEffect controls which window events trigger repositioning.
type EventEffect struct {
	DisableOnResize bool
	DisableOnScroll bool
}

// Update is passed to the OnUpdate callback after every successful
// position update.
type Update struct {
	X         float64
	Y         float64
	Placement Placement
}

// Options configures a Controller.
type Options struct {
	// Placement of the popper relative to the reference.
	// Defaults to DefaultPlacement.
	Placement Placement

	// Offset is the gap between reference and popper in pixels.
	Offset float64

	// EventEffect disables window resize/scroll repositioning.
	EventEffect EventEffect

	// OnUpdate is invoked after each position update. Optional.
	OnUpdate func(Update)

	// Logger receives debug logging. Defaults to a discard logger.
	Logger *log.Logger
}

// Reconfigure carries the mutable subset of options for SetOptions.
// A nil Offset leaves the current offset untouched.
type Reconfigure struct {
	Placement Placement
	Offset    *float64
}

// Controller owns a reference/popper element pair and keeps the popper
// positioned. It holds weak handles only: element lifecycle belongs to
// the host. Concurrent controllers on the same popper element are
// unsupported; listener churn would race destructively.
type Controller struct {
	id     string
	window dom.Window

	reference dom.Element
	popper    dom.Element

	placement Placement
	offset    float64
	effect    EventEffect
	onUpdate  func(Update)
	logger    *log.Logger

	resizeListener *dom.Listener
	scrollListener *dom.Listener
	attached       bool
}

// New validates the configuration and creates a Controller. No
// positioning happens until UpdatePosition.
//
// Fails with INVALID_REFERENCE_ELEMENT / INVALID_POPPER_ELEMENT for nil
// elements, INVALID_OFFSET_DISTANCE for a non-finite offset,
// INVALID_PLACEMENT for an unknown token, and INVALID_ENVIRONMENT for a
// nil window. No partial controller escapes a failed New.
func New(window dom.Window, reference, popper dom.Element, opts *Options) (*Controller, error) {
	if window == nil {
		return nil, errors.New(errors.ErrCodeInvalidEnvironment, "window is nil")
	}
	if reference == nil {
		return nil, errors.New(errors.ErrCodeInvalidReferenceElement, "reference element is nil")
	}
	if popper == nil {
		return nil, errors.New(errors.ErrCodeInvalidPopperElement, "popper element is nil")
	}

	if opts == nil {
		opts = &Options{}
	}

	placement := opts.Placement
	if placement == "" {
		placement = DefaultPlacement
	}
	if err := errors.ValidatePlacement(string(placement)); err != nil {
		return nil, err
	}
	if err := errors.ValidateOffset(opts.Offset); err != nil {
		return nil, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &Controller{
		id:        uuid.NewString(),
		window:    window,
		reference: reference,
		popper:    popper,
		placement: placement,
		offset:    opts.Offset,
		effect:    opts.EventEffect,
		onUpdate:  opts.OnUpdate,
		logger:    logger,
	}, nil
}

// ID returns the controller's instance identifier, used in logs and
// observability hooks.
func (c *Controller) ID() string { return c.id }

// Placement returns the current placement.
func (c *Controller) Placement() Placement { return c.placement }

// Offset returns the current offset distance.
func (c *Controller) Offset() float64 { return c.offset }

// ListenersAttached reports whether window listeners are registered.
func (c *Controller) ListenersAttached() bool { return c.attached }

// UpdatePosition runs the full measure → resolve → apply sequence and
// (re)attaches window listeners per the event effect flags.
//
// Each call re-measures from scratch; calling it repeatedly with
// unchanged inputs is safe and produces identical styles and an
// identical OnUpdate invocation every time.
func (c *Controller) UpdatePosition() error {
	c.clearPositionStyles()

	width, height := c.window.Size()
	dims, err := ReadDimensions(c.reference, c.popper)
	if err != nil {
		return err
	}

	coord := Resolve(Context{
		Dimensions:   dims,
		WindowWidth:  width,
		WindowHeight: height,
		Offset:       c.offset,
		Placement:    c.placement,
	})

	c.popper.SetStyleProperty(StylePlacementX, pixels(coord.X))
	c.popper.SetStyleProperty(StylePlacementY, pixels(coord.Y))

	c.logger.Debug("position updated",
		"popper", c.id, "placement", c.placement, "x", coord.X, "y", coord.Y)

	if c.onUpdate != nil {
		c.onUpdate(Update{X: coord.X, Y: coord.Y, Placement: c.placement})
	}
	observability.Position().OnPositionUpdate(c.id, string(c.placement), coord.X, coord.Y)

	c.attachWindowListeners()
	return nil
}

// SetOptions mutates placement and optionally offset, then re-runs the
// full update-and-reattach sequence. Listeners always end up matching
// the current event effect flags regardless of prior attachment state:
// attachment is detach-then-reattach, never additive, so SetOptions is
// safe even before the first UpdatePosition.
func (c *Controller) SetOptions(opts Reconfigure) error {
	if err := c.Configure(opts); err != nil {
		return err
	}
	return c.UpdatePosition()
}

// Configure validates and stores new placement/offset without
// repositioning. Used by callers that sequence their own update.
func (c *Controller) Configure(opts Reconfigure) error {
	placement := opts.Placement
	if placement == "" {
		placement = c.placement
	}
	if err := errors.ValidatePlacement(string(placement)); err != nil {
		return err
	}
	if opts.Offset != nil {
		if err := errors.ValidateOffset(*opts.Offset); err != nil {
			return err
		}
		c.offset = *opts.Offset
	}
	c.placement = placement
	return nil
}

// SetReference swaps the reference element the popper anchors to.
// The next UpdatePosition measures against the new reference.
func (c *Controller) SetReference(reference dom.Element) error {
	if reference == nil {
		return errors.New(errors.ErrCodeInvalidReferenceElement, "reference element is nil")
	}
	c.reference = reference
	return nil
}

// ResetPosition clears the two position style properties without
// touching listeners or configuration. Hides a popper visually while
// keeping its event wiring alive.
func (c *Controller) ResetPosition() {
	c.clearPositionStyles()
}

// CleanupEvents clears position styles and removes window listeners.
// Terminal lifecycle operation, but the controller stays reusable:
// another UpdatePosition fully re-establishes it.
func (c *Controller) CleanupEvents() {
	c.clearPositionStyles()
	c.detachWindowListeners()
	c.logger.Debug("events cleaned up", "popper", c.id)
}

func (c *Controller) clearPositionStyles() {
	c.popper.SetStyleProperty(StylePlacementX, "")
	c.popper.SetStyleProperty(StylePlacementY, "")
}

func (c *Controller) attachWindowListeners() {
	c.detachWindowListeners()
	if !c.effect.DisableOnResize {
		c.resizeListener = c.window.AddListener(dom.EventResize, func(dom.Event) {
			if err := c.UpdatePosition(); err != nil {
				c.logger.Error("reposition on resize failed", "popper", c.id, "err", err)
			}
		})
	}
	if !c.effect.DisableOnScroll {
		c.scrollListener = c.window.AddListener(dom.EventScroll, func(dom.Event) {
			if err := c.UpdatePosition(); err != nil {
				c.logger.Error("reposition on scroll failed", "popper", c.id, "err", err)
			}
		})
	}
	c.attached = c.resizeListener != nil || c.scrollListener != nil
}

func (c *Controller) detachWindowListeners() {
	if c.resizeListener != nil {
		c.window.RemoveListener(c.resizeListener)
		c.resizeListener = nil
	}
	if c.scrollListener != nil {
		c.window.RemoveListener(c.scrollListener)
		c.scrollListener = nil
	}
	c.attached = false
}

// pixels formats a coordinate as a CSS pixel value, e.g. "123px".
func pixels(v float64) string {
	return fmt.Sprintf("%gpx", v)
}
