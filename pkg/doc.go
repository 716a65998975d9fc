// Package pkg provides the core libraries of the popper positioning engine.
//
// # Overview
//
// Popper anchors a floating element (tooltip, dropdown, popover) to a
// reference element and keeps it positioned inside the viewport. The pkg
// directory is organized into five areas:
//
//  1. [dom] - Host abstraction (elements, events, viewport, scheduling)
//  2. [popper] - Placement resolution and the popper lifecycle controller
//  3. [overlay] - Open/close state machine with trigger strategies
//  4. [errors] - Structured validation errors
//  5. [observability] - Optional engine instrumentation hooks
//
// # Architecture
//
// The typical control flow:
//
//	host events (click, resize, scroll, hover, keydown)
//	         ↓
//	    [overlay] package (open/close semantics, dismissal rules)
//	         ↓
//	    [popper] package (measure → resolve → apply styles)
//	         ↓
//	    style properties + data-state/aria attributes on the host
//
// The placement algorithm itself ([popper.Resolve]) is a pure function;
// all side effects live in the controllers, and all host interaction
// goes through the [dom] interfaces so a fake host can drive everything
// deterministically in tests.
//
// # Quick Start
//
// Position a popper under its reference and keep it there:
//
//	import (
//	    "github.com/fxui/popper/pkg/dom"
//	    "github.com/fxui/popper/pkg/popper"
//	)
//
//	ctrl, err := popper.New(window, reference, floating, &popper.Options{
//	    Placement: popper.PlacementBottomStart,
//	    Offset:    8,
//	})
//	if err != nil {
//	    return err
//	}
//	if err := ctrl.UpdatePosition(); err != nil {
//	    return err
//	}
//	defer ctrl.CleanupEvents()
//
// Wrap it into a click-triggered overlay:
//
//	ov, err := overlay.New(env, "#menu-button", "#menu", &overlay.Options{
//	    Placement:       popper.PlacementBottomEnd,
//	    TriggerStrategy: overlay.StrategyClick,
//	})
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/popper/...   # Placement resolver and controller only
//
// [dom]: https://pkg.go.dev/github.com/fxui/popper/pkg/dom
// [popper]: https://pkg.go.dev/github.com/fxui/popper/pkg/popper
// [overlay]: https://pkg.go.dev/github.com/fxui/popper/pkg/overlay
// [errors]: https://pkg.go.dev/github.com/fxui/popper/pkg/errors
// [observability]: https://pkg.go.dev/github.com/fxui/popper/pkg/observability
package pkg
