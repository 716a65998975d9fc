// Package popper positions a floating element relative to a reference
// element, clipped to the viewport.
//
// The package splits into a pure core and a stateful shell:
//
//   - Resolve is the placement algorithm: a pure function from measured
//     geometry, viewport size, offset, and a placement token to a clipped
//     viewport coordinate.
//   - ReadDimensions measures a reference/popper pair through the dom
//     abstraction, memoizing rectangle reads within a single call.
//   - Controller owns a reference/popper pair and orchestrates
//     measurement, resolution, style application, and window event
//     (re)registration.
//
// Placement never flips to the opposite side when space runs out: the
// resolved coordinate clips in place so the popper stays fully on screen.
package popper

import "strings"

// Side is the primary side of a placement: the edge of the reference
// the popper attaches to.
type Side string

// Placement sides.
const (
	SideTop    Side = "top"
	SideBottom Side = "bottom"
	SideLeft   Side = "left"
	SideRight  Side = "right"
)

// Align is the cross-axis alignment of a placement along the shared edge.
type Align string

// Placement alignments. AlignMiddle is the default when a token carries
// no alignment suffix.
const (
	AlignStart  Align = "start"
	AlignMiddle Align = "middle"
	AlignEnd    Align = "end"
)

// Placement is a side plus an optional alignment suffix, e.g. "bottom",
// "top-start", "right-end". There are twelve distinct placements; a bare
// side token and its explicit "-middle" spelling name the same one.
type Placement string

// The twelve placements, in their canonical spelling.
const (
	PlacementTop         Placement = "top"
	PlacementTopStart    Placement = "top-start"
	PlacementTopEnd      Placement = "top-end"
	PlacementBottom      Placement = "bottom"
	PlacementBottomStart Placement = "bottom-start"
	PlacementBottomEnd   Placement = "bottom-end"
	PlacementLeft        Placement = "left"
	PlacementLeftStart   Placement = "left-start"
	PlacementLeftEnd     Placement = "left-end"
	PlacementRight       Placement = "right"
	PlacementRightStart  Placement = "right-start"
	PlacementRightEnd    Placement = "right-end"
)

// DefaultPlacement is used when a controller is configured without one.
const DefaultPlacement = PlacementBottom

// Placements lists the twelve canonical placements in reading order.
var Placements = []Placement{
	PlacementTop, PlacementTopStart, PlacementTopEnd,
	PlacementBottom, PlacementBottomStart, PlacementBottomEnd,
	PlacementLeft, PlacementLeftStart, PlacementLeftEnd,
	PlacementRight, PlacementRightStart, PlacementRightEnd,
}

// Components splits the placement into its side and alignment.
// A missing suffix yields AlignMiddle. Malformed tokens fall back to
// the bottom/middle defaults, keeping Resolve total; validation happens
// at configuration time, not here.
func (p Placement) Components() (Side, Align) {
	rawSide, rawAlign, hasAlign := strings.Cut(string(p), "-")

	side := Side(rawSide)
	switch side {
	case SideTop, SideBottom, SideLeft, SideRight:
	default:
		side = SideBottom
	}

	if !hasAlign {
		return side, AlignMiddle
	}

	align := Align(rawAlign)
	switch align {
	case AlignStart, AlignMiddle, AlignEnd:
	default:
		align = AlignMiddle
	}
	return side, align
}

// Side returns the primary side of the placement.
func (p Placement) Side() Side {
	side, _ := p.Components()
	return side
}

// Align returns the cross-axis alignment of the placement.
func (p Placement) Align() Align {
	_, align := p.Components()
	return align
}

// IsValid reports whether the token is one of the accepted spellings.
func (p Placement) IsValid() bool {
	rawSide, rawAlign, hasAlign := strings.Cut(string(p), "-")

	switch Side(rawSide) {
	case SideTop, SideBottom, SideLeft, SideRight:
	default:
		return false
	}

	if !hasAlign {
		return true
	}

	switch Align(rawAlign) {
	case AlignStart, AlignMiddle, AlignEnd:
		return true
	default:
		return false
	}
}

// Canonical returns the canonical spelling of the placement, folding an
// explicit "-middle" suffix into the bare side token.
func (p Placement) Canonical() Placement {
	side, align := p.Components()
	if align == AlignMiddle {
		return Placement(side)
	}
	return Placement(string(side) + "-" + string(align))
}
