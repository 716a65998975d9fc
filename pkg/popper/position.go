package popper

import "math"

// Context is the sole input to Resolve: measured geometry, viewport
// size, offset, and the requested placement. Pure value, no identity.
type Context struct {
	Dimensions

	// WindowWidth and WindowHeight are the viewport extents in pixels.
	WindowWidth  float64
	WindowHeight float64

	// Offset is the signed gap between reference edge and popper along
	// the primary axis. Negative values overlap the reference.
	Offset float64

	// Placement selects the side and alignment.
	Placement Placement
}

// Coordinate is a resolved position in viewport pixels, already clipped.
type Coordinate struct {
	X float64
	Y float64
}

// Resolve computes the viewport coordinate for a placement.
//
// The primary axis runs perpendicular to the shared edge (gap plus
// popper extent away from the reference); the cross axis runs along it
// (start, middle, or end alignment). Each axis clips independently to
// [0, viewport-popper]. When the popper is larger than the viewport on
// an axis the range collapses and the lower bound wins, pinning the
// popper to the top/left edge: the guarantee is "never off screen", not
// best fit, and the side is never flipped.
//
// Plain floating point throughout; no rounding. Pixel snapping, if
// wanted, belongs to whoever applies the styles.
func Resolve(ctx Context) Coordinate {
	side, align := ctx.Placement.Components()

	var primary float64
	switch side {
	case SideTop:
		primary = ctx.RefTop - ctx.PopperHeight - ctx.Offset
	case SideBottom:
		primary = ctx.RefTop + ctx.RefHeight + ctx.Offset
	case SideLeft:
		primary = ctx.RefLeft - ctx.PopperWidth - ctx.Offset
	case SideRight:
		primary = ctx.RefRight + ctx.Offset
	}

	if side == SideTop || side == SideBottom {
		var cross float64
		switch align {
		case AlignStart:
			cross = ctx.RefLeft
		case AlignEnd:
			cross = ctx.RefLeft + ctx.RefWidth - ctx.PopperWidth
		default:
			cross = ctx.RefLeft + ctx.RefWidth/2 - ctx.PopperWidth/2
		}
		return Coordinate{
			X: clip(cross, ctx.WindowWidth, ctx.PopperWidth),
			Y: clip(primary, ctx.WindowHeight, ctx.PopperHeight),
		}
	}

	var cross float64
	switch align {
	case AlignStart:
		cross = ctx.RefTop
	case AlignEnd:
		cross = ctx.RefTop + ctx.RefHeight - ctx.PopperHeight
	default:
		cross = ctx.RefTop + ctx.RefHeight/2 - ctx.PopperHeight/2
	}
	return Coordinate{
		X: clip(primary, ctx.WindowWidth, ctx.PopperWidth),
		Y: clip(cross, ctx.WindowHeight, ctx.PopperHeight),
	}
}

// clip constrains v to [0, viewport-extent]. The min runs first so an
// oversized popper (extent > viewport) resolves to 0, not a negative.
func clip(v, viewport, extent float64) float64 {
	return math.Max(0, math.Min(v, viewport-extent))
}
