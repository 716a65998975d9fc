package popper

import (
	"github.com/fxui/popper/pkg/dom"
	"github.com/fxui/popper/pkg/errors"
)

// Dimensions is the measured geometry a placement is resolved from.
// All values are viewport-relative pixels. RefRight is derived
// (RefLeft + RefWidth) and exists for right-edge arithmetic.
type Dimensions struct {
	RefHeight    float64
	RefWidth     float64
	RefLeft      float64
	RefTop       float64
	RefRight     float64
	PopperHeight float64
	PopperWidth  float64
}

// ReadDimensions measures a reference/popper pair.
//
// Rectangle reads are memoized for the duration of this one call, so
// passing the same element as both reference and popper measures it
// once. The memo is deliberately not kept across calls: either element
// can move or resize between calls (scroll, resize, mutation), so every
// call re-measures from scratch.
func ReadDimensions(reference, popper dom.Element) (Dimensions, error) {
	if reference == nil {
		return Dimensions{}, errors.New(errors.ErrCodeInvalidReferenceElement, "reference element is nil")
	}
	if popper == nil {
		return Dimensions{}, errors.New(errors.ErrCodeInvalidPopperElement, "popper element is nil")
	}

	rects := make(map[dom.Element]dom.Rect, 2)
	measure := func(el dom.Element) dom.Rect {
		if r, ok := rects[el]; ok {
			return r
		}
		r := el.BoundingRect()
		rects[el] = r
		return r
	}

	ref := measure(reference)
	pop := measure(popper)

	return Dimensions{
		RefHeight:    ref.Height,
		RefWidth:     ref.Width,
		RefLeft:      ref.Left,
		RefTop:       ref.Top,
		RefRight:     ref.Right(),
		PopperHeight: pop.Height,
		PopperWidth:  pop.Width,
	}, nil
}
