package popper

import (
	"math"
	"testing"
)

// centeredContext is a reference centered in a 1000x1000 viewport with
// ample space on every side.
func centeredContext(placement Placement, offset float64) Context {
	return Context{
		Dimensions: Dimensions{
			RefLeft:      450,
			RefTop:       450,
			RefWidth:     100,
			RefHeight:    100,
			RefRight:     550,
			PopperWidth:  50,
			PopperHeight: 50,
		},
		WindowWidth:  1000,
		WindowHeight: 1000,
		Offset:       offset,
		Placement:    placement,
	}
}

func TestResolveAllPlacements(t *testing.T) {
	tests := []struct {
		placement Placement
		want      Coordinate
	}{
		{PlacementTop, Coordinate{X: 475, Y: 400}},
		{PlacementTopStart, Coordinate{X: 450, Y: 400}},
		{PlacementTopEnd, Coordinate{X: 500, Y: 400}},
		{PlacementBottom, Coordinate{X: 475, Y: 550}},
		{PlacementBottomStart, Coordinate{X: 450, Y: 550}},
		{PlacementBottomEnd, Coordinate{X: 500, Y: 550}},
		{PlacementLeft, Coordinate{X: 400, Y: 475}},
		{PlacementLeftStart, Coordinate{X: 400, Y: 450}},
		{PlacementLeftEnd, Coordinate{X: 400, Y: 500}},
		{PlacementRight, Coordinate{X: 550, Y: 475}},
		{PlacementRightStart, Coordinate{X: 550, Y: 450}},
		{PlacementRightEnd, Coordinate{X: 550, Y: 500}},
	}

	for _, tt := range tests {
		t.Run(string(tt.placement), func(t *testing.T) {
			got := Resolve(centeredContext(tt.placement, 0))
			if got != tt.want {
				t.Errorf("Resolve() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

// TestResolveOffsetShift checks the offset law: the primary-axis
// coordinate moves by exactly d away from the reference, and the cross
// axis is untouched.
func TestResolveOffsetShift(t *testing.T) {
	const d = 17.5

	tests := []struct {
		placement Placement
		dx, dy    float64
	}{
		{PlacementTop, 0, -d},
		{PlacementBottom, 0, +d},
		{PlacementLeft, -d, 0},
		{PlacementRight, +d, 0},
		{PlacementTopStart, 0, -d},
		{PlacementBottomEnd, 0, +d},
		{PlacementLeftStart, -d, 0},
		{PlacementRightEnd, +d, 0},
	}

	for _, tt := range tests {
		t.Run(string(tt.placement), func(t *testing.T) {
			base := Resolve(centeredContext(tt.placement, 0))
			shifted := Resolve(centeredContext(tt.placement, d))

			if got, want := shifted.X-base.X, tt.dx; math.Abs(got-want) > 1e-9 {
				t.Errorf("x shift = %v, want %v", got, want)
			}
			if got, want := shifted.Y-base.Y, tt.dy; math.Abs(got-want) > 1e-9 {
				t.Errorf("y shift = %v, want %v", got, want)
			}
		})
	}
}

func TestResolveScenarios(t *testing.T) {
	tests := []struct {
		name string
		ctx  Context
		want Coordinate
	}{
		{
			name: "bottom-start centered",
			ctx:  centeredContext(PlacementBottomStart, 0),
			want: Coordinate{X: 450, Y: 550},
		},
		{
			name: "top with offset and tall popper",
			ctx: Context{
				Dimensions: Dimensions{
					RefLeft: 450, RefTop: 450, RefWidth: 100, RefHeight: 100, RefRight: 550,
					PopperWidth: 50, PopperHeight: 100,
				},
				WindowWidth: 1000, WindowHeight: 1000,
				Offset:    10,
				Placement: PlacementTop,
			},
			want: Coordinate{X: 475, Y: 340},
		},
		{
			name: "top with offset",
			ctx:  centeredContext(PlacementTop, 10),
			want: Coordinate{X: 475, Y: 390},
		},
		{
			name: "negative offset overlaps the reference",
			ctx:  centeredContext(PlacementBottom, -20),
			want: Coordinate{X: 475, Y: 530},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Resolve(tt.ctx); got != tt.want {
				t.Errorf("Resolve() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestResolveClipping(t *testing.T) {
	tests := []struct {
		name string
		ctx  Context
		want Coordinate
	}{
		{
			name: "top placement near top edge clips y to 0",
			ctx: Context{
				Dimensions: Dimensions{
					RefLeft: 450, RefTop: 5, RefWidth: 100, RefHeight: 40, RefRight: 550,
					PopperWidth: 50, PopperHeight: 20,
				},
				WindowWidth: 1000, WindowHeight: 1000,
				Placement: PlacementTop,
			},
			want: Coordinate{X: 475, Y: 0},
		},
		{
			name: "left placement near left edge clips x to 0",
			ctx: Context{
				Dimensions: Dimensions{
					RefLeft: 10, RefTop: 450, RefWidth: 40, RefHeight: 100, RefRight: 50,
					PopperWidth: 30, PopperHeight: 50,
				},
				WindowWidth: 1000, WindowHeight: 1000,
				Placement: PlacementLeft,
			},
			want: Coordinate{X: 0, Y: 475},
		},
		{
			name: "bottom placement past bottom edge clips to viewport",
			ctx: Context{
				Dimensions: Dimensions{
					RefLeft: 450, RefTop: 960, RefWidth: 100, RefHeight: 30, RefRight: 550,
					PopperWidth: 50, PopperHeight: 50,
				},
				WindowWidth: 1000, WindowHeight: 1000,
				Placement: PlacementBottom,
			},
			want: Coordinate{X: 475, Y: 950},
		},
		{
			name: "right placement past right edge clips to viewport",
			ctx: Context{
				Dimensions: Dimensions{
					RefLeft: 940, RefTop: 450, RefWidth: 50, RefHeight: 100, RefRight: 990,
					PopperWidth: 60, PopperHeight: 50,
				},
				WindowWidth: 1000, WindowHeight: 1000,
				Placement: PlacementRight,
			},
			want: Coordinate{X: 940, Y: 475},
		},
		{
			name: "popper wider than viewport pins x to 0",
			ctx: Context{
				Dimensions: Dimensions{
					RefLeft: 450, RefTop: 450, RefWidth: 100, RefHeight: 100, RefRight: 550,
					PopperWidth: 1200, PopperHeight: 50,
				},
				WindowWidth: 1000, WindowHeight: 1000,
				Placement: PlacementBottom,
			},
			want: Coordinate{X: 0, Y: 550},
		},
		{
			name: "popper taller than viewport pins y to 0",
			ctx: Context{
				Dimensions: Dimensions{
					RefLeft: 450, RefTop: 450, RefWidth: 100, RefHeight: 100, RefRight: 550,
					PopperWidth: 50, PopperHeight: 1200,
				},
				WindowWidth: 1000, WindowHeight: 1000,
				Placement: PlacementRight,
			},
			want: Coordinate{X: 550, Y: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Resolve(tt.ctx); got != tt.want {
				t.Errorf("Resolve() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

// TestResolveStaysInViewport sweeps placements and geometries and checks
// the clipping guarantee whenever the popper fits the viewport.
func TestResolveStaysInViewport(t *testing.T) {
	geometries := []Dimensions{
		{RefLeft: 0, RefTop: 0, RefWidth: 10, RefHeight: 10, RefRight: 10, PopperWidth: 200, PopperHeight: 120},
		{RefLeft: 950, RefTop: 950, RefWidth: 40, RefHeight: 40, RefRight: 990, PopperWidth: 300, PopperHeight: 80},
		{RefLeft: 500, RefTop: 20, RefWidth: 0, RefHeight: 0, RefRight: 500, PopperWidth: 100, PopperHeight: 100},
	}
	offsets := []float64{-30, 0, 25, 400}

	for _, dims := range geometries {
		for _, offset := range offsets {
			for _, placement := range Placements {
				got := Resolve(Context{
					Dimensions:   dims,
					WindowWidth:  1000,
					WindowHeight: 1000,
					Offset:       offset,
					Placement:    placement,
				})
				if got.X < 0 || got.X > 1000-dims.PopperWidth {
					t.Errorf("%s offset %v: x = %v out of [0, %v]", placement, offset, got.X, 1000-dims.PopperWidth)
				}
				if got.Y < 0 || got.Y > 1000-dims.PopperHeight {
					t.Errorf("%s offset %v: y = %v out of [0, %v]", placement, offset, got.Y, 1000-dims.PopperHeight)
				}
			}
		}
	}
}
