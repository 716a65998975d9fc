package cli

import (
	"github.com/BurntSushi/toml"

	"github.com/fxui/popper/pkg/errors"
	"github.com/fxui/popper/pkg/popper"
)

// Scenario describes a positioning problem in a TOML file: viewport and
// reference geometry, popper size, and the placements to resolve.
//
//	offset = 10
//	placements = ["bottom-start", "top"]
//
//	[viewport]
//	width = 1000
//	height = 1000
//
//	[reference]
//	left = 450
//	top = 450
//	width = 100
//	height = 100
//
//	[popper]
//	width = 50
//	height = 50
type Scenario struct {
	Offset     float64  `toml:"offset"`
	Placements []string `toml:"placements"`
	Viewport   Size     `toml:"viewport"`
	Reference  Box      `toml:"reference"`
	Popper     Size     `toml:"popper"`
}

// Size is a width/height pair in pixels.
type Size struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

// Box is a positioned rectangle in viewport pixels.
type Box struct {
	Left   float64 `toml:"left"`
	Top    float64 `toml:"top"`
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

// LoadScenario reads and validates a scenario file.
// An empty placements list resolves all twelve placements.
func LoadScenario(path string) (*Scenario, error) {
	var s Scenario
	if _, err := toml.DecodeFile(path, &s); err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks placements and offset.
func (s *Scenario) Validate() error {
	for _, token := range s.Placements {
		if err := errors.ValidatePlacement(token); err != nil {
			return err
		}
	}
	return errors.ValidateOffset(s.Offset)
}

// ResolvedPlacements returns the placements to resolve, defaulting to
// all twelve when the scenario names none.
func (s *Scenario) ResolvedPlacements() []popper.Placement {
	if len(s.Placements) == 0 {
		return popper.Placements
	}
	placements := make([]popper.Placement, 0, len(s.Placements))
	for _, token := range s.Placements {
		placements = append(placements, popper.Placement(token))
	}
	return placements
}

// Context builds the resolver input for one placement.
func (s *Scenario) Context(placement popper.Placement) popper.Context {
	return popper.Context{
		Dimensions: popper.Dimensions{
			RefHeight:    s.Reference.Height,
			RefWidth:     s.Reference.Width,
			RefLeft:      s.Reference.Left,
			RefTop:       s.Reference.Top,
			RefRight:     s.Reference.Left + s.Reference.Width,
			PopperHeight: s.Popper.Height,
			PopperWidth:  s.Popper.Width,
		},
		WindowWidth:  s.Viewport.Width,
		WindowHeight: s.Viewport.Height,
		Offset:       s.Offset,
		Placement:    placement,
	}
}
