package popper

import "testing"

func TestPlacementComponents(t *testing.T) {
	tests := []struct {
		placement Placement
		side      Side
		align     Align
	}{
		{"top", SideTop, AlignMiddle},
		{"top-start", SideTop, AlignStart},
		{"top-middle", SideTop, AlignMiddle},
		{"top-end", SideTop, AlignEnd},
		{"bottom", SideBottom, AlignMiddle},
		{"bottom-start", SideBottom, AlignStart},
		{"bottom-end", SideBottom, AlignEnd},
		{"left", SideLeft, AlignMiddle},
		{"left-start", SideLeft, AlignStart},
		{"left-end", SideLeft, AlignEnd},
		{"right", SideRight, AlignMiddle},
		{"right-start", SideRight, AlignStart},
		{"right-end", SideRight, AlignEnd},

		// Malformed tokens fall back to the defaults rather than
		// panicking; validation rejects them earlier.
		{"", SideBottom, AlignMiddle},
		{"diagonal", SideBottom, AlignMiddle},
		{"top-center", SideTop, AlignMiddle},
	}

	for _, tt := range tests {
		t.Run(string(tt.placement), func(t *testing.T) {
			side, align := tt.placement.Components()
			if side != tt.side || align != tt.align {
				t.Errorf("Components() = %v, %v, want %v, %v", side, align, tt.side, tt.align)
			}
		})
	}
}

func TestPlacementIsValid(t *testing.T) {
	for _, p := range Placements {
		if !p.IsValid() {
			t.Errorf("IsValid(%q) = false, want true", p)
		}
	}

	explicit := []Placement{"top-middle", "bottom-middle", "left-middle", "right-middle"}
	for _, p := range explicit {
		if !p.IsValid() {
			t.Errorf("IsValid(%q) = false, want true", p)
		}
	}

	invalid := []Placement{"", "middle", "top-center", "up", "top-start-end", "Top"}
	for _, p := range invalid {
		if p.IsValid() {
			t.Errorf("IsValid(%q) = true, want false", p)
		}
	}
}

func TestPlacementCanonical(t *testing.T) {
	tests := []struct {
		in   Placement
		want Placement
	}{
		{"top-middle", "top"},
		{"top", "top"},
		{"bottom-start", "bottom-start"},
		{"right-middle", "right"},
	}

	for _, tt := range tests {
		t.Run(string(tt.in), func(t *testing.T) {
			if got := tt.in.Canonical(); got != tt.want {
				t.Errorf("Canonical() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPlacementsCount(t *testing.T) {
	if len(Placements) != 12 {
		t.Fatalf("len(Placements) = %d, want 12", len(Placements))
	}
	seen := make(map[Placement]bool, len(Placements))
	for _, p := range Placements {
		if seen[p] {
			t.Errorf("duplicate placement %q", p)
		}
		seen[p] = true
	}
}
