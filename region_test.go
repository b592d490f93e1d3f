package mandel

import (
	"math"
	"testing"
)

func TestRegionValidate(t *testing.T) {
	tests := []struct {
		name    string
		r       Region
		wantErr bool
	}{
		{"valid", Region{-2, 1, -1, 1}, false},
		{"inverted x", Region{1, -2, -1, 1}, true},
		{"empty x", Region{0.5, 0.5, -1, 1}, true},
		{"inverted y", Region{-2, 1, 1, -1}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.r.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestCenteredRegionFitsAspect(t *testing.T) {
	r := CenteredRegion(-1, 1, 0.5, 4)
	if r.Xmin != -1 || r.Xmax != 1 {
		t.Fatalf("real span changed: %s", r)
	}
	if dy := r.Ymax - r.Ymin; math.Abs(dy-0.5) > 1e-15 {
		t.Errorf("imaginary span = %v, want 0.5 for aspect 4", dy)
	}
	if c := (r.Ymin + r.Ymax) / 2; math.Abs(c-0.5) > 1e-15 {
		t.Errorf("imaginary center = %v, want 0.5", c)
	}
}

func TestLocation(t *testing.T) {
	for _, name := range LocationNames() {
		r, err := Location(name, 16.0/9.0)
		if err != nil {
			t.Fatalf("Location(%q): %v", name, err)
		}
		if err := r.Validate(); err != nil {
			t.Errorf("Location(%q) produced invalid region: %v", name, err)
		}
	}

	if _, err := Location("nessie", 1); err == nil {
		t.Error("unknown location accepted")
	}
}

// The fixed landmark rectangles are returned as-is, whatever aspect the
// caller renders at.
func TestLocationFixedRectangles(t *testing.T) {
	narrow, err := Location("valley-of-the-dragon", 1)
	if err != nil {
		t.Fatalf("Location: %v", err)
	}
	wide, err := Location("valley-of-the-dragon", 16.0/9.0)
	if err != nil {
		t.Fatalf("Location: %v", err)
	}
	if narrow != wide {
		t.Errorf("fixed rectangle changed with aspect: %s vs %s", narrow, wide)
	}

	want := Region{Xmin: -0.8, Xmax: -0.7, Ymin: 0.05, Ymax: 0.15}
	if got, _ := Location("seahorse-valley", 2); got != want {
		t.Errorf("seahorse-valley = %s, want %s", got, want)
	}
}
