package mandel

import "testing"

func TestPixelCoordSamplesCenters(t *testing.T) {
	cfg := Config{
		Region: Region{Xmin: 0, Xmax: 1, Ymin: 0, Ymax: 1},
		Width:  2,
		Height: 2,
	}
	tests := []struct {
		x, y   int
		re, im float64
	}{
		{0, 0, 0.25, 0.25},
		{1, 0, 0.75, 0.25},
		{0, 1, 0.25, 0.75},
		{1, 1, 0.75, 0.75},
	}
	for _, tt := range tests {
		re, im := cfg.PixelCoord(tt.x, tt.y)
		if re != tt.re || im != tt.im {
			t.Errorf("PixelCoord(%d, %d) = (%v, %v), want (%v, %v)", tt.x, tt.y, re, im, tt.re, tt.im)
		}
	}
}

func TestPixelCoordKeepsSamplesInsideViewport(t *testing.T) {
	cfg := Config{
		Region: Region{Xmin: -2, Xmax: 1, Ymin: -1.5, Ymax: 1.5},
		Width:  7,
		Height: 5,
	}
	for y := 0; y < cfg.Height; y++ {
		for x := 0; x < cfg.Width; x++ {
			re, im := cfg.PixelCoord(x, y)
			if re <= cfg.Region.Xmin || re >= cfg.Region.Xmax || im <= cfg.Region.Ymin || im >= cfg.Region.Ymax {
				t.Fatalf("PixelCoord(%d, %d) = (%v, %v), outside the open viewport", x, y, re, im)
			}
		}
	}
}

func TestConfigNormalized(t *testing.T) {
	cfg := Config{Width: 10, Height: 4}

	n := cfg.Normalized()
	if n.Workers <= 0 {
		t.Errorf("Workers defaulted to %d, want positive", n.Workers)
	}
	if n.Workers > n.Height {
		t.Errorf("Workers = %d, want clamped to height %d", n.Workers, n.Height)
	}
	if n.Lanes != DefaultLanes {
		t.Errorf("Lanes defaulted to %d, want %d", n.Lanes, DefaultLanes)
	}

	cfg.Workers = 3
	cfg.Lanes = 8
	n = cfg.Normalized()
	if n.Workers != 3 || n.Lanes != 8 {
		t.Errorf("Normalized changed explicit values: %+v", n)
	}
}

func TestConfigValidate(t *testing.T) {
	valid := Config{
		Region:  Region{Xmin: -2, Xmax: 1, Ymin: -1, Ymax: 1},
		Width:   10,
		Height:  10,
		MaxIter: 100,
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}

	lanes := valid
	lanes.Lanes = 6
	if err := lanes.Validate(); err == nil {
		t.Error("lanes=6 accepted, want power-of-two error")
	}
	lanes.Lanes = 16
	if err := lanes.Validate(); err != nil {
		t.Errorf("lanes=16 rejected: %v", err)
	}
}
