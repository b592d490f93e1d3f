// Package mandel computes escape-time renders of the Mandelbrot set.
//
// The package maps image pixels onto a rectangular region of the complex
// plane, iterates z = z*z + c in lane-width batches and fills a flat
// iteration-count buffer using a fixed pool of row workers. Color mapping
// and PNG encoding of the finished buffer live here too; argument parsing
// and file I/O belong to the cmd binaries.
package mandel

import (
	"fmt"
)

// Region is the rectangle of the complex plane being rendered.
// Xmin/Xmax span the real axis, Ymin/Ymax the imaginary axis.
type Region struct {
	Xmin float64 `json:"xmin"`
	Xmax float64 `json:"xmax"`
	Ymin float64 `json:"ymin"`
	Ymax float64 `json:"ymax"`
}

// Validate reports whether the region spans a non-empty rectangle.
func (r Region) Validate() error {
	if !(r.Xmin < r.Xmax) {
		return fmt.Errorf("region: xmin (%v) must be less than xmax (%v)", r.Xmin, r.Xmax)
	}
	if !(r.Ymin < r.Ymax) {
		return fmt.Errorf("region: ymin (%v) must be less than ymax (%v)", r.Ymin, r.Ymax)
	}
	return nil
}

func (r Region) String() string {
	return fmt.Sprintf("x:[%v,%v] y:[%v,%v]", r.Xmin, r.Xmax, r.Ymin, r.Ymax)
}

// CenteredRegion builds a region from a real-axis span and an imaginary
// center, with the imaginary span derived from aspect (width/height) so the
// rendered image is not stretched.
func CenteredRegion(xmin, xmax, ycenter, aspect float64) Region {
	dy := (xmax - xmin) / aspect
	return Region{
		Xmin: xmin,
		Xmax: xmax,
		Ymin: ycenter - dy/2,
		Ymax: ycenter + dy/2,
	}
}

// Classic landmarks in the Mandelbrot set, identified by the real-axis span
// and imaginary center; the caller supplies the output aspect ratio.
var locations = map[string]struct {
	xmin, xmax, ycenter float64
}{
	// Seahorse Valley – dense filaments and repeating seahorse curls
	"seahorse": {-0.7856455, -0.7340665, 0.12554725},
	// Deep spiral zoom – tight spiral arms around a minibrot
	"deep-spiral": {-0.745538, -0.743538, 0.121200},
	// Elephant Valley – large bulb with trunk-like tendrils
	"elephant": {0.275, 0.28, 0.007},
}

// Fixed landmark rectangles, rendered as-is whatever the output aspect
// ratio.
var fixedLocations = map[string]Region{
	// Seahorse Valley – dense filaments and repeating seahorse curls
	"seahorse-valley": {Xmin: -0.8, Xmax: -0.7, Ymin: 0.05, Ymax: 0.15},
	// Elephant Valley – large bulb with trunk-like tendrils
	"elephant-valley": {Xmin: -1.85, Xmax: -1.75, Ymin: -0.10, Ymax: -0.02},
	// Spiral Minibrot – small Mandelbrot copy with tight spiral arms
	"spiral-minibrot": {Xmin: -0.7435, Xmax: -0.7420, Ymin: 0.1310, Ymax: 0.1325},
	// Triple Spiral – threefold symmetric spiral structure
	"triple-spiral": {Xmin: -0.7480, Xmax: -0.7450, Ymin: 0.0950, Ymax: 0.0980},
	// Valley of the Dragon – deep, highly detailed spiral filaments
	"valley-of-the-dragon": {Xmin: -0.7400, Xmax: -0.7350, Ymin: 0.1800, Ymax: 0.1850},
	// Minibrot in a Mini-Spiral – self-similar Mandelbrot copy inside a spiral arm
	"minibrot-in-mini-spiral": {Xmin: -1.7390, Xmax: -1.7375, Ymin: -0.0235, Ymax: -0.0220},
}

// Location returns the named landmark region. Center+span landmarks are
// fitted to aspect; fixed rectangles ignore it. Returns an error listing
// the known names when name is unknown.
func Location(name string, aspect float64) (Region, error) {
	if r, ok := fixedLocations[name]; ok {
		return r, nil
	}
	loc, ok := locations[name]
	if !ok {
		return Region{}, fmt.Errorf("unknown location %q (known: %v)", name, LocationNames())
	}
	return CenteredRegion(loc.xmin, loc.xmax, loc.ycenter, aspect), nil
}

// LocationNames lists the known landmark names in a fixed order.
func LocationNames() []string {
	return []string{
		"seahorse", "deep-spiral", "elephant",
		"seahorse-valley", "elephant-valley", "spiral-minibrot",
		"triple-spiral", "valley-of-the-dragon", "minibrot-in-mini-spiral",
	}
}
