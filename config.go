package mandel

import (
	"fmt"
	"runtime"
)

// Defaults applied by Config.Normalized.
const (
	DefaultMaxIter = 1000
	DefaultLanes   = 4
)

// Config describes one render: the plane region, the output resolution and
// the iteration and parallelism limits. A Config is read-only for the
// duration of a render.
type Config struct {
	Region  Region `json:"region"`
	Width   int    `json:"width"`
	Height  int    `json:"height"`
	MaxIter int    `json:"maxIter"`

	// Workers is the number of concurrent row workers. Zero or negative
	// means one worker per CPU.
	Workers int `json:"workers,omitempty"`

	// Lanes is the number of pixels iterated together in one kernel batch.
	// Must be a power of two. Zero or negative selects DefaultLanes.
	// The rendered image does not depend on Workers or Lanes.
	Lanes int `json:"lanes,omitempty"`
}

// Validate rejects configs the renderer must never see. It checks the
// region, the resolution and the iteration limit; Workers and Lanes are
// defaulted by Normalized instead of rejected, except that a positive
// Lanes must be a power of two.
func (c Config) Validate() error {
	if err := c.Region.Validate(); err != nil {
		return err
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("resolution %dx%d: both dimensions must be positive", c.Width, c.Height)
	}
	if c.MaxIter <= 0 {
		return fmt.Errorf("max iterations %d: must be positive", c.MaxIter)
	}
	if c.Lanes > 0 && c.Lanes&(c.Lanes-1) != 0 {
		return fmt.Errorf("lanes %d: must be a power of two", c.Lanes)
	}
	return nil
}

// Normalized returns a copy with Workers and Lanes clamped to usable values.
func (c Config) Normalized() Config {
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.Workers > c.Height {
		c.Workers = c.Height
	}
	if c.Lanes <= 0 {
		c.Lanes = DefaultLanes
	}
	return c
}

// Aspect is the width/height ratio of the output image.
func (c Config) Aspect() float64 {
	return float64(c.Width) / float64(c.Height)
}

// PixelCoord maps pixel (x, y) to its complex-plane coordinate. The sample
// point is the pixel center, so the viewport edges land on pixel borders
// and a symmetric region renders symmetrically.
func (c Config) PixelCoord(x, y int) (re, im float64) {
	re = c.Region.Xmin + (float64(x)+0.5)*(c.Region.Xmax-c.Region.Xmin)/float64(c.Width)
	im = c.Region.Ymin + (float64(y)+0.5)*(c.Region.Ymax-c.Region.Ymin)/float64(c.Height)
	return re, im
}
