// render is the single-machine CLI for the Mandelbrot engine.
// It validates the flags, renders the configured viewport on all local CPUs
// and saves the result as a PNG file.

package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"strings"
	"time"

	mandel "github.com/marben/parmandel"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("FATAL: %v", err)
	}
}

func run() error {
	iters := flag.Int("iters", mandel.DefaultMaxIter, "number of iterations to check whether a point belongs to the set")
	width := flag.Int("width", 3840, "width of the result picture")
	height := flag.Int("height", 2160, "height of the result picture")
	xmin := flag.Float64("x-min", -2.0, "minimum of the real axis")
	xmax := flag.Float64("x-max", 1.0, "maximum of the real axis")
	ymin := flag.Float64("y-min", -0.84375, "minimum of the imaginary axis")
	ymax := flag.Float64("y-max", 0.84375, "maximum of the imaginary axis")
	location := flag.String("location", "", "named landmark region overriding the axis flags, one of: "+strings.Join(mandel.LocationNames(), ", "))
	workers := flag.Int("workers", 0, "number of parallel workers (0 = all CPUs)")
	lanes := flag.Int("lanes", mandel.DefaultLanes, "pixels iterated per kernel batch, a power of two")
	palette := flag.String("palette", "gray", "color palette: gray or hsv")
	out := flag.String("o", "image.png", "output PNG path")
	flag.Parse()

	cfg := mandel.Config{
		Region:  mandel.Region{Xmin: *xmin, Xmax: *xmax, Ymin: *ymin, Ymax: *ymax},
		Width:   *width,
		Height:  *height,
		MaxIter: *iters,
		Workers: *workers,
		Lanes:   *lanes,
	}
	if *location != "" {
		region, err := mandel.Location(*location, cfg.Aspect())
		if err != nil {
			return err
		}
		cfg.Region = region
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log.Printf("rendering %dx%d of %s with %d iterations", cfg.Width, cfg.Height, cfg.Region, cfg.MaxIter)
	start := time.Now()
	buf, err := mandel.Render(context.Background(), cfg)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	log.Printf("render took %s", time.Since(start))

	var img image.Image
	switch *palette {
	case "gray":
		img = mandel.GrayImage(buf, cfg.MaxIter)
	case "hsv":
		img = mandel.RGBAImage(buf, cfg.MaxIter)
	default:
		return fmt.Errorf("unknown palette %q (known: gray, hsv)", *palette)
	}

	f, err := os.Create(*out)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}

	log.Printf("image saved to %q", *out)
	return nil
}
