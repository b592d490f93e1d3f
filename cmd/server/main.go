// server coordinates a distributed Mandelbrot render.
// It splits the image into tiles, hands tiles to workers connecting over
// websocket, and writes the assembled image as a PNG file once every tile
// has been rendered. Rendering itself happens only on the workers.

package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/google/gops/agent"
	mandel "github.com/marben/parmandel"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

func run() error {
	port := flag.Int("port", 8080, "http port for worker and progress endpoints")
	iters := flag.Int("iters", mandel.DefaultMaxIter, "number of iterations to check whether a point belongs to the set")
	width := flag.Int("width", 1920, "width of the result picture")
	height := flag.Int("height", 1080, "height of the result picture")
	xmin := flag.Float64("x-min", -2.0, "minimum of the real axis")
	xmax := flag.Float64("x-max", 1.0, "maximum of the real axis")
	ymin := flag.Float64("y-min", -0.84375, "minimum of the imaginary axis")
	ymax := flag.Float64("y-max", 0.84375, "maximum of the imaginary axis")
	location := flag.String("location", "seahorse", "named landmark region overriding the axis flags, one of: "+strings.Join(mandel.LocationNames(), ", ")+" (empty = use axis flags)")
	tileSize := flag.Int("tile", 64, "tile edge length in pixels")
	out := flag.String("o", "mandel.png", "output PNG path")
	gops := flag.Bool("gops", false, "start a gops diagnostics agent")
	flag.Parse()

	if *gops {
		if err := agent.Listen(agent.Options{}); err != nil {
			return fmt.Errorf("gops agent: %w", err)
		}
	}

	cfg := mandel.Config{
		Region:  mandel.Region{Xmin: *xmin, Xmax: *xmax, Ymin: *ymin, Ymax: *ymax},
		Width:   *width,
		Height:  *height,
		MaxIter: *iters,
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
	if *tileSize <= 0 {
		return fmt.Errorf("tile size %d: must be positive", *tileSize)
	}

	scheduler := newTileScheduler(cfg, *tileSize)

	srv := webServer(scheduler, *port)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("httpServer: %v", err)
		}
	}()

	log.Printf("waiting for workers to render %dx%d of %s", cfg.Width, cfg.Height, cfg.Region)
	buf := scheduler.wait()

	f, err := os.Create(*out)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, mandel.RGBAImage(buf, cfg.MaxIter)); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}

	log.Printf("fully rendered image saved to %q", *out)
	return nil
}
