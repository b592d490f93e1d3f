package mandel

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Render computes the iteration counts for every pixel of cfg's image.
//
// The image rows are split into cfg.Workers contiguous ranges, as evenly as
// possible (the first Height mod Workers ranges take one extra row), and
// each range is filled by one goroutine. Row ranges are disjoint, so the
// workers share the buffer by partition and never synchronize on pixel
// data; Render returns only after every worker has finished.
//
// Cancellation is cooperative and checked per row; on cancellation the
// partially filled buffer is discarded and ctx.Err is returned. For a fixed
// config the result is identical for any Workers and Lanes.
func Render(ctx context.Context, cfg Config) (*IterationBuffer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg = cfg.Normalized()

	buf := NewIterationBuffer(cfg.Width, cfg.Height)

	g, ctx := errgroup.WithContext(ctx)
	rows := cfg.Height / cfg.Workers
	extra := cfg.Height % cfg.Workers
	next := 0
	for w := 0; w < cfg.Workers; w++ {
		n := rows
		if w < extra {
			n++
		}
		y0, y1 := next, next+n
		g.Go(func() error {
			return renderRows(ctx, cfg, y0, y1, buf)
		})
		next = y1
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return buf, nil
}

// renderRows fills rows [y0, y1) of buf, sweeping each row left to right in
// lane-width batches. The trailing batch of a row is simply shorter; the
// kernel gives identical per-lane results for any batch length.
func renderRows(ctx context.Context, cfg Config, y0, y1 int, buf *IterationBuffer) error {
	var k laneKernel
	k.grow(cfg.Lanes)
	cre := make([]float64, cfg.Lanes)
	cim := make([]float64, cfg.Lanes)

	for y := y0; y < y1; y++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		row := buf.Row(y)
		for x := 0; x < cfg.Width; x += cfg.Lanes {
			n := min(cfg.Lanes, cfg.Width-x)
			for l := 0; l < n; l++ {
				cre[l], cim[l] = cfg.PixelCoord(x+l, y)
			}
			k.run(cre[:n], cim[:n], row[x:x+n], cfg.MaxIter)
		}
	}
	return nil
}

// RenderTile computes the counts for one tile of cfg's image on the calling
// goroutine, returned row-major within the tile (index (y-t.Y0)*t.W + x-t.X0).
// Pixel coordinates are global, so stitched tiles reproduce a full Render
// bit for bit.
func RenderTile(cfg Config, t Tile) ([]int, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg = cfg.Normalized()

	counts := make([]int, t.Pixels())
	var k laneKernel
	k.grow(cfg.Lanes)
	cre := make([]float64, cfg.Lanes)
	cim := make([]float64, cfg.Lanes)

	for y := t.Y0; y < t.Y0+t.H; y++ {
		row := counts[(y-t.Y0)*t.W : (y-t.Y0+1)*t.W]
		for x := 0; x < t.W; x += cfg.Lanes {
			n := min(cfg.Lanes, t.W-x)
			for l := 0; l < n; l++ {
				cre[l], cim[l] = cfg.PixelCoord(t.X0+x+l, y)
			}
			k.run(cre[:n], cim[:n], row[x:x+n], cfg.MaxIter)
		}
	}
	return counts, nil
}
