package main

import (
	"context"
	"log"
	"sync"

	mandel "github.com/marben/parmandel"
)

// tileScheduler hands out tiles of one render to connected workers and
// assembles their results into the shared IterationBuffer. Tiles move from
// unstarted to inProcess when popped; when no unstarted tile is left,
// popTile re-issues an inProcess tile, so a stalled or disconnected worker
// never blocks completion. Duplicate results are harmless: the kernel is
// deterministic, a re-rendered tile carries the same counts.
type tileScheduler struct {
	cfg mandel.Config
	buf *mandel.IterationBuffer

	ctx       context.Context
	ctxCancel context.CancelFunc

	workers        int
	totalPixels    int
	finishedPixels int

	unstarted map[mandel.Tile]struct{}
	inProcess map[mandel.Tile]struct{}
	m         sync.Mutex
}

func newTileScheduler(cfg mandel.Config, tileSize int) *tileScheduler {
	allTiles := mandel.SplitTiles(cfg.Width, cfg.Height, tileSize, tileSize)
	unstarted := make(map[mandel.Tile]struct{}, len(allTiles))
	for _, t := range allTiles {
		unstarted[t] = struct{}{}
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &tileScheduler{
		cfg:         cfg,
		buf:         mandel.NewIterationBuffer(cfg.Width, cfg.Height),
		unstarted:   unstarted,
		inProcess:   make(map[mandel.Tile]struct{}),
		totalPixels: cfg.Width * cfg.Height,
		ctx:         ctx,
		ctxCancel:   cancel,
	}
}

func (ts *tileScheduler) popTile() (tile mandel.Tile, found bool) {
	ts.m.Lock()
	defer ts.m.Unlock()

	// Get unstarted tile
	if len(ts.unstarted) > 0 {
		for tile = range ts.unstarted {
			break
		}
		delete(ts.unstarted, tile)

		// Move popped tile to currently processed tiles
		ts.inProcess[tile] = struct{}{}
		return tile, true
	}

	// If there is no unstarted tile, we work again on a started one
	if len(ts.inProcess) > 0 {
		for tile = range ts.inProcess {
			break
		}
		return tile, true
	}

	return mandel.Tile{}, false
}

// requeue returns a popped tile to the unstarted pool after a worker
// failed to deliver its result.
func (ts *tileScheduler) requeue(tile mandel.Tile) {
	ts.m.Lock()
	defer ts.m.Unlock()

	if _, found := ts.inProcess[tile]; found {
		delete(ts.inProcess, tile)
		ts.unstarted[tile] = struct{}{}
	}
}

// tileFinished copies a worker's counts into the shared buffer and marks
// the tile done. The render context is cancelled once the last tile lands.
//
// A duplicate result arriving after that point is dropped without touching
// the buffer: wait has released it for lock-free reading, so a late copy
// would race with the final PNG encode even though the values are equal.
func (ts *tileScheduler) tileFinished(res mandel.TileResult) {
	t := res.Tile
	ts.m.Lock()

	if len(ts.unstarted) == 0 && len(ts.inProcess) == 0 {
		ts.m.Unlock()
		log.Printf("dropping late duplicate result for tile %s", t)
		return
	}

	for y := 0; y < t.H; y++ {
		copy(ts.buf.Row(t.Y0+y)[t.X0:t.X0+t.W], res.Counts[y*t.W:(y+1)*t.W])
	}

	if _, found := ts.inProcess[t]; found {
		ts.finishedPixels += t.Pixels()
	}
	delete(ts.inProcess, t)

	if len(ts.unstarted) == 0 && len(ts.inProcess) == 0 {
		ts.ctxCancel()
	}
	ts.m.Unlock()

	log.Printf("finished: %f", ts.finished())
}

func (ts *tileScheduler) finished() float32 {
	ts.m.Lock()
	defer ts.m.Unlock()
	return float32(ts.finishedPixels) / float32(ts.totalPixels)
}

// wait blocks until every tile has been rendered and returns the buffer.
func (ts *tileScheduler) wait() *mandel.IterationBuffer {
	<-ts.ctx.Done()
	return ts.buf
}

// snapshot returns a copy of the buffer as rendered so far, for the
// progress endpoint.
func (ts *tileScheduler) snapshot() *mandel.IterationBuffer {
	ts.m.Lock()
	defer ts.m.Unlock()

	cp := mandel.NewIterationBuffer(ts.buf.Width, ts.buf.Height)
	copy(cp.Counts, ts.buf.Counts)
	return cp
}

func (ts *tileScheduler) incActiveWorker() {
	ts.m.Lock()
	ts.workers++
	w := ts.workers
	ts.m.Unlock()

	log.Printf("workers: %d", w)
}

func (ts *tileScheduler) decActiveWorkers() {
	ts.m.Lock()
	ts.workers--
	w := ts.workers
	ts.m.Unlock()

	log.Printf("workers: %d", w)
}
