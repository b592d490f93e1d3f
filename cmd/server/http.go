package main

import (
	"context"
	"fmt"
	"image/png"
	"log"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/coder/websocket"
	mandel "github.com/marben/parmandel"
)

// webServer serves the worker websocket endpoint and a progress view of the
// render. Workers connect to /ws and are driven by serveWorker; GET
// /image.png returns the image as rendered so far.
func webServer(ts *tileScheduler, port int) *http.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", websocketHandler(ts))
	mux.HandleFunc("/image.png", progressHandler(ts))

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	log.Printf("listening on http://localhost:%d", port)
	return srv
}

// websocketHandler upgrades the connection and uses it as a render worker
// until the render completes or the worker drops.
func websocketHandler(ts *tileScheduler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			OriginPatterns: []string{"*"}, // TODO: tighten in prod
		})
		if err != nil {
			log.Println(err)
			return
		}

		log.Printf("got worker connection from: %s", r.RemoteAddr)
		if err := serveWorker(r.Context(), c, ts); err != nil {
			log.Printf("worker %s: %v", r.RemoteAddr, err)
			c.Close(websocket.StatusInternalError, "tile exchange failed")
			return
		}
		c.Close(websocket.StatusNormalClosure, "render complete")
	}
}

// serveWorker feeds tiles to one connected worker: pop a tile, send the
// job, wait for the counts, hand them to the scheduler. A tile whose
// result never arrives is requeued for other workers.
func serveWorker(ctx context.Context, c *websocket.Conn, ts *tileScheduler) error {
	ts.incActiveWorker()
	defer ts.decActiveWorkers()

	for seq := 0; ; seq++ {
		tile, found := ts.popTile()
		if !found {
			break
		}

		job := mandel.TileJob{Seq: seq, Config: ts.cfg, Tile: tile}
		data, err := sonic.Marshal(job)
		if err != nil {
			ts.requeue(tile)
			return fmt.Errorf("marshal job %d: %w", seq, err)
		}
		if err := c.Write(ctx, websocket.MessageText, data); err != nil {
			ts.requeue(tile)
			return fmt.Errorf("send job %d: %w", seq, err)
		}

		_, data, err = c.Read(ctx)
		if err != nil {
			ts.requeue(tile)
			return fmt.Errorf("read result %d: %w", seq, err)
		}
		var res mandel.TileResult
		if err := sonic.Unmarshal(data, &res); err != nil {
			ts.requeue(tile)
			return fmt.Errorf("unmarshal result %d: %w", seq, err)
		}
		if err := checkResult(job, res); err != nil {
			ts.requeue(tile)
			return err
		}

		ts.tileFinished(res)
	}
	return nil
}

// checkResult verifies that a worker's answer matches the job it was sent.
func checkResult(job mandel.TileJob, res mandel.TileResult) error {
	if res.Seq != job.Seq {
		return fmt.Errorf("result seq %d does not match job seq %d", res.Seq, job.Seq)
	}
	if res.Tile != job.Tile {
		return fmt.Errorf("result %d tile %s does not match job tile %s", job.Seq, res.Tile, job.Tile)
	}
	if len(res.Counts) != job.Tile.Pixels() {
		return fmt.Errorf("result %d carries %d counts for the %d pixel tile %s", job.Seq, len(res.Counts), job.Tile.Pixels(), job.Tile)
	}
	return nil
}

// progressHandler encodes the current state of the buffer as a PNG.
func progressHandler(ts *tileScheduler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		img := mandel.RGBAImage(ts.snapshot(), ts.cfg.MaxIter)
		w.Header().Set("Content-Type", "image/png")
		if err := png.Encode(w, img); err != nil {
			log.Printf("encode progress image: %v", err)
		}
	}
}
