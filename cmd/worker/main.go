// worker is a remote render worker for the distributed Mandelbrot server.
// It connects to the server's websocket endpoint, renders the tiles it is
// handed and sends the iteration counts back, until the server closes the
// connection.

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/bytedance/sonic"
	"github.com/coder/websocket"
	mandel "github.com/marben/parmandel"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

func run() error {
	connect := flag.String("connect", "ws://localhost:8080/ws", "websocket url of the render server")
	lanes := flag.Int("lanes", mandel.DefaultLanes, "pixels iterated per kernel batch, a power of two")
	flag.Parse()

	ctx := context.Background()

	log.Printf("connecting to %s", *connect)
	c, _, err := websocket.Dial(ctx, *connect, nil)
	if err != nil {
		return fmt.Errorf("failed to connect to server: %w", err)
	}
	defer c.CloseNow()

	for {
		_, data, err := c.Read(ctx)
		if err != nil {
			if websocket.CloseStatus(err) == websocket.StatusNormalClosure {
				log.Printf("server closed connection: render complete")
				return nil
			}
			return fmt.Errorf("read job: %w", err)
		}

		var job mandel.TileJob
		if err := sonic.Unmarshal(data, &job); err != nil {
			return fmt.Errorf("unmarshal job: %w", err)
		}
		if job.Config.Lanes == 0 {
			job.Config.Lanes = *lanes
		}

		log.Printf("rendering tile: %s", job.Tile)
		start := time.Now()
		counts, err := mandel.RenderTile(job.Config, job.Tile)
		if err != nil {
			return fmt.Errorf("render tile %s: %w", job.Tile, err)
		}
		log.Printf("tile %s took %s", job.Tile, time.Since(start))

		data, err = sonic.Marshal(mandel.TileResult{Seq: job.Seq, Tile: job.Tile, Counts: counts})
		if err != nil {
			return fmt.Errorf("marshal result: %w", err)
		}
		if err := c.Write(ctx, websocket.MessageText, data); err != nil {
			return fmt.Errorf("send result: %w", err)
		}
	}
}
