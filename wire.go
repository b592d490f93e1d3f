package mandel

// Wire messages exchanged between the coordinator (cmd/server) and render
// workers (cmd/worker) over a websocket connection, one JSON message per
// frame. The server sends TileJobs, the worker answers each with a
// TileResult carrying the same Seq.

// TileJob asks a worker to compute the iteration counts of one tile.
// Config carries the full render parameters; the worker chooses its own
// Lanes if the job leaves them zero.
type TileJob struct {
	Seq    int    `json:"seq"`
	Config Config `json:"config"`
	Tile   Tile   `json:"tile"`
}

// TileResult is the worker's answer: counts row-major within the tile.
type TileResult struct {
	Seq    int   `json:"seq"`
	Tile   Tile  `json:"tile"`
	Counts []int `json:"counts"`
}
