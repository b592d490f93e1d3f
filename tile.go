package mandel

import "fmt"

// Tile is a rectangular block of the output image, in global pixel
// coordinates. Tiles are the unit of work handed to remote workers.
type Tile struct {
	X0 int `json:"x0"` // top-left pixel in the global image
	Y0 int `json:"y0"`
	W  int `json:"w"` // tile width & height
	H  int `json:"h"`
}

func (t Tile) String() string {
	return fmt.Sprintf("(%d,%d)+%dx%d", t.X0, t.Y0, t.W, t.H)
}

// Pixels is the number of pixels covered by the tile.
func (t Tile) Pixels() int {
	return t.W * t.H
}

// SplitTiles partitions a w x h image into tiles of size tileW x tileH.
// Tiles at the right and bottom edges are smaller if the image is not
// divisible. The returned tiles are disjoint and cover every pixel exactly
// once.
func SplitTiles(w, h, tileW, tileH int) []Tile {
	if tileW <= 0 || tileH <= 0 {
		panic("tile dimensions must be positive")
	}

	tiles := make([]Tile, 0, ((w+tileW-1)/tileW)*((h+tileH-1)/tileH))
	for oy := 0; oy < h; oy += tileH {
		th := min(tileH, h-oy)
		for ox := 0; ox < w; ox += tileW {
			tw := min(tileW, w-ox)
			tiles = append(tiles, Tile{X0: ox, Y0: oy, W: tw, H: th})
		}
	}
	return tiles
}
