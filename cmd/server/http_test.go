package main

import (
	"testing"

	mandel "github.com/marben/parmandel"
)

func TestCheckResult(t *testing.T) {
	tile := mandel.Tile{X0: 0, Y0: 0, W: 4, H: 3}
	job := mandel.TileJob{Seq: 7, Tile: tile}
	good := mandel.TileResult{Seq: 7, Tile: tile, Counts: make([]int, tile.Pixels())}

	tests := []struct {
		name    string
		mutate  func(*mandel.TileResult)
		wantErr bool
	}{
		{"matching result", func(r *mandel.TileResult) {}, false},
		{"wrong seq", func(r *mandel.TileResult) { r.Seq = 8 }, true},
		{"wrong tile", func(r *mandel.TileResult) { r.Tile.X0 = 4 }, true},
		{"short counts", func(r *mandel.TileResult) { r.Counts = r.Counts[:5] }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := good
			tt.mutate(&res)
			if err := checkResult(job, res); (err != nil) != tt.wantErr {
				t.Errorf("checkResult() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
