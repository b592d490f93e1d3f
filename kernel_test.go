package mandel

import "testing"

func TestIterateKnownPoints(t *testing.T) {
	tests := []struct {
		name   string
		cr, ci float64
		want   int
	}{
		{"origin never escapes", 0, 0, 100},
		{"period-2 bulb center never escapes", -1, 0, 100},
		{"c=2 escapes on the first check", 2, 0, 1},
		{"c=3 escapes immediately after one step", 3, 0, 1},
		{"far point escapes after one step", 10, 10, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Iterate(tt.cr, tt.ci, 100); got != tt.want {
				t.Errorf("Iterate(%v, %v, 100) = %d, want %d", tt.cr, tt.ci, got, tt.want)
			}
		})
	}
}

func TestIterateBounded(t *testing.T) {
	const maxIter = 37
	for cr := -2.5; cr <= 1.5; cr += 0.25 {
		for ci := -1.5; ci <= 1.5; ci += 0.25 {
			n := Iterate(cr, ci, maxIter)
			if n < 0 || n > maxIter {
				t.Fatalf("Iterate(%v, %v, %d) = %d, out of [0, %d]", cr, ci, maxIter, n, maxIter)
			}
		}
	}
}

func TestIterateMonotonicCutoff(t *testing.T) {
	const lo, hi = 50, 400
	for cr := -2.0; cr <= 1.0; cr += 0.1 {
		for ci := -1.2; ci <= 1.2; ci += 0.1 {
			nLo := Iterate(cr, ci, lo)
			nHi := Iterate(cr, ci, hi)
			if nLo < lo && nHi != nLo {
				t.Fatalf("point (%v, %v): escaped at %d with budget %d but at %d with budget %d", cr, ci, nLo, lo, nHi, hi)
			}
			if nLo == lo && nHi < lo {
				t.Fatalf("point (%v, %v): hit cutoff %d but escaped earlier (%d) with budget %d", cr, ci, lo, nHi, hi)
			}
		}
	}
}

// IterateBatch must be bit-identical to the scalar loop per lane, for any
// batch length, including the short trailing batch of a row.
func TestIterateBatchMatchesScalar(t *testing.T) {
	const maxIter = 200
	var cre, cim []float64
	for cr := -2.0; cr <= 0.6; cr += 0.13 {
		for ci := -1.1; ci <= 1.1; ci += 0.17 {
			cre = append(cre, cr)
			cim = append(cim, ci)
		}
	}

	for _, lanes := range []int{1, 2, 3, 4, 8} {
		out := make([]int, lanes)
		for i := 0; i < len(cre); i += lanes {
			n := min(lanes, len(cre)-i)
			IterateBatch(cre[i:i+n], cim[i:i+n], out[:n], maxIter)
			for l := 0; l < n; l++ {
				want := Iterate(cre[i+l], cim[i+l], maxIter)
				if out[l] != want {
					t.Fatalf("lanes=%d: batch count for (%v, %v) = %d, scalar = %d",
						lanes, cre[i+l], cim[i+l], out[l], want)
				}
			}
		}
	}
}

func TestIterateBatchReusedKernel(t *testing.T) {
	var k laneKernel
	k.grow(4)

	cre := []float64{2, 0, -1, 0.3}
	cim := []float64{0, 0, 0, 0.5}
	out := make([]int, 4)

	// run twice: scratch state from the first run must not leak
	for run := 0; run < 2; run++ {
		k.run(cre, cim, out, 75)
		for l := range cre {
			if want := Iterate(cre[l], cim[l], 75); out[l] != want {
				t.Fatalf("run %d lane %d: got %d, want %d", run, l, out[l], want)
			}
		}
	}
}
