package mandel

// Escape-time kernel. Iteration: z' = z*z + c, starting at z = 0.
// A point is treated as escaped once zr*zr+zi*zi reaches the squared
// bailout radius 4 (|z| >= 2). The returned count is the number of
// iteration steps taken before the failing check, so it is always in
// [0, maxIter]; maxIter means the point never escaped within the budget.

const bailout2 = 4.0

// Iterate runs the scalar escape loop for a single coordinate c = cr + ci*i.
func Iterate(cr, ci float64, maxIter int) int {
	var zr, zi float64
	n := 0
	for ; n < maxIter && zr*zr+zi*zi < bailout2; n++ {
		zr, zi = zr*zr-zi*zi+cr, 2*zr*zi+ci
	}
	return n
}

// IterateBatch runs the escape loop for a lane group of coordinates and
// writes one count per lane into out. All slices must have equal length.
//
// Every lane carries its own z-state and an active flag; the group shares a
// single trip counter. Each trip applies the same arithmetic to every
// still-active lane, a lane that fails the bailout check drops its flag and
// freezes its count, and the group keeps tripping while any lane is active.
// Per-lane results are bit-identical to Iterate for any batch length.
func IterateBatch(cre, cim []float64, out []int, maxIter int) {
	var k laneKernel
	k.grow(len(cre))
	k.run(cre, cim, out, maxIter)
}

// laneKernel holds per-lane scratch so a worker sweeping many batches does
// not reallocate it per batch.
type laneKernel struct {
	zr, zi []float64
	active []bool
}

func (k *laneKernel) grow(lanes int) {
	if cap(k.zr) < lanes {
		k.zr = make([]float64, lanes)
		k.zi = make([]float64, lanes)
		k.active = make([]bool, lanes)
	}
}

func (k *laneKernel) run(cre, cim []float64, out []int, maxIter int) {
	lanes := len(cre)
	zr := k.zr[:lanes]
	zi := k.zi[:lanes]
	active := k.active[:lanes]
	for l := 0; l < lanes; l++ {
		zr[l], zi[l] = 0, 0
		active[l] = true
		out[l] = 0
	}

	for trip := 0; trip < maxIter; trip++ {
		any := false
		// straight-line trip body: every lane runs the same arithmetic,
		// the mask gates only whether the lane commits it
		for l := 0; l < lanes; l++ {
			zr2 := zr[l] * zr[l]
			zi2 := zi[l] * zi[l]
			nzr := zr2 - zi2 + cre[l]
			nzi := 2*zr[l]*zi[l] + cim[l]
			still := active[l] && zr2+zi2 < bailout2
			if still {
				zr[l], zi[l] = nzr, nzi
				out[l]++
				any = true
			}
			active[l] = still
		}
		if !any {
			break
		}
	}
}
