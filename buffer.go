package mandel

// IterationBuffer is the per-pixel escape-count result of one render,
// stored row-major (index y*Width + x). During a render each row worker
// owns a disjoint range of rows; after the render the buffer is read-only.
type IterationBuffer struct {
	Width, Height int
	Counts        []int
}

// NewIterationBuffer allocates a zeroed buffer for a w x h image.
func NewIterationBuffer(w, h int) *IterationBuffer {
	return &IterationBuffer{
		Width:  w,
		Height: h,
		Counts: make([]int, w*h),
	}
}

// At returns the count at pixel (x, y).
func (b *IterationBuffer) At(x, y int) int {
	return b.Counts[y*b.Width+x]
}

// Row returns the counts of row y as a slice aliasing the buffer.
func (b *IterationBuffer) Row(y int) []int {
	return b.Counts[y*b.Width : (y+1)*b.Width]
}
