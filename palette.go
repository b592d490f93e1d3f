package mandel

import (
	"image"
	"image/color"
	"math"
)

// Color mapping over a finished IterationBuffer. Both mappers are pure
// functions of the iteration count alone: a pixel that reached maxIter is
// treated as inside the set and gets a fixed color, everything else is a
// ramp over count/maxIter.

// GrayImage maps the buffer to an 8-bit grayscale image: in-set pixels are
// white, escaped pixels ramp from black (fast escape) toward white.
func GrayImage(buf *IterationBuffer, maxIter int) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, buf.Width, buf.Height))
	for i, n := range buf.Counts {
		if n >= maxIter {
			img.Pix[i] = 255
		} else {
			img.Pix[i] = uint8(float64(n) / float64(maxIter) * 255)
		}
	}
	return img
}

// RGBAImage maps the buffer to a color image: in-set pixels are opaque
// black, escaped pixels get a hue ramp over count/maxIter.
func RGBAImage(buf *IterationBuffer, maxIter int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, buf.Width, buf.Height))
	for i, n := range buf.Counts {
		var col color.RGBA
		if n >= maxIter {
			col = color.RGBA{A: 255}
		} else {
			hue := math.Mod(3*float64(n)/float64(maxIter), 1.0)
			col = hsv(hue, 1, 1)
		}
		img.SetRGBA(i%buf.Width, i/buf.Width, col)
	}
	return img
}

// Simple HSV → RGB
func hsv(h, s, v float64) color.RGBA {
	h = math.Mod(h, 1)
	i := int(h * 6)
	f := h*6 - float64(i)
	p := v * (1 - s)
	q := v * (1 - f*s)
	t := v * (1 - (1-f)*s)

	var r, g, b float64
	switch i % 6 {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	case 5:
		r, g, b = v, p, q
	}
	return color.RGBA{uint8(r * 255), uint8(g * 255), uint8(b * 255), 255}
}
