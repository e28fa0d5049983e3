package sdf

import (
	"math"

	"github.com/gogpu/relief/internal/parallel"
)

// Interior returns, for every pixel with inside[i] set, the Euclidean
// distance to the nearest pixel that is not inside. The ring of pixels just
// beyond the image border counts as outside, so a shape touching the border
// gets distance 1 there. Pixels that are not inside hold 0.
func Interior(inside []bool, width, height int, run parallel.ForFunc) []float32 {
	out := make([]float32, width*height)
	if width <= 0 || height <= 0 {
		return out
	}

	// Pad by one pixel on every side so the border acts as a seed ring.
	pw, ph := width+2, height+2
	f := make([]float64, pw*ph)
	for y := range height {
		for x := range width {
			if inside[y*width+x] {
				f[(y+1)*pw+x+1] = far
			}
		}
	}

	SquaredTransform(f, pw, ph, run)

	run(height, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			for x := range width {
				i := y*width + x
				if inside[i] {
					out[i] = float32(math.Sqrt(f[(y+1)*pw+x+1]))
				}
			}
		}
	})
	return out
}

// Dilate returns the soft dilation of the shape by radius pixels: each pixel
// gets coverage clamp01(radius + 0.5 - d), where d is the distance to the
// nearest inside pixel. Inside pixels have coverage 1. An empty shape yields
// an all-zero field.
func Dilate(inside []bool, width, height int, radius float64, run parallel.ForFunc) []float32 {
	out := make([]float32, width*height)
	if width <= 0 || height <= 0 {
		return out
	}

	f := make([]float64, width*height)
	seeds := 0
	for i, in := range inside[:width*height] {
		if in {
			seeds++
		} else {
			f[i] = far
		}
	}
	if seeds == 0 {
		return out
	}

	SquaredTransform(f, width, height, run)

	reach := radius + 0.5
	run(height, func(y0, y1 int) {
		for i := y0 * width; i < y1*width; i++ {
			c := reach - math.Sqrt(f[i])
			switch {
			case c >= 1:
				out[i] = 1
			case c > 0:
				out[i] = float32(c)
			}
		}
	})
	return out
}
