package filter

import (
	"github.com/gogpu/relief/internal/parallel"
)

// BlurRGBA applies a separable Gaussian blur with standard deviation sigma
// to a non-premultiplied RGBA8 buffer and returns a new buffer.
//
// Colour is blurred premultiplied and converted back, so fully transparent
// pixels do not bleed their (meaningless) RGB into neighbouring edges.
// Samples beyond the border repeat the edge pixel.
func BlurRGBA(src []uint8, width, height int, sigma float64, run parallel.ForFunc) []uint8 {
	dst := make([]uint8, len(src))
	if sigma <= 0 || width <= 0 || height <= 0 {
		copy(dst, src)
		return dst
	}

	kernel := CachedGaussianKernel(sigma)
	half := len(kernel) / 2
	temp := make([]float32, width*height*4)

	// Pass 1: horizontal, premultiplying on the way in (src -> temp).
	run(height, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			row := y * width
			for x := range width {
				var r, g, b, a float32
				for k, weight := range kernel {
					kx := clampInt(x+k-half, 0, width-1)
					i := (row + kx) * 4
					sa := float32(src[i+3])
					wa := weight * sa / 255
					r += float32(src[i+0]) * wa
					g += float32(src[i+1]) * wa
					b += float32(src[i+2]) * wa
					a += sa * weight
				}
				t := (row + x) * 4
				temp[t+0] = r
				temp[t+1] = g
				temp[t+2] = b
				temp[t+3] = a
			}
		}
	})

	// Pass 2: vertical, un-premultiplying on the way out (temp -> dst).
	run(height, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			for x := range width {
				var r, g, b, a float32
				for k, weight := range kernel {
					ky := clampInt(y+k-half, 0, height-1)
					t := (ky*width + x) * 4
					r += temp[t+0] * weight
					g += temp[t+1] * weight
					b += temp[t+2] * weight
					a += temp[t+3] * weight
				}
				d := (y*width + x) * 4
				if a <= 0 {
					dst[d+0], dst[d+1], dst[d+2], dst[d+3] = 0, 0, 0, 0
					continue
				}
				inv := 255 / a
				dst[d+0] = clampUint8(r * inv)
				dst[d+1] = clampUint8(g * inv)
				dst[d+2] = clampUint8(b * inv)
				dst[d+3] = clampUint8(a)
			}
		}
	})

	return dst
}

// BlurField applies a separable Gaussian blur to a scalar field and returns
// a new field. Samples beyond the border repeat the edge value.
func BlurField(src []float32, width, height int, sigma float64, run parallel.ForFunc) []float32 {
	dst := make([]float32, len(src))
	if sigma <= 0 || width <= 0 || height <= 0 {
		copy(dst, src)
		return dst
	}

	kernel := CachedGaussianKernel(sigma)
	half := len(kernel) / 2
	temp := make([]float32, len(src))

	run(height, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			row := y * width
			for x := range width {
				var sum float32
				for k, weight := range kernel {
					sum += src[row+clampInt(x+k-half, 0, width-1)] * weight
				}
				temp[row+x] = sum
			}
		}
	})

	run(height, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			for x := range width {
				var sum float32
				for k, weight := range kernel {
					sum += temp[clampInt(y+k-half, 0, height-1)*width+x] * weight
				}
				dst[y*width+x] = sum
			}
		}
	})

	return dst
}

// clampInt clamps v to [lo, hi].
func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// clampUint8 clamps v to [0, 255] and rounds to the nearest integer.
func clampUint8(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v + 0.5)
}
