package filter

import "github.com/gogpu/relief/internal/parallel"

// Rec. 709 luma weights.
const (
	lumaR = 0.2126
	lumaG = 0.7152
	lumaB = 0.0722
)

// Luminance returns the perceptual luminance of an 8-bit colour in [0, 1].
func Luminance(r, g, b uint8) float32 {
	return (lumaR*float32(r) + lumaG*float32(g) + lumaB*float32(b)) / 255
}

// GrayAlpha converts an RGBA8 buffer into a luminance-with-alpha field:
// gray[i] = Luminance(r, g, b) * a/255. A transparent pixel is always 0,
// whatever its colour.
func GrayAlpha(src []uint8, width, height int, run parallel.ForFunc) []float32 {
	gray := make([]float32, width*height)
	run(height, func(y0, y1 int) {
		for i := y0 * width; i < y1*width; i++ {
			p := src[i*4 : i*4+4 : i*4+4]
			if p[3] == 0 {
				continue
			}
			gray[i] = Luminance(p[0], p[1], p[2]) * float32(p[3]) / 255
		}
	})
	return gray
}
