package filter

import (
	"image/color"

	"github.com/gogpu/relief/internal/parallel"
)

// CompositeStencil fills a flat colour through a soft stencil and composites
// it source-over onto dst, with the stencil translated by (dx, dy).
//
// The effective source alpha at (x, y) is c.A/255 * stencil[x-dx, y-dy].
// Stencil samples that fall outside the canvas contribute nothing, so the
// offset never wraps around or touches pixels the stencil does not cover.
// dst is non-premultiplied RGBA8 and is modified in place.
func CompositeStencil(dst []uint8, width, height int, stencil []float32, c color.NRGBA, dx, dy int, run parallel.ForFunc) {
	if c.A == 0 {
		return
	}
	opacity := float32(c.A) / 255
	cr, cg, cb := float32(c.R), float32(c.G), float32(c.B)

	run(height, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			sy := y - dy
			if sy < 0 || sy >= height {
				continue
			}
			for x := range width {
				sx := x - dx
				if sx < 0 || sx >= width {
					continue
				}
				a := opacity * stencil[sy*width+sx]
				if a <= 0 {
					continue
				}
				if a > 1 {
					a = 1
				}

				d := (y*width + x) * 4
				da := float32(dst[d+3]) / 255
				keep := da * (1 - a)
				outA := a + keep
				inv := 1 / outA

				dst[d+0] = clampUint8((cr*a + float32(dst[d+0])*keep) * inv)
				dst[d+1] = clampUint8((cg*a + float32(dst[d+1])*keep) * inv)
				dst[d+2] = clampUint8((cb*a + float32(dst[d+2])*keep) * inv)
				dst[d+3] = clampUint8(outA * 255)
			}
		}
	})
}
