package relief

import (
	"image/color"

	"github.com/gogpu/relief/internal/filter"
	"github.com/gogpu/relief/internal/parallel"
	"github.com/gogpu/relief/internal/sdf"
)

// Edge overlay colours. Alpha is the overlay opacity.
var (
	highlightColor = color.NRGBA{R: 255, G: 255, B: 255, A: 89} // 0.35
	shadowColor    = color.NRGBA{A: 115}                        // 0.45
)

// drawEdges fakes a raised lip around the shape: the outer ring of the
// shape is filled with translucent white shifted towards (-depth, -depth)
// and with translucent black shifted towards (+depth, +depth).
//
// The ring is the shape dilated by the ring width with the (blurred) mask
// erased from it, then blurred like the mask.
func drawEdges(data []uint8, f *maskFields, cfg Config, run parallel.ForFunc) {
	w, h := f.width, f.height
	depth := cfg.edgeDepth(w)
	sigma := cfg.blurSigma(w)

	ring := sdf.Dilate(f.inside, w, h, float64(cfg.ringWidth(depth)), run)
	run(h, func(y0, y1 int) {
		for i := y0 * w; i < y1*w; i++ {
			ring[i] *= 1 - f.coverage[i]
		}
	})
	ring = filter.BlurField(ring, w, h, float64(sigma), run)

	filter.CompositeStencil(data, w, h, ring, highlightColor, -depth, -depth, run)
	filter.CompositeStencil(data, w, h, ring, shadowColor, depth, depth, run)
}
