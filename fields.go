package relief

import (
	"github.com/zeebo/blake3"

	"github.com/gogpu/relief/internal/filter"
	"github.com/gogpu/relief/internal/parallel"
	"github.com/gogpu/relief/internal/sdf"
)

// shadeThreshold is the mask intensity at or below which pixels are left
// unshaded.
const shadeThreshold = 0.001

// maskFields holds everything derived from the mask alone. Once built it is
// read-only, so a cached instance may be shared by concurrent calls.
type maskFields struct {
	width, height int

	// gray is the luminance-with-alpha field of the blurred mask.
	gray []float32
	// coverage is the alpha of the blurred mask in [0, 1].
	coverage []float32
	// inside marks pixels with gray > 0: the shape the distances refer to.
	inside []bool
	// dist is the distance from each inside pixel to the nearest outside
	// pixel; 0 outside.
	dist []float32
	// active reports whether any pixel exceeds shadeThreshold. When false,
	// coverage, inside and dist are nil.
	active bool
}

// maskKey identifies a mask by content for the mask cache.
type maskKey struct {
	digest        [32]byte
	width, height int
	sigma         int
}

func newMaskKey(mask *Pixmap, sigma int) maskKey {
	return maskKey{
		digest: blake3.Sum256(mask.data),
		width:  mask.width,
		height: mask.height,
		sigma:  sigma,
	}
}

// buildMaskFields runs the extractor and SDF stages on mask.
func buildMaskFields(mask *Pixmap, sigma int, run parallel.ForFunc) *maskFields {
	w, h := mask.width, mask.height
	blurred := filter.BlurRGBA(mask.data, w, h, float64(sigma), run)
	gray := filter.GrayAlpha(blurred, w, h, run)

	f := &maskFields{width: w, height: h, gray: gray}
	for _, g := range gray {
		if g > shadeThreshold {
			f.active = true
			break
		}
	}
	if !f.active {
		return f
	}

	f.inside = make([]bool, w*h)
	f.coverage = make([]float32, w*h)
	for i, g := range gray {
		f.inside[i] = g > 0
		f.coverage[i] = float32(blurred[i*4+3]) / 255
	}
	f.dist = sdf.Interior(f.inside, w, h, run)
	return f
}
