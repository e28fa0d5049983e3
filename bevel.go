package relief

import (
	"math"

	"github.com/gogpu/relief/internal/parallel"
)

// bevelExponent shapes the bevel profile: below 1 the rim is steep and the
// interior flattens out quickly.
const bevelExponent = 0.6

// bevelHeight maps distances to a height profile:
// H = clamp01((R - d) / R) ^ 0.6 with R = max(1, bevelPx).
// H is 1 at the rim (and outside the shape, where d is 0) and 0 from R
// pixels inwards.
func bevelHeight(dist []float32, width, rows, bevelPx int, run parallel.ForFunc) []float32 {
	r := float64(max(1, bevelPx))
	height := make([]float32, len(dist))

	run(rows, func(y0, y1 int) {
		for i := y0 * width; i < y1*width; i++ {
			t := clamp01((r - float64(dist[i])) / r)
			if t > 0 {
				height[i] = float32(math.Pow(t, bevelExponent))
			}
		}
	})
	return height
}

// edgeMagnitude returns the central-difference gradient magnitude of the
// height field at (x, y), amplified by edgeGain and clamped to 1. It is
// large on the bevel and zero on the flat top.
func edgeMagnitude(height []float32, width, rows, x, y int) float64 {
	xl, xr := max(x-1, 0), min(x+1, width-1)
	yu, yd := max(y-1, 0), min(y+1, rows-1)

	gx := 0.5 * float64(height[y*width+xr]-height[y*width+xl])
	gy := 0.5 * float64(height[yd*width+x]-height[yu*width+x])
	return math.Min(1, edgeGain*math.Hypot(gx, gy))
}
