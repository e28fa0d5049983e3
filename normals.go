package relief

import (
	"math"

	"github.com/gogpu/relief/internal/parallel"
)

// blendExponent shapes the blend between the cylinder and the bevel:
// m = gray^0.7.
const blendExponent = 0.7

// normalField holds per-pixel unit normals as three co-indexed fields.
type normalField struct {
	x, y, z []float32
}

// at returns the normal of pixel i.
func (n normalField) at(i int) Vec3 {
	return Vec3{X: float64(n.x[i]), Y: float64(n.y[i]), Z: float64(n.z[i])}
}

// synthesizeNormals blends the bevel-gradient normal with a cylindrical
// normal. Where the mask is solid (gray near 1) the bevel dominates; towards
// semi-transparent edges the broad cylinder takes over, so there is no seam.
// The 1 px image frame gets the flat normal.
func synthesizeNormals(gray, height []float32, width, rows int, cfg Config, run parallel.ForFunc) normalField {
	n := normalField{
		x: make([]float32, width*rows),
		y: make([]float32, width*rows),
		z: make([]float32, width*rows),
	}

	// The cylinder depends on the column only.
	axis := math.Floor(float64(width) * cfg.CylCX)
	cylX := make([]float64, width)
	cylZ := make([]float64, width)
	for x := range width {
		u := (float64(x) - axis) / float64(width) / cfg.CylK
		u = math.Max(-1, math.Min(1, u))
		cylX[x] = -u
		cylZ[x] = math.Sqrt(math.Max(0, 1-u*u))
	}

	halfStrength := 0.5 * cfg.Strength

	run(rows, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			for x := range width {
				i := y*width + x
				if x == 0 || y == 0 || x == width-1 || y == rows-1 {
					n.z[i] = 1
					continue
				}

				bx := -halfStrength * float64(height[i+1]-height[i-1])
				by := -halfStrength * float64(height[i+width]-height[i-width])

				m := math.Pow(float64(gray[i]), blendExponent)
				v := Vec3{
					X: (1-m)*cylX[x] + m*bx,
					Y: m * by,
					Z: (1-m)*cylZ[x] + m,
				}.NormalizeOr(Up)

				n.x[i] = float32(v.X)
				n.y[i] = float32(v.Y)
				n.z[i] = float32(v.Z)
			}
		}
	})
	return n
}
