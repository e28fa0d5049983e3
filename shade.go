package relief

import (
	"math"

	"github.com/gogpu/relief/internal/parallel"
)

// Lighting constants.
const (
	// diffuseGain scales the diffuse delta applied to the base colour.
	diffuseGain = 1.28
	// shininess is the specular exponent; high values keep the crest narrow.
	shininess = 52
	// crestGain scales the edge magnitude that gates the specular crest.
	crestGain = 1.2
	// edgeGain amplifies the bevel gradient into an edge magnitude.
	edgeGain = 8
)

// shade lights the base image in place.
//
// For every pixel with gray > shadeThreshold:
//
//	rgb = clamp(rgb * (1 + kd*(n·L - Lz)) + crest) * (1 - ao*gray)
//	crest = max(n·H, 0)^52 * 255 * min(1, 1.2*edge)
//
// where H is the half vector between L and the viewer. Lz is the response
// of a flat surface, so flat areas only receive ambient occlusion. All other
// pixels keep their colour. Every pixel ends up opaque.
func shade(data []uint8, gray, height []float32, normals normalField, width, rows int, cfg Config, run parallel.ForFunc) {
	light := cfg.Light
	half := light.Add(Up).NormalizeOr(Up)
	baseline := light.Z

	run(rows, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			for x := range width {
				i := y*width + x
				p := data[i*4 : i*4+4 : i*4+4]
				p[3] = 255

				g := float64(gray[i])
				if g <= shadeThreshold {
					continue
				}

				n := normals.at(i)
				diffuse := 1 + diffuseGain*(n.Dot(light)-baseline)

				crest := 0.0
				if spec := n.Dot(half); spec > 0 {
					if edge := edgeMagnitude(height, width, rows, x, y); edge > 0 {
						crest = math.Pow(spec, shininess) * 255 * math.Min(1, edge*crestGain)
					}
				}

				occlusion := 1 - cfg.AO*g
				for c := range 3 {
					v := float64(p[c])*diffuse + crest
					v = math.Max(0, math.Min(255, v)) * occlusion
					p[c] = uint8(math.Round(v))
				}
			}
		}
	})
}
