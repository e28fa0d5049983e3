package sdf

import (
	"math"

	"github.com/gogpu/relief/internal/parallel"
)

// far is the squared distance assigned to pixels that are not seeds. It is
// finite so that the envelope intersection arithmetic never sees Inf-Inf.
const far = 1e20

// SquaredTransform replaces every value of the width*height grid f with
// min over all pixels p of (|x - p|² + f[p]). Seeds hold 0 and all other
// pixels hold far on input; on output each pixel holds the squared distance
// to its nearest seed (or a value >= far when there is no seed).
func SquaredTransform(f []float64, width, height int, run parallel.ForFunc) {
	if width <= 0 || height <= 0 {
		return
	}

	run(height, func(y0, y1 int) {
		s := newScratch(width)
		for y := y0; y < y1; y++ {
			row := f[y*width : (y+1)*width]
			copy(s.in, row)
			s.transform(row, width)
		}
	})

	run(width, func(x0, x1 int) {
		s := newScratch(height)
		col := make([]float64, height)
		for x := x0; x < x1; x++ {
			for y := range height {
				s.in[y] = f[y*width+x]
			}
			s.transform(col, height)
			for y := range height {
				f[y*width+x] = col[y]
			}
		}
	})
}

// scratch holds the per-line buffers of the 1D transform.
type scratch struct {
	in []float64 // copy of the line being transformed
	v  []int     // parabola vertex positions in the lower envelope
	z  []float64 // boundaries between envelope parabolas
}

func newScratch(n int) *scratch {
	return &scratch{
		in: make([]float64, n),
		v:  make([]int, n),
		z:  make([]float64, n+1),
	}
}

// transform computes the 1D squared distance transform of s.in[:n] into out.
func (s *scratch) transform(out []float64, n int) {
	f, v, z := s.in, s.v, s.z

	k := 0
	v[0] = 0
	z[0] = math.Inf(-1)
	z[1] = math.Inf(1)

	for q := 1; q < n; q++ {
		fq := f[q] + float64(q*q)
		sect := (fq - (f[v[k]] + float64(v[k]*v[k]))) / float64(2*(q-v[k]))
		for sect <= z[k] {
			k--
			sect = (fq - (f[v[k]] + float64(v[k]*v[k]))) / float64(2*(q-v[k]))
		}
		k++
		v[k] = q
		z[k] = sect
		z[k+1] = math.Inf(1)
	}

	k = 0
	for q := range n {
		for z[k+1] < float64(q) {
			k++
		}
		d := float64(q - v[k])
		out[q] = d*d + f[v[k]]
	}
}
