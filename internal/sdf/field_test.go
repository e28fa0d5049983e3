package sdf

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/gogpu/relief/internal/parallel"
)

// bruteInterior is the O(N²) reference for Interior.
func bruteInterior(inside []bool, w, h int) []float32 {
	out := make([]float32, w*h)
	for y := range h {
		for x := range w {
			if !inside[y*w+x] {
				continue
			}
			best := math.Inf(1)
			for oy := -1; oy <= h; oy++ {
				for ox := -1; ox <= w; ox++ {
					outside := ox < 0 || oy < 0 || ox >= w || oy >= h || !inside[oy*w+ox]
					if !outside {
						continue
					}
					best = math.Min(best, math.Hypot(float64(ox-x), float64(oy-y)))
				}
			}
			out[y*w+x] = float32(best)
		}
	}
	return out
}

func square(w, h, x0, y0, x1, y1 int) []bool {
	inside := make([]bool, w*h)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			inside[y*w+x] = true
		}
	}
	return inside
}

func TestInteriorSquare(t *testing.T) {
	const w, h = 20, 20
	inside := square(w, h, 5, 5, 15, 15)

	d := Interior(inside, w, h, parallel.Serial)

	tests := []struct {
		x, y int
		want float32
	}{
		{5, 5, 1},   // corner
		{5, 10, 1},  // left edge
		{7, 10, 3},  // two pixels in
		{10, 10, 5}, // deep inside
		{2, 2, 0},   // outside
	}
	for _, tt := range tests {
		if got := d[tt.y*w+tt.x]; math.Abs(float64(got-tt.want)) > 1e-5 {
			t.Errorf("Interior at (%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestInteriorBorderCountsAsOutside(t *testing.T) {
	const w, h = 9, 7
	inside := square(w, h, 0, 0, w, h)

	d := Interior(inside, w, h, parallel.Serial)

	if d[0] != 1 {
		t.Errorf("corner distance = %v, want 1", d[0])
	}
	if got := d[3*w+4]; got != 4 {
		t.Errorf("centre distance = %v, want 4 (nearest border is 4 rows away)", got)
	}
}

func TestInteriorMatchesBruteForce(t *testing.T) {
	const w, h = 23, 17
	rng := rand.New(rand.NewPCG(1, 2))
	inside := make([]bool, w*h)
	for i := range inside {
		inside[i] = rng.Float64() < 0.8
	}

	got := Interior(inside, w, h, parallel.Serial)
	want := bruteInterior(inside, w, h)

	for i := range want {
		if math.Abs(float64(got[i]-want[i])) > 1e-4 {
			t.Fatalf("pixel (%d,%d): got %v, want %v", i%w, i/w, got[i], want[i])
		}
	}
}

func TestInteriorParallelMatchesSerial(t *testing.T) {
	const w, h = 70, 90
	inside := square(w, h, 10, 12, 60, 80)

	pool := parallel.NewWorkerPool(3)
	defer pool.Close()

	serial := Interior(inside, w, h, parallel.Serial)
	banded := Interior(inside, w, h, pool.Bands)
	for i := range serial {
		if serial[i] != banded[i] {
			t.Fatalf("pixel %d: serial %v, banded %v", i, serial[i], banded[i])
		}
	}
}

func TestInteriorEmpty(t *testing.T) {
	d := Interior(make([]bool, 16), 4, 4, parallel.Serial)
	for i, v := range d {
		if v != 0 {
			t.Fatalf("pixel %d = %v, want 0", i, v)
		}
	}
}

func TestDilate(t *testing.T) {
	const w, h = 30, 30
	inside := square(w, h, 10, 10, 20, 20)

	cov := Dilate(inside, w, h, 3, parallel.Serial)

	tests := []struct {
		name string
		x, y int
		want float32
	}{
		{"inside", 15, 15, 1},
		{"within radius", 8, 15, 1},
		{"at radius", 7, 15, 0.5},
		{"beyond radius", 6, 15, 0},
		{"far corner", 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cov[tt.y*w+tt.x]; math.Abs(float64(got-tt.want)) > 1e-5 {
				t.Errorf("coverage at (%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestDilateEmptyShape(t *testing.T) {
	cov := Dilate(make([]bool, 25), 5, 5, 4, parallel.Serial)
	for i, v := range cov {
		if v != 0 {
			t.Fatalf("pixel %d = %v, want 0", i, v)
		}
	}
}

func BenchmarkInterior1024(b *testing.B) {
	const n = 1024
	inside := square(n, n, 100, 100, 900, 900)
	b.ResetTimer()
	for range b.N {
		_ = Interior(inside, n, n, parallel.Serial)
	}
}
