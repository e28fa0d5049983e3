package relief

import (
	"image/color"
	"math"
)

func solidPixmap(w, h int, c color.NRGBA) *Pixmap {
	pm := NewPixmap(w, h)
	pm.Fill(c)
	return pm
}

// squareMask returns a transparent mask with an opaque white rectangle
// covering [x0, x1) x [y0, y1).
func squareMask(w, h, x0, y0, x1, y1 int) *Pixmap {
	pm := NewPixmap(w, h)
	white := color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			pm.SetPixel(x, y, white)
		}
	}
	return pm
}

func mustNormalize(cfg Config) Config {
	n, _, err := cfg.normalize()
	if err != nil {
		panic(err)
	}
	return n
}

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}
