package filter

// Test helper functions shared across filter tests.

// solidRGBA returns a w*h RGBA8 buffer filled with one colour.
func solidRGBA(w, h int, r, g, b, a uint8) []uint8 {
	buf := make([]uint8, w*h*4)
	for i := 0; i < len(buf); i += 4 {
		buf[i+0], buf[i+1], buf[i+2], buf[i+3] = r, g, b, a
	}
	return buf
}

// setRGBA writes one pixel into an RGBA8 buffer.
func setRGBA(buf []uint8, w, x, y int, r, g, b, a uint8) {
	i := (y*w + x) * 4
	buf[i+0], buf[i+1], buf[i+2], buf[i+3] = r, g, b, a
}

// absf32 returns the absolute value of a float32.
func absf32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
