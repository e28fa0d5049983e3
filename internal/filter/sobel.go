package filter

// Sobel returns the horizontal and vertical Sobel derivatives of field at
// (x, y). Samples beyond the border repeat the edge value, so a constant
// field has a zero gradient everywhere, borders included.
func Sobel(field []float32, width, height, x, y int) (gx, gy float32) {
	x0 := clampInt(x-1, 0, width-1)
	x2 := clampInt(x+1, 0, width-1)
	r0 := clampInt(y-1, 0, height-1) * width
	r1 := y * width
	r2 := clampInt(y+1, 0, height-1) * width

	tl, tc, tr := field[r0+x0], field[r0+x], field[r0+x2]
	ml, mr := field[r1+x0], field[r1+x2]
	bl, bc, br := field[r2+x0], field[r2+x], field[r2+x2]

	gx = (tr + 2*mr + br) - (tl + 2*ml + bl)
	gy = (bl + 2*bc + br) - (tl + 2*tc + tr)
	return gx, gy
}
