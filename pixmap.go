package relief

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"golang.org/x/image/draw"
)

// Pixmap is a rectangular RGBA8 pixel buffer.
//
// Pixels are stored non-premultiplied, row-major, 4 bytes per pixel: the
// channel c of pixel (x, y) lives at Data()[(y*Width()+x)*4+c]. Hot loops use
// Data directly; GetPixel and SetPixel are for everything else.
type Pixmap struct {
	width  int
	height int
	data   []uint8
}

// NewPixmap creates a new, fully transparent pixmap.
// Negative dimensions are treated as 0.
func NewPixmap(width, height int) *Pixmap {
	width, height = max(width, 0), max(height, 0)
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Size returns the pixmap dimensions as a point.
func (p *Pixmap) Size() image.Point {
	return image.Pt(p.width, p.height)
}

// Data returns the raw pixel data.
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// SetPixel sets the color of a single pixel. Out-of-range writes are ignored.
func (p *Pixmap) SetPixel(x, y int, c color.NRGBA) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * 4
	p.data[i+0] = c.R
	p.data[i+1] = c.G
	p.data[i+2] = c.B
	p.data[i+3] = c.A
}

// GetPixel returns the color of a single pixel, or transparent black when
// (x, y) is out of range.
func (p *Pixmap) GetPixel(x, y int) color.NRGBA {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return color.NRGBA{}
	}
	i := (y*p.width + x) * 4
	return color.NRGBA{R: p.data[i+0], G: p.data[i+1], B: p.data[i+2], A: p.data[i+3]}
}

// Fill sets every pixel to c.
func (p *Pixmap) Fill(c color.NRGBA) {
	for i := 0; i < len(p.data); i += 4 {
		p.data[i+0] = c.R
		p.data[i+1] = c.G
		p.data[i+2] = c.B
		p.data[i+3] = c.A
	}
}

// Clone returns a deep copy of the pixmap.
func (p *Pixmap) Clone() *Pixmap {
	return &Pixmap{
		width:  p.width,
		height: p.height,
		data:   bytes.Clone(p.data),
	}
}

// Equal reports whether two pixmaps have the same size and identical bytes.
func (p *Pixmap) Equal(q *Pixmap) bool {
	if p == nil || q == nil {
		return p == q
	}
	return p.width == q.width && p.height == q.height && bytes.Equal(p.data, q.data)
}

// ToImage copies the pixmap into an image.NRGBA.
func (p *Pixmap) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// FromImage creates a pixmap from any image. The result is origin-based
// regardless of img.Bounds().Min.
func FromImage(img image.Image) *Pixmap {
	b := img.Bounds()
	pm := NewPixmap(b.Dx(), b.Dy())

	if src, ok := img.(*image.NRGBA); ok && src.Stride == b.Dx()*4 {
		copy(pm.data, src.Pix)
		return pm
	}

	dst := &image.NRGBA{Pix: pm.data, Stride: pm.width * 4, Rect: image.Rect(0, 0, pm.width, pm.height)}
	draw.Draw(dst, dst.Rect, img, b.Min, draw.Src)
	return pm
}

// SavePNG saves the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return fmt.Errorf("relief: create %s: %w", path, err)
	}
	if err := png.Encode(f, p.ToImage()); err != nil {
		_ = f.Close()
		return fmt.Errorf("relief: encode %s: %w", path, err)
	}
	return f.Close()
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	return p.GetPixel(x, y)
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.NRGBAModel
}
