// Package decal produces decal masks for the relief pipeline.
//
// A decal mask is white where the decal is opaque and transparent
// elsewhere, which is exactly what the shading pipeline expects.
package decal

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"strings"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// Sentinel errors for decal rendering.
var (
	// ErrEmptyText is returned when the label has no visible characters.
	ErrEmptyText = errors.New("decal: empty text")

	// ErrInvalidSize is returned for non-positive canvas or font sizes.
	ErrInvalidSize = errors.New("decal: invalid size")
)

// fitFraction is the share of the canvas width a label may occupy.
const fitFraction = 0.9

var (
	defaultFontOnce sync.Once
	defaultFont     *sfnt.Font
	defaultFontErr  error
)

// DefaultFont returns the embedded Go Regular face.
func DefaultFont() (*sfnt.Font, error) {
	defaultFontOnce.Do(func() {
		defaultFont, defaultFontErr = opentype.Parse(goregular.TTF)
		if defaultFontErr != nil {
			defaultFontErr = fmt.Errorf("decal: parse default font: %w", defaultFontErr)
		}
	})
	return defaultFont, defaultFontErr
}

// TextOptions controls RenderText.
type TextOptions struct {
	// Font is the face to use. Nil selects DefaultFont.
	Font *sfnt.Font

	// SizePx is the font size in pixels. The size shrinks when the label
	// would not fit in 90% of the canvas width.
	SizePx float64
}

// RenderText renders label as a white, centred, single-line mask on a
// transparent width x height canvas.
func RenderText(width, height int, label string, opts TextOptions) (*image.NRGBA, error) {
	if width <= 0 || height <= 0 || opts.SizePx <= 0 {
		return nil, ErrInvalidSize
	}
	label = strings.TrimSpace(label)
	if label == "" {
		return nil, ErrEmptyText
	}

	f := opts.Font
	if f == nil {
		var err error
		if f, err = DefaultFont(); err != nil {
			return nil, err
		}
	}

	size := opts.SizePx
	face, err := newFace(f, size)
	if err != nil {
		return nil, err
	}
	advance := font.MeasureString(face, label)
	if limit := fixed.I(int(float64(width) * fitFraction)); advance > limit && advance > 0 {
		_ = face.Close()
		size *= float64(limit) / float64(advance)
		if face, err = newFace(f, size); err != nil {
			return nil, err
		}
		advance = font.MeasureString(face, label)
	}
	defer func() { _ = face.Close() }()

	metrics := face.Metrics()
	textHeight := metrics.Ascent + metrics.Descent

	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.White,
		Face: face,
		Dot: fixed.Point26_6{
			X: (fixed.I(width) - advance) / 2,
			Y: (fixed.I(height)-textHeight)/2 + metrics.Ascent,
		},
	}
	d.DrawString(label)
	return dst, nil
}

// ToMask converts any image into a decal mask: RGB is forced to white and
// the alpha channel is kept. This normalizes logos of any colour, whose
// luminance would otherwise scale the relief.
func ToMask(img image.Image) *image.NRGBA {
	b := img.Bounds()
	src := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(src, src.Bounds(), img, b.Min, draw.Src)
	for i := 0; i < len(src.Pix); i += 4 {
		src.Pix[i+0], src.Pix[i+1], src.Pix[i+2] = 255, 255, 255
	}
	return src
}

func newFace(f *sfnt.Font, size float64) (font.Face, error) {
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("decal: create face: %w", err)
	}
	return face, nil
}
