package relief

import (
	"image"
	"math"

	"golang.org/x/image/draw"

	"github.com/gogpu/relief/internal/filter"
	"github.com/gogpu/relief/internal/parallel"
)

// NormalMapOptions controls BuildNormalMap.
type NormalMapOptions struct {
	// Size resamples the source to Size x Size before extraction.
	// 0 keeps the source dimensions.
	Size int

	// BlurRadius is the Gaussian sigma applied before the gradient.
	// 0 disables the blur.
	BlurRadius float64

	// Strength scales the gradient; larger values give steeper normals.
	Strength float64
}

// DefaultNormalMapOptions returns the options used by the CLI.
func DefaultNormalMapOptions() NormalMapOptions {
	return NormalMapOptions{
		BlurRadius: 1,
		Strength:   2,
	}
}

func (o NormalMapOptions) normalize() (NormalMapOptions, error) {
	if !isFinite(o.Strength) {
		return o, invalidConfig("normal map strength", o.Strength)
	}
	if !isFinite(o.BlurRadius) {
		return o, invalidConfig("normal map blur radius", o.BlurRadius)
	}
	o.Size = max(o.Size, 0)
	o.BlurRadius = math.Max(o.BlurRadius, 0)
	return o, nil
}

// encodeNormal maps a unit component in [-1, 1] to [0, 255].
func encodeNormal(v float64) uint8 {
	return uint8(math.Round(clamp01((v+1)/2) * 255))
}

// resample returns src scaled to size x size with Catmull-Rom filtering.
func resample(src *Pixmap, size int) *Pixmap {
	if size == src.width && size == src.height {
		return src
	}
	dst := image.NewNRGBA(image.Rect(0, 0, size, size))
	draw.CatmullRom.Scale(dst, dst.Rect, src.ToImage(), src.Bounds(), draw.Src, nil)
	return &Pixmap{width: size, height: size, data: dst.Pix}
}

// buildNormalMap is the tangent-space normal map extraction:
// luminance-with-alpha height, Sobel gradient, n = normalize(-s*gx, -s*gy, 1).
func buildNormalMap(src *Pixmap, opts NormalMapOptions, run parallel.ForFunc) (*Pixmap, error) {
	if src == nil {
		return nil, ErrNilPixmap
	}
	opts, err := opts.normalize()
	if err != nil {
		return nil, err
	}

	if opts.Size > 0 && src.width > 0 && src.height > 0 {
		src = resample(src, opts.Size)
	}
	w, h := src.width, src.height
	out := NewPixmap(w, h)
	if w == 0 || h == 0 {
		return out, nil
	}

	data := src.data
	if opts.BlurRadius > 0 {
		data = filter.BlurRGBA(data, w, h, opts.BlurRadius, run)
	}
	height := filter.GrayAlpha(data, w, h, run)

	run(h, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			for x := range w {
				gx, gy := filter.Sobel(height, w, h, x, y)
				n := Vec3{
					X: -opts.Strength * float64(gx),
					Y: -opts.Strength * float64(gy),
					Z: 1,
				}.NormalizeOr(Up)

				i := (y*w + x) * 4
				out.data[i+0] = encodeNormal(n.X)
				out.data[i+1] = encodeNormal(n.Y)
				out.data[i+2] = encodeNormal(n.Z)
				out.data[i+3] = 255
			}
		}
	})
	return out, nil
}

// BuildNormalMap extracts a normal map from the luminance of src and returns
// it as a new opaque pixmap. The source is not modified. A flat region
// encodes as (128, 128, 255).
//
// BuildNormalMap runs serially; use a Renderer for band-parallel execution.
func BuildNormalMap(src *Pixmap, opts NormalMapOptions) (*Pixmap, error) {
	return buildNormalMap(src, opts, parallel.Serial)
}
