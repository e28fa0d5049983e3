package relief

import (
	"time"

	"github.com/gogpu/relief/internal/cache"
	"github.com/gogpu/relief/internal/parallel"
)

// Renderer applies relief shading and builds normal maps.
//
// A Renderer created with WithWorkers owns a worker pool and must be closed
// with Close. Thread safety: a Renderer is safe for concurrent use as long as
// concurrent calls shade different base pixmaps.
type Renderer struct {
	opts  rendererOptions
	pool  *parallel.WorkerPool
	masks *cache.Cache[maskKey, *maskFields]
}

// New creates a Renderer. Without options it runs every stage serially on
// the calling goroutine and keeps no state between calls.
func New(opts ...Option) *Renderer {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	r := &Renderer{opts: o}
	if o.parallel {
		r.pool = parallel.NewWorkerPool(o.workers)
	}
	if o.maskCache > 0 {
		r.masks = cache.New[maskKey, *maskFields](o.maskCache)
	}
	return r
}

// Close stops the worker pool. Calls after Close run serially.
func (r *Renderer) Close() {
	if r.pool != nil {
		r.pool.Close()
	}
}

// runner picks the execution strategy for an image of the given pixel count.
func (r *Renderer) runner(pixels int) parallel.ForFunc {
	if r.pool != nil && r.pool.IsRunning() && pixels >= r.opts.threshold {
		return r.pool.Bands
	}
	return parallel.Serial
}

// fields returns the mask-derived fields, from the cache when possible.
func (r *Renderer) fields(mask *Pixmap, sigma int, run parallel.ForFunc) *maskFields {
	if r.masks == nil {
		return buildMaskFields(mask, sigma, run)
	}
	key := newMaskKey(mask, sigma)
	if f, ok := r.masks.Get(key); ok {
		Logger().Debug("relief: mask cache hit", "width", mask.width, "height", mask.height)
		return f
	}
	f := buildMaskFields(mask, sigma, run)
	r.masks.Set(key, f)
	return f
}

// Apply bakes embossed shading of mask into base, in place.
//
// Stages: blur and gray extraction of the mask, distance field, bevel
// height, normals, lighting, edge highlight and shadow. A mask with no
// visible pixel leaves base untouched. Recoverable configuration problems
// are clamped and logged at Warn level; non-finite values return
// ErrInvalidConfig.
func (r *Renderer) Apply(base, mask *Pixmap, cfg Config) error {
	if base == nil || mask == nil {
		return ErrNilPixmap
	}
	if base.Size() != mask.Size() {
		return &SizeMismatchError{Base: base.Size(), Mask: mask.Size()}
	}

	cfg, adjusted, err := cfg.normalize()
	if err != nil {
		return err
	}
	log := Logger()
	for _, a := range adjusted {
		log.Warn("relief: config value adjusted", "field", a.field, "from", a.from, "to", a.to)
	}

	w, h := base.width, base.height
	if w == 0 || h == 0 {
		return nil
	}

	start := time.Now()
	run := r.runner(w * h)
	sigma := cfg.blurSigma(w)

	f := r.fields(mask, sigma, run)
	if !f.active {
		log.Debug("relief: empty mask, base left unchanged", "width", w, "height", h)
		return nil
	}

	height := bevelHeight(f.dist, w, h, cfg.BevelPx, run)
	normals := synthesizeNormals(f.gray, height, w, h, cfg, run)
	shade(base.data, f.gray, height, normals, w, h, cfg, run)
	drawEdges(base.data, f, cfg, run)

	log.Debug("relief: applied",
		"width", w,
		"height", h,
		"bevel_px", cfg.BevelPx,
		"blur_sigma", sigma,
		"depth", cfg.edgeDepth(w),
		"elapsed", time.Since(start))
	return nil
}

// BuildNormalMap is the Renderer form of the package-level BuildNormalMap.
func (r *Renderer) BuildNormalMap(src *Pixmap, opts NormalMapOptions) (*Pixmap, error) {
	if src == nil {
		return nil, ErrNilPixmap
	}
	n := max(opts.Size*opts.Size, src.width*src.height)
	return buildNormalMap(src, opts, r.runner(n))
}

// ApplyRelief bakes embossed shading of mask into base, in place, on the
// calling goroutine. It is equivalent to New().Apply(base, mask, cfg).
func ApplyRelief(base, mask *Pixmap, cfg Config) error {
	return serial.Apply(base, mask, cfg)
}

// serial backs the package-level functions. It has no pool and no cache,
// so it holds no state.
var serial = New()
