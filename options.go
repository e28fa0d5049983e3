package relief

// Option configures a Renderer during creation.
//
// Example:
//
//	// Serial renderer (same as the package-level ApplyRelief)
//	r := relief.New()
//
//	// Parallel renderer that also memoizes the fields of recent masks
//	r := relief.New(relief.WithWorkers(0), relief.WithMaskCache(8))
//	defer r.Close()
type Option func(*rendererOptions)

// DefaultParallelThreshold is the pixel count from which a parallel
// Renderer splits stages into row bands.
const DefaultParallelThreshold = 2048 * 2048

type rendererOptions struct {
	parallel  bool
	workers   int
	threshold int
	maskCache int
}

func defaultOptions() rendererOptions {
	return rendererOptions{
		threshold: DefaultParallelThreshold,
	}
}

// WithWorkers enables band-parallel execution with n workers.
// n <= 0 selects GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *rendererOptions) {
		o.parallel = true
		o.workers = n
	}
}

// WithParallelThreshold sets the minimum width*height at which stages run
// in parallel. Smaller images are shaded serially even when workers are
// configured. It has no effect without WithWorkers.
func WithParallelThreshold(pixels int) Option {
	return func(o *rendererOptions) {
		o.threshold = max(pixels, 0)
	}
}

// WithMaskCache keeps the derived fields (blurred gray field and distance
// field) of the n most recently used masks. Shading many base images with
// the same decal then skips the mask stages. n <= 0 disables the cache.
func WithMaskCache(n int) Option {
	return func(o *rendererOptions) {
		o.maskCache = max(n, 0)
	}
}
