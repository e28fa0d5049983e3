package filter

import (
	"math"

	"github.com/gogpu/relief/internal/cache"
)

// GaussianKernel generates a normalized 1D Gaussian kernel with standard
// deviation sigma. The kernel has 2*ceil(3*sigma)+1 taps, which covers
// 99.7% of the distribution.
//
// For sigma <= 0 it returns the identity kernel [1].
func GaussianKernel(sigma float64) []float32 {
	if sigma <= 0 || math.IsNaN(sigma) {
		return []float32{1}
	}

	half := int(math.Ceil(sigma * 3))
	kernel := make([]float32, half*2+1)

	twoSigmaSq := 2 * sigma * sigma
	sum := 0.0
	for i := range kernel {
		x := float64(i - half)
		v := math.Exp(-(x * x) / twoSigmaSq)
		kernel[i] = float32(v)
		sum += v
	}

	inv := float32(1 / sum)
	for i := range kernel {
		kernel[i] *= inv
	}
	return kernel
}

// kernels memoizes kernels by sigma quantized to 1/100 px.
var kernels = cache.New[int, []float32](64)

// CachedGaussianKernel returns a shared Gaussian kernel for sigma.
// The returned slice must not be modified.
func CachedGaussianKernel(sigma float64) []float32 {
	key := int(math.Round(sigma * 100))
	return kernels.GetOrCreate(key, func() []float32 {
		return GaussianKernel(float64(key) / 100)
	})
}

// KernelRadius returns the number of taps on each side of the centre of the
// kernel generated for sigma.
func KernelRadius(sigma float64) int {
	if sigma <= 0 {
		return 0
	}
	return int(math.Ceil(sigma * 3))
}
