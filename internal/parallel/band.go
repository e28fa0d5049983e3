// Package parallel provides band-parallel execution for the relief pipeline.
//
// Every pipeline stage reads neighbour pixels written by the previous stage,
// so stages never overlap: a stage is split into disjoint horizontal row
// bands, the bands run concurrently, and the stage returns only after all of
// them finished. Each band writes only its own rows, so no locking is needed.
package parallel

// MinBandRows is the smallest band handed to a worker. Smaller bands cost
// more in scheduling than they save.
const MinBandRows = 16

// ForFunc runs fn over [0, n) split into contiguous half-open ranges.
// Implementations must not return before every call to fn has returned.
type ForFunc func(n int, fn func(lo, hi int))

// Serial runs fn once over the whole range on the calling goroutine.
func Serial(n int, fn func(lo, hi int)) {
	if n <= 0 {
		return
	}
	fn(0, n)
}

// Split divides [0, n) into at most parts contiguous ranges of at least
// minSize items each (the last one may be shorter). It returns the range
// boundaries: range i is [bounds[i], bounds[i+1]).
func Split(n, parts, minSize int) []int {
	if n <= 0 {
		return nil
	}
	if parts < 1 {
		parts = 1
	}
	if minSize < 1 {
		minSize = 1
	}
	if maxParts := (n + minSize - 1) / minSize; parts > maxParts {
		parts = maxParts
	}

	bounds := make([]int, parts+1)
	step := n / parts
	rem := n % parts
	at := 0
	for i := range parts {
		bounds[i] = at
		at += step
		if i < rem {
			at++
		}
	}
	bounds[parts] = n
	return bounds
}

// Bands runs fn over [0, n) as disjoint bands on the pool and waits for all
// of them. The band count is a small multiple of the worker count so that
// work stealing can even out uneven rows.
func (p *WorkerPool) Bands(n int, fn func(lo, hi int)) {
	bounds := Split(n, p.workers*2, MinBandRows)
	if len(bounds) < 3 {
		Serial(n, fn)
		return
	}

	work := make([]func(), 0, len(bounds)-1)
	for i := 0; i+1 < len(bounds); i++ {
		lo, hi := bounds[i], bounds[i+1]
		work = append(work, func() { fn(lo, hi) })
	}
	p.ExecuteAll(work)
}
