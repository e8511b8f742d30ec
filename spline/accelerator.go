// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spline

// Accelerator caches the last-used grid interval of an abscissa so that a
// sequence of queries near each other avoids a full binary search. One
// Accelerator may — and, for performance, should — be shared across every
// spline built from the same abscissa: q, ψ, g, I and every harmonic's a(ψp)
// all share the psip_data abscissa, so a single Accelerator amortises the
// interval lookup across all of them at a given ψp.
//
// An Accelerator is not safe for concurrent use; each parallel worker owns
// its own.
type Accelerator struct {
	index   int // cached left-interval index
	n       int // length of the abscissa this accelerator was last used with
	lookups int // instrumentation: number of times Locate was called
	hits    int // instrumentation: number of times the cache satisfied the query without a search
}

// NewAccelerator returns a fresh, unpositioned accelerator.
func NewAccelerator() *Accelerator {
	return &Accelerator{}
}

// Lookups returns the number of Locate calls made through this
// accelerator, letting a caller verify how many interval searches a
// sequence of co-located evaluations actually performed.
func (a *Accelerator) Lookups() int { return a.lookups }

// Hits returns the number of Locate calls resolved from the cached interval
// without a binary search.
func (a *Accelerator) Hits() int { return a.hits }

// Reset clears the cached interval and instrumentation counters.
func (a *Accelerator) Reset() {
	a.index = 0
	a.n = 0
	a.lookups = 0
	a.hits = 0
}

// Locate returns i such that x ∈ [xs[i], xs[i+1]) for a strictly increasing
// xs, clamped to [0, len(xs)-2]. It first tries the cached interval (and its
// immediate neighbours) in O(1); on a miss it falls back to binary search
// and updates the cache.
func (a *Accelerator) Locate(xs []float64, x float64) int {
	a.lookups++
	n := len(xs)
	if a.n != n {
		a.index = 0
		a.n = n
	}
	hi := n - 2

	// fast path: cached interval still contains x
	if a.index >= 0 && a.index <= hi && x >= xs[a.index] && x <= xs[a.index+1] {
		a.hits++
		return a.index
	}
	// fast path: the next interval over (common for monotonically advancing queries)
	if a.index+1 <= hi && x >= xs[a.index+1] && x <= xs[a.index+2] {
		a.hits++
		a.index++
		return a.index
	}
	// fast path: the previous interval (common for a step that was rejected and retried)
	if a.index-1 >= 0 && x >= xs[a.index-1] && x <= xs[a.index] {
		a.hits++
		a.index--
		return a.index
	}

	// binary search
	lo, h := 0, n-1
	for h-lo > 1 {
		mid := (lo + h) / 2
		if xs[mid] <= x {
			lo = mid
		} else {
			h = mid
		}
	}
	if lo > hi {
		lo = hi
	}
	if lo < 0 {
		lo = 0
	}
	a.index = lo
	return lo
}
