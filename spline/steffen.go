// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spline

import "math"

// newSteffenSpline builds the monotone, overshoot-free C¹ variant
// (Steffen 1990), following the standard three-point boundary treatment.
func newSteffenSpline(b base) *hermiteSpline {
	n := len(b.x)
	h := make([]float64, n-1)
	s := make([]float64, n-1)
	for i := 0; i < n-1; i++ {
		h[i] = b.x[i+1] - b.x[i]
		s[i] = (b.y[i+1] - b.y[i]) / h[i]
	}

	m := make([]float64, n)
	for i := 1; i < n-1; i++ {
		p := (s[i-1]*h[i] + s[i]*h[i-1]) / (h[i-1] + h[i])
		if s[i-1]*s[i] <= 0 {
			m[i] = 0
		} else {
			m[i] = 2 * sign(s[i-1]) * math.Min(math.Min(math.Abs(s[i-1]), math.Abs(s[i])), 0.5*math.Abs(p))
		}
	}

	m[0] = steffenBoundary(h[0], h[1], s[0], s[1])
	m[n-1] = steffenBoundary(h[n-2], h[n-3], s[n-2], s[n-3])

	b.variant = Steffen
	return &hermiteSpline{base: b, m: m}
}

// steffenBoundary computes the one-sided endpoint slope from the two
// intervals nearest the boundary, constrained to preserve monotonicity.
func steffenBoundary(hNear, hFar, sNear, sFar float64) float64 {
	m := ((2*hNear+hFar)*sNear - hNear*sFar) / (hNear + hFar)
	switch {
	case m*sNear <= 0:
		return 0
	case math.Abs(m) > 2*math.Abs(sNear):
		return 2 * sNear
	default:
		return m
	}
}

func sign(x float64) float64 {
	if x < 0 {
		return -1
	}
	return 1
}
