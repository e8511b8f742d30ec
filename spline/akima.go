// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spline

import (
	"math"

	"github.com/George-Tsiamasiotis/poincare-maps/status"
)

// periodicTol bounds how far y[0] and y[n-1] may differ before an
// AkimaPeriodic construction is rejected as NonPeriodic.
const periodicTol = 1e-9

// newAkimaSpline builds the Akima (local C¹) variant. When periodic is
// true, the secant-slope sequence is extended cyclically instead of by
// boundary extrapolation, and the endpoint match is validated first.
func newAkimaSpline(b base, periodic bool) (*hermiteSpline, error) {
	n := len(b.x)
	if periodic {
		scale := math.Max(math.Abs(b.y[0]), math.Abs(b.y[n-1]))
		if math.Abs(b.y[0]-b.y[n-1]) > periodicTol*math.Max(1, scale) {
			return nil, status.Errf(status.NonPeriodic, "AkimaPeriodic requires y[0] == y[n-1], got %g vs %g", b.y[0], b.y[n-1])
		}
	}

	d := make([]float64, n-1)
	for i := 0; i < n-1; i++ {
		d[i] = (b.y[i+1] - b.y[i]) / (b.x[i+1] - b.x[i])
	}

	dAt := func(i int) float64 {
		m := n - 1
		if periodic {
			idx := ((i % m) + m) % m
			return d[idx]
		}
		switch {
		case i < 0:
			if i == -1 {
				return 2*d[0] - d[1]
			}
			return 2*(2*d[0]-d[1]) - d[0] // i == -2
		case i > m-1:
			if i == m {
				return 2*d[m-1] - d[m-2]
			}
			return 2*(2*d[m-1]-d[m-2]) - d[m-1] // i == m+1
		default:
			return d[i]
		}
	}

	m := make([]float64, n)
	for k := 0; k < n; k++ {
		w1 := math.Abs(dAt(k+1) - dAt(k))
		w2 := math.Abs(dAt(k-1) - dAt(k-2))
		if w1+w2 > 0 {
			m[k] = (w1*dAt(k-1) + w2*dAt(k)) / (w1 + w2)
		} else {
			m[k] = (dAt(k-1) + dAt(k)) / 2
		}
	}

	variant := Akima
	if periodic {
		variant = AkimaPeriodic
	}
	b.variant = variant
	return &hermiteSpline{base: b, m: m, periodic: periodic}, nil
}
