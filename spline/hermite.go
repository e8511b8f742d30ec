// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spline

// hermiteSpline is a piecewise-cubic-Hermite representation driven by a
// per-knot slope array m[]. Akima and Steffen differ only in how m[] is
// computed from the data; evaluation is shared here.
type hermiteSpline struct {
	base
	m        []float64 // slope (first derivative) at each knot
	periodic bool
}

func (s *hermiteSpline) interval(x float64, acc *Accelerator) (i int, h, t float64) {
	i = locate(&s.base, x, acc)
	h = s.x[i+1] - s.x[i]
	t = (x - s.x[i]) / h
	return
}

func (s *hermiteSpline) Eval(x float64, acc *Accelerator) float64 {
	i, h, t := s.interval(x, acc)
	t2, t3 := t*t, t*t*t
	h00 := 2*t3 - 3*t2 + 1
	h10 := t3 - 2*t2 + t
	h01 := -2*t3 + 3*t2
	h11 := t3 - t2
	return h00*s.y[i] + h10*h*s.m[i] + h01*s.y[i+1] + h11*h*s.m[i+1]
}

func (s *hermiteSpline) Deriv1(x float64, acc *Accelerator) float64 {
	i, h, t := s.interval(x, acc)
	t2 := t * t
	dh00 := 6*t2 - 6*t
	dh10 := 3*t2 - 4*t + 1
	dh01 := -6*t2 + 6*t
	dh11 := 3*t2 - 2*t
	return (dh00*s.y[i] + dh10*h*s.m[i] + dh01*s.y[i+1] + dh11*h*s.m[i+1]) / h
}

func (s *hermiteSpline) Deriv2(x float64, acc *Accelerator) float64 {
	i, h, t := s.interval(x, acc)
	d2h00 := 12*t - 6
	d2h10 := 6*t - 4
	d2h01 := -12*t + 6
	d2h11 := 6*t - 2
	return (d2h00*s.y[i] + d2h10*h*s.m[i] + d2h01*s.y[i+1] + d2h11*h*s.m[i+1]) / (h * h)
}
