// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spline

// linearSpline is the piecewise-linear, C⁰ variant.
type linearSpline struct {
	base
}

func newLinearSpline(b base) *linearSpline {
	b.variant = Linear
	return &linearSpline{base: b}
}

func (s *linearSpline) interval(x float64, acc *Accelerator) (i int, t, h float64) {
	i = locate(&s.base, x, acc)
	h = s.x[i+1] - s.x[i]
	t = (x - s.x[i]) / h
	return
}

func (s *linearSpline) Eval(x float64, acc *Accelerator) float64 {
	i, t, _ := s.interval(x, acc)
	return s.y[i] + t*(s.y[i+1]-s.y[i])
}

func (s *linearSpline) Deriv1(x float64, acc *Accelerator) float64 {
	i, _, h := s.interval(x, acc)
	return (s.y[i+1] - s.y[i]) / h
}

func (s *linearSpline) Deriv2(x float64, acc *Accelerator) float64 {
	return 0
}
