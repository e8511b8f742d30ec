// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spline

// cubicSpline is the natural cubic, C² variant, represented by its
// second-derivative ("M") array at each knot, solved from the standard
// tridiagonal natural-spline system with M[0] = M[n-1] = 0.
type cubicSpline struct {
	base
	m []float64 // second derivative at each knot
}

func newCubicSpline(b base) *cubicSpline {
	b.variant = Cubic
	n := len(b.x)
	h := make([]float64, n-1)
	for i := 0; i < n-1; i++ {
		h[i] = b.x[i+1] - b.x[i]
	}

	// tridiagonal system for interior M[1..n-2]; natural BC clamps the ends.
	sub := make([]float64, n)
	diag := make([]float64, n)
	sup := make([]float64, n)
	rhs := make([]float64, n)
	diag[0], diag[n-1] = 1, 1

	for i := 1; i < n-1; i++ {
		sub[i] = h[i-1]
		diag[i] = 2 * (h[i-1] + h[i])
		sup[i] = h[i]
		rhs[i] = 6 * ((b.y[i+1]-b.y[i])/h[i] - (b.y[i]-b.y[i-1])/h[i-1])
	}

	m := thomasSolve(sub, diag, sup, rhs)
	return &cubicSpline{base: b, m: m}
}

// thomasSolve solves a tridiagonal system Ax=d given sub/diag/sup diagonals,
// modifying nothing in place (copies internally). sub[0] and sup[n-1] are
// ignored, matching the natural-spline boundary rows above.
func thomasSolve(sub, diag, sup, rhs []float64) []float64 {
	n := len(diag)
	cp := make([]float64, n)
	dp := make([]float64, n)
	cp[0] = sup[0] / diag[0]
	dp[0] = rhs[0] / diag[0]
	for i := 1; i < n; i++ {
		denom := diag[i] - sub[i]*cp[i-1]
		if i < n-1 {
			cp[i] = sup[i] / denom
		}
		dp[i] = (rhs[i] - sub[i]*dp[i-1]) / denom
	}
	x := make([]float64, n)
	x[n-1] = dp[n-1]
	for i := n - 2; i >= 0; i-- {
		x[i] = dp[i] - cp[i]*x[i+1]
	}
	return x
}

func (s *cubicSpline) coeffs(x float64, acc *Accelerator) (i int, h, A, B float64) {
	i = locate(&s.base, x, acc)
	h = s.x[i+1] - s.x[i]
	A = (s.x[i+1] - x) / h
	B = (x - s.x[i]) / h
	return
}

func (s *cubicSpline) Eval(x float64, acc *Accelerator) float64 {
	i, h, A, B := s.coeffs(x, acc)
	return A*s.y[i] + B*s.y[i+1] +
		((A*A*A-A)*s.m[i]+(B*B*B-B)*s.m[i+1])*h*h/6
}

func (s *cubicSpline) Deriv1(x float64, acc *Accelerator) float64 {
	i, h, A, B := s.coeffs(x, acc)
	return (s.y[i+1]-s.y[i])/h -
		(3*A*A-1)/6*h*s.m[i] +
		(3*B*B-1)/6*h*s.m[i+1]
}

func (s *cubicSpline) Deriv2(x float64, acc *Accelerator) float64 {
	i, _, A, B := s.coeffs(x, acc)
	return A*s.m[i] + B*s.m[i+1]
}
