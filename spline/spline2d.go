// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spline

import "github.com/George-Tsiamasiotis/poincare-maps/status"

// Variant2D is the closed set of 2-D interpolation selectors.
// Each is built as a tensor product of the corresponding 1-D basis on the
// (ψp, θ) grid: Bilinear uses Linear, Bicubic uses Cubic.
type Variant2D string

const (
	Bilinear Variant2D = "Bilinear"
	Bicubic  Variant2D = "Bicubic"
)

var variant2Dbasis = map[Variant2D]Variant1D{
	Bilinear: Linear,
	Bicubic:  Cubic,
}

// Spline2D answers eval, the four first/second partials and the mixed
// partial, over x ∈ [x_min,x_max], y ∈ [y_min,y_max].
// Two accelerators are accepted, one per axis, matching the RHS
// assembler's "one accelerator pair" usage.
type Spline2D interface {
	Eval(x, y float64, accX, accY *Accelerator) float64
	DDx(x, y float64, accX, accY *Accelerator) float64
	DDy(x, y float64, accX, accY *Accelerator) float64
	D2Dx2(x, y float64, accX, accY *Accelerator) float64
	D2Dy2(x, y float64, accX, accY *Accelerator) float64
	D2DxDy(x, y float64, accX, accY *Accelerator) float64
}

// tensorSpline2D is the shared implementation for Bilinear and Bicubic: it
// pre-builds, at construction, one 1-D spline per column of the (x,y) grid
// — i.e. one spline over the x (ψp) abscissa per fixed y (θ) grid value —
// and on every query builds one small, throwaway 1-D spline over the y
// abscissa from the column splines' evaluations at the query x. Because
// that throwaway spline is always built over the same y abscissa
// (theta_data), an Accelerator for the y-axis may still be shared across
// calls and across sibling 2-D splines, preserving the documented
// accelerator-sharing benefit on the axis that matters for the hot loop,
// where a single (ψp,θ) pair is evaluated for b and its partials at once.
type tensorSpline2D struct {
	xData, yData []float64
	variant      Variant1D
	columns      []Spline1D // one per yData entry, built over xData
}

// newTensorSpline2D validates shapes and builds the per-column splines.
func newTensorSpline2D(variant Variant2D, xData, yData []float64, values [][]float64) (*tensorSpline2D, error) {
	basis, ok := variant2Dbasis[variant]
	if !ok {
		return nil, status.Errf(status.UnknownInterpolation, "unknown 2-D interpolation variant %q", variant)
	}
	n, m := len(xData), len(yData)
	if len(values) != n {
		return nil, status.Errf(status.ShapeMismatch, "value grid has %d rows, expected %d (len(psip_data))", len(values), n)
	}
	for i, row := range values {
		if len(row) != m {
			return nil, status.Errf(status.ShapeMismatch, "value grid row %d has %d columns, expected %d (len(theta_data))", i, len(row), m)
		}
	}

	columns := make([]Spline1D, m)
	for j := 0; j < m; j++ {
		col := make([]float64, n)
		for i := 0; i < n; i++ {
			col[i] = values[i][j]
		}
		sp, err := NewSpline1D(basis, xData, col, nil)
		if err != nil {
			return nil, err
		}
		columns[j] = sp
	}

	return &tensorSpline2D{
		xData: append([]float64(nil), xData...),
		yData: append([]float64(nil), yData...),
		variant: basis,
		columns: columns,
	}, nil
}

// sample evaluates (or differentiates, per colEval) every column spline at
// x, sharing accX across all of them, then builds and queries the
// throwaway y-direction spline with accY.
func (s *tensorSpline2D) sample(x, y float64, accX, accY *Accelerator, colEval func(Spline1D, float64, *Accelerator) float64, yQuery func(Spline1D, float64, *Accelerator) float64) float64 {
	vals := make([]float64, len(s.yData))
	for j, col := range s.columns {
		vals[j] = colEval(col, x, accX)
	}
	ySpline, err := NewSpline1D(s.variant, s.yData, vals, nil)
	if err != nil {
		// columns and yData were already validated at construction; a
		// failure here would mean the shared abscissa became invalid,
		// which cannot happen without mutating yData.
		panic(err)
	}
	return yQuery(ySpline, y, accY)
}

func evalF(sp Spline1D, x float64, acc *Accelerator) float64   { return sp.Eval(x, acc) }
func deriv1F(sp Spline1D, x float64, acc *Accelerator) float64 { return sp.Deriv1(x, acc) }
func deriv2F(sp Spline1D, x float64, acc *Accelerator) float64 { return sp.Deriv2(x, acc) }

func (s *tensorSpline2D) Eval(x, y float64, accX, accY *Accelerator) float64 {
	return s.sample(x, y, accX, accY, evalF, evalF)
}

func (s *tensorSpline2D) DDx(x, y float64, accX, accY *Accelerator) float64 {
	return s.sample(x, y, accX, accY, deriv1F, evalF)
}

func (s *tensorSpline2D) DDy(x, y float64, accX, accY *Accelerator) float64 {
	return s.sample(x, y, accX, accY, evalF, deriv1F)
}

func (s *tensorSpline2D) D2Dx2(x, y float64, accX, accY *Accelerator) float64 {
	return s.sample(x, y, accX, accY, deriv2F, evalF)
}

func (s *tensorSpline2D) D2Dy2(x, y float64, accX, accY *Accelerator) float64 {
	return s.sample(x, y, accX, accY, evalF, deriv2F)
}

func (s *tensorSpline2D) D2DxDy(x, y float64, accX, accY *Accelerator) float64 {
	return s.sample(x, y, accX, accY, deriv1F, deriv1F)
}

// NewSpline2D constructs a 2-D spline of the given variant over the
// tensor-product grid (xData × yData), with values[i][j] = f(xData[i],
// yData[j]).
func NewSpline2D(variant Variant2D, xData, yData []float64, values [][]float64) (Spline2D, error) {
	return newTensorSpline2D(variant, xData, yData, values)
}
