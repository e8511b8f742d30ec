// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package spline implements 1-D and 2-D field interpolants: a closed
// set of interpolation variants dispatched once at construction
// (tagged-variant polymorphism — hot-path evaluation is monomorphic), and a
// shared Accelerator amortising interval lookups across splines built on
// the same abscissa.
package spline

import (
	"math"

	"github.com/George-Tsiamasiotis/poincare-maps/status"
)

// Variant1D is the closed set of 1-D interpolation selectors.
type Variant1D string

const (
	Linear        Variant1D = "Linear"
	Cubic         Variant1D = "Cubic"
	Akima         Variant1D = "Akima"
	AkimaPeriodic Variant1D = "AkimaPeriodic"
	Steffen       Variant1D = "Steffen"
)

// minPoints is the minimum abscissa length each variant requires.
var minPoints = map[Variant1D]int{
	Linear:        2,
	Cubic:         3,
	Akima:         5,
	AkimaPeriodic: 5,
	Steffen:       3,
}

// Spline1D answers eval/d_dx/d2_dx2 queries over [x_min, x_max].
// Every query takes an explicit Accelerator handle (design note §9: passed
// in, never owned by the spline) so that splines sharing an abscissa can
// share one Accelerator. Passing nil is legal and uses a private,
// unamortised accelerator for that one call.
type Spline1D interface {
	Eval(x float64, acc *Accelerator) float64
	Deriv1(x float64, acc *Accelerator) float64
	Deriv2(x float64, acc *Accelerator) float64
	XMin() float64
	XMax() float64
	Variant() Variant1D
}

// base holds the abscissa/ordinate every variant shares.
type base struct {
	x, y    []float64
	variant Variant1D
}

func (b *base) XMin() float64      { return b.x[0] }
func (b *base) XMax() float64      { return b.x[len(b.x)-1] }
func (b *base) Variant() Variant1D { return b.variant }

// NewSpline1D constructs a 1-D spline of the given variant over (x, y).
// It validates the shared preconditions before dispatching to
// the variant-specific builder.
func NewSpline1D(variant Variant1D, x, y []float64, acc *Accelerator) (Spline1D, error) {
	minN, ok := minPoints[variant]
	if !ok {
		return nil, status.Errf(status.UnknownInterpolation, "unknown 1-D interpolation variant %q", variant)
	}
	if len(x) != len(y) {
		return nil, status.Errf(status.ShapeMismatch, "abscissa and ordinate lengths differ: %d vs %d", len(x), len(y))
	}
	if len(x) < minN {
		return nil, status.Errf(status.InsufficientPoints, "variant %q requires at least %d points, got %d", variant, minN, len(x))
	}
	for i := range x {
		if math.IsNaN(x[i]) || math.IsInf(x[i], 0) || math.IsNaN(y[i]) || math.IsInf(y[i], 0) {
			return nil, status.Errf(status.MalformedInput, "non-finite sample at index %d", i)
		}
	}
	for i := 1; i < len(x); i++ {
		if x[i] <= x[i-1] {
			return nil, status.Errf(status.NonMonotone, "abscissa is not strictly increasing at index %d (%g <= %g)", i, x[i], x[i-1])
		}
	}

	b := base{x: append([]float64(nil), x...), y: append([]float64(nil), y...), variant: variant}

	switch variant {
	case Linear:
		return newLinearSpline(b), nil
	case Cubic:
		return newCubicSpline(b), nil
	case Akima, AkimaPeriodic:
		return newAkimaSpline(b, variant == AkimaPeriodic)
	case Steffen:
		return newSteffenSpline(b), nil
	}
	return nil, status.Errf(status.UnknownInterpolation, "unknown 1-D interpolation variant %q", variant)
}

// locate finds the interval index for x using acc if non-nil, otherwise a
// private throwaway accelerator (still O(log n), just without cross-call
// amortisation). Queries outside [x_min, x_max] clamp to the boundary
// interval and extrapolate per the variant's natural rule.
func locate(b *base, x float64, acc *Accelerator) int {
	if acc == nil {
		acc = NewAccelerator()
	}
	return acc.Locate(b.x, x)
}
