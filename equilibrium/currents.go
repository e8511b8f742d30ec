// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package equilibrium

import "github.com/George-Tsiamasiotis/poincare-maps/spline"

// Currents wraps g(ψp) and I(ψp), the poloidal and toroidal plasma
// current flux functions, exposing both functions and their
// ψp-derivatives.
type Currents struct {
	g, i spline.Spline1D
}

// NewCurrents builds the g and I splines from the dataset.
func NewCurrents(d *Dataset, variant spline.Variant1D) (*Currents, error) {
	g, err := spline.NewSpline1D(variant, d.PsipData, d.GData, nil)
	if err != nil {
		return nil, err
	}
	i, err := spline.NewSpline1D(variant, d.PsipData, d.IData, nil)
	if err != nil {
		return nil, err
	}
	return &Currents{g: g, i: i}, nil
}

// G evaluates g(ψp), the poloidal current flux function.
func (o *Currents) G(psip float64, acc *spline.Accelerator) float64 { return o.g.Eval(psip, acc) }

// DgDpsip evaluates dg/dψp.
func (o *Currents) DgDpsip(psip float64, acc *spline.Accelerator) float64 {
	return o.g.Deriv1(psip, acc)
}

// I evaluates I(ψp), the toroidal current flux function.
func (o *Currents) I(psip float64, acc *spline.Accelerator) float64 { return o.i.Eval(psip, acc) }

// DiDpsip evaluates dI/dψp.
func (o *Currents) DiDpsip(psip float64, acc *spline.Accelerator) float64 {
	return o.i.Deriv1(psip, acc)
}
