// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package equilibrium

import (
	"math"

	"github.com/George-Tsiamasiotis/poincare-maps/spline"
)

// Qfactor wraps the q(ψp) and ψ(ψp) splines. Both are built
// over the same psip_data abscissa, so callers should evaluate them
// through one shared *spline.Accelerator.
type Qfactor struct {
	q, psi spline.Spline1D
	psip   []float64
	qData  []float64
}

// NewQfactor builds the q and ψ splines from the dataset.
func NewQfactor(d *Dataset, variant spline.Variant1D) (*Qfactor, error) {
	q, err := spline.NewSpline1D(variant, d.PsipData, d.QData, nil)
	if err != nil {
		return nil, err
	}
	psi, err := spline.NewSpline1D(variant, d.PsipData, d.PsiData, nil)
	if err != nil {
		return nil, err
	}
	return &Qfactor{
		q: q, psi: psi,
		psip:  append([]float64(nil), d.PsipData...),
		qData: append([]float64(nil), d.QData...),
	}, nil
}

// Q evaluates q(ψp).
func (o *Qfactor) Q(psip float64, acc *spline.Accelerator) float64 { return o.q.Eval(psip, acc) }

// DqDpsip evaluates dq/dψp.
func (o *Qfactor) DqDpsip(psip float64, acc *spline.Accelerator) float64 {
	return o.q.Deriv1(psip, acc)
}

// Psi evaluates ψ(ψp), the toroidal flux.
func (o *Qfactor) Psi(psip float64, acc *spline.Accelerator) float64 { return o.psi.Eval(psip, acc) }

// DPsiDpsip evaluates dψ/dψp.
func (o *Qfactor) DPsiDpsip(psip float64, acc *spline.Accelerator) float64 {
	return o.psi.Deriv1(psip, acc)
}

// QDataDerived returns dψ/dψp evaluated at every element of psip_data, the
// array a caller cross-checks against the tabulated q_data.
func (o *Qfactor) QDataDerived() []float64 {
	acc := spline.NewAccelerator()
	out := make([]float64, len(o.psip))
	for i, p := range o.psip {
		out[i] = o.psi.Deriv1(p, acc)
	}
	return out
}

// MaxQMismatch reports the worst absolute disagreement between q_data and
// the ψ-spline's derivative at psip_data.
func (o *Qfactor) MaxQMismatch() float64 {
	derived := o.QDataDerived()
	max := 0.0
	for i := range derived {
		if d := math.Abs(derived[i] - o.qData[i]); d > max {
			max = d
		}
	}
	return max
}
