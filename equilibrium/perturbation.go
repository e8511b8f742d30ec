// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package equilibrium

import (
	"github.com/George-Tsiamasiotis/poincare-maps/config"
	"github.com/George-Tsiamasiotis/poincare-maps/spline"
)

// Perturbation is an ordered collection of Harmonics; its aggregate value
// and every derivative is the linear sum of the harmonics'.
type Perturbation struct {
	harmonics []*Harmonic
}

// NewPerturbation builds a Perturbation from the dataset's harmonic
// records, in file order.
func NewPerturbation(d *Dataset, mode config.PhaseMode, variant spline.Variant1D) (*Perturbation, error) {
	p := &Perturbation{harmonics: make([]*Harmonic, 0, len(d.Harmonics))}
	for _, hd := range d.Harmonics {
		h, err := NewHarmonic(d, hd, mode, variant)
		if err != nil {
			return nil, err
		}
		p.harmonics = append(p.harmonics, h)
	}
	return p, nil
}

// Len returns the number of harmonics.
func (p *Perturbation) Len() int { return len(p.harmonics) }

// At returns the i-th harmonic.
func (p *Perturbation) At(i int) *Harmonic { return p.harmonics[i] }

// Value folds Harmonic.Value over every harmonic.
func (p *Perturbation) Value(psip, theta, zeta, t float64, acc *spline.Accelerator) float64 {
	sum := 0.0
	for _, h := range p.harmonics {
		sum += h.Value(psip, theta, zeta, t, acc)
	}
	return sum
}

// DDtheta folds Harmonic.DDtheta.
func (p *Perturbation) DDtheta(psip, theta, zeta, t float64, acc *spline.Accelerator) float64 {
	sum := 0.0
	for _, h := range p.harmonics {
		sum += h.DDtheta(psip, theta, zeta, t, acc)
	}
	return sum
}

// DDzeta folds Harmonic.DDzeta.
func (p *Perturbation) DDzeta(psip, theta, zeta, t float64, acc *spline.Accelerator) float64 {
	sum := 0.0
	for _, h := range p.harmonics {
		sum += h.DDzeta(psip, theta, zeta, t, acc)
	}
	return sum
}

// DDt folds Harmonic.DDt.
func (p *Perturbation) DDt(psip, theta, zeta, t float64, acc *spline.Accelerator) float64 {
	sum := 0.0
	for _, h := range p.harmonics {
		sum += h.DDt(psip, theta, zeta, t, acc)
	}
	return sum
}

// DDpsip folds Harmonic.DDpsip.
func (p *Perturbation) DDpsip(psip, theta, zeta, t float64, acc *spline.Accelerator) float64 {
	sum := 0.0
	for _, h := range p.harmonics {
		sum += h.DDpsip(psip, theta, zeta, t, acc)
	}
	return sum
}

// D2Dtheta2 folds Harmonic.D2Dtheta2.
func (p *Perturbation) D2Dtheta2(psip, theta, zeta, t float64, acc *spline.Accelerator) float64 {
	sum := 0.0
	for _, h := range p.harmonics {
		sum += h.D2Dtheta2(psip, theta, zeta, t, acc)
	}
	return sum
}

// D2DpsipDtheta folds Harmonic.D2DpsipDtheta.
func (p *Perturbation) D2DpsipDtheta(psip, theta, zeta, t float64, acc *spline.Accelerator) float64 {
	sum := 0.0
	for _, h := range p.harmonics {
		sum += h.D2DpsipDtheta(psip, theta, zeta, t, acc)
	}
	return sum
}

// D2Dpsip2 folds Harmonic.D2Dpsip2.
func (p *Perturbation) D2Dpsip2(psip, theta, zeta, t float64, acc *spline.Accelerator) float64 {
	sum := 0.0
	for _, h := range p.harmonics {
		sum += h.D2Dpsip2(psip, theta, zeta, t, acc)
	}
	return sum
}
