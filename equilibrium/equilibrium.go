// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package equilibrium

import (
	"github.com/George-Tsiamasiotis/poincare-maps/config"
	"github.com/George-Tsiamasiotis/poincare-maps/spline"
)

// Equilibrium bundles the four equilibrium components. It owns the
// dataset's sample arrays and every spline built from them exclusively;
// it is read-only after construction and safe to share by reference
// across parallel workers.
type Equilibrium struct {
	Qfactor      *Qfactor
	Currents     *Currents
	Bfield       *Bfield
	Perturbation *Perturbation

	PsipWall float64
	PsiWall  float64
	Baxis    float64
	Raxis    float64
}

// Variants selects the interpolation variant used to build each
// component.
type Variants struct {
	Variant1D Variant1D
	Variant2D Variant2D
}

type (
	Variant1D = spline.Variant1D
	Variant2D = spline.Variant2D
)

// DefaultVariants returns a reasonable default pairing (Cubic, Bicubic).
func DefaultVariants() Variants {
	return Variants{Variant1D: spline.Cubic, Variant2D: spline.Bicubic}
}

// New validates the dataset and builds every component.
func New(d *Dataset, v Variants, phaseMode config.PhaseMode) (*Equilibrium, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	q, err := NewQfactor(d, v.Variant1D)
	if err != nil {
		return nil, err
	}
	c, err := NewCurrents(d, v.Variant1D)
	if err != nil {
		return nil, err
	}
	b, err := NewBfield(d, v.Variant2D)
	if err != nil {
		return nil, err
	}
	p, err := NewPerturbation(d, phaseMode, v.Variant1D)
	if err != nil {
		return nil, err
	}

	return &Equilibrium{
		Qfactor: q, Currents: c, Bfield: b, Perturbation: p,
		PsipWall: d.PsipWall, PsiWall: d.PsiWall, Baxis: d.Baxis, Raxis: d.Raxis,
	}, nil
}

// InsideWall reports whether ψp lies within [0, psip_wall].
func (e *Equilibrium) InsideWall(psip float64) bool {
	return psip >= 0 && psip <= e.PsipWall
}

// Accelerators is the per-worker pair of accelerators shared across every
// spline evaluation at one (ψp,θ). Workers never share an
// Accelerators instance.
type Accelerators struct {
	Psip  *spline.Accelerator
	Theta *spline.Accelerator
}

// NewAccelerators returns a fresh, unshared accelerator pair.
func NewAccelerators() *Accelerators {
	return &Accelerators{Psip: spline.NewAccelerator(), Theta: spline.NewAccelerator()}
}
