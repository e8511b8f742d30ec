// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package integrate

import (
	"math"

	"github.com/George-Tsiamasiotis/poincare-maps/config"
	"github.com/George-Tsiamasiotis/poincare-maps/orbit"
)

// StepResult holds everything a Controller needs to judge one Fehlberg
// step.
type StepResult struct {
	T        float64
	H        float64
	YOld     orbit.State
	Y4, Y5   orbit.State
}

// Decision is a controller's verdict on one step.
type Decision struct {
	Accept bool
	HNext  float64
	Eta    float64 // normalised error (or its energy-drift analogue), for diagnostics
}

// Controller decides whether to accept a step and how to resize it.
type Controller interface {
	Decide(rhs *orbit.RHS, r StepResult, cfg *config.Config) Decision
}

// nextH applies the shared step-resizing rule to a normalised error eta:
// accepted steps may grow by at most 5x, and no step shrinks by more
// than 10x, both damped by the safety factor.
func nextH(h, eta, safety float64) float64 {
	factor := safety * math.Pow(eta, -1.0/5)
	if eta <= 1 {
		if factor > 5 {
			factor = 5
		}
	}
	if factor < 0.1 {
		factor = 0.1
	}
	return h * factor
}

// LTEController is the default, local-truncation-error controller.
type LTEController struct{}

func (LTEController) Decide(_ *orbit.RHS, r StepResult, cfg *config.Config) Decision {
	v4, v5 := r.Y4.Vector(), r.Y5.Vector()
	eta := etaNorm(v4, v5, cfg)
	accept := eta <= 1
	return Decision{Accept: accept, HNext: nextH(r.H, eta, cfg.Safety), Eta: eta}
}

// etaNorm computes the LTE controller's normalised error, the largest
// component-wise |y5-y4| over atol + rtol*max(|y5|, |y4|).
func etaNorm(v4, v5 [4]float64, cfg *config.Config) float64 {
	eta := 0.0
	for i := range v4 {
		e := math.Abs(v5[i] - v4[i])
		scale := cfg.Atol + cfg.Rtol*math.Max(math.Abs(v5[i]), math.Abs(v4[i]))
		if n := e / scale; n > eta {
			eta = n
		}
	}
	return eta
}

// EnergyController is the alternative energy-drift controller. It reuses the LTE resizing rule with
// eta defined as the drift normalised against a target of half eps_energy,
// so that a step landing exactly on target drift sizes as eta=1 — "same
// acceptance/rejection plumbing as above" while swapping only the
// rejection predicate (drift ≤ eps_energy, not eta ≤ 1) and the quantity
// driving it.
type EnergyController struct{}

func (EnergyController) Decide(rhs *orbit.RHS, r StepResult, cfg *config.Config) Decision {
	eOld := rhs.Hamiltonian(r.T, r.YOld)
	eNew := rhs.Hamiltonian(r.T+r.H, r.Y5)
	drift := math.Abs(eNew - eOld)
	tol := cfg.EpsEnergy * math.Max(1, math.Abs(eOld))

	accept := drift <= tol
	target := 0.5 * tol
	eta := drift / target
	return Decision{Accept: accept, HNext: nextH(r.H, eta, cfg.Safety), Eta: eta}
}

// NewController selects the configured controller.
func NewController(c config.Controller) Controller {
	if c == config.ControllerEnergy {
		return EnergyController{}
	}
	return LTEController{}
}
