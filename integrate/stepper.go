// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package integrate

import (
	"math"

	"github.com/George-Tsiamasiotis/poincare-maps/config"
	"github.com/George-Tsiamasiotis/poincare-maps/orbit"
	"github.com/George-Tsiamasiotis/poincare-maps/status"
)

// Stepper drives one particle's RKF4(5) integration against its own RHS
// and a chosen Controller. A Stepper is single-owner: it must
// not be shared across particles or goroutines, since orbit.RHS carries
// per-worker accelerators.
type Stepper struct {
	RHS  *orbit.RHS
	Cfg  *config.Config
	Ctrl Controller
}

// NewStepper builds a Stepper whose controller is chosen by cfg.Controller
//.
func NewStepper(rhs *orbit.RHS, cfg *config.Config) *Stepper {
	return &Stepper{RHS: rhs, Cfg: cfg, Ctrl: NewController(cfg.Controller)}
}

// StepOutcome is the result of one TryStep call.
type StepOutcome struct {
	T, H     float64
	Y        orbit.State
	Accepted bool
	Eta      float64
}

// TryStep attempts a single Fehlberg step of size h from (t, y). On
// rejection the caller must retry from the same (t, y) with
// StepOutcome.H. A
// non-nil status is returned only for NonFinite, which the caller should
// treat as the particle's terminal condition rather than retrying.
func (st *Stepper) TryStep(t float64, y orbit.State, h float64) (StepOutcome, status.Status, error) {
	f := func(t float64, v [4]float64) ([4]float64, error) {
		out, err := st.RHS.Eval(t, orbit.FromVector(v))
		if err != nil {
			return [4]float64{}, err
		}
		return out.Vector(), nil
	}

	v4, v5, err := Stage(f, t, h, y.Vector())
	if err != nil {
		// the only failure mode of RHS.Eval is a singular guiding-centre
		// Jacobian, i.e. the dynamics themselves have broken down.
		return StepOutcome{}, status.NonFinite, nil
	}
	for _, v := range v5 {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return StepOutcome{}, status.NonFinite, nil
		}
	}

	y4, y5 := orbit.FromVector(v4), orbit.FromVector(v5)
	decision := st.Ctrl.Decide(st.RHS, StepResult{T: t, H: h, YOld: y, Y4: y4, Y5: y5}, st.Cfg)
	if !decision.Accept {
		return StepOutcome{T: t, H: decision.HNext, Y: y, Accepted: false, Eta: decision.Eta}, "", nil
	}
	return StepOutcome{T: t + h, H: decision.HNext, Y: y5, Accepted: true, Eta: decision.Eta}, "", nil
}

// Run integrates in time-series mode from (t0, y0) until a terminal
// condition fires. cancel, if non-nil, is polled
// once per accepted step. Reaching cfg.MaxSteps without any
// other terminal condition is treated as a normal Completed run: the
// ceiling is a configured resource bound, not a failure.
func (st *Stepper) Run(t0 float64, y0 orbit.State, cancel func() bool) (*EvolutionBuffer, status.Status, error) {
	buf := NewEvolutionBuffer(st.Cfg.MaxSteps, st.Cfg.StoreStride)

	t, y, h := t0, y0, st.Cfg.H0
	for n := 0; n < st.Cfg.MaxSteps; n++ {
		if h < st.Cfg.HMin {
			return buf, status.StepFloorReached, nil
		}

		outcome, term, err := st.TryStep(t, y, h)
		if err != nil {
			return buf, "", err
		}
		if term != "" {
			return buf, term, nil
		}
		if !outcome.Accepted {
			h = outcome.H
			continue
		}

		t, y, h = outcome.T, outcome.Y, outcome.H
		if !st.RHS.Eq.InsideWall(y.Psip) {
			return buf, status.EscapedWall, nil
		}

		buf.Offer(st.row(t, y))
		if cancel != nil && cancel() {
			return buf, status.Cancelled, nil
		}
	}
	return buf, status.Completed, nil
}

func (st *Stepper) row(t float64, y orbit.State) Row {
	psi := st.RHS.Eq.Qfactor.Psi(y.Psip, st.RHS.Acc.Psip)
	pTheta, pZeta := orbit.CanonicalMomenta(y.Psip, y.Rho, st.RHS.Eq, st.RHS.Acc)
	return Row{
		T: t, Theta: y.Theta, Psip: y.Psip, Rho: y.Rho, Zeta: y.Zeta,
		Psi: psi, PTheta: pTheta, PZeta: pZeta,
	}
}
