// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package analytic supplies closed-form and independently-integrated
// reference trajectories for constant-field end-to-end test scenarios.
// It is test scaffolding, not part of the core orbit engine.
package analytic

import (
	"github.com/cpmech/gosl/ode"

	"github.com/George-Tsiamasiotis/poincare-maps/config"
	"github.com/George-Tsiamasiotis/poincare-maps/equilibrium"
	"github.com/George-Tsiamasiotis/poincare-maps/orbit"
)

// gridN, gridM size the small uniform grids the builders below hand to
// equilibrium.New; they need only be large enough for the chosen spline
// variant's minimum-point requirement, since every flux function is
// constant or linear.
const (
	gridN = 9
	gridM = 9
)

func linspace(a, b float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = a + (b-a)*float64(i)/float64(n-1)
	}
	return out
}

func constantGrid(n, m int, v float64) [][]float64 {
	g := make([][]float64, n)
	for i := range g {
		row := make([]float64, m)
		for j := range row {
			row[j] = v
		}
		g[i] = row
	}
	return g
}

// ConstantQEquilibrium builds a uniform-field equilibrium: q(ψp)=2, g=1,
// I=0, b=1, no perturbation harmonics, over ψp∈[0,1].
func ConstantQEquilibrium() (*equilibrium.Equilibrium, error) {
	psip := linspace(0, 1, gridN)
	theta := linspace(0, 2*3.141592653589793, gridM)

	psi := make([]float64, gridN)
	q := make([]float64, gridN)
	g := make([]float64, gridN)
	i := make([]float64, gridN)
	for k, p := range psip {
		psi[k] = 2 * p // dψ/dψp = q = 2, ψ(0)=0
		q[k] = 2
		g[k] = 1
		i[k] = 0
	}

	d := &equilibrium.Dataset{
		PsipData: psip, QData: q, PsiData: psi, GData: g, IData: i,
		ThetaData: theta,
		BData:     constantGrid(gridN, gridM, 1),
		RData:     constantGrid(gridN, gridM, 1),
		ZData:     constantGrid(gridN, gridM, 0),
		PsipWall:  1, PsiWall: 2, Baxis: 1, Raxis: 1,
	}
	return equilibrium.New(d, equilibrium.DefaultVariants(), config.PhaseConstant)
}

// WallEscapeEquilibrium is ConstantQEquilibrium with psip_wall lowered
// from 1 to 0.995, leaving the splines' ψp∈[0,1] grid unchanged. ψp is
// constant along every orbit of this field, so an orbit started inside
// the wall never leaves it; only one started in (0.995, 1] is reported
// as EscapedWall, after its first accepted step.
func WallEscapeEquilibrium() (*equilibrium.Equilibrium, error) {
	eq, err := ConstantQEquilibrium()
	if err != nil {
		return nil, err
	}
	eq.PsipWall = 0.995
	return eq, nil
}

// ConstantQReference is the closed-form guiding-centre trajectory under
// ConstantQEquilibrium. With b, g, q constant and
// I=0, every spatial partial of B vanishes, so ψ̇p = ρ̇∥ = 0 and
// θ̇ = ρ∥·B² / g, ζ̇ = θ̇/q: both coordinates advance linearly in t.
func ConstantQReference(theta0, psip0, rho0, zeta0 float64, t float64) orbit.State {
	const b, g, q = 1.0, 1.0, 2.0
	thetaDot := rho0 * b * b / g
	return orbit.State{
		Theta: theta0 + thetaDot*t,
		Psip:  psip0,
		Rho:   rho0,
		Zeta:  zeta0 + thetaDot*t/q,
	}
}

// CrossCheck integrates rhs from (t0, y0) to t1 using gosl/ode's Dopri5
// method, an algorithm wholly independent of the Fehlberg integrator under
// test, as an external sanity check on the RHS assembler.
func CrossCheck(rhs *orbit.RHS, t0, t1 float64, y0 orbit.State) (orbit.State, error) {
	var sol ode.ODE
	silent := true
	sol.Init("Dopri5", 4, func(f []float64, dt, t float64, y []float64, args...interface{}) error {
		s, err := rhs.Eval(t, orbit.FromVector([4]float64{y[0], y[1], y[2], y[3]}))
		if err != nil {
			return err
		}
		v := s.Vector()
		copy(f, v[:])
		return nil
	}, nil, nil, nil, silent)
	sol.Distr = false

	y := y0.Vector()
	ySlice := []float64{y[0], y[1], y[2], y[3]}
	if err := sol.Solve(ySlice, t0, t1, t1-t0, false); err != nil {
		return orbit.State{}, err
	}
	return orbit.FromVector([4]float64{ySlice[0], ySlice[1], ySlice[2], ySlice[3]}), nil
}
