// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package event implements the Hénon's-trick crossing detector and the
// mapping loop that drives it.
package event

import (
	"math"

	"github.com/George-Tsiamasiotis/poincare-maps/config"
	"github.com/George-Tsiamasiotis/poincare-maps/integrate"
	"github.com/George-Tsiamasiotis/poincare-maps/orbit"
)

const twoPi = 2 * math.Pi

// Section selects the monitored coordinate.
type Section string

const (
	SectionTheta Section = "theta"
	SectionZeta  Section = "zeta"
)

// coordinate picks (θ, ζ) out of a state depending on the monitored
// section.
func coordinate(sec Section, s orbit.State) float64 {
	if sec == SectionZeta {
		return s.Zeta
	}
	return s.Theta
}

// level returns floor((x-alpha)/2π), the integer index of the 2π-periodic
// band x currently occupies relative to alpha.
func level(x, alpha float64) int {
	return int(math.Floor((x - alpha) / twoPi))
}

// detect reports whether the step from xOld to xNew crosses a multiple of
// 2π above alpha, the crossing's direction, and the exact crossing value
// of x: a crossing occurs when (x_new − α) has a sign opposite to
// (x_old − α) once both are reduced to the same 2π band.
func detect(xOld, xNew, alpha float64) (crossed bool, ascending bool, target float64) {
	kOld, kNew := level(xOld, alpha), level(xNew, alpha)
	if kOld == kNew {
		return false, false, 0
	}
	ascending = xNew > xOld
	m := kOld
	if ascending {
		m = kOld + 1
	}
	return true, ascending, alpha + twoPi*float64(m)
}

// directionAllowed applies the configured event_direction filter.
func directionAllowed(dir config.EventDirection, ascending bool) bool {
	switch dir {
	case config.DirectionAscending:
		return ascending
	case config.DirectionDescending:
		return !ascending
	default:
		return true
	}
}

// Crossing is one recorded Poincaré-map intersection.
type Crossing struct {
	T     float64
	Theta float64
	Psip  float64
	Rho   float64
	Zeta  float64
}

// Detector holds the monitored section, α and direction filter, and the
// previous accepted state needed to bracket the next crossing.
type Detector struct {
	Section Section
	Alpha   float64
	Dir     config.EventDirection

	have bool
	prevT float64
	prev  orbit.State
}

// NewDetector builds a Detector; alpha is a constant, taken modulo 2π
// at construction.
func NewDetector(sec Section, alpha float64, dir config.EventDirection) *Detector {
	a := math.Mod(alpha, twoPi)
	if a < 0 {
		a += twoPi
	}
	return &Detector{Section: sec, Alpha: a, Dir: dir}
}

// Observe feeds one newly accepted (t, y) pair to the detector. It
// returns the bracket (tOld, yOld) to reduce-step from when a crossing in
// the allowed direction is detected, and the exact x-level to land on.
func (d *Detector) Observe(t float64, y orbit.State) (bracket bool, tOld float64, yOld orbit.State, target float64) {
	defer func() { d.have = true; d.prevT, d.prev = t, y }()

	if !d.have {
		return false, 0, orbit.State{}, 0
	}

	xOld, xNew := coordinate(d.Section, d.prev), coordinate(d.Section, y)
	crossed, ascending, tgt := detect(xOld, xNew, d.Alpha)
	if !crossed || !directionAllowed(d.Dir, ascending) {
		return false, 0, orbit.State{}, 0
	}
	return true, d.prevT, d.prev, tgt
}

// swapVec packs (t, and the three coordinates other than the monitored one)
// into a generic Fehlberg vector for the independent-variable swap: the
// monitored coordinate becomes the integration variable, and every RHS
// component is divided by its rate, so the integration runs in x instead
// of t. The monitored coordinate itself is not part of the dependent
// vector.
func swapVec(sec Section, t float64, y orbit.State) [4]float64 {
	if sec == SectionZeta {
		return [4]float64{t, y.Theta, y.Psip, y.Rho}
	}
	return [4]float64{t, y.Psip, y.Rho, y.Zeta}
}

func unswapVec(sec Section, v [4]float64) (t float64, y orbit.State) {
	if sec == SectionZeta {
		return v[0], orbit.State{Theta: v[1], Psip: v[2], Rho: v[3]}
	}
	return v[0], orbit.State{Psip: v[1], Rho: v[2], Zeta: v[3]}
}

// ReducedStep performs the root-precise Hénon step from the pre-crossing
// state (tOld, yOld) to the surface x=target: it divides every RHS component by ẋ and takes one RKF4(5)
// step of size Δx = target − x_old, landing on Σ without bisection.
func ReducedStep(rhs *orbit.RHS, sec Section, tOld float64, yOld orbit.State, target float64) (Crossing, error) {
	f := func(x float64, v [4]float64) ([4]float64, error) {
		t, y := unswapVec(sec, v)
		full, err := rhs.Eval(t, fillMonitor(sec, y, x))
		if err != nil {
			return [4]float64{}, err
		}
		xDot := coordinate(sec, full)
		fv := full.Vector()
		var out [4]float64
		if sec == SectionZeta {
			out = [4]float64{1, fv[0], fv[1], fv[2]} // dt/dx, dθ/dx, dψp/dx, dρ∥/dx
		} else {
			out = [4]float64{1, fv[1], fv[2], fv[3]} // dt/dx, dψp/dx, dρ∥/dx, dζ/dx
		}
		for i := range out {
			out[i] /= xDot
		}
		return out, nil
	}

	xOld := coordinate(sec, yOld)
	dx := target - xOld
	v0 := swapVec(sec, tOld, yOld)
	_, v5, err := integrate.Stage(f, xOld, dx, v0)
	if err != nil {
		return Crossing{}, err
	}
	tNew, yNew := unswapVec(sec, v5)
	yNew = fillMonitor(sec, yNew, target)
	return Crossing{T: tNew, Theta: yNew.Theta, Psip: yNew.Psip, Rho: yNew.Rho, Zeta: yNew.Zeta}, nil
}

// fillMonitor returns y with its monitored coordinate set to x, the value
// needed to evaluate the RHS at an intermediate point of the swapped step.
func fillMonitor(sec Section, y orbit.State, x float64) orbit.State {
	if sec == SectionZeta {
		y.Zeta = x
	} else {
		y.Theta = x
	}
	return y
}
