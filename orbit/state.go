// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package orbit holds the guiding-centre state vector and the right-hand
// side of its equations of motion.
package orbit

import "github.com/George-Tsiamasiotis/poincare-maps/equilibrium"

// State is the guiding-centre state vector (θ, ψp, ρ∥, ζ) at one instant
//.
type State struct {
	Theta float64
	Psip  float64
	Rho   float64
	Zeta  float64
}

// Vector returns the state as a plain array, the shape the integrator's
// Fehlberg stages operate on.
func (s State) Vector() [4]float64 { return [4]float64{s.Theta, s.Psip, s.Rho, s.Zeta} }

// FromVector rebuilds a State from the integrator's array representation.
func FromVector(v [4]float64) State {
	return State{Theta: v[0], Psip: v[1], Rho: v[2], Zeta: v[3]}
}

// Add returns s + scale*d, component-wise.
func (s State) Add(d State, scale float64) State {
	return State{
		Theta: s.Theta + scale*d.Theta,
		Psip:  s.Psip + scale*d.Psip,
		Rho:   s.Rho + scale*d.Rho,
		Zeta:  s.Zeta + scale*d.Zeta,
	}
}

// ParticleState is a single particle's invariant parameters and initial
// condition.
type ParticleState struct {
	Mu      float64
	Initial State
}

// CanonicalMomenta evaluates (p_θ, p_ζ) at (ψp, ρ∥), the momenta conjugate
// to θ and ζ: p_θ = ψp + ρ∥·g(ψp), p_ζ = ρ∥·I(ψp) −
// ψ(ψp). Both depend on ψp and ρ∥ only, never on θ or ζ.
func CanonicalMomenta(psip, rho float64, eq *equilibrium.Equilibrium, acc *equilibrium.Accelerators) (pTheta, pZeta float64) {
	g := eq.Currents.G(psip, acc.Psip)
	i := eq.Currents.I(psip, acc.Psip)
	psi := eq.Qfactor.Psi(psip, acc.Psip)
	pTheta = psip + rho*g
	pZeta = rho*i - psi
	return
}

// Energy evaluates the guiding-centre Hamiltonian H = ½ρ∥²B² + μB at the
// given state and time, with B the total (equilibrium + perturbed) field
// magnitude.
func Energy(mu float64, s State, t float64, eq *equilibrium.Equilibrium, acc *equilibrium.Accelerators) float64 {
	b := totalB(s.Psip, s.Theta, s.Zeta, t, eq, acc)
	return 0.5*s.Rho*s.Rho*b*b + mu*b
}

func totalB(psip, theta, zeta, t float64, eq *equilibrium.Equilibrium, acc *equilibrium.Accelerators) float64 {
	b := eq.Bfield.B(psip, theta, acc.Psip, acc.Theta)
	if eq.Perturbation.Len() > 0 {
		b += eq.Perturbation.Value(psip, theta, zeta, t, acc.Psip)
	}
	return b
}
