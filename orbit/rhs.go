// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package orbit

import (
	"math"

	"github.com/George-Tsiamasiotis/poincare-maps/equilibrium"
	"github.com/George-Tsiamasiotis/poincare-maps/status"
)

// RHS assembles the guiding-centre equations of motion at one (t, State)
// against a shared Equilibrium. It holds no per-evaluation
// state beyond the injected accelerators, so one RHS may be reused for
// every step of a trajectory as long as its Accelerators belong to a
// single worker.
type RHS struct {
	Eq  *equilibrium.Equilibrium
	Mu  float64
	Acc *equilibrium.Accelerators
}

// NewRHS builds an RHS assembler for one particle against eq, with a
// fresh, unshared accelerator pair.
func NewRHS(eq *equilibrium.Equilibrium, mu float64) *RHS {
	return &RHS{Eq: eq, Mu: mu, Acc: equilibrium.NewAccelerators()}
}

// Eval evaluates dState/dt at (t, s).
//
// Derivation: with H = ½ρ∥²B² + μB and canonical momenta p_θ = ψp +
// ρ∥g(ψp), p_ζ = ρ∥I(ψp) − ψ(ψp) (functions of (ψp,ρ∥) alone), Hamilton's
// equations ṗ_θ = −∂H/∂θ and ṗ_ζ = −∂H/∂ζ expand via the chain rule into
// a 2×2 linear system for (ψ̇p, ρ̇∥):
//
//	(1 + ρ∥g') ψ̇p +  g ρ̇∥ = −∂H/∂θ
//	(ρ∥I' − q) ψ̇p +  I ρ̇∥ = −∂H/∂ζ
//
// with determinant D = gq + I + ρ∥(g'I − gI') (q = dψ/dψp). Inverting the
// same 2×2 matrix (transposed) gives θ̇ = ∂H/∂p_θ and ζ̇ = ∂H/∂p_ζ in terms
// of ∂H/∂ψp and ∂H/∂ρ∥. ∂H/∂ζ vanishes identically unless a Perturbation
// breaks axisymmetry, in which case B itself is evaluated as the sum
// b_equilibrium + perturbation; ∂H/∂θ follows ∂b/∂θ of the equilibrium
// field as well.
func (r *RHS) Eval(t float64, s State) (State, error) {
	eq, acc := r.Eq, r.Acc

	g := eq.Currents.G(s.Psip, acc.Psip)
	dg := eq.Currents.DgDpsip(s.Psip, acc.Psip)
	i := eq.Currents.I(s.Psip, acc.Psip)
	di := eq.Currents.DiDpsip(s.Psip, acc.Psip)
	q := eq.Qfactor.DPsiDpsip(s.Psip, acc.Psip)

	b := eq.Bfield.B(s.Psip, s.Theta, acc.Psip, acc.Theta)
	dbDpsip := eq.Bfield.DBDpsip(s.Psip, s.Theta, acc.Psip, acc.Theta)
	dbDtheta := eq.Bfield.DBDtheta(s.Psip, s.Theta, acc.Psip, acc.Theta)
	var dbDzeta float64

	if eq.Perturbation.Len() > 0 {
		b += eq.Perturbation.Value(s.Psip, s.Theta, s.Zeta, t, acc.Psip)
		dbDpsip += eq.Perturbation.DDpsip(s.Psip, s.Theta, s.Zeta, t, acc.Psip)
		dbDtheta += eq.Perturbation.DDtheta(s.Psip, s.Theta, s.Zeta, t, acc.Psip)
		dbDzeta = eq.Perturbation.DDzeta(s.Psip, s.Theta, s.Zeta, t, acc.Psip)
	}

	w := s.Rho*s.Rho*b + r.Mu // = ∂H/∂B, shared factor in every spatial partial of H
	dHdtheta := w * dbDtheta
	dHdzeta := w * dbDzeta
	dHdpsip := w * dbDpsip
	dHdrho := s.Rho * b * b

	d := g*q + i + s.Rho*(dg*i-g*di)
	if d == 0 || math.IsNaN(d) || math.IsInf(d, 0) {
		return State{}, status.Errf(status.DomainError, "singular Jacobian determinant (D=%g) at psip=%g rho=%g", d, s.Psip, s.Rho)
	}

	psipDot := (-i*dHdtheta + g*dHdzeta) / d
	rhoDot := ((s.Rho*di-q)*dHdtheta - (1+s.Rho*dg)*dHdzeta) / d
	thetaDot := (i*dHdpsip - (s.Rho*di-q)*dHdrho) / d
	zetaDot := (-g*dHdpsip + (1+s.Rho*dg)*dHdrho) / d

	return State{Theta: thetaDot, Psip: psipDot, Rho: rhoDot, Zeta: zetaDot}, nil
}

// Hamiltonian evaluates H at (t, s) against r's own equilibrium and
// accelerators, for energy-drift diagnostics.
func (r *RHS) Hamiltonian(t float64, s State) float64 {
	return Energy(r.Mu, s, t, r.Eq, r.Acc)
}
