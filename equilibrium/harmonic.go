// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package equilibrium

import (
	"math"

	"github.com/George-Tsiamasiotis/poincare-maps/config"
	"github.com/George-Tsiamasiotis/poincare-maps/spline"
)

// Harmonic evaluates h(ψp,θ,ζ,t) = a(ψp)·cos(mθ−nζ+φ) and every partial
// derivative the RHS assembler needs. The phase φ is built per
// config.PhaseMode:
//
//   - PhaseConstant: φ is the mean of the file's phase array, fixed at
//     construction.
//   - PhaseInterpolated: φ(ψp,t) = φ_spline(ψp) + ω·t, linear in t with a
//     user-supplied ω; dφ/dt = ω.
type Harmonic struct {
	m, n      int
	mode      config.PhaseMode
	phase0    float64 // constant-mode phase
	phaseSpl  spline.Spline1D // interpolated-mode phase(ψp)
	omega     float64
	a         spline.Spline1D
}

// NewHarmonic builds one harmonic from its HarmonicData.
func NewHarmonic(d *Dataset, hd HarmonicData, mode config.PhaseMode, variant spline.Variant1D) (*Harmonic, error) {
	a, err := spline.NewSpline1D(variant, d.PsipData, hd.AData, nil)
	if err != nil {
		return nil, err
	}
	h := &Harmonic{m: hd.M, n: hd.N, mode: mode, omega: hd.Omega, a: a}

	switch mode {
	case config.PhaseInterpolated:
		if hd.PhaseData == nil {
			h.mode = config.PhaseConstant
			h.phase0 = hd.Phase
			return h, nil
		}
		spl, err := spline.NewSpline1D(variant, d.PsipData, hd.PhaseData, nil)
		if err != nil {
			return nil, err
		}
		h.phaseSpl = spl
	default:
		h.phase0 = hd.Phase
		if hd.PhaseData != nil {
			sum := 0.0
			for _, v := range hd.PhaseData {
				sum += v
			}
			h.phase0 = sum / float64(len(hd.PhaseData))
		}
	}
	return h, nil
}

// phase returns (φ, dφ/dψp, d²φ/dψp², dφ/dt) at (ψp,t).
func (h *Harmonic) phase(psip, t float64, acc *spline.Accelerator) (phi, dphiDpsip, d2phiDpsip2, dphiDt float64) {
	if h.mode == config.PhaseInterpolated {
		phi = h.phaseSpl.Eval(psip, acc) + h.omega*t
		dphiDpsip = h.phaseSpl.Deriv1(psip, acc)
		d2phiDpsip2 = h.phaseSpl.Deriv2(psip, acc)
		dphiDt = h.omega
		return
	}
	phi = h.phase0
	return
}

// angle returns the cosine argument Θ = mθ − nζ + φ.
func (h *Harmonic) angle(psip, theta, zeta, t float64, acc *spline.Accelerator) float64 {
	phi, _, _, _ := h.phase(psip, t, acc)
	return float64(h.m)*theta - float64(h.n)*zeta + phi
}

// Value evaluates h(ψp,θ,ζ,t).
func (h *Harmonic) Value(psip, theta, zeta, t float64, acc *spline.Accelerator) float64 {
	a := h.a.Eval(psip, acc)
	return a * math.Cos(h.angle(psip, theta, zeta, t, acc))
}

// DDtheta evaluates ∂h/∂θ.
func (h *Harmonic) DDtheta(psip, theta, zeta, t float64, acc *spline.Accelerator) float64 {
	a := h.a.Eval(psip, acc)
	return -a * float64(h.m) * math.Sin(h.angle(psip, theta, zeta, t, acc))
}

// DDzeta evaluates ∂h/∂ζ.
func (h *Harmonic) DDzeta(psip, theta, zeta, t float64, acc *spline.Accelerator) float64 {
	a := h.a.Eval(psip, acc)
	return a * float64(h.n) * math.Sin(h.angle(psip, theta, zeta, t, acc))
}

// DDt evaluates ∂h/∂t (nonzero only in phase-interpolated mode).
func (h *Harmonic) DDt(psip, theta, zeta, t float64, acc *spline.Accelerator) float64 {
	_, _, _, dphidt := h.phase(psip, t, acc)
	if dphidt == 0 {
		return 0
	}
	a := h.a.Eval(psip, acc)
	return -a * dphidt * math.Sin(h.angle(psip, theta, zeta, t, acc))
}

// DDpsip evaluates ∂h/∂ψp.
func (h *Harmonic) DDpsip(psip, theta, zeta, t float64, acc *spline.Accelerator) float64 {
	a := h.a.Eval(psip, acc)
	da := h.a.Deriv1(psip, acc)
	theta_ := h.angle(psip, theta, zeta, t, acc)
	_, dphidpsip, _, _ := h.phase(psip, t, acc)
	return da*math.Cos(theta_) - a*math.Sin(theta_)*dphidpsip
}

// D2Dtheta2 evaluates ∂²h/∂θ².
func (h *Harmonic) D2Dtheta2(psip, theta, zeta, t float64, acc *spline.Accelerator) float64 {
	a := h.a.Eval(psip, acc)
	m := float64(h.m)
	return -a * m * m * math.Cos(h.angle(psip, theta, zeta, t, acc))
}

// D2DpsipDtheta evaluates the mixed partial ∂²h/(∂ψp∂θ).
func (h *Harmonic) D2DpsipDtheta(psip, theta, zeta, t float64, acc *spline.Accelerator) float64 {
	a := h.a.Eval(psip, acc)
	da := h.a.Deriv1(psip, acc)
	m := float64(h.m)
	Theta := h.angle(psip, theta, zeta, t, acc)
	_, dphidpsip, _, _ := h.phase(psip, t, acc)
	return -m * (da*math.Sin(Theta) + a*math.Cos(Theta)*dphidpsip)
}

// D2Dpsip2 evaluates ∂²h/∂ψp².
func (h *Harmonic) D2Dpsip2(psip, theta, zeta, t float64, acc *spline.Accelerator) float64 {
	a := h.a.Eval(psip, acc)
	da := h.a.Deriv1(psip, acc)
	d2a := h.a.Deriv2(psip, acc)
	Theta := h.angle(psip, theta, zeta, t, acc)
	_, dphidpsip, d2phidpsip2, _ := h.phase(psip, t, acc)
	cos, sin := math.Cos(Theta), math.Sin(Theta)
	return d2a*cos - 2*da*sin*dphidpsip - a*cos*dphidpsip*dphidpsip - a*sin*d2phidpsip2
}
