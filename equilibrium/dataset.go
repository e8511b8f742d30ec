// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package equilibrium implements the four equilibrium components
// (Qfactor, Currents, Bfield, Perturbation) atop the spline package, and
// the Dataset contract through which an out-of-scope NetCDF loader hands
// the core already-validated numeric arrays.
package equilibrium

import (
	"math"

	"github.com/George-Tsiamasiotis/poincare-maps/status"
)

// HarmonicData is one perturbation harmonic as read from the input
// file: mode numbers, phase, and a 1-D amplitude array over PsipData.
// PhaseData, when non-empty, supplies a per-ψp phase array for
// phase-interpolation mode; Omega is the linear dφ/dt rate used only in
// that mode.
type HarmonicData struct {
	M, N      int
	Phase     float64
	Omega     float64
	AData     []float64
	PhaseData []float64 // optional; phase-interpolated mode only
}

// Dataset is the plain-array contract boundary: a Go struct that an
// external, out-of-scope loader (NetCDF reader, .npz converter, or —
// for tests — ncload's JSON fixture adapter) populates before handing it
// to New. Dataset itself performs no I/O.
type Dataset struct {
	PsipData []float64 // N, strictly increasing
	QData    []float64 // N
	PsiData  []float64 // N
	GData    []float64 // N
	IData    []float64 // N

	ThetaData []float64   // M
	BData     [][]float64 // N×M
	RData     [][]float64 // N×M
	ZData     [][]float64 // N×M

	DBDpsipData [][]float64 // N×M, optional
	DBDthetaData [][]float64 // N×M, optional

	PsipWall float64
	PsiWall  float64
	Baxis    float64
	Raxis    float64

	Harmonics []HarmonicData
}

// Validate checks the dataset's shape and finiteness invariants and
// returns a kinded status.Error on the first violation found.
func (d *Dataset) Validate() error {
	n := len(d.PsipData)
	if n == 0 {
		return status.Errf(status.MalformedInput, "psip_data is missing or empty")
	}
	m := len(d.ThetaData)
	if m == 0 {
		return status.Errf(status.MalformedInput, "theta_data is missing or empty")
	}

	for _, pair := range []struct {
		name string
		arr  []float64
	}{
		{"q_data", d.QData}, {"psi_data", d.PsiData}, {"g_data", d.GData}, {"i_data", d.IData},
	} {
		if len(pair.arr) != n {
			return status.Errf(status.ShapeMismatch, "%s has length %d, expected %d (len(psip_data))", pair.name, len(pair.arr), n)
		}
	}

	for _, pair := range []struct {
		name string
		arr  [][]float64
	}{
		{"b_data", d.BData}, {"r_data", d.RData}, {"z_data", d.ZData},
	} {
		if err := checkGridShape(pair.name, pair.arr, n, m); err != nil {
			return err
		}
	}
	if d.DBDpsipData != nil {
		if err := checkGridShape("db_dpsip_data", d.DBDpsipData, n, m); err != nil {
			return err
		}
	}
	if d.DBDthetaData != nil {
		if err := checkGridShape("db_dtheta_data", d.DBDthetaData, n, m); err != nil {
			return err
		}
	}

	if err := checkFinite("psip_data", d.PsipData); err != nil {
		return err
	}
	if err := checkFinite("q_data", d.QData); err != nil {
		return err
	}
	if err := checkFinite("psi_data", d.PsiData); err != nil {
		return err
	}
	if err := checkFinite("g_data", d.GData); err != nil {
		return err
	}
	if err := checkFinite("i_data", d.IData); err != nil {
		return err
	}
	if err := checkFinite("theta_data", d.ThetaData); err != nil {
		return err
	}
	for i := 1; i < n; i++ {
		if d.PsipData[i] <= d.PsipData[i-1] {
			return status.Errf(status.NonMonotone, "psip_data is not strictly increasing at index %d", i)
		}
	}

	if math.IsNaN(d.PsipWall) || math.IsInf(d.PsipWall, 0) || d.PsipWall <= 0 {
		return status.Errf(status.MalformedInput, "psip_wall must be a positive finite scalar, got %g", d.PsipWall)
	}
	if math.IsNaN(d.PsiWall) || math.IsInf(d.PsiWall, 0) {
		return status.Errf(status.MalformedInput, "psi_wall must be finite")
	}
	if math.IsNaN(d.Baxis) || math.IsInf(d.Baxis, 0) {
		return status.Errf(status.MalformedInput, "baxis must be finite")
	}
	if math.IsNaN(d.Raxis) || math.IsInf(d.Raxis, 0) {
		return status.Errf(status.MalformedInput, "raxis must be finite")
	}

	for hi, h := range d.Harmonics {
		if len(h.AData) != n {
			return status.Errf(status.ShapeMismatch, "harmonic %d: a_data has length %d, expected %d", hi, len(h.AData), n)
		}
		if err := checkFinite("harmonic a_data", h.AData); err != nil {
			return err
		}
		if h.PhaseData != nil && len(h.PhaseData) != n {
			return status.Errf(status.ShapeMismatch, "harmonic %d: phase_data has length %d, expected %d", hi, len(h.PhaseData), n)
		}
	}
	return nil
}

func checkGridShape(name string, grid [][]float64, n, m int) error {
	if len(grid) != n {
		return status.Errf(status.ShapeMismatch, "%s has %d rows, expected %d (len(psip_data))", name, len(grid), n)
	}
	for i, row := range grid {
		if len(row) != m {
			return status.Errf(status.ShapeMismatch, "%s row %d has %d columns, expected %d (len(theta_data))", name, i, len(row), m)
		}
	}
	return nil
}

func checkFinite(name string, arr []float64) error {
	for i, v := range arr {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return status.Errf(status.MalformedInput, "%s contains a non-finite sample at index %d", name, i)
		}
	}
	return nil
}
