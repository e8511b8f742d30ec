// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ncload is a stand-in for the out-of-scope NetCDF reader: it
// populates an equilibrium.Dataset from a JSON file shaped like the
// NetCDF variable set, for use in tests and the CLI's --fixture flag.
// It is not a core concern.
package ncload

import (
	"encoding/json"
	"os"

	"github.com/George-Tsiamasiotis/poincare-maps/equilibrium"
	"github.com/George-Tsiamasiotis/poincare-maps/status"
)

// harmonicRecord mirrors equilibrium.HarmonicData's JSON shape.
type harmonicRecord struct {
	M         int       `json:"m"`
	N         int       `json:"n"`
	Phase     float64   `json:"phase"`
	Omega     float64   `json:"omega"`
	AData     []float64 `json:"a_data"`
	PhaseData []float64 `json:"phase_data,omitempty"`
}

// record mirrors the equilibrium dataset's NetCDF variable set.
type record struct {
	PsipData []float64 `json:"psip_data"`
	QData    []float64 `json:"q_data"`
	PsiData  []float64 `json:"psi_data"`
	GData    []float64 `json:"g_data"`
	IData    []float64 `json:"i_data"`

	ThetaData []float64   `json:"theta_data"`
	BData     [][]float64 `json:"b_data"`
	RData     [][]float64 `json:"r_data"`
	ZData     [][]float64 `json:"z_data"`

	DBDpsipData  [][]float64 `json:"db_dpsip_data,omitempty"`
	DBDthetaData [][]float64 `json:"db_dtheta_data,omitempty"`

	PsipWall float64 `json:"psip_wall"`
	PsiWall  float64 `json:"psi_wall"`
	Baxis    float64 `json:"baxis"`
	Raxis    float64 `json:"raxis"`

	Harmonics []harmonicRecord `json:"harmonics,omitempty"`
}

// Load reads path and builds a Dataset. Any decode failure, missing
// field, or invariant violation surfaces as a status.Error consistent
// with an equivalent NetCDF-reader failure.
func Load(path string) (*equilibrium.Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, status.Errf(status.MalformedInput, "opening %s: %v", path, err)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, status.Errf(status.MalformedInput, "decoding %s: %v", path, err)
	}
	for _, name := range []string{"psip_data", "q_data", "psi_data", "g_data", "i_data", "theta_data",
		"b_data", "r_data", "z_data", "psip_wall", "psi_wall", "baxis", "raxis"} {
		if _, ok := fields[name]; !ok {
			return nil, status.Errf(status.MalformedInput, "%s: required field %q is missing", path, name)
		}
	}

	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, status.Errf(status.MalformedInput, "decoding %s: %v", path, err)
	}

	d := &equilibrium.Dataset{
		PsipData: rec.PsipData, QData: rec.QData, PsiData: rec.PsiData,
		GData: rec.GData, IData: rec.IData,
		ThetaData: rec.ThetaData, BData: rec.BData, RData: rec.RData, ZData: rec.ZData,
		DBDpsipData: rec.DBDpsipData, DBDthetaData: rec.DBDthetaData,
		PsipWall: rec.PsipWall, PsiWall: rec.PsiWall, Baxis: rec.Baxis, Raxis: rec.Raxis,
	}
	for _, h := range rec.Harmonics {
		d.Harmonics = append(d.Harmonics, equilibrium.HarmonicData{
			M: h.M, N: h.N, Phase: h.Phase, Omega: h.Omega, AData: h.AData, PhaseData: h.PhaseData,
		})
	}

	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}
