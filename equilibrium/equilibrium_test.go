// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package equilibrium

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/George-Tsiamasiotis/poincare-maps/config"
	"github.com/George-Tsiamasiotis/poincare-maps/spline"
	"github.com/George-Tsiamasiotis/poincare-maps/status"
)

func buildConstantQDataset() *Dataset {
	n, m := 7, 5
	psip := make([]float64, n)
	theta := make([]float64, m)
	q := make([]float64, n)
	psi := make([]float64, n)
	g := make([]float64, n)
	ic := make([]float64, n)
	for i := range psip {
		psip[i] = float64(i) * 0.15
		q[i] = 2
		psi[i] = 2 * psip[i]
		g[i] = 1
		ic[i] = 0
	}
	for j := range theta {
		theta[j] = float64(j) * 1.5
	}
	b := make([][]float64, n)
	r := make([][]float64, n)
	z := make([][]float64, n)
	for i := range b {
		b[i] = make([]float64, m)
		r[i] = make([]float64, m)
		z[i] = make([]float64, m)
		for j := range b[i] {
			b[i][j] = 1
			r[i][j] = 1
			z[i][j] = 0
		}
	}
	return &Dataset{
		PsipData: psip, QData: q, PsiData: psi, GData: g, IData: ic,
		ThetaData: theta, BData: b, RData: r, ZData: z,
		PsipWall: psip[n-1], PsiWall: psi[n-1], Baxis: 1, Raxis: 1,
	}
}

func Test_qfactor_reproduces_tabulated_q(tst *testing.T) {

	chk.PrintTitle("Qfactor.Q reproduces q_data at psip_data")

	d := buildConstantQDataset()
	q, err := NewQfactor(d, spline.Cubic)
	if err != nil {
		tst.Fatalf("NewQfactor failed: %v", err)
	}
	acc := spline.NewAccelerator()
	for i, p := range d.PsipData {
		chk.Float64(tst, "q", 1e-8, q.Q(p, acc), d.QData[i])
	}
}

func Test_qdata_derived_matches_psi_derivative(tst *testing.T) {

	chk.PrintTitle("q_data_derived equals dpsi/dpsip at psip_data")

	d := buildConstantQDataset()
	q, err := NewQfactor(d, spline.Cubic)
	if err != nil {
		tst.Fatalf("NewQfactor failed: %v", err)
	}
	derived := q.QDataDerived()
	for i := range derived {
		chk.Float64(tst, "derived", 1e-8, derived[i], d.QData[i])
	}
	if mismatch := q.MaxQMismatch(); mismatch > 1e-8 {
		tst.Errorf("MaxQMismatch too large: %g", mismatch)
	}
}

func Test_accelerator_reuse_across_four_components(tst *testing.T) {

	chk.PrintTitle("one accelerator amortises q, psi, g, i at one psip")

	d := buildConstantQDataset()
	q, err := NewQfactor(d, spline.Cubic)
	if err != nil {
		tst.Fatalf("NewQfactor failed: %v", err)
	}
	c, err := NewCurrents(d, spline.Cubic)
	if err != nil {
		tst.Fatalf("NewCurrents failed: %v", err)
	}

	acc := spline.NewAccelerator()
	psip := 0.42
	q.Q(psip, acc)
	q.Psi(psip, acc)
	c.G(psip, acc)
	c.I(psip, acc)

	searches := acc.Lookups() - acc.Hits()
	if searches != 1 {
		tst.Errorf("expected exactly 1 real interval search across 4 co-evaluated quantities, got %d", searches)
	}
}

func Test_dataset_rejects_nonmonotone_psip(tst *testing.T) {

	chk.PrintTitle("Dataset.Validate rejects non-monotone psip_data")

	d := buildConstantQDataset()
	d.PsipData[2] = d.PsipData[1]
	if err := d.Validate(); !status.Is(err, status.NonMonotone) {
		tst.Fatalf("expected NonMonotone, got %v", err)
	}
}

func Test_dataset_rejects_shape_mismatch(tst *testing.T) {

	chk.PrintTitle("Dataset.Validate rejects shape mismatch")

	d := buildConstantQDataset()
	d.QData = d.QData[:len(d.QData)-1]
	if err := d.Validate(); !status.Is(err, status.ShapeMismatch) {
		tst.Fatalf("expected ShapeMismatch, got %v", err)
	}
}

func Test_harmonic_constant_phase(tst *testing.T) {

	chk.PrintTitle("Harmonic evaluates with constant-mode phase")

	d := buildConstantQDataset()
	hd := HarmonicData{M: 2, N: 1, Phase: 0, AData: make([]float64, len(d.PsipData))}
	for i := range hd.AData {
		hd.AData[i] = 0.01
	}
	h, err := NewHarmonic(d, hd, config.PhaseConstant, spline.Cubic)
	if err != nil {
		tst.Fatalf("NewHarmonic failed: %v", err)
	}
	acc := spline.NewAccelerator()
	v := h.Value(0.3, 0, 0, 0, acc)
	chk.Float64(tst, "h(psip,0,0,0)", 1e-8, v, 0.01) // cos(0)=1
}

func Test_equilibrium_new_validates_dataset(tst *testing.T) {

	chk.PrintTitle("equilibrium.New surfaces Dataset validation errors")

	d := buildConstantQDataset()
	d.PsipWall = -1
	_, err := New(d, DefaultVariants(), config.PhaseConstant)
	if !status.Is(err, status.MalformedInput) {
		tst.Fatalf("expected MalformedInput, got %v", err)
	}
}
