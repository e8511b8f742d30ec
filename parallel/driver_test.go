// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parallel

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/George-Tsiamasiotis/poincare-maps/config"
	"github.com/George-Tsiamasiotis/poincare-maps/equilibrium"
)

// buildConstantFieldEquilibrium returns q=2, g=1, I=0, b=1 over a small
// grid, a uniform field whose orbit rates reduce to closed form.
func buildConstantFieldEquilibrium(tst *testing.T) *equilibrium.Equilibrium {
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
		}
	}
	d := &equilibrium.Dataset{
		PsipData: psip, QData: q, PsiData: psi, GData: g, IData: ic,
		ThetaData: theta, BData: b, RData: r, ZData: z,
		PsipWall: psip[n-1], PsiWall: psi[n-1], Baxis: 1, Raxis: 1,
	}
	eq, err := equilibrium.New(d, equilibrium.DefaultVariants(), config.PhaseConstant)
	if err != nil {
		tst.Fatalf("equilibrium.New failed: %v", err)
	}
	return eq
}

func identicalConditions(k int) InitialConditions {
	ic := InitialConditions{
		Theta0: make([]float64, k), Psip0: make([]float64, k),
		Rho0: make([]float64, k), Zeta0: make([]float64, k), Mu: make([]float64, k),
	}
	for i := range ic.Theta0 {
		ic.Theta0[i], ic.Psip0[i], ic.Rho0[i], ic.Zeta0[i], ic.Mu[i] = 0, 0.6, 0.01, 0, 0.5
	}
	return ic
}

func Test_batch_produces_identical_results_for_identical_particles(tst *testing.T) {

	chk.PrintTitle("64 identical particles under worker_count=8 yield bit-identical outcomes")

	eq := buildConstantFieldEquilibrium(tst)
	var cfg config.Config
	cfg.SetDefault()
	cfg.WorkerCount = 8
	cfg.MaxSteps = 200
	if err := cfg.PostProcess(); err != nil {
		tst.Fatalf("PostProcess failed: %v", err)
	}

	b := NewBatch(eq, &cfg)
	ic := identicalConditions(64)

	results, report, err := b.RunEvolution(0, ic)
	if err != nil {
		tst.Fatalf("RunEvolution failed: %v", err)
	}

	want := results[0].Buffer.Rows()
	for i := 1; i < len(results); i++ {
		if report.Statuses[i] != report.Statuses[0] {
			tst.Fatalf("particle %d status %v differs from particle 0's %v", i, report.Statuses[i], report.Statuses[0])
		}
		got := results[i].Buffer.Rows()
		if len(got) != len(want) {
			tst.Fatalf("particle %d stored %d rows, particle 0 stored %d", i, len(got), len(want))
		}
		for j := range got {
			chk.Float64(tst, "t", 1e-15, got[j].T, want[j].T)
			chk.Float64(tst, "theta", 1e-15, got[j].Theta, want[j].Theta)
			chk.Float64(tst, "psip", 1e-15, got[j].Psip, want[j].Psip)
			chk.Float64(tst, "rho", 1e-15, got[j].Rho, want[j].Rho)
			chk.Float64(tst, "zeta", 1e-15, got[j].Zeta, want[j].Zeta)
		}
	}
}

func Test_batch_cancel_stops_in_flight_particles(tst *testing.T) {

	chk.PrintTitle("Batch.Cancel stops every worker cooperatively")

	eq := buildConstantFieldEquilibrium(tst)
	var cfg config.Config
	cfg.SetDefault()
	cfg.WorkerCount = 4
	if err := cfg.PostProcess(); err != nil {
		tst.Fatalf("PostProcess failed: %v", err)
	}

	b := NewBatch(eq, &cfg)
	b.Cancel()

	ic := identicalConditions(4)
	results, report, err := b.RunEvolution(0, ic)
	if err != nil {
		tst.Fatalf("RunEvolution failed: %v", err)
	}
	for i, r := range results {
		if r.Status != report.Statuses[i] {
			tst.Errorf("particle %d: Status/report mismatch", i)
		}
		if r.Status != "Cancelled" {
			tst.Errorf("particle %d: expected Cancelled, got %v", i, r.Status)
		}
		if r.Buffer.Len() > 1 {
			tst.Errorf("particle %d: expected cancellation within the first step, stored %d rows", i, r.Buffer.Len())
		}
	}
}
