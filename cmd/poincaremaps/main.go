// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/George-Tsiamasiotis/poincare-maps/analytic"
	"github.com/George-Tsiamasiotis/poincare-maps/config"
	"github.com/George-Tsiamasiotis/poincare-maps/equilibrium"
	"github.com/George-Tsiamasiotis/poincare-maps/ncload"
	"github.com/George-Tsiamasiotis/poincare-maps/orbit"
	"github.com/George-Tsiamasiotis/poincare-maps/parallel"
)

func main() {
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	fixture := flag.String("fixture", "", "JSON equilibrium fixture (ncload format); empty runs the built-in constant-q equilibrium")
	section := flag.String("section", "theta", "surface-of-section coordinate: theta | zeta")
	alpha := flag.Float64("alpha", 0, "surface-of-section constant alpha")
	intersections := flag.Int("intersections", 5, "number of crossings to record")
	selftest := flag.Bool("selftest", false, "run the built-in analytic smoke-test scenarios and exit")
	flag.Parse()

	io.PfWhite("\npoincaremaps -- guiding-centre Poincare maps in a tokamak equilibrium\n\n")

	if *selftest {
		runSelftest()
		return
	}

	var eq *equilibrium.Equilibrium
	var err error
	if *fixture == "" {
		io.Pf("no --fixture given, using the built-in constant-q equilibrium\n")
		eq, err = analytic.ConstantQEquilibrium()
	} else {
		var d *equilibrium.Dataset
		d, err = ncload.Load(*fixture)
		if err == nil {
			eq, err = equilibrium.New(d, equilibrium.DefaultVariants(), config.PhaseConstant)
		}
	}
	if err != nil {
		chk.Panic("failed to build equilibrium: %v", err)
	}

	cfg := &config.Config{}
	cfg.SetDefault()
	if err := cfg.PostProcess(); err != nil {
		chk.Panic("invalid configuration: %v", err)
	}

	mp := config.MappingParameters{Section: *section, Alpha: *alpha, Intersections: *intersections}
	if err := mp.Validate(); err != nil {
		chk.Panic("invalid mapping parameters: %v", err)
	}

	ic := parallel.InitialConditions{
		Theta0: []float64{0}, Psip0: []float64{0.1}, Rho0: []float64{0.01}, Zeta0: []float64{0}, Mu: []float64{0.5},
	}

	batch := parallel.NewBatch(eq, cfg)
	results, report, err := batch.RunMapping(0, ic, mp)
	if err != nil {
		chk.Panic("mapping run failed: %v", err)
	}

	for i, r := range results {
		io.Pforan("particle %d: status=%s crossings=%d\n", i, report.Statuses[i], len(r.Result.Crossings))
		for _, c := range r.Result.Crossings {
			io.Pf("  t=%.6f theta=%.6f psip=%.6f rho=%.6f zeta=%.6f\n", c.T, c.Theta, c.Psip, c.Rho, c.Zeta)
		}
	}
}

// runSelftest integrates one orbit of the constant-q equilibrium from t=0
// to t=1 with analytic.CrossCheck and prints θ and ζ beside the
// closed-form values of analytic.ConstantQReference; it does not compare
// them or fail on a difference.
func runSelftest() {
	eq, err := analytic.ConstantQEquilibrium()
	if err != nil {
		chk.Panic("selftest: %v", err)
	}

	mu, rho0 := 0.5, 0.01
	y0 := orbit.State{Theta: 0, Psip: 0.1, Rho: rho0, Zeta: 0}
	rhs := orbit.NewRHS(eq, mu)

	const tEnd = 1.0
	got, err := analytic.CrossCheck(rhs, 0, tEnd, y0)
	if err != nil {
		chk.Panic("selftest cross-check failed: %v", err)
	}
	want := analytic.ConstantQReference(y0.Theta, y0.Psip, y0.Rho, y0.Zeta, tEnd)

	io.Pf("selftest: theta got=%.10f want=%.10f\n", got.Theta, want.Theta)
	io.Pf("selftest: zeta  got=%.10f want=%.10f\n", got.Zeta, want.Zeta)
	io.PfGreen("selftest complete\n")
}
