// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package event

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/George-Tsiamasiotis/poincare-maps/config"
	"github.com/George-Tsiamasiotis/poincare-maps/orbit"
	"github.com/George-Tsiamasiotis/poincare-maps/status"
)

func Test_RunMapping_stops_at_requested_intersection_count(tst *testing.T) {

	chk.PrintTitle("RunMapping records exactly intersections crossings then stops")

	eq := buildConstantFieldEquilibrium(tst)
	rhs := orbit.NewRHS(eq, 0.5)

	var cfg config.Config
	cfg.SetDefault()
	if err := cfg.PostProcess(); err != nil {
		tst.Fatalf("PostProcess failed: %v", err)
	}

	mp := config.MappingParameters{Section: "theta", Alpha: 0, Intersections: 3}
	y0 := orbit.State{Theta: 0.01, Psip: 0.6, Rho: 0.05, Zeta: 0}

	result, err := RunMapping(rhs, &cfg, mp, 0, y0, nil)
	if err != nil {
		tst.Fatalf("RunMapping failed: %v", err)
	}
	if result.Status != status.Completed {
		tst.Fatalf("expected Completed, got %v", result.Status)
	}
	if len(result.Crossings) != mp.Intersections {
		tst.Fatalf("expected %d crossings, got %d", mp.Intersections, len(result.Crossings))
	}

	alpha := 0.0
	for i, c := range result.Crossings {
		reduced := math.Mod(c.Theta-alpha, twoPi)
		if reduced < 0 {
			reduced += twoPi
		}
		if reduced > math.Pi {
			reduced -= twoPi
		}
		if math.Abs(reduced) > 1e-9 {
			tst.Errorf("crossing %d: theta=%g not on alpha=%g (mod 2pi), residual=%g", i, c.Theta, alpha, reduced)
		}
	}

	// under a constant field theta_dot and zeta_dot are positive constants,
	// so crossing times must be strictly increasing.
	for i := 1; i < len(result.Crossings); i++ {
		if result.Crossings[i].T <= result.Crossings[i-1].T {
			tst.Errorf("crossing times must strictly increase, got %v", result.Crossings)
		}
	}
}

func Test_RunMapping_wall_escape_terminates_early(tst *testing.T) {

	chk.PrintTitle("RunMapping reports EscapedWall when psip leaves the wall")

	eq := buildConstantFieldEquilibrium(tst)
	rhs := orbit.NewRHS(eq, 0.5)

	var cfg config.Config
	cfg.SetDefault()
	if err := cfg.PostProcess(); err != nil {
		tst.Fatalf("PostProcess failed: %v", err)
	}

	mp := config.MappingParameters{Section: "theta", Alpha: 0, Intersections: 1000}
	// psip_dot is identically zero under this constant field, so instead
	// start beyond the wall: the first accepted step reports EscapedWall.
	y0 := orbit.State{Theta: 0.01, Psip: eq.PsipWall + 1, Rho: 0.05, Zeta: 0}

	result, err := RunMapping(rhs, &cfg, mp, 0, y0, nil)
	if err != nil {
		tst.Fatalf("RunMapping failed: %v", err)
	}
	if result.Status != status.EscapedWall {
		tst.Fatalf("expected EscapedWall, got %v", result.Status)
	}
}

func Test_RunMapping_cancellation_is_observed(tst *testing.T) {

	chk.PrintTitle("RunMapping honours cancellation between accepted steps")

	eq := buildConstantFieldEquilibrium(tst)
	rhs := orbit.NewRHS(eq, 0.5)

	var cfg config.Config
	cfg.SetDefault()
	if err := cfg.PostProcess(); err != nil {
		tst.Fatalf("PostProcess failed: %v", err)
	}

	mp := config.MappingParameters{Section: "theta", Alpha: 0, Intersections: 1000}
	y0 := orbit.State{Theta: 0.01, Psip: 0.6, Rho: 0.05, Zeta: 0}

	calls := 0
	cancel := func() bool {
		calls++
		return calls > 2
	}

	result, err := RunMapping(rhs, &cfg, mp, 0, y0, cancel)
	if err != nil {
		tst.Fatalf("RunMapping failed: %v", err)
	}
	if result.Status != status.Cancelled {
		tst.Fatalf("expected Cancelled, got %v", result.Status)
	}
}
