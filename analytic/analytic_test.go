// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package analytic

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/George-Tsiamasiotis/poincare-maps/orbit"
)

func Test_CrossCheck_matches_closed_form_reference(tst *testing.T) {

	chk.PrintTitle("Dopri5 cross-check agrees with the closed-form constant-field trajectory")

	eq, err := ConstantQEquilibrium()
	if err != nil {
		tst.Fatalf("ConstantQEquilibrium failed: %v", err)
	}
	rhs := orbit.NewRHS(eq, 0.5)

	y0 := orbit.State{Theta: 0.2, Psip: 0.4, Rho: 0.02, Zeta: 0.1}
	t0, t1 := 0.0, 0.5

	got, err := CrossCheck(rhs, t0, t1, y0)
	if err != nil {
		tst.Fatalf("CrossCheck failed: %v", err)
	}
	want := ConstantQReference(y0.Theta, y0.Psip, y0.Rho, y0.Zeta, t1-t0)

	chk.Float64(tst, "theta", 1e-6, got.Theta, want.Theta)
	chk.Float64(tst, "psip", 1e-6, got.Psip, want.Psip)
	chk.Float64(tst, "rho", 1e-6, got.Rho, want.Rho)
	chk.Float64(tst, "zeta", 1e-6, got.Zeta, want.Zeta)
}

func Test_WallEscapeEquilibrium_narrows_the_wall(tst *testing.T) {

	chk.PrintTitle("WallEscapeEquilibrium narrows psip_wall to 0.995")

	base, err := ConstantQEquilibrium()
	if err != nil {
		tst.Fatalf("ConstantQEquilibrium failed: %v", err)
	}
	narrowed, err := WallEscapeEquilibrium()
	if err != nil {
		tst.Fatalf("WallEscapeEquilibrium failed: %v", err)
	}

	if narrowed.PsipWall >= base.PsipWall {
		tst.Errorf("expected a narrower wall, got base=%g narrowed=%g", base.PsipWall, narrowed.PsipWall)
	}
	if narrowed.InsideWall(0.996) {
		tst.Errorf("expected psip=0.996 to lie outside the narrowed wall")
	}
	if !narrowed.InsideWall(0.9) {
		tst.Errorf("expected psip=0.9 to lie inside the narrowed wall")
	}
}
