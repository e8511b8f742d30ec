// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package equilibrium

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/George-Tsiamasiotis/poincare-maps/spline"
)

func constantGrid(n, m int, v float64) [][]float64 {
	g := make([][]float64, n)
	for i := range g {
		row := make([]float64, m)
		for j := range row {
			row[j] = v
		}
		g[i] = row
	}
	return g
}

func Test_Bfield_prefers_tabulated_partials_over_live_derivative(tst *testing.T) {

	chk.PrintTitle("DBDpsip/DBDtheta return the file-supplied tables, not the b derivative")

	d := buildConstantQDataset()
	n, m := len(d.PsipData), len(d.ThetaData)

	// b is identically 1 here, so differentiating the b spline directly
	// gives 0; a nonzero tabulated value can only come from the file data.
	d.DBDpsipData = constantGrid(n, m, 3.0)
	d.DBDthetaData = constantGrid(n, m, -2.0)

	bf, err := NewBfield(d, spline.Bicubic)
	if err != nil {
		tst.Fatalf("NewBfield failed: %v", err)
	}

	acc1, acc2 := spline.NewAccelerator(), spline.NewAccelerator()
	chk.Float64(tst, "db_dpsip", 1e-8, bf.DBDpsip(0.3, 0.5, acc1, acc2), 3.0)
	chk.Float64(tst, "db_dtheta", 1e-8, bf.DBDtheta(0.3, 0.5, acc1, acc2), -2.0)
}

func Test_Bfield_falls_back_to_live_derivative_without_tabulated_data(tst *testing.T) {

	chk.PrintTitle("DBDpsip/DBDtheta differentiate b directly when no table is supplied")

	d := buildConstantQDataset()
	bf, err := NewBfield(d, spline.Bicubic)
	if err != nil {
		tst.Fatalf("NewBfield failed: %v", err)
	}

	acc1, acc2 := spline.NewAccelerator(), spline.NewAccelerator()
	chk.Float64(tst, "db_dpsip", 1e-8, bf.DBDpsip(0.3, 0.5, acc1, acc2), 0)
	chk.Float64(tst, "db_dtheta", 1e-8, bf.DBDtheta(0.3, 0.5, acc1, acc2), 0)
}
