// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package integrate

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

// exponentialGrowth is dy/dt = y, with the other three components held at
// zero; its exact solution is y(t) = y0*e^t.
func exponentialGrowth(t float64, y [4]float64) ([4]float64, error) {
	return [4]float64{y[0], 0, 0, 0}, nil
}

func Test_stage_reproduces_exponential_to_fifth_order(tst *testing.T) {

	chk.PrintTitle("RKF4(5) fifth-order estimate matches e^t closely")

	h := 0.1
	_, y5, err := Stage(exponentialGrowth, 0, h, [4]float64{1, 0, 0, 0})
	if err != nil {
		tst.Fatalf("Stage failed: %v", err)
	}
	want := math.Exp(h)
	chk.Float64(tst, "y5[0]", 1e-9, y5[0], want)
}

func Test_stage_fourth_and_fifth_order_differ_by_local_error(tst *testing.T) {

	chk.PrintTitle("RKF4(5) fourth- and fifth-order estimates disagree by O(h^5)")

	h := 0.5
	y4, y5, err := Stage(exponentialGrowth, 0, h, [4]float64{1, 0, 0, 0})
	if err != nil {
		tst.Fatalf("Stage failed: %v", err)
	}
	diff := math.Abs(y5[0] - y4[0])
	if diff <= 0 || diff > 1e-3 {
		tst.Errorf("expected a small but nonzero 4th/5th order disagreement, got %g", diff)
	}
}
