// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package integrate

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_evolution_buffer_overflow_drops_oldest(tst *testing.T) {

	chk.PrintTitle("EvolutionBuffer ring semantics drop the oldest row on overflow")

	buf := NewEvolutionBuffer(3, 1)
	for i := 0; i < 5; i++ {
		buf.Offer(Row{T: float64(i)})
	}

	rows := buf.Rows()
	if len(rows) != 3 {
		tst.Fatalf("expected 3 stored rows, got %d", len(rows))
	}
	want := []float64{2, 3, 4}
	for i, r := range rows {
		chk.Float64(tst, "t", 1e-15, r.T, want[i])
	}
	if buf.StepsTaken != 5 {
		tst.Errorf("expected StepsTaken=5, got %d", buf.StepsTaken)
	}
	if buf.StepsStored != 5 {
		tst.Errorf("expected StepsStored=5 (stride=1), got %d", buf.StepsStored)
	}
}

func Test_evolution_buffer_stride_subsamples(tst *testing.T) {

	chk.PrintTitle("EvolutionBuffer stride stores every k-th row")

	buf := NewEvolutionBuffer(10, 3)
	for i := 0; i < 9; i++ {
		buf.Offer(Row{T: float64(i)})
	}

	if buf.StepsTaken != 9 {
		tst.Errorf("expected StepsTaken=9, got %d", buf.StepsTaken)
	}
	if buf.StepsStored != 3 {
		tst.Errorf("expected StepsStored=3, got %d", buf.StepsStored)
	}
	rows := buf.Rows()
	want := []float64{2, 5, 8}
	for i, r := range rows {
		chk.Float64(tst, "t", 1e-15, r.T, want[i])
	}
}
