// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ncload

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func writeFixture(tst *testing.T, rec record) string {
	path := filepath.Join(tst.TempDir(), "fixture.json")
	data, err := json.Marshal(rec)
	if err != nil {
		tst.Fatalf("marshalling fixture: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		tst.Fatalf("writing fixture: %v", err)
	}
	return path
}

func baseRecord() record {
	n, m := 4, 3
	psip := make([]float64, n)
	theta := make([]float64, m)
	q := make([]float64, n)
	psi := make([]float64, n)
	g := make([]float64, n)
	ic := make([]float64, n)
	for i := range psip {
		psip[i] = float64(i) * 0.2
		q[i] = 2
		psi[i] = 2 * psip[i]
		g[i] = 1
	}
	for j := range theta {
		theta[j] = float64(j) * 2
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
	return record{
		PsipData: psip, QData: q, PsiData: psi, GData: g, IData: ic,
		ThetaData: theta, BData: b, RData: r, ZData: z,
		PsipWall: psip[n-1], PsiWall: psi[n-1], Baxis: 1, Raxis: 1,
	}
}

func Test_Load_decodes_harmonic_m_and_n_independently(tst *testing.T) {

	chk.PrintTitle("Load decodes a harmonic's m and n from distinct JSON fields")

	rec := baseRecord()
	n := len(rec.PsipData)
	rec.Harmonics = []harmonicRecord{
		{M: 2, N: 3, Phase: 0.1, AData: make([]float64, n)},
	}

	path := writeFixture(tst, rec)
	d, err := Load(path)
	if err != nil {
		tst.Fatalf("Load failed: %v", err)
	}
	if len(d.Harmonics) != 1 {
		tst.Fatalf("expected 1 harmonic, got %d", len(d.Harmonics))
	}
	if d.Harmonics[0].M != 2 {
		tst.Errorf("expected m=2, got %d", d.Harmonics[0].M)
	}
	if d.Harmonics[0].N != 3 {
		tst.Errorf("expected n=3, got %d", d.Harmonics[0].N)
	}
}
