// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package event

import (
	"github.com/George-Tsiamasiotis/poincare-maps/config"
	"github.com/George-Tsiamasiotis/poincare-maps/integrate"
	"github.com/George-Tsiamasiotis/poincare-maps/orbit"
	"github.com/George-Tsiamasiotis/poincare-maps/status"
)

// MapResult is one particle's Poincaré record.
type MapResult struct {
	Crossings []Crossing
	Status    status.Status
}

// RunMapping drives a single particle in mapping mode: accepted steps do
// not write an evolution buffer, only crossings detected by the
// Hénon's-trick Detector are recorded, until mp.Intersections have been
// stored or a termination condition fires. cancel, if non-nil, is
// polled once per accepted step.
func RunMapping(rhs *orbit.RHS, cfg *config.Config, mp config.MappingParameters, t0 float64, y0 orbit.State, cancel func() bool) (MapResult, error) {
	st := integrate.NewStepper(rhs, cfg)
	det := NewDetector(Section(mp.Section), mp.Alpha, cfg.EventDirection)

	crossings := make([]Crossing, 0, mp.Intersections)
	t, y, h := t0, y0, cfg.H0

	for n := 0; n < cfg.MaxSteps; n++ {
		if h < cfg.HMin {
			return MapResult{Crossings: crossings, Status: status.StepFloorReached}, nil
		}

		outcome, term, err := st.TryStep(t, y, h)
		if err != nil {
			return MapResult{}, err
		}
		if term != "" {
			return MapResult{Crossings: crossings, Status: term}, nil
		}
		if !outcome.Accepted {
			h = outcome.H
			continue
		}
		t, y, h = outcome.T, outcome.Y, outcome.H

		if !rhs.Eq.InsideWall(y.Psip) {
			return MapResult{Crossings: crossings, Status: status.EscapedWall}, nil
		}

		if bracket, tOld, yOld, target := det.Observe(t, y); bracket {
			cr, err := ReducedStep(rhs, det.Section, tOld, yOld, target)
			if err != nil {
				return MapResult{}, err
			}
			crossings = append(crossings, cr)
			if len(crossings) >= mp.Intersections {
				return MapResult{Crossings: crossings, Status: status.Completed}, nil
			}
		}

		if cancel != nil && cancel() {
			return MapResult{Crossings: crossings, Status: status.Cancelled}, nil
		}
	}
	// max_steps exhausted before reaching the requested intersection
	// count: a resource ceiling, not a failure; Crossings may then be
	// shorter than mp.Intersections.
	return MapResult{Crossings: crossings, Status: status.Completed}, nil
}
