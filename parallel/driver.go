// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package parallel implements the data-parallel driver that maps many
// independent initial conditions across a bounded worker pool.
package parallel

import (
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/George-Tsiamasiotis/poincare-maps/config"
	"github.com/George-Tsiamasiotis/poincare-maps/equilibrium"
	"github.com/George-Tsiamasiotis/poincare-maps/event"
	"github.com/George-Tsiamasiotis/poincare-maps/integrate"
	"github.com/George-Tsiamasiotis/poincare-maps/orbit"
	"github.com/George-Tsiamasiotis/poincare-maps/status"
)

// InitialConditions is the array-of-arrays initial-condition bundle: one
// (θ₀, ψp₀, ρ∥₀, ζ₀, μ) tuple per particle, all slices of equal length K.
type InitialConditions struct {
	Theta0 []float64
	Psip0  []float64
	Rho0   []float64
	Zeta0  []float64
	Mu     []float64
}

// Len returns K, the particle count, and is the caller's responsibility
// to keep in sync across the five slices.
func (ic InitialConditions) Len() int { return len(ic.Theta0) }

// Batch drives one InitialConditions bundle against a shared Equilibrium.
// Cancel() sets a cooperative stop flag, polled once per accepted step by
// every worker.
type Batch struct {
	Eq  *equilibrium.Equilibrium
	Cfg *config.Config

	cancelled atomic.Bool
}

// NewBatch builds a Batch against a read-only, already-constructed
// Equilibrium shared by reference across every worker.
func NewBatch(eq *equilibrium.Equilibrium, cfg *config.Config) *Batch {
	return &Batch{Eq: eq, Cfg: cfg}
}

// Cancel requests cooperative cancellation of every in-flight particle.
func (b *Batch) Cancel() { b.cancelled.Store(true) }

func (b *Batch) isCancelled() bool { return b.cancelled.Load() }

// EvolutionOutcome is one particle's time-series result.
type EvolutionOutcome struct {
	Buffer *integrate.EvolutionBuffer
	Status status.Status
}

// Report aggregates the per-particle terminal status vector the driver
// returns alongside results.
type Report struct {
	Statuses []status.Status
}

// RunEvolution runs every particle in time-series mode, one independent
// RHS/Stepper per particle, and returns a pre-allocated per-particle result
// slice so no cross-worker synchronisation is needed after dispatch. t0
// is the shared initial time for every particle.
func (b *Batch) RunEvolution(t0 float64, ic InitialConditions) ([]EvolutionOutcome, Report, error) {
	n := ic.Len()
	results := make([]EvolutionOutcome, n)

	g := new(errgroup.Group)
	g.SetLimit(b.Cfg.WorkerCount)

	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			rhs := orbit.NewRHS(b.Eq, ic.Mu[i])
			st := integrate.NewStepper(rhs, b.Cfg)
			y0 := orbit.State{Theta: ic.Theta0[i], Psip: ic.Psip0[i], Rho: ic.Rho0[i], Zeta: ic.Zeta0[i]}

			buf, term, err := st.Run(t0, y0, b.isCancelled)
			if err != nil {
				return err
			}
			results[i] = EvolutionOutcome{Buffer: buf, Status: term}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, Report{}, err
	}

	statuses := make([]status.Status, n)
	for i, r := range results {
		statuses[i] = r.Status
	}
	return results, Report{Statuses: statuses}, nil
}

// MappingOutcome is one particle's Poincaré-map result.
type MappingOutcome struct {
	Result event.MapResult
}

// RunMapping runs every particle in mapping mode against shared mapping
// parameters mp.
func (b *Batch) RunMapping(t0 float64, ic InitialConditions, mp config.MappingParameters) ([]MappingOutcome, Report, error) {
	n := ic.Len()
	results := make([]MappingOutcome, n)

	g := new(errgroup.Group)
	g.SetLimit(b.Cfg.WorkerCount)

	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			rhs := orbit.NewRHS(b.Eq, ic.Mu[i])
			y0 := orbit.State{Theta: ic.Theta0[i], Psip: ic.Psip0[i], Rho: ic.Rho0[i], Zeta: ic.Zeta0[i]}

			res, err := event.RunMapping(rhs, b.Cfg, mp, t0, y0, b.isCancelled)
			if err != nil {
				return err
			}
			results[i] = MappingOutcome{Result: res}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, Report{}, err
	}

	statuses := make([]status.Status, n)
	for i, r := range results {
		statuses[i] = r.Result.Status
	}
	return results, Report{Statuses: statuses}, nil
}
