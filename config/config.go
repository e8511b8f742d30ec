// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config holds the run configuration, following the shape of gofem's inp.SolverData: a JSON-tagged
// struct with a SetDefault method and a PostProcess/Validate pass.
package config

import (
	"runtime"

	"github.com/George-Tsiamasiotis/poincare-maps/status"
)

// EventDirection filters which crossing sign the event layer records.
type EventDirection string

const (
	DirectionAny        EventDirection = "any"
	DirectionAscending  EventDirection = "ascending"
	DirectionDescending EventDirection = "descending"
)

// PhaseMode selects how a Harmonic's phase is built.
type PhaseMode string

const (
	PhaseConstant     PhaseMode = "constant"
	PhaseInterpolated PhaseMode = "interpolated"
)

// Controller selects the RKF4(5) step-size controller.
type Controller string

const (
	ControllerLTE    Controller = "lte"
	ControllerEnergy Controller = "energy"
)

// Config is the run configuration, read from a JSON file or built
// programmatically.
type Config struct {
	// LTE controller tolerances.
	Atol float64 `json:"atol"`
	Rtol float64 `json:"rtol"`

	// Energy-drift controller threshold.
	EpsEnergy float64 `json:"eps_energy"`

	// Step bounds.
	H0     float64 `json:"h0"`
	HMin   float64 `json:"h_min"`
	HMax   float64 `json:"h_max"`
	Safety float64 `json:"safety"`

	// Hard ceiling on accepted+rejected steps.
	MaxSteps int `json:"max_steps"`

	// Parallelism; 0 means hardware concurrency.
	WorkerCount int `json:"worker_count"`

	// Sub-sampling of the evolution buffer; 1 means store every step.
	StoreStride int `json:"store_stride"`

	// Event layer.
	EventDirection EventDirection `json:"event_direction"`

	// Perturbation phase model.
	PhaseMode PhaseMode `json:"phase_mode"`

	// Step controller selection.
	Controller Controller `json:"controller"`
}

// SetDefault fills in the documented default values.
func (c *Config) SetDefault() {
	c.Atol = 1e-10
	c.Rtol = 1e-10
	c.EpsEnergy = 1e-9
	c.H0 = 1e-3
	c.HMin = 1e-12
	c.HMax = 1.0
	c.Safety = 0.9
	c.MaxSteps = 1_000_000
	c.WorkerCount = 0
	c.StoreStride = 1
	c.EventDirection = DirectionAny
	c.PhaseMode = PhaseConstant
	c.Controller = ControllerLTE
}

// PostProcess derives dependent fields and validates invariants. It is
// called once after a Config is read or built, matching
// inp.SolverData.PostProcess.
func (c *Config) PostProcess() error {
	if c.WorkerCount == 0 {
		c.WorkerCount = runtime.NumCPU()
	}
	if c.StoreStride <= 0 {
		c.StoreStride = 1
	}
	return c.Validate()
}

// Validate returns a status.ConfigError if any invariant is violated.
func (c *Config) Validate() error {
	switch {
	case c.Atol <= 0 || c.Rtol <= 0:
		return status.Errf(status.ConfigError, "atol and rtol must be positive, got atol=%g rtol=%g", c.Atol, c.Rtol)
	case c.EpsEnergy <= 0:
		return status.Errf(status.ConfigError, "eps_energy must be positive, got %g", c.EpsEnergy)
	case c.HMin <= 0 || c.HMax <= 0 || c.HMin >= c.HMax:
		return status.Errf(status.ConfigError, "require 0 < h_min < h_max, got h_min=%g h_max=%g", c.HMin, c.HMax)
	case c.H0 < c.HMin || c.H0 > c.HMax:
		return status.Errf(status.ConfigError, "h0=%g must lie within [h_min, h_max]=[%g, %g]", c.H0, c.HMin, c.HMax)
	case c.Safety <= 0 || c.Safety >= 1:
		return status.Errf(status.ConfigError, "safety must lie in (0,1), got %g", c.Safety)
	case c.MaxSteps <= 0:
		return status.Errf(status.ConfigError, "max_steps must be positive, got %d", c.MaxSteps)
	case c.WorkerCount < 0:
		return status.Errf(status.ConfigError, "worker_count must be >= 0, got %d", c.WorkerCount)
	case c.EventDirection != DirectionAny && c.EventDirection != DirectionAscending && c.EventDirection != DirectionDescending:
		return status.Errf(status.ConfigError, "unknown event_direction %q", c.EventDirection)
	case c.PhaseMode != PhaseConstant && c.PhaseMode != PhaseInterpolated:
		return status.Errf(status.ConfigError, "unknown phase_mode %q", c.PhaseMode)
	case c.Controller != ControllerLTE && c.Controller != ControllerEnergy:
		return status.Errf(status.ConfigError, "unknown controller %q", c.Controller)
	}
	return nil
}

// MappingParameters configures a Poincaré-map run.
type MappingParameters struct {
	Section       string  `json:"section"` // "theta" or "zeta"
	Alpha         float64 `json:"alpha"`
	Intersections int     `json:"intersections"`
}

// Validate checks the mapping parameters.
func (m *MappingParameters) Validate() error {
	if m.Section != "theta" && m.Section != "zeta" {
		return status.Errf(status.ConfigError, "section must be \"theta\" or \"zeta\", got %q", m.Section)
	}
	if m.Intersections <= 0 {
		return status.Errf(status.ConfigError, "intersections must be a positive integer, got %d", m.Intersections)
	}
	return nil
}
