// Copyright 2016 The RMHD Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package solver ties the eos, quartic, mhd, recon, riemann and ct
// packages together into the Dead/Alive grid-level driver: cons/prim
// array conversions, the per-axis flux sweep, constraint transport and
// the dU/dt right-hand side.
package solver

import (
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/rmhd/limiter"
	"github.com/cpmech/rmhd/quartic"
	"github.com/cpmech/rmhd/riemann"
)

// Config bundles every tunable of the solver, mirroring the enumerated
// configuration surface: Riemann solver, reconstruction, limiter and
// quartic-root modes plus the scalar EOS/Newton knobs.
type Config struct {
	Riemann        riemann.Kind
	Reconstruction ReconKind
	Limiter        limiter.Kind
	Quartic        quartic.Mode
	Gamma          float64
	Theta          float64
	UseEstimate    bool
	Verbose        bool
	CheckJacobian  bool
}

// ReconKind mirrors recon.Mode without importing recon from this file,
// keeping Config free of a hard dependency on the reconstruction
// package's internal naming
type ReconKind int

const (
	PiecewiseConstant ReconKind = iota
	PLM3Velocity
	PLM4Velocity
)

// DefaultConfig matches the spec's defaults: PLM3Velocity, Minmod,
// Exact quartic, HLL.
func DefaultConfig() Config {
	return Config{
		Riemann:        riemann.HLL,
		Reconstruction: PLM3Velocity,
		Limiter:        limiter.Minmod,
		Quartic:        quartic.Exact,
		Gamma:          1.4,
		Theta:          2.0,
		UseEstimate:    false,
	}
}

// FromParams builds a Config from a gosl/fun parameter table, the same
// idiom the material models use to read {gam, theta} style key/value
// pairs out of an input file.
func FromParams(prms fun.Prms) Config {
	cfg := DefaultConfig()
	for _, p := range prms {
		switch p.N {
		case "gam":
			cfg.Gamma = p.V
		case "theta":
			cfg.Theta = p.V
		case "estimate":
			cfg.UseEstimate = p.V > 0
		case "verbose":
			cfg.Verbose = p.V > 0
		case "checkjacobian":
			cfg.CheckJacobian = p.V > 0
		}
	}
	return cfg
}
