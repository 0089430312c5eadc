// Copyright 2016 The RMHD Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solver

import (
	"errors"
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/rmhd/ct"
	"github.com/cpmech/rmhd/grid"
	"github.com/cpmech/rmhd/mhd"
	"github.com/cpmech/rmhd/recon"
	"github.com/cpmech/rmhd/riemann"
)

// ErrDeadContext is returned by any Context method that requires the
// Alive state (the dU/dt driver) when called on a Dead context
var ErrDeadContext = errors.New("solver: context is dead; call Initialize first")

// Context is the explicit, per-call state block that replaces a
// process-wide mutable singleton: every entry point that needs scratch
// buffers or grid geometry takes a *Context by reference instead of
// reading shared globals, so concurrent solves simply use distinct
// Contexts (Design Notes §9 restructuring).
type Context struct {
	alive     bool
	cfg       Config
	g         grid.Grid
	dim       int
	prim      []mhd.Prim
	w         []float64
	Fx, Fy, Fz []mhd.Cons
	maxLambda float64
}

// NewDead returns a Context in the Dead state with the default
// configuration. Only SetConfig, Config and the point-wise mhd/riemann
// helpers are meaningful before Initialize.
func NewDead() *Context {
	return &Context{cfg: DefaultConfig()}
}

// Config returns a copy of the current configuration
func (c *Context) Config() Config {
	return c.cfg
}

// SetConfig replaces the configuration. It is valid in both Dead and
// Alive states; changing the limiter or reconstruction mode mid-run
// takes effect on the next dU/dt call.
func (c *Context) SetConfig(cfg Config) {
	c.cfg = cfg
}

// Alive reports whether Initialize has been called without a matching
// Finalize
func (c *Context) Alive() bool {
	return c.alive
}

// MaxLambda returns the largest trusted |wavespeed| observed by any
// Riemann solve since Initialize
func (c *Context) MaxLambda() float64 {
	return c.maxLambda
}

// Initialize allocates the primitive cache and flux scratch buffers and
// transitions the context from Dead to Alive. p0 seeds the cached
// primitive state (and is the Newton seed for the first recovery).
func (c *Context) Initialize(p0 []mhd.Prim, nx, ny, nz int, lx, ly, lz float64, quiet bool) error {
	if c.alive {
		return chk.Err("solver: context is already alive; call Finalize first")
	}
	n := nx * ny * nz
	if len(p0) != n {
		return chk.Err("solver: initial state has %d cells, grid has %d", len(p0), n)
	}

	c.g = grid.New(nx, ny, nz, lx, ly, lz)
	c.dim = dimensionOf(ny, nz)
	c.prim = make([]mhd.Prim, n)
	copy(c.prim, p0)
	c.w = make([]float64, n)
	c.Fx = make([]mhd.Cons, n)
	if c.dim >= 2 {
		c.Fy = make([]mhd.Cons, n)
	}
	if c.dim >= 3 {
		c.Fz = make([]mhd.Cons, n)
	}
	c.maxLambda = 0
	c.alive = true
	if !quiet {
		io.Pf("solver: initialized %d x %d x %d grid (%d cells, dim=%d)\n", nx, ny, nz, n, c.dim)
	}
	return nil
}

// Finalize releases the scratch buffers and transitions back to Dead
func (c *Context) Finalize() {
	c.prim, c.w, c.Fx, c.Fy, c.Fz = nil, nil, nil, nil, nil
	c.alive = false
}

func dimensionOf(ny, nz int) int {
	if nz > 1 {
		return 3
	}
	if ny > 1 {
		return 2
	}
	return 1
}

// PrimToConsArray is the array form of mhd.PrimToConsPoint; it requires
// no Alive state.
func (c *Context) PrimToConsArray(p []mhd.Prim) []mhd.Cons {
	return mhd.PrimToConsArray(p, c.cfg.Gamma)
}

// ConsToPrimArray recovers primitives for every cell, seeding each cell
// from (and overwriting) the Alive primitive cache. It requires Alive.
func (c *Context) ConsToPrimArray(u []mhd.Cons) (mhd.RecoveryReport, error) {
	if !c.alive {
		return mhd.RecoveryReport{}, ErrDeadContext
	}
	return mhd.ConsToPrimArray(u, c.prim, c.recoveryConfig(), c.prim, c.w), nil
}

func (c *Context) recoveryConfig() mhd.RecoveryConfig {
	return mhd.RecoveryConfig{Gamma: c.cfg.Gamma, UseEstimate: c.cfg.UseEstimate, Verbose: c.cfg.Verbose, CheckJacobian: c.cfg.CheckJacobian}
}

// DUdt1D is the dU/dt driver for a 1D problem. u is the conserved state
// over the whole grid (including ghosts); the caller owns boundary
// conditions.
func (c *Context) DUdt1D(u []mhd.Cons) ([]mhd.Cons, mhd.RecoveryReport, error) {
	return c.dudt(u, 1)
}

// DUdt2D is the dU/dt driver for a 2D problem; constraint transport is
// applied before the divergence is formed.
func (c *Context) DUdt2D(u []mhd.Cons) ([]mhd.Cons, mhd.RecoveryReport, error) {
	return c.dudt(u, 2)
}

// DUdt3D is the dU/dt driver for a 3D problem
func (c *Context) DUdt3D(u []mhd.Cons) ([]mhd.Cons, mhd.RecoveryReport, error) {
	return c.dudt(u, 3)
}

func (c *Context) dudt(u []mhd.Cons, dim int) ([]mhd.Cons, mhd.RecoveryReport, error) {
	if !c.alive {
		return nil, mhd.RecoveryReport{}, ErrDeadContext
	}
	if dim != c.dim {
		return nil, mhd.RecoveryReport{}, chk.Err("solver: context is configured for %dD, dUdt_%dd was called", c.dim, dim)
	}

	rep := mhd.ConsToPrimArray(u, c.prim, c.recoveryConfig(), c.prim, c.w)

	c.sweepAxis(grid.AxisX, c.Fx)
	if dim >= 2 {
		c.sweepAxis(grid.AxisY, c.Fy)
	}
	if dim >= 3 {
		c.sweepAxis(grid.AxisZ, c.Fz)
	}

	if dim == 2 {
		ct.Apply2D(c.Fx, c.Fy, c.g.CellStride(grid.AxisX), c.g.CellStride(grid.AxisY))
	} else if dim == 3 {
		ct.Apply3D(c.Fx, c.Fy, c.Fz, c.g.CellStride(grid.AxisX), c.g.CellStride(grid.AxisY), c.g.CellStride(grid.AxisZ))
	}

	n := len(u)
	L := make([]mhd.Cons, n)

	sx := c.g.CellStride(grid.AxisX)
	dx := c.g.Spacing(grid.AxisX)
	var sy, sz int
	var dy, dz float64
	if dim >= 2 {
		sy = c.g.CellStride(grid.AxisY)
		dy = c.g.Spacing(grid.AxisY)
	}
	if dim >= 3 {
		sz = c.g.CellStride(grid.AxisZ)
		dz = c.g.Spacing(grid.AxisZ)
	}

	// a single pass from s_x to s[0]: every i in this range is also
	// >= s_y and >= s_z (s_x is the largest cell stride), so the
	// active-axis divergence terms accumulate together and the
	// boundary slots near the low end are left untouched.
	for i := sx; i < n; i++ {
		for k := 0; k < 8; k++ {
			acc := -(c.Fx[i][k] - c.Fx[i-sx][k]) / dx
			if dim >= 2 {
				acc -= (c.Fy[i][k] - c.Fy[i-sy][k]) / dy
			}
			if dim >= 3 {
				acc -= (c.Fz[i][k] - c.Fz[i-sz][k]) / dz
			}
			L[i][k] = acc
		}
	}
	return L, rep, nil
}

// sweepAxis is Fiph: it reconstructs edge states from the cached
// primitives and fills F with the per-face Riemann flux over
// [stride, n-2·stride), leaving the first axis-stride of faces and the
// last two axis-strides of faces at their zero sentinel value.
func (c *Context) sweepAxis(axis grid.Axis, F []mhd.Cons) {
	n := len(F)
	stride := c.g.CellStride(axis)
	for i := range F {
		F[i] = mhd.Cons{}
	}

	wcfg := mhd.WaveConfig{Gamma: c.cfg.Gamma, Quartic: c.cfg.Quartic}
	rcfg := recon.Config{Mode: reconModeOf(c.cfg.Reconstruction), Limiter: c.cfg.Limiter, Theta: c.cfg.Theta}

	lo, hi := stride, n-2*stride
	for i := lo; i < hi; i++ {
		pl := recon.RightEdge(rcfg, c.stencilAt(i, stride), c.uStencilAt(i, stride))
		pr := recon.LeftEdge(rcfg, c.stencilAt(i+stride, stride), c.uStencilAt(i+stride, stride))
		res := riemann.Flux(c.cfg.Riemann, axis, pl, pr, wcfg)
		F[i] = res.F
		if res.Trusted && res.MaxAbsA > c.maxLambda {
			c.maxLambda = res.MaxAbsA
		}
	}
}

func (c *Context) stencilAt(i, stride int) recon.Stencil {
	return recon.Stencil{L: c.prim[i-stride], C: c.prim[i], R: c.prim[i+stride]}
}

func (c *Context) uStencilAt(i, stride int) recon.UStencil {
	if c.cfg.Reconstruction != PLM4Velocity {
		return recon.UStencil{}
	}
	return recon.UStencil{L: c.fourVelAt(i - stride), C: c.fourVelAt(i), R: c.fourVelAt(i + stride)}
}

func (c *Context) fourVelAt(i int) recon.FourVel {
	p := c.prim[i]
	W := c.w[i]
	if W == 0 {
		v2 := p[mhd.IVx]*p[mhd.IVx] + p[mhd.IVy]*p[mhd.IVy] + p[mhd.IVz]*p[mhd.IVz]
		W = 1 / math.Sqrt(1-v2)
	}
	return recon.FourVel{p[mhd.IVx] * W, p[mhd.IVy] * W, p[mhd.IVz] * W}
}

func reconModeOf(k ReconKind) recon.Mode {
	switch k {
	case PLM4Velocity:
		return recon.PLM4Velocity
	case PiecewiseConstant:
		return recon.PiecewiseConstant
	default:
		return recon.PLM3Velocity
	}
}
