// Copyright 2016 The RMHD Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package recon implements the piecewise-constant and piecewise-linear
// (PLM) reconstructions used to turn cell-centered primitive states into
// the left/right edge states a Riemann solver consumes
package recon

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/rmhd/limiter"
	"github.com/cpmech/rmhd/mhd"
)

// Mode selects how cell-centered primitives are extrapolated to a face
type Mode int

const (
	PiecewiseConstant Mode = iota
	PLM3Velocity           // limiter applied directly to all 8 primitive slots
	PLM4Velocity           // ρ,p,B via minmod; velocity reconstructed through the cached 4-velocity
)

// Config bundles the reconstruction mode with the limiter it dispatches to
type Config struct {
	Mode    Mode
	Limiter limiter.Kind
	Theta   float64
}

// Stencil is the three-cell primitive window (left, center, right)
// along the active axis, centered on the cell whose edge is being
// reconstructed
type Stencil struct {
	L, C, R mhd.Prim
}

// FourVel is a cached 4-velocity triple (ux, uy, uz) for one cell
type FourVel [3]float64

// UStencil is the three-cell 4-velocity window matching Stencil, used
// only by PLM4Velocity
type UStencil struct {
	L, C, R FourVel
}

// RightEdge reconstructs the state at the right edge of the stencil's
// center cell — this is P_L at the face between the center cell and its
// right neighbor.
func RightEdge(cfg Config, s Stencil, u UStencil) mhd.Prim {
	return edge(cfg, s, u, +1)
}

// LeftEdge reconstructs the state at the left edge of the stencil's
// center cell — this is P_R at the face between the center cell and its
// left neighbor.
func LeftEdge(cfg Config, s Stencil, u UStencil) mhd.Prim {
	return edge(cfg, s, u, -1)
}

func edge(cfg Config, s Stencil, u UStencil, sign float64) mhd.Prim {
	switch cfg.Mode {
	case PiecewiseConstant:
		return s.C

	case PLM4Velocity:
		var out mhd.Prim
		for _, slot := range [...]int{mhd.IRho, mhd.IPr, mhd.IBx, mhd.IBy, mhd.IBz} {
			slope := limiter.Apply(limiter.Minmod, s.L[slot], s.C[slot], s.R[slot], cfg.Theta)
			out[slot] = s.C[slot] + sign*0.5*slope
		}
		var uEdge FourVel
		for k := 0; k < 3; k++ {
			slope := limiter.Apply(cfg.Limiter, u.L[k], u.C[k], u.R[k], cfg.Theta)
			uEdge[k] = u.C[k] + sign*0.5*slope
		}
		W := math.Sqrt(1 + uEdge[0]*uEdge[0] + uEdge[1]*uEdge[1] + uEdge[2]*uEdge[2])
		out[mhd.IVx] = uEdge[0] / W
		out[mhd.IVy] = uEdge[1] / W
		out[mhd.IVz] = uEdge[2] / W
		return out

	case PLM3Velocity:
		var out mhd.Prim
		for slot := 0; slot < 8; slot++ {
			slope := limiter.Apply(cfg.Limiter, s.L[slot], s.C[slot], s.R[slot], cfg.Theta)
			out[slot] = s.C[slot] + sign*0.5*slope
		}
		return out

	default:
		chk.Panic("recon: unknown mode tag %d", cfg.Mode)
		return mhd.Prim{}
	}
}
