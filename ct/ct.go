// Copyright 2016 The RMHD Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ct implements constraint transport: it replaces the
// magnetic-field slots of the per-axis face fluxes with corner-averaged
// electromotive forces so that the discrete divergence update is exactly
// zero.
package ct

import (
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/rmhd/mhd"
)

// Apply2D corrects the x and y axis flux buffers in place. Fx, Fy hold
// one face flux per cell, indexed the same way the cell-centered state
// is; sx, sy are the cell-index strides (grid.CellStride) of the x and y
// axes. The correction is only well-defined away from the domain edges,
// so it is applied only to cells at least 2·max(sx, sy) from either end
// of the buffers; the cells outside that range are left unchanged.
func Apply2D(Fx, Fy []mhd.Cons, sx, sy int) {
	n := len(Fx)
	// scratch holds the two corner-averaged EMF slabs as rows of one
	// matrix rather than two standalone slices
	scratch := la.MatAlloc(2, n)
	newFxBy, newFyBx := scratch[0], scratch[1]

	lo := 2 * max(sx, sy)
	hi := n - 2*max(sx, sy)
	for i := lo; i < hi; i++ {
		newFxBy[i] = (2*Fx[i][mhd.IBy] + Fx[i+sy][mhd.IBy] + Fx[i-sy][mhd.IBy] -
			Fy[i][mhd.IBx] - Fy[i+sx][mhd.IBx] - Fy[i-sy][mhd.IBx] - Fy[i+sx-sy][mhd.IBx]) / 8
		newFyBx[i] = (2*Fy[i][mhd.IBx] + Fy[i+sx][mhd.IBx] + Fy[i-sx][mhd.IBx] -
			Fx[i][mhd.IBy] - Fx[i+sy][mhd.IBy] - Fx[i-sx][mhd.IBy] - Fx[i+sy-sx][mhd.IBy]) / 8
	}
	for i := lo; i < hi; i++ {
		Fx[i][mhd.IBx] = 0
		Fy[i][mhd.IBy] = 0
		Fx[i][mhd.IBy] = newFxBy[i]
		Fy[i][mhd.IBx] = newFyBx[i]
	}
}

// Apply3D corrects all three axis flux buffers in place, applying the
// 2D corner average to each of the three cyclic plane pairs (x,y),
// (y,z), (z,x).
func Apply3D(Fx, Fy, Fz []mhd.Cons, sx, sy, sz int) {
	n := len(Fx)
	lo := 2 * max(sx, max(sy, sz))
	hi := n - lo

	// six corner-averaged EMF slabs, one per (axis, B-component) pair,
	// as rows of a single matrix instead of six standalone slices
	scratch := la.MatAlloc(6, n)
	newFxBy, newFyBx, newFyBz, newFzBy, newFzBx, newFxBz :=
		scratch[0], scratch[1], scratch[2], scratch[3], scratch[4], scratch[5]

	for i := lo; i < hi; i++ {
		newFxBy[i] = (2*Fx[i][mhd.IBy] + Fx[i+sy][mhd.IBy] + Fx[i-sy][mhd.IBy] -
			Fy[i][mhd.IBx] - Fy[i+sx][mhd.IBx] - Fy[i-sy][mhd.IBx] - Fy[i+sx-sy][mhd.IBx]) / 8
		newFyBx[i] = (2*Fy[i][mhd.IBx] + Fy[i+sx][mhd.IBx] + Fy[i-sx][mhd.IBx] -
			Fx[i][mhd.IBy] - Fx[i+sy][mhd.IBy] - Fx[i-sx][mhd.IBy] - Fx[i+sy-sx][mhd.IBy]) / 8

		newFyBz[i] = (2*Fy[i][mhd.IBz] + Fy[i+sz][mhd.IBz] + Fy[i-sz][mhd.IBz] -
			Fz[i][mhd.IBy] - Fz[i+sy][mhd.IBy] - Fz[i-sz][mhd.IBy] - Fz[i+sy-sz][mhd.IBy]) / 8
		newFzBy[i] = (2*Fz[i][mhd.IBy] + Fz[i+sy][mhd.IBy] + Fz[i-sy][mhd.IBy] -
			Fy[i][mhd.IBz] - Fy[i+sz][mhd.IBz] - Fy[i-sy][mhd.IBz] - Fy[i+sz-sy][mhd.IBz]) / 8

		newFzBx[i] = (2*Fz[i][mhd.IBx] + Fz[i+sx][mhd.IBx] + Fz[i-sx][mhd.IBx] -
			Fx[i][mhd.IBz] - Fx[i+sz][mhd.IBz] - Fx[i-sx][mhd.IBz] - Fx[i+sz-sx][mhd.IBz]) / 8
		newFxBz[i] = (2*Fx[i][mhd.IBz] + Fx[i+sz][mhd.IBz] + Fx[i-sz][mhd.IBz] -
			Fz[i][mhd.IBx] - Fz[i+sx][mhd.IBx] - Fz[i-sx][mhd.IBx] - Fz[i+sx-sz][mhd.IBx]) / 8
	}

	for i := lo; i < hi; i++ {
		Fx[i][mhd.IBx] = 0
		Fy[i][mhd.IBy] = 0
		Fz[i][mhd.IBz] = 0
		Fx[i][mhd.IBy] = newFxBy[i]
		Fy[i][mhd.IBx] = newFyBx[i]
		Fy[i][mhd.IBz] = newFyBz[i]
		Fz[i][mhd.IBy] = newFzBy[i]
		Fz[i][mhd.IBx] = newFzBx[i]
		Fx[i][mhd.IBz] = newFxBz[i]
	}
}

// DivergenceCorner evaluates the discrete ∇·B at the corner associated
// with cell i using simple backward differences of the face-centered B
// components carried in the conserved state. Pass sy=0/sz=0 to omit an
// axis in 1D/2D domains.
func DivergenceCorner(U []mhd.Cons, sx, sy, sz int, dx, dy, dz float64, i int) float64 {
	div := (U[i][mhd.IBx] - U[i-sx][mhd.IBx]) / dx
	if sy != 0 {
		div += (U[i][mhd.IBy] - U[i-sy][mhd.IBy]) / dy
	}
	if sz != 0 {
		div += (U[i][mhd.IBz] - U[i-sz][mhd.IBz]) / dz
	}
	return div
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
