// Copyright 2016 The RMHD Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package grid implements the structured-grid geometry and flat-buffer
// stride arithmetic shared by the flux sweep, constraint transport and
// dU/dt driver
package grid

import "github.com/cpmech/gosl/utl"

// NFields is the fixed number of doubles carried per cell
const NFields = 8

// NGhost is the ghost-cell width on each side of every dimension
const NGhost = 2

// Axis selects which logical direction a sweep, flux or reconstruction
// routine is currently operating along
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// Grid holds the logical dimensions, physical extents and derived cell
// spacing and strides of a structured 1D/2D/3D grid with NGhost ghost
// cells on each side
type Grid struct {
	Nx, Ny, Nz int     // logical dimensions (including ghosts)
	Lx, Ly, Lz float64 // physical extents
	Dx, Dy, Dz float64 // cell spacing
	S          [4]int  // strides: S[0]=all cells, S[1]=x-stride, S[2]=y-stride, S[3]=NFields
}

// New builds a Grid from logical dimensions and physical extents. Cell
// spacing is dℓ = Lℓ / (Nℓ - 2·NGhost).
func New(nx, ny, nz int, lx, ly, lz float64) Grid {
	g := Grid{Nx: nx, Ny: ny, Nz: nz, Lx: lx, Ly: ly, Lz: lz}
	if n := nx - 2*NGhost; n > 0 {
		g.Dx = lx / float64(n)
	}
	if n := ny - 2*NGhost; n > 0 {
		g.Dy = ly / float64(n)
	}
	if n := nz - 2*NGhost; n > 0 {
		g.Dz = lz / float64(n)
	}
	g.S[0] = nx * ny * nz * NFields
	g.S[1] = ny * nz * NFields
	g.S[2] = nz * NFields
	g.S[3] = NFields
	return g
}

// NCells returns the total number of cells (including ghosts)
func (g Grid) NCells() int {
	return g.Nx * g.Ny * g.Nz
}

// Stride returns the flat-buffer stride for the given axis (in doubles)
func (g Grid) Stride(axis Axis) int {
	switch axis {
	case AxisX:
		return g.S[1]
	case AxisY:
		return g.S[2]
	default:
		return g.S[3]
	}
}

// CellStride returns the stride for the given axis in cells (as opposed
// to Stride, which counts flat doubles) — the unit used by code that
// indexes per-cell buffers such as []mhd.Cons
func (g Grid) CellStride(axis Axis) int {
	return g.Stride(axis) / NFields
}

// Spacing returns dℓ for the given axis
func (g Grid) Spacing(axis Axis) float64 {
	switch axis {
	case AxisX:
		return g.Dx
	case AxisY:
		return g.Dy
	default:
		return g.Dz
	}
}

// CellCenters returns the NGhost-aware cell-center coordinates along an
// axis of length n with spacing d, anchored so the first interior cell
// (index NGhost) sits at d/2 from the physical boundary
func CellCenters(n int, d float64) []float64 {
	lo := -float64(NGhost)*d + d/2
	hi := lo + float64(n-1)*d
	return utl.LinSpace(lo, hi, n)
}
