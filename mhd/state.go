// Copyright 2016 The RMHD Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package mhd implements the per-cell relativistic MHD state: the fixed
// eight-slot conserved and primitive vectors, the closed-form
// primitive-to-conserved map, the two-dimensional Newton inversion that
// recovers primitives from conserved variables, and the flux vector
// plus characteristic wavespeeds used by the Riemann solvers.
package mhd

// Cons is the conserved-variable vector (D, τ, Sx, Sy, Sz, Bx, By, Bz)
type Cons [8]float64

// Prim is the primitive-variable vector (ρ, p, vx, vy, vz, Bx, By, Bz)
type Prim [8]float64

// Slot indices shared by Cons and Prim; B occupies the same slots 5..7
// in both vectors.
const (
	ID   = 0 // rest-mass density × Lorentz factor (Cons) / rest density (Prim, aliased below)
	ITau = 1 // total energy minus D (Cons only)
	ISx  = 2
	ISy  = 3
	ISz  = 4
	IBx  = 5
	IBy  = 6
	IBz  = 7
)

// Prim-only aliases for the first five slots
const (
	IRho = 0
	IPr  = 1
	IVx  = 2
	IVy  = 3
	IVz  = 4
)

// PFloor is the minimum gas pressure accepted by the primitive recovery
const PFloor = 1e-10
