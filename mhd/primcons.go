// Copyright 2016 The RMHD Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mhd

import (
	"math"

	"github.com/cpmech/rmhd/eos"
)

// PrimToConsPoint maps a primitive state to the conserved state in
// closed form. The caller must ensure v² < 1 and ρ > 0; there is no
// failure mode.
func PrimToConsPoint(p Prim, gamma float64) Cons {
	rho, pr := p[IRho], p[IPr]
	vx, vy, vz := p[IVx], p[IVy], p[IVz]
	Bx, By, Bz := p[IBx], p[IBy], p[IBz]

	v2 := vx*vx + vy*vy + vz*vz
	B2 := Bx*Bx + By*By + Bz*Bz
	Bv := Bx*vx + By*vy + Bz*vz

	W := 1 / math.Sqrt(1-v2)
	b0 := W * Bv
	b2 := (B2 + b0*b0) / (W * W)
	bx := (Bx + b0*W*vx) / W
	by := (By + b0*W*vy) / W
	bz := (Bz + b0*W*vz) / W

	pStar := pr + 0.5*b2
	e := eos.SpecificEnergy(rho, pr, gamma)
	hStar := 1 + e + 0.5*b2/rho + pStar/rho

	var u Cons
	u[ID] = rho * W
	u[ITau] = rho*hStar*W*W - pStar - b0*b0 - u[ID]
	u[ISx] = rho*hStar*W*W*vx - b0*bx
	u[ISy] = rho*hStar*W*W*vy - b0*by
	u[ISz] = rho*hStar*W*W*vz - b0*bz
	u[IBx], u[IBy], u[IBz] = Bx, By, Bz
	return u
}

// PrimToConsArray maps a slice of primitive states to conserved states
func PrimToConsArray(p []Prim, gamma float64) []Cons {
	out := make([]Cons, len(p))
	for i := range p {
		out[i] = PrimToConsPoint(p[i], gamma)
	}
	return out
}
