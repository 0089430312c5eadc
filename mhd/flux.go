// Copyright 2016 The RMHD Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mhd

import (
	"math"

	"github.com/cpmech/rmhd/eos"
	"github.com/cpmech/rmhd/grid"
	"github.com/cpmech/rmhd/quartic"
)

// WaveConfig selects the quartic strategy used to estimate the fastest
// left/right signal speeds
type WaveConfig struct {
	Gamma   float64
	Quartic quartic.Mode
}

// FluxResult bundles the physical flux and the clamped signal speeds
// produced by FluxAndEval
type FluxResult struct {
	F       Cons
	APlus   float64 // fastest right-going signal speed
	AMinus  float64 // fastest left-going signal speed
	Trusted bool    // false when the light-speed-cone fallback was used
}

// FluxAndEval computes the physical MHD flux vector along axis and the
// fastest left/right signal speeds, per spec §4.4.
func FluxAndEval(u Cons, p Prim, axis grid.Axis, cfg WaveConfig) FluxResult {
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

	var vAxis, BAxis, bAxis float64
	switch axis {
	case grid.AxisX:
		vAxis, BAxis, bAxis = vx, Bx, bx
	case grid.AxisY:
		vAxis, BAxis, bAxis = vy, By, by
	default:
		vAxis, BAxis, bAxis = vz, Bz, bz
	}

	rhoh := rho * eos.Enthalpy(rho, pr, cfg.Gamma)

	var F Cons
	F[ID] = u[ID] * vAxis
	F[ITau] = u[ITau]*vAxis - b0*BAxis/W + pStar*vAxis
	F[ISx] = u[ISx]*vAxis - bx*BAxis/W + pStar*kronecker(axis, grid.AxisX)
	F[ISy] = u[ISy]*vAxis - by*BAxis/W + pStar*kronecker(axis, grid.AxisY)
	F[ISz] = u[ISz]*vAxis - bz*BAxis/W + pStar*kronecker(axis, grid.AxisZ)
	F[IBx] = vAxis*Bx - vx*BAxis
	F[IBy] = vAxis*By - vy*BAxis
	F[IBz] = vAxis*Bz - vz*BAxis

	aPlus, aMinus, trusted := waveSpeeds(rhoh, b2, pr, rho, vAxis, bAxis, b0, W, cfg)
	return FluxResult{F: F, APlus: aPlus, AMinus: aMinus, Trusted: trusted}
}

func kronecker(a, b grid.Axis) float64 {
	if a == b {
		return 1
	}
	return 0
}

// waveSpeeds solves the quartic of spec §4.4 for the signal speeds along
// the selected axis and clamps the result to the light-speed cone
func waveSpeeds(rhoh, b2, pr, rho, vi, bi, b0, W float64, cfg WaveConfig) (aPlus, aMinus float64, trusted bool) {
	cs2 := eos.SoundSpeedSq(rho, pr, cfg.Gamma)

	K := rhoh * W * W * W * W * (1/cs2 - 1)
	L := -(rhoh + b2/cs2) * (W * W)

	A4 := K - L - b0*b0
	A3 := -4*K*vi + 2*L*vi + 2*b0*bi
	A2 := 6*K*vi*vi + L*(1-vi*vi) + b0*b0 - bi*bi
	A1 := -4*K*vi*vi*vi - 2*L*vi - 2*b0*bi
	A0 := K*vi*vi*vi*vi + L*vi*vi + bi*bi

	roots := quartic.Solve(cfg.Quartic, A4, A3, A2, A1, A0)
	if !roots.Any() {
		return -1, 1, false
	}
	aPlus = roots.Max()
	aMinus = roots.Min()
	if math.Abs(aPlus) > 1 || math.Abs(aMinus) > 1 {
		return -1, 1, false
	}
	return aPlus, aMinus, true
}
