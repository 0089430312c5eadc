// Copyright 2016 The RMHD Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package riemann implements the HLL and HLLC approximate Riemann
// solvers that turn a pair of reconstructed edge states into a single
// face-centered flux vector
package riemann

import (
	"math"

	"github.com/cpmech/rmhd/grid"
	"github.com/cpmech/rmhd/mhd"
)

// Kind selects the Riemann solver
type Kind int

const (
	HLL Kind = iota
	HLLC
)

// Result bundles the face flux with the maximum |signal speed| observed,
// which callers fold into the library-wide max_lambda tracker when
// Trusted is true.
type Result struct {
	F       mhd.Cons
	MaxAbsA float64
	Trusted bool
}

// Flux evaluates the selected Riemann solver at the face between the
// left and right reconstructed primitive states, sampled at s=0
// (face-centered flux).
func Flux(kind Kind, axis grid.Axis, pl, pr mhd.Prim, cfg mhd.WaveConfig) Result {
	if kind == HLLC {
		return hllc(axis, pl, pr, cfg)
	}
	return hll(axis, pl, pr, cfg)
}

func hll(axis grid.Axis, pl, pr mhd.Prim, cfg mhd.WaveConfig) Result {
	ul := mhd.PrimToConsPoint(pl, cfg.Gamma)
	ur := mhd.PrimToConsPoint(pr, cfg.Gamma)
	fl := mhd.FluxAndEval(ul, pl, axis, cfg)
	fr := mhd.FluxAndEval(ur, pr, axis, cfg)

	ap := math.Max(fl.APlus, fr.APlus)
	am := math.Min(fl.AMinus, fr.AMinus)
	trusted := fl.Trusted && fr.Trusted
	maxAbs := math.Max(math.Abs(ap), math.Abs(am))

	var F mhd.Cons
	switch {
	case am >= 0:
		F = fl.F
	case ap <= 0:
		F = fr.F
	default:
		for i := range F {
			F[i] = (ap*fl.F[i] - am*fr.F[i] + ap*am*(ur[i]-ul[i])) / (ap - am)
		}
	}
	return Result{F: F, MaxAbsA: maxAbs, Trusted: trusted}
}

// normalIndex returns the Cons momentum slot aligned with axis
func normalIndex(axis grid.Axis) int {
	switch axis {
	case grid.AxisX:
		return mhd.ISx
	case grid.AxisY:
		return mhd.ISy
	default:
		return mhd.ISz
	}
}

// hllc is a three-wave Riemann solver: it brackets the state with the
// same (a_m, a_p) signal speeds as HLL, estimates a contact speed and
// pressure from the HLL average state, and builds star-region conserved
// states via the standard Rankine-Hugoniot matching across each outer
// wave. It reduces exactly to the HLL flux whenever the bracket is empty
// (a_m >= 0 or a_p <= 0) and shares a single (s_star, p_star) pair
// between the left and right star states, which keeps the mass (and,
// by the same construction, momentum/energy) flux continuous across the
// contact.
func hllc(axis grid.Axis, pl, pr mhd.Prim, cfg mhd.WaveConfig) Result {
	ul := mhd.PrimToConsPoint(pl, cfg.Gamma)
	ur := mhd.PrimToConsPoint(pr, cfg.Gamma)
	fl := mhd.FluxAndEval(ul, pl, axis, cfg)
	fr := mhd.FluxAndEval(ur, pr, axis, cfg)

	ap := math.Max(fl.APlus, fr.APlus)
	am := math.Min(fl.AMinus, fr.AMinus)
	trusted := fl.Trusted && fr.Trusted
	maxAbs := math.Max(math.Abs(ap), math.Abs(am))

	if am >= 0 {
		return Result{F: fl.F, MaxAbsA: maxAbs, Trusted: trusted}
	}
	if ap <= 0 {
		return Result{F: fr.F, MaxAbsA: maxAbs, Trusted: trusted}
	}

	iN := normalIndex(axis)

	var uHLL, fHLL mhd.Cons
	for i := range uHLL {
		uHLL[i] = (ap*ur[i] - am*ul[i] - (fr.F[i] - fl.F[i])) / (ap - am)
		fHLL[i] = (ap*fl.F[i] - am*fr.F[i] + ap*am*(ur[i]-ul[i])) / (ap - am)
	}

	E := uHLL[mhd.ITau] + uHLL[mhd.ID]
	fE := fHLL[mhd.ITau] + fHLL[mhd.ID]
	sStar := contactSpeed(E, fE, uHLL[iN], fHLL[iN])
	pStar := fHLL[iN] - uHLL[iN]*sStar

	var F mhd.Cons
	if sStar >= 0 {
		uStar := starState(ul, fl.F, am, sStar, pStar, iN)
		for i := range F {
			F[i] = fl.F[i] + am*(uStar[i]-ul[i])
		}
	} else {
		uStar := starState(ur, fr.F, ap, sStar, pStar, iN)
		for i := range F {
			F[i] = fr.F[i] + ap*(uStar[i]-ur[i])
		}
	}
	return Result{F: F, MaxAbsA: maxAbs, Trusted: trusted}
}

// contactSpeed solves the quadratic fE·s² - (E+fN)·s + N = 0 for the
// root that stays inside the light-speed cone
func contactSpeed(E, fE, N, fN float64) float64 {
	a, b, c := fE, -(E + fN), N
	if math.Abs(a) < 1e-300 {
		if b == 0 {
			return 0
		}
		return -c / b
	}
	disc := b*b - 4*a*c
	if disc < 0 {
		disc = 0
	}
	sd := math.Sqrt(disc)
	s1 := (-b + sd) / (2 * a)
	s2 := (-b - sd) / (2 * a)
	if math.Abs(s1) <= math.Abs(s2) {
		return s1
	}
	return s2
}

// starState builds the star-region conserved state on one side of the
// contact via U* = (aK·U - F + correction) / (aK - sStar), where the
// normal-momentum slot carries +p_star and the energy-like slot (tau,
// which excludes the rest-mass term D already absorbed by the D slot's
// correction-free relation) carries +p_star·s_star.
func starState(u mhd.Cons, f mhd.Cons, aK, sStar, pStar float64, iN int) mhd.Cons {
	var out mhd.Cons
	denom := aK - sStar
	for i := range out {
		correction := 0.0
		switch i {
		case iN:
			correction = pStar
		case mhd.ITau:
			correction = pStar * sStar
		}
		out[i] = (aK*u[i] - f[i] + correction) / denom
	}
	return out
}
