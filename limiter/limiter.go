// Copyright 2016 The RMHD Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package limiter implements the slope limiters used by the PLM
// reconstruction to turn a three-cell stencil (uL, u0, uR) into a
// single limited slope
package limiter

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// Kind selects the limiter variant; the zero value is Minmod
type Kind int

const (
	Minmod Kind = iota
	MonotonizedCentral
	HarmonicMean
)

// Apply evaluates the selected limiter on the stencil (uL, u0, uR) with
// steepening parameter theta (used only by Minmod)
func Apply(kind Kind, uL, u0, uR, theta float64) float64 {
	switch kind {
	case Minmod:
		return minmod(uL, u0, uR, theta)
	case MonotonizedCentral:
		return monotonizedCentral(uL, u0, uR)
	case HarmonicMean:
		return harmonicMean(uL, u0, uR)
	default:
		chk.Panic("limiter: unknown kind tag %d", kind)
		return 0
	}
}

// minmod is the θ-weighted minmod limiter:
//
//	a = θ(u0-uL), b = ½(uR-uL), c = θ(uR-u0)
//	¼|sgn(a)+sgn(b)|·(sgn(a)+sgn(c))·min(|a|,|b|,|c|)
func minmod(uL, u0, uR, theta float64) float64 {
	a := theta * (u0 - uL)
	b := 0.5 * (uR - uL)
	c := theta * (uR - u0)
	sa, sb, sc := fun.Sign(a), fun.Sign(b), fun.Sign(c)
	return 0.25 * math.Abs(sa+sb) * (sa + sc) * min3(math.Abs(a), math.Abs(b), math.Abs(c))
}

// monotonizedCentral: s = ½(sgn(uR-u0)+sgn(u0-uL)); s·min(2|uR-u0|,2|u0-uL|,½|uR-uL|)
func monotonizedCentral(uL, u0, uR float64) float64 {
	s := 0.5 * (fun.Sign(uR-u0) + fun.Sign(u0-uL))
	return s * min3(2*math.Abs(uR-u0), 2*math.Abs(u0-uL), 0.5*math.Abs(uR-uL))
}

// harmonicMean: 2·max(0,(uR-u0)(u0-uL)) / ((uR-u0)+(u0-uL))
func harmonicMean(uL, u0, uR float64) float64 {
	dR := uR - u0
	dL := u0 - uL
	denom := dR + dL
	if denom == 0 {
		return 0
	}
	return 2 * math.Max(0, dR*dL) / denom
}

func min3(a, b, c float64) float64 {
	return math.Min(a, math.Min(b, c))
}
