// Copyright 2016 The RMHD Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mhd

// RecoveryReport is the structured outcome of an array-wide cons-to-prim
// pass: a failure count plus the flat index of the first failing cell,
// rather than a bare sum (Design Notes §9).
type RecoveryReport struct {
	Failures   int
	FirstBad   int
	HadFailure bool
}

// ConsToPrimArray recovers primitives for every cell, seeding each
// Newton solve from the corresponding entry of guess (the previous
// primitive state, typically the Alive context's cache). ws, if
// non-nil, receives the cached Lorentz factor per cell for the
// 4-velocity reconstruction path.
func ConsToPrimArray(u []Cons, guess []Prim, cfg RecoveryConfig, out []Prim, ws []float64) RecoveryReport {
	var rep RecoveryReport
	for i := range u {
		p, res, ok := ConsToPrimPoint(u[i], guess[i], cfg)
		if !ok {
			rep.Failures++
			if !rep.HadFailure {
				rep.FirstBad = i
				rep.HadFailure = true
			}
			out[i] = guess[i]
			continue
		}
		out[i] = p
		if ws != nil {
			ws[i] = res.W
		}
	}
	return rep
}
