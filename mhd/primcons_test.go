// Copyright 2016 The RMHD Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mhd

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_roundtrip01(tst *testing.T) {

	chk.PrintTitle("pure hydrodynamic recovery")

	gamma := 5.0 / 3.0
	var p Prim
	p[IRho], p[IPr] = 1, 1
	p[IVx] = 0.3

	u := PrimToConsPoint(p, gamma)
	W := 1 / math.Sqrt(1-0.3*0.3)
	chk.Float64(tst, "D", 1e-10, u[ID], W)

	guess := p
	guess[IVx] = 0 // seed away from the true answer
	cfg := RecoveryConfig{Gamma: gamma}
	got, _, ok := ConsToPrimPoint(u, guess, cfg)
	if !ok {
		tst.Fatalf("recovery failed")
	}
	chk.Float64(tst, "vx", 1e-10, got[IVx], 0.3)
	chk.Float64(tst, "rho", 1e-10, got[IRho], 1.0)
	chk.Float64(tst, "p", 1e-8, got[IPr], 1.0)
}

func Test_roundtrip01b(tst *testing.T) {

	chk.PrintTitle("CheckJacobian cross-checks the analytic Newton Jacobian")

	gamma := 5.0 / 3.0
	var p Prim
	p[IRho], p[IPr] = 1, 1
	p[IVx] = 0.3

	u := PrimToConsPoint(p, gamma)
	guess := p
	guess[IVx] = 0
	cfg := RecoveryConfig{Gamma: gamma, CheckJacobian: true}
	_, _, ok := ConsToPrimPoint(u, guess, cfg)
	if !ok {
		tst.Fatalf("recovery failed")
	}
}

func Test_roundtrip02(tst *testing.T) {

	chk.PrintTitle("magnetized stationary fluid")

	gamma := 5.0 / 3.0
	var p Prim
	p[IRho], p[IPr] = 1, 1
	p[IBx] = 1

	u := PrimToConsPoint(p, gamma)
	chk.Float64(tst, "D", 1e-14, u[ID], 1)
	chk.Float64(tst, "Sx", 1e-14, u[ISx], 0)
	chk.Float64(tst, "Sy", 1e-14, u[ISy], 0)
	chk.Float64(tst, "Sz", 1e-14, u[ISz], 0)

	cfg := RecoveryConfig{Gamma: gamma}
	got, _, ok := ConsToPrimPoint(u, p, cfg)
	if !ok {
		tst.Fatalf("recovery failed")
	}
	chk.Float64(tst, "vx", 1e-9, got[IVx], 0)
	chk.Float64(tst, "Bx", 1e-14, got[IBx], 1)
}

func Test_roundtrip03(tst *testing.T) {

	chk.PrintTitle("round-trip over a grid of physical states")

	gamma := 1.4
	cfg := RecoveryConfig{Gamma: gamma}
	vels := []float64{0, 0.1, 0.3, 0.5, 0.7}
	fields := [][3]float64{{0, 0, 0}, {0.2, -0.1, 0.05}, {1, 0, 0}}
	for _, v := range vels {
		for _, B := range fields {
			var p Prim
			p[IRho], p[IPr] = 1.2, 0.8
			p[IVx], p[IVy], p[IVz] = v, 0.1*v, 0
			p[IBx], p[IBy], p[IBz] = B[0], B[1], B[2]

			v2 := p[IVx]*p[IVx] + p[IVy]*p[IVy] + p[IVz]*p[IVz]
			if v2 >= 0.99 {
				continue
			}
			u := PrimToConsPoint(p, gamma)
			got, _, ok := ConsToPrimPoint(u, p, cfg)
			if !ok {
				tst.Fatalf("recovery failed for v=%v B=%v", v, B)
			}
			for i := 0; i < 8; i++ {
				if math.Abs(p[i]) > 1e-12 {
					chk.Float64(tst, "slot", 1e-8, got[i]/p[i], 1.0)
				} else {
					chk.Float64(tst, "slot", 1e-8, got[i], p[i])
				}
			}
		}
	}
}

func Test_idempotence01(tst *testing.T) {

	chk.PrintTitle("cons_to_prim is idempotent on its own output")

	gamma := 1.4
	var p Prim
	p[IRho], p[IPr] = 1, 1
	p[IVx] = 0.4
	p[IBx], p[IBy] = 0.5, 0.25

	u := PrimToConsPoint(p, gamma)
	cfg := RecoveryConfig{Gamma: gamma}

	first, _, ok1 := ConsToPrimPoint(u, p, cfg)
	if !ok1 {
		tst.Fatalf("first recovery failed")
	}
	second, _, ok2 := ConsToPrimPoint(u, first, cfg)
	if !ok2 {
		tst.Fatalf("second recovery failed")
	}
	for i := 0; i < 8; i++ {
		chk.Float64(tst, "idempotent slot", 1e-12, second[i], first[i])
	}
}

func Test_highLorentz01(tst *testing.T) {

	chk.PrintTitle("4-velocity high-Lorentz round trip")

	gamma := 5.0 / 3.0
	ux := 4.0
	W := math.Sqrt(1 + ux*ux)
	vx := ux / W

	var p Prim
	p[IRho], p[IPr] = 1, 1
	p[IVx] = vx

	u := PrimToConsPoint(p, gamma)
	cfg := RecoveryConfig{Gamma: gamma, UseEstimate: true}
	got, res, ok := ConsToPrimPoint(u, p, cfg)
	if !ok {
		tst.Fatalf("recovery failed")
	}
	chk.Float64(tst, "vx", 1e-8, got[IVx], vx)
	if res.Iterations > 12 {
		tst.Fatalf("expected convergence within 12 iterations, got %d", res.Iterations)
	}
}
