// Copyright 2016 The RMHD Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mhd

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/num"
	"github.com/cpmech/rmhd/eos"
)

// maxNewtonIters is the per-attempt Newton iteration cap (spec: 25)
const maxNewtonIters = 25

// RecoveryConfig parameterizes the conserved-to-primitive Newton solve
type RecoveryConfig struct {
	Gamma         float64 // adiabatic index
	UseEstimate   bool    // seed W,Z from the S²/D² estimate instead of the guess primitive
	Verbose       bool    // print per-cell diagnostics on failure
	CheckJacobian bool    // cross-check the analytic Newton Jacobian against num.DerivCen on the first iteration
}

// RecoveryResult carries the side information produced by a successful
// (or failed) conserved-to-primitive recovery
type RecoveryResult struct {
	W            float64 // cached Lorentz factor; feeds the 4-velocity reconstruction path
	Iterations   int     // total Newton iterations spent across attempts
	FloorEngaged bool    // whether the pressure floor fallback was used
}

// ConsToPrimPoint inverts U -> P via the two-dimensional Newton
// iteration of the unknowns Z = ρhW² and W, with pressure-floor fallback
// and a bounded iteration count. guess seeds the iteration when
// cfg.UseEstimate is false.
func ConsToPrimPoint(u Cons, guess Prim, cfg RecoveryConfig) (p Prim, res RecoveryResult, ok bool) {
	D, tau := u[ID], u[ITau]
	Sx, Sy, Sz := u[ISx], u[ISy], u[ISz]
	Bx, By, Bz := u[IBx], u[IBy], u[IBz]
	S2 := Sx*Sx + Sy*Sy + Sz*Sz
	B2 := Bx*Bx + By*By + Bz*Bz
	BS := Bx*Sx + By*Sy + Bz*Sz

	var Z0, W0 float64
	if cfg.UseEstimate {
		W0 = math.Sqrt(S2/(D*D) + 1)
		Z0 = D * W0
	} else {
		v2 := guess[IVx]*guess[IVx] + guess[IVy]*guess[IVy] + guess[IVz]*guess[IVz]
		W0 = 1 / math.Sqrt(1-v2)
		h0 := eos.Enthalpy(guess[IRho], guess[IPr], cfg.Gamma)
		Z0 = guess[IRho] * h0 * W0 * W0
	}

	var Z, W float64
	var converged bool
	var iters, total int
	floorEngaged := false

	for attempt := 0; attempt < 2; attempt++ {
		Z, W, converged, iters = newtonRecover(Z0, W0, D, S2, B2, BS, tau, cfg.Gamma, floorEngaged, cfg.CheckJacobian, cfg.Verbose)
		total += iters
		if !converged {
			if floorEngaged {
				if cfg.Verbose {
					io.Pfred("mhd: cons_to_prim failed after floor fallback (D=%g tau=%g)\n", D, tau)
				}
				return Prim{}, RecoveryResult{Iterations: total}, false
			}
			floorEngaged = true
			continue
		}
		pr := pressureFromZW(Z, W, D, cfg.Gamma)
		if pr < PFloor && !floorEngaged {
			floorEngaged = true
			continue
		}
		break
	}
	if !converged {
		return Prim{}, RecoveryResult{Iterations: total}, false
	}

	rho := D / W
	pr := PFloor
	if !floorEngaged {
		pr = pressureFromZW(Z, W, D, cfg.Gamma)
	}
	b0 := BS * W / Z
	denom := Z + B2
	var out Prim
	out[IRho] = rho
	out[IPr] = pr
	out[IVx] = (Sx + b0*Bx/W) / denom
	out[IVy] = (Sy + b0*By/W) / denom
	out[IVz] = (Sz + b0*Bz/W) / denom
	out[IBx], out[IBy], out[IBz] = Bx, By, Bz

	return out, RecoveryResult{W: W, Iterations: total, FloorEngaged: floorEngaged}, true
}

// pressureFromZW recovers p = (D/W)(Z/(DW) - 1)(Γ-1)/Γ
func pressureFromZW(Z, W, D, gamma float64) float64 {
	return (D / W) * (Z/(D*W) - 1) * (gamma - 1) / gamma
}

// residuals evaluates (f1, f2) of spec §4.3 at the current (Z, W)
// iterate. It is also the function num.DerivCen differentiates when
// checkNewtonJacobian cross-checks the analytic Jacobian.
func residuals(Z, W, D, S2, B2, BS, tau, gamma float64, floorEngaged bool) (f1, f2 float64) {
	var pr float64
	if floorEngaged {
		pr = PFloor
	} else {
		pr = pressureFromZW(Z, W, D, gamma)
	}
	W2 := W * W
	Z2 := Z * Z
	f1 = -S2 + (Z+B2)*(Z+B2)*(W2-1)/W2 - (2*Z+B2)*BS*BS/Z2
	f2 = -tau + Z + B2 - pr - 0.5*B2/W2 - 0.5*BS*BS/Z2 - D
	return
}

// checkNewtonJacobian numerically differentiates residuals at (Z, W)
// with gosl/num.DerivCen and reports the analytic-vs-numeric mismatch
// through chk.PrintAnaNum, mirroring the CheckD path of the material
// models' Newton drivers.
func checkNewtonJacobian(Z, W, D, S2, B2, BS, tau, gamma float64, floorEngaged bool, a, b, c, d float64, verbose bool) {
	dNumF1dZ := num.DerivCen(func(x float64, args ...interface{}) (res float64) {
		res, _ = residuals(x, W, D, S2, B2, BS, tau, gamma, floorEngaged)
		return
	}, Z)
	dNumF1dW := num.DerivCen(func(x float64, args ...interface{}) (res float64) {
		res, _ = residuals(Z, x, D, S2, B2, BS, tau, gamma, floorEngaged)
		return
	}, W)
	dNumF2dZ := num.DerivCen(func(x float64, args ...interface{}) (res float64) {
		_, res = residuals(x, W, D, S2, B2, BS, tau, gamma, floorEngaged)
		return
	}, Z)
	dNumF2dW := num.DerivCen(func(x float64, args ...interface{}) (res float64) {
		_, res = residuals(Z, x, D, S2, B2, BS, tau, gamma, floorEngaged)
		return
	}, W)
	tol := 1e-6
	chk.PrintAnaNum(io.Sf("df%d/dZ", 1), tol, a, dNumF1dZ, verbose)
	chk.PrintAnaNum(io.Sf("df%d/dW", 1), tol, b, dNumF1dW, verbose)
	chk.PrintAnaNum(io.Sf("df%d/dZ", 2), tol, c, dNumF2dZ, verbose)
	chk.PrintAnaNum(io.Sf("df%d/dW", 2), tol, d, dNumF2dW, verbose)
}

// newtonRecover runs up to maxNewtonIters Newton steps on (f1, f2) with
// the analytic Jacobian of spec §4.3, starting from (Z0, W0). When
// floorEngaged is true, p is held fixed at PFloor in f2 rather than
// recomputed from (Z, W) each step. When checkJacobian is set, the
// first iteration's analytic Jacobian entries are cross-checked against
// num.DerivCen before the step is taken.
func newtonRecover(Z0, W0, D, S2, B2, BS, tau, gamma float64, floorEngaged, checkJacobian, verbose bool) (Z, W float64, converged bool, iters int) {
	Z, W = Z0, W0
	for it := 1; it <= maxNewtonIters; it++ {
		f1, f2 := residuals(Z, W, D, S2, B2, BS, tau, gamma, floorEngaged)

		W2 := W * W
		Z2 := Z * Z

		a := 2 * (B2 + Z) * (BS*BS*W2 + (W2-1)*Z*Z2) / (W2 * Z * Z2)
		b := 2 * (B2 + Z) * (B2 + Z) / (W * W2)
		c := 1 + BS*BS/(Z*Z2) - (gamma-1)/(gamma*W2)
		d := B2/(W*W2) + (2*Z-D*W)*(gamma-1)/(gamma*W*W2)

		if checkJacobian && it == 1 {
			checkNewtonJacobian(Z, W, D, S2, B2, BS, tau, gamma, floorEngaged, a, b, c, d, verbose)
		}

		det := a*d - b*c
		dZ := (-d*f1 + b*f2) / det
		dW := (c*f1 - a*f2) / det

		Znew := Z + dZ
		Wnew := W + dW
		if Znew <= 0 {
			Znew = -Znew
		}
		if Znew >= 1e20 {
			Znew = Z
		}
		if Wnew < 1 {
			Wnew = 1
		}
		if Wnew > 1e12 {
			Wnew = 1e12
		}

		conv := math.Abs(dZ/Z)+math.Abs(dW/W) < 1e-6
		Z, W = Znew, Wnew
		if conv {
			return Z, W, true, it
		}
	}
	return Z, W, false, maxNewtonIters
}
