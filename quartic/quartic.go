// Copyright 2016 The RMHD Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package quartic finds the real roots of a real quartic polynomial
//
//	A4 x⁴ + A3 x³ + A2 x² + A1 x + A0 = 0
//
// via a Ferrari-style closed-form reduction (Mode Exact) or via a fixed
// number of Newton-deflation steps seeded at ±1 (Modes Approx1 and
// Approx2). Unlike a stateful solver object that is first configured
// with the coefficients and then read back, Solve is a pure function:
// it takes the coefficients and returns the roots directly.
package quartic

import "math"

// Mode selects the root-finding strategy
type Mode int

const (
	Exact   Mode = iota // Ferrari-style closed form
	Approx1             // Newton/deflation seeded at x = +1
	Approx2             // Newton/deflation seeded at x = -1
	None                // skip root finding entirely
)

// Roots holds up to four real roots found for a quartic, split into the
// two conjugate pairs produced by the solver's reduction. NReal12 and
// NReal34 count how many of each pair are real (0 or 2).
type Roots struct {
	R1, R2, R3, R4   float64
	NReal12, NReal34 int
}

// Max returns the largest real root found, or 0 if none are real
func (r Roots) Max() float64 { return r.extreme(func(a, b float64) bool { return a > b }) }

// Min returns the smallest real root found, or 0 if none are real
func (r Roots) Min() float64 { return r.extreme(func(a, b float64) bool { return a < b }) }

func (r Roots) extreme(better func(a, b float64) bool) float64 {
	m, any := 0.0, false
	consider := func(x float64, real bool) {
		if real && (!any || better(x, m)) {
			m, any = x, true
		}
	}
	consider(r.R1, r.NReal12 > 0)
	consider(r.R2, r.NReal12 > 0)
	consider(r.R3, r.NReal34 > 0)
	consider(r.R4, r.NReal34 > 0)
	return m
}

// Any reports whether at least one real root was found
func (r Roots) Any() bool {
	return r.NReal12 > 0 || r.NReal34 > 0
}

// Solve finds the real roots of A4 x⁴ + A3 x³ + A2 x² + A1 x + A0 = 0
// using the strategy selected by mode. A4 must be non-zero.
func Solve(mode Mode, a4, a3, a2, a1, a0 float64) Roots {
	switch mode {
	case None:
		return Roots{}
	case Approx1:
		return approxDeflate(a4, a3, a2, a1, a0, +1)
	case Approx2:
		return approxDeflate(a4, a3, a2, a1, a0, -1)
	default:
		return exact(a4, a3, a2, a1, a0)
	}
}

// approxDeflate finds one real root near seed by Newton iteration on the
// normalized quartic, deflates to a cubic, repeats to a quadratic, and
// solves the quadratic in closed form. Four Newton steps are enough for
// the wavespeed estimate: the physically relevant roots sit close to the
// seeds ±1 because |λ| ≤ 1 is enforced by the caller regardless.
func approxDeflate(a4, a3, a2, a1, a0, seed float64) Roots {
	c := []float64{a0 / a4, a1 / a4, a2 / a4, a3 / a4, 1} // ascending powers, monic

	x1 := newtonRoot(c, seed, 4)
	c3 := deflate(c, x1)

	x2 := newtonRoot(c3, seed, 4)
	c2 := deflate(c3, x2) // quadratic: c2[0] + c2[1] x + c2[2] x²

	disc := c2[1]*c2[1] - 4*c2[2]*c2[0]
	var r3, r4 float64
	n34 := 0
	if disc >= 0 {
		sd := math.Sqrt(disc)
		r3 = (-c2[1] + sd) / (2 * c2[2])
		r4 = (-c2[1] - sd) / (2 * c2[2])
		n34 = 2
	}

	return Roots{R1: x1, R2: x2, NReal12: 2, R3: r3, R4: r4, NReal34: n34}
}

// polyEval evaluates a monic-or-not polynomial given ascending coefficients
func polyEval(c []float64, x float64) float64 {
	v := 0.0
	for i := len(c) - 1; i >= 0; i-- {
		v = v*x + c[i]
	}
	return v
}

// polyDeriv evaluates the derivative of the polynomial at x
func polyDeriv(c []float64, x float64) float64 {
	v := 0.0
	for i := len(c) - 1; i >= 1; i-- {
		v = v*x + float64(i)*c[i]
	}
	return v
}

// newtonRoot runs n fixed Newton steps from x0
func newtonRoot(c []float64, x0 float64, n int) float64 {
	x := x0
	for i := 0; i < n; i++ {
		d := polyDeriv(c, x)
		if d == 0 {
			break
		}
		x -= polyEval(c, x) / d
	}
	return x
}

// deflate divides the polynomial (ascending coefficients) by (x - root)
// via synthetic division, returning the quotient (one degree lower)
func deflate(c []float64, root float64) []float64 {
	n := len(c) - 1
	out := make([]float64, n)
	out[n-1] = c[n]
	for i := n - 2; i >= 0; i-- {
		out[i] = c[i+1] + root*out[i+1]
	}
	return out
}

// exact solves the quartic via Ferrari's method: depress to
// y⁴ + p y² + q y + r = 0 (y = x + b3/4), solve the resolvent cubic to
// get a factorization into two quadratics, then solve each quadratic.
func exact(a4, a3, a2, a1, a0 float64) Roots {
	b3, b2, b1, b0 := a3/a4, a2/a4, a1/a4, a0/a4

	shift := b3 / 4
	p := b2 - 3*b3*b3/8
	q := b1 - b2*b3/2 + b3*b3*b3/8
	r := b0 - b1*b3/4 + b2*b3*b3/16 - 3*b3*b3*b3*b3/256

	if math.Abs(q) < 1e-14 {
		return biquadratic(p, r, shift)
	}

	m := resolventRoot(p, q, r)
	if m <= 0 {
		m = math.Abs(m) + 1e-12
	}
	sq2m := math.Sqrt(2 * m)

	qa := p/2 + m - q/(2*sq2m)
	qb := p/2 + m + q/(2*sq2m)

	r1, r2, n12 := solveShiftedQuadratic(1, sq2m, qa, shift)
	r3, r4, n34 := solveShiftedQuadratic(1, -sq2m, qb, shift)

	return Roots{R1: r1, R2: r2, R3: r3, R4: r4, NReal12: n12, NReal34: n34}
}

// biquadratic handles the q ≈ 0 special case of the depressed quartic
func biquadratic(p, r, shift float64) Roots {
	disc := p*p - 4*r
	if disc < 0 {
		return Roots{}
	}
	sd := math.Sqrt(disc)
	z1 := (-p + sd) / 2
	z2 := (-p - sd) / 2
	var r1, r2, r3, r4 float64
	n12, n34 := 0, 0
	if z1 >= 0 {
		sy := math.Sqrt(z1)
		r1, r2 = sy-shift, -sy-shift
		n12 = 2
	}
	if z2 >= 0 {
		sy := math.Sqrt(z2)
		r3, r4 = sy-shift, -sy-shift
		n34 = 2
	}
	return Roots{R1: r1, R2: r2, R3: r3, R4: r4, NReal12: n12, NReal34: n34}
}

// solveShiftedQuadratic solves a y² + b y + c = 0 and shifts the roots
// by -shift to undo the depression x = y - shift
func solveShiftedQuadratic(a, b, c, shift float64) (x1, x2 float64, n int) {
	disc := b*b - 4*a*c
	if disc < 0 {
		return 0, 0, 0
	}
	sd := math.Sqrt(disc)
	x1 = (-b+sd)/(2*a) - shift
	x2 = (-b-sd)/(2*a) - shift
	return x1, x2, 2
}

// resolventRoot finds a real root of the resolvent cubic
//
//	8 m³ + 8 p m² + (2p² - 8r) m - q² = 0
//
// via Cardano's formula on the normalized cubic m³ + Bm² + Cm + D = 0.
func resolventRoot(p, q, r float64) float64 {
	B := p
	C := (p*p - 4*r) / 4
	D := -q * q / 8

	sh := B / 3
	cp := C - B*B/3
	cq := D - B*C/3 + 2*B*B*B/27

	disc := cq*cq/4 + cp*cp*cp/27
	if disc >= 0 {
		sd := math.Sqrt(disc)
		u := cbrt(-cq/2 + sd)
		v := cbrt(-cq/2 - sd)
		return u + v - sh
	}
	rho := math.Sqrt(-cp * cp * cp / 27)
	theta := math.Acos(clamp(-cq/(2*rho), -1, 1))
	t := 2 * math.Cbrt(rho) * math.Cos(theta/3)
	return t - sh
}

func cbrt(x float64) float64 {
	if x < 0 {
		return -math.Cbrt(-x)
	}
	return math.Cbrt(x)
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
