// Copyright 2016 The RMHD Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ct

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/rmhd/mhd"
)

func Test_ct01(tst *testing.T) {

	chk.PrintTitle("2D constraint transport zeroes the own-axis B flux")

	const ny = 6
	n := ny * ny
	sx, sy := ny, 1

	Fx := make([]mhd.Cons, n)
	Fy := make([]mhd.Cons, n)
	for i := range Fx {
		Fx[i][mhd.IBx] = 1.3
		Fx[i][mhd.IBy] = 0.4
		Fy[i][mhd.IBx] = -0.2
		Fy[i][mhd.IBy] = 0.9
	}

	Apply2D(Fx, Fy, sx, sy)

	lo := 2 * sx
	hi := n - lo
	for i := lo; i < hi; i++ {
		chk.Float64(tst, "Fx[Bx]", 1e-14, Fx[i][mhd.IBx], 0)
		chk.Float64(tst, "Fy[By]", 1e-14, Fy[i][mhd.IBy], 0)
	}
}

func Test_ct02(tst *testing.T) {

	chk.PrintTitle("2D constraint transport is a no-op correction on a uniform EMF field")

	const ny = 6
	n := ny * ny
	sx, sy := ny, 1

	Fx := make([]mhd.Cons, n)
	Fy := make([]mhd.Cons, n)
	for i := range Fx {
		// a uniform z-EMF appears as Fx[By] = -Fy[Bx]
		Fx[i][mhd.IBy] = 0.4
		Fy[i][mhd.IBx] = -0.4
	}

	Apply2D(Fx, Fy, sx, sy)

	lo := 2 * sx
	hi := n - lo
	for i := lo; i < hi; i++ {
		chk.Float64(tst, "uniform Fx[By]", 1e-13, Fx[i][mhd.IBy], 0.4)
		chk.Float64(tst, "uniform Fy[Bx]", 1e-13, Fy[i][mhd.IBx], -0.4)
	}
}

func Test_ct03(tst *testing.T) {

	chk.PrintTitle("DivergenceCorner reads zero on a uniform B field")

	const n = 64
	sx, sy, sz := 16, 4, 1
	U := make([]mhd.Cons, n)
	for i := range U {
		U[i][mhd.IBx], U[i][mhd.IBy], U[i][mhd.IBz] = 0.5, -0.3, 0.1
	}
	dx, dy, dz := 0.1, 0.1, 0.1
	for i := sx + sy + sz; i < n; i++ {
		chk.Float64(tst, "div", 1e-14, DivergenceCorner(U, sx, sy, sz, dx, dy, dz, i), 0)
	}
}
