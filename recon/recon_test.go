// Copyright 2016 The RMHD Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package recon

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/rmhd/limiter"
	"github.com/cpmech/rmhd/mhd"
)

func Test_recon01(tst *testing.T) {

	chk.PrintTitle("piecewise-constant reproduces the cell-centered state")

	var c mhd.Prim
	c[mhd.IRho], c[mhd.IPr] = 1.3, 0.7
	s := Stencil{L: c, C: c, R: c}
	cfg := Config{Mode: PiecewiseConstant}

	pl := RightEdge(cfg, s, UStencil{})
	pr := LeftEdge(cfg, s, UStencil{})
	for i := 0; i < 8; i++ {
		chk.Float64(tst, "right edge", 1e-15, pl[i], c[i])
		chk.Float64(tst, "left edge", 1e-15, pr[i], c[i])
	}
}

func Test_recon02(tst *testing.T) {

	chk.PrintTitle("PLM minmod reproduces a linear profile exactly")

	mk := func(rho float64) mhd.Prim {
		var p mhd.Prim
		p[mhd.IRho] = rho
		return p
	}
	// five-cell linear profile, spacing 1: values -2,-1,0,1,2
	s := Stencil{L: mk(-1), C: mk(0), R: mk(1)}
	cfg := Config{Mode: PLM3Velocity, Limiter: limiter.Minmod, Theta: 2.0}

	right := RightEdge(cfg, s, UStencil{})
	left := LeftEdge(cfg, s, UStencil{})
	chk.Float64(tst, "right edge (x=0.5)", 1e-12, right[mhd.IRho], 0.5)
	chk.Float64(tst, "left edge (x=-0.5)", 1e-12, left[mhd.IRho], -0.5)
}

func Test_recon03(tst *testing.T) {

	chk.PrintTitle("4-velocity reconstruction stays subluminal")

	var c mhd.Prim
	c[mhd.IRho], c[mhd.IPr] = 1, 1
	s := Stencil{L: c, C: c, R: c}
	us := UStencil{L: FourVel{3.9, 0, 0}, C: FourVel{4.0, 0, 0}, R: FourVel{4.1, 0, 0}}
	cfg := Config{Mode: PLM4Velocity, Limiter: limiter.Minmod, Theta: 2.0}

	right := RightEdge(cfg, s, us)
	v2 := right[mhd.IVx]*right[mhd.IVx] + right[mhd.IVy]*right[mhd.IVy] + right[mhd.IVz]*right[mhd.IVz]
	if v2 >= 1 {
		tst.Fatalf("reconstructed velocity is not subluminal: v2=%v", v2)
	}
}
