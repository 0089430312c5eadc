// Copyright 2016 The RMHD Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solver

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

func Test_config01(tst *testing.T) {

	chk.PrintTitle("FromParams overrides only the named scalars")

	cfg := FromParams(fun.Prms{
		&fun.Prm{N: "gam", V: 2.0},
		&fun.Prm{N: "theta", V: 1.0},
		&fun.Prm{N: "estimate", V: 1},
	})
	chk.Float64(tst, "gamma", 1e-15, cfg.Gamma, 2.0)
	chk.Float64(tst, "theta", 1e-15, cfg.Theta, 1.0)
	if !cfg.UseEstimate {
		tst.Fatalf("expected UseEstimate to be set")
	}
	if cfg.Reconstruction != PLM3Velocity {
		tst.Fatalf("expected unspecified fields to keep their default")
	}
}

func Test_config02(tst *testing.T) {

	chk.PrintTitle("DefaultConfig matches the spec's scalar defaults")

	cfg := DefaultConfig()
	chk.Float64(tst, "gamma", 1e-15, cfg.Gamma, 1.4)
	chk.Float64(tst, "theta", 1e-15, cfg.Theta, 2.0)
	if cfg.CheckJacobian {
		tst.Fatalf("expected CheckJacobian to default to false")
	}
}

func Test_config03(tst *testing.T) {

	chk.PrintTitle("FromParams reads checkjacobian")

	cfg := FromParams(fun.Prms{
		&fun.Prm{N: "checkjacobian", V: 1},
	})
	if !cfg.CheckJacobian {
		tst.Fatalf("expected CheckJacobian to be set")
	}
}
