// Copyright 2016 The RMHD Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package eos implements the ideal-gas equation of state relations used
// by the primitive recovery and wavespeed estimators
package eos

// SpecificEnergy returns the specific internal energy e = p / (ρ(Γ-1))
func SpecificEnergy(rho, p, gamma float64) float64 {
	return p / (rho * (gamma - 1.0))
}

// Enthalpy returns the specific enthalpy h = 1 + e + p/ρ
func Enthalpy(rho, p, gamma float64) float64 {
	return 1.0 + SpecificEnergy(rho, p, gamma) + p/rho
}

// SoundSpeedSq returns c_s² = Γp / (p + ρ + ρe)
func SoundSpeedSq(rho, p, gamma float64) float64 {
	e := SpecificEnergy(rho, p, gamma)
	return gamma * p / (p + rho + rho*e)
}
