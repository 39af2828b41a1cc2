// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"strings"

	"github.com/cpmech/gosl/chk"
)

// EnergyMode defines how temperature and energy conservation are handled
type EnergyMode int

const (
	// EnergyDisabled takes the temperature from the problem; no enthalpies are computed
	EnergyDisabled EnergyMode = iota

	// EnergyTemperatureOnly takes the temperature from the problem and computes enthalpies;
	// there is no energy equation
	EnergyTemperatureOnly

	// EnergyFull solves the energy conservation equation with temperature as primary variable
	EnergyFull
)

// String returns the name of the energy mode
func (o EnergyMode) String() string {
	switch o {
	case EnergyDisabled:
		return "disabled"
	case EnergyTemperatureOnly:
		return "temperature"
	case EnergyFull:
		return "full"
	}
	return "unknown"
}

// Thermal tells whether enthalpies must be computed
func (o EnergyMode) Thermal() bool { return o != EnergyDisabled }

// ParseEnergyMode returns the energy mode corresponding to a name
//  Note: an empty name corresponds to "disabled"
func ParseEnergyMode(name string) (EnergyMode, error) {
	switch strings.ToLower(name) {
	case "", "disabled", "off":
		return EnergyDisabled, nil
	case "temperature", "temperature-only":
		return EnergyTemperatureOnly, nil
	case "full", "on":
		return EnergyFull, nil
	}
	return EnergyDisabled, chk.Err("energy mode %q is invalid; options are \"disabled\", \"temperature\" and \"full\"", name)
}

// Indices holds the slots of primary variables and equations
//
//  immiscible (N phases):
//    pv: p (0), S_0 ... S_{N-2} (1 ... N-1), θ (N) if full energy
//    eq: mass of phase 0 ... N-1 (0 ... N-1), energy (N) if full energy
//
//  1p2c:
//    pv: p (0), x1 or X1 (1), θ (2) if full energy
//    eq: total mass (0), mass of component 1 (1), energy (2) if full energy
type Indices struct {
	NumPhases        int // number of fluid phases
	NumComps         int // number of components
	NumEq            int // number of equations per DOF
	NumPv            int // number of primary variables per DOF == NumEq
	Conti0EqIdx      int // first mass conservation equation
	ContiEnergyEqIdx int // energy conservation equation; -1 if none
	PressureIdx      int // pressure primary variable
	SaturationIdx    int // first saturation primary variable; -1 if none
	MoleFracIdx      int // composition primary variable; -1 if none
	TemperatureIdx   int // temperature primary variable; -1 if none
}

// NewIndices returns the slots of primary variables and equations
//  Input:
//   model   -- "immiscible" or "1p2c"
//   nphases -- number of fluid phases
//   mode    -- energy mode
func NewIndices(model string, nphases int, mode EnergyMode) (o Indices, err error) {
	o.SaturationIdx, o.MoleFracIdx, o.TemperatureIdx, o.ContiEnergyEqIdx = -1, -1, -1, -1
	switch model {
	case "immiscible":
		if nphases < 1 {
			return o, chk.Err("immiscible model requires at least one phase. nphases = %d is invalid", nphases)
		}
		o.NumPhases = nphases
		o.NumComps = nphases
		o.NumEq = nphases
		if nphases > 1 {
			o.SaturationIdx = 1
		}
	case "1p2c":
		if nphases != 1 {
			return o, chk.Err("1p2c model requires exactly one phase. nphases = %d is invalid", nphases)
		}
		o.NumPhases = 1
		o.NumComps = 2
		o.NumEq = 2
		o.MoleFracIdx = 1
	default:
		return o, chk.Err("cannot compute indices of model %q; options are \"immiscible\" and \"1p2c\"", model)
	}
	if mode == EnergyFull {
		o.ContiEnergyEqIdx = o.NumEq
		o.TemperatureIdx = o.NumEq
		o.NumEq++
	}
	o.NumPv = o.NumEq
	return
}
