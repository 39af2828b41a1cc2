// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fluid

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/vkip/opm-models/ad"
	"github.com/vkip/opm-models/mdl/diffusion"
)

// Brine implements a single liquid phase made of a solvent (component 0) and a dissolved
// component (component 1); e.g. water and salt, or water and a tracer.
//
//   ρ = ρ_w(p,θ)・(1 + Xi・X1)
//
//  where ρ_w is the density of the solvent and X1 the mass fraction of the solute
type Brine struct {
	Water Phase           // law of the solvent
	M0    float64         // molar mass of solvent
	M1    float64         // molar mass of solute
	Xi    float64         // density increase per unit mass fraction of solute
	Diff  diffusion.Model // molecular diffusion of solute; default = constant
}

// add model to factory
func init() {
	allocators["1p2c-brine"] = func() System { return new(Brine) }
}

// Name returns the name of this fluid system
func (o *Brine) Name() string { return "1p2c-brine" }

// Init initialises this structure
func (o *Brine) Init(prms dbf.Params) (err error) {
	err = o.Water.Init(prms, "")
	if err != nil {
		return
	}
	o.M0, o.M1 = 0.018015, 0.05844
	for _, p := range prms {
		switch p.N {
		case "M0":
			o.M0 = p.V
		case "M1":
			o.M1 = p.V
		case "Xi":
			o.Xi = p.V
		}
	}
	if o.M0 <= 0 || o.M1 <= 0 {
		return chk.Err("molar masses must be positive. M0 = %g and M1 = %g are invalid", o.M0, o.M1)
	}
	if o.Diff == nil {
		o.Diff = new(diffusion.Constant)
		return o.Diff.Init(prms)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o *Brine) GetPrms(example bool) (prms dbf.Params) {
	prms = o.Water.GetPrms(example, "")
	if example {
		prms = append(prms,
			&dbf.P{N: "M0", V: 0.018015}, // [kg/mol]
			&dbf.P{N: "M1", V: 0.05844},  // [kg/mol]
			&dbf.P{N: "Xi", V: 0},        // [-]
		)
		var dif diffusion.Constant
		return append(prms, dif.GetPrms(true)...)
	}
	prms = append(prms,
		&dbf.P{N: "M0", V: o.M0},
		&dbf.P{N: "M1", V: o.M1},
		&dbf.P{N: "Xi", V: o.Xi},
	)
	if o.Diff != nil {
		prms = append(prms, o.Diff.GetPrms(false)...)
	}
	return
}

// NumPhases returns 1
func (o *Brine) NumPhases() int { return 1 }

// NumComponents returns 2
func (o *Brine) NumComponents() int { return 2 }

// PhaseIsActive tells whether the phase exists
func (o *Brine) PhaseIsActive(phaseIdx int) bool { return phaseIdx == 0 }

// MolarMass returns the molar mass of a component
func (o *Brine) MolarMass(compIdx int) float64 {
	if compIdx == 0 {
		return o.M0
	}
	return o.M1
}

// Density computes ρ
func (o *Brine) Density(fs *State, phaseIdx int) (R ad.Evaluation, err error) {
	R, err = o.Water.Density(fs.Pressure(0), fs.Temperature())
	if err != nil || o.Xi == 0 {
		return
	}
	return R.Mul(fs.MassFraction(0, 1).Scale(o.Xi).AddScalar(1)), nil
}

// Viscosity computes μ
func (o *Brine) Viscosity(fs *State, phaseIdx int) (ad.Evaluation, error) {
	return o.Water.Viscosity(fs.Temperature()), nil
}

// Enthalpy computes h
func (o *Brine) Enthalpy(fs *State, phaseIdx int) (h ad.Evaluation, err error) {
	R, err := o.Density(fs, phaseIdx)
	if err != nil {
		return
	}
	return o.Water.Enthalpy(fs.Pressure(0), fs.Temperature(), R), nil
}

// BinaryDiffusionCoefficient returns the diffusion coefficient of the solute in the solvent
func (o *Brine) BinaryDiffusionCoefficient(fs *State, phaseIdx, comp0, comp1 int) (D ad.Evaluation, err error) {
	if comp0 == comp1 {
		return D, chk.Err("binary diffusion coefficient requires two distinct components. %d == %d", comp0, comp1)
	}
	return o.Diff.Coefficient(fs.Pressure(0), fs.Temperature()), nil
}
