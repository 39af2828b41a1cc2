// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fluid

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/vkip/opm-models/ad"
)

// Phase implements a reference law for the density, viscosity and enthalpy of one fluid phase.
// The model is:
//
//   liquid: ρ(p,θ) = [R0 + C・(p - P0)]・[1 - Beta・(θ - T0)]
//   gas:    ρ(p,θ) = [R0 + C・(p - P0)]・T0 / θ
//
//   μ(θ) = Mu・exp(-Emu・(θ - T0))
//   h(p,θ) = Cp・(θ - T0) + p/ρ   thus   u = h - p/ρ = Cp・(θ - T0)
type Phase struct {
	R0   float64 // intrinsic density corresponding to (P0,T0)
	P0   float64 // pressure corresponding to R0
	C    float64 // compressibility coefficient; e.g. R0/Kbulk or M/(R・T0)
	T0   float64 // reference temperature
	Beta float64 // volumetric thermal expansion coefficient (liquid only)
	Mu   float64 // dynamic viscosity at T0
	Emu  float64 // exponential decay of viscosity with temperature
	Cp   float64 // specific heat capacity
	Gas  bool    // is gas instead of liquid?
}

// Init initialises this structure
//  Input:
//   prms   -- parameters
//   suffix -- suffix appended to the parameter names; e.g. "_1" to read "R0_1", "C_1", ...
func (o *Phase) Init(prms dbf.Params, suffix string) (err error) {
	for _, p := range prms {
		switch p.N {
		case "R0" + suffix:
			o.R0 = p.V
		case "P0" + suffix:
			o.P0 = p.V
		case "C" + suffix:
			o.C = p.V
		case "T0" + suffix:
			o.T0 = p.V
		case "Beta" + suffix:
			o.Beta = p.V
		case "Mu" + suffix:
			o.Mu = p.V
		case "Emu" + suffix:
			o.Emu = p.V
		case "Cp" + suffix:
			o.Cp = p.V
		case "gas" + suffix:
			o.Gas = p.V > 0
		}
	}
	if o.R0 <= 0 {
		return chk.Err("reference density R0%s must be positive. R0%s = %g is invalid", suffix, suffix, o.R0)
	}
	if o.Mu <= 0 {
		return chk.Err("viscosity Mu%s must be positive. Mu%s = %g is invalid", suffix, suffix, o.Mu)
	}
	if o.Gas && o.T0 <= 0 {
		return chk.Err("reference temperature T0%s of gas must be positive. T0%s = %g is invalid", suffix, suffix, o.T0)
	}
	return
}

// GetPrms gets (an example of) parameters
//  Input:
//   example -- returns example of parameters; othewise returs current parameters
//   suffix  -- suffix appended to the parameter names
//  Note:
//   Gas variable is used to return dry air properties instead of water
func (o Phase) GetPrms(example bool, suffix string) dbf.Params {
	if example {
		if o.Gas {
			return dbf.Params{ // dry air
				&dbf.P{N: "R0" + suffix, V: 1.2},    // [kg/m³]
				&dbf.P{N: "P0" + suffix, V: 1e5},    // [Pa]
				&dbf.P{N: "C" + suffix, V: 1.2e-5},  // [kg/(m³・Pa)]
				&dbf.P{N: "T0" + suffix, V: 293.15}, // [K]
				&dbf.P{N: "Beta" + suffix, V: 0},    // [1/K]
				&dbf.P{N: "Mu" + suffix, V: 1.8e-5}, // [Pa・s]
				&dbf.P{N: "Emu" + suffix, V: 0},     // [1/K]
				&dbf.P{N: "Cp" + suffix, V: 1005},   // [J/(kg・K)]
				&dbf.P{N: "gas" + suffix, V: 1},     // [-]
			}
		}
		return dbf.Params{ // water
			&dbf.P{N: "R0" + suffix, V: 1000},     // [kg/m³]
			&dbf.P{N: "P0" + suffix, V: 1e5},      // [Pa]
			&dbf.P{N: "C" + suffix, V: 4.5e-7},    // [kg/(m³・Pa)]
			&dbf.P{N: "T0" + suffix, V: 293.15},   // [K]
			&dbf.P{N: "Beta" + suffix, V: 2.1e-4}, // [1/K]
			&dbf.P{N: "Mu" + suffix, V: 1e-3},     // [Pa・s]
			&dbf.P{N: "Emu" + suffix, V: 0.02},    // [1/K]
			&dbf.P{N: "Cp" + suffix, V: 4184},     // [J/(kg・K)]
			&dbf.P{N: "gas" + suffix, V: 0},       // [-]
		}
	}
	var gas float64
	if o.Gas {
		gas = 1
	}
	return dbf.Params{
		&dbf.P{N: "R0" + suffix, V: o.R0},
		&dbf.P{N: "P0" + suffix, V: o.P0},
		&dbf.P{N: "C" + suffix, V: o.C},
		&dbf.P{N: "T0" + suffix, V: o.T0},
		&dbf.P{N: "Beta" + suffix, V: o.Beta},
		&dbf.P{N: "Mu" + suffix, V: o.Mu},
		&dbf.P{N: "Emu" + suffix, V: o.Emu},
		&dbf.P{N: "Cp" + suffix, V: o.Cp},
		&dbf.P{N: "gas" + suffix, V: gas},
	}
}

// Density computes ρ(p,θ)
func (o Phase) Density(p, T ad.Evaluation) (R ad.Evaluation, err error) {
	if p.Value < 0 {
		return R, chk.Err("cannot compute density with negative pressure p = %g", p.Value)
	}
	R = p.AddScalar(-o.P0).Scale(o.C).AddScalar(o.R0)
	if o.Gas {
		if T.Value <= 0 {
			return R, chk.Err("cannot compute gas density with non-positive temperature T = %g", T.Value)
		}
		R = R.Scale(o.T0).Div(T)
	} else {
		R = R.Mul(T.AddScalar(-o.T0).Scale(-o.Beta).AddScalar(1))
	}
	if R.Value <= 0 {
		return R, chk.Err("density became non-positive: ρ = %g at p = %g and T = %g", R.Value, p.Value, T.Value)
	}
	return
}

// Viscosity computes μ(θ)
func (o Phase) Viscosity(T ad.Evaluation) ad.Evaluation {
	if o.Emu == 0 {
		return ad.Constant(o.Mu)
	}
	return ad.Exp(T.AddScalar(-o.T0).Scale(-o.Emu)).Scale(o.Mu)
}

// Enthalpy computes h(p,θ) given the density R = ρ(p,θ)
func (o Phase) Enthalpy(p, T, R ad.Evaluation) ad.Evaluation {
	return T.AddScalar(-o.T0).Scale(o.Cp).Add(p.Div(R))
}
