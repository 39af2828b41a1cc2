// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package conduct

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/vkip/opm-models/ad"
	"github.com/vkip/opm-models/mdl/fluid"
)

// Constant implements λ = lam
type Constant struct {
	Lam float64
}

// Somerton implements the relation of Somerton et al. (1974)
//
//   λ = λdry + √Sw・(λsat - λdry)
//
//  where Sw is the saturation of the wetting phase, clamped to [0, 1]
type Somerton struct {
	LamDry  float64 // conductivity of the dry medium
	LamSat  float64 // conductivity of the fully saturated medium
	Wet     int     // index of the wetting phase
	Nphases int     // number of fluid phases
}

// Parallel implements the arithmetic mean of solid and fluid conductivities
//
//   λ = nf・Σ S_α・λf  +  (1 - nf)・λs
//
type Parallel struct {
	LamF float64 // conductivity of the fluids
	LamS float64 // conductivity of the solids
}

// add models to factory
func init() {
	allocators["constant"] = func() Model { return new(Constant) }
	allocators["somerton"] = func() Model { return new(Somerton) }
	allocators["parallel"] = func() Model { return new(Parallel) }
}

// constant /////////////////////////////////////////////////////////////////////////////////////////

// Init initialises this structure
func (o *Constant) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		switch p.N {
		case "lam":
			o.Lam = p.V
		}
	}
	if o.Lam < 0 {
		return chk.Err("thermal conductivity must be non-negative. lam = %g is invalid", o.Lam)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o Constant) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "lam", V: 2.5}, // [W/(m・K)]
		}
	}
	return dbf.Params{
		&dbf.P{N: "lam", V: o.Lam},
	}
}

// ThermalConductivity returns λ
func (o Constant) ThermalConductivity(fs *fluid.State, porosity float64) ad.Evaluation {
	return ad.Constant(o.Lam)
}

// somerton /////////////////////////////////////////////////////////////////////////////////////////

// Init initialises this structure
func (o *Somerton) Init(prms dbf.Params) (err error) {
	*o = Somerton{Nphases: 2}
	for _, p := range prms {
		switch p.N {
		case "lamdry":
			o.LamDry = p.V
		case "lamsat":
			o.LamSat = p.V
		case "wet":
			o.Wet = int(p.V)
		case "nphases":
			o.Nphases = int(p.V)
		}
	}
	if o.LamDry < 0 || o.LamSat < 0 {
		return chk.Err("Somerton model: conductivities must be non-negative. lamdry = %g, lamsat = %g", o.LamDry, o.LamSat)
	}
	if o.Nphases < 1 {
		return chk.Err("Somerton model: number of phases must be positive. nphases = %d is invalid", o.Nphases)
	}
	if o.Wet < 0 || o.Wet >= o.Nphases {
		return chk.Err("Somerton model: index of wetting phase must be in [0, %d). wet = %d is invalid", o.Nphases, o.Wet)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o Somerton) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "lamdry", V: 0.5}, // [W/(m・K)]
			&dbf.P{N: "lamsat", V: 2.5}, // [W/(m・K)]
			&dbf.P{N: "wet", V: 0},
			&dbf.P{N: "nphases", V: 2},
		}
	}
	return dbf.Params{
		&dbf.P{N: "lamdry", V: o.LamDry},
		&dbf.P{N: "lamsat", V: o.LamSat},
		&dbf.P{N: "wet", V: float64(o.Wet)},
		&dbf.P{N: "nphases", V: float64(o.Nphases)},
	}
}

// ThermalConductivity returns λ(Sw)
func (o Somerton) ThermalConductivity(fs *fluid.State, porosity float64) ad.Evaluation {
	sw := fs.Saturation(o.Wet)
	if sw.Value <= 0 {
		return ad.Constant(o.LamDry)
	}
	if sw.Value >= 1 {
		return ad.Constant(o.LamSat)
	}
	return ad.Sqrt(sw).Scale(o.LamSat - o.LamDry).AddScalar(o.LamDry)
}

// parallel /////////////////////////////////////////////////////////////////////////////////////////

// Init initialises this structure
func (o *Parallel) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		switch p.N {
		case "lamf":
			o.LamF = p.V
		case "lams":
			o.LamS = p.V
		}
	}
	if o.LamF < 0 || o.LamS < 0 {
		return chk.Err("parallel model: conductivities must be non-negative. lamf = %g, lams = %g", o.LamF, o.LamS)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o Parallel) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "lamf", V: 0.6}, // [W/(m・K)]
			&dbf.P{N: "lams", V: 3.0}, // [W/(m・K)]
		}
	}
	return dbf.Params{
		&dbf.P{N: "lamf", V: o.LamF},
		&dbf.P{N: "lams", V: o.LamS},
	}
}

// ThermalConductivity returns λ(nf, S)
func (o Parallel) ThermalConductivity(fs *fluid.State, porosity float64) ad.Evaluation {
	var sf ad.Evaluation
	for i := 0; i < fs.Nphases; i++ {
		sf = sf.Add(fs.Saturation(i))
	}
	return sf.Scale(porosity * o.LamF).AddScalar((1 - porosity) * o.LamS)
}
