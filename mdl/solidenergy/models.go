// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solidenergy

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/vkip/opm-models/ad"
	"github.com/vkip/opm-models/mdl/fluid"
)

// Null implements a solid that does not store energy
type Null struct{}

// HeatCap implements a constant heat capacity
//
//   u = rhos・cs・(θ - T0)
//
type HeatCap struct {
	RhoS float64 // intrinsic density of solids
	Cs   float64 // specific heat capacity of solids
	T0   float64 // reference temperature
}

// Poly implements a heat capacity depending on temperature
//
//   cs(v) = a0  +  a1 v  +  a2 v² +  a3 v³    with   v = θ - T0
//
//   u = rhos・∫cs dv = rhos・(a0 v + a1 v²/2 + a2 v³/3 + a3 v⁴/4)
//
type Poly struct {
	a0, a1, a2, a3 float64
	RhoS           float64
	T0             float64
}

// add models to factory
func init() {
	allocators["null"] = func() Model { return new(Null) }
	allocators["heatcap"] = func() Model { return new(HeatCap) }
	allocators["poly"] = func() Model { return new(Poly) }
}

// null /////////////////////////////////////////////////////////////////////////////////////////////

// Init initialises this structure
func (o *Null) Init(prms dbf.Params) error { return nil }

// GetPrms gets (an example) of parameters
func (o Null) GetPrms(example bool) dbf.Params { return dbf.Params{} }

// SolidInternalEnergy returns zero
func (o Null) SolidInternalEnergy(fs *fluid.State) ad.Evaluation { return ad.Constant(0) }

// heatcap //////////////////////////////////////////////////////////////////////////////////////////

// Init initialises this structure
func (o *HeatCap) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		switch p.N {
		case "rhos":
			o.RhoS = p.V
		case "cs":
			o.Cs = p.V
		case "T0":
			o.T0 = p.V
		}
	}
	if o.RhoS < 0 || o.Cs < 0 {
		return chk.Err("heatcap model: rhos and cs must be non-negative. rhos = %g, cs = %g", o.RhoS, o.Cs)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o HeatCap) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "rhos", V: 2650}, // [kg/m³]
			&dbf.P{N: "cs", V: 800},    // [J/(kg・K)]
			&dbf.P{N: "T0", V: 0},      // [K]
		}
	}
	return dbf.Params{
		&dbf.P{N: "rhos", V: o.RhoS},
		&dbf.P{N: "cs", V: o.Cs},
		&dbf.P{N: "T0", V: o.T0},
	}
}

// SolidInternalEnergy returns u(θ)
func (o HeatCap) SolidInternalEnergy(fs *fluid.State) ad.Evaluation {
	return fs.Temperature().AddScalar(-o.T0).Scale(o.RhoS * o.Cs)
}

// poly /////////////////////////////////////////////////////////////////////////////////////////////

// Init initialises this structure
func (o *Poly) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		switch p.N {
		case "a0":
			o.a0 = p.V
		case "a1":
			o.a1 = p.V
		case "a2":
			o.a2 = p.V
		case "a3":
			o.a3 = p.V
		case "rhos":
			o.RhoS = p.V
		case "T0":
			o.T0 = p.V
		}
	}
	if o.RhoS < 0 {
		return chk.Err("poly model: rhos must be non-negative. rhos = %g is invalid", o.RhoS)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o Poly) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "a0", V: 750},
			&dbf.P{N: "a1", V: 0.6},
			&dbf.P{N: "a2", V: 0},
			&dbf.P{N: "a3", V: 0},
			&dbf.P{N: "rhos", V: 2650}, // [kg/m³]
			&dbf.P{N: "T0", V: 273.15}, // [K]
		}
	}
	return dbf.Params{
		&dbf.P{N: "a0", V: o.a0},
		&dbf.P{N: "a1", V: o.a1},
		&dbf.P{N: "a2", V: o.a2},
		&dbf.P{N: "a3", V: o.a3},
		&dbf.P{N: "rhos", V: o.RhoS},
		&dbf.P{N: "T0", V: o.T0},
	}
}

// Cval computes cs(v)
func (o *Poly) Cval(v float64) float64 {
	return o.a0 + o.a1*v + o.a2*v*v + o.a3*v*v*v
}

// Uval computes ∫cs dv
func (o *Poly) Uval(v float64) float64 {
	return o.a0*v + o.a1*v*v/2.0 + o.a2*v*v*v/3.0 + o.a3*v*v*v*v/4.0
}

// SolidInternalEnergy returns u(θ)
func (o *Poly) SolidInternalEnergy(fs *fluid.State) ad.Evaluation {
	T := fs.Temperature()
	v := T.Value - o.T0
	return ad.Chain(T, o.RhoS*o.Uval(v), o.RhoS*o.Cval(v))
}
