// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package diffusion

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/vkip/opm-models/ad"
)

// M1 implements a model for diffusion with a temperature dependent coefficient
//
//   D = D0 * dval(u)
//
//   dval = a0  +  a1 u  +  a2 u² +  a3 u³    with   u = θ - T0
//
type M1 struct {
	a0, a1, a2, a3 float64
	D0             float64
	T0             float64
}

// add model to factory
func init() {
	allocators["m1"] = func() Model { return new(M1) }
}

// Init initialises this structure
func (o *M1) Init(prms dbf.Params) (err error) {
	o.a0 = 1
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
		case "D0":
			o.D0 = p.V
		case "T0":
			o.T0 = p.V
		}
	}
	if o.D0 < 0 {
		return chk.Err("M1 model: reference diffusion coefficient D0 must be non-negative. D0 = %g is invalid", o.D0)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o M1) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "a0", V: 1},
			&dbf.P{N: "a1", V: 0.02},
			&dbf.P{N: "a2", V: 1e-4},
			&dbf.P{N: "a3", V: 0},
			&dbf.P{N: "D0", V: 2e-9},   // [m²/s]
			&dbf.P{N: "T0", V: 293.15}, // [K]
		}
	}
	return dbf.Params{
		&dbf.P{N: "a0", V: o.a0},
		&dbf.P{N: "a1", V: o.a1},
		&dbf.P{N: "a2", V: o.a2},
		&dbf.P{N: "a3", V: o.a3},
		&dbf.P{N: "D0", V: o.D0},
		&dbf.P{N: "T0", V: o.T0},
	}
}

// Dval computes dval(u)
func (o *M1) Dval(u float64) float64 {
	return o.a0 + o.a1*u + o.a2*u*u + o.a3*u*u*u
}

// DdDu computes d(dval)/du
func (o *M1) DdDu(u float64) float64 {
	return o.a1 + 2.0*o.a2*u + 3.0*o.a3*u*u
}

// Coefficient returns D(θ) = D0・dval(θ - T0)
func (o *M1) Coefficient(p, T ad.Evaluation) ad.Evaluation {
	u := T.Value - o.T0
	return ad.Chain(T, o.D0*o.Dval(u), o.D0*o.DdDu(u))
}
