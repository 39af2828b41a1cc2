// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package porous implements the spatial parameters of porous media; i.e. porosity,
// tortuosity, dispersivity and intrinsic permeability of the solid skeleton
package porous

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Model holds the parameters of an homogeneous porous medium
//
//  The tortuosity is computed with the Millington-Quirk relation if "tau" is not given:
//
//    τ = nf^(1/3)
//
type Model struct {
	Nf0   float64 // nf0: porosity
	NfRef float64 // porosity at reference pressure; used by the rock energy storage
	Tau   float64 // tortuosity
	AlpL  float64 // longitudinal dispersivity
	Kperm float64 // intrinsic permeability
}

// Init initialises this structure
func (o *Model) Init(prms dbf.Params) (err error) {
	*o = Model{NfRef: -1, Tau: -1}
	for _, p := range prms {
		switch p.N {
		case "nf0":
			o.Nf0 = p.V
		case "nfref":
			o.NfRef = p.V
		case "tau":
			o.Tau = p.V
		case "alpL":
			o.AlpL = p.V
		case "k":
			o.Kperm = p.V
		}
	}
	if o.Nf0 <= 0 || o.Nf0 >= 1 {
		return chk.Err("porous model: porosity must be in (0, 1). nf0 = %g is invalid", o.Nf0)
	}
	if o.NfRef < 0 {
		o.NfRef = o.Nf0
	}
	if o.Tau < 0 {
		o.Tau = math.Cbrt(o.Nf0)
	}
	if o.AlpL < 0 {
		return chk.Err("porous model: dispersivity must be non-negative. alpL = %g is invalid", o.AlpL)
	}
	if o.Kperm < 0 {
		return chk.Err("porous model: permeability must be non-negative. k = %g is invalid", o.Kperm)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o Model) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "nf0", V: 0.3},
			&dbf.P{N: "nfref", V: 0.3},
			&dbf.P{N: "tau", V: 0.5},
			&dbf.P{N: "alpL", V: 0.01}, // [m]
			&dbf.P{N: "k", V: 1e-12},   // [m²]
		}
	}
	return dbf.Params{
		&dbf.P{N: "nf0", V: o.Nf0},
		&dbf.P{N: "nfref", V: o.NfRef},
		&dbf.P{N: "tau", V: o.Tau},
		&dbf.P{N: "alpL", V: o.AlpL},
		&dbf.P{N: "k", V: o.Kperm},
	}
}

// Porosity returns the porosity at a DOF
func (o *Model) Porosity(dof int) float64 { return o.Nf0 }

// ReferencePorosity returns the porosity at reference pressure at a DOF
func (o *Model) ReferencePorosity(dof int) float64 { return o.NfRef }

// Tortuosity returns the tortuosity at a DOF
func (o *Model) Tortuosity(dof int) float64 { return o.Tau }

// Dispersivity returns the longitudinal dispersivity at a DOF
func (o *Model) Dispersivity(dof int) float64 { return o.AlpL }

// Permeability returns the intrinsic permeability at a DOF
func (o *Model) Permeability(dof int) float64 { return o.Kperm }
