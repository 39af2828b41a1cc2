// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package relperm

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/vkip/opm-models/ad"
	"github.com/vkip/opm-models/mdl/fluid"
)

// Linear implements kr = S (clamped to [0, 1])
type Linear struct{}

// Corey implements Brooks-Corey type relative permeabilities
//
//   kr_α = Se_α^n_α    with    Se_α = (S_α - Sr_α) / (1 - Σ Sr)
//
//  Note: the parameters of phase α carry the suffix "_α"; e.g. "n_1", "sr_1"
type Corey struct {
	N  []float64 // [nphases] exponents
	Sr []float64 // [nphases] residual saturations
}

// add models to factory
func init() {
	allocators["linear"] = func() Model { return new(Linear) }
	allocators["corey"] = func() Model { return new(Corey) }
}

// linear ///////////////////////////////////////////////////////////////////////////////////////////

// Init initialises this structure
func (o *Linear) Init(prms dbf.Params) error { return nil }

// GetPrms gets (an example) of parameters
func (o Linear) GetPrms(example bool) dbf.Params { return dbf.Params{} }

// RelativePermeabilities computes kr
func (o Linear) RelativePermeabilities(kr []ad.Evaluation, fs *fluid.State) error {
	for i := 0; i < fs.Nphases; i++ {
		kr[i] = clamp(fs.Saturation(i))
	}
	return nil
}

// corey ////////////////////////////////////////////////////////////////////////////////////////////

// Init initialises this structure
func (o *Corey) Init(prms dbf.Params) (err error) {
	nphases := 2
	for _, p := range prms {
		if p.N == "nphases" {
			nphases = int(p.V)
		}
	}
	if nphases < 1 {
		return chk.Err("Corey model: number of phases must be positive. nphases = %d is invalid", nphases)
	}
	o.N = make([]float64, nphases)
	o.Sr = make([]float64, nphases)
	var srsum float64
	for i := 0; i < nphases; i++ {
		o.N[i] = 2
		for _, p := range prms {
			switch p.N {
			case io.Sf("n_%d", i):
				o.N[i] = p.V
			case io.Sf("sr_%d", i):
				o.Sr[i] = p.V
			}
		}
		if o.N[i] < 1 {
			return chk.Err("Corey model: exponent n_%d must be greater than or equal to 1. n_%d = %g is invalid", i, i, o.N[i])
		}
		if o.Sr[i] < 0 {
			return chk.Err("Corey model: residual saturation sr_%d must be non-negative. sr_%d = %g is invalid", i, i, o.Sr[i])
		}
		srsum += o.Sr[i]
	}
	if srsum >= 1 {
		return chk.Err("Corey model: sum of residual saturations must be smaller than 1. Σsr = %g is invalid", srsum)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o Corey) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "nphases", V: 2},
			&dbf.P{N: "n_0", V: 2},
			&dbf.P{N: "sr_0", V: 0.1},
			&dbf.P{N: "n_1", V: 3},
			&dbf.P{N: "sr_1", V: 0.05},
		}
	}
	prms := dbf.Params{&dbf.P{N: "nphases", V: float64(len(o.N))}}
	for i := range o.N {
		prms = append(prms, &dbf.P{N: io.Sf("n_%d", i), V: o.N[i]}, &dbf.P{N: io.Sf("sr_%d", i), V: o.Sr[i]})
	}
	return prms
}

// RelativePermeabilities computes kr
func (o *Corey) RelativePermeabilities(kr []ad.Evaluation, fs *fluid.State) error {
	if fs.Nphases != len(o.N) {
		return chk.Err("Corey model is configured for %d phases but fluid state has %d", len(o.N), fs.Nphases)
	}
	var srsum float64
	for _, sr := range o.Sr {
		srsum += sr
	}
	for i := 0; i < fs.Nphases; i++ {
		se := clamp(fs.Saturation(i).AddScalar(-o.Sr[i]).Scale(1.0 / (1.0 - srsum)))
		kr[i] = ad.Pow(se, o.N[i])
	}
	return nil
}
