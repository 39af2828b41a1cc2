// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package immiscible implements the multi-phase model without mass transfer between phases
//
//   primary variables: p, S_0 ... S_{N-2} [, θ]
//   equations:         mass of phase 0 ... N-1 [, energy]
//
//   storage: φ・S_α・ρ_α
//   flux:    ρ_α(up)・q_α
package immiscible

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/vkip/opm-models/ad"
	"github.com/vkip/opm-models/ele"
	"github.com/vkip/opm-models/inp"
	"github.com/vkip/opm-models/mdl/fluid"
)

func init() {
	ele.SetAllocator("immiscible", func() ele.Model { return new(Model) })
}

// Model implements the immiscible model
//  Note: phase α is made of pure component α; capillary pressure is neglected
type Model struct {
	Idx inp.Indices // slots of primary variables and equations
}

// Name returns "immiscible"
func (o *Model) Name() string { return "immiscible" }

// Init initialises model
func (o *Model) Init(cfg *inp.Config) (err error) {
	if cfg.Model != o.Name() {
		return chk.Err("configuration is for model %q; cannot initialise %q", cfg.Model, o.Name())
	}
	if cfg.Idx.NumEq < 1 {
		return chk.Err("indices of configuration are not set; configuration must be post-processed first")
	}
	o.Idx = cfg.Idx
	return
}

// NumEq returns the number of equations
func (o *Model) NumEq() int { return o.Idx.NumEq }

// PrimaryVarName returns the name of a primary variable
func (o *Model) PrimaryVarName(pvIdx int) string {
	if pvIdx == o.Idx.PressureIdx {
		return "pressure"
	}
	if o.Idx.SaturationIdx >= 0 && pvIdx >= o.Idx.SaturationIdx && pvIdx < o.Idx.SaturationIdx+o.Idx.NumPhases-1 {
		return io.Sf("saturation_%d", pvIdx-o.Idx.SaturationIdx)
	}
	chk.Panic("primary variable %d does not belong to %q model", pvIdx, o.Name())
	return ""
}

// EqName returns the name of an equation
func (o *Model) EqName(eqIdx int) string {
	if eqIdx >= o.Idx.Conti0EqIdx && eqIdx < o.Idx.Conti0EqIdx+o.Idx.NumPhases {
		return io.Sf("conti_%d", eqIdx-o.Idx.Conti0EqIdx)
	}
	chk.Panic("equation %d does not belong to %q model", eqIdx, o.Name())
	return ""
}

// PrimaryVarWeight returns the weight of a primary variable; pressures are weighted by the
// inverse of the current pressure
func (o *Model) PrimaryVarWeight(pvIdx int, pv ele.PrimaryVars) float64 {
	if pvIdx == o.Idx.PressureIdx {
		return 1.0 / math.Max(math.Abs(pv[pvIdx]), 1.0)
	}
	return 1
}

// CompleteFluidState sets pressures, saturations and compositions
func (o *Model) CompleteFluidState(fs *fluid.State, ctx *ele.Context, dofIdx, timeIdx int) (err error) {
	p := ctx.MakeEvaluation(dofIdx, timeIdx, o.Idx.PressureIdx)
	sum := ad.Constant(0)
	for ph := 0; ph < fs.Nphases; ph++ {
		fs.SetPressure(ph, p)
		if ph < fs.Nphases-1 {
			s := ctx.MakeEvaluation(dofIdx, timeIdx, o.Idx.SaturationIdx+ph)
			fs.SetSaturation(ph, s)
			sum = sum.Add(s)
		} else {
			fs.SetSaturation(ph, sum.Neg().AddScalar(1))
		}
		for c := 0; c < fs.Ncomps; c++ {
			if c == ph {
				fs.SetMoleFraction(ph, c, ad.Constant(1))
			} else {
				fs.SetMoleFraction(ph, c, ad.Constant(0))
			}
		}
	}
	return
}

// ComputeStorage computes the mass of each phase per unit volume
func (o *Model) ComputeStorage(storage ele.RateVector, ctx *ele.Context, dofIdx, timeIdx int) (err error) {
	iq := ctx.IntensiveQuantities(dofIdx, timeIdx)
	for ph := 0; ph < o.Idx.NumPhases; ph++ {
		if !ctx.Fsys.PhaseIsActive(ph) {
			continue
		}
		eq := o.Idx.Conti0EqIdx + ph
		storage[eq] = storage[eq].Add(iq.Saturation(ph).Mul(iq.Density(ph)).Scale(iq.Porosity()))
	}
	ctx.Energy.AddStorage(storage, ctx, iq)
	return
}

// ComputeFlux computes the fluxes across an interior face
func (o *Model) ComputeFlux(flux ele.RateVector, ctx *ele.Context, ev *ele.ExtensiveQuantities) (err error) {
	o.AddAdvectiveFlux(flux, ctx, ev)
	o.AddDiffusiveFlux(flux, ctx, ev)
	return
}

// ComputeBoundaryFlux computes the fluxes across a boundary face
func (o *Model) ComputeBoundaryFlux(flux ele.RateVector, ctx *ele.Context, ev *ele.ExtensiveQuantities) (err error) {
	return o.ComputeFlux(flux, ctx, ev)
}

// ComputeSource computes the sources given by the problem
func (o *Model) ComputeSource(source ele.RateVector, ctx *ele.Context, dofIdx, timeIdx int) (err error) {
	return ele.ProblemSource(source, ctx, dofIdx, timeIdx)
}

// AddAdvectiveFlux adds the mass fluxes ρ(up)・q of all phases and the advective energy flux
func (o *Model) AddAdvectiveFlux(flux ele.RateVector, ctx *ele.Context, ev *ele.ExtensiveQuantities) {
	for ph := 0; ph < o.Idx.NumPhases; ph++ {
		if !ctx.Fsys.PhaseIsActive(ph) {
			continue
		}
		up, focus := ev.Upstream(ctx, ph)
		rho := ad.Select(up.Density(ph), focus)
		eq := o.Idx.Conti0EqIdx + ph
		flux[eq] = flux[eq].Add(ev.VolumeFlux(ph).Mul(rho))
	}
	ctx.Energy.ComputeFlux(flux, ctx, ev)
}

// AddDiffusiveFlux does nothing for mass; heat conduction is added by the energy extension
func (o *Model) AddDiffusiveFlux(flux ele.RateVector, ctx *ele.Context, ev *ele.ExtensiveQuantities) {}
