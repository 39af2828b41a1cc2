// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package energy

import (
	"fmt"
	goio "io"
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/vkip/opm-models/ad"
	"github.com/vkip/opm-models/ele"
	"github.com/vkip/opm-models/inp"
	"github.com/vkip/opm-models/mdl/fluid"
)

// Full implements the energy conservation equation with temperature θ as primary variable
//
//   storage:     e = Σ_α φ・S_α・ρ_α・u_α + (1 - φref)・u_rock
//   advection:   Σ_α h_α・ρ_α・q_α            (upstream values)
//   conduction:  -H/A・(θ_ex - θ_in)
//                H = 1 / (1/(λ_in・α_in) + 1/(λ_ex・α_ex))
//
//  All energy terms are multiplied by the energy scaling factor
type Full struct {
	tIdx       int     // temperature primary variable
	eqIdx      int     // energy equation
	tempWeight float64 // weight of temperature primary variable
	eqScale    float64 // energy scaling factor
}

// Mode returns EnergyFull
func (o *Full) Mode() inp.EnergyMode { return inp.EnergyFull }

// PrimaryVarApplies tells whether pvIdx is the temperature slot
func (o *Full) PrimaryVarApplies(pvIdx int) bool { return pvIdx == o.tIdx }

// PrimaryVarName returns "temperature"
func (o *Full) PrimaryVarName(pvIdx int) string {
	o.checkPv(pvIdx)
	return "temperature"
}

// PrimaryVarWeight returns the weight of the temperature
func (o *Full) PrimaryVarWeight(pvIdx int) float64 {
	o.checkPv(pvIdx)
	return o.tempWeight
}

// EqApplies tells whether eqIdx is the energy equation
func (o *Full) EqApplies(eqIdx int) bool { return eqIdx == o.eqIdx }

// EqName returns "energy"
func (o *Full) EqName(eqIdx int) string {
	o.checkEq(eqIdx)
	return "energy"
}

// EqWeight returns the energy scaling factor
func (o *Full) EqWeight(eqIdx int) float64 {
	o.checkEq(eqIdx)
	return o.eqScale
}

// UpdateTemperature sets the temperature from the primary variables
func (o *Full) UpdateTemperature(fs *fluid.State, ctx *ele.Context, dofIdx, timeIdx int) (err error) {
	fs.SetTemperature(ctx.MakeEvaluation(dofIdx, timeIdx, o.tIdx))
	return
}

// UpdateEnergyQuantities computes the rock internal energy and the total thermal conductivity
func (o *Full) UpdateEnergyQuantities(iq *ele.IntensiveQuantities, ctx *ele.Context, dofIdx, timeIdx int) (err error) {
	solid := ctx.Problem.SolidEnergyLaw()
	if solid == nil {
		return chk.Err("problem must provide a solid energy law when the energy equation is solved")
	}
	cond := ctx.Problem.ThermalConductionLaw()
	if cond == nil {
		return chk.Err("problem must provide a thermal conduction law when the energy equation is solved")
	}
	fs := iq.FluidState()
	iq.SetEnergyQuantities(solid.SolidInternalEnergy(fs), cond.ThermalConductivity(fs, iq.Porosity()))
	return
}

// AddStorage adds the internal energy of fluids and rock
func (o *Full) AddStorage(storage ele.RateVector, ctx *ele.Context, iq *ele.IntensiveQuantities) {
	fs := iq.FluidState()
	e := ad.Constant(0)
	for ph := 0; ph < fs.Nphases; ph++ {
		if !ctx.Fsys.PhaseIsActive(ph) {
			continue
		}
		u := fs.InternalEnergy(ph)
		e = e.Add(fs.Saturation(ph).Mul(fs.Density(ph)).Mul(u).Scale(iq.Porosity()))
	}
	e = e.Add(iq.RockInternalEnergy().Scale(1 - iq.ReferencePorosity()))
	storage[o.eqIdx] = storage[o.eqIdx].Add(e.Scale(o.eqScale))
}

// ComputeFlux adds the advective (enthalpy) and the conductive energy fluxes
func (o *Full) ComputeFlux(flux ele.RateVector, ctx *ele.Context, ev *ele.ExtensiveQuantities) {
	f := ad.Constant(0)
	for ph := 0; ph < ctx.Fsys.NumPhases(); ph++ {
		if !ctx.Fsys.PhaseIsActive(ph) {
			continue
		}
		up, focus := ev.Upstream(ctx, ph)
		h := ad.Select(up.Enthalpy(ph), focus)
		rho := ad.Select(up.Density(ph), focus)
		f = f.Add(h.Mul(rho).Mul(ev.VolumeFlux(ph)))
	}
	f = f.Add(ev.EnergyFlux())
	flux[o.eqIdx] = flux[o.eqIdx].Add(f.Scale(o.eqScale))
}

// UpdateEnergyFlux computes the conductive energy flux across an interior face
func (o *Full) UpdateEnergyFlux(ev *ele.ExtensiveQuantities, ctx *ele.Context, faceIdx int) (err error) {
	in, ex := ev.Interior, ev.Exterior
	focusIn, focusEx := ctx.IsFocus(in, 0), ctx.IsFocus(ex, 0)
	iqIn := ctx.IntensiveQuantities(in, 0)
	iqEx := ctx.IntensiveQuantities(ex, 0)
	dT := ad.Select(iqEx.Temperature(), focusEx).Sub(ad.Select(iqIn.Temperature(), focusIn))
	lamIn := ad.Select(iqIn.TotalThermalConductivity(), focusIn)
	lamEx := ad.Select(iqEx.TotalThermalConductivity(), focusEx)
	H := HarmonicTransmissibility(lamIn, lamEx,
		ctx.Problem.ThermalHalfTransmissibilityIn(ctx, faceIdx),
		ctx.Problem.ThermalHalfTransmissibilityOut(ctx, faceIdx))
	if H.Value == 0 {
		ev.SetEnergyFlux(ad.Constant(0))
		return
	}
	ev.SetEnergyFlux(dT.Mul(H).Scale(-1.0 / ev.Area))
	return
}

// UpdateEnergyBoundary computes the conductive energy flux across a boundary face
func (o *Full) UpdateEnergyBoundary(ev *ele.ExtensiveQuantities, ctx *ele.Context, bfIdx int, bfs *fluid.State) (err error) {
	in := ev.Interior
	focus := ctx.IsFocus(in, 0)
	iq := ctx.IntensiveQuantities(in, 0)
	lam := ad.Select(iq.TotalThermalConductivity(), focus)
	if lam.Value <= 0 {
		ev.SetEnergyFlux(ad.Constant(0))
		return
	}
	alpha := ctx.Problem.ThermalHalfTransmissibilityBoundary(ctx, bfIdx)
	dT := bfs.Temperature().Decay().Sub(ad.Select(iq.Temperature(), focus))
	ev.SetEnergyFlux(dT.Mul(lam).Scale(-alpha))
	return
}

// HarmonicTransmissibility returns H = 1/(1/(λin・αin) + 1/(λex・αex)). H is exactly zero if any
// conductivity or half-transmissibility is not positive
func HarmonicTransmissibility(lamIn, lamEx ad.Evaluation, alphaIn, alphaEx float64) ad.Evaluation {
	if lamIn.Value <= 0 || lamEx.Value <= 0 || alphaIn <= 0 || alphaEx <= 0 {
		return ad.Constant(0)
	}
	hIn := lamIn.Scale(alphaIn)
	hEx := lamEx.Scale(alphaEx)
	return hIn.Inv().Add(hEx.Inv()).Inv()
}

// AssignPrimaryVars sets the temperature slot from a fluid state
func (o *Full) AssignPrimaryVars(pv ele.PrimaryVars, fs *fluid.State) {
	pv[o.tIdx] = fs.Temperature().Value
}

// UpdatePrimaryVars computes the plain (unchopped) Newton update of the temperature
func (o *Full) UpdatePrimaryVars(newPv, oldPv ele.PrimaryVars, delta []float64) {
	newPv[o.tIdx] = oldPv[o.tIdx] - delta[o.tIdx]
}

// ComputeUpdateError returns 0; the change of temperature is not considered for convergence
func (o *Full) ComputeUpdateError(oldPv ele.PrimaryVars, delta []float64) float64 { return 0 }

// ComputeResidualError returns the (unweighted) absolute residual of the energy equation
func (o *Full) ComputeResidualError(resid []float64) float64 {
	return math.Abs(resid[o.eqIdx])
}

// SerializeEntity writes the temperature as one token
func (o *Full) SerializeEntity(w goio.Writer, pv ele.PrimaryVars) (err error) {
	_, err = fmt.Fprintf(w, " %v", pv[o.tIdx])
	return
}

// DeserializeEntity reads one temperature token into the current and previous time levels
func (o *Full) DeserializeEntity(r goio.Reader, pv, pvPrev ele.PrimaryVars) (err error) {
	var T float64
	_, err = fmt.Fscan(r, &T)
	if err != nil {
		return chk.Err("cannot read temperature: %v", err)
	}
	pv[o.tIdx] = T
	pvPrev[o.tIdx] = T
	return
}

// checkPv panics if pvIdx is not the temperature slot
func (o *Full) checkPv(pvIdx int) {
	if pvIdx != o.tIdx {
		chk.Panic("primary variable %d does not belong to the energy extension", pvIdx)
	}
}

// checkEq panics if eqIdx is not the energy equation
func (o *Full) checkEq(eqIdx int) {
	if eqIdx != o.eqIdx {
		chk.Panic("equation %d does not belong to the energy extension", eqIdx)
	}
}
