// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fluid

import (
	"github.com/cpmech/gosl/chk"
	"github.com/vkip/opm-models/ad"
)

// State holds the thermodynamic state of all phases within one control volume
//  Note: thermal equilibrium is assumed; i.e. all phases share the same temperature
type State struct {

	// constants
	Nphases   int       // number of phases
	Ncomps    int       // number of components
	MolarMass []float64 // [ncomps] molar masses

	// state
	temperature ad.Evaluation     // θ
	pressure    []ad.Evaluation   // [nphases] p
	saturation  []ad.Evaluation   // [nphases] S
	moleFrac    [][]ad.Evaluation // [nphases][ncomps] x
	density     []ad.Evaluation   // [nphases] ρ
	viscosity   []ad.Evaluation   // [nphases] μ
	enthalpy    []ad.Evaluation   // [nphases] h
}

// NewState returns a new state compatible with the given fluid system
func NewState(sys System) (o *State) {
	o = new(State)
	o.Nphases = sys.NumPhases()
	o.Ncomps = sys.NumComponents()
	o.MolarMass = make([]float64, o.Ncomps)
	for c := 0; c < o.Ncomps; c++ {
		o.MolarMass[c] = sys.MolarMass(c)
	}
	o.pressure = make([]ad.Evaluation, o.Nphases)
	o.saturation = make([]ad.Evaluation, o.Nphases)
	o.moleFrac = make([][]ad.Evaluation, o.Nphases)
	for p := 0; p < o.Nphases; p++ {
		o.moleFrac[p] = make([]ad.Evaluation, o.Ncomps)
	}
	o.density = make([]ad.Evaluation, o.Nphases)
	o.viscosity = make([]ad.Evaluation, o.Nphases)
	o.enthalpy = make([]ad.Evaluation, o.Nphases)
	return
}

// Reset sets all values to zero
func (o *State) Reset() {
	o.temperature = ad.Constant(0)
	for p := 0; p < o.Nphases; p++ {
		o.pressure[p] = ad.Constant(0)
		o.saturation[p] = ad.Constant(0)
		o.density[p] = ad.Constant(0)
		o.viscosity[p] = ad.Constant(0)
		o.enthalpy[p] = ad.Constant(0)
		for c := 0; c < o.Ncomps; c++ {
			o.moleFrac[p][c] = ad.Constant(0)
		}
	}
}

// Set copies another state into this one
func (o *State) Set(another *State) {
	if o.Nphases != another.Nphases || o.Ncomps != another.Ncomps {
		chk.Panic("cannot copy fluid state with (%d,%d) phases/components into (%d,%d)", another.Nphases, another.Ncomps, o.Nphases, o.Ncomps)
	}
	copy(o.MolarMass, another.MolarMass)
	o.temperature = another.temperature
	copy(o.pressure, another.pressure)
	copy(o.saturation, another.saturation)
	for p := 0; p < o.Nphases; p++ {
		copy(o.moleFrac[p], another.moleFrac[p])
	}
	copy(o.density, another.density)
	copy(o.viscosity, another.viscosity)
	copy(o.enthalpy, another.enthalpy)
}

// setters //////////////////////////////////////////////////////////////////////////////////////////

// SetTemperature sets θ of all phases
func (o *State) SetTemperature(v ad.Evaluation) { o.temperature = v }

// SetPressure sets the pressure of a phase
func (o *State) SetPressure(phaseIdx int, v ad.Evaluation) { o.pressure[phaseIdx] = v }

// SetSaturation sets the saturation of a phase
func (o *State) SetSaturation(phaseIdx int, v ad.Evaluation) { o.saturation[phaseIdx] = v }

// SetMoleFraction sets the mole fraction of a component in a phase
func (o *State) SetMoleFraction(phaseIdx, compIdx int, v ad.Evaluation) {
	o.moleFrac[phaseIdx][compIdx] = v
}

// SetDensity sets the density of a phase
func (o *State) SetDensity(phaseIdx int, v ad.Evaluation) { o.density[phaseIdx] = v }

// SetViscosity sets the viscosity of a phase
func (o *State) SetViscosity(phaseIdx int, v ad.Evaluation) { o.viscosity[phaseIdx] = v }

// SetEnthalpy sets the specific enthalpy of a phase
func (o *State) SetEnthalpy(phaseIdx int, v ad.Evaluation) { o.enthalpy[phaseIdx] = v }

// getters //////////////////////////////////////////////////////////////////////////////////////////

// Temperature returns θ
func (o *State) Temperature() ad.Evaluation { return o.temperature }

// Pressure returns the pressure of a phase
func (o *State) Pressure(phaseIdx int) ad.Evaluation { return o.pressure[phaseIdx] }

// Saturation returns the saturation of a phase
func (o *State) Saturation(phaseIdx int) ad.Evaluation { return o.saturation[phaseIdx] }

// MoleFraction returns the mole fraction of a component in a phase
func (o *State) MoleFraction(phaseIdx, compIdx int) ad.Evaluation {
	return o.moleFrac[phaseIdx][compIdx]
}

// Density returns the mass density of a phase
func (o *State) Density(phaseIdx int) ad.Evaluation { return o.density[phaseIdx] }

// Viscosity returns the dynamic viscosity of a phase
func (o *State) Viscosity(phaseIdx int) ad.Evaluation { return o.viscosity[phaseIdx] }

// Enthalpy returns the specific enthalpy of a phase
func (o *State) Enthalpy(phaseIdx int) ad.Evaluation { return o.enthalpy[phaseIdx] }

// derived quantities ///////////////////////////////////////////////////////////////////////////////

// AverageMolarMass returns M̄ = Σ x_k・M_k
func (o *State) AverageMolarMass(phaseIdx int) (res ad.Evaluation) {
	for c := 0; c < o.Ncomps; c++ {
		res = res.Add(o.moleFrac[phaseIdx][c].Scale(o.MolarMass[c]))
	}
	return
}

// MassFraction returns X_c = x_c・M_c / M̄
func (o *State) MassFraction(phaseIdx, compIdx int) ad.Evaluation {
	return o.moleFrac[phaseIdx][compIdx].Scale(o.MolarMass[compIdx]).Div(o.AverageMolarMass(phaseIdx))
}

// MolarDensity returns ρ_mol = ρ / M̄
func (o *State) MolarDensity(phaseIdx int) ad.Evaluation {
	return o.density[phaseIdx].Div(o.AverageMolarMass(phaseIdx))
}

// Molarity returns the concentration c_c = ρ_mol・x_c
func (o *State) Molarity(phaseIdx, compIdx int) ad.Evaluation {
	return o.MolarDensity(phaseIdx).Mul(o.moleFrac[phaseIdx][compIdx])
}

// InternalEnergy returns u = h - p/ρ
func (o *State) InternalEnergy(phaseIdx int) ad.Evaluation {
	return o.enthalpy[phaseIdx].Sub(o.pressure[phaseIdx].Div(o.density[phaseIdx]))
}
