// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fluid

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/vkip/opm-models/ad"
)

// Immiscible implements N immiscible phases; phase i is made of the pure component i
//  Note: the parameters of phase i carry the suffix "_i"; e.g. "R0_1" is the density of phase 1
type Immiscible struct {
	Phases []Phase   // [nphases] phase laws
	Mmol   []float64 // [nphases] molar masses
	Active []bool    // [nphases] active phases
}

// add model to factory
func init() {
	allocators["immiscible"] = func() System { return new(Immiscible) }
}

// Name returns the name of this fluid system
func (o *Immiscible) Name() string { return "immiscible" }

// Init initialises this structure
func (o *Immiscible) Init(prms dbf.Params) (err error) {
	nphases := 2
	for _, p := range prms {
		if p.N == "nphases" {
			nphases = int(p.V)
		}
	}
	if nphases < 1 || nphases > 3 {
		return chk.Err("number of immiscible phases must be 1, 2 or 3. nphases = %d is invalid", nphases)
	}
	o.Phases = make([]Phase, nphases)
	o.Mmol = make([]float64, nphases)
	o.Active = make([]bool, nphases)
	for i := 0; i < nphases; i++ {
		suffix := io.Sf("_%d", i)
		err = o.Phases[i].Init(prms, suffix)
		if err != nil {
			return
		}
		o.Mmol[i] = 0.018015
		o.Active[i] = true
		for _, p := range prms {
			switch p.N {
			case "M" + suffix:
				o.Mmol[i] = p.V
			case "active" + suffix:
				o.Active[i] = p.V > 0
			}
		}
		if o.Mmol[i] <= 0 {
			return chk.Err("molar mass M%s must be positive. M%s = %g is invalid", suffix, suffix, o.Mmol[i])
		}
	}
	return
}

// GetPrms gets (an example) of parameters
//  Note: the example corresponds to water (phase 0) and a light oil (phase 1)
func (o *Immiscible) GetPrms(example bool) (prms dbf.Params) {
	if example {
		var water Phase
		oil := Phase{R0: 850, P0: 1e5, C: 8.5e-7, T0: 293.15, Beta: 7e-4, Mu: 5e-3, Emu: 0.03, Cp: 2000}
		prms = dbf.Params{&dbf.P{N: "nphases", V: 2}}
		prms = append(prms, water.GetPrms(true, "_0")...)
		prms = append(prms, &dbf.P{N: "M_0", V: 0.018015}, &dbf.P{N: "active_0", V: 1})
		prms = append(prms, oil.GetPrms(false, "_1")...)
		prms = append(prms, &dbf.P{N: "M_1", V: 0.142}, &dbf.P{N: "active_1", V: 1})
		return
	}
	prms = dbf.Params{&dbf.P{N: "nphases", V: float64(len(o.Phases))}}
	for i, phase := range o.Phases {
		suffix := io.Sf("_%d", i)
		var active float64
		if o.Active[i] {
			active = 1
		}
		prms = append(prms, phase.GetPrms(false, suffix)...)
		prms = append(prms, &dbf.P{N: "M" + suffix, V: o.Mmol[i]}, &dbf.P{N: "active" + suffix, V: active})
	}
	return
}

// NumPhases returns the number of phases
func (o *Immiscible) NumPhases() int { return len(o.Phases) }

// NumComponents returns the number of components == number of phases
func (o *Immiscible) NumComponents() int { return len(o.Phases) }

// PhaseIsActive tells whether a phase takes part in the simulation
func (o *Immiscible) PhaseIsActive(phaseIdx int) bool { return o.Active[phaseIdx] }

// MolarMass returns the molar mass of a component
func (o *Immiscible) MolarMass(compIdx int) float64 { return o.Mmol[compIdx] }

// Density computes ρ of a phase
func (o *Immiscible) Density(fs *State, phaseIdx int) (ad.Evaluation, error) {
	return o.Phases[phaseIdx].Density(fs.Pressure(phaseIdx), fs.Temperature())
}

// Viscosity computes μ of a phase
func (o *Immiscible) Viscosity(fs *State, phaseIdx int) (ad.Evaluation, error) {
	return o.Phases[phaseIdx].Viscosity(fs.Temperature()), nil
}

// Enthalpy computes h of a phase
func (o *Immiscible) Enthalpy(fs *State, phaseIdx int) (h ad.Evaluation, err error) {
	R, err := o.Density(fs, phaseIdx)
	if err != nil {
		return
	}
	return o.Phases[phaseIdx].Enthalpy(fs.Pressure(phaseIdx), fs.Temperature(), R), nil
}

// BinaryDiffusionCoefficient returns zero since the phases are pure
func (o *Immiscible) BinaryDiffusionCoefficient(fs *State, phaseIdx, comp0, comp1 int) (ad.Evaluation, error) {
	return ad.Constant(0), nil
}
