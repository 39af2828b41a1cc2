// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/vkip/opm-models/ad"
	"github.com/vkip/opm-models/inp"
	"github.com/vkip/opm-models/mdl/fluid"
)

// IntensiveQuantities holds the quantities of one DOF at one time level that depend only on
// its own primary variables
type IntensiveQuantities struct {

	// fluid
	fs       *fluid.State    // thermodynamic state
	relPerm  []ad.Evaluation // [nphases] relative permeabilities
	mobility []ad.Evaluation // [nphases] kr/μ

	// porous medium
	porosity     float64       // φ
	refPorosity  float64       // φ at reference pressure
	tortuosity   float64       // τ
	dispersivity float64       // α
	diffCoeff    ad.Evaluation // binary diffusion coefficient of phase 0

	// energy; full energy only
	mode                     inp.EnergyMode
	rockInternalEnergy       ad.Evaluation
	totalThermalConductivity ad.Evaluation
}

// NewIntensiveQuantities allocates intensive quantities compatible with a fluid system
func NewIntensiveQuantities(fsys fluid.System) (o *IntensiveQuantities) {
	o = new(IntensiveQuantities)
	o.fs = fluid.NewState(fsys)
	o.relPerm = make([]ad.Evaluation, o.fs.Nphases)
	o.mobility = make([]ad.Evaluation, o.fs.Nphases)
	return
}

// Update computes all quantities of a DOF at a time level
func (o *IntensiveQuantities) Update(ctx *Context, dofIdx, timeIdx int) (err error) {

	// fluid state
	o.mode = ctx.Energy.Mode()
	o.fs.Reset()
	err = ctx.Energy.UpdateTemperature(o.fs, ctx, dofIdx, timeIdx)
	if err != nil {
		return
	}
	err = ctx.Model.CompleteFluidState(o.fs, ctx, dofIdx, timeIdx)
	if err != nil {
		return
	}
	err = CompleteThermodynamics(o.fs, ctx.Fsys, o.mode)
	if err != nil {
		return
	}

	// porous medium
	dof := ctx.GlobalDof(dofIdx)
	sp := ctx.Problem.SpatialParams()
	o.porosity = sp.Porosity(dof)
	o.refPorosity = sp.ReferencePorosity(dof)
	o.tortuosity = sp.Tortuosity(dof)
	o.dispersivity = sp.Dispersivity(dof)

	// diffusion
	o.diffCoeff = ad.Constant(0)
	if ctx.Fsys.NumComponents() >= 2 {
		o.diffCoeff, err = ctx.Fsys.BinaryDiffusionCoefficient(o.fs, 0, 0, 1)
		if err != nil {
			return
		}
	}

	// mobilities
	err = Mobilities(o.relPerm, o.mobility, o.fs, ctx)
	if err != nil {
		return
	}

	// energy
	o.rockInternalEnergy = ad.Constant(0)
	o.totalThermalConductivity = ad.Constant(0)
	err = ctx.Energy.UpdateEnergyQuantities(o, ctx, dofIdx, timeIdx)
	if err != nil {
		return
	}
	if DebugChecks {
		o.checkDefined(dofIdx, timeIdx)
	}
	return
}

// CompleteThermodynamics computes density and viscosity of all active phases, given pressures,
// compositions and temperature. Enthalpies are computed in thermal modes
func CompleteThermodynamics(fs *fluid.State, fsys fluid.System, mode inp.EnergyMode) (err error) {
	for ph := 0; ph < fs.Nphases; ph++ {
		if !fsys.PhaseIsActive(ph) {
			continue
		}
		rho, err := fsys.Density(fs, ph)
		if err != nil {
			return err
		}
		fs.SetDensity(ph, rho)
		mu, err := fsys.Viscosity(fs, ph)
		if err != nil {
			return err
		}
		fs.SetViscosity(ph, mu)
		if mode.Thermal() {
			h, err := fsys.Enthalpy(fs, ph)
			if err != nil {
				return err
			}
			fs.SetEnthalpy(ph, h)
		}
	}
	return
}

// Mobilities computes relative permeabilities and mobilities λ = kr/μ of all phases
//  Note: inactive phases have zero mobility; without material law kr = 1
func Mobilities(kr, mob []ad.Evaluation, fs *fluid.State, ctx *Context) (err error) {
	law := ctx.Problem.MaterialLaw()
	if law == nil {
		for ph := range kr {
			kr[ph] = ad.Constant(1)
		}
	} else {
		err = law.RelativePermeabilities(kr, fs)
		if err != nil {
			return
		}
	}
	for ph := range mob {
		if !ctx.Fsys.PhaseIsActive(ph) {
			mob[ph] = ad.Constant(0)
			continue
		}
		mob[ph] = kr[ph].Div(fs.Viscosity(ph))
	}
	return
}

// SetEnergyQuantities sets the rock internal energy and the total thermal conductivity
func (o *IntensiveQuantities) SetEnergyQuantities(rockInternalEnergy, totalThermalConductivity ad.Evaluation) {
	o.rockInternalEnergy = rockInternalEnergy
	o.totalThermalConductivity = totalThermalConductivity
}

// checkDefined panics if any quantity is not finite
func (o *IntensiveQuantities) checkDefined(dofIdx, timeIdx int) {
	check := func(name string, e ad.Evaluation) {
		if err := ad.CheckDefined(name, e); err != nil {
			chk.Panic("intensive quantities of DOF %d at time level %d: %v", dofIdx, timeIdx, err)
		}
	}
	check("temperature", o.fs.Temperature())
	check("diffusion coefficient", o.diffCoeff)
	for ph := 0; ph < o.fs.Nphases; ph++ {
		check(io.Sf("pressure[%d]", ph), o.fs.Pressure(ph))
		check(io.Sf("saturation[%d]", ph), o.fs.Saturation(ph))
		check(io.Sf("density[%d]", ph), o.fs.Density(ph))
		check(io.Sf("mobility[%d]", ph), o.mobility[ph])
		for c := 0; c < o.fs.Ncomps; c++ {
			check(io.Sf("moleFraction[%d][%d]", ph, c), o.fs.MoleFraction(ph, c))
		}
	}
	if o.mode == inp.EnergyFull {
		check("rock internal energy", o.rockInternalEnergy)
		check("total thermal conductivity", o.totalThermalConductivity)
	}
}

// getters //////////////////////////////////////////////////////////////////////////////////////////

// FluidState returns the thermodynamic state
func (o *IntensiveQuantities) FluidState() *fluid.State { return o.fs }

// Pressure returns the pressure of a phase
func (o *IntensiveQuantities) Pressure(phaseIdx int) ad.Evaluation { return o.fs.Pressure(phaseIdx) }

// Temperature returns the temperature
func (o *IntensiveQuantities) Temperature() ad.Evaluation { return o.fs.Temperature() }

// Saturation returns the saturation of a phase
func (o *IntensiveQuantities) Saturation(phaseIdx int) ad.Evaluation {
	return o.fs.Saturation(phaseIdx)
}

// Density returns the mass density of a phase
func (o *IntensiveQuantities) Density(phaseIdx int) ad.Evaluation { return o.fs.Density(phaseIdx) }

// MolarDensity returns the molar density of a phase
func (o *IntensiveQuantities) MolarDensity(phaseIdx int) ad.Evaluation {
	return o.fs.MolarDensity(phaseIdx)
}

// Viscosity returns the viscosity of a phase
func (o *IntensiveQuantities) Viscosity(phaseIdx int) ad.Evaluation {
	return o.fs.Viscosity(phaseIdx)
}

// MoleFraction returns the mole fraction of a component in a phase
func (o *IntensiveQuantities) MoleFraction(phaseIdx, compIdx int) ad.Evaluation {
	return o.fs.MoleFraction(phaseIdx, compIdx)
}

// MassFraction returns the mass fraction of a component in a phase
func (o *IntensiveQuantities) MassFraction(phaseIdx, compIdx int) ad.Evaluation {
	return o.fs.MassFraction(phaseIdx, compIdx)
}

// Molarity returns the concentration of a component in a phase
func (o *IntensiveQuantities) Molarity(phaseIdx, compIdx int) ad.Evaluation {
	return o.fs.Molarity(phaseIdx, compIdx)
}

// RelativePermeability returns kr of a phase
func (o *IntensiveQuantities) RelativePermeability(phaseIdx int) ad.Evaluation {
	return o.relPerm[phaseIdx]
}

// Mobility returns λ = kr/μ of a phase
func (o *IntensiveQuantities) Mobility(phaseIdx int) ad.Evaluation { return o.mobility[phaseIdx] }

// Porosity returns φ
func (o *IntensiveQuantities) Porosity() float64 { return o.porosity }

// ReferencePorosity returns φ at reference pressure
func (o *IntensiveQuantities) ReferencePorosity() float64 { return o.refPorosity }

// Tortuosity returns τ
func (o *IntensiveQuantities) Tortuosity() float64 { return o.tortuosity }

// Dispersivity returns α
func (o *IntensiveQuantities) Dispersivity() float64 { return o.dispersivity }

// DiffCoeff returns the binary diffusion coefficient of phase 0
func (o *IntensiveQuantities) DiffCoeff() ad.Evaluation { return o.diffCoeff }

// RockInternalEnergy returns the internal energy of the rock per unit volume of solids
//  Note: panics unless the energy equation is solved
func (o *IntensiveQuantities) RockInternalEnergy() ad.Evaluation {
	if o.mode != inp.EnergyFull {
		chk.Panic("rock internal energy is not available with energy mode %q", o.mode)
	}
	return o.rockInternalEnergy
}

// TotalThermalConductivity returns the conductivity of the fluid-filled medium
//  Note: panics unless the energy equation is solved
func (o *IntensiveQuantities) TotalThermalConductivity() ad.Evaluation {
	if o.mode != inp.EnergyFull {
		chk.Panic("total thermal conductivity is not available with energy mode %q", o.mode)
	}
	return o.totalThermalConductivity
}
