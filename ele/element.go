// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ele implements the local residual of control-volume finite volume discretisations of
// porous media flow. The residual of each degree of freedom (DOF) and its derivatives with
// respect to the primary variables of all DOFs in a stencil are computed by forward automatic
// differentiation: only the "focus" DOF carries derivatives at any time.
package ele

import (
	goio "io"

	"github.com/vkip/opm-models/ad"
	"github.com/vkip/opm-models/inp"
	"github.com/vkip/opm-models/mdl/conduct"
	"github.com/vkip/opm-models/mdl/fluid"
	"github.com/vkip/opm-models/mdl/solidenergy"
)

// Model defines what all physical models must implement
//
//	Note: the rate vectors are reset by the caller; implementations only add to them
type Model interface {

	// information and initialisation
	Name() string                                       // name of model; e.g. "immiscible"
	Init(cfg *inp.Config) (err error)                   // initialises model with configuration data
	NumEq() int                                         // number of equations == number of primary variables
	PrimaryVarName(pvIdx int) string                    // name of a primary variable not owned by the energy extension
	EqName(eqIdx int) string                            // name of an equation not owned by the energy extension
	PrimaryVarWeight(pvIdx int, pv PrimaryVars) float64 // weight of a primary variable in update errors

	// intensive quantities
	CompleteFluidState(fs *fluid.State, ctx *Context, dofIdx, timeIdx int) (err error) // sets pressures, saturations and compositions

	// residual terms
	ComputeStorage(storage RateVector, ctx *Context, dofIdx, timeIdx int) (err error)       // conserved quantities per unit volume
	ComputeFlux(flux RateVector, ctx *Context, ev *ExtensiveQuantities) (err error)         // fluxes per unit area across an interior face
	ComputeBoundaryFlux(flux RateVector, ctx *Context, ev *ExtensiveQuantities) (err error) // fluxes per unit area across a boundary face
	ComputeSource(source RateVector, ctx *Context, dofIdx, timeIdx int) (err error)         // sources per unit volume
}

// Problem defines the physical problem; i.e. the collaborators providing temperature, sources,
// boundary conditions and geometry-dependent coefficients
type Problem interface {

	// Temperature returns the ambient temperature used when temperature is not a primary variable
	Temperature(ctx *Context, dofIdx, timeIdx int) float64

	// Source adds sources per unit volume to rate
	Source(rate RateVector, ctx *Context, dofIdx, timeIdx int) (err error)

	// SpatialParams returns the porosity/tortuosity/dispersivity provider
	SpatialParams() SpatialParams

	// MaterialLaw returns the relative permeability law; nil means kr = 1 for all phases
	MaterialLaw() MaterialLaw

	// Transmissibility returns the hydraulic transmissibility of an interior face
	Transmissibility(ctx *Context, faceIdx int) float64

	// BoundaryTransmissibility returns the hydraulic transmissibility of a boundary face
	BoundaryTransmissibility(ctx *Context, bfIdx int) float64

	// BoundaryState sets pressure, saturation, composition and temperature of the fluid outside a
	// boundary face. It returns false if the face is impermeable; i.e. no flux is computed
	BoundaryState(fs *fluid.State, ctx *Context, bfIdx, timeIdx int) (ok bool, err error)

	// SolidEnergyLaw returns the model of the energy stored in the rock (full energy only)
	SolidEnergyLaw() solidenergy.Model

	// ThermalConductionLaw returns the total thermal conductivity model (full energy only)
	ThermalConductionLaw() conduct.Model

	// ThermalHalfTransmissibilityIn returns the geometric factor α of the interior half of a face
	ThermalHalfTransmissibilityIn(ctx *Context, faceIdx int) float64

	// ThermalHalfTransmissibilityOut returns the geometric factor α of the exterior half of a face
	ThermalHalfTransmissibilityOut(ctx *Context, faceIdx int) float64

	// ThermalHalfTransmissibilityBoundary returns the geometric factor α of a boundary face
	ThermalHalfTransmissibilityBoundary(ctx *Context, bfIdx int) float64
}

// SpatialParams defines the parameters of the porous medium at each (global) DOF
type SpatialParams interface {
	Porosity(dof int) float64          // porosity
	ReferencePorosity(dof int) float64 // porosity at reference pressure
	Tortuosity(dof int) float64        // tortuosity
	Dispersivity(dof int) float64      // longitudinal dispersivity
}

// MaterialLaw defines the relative permeability law
type MaterialLaw interface {
	RelativePermeabilities(kr []ad.Evaluation, fs *fluid.State) error // computes kr of all phases
}

// EnergyExtension defines the optional energy conservation extension. All variants implement the
// same interface; the variants without energy equation implement no-ops
type EnergyExtension interface {

	// information
	Mode() inp.EnergyMode               // energy mode
	PrimaryVarApplies(pvIdx int) bool   // tells whether a primary variable slot belongs to this extension
	PrimaryVarName(pvIdx int) string    // name of primary variable; panics if it does not apply
	PrimaryVarWeight(pvIdx int) float64 // weight of primary variable; panics if it does not apply
	EqApplies(eqIdx int) bool           // tells whether an equation slot belongs to this extension
	EqName(eqIdx int) string            // name of equation; panics if it does not apply
	EqWeight(eqIdx int) float64         // weight of equation; panics if it does not apply

	// intensive quantities
	UpdateTemperature(fs *fluid.State, ctx *Context, dofIdx, timeIdx int) (err error)              // sets the temperature of fs
	UpdateEnergyQuantities(iq *IntensiveQuantities, ctx *Context, dofIdx, timeIdx int) (err error) // rock internal energy and conductivity

	// residual terms
	AddStorage(storage RateVector, ctx *Context, iq *IntensiveQuantities)                                // adds energy storage
	ComputeFlux(flux RateVector, ctx *Context, ev *ExtensiveQuantities)                                  // adds advective and conductive energy fluxes
	UpdateEnergyFlux(ev *ExtensiveQuantities, ctx *Context, faceIdx int) (err error)                     // conductive flux across an interior face
	UpdateEnergyBoundary(ev *ExtensiveQuantities, ctx *Context, bfIdx int, bfs *fluid.State) (err error) // conductive flux across a boundary face

	// Newton method hooks
	AssignPrimaryVars(pv PrimaryVars, fs *fluid.State)             // sets the temperature slot from a fluid state
	UpdatePrimaryVars(newPv, oldPv PrimaryVars, delta []float64)   // newPv = oldPv - delta for the temperature slot
	ComputeUpdateError(oldPv PrimaryVars, delta []float64) float64 // weighted error of the temperature update
	ComputeResidualError(resid []float64) float64                  // weighted error of the energy residual

	// persistence
	SerializeEntity(w goio.Writer, pv PrimaryVars) (err error)           // writes the temperature token
	DeserializeEntity(r goio.Reader, pv, pvPrev PrimaryVars) (err error) // reads the temperature token into both time levels
}
