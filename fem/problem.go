// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/gosl/chk"
	"github.com/vkip/opm-models/ad"
	"github.com/vkip/opm-models/ele"
	"github.com/vkip/opm-models/ele/onep2c"
	"github.com/vkip/opm-models/inp"
	"github.com/vkip/opm-models/mdl/conduct"
	"github.com/vkip/opm-models/mdl/fluid"
	"github.com/vkip/opm-models/mdl/porous"
	"github.com/vkip/opm-models/mdl/relperm"
	"github.com/vkip/opm-models/mdl/solidenergy"
)

// Medium defines the porous medium; e.g. porous.Model or porous.Zones
type Medium interface {
	ele.SpatialParams
	Permeability(dof int) float64 // intrinsic permeability
}

// BoundaryCond holds the state of the fluid outside the boundary faces with a given tag
//  Note: boundary faces without condition are impermeable
type BoundaryCond struct {
	P  float64   // pressure of all phases
	S  []float64 // [nphases-1] saturations of phases 0 ... nphases-2; may be empty
	X1 float64   // 1p2c: mass (or mole) fraction of component 1
	T  float64   // temperature; ≤ 0 means the ambient temperature
}

// Problem implements ele.Problem using the geometry of a grid and the materials of a configuration
//
//   transmissibility:          T = A・K̄/d   K̄: harmonic mean of permeabilities
//   boundary transmissibility: T = A・K_in/d_b
//   thermal half-transmissibilities: α = 2A/d (interior) and α = 1/d_b (boundary)
type Problem struct {
	Grid     Grid                 // grid
	Medium   Medium               // porous medium
	Relperm  relperm.Model        // relative permeabilities; may be nil
	Conduct  conduct.Model        // thermal conduction; full energy only
	SolidEn  solidenergy.Model    // rock internal energy; full energy only
	T0       float64              // ambient temperature
	Bcs      map[int]BoundaryCond // boundary conditions by tag
	Sources  map[int][]float64    // [dof][neq] sources per unit volume
	UseMoles bool                 // 1p2c: X1 of boundary conditions is a mole fraction
	Model    string               // name of model
}

// NewProblem returns a new problem with the materials of a configuration
func NewProblem(cfg *inp.Config, grid Grid, T0 float64) (o *Problem, err error) {
	if T0 <= 0 {
		return nil, chk.Err("ambient temperature must be positive. T0 = %g is invalid", T0)
	}
	o = &Problem{Grid: grid, T0: T0, UseMoles: cfg.UseMoles, Model: cfg.Model}
	o.Bcs = make(map[int]BoundaryCond)
	o.Sources = make(map[int][]float64)
	m := cfg.Mdb.Get(cfg.PorousMat, "porous")
	if m == nil {
		return nil, chk.Err("cannot find porous material %q", cfg.PorousMat)
	}
	o.Medium = m.Porous
	if cfg.RelpermMat != "" {
		if m = cfg.Mdb.Get(cfg.RelpermMat, "relperm"); m != nil {
			o.Relperm = m.Relperm
		}
	}
	if m = cfg.Mdb.Get(cfg.ConductMat, "conduct"); m != nil {
		o.Conduct = m.Conduct
	}
	if m = cfg.Mdb.Get(cfg.SolidEnMat, "solidenergy"); m != nil {
		o.SolidEn = m.SolidEnergy
	}
	return
}

// Temperature returns the ambient temperature
func (o *Problem) Temperature(ctx *ele.Context, dofIdx, timeIdx int) float64 { return o.T0 }

// Source adds the sources of a DOF
func (o *Problem) Source(rate ele.RateVector, ctx *ele.Context, dofIdx, timeIdx int) (err error) {
	src, ok := o.Sources[ctx.GlobalDof(dofIdx)]
	if !ok {
		return
	}
	if len(src) != len(rate) {
		return chk.Err("sources of DOF %d must have %d values. %d is invalid", ctx.GlobalDof(dofIdx), len(rate), len(src))
	}
	for eq, v := range src {
		rate[eq] = rate[eq].AddScalar(v)
	}
	return
}

// SpatialParams returns the porous medium
func (o *Problem) SpatialParams() ele.SpatialParams { return o.Medium }

// MaterialLaw returns the relative permeability law
func (o *Problem) MaterialLaw() ele.MaterialLaw {
	if o.Relperm == nil {
		return nil
	}
	return o.Relperm
}

// Transmissibility returns the hydraulic transmissibility of an interior face
func (o *Problem) Transmissibility(ctx *ele.Context, faceIdx int) float64 {
	face := ctx.Stencil().Faces[faceIdx]
	kin := o.Medium.Permeability(ctx.GlobalDof(face.Interior))
	kex := o.Medium.Permeability(ctx.GlobalDof(face.Exterior))
	if kin <= 0 || kex <= 0 {
		return 0
	}
	return face.Area * 2.0 * kin * kex / (kin + kex) / face.Distance
}

// BoundaryTransmissibility returns the hydraulic transmissibility of a boundary face
func (o *Problem) BoundaryTransmissibility(ctx *ele.Context, bfIdx int) float64 {
	face := ctx.Stencil().BoundaryFaces[bfIdx]
	return face.Area * o.Medium.Permeability(ctx.GlobalDof(face.Interior)) / face.Distance
}

// BoundaryState sets the state outside a boundary face
func (o *Problem) BoundaryState(fs *fluid.State, ctx *ele.Context, bfIdx, timeIdx int) (ok bool, err error) {
	bc, ok := o.Bcs[ctx.Stencil().BoundaryFaces[bfIdx].Tag]
	if !ok {
		return
	}
	T := bc.T
	if T <= 0 {
		T = o.T0
	}
	fs.SetTemperature(ad.Constant(T))
	sum := 0.0
	for ph := 0; ph < fs.Nphases; ph++ {
		fs.SetPressure(ph, ad.Constant(bc.P))
		if ph < fs.Nphases-1 {
			if ph >= len(bc.S) {
				return false, chk.Err("boundary condition requires %d saturations. %d is invalid", fs.Nphases-1, len(bc.S))
			}
			fs.SetSaturation(ph, ad.Constant(bc.S[ph]))
			sum += bc.S[ph]
		} else {
			fs.SetSaturation(ph, ad.Constant(1-sum))
		}
	}
	if o.Model == "1p2c" {
		x1 := ad.Constant(bc.X1)
		if !o.UseMoles {
			x1 = onep2c.MassToMoleFraction(x1, fs.MolarMass[0], fs.MolarMass[1])
		}
		fs.SetMoleFraction(0, 0, x1.Neg().AddScalar(1))
		fs.SetMoleFraction(0, 1, x1)
		return
	}
	for ph := 0; ph < fs.Nphases; ph++ {
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

// SolidEnergyLaw returns the rock internal energy model
func (o *Problem) SolidEnergyLaw() solidenergy.Model { return o.SolidEn }

// ThermalConductionLaw returns the thermal conduction model
func (o *Problem) ThermalConductionLaw() conduct.Model { return o.Conduct }

// ThermalHalfTransmissibilityIn returns 2A/d
func (o *Problem) ThermalHalfTransmissibilityIn(ctx *ele.Context, faceIdx int) float64 {
	face := ctx.Stencil().Faces[faceIdx]
	return 2.0 * face.Area / face.Distance
}

// ThermalHalfTransmissibilityOut returns 2A/d
func (o *Problem) ThermalHalfTransmissibilityOut(ctx *ele.Context, faceIdx int) float64 {
	return o.ThermalHalfTransmissibilityIn(ctx, faceIdx)
}

// ThermalHalfTransmissibilityBoundary returns 1/d_b
func (o *Problem) ThermalHalfTransmissibilityBoundary(ctx *ele.Context, bfIdx int) float64 {
	return 1.0 / ctx.Stencil().BoundaryFaces[bfIdx].Distance
}

// interface check
var _ ele.Problem = (*Problem)(nil)

// check that the porous models are media
var (
	_ Medium = (*porous.Model)(nil)
	_ Medium = (*porous.Zones)(nil)
)
