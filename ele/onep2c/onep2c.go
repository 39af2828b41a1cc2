// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package onep2c implements the single-phase two-component model with molecular diffusion and
// mechanical dispersion
//
//   primary variables: p, x1 (mole fraction) or X1 (mass fraction) [, θ]
//   equations:         total mass (moles), mass (moles) of component 1 [, energy]
//
//   storage: φ・ρ, φ・ρ・X1                 (mass)
//            φ・ρm, φ・ρm・x1               (moles)
//   flux:    ρ(up)・q, ρ(up)・X1(up)・q + j  (mass; analogous for moles)
//   j = -ρ̄・Deff・(X1_ex - X1_in) / d
//   Deff = harmonic(φ・τ・D) + ᾱ・|q|
package onep2c

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/vkip/opm-models/ad"
	"github.com/vkip/opm-models/ele"
	"github.com/vkip/opm-models/inp"
	"github.com/vkip/opm-models/mdl/fluid"
)

func init() {
	ele.SetAllocator("1p2c", func() ele.Model { return new(Model) })
}

// Model implements the 1p2c model
type Model struct {
	Idx      inp.Indices // slots of primary variables and equations
	UseMoles bool        // primary variable and equations in moles
	M0, M1   float64     // molar masses of components
}

// Name returns "1p2c"
func (o *Model) Name() string { return "1p2c" }

// Init initialises model
func (o *Model) Init(cfg *inp.Config) (err error) {
	if cfg.Model != o.Name() {
		return chk.Err("configuration is for model %q; cannot initialise %q", cfg.Model, o.Name())
	}
	if cfg.Idx.NumEq < 2 {
		return chk.Err("indices of configuration are not set; configuration must be post-processed first")
	}
	fsys, err := cfg.FluidSystem()
	if err != nil {
		return
	}
	if fsys.NumPhases() != 1 || fsys.NumComponents() != 2 {
		return chk.Err("fluid system %q has %d phases and %d components; %q requires 1 and 2", fsys.Name(), fsys.NumPhases(), fsys.NumComponents(), o.Name())
	}
	o.Idx = cfg.Idx
	o.UseMoles = cfg.UseMoles
	o.M0, o.M1 = fsys.MolarMass(0), fsys.MolarMass(1)
	return
}

// NumEq returns the number of equations
func (o *Model) NumEq() int { return o.Idx.NumEq }

// PrimaryVarName returns the name of a primary variable
func (o *Model) PrimaryVarName(pvIdx int) string {
	switch pvIdx {
	case o.Idx.PressureIdx:
		return "pressure"
	case o.Idx.MoleFracIdx:
		if o.UseMoles {
			return "x1"
		}
		return "X1"
	}
	chk.Panic("primary variable %d does not belong to %q model", pvIdx, o.Name())
	return ""
}

// EqName returns the name of an equation
func (o *Model) EqName(eqIdx int) string {
	switch eqIdx {
	case o.Idx.Conti0EqIdx:
		return "conti_total"
	case o.Idx.Conti0EqIdx + 1:
		return "conti_1"
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

// CompleteFluidState sets pressure, saturation and compositions
func (o *Model) CompleteFluidState(fs *fluid.State, ctx *ele.Context, dofIdx, timeIdx int) (err error) {
	fs.SetPressure(0, ctx.MakeEvaluation(dofIdx, timeIdx, o.Idx.PressureIdx))
	fs.SetSaturation(0, ad.Constant(1))
	x1 := ctx.MakeEvaluation(dofIdx, timeIdx, o.Idx.MoleFracIdx)
	if !o.UseMoles {
		x1 = MassToMoleFraction(x1, o.M0, o.M1)
	}
	fs.SetMoleFraction(0, 0, x1.Neg().AddScalar(1))
	fs.SetMoleFraction(0, 1, x1)
	return
}

// ComputeStorage computes the total amount and the amount of component 1 per unit volume
func (o *Model) ComputeStorage(storage ele.RateVector, ctx *ele.Context, dofIdx, timeIdx int) (err error) {
	iq := ctx.IntensiveQuantities(dofIdx, timeIdx)
	dens, frac := o.densityAndFraction(iq.FluidState(), true)
	eq0 := o.Idx.Conti0EqIdx
	total := dens.Scale(iq.Porosity())
	storage[eq0] = storage[eq0].Add(total)
	storage[eq0+1] = storage[eq0+1].Add(total.Mul(frac))
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
	o.AddAdvectiveFlux(flux, ctx, ev)
	o.AddBoundaryDiffusiveFlux(flux, ctx, ev)
	return
}

// ComputeSource computes the sources given by the problem
func (o *Model) ComputeSource(source ele.RateVector, ctx *ele.Context, dofIdx, timeIdx int) (err error) {
	return ele.ProblemSource(source, ctx, dofIdx, timeIdx)
}

// AddAdvectiveFlux adds the advective fluxes and the advective energy flux
func (o *Model) AddAdvectiveFlux(flux ele.RateVector, ctx *ele.Context, ev *ele.ExtensiveQuantities) {
	up, focus := ev.Upstream(ctx, 0)
	dens, frac := o.densityAndFraction(up, focus)
	q := ev.VolumeFlux(0)
	eq0 := o.Idx.Conti0EqIdx
	total := dens.Mul(q)
	flux[eq0] = flux[eq0].Add(total)
	flux[eq0+1] = flux[eq0+1].Add(total.Mul(frac))
	ctx.Energy.ComputeFlux(flux, ctx, ev)
}

// AddDiffusiveFlux adds the diffusive and dispersive flux of component 1 across an interior face
func (o *Model) AddDiffusiveFlux(flux ele.RateVector, ctx *ele.Context, ev *ele.ExtensiveQuantities) {
	in, ex := ev.Interior, ev.Exterior
	focusIn, focusEx := ctx.IsFocus(in, 0), ctx.IsFocus(ex, 0)
	iqIn := ctx.IntensiveQuantities(in, 0)
	iqEx := ctx.IntensiveQuantities(ex, 0)
	densIn, fracIn := o.densityAndFraction(iqIn.FluidState(), focusIn)
	densEx, fracEx := o.densityAndFraction(iqEx.FluidState(), focusEx)

	// effective diffusion coefficient
	dIn := ad.Select(iqIn.DiffCoeff(), focusIn).Scale(iqIn.Porosity() * iqIn.Tortuosity())
	dEx := ad.Select(iqEx.DiffCoeff(), focusEx).Scale(iqEx.Porosity() * iqEx.Tortuosity())
	alpha := (iqIn.Dispersivity() + iqEx.Dispersivity()) / 2.0
	deff := HarmonicMean(dIn, dEx).Add(ad.Abs(ev.VolumeFlux(0)).Scale(alpha))

	// j = -ρ̄・Deff・∇X1
	rho := densIn.Add(densEx).Scale(0.5)
	grad := fracEx.Sub(fracIn).Scale(1.0 / ev.Distance)
	eq := o.Idx.Conti0EqIdx + 1
	flux[eq] = flux[eq].Sub(rho.Mul(deff).Mul(grad))
}

// AddBoundaryDiffusiveFlux adds the diffusive and dispersive flux of component 1 across a
// boundary face. The coefficients of the interior are used
func (o *Model) AddBoundaryDiffusiveFlux(flux ele.RateVector, ctx *ele.Context, ev *ele.ExtensiveQuantities) {
	in := ev.Interior
	focus := ctx.IsFocus(in, 0)
	iq := ctx.IntensiveQuantities(in, 0)
	densIn, fracIn := o.densityAndFraction(iq.FluidState(), focus)
	densB, fracB := o.densityAndFraction(ev.BoundaryState(), false)
	deff := ad.Select(iq.DiffCoeff(), focus).Scale(iq.Porosity() * iq.Tortuosity())
	deff = deff.Add(ad.Abs(ev.VolumeFlux(0)).Scale(iq.Dispersivity()))
	rho := densIn.Add(densB).Scale(0.5)
	grad := fracB.Sub(fracIn).Scale(1.0 / ev.Distance)
	eq := o.Idx.Conti0EqIdx + 1
	flux[eq] = flux[eq].Sub(rho.Mul(deff).Mul(grad))
}

// densityAndFraction returns (ρ, X1) or (ρm, x1) depending on the formulation. The values are
// constant unless keep is true
func (o *Model) densityAndFraction(fs *fluid.State, keep bool) (dens, frac ad.Evaluation) {
	if o.UseMoles {
		dens = fs.MolarDensity(0)
		frac = fs.MoleFraction(0, 1)
	} else {
		dens = fs.Density(0)
		frac = fs.MassFraction(0, 1)
	}
	return ad.Select(dens, keep), ad.Select(frac, keep)
}

// HarmonicMean returns 2ab/(a+b); zero if a or b is not positive
func HarmonicMean(a, b ad.Evaluation) ad.Evaluation {
	if a.Value <= 0 || b.Value <= 0 {
		return ad.Constant(0)
	}
	return a.Mul(b).Scale(2).Div(a.Add(b))
}

// MassToMoleFraction converts the mass fraction X1 of component 1 to its mole fraction
//
//   M̄ = M0・M1 / (M1 + X1・(M0 - M1))
//   x1 = X1・M̄ / M1
//
func MassToMoleFraction(X1 ad.Evaluation, M0, M1 float64) ad.Evaluation {
	mean := X1.Scale(M0 - M1).AddScalar(M1).Inv().Scale(M0 * M1)
	return X1.Mul(mean).Scale(1.0 / M1)
}

// MoleToMassFraction converts the mole fraction x1 of component 1 to its mass fraction
//
//   M̄ = (1 - x1)・M0 + x1・M1
//   X1 = x1・M1 / M̄
//
func MoleToMassFraction(x1 ad.Evaluation, M0, M1 float64) ad.Evaluation {
	mean := x1.Scale(M1 - M0).AddScalar(M0)
	return x1.Scale(M1).Div(mean)
}
