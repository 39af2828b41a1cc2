// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"github.com/cpmech/gosl/chk"
	"github.com/vkip/opm-models/ad"
	"github.com/vkip/opm-models/mdl/fluid"
)

// LocalResidual assembles the residual of the primary DOFs of one stencil
//
//   R_i = (s_i(t) - s_i(t-Δt))・V_i / Δt
//       + Σ_faces f・A           (outflow positive)
//       - q_i・V_i               (sources)
//
//  Note: a local residual is owned by one goroutine
type LocalResidual struct {
	storage [2]RateVector        // storage at both time levels
	flux    RateVector           // flux across one face
	source  RateVector           // sources
	ev      *ExtensiveQuantities // face quantities
	bfs     *fluid.State         // state outside boundary faces
}

// NewLocalResidual allocates a local residual compatible with a context
func NewLocalResidual(ctx *Context) (o *LocalResidual) {
	o = new(LocalResidual)
	neq := ctx.Idx.NumEq
	o.storage[0] = NewRateVector(neq)
	o.storage[1] = NewRateVector(neq)
	o.flux = NewRateVector(neq)
	o.source = NewRateVector(neq)
	o.ev = NewExtensiveQuantities(ctx.Fsys.NumPhases())
	o.bfs = fluid.NewState(ctx.Fsys)
	return
}

// Eval computes the residual of all primary DOFs of the current stencil
//  Input:
//   ctx -- context with updated intensive quantities
//  Output:
//   residual -- [nprimary] residual vectors; derivatives with respect to the focus DOF
func (o *LocalResidual) Eval(residual []RateVector, ctx *Context) (err error) {

	// check
	st := ctx.Stencil()
	if len(residual) < st.Nprimary {
		chk.Panic("residual must have %d vectors. %d is invalid", st.Nprimary, len(residual))
	}
	dt := ctx.Dt()
	if dt <= 0 {
		return chk.Err("time step size must be positive. Δt = %g is invalid", dt)
	}
	for i := 0; i < st.Nprimary; i++ {
		residual[i].Reset()
	}

	// storage
	for i := 0; i < st.Nprimary; i++ {
		for t := 0; t < 2; t++ {
			o.storage[t].Reset()
			err = ctx.Model.ComputeStorage(o.storage[t], ctx, i, t)
			if err != nil {
				return
			}
		}
		coef := st.Volumes[i] / dt
		for eq := range residual[i] {
			residual[i][eq] = residual[i][eq].Add(o.storage[0][eq].Sub(o.storage[1][eq]).Scale(coef))
		}
	}

	// interior faces
	for f, face := range st.Faces {
		err = o.ev.Update(ctx, f)
		if err != nil {
			return
		}
		o.flux.Reset()
		err = ctx.Model.ComputeFlux(o.flux, ctx, o.ev)
		if err != nil {
			return
		}
		if DebugChecks {
			checkRate("flux", o.flux, face.Interior)
		}
		o.addFlux(residual, face.Interior, face.Exterior, face.Area, st.Nprimary)
	}

	// boundary faces
	for f, face := range st.BoundaryFaces {
		o.bfs.Reset()
		ok, err := ctx.Problem.BoundaryState(o.bfs, ctx, f, 0)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		err = CompleteThermodynamics(o.bfs, ctx.Fsys, ctx.Energy.Mode())
		if err != nil {
			return err
		}
		err = o.ev.UpdateBoundary(ctx, f, o.bfs)
		if err != nil {
			return err
		}
		o.flux.Reset()
		err = ctx.Model.ComputeBoundaryFlux(o.flux, ctx, o.ev)
		if err != nil {
			return err
		}
		if DebugChecks {
			checkRate("boundary flux", o.flux, face.Interior)
		}
		o.addFlux(residual, face.Interior, BoundaryIdx, face.Area, st.Nprimary)
	}

	// sources
	for i := 0; i < st.Nprimary; i++ {
		o.source.Reset()
		err = ctx.Model.ComputeSource(o.source, ctx, i, 0)
		if err != nil {
			return
		}
		for eq := range residual[i] {
			residual[i][eq] = residual[i][eq].Sub(o.source[eq].Scale(st.Volumes[i]))
		}
	}

	// check
	if DebugChecks {
		for i := 0; i < st.Nprimary; i++ {
			checkRate("residual", residual[i], i)
		}
	}
	return
}

// addFlux adds the outflow across a face to the interior residual and subtracts it from the
// exterior residual if the exterior DOF is primary
func (o *LocalResidual) addFlux(residual []RateVector, interior, exterior int, area float64, nprimary int) {
	for eq, v := range o.flux {
		va := v.Scale(area)
		residual[interior][eq] = residual[interior][eq].Add(va)
		if exterior >= 0 && exterior < nprimary {
			residual[exterior][eq] = residual[exterior][eq].Sub(va)
		}
	}
}

// ProblemSource adds the sources given by the problem and checks them when DebugChecks is on.
// Models may call this function in ComputeSource
func ProblemSource(source RateVector, ctx *Context, dofIdx, timeIdx int) (err error) {
	err = ctx.Problem.Source(source, ctx, dofIdx, timeIdx)
	if err != nil {
		return
	}
	if DebugChecks {
		checkRate("source", source, dofIdx)
	}
	return
}

// checkRate panics if any entry of a rate vector is not finite
func checkRate(name string, rate RateVector, dofIdx int) {
	for eq, v := range rate {
		if err := ad.CheckDefined(name, v); err != nil {
			chk.Panic("equation %d of DOF %d: %v", eq, dofIdx, err)
		}
	}
}
