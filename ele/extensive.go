// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"github.com/cpmech/gosl/chk"
	"github.com/vkip/opm-models/ad"
	"github.com/vkip/opm-models/inp"
	"github.com/vkip/opm-models/mdl/fluid"
)

// ExtensiveQuantities holds the quantities of one face; i.e. those depending on both sides
//
//   Δp = p_in - p_ex
//   λ_up = λ_in if Δp ≥ 0; λ_ex otherwise
//   q = T・λ_up・Δp / A   (volume flux per unit area)
//   upstream = exterior if q < 0; interior otherwise
//
type ExtensiveQuantities struct {

	// face
	Interior int     // local index of interior DOF
	Exterior int     // local index of exterior DOF; BoundaryIdx on boundary faces
	Area     float64 // area of face
	Distance float64 // distance between the centres of interior and exterior (or face)
	Boundary bool    // boundary face

	// per phase
	pressureDiff []ad.Evaluation // [nphases] Δp
	volumeFlux   []ad.Evaluation // [nphases] q
	upstream     []int           // [nphases] local index of upstream DOF or BoundaryIdx

	// boundary
	bfs  *fluid.State    // state outside the boundary face
	bkr  []ad.Evaluation // [nphases] relative permeabilities outside
	bmob []ad.Evaluation // [nphases] mobilities outside

	// energy; full energy only
	mode       inp.EnergyMode
	energyFlux ad.Evaluation
}

// NewExtensiveQuantities allocates extensive quantities for nphases phases
func NewExtensiveQuantities(nphases int) (o *ExtensiveQuantities) {
	o = new(ExtensiveQuantities)
	o.pressureDiff = make([]ad.Evaluation, nphases)
	o.volumeFlux = make([]ad.Evaluation, nphases)
	o.upstream = make([]int, nphases)
	o.bkr = make([]ad.Evaluation, nphases)
	o.bmob = make([]ad.Evaluation, nphases)
	return
}

// Update computes the quantities of an interior face
func (o *ExtensiveQuantities) Update(ctx *Context, faceIdx int) (err error) {
	face := ctx.Stencil().Faces[faceIdx]
	o.Interior, o.Exterior = face.Interior, face.Exterior
	o.Area, o.Distance = face.Area, face.Distance
	o.Boundary = false
	o.bfs = nil
	o.mode = ctx.Energy.Mode()

	iqIn := ctx.IntensiveQuantities(o.Interior, 0)
	iqEx := ctx.IntensiveQuantities(o.Exterior, 0)
	focusIn := ctx.IsFocus(o.Interior, 0)
	focusEx := ctx.IsFocus(o.Exterior, 0)
	trans := ctx.Problem.Transmissibility(ctx, faceIdx)

	for ph := range o.volumeFlux {
		if !ctx.Fsys.PhaseIsActive(ph) {
			o.pressureDiff[ph] = ad.Constant(0)
			o.volumeFlux[ph] = ad.Constant(0)
			o.upstream[ph] = o.Interior
			continue
		}
		pin := ad.Select(iqIn.Pressure(ph), focusIn)
		pex := ad.Select(iqEx.Pressure(ph), focusEx)
		o.pressureDiff[ph] = pin.Sub(pex)
		mob := ad.Select(iqIn.Mobility(ph), focusIn)
		if o.pressureDiff[ph].Value < 0 {
			mob = ad.Select(iqEx.Mobility(ph), focusEx)
		}
		o.volumeFlux[ph] = mob.Mul(o.pressureDiff[ph]).Scale(trans / o.Area)
		o.upstream[ph] = o.upstreamOf(o.volumeFlux[ph], o.Exterior)
	}

	o.energyFlux = ad.Constant(0)
	err = ctx.Energy.UpdateEnergyFlux(o, ctx, faceIdx)
	if err != nil {
		return
	}
	if DebugChecks {
		o.checkDefined()
	}
	return
}

// UpdateBoundary computes the quantities of a boundary face given the state outside the domain
//  Note: thermodynamic quantities of bfs must be computed already
func (o *ExtensiveQuantities) UpdateBoundary(ctx *Context, bfIdx int, bfs *fluid.State) (err error) {
	face := ctx.Stencil().BoundaryFaces[bfIdx]
	o.Interior, o.Exterior = face.Interior, BoundaryIdx
	o.Area, o.Distance = face.Area, face.Distance
	o.Boundary = true
	o.bfs = bfs
	o.mode = ctx.Energy.Mode()

	iqIn := ctx.IntensiveQuantities(o.Interior, 0)
	focusIn := ctx.IsFocus(o.Interior, 0)
	trans := ctx.Problem.BoundaryTransmissibility(ctx, bfIdx)
	err = Mobilities(o.bkr, o.bmob, bfs, ctx)
	if err != nil {
		return
	}

	for ph := range o.volumeFlux {
		if !ctx.Fsys.PhaseIsActive(ph) {
			o.pressureDiff[ph] = ad.Constant(0)
			o.volumeFlux[ph] = ad.Constant(0)
			o.upstream[ph] = o.Interior
			continue
		}
		pin := ad.Select(iqIn.Pressure(ph), focusIn)
		o.pressureDiff[ph] = pin.Sub(bfs.Pressure(ph).Decay())
		mob := ad.Select(iqIn.Mobility(ph), focusIn)
		if o.pressureDiff[ph].Value < 0 {
			mob = o.bmob[ph].Decay()
		}
		o.volumeFlux[ph] = mob.Mul(o.pressureDiff[ph]).Scale(trans / o.Area)
		o.upstream[ph] = o.upstreamOf(o.volumeFlux[ph], BoundaryIdx)
	}

	o.energyFlux = ad.Constant(0)
	err = ctx.Energy.UpdateEnergyBoundary(o, ctx, bfIdx, bfs)
	if err != nil {
		return
	}
	if DebugChecks {
		o.checkDefined()
	}
	return
}

// upstreamOf returns the interior DOF unless the flux leaves the exterior side
//  Note: a zero flux (e.g. T = 0 or λ_up = 0) belongs to the interior
func (o *ExtensiveQuantities) upstreamOf(q ad.Evaluation, exterior int) int {
	if q.Value < 0 {
		return exterior
	}
	return o.Interior
}

// Upstream returns the fluid state of the upstream side of a phase and whether it carries
// derivatives; i.e. whether it belongs to the focus DOF
func (o *ExtensiveQuantities) Upstream(ctx *Context, phaseIdx int) (fs *fluid.State, focus bool) {
	up := o.upstream[phaseIdx]
	if up == BoundaryIdx {
		return o.bfs, false
	}
	return ctx.IntensiveQuantities(up, 0).FluidState(), ctx.IsFocus(up, 0)
}

// SetEnergyFlux sets the conductive energy flux per unit area
func (o *ExtensiveQuantities) SetEnergyFlux(v ad.Evaluation) { o.energyFlux = v }

// checkDefined panics if any quantity is not finite
func (o *ExtensiveQuantities) checkDefined() {
	for ph := range o.volumeFlux {
		if err := ad.CheckDefined("volume flux", o.volumeFlux[ph]); err != nil {
			chk.Panic("extensive quantities of face (%d, %d), phase %d: %v", o.Interior, o.Exterior, ph, err)
		}
	}
	if err := ad.CheckDefined("energy flux", o.energyFlux); err != nil {
		chk.Panic("extensive quantities of face (%d, %d): %v", o.Interior, o.Exterior, err)
	}
}

// getters //////////////////////////////////////////////////////////////////////////////////////////

// PressureDifference returns Δp = p_in - p_ex of a phase
func (o *ExtensiveQuantities) PressureDifference(phaseIdx int) ad.Evaluation {
	return o.pressureDiff[phaseIdx]
}

// VolumeFlux returns the volume flux per unit area of a phase
func (o *ExtensiveQuantities) VolumeFlux(phaseIdx int) ad.Evaluation {
	return o.volumeFlux[phaseIdx]
}

// UpstreamIndex returns the local index of the upstream DOF of a phase; BoundaryIdx if outside
func (o *ExtensiveQuantities) UpstreamIndex(phaseIdx int) int { return o.upstream[phaseIdx] }

// DownstreamIndex returns the local index of the downstream DOF of a phase
func (o *ExtensiveQuantities) DownstreamIndex(phaseIdx int) int {
	if o.upstream[phaseIdx] == o.Interior {
		return o.Exterior
	}
	return o.Interior
}

// BoundaryState returns the state outside a boundary face; nil for interior faces
func (o *ExtensiveQuantities) BoundaryState() *fluid.State { return o.bfs }

// EnergyFlux returns the conductive energy flux per unit area
//  Note: panics unless the energy equation is solved
func (o *ExtensiveQuantities) EnergyFlux() ad.Evaluation {
	if o.mode != inp.EnergyFull {
		chk.Panic("energy flux is not available with energy mode %q", o.mode)
	}
	return o.energyFlux
}
