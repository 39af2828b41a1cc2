// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package energy implements the variants of the energy conservation extension
package energy

import (
	goio "io"

	"github.com/cpmech/gosl/chk"
	"github.com/vkip/opm-models/ad"
	"github.com/vkip/opm-models/ele"
	"github.com/vkip/opm-models/inp"
	"github.com/vkip/opm-models/mdl/fluid"
)

// New returns the energy extension corresponding to the energy mode of a configuration
func New(cfg *inp.Config) (ele.EnergyExtension, error) {
	switch cfg.EnergyMode {
	case inp.EnergyDisabled:
		return new(Disabled), nil
	case inp.EnergyTemperatureOnly:
		return new(TemperatureOnly), nil
	case inp.EnergyFull:
		if cfg.Idx.TemperatureIdx < 0 || cfg.Idx.ContiEnergyEqIdx < 0 {
			return nil, chk.Err("indices have no temperature slot; configuration must be post-processed first")
		}
		return &Full{
			tIdx:       cfg.Idx.TemperatureIdx,
			eqIdx:      cfg.Idx.ContiEnergyEqIdx,
			tempWeight: cfg.TempWeight,
			eqScale:    cfg.EnergyScale,
		}, nil
	}
	return nil, chk.Err("energy mode %v is not available in 'energy' database", cfg.EnergyMode)
}

// Disabled implements the extension without energy equation; the temperature is given by the
// problem and no enthalpies are computed
type Disabled struct{}

// Mode returns EnergyDisabled
func (o *Disabled) Mode() inp.EnergyMode { return inp.EnergyDisabled }

// PrimaryVarApplies returns false
func (o *Disabled) PrimaryVarApplies(pvIdx int) bool { return false }

// PrimaryVarName panics
func (o *Disabled) PrimaryVarName(pvIdx int) string {
	chk.Panic("primary variable %d does not belong to the energy extension", pvIdx)
	return ""
}

// PrimaryVarWeight panics
func (o *Disabled) PrimaryVarWeight(pvIdx int) float64 {
	chk.Panic("primary variable %d does not belong to the energy extension", pvIdx)
	return 0
}

// EqApplies returns false
func (o *Disabled) EqApplies(eqIdx int) bool { return false }

// EqName panics
func (o *Disabled) EqName(eqIdx int) string {
	chk.Panic("equation %d does not belong to the energy extension", eqIdx)
	return ""
}

// EqWeight panics
func (o *Disabled) EqWeight(eqIdx int) float64 {
	chk.Panic("equation %d does not belong to the energy extension", eqIdx)
	return 0
}

// UpdateTemperature sets the temperature given by the problem
func (o *Disabled) UpdateTemperature(fs *fluid.State, ctx *ele.Context, dofIdx, timeIdx int) (err error) {
	fs.SetTemperature(ad.Constant(ctx.Problem.Temperature(ctx, dofIdx, timeIdx)))
	return
}

// UpdateEnergyQuantities does nothing
func (o *Disabled) UpdateEnergyQuantities(iq *ele.IntensiveQuantities, ctx *ele.Context, dofIdx, timeIdx int) (err error) {
	return
}

// AddStorage does nothing
func (o *Disabled) AddStorage(storage ele.RateVector, ctx *ele.Context, iq *ele.IntensiveQuantities) {}

// ComputeFlux does nothing
func (o *Disabled) ComputeFlux(flux ele.RateVector, ctx *ele.Context, ev *ele.ExtensiveQuantities) {}

// UpdateEnergyFlux does nothing
func (o *Disabled) UpdateEnergyFlux(ev *ele.ExtensiveQuantities, ctx *ele.Context, faceIdx int) (err error) {
	return
}

// UpdateEnergyBoundary does nothing
func (o *Disabled) UpdateEnergyBoundary(ev *ele.ExtensiveQuantities, ctx *ele.Context, bfIdx int, bfs *fluid.State) (err error) {
	return
}

// AssignPrimaryVars does nothing
func (o *Disabled) AssignPrimaryVars(pv ele.PrimaryVars, fs *fluid.State) {}

// UpdatePrimaryVars does nothing
func (o *Disabled) UpdatePrimaryVars(newPv, oldPv ele.PrimaryVars, delta []float64) {}

// ComputeUpdateError returns 0
func (o *Disabled) ComputeUpdateError(oldPv ele.PrimaryVars, delta []float64) float64 { return 0 }

// ComputeResidualError returns 0
func (o *Disabled) ComputeResidualError(resid []float64) float64 { return 0 }

// SerializeEntity writes nothing
func (o *Disabled) SerializeEntity(w goio.Writer, pv ele.PrimaryVars) (err error) { return }

// DeserializeEntity reads nothing
func (o *Disabled) DeserializeEntity(r goio.Reader, pv, pvPrev ele.PrimaryVars) (err error) {
	return
}

// TemperatureOnly implements the extension without energy equation where the temperature is given
// by the problem and the enthalpies are computed
type TemperatureOnly struct {
	Disabled
}

// Mode returns EnergyTemperatureOnly
func (o *TemperatureOnly) Mode() inp.EnergyMode { return inp.EnergyTemperatureOnly }
