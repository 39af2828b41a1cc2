// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"github.com/cpmech/gosl/chk"
	"github.com/vkip/opm-models/ad"
)

// BoundaryIdx is the upstream index of fluxes coming from outside the domain
const BoundaryIdx = -1

// PrimaryVars holds the primary variables of one DOF; e.g. {p, S0} or {p, x1, θ}
type PrimaryVars []float64

// RateVector holds one value per equation; e.g. storage, flux or source terms
type RateVector []ad.Evaluation

// NewRateVector allocates a rate vector with neq equations
func NewRateVector(neq int) RateVector {
	return make(RateVector, neq)
}

// Reset sets all values to zero (constant)
func (o RateVector) Reset() {
	for i := range o {
		o[i] = ad.Constant(0)
	}
}

// Values returns the values (without derivatives)
func (o RateVector) Values() []float64 {
	res := make([]float64, len(o))
	for i, v := range o {
		res[i] = v.Value
	}
	return res
}

// Solution holds the primary variables of all DOFs at two time levels
//
//   Y[0] -- current iterate of the Newton method
//   Y[1] -- solution at the beginning of the time step
//
type Solution struct {
	T  float64          // current time
	Dt float64          // current time increment
	Y  [2][]PrimaryVars // [timeIdx][ndofs] primary variables
}

// NewSolution allocates a new solution
func NewSolution(ndofs, npv int) (o *Solution) {
	o = new(Solution)
	for t := 0; t < 2; t++ {
		o.Y[t] = make([]PrimaryVars, ndofs)
		for i := 0; i < ndofs; i++ {
			o.Y[t][i] = make(PrimaryVars, npv)
		}
	}
	return
}

// Reset clear values
func (o *Solution) Reset() {
	o.T = 0
	for t := 0; t < 2; t++ {
		for _, pv := range o.Y[t] {
			for i := range pv {
				pv[i] = 0
			}
		}
	}
}

// BeginTimeStep copies the current iterate into the previous time level
func (o *Solution) BeginTimeStep() {
	for i, pv := range o.Y[0] {
		copy(o.Y[1][i], pv)
	}
}

// NumDofs returns the number of DOFs
func (o *Solution) NumDofs() int { return len(o.Y[0]) }

// check checks the consistency of a DOF index and a time level
func (o *Solution) check(dof, timeIdx int) {
	if timeIdx < 0 || timeIdx > 1 {
		chk.Panic("time level must be 0 or 1. timeIdx = %d is invalid", timeIdx)
	}
	if dof < 0 || dof >= len(o.Y[timeIdx]) {
		chk.Panic("DOF %d is out of range [0, %d)", dof, len(o.Y[timeIdx]))
	}
}
