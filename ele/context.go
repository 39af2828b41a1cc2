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

// Context holds the data of the element being linearized: its stencil, the primary variables
// of all DOFs in the stencil and their intensive quantities at two time levels.
//
//  Focus rule: only the intensive quantities of the focus DOF at time level 0 carry
//  derivatives; all other quantities are constants.
//
//  Note: a context is owned by one goroutine
type Context struct {

	// collaborators
	Idx      inp.Indices     // slots of primary variables and equations
	UseMoles bool            // compositions and equations in moles
	Fsys     fluid.System    // fluid system
	Model    Model           // physical model
	Energy   EnergyExtension // energy extension
	Problem  Problem         // problem definition

	// current element
	sol     *Solution                 // primary variables of all DOFs
	stencil *Stencil                  // stencil of current element
	focus   int                       // focus DOF
	iqs     [2][]*IntensiveQuantities // [timeIdx][ndofs] intensive quantities
}

// NewContext returns a new element context
func NewContext(cfg *inp.Config, model Model, energy EnergyExtension, problem Problem) (o *Context, err error) {
	if cfg.Idx.NumPv > ad.MaxDerivs {
		return nil, chk.Err("number of primary variables (%d) exceeds the capacity of derivatives (%d)", cfg.Idx.NumPv, ad.MaxDerivs)
	}
	if model.NumEq() != cfg.Idx.NumEq {
		return nil, chk.Err("model %q has %d equations but configuration requires %d", model.Name(), model.NumEq(), cfg.Idx.NumEq)
	}
	if energy.Mode() != cfg.EnergyMode {
		return nil, chk.Err("energy extension mode %v is inconsistent with configuration mode %v", energy.Mode(), cfg.EnergyMode)
	}
	o = new(Context)
	o.Idx = cfg.Idx
	o.UseMoles = cfg.UseMoles
	o.Fsys, err = cfg.FluidSystem()
	if err != nil {
		return nil, err
	}
	o.Model = model
	o.Energy = energy
	o.Problem = problem
	return
}

// Update sets the current element and computes the intensive quantities of all DOFs in the
// stencil at both time levels. The focus is set to DOF 0
func (o *Context) Update(sol *Solution, stencil *Stencil) (err error) {
	o.sol = sol
	o.stencil = stencil
	ndofs := stencil.NumDofs()
	for t := 0; t < 2; t++ {
		for len(o.iqs[t]) < ndofs {
			o.iqs[t] = append(o.iqs[t], NewIntensiveQuantities(o.Fsys))
		}
	}
	o.focus = 0
	for t := 0; t < 2; t++ {
		for i := 0; i < ndofs; i++ {
			err = o.iqs[t][i].Update(o, i, t)
			if err != nil {
				return
			}
		}
	}
	return
}

// SetFocusDof changes the focus DOF. The intensive quantities at time level 0 of the previous and
// the new focus DOF are recomputed; all others are unchanged
func (o *Context) SetFocusDof(dofIdx int) (err error) {
	if dofIdx < 0 || dofIdx >= o.stencil.NumDofs() {
		chk.Panic("focus DOF %d is out of range [0, %d)", dofIdx, o.stencil.NumDofs())
	}
	if dofIdx == o.focus {
		return
	}
	old := o.focus
	o.focus = dofIdx
	err = o.iqs[0][old].Update(o, old, 0)
	if err != nil {
		return
	}
	return o.iqs[0][dofIdx].Update(o, dofIdx, 0)
}

// FocusDof returns the focus DOF
func (o *Context) FocusDof() int { return o.focus }

// IsFocus tells whether a DOF at a time level carries derivatives
func (o *Context) IsFocus(dofIdx, timeIdx int) bool {
	return timeIdx == 0 && dofIdx == o.focus
}

// MakeEvaluation returns a primary variable as evaluation. It carries derivatives only if the DOF
// is the focus DOF at time level 0
func (o *Context) MakeEvaluation(dofIdx, timeIdx, pvIdx int) ad.Evaluation {
	v := o.PrimaryVars(dofIdx, timeIdx)[pvIdx]
	if o.IsFocus(dofIdx, timeIdx) {
		return ad.Variable(v, o.Idx.NumPv, pvIdx)
	}
	return ad.Constant(v)
}

// PrimaryVars returns the primary variables of a DOF in the stencil
func (o *Context) PrimaryVars(dofIdx, timeIdx int) PrimaryVars {
	dof := o.stencil.Dofs[dofIdx]
	o.sol.check(dof, timeIdx)
	return o.sol.Y[timeIdx][dof]
}

// IntensiveQuantities returns the intensive quantities of a DOF in the stencil
func (o *Context) IntensiveQuantities(dofIdx, timeIdx int) *IntensiveQuantities {
	return o.iqs[timeIdx][dofIdx]
}

// Stencil returns the stencil of the current element
func (o *Context) Stencil() *Stencil { return o.stencil }

// NumDofs returns the number of DOFs in the stencil
func (o *Context) NumDofs() int { return o.stencil.NumDofs() }

// GlobalDof returns the global index of a DOF in the stencil
func (o *Context) GlobalDof(dofIdx int) int { return o.stencil.Dofs[dofIdx] }

// Dt returns the time step size
func (o *Context) Dt() float64 { return o.sol.Dt }

// Time returns the current time
func (o *Context) Time() float64 { return o.sol.T }
