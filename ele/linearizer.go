// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import "gonum.org/v1/gonum/mat"

// LocalResult holds the residual and the Jacobian blocks of the primary DOFs of one stencil
type LocalResult struct {
	Residual [][]float64    // [nprimary][neq] residual
	Jacobian [][]*mat.Dense // [nprimary][ndofs] blocks dR_i/dY_f with size neq × npv
}

// Linearizer computes the local residual and its derivatives with respect to the primary
// variables of all DOFs in a stencil by moving the focus over the stencil
//
//  Note: a linearizer is owned by one goroutine
type Linearizer struct {
	lres     *LocalResidual
	residual []RateVector
}

// NewLinearizer allocates a new linearizer compatible with a context
func NewLinearizer(ctx *Context) (o *Linearizer) {
	o = new(Linearizer)
	o.lres = NewLocalResidual(ctx)
	return
}

// Linearize computes residual and Jacobian of the current stencil
//  Input:
//   ctx -- context updated with the current stencil (see Context.Update)
func (o *Linearizer) Linearize(ctx *Context) (res *LocalResult, err error) {

	// allocate
	st := ctx.Stencil()
	ndofs, nprim := st.NumDofs(), st.Nprimary
	neq, npv := ctx.Idx.NumEq, ctx.Idx.NumPv
	for len(o.residual) < nprim {
		o.residual = append(o.residual, NewRateVector(neq))
	}
	res = &LocalResult{
		Residual: make([][]float64, nprim),
		Jacobian: make([][]*mat.Dense, nprim),
	}
	for i := 0; i < nprim; i++ {
		res.Jacobian[i] = make([]*mat.Dense, ndofs)
	}

	// move focus over all DOFs
	for f := 0; f < ndofs; f++ {
		err = ctx.SetFocusDof(f)
		if err != nil {
			return nil, err
		}
		err = o.lres.Eval(o.residual[:nprim], ctx)
		if err != nil {
			return nil, err
		}
		for i := 0; i < nprim; i++ {
			if f == 0 {
				res.Residual[i] = o.residual[i].Values()
			}
			blk := mat.NewDense(neq, npv, nil)
			for eq, r := range o.residual[i] {
				for pv := 0; pv < npv; pv++ {
					blk.Set(eq, pv, r.Deriv(pv))
				}
			}
			res.Jacobian[i][f] = blk
		}
	}
	return
}
