// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"context"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/james-bowman/sparse"
	"github.com/vkip/opm-models/ele"
	"github.com/vkip/opm-models/ele/energy"
	"github.com/vkip/opm-models/inp"
	"github.com/vkip/opm-models/mdl/fluid"
	"golang.org/x/sync/errgroup"
)

// Domain holds the grid, the physical model and the solution at all DOFs. It assembles the global
// residual and Jacobian from the local results of all elements
type Domain struct {

	// init
	Cfg     *inp.Config         // configuration
	ShowMsg bool                // show messages
	Grid    Grid                // grid
	Problem ele.Problem         // problem definition
	Model   ele.Model           // physical model
	Energy  ele.EnergyExtension // energy extension
	Info    *ele.Info           // names of primary variables and equations

	// dimensions
	Ndofs int // number of DOFs
	Neq   int // number of equations per DOF
	Ny    int // total number of equations: ndofs・neq

	// solution and linear system
	Sol     *ele.Solution      // solution state
	Fb      []float64          // [ny] residual
	Kb      *sparse.CSR        // [ny][ny] Jacobian == dR/dy
	Results []*ele.LocalResult // [nelem] local results of the last linearization
	workers []*worker          // one context per goroutine
}

// worker holds the data owned by one goroutine
type worker struct {
	ctx *ele.Context
	lin *ele.Linearizer
}

// NewDomain returns a new domain
//  Input:
//   cfg     -- post-processed configuration
//   grid    -- element-centred grid
//   problem -- problem definition
func NewDomain(cfg *inp.Config, grid Grid, problem ele.Problem) (o *Domain, err error) {

	// model and energy extension
	o = new(Domain)
	o.Cfg = cfg
	o.ShowMsg = cfg.Verbose
	o.Grid = grid
	o.Problem = problem
	o.Model, err = ele.New(cfg.Model)
	if err != nil {
		return nil, err
	}
	err = o.Model.Init(cfg)
	if err != nil {
		return nil, chk.Err("cannot initialise model %q:\n%v", cfg.Model, err)
	}
	o.Energy, err = energy.New(cfg)
	if err != nil {
		return nil, err
	}
	o.Info = ele.GetInfo(cfg.Idx, o.Model, o.Energy)

	// dimensions and solution
	o.Ndofs = grid.NumDofs()
	o.Neq = cfg.Idx.NumEq
	o.Ny = o.Ndofs * o.Neq
	o.Sol = ele.NewSolution(o.Ndofs, cfg.Idx.NumPv)
	o.Fb = make([]float64, o.Ny)
	o.Results = make([]*ele.LocalResult, o.Ndofs)

	// check stencils
	for e := 0; e < o.Ndofs; e++ {
		st := grid.Stencil(e)
		err = st.Check()
		if err != nil {
			return nil, chk.Err("stencil of element %d is invalid:\n%v", e, err)
		}
		for _, dof := range st.Dofs {
			if dof < 0 || dof >= o.Ndofs {
				return nil, chk.Err("stencil of element %d has DOF %d out of range [0, %d)", e, dof, o.Ndofs)
			}
		}
	}

	// workers
	nw := cfg.Nworkers
	if nw < 1 {
		nw = 1
	}
	o.workers = make([]*worker, nw)
	for i := range o.workers {
		ctx, err := ele.NewContext(cfg, o.Model, o.Energy, problem)
		if err != nil {
			return nil, err
		}
		o.workers[i] = &worker{ctx: ctx, lin: ele.NewLinearizer(ctx)}
	}

	// message
	if o.ShowMsg {
		io.Pf(">> Number of DOFs = %d\n", o.Ndofs)
		io.Pf(">> Number of equations = %d\n", o.Ny)
		io.Pf(">> Primary variables = %v\n", o.Info.Pvs)
		io.Pf(">> Equations = %v\n", o.Info.Eqs)
	}
	return
}

// SetPrimaryVars sets the primary variables of a DOF at both time levels
func (o *Domain) SetPrimaryVars(dof int, pv ele.PrimaryVars) {
	if len(pv) != len(o.Sol.Y[0][dof]) {
		chk.Panic("DOF %d requires %d primary variables. %d is invalid", dof, len(o.Sol.Y[0][dof]), len(pv))
	}
	copy(o.Sol.Y[0][dof], pv)
	copy(o.Sol.Y[1][dof], pv)
}

// SetInitialState sets the primary variables of a DOF at both time levels. The temperature slot,
// if any, is taken from the fluid state
func (o *Domain) SetInitialState(dof int, pv ele.PrimaryVars, fs *fluid.State) {
	o.SetPrimaryVars(dof, pv)
	o.Energy.AssignPrimaryVars(o.Sol.Y[0][dof], fs)
	o.Energy.AssignPrimaryVars(o.Sol.Y[1][dof], fs)
}

// Linearize computes the global residual Fb and Jacobian Kb. Elements are processed concurrently
// by Nworkers goroutines; the assembly order does not depend on scheduling
func (o *Domain) Linearize(ctx context.Context) (err error) {

	// local results
	nw := len(o.workers)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(nw)
	for w := 0; w < nw; w++ {
		wk, first := o.workers[w], w
		g.Go(func() error {
			for e := first; e < o.Ndofs; e += nw {
				if err := gctx.Err(); err != nil {
					return err
				}
				err := wk.ctx.Update(o.Sol, o.Grid.Stencil(e))
				if err != nil {
					return err
				}
				o.Results[e], err = wk.lin.Linearize(wk.ctx)
				if err != nil {
					return err
				}
			}
			return nil
		})
	}
	err = g.Wait()
	if err != nil {
		return
	}

	// assemble
	for i := range o.Fb {
		o.Fb[i] = 0
	}
	coo := sparse.NewCOO(o.Ny, o.Ny, nil, nil, nil)
	npv := o.Cfg.Idx.NumPv
	for e, res := range o.Results {
		st := o.Grid.Stencil(e)
		for i := 0; i < st.Nprimary; i++ {
			row := st.Dofs[i] * o.Neq
			for eq, r := range res.Residual[i] {
				o.Fb[row+eq] += r
			}
			for f, blk := range res.Jacobian[i] {
				col := st.Dofs[f] * npv
				for eq := 0; eq < o.Neq; eq++ {
					for pv := 0; pv < npv; pv++ {
						if v := blk.At(eq, pv); v != 0 {
							coo.Set(row+eq, col+pv, v)
						}
					}
				}
			}
		}
	}
	o.Kb = coo.ToCSR()
	return
}

// UpdateSolution applies the Newton update y := y - δy to all DOFs
func (o *Domain) UpdateSolution(delta []float64) {
	o.checkLen(delta)
	for dof, pv := range o.Sol.Y[0] {
		ele.UpdatePrimaryVars(pv, pv, delta[dof*o.Neq:(dof+1)*o.Neq], o.Energy)
	}
}

// UpdateError returns the maximum over all DOFs of the weighted norm of an update δy
func (o *Domain) UpdateError(delta []float64) (res float64) {
	o.checkLen(delta)
	for dof, pv := range o.Sol.Y[0] {
		if e := ele.UpdateError(pv, delta[dof*o.Neq:(dof+1)*o.Neq], o.Model, o.Energy); e > res {
			res = e
		}
	}
	return
}

// ResidualError returns the maximum over all DOFs of the weighted norm of the residual
func (o *Domain) ResidualError() (res float64) {
	for dof := 0; dof < o.Ndofs; dof++ {
		if e := ele.ResidualError(o.Fb[dof*o.Neq:(dof+1)*o.Neq], o.Energy); e > res {
			res = e
		}
	}
	return
}

// BeginTimeStep sets time and time step size and copies the current solution to the previous
// time level
func (o *Domain) BeginTimeStep(t, dt float64) {
	o.Sol.T = t
	o.Sol.Dt = dt
	o.Sol.BeginTimeStep()
}

// checkLen panics if an update vector has the wrong size
func (o *Domain) checkLen(delta []float64) {
	if len(delta) != o.Ny {
		chk.Panic("update vector must have %d values. %d is invalid", o.Ny, len(delta))
	}
}
