// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele_test

import (
	"testing"

	"github.com/cpmech/gosl/fun/dbf"
	"github.com/vkip/opm-models/ele"
	"github.com/vkip/opm-models/ele/energy"
	"github.com/vkip/opm-models/fem"
	"github.com/vkip/opm-models/inp"
)

// liquidMats returns the materials of a single liquid phase with unit viscosity and constant
// density (C = 0) flowing through a medium with unit permeability
func liquidMats(compressible bool) []*inp.Material {
	C, beta, emu := 0.0, 0.0, 0.0
	if compressible {
		C, beta, emu = 1e-3, 2e-4, 0.01
	}
	return []*inp.Material{
		{Name: "liquid", Type: "fluid", Model: "immiscible", Prms: dbf.Params{
			&dbf.P{N: "nphases", V: 1},
			&dbf.P{N: "R0_0", V: 1000},
			&dbf.P{N: "P0_0", V: 1e5},
			&dbf.P{N: "C_0", V: C},
			&dbf.P{N: "T0_0", V: 300},
			&dbf.P{N: "Beta_0", V: beta},
			&dbf.P{N: "Mu_0", V: 1},
			&dbf.P{N: "Emu_0", V: emu},
			&dbf.P{N: "Cp_0", V: 4000},
		}},
		{Name: "rock", Type: "porous", Prms: dbf.Params{
			&dbf.P{N: "nf0", V: 0.5},
			&dbf.P{N: "k", V: 1},
		}},
		{Name: "cond", Type: "conduct", Model: "constant", Prms: dbf.Params{
			&dbf.P{N: "lam", V: 2},
		}},
		{Name: "solid", Type: "solidenergy", Model: "heatcap", Prms: dbf.Params{
			&dbf.P{N: "rhos", V: 2000},
			&dbf.P{N: "cs", V: 1000},
		}},
	}
}

// twoPhaseMats returns the materials of two compressible phases with Corey relative permeabilities
func twoPhaseMats() []*inp.Material {
	return []*inp.Material{
		{Name: "wateroil", Type: "fluid", Model: "immiscible", Prms: dbf.Params{
			&dbf.P{N: "nphases", V: 2},
			&dbf.P{N: "R0_0", V: 1000},
			&dbf.P{N: "P0_0", V: 1e5},
			&dbf.P{N: "C_0", V: 1e-3},
			&dbf.P{N: "T0_0", V: 300},
			&dbf.P{N: "Mu_0", V: 1},
			&dbf.P{N: "R0_1", V: 800},
			&dbf.P{N: "P0_1", V: 1e5},
			&dbf.P{N: "C_1", V: 2e-3},
			&dbf.P{N: "T0_1", V: 300},
			&dbf.P{N: "Mu_1", V: 2},
		}},
		{Name: "rock", Type: "porous", Prms: dbf.Params{
			&dbf.P{N: "nf0", V: 0.3},
			&dbf.P{N: "k", V: 1},
		}},
		{Name: "corey", Type: "relperm", Model: "corey", Prms: dbf.Params{
			&dbf.P{N: "nphases", V: 2},
			&dbf.P{N: "n_0", V: 2},
			&dbf.P{N: "n_1", V: 3},
		}},
	}
}

// newConfig returns a post-processed configuration
func newConfig(tst *testing.T, model, fluidMat, relperm, energyMode string, mats []*inp.Material) *inp.Config {
	mdb, err := inp.NewMatDb(mats...)
	if err != nil {
		tst.Fatalf("NewMatDb failed: %v\n", err)
	}
	cfg := new(inp.Config)
	cfg.SetDefault()
	cfg.Model = model
	cfg.Energy = energyMode
	cfg.FluidMat = fluidMat
	cfg.PorousMat = "rock"
	cfg.RelpermMat = relperm
	cfg.ConductMat = "cond"
	cfg.SolidEnMat = "solid"
	cfg.Nworkers = 1
	cfg.Mdb = mdb
	err = cfg.PostProcess("")
	if err != nil {
		tst.Fatalf("PostProcess failed: %v\n", err)
	}
	return cfg
}

// setup holds everything required to linearize one element
type setup struct {
	cfg     *inp.Config
	grid    *fem.Structured
	problem *fem.Problem
	ctx     *ele.Context
	lin     *ele.Linearizer
	sol     *ele.Solution
}

// newSetup allocates the context of a grid with nx × 1 unit elements
func newSetup(tst *testing.T, cfg *inp.Config, nx int) (o *setup) {
	var err error
	o = &setup{cfg: cfg}
	o.grid, err = fem.NewStructured(nx, 1, 1, 1, 1)
	if err != nil {
		tst.Fatalf("NewStructured failed: %v\n", err)
	}
	o.problem, err = fem.NewProblem(cfg, o.grid, 300)
	if err != nil {
		tst.Fatalf("NewProblem failed: %v\n", err)
	}
	model, err := ele.New(cfg.Model)
	if err != nil {
		tst.Fatalf("New failed: %v\n", err)
	}
	err = model.Init(cfg)
	if err != nil {
		tst.Fatalf("Init failed: %v\n", err)
	}
	ext, err := energy.New(cfg)
	if err != nil {
		tst.Fatalf("energy.New failed: %v\n", err)
	}
	o.ctx, err = ele.NewContext(cfg, model, ext, o.problem)
	if err != nil {
		tst.Fatalf("NewContext failed: %v\n", err)
	}
	o.lin = ele.NewLinearizer(o.ctx)
	o.sol = ele.NewSolution(o.grid.NumDofs(), cfg.Idx.NumPv)
	o.sol.Dt = 1
	return
}

// set sets the primary variables of a DOF at both time levels
func (o *setup) set(dof int, pv ...float64) {
	copy(o.sol.Y[0][dof], pv)
	copy(o.sol.Y[1][dof], pv)
}

// linearize updates the context with the stencil of an element and linearizes it
func (o *setup) linearize(tst *testing.T, elem int) *ele.LocalResult {
	err := o.ctx.Update(o.sol, o.grid.Stencil(elem))
	if err != nil {
		tst.Fatalf("Update failed: %v\n", err)
	}
	res, err := o.lin.Linearize(o.ctx)
	if err != nil {
		tst.Fatalf("Linearize failed: %v\n", err)
	}
	return res
}

// brineMats returns the materials of a brine with a dispersive medium
func brineMats() []*inp.Material {
	return []*inp.Material{
		{Name: "brine", Type: "fluid", Model: "1p2c-brine", Prms: dbf.Params{
			&dbf.P{N: "R0", V: 1000},
			&dbf.P{N: "P0", V: 1e5},
			&dbf.P{N: "C", V: 1e-3},
			&dbf.P{N: "T0", V: 300},
			&dbf.P{N: "Mu", V: 1},
			&dbf.P{N: "Xi", V: 0.7},
			&dbf.P{N: "D0", V: 2e-3},
		}},
		{Name: "rock", Type: "porous", Prms: dbf.Params{
			&dbf.P{N: "nf0", V: 0.4},
			&dbf.P{N: "tau", V: 0.5},
			&dbf.P{N: "alpL", V: 1e-6},
			&dbf.P{N: "k", V: 1},
		}},
	}
}

// setPrm sets the value of a parameter of a material
func setPrm(tst *testing.T, mats []*inp.Material, matName, prmName string, value float64) {
	for _, m := range mats {
		if m.Name != matName {
			continue
		}
		for _, p := range m.Prms {
			if p.N == prmName {
				p.V = value
				return
			}
		}
		m.Prms = append(m.Prms, &dbf.P{N: prmName, V: value})
		return
	}
	tst.Fatalf("cannot find material %q\n", matName)
}
