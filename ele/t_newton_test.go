// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele_test

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/vkip/opm-models/ele"
	"github.com/vkip/opm-models/ele/energy"
)

func Test_stencil01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("stencil01. consistency checks")

	ok := &ele.Stencil{
		Dofs:          []int{4, 3},
		Volumes:       []float64{1, 1},
		Nprimary:      1,
		Faces:         []ele.Face{{Interior: 0, Exterior: 1, Area: 1, Distance: 1}},
		BoundaryFaces: []ele.BoundaryFace{{Interior: 0, Area: 1, Distance: 0.5}},
	}
	if err := ok.Check(); err != nil {
		tst.Errorf("Check failed: %v\n", err)
		return
	}

	bad := []*ele.Stencil{
		{},
		{Dofs: []int{0}, Volumes: []float64{1, 1}, Nprimary: 1},
		{Dofs: []int{0}, Volumes: []float64{1}, Nprimary: 0},
		{Dofs: []int{0}, Volumes: []float64{0}, Nprimary: 1},
		{Dofs: []int{0, 1}, Volumes: []float64{1, 1}, Nprimary: 1, Faces: []ele.Face{{Interior: 0, Exterior: 0, Area: 1, Distance: 1}}},
		{Dofs: []int{0, 1}, Volumes: []float64{1, 1}, Nprimary: 1, Faces: []ele.Face{{Interior: 0, Exterior: 2, Area: 1, Distance: 1}}},
		{Dofs: []int{0, 1}, Volumes: []float64{1, 1}, Nprimary: 1, Faces: []ele.Face{{Interior: 0, Exterior: 1, Area: 0, Distance: 1}}},
		{Dofs: []int{0, 1}, Volumes: []float64{1, 1}, Nprimary: 1, BoundaryFaces: []ele.BoundaryFace{{Interior: 1, Area: 1, Distance: 1}}},
		{Dofs: []int{0}, Volumes: []float64{1}, Nprimary: 1, BoundaryFaces: []ele.BoundaryFace{{Interior: 0, Area: 1, Distance: 0}}},
	}
	for i, st := range bad {
		err := st.Check()
		if err == nil {
			tst.Errorf("stencil %d should have failed\n", i)
			return
		}
		io.Pforan("%d: %v\n", i, err)
	}
}

func Test_factory01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("factory01. model database")

	_, err := ele.New("blackoil")
	if err == nil {
		tst.Errorf("unknown model should have failed\n")
		return
	}
	io.Pforan("%v\n", err)

	for _, name := range []string{"immiscible", "1p2c"} {
		model, err := ele.New(name)
		if err != nil {
			tst.Errorf("New failed: %v\n", err)
			return
		}
		chk.String(tst, model.Name(), name)
	}

	defer func() {
		if err := recover(); err == nil {
			tst.Errorf("setting an existing allocator should have panicked\n")
		}
	}()
	ele.SetAllocator("immiscible", ele.GetAllocator("immiscible"))
}

func Test_newton01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("newton01. update and error measures")

	cfg := newConfig(tst, "immiscible", "wateroil", "corey", "disabled", twoPhaseMats())
	model, err := ele.New(cfg.Model)
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	err = model.Init(cfg)
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	ext, err := energy.New(cfg)
	if err != nil {
		tst.Errorf("energy.New failed: %v\n", err)
		return
	}

	info := ele.GetInfo(cfg.Idx, model, ext)
	chk.Strings(tst, "pvs", info.Pvs, []string{"pressure", "saturation_0"})
	chk.Strings(tst, "eqs", info.Eqs, []string{"conti_0", "conti_1"})

	old := ele.PrimaryVars{2e5, 0.4}
	delta := []float64{1e3, -0.05}
	pv := make(ele.PrimaryVars, 2)
	ele.UpdatePrimaryVars(pv, old, delta, ext)
	chk.Array(tst, "pv", 1e-15, pv, []float64{1.99e5, 0.45})

	// pressure is weighted by 1/p
	chk.Float64(tst, "update error", 1e-15, ele.UpdateError(old, delta, model, ext), 0.05)
	chk.Float64(tst, "update error (p)", 1e-15, ele.UpdateError(old, []float64{1e4, 0}, model, ext), 0.05)
	chk.Float64(tst, "residual error", 1e-15, ele.ResidualError([]float64{-3, 2}, ext), 3)
}

func Test_newton02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("newton02. temperature is updated by the energy extension")

	cfg := newConfig(tst, "immiscible", "liquid", "", "full", liquidMats(true))
	model, err := ele.New(cfg.Model)
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	err = model.Init(cfg)
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	ext, err := energy.New(cfg)
	if err != nil {
		tst.Errorf("energy.New failed: %v\n", err)
		return
	}

	info := ele.GetInfo(cfg.Idx, model, ext)
	chk.Strings(tst, "pvs", info.Pvs, []string{"pressure", "temperature"})
	chk.Strings(tst, "eqs", info.Eqs, []string{"conti_0", "energy"})

	old := ele.PrimaryVars{1e5, 300}
	pv := make(ele.PrimaryVars, 2)
	ele.UpdatePrimaryVars(pv, old, []float64{-1e3, 2}, ext)
	chk.Array(tst, "pv", 1e-15, pv, []float64{1.01e5, 298})

	// the temperature update does not contribute to the update error
	chk.Float64(tst, "update error", 1e-15, ele.UpdateError(old, []float64{0, 50}, model, ext), 0)
	chk.Float64(tst, "residual error", 1e-15, ele.ResidualError([]float64{1, -7}, ext), 7)
}

func Test_disabled01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("disabled01. energy quantities are not available")

	cfg := newConfig(tst, "immiscible", "liquid", "", "disabled", liquidMats(false))
	s := newSetup(tst, cfg, 2)
	s.set(0, 2e5)
	s.set(1, 1e5)
	err := s.ctx.Update(s.sol, s.grid.Stencil(0))
	if err != nil {
		tst.Errorf("Update failed: %v\n", err)
		return
	}
	chk.Float64(tst, "T", 1e-17, s.ctx.IntensiveQuantities(0, 0).Temperature().Value, 300)

	ev := ele.NewExtensiveQuantities(1)
	err = ev.Update(s.ctx, 0)
	if err != nil {
		tst.Errorf("Update of extensive quantities failed: %v\n", err)
		return
	}

	panics := func(name string, fcn func()) {
		defer func() {
			if err := recover(); err == nil {
				tst.Errorf("%s should have panicked\n", name)
			}
		}()
		fcn()
	}
	panics("RockInternalEnergy", func() { s.ctx.IntensiveQuantities(0, 0).RockInternalEnergy() })
	panics("TotalThermalConductivity", func() { s.ctx.IntensiveQuantities(0, 0).TotalThermalConductivity() })
	panics("EnergyFlux", func() { ev.EnergyFlux() })
	panics("PrimaryVarWeight", func() { s.ctx.Energy.PrimaryVarWeight(0) })
}
