// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vkip/opm-models/mdl/diffusion"
	"github.com/vkip/opm-models/mdl/fluid"
)

func Test_energy01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("energy01. modes")

	for _, name := range []string{"disabled", "temperature", "full"} {
		mode, err := ParseEnergyMode(name)
		require.NoError(tst, err)
		chk.String(tst, mode.String(), name)
	}
	mode, err := ParseEnergyMode("")
	require.NoError(tst, err)
	assert.Equal(tst, EnergyDisabled, mode)
	assert.False(tst, mode.Thermal())
	assert.True(tst, EnergyTemperatureOnly.Thermal())

	_, err = ParseEnergyMode("adiabatic")
	assert.Error(tst, err)
}

func Test_indices01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("indices01")

	// immiscible without energy: the energy slot is absent
	idx, err := NewIndices("immiscible", 3, EnergyDisabled)
	require.NoError(tst, err)
	chk.Ints(tst, "immiscible/disabled", []int{idx.NumEq, idx.NumPv, idx.Conti0EqIdx, idx.ContiEnergyEqIdx, idx.SaturationIdx, idx.TemperatureIdx},
		[]int{3, 3, 0, -1, 1, -1})

	idx, err = NewIndices("immiscible", 2, EnergyTemperatureOnly)
	require.NoError(tst, err)
	chk.Ints(tst, "immiscible/temperature", []int{idx.NumEq, idx.ContiEnergyEqIdx, idx.TemperatureIdx}, []int{2, -1, -1})

	idx, err = NewIndices("immiscible", 2, EnergyFull)
	require.NoError(tst, err)
	chk.Ints(tst, "immiscible/full", []int{idx.NumEq, idx.ContiEnergyEqIdx, idx.TemperatureIdx}, []int{3, 2, 2})

	idx, err = NewIndices("1p2c", 1, EnergyFull)
	require.NoError(tst, err)
	chk.Ints(tst, "1p2c/full", []int{idx.NumEq, idx.NumComps, idx.MoleFracIdx, idx.SaturationIdx, idx.ContiEnergyEqIdx}, []int{3, 2, 1, -1, 2})

	_, err = NewIndices("1p2c", 2, EnergyDisabled)
	assert.Error(tst, err)
	_, err = NewIndices("blackoil", 3, EnergyDisabled)
	assert.Error(tst, err)
}

func Test_mat01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mat01. JSON materials")

	mdb, err := ReadMat("data", "brine.mat")
	require.NoError(tst, err)
	io.Pforan("%v\n", mdb)

	m := mdb.Get("brine", "fluid")
	require.NotNil(tst, m)
	brine, ok := m.Fluid.(*fluid.Brine)
	require.True(tst, ok)
	chk.Float64(tst, "Xi", 1e-15, brine.Xi, 0.7)
	_, ok = brine.Diff.(*diffusion.M1)
	assert.True(tst, ok, "fluid must use the diffusion material given in extra")

	assert.Nil(tst, mdb.Get("brine", "porous"))
	sand := mdb.Get("sand", "porous")
	require.NotNil(tst, sand)
	chk.Float64(tst, "nf0", 1e-15, sand.Porous.Nf0, 0.3)
	chk.Float64(tst, "nfref", 1e-15, sand.Porous.NfRef, 0.3)
	require.NotNil(tst, mdb.Get("sandcond", "conduct").Conduct)
	require.NotNil(tst, mdb.Get("quartz", "solidenergy").SolidEnergy)

	// String returns valid JSON
	var another MatDb
	err = json.Unmarshal([]byte(mdb.String()), &another)
	require.NoError(tst, err)
	require.NoError(tst, another.Init())
	assert.Len(tst, another.Materials, len(mdb.Materials))
}

func Test_mat02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mat02. errors")

	_, err := NewMatDb(&Material{Name: "a", Type: "fluid", Model: "blackoil"})
	assert.Error(tst, err)

	_, err = NewMatDb(&Material{Name: "a", Type: "rock"})
	assert.Error(tst, err)

	_, err = NewMatDb(
		&Material{Name: "a", Type: "porous", Prms: dbf.Params{&dbf.P{N: "nf0", V: 0.2}}},
		&Material{Name: "a", Type: "porous", Prms: dbf.Params{&dbf.P{N: "nf0", V: 0.3}}},
	)
	assert.Error(tst, err, "repeated names must be rejected")

	var sys fluid.Immiscible
	_, err = NewMatDb(&Material{Name: "f", Type: "fluid", Model: "immiscible", Extra: "nodiff", Prms: sys.GetPrms(true)})
	assert.Error(tst, err, "unknown diffusion material must be rejected")

	_, err = NewMatDb(&Material{Name: "p", Type: "porous", Prms: dbf.Params{&dbf.P{N: "nf0", V: 1.5}}})
	assert.Error(tst, err)
}

func Test_config01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("config01. JSON configuration")

	cfg, err := ReadConfig("data/brine.json")
	require.NoError(tst, err)
	chk.String(tst, cfg.Key, "brine")
	chk.String(tst, cfg.Model, "1p2c")
	assert.Equal(tst, EnergyFull, cfg.EnergyMode)
	chk.Int(tst, "nworkers", cfg.Nworkers, 2)
	chk.String(tst, cfg.Encoder, "gob")
	chk.Int(tst, "neq", cfg.Idx.NumEq, 3)
	chk.Int(tst, "energy eq", cfg.Idx.ContiEnergyEqIdx, 2)

	fsys, err := cfg.FluidSystem()
	require.NoError(tst, err)
	chk.String(tst, fsys.Name(), "1p2c-brine")
}

func Test_config02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("config02. YAML configuration")

	cfg, err := ReadConfig("data/twophase.yml")
	require.NoError(tst, err)
	chk.String(tst, cfg.Model, "immiscible")
	assert.Equal(tst, EnergyDisabled, cfg.EnergyMode)
	assert.GreaterOrEqual(tst, cfg.Nworkers, 1)
	chk.String(tst, cfg.Encoder, "json")
	chk.Int(tst, "neq", cfg.Idx.NumEq, 2)
	chk.Int(tst, "sat idx", cfg.Idx.SaturationIdx, 1)

	m := cfg.Mdb.Get("wateroil", "fluid")
	require.NotNil(tst, m)
	chk.Float64(tst, "M_1", 1e-15, m.Fluid.MolarMass(1), 0.142)
	require.NotNil(tst, cfg.Mdb.Get("corey", "relperm"))

	// full energy requires thermal materials
	cfg.Energy = "full"
	err = cfg.PostProcess("data")
	assert.Error(tst, err)

	// wetting phase of the conduction law must match the fluid system
	mats := append(MatsData{}, cfg.Mdb.Materials...)
	mats = append(mats,
		&Material{Name: "somerton", Type: "conduct", Model: "somerton", Prms: dbf.Params{&dbf.P{N: "wet", V: 2}, &dbf.P{N: "nphases", V: 3}}},
		&Material{Name: "solid", Type: "solidenergy", Model: "heatcap", Prms: dbf.Params{&dbf.P{N: "rhos", V: 2650}, &dbf.P{N: "cs", V: 800}}},
	)
	cfg.Mdb, err = NewMatDb(mats...)
	require.NoError(tst, err)
	cfg.ConductMat, cfg.SolidEnMat = "somerton", "solid"
	err = cfg.PostProcess("data")
	assert.Error(tst, err, "three-phase conduction law must be rejected for two phases")
	io.Pforan("%v\n", err)
	mats[len(mats)-2].Prms = dbf.Params{&dbf.P{N: "wet", V: 1}}
	cfg.Mdb, err = NewMatDb(mats...)
	require.NoError(tst, err)
	err = cfg.PostProcess("data")
	require.NoError(tst, err)
	chk.Int(tst, "neq (full)", cfg.Idx.NumEq, 3)

	// missing files are reported as errors
	_, err = ReadConfig("data/doesnotexist.json")
	assert.Error(tst, err)
	_, err = ReadMat("data", "doesnotexist.mat")
	assert.Error(tst, err)
	io.Pforan("%v\n", err)
}
