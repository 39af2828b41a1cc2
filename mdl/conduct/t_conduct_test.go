// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package conduct

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
	"github.com/vkip/opm-models/ad"
	"github.com/vkip/opm-models/mdl/fluid"
	"gonum.org/v1/gonum/diff/fd"
)

// twophase returns a state of the example immiscible system with given water saturation
func twophase(tst *testing.T, sw ad.Evaluation) *fluid.State {
	sys, err := fluid.New("immiscible")
	if err != nil {
		tst.Fatalf("cannot allocate fluid system: %v\n", err)
	}
	if err = sys.Init(sys.GetPrms(true)); err != nil {
		tst.Fatalf("cannot initialise fluid system: %v\n", err)
	}
	fs := fluid.NewState(sys)
	fs.SetSaturation(0, sw)
	fs.SetSaturation(1, sw.Neg().AddScalar(1))
	return fs
}

func Test_cnd01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("cnd01. constant and parallel")

	mdl, err := New("constant")
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	err = mdl.Init(mdl.GetPrms(true))
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	fs := twophase(tst, ad.Variable(0.4, 2, 1))
	chk.Float64(tst, "λ", 1e-15, mdl.ThermalConductivity(fs, 0.3).Value, 2.5)

	mdl, _ = New("parallel")
	err = mdl.Init(mdl.GetPrms(true))
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	lam := mdl.ThermalConductivity(fs, 0.3)
	chk.Float64(tst, "λ parallel", 1e-15, lam.Value, 0.3*0.6+0.7*3.0)
	chk.Array(tst, "dλ parallel", 1e-15, lam.Derivs(), []float64{0, 0})

	_, err = New("johansen")
	if err == nil {
		tst.Errorf("New must fail with unknown model\n")
	}
}

func Test_cnd02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("cnd02. somerton")

	mdl, err := New("somerton")
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	err = mdl.Init(mdl.GetPrms(true))
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}

	// limits
	chk.Float64(tst, "λ(0)", 1e-15, mdl.ThermalConductivity(twophase(tst, ad.Constant(0)), 0.3).Value, 0.5)
	chk.Float64(tst, "λ(1)", 1e-15, mdl.ThermalConductivity(twophase(tst, ad.Constant(1)), 0.3).Value, 2.5)
	chk.Float64(tst, "λ(-0.1)", 1e-15, mdl.ThermalConductivity(twophase(tst, ad.Constant(-0.1)), 0.3).Value, 0.5)

	// derivatives
	settings := &fd.Settings{Formula: fd.Central, Step: 1e-6}
	for _, sw := range utl.LinSpace(0.1, 0.9, 5) {
		lam := mdl.ThermalConductivity(twophase(tst, ad.Variable(sw, 1, 0)), 0.3)
		chk.Float64(tst, "λ", 1e-15, lam.Value, 0.5+math.Sqrt(sw)*2.0)
		dnum := fd.Derivative(func(x float64) float64 {
			return mdl.ThermalConductivity(twophase(tst, ad.Constant(x)), 0.3).Value
		}, sw, settings)
		io.Pforan("sw = %v  dλ/dsw: ana = %v  num = %v\n", sw, lam.Deriv(0), dnum)
		chk.Float64(tst, "dλ/dsw", 1e-8, lam.Deriv(0), dnum)
	}
}

func Test_cnd03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("cnd03. somerton wetting phase")

	mdl, err := New("somerton")
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}

	// wetting phase must exist
	for _, prms := range []dbf.Params{
		{&dbf.P{N: "wet", V: 2}},
		{&dbf.P{N: "wet", V: -1}},
		{&dbf.P{N: "wet", V: 1}, &dbf.P{N: "nphases", V: 1}},
		{&dbf.P{N: "nphases", V: 0}},
	} {
		err = mdl.Init(prms)
		if err == nil {
			tst.Errorf("Init with %v should have failed\n", prms)
			return
		}
		io.Pforan("%v\n", err)
	}

	// second phase as wetting phase
	err = mdl.Init(dbf.Params{&dbf.P{N: "lamdry", V: 1}, &dbf.P{N: "lamsat", V: 3}, &dbf.P{N: "wet", V: 1}})
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	chk.Int(tst, "nphases", mdl.(*Somerton).Nphases, 2)
	chk.Float64(tst, "λ(S1 = 0.25)", 1e-15, mdl.ThermalConductivity(twophase(tst, ad.Constant(0.75)), 0.3).Value, 2)

	// parameters are not kept from previous initialisations
	err = mdl.Init(dbf.Params{&dbf.P{N: "nphases", V: 1}})
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	chk.Int(tst, "wet", mdl.(*Somerton).Wet, 0)
}
