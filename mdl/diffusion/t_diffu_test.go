// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package diffusion

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
	"github.com/vkip/opm-models/ad"
	"gonum.org/v1/gonum/diff/fd"
)

func Test_m1(tst *testing.T) {

	//verbose()
	chk.PrintTitle("m1")

	mdl, err := New("m1")
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}

	prms := dbf.Params{
		&dbf.P{N: "a0", V: 1.0},
		&dbf.P{N: "a1", V: 2.0},
		&dbf.P{N: "a2", V: 3.0},
		&dbf.P{N: "a3", V: 4.0},
		&dbf.P{N: "D0", V: 0.1},
		&dbf.P{N: "T0", V: 300},
	}

	err = mdl.Init(prms)
	if err != nil {
		tst.Errorf("cannot initialise model: %v\n", err)
		return
	}

	m := mdl.(*M1)
	chk.Float64(tst, "a0", 1e-15, m.a0, 1.0)
	chk.Float64(tst, "a1", 1e-15, m.a1, 2.0)
	chk.Float64(tst, "a2", 1e-15, m.a2, 3.0)
	chk.Float64(tst, "a3", 1e-15, m.a3, 4.0)
	chk.Float64(tst, "D0", 1e-15, m.D0, 0.1)

	u := 0.5
	dval := 1.0 + 2.0*u + 3.0*u*u + 4.0*u*u*u
	chk.Float64(tst, "dval", 1e-15, m.Dval(u), dval)
	D := m.Coefficient(ad.Constant(1e5), ad.Constant(300+u))
	chk.Float64(tst, "D", 1e-15, D.Value, 0.1*dval)

	// central differences: truncation error = a3・h² = 4e-10
	settings := &fd.Settings{Formula: fd.Central, Step: 1e-5}
	for _, uval := range utl.LinSpace(0, 2.0, 5) {
		dana := m.DdDu(uval)
		dnum := fd.Derivative(m.Dval, uval, settings)
		io.Pforan("u = %v  dana = %v  dnum = %v\n", uval, dana, dnum)
		chk.Float64(tst, "DdDu", 1e-8, dana, dnum)

		// chain rule through the temperature variable
		T := ad.Variable(300+uval, 2, 1)
		D = m.Coefficient(ad.Constant(1e5), T)
		chk.Array(tst, "dD/dy", 1e-15, D.Derivs(), []float64{0, 0.1 * dana})
	}
}

func Test_constant01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("constant01")

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
	D := mdl.Coefficient(ad.Variable(1e5, 2, 0), ad.Variable(300, 2, 1))
	chk.Float64(tst, "D", 1e-20, D.Value, 2e-9)
	if !D.IsConstant() {
		tst.Errorf("constant coefficient must not carry derivatives\n")
		return
	}

	err = mdl.Init(dbf.Params{&dbf.P{N: "D0", V: -1}})
	if err == nil {
		tst.Errorf("negative D0 must be rejected\n")
		return
	}

	_, err = New("unknown")
	if err == nil {
		tst.Errorf("New must fail with unknown model\n")
	}
}
