// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import "github.com/vkip/opm-models/inp"

// Info holds the names of primary variables and equations of a model combined with its energy
// extension. ex (1p2c, full energy): Pvs = ["pressure", "x1", "temperature"]
type Info struct {
	Pvs []string // [npv] names of primary variables
	Eqs []string // [neq] names of equations
}

// GetInfo collects the names of all primary variables and equations
func GetInfo(idx inp.Indices, model Model, energy EnergyExtension) (o *Info) {
	o = new(Info)
	o.Pvs = make([]string, idx.NumPv)
	o.Eqs = make([]string, idx.NumEq)
	for i := 0; i < idx.NumPv; i++ {
		if energy.PrimaryVarApplies(i) {
			o.Pvs[i] = energy.PrimaryVarName(i)
			continue
		}
		o.Pvs[i] = model.PrimaryVarName(i)
	}
	for i := 0; i < idx.NumEq; i++ {
		if energy.EqApplies(i) {
			o.Eqs[i] = energy.EqName(i)
			continue
		}
		o.Eqs[i] = model.EqName(i)
	}
	return
}
