// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// UpdatePrimaryVars computes newPv = oldPv - delta. The slots owned by the energy extension are
// updated by the extension
func UpdatePrimaryVars(newPv, oldPv PrimaryVars, delta []float64, energy EnergyExtension) {
	for i := range newPv {
		if energy.PrimaryVarApplies(i) {
			continue
		}
		newPv[i] = oldPv[i] - delta[i]
	}
	energy.UpdatePrimaryVars(newPv, oldPv, delta)
}

// UpdateError returns the weighted maximum norm of the update of the primary variables of one DOF
func UpdateError(oldPv PrimaryVars, delta []float64, model Model, energy EnergyExtension) float64 {
	w := make([]float64, len(delta))
	for i := range delta {
		if energy.PrimaryVarApplies(i) {
			continue
		}
		w[i] = math.Abs(delta[i]) * model.PrimaryVarWeight(i, oldPv)
	}
	return math.Max(floats.Max(w), energy.ComputeUpdateError(oldPv, delta))
}

// ResidualError returns the weighted maximum norm of the residual of one DOF
//  Note: mass equations have unit weight
func ResidualError(resid []float64, energy EnergyExtension) float64 {
	w := make([]float64, len(resid))
	for i, r := range resid {
		if energy.EqApplies(i) {
			continue
		}
		w[i] = r
	}
	return math.Max(floats.Norm(w, math.Inf(1)), energy.ComputeResidualError(resid))
}
