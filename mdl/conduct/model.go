// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package conduct implements models for the total thermal conductivity of fluid-filled porous media
package conduct

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/vkip/opm-models/ad"
	"github.com/vkip/opm-models/mdl/fluid"
)

// Model defines thermal conduction models
type Model interface {
	Init(prms dbf.Params) error      // Init initialises this structure
	GetPrms(example bool) dbf.Params // gets (an example) of parameters

	// ThermalConductivity returns the total conductivity λ of the medium (solid + fluids)
	ThermalConductivity(fs *fluid.State, porosity float64) ad.Evaluation
}

// New conductivity model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'conduct' database", name)
	}
	return allocator(), nil
}

// allocators holds all available models
var allocators = map[string]func() Model{}
