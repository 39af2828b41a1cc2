// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package relperm implements models for the relative permeability of fluid phases in porous media
package relperm

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/vkip/opm-models/ad"
	"github.com/vkip/opm-models/mdl/fluid"
)

// Model defines relative permeability models
type Model interface {
	Init(prms dbf.Params) error      // Init initialises this structure
	GetPrms(example bool) dbf.Params // gets (an example) of parameters

	// RelativePermeabilities computes kr[α] of all phases from the saturations in fs
	RelativePermeabilities(kr []ad.Evaluation, fs *fluid.State) error
}

// New relative permeability model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'relperm' database", name)
	}
	return allocator(), nil
}

// allocators holds all available models
var allocators = map[string]func() Model{}

// clamp returns s limited to [0, 1]; the derivatives vanish outside the range
func clamp(s ad.Evaluation) ad.Evaluation {
	if s.Value <= 0 {
		return ad.Constant(0)
	}
	if s.Value >= 1 {
		return ad.Constant(1)
	}
	return s
}
