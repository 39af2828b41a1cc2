// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package diffusion implements models for the molecular diffusion coefficient of one
// component dissolved in a fluid phase
package diffusion

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/vkip/opm-models/ad"
)

// Model defines diffusion models
type Model interface {
	Init(prms dbf.Params) error                   // Init initialises this structure
	GetPrms(example bool) dbf.Params              // gets (an example) of parameters
	Coefficient(p, T ad.Evaluation) ad.Evaluation // Coefficient returns D(p,θ)
}

// New diffusion model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'diffusion' database", name)
	}
	return allocator(), nil
}

// allocators holds all available models
var allocators = map[string]func() Model{}
