// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package diffusion

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/vkip/opm-models/ad"
)

// Constant implements a constant diffusion coefficient
type Constant struct {
	D0 float64
}

// add model to factory
func init() {
	allocators["constant"] = func() Model { return new(Constant) }
}

// Init initialises this structure
func (o *Constant) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		switch p.N {
		case "D0":
			o.D0 = p.V
		}
	}
	if o.D0 < 0 {
		return chk.Err("diffusion coefficient D0 must be non-negative. D0 = %g is invalid", o.D0)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o Constant) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "D0", V: 2e-9}, // [m²/s]
		}
	}
	return dbf.Params{
		&dbf.P{N: "D0", V: o.D0},
	}
}

// Coefficient returns D0
func (o Constant) Coefficient(p, T ad.Evaluation) ad.Evaluation {
	return ad.Constant(o.D0)
}
