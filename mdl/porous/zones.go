// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package porous

import "github.com/cpmech/gosl/chk"

// Zones implements an heterogeneous medium made of homogeneous regions
type Zones struct {
	Models []*Model // [nzones] parameters of each zone
	Zone   []int    // [ndofs] zone index of each DOF
}

// NewZones returns a new heterogeneous medium
//  Input:
//   models -- [nzones] parameters of each zone
//   zone   -- [ndofs] zone index of each DOF
func NewZones(models []*Model, zone []int) (o *Zones, err error) {
	for dof, z := range zone {
		if z < 0 || z >= len(models) {
			return nil, chk.Err("zone %d of DOF %d is out of range. nzones = %d", z, dof, len(models))
		}
	}
	o = &Zones{Models: models, Zone: zone}
	return
}

// Porosity returns the porosity at a DOF
func (o *Zones) Porosity(dof int) float64 { return o.Models[o.Zone[dof]].Nf0 }

// ReferencePorosity returns the porosity at reference pressure at a DOF
func (o *Zones) ReferencePorosity(dof int) float64 { return o.Models[o.Zone[dof]].NfRef }

// Tortuosity returns the tortuosity at a DOF
func (o *Zones) Tortuosity(dof int) float64 { return o.Models[o.Zone[dof]].Tau }

// Dispersivity returns the longitudinal dispersivity at a DOF
func (o *Zones) Dispersivity(dof int) float64 { return o.Models[o.Zone[dof]].AlpL }

// Permeability returns the intrinsic permeability at a DOF
func (o *Zones) Permeability(dof int) float64 { return o.Models[o.Zone[dof]].Kperm }
