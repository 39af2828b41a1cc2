// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fluid implements fluid systems; i.e. the thermodynamic relations of the phases and
// components flowing through the porous medium
package fluid

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/vkip/opm-models/ad"
)

// System defines fluid systems
//  Note: the pressure, temperature and composition of fs must be set before calling the
//        methods computing thermodynamic quantities
type System interface {
	Name() string                                             // name of fluid system
	Init(prms dbf.Params) error                               // initialises this structure
	GetPrms(example bool) dbf.Params                          // gets (an example) of parameters
	NumPhases() int                                           // number of fluid phases
	NumComponents() int                                       // number of chemical components
	PhaseIsActive(phaseIdx int) bool                          // tells whether a phase takes part in the simulation
	MolarMass(compIdx int) float64                            // molar mass of component
	Density(fs *State, phaseIdx int) (ad.Evaluation, error)   // mass density ρ
	Viscosity(fs *State, phaseIdx int) (ad.Evaluation, error) // dynamic viscosity μ
	Enthalpy(fs *State, phaseIdx int) (ad.Evaluation, error)  // specific enthalpy h

	// BinaryDiffusionCoefficient returns the molecular diffusion coefficient of comp0 in comp1
	BinaryDiffusionCoefficient(fs *State, phaseIdx, comp0, comp1 int) (ad.Evaluation, error)
}

// New fluid system
func New(name string) (model System, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'fluid' database", name)
	}
	return allocator(), nil
}

// allocators holds all available fluid systems
var allocators = map[string]func() System{}
