// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/vkip/opm-models/mdl/conduct"
	"github.com/vkip/opm-models/mdl/diffusion"
	"github.com/vkip/opm-models/mdl/fluid"
	"github.com/vkip/opm-models/mdl/porous"
	"github.com/vkip/opm-models/mdl/relperm"
	"github.com/vkip/opm-models/mdl/solidenergy"
	"gopkg.in/yaml.v3"
)

// Material holds material data
type Material struct {

	// input
	Name  string     `json:"name" yaml:"name"`   // name of material
	Type  string     `json:"type" yaml:"type"`   // type of material; e.g. "fluid", "porous", "conduct"
	Model string     `json:"model" yaml:"model"` // name of model; e.g. "1p2c-brine", "somerton"
	Extra string     `json:"extra" yaml:"extra"` // extra information; fluid: name of diffusion material
	Prms  dbf.Params `json:"prms" yaml:"prms"`   // prms holds all model parameters for this material

	// derived
	Fluid       fluid.System      `json:"-" yaml:"-"` // pointer to actual fluid system
	Diffusion   diffusion.Model   `json:"-" yaml:"-"` // pointer to actual diffusion model
	Porous      *porous.Model     `json:"-" yaml:"-"` // pointer to actual porous model
	Relperm     relperm.Model     `json:"-" yaml:"-"` // pointer to actual relative permeability model
	Conduct     conduct.Model     `json:"-" yaml:"-"` // pointer to actual thermal conduction model
	SolidEnergy solidenergy.Model `json:"-" yaml:"-"` // pointer to actual solid energy model
}

// MatsData holds materials
type MatsData []*Material

// MatDb implements a database of materials
type MatDb struct {
	Materials MatsData `json:"materials" yaml:"materials"` // all materials
}

// ReadMat reads all materials data from a .mat (JSON), .yaml or .yml file
func ReadMat(dir, fn string) (mdb *MatDb, err error) {

	// new database
	mdb = new(MatDb)

	// read file
	b, err := os.ReadFile(filepath.Join(dir, fn))
	if err != nil {
		return nil, chk.Err("cannot read materials file %q:\n%v", fn, err)
	}

	// decode
	switch strings.ToLower(filepath.Ext(fn)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, mdb)
	default:
		err = json.Unmarshal(b, mdb)
	}
	if err != nil {
		return nil, chk.Err("cannot unmarshal materials file %q:\n%v", fn, err)
	}

	// allocate and initialise models
	err = mdb.Init()
	if err != nil {
		return nil, err
	}
	return
}

// NewMatDb returns a new database with allocated and initialised models
func NewMatDb(mats ...*Material) (mdb *MatDb, err error) {
	mdb = &MatDb{Materials: mats}
	err = mdb.Init()
	if err != nil {
		return nil, err
	}
	return
}

// Init allocates and initialises the models of all materials
//
//	Note: diffusion materials are initialised first because fluids may refer to them
func (o *MatDb) Init() (err error) {

	// check names
	names := make(map[string]bool)
	for _, m := range o.Materials {
		if names[m.Name] {
			return chk.Err("material name %q is repeated", m.Name)
		}
		names[m.Name] = true
	}

	// diffusion
	for _, m := range o.Materials {
		if m.Type != "diffusion" {
			continue
		}
		m.Diffusion, err = diffusion.New(m.Model)
		if err != nil {
			return
		}
		err = m.Diffusion.Init(m.Prms)
		if err != nil {
			return chk.Err("cannot initialise diffusion material %q:\n%v", m.Name, err)
		}
	}

	// all others
	for _, m := range o.Materials {
		switch m.Type {
		case "diffusion":
			continue

		case "fluid":
			m.Fluid, err = fluid.New(m.Model)
			if err != nil {
				return
			}
			if m.Extra != "" {
				dm := o.Get(strings.TrimSpace(m.Extra), "diffusion")
				if dm == nil {
					return chk.Err("cannot find diffusion material %q of fluid material %q", m.Extra, m.Name)
				}
				switch f := m.Fluid.(type) {
				case *fluid.Brine:
					f.Diff = dm.Diffusion
				default:
					return chk.Err("fluid system %q does not accept a diffusion model", m.Model)
				}
			}
			err = m.Fluid.Init(m.Prms)

		case "porous":
			m.Porous = new(porous.Model)
			err = m.Porous.Init(m.Prms)

		case "relperm":
			m.Relperm, err = relperm.New(m.Model)
			if err != nil {
				return
			}
			err = m.Relperm.Init(m.Prms)

		case "conduct":
			m.Conduct, err = conduct.New(m.Model)
			if err != nil {
				return
			}
			err = m.Conduct.Init(m.Prms)

		case "solidenergy":
			m.SolidEnergy, err = solidenergy.New(m.Model)
			if err != nil {
				return
			}
			err = m.SolidEnergy.Init(m.Prms)

		default:
			return chk.Err("material type %q is incorrect; options are \"fluid\", \"diffusion\", \"porous\", \"relperm\", \"conduct\" and \"solidenergy\"", m.Type)
		}
		if err != nil {
			return chk.Err("cannot initialise %s material %q:\n%v", m.Type, m.Name, err)
		}
	}
	return
}

// Get returns a material
//
//	Note: returns nil if not found or if its type does not match
func (o MatDb) Get(name, typ string) *Material {
	for _, mat := range o.Materials {
		if mat.Name == name && mat.Type == typ {
			return mat
		}
	}
	return nil
}

// String prints one material
func (o *Material) String() string {
	l := io.Sf("    {\n      \"name\"  : %q,\n      \"type\"  : %q,\n      \"model\" : %q,\n      \"extra\" : %q,\n      \"prms\"  : [\n", o.Name, o.Type, o.Model, o.Extra)
	for i, p := range o.Prms {
		if i > 0 {
			l += ",\n"
		}
		l += io.Sf("        {\"n\":%q, \"v\":%g}", p.N, p.V)
	}
	return l + "\n      ]\n    }"
}

// String prints materials
func (o MatsData) String() string {
	l := "  \"materials\" : [\n"
	for i, m := range o {
		if i > 0 {
			l += ",\n"
		}
		l += io.Sf("%v", m)
	}
	l += "\n  ]"
	return l
}

// String outputs all materials
func (o MatDb) String() string {
	return io.Sf("{\n%v\n}", o.Materials)
}
