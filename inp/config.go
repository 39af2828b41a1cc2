// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from JSON or YAML files
package inp

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/vkip/opm-models/mdl/conduct"
	"github.com/vkip/opm-models/mdl/fluid"
	"gopkg.in/yaml.v3"
)

// Config holds the configuration of the local residual assembly
type Config struct {

	// input
	Desc        string  `json:"desc" yaml:"desc"`               // description of simulation
	Matfile     string  `json:"matfile" yaml:"matfile"`         // materials file path; relative to config file
	Model       string  `json:"model" yaml:"model"`             // "immiscible" or "1p2c"
	Energy      string  `json:"energy" yaml:"energy"`           // "disabled", "temperature" or "full"
	UseMoles    bool    `json:"usemoles" yaml:"usemoles"`       // 1p2c: composition and equations in moles instead of mass
	FluidMat    string  `json:"fluid" yaml:"fluid"`             // name of fluid material
	PorousMat   string  `json:"porous" yaml:"porous"`           // name of porous material
	RelpermMat  string  `json:"relperm" yaml:"relperm"`         // name of relative permeability material; may be empty
	ConductMat  string  `json:"conduct" yaml:"conduct"`         // name of thermal conduction material; full energy only
	SolidEnMat  string  `json:"solidenergy" yaml:"solidenergy"` // name of solid energy material; full energy only
	Nworkers    int     `json:"nworkers" yaml:"nworkers"`       // number of goroutines assembling elements; 0 => NumCPU
	Encoder     string  `json:"encoder" yaml:"encoder"`         // encoder name; "gob" or "json"
	Verbose     bool    `json:"verbose" yaml:"verbose"`         // show messages
	TempWeight  float64 `json:"tempweight" yaml:"tempweight"`   // weight of temperature primary variable
	EnergyScale float64 `json:"energyscale" yaml:"energyscale"` // weight of energy equation

	// derived
	Key        string     `json:"-" yaml:"-"` // file name key
	EnergyMode EnergyMode `json:"-" yaml:"-"` // energy mode
	Idx        Indices    `json:"-" yaml:"-"` // slots of primary variables and equations
	Mdb        *MatDb     `json:"-" yaml:"-"` // materials database
}

// SetDefault sets default values
func (o *Config) SetDefault() {
	o.Model = "immiscible"
	o.Encoder = "gob"
	o.TempWeight = 1
	o.EnergyScale = 1
}

// ReadConfig reads configuration from a .json, .yaml or .yml file
func ReadConfig(path string) (o *Config, err error) {

	// new config
	o = new(Config)
	o.SetDefault()

	// read file
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, chk.Err("cannot read configuration file %q:\n%v", path, err)
	}

	// decode
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, o)
	default:
		err = json.Unmarshal(b, o)
	}
	if err != nil {
		return nil, chk.Err("cannot unmarshal configuration file %q:\n%v", path, err)
	}
	o.Key = io.FnKey(filepath.Base(path))

	// derived data
	err = o.PostProcess(filepath.Dir(path))
	if err != nil {
		return nil, err
	}
	return
}

// PostProcess computes derived data
//  Input:
//   dir -- directory of the materials file; ignored if Mdb is already set
func (o *Config) PostProcess(dir string) (err error) {

	// energy mode
	o.EnergyMode, err = ParseEnergyMode(o.Energy)
	if err != nil {
		return
	}

	// workers and encoder
	if o.Nworkers < 1 {
		o.Nworkers = runtime.NumCPU()
	}
	if o.Encoder != "gob" && o.Encoder != "json" {
		o.Encoder = "gob"
	}
	if o.TempWeight <= 0 {
		o.TempWeight = 1
	}
	if o.EnergyScale <= 0 {
		o.EnergyScale = 1
	}

	// materials
	if o.Mdb == nil {
		if o.Matfile == "" {
			return chk.Err("configuration requires either a materials file or a materials database")
		}
		o.Mdb, err = ReadMat(dir, o.Matfile)
		if err != nil {
			return
		}
	}

	// check materials
	fsys, err := o.FluidSystem()
	if err != nil {
		return
	}
	if o.Mdb.Get(o.PorousMat, "porous") == nil {
		return chk.Err("cannot find porous material %q", o.PorousMat)
	}
	if o.RelpermMat != "" && o.Mdb.Get(o.RelpermMat, "relperm") == nil {
		return chk.Err("cannot find relative permeability material %q", o.RelpermMat)
	}
	if o.EnergyMode == EnergyFull {
		m := o.Mdb.Get(o.ConductMat, "conduct")
		if m == nil {
			return chk.Err("full energy mode requires thermal conduction material. %q cannot be found", o.ConductMat)
		}
		if som, ok := m.Conduct.(*conduct.Somerton); ok && som.Nphases != fsys.NumPhases() {
			return chk.Err("thermal conduction material %q is set for %d phases but fluid system %q has %d", o.ConductMat, som.Nphases, fsys.Name(), fsys.NumPhases())
		}
		if o.Mdb.Get(o.SolidEnMat, "solidenergy") == nil {
			return chk.Err("full energy mode requires solid energy material. %q cannot be found", o.SolidEnMat)
		}
	}

	// indices
	o.Idx, err = NewIndices(o.Model, fsys.NumPhases(), o.EnergyMode)
	if err != nil {
		return
	}
	if o.Model == "1p2c" && fsys.NumComponents() != 2 {
		return chk.Err("1p2c model requires a fluid system with two components. %q has %d", fsys.Name(), fsys.NumComponents())
	}
	if o.Verbose {
		io.Pfyel("model = %s  fluid = %s  energy = %v  neq = %d  nworkers = %d\n", o.Model, fsys.Name(), o.EnergyMode, o.Idx.NumEq, o.Nworkers)
	}
	return
}

// FluidSystem returns the fluid system
func (o *Config) FluidSystem() (fluid.System, error) {
	m := o.Mdb.Get(o.FluidMat, "fluid")
	if m == nil {
		return nil, chk.Err("cannot find fluid material %q", o.FluidMat)
	}
	return m.Fluid, nil
}
