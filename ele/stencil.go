// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import "github.com/cpmech/gosl/chk"

// Face holds the data of an interior face of a stencil
type Face struct {
	Interior int     // local index of interior DOF
	Exterior int     // local index of exterior DOF
	Area     float64 // area of face
	Distance float64 // distance between the centres of interior and exterior control volumes
}

// BoundaryFace holds the data of a face on the domain boundary
type BoundaryFace struct {
	Interior int     // local index of interior DOF
	Area     float64 // area of face
	Distance float64 // distance between the centre of the interior control volume and the face
	Tag      int     // boundary tag; e.g. to select boundary conditions
}

// Stencil holds the DOFs influencing the residual of the primary DOFs of one element
//
//  Element-centred finite volumes: the element itself is DOF 0 (the only primary DOF) and
//  its neighbours are DOFs 1 ... k; each interior face connects DOF 0 with one neighbour
type Stencil struct {
	Dofs          []int          // [ndofs] global DOF indices
	Volumes       []float64      // [ndofs] volumes of control volumes
	Nprimary      int            // number of primary DOFs; i.e. DOFs whose residual is computed
	Faces         []Face         // interior faces
	BoundaryFaces []BoundaryFace // boundary faces
}

// NumDofs returns the number of DOFs in stencil
func (o *Stencil) NumDofs() int { return len(o.Dofs) }

// Check checks the consistency of the stencil
func (o *Stencil) Check() (err error) {
	ndofs := len(o.Dofs)
	if ndofs < 1 {
		return chk.Err("stencil must have at least one DOF")
	}
	if len(o.Volumes) != ndofs {
		return chk.Err("stencil must have one volume per DOF. %d != %d", len(o.Volumes), ndofs)
	}
	if o.Nprimary < 1 || o.Nprimary > ndofs {
		return chk.Err("number of primary DOFs must be in [1, %d]. Nprimary = %d is invalid", ndofs, o.Nprimary)
	}
	for i, v := range o.Volumes[:o.Nprimary] {
		if v <= 0 {
			return chk.Err("volume of primary DOF %d must be positive. V = %g is invalid", i, v)
		}
	}
	for i, f := range o.Faces {
		if f.Interior < 0 || f.Interior >= ndofs || f.Exterior < 0 || f.Exterior >= ndofs || f.Interior == f.Exterior {
			return chk.Err("face %d connects invalid DOFs (%d, %d)", i, f.Interior, f.Exterior)
		}
		if f.Area <= 0 || f.Distance <= 0 {
			return chk.Err("face %d must have positive area and distance. A = %g, d = %g", i, f.Area, f.Distance)
		}
	}
	for i, f := range o.BoundaryFaces {
		if f.Interior < 0 || f.Interior >= o.Nprimary {
			return chk.Err("boundary face %d must be attached to a primary DOF. interior = %d is invalid", i, f.Interior)
		}
		if f.Area <= 0 || f.Distance <= 0 {
			return chk.Err("boundary face %d must have positive area and distance. A = %g, d = %g", i, f.Area, f.Distance)
		}
	}
	return
}
