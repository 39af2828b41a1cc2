// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/gosl/chk"
	"github.com/vkip/opm-models/ele"
)

// Grid defines the connectivity and geometry of an element-centred finite volume mesh
//  Note: each element is one DOF; the stencil of element e has e as DOF 0
type Grid interface {
	NumDofs() int                  // number of DOFs == number of elements
	Stencil(elem int) *ele.Stencil // stencil of element; must not be modified by callers
}

// boundary tags of Structured grids
const (
	TagXmin = iota // face at x = 0
	TagXmax        // face at x = Lx
	TagYmin        // face at y = 0
	TagYmax        // face at y = Ly
)

// Structured implements a rectangular grid with Nx × Ny elements of size Dx × Dy and thickness
// Dz. Elements are numbered row by row: e = i + j・Nx
type Structured struct {
	Nx, Ny     int     // number of elements along x and y
	Dx, Dy, Dz float64 // sizes of elements

	stencils []*ele.Stencil // [nelem] cached stencils
}

// NewStructured returns a new structured grid
func NewStructured(nx, ny int, dx, dy, dz float64) (o *Structured, err error) {
	if nx < 1 || ny < 1 {
		return nil, chk.Err("structured grid requires at least one element along x and y. nx = %d, ny = %d", nx, ny)
	}
	if dx <= 0 || dy <= 0 || dz <= 0 {
		return nil, chk.Err("sizes of elements must be positive. dx = %g, dy = %g, dz = %g", dx, dy, dz)
	}
	o = &Structured{Nx: nx, Ny: ny, Dx: dx, Dy: dy, Dz: dz}
	o.stencils = make([]*ele.Stencil, nx*ny)
	for e := range o.stencils {
		o.stencils[e] = o.build(e)
	}
	return
}

// NumDofs returns the number of DOFs
func (o *Structured) NumDofs() int { return o.Nx * o.Ny }

// Stencil returns the stencil of an element
func (o *Structured) Stencil(elem int) *ele.Stencil { return o.stencils[elem] }

// build builds the stencil of an element
func (o *Structured) build(e int) (st *ele.Stencil) {
	i, j := e%o.Nx, e/o.Nx
	vol := o.Dx * o.Dy * o.Dz
	ax, ay := o.Dy*o.Dz, o.Dx*o.Dz
	st = &ele.Stencil{Dofs: []int{e}, Volumes: []float64{vol}, Nprimary: 1}
	neighbour := func(ok bool, other int, area, dist float64, tag int) {
		if ok {
			st.Dofs = append(st.Dofs, other)
			st.Volumes = append(st.Volumes, vol)
			st.Faces = append(st.Faces, ele.Face{Interior: 0, Exterior: len(st.Dofs) - 1, Area: area, Distance: dist})
			return
		}
		st.BoundaryFaces = append(st.BoundaryFaces, ele.BoundaryFace{Interior: 0, Area: area, Distance: dist / 2, Tag: tag})
	}
	neighbour(i > 0, e-1, ax, o.Dx, TagXmin)
	neighbour(i < o.Nx-1, e+1, ax, o.Dx, TagXmax)
	neighbour(j > 0, e-o.Nx, ay, o.Dy, TagYmin)
	neighbour(j < o.Ny-1, e+o.Nx, ay, o.Dy, TagYmax)
	return
}
