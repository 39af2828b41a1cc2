// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"encoding/gob"
	"encoding/json"
	"fmt"
	goio "io"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// GetEncoder returns a new encoder; enctype is "gob" or "json"
func GetEncoder(w goio.Writer, enctype string) utl.Encoder {
	if enctype == "json" {
		return json.NewEncoder(w)
	}
	return gob.NewEncoder(w)
}

// GetDecoder returns a new decoder; enctype is "gob" or "json"
func GetDecoder(r goio.Reader, enctype string) utl.Decoder {
	if enctype == "json" {
		return json.NewDecoder(r)
	}
	return gob.NewDecoder(r)
}

// Encode encodes time, time step size and the primary variables at both time levels
func (o *Domain) Encode(enc utl.Encoder) (err error) {
	err = enc.Encode(o.Sol.T)
	if err != nil {
		return chk.Err("cannot encode Domain.Sol.T\n%v", err)
	}
	err = enc.Encode(o.Sol.Dt)
	if err != nil {
		return chk.Err("cannot encode Domain.Sol.Dt\n%v", err)
	}
	err = enc.Encode(o.Sol.Y)
	if err != nil {
		return chk.Err("cannot encode Domain.Sol.Y\n%v", err)
	}
	return
}

// Decode decodes time, time step size and the primary variables at both time levels
func (o *Domain) Decode(dec utl.Decoder) (err error) {
	err = dec.Decode(&o.Sol.T)
	if err != nil {
		return chk.Err("cannot decode Domain.Sol.T\n%v", err)
	}
	err = dec.Decode(&o.Sol.Dt)
	if err != nil {
		return chk.Err("cannot decode Domain.Sol.Dt\n%v", err)
	}
	err = dec.Decode(&o.Sol.Y)
	if err != nil {
		return chk.Err("cannot decode Domain.Sol.Y\n%v", err)
	}
	if o.Sol.NumDofs() != o.Ndofs {
		return chk.Err("decoded solution has %d DOFs; domain has %d", o.Sol.NumDofs(), o.Ndofs)
	}
	return
}

// Serialize writes the current primary variables as text; one line per DOF. The tokens of the
// model come first; the energy extension appends its tokens
func (o *Domain) Serialize(w goio.Writer) (err error) {
	for dof, pv := range o.Sol.Y[0] {
		for i, v := range pv {
			if o.Energy.PrimaryVarApplies(i) {
				continue
			}
			if i > 0 {
				_, err = fmt.Fprint(w, " ")
				if err != nil {
					return
				}
			}
			_, err = fmt.Fprintf(w, "%v", v)
			if err != nil {
				return
			}
		}
		err = o.Energy.SerializeEntity(w, pv)
		if err != nil {
			return chk.Err("cannot serialize DOF %d:\n%v", dof, err)
		}
		_, err = fmt.Fprintln(w)
		if err != nil {
			return
		}
	}
	return
}

// Deserialize reads the primary variables written by Serialize. Both time levels are set
func (o *Domain) Deserialize(r goio.Reader) (err error) {
	for dof, pv := range o.Sol.Y[0] {
		prev := o.Sol.Y[1][dof]
		for i := range pv {
			if o.Energy.PrimaryVarApplies(i) {
				continue
			}
			_, err = fmt.Fscan(r, &pv[i])
			if err != nil {
				return chk.Err("cannot read primary variable %d of DOF %d:\n%v", i, dof, err)
			}
			prev[i] = pv[i]
		}
		err = o.Energy.DeserializeEntity(r, pv, prev)
		if err != nil {
			return chk.Err("cannot deserialize DOF %d:\n%v", dof, err)
		}
	}
	return
}
