// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import "github.com/cpmech/gosl/chk"

// AllocatorType defines a function that allocates a physical model
type AllocatorType func() Model

// New returns a new (uninitialised) model from factory
func New(name string) (model Model, err error) {
	fcn, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'ele' database", name)
	}
	model = fcn()
	if model == nil {
		err = chk.Err("model %q cannot be allocated", name)
	}
	return
}

// SetAllocator sets a new callback function to allocate a model
func SetAllocator(name string, fcn AllocatorType) {
	if _, ok := allocators[name]; ok {
		chk.Panic("cannot set allocator function for %q because model name exists already", name)
	}
	allocators[name] = fcn
}

// GetAllocator gets callback function to allocate a model
func GetAllocator(name string) AllocatorType {
	if fcn, ok := allocators[name]; ok {
		return fcn
	}
	chk.Panic("cannot get allocator function for model %q", name)
	return nil
}

// allocators holds all model allocators
var allocators = make(map[string]AllocatorType)
