// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/vkip/opm-models/ele/immiscible"
	"github.com/vkip/opm-models/ele/onep2c"
)

// enforce loading of all models
func init() {
	_ = immiscible.Model{}
	_ = onep2c.Model{}
}
