// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package phasetransition implements models computing the equilibrium state of the
// fluid phases of a porous medium: partial densities, mass and molar fractions,
// enthalpies and internal energies with their derivatives
package phasetransition

import (
	"github.com/cpmech/gosl/chk"
	"github.com/eike-radeisen/ogs/mdl/mpl"
)

// Verbose activates messages on the construction of models
var Verbose = false

// Model defines phase-transition models
//  Update evaluates the closure at one point and returns vars extended with the
//  variables computed on the way. Results are held by Vars until the next call.
//  Note: Update is not reentrant; use one model (see Clone) per concurrent worker.
type Model interface {
	Update(medium *mpl.Medium, vars mpl.VariableArray, x []float64, t, dt float64) mpl.VariableArray
	Vars() *ConstitutiveVars // results of the last Update
	Clone() Model            // copy with the same configuration and empty results
}

// New allocates a phase-transition model built upon the fluids of media
func New(name string, media mpl.Media) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'phasetransition' database", name)
	}
	return allocator(media)
}

// allocators holds all available models
var allocators = map[string]func(media mpl.Media) (Model, error){}

// phase names
const (
	GasPhase    = "Gas"
	LiquidPhase = "AqueousLiquid"
)
