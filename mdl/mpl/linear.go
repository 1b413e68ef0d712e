// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpl

import "github.com/cpmech/gosl/chk"

// Linear implements a property varying linearly with one state variable
//
//   v = v0・(1 + m・(ξ - ξ0))   thus   dv/dξ = v0・m
//
type Linear struct {
	named
	v0  float64  // value at reference
	m   float64  // relative slope
	ξ0  float64  // reference value of independent variable
	ind Variable // independent variable
}

// add model to factory
func init() {
	allocators["Linear"] = func() Model { return new(Linear) }
}

// NewLinear returns a new Linear property
func NewLinear(name string, ind Variable, v0, m, ξ0 float64) *Linear {
	return &Linear{named{name}, v0, m, ξ0, ind}
}

// Init initialises model
func (o *Linear) Init(dat *PropertyData, funcs FuncGetter, ndim int) (err error) {
	o.name = dat.Name
	o.ind, err = VariableFromString(dat.IndependentVariable)
	if err != nil {
		return chk.Err("Linear: independent variable is invalid: %v", err)
	}
	for _, p := range dat.Prms {
		switch p.N {
		case "value":
			o.v0 = p.V
		case "slope":
			o.m = p.V
		case "reference":
			o.ξ0 = p.V
		default:
			return chk.Err("Linear: parameter named %q is incorrect", p.N)
		}
	}
	return
}

// Value computes v
func (o *Linear) Value(vars VariableArray, x []float64, t, dt float64) Value {
	ξ := vars.Scalar(o.ind)
	return NewScalar(o.v0 * (1.0 + o.m*(ξ-o.ξ0)))
}

// DValue computes dv/dξ
func (o *Linear) DValue(vars VariableArray, v Variable, x []float64, t, dt float64) Value {
	if v != o.ind {
		return NewScalar(0)
	}
	return NewScalar(o.v0 * o.m)
}
