// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpl

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Constant implements a property with a fixed value
type Constant struct {
	named
	value float64
}

// Parameter implements a property given by a space-time function
type Parameter struct {
	named
	fcn dbf.T
}

// add models to factory
func init() {
	allocators["Constant"] = func() Model { return new(Constant) }
	allocators["Parameter"] = func() Model { return new(Parameter) }
}

// NewConstant returns a new Constant property
func NewConstant(name string, value float64) *Constant {
	return &Constant{named{name}, value}
}

// Init initialises model
func (o *Constant) Init(dat *PropertyData, funcs FuncGetter, ndim int) (err error) {
	o.name = dat.Name
	p := dat.Prms.Find("value")
	if p == nil {
		return chk.Err("Constant: parameter \"value\" must be given")
	}
	o.value = p.V
	return
}

// Value returns the constant
func (o *Constant) Value(vars VariableArray, x []float64, t, dt float64) Value {
	return NewScalar(o.value)
}

// DValue returns zero
func (o *Constant) DValue(vars VariableArray, v Variable, x []float64, t, dt float64) Value {
	return NewScalar(0)
}

// NewParameter returns a new Parameter property
func NewParameter(name string, fcn dbf.T) *Parameter {
	return &Parameter{named{name}, fcn}
}

// Init initialises model
func (o *Parameter) Init(dat *PropertyData, funcs FuncGetter, ndim int) (err error) {
	o.name = dat.Name
	if funcs == nil {
		return chk.Err("Parameter: functions database is not available to find %q", dat.Param)
	}
	o.fcn, err = funcs.Get(dat.Param)
	return
}

// Value evaluates the function at (t, x)
func (o *Parameter) Value(vars VariableArray, x []float64, t, dt float64) Value {
	return NewScalar(o.fcn.F(t, x))
}

// DValue returns zero
func (o *Parameter) DValue(vars VariableArray, v Variable, x []float64, t, dt float64) Value {
	return NewScalar(0)
}
