// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpl

// IdealGasLaw implements the density of an ideal gas (or gas mixture)
//
//   ρ = p・M / (R・T)
//
// where p, T and the (mixture) molar mass M are read from the variable array
type IdealGasLaw struct {
	named
}

// add model to factory
func init() {
	allocators["IdealGasLaw"] = func() Model { return new(IdealGasLaw) }
}

// NewIdealGasLaw returns a new IdealGasLaw property
func NewIdealGasLaw(name string) *IdealGasLaw {
	return &IdealGasLaw{named{name}}
}

// Init initialises model
func (o *IdealGasLaw) Init(dat *PropertyData, funcs FuncGetter, ndim int) (err error) {
	o.name = dat.Name
	return
}

// Value computes ρ
func (o *IdealGasLaw) Value(vars VariableArray, x []float64, t, dt float64) Value {
	p, T, M := o.state(vars)
	return NewScalar(p * M / (IdealGasConstant * T))
}

// DValue computes ∂ρ/∂p, ∂ρ/∂T or ∂ρ/∂M
func (o *IdealGasLaw) DValue(vars VariableArray, v Variable, x []float64, t, dt float64) Value {
	p, T, M := o.state(vars)
	R := IdealGasConstant
	switch v {
	case PhasePressure:
		return NewScalar(M / (R * T))
	case Temperature:
		return NewScalar(-p * M / (R * T * T))
	case MolarMassVariable:
		return NewScalar(p / (R * T))
	}
	return NewScalar(0)
}

func (o *IdealGasLaw) state(vars VariableArray) (p, T, M float64) {
	return vars.Scalar(PhasePressure), vars.Scalar(Temperature), vars.Scalar(MolarMassVariable)
}
