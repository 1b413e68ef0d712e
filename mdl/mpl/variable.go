// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpl

import "github.com/cpmech/gosl/chk"

// Variable indexes the physical state variables held by a VariableArray
type Variable int

// state variables
const (
	PhasePressure Variable = iota
	CapillaryPressure
	Temperature
	LiquidSaturation
	MolarMassVariable
	EnthalpyOfEvaporation
	DensityVariable
	NumVariables // number of variables; must be the last one
)

// variableNames holds the keys of variables as used in input files
var variableNames = [NumVariables]string{
	"phase_pressure",
	"capillary_pressure",
	"temperature",
	"liquid_saturation",
	"molar_mass",
	"enthalpy_of_evaporation",
	"density",
}

// String returns the key of this variable
func (v Variable) String() string {
	if v < 0 || v >= NumVariables {
		return "unknown_variable"
	}
	return variableNames[v]
}

// VariableFromString finds a variable by its key
func VariableFromString(key string) (Variable, error) {
	for i, name := range variableNames {
		if name == key {
			return Variable(i), nil
		}
	}
	return 0, chk.Err("variable %q is not available", key)
}

// VariableArray holds the current physical state. Slots not computed yet are unset.
//  Note: VariableArray has value semantics; With and WithScalar return extended copies
//        so that values written during one evaluation pass are visible to later
//        property evaluations only through the returned array.
type VariableArray [NumVariables]Value

// NewVariableArray returns an array with phase pressure, capillary pressure and temperature set
func NewVariableArray(pGR, pCap, T float64) (vars VariableArray) {
	vars[PhasePressure] = NewScalar(pGR)
	vars[CapillaryPressure] = NewScalar(pCap)
	vars[Temperature] = NewScalar(T)
	return
}

// With returns a copy of this array with slot v set to val
func (o VariableArray) With(v Variable, val Value) VariableArray {
	o[v] = val
	return o
}

// WithScalar returns a copy of this array with slot v set to the scalar x
func (o VariableArray) WithScalar(v Variable, x float64) VariableArray {
	o[v] = NewScalar(x)
	return o
}

// IsSet tells whether slot v holds a value
func (o VariableArray) IsSet(v Variable) bool {
	return o[v].IsSet()
}

// Scalar returns the scalar stored in slot v
//  Note: panics if the slot is unset or not a scalar
func (o VariableArray) Scalar(v Variable) float64 {
	if !o[v].IsSet() {
		chk.Panic("variable %q is not set", v)
	}
	return o[v].Scalar()
}
