// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package mpl implements the material property library: typed and differentiable
// properties of components, phases and media in multi-phase porous media
package mpl

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/utl"
)

// PropertyType identifies what a property describes
type PropertyType int

// property types
const (
	Density PropertyType = iota
	Viscosity
	ThermalConductivity
	VapourPressure
	MolarMass
	SpecificHeatCapacity
	SpecificLatentHeat
	Diffusion
	Saturation
	NumPropertyTypes // number of property types; must be the last one
)

// propertyNames holds the keys of property types as used in input files
var propertyNames = [NumPropertyTypes]string{
	"density",
	"viscosity",
	"thermal_conductivity",
	"vapour_pressure",
	"molar_mass",
	"specific_heat_capacity",
	"specific_latent_heat",
	"diffusion",
	"saturation",
}

// String returns the key of this property type
func (p PropertyType) String() string {
	if p < 0 || p >= NumPropertyTypes {
		return "unknown_property"
	}
	return propertyNames[p]
}

// PropertyTypeFromString finds a property type by its key
func PropertyTypeFromString(key string) (PropertyType, error) {
	for i, name := range propertyNames {
		if name == key {
			return PropertyType(i), nil
		}
	}
	return 0, chk.Err("property name %q is not available", key)
}

// Property is a differentiable function of the physical state
//  Value computes the property at the state vars, position x, time t and time step dt.
//  DValue computes the partial derivative w.r.t. variable v; the derivative w.r.t. a
//  variable the property does not depend upon is zero (of the same kind as Value).
type Property interface {
	Name() string
	Value(vars VariableArray, x []float64, t, dt float64) Value
	DValue(vars VariableArray, v Variable, x []float64, t, dt float64) Value
}

// ScalarValue evaluates a scalar property
func ScalarValue(p Property, vars VariableArray, x []float64, t, dt float64) float64 {
	return p.Value(vars, x, t, dt).Scalar()
}

// ScalarDValue evaluates the derivative of a scalar property
func ScalarDValue(p Property, vars VariableArray, v Variable, x []float64, t, dt float64) float64 {
	return p.DValue(vars, v, x, t, dt).Scalar()
}

// PropertyData holds the description of one property as read from input files
type PropertyData struct {
	Name  string     `json:"name"`      // property type key; e.g. "density", "thermal_conductivity"
	Type  string     `json:"type"`      // name of model; e.g. "Constant", "IdealGasLaw"
	Prms  dbf.Params `json:"prms"`      // model parameters
	Param string     `json:"parameter"` // name of function for "Parameter" model

	// SaturationWeightedThermalConductivity
	DryThermalConductivity string `json:"dry_thermal_conductivity"` // name of function
	WetThermalConductivity string `json:"wet_thermal_conductivity"` // name of function
	MeanType               string `json:"mean_type"`                // arithmetic_linear, arithmetic_squareroot or geometric

	// Linear
	IndependentVariable string `json:"independent_variable"` // key of variable
}

// FuncGetter resolves space-time functions (parameters) by name
type FuncGetter interface {
	Get(name string) (dbf.T, error)
}

// Model is a property that can be initialised from PropertyData
type Model interface {
	Property
	Init(dat *PropertyData, funcs FuncGetter, ndim int) error
}

// New allocates and initialises a property model
//  ndim -- space dimension (1, 2 or 3); selects scalar or tensor results where applicable
func New(dat *PropertyData, funcs FuncGetter, ndim int) (Property, error) {
	allocator, ok := allocators[dat.Type]
	if !ok {
		return nil, chk.Err("property model %q is not available in 'mpl' database", dat.Type)
	}
	if _, err := PropertyTypeFromString(dat.Name); err != nil {
		return nil, err
	}
	model := allocator()
	err := model.Init(dat, funcs, ndim)
	if err != nil {
		return nil, chk.Err("cannot initialise property %q of type %q:\n%v", dat.Name, dat.Type, err)
	}
	return model, nil
}

// allocators holds all available models
var allocators = map[string]func() Model{}

// named implements Name for all models
type named struct {
	name string
}

// Name returns the name of property
func (o named) Name() string { return o.name }

// zeroLike returns a zero value of the same kind and shape as val
func zeroLike(val Value) Value {
	switch val.kind {
	case VectorKind:
		return NewVector(make([]float64, len(val.v)))
	case TensorKind:
		return NewTensor(utl.Alloc(len(val.m), len(val.m[0])))
	}
	return NewScalar(0)
}
