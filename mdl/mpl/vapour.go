// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpl

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// ClausiusClapeyron implements the vapour pressure over a flat interface
//
//   p = pref・exp( M・Δh/R・(1/Tref - 1/T) )   for Ttrip < T < Tcrit
//
// The specific enthalpy of evaporation Δh is read from the variable array. Below the
// triple point and above the critical point, the pressure is held at ptrip and pcrit.
type ClausiusClapeyron struct {
	named
	M     float64 // molar mass
	Tref  float64 // reference temperature
	pref  float64 // reference pressure
	Ttrip float64 // triple point temperature
	ptrip float64 // triple point pressure
	Tcrit float64 // critical point temperature
	pcrit float64 // critical point pressure
}

// WaterVapourPressureBuck implements the Arden Buck correlation for the saturation
// vapour pressure of water (θ in °C, p in Pa)
//
//   p = 611.21・exp( (18.678 - θ/234.5)・θ/(257.14 + θ) )
//
type WaterVapourPressureBuck struct {
	named
}

// add models to factory
func init() {
	allocators["ClausiusClapeyron"] = func() Model { return new(ClausiusClapeyron) }
	allocators["WaterVapourPressureBuck"] = func() Model { return new(WaterVapourPressureBuck) }
}

// Init initialises model
func (o *ClausiusClapeyron) Init(dat *PropertyData, funcs FuncGetter, ndim int) (err error) {
	o.name = dat.Name
	keys := []string{"M", "Tref", "pref", "Ttrip", "ptrip", "Tcrit", "pcrit"}
	values, found := dat.Prms.GetValues(keys)
	for i, ok := range found {
		if !ok {
			return chk.Err("ClausiusClapeyron: parameter %q must be given", keys[i])
		}
	}
	o.M, o.Tref, o.pref = values[0], values[1], values[2]
	o.Ttrip, o.ptrip = values[3], values[4]
	o.Tcrit, o.pcrit = values[5], values[6]
	if o.M <= 0 || o.Tref <= 0 || o.pref <= 0 {
		return chk.Err("ClausiusClapeyron: M, Tref and pref must be positive. M=%g, Tref=%g, pref=%g", o.M, o.Tref, o.pref)
	}
	if o.Ttrip >= o.Tcrit {
		return chk.Err("ClausiusClapeyron: triple point temperature %g must be smaller than critical temperature %g", o.Ttrip, o.Tcrit)
	}
	return
}

// Value computes p
func (o *ClausiusClapeyron) Value(vars VariableArray, x []float64, t, dt float64) Value {
	T := vars.Scalar(Temperature)
	if T <= o.Ttrip {
		return NewScalar(o.ptrip)
	}
	if T >= o.Tcrit {
		return NewScalar(o.pcrit)
	}
	return NewScalar(o.pressure(T, vars.Scalar(EnthalpyOfEvaporation)))
}

// DValue computes ∂p/∂T or ∂p/∂Δh
func (o *ClausiusClapeyron) DValue(vars VariableArray, v Variable, x []float64, t, dt float64) Value {
	T := vars.Scalar(Temperature)
	if T <= o.Ttrip || T >= o.Tcrit {
		return NewScalar(0)
	}
	Δh := vars.Scalar(EnthalpyOfEvaporation)
	p := o.pressure(T, Δh)
	switch v {
	case Temperature:
		return NewScalar(p * o.M * Δh / (IdealGasConstant * T * T))
	case EnthalpyOfEvaporation:
		return NewScalar(p * o.M / IdealGasConstant * (1.0/o.Tref - 1.0/T))
	}
	return NewScalar(0)
}

func (o *ClausiusClapeyron) pressure(T, Δh float64) float64 {
	return o.pref * math.Exp(o.M*Δh/IdealGasConstant*(1.0/o.Tref-1.0/T))
}

// NewWaterVapourPressureBuck returns a new WaterVapourPressureBuck property
func NewWaterVapourPressureBuck(name string) *WaterVapourPressureBuck {
	return &WaterVapourPressureBuck{named{name}}
}

// Init initialises model
func (o *WaterVapourPressureBuck) Init(dat *PropertyData, funcs FuncGetter, ndim int) (err error) {
	o.name = dat.Name
	return
}

// Value computes p
func (o *WaterVapourPressureBuck) Value(vars VariableArray, x []float64, t, dt float64) Value {
	θ := vars.Scalar(Temperature) - CelsiusZeroInKelvin
	return NewScalar(611.21 * math.Exp(buckExponent(θ)))
}

// DValue computes dp/dT
func (o *WaterVapourPressureBuck) DValue(vars VariableArray, v Variable, x []float64, t, dt float64) Value {
	if v != Temperature {
		return NewScalar(0)
	}
	θ := vars.Scalar(Temperature) - CelsiusZeroInKelvin
	d := 257.14 + θ
	dedθ := -θ/(234.5*d) + (18.678-θ/234.5)*257.14/(d*d)
	return NewScalar(611.21 * math.Exp(buckExponent(θ)) * dedθ)
}

func buckExponent(θ float64) float64 {
	return (18.678 - θ/234.5) * θ / (257.14 + θ)
}
