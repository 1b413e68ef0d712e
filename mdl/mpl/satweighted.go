// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpl

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// MeanType selects how two endpoint values are averaged
type MeanType int

// mean types
const (
	ArithmeticLinear MeanType = iota
	ArithmeticSquareroot
	Geometric
)

// meanTypes maps input keys to mean types
var meanTypes = map[string]MeanType{
	"arithmetic_linear":     ArithmeticLinear,
	"arithmetic_squareroot": ArithmeticSquareroot,
	"geometric":             Geometric,
}

// MeanTypeFromString finds a mean type by its key
func MeanTypeFromString(key string) (MeanType, error) {
	m, ok := meanTypes[key]
	if !ok {
		return 0, chk.Err("mean type %q is not available; options are \"arithmetic_linear\", \"arithmetic_squareroot\" and \"geometric\"", key)
	}
	return m, nil
}

// String returns the key of this mean type
func (m MeanType) String() string {
	for key, val := range meanTypes {
		if val == m {
			return key
		}
	}
	return "unknown_mean_type"
}

// SatWeightedConductivity implements a thermal conductivity weighted by the liquid
// saturation S between dry and wet values
//
//   arithmetic_linear:     λ = (1 - S)・λdry + S・λwet
//   arithmetic_squareroot: λ = (1 - √S)・λdry + √S・λwet
//   geometric:             λ = λdry^(1-S)・λwet^S
//
// The result is a scalar in 1D and the isotropic tensor λ・I in 2D and 3D.
type SatWeightedConductivity struct {
	named
	Dry  Property // λdry
	Wet  Property // λwet
	Mean MeanType // averaging rule
	Ndim int      // space dimension
}

// sqrtSatMin bounds S away from zero in ∂λ/∂S of the square-root mean
const sqrtSatMin = 1e-10

// add model to factory
func init() {
	allocators["SaturationWeightedThermalConductivity"] = func() Model { return new(SatWeightedConductivity) }
}

// NewSatWeightedConductivity returns a new saturation-weighted conductivity
func NewSatWeightedConductivity(name string, dry, wet Property, mean MeanType, ndim int) (o *SatWeightedConductivity, err error) {
	if dry == nil || wet == nil {
		return nil, chk.Err("SaturationWeightedThermalConductivity: dry and wet conductivities must be non-nil")
	}
	if ndim < 1 || ndim > 3 {
		return nil, chk.Err("SaturationWeightedThermalConductivity: space dimension %d is invalid", ndim)
	}
	return &SatWeightedConductivity{named{name}, dry, wet, mean, ndim}, nil
}

// Init initialises model
func (o *SatWeightedConductivity) Init(dat *PropertyData, funcs FuncGetter, ndim int) (err error) {
	if dat.Type != "SaturationWeightedThermalConductivity" {
		return chk.Err("property type %q does not match \"SaturationWeightedThermalConductivity\"", dat.Type)
	}
	o.name = dat.Name
	if ndim < 1 || ndim > 3 {
		return chk.Err("SaturationWeightedThermalConductivity: space dimension %d is invalid", ndim)
	}
	o.Ndim = ndim
	o.Mean, err = MeanTypeFromString(dat.MeanType)
	if err != nil {
		return
	}
	if funcs == nil {
		return chk.Err("SaturationWeightedThermalConductivity: functions database is not available")
	}
	dry, err := funcs.Get(dat.DryThermalConductivity)
	if err != nil {
		return chk.Err("cannot find dry thermal conductivity %q:\n%v", dat.DryThermalConductivity, err)
	}
	wet, err := funcs.Get(dat.WetThermalConductivity)
	if err != nil {
		return chk.Err("cannot find wet thermal conductivity %q:\n%v", dat.WetThermalConductivity, err)
	}
	o.Dry = NewParameter(dat.DryThermalConductivity, dry)
	o.Wet = NewParameter(dat.WetThermalConductivity, wet)
	return
}

// Value computes λ
func (o *SatWeightedConductivity) Value(vars VariableArray, x []float64, t, dt float64) Value {
	S := clampSat(vars.Scalar(LiquidSaturation))
	λd := ScalarValue(o.Dry, vars, x, t, dt)
	λw := ScalarValue(o.Wet, vars, x, t, dt)
	return NewIsotropic(o.Ndim, o.mean(S, λd, λw))
}

// DValue computes ∂λ/∂v
func (o *SatWeightedConductivity) DValue(vars VariableArray, v Variable, x []float64, t, dt float64) Value {
	Sraw := vars.Scalar(LiquidSaturation)
	S := clampSat(Sraw)
	λd := ScalarValue(o.Dry, vars, x, t, dt)
	λw := ScalarValue(o.Wet, vars, x, t, dt)

	// derivative w.r.t saturation
	if v == LiquidSaturation {
		if Sraw < 0 || Sraw > 1 {
			return NewIsotropic(o.Ndim, 0)
		}
		var d float64
		switch o.Mean {
		case ArithmeticLinear:
			d = λw - λd
		case ArithmeticSquareroot:
			d = 0.5 * (λw - λd) / math.Sqrt(math.Max(S, sqrtSatMin))
		case Geometric:
			d = o.mean(S, λd, λw) * math.Log(λw/λd)
		}
		return NewIsotropic(o.Ndim, d)
	}

	// chain rule through endpoints
	dλd := ScalarDValue(o.Dry, vars, v, x, t, dt)
	dλw := ScalarDValue(o.Wet, vars, v, x, t, dt)
	var d float64
	switch o.Mean {
	case ArithmeticLinear:
		d = (1.0-S)*dλd + S*dλw
	case ArithmeticSquareroot:
		r := math.Sqrt(S)
		d = (1.0-r)*dλd + r*dλw
	case Geometric:
		if dλd != 0 || dλw != 0 {
			d = o.mean(S, λd, λw) * ((1.0-S)*dλd/λd + S*dλw/λw)
		}
	}
	return NewIsotropic(o.Ndim, d)
}

// mean computes the average of λd and λw
func (o *SatWeightedConductivity) mean(S, λd, λw float64) float64 {
	switch o.Mean {
	case ArithmeticLinear:
		return (1.0-S)*λd + S*λw
	case ArithmeticSquareroot:
		r := math.Sqrt(S)
		return (1.0-r)*λd + r*λw
	case Geometric:
		return math.Pow(λd, 1.0-S) * math.Pow(λw, S)
	}
	chk.Panic("mean type %d is invalid", o.Mean)
	return 0
}

// clampSat limits S to [0, 1]
func clampSat(S float64) float64 {
	return math.Min(math.Max(S, 0), 1)
}
