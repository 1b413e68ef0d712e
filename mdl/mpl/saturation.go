// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpl

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"
)

// SaturationVanGenuchten implements van Genuchten's liquid retention model
//
//   S = Smin + (Smax - Smin)・(1 + (α・pc)ⁿ)⁻ᵐ   for pc > pcmin
//
type SaturationVanGenuchten struct {
	named
	α, m, n float64 // parameters
	slmin   float64 // minimum saturation
	slmax   float64 // maximum saturation
	pcmin   float64 // pc limit to consider zero slope
}

// SaturationLinear implements a linear retention model
//
//   S = Smax - λ・(pc - pcae)   clamped to [Smin, Smax]
//
type SaturationLinear struct {
	named
	λ     float64 // slope coefficient
	pcae  float64 // air-entry pressure
	slmin float64 // residual (minimum) saturation
	slmax float64 // maximum saturation
	pcres float64 // residual pc corresponding to slmin
}

// add models to factory
func init() {
	allocators["SaturationVanGenuchten"] = func() Model { return new(SaturationVanGenuchten) }
	allocators["SaturationLinear"] = func() Model { return new(SaturationLinear) }
}

// Init initialises model
func (o *SaturationVanGenuchten) Init(dat *PropertyData, funcs FuncGetter, ndim int) (err error) {
	o.name = dat.Name
	o.pcmin, o.slmax = 1e-3, 1.0
	for _, p := range dat.Prms {
		switch strings.ToLower(p.N) {
		case "alp":
			o.α = p.V
		case "m":
			o.m = p.V
		case "n":
			o.n = p.V
		case "slmin":
			o.slmin = p.V
		case "slmax":
			o.slmax = p.V
		case "pcmin":
			o.pcmin = p.V
		default:
			return chk.Err("SaturationVanGenuchten: parameter named %q is incorrect", p.N)
		}
	}
	if o.α <= 0 || o.m <= 0 || o.n <= 0 {
		return chk.Err("SaturationVanGenuchten: alp, m and n must be positive. alp=%g, m=%g, n=%g", o.α, o.m, o.n)
	}
	if o.slmin >= o.slmax {
		return chk.Err("SaturationVanGenuchten: slmin=%g must be smaller than slmax=%g", o.slmin, o.slmax)
	}
	return
}

// Value computes S
func (o *SaturationVanGenuchten) Value(vars VariableArray, x []float64, t, dt float64) Value {
	pc := vars.Scalar(CapillaryPressure)
	if pc <= o.pcmin {
		return NewScalar(o.slmax)
	}
	c := math.Pow(o.α*pc, o.n)
	return NewScalar(o.slmin + (o.slmax-o.slmin)*math.Pow(1+c, -o.m))
}

// DValue computes dS/dpc
func (o *SaturationVanGenuchten) DValue(vars VariableArray, v Variable, x []float64, t, dt float64) Value {
	pc := vars.Scalar(CapillaryPressure)
	if v != CapillaryPressure || pc <= o.pcmin {
		return NewScalar(0)
	}
	c := math.Pow(o.α*pc, o.n)
	fac := o.slmax - o.slmin
	return NewScalar(-fac * c * math.Pow(c+1.0, -o.m-1.0) * o.m * o.n / pc)
}

// Init initialises model
func (o *SaturationLinear) Init(dat *PropertyData, funcs FuncGetter, ndim int) (err error) {
	o.name = dat.Name
	o.slmax = 1.0
	for _, p := range dat.Prms {
		switch strings.ToLower(p.N) {
		case "lam":
			o.λ = p.V
		case "pcae":
			o.pcae = p.V
		case "slmin":
			o.slmin = p.V
		case "slmax":
			o.slmax = p.V
		default:
			return chk.Err("SaturationLinear: parameter named %q is incorrect", p.N)
		}
	}
	if o.λ < 1e-13 {
		o.λ = 0
		o.pcres = math.MaxFloat64
	} else {
		o.pcres = o.pcae + (o.slmax-o.slmin)/o.λ
	}
	return
}

// Value computes S
func (o *SaturationLinear) Value(vars VariableArray, x []float64, t, dt float64) Value {
	pc := vars.Scalar(CapillaryPressure)
	if pc <= o.pcae {
		return NewScalar(o.slmax)
	}
	if pc >= o.pcres {
		return NewScalar(o.slmin)
	}
	return NewScalar(o.slmax - o.λ*(pc-o.pcae))
}

// DValue computes dS/dpc
func (o *SaturationLinear) DValue(vars VariableArray, v Variable, x []float64, t, dt float64) Value {
	pc := vars.Scalar(CapillaryPressure)
	if v != CapillaryPressure || pc <= o.pcae || pc >= o.pcres {
		return NewScalar(0)
	}
	return NewScalar(-o.λ)
}
