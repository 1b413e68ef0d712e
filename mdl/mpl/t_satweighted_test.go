// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpl

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
	"github.com/stretchr/testify/require"
)

// funcsDb implements FuncGetter for tests
type funcsDb map[string]dbf.T

func (o funcsDb) Get(name string) (dbf.T, error) {
	if f, ok := o[name]; ok {
		return f, nil
	}
	return nil, chk.Err("cannot find function named %q", name)
}

func newFuncs(tst *testing.T, values map[string]float64) funcsDb {
	db := make(funcsDb)
	for name, c := range values {
		db[name] = dbf.New("cte", dbf.Params{&dbf.P{N: "c", V: c}})
	}
	return db
}

func satVars(S float64) VariableArray {
	return NewVariableArray(1e5, 0, 293.15).WithScalar(LiquidSaturation, S)
}

func Test_satweighted01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("satweighted01. endpoints are recovered exactly")

	λd, λw := 0.35, 1.9
	funcs := newFuncs(tst, map[string]float64{"lambda_dry": λd, "lambda_wet": λw})
	for _, key := range []string{"arithmetic_linear", "arithmetic_squareroot", "geometric"} {
		p, err := New(&PropertyData{
			Name:                   "thermal_conductivity",
			Type:                   "SaturationWeightedThermalConductivity",
			DryThermalConductivity: "lambda_dry",
			WetThermalConductivity: "lambda_wet",
			MeanType:               key,
		}, funcs, 1)
		if err != nil {
			tst.Errorf("New failed: %v\n", err)
			return
		}
		io.Pforan("%s\n", key)
		chk.Float64(tst, key+": S=0", 1e-17, ScalarValue(p, satVars(0), nil, 0, 0), λd)
		chk.Float64(tst, key+": S=1", 1e-17, ScalarValue(p, satVars(1), nil, 0, 0), λw)
		chk.Float64(tst, key+": S<0", 1e-17, ScalarValue(p, satVars(-0.2), nil, 0, 0), λd)
		chk.Float64(tst, key+": S>1", 1e-17, ScalarValue(p, satVars(1.3), nil, 0, 0), λw)
	}
}

func Test_satweighted02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("satweighted02. geometric is monotone and linear is affine")

	λd, λw := NewConstant("dry", 0.4), NewConstant("wet", 2.1)
	geo, err := NewSatWeightedConductivity("thermal_conductivity", λd, λw, Geometric, 1)
	require.NoError(tst, err)
	lin, err := NewSatWeightedConductivity("thermal_conductivity", λd, λw, ArithmeticLinear, 1)
	require.NoError(tst, err)

	Ss := utl.LinSpace(0, 1, 21)
	prev := 0.0
	for i, S := range Ss {
		g := ScalarValue(geo, satVars(S), nil, 0, 0)
		if g < 0.4-1e-15 || g > 2.1+1e-15 {
			tst.Errorf("geometric mean %g is out of [0.4, 2.1] at S=%g\n", g, S)
			return
		}
		if i > 0 && g < prev {
			tst.Errorf("geometric mean is not monotone at S=%g: %g < %g\n", S, g, prev)
			return
		}
		prev = g
		chk.Float64(tst, io.Sf("linear @ %.2f", S), 1e-15, ScalarValue(lin, satVars(S), nil, 0, 0), 0.4+S*(2.1-0.4))
	}
}

func Test_satweighted03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("satweighted03. derivatives")

	// endpoints depending on temperature
	λd := NewLinear("dry", Temperature, 0.3, 2e-3, 293.15)
	λw := NewLinear("wet", Temperature, 1.6, -1e-3, 293.15)
	for _, mean := range []MeanType{ArithmeticLinear, ArithmeticSquareroot, Geometric} {
		p, err := NewSatWeightedConductivity("thermal_conductivity", λd, λw, mean, 1)
		require.NoError(tst, err)
		for _, S := range []float64{0.1, 0.5, 0.85} {
			vars := satVars(S).WithScalar(Temperature, 310)
			io.Pforan("%v S=%g\n", mean, S)
			CheckDerivs(tst, p, vars, []Variable{LiquidSaturation, Temperature, PhasePressure}, []float64{1e-4, 1e-2, 1}, 1e-8, chk.Verbose)
		}
	}

	// closed forms w.r.t saturation
	p, _ := NewSatWeightedConductivity("thermal_conductivity", NewConstant("dry", 0.5), NewConstant("wet", 2.0), Geometric, 1)
	vars := satVars(0.3)
	λ := ScalarValue(p, vars, nil, 0, 0)
	chk.Float64(tst, "geometric ∂λ/∂S", 1e-15, ScalarDValue(p, vars, LiquidSaturation, nil, 0, 0), λ*math.Log(4))
	p.Mean = ArithmeticLinear
	chk.Float64(tst, "linear ∂λ/∂S", 1e-15, ScalarDValue(p, vars, LiquidSaturation, nil, 0, 0), 1.5)
	chk.Float64(tst, "linear ∂λ/∂T", 1e-15, ScalarDValue(p, vars, Temperature, nil, 0, 0), 0)
}

func Test_satweighted04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("satweighted04. tensors")

	for ndim := 2; ndim <= 3; ndim++ {
		p, err := NewSatWeightedConductivity("thermal_conductivity", NewConstant("dry", 0.5), NewConstant("wet", 1.5), ArithmeticLinear, ndim)
		require.NoError(tst, err)
		val := p.Value(satVars(0.5), nil, 0, 0)
		chk.Int(tst, "kind", int(val.Kind()), int(TensorKind))
		for i, row := range val.Tensor() {
			for j, λij := range row {
				correct := 0.0
				if i == j {
					correct = 1.0
				}
				chk.Float64(tst, io.Sf("λ[%d][%d]", i, j), 1e-15, λij, correct)
			}
		}
		dval := p.DValue(satVars(0.5), LiquidSaturation, nil, 0, 0)
		chk.Float64(tst, "∂λ[0][0]/∂S", 1e-15, dval.Tensor()[0][0], 1.0)
		chk.Float64(tst, "∂λ[0][1]/∂S", 1e-15, dval.Tensor()[0][1], 0)
	}
}

func Test_satweighted05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("satweighted05. configuration errors")

	funcs := newFuncs(tst, map[string]float64{"lambda_dry": 0.3, "lambda_wet": 1.2})
	dat := &PropertyData{
		Name:                   "thermal_conductivity",
		Type:                   "SaturationWeightedThermalConductivity",
		DryThermalConductivity: "lambda_dry",
		WetThermalConductivity: "lambda_wet",
		MeanType:               "unknown_key",
	}
	_, err := New(dat, funcs, 2)
	require.ErrorContains(tst, err, "unknown_key")

	dat.MeanType = "geometric"
	dat.WetThermalConductivity = "lambda_missing"
	_, err = New(dat, funcs, 2)
	require.ErrorContains(tst, err, "lambda_missing")

	dat.WetThermalConductivity = "lambda_wet"
	_, err = New(dat, funcs, 4)
	require.Error(tst, err)

	_, err = New(dat, funcs, 3)
	require.NoError(tst, err)
}
