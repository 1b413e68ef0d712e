// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpl

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
	"github.com/stretchr/testify/require"
)

func Test_saturation01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("saturation01. van Genuchten")

	p, err := New(&PropertyData{
		Name: "saturation",
		Type: "SaturationVanGenuchten",
		Prms: dbf.Params{
			&dbf.P{N: "alp", V: 1e-5},
			&dbf.P{N: "m", V: 0.5},
			&dbf.P{N: "n", V: 2},
			&dbf.P{N: "slmin", V: 0.05},
		},
	}, nil, 2)
	require.NoError(tst, err)

	vars := NewVariableArray(1e5, 0, 293.15)
	chk.Float64(tst, "S(0)", 1e-17, ScalarValue(p, vars, nil, 0, 0), 1)
	for _, pc := range utl.LinSpace(1e4, 1e6, 5) {
		v := vars.WithScalar(CapillaryPressure, pc)
		io.Pforan("pc = %g  S = %g\n", pc, ScalarValue(p, v, nil, 0, 0))
		CheckDerivs(tst, p, v, []Variable{CapillaryPressure, Temperature}, []float64{1, 1e-2}, 1e-8, chk.Verbose)
	}

	_, err = New(&PropertyData{Name: "saturation", Type: "SaturationVanGenuchten", Prms: dbf.Params{&dbf.P{N: "beta", V: 1}}}, nil, 2)
	require.ErrorContains(tst, err, "beta")
}

func Test_saturation02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("saturation02. linear and conductivity")

	S, err := New(&PropertyData{
		Name: "saturation",
		Type: "SaturationLinear",
		Prms: dbf.Params{
			&dbf.P{N: "lam", V: 1e-6},
			&dbf.P{N: "pcae", V: 1e4},
			&dbf.P{N: "slmin", V: 0.1},
		},
	}, nil, 1)
	require.NoError(tst, err)

	// saturation computed first and then used by the conductivity
	λ, _ := NewSatWeightedConductivity("thermal_conductivity", NewConstant("dry", 0.5), NewConstant("wet", 1.5), ArithmeticLinear, 1)
	vars := NewVariableArray(1e5, 5e5, 293.15)
	sl := ScalarValue(S, vars, nil, 0, 0)
	chk.Float64(tst, "S", 1e-15, sl, 1-1e-6*(5e5-1e4))
	vars = vars.WithScalar(LiquidSaturation, sl)
	chk.Float64(tst, "λ", 1e-15, ScalarValue(λ, vars, nil, 0, 0), 0.5+sl)
	chk.Float64(tst, "dS/dpc", 1e-17, ScalarDValue(S, vars, CapillaryPressure, nil, 0, 0), -1e-6)
	chk.Float64(tst, "S(pc>pcres)", 1e-17, ScalarValue(S, vars.WithScalar(CapillaryPressure, 1e7), nil, 0, 0), 0.1)
}
