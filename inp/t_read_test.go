// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/eike-radeisen/ogs/mdl/mpl"
	"github.com/eike-radeisen/ogs/mdl/phasetransition"
	"github.com/stretchr/testify/require"
)

func Test_mat01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mat01")

	mdb, err := ReadMat("data", "th2m.mat", 2)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	io.Pforan("%v", mdb)

	chk.Ints(tst, "ids", mdb.Ids(), []int{3, 7})
	medium := mdb.Media[3]
	gas := medium.Phase("Gas")
	chk.Int(tst, "ncomp", gas.NumberOfComponents(), 2)
	chk.String(tst, gas.Component(0).Name, "C")
	if !gas.Component(1).HasProperty(mpl.VapourPressure) {
		tst.Errorf("vapour component must have a vapour pressure\n")
		return
	}

	// medium conductivity is a 2D tensor
	λ := medium.Property(mpl.ThermalConductivity)
	vars := mpl.NewVariableArray(101325, 0, 293.15).WithScalar(mpl.LiquidSaturation, 1)
	chk.Float64(tst, "λ(S=1)", 1e-15, λ.Value(vars, nil, 0, 0).Tensor()[1][1], 1.84)

	// van Genuchten retention: fully saturated at zero capillary pressure
	S := medium.Property(mpl.Saturation)
	chk.Float64(tst, "S(pc=0)", 1e-15, mpl.ScalarValue(S, vars, nil, 0, 0), 1)
	chk.Float64(tst, "S(pc=1e5)", 1e-15, mpl.ScalarValue(S, vars.WithScalar(mpl.CapillaryPressure, 1e5), nil, 0, 0), 0.05+0.95/math.Sqrt(2))

	// evaporation model on the lowest medium id
	mdl, err := phasetransition.NewEvaporation(mdb.Media)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.Int(tst, "vapour index", mdl.VapourIndex(), 1)
	chk.Int(tst, "dry air index", mdl.DryAirIndex(), 0)
	mdl.Update(medium, vars, []float64{0, 0}, 0, 1)
	res := mdl.Vars()
	chk.Float64(tst, "ρLR", 1e-12, res.RhoLR, 998.2)
	chk.Float64(tst, "D", 1e-17, res.DiffusionCoefficientVapour, 2.6e-5)
	chk.Float64(tst, "K", 1e-17, res.K, 1)
}

func Test_mat02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mat02. errors")

	_, err := ReadMat("data", "nonexistent.mat", 2)
	require.ErrorContains(tst, err, "nonexistent.mat")

	// unknown function type and missing function parameter
	_, err = ParseMat([]byte(`{"functions":[{"name":"a","type":"bogus"}]}`), 2)
	require.ErrorContains(tst, err, "\"a\"")
	require.ErrorContains(tst, err, "bogus")
	_, err = ParseMat([]byte(`{"functions":[{"name":"b","type":"cte","prms":[{"n":"k","v":1}]}]}`), 2)
	require.ErrorContains(tst, err, "\"b\"")

	_, err = ParseMat([]byte(`{"media":[{"id":0},{"id":0}]}`), 2)
	require.ErrorContains(tst, err, "twice")

	_, err = ParseMat([]byte(`{"media":[{"id":0,"phases":[{"name":"Gas","properties":[
		{"name":"density","type":"IdealGasLaw"},{"name":"density","type":"IdealGasLaw"}]}]}]}`), 2)
	require.ErrorContains(tst, err, "density")

	_, err = ParseMat([]byte(`{"media":[{"id":0,"properties":[
		{"name":"thermal_conductivity","type":"SaturationWeightedThermalConductivity",
		 "dry_thermal_conductivity":"zero","wet_thermal_conductivity":"zero","mean_type":"harmonic"}]}]}`), 3)
	require.ErrorContains(tst, err, "harmonic")

	_, err = ParseMat([]byte(`{"functions":[{"name":"a","type":"cte","prms":[{"n":"c","v":1}]},{"name":"a","type":"cte","prms":[{"n":"c","v":2}]}]}`), 3)
	require.ErrorContains(tst, err, "twice")

	_, err = ParseMat([]byte(`{"media":[{"id":1,"phases":[{"name":"Gas","components":[{"name":"W","properties":[
		{"name":"diffusion","type":"Parameter","parameter":"D"}]}]}]}]}`), 3)
	require.ErrorContains(tst, err, "\"D\"")
}
