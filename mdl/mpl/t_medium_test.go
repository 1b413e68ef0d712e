// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpl

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/stretchr/testify/require"
)

func Test_medium01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("medium01")

	water := NewComponent("W")
	require.NoError(tst, water.Props.Set(MolarMass, NewConstant("molar_mass", MolarMassWater)))
	require.Error(tst, water.Props.Set(MolarMass, NewConstant("molar_mass", 0)))
	air := NewComponent("C")
	gas := NewPhase("Gas", water, air)
	liquid := NewPhase("AqueousLiquid")
	medium, err := NewMedium(gas, liquid)
	require.NoError(tst, err)

	chk.Int(tst, "ncomp", gas.NumberOfComponents(), 2)
	chk.String(tst, medium.Phase("Gas").Component(1).Name, "C")
	if !medium.HasPhase("AqueousLiquid") || medium.HasPhase("Solid") {
		tst.Errorf("HasPhase failed\n")
		return
	}
	require.Panics(tst, func() { medium.Phase("Solid") })
	require.Panics(tst, func() { gas.Component(2) })
	require.Panics(tst, func() { air.Property(MolarMass) })

	err = CheckRequiredProperties(water, []PropertyType{MolarMass})
	require.NoError(tst, err)
	err = CheckRequiredProperties(air, []PropertyType{MolarMass, SpecificHeatCapacity})
	require.ErrorContains(tst, err, "molar_mass")
	require.ErrorContains(tst, err, "\"C\"")
	err = CheckRequiredProperties(liquid, []PropertyType{SpecificHeatCapacity})
	require.ErrorContains(tst, err, "specific_heat_capacity")
	require.ErrorContains(tst, err, "AqueousLiquid")

	_, err = NewMedium(gas, NewPhase("Gas"))
	require.ErrorContains(tst, err, "Gas")
}

func Test_medium02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("medium02. lowest id")

	a, _ := NewMedium(NewPhase("Gas"))
	b, _ := NewMedium(NewPhase("Gas"))
	media := Media{7: a, 3: b, 12: a}
	id, m, err := media.First()
	require.NoError(tst, err)
	chk.Int(tst, "id", id, 3)
	if m != b {
		tst.Errorf("First must return the medium with the lowest id\n")
		return
	}
	_, _, err = Media{}.First()
	require.Error(tst, err)
}
