// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package phasetransition

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/eike-radeisen/ogs/mdl/mpl"
)

// Evaporation implements the equilibrium of a liquid phase with a binary gas mixture of
// vapour and dry air. The vapour pressure over a flat interface is corrected for the
// curvature of menisci (Kelvin-Laplace) and the gas phase is a mixture of ideal gases.
//  Note: the fluids are always defined by the medium with the lowest material id
type Evaporation struct {
	ConstitutiveVars // results

	nComponentsGas int // number of components in the gas phase (always 2)
	vapourIndex    int // index of the vapour component in the gas phase
}

// required properties
var (
	requiredVapourProps = []mpl.PropertyType{
		mpl.SpecificLatentHeat,
		mpl.VapourPressure,
		mpl.MolarMass,
		mpl.SpecificHeatCapacity,
		mpl.Diffusion,
	}
	requiredDryAirProps = []mpl.PropertyType{
		mpl.MolarMass,
		mpl.SpecificHeatCapacity,
	}
	requiredLiquidProps = []mpl.PropertyType{
		mpl.SpecificHeatCapacity,
	}
	requiredFluidProps = []mpl.PropertyType{
		mpl.Density,
		mpl.Viscosity,
		mpl.ThermalConductivity,
	}
)

// add model to factory
func init() {
	allocators["evaporation"] = func(media mpl.Media) (Model, error) { return NewEvaporation(media) }
}

// NewEvaporation creates the evaporation model and checks the fluid definitions
func NewEvaporation(media mpl.Media) (o *Evaporation, err error) {

	// fluid phases
	id, medium, err := media.First()
	if err != nil {
		return nil, err
	}
	gas, err := medium.FindPhase(GasPhase)
	if err != nil {
		return nil, chk.Err("evaporation model: medium %d: %v", id, err)
	}
	liquid, err := medium.FindPhase(LiquidPhase)
	if err != nil {
		return nil, chk.Err("evaporation model: medium %d: %v", id, err)
	}

	// number of gas components
	o = new(Evaporation)
	o.nComponentsGas = gas.NumberOfComponents()
	if o.nComponentsGas > 2 {
		return nil, chk.Err("evaporation model: too many components (%d) in phase %q. Gas mixtures of more than two components are not available", o.nComponentsGas, GasPhase)
	}
	if o.nComponentsGas < 2 {
		return nil, chk.Err("evaporation model: too few components (%d) in phase %q. Two components are required", o.nComponentsGas, GasPhase)
	}

	// the first component with a vapour pressure is the evaporating one
	o.vapourIndex = -1
	for i := 0; i < o.nComponentsGas; i++ {
		if gas.Component(i).HasProperty(mpl.VapourPressure) {
			o.vapourIndex = i
			break
		}
	}
	if o.vapourIndex < 0 {
		return nil, chk.Err("evaporation model: none of the components of phase %q has the required property %q", GasPhase, mpl.VapourPressure)
	}

	// check properties
	err = checkComponent(gas.Component(o.vapourIndex), requiredVapourProps, gas)
	if err != nil {
		return nil, err
	}
	err = checkComponent(gas.Component(o.DryAirIndex()), requiredDryAirProps, gas)
	if err != nil {
		return nil, err
	}
	err = mpl.CheckRequiredProperties(liquid, requiredLiquidProps)
	if err != nil {
		return nil, chk.Err("evaporation model: %v", err)
	}
	for _, phase := range []*mpl.Phase{gas, liquid} {
		err = mpl.CheckRequiredProperties(phase, requiredFluidProps)
		if err != nil {
			return nil, chk.Err("evaporation model: %v", err)
		}
	}

	// message
	if Verbose {
		io.Pfgrey("evaporation model: medium %d, vapour component %q, dry air component %q\n",
			id, gas.Component(o.vapourIndex).Name, gas.Component(o.DryAirIndex()).Name)
	}
	return
}

// checkComponent checks the properties of a component of phase
func checkComponent(c *mpl.Component, required []mpl.PropertyType, phase *mpl.Phase) error {
	err := mpl.CheckRequiredProperties(c, required)
	if err != nil {
		return chk.Err("evaporation model: %v in phase %q", err, phase.Name)
	}
	return nil
}

// VapourIndex returns the index of the vapour component in the gas phase
func (o *Evaporation) VapourIndex() int { return o.vapourIndex }

// DryAirIndex returns the index of the dry air component in the gas phase
func (o *Evaporation) DryAirIndex() int { return o.vapourIndex ^ 1 }

// Vars returns the results of the last Update
func (o *Evaporation) Vars() *ConstitutiveVars { return &o.ConstitutiveVars }

// Clone returns a copy of this model with empty results
func (o *Evaporation) Clone() Model {
	return &Evaporation{nComponentsGas: o.nComponentsGas, vapourIndex: o.vapourIndex}
}

// Update computes the equilibrium state
//  Input:
//   vars -- must hold phase_pressure (pGR), capillary_pressure (pCap) and temperature (T)
//  Output:
//   vars extended with enthalpy_of_evaporation and molar_mass (of the gas mixture)
func (o *Evaporation) Update(medium *mpl.Medium, vars mpl.VariableArray, x []float64, t, dt float64) mpl.VariableArray {

	// primary variables
	pGR := vars.Scalar(mpl.PhasePressure)
	pCap := vars.Scalar(mpl.CapillaryPressure)
	T := vars.Scalar(mpl.Temperature)

	// phases and components
	liquid := medium.Phase(LiquidPhase)
	gas := medium.Phase(GasPhase)
	vapour := gas.Component(o.vapourIndex)
	dryAir := gas.Component(o.DryAirIndex())
	const R = mpl.IdealGasConstant
	scalar := func(p mpl.Property) float64 {
		return mpl.ScalarValue(p, vars, x, t, dt)
	}
	deriv := func(p mpl.Property, v mpl.Variable) float64 {
		return mpl.ScalarDValue(p, vars, v, x, t, dt)
	}

	// specific latent heat (enthalpy of evaporation); required by the vapour pressure
	o.DhEvap = scalar(vapour.Property(mpl.SpecificLatentHeat))
	vars = vars.WithScalar(mpl.EnthalpyOfEvaporation, o.DhEvap)

	// vapour pressure over a flat interface
	pVap := vapour.Property(mpl.VapourPressure)
	pVapFlat := scalar(pVap)
	dpVapFlatdT := deriv(pVap, mpl.Temperature)

	// molar masses
	MW := scalar(vapour.Property(mpl.MolarMass))
	MC := scalar(dryAir.Property(mpl.MolarMass))

	// liquid density; water in liquid and liquid are the same
	o.RhoLR = scalar(liquid.Property(mpl.Density))
	o.RhoWLR = o.RhoLR

	// Kelvin-Laplace correction for menisci
	o.K = math.Exp(-pCap * MW / (o.RhoLR * R * T))
	o.DKdT = pCap * MW / (o.RhoLR * R * T * T) * o.K

	// vapour pressure in the pore space == partial pressure of water in the gas phase
	o.PWGR = pVapFlat * o.K
	o.DPWGRdT = dpVapFlatdT*o.K + pVapFlat*o.DKdT

	// gas phase molar fractions
	o.XnWG = math.Min(math.Max(o.PWGR/pGR, 0), 1)
	xnCG := o.XnCG()

	// molar mass of the mixture of dry air and vapour; required by the gas density
	o.MG = xnCG*MC + o.XnWG*MW
	vars = vars.WithScalar(mpl.MolarMassVariable, o.MG)

	// gas phase (mixture) density
	ρG := gas.Property(mpl.Density)
	o.RhoGR = scalar(ρG)
	o.DRhoGRdpGR = deriv(ρG, mpl.PhasePressure)
	o.DRhoGRdT = deriv(ρG, mpl.Temperature)

	// gas phase mass fractions
	xmCG := xnCG * MC / o.MG
	o.XmWG = 1.0 - xmCG

	// derivatives of mass fractions w.r.t gas pressure
	βp := o.DRhoGRdpGR / o.RhoGR
	o.DXmWGdpGR = o.XmWG * βp

	// partial densities
	o.RhoCGR = o.XmCG() * o.RhoGR
	o.RhoWGR = o.XmWG * o.RhoGR

	// derivatives of mass fractions w.r.t temperature
	βT := -o.DRhoGRdT / o.RhoGR
	dρWGRdT := MW / (R * T * T) * (T*o.DPWGRdT - o.PWGR)
	o.DXmWGdT = dρWGRdT/o.RhoGR + o.XmWG*βT

	// specific enthalpies
	cpCG := scalar(dryAir.Property(mpl.SpecificHeatCapacity))
	cpWG := scalar(vapour.Property(mpl.SpecificHeatCapacity))
	cpL := scalar(liquid.Property(mpl.SpecificHeatCapacity))
	o.HCG = cpCG * T
	o.HWG = cpWG*T + o.DhEvap
	o.HG = o.XmCG()*o.HCG + o.XmWG*o.HWG
	o.HL = cpL * T

	// specific internal energies
	o.UG = o.HG - pGR/o.RhoGR
	o.UL = o.HL

	// transport properties
	o.DiffusionCoefficientVapour = scalar(vapour.Property(mpl.Diffusion))
	o.MuGR = scalar(gas.Property(mpl.Viscosity))
	o.LambdaGR = scalar(gas.Property(mpl.ThermalConductivity))
	o.MuLR = scalar(liquid.Property(mpl.Viscosity))
	o.LambdaLR = scalar(liquid.Property(mpl.ThermalConductivity))
	return vars
}
