// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package phasetransition

// ConstitutiveVars holds the results of a phase-transition model
//  Notation: G gas, L liquid, W water (vapour) component, C dry air component
//            Xn molar fraction, Xm mass fraction, R intrinsic ("real") quantity
//  Note: the dry air fractions are the complements of the vapour ones; see XnCG, XmCG
type ConstitutiveVars struct {

	// densities
	RhoLR  float64 // liquid phase density
	RhoWLR float64 // density of water in the liquid phase (== RhoLR)
	RhoGR  float64 // gas phase (mixture) density
	RhoCGR float64 // partial density of dry air in the gas phase
	RhoWGR float64 // partial density of vapour in the gas phase

	// gas density derivatives at constant mixture molar mass
	DRhoGRdpGR float64 // ∂ρGR/∂pGR
	DRhoGRdT   float64 // ∂ρGR/∂T

	// vapour pressure
	K       float64 // Kelvin-Laplace correction factor
	DKdT    float64 // dK/dT
	PWGR    float64 // vapour (partial) pressure in the pore space
	DPWGRdT float64 // dpWGR/dT

	// fractions
	XnWG      float64 // molar fraction of vapour in the gas phase
	XmWG      float64 // mass fraction of vapour in the gas phase
	DXmWGdpGR float64 // dXmWG/dpGR
	DXmWGdT   float64 // dXmWG/dT
	MG        float64 // molar mass of the gas mixture

	// enthalpies and internal energies
	DhEvap float64 // specific enthalpy of evaporation
	HCG    float64 // specific enthalpy of dry air
	HWG    float64 // specific enthalpy of vapour
	HG     float64 // specific enthalpy of the gas phase
	HL     float64 // specific enthalpy of the liquid phase
	UG     float64 // specific internal energy of the gas phase
	UL     float64 // specific internal energy of the liquid phase

	// transport
	DiffusionCoefficientVapour float64 // diffusion coefficient of vapour in the gas phase
	MuGR                       float64 // gas phase viscosity
	MuLR                       float64 // liquid phase viscosity
	LambdaGR                   float64 // gas phase thermal conductivity
	LambdaLR                   float64 // liquid phase thermal conductivity
}

// XnCG returns the molar fraction of dry air in the gas phase
func (o *ConstitutiveVars) XnCG() float64 { return 1.0 - o.XnWG }

// XmCG returns the mass fraction of dry air in the gas phase
func (o *ConstitutiveVars) XmCG() float64 { return 1.0 - o.XmWG }

// DXmCGdpGR returns dXmCG/dpGR
func (o *ConstitutiveVars) DXmCGdpGR() float64 { return -o.DXmWGdpGR }

// DXmCGdT returns dXmCG/dT
func (o *ConstitutiveVars) DXmCGdT() float64 { return -o.DXmWGdT }

// GetCopy returns a copy of this structure
func (o ConstitutiveVars) GetCopy() *ConstitutiveVars {
	return &o
}
