// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package phasetransition

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/eike-radeisen/ogs/mdl/mpl"
)

// Driver runs phase-transition models along paths of (pGR, pCap, T)
//  Note: the check of dK/dT and dpWGR/dT assumes that the liquid density and the
//        enthalpy of evaporation do not depend on the temperature. The check of
//        dρWGR/dT assumes an ideal gas, for which ρWGR = pWGR・MW/(R・T) does not
//        depend on the mixture molar mass.
type Driver struct {

	// input
	Mdl    Model       // phase-transition model
	Medium *mpl.Medium // medium holding the fluids

	// settings
	TolK   float64 // tolerance to check dK/dT
	TolP   float64 // tolerance to check dpWGR/dT
	TolRho float64 // tolerance to check ∂ρGR/∂pGR, ∂ρGR/∂T and dρWGR/dT
	TolSum float64 // tolerance to check sums of fractions
	TolX   float64 // tolerance to check dxmWG/dpGR
	VerD   bool    // verbose check of derivatives

	// check derivatives
	TstD *testing.T // if != nil, do check derivatives

	// results
	Res []*ConstitutiveVars // results
}

// Init initialises driver
func (o *Driver) Init(mdl Model, medium *mpl.Medium) (err error) {
	if mdl == nil || medium == nil {
		return chk.Err("driver: model and medium must be non-nil")
	}
	o.Mdl = mdl
	o.Medium = medium
	o.TolK = 1e-9
	o.TolP = 1e-7
	o.TolRho = 1e-9
	o.TolSum = 1e-15
	o.TolX = 1e-17
	o.VerD = chk.Verbose
	return
}

// Run runs the model for all stations (PGR[i], PCap[i], T[i])
func (o *Driver) Run(PGR, PCap, T []float64) (err error) {

	// check
	np := len(PGR)
	if len(PCap) != np || len(T) != np {
		return chk.Err("driver: PGR, PCap and T must have the same length. %d, %d, %d are incorrect", np, len(PCap), len(T))
	}

	// auxiliary model for numerical derivatives
	tmp := o.Mdl.Clone()

	// run
	o.Res = make([]*ConstitutiveVars, np)
	for i := 0; i < np; i++ {
		vars := o.Mdl.Update(o.Medium, mpl.NewVariableArray(PGR[i], PCap[i], T[i]), nil, 0, 0)
		res := o.Mdl.Vars().GetCopy()
		o.Res[i] = res
		if o.TstD == nil {
			continue
		}

		// sums of fractions
		key := io.Sf("@ pGR=%g pCap=%g T=%g", PGR[i], PCap[i], T[i])
		chk.Float64(o.TstD, "xnWG+xnCG "+key, o.TolSum, res.XnWG+res.XnCG(), 1)
		chk.Float64(o.TstD, "xmWG+xmCG "+key, o.TolSum, res.XmWG+res.XmCG(), 1)

		// Kelvin factor and vapour pressure
		chk.DerivScaSca(o.TstD, "dK/dT "+key, mpl.ScaledTol(o.TolK, res.DKdT), res.DKdT, T[i], 1e-2, o.VerD, func(x float64) float64 {
			tmp.Update(o.Medium, mpl.NewVariableArray(PGR[i], PCap[i], x), nil, 0, 0)
			return tmp.Vars().K
		})
		chk.DerivScaSca(o.TstD, "dpWGR/dT "+key, mpl.ScaledTol(o.TolP, res.DPWGRdT), res.DPWGRdT, T[i], 1e-2, o.VerD, func(x float64) float64 {
			tmp.Update(o.Medium, mpl.NewVariableArray(PGR[i], PCap[i], x), nil, 0, 0)
			return tmp.Vars().PWGR
		})

		// gas density at constant mixture molar mass
		ρG := o.Medium.Phase(GasPhase).Property(mpl.Density)
		chk.DerivScaSca(o.TstD, "∂ρGR/∂pGR "+key, mpl.ScaledTol(o.TolRho, res.DRhoGRdpGR), res.DRhoGRdpGR, PGR[i], 1, o.VerD, func(x float64) float64 {
			return mpl.ScalarValue(ρG, vars.WithScalar(mpl.PhasePressure, x), nil, 0, 0)
		})
		chk.DerivScaSca(o.TstD, "∂ρGR/∂T "+key, mpl.ScaledTol(o.TolRho, res.DRhoGRdT), res.DRhoGRdT, T[i], 1e-2, o.VerD, func(x float64) float64 {
			return mpl.ScalarValue(ρG, vars.WithScalar(mpl.Temperature, x), nil, 0, 0)
		})

		// dxmWG/dpGR = xmWG・βp with βp from the checked ∂ρGR/∂pGR
		chk.Float64(o.TstD, "dxmWG/dpGR "+key, o.TolX, res.DXmWGdpGR, res.XmWG*res.DRhoGRdpGR/res.RhoGR)

		// dxmWG/dT through dρWGR/dT = ρGR・dxmWG/dT + xmWG・∂ρGR/∂T
		dρWGRdT := res.RhoGR*res.DXmWGdT + res.XmWG*res.DRhoGRdT
		chk.DerivScaSca(o.TstD, "dρWGR/dT "+key, mpl.ScaledTol(o.TolRho, dρWGRdT), dρWGRdT, T[i], 1e-2, o.VerD, func(x float64) float64 {
			tmp.Update(o.Medium, mpl.NewVariableArray(PGR[i], PCap[i], x), nil, 0, 0)
			return tmp.Vars().RhoWGR
		})
	}
	return
}
