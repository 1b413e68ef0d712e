// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/eike-radeisen/ogs/inp"
	"github.com/eike-radeisen/ogs/mdl/mpl"
	"github.com/eike-radeisen/ogs/mdl/phasetransition"
)

// arguments holds the command line arguments
//  usage: ogs <file.mat> [pGR] [pCap] [T] [ndim] [verbose]
type arguments struct {
	fnamepath    string  // materials file
	pGR, pCap, T float64 // gas pressure, capillary pressure and temperature
	ndim         int     // space dimension
	verbose      bool    // show messages
}

// readArgs parses the command line
func readArgs() (a arguments) {
	a.fnamepath, _ = io.ArgToFilename(0, "", ".mat", true)
	a.pGR = io.ArgToFloat(1, 101325.0)
	a.pCap = io.ArgToFloat(2, 0.0)
	a.T = io.ArgToFloat(3, 293.15)
	a.ndim = io.ArgToInt(4, 2)
	a.verbose = io.ArgToBool(5, true)
	return
}

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v\n", err)
			io.Pf("See location of error below:\n")
			chk.Verbose = true
			for i := 5; i > 3; i-- {
				chk.CallerInfo(i)
			}
		}
	}()

	// read input parameters
	a := readArgs()
	fnamepath, pGR, pCap, T, ndim, verbose := a.fnamepath, a.pGR, a.pCap, a.T, a.ndim, a.verbose

	// message
	if verbose {
		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"materials filename path", "fnamepath", fnamepath,
			"gas phase pressure", "pGR", pGR,
			"capillary pressure", "pCap", pCap,
			"temperature", "T", T,
			"space dimension", "ndim", ndim,
			"show messages", "verbose", verbose,
		))
	}

	// materials
	dir, fn := filepath.Split(fnamepath)
	mdb, err := inp.ReadMat(dir, fn, ndim)
	if err != nil {
		chk.Panic("ReadMat failed:\n%v", err)
	}
	if verbose {
		io.Pf("%v\n", mdb)
	}

	// phase-transition model
	phasetransition.Verbose = verbose
	mdl, err := phasetransition.New("evaporation", mdb.Media)
	if err != nil {
		chk.Panic("cannot create phase-transition model:\n%v", err)
	}

	// evaluate at origin
	_, medium, _ := mdb.Media.First()
	x := make([]float64, ndim)
	vars := mdl.Update(medium, mpl.NewVariableArray(pGR, pCap, T), x, 0, 0)
	r := mdl.Vars()

	// medium properties depending on saturation
	sl, λ := 1.0, 0.0
	if medium.HasProperty(mpl.Saturation) {
		sl = mpl.ScalarValue(medium.Property(mpl.Saturation), vars, x, 0, 0)
		vars = vars.WithScalar(mpl.LiquidSaturation, sl)
		if medium.HasProperty(mpl.ThermalConductivity) {
			v := medium.Property(mpl.ThermalConductivity).Value(vars, x, 0, 0)
			if v.Kind() == mpl.TensorKind {
				λ = v.Tensor()[0][0]
			} else {
				λ = v.Scalar()
			}
		}
	}

	// results
	io.Pf("\n%v\n", io.ArgsTable("RESULTS",
		"enthalpy of evaporation", "Δh", vars.Scalar(mpl.EnthalpyOfEvaporation),
		"molar mass of gas", "MG", vars.Scalar(mpl.MolarMassVariable),
		"Kelvin factor", "K", r.K,
		"vapour pressure", "pWGR", r.PWGR,
		"molar fraction of vapour", "xnWG", r.XnWG,
		"mass fraction of vapour", "xmWG", r.XmWG,
		"mass fraction of dry air", "xmCG", r.XmCG(),
		"dxmWG/dpGR", "DXmWGdpGR", r.DXmWGdpGR,
		"dxmWG/dT", "DXmWGdT", r.DXmWGdT,
		"gas density", "ρGR", r.RhoGR,
		"partial density of vapour", "ρWGR", r.RhoWGR,
		"partial density of dry air", "ρCGR", r.RhoCGR,
		"liquid density", "ρLR", r.RhoLR,
		"gas enthalpy", "hG", r.HG,
		"liquid enthalpy", "hL", r.HL,
		"gas internal energy", "uG", r.UG,
		"liquid internal energy", "uL", r.UL,
		"vapour diffusion coefficient", "D", r.DiffusionCoefficientVapour,
		"gas viscosity", "μGR", r.MuGR,
		"liquid viscosity", "μLR", r.MuLR,
		"gas thermal conductivity", "λGR", r.LambdaGR,
		"liquid thermal conductivity", "λLR", r.LambdaLR,
		"liquid saturation", "S", sl,
		"medium thermal conductivity", "λ", λ,
	))
}
