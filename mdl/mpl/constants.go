// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpl

// physical constants
const (
	IdealGasConstant    = 8.31446261815324 // [J/(mol・K)]
	CelsiusZeroInKelvin = 273.15           // [K]
	MolarMassWater      = 0.01801528       // [kg/mol]
	MolarMassDryAir     = 0.0289647        // [kg/mol]
)
