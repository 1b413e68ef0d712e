// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpl

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// ScaledTol returns tol relative to max(1, |ana|); to be used with chk.DerivScaSca
func ScaledTol(tol, ana float64) float64 {
	return tol * math.Max(1, math.Abs(ana))
}

// CheckDerivs checks ∂p/∂v of scalar property p at vars for all vs
//  h   -- steps, one per variable
//  tol -- tolerance relative to max(1, |analytical|)
func CheckDerivs(tst *testing.T, p Property, vars VariableArray, vs []Variable, h []float64, tol float64, verbose bool) {
	for i, v := range vs {
		ana := ScalarDValue(p, vars, v, nil, 0, 0)
		chk.DerivScaSca(tst, io.Sf("∂%s/∂%s", p.Name(), v), ScaledTol(tol, ana), ana, vars.Scalar(v), h[i], verbose, func(x float64) float64 {
			return ScalarValue(p, vars.WithScalar(v, x), nil, 0, 0)
		})
	}
}
