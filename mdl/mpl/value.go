// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpl

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// ValueKind tells which member of a Value is active
type ValueKind int

// value kinds
const (
	Unset ValueKind = iota
	ScalarKind
	VectorKind
	TensorKind
)

// String returns the name of the kind
func (k ValueKind) String() string {
	switch k {
	case ScalarKind:
		return "scalar"
	case VectorKind:
		return "vector"
	case TensorKind:
		return "tensor"
	}
	return "unset"
}

// Value holds a scalar, vector or tensor. The zero Value is unset.
type Value struct {
	kind ValueKind
	s    float64
	v    []float64
	m    [][]float64
}

// NewScalar returns a scalar value
func NewScalar(s float64) Value {
	return Value{kind: ScalarKind, s: s}
}

// NewVector returns a vector value holding v (not copied)
func NewVector(v []float64) Value {
	return Value{kind: VectorKind, v: v}
}

// NewTensor returns a tensor value holding m (not copied)
func NewTensor(m [][]float64) Value {
	return Value{kind: TensorKind, m: m}
}

// NewIsotropic returns s for ndim == 1; otherwise the ndim×ndim tensor s·I
func NewIsotropic(ndim int, s float64) Value {
	if ndim == 1 {
		return NewScalar(s)
	}
	m := utl.Alloc(ndim, ndim)
	for i := 0; i < ndim; i++ {
		m[i][i] = s
	}
	return NewTensor(m)
}

// Kind returns the kind of value
func (o Value) Kind() ValueKind { return o.kind }

// IsSet tells whether this value has been computed
func (o Value) IsSet() bool { return o.kind != Unset }

// Scalar returns the scalar member
func (o Value) Scalar() float64 {
	if o.kind != ScalarKind {
		chk.Panic("cannot get scalar from %s value", o.kind)
	}
	return o.s
}

// Vector returns the vector member
func (o Value) Vector() []float64 {
	if o.kind != VectorKind {
		chk.Panic("cannot get vector from %s value", o.kind)
	}
	return o.v
}

// Tensor returns the tensor member
func (o Value) Tensor() [][]float64 {
	if o.kind != TensorKind {
		chk.Panic("cannot get tensor from %s value", o.kind)
	}
	return o.m
}
