// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// FuncData holds function definition
type FuncData struct {
	Name string     `json:"name"` // name of function. ex: zero, lambda_dry, etc.
	Type string     `json:"type"` // type of function. ex: cte, rmp
	Prms dbf.Params `json:"prms"` // parameters
}

// Funcs holds functions
type FuncsData []*FuncData

// Get returns function by name
func (o FuncsData) Get(name string) (fcn dbf.T, err error) {
	if name == "zero" || name == "none" {
		return &dbf.Zero, nil
	}
	for _, f := range o {
		if f.Name == name {
			err = catch(func() { fcn = dbf.New(f.Type, f.Prms) })
			if err != nil {
				err = chk.Err("cannot get function named %q because of the following error:\n%v", name, err)
			}
			return
		}
	}
	err = chk.Err("cannot find function named %q\n", name)
	return
}

// catch runs fcn and returns a panic raised by gosl as an error
func catch(fcn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = chk.Err("%v", r)
		}
	}()
	fcn()
	return
}

// check checks that names are unique and that all functions can be allocated
func (o FuncsData) check() (err error) {
	names := make(map[string]bool)
	for _, f := range o {
		if names[f.Name] {
			return chk.Err("function named %q is defined twice", f.Name)
		}
		names[f.Name] = true
		if _, err = o.Get(f.Name); err != nil {
			return
		}
	}
	return
}

// String prints one function
func (o FuncData) String() string {
	return io.Sf("{\"name\":%q, \"type\":%q, \"prms\":%v}", o.Name, o.Type, o.Prms)
}
