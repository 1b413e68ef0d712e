// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input of material data for porous media simulations
package inp

import (
	"encoding/json"
	"path/filepath"
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/eike-radeisen/ogs/mdl/mpl"
)

// PropsData holds the descriptions of the properties of one owner
type PropsData []*mpl.PropertyData

// ComponentData holds component data
type ComponentData struct {
	Name  string    `json:"name"`       // name of component; e.g. "W", "C"
	Props PropsData `json:"properties"` // properties of component
}

// PhaseData holds phase data
type PhaseData struct {
	Name       string           `json:"name"`       // name of phase; e.g. "Gas", "AqueousLiquid"
	Props      PropsData        `json:"properties"` // properties of phase
	Components []*ComponentData `json:"components"` // components, in order
}

// MediumData holds medium data
type MediumData struct {
	Id     int          `json:"id"`         // material group id
	Props  PropsData    `json:"properties"` // properties of medium
	Phases []*PhaseData `json:"phases"`     // phases
}

// MatDb implements a database of materials
type MatDb struct {

	// input
	Functions FuncsData     `json:"functions"` // all functions
	MediaData []*MediumData `json:"media"`     // all media

	// derived
	Media mpl.Media `json:"-"` // media by material group id
}

// ReadMat reads all materials data from a .mat JSON file
//  ndim -- space dimension
func ReadMat(dir, fn string, ndim int) (mdb *MatDb, err error) {
	var b []byte
	err = catch(func() { b = io.ReadFile(filepath.Join(dir, fn)) })
	if err != nil {
		return nil, chk.Err("cannot read file %q:\n%v", fn, err)
	}
	mdb, err = ParseMat(b, ndim)
	if err != nil {
		return nil, chk.Err("cannot read materials from %q:\n%v", fn, err)
	}
	return
}

// ParseMat decodes materials data and allocates all media
func ParseMat(b []byte, ndim int) (mdb *MatDb, err error) {

	// decode
	mdb = new(MatDb)
	err = json.Unmarshal(b, mdb)
	if err != nil {
		return nil, err
	}

	// functions
	err = mdb.Functions.check()
	if err != nil {
		return nil, err
	}

	// media
	mdb.Media = make(mpl.Media)
	for _, md := range mdb.MediaData {
		if _, ok := mdb.Media[md.Id]; ok {
			return nil, chk.Err("medium with id %d is defined twice", md.Id)
		}
		mdb.Media[md.Id], err = mdb.newMedium(md, ndim)
		if err != nil {
			return nil, chk.Err("medium %d: %v", md.Id, err)
		}
	}
	return
}

// newMedium allocates a medium and all its properties
func (o *MatDb) newMedium(md *MediumData, ndim int) (medium *mpl.Medium, err error) {
	phases := make([]*mpl.Phase, len(md.Phases))
	for i, pd := range md.Phases {
		components := make([]*mpl.Component, len(pd.Components))
		for j, cd := range pd.Components {
			components[j] = mpl.NewComponent(cd.Name)
			err = o.setProps(components[j].Props, cd.Props, ndim)
			if err != nil {
				return nil, chk.Err("component %q of phase %q: %v", cd.Name, pd.Name, err)
			}
		}
		phases[i] = mpl.NewPhase(pd.Name, components...)
		err = o.setProps(phases[i].Props, pd.Props, ndim)
		if err != nil {
			return nil, chk.Err("phase %q: %v", pd.Name, err)
		}
	}
	medium, err = mpl.NewMedium(phases...)
	if err != nil {
		return
	}
	err = o.setProps(medium.Props, md.Props, ndim)
	return
}

// setProps allocates properties
func (o *MatDb) setProps(props mpl.PropertyArray, data PropsData, ndim int) (err error) {
	for _, pd := range data {
		p, err := mpl.New(pd, o.Functions, ndim)
		if err != nil {
			return err
		}
		typ, _ := mpl.PropertyTypeFromString(pd.Name)
		err = props.Set(typ, p)
		if err != nil {
			return err
		}
	}
	return
}

// Ids returns the sorted material group ids
func (o MatDb) Ids() (ids []int) {
	for id := range o.Media {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return
}

// String prints a summary of all media
func (o MatDb) String() (l string) {
	for _, md := range o.MediaData {
		l += io.Sf("medium %d: %d properties\n", md.Id, len(md.Props))
		for _, pd := range md.Phases {
			l += io.Sf("  phase %q: %d properties\n", pd.Name, len(pd.Props))
			for _, cd := range pd.Components {
				l += io.Sf("    component %q: %d properties\n", cd.Name, len(cd.Props))
			}
		}
	}
	return
}
