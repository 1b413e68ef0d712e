// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpl

import (
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// PropertyArray holds at most one property per type
type PropertyArray map[PropertyType]Property

// PropertyOwner is implemented by components, phases and media
type PropertyOwner interface {
	OwnerName() string
	HasProperty(p PropertyType) bool
}

// Component holds the properties of one substance within a phase
type Component struct {
	Name  string
	Props PropertyArray
}

// Phase holds an ordered set of components and the properties of the phase
type Phase struct {
	Name       string
	Components []*Component
	Props      PropertyArray
}

// Medium holds the phases and properties of the material in one region
type Medium struct {
	Phases map[string]*Phase
	Props  PropertyArray
}

// Media maps material group ids to media. Media may be shared by many elements.
type Media map[int]*Medium

// NewComponent returns a new component without properties
func NewComponent(name string) *Component {
	return &Component{Name: name, Props: make(PropertyArray)}
}

// NewPhase returns a new phase holding the given components
func NewPhase(name string, components ...*Component) *Phase {
	return &Phase{Name: name, Components: components, Props: make(PropertyArray)}
}

// NewMedium returns a new medium holding the given phases
//  Note: returns error if two phases have the same name
func NewMedium(phases ...*Phase) (*Medium, error) {
	o := &Medium{Phases: make(map[string]*Phase), Props: make(PropertyArray)}
	for _, p := range phases {
		if _, ok := o.Phases[p.Name]; ok {
			return nil, chk.Err("medium cannot have two phases named %q", p.Name)
		}
		o.Phases[p.Name] = p
	}
	return o, nil
}

// Set adds property p of type typ. A property of the same type must not exist.
func (o PropertyArray) Set(typ PropertyType, p Property) error {
	if _, ok := o[typ]; ok {
		return chk.Err("property %q is defined twice", typ)
	}
	o[typ] = p
	return nil
}

// get returns the property of type typ or panics naming the owner
func (o PropertyArray) get(typ PropertyType, owner string) Property {
	p, ok := o[typ]
	if !ok {
		chk.Panic("%s has no property %q", owner, typ)
	}
	return p
}

// OwnerName returns a description of this component
func (o *Component) OwnerName() string { return io.Sf("component %q", o.Name) }

// HasProperty tells whether this component defines property p
func (o *Component) HasProperty(p PropertyType) bool {
	_, ok := o.Props[p]
	return ok
}

// Property returns property p. Panics if not available.
func (o *Component) Property(p PropertyType) Property {
	return o.Props.get(p, o.OwnerName())
}

// OwnerName returns a description of this phase
func (o *Phase) OwnerName() string { return io.Sf("phase %q", o.Name) }

// HasProperty tells whether this phase defines property p
func (o *Phase) HasProperty(p PropertyType) bool {
	_, ok := o.Props[p]
	return ok
}

// Property returns property p. Panics if not available.
func (o *Phase) Property(p PropertyType) Property {
	return o.Props.get(p, o.OwnerName())
}

// NumberOfComponents returns the number of components
func (o *Phase) NumberOfComponents() int { return len(o.Components) }

// Component returns component i. Panics if i is out of range.
func (o *Phase) Component(i int) *Component {
	if i < 0 || i >= len(o.Components) {
		chk.Panic("%s has no component with index %d", o.OwnerName(), i)
	}
	return o.Components[i]
}

// OwnerName returns a description of this medium
func (o *Medium) OwnerName() string { return "medium" }

// HasProperty tells whether this medium defines property p
func (o *Medium) HasProperty(p PropertyType) bool {
	_, ok := o.Props[p]
	return ok
}

// Property returns property p. Panics if not available.
func (o *Medium) Property(p PropertyType) Property {
	return o.Props.get(p, o.OwnerName())
}

// HasPhase tells whether a phase named name exists
func (o *Medium) HasPhase(name string) bool {
	_, ok := o.Phases[name]
	return ok
}

// Phase returns the phase named name. Panics if not available.
func (o *Medium) Phase(name string) *Phase {
	p, ok := o.Phases[name]
	if !ok {
		chk.Panic("medium has no phase named %q", name)
	}
	return p
}

// FindPhase returns the phase named name or an error
func (o *Medium) FindPhase(name string) (*Phase, error) {
	p, ok := o.Phases[name]
	if !ok {
		return nil, chk.Err("medium has no phase named %q", name)
	}
	return p, nil
}

// First returns the medium with the lowest material group id
func (o Media) First() (id int, medium *Medium, err error) {
	if len(o) == 0 {
		return 0, nil, chk.Err("there are no media")
	}
	ids := make([]int, 0, len(o))
	for k := range o {
		ids = append(ids, k)
	}
	sort.Ints(ids)
	return ids[0], o[ids[0]], nil
}

// CheckRequiredProperties returns an error naming the first property in required
// that owner does not define
func CheckRequiredProperties(owner PropertyOwner, required []PropertyType) error {
	for _, p := range required {
		if !owner.HasProperty(p) {
			return chk.Err("%s has no required property %q", owner.OwnerName(), p)
		}
	}
	return nil
}
