// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input of species databases
package inp

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/hkft/mdl/stdstate"
	"github.com/cpmech/hkft/mdl/water"
)

// Species holds species data
type Species struct {

	// input
	Name  string               `json:"name"`  // name of species; e.g. "Na+"
	Model string               `json:"model"` // name of standard-state model; e.g. "hkft"
	Extra string               `json:"extra"` // extra information about this species; e.g. source of data
	Comp  stdstate.Composition `json:"comp"`  // elemental composition; e.g. {"Na": 1}
	Prms  dbf.Params           `json:"prms"`  // model parameters

	// derived
	Std stdstate.Model // pointer to actual standard-state model
}

// SolventData holds the solvent model data
type SolventData struct {
	Model string     `json:"model"` // name of model; e.g. "if97"
	Prms  dbf.Params `json:"prms"`  // model parameters
}

// SpeciesData holds species
type SpeciesData []*Species

// SpcDb implements a database of aqueous species
type SpcDb struct {

	// input
	Solvent SolventData `json:"solvent"` // solvent
	Species SpeciesData `json:"species"` // all species

	// derived
	Water  *water.Handle       // solvent shared by all species
	byname map[string]*Species // maps name to species
}

// ReadSpc reads all species data from a .spc JSON file
func ReadSpc(dir, fn string) (sdb *SpcDb, err error) {

	// read file
	b, err := os.ReadFile(filepath.Join(dir, fn))
	if err != nil {
		return nil, chk.Err("cannot read species file %q:\n%v", fn, err)
	}

	// decode
	sdb = new(SpcDb)
	err = json.Unmarshal(b, sdb)
	if err != nil {
		return nil, chk.Err("cannot decode species file %q:\n%v", fn, err)
	}
	err = sdb.init()
	if err != nil {
		return nil, err
	}
	return
}

// init allocates and initialises the solvent and all species
func (o *SpcDb) init() (err error) {

	// solvent
	if o.Solvent.Model == "" {
		return chk.Err("solvent model is required")
	}
	mdl, err := water.New(o.Solvent.Model)
	if err != nil {
		return
	}
	err = mdl.Init(o.Solvent.Prms)
	if err != nil {
		return
	}
	o.Water = water.NewHandle(mdl)

	// species
	if len(o.Species) == 0 {
		return chk.Err("species database is empty")
	}
	o.byname = make(map[string]*Species)
	for _, s := range o.Species {
		if s.Name == "" {
			return chk.Err("all species must have a name")
		}
		if _, ok := o.byname[s.Name]; ok {
			return chk.Err("species %q is defined more than once", s.Name)
		}
		o.byname[s.Name] = s
		s.Std, err = stdstate.New(s.Model)
		if err != nil {
			return chk.Err("species %q: %v", s.Name, err)
		}
		err = s.Std.Init(s.Prms, s.Comp, o.Water)
		if err != nil {
			return chk.Err("species %q: %v", s.Name, err)
		}
	}
	return
}

// Get returns a species
//  Note: returns nil if not found
func (o SpcDb) Get(name string) *Species {
	return o.byname[name]
}

// Names returns the sorted names of all species
func (o SpcDb) Names() (names []string) {
	for _, s := range o.Species {
		names = append(names, s.Name)
	}
	sort.Strings(names)
	return
}

// SetStateTP sets the state of all species; the solvent is computed once
func (o *SpcDb) SetStateTP(T, P float64) {
	for _, s := range o.Species {
		s.Std.SetStateTP(T, P)
	}
}

// String prints one species
func (o Species) String() string {
	l := io.Sf("{\n")
	l += io.Sf("  \"name\"  : %q,\n", o.Name)
	l += io.Sf("  \"model\" : %q,\n", o.Model)
	l += io.Sf("  \"extra\" : %q,\n", o.Extra)
	l += "  \"comp\"  : {"
	for i, e := range o.Comp.Elements() {
		if i > 0 {
			l += ", "
		}
		l += io.Sf("%q: %g", e, o.Comp[e])
	}
	l += "},\n"
	l += "  \"prms\"  : ["
	for i, p := range o.Prms {
		if i > 0 {
			l += ", "
		}
		l += io.Sf("{\"n\": %q, \"v\": %g}", p.N, p.V)
	}
	l += "]\n}"
	return l
}
