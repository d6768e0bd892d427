// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package water implements models for the properties of liquid water used as solvent
package water

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// State holds the solvent properties at (T,P)
//  Units: T [K], P [Pa], Rho [kg/m³], Eps [-]; derivatives use the same units
type State struct {

	// state
	T float64 // temperature
	P float64 // pressure

	// density and derivatives
	Rho   float64 // ρ
	RhoT  float64 // ∂ρ/∂T
	RhoTT float64 // ∂²ρ/∂T²
	RhoP  float64 // ∂ρ/∂P
	RhoTP float64 // ∂²ρ/(∂T ∂P)
	RhoPP float64 // ∂²ρ/∂P²

	// relative permittivity (dielectric constant) and derivatives
	Eps   float64 // ε
	EpsT  float64 // ∂ε/∂T
	EpsTT float64 // ∂²ε/∂T²
	EpsP  float64 // ∂ε/∂P
	EpsTP float64 // ∂²ε/(∂T ∂P)
	EpsPP float64 // ∂²ε/∂P²
}

// Model defines the interface for solvent models
//  Note: Calc must be a pure function of (T,P)
type Model interface {
	Init(prms dbf.Params) error      // initialises model
	GetPrms(example bool) dbf.Params // gets (an example) of parameters
	Calc(s *State, T, P float64)     // computes density, dielectric constant and derivatives
}

// New returns new solvent model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'water' database", name)
	}
	return allocator(), nil
}

// allocators holds all available solvent models
var allocators = map[string]func() Model{}

// checkTP panics if temperature or pressure are not positive
func checkTP(T, P float64) {
	if T <= 0 || P <= 0 {
		chk.Panic("water: temperature and pressure must be positive. T=%g, P=%g is invalid", T, P)
	}
}
