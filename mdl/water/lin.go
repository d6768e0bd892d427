// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package water

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Lin implements a solvent with density linearised around (T0,P0):
//   ρ(T,P) = R0 + C・(P - P0) - A・(T - T0)   thus   ∂ρ/∂P = C  and  ∂ρ/∂T = -A
// The dielectric constant is computed with the Bradley-Pitzer correlation
type Lin struct {

	// material data
	R0 float64 // density corresponding to (T0,P0) [kg/m³]
	T0 float64 // temperature corresponding to R0 [K]
	P0 float64 // pressure corresponding to R0 [Pa]
	C  float64 // compressibility coefficient; e.g. R0/Kbulk [kg/(m³・Pa)]
	A  float64 // thermal expansion coefficient; e.g. R0・αT [kg/(m³・K)]

	// dielectric constant
	Diel BradleyPitzer
}

// add model to factory
func init() {
	allocators["lin"] = func() Model { return new(Lin) }
}

// Init initialises model
func (o *Lin) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		switch p.N {
		case "R0":
			o.R0 = p.V
		case "T0":
			o.T0 = p.V
		case "P0":
			o.P0 = p.V
		case "C":
			o.C = p.V
		case "A":
			o.A = p.V
		default:
			return chk.Err("lin: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.R0 <= 0 {
		return chk.Err("lin: R0 must be positive. R0=%g is invalid\n", o.R0)
	}
	return
}

// GetPrms gets (an example) of parameters
//  Input:
//   example -- returns example of parameters (water at 25°C); othewise returns current parameters
func (o Lin) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "R0", V: 997.05}, // [kg/m³]
			&dbf.P{N: "T0", V: 298.15}, // [K]
			&dbf.P{N: "P0", V: 101325}, // [Pa]
			&dbf.P{N: "C", V: 4.49e-7}, // [kg/(m³・Pa)]
			&dbf.P{N: "A", V: 0.257},   // [kg/(m³・K)]
		}
	}
	return dbf.Params{
		&dbf.P{N: "R0", V: o.R0},
		&dbf.P{N: "T0", V: o.T0},
		&dbf.P{N: "P0", V: o.P0},
		&dbf.P{N: "C", V: o.C},
		&dbf.P{N: "A", V: o.A},
	}
}

// Calc computes density, dielectric constant and derivatives
func (o Lin) Calc(s *State, T, P float64) {
	checkTP(T, P)
	s.T, s.P = T, P
	s.Rho = o.R0 + o.C*(P-o.P0) - o.A*(T-o.T0)
	s.RhoT, s.RhoP = -o.A, o.C
	s.RhoTT, s.RhoTP, s.RhoPP = 0, 0, 0
	if s.Rho <= 0 {
		chk.Panic("lin: density is not positive at T=%g, P=%g", T, P)
	}
	o.Diel.Calc(s, T, P)
}
