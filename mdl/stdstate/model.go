// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package stdstate implements standard-state models for aqueous species
//  References:
//   [1] Helgeson HC, Kirkham DH and Flowers GC (1981) Theoretical prediction of the
//       thermodynamic behavior of aqueous electrolytes at high pressures and temperatures.
//       Am J Sci, 281(10), 1249-1516, http://dx.doi.org/10.2475/ajs.281.10.1249
//   [2] Tanger JC and Helgeson HC (1988) Calculation of the thermodynamic and transport
//       properties of aqueous species at high pressures and temperatures: revised
//       equations of state for the standard partial molal properties of ions and
//       electrolytes. Am J Sci, 288(1), 19-98, http://dx.doi.org/10.2475/ajs.288.1.19
//   [3] Shock EL, Oelkers EH, Johnson JW, Sverjensky DA and Helgeson HC (1992) Calculation
//       of the thermodynamic properties of aqueous species at high pressures and
//       temperatures. J Chem Soc Faraday Trans, 88(6), 803-826,
//       http://dx.doi.org/10.1039/FT9928800803
//   [4] Johnson JW, Oelkers EH and Helgeson HC (1992) SUPCRT92: A software package for
//       calculating the standard molal thermodynamic properties of minerals, gases,
//       aqueous species, and reactions from 1 to 5000 bar and 0 to 1000°C.
//       Comput Geosci, 18(7), 899-947, http://dx.doi.org/10.1016/0098-3004(92)90029-Q
package stdstate

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/hkft/mdl/water"
)

// reference state and units
const (
	Tr       = 298.15      // reference temperature [K]
	Pr       = 101325.0    // reference pressure [Pa] (1 atm)
	PrBar    = Pr * 1e-5   // reference pressure [bar]
	CalToJ   = 4184.0      // converts cal/mol into J/kmol
	GasConst = 8314.462618 // universal gas constant [J/(kmol・K)]
)

// Model defines the interface for standard-state models
//  Units: energies [J/kmol], entropies and heat capacities [J/(kmol・K)],
//         volumes [m³/kmol], densities [kg/m³], temperature [K], pressure [Pa]
type Model interface {
	Init(prms dbf.Params, comp Composition, solvent *water.Handle) error // initialises model
	GetPrms(example bool) dbf.Params                                     // gets (an example) of parameters
	Duplicate(solvent *water.Handle) Model                               // deep copy; nil solvent => own handle

	// state
	SetStateTP(T, P float64)  // sets temperature and pressure
	SetTemperature(T float64) // sets temperature; pressure is unchanged
	SetPressure(P float64)    // sets pressure; temperature is unchanged
	Temperature() float64     // current temperature
	Pressure() float64        // current pressure
	RefPressure() float64     // reference pressure

	// properties at (T,P)
	GibbsMole() float64     // molar Gibbs energy
	EnthalpyMole() float64  // molar enthalpy
	IntEnergyMole() float64 // molar internal energy
	EntropyMole() float64   // molar entropy
	CpMole() float64        // molar heat capacity at constant pressure
	CvMole() float64        // molar heat capacity at constant volume
	MolarVolume() float64   // molar volume
	Density() float64       // density
	GibbsRT() float64       // G/(R T)
	EnthalpyRT() float64    // H/(R T)
	EntropyR() float64      // S/R
	CpR() float64           // Cp/R

	// properties at (T,Pr)
	GibbsRTRef() float64     // G/(R T) at the reference pressure
	EnthalpyRTRef() float64  // H/(R T) at the reference pressure
	EntropyRRef() float64    // S/R at the reference pressure
	CpRRef() float64         // Cp/R at the reference pressure
	MolarVolumeRef() float64 // molar volume at the reference pressure
}

// New returns new standard-state model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'stdstate' database", name)
	}
	return allocator(), nil
}

// allocators holds all available standard-state models
var allocators = map[string]func() Model{}
