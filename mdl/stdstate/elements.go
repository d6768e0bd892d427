// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stdstate

import (
	"sort"

	"github.com/cpmech/gosl/chk"
)

// elemEntropy holds the entropy of the elements in their stable reference form at (Tr,Pr)
// per mole of atoms. Diatomic gases and liquids use half the molecular value.
//  Units: J/(mol・K)
//  References:
//   [1] Cox JD, Wagman DD and Medvedev VA (1989) CODATA Key Values for Thermodynamics.
//       Hemisphere Publishing Corp., New York
var elemEntropy = map[string]float64{
	"H":  65.34,
	"He": 126.153,
	"Li": 29.12,
	"Be": 9.50,
	"B":  5.90,
	"C":  5.74,
	"N":  95.8045,
	"O":  102.576,
	"F":  101.3955,
	"Ne": 146.328,
	"Na": 51.30,
	"Mg": 32.67,
	"Al": 28.30,
	"Si": 18.81,
	"P":  41.09,
	"S":  32.054,
	"Cl": 111.5405,
	"Ar": 154.846,
	"K":  64.68,
	"Ca": 41.59,
	"Fe": 27.28,
	"Cu": 33.15,
	"Zn": 41.63,
	"Br": 76.105,
	"Ag": 42.55,
	"I":  58.07,
	"Cs": 85.23,
	"Pb": 64.80,
	"Hg": 75.90,
}

// ElementEntropy returns the entropy of an element at (Tr,Pr) [cal/(mol・K)]
func ElementEntropy(symbol string) (s float64, err error) {
	v, ok := elemEntropy[symbol]
	if !ok {
		return 0, chk.Err("entropy of element %q is not available", symbol)
	}
	return v / 4.184, nil
}

// Composition holds the number of atoms of each element in a species; e.g. {"Cl": 1}.
// The charge is given separately.
type Composition map[string]float64

// Elements returns the sorted element symbols
func (o Composition) Elements() (symbols []string) {
	for key := range o {
		symbols = append(symbols, key)
	}
	sort.Strings(symbols)
	return
}

// copy returns a deep copy
func (o Composition) copy() Composition {
	res := make(Composition, len(o))
	for key, val := range o {
		res[key] = val
	}
	return res
}

// ElementsEntropy computes Σ n_e S_e - z S_H, the entropy of the elements forming one mole of
// a species of charge z, with the convention of zero properties for H+ [cal/(mol・K)]
func ElementsEntropy(comp Composition, z float64) (sum float64, err error) {
	for _, symbol := range comp.Elements() {
		se, err := ElementEntropy(symbol)
		if err != nil {
			return 0, err
		}
		sum += comp[symbol] * se
	}
	sH, _ := ElementEntropy("H")
	sum -= z * sH
	return
}
