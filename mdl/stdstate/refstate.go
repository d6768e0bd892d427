// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stdstate

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// MaxRefMismatch is the largest accepted |H0 - (Mu0 + Tr S0)| [cal/mol]
const MaxRefMismatch = 100.0

// Formation holds the properties of formation from the elements at (Tr,Pr)
//  Units: DGf and DHf [cal/mol]; S [cal/(mol・K)]
type Formation struct {
	DGf float64 // Gibbs energy of formation
	DHf float64 // enthalpy of formation
	S   float64 // entropy
}

// Absolute holds the absolute properties at (Tr,Pr)
//  Units: Mu0 and H0 [J/kmol]; S0 [J/(kmol・K)]
type Absolute struct {
	Mu0 float64 // Gibbs energy (chemical potential)
	H0  float64 // enthalpy
	S0  float64 // entropy
}

// Mismatch returns H0 - (Mu0 + Tr S0) [cal/mol]
func (o Absolute) Mismatch() float64 {
	return (o.H0 - (o.Mu0 + Tr*o.S0)) / CalToJ
}

// FormationToAbsolute converts formation properties into absolute properties
func FormationToAbsolute(f Formation, comp Composition, z float64) (a Absolute, err error) {
	se, err := ElementsEntropy(comp, z)
	if err != nil {
		return
	}
	a.Mu0 = (f.DGf - Tr*se) * CalToJ
	a.H0 = f.DHf * CalToJ
	a.S0 = f.S * CalToJ
	return
}

// AbsoluteToFormation converts absolute properties into formation properties
func AbsoluteToFormation(a Absolute, comp Composition, z float64) (f Formation, err error) {
	se, err := ElementsEntropy(comp, z)
	if err != nil {
		return
	}
	f.DGf = a.Mu0/CalToJ + Tr*se
	f.DHf = a.H0 / CalToJ
	f.S = a.S0 / CalToJ
	return
}

// CompleteFormation computes the missing one of DGf or DHf from ΔG = ΔH - Tr ΔS,
// where ΔS = S - Σ n_e S_e + z S_H
//  missingG -- DGf is missing; otherwise DHf is missing
func CompleteFormation(f *Formation, comp Composition, z float64, missingG bool) (err error) {
	se, err := ElementsEntropy(comp, z)
	if err != nil {
		return
	}
	ΔS := f.S - se
	if missingG {
		f.DGf = f.DHf - Tr*ΔS
	} else {
		f.DHf = f.DGf + Tr*ΔS
	}
	return
}

// CheckConsistency returns an error if H0 and Mu0 + Tr S0 differ by more than MaxRefMismatch
func CheckConsistency(a Absolute) error {
	if d := a.Mismatch(); math.Abs(d) > MaxRefMismatch {
		return chk.Err("reference state is inconsistent: H0 - (Mu0 + Tr S0) = %g cal/mol exceeds %g cal/mol", d, MaxRefMismatch)
	}
	return nil
}
