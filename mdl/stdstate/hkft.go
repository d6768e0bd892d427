// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stdstate

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/hkft/mdl/water"
)

// HKFT implements the revised Helgeson-Kirkham-Flowers equation of state for the standard
// partial molal properties of aqueous species [1,2,3,4]
//
//   G(T,P) = Mu0 - S0 (T - Tr) + ΔG(T,P)
//
//  where ΔG collects the non-solvation, solvation and Born terms. All input parameters are
//  given in the units of the SUPCRT tables (cal, bar, Å) and converted to SI internally.
type HKFT struct {

	// parameters
	Z  float64 // charge
	A1 float64 // a1 [cal/(mol・bar)]
	A2 float64 // a2 [cal/mol]
	A3 float64 // a3 [cal・K/(mol・bar)]
	A4 float64 // a4 [cal・K/mol]
	C1 float64 // c1 [cal/(mol・K)]
	C2 float64 // c2 [cal・K/mol]
	Mw float64 // molecular weight [kg/kmol]

	// reference state
	Ref    Absolute    // absolute properties at (Tr,Pr)
	Form   Formation   // formation properties at (Tr,Pr) if given
	Comp   Composition // elemental composition
	absInp bool        // reference state was given as mu0

	// Born model
	ωr  float64 // Born coefficient at (Tr,Pr) [cal/mol]
	rer float64 // effective electrostatic radius at (Tr,Pr) [Å]
	Zr  float64 // Born function Z = -1/ε at (Tr,Pr)
	Yr  float64 // Born function Y = ∂ε/∂T / ε² at (Tr,Pr)

	// state
	solvent *water.Handle // solvent; may be shared with other species
	cur     point         // current state
}

// point holds a state and the solvent properties at that state
type point struct {
	T, P float64
	w    water.State
}

// constants of the HKFT model
const (
	hkftΨ  = 2600.0   // solvent pressure parameter [bar]
	hkftΘ  = 228.0    // solvent temperature parameter [K]
	hkftη  = 166027.0 // N_A e²/2 [Å・cal/mol]
	hkftΓH = 3.082    // charge-dependent radius correction of cations [Å]
)

// add model to factory
func init() {
	allocators["hkft"] = func() Model { return new(HKFT) }
}

// Init initialises model
func (o *HKFT) Init(prms dbf.Params, comp Composition, solvent *water.Handle) (err error) {

	// solvent
	if solvent == nil {
		return chk.Err("hkft: solvent handle is required\n")
	}
	o.solvent = solvent
	o.Comp = comp.copy()

	// parameters
	var ω, re, dGf, dHf, S, mu0 float64
	found := make(map[string]bool)
	for _, p := range prms {
		switch p.N {
		case "z":
			o.Z = p.V
		case "a1":
			o.A1 = p.V
		case "a2":
			o.A2 = p.V
		case "a3":
			o.A3 = p.V
		case "a4":
			o.A4 = p.V
		case "c1":
			o.C1 = p.V
		case "c2":
			o.C2 = p.V
		case "omega":
			ω = p.V
		case "re":
			re = p.V
		case "dGf":
			dGf = p.V
		case "dHf":
			dHf = p.V
		case "S0":
			S = p.V
		case "mu0":
			mu0 = p.V
		case "mw":
			o.Mw = p.V
		default:
			return chk.Err("hkft: parameter named %q is incorrect\n", p.N)
		}
		found[p.N] = true
	}
	for _, key := range []string{"z", "a1", "a2", "a3", "a4", "c1", "c2", "S0", "mw"} {
		if !found[key] {
			return chk.Err("hkft: parameter %q is missing\n", key)
		}
	}
	if o.Mw <= 0 {
		return chk.Err("hkft: molecular weight must be positive. mw=%g is invalid\n", o.Mw)
	}

	// reference state
	err = o.initRef(found, dGf, dHf, S, mu0)
	if err != nil {
		return
	}

	// Born coefficient and radius
	err = o.initBorn(found["omega"], found["re"], ω, re)
	if err != nil {
		return
	}

	// solvent at (Tr,Pr)
	wr := o.solvent.Calc(Tr, Pr)
	o.Zr = -1.0 / wr.Eps
	o.Yr = wr.EpsT / (wr.Eps * wr.Eps)

	// state
	o.SetStateTP(Tr, Pr)
	return
}

// initRef sets the reference state from either formation properties or mu0
func (o *HKFT) initRef(found map[string]bool, dGf, dHf, S, mu0 float64) (err error) {
	hasG, hasH, hasMu := found["dGf"], found["dHf"], found["mu0"]
	switch {
	case hasMu && (hasG || hasH):
		return chk.Err("hkft: reference state must be given by either (dGf, dHf) or mu0\n")
	case hasMu:
		o.absInp = true
		o.Ref = Absolute{Mu0: mu0 * CalToJ, H0: (mu0 + Tr*S) * CalToJ, S0: S * CalToJ}
		o.Form, err = AbsoluteToFormation(o.Ref, o.Comp, o.Z)
		if err != nil {
			return chk.Err("hkft: %v\n", err)
		}
		return
	case hasG || hasH:
		o.Form = Formation{DGf: dGf, DHf: dHf, S: S}
		if !hasG || !hasH {
			err = CompleteFormation(&o.Form, o.Comp, o.Z, !hasG)
			if err != nil {
				return chk.Err("hkft: %v\n", err)
			}
		}
		o.Ref, err = FormationToAbsolute(o.Form, o.Comp, o.Z)
		if err != nil {
			return chk.Err("hkft: %v\n", err)
		}
	default:
		return chk.Err("hkft: reference state requires dGf, dHf or mu0\n")
	}
	if err = CheckConsistency(o.Ref); err != nil {
		return chk.Err("hkft: %v\n", err)
	}
	return
}

// initBorn sets the Born coefficient and the effective radius at (Tr,Pr)
func (o *HKFT) initBorn(hasω, hasRe bool, ω, re float64) (err error) {
	if o.Z == 0 {
		if !hasω {
			return chk.Err("hkft: omega is required for neutral species\n")
		}
		if hasRe {
			return chk.Err("hkft: re must not be given for neutral species\n")
		}
		o.ωr, o.rer = ω, 0
		return
	}
	switch {
	case hasω && hasRe:
		if math.Abs(BornCoeff(re, o.Z)-ω) > 1e-6*math.Max(math.Abs(ω), 1) {
			return chk.Err("hkft: omega=%g and re=%g are inconsistent. omega(re)=%g\n", ω, re, BornCoeff(re, o.Z))
		}
		o.ωr, o.rer = ω, re
	case hasω:
		o.ωr, o.rer = ω, BornRadius(ω, o.Z)
	case hasRe:
		o.ωr, o.rer = BornCoeff(re, o.Z), re
	default:
		return chk.Err("hkft: omega or re is required for charged species\n")
	}
	if o.rer <= 0 {
		return chk.Err("hkft: effective radius must be positive. re=%g is invalid (omega=%g, z=%g)\n", o.rer, o.ωr, o.Z)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o HKFT) GetPrms(example bool) dbf.Params {
	if example { // Na+ [4]
		return dbf.Params{
			&dbf.P{N: "z", V: 1},
			&dbf.P{N: "a1", V: 0.1839},
			&dbf.P{N: "a2", V: -228.5},
			&dbf.P{N: "a3", V: 3.256},
			&dbf.P{N: "a4", V: -27260},
			&dbf.P{N: "c1", V: 18.18},
			&dbf.P{N: "c2", V: -29810},
			&dbf.P{N: "omega", V: 33060},
			&dbf.P{N: "dGf", V: -62591},
			&dbf.P{N: "dHf", V: -57433},
			&dbf.P{N: "S0", V: 13.96},
			&dbf.P{N: "mw", V: 22.98922},
		}
	}
	prms := dbf.Params{
		&dbf.P{N: "z", V: o.Z},
		&dbf.P{N: "a1", V: o.A1},
		&dbf.P{N: "a2", V: o.A2},
		&dbf.P{N: "a3", V: o.A3},
		&dbf.P{N: "a4", V: o.A4},
		&dbf.P{N: "c1", V: o.C1},
		&dbf.P{N: "c2", V: o.C2},
		&dbf.P{N: "omega", V: o.ωr},
	}
	if o.absInp {
		prms = append(prms, &dbf.P{N: "mu0", V: o.Ref.Mu0 / CalToJ})
	} else {
		prms = append(prms, &dbf.P{N: "dGf", V: o.Form.DGf}, &dbf.P{N: "dHf", V: o.Form.DHf})
	}
	return append(prms, &dbf.P{N: "S0", V: o.Ref.S0 / CalToJ}, &dbf.P{N: "mw", V: o.Mw})
}

// Duplicate returns a deep copy. A nil solvent gives the copy its own handle to the same
// solvent model; otherwise the copy shares the given handle.
func (o *HKFT) Duplicate(solvent *water.Handle) Model {
	dup := new(HKFT)
	*dup = *o
	dup.Comp = o.Comp.copy()
	if solvent == nil {
		solvent = water.NewHandle(o.solvent.Model)
	}
	dup.solvent = solvent
	dup.SetStateTP(o.cur.T, o.cur.P)
	return dup
}

// BornCoeff computes ω [cal/mol] from the effective electrostatic radius re [Å]
func BornCoeff(re, z float64) float64 {
	if z == 0 {
		return 0
	}
	return hkftη * (z*z/re - z/hkftΓH)
}

// BornRadius computes the effective electrostatic radius [Å] from ω [cal/mol]
//  Note: z = 0 yields 0 since ω is used directly for neutral species
func BornRadius(ω, z float64) float64 {
	if z == 0 {
		return 0
	}
	return z * z / (ω/hkftη + z/hkftΓH)
}

// Radius returns the effective electrostatic radius at (Tr,Pr) [Å]
func (o *HKFT) Radius() float64 { return o.rer }

// Mu0 returns the absolute Gibbs energy at (Tr,Pr) [J/kmol]
func (o *HKFT) Mu0() float64 { return o.Ref.Mu0 }

// OmegaRef returns the Born coefficient at (Tr,Pr) [cal/mol]
func (o *HKFT) OmegaRef() float64 { return o.ωr }

// Omega computes the Born coefficient at the current state [cal/mol]
func (o *HKFT) Omega(mode int) float64 {
	return o.omega(&o.cur.w).get(mode)
}

// omega computes ω(T,P) and derivatives
//   ω = η (z² / (re + |z| g*) - z / (ΓH + g*))
func (o *HKFT) omega(w *water.State) derivs {
	if o.Z == 0 {
		return constant(o.ωr)
	}
	gs := gstarDerivs(w)
	re := gs.scale(math.Abs(o.Z)).shift(o.rer)
	rH := gs.shift(hkftΓH)
	return re.inv().scale(o.Z * o.Z).sub(rH.inv().scale(o.Z)).scale(hkftη)
}

// bornZ computes Z = -1/ε and derivatives
func bornZ(w *water.State) derivs {
	ε := derivs{v: w.Eps, t: w.EpsT, p: w.EpsP, tt: w.EpsTT, tp: w.EpsTP, pp: w.EpsPP}
	return ε.inv().scale(-1)
}
