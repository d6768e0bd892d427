// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stdstate

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// SetStateTP sets temperature and pressure
func (o *HKFT) SetStateTP(T, P float64) {
	if T <= hkftΘ || P <= 0 {
		chk.Panic("hkft: temperature must be greater than %g K and pressure must be positive. T=%g, P=%g is invalid", hkftΘ, T, P)
	}
	w := o.solvent.SetState(T, P)
	o.cur = point{T: T, P: P, w: w}
}

// SetTemperature sets temperature; pressure is unchanged
func (o *HKFT) SetTemperature(T float64) { o.SetStateTP(T, o.cur.P) }

// SetPressure sets pressure; temperature is unchanged
func (o *HKFT) SetPressure(P float64) { o.SetStateTP(o.cur.T, P) }

// Temperature returns the current temperature
func (o *HKFT) Temperature() float64 { return o.cur.T }

// Pressure returns the current pressure
func (o *HKFT) Pressure() float64 { return o.cur.P }

// RefPressure returns the reference pressure
func (o *HKFT) RefPressure() float64 { return Pr }

// properties at (T,P) ///////////////////////////////////////////////////////////////////////////

// DeltaG returns G - Mu0 + S0 (T - Tr) [J/kmol]
//  Note: the effective radius is computed from ω at (Tr,Pr) with g* = 0, whereas g*(Tr,Pr) is
//        slightly negative (about -5e-11 Å with if97). Thus ΔG(Tr,Pr) is of the order of
//        1e-2 J/kmol instead of exactly zero, as in SUPCRT92
func (o *HKFT) DeltaG() float64 { return o.delta(&o.cur).v * CalToJ }

// DeltaS returns S - S0 [J/(kmol・K)]
func (o *HKFT) DeltaS() float64 { return -o.delta(&o.cur).t * CalToJ }

// GibbsMole returns the molar Gibbs energy [J/kmol]
func (o *HKFT) GibbsMole() float64 { return o.gibbs(&o.cur) }

// EnthalpyMole returns the molar enthalpy [J/kmol]
func (o *HKFT) EnthalpyMole() float64 { return o.enthalpy(&o.cur) }

// IntEnergyMole returns the molar internal energy [J/kmol]
func (o *HKFT) IntEnergyMole() float64 {
	return o.enthalpy(&o.cur) - o.cur.P*o.volume(&o.cur)
}

// EntropyMole returns the molar entropy [J/(kmol・K)]
func (o *HKFT) EntropyMole() float64 { return o.entropy(&o.cur) }

// CpMole returns the molar heat capacity at constant pressure [J/(kmol・K)]
func (o *HKFT) CpMole() float64 { return o.cp(&o.cur) }

// CvMole returns the molar heat capacity at constant volume of the solution [J/(kmol・K)]
//
//   Cv = Cp - T (2 γ ∂V/∂T + γ² ∂V/∂P)    with    γ = (∂P/∂T)_V = -(∂ρ/∂T)/(∂ρ/∂P) of water
//
func (o *HKFT) CvMole() float64 { return o.cv(&o.cur) }

// MolarVolume returns the molar volume [m³/kmol]
func (o *HKFT) MolarVolume() float64 { return o.volume(&o.cur) }

// Density returns Mw/V [kg/m³]
//  Note: the standard partial molal volume of some ions is negative
func (o *HKFT) Density() float64 { return o.Mw / o.volume(&o.cur) }

// GibbsRT returns G/(R T)
func (o *HKFT) GibbsRT() float64 { return o.gibbs(&o.cur) / (GasConst * o.cur.T) }

// EnthalpyRT returns H/(R T)
func (o *HKFT) EnthalpyRT() float64 { return o.enthalpy(&o.cur) / (GasConst * o.cur.T) }

// EntropyR returns S/R
func (o *HKFT) EntropyR() float64 { return o.entropy(&o.cur) / GasConst }

// CpR returns Cp/R
func (o *HKFT) CpR() float64 { return o.cp(&o.cur) / GasConst }

// properties at (T,Pr) //////////////////////////////////////////////////////////////////////////

// GibbsRTRef returns G/(R T) at the reference pressure
func (o *HKFT) GibbsRTRef() float64 {
	s := o.refPoint()
	return o.gibbs(s) / (GasConst * s.T)
}

// EnthalpyRTRef returns H/(R T) at the reference pressure
func (o *HKFT) EnthalpyRTRef() float64 {
	s := o.refPoint()
	return o.enthalpy(s) / (GasConst * s.T)
}

// EntropyRRef returns S/R at the reference pressure
func (o *HKFT) EntropyRRef() float64 { return o.entropy(o.refPoint()) / GasConst }

// CpRRef returns Cp/R at the reference pressure
func (o *HKFT) CpRRef() float64 { return o.cp(o.refPoint()) / GasConst }

// MolarVolumeRef returns the molar volume at the reference pressure [m³/kmol]
func (o *HKFT) MolarVolumeRef() float64 { return o.volume(o.refPoint()) }

// auxiliary /////////////////////////////////////////////////////////////////////////////////////

// refPoint returns the current temperature at the reference pressure. The shared solvent state
// is not changed.
func (o *HKFT) refPoint() *point {
	if o.cur.P == Pr {
		return &o.cur
	}
	return &point{T: o.cur.T, P: Pr, w: o.solvent.Calc(o.cur.T, Pr)}
}

func (o *HKFT) gibbs(s *point) float64 {
	return o.Ref.Mu0 - o.Ref.S0*(s.T-Tr) + o.delta(s).v*CalToJ
}

func (o *HKFT) entropy(s *point) float64 {
	return o.Ref.S0 - o.delta(s).t*CalToJ
}

func (o *HKFT) enthalpy(s *point) float64 {
	return o.gibbs(s) + s.T*o.entropy(s)
}

func (o *HKFT) cp(s *point) float64 {
	return -s.T * o.delta(s).tt * CalToJ
}

func (o *HKFT) volume(s *point) float64 {
	return o.delta(s).p * CalToJ
}

func (o *HKFT) cv(s *point) float64 {
	d := o.delta(s)
	γ := -s.w.RhoT / s.w.RhoP
	return (-s.T*d.tt - s.T*(2.0*γ*d.tp+γ*γ*d.pp)) * CalToJ
}

// delta computes ΔG(T,P) and derivatives [cal/mol]
//
//   ΔG = ΔGns - ω (Z + 1) + ωr (Zr + 1) + ωr Yr (T - Tr)
//
//  where ΔGns is the non-solvation contribution
func (o *HKFT) delta(s *point) derivs {
	ω := o.omega(&s.w)
	Z := bornZ(&s.w)
	born := derivs{v: o.ωr*(o.Zr+1.0) + o.ωr*o.Yr*(s.T-Tr), t: o.ωr * o.Yr}
	return o.nonSolvation(s.T, s.P).sub(ω.mul(Z.shift(1))).add(born)
}

// nonSolvation computes the non-solvation contribution to ΔG and derivatives [cal/mol]
//
//   ΔGns = -c1 (T ln(T/Tr) - T + Tr) + a1 (P - Pr) + a2 ln((Ψ + P) / (Ψ + Pr))
//          - c2 {[1/(T-Θ) - 1/(Tr-Θ)] (Θ-T)/Θ - T/Θ² ln[Tr (T-Θ) / (T (Tr-Θ))]}
//          + [a3 (P - Pr) + a4 ln((Ψ + P) / (Ψ + Pr))] / (T - Θ)
//
func (o *HKFT) nonSolvation(T, P float64) (d derivs) {

	// pressure functions; P in bar
	pb := P * 1e-5
	Δp := pb - PrBar
	Lp := math.Log((hkftΨ + pb) / (hkftΨ + PrBar))
	LpP := 1e-5 / (hkftΨ + pb)
	LpPP := -LpP * LpP

	// temperature functions
	θ := hkftΘ
	tθ := 1.0 / (T - θ)
	tθr := 1.0 / (Tr - θ)
	Lθ := math.Log(Tr * (T - θ) / (T * (Tr - θ)))
	cθ := (tθ-tθr)*(θ-T)/θ - T*Lθ/(θ*θ)
	cθT := ((tθr - tθ) - Lθ/θ) / θ
	cθTT := tθ * tθ / T

	// combined term
	w := o.A3*Δp + o.A4*Lp
	wP := o.A3*1e-5 + o.A4*LpP
	wPP := o.A4 * LpPP

	d.v = -o.C1*(T*math.Log(T/Tr)-T+Tr) - o.C2*cθ + o.A1*Δp + o.A2*Lp + w*tθ
	d.t = -o.C1*math.Log(T/Tr) - o.C2*cθT - w*tθ*tθ
	d.tt = -o.C1/T - o.C2*cθTT + 2.0*w*tθ*tθ*tθ
	d.p = o.A1*1e-5 + o.A2*LpP + wP*tθ
	d.tp = -wP * tθ * tθ
	d.pp = o.A2*LpPP + wPP*tθ
	return
}
