// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stdstate

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/hkft/mdl/water"
)

// coefficients of the solvent function g = ag (1 - ρ)^bg, with ρ in g/cm³ [3]
const (
	ag0 = -2.037662
	ag1 = 5.747000e-3
	ag2 = -6.557892e-6
	bg0 = 6.107361
	bg1 = -1.074377e-2
	bg2 = 1.268348e-5

	gRhoMin = 0.35 // g is extrapolated below this density [g/cm³]
	gRhoMax = 1.0  // g vanishes at or above this density [g/cm³]
)

// coefficients of the high-temperature correction f [3]
const (
	af1 = 3.666666e1
	af2 = -1.504956e-10
	af3 = 5.107997e-14

	fTmax  = 500.0  // f vanishes above this temperature [K]
	fTCmin = 155.0  // f vanishes below this temperature [°C]
	fPmax  = 1000.0 // f vanishes above this pressure [bar]
)

// Ag computes the ag(T) coefficient of g [Å]
func Ag(T float64, mode int) float64 {
	return agDerivs(T).get(mode)
}

// Bg computes the bg(T) exponent of g [-]
func Bg(T float64, mode int) float64 {
	return bgDerivs(T).get(mode)
}

// Ffcn computes the high-temperature low-pressure correction f(T,P) [Å]
//  Note: f and all its derivatives are zero above 500 K, below 155°C or above 1000 bar
func Ffcn(T, P float64, mode int) float64 {
	if T <= 0 || P <= 0 {
		chk.Panic("temperature and pressure must be positive. T=%g, P=%g is invalid", T, P)
	}
	return fDerivs(T, P).get(mode)
}

// Gfcn computes the solvent function g(T,P) [Å] given the solvent properties w at (T,P)
func Gfcn(w *water.State, mode int) float64 {
	return gDerivs(w).get(mode)
}

// Gstar computes the effective solvent function g* = g - f [Å] given the solvent properties
// w at (T,P)
func Gstar(w *water.State, mode int) float64 {
	return gstarDerivs(w).get(mode)
}

func agDerivs(T float64) derivs {
	return derivs{v: ag0 + ag1*T + ag2*T*T, t: ag1 + 2.0*ag2*T, tt: 2.0 * ag2}
}

func bgDerivs(T float64) derivs {
	return derivs{v: bg0 + bg1*T + bg2*T*T, t: bg1 + 2.0*bg2*T, tt: 2.0 * bg2}
}

// gDerivs computes g and its derivatives. Below gRhoMin, g is replaced by its second order
// expansion in ρ about gRhoMin at fixed T.
func gDerivs(w *water.State) (g derivs) {

	// density in g/cm³
	ρ := w.Rho * 1e-3
	if ρ <= 0 {
		chk.Panic("density of water must be positive. ρ=%g is invalid", w.Rho)
	}
	if ρ >= gRhoMax {
		return
	}
	ρ0, δ := ρ, 0.0
	if ρ < gRhoMin {
		ρ0, δ = gRhoMin, ρ-gRhoMin
	}

	// derivatives w.r.t ρ at ρ0 as functions of T
	//   G = a u,  u = (1-ρ)^b
	a := agDerivs(w.T)
	b := bgDerivs(w.T)
	q := 1.0 / (1.0 - ρ0)
	e := math.Exp(b.v * math.Log(1.0-ρ0))
	u := b.scale(math.Log(1.0 - ρ0)).compose(e, e, e)
	uρ := b.mul(u).scale(-q)
	uρρ := b.mul(b).sub(b).mul(u).scale(q * q)

	// expansion: h = G + Gρ δ + ½ Gρρ δ²
	Gρ := a.mul(uρ)
	Gρρ := a.mul(uρρ)
	h := a.mul(u).add(Gρ.scale(δ)).add(Gρρ.scale(0.5 * δ * δ))
	hρ := Gρ.add(Gρρ.scale(δ))
	hρρ := Gρρ

	// total derivatives with ρ = ρ(T,P)
	ρT, ρTT := w.RhoT*1e-3, w.RhoTT*1e-3
	ρP, ρTP, ρPP := w.RhoP*1e-3, w.RhoTP*1e-3, w.RhoPP*1e-3
	g.v = h.v
	g.t = h.t + hρ.v*ρT
	g.p = hρ.v * ρP
	g.tt = h.tt + 2.0*hρ.t*ρT + hρρ.v*ρT*ρT + hρ.v*ρTT
	g.tp = hρ.t*ρP + hρρ.v*ρT*ρP + hρ.v*ρTP
	g.pp = hρρ.v*ρP*ρP + hρ.v*ρPP
	return
}

// fDerivs computes f and its derivatives
func fDerivs(T, P float64) (f derivs) {
	TC := T - 273.15
	pb := P * 1e-5
	if T > fTmax || TC < fTCmin || pb > fPmax {
		return
	}

	// temperature factor
	t1 := (TC - fTCmin) / 300.0
	ft := math.Pow(t1, 4.8) + af1*math.Pow(t1, 16)
	ftT := (4.8*math.Pow(t1, 3.8) + 16.0*af1*math.Pow(t1, 15)) / 300.0
	ftTT := (4.8*3.8*math.Pow(t1, 2.8) + 16.0*15.0*af1*math.Pow(t1, 14)) / 90000.0

	// pressure factor
	d := 1000.0 - pb
	fp := af2*d*d*d + af3*d*d*d*d
	fpP := -1e-5 * (3.0*af2*d*d + 4.0*af3*d*d*d)
	fpPP := 1e-10 * (6.0*af2*d + 12.0*af3*d*d)

	f.v = ft * fp
	f.t = ftT * fp
	f.p = ft * fpP
	f.tt = ftTT * fp
	f.tp = ftT * fpP
	f.pp = ft * fpPP
	return
}

func gstarDerivs(w *water.State) derivs {
	return gDerivs(w).sub(fDerivs(w.T, w.P))
}
