// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stdstate

import "github.com/cpmech/gosl/chk"

// derivative selectors for the correlation functions
const (
	Val    = 0 // value
	DdT    = 1 // ∂/∂T
	D2dT   = 2 // ∂²/∂T²
	DdP    = 3 // ∂/∂P
	D2dTdP = 4 // ∂²/(∂T ∂P)
	D2dP   = 5 // ∂²/∂P²
)

// derivs holds a function of (T,P) and its derivatives up to second order
//  Note: pressure derivatives are per Pa
type derivs struct {
	v          float64 // value
	t, p       float64 // ∂/∂T and ∂/∂P
	tt, tp, pp float64 // ∂²/∂T², ∂²/(∂T ∂P) and ∂²/∂P²
}

// constant returns the derivatives of a constant function
func constant(v float64) derivs {
	return derivs{v: v}
}

// get returns the value selected by mode
func (a derivs) get(mode int) float64 {
	switch mode {
	case Val:
		return a.v
	case DdT:
		return a.t
	case D2dT:
		return a.tt
	case DdP:
		return a.p
	case D2dTdP:
		return a.tp
	case D2dP:
		return a.pp
	}
	chk.Panic("derivative selector %d is invalid", mode)
	return 0
}

// add returns a + b
func (a derivs) add(b derivs) derivs {
	return derivs{a.v + b.v, a.t + b.t, a.p + b.p, a.tt + b.tt, a.tp + b.tp, a.pp + b.pp}
}

// sub returns a - b
func (a derivs) sub(b derivs) derivs {
	return a.add(b.scale(-1))
}

// scale returns s a
func (a derivs) scale(s float64) derivs {
	return derivs{s * a.v, s * a.t, s * a.p, s * a.tt, s * a.tp, s * a.pp}
}

// shift returns a + s
func (a derivs) shift(s float64) derivs {
	a.v += s
	return a
}

// mul returns a b
func (a derivs) mul(b derivs) derivs {
	return derivs{
		v:  a.v * b.v,
		t:  a.t*b.v + a.v*b.t,
		p:  a.p*b.v + a.v*b.p,
		tt: a.tt*b.v + 2.0*a.t*b.t + a.v*b.tt,
		tp: a.tp*b.v + a.t*b.p + a.p*b.t + a.v*b.tp,
		pp: a.pp*b.v + 2.0*a.p*b.p + a.v*b.pp,
	}
}

// compose returns φ(a) given φ, φ' and φ'' evaluated at a.v
func (a derivs) compose(φ, dφ, d2φ float64) derivs {
	return derivs{
		v:  φ,
		t:  dφ * a.t,
		p:  dφ * a.p,
		tt: dφ*a.tt + d2φ*a.t*a.t,
		tp: dφ*a.tp + d2φ*a.t*a.p,
		pp: dφ*a.pp + d2φ*a.p*a.p,
	}
}

// inv returns 1/a
func (a derivs) inv() derivs {
	r := 1.0 / a.v
	return a.compose(r, -r*r, 2.0*r*r*r)
}
