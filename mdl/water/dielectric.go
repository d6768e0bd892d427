// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package water

import "math"

// BradleyPitzer implements the correlation for the relative permittivity of water
//
//   ε = ε1000(T) + C(T) ln((B(T) + P) / (B(T) + 1000))     with P in bar
//
//   ε1000 = U1 exp(U2 T + U3 T²)
//   C     = U4 + U5 / (U6 + T)
//   B     = U7 + U8 / T + U9 T
//
//  References:
//   [1] Bradley DJ and Pitzer KS (1979) Thermodynamics of electrolytes. 12. Dielectric
//       properties of water and Debye-Hueckel parameters to 350°C and 1 kbar.
//       J Phys Chem, 83(12), 1599-1603, http://dx.doi.org/10.1021/j100475a009
type BradleyPitzer struct{}

// coefficients
const (
	bpU1 = 3.4279e2
	bpU2 = -5.0866e-3
	bpU3 = 9.4690e-7
	bpU4 = -2.0525
	bpU5 = 3.1159e3
	bpU6 = -1.8289e2
	bpU7 = -8.0325e3
	bpU8 = 4.2142e6
	bpU9 = 2.1417
)

// Calc computes ε and derivatives; results are stored in s
//  Note: pressure derivatives are per Pa
func (o BradleyPitzer) Calc(s *State, T, P float64) {

	// auxiliary
	pb := P * 1e-5
	TT := T * T
	tmp := bpU6 + T

	// ε1000 and derivatives
	e := bpU1 * math.Exp(bpU2*T+bpU3*TT)
	q := bpU2 + 2.0*bpU3*T
	eT := e * q
	eTT := eT*q + 2.0*bpU3*e

	// C and derivatives
	C := bpU4 + bpU5/tmp
	CT := -bpU5 / (tmp * tmp)
	CTT := 2.0 * bpU5 / (tmp * tmp * tmp)

	// B and derivatives
	B := bpU7 + bpU8/T + bpU9*T
	BT := -bpU8/TT + bpU9
	BTT := 2.0 * bpU8 / (TT * T)

	// logarithmic term and derivatives
	d1 := B + pb
	d2 := B + 1000.0
	L := math.Log(d1 / d2)
	LT := BT/d1 - BT/d2
	LTT := BTT/d1 - BT*BT/(d1*d1) - BTT/d2 + BT*BT/(d2*d2)

	// results
	s.Eps = e + C*L
	s.EpsT = eT + CT*L + C*LT
	s.EpsTT = eTT + CTT*L + 2.0*CT*LT + C*LTT
	s.EpsP = 1e-5 * C / d1
	s.EpsTP = 1e-5 * (CT/d1 - C*BT/(d1*d1))
	s.EpsPP = -1e-10 * C / (d1 * d1)
}
