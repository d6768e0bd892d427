// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package water

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// IF97 implements liquid water using region 1 of the IAPWS Industrial Formulation 1997
// for the density and the correlation of Bradley and Pitzer (1979) for the dielectric constant
//  References:
//   [1] Wagner W et al. (2000) The IAPWS Industrial Formulation 1997 for the Thermodynamic
//       Properties of Water and Steam. J Eng Gas Turbines Power, 122(1), 150-182,
//       http://dx.doi.org/10.1115/1.483186
//  Note: region 1 is valid for 273.15 ≤ T ≤ 623.15 K and psat(T) ≤ P ≤ 100 MPa;
//        outside this range the formulation is extrapolated
type IF97 struct {
	Diel BradleyPitzer // dielectric constant model
}

// add model to factory
func init() {
	allocators["if97"] = func() Model { return new(IF97) }
}

// constants of region 1
const (
	if97R     = 461.526 // specific gas constant [J/(kg・K)]
	if97Pstar = 16.53e6 // reducing pressure [Pa]
	if97Tstar = 1386.0  // reducing temperature [K]
	if97Pi0   = 7.1     // shift of reduced pressure
	if97Tau0  = 1.222   // shift of reduced temperature
)

// coefficients of region 1: γ = Σ n (7.1 - π)^I (τ - 1.222)^J
var (
	if97I = []float64{0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 1, 1, 1, 1, 2, 2, 2, 2, 2, 3, 3, 3, 4, 4, 4, 5, 8, 8, 21, 23, 29, 30, 31, 32}
	if97J = []float64{-2, -1, 0, 1, 2, 3, 4, 5, -9, -7, -1, 0, 1, 3, -3, 0, 1, 3, 17, -4, 0, 6, -5, -2, 10, -8, -11, -6, -29, -31, -38, -39, -40, -41}
	if97N = []float64{
		0.14632971213167, -0.84548187169114, -0.37563603672040e1, 0.33855169168385e1,
		-0.95791963387872, 0.15772038513228, -0.16616417199501e-1, 0.81214629983568e-3,
		0.28319080123804e-3, -0.60706301565874e-3, -0.18990068218419e-1, -0.32529748770505e-1,
		-0.21841717175414e-1, -0.52838357969930e-4, -0.47184321073267e-3, -0.30001780793026e-3,
		0.47661393906987e-4, -0.44141845330846e-5, -0.72694996297594e-15, -0.31679644845054e-4,
		-0.28270797985312e-5, -0.85205128120103e-9, -0.22425281908000e-5, -0.65171222895601e-6,
		-0.14341729937924e-12, -0.40516996860117e-6, -0.12734301741641e-8, -0.17424871230634e-9,
		-0.68762131295531e-18, 0.14478307828521e-19, 0.26335781662795e-22, -0.11947622640071e-22,
		0.18228094581404e-23, -0.93537087292458e-25,
	}
)

// Init initialises model
func (o *IF97) Init(prms dbf.Params) (err error) {
	if len(prms) > 0 {
		return chk.Err("if97: parameter named %q is incorrect\n", prms[0].N)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o IF97) GetPrms(example bool) dbf.Params {
	return dbf.Params{}
}

// Calc computes density, dielectric constant and derivatives
func (o IF97) Calc(s *State, T, P float64) {
	checkTP(T, P)
	s.T, s.P = T, P

	// specific volume and derivatives
	//   v = R T γπ / p*
	π := P / if97Pstar
	τ := if97Tstar / T
	γπ, γππ, γπππ, γπτ, γππτ, γπττ := gammaDerivs(π, τ)
	c := if97R / if97Pstar
	v := c * T * γπ
	vT := c * (γπ - τ*γπτ)
	vTT := c * τ * τ * γπττ / T
	vP := c * T * γππ / if97Pstar
	vTP := c * (γππ - τ*γππτ) / if97Pstar
	vPP := c * T * γπππ / (if97Pstar * if97Pstar)

	// density = 1/v
	vv := v * v
	vvv := vv * v
	s.Rho = 1.0 / v
	s.RhoT = -vT / vv
	s.RhoP = -vP / vv
	s.RhoTT = -vTT/vv + 2.0*vT*vT/vvv
	s.RhoTP = -vTP/vv + 2.0*vT*vP/vvv
	s.RhoPP = -vPP/vv + 2.0*vP*vP/vvv
	if s.Rho <= 0 {
		chk.Panic("if97: density is not positive at T=%g, P=%g", T, P)
	}

	// dielectric constant
	o.Diel.Calc(s, T, P)
}

// gammaDerivs computes the derivatives of the dimensionless Gibbs energy of region 1
func gammaDerivs(π, τ float64) (γπ, γππ, γπππ, γπτ, γππτ, γπττ float64) {
	a := if97Pi0 - π
	b := τ - if97Tau0
	for k, n := range if97N {
		I, J := if97I[k], if97J[k]
		if I == 0 {
			continue
		}
		aI1 := math.Pow(a, I-1)
		bJ := math.Pow(b, J)
		bJ1 := math.Pow(b, J-1)
		γπ -= n * I * aI1 * bJ
		γπτ -= n * I * aI1 * J * bJ1
		γπττ -= n * I * aI1 * J * (J - 1) * math.Pow(b, J-2)
		if I == 1 {
			continue
		}
		aI2 := math.Pow(a, I-2)
		γππ += n * I * (I - 1) * aI2 * bJ
		γππτ += n * I * (I - 1) * aI2 * J * bJ1
		if I == 2 {
			continue
		}
		γπππ -= n * I * (I - 1) * (I - 2) * math.Pow(a, I-3) * bJ
	}
	return
}
