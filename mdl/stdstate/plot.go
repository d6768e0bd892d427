// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stdstate

import (
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
	"github.com/cpmech/hkft/mdl/water"
)

// Plot plots G, S, Cp and V along an isobar
//  Note: the state of mdl is restored at the end
func Plot(mdl Model, dirout, fnkey string, P, T0, Tf float64, npts int) {
	T0ld, P0ld := mdl.Temperature(), mdl.Pressure()
	defer mdl.SetStateTP(T0ld, P0ld)
	T := utl.LinSpace(T0, Tf, npts)
	G := make([]float64, npts)
	S := make([]float64, npts)
	Cp := make([]float64, npts)
	V := make([]float64, npts)
	for i := 0; i < npts; i++ {
		mdl.SetStateTP(T[i], P)
		G[i] = mdl.GibbsMole() * 1e-6
		S[i] = mdl.EntropyMole() * 1e-3
		Cp[i] = mdl.CpMole() * 1e-3
		V[i] = mdl.MolarVolume() * 1e3
	}
	plt.Reset(false, nil)
	plt.Subplot(2, 2, 1)
	plt.Plot(T, G, &plt.A{C: "r", Ls: "-"})
	plt.Gll("$T\\,[K]$", "$G\\,[kJ/mol]$", nil)
	plt.Subplot(2, 2, 2)
	plt.Plot(T, S, &plt.A{C: "b", Ls: "-"})
	plt.Gll("$T\\,[K]$", "$S\\,[J/(mol\\,K)]$", nil)
	plt.Subplot(2, 2, 3)
	plt.Plot(T, Cp, &plt.A{C: "g", Ls: "-"})
	plt.Gll("$T\\,[K]$", "$C_p\\,[J/(mol\\,K)]$", nil)
	plt.Subplot(2, 2, 4)
	plt.Plot(T, V, &plt.A{C: "k", Ls: "-"})
	plt.Gll("$T\\,[K]$", "$V\\,[cm^3/mol]$", nil)
	plt.Save(dirout, fnkey)
}

// PlotGstar plots g, f and g* along an isobar
func PlotGstar(solvent *water.Handle, dirout, fnkey string, P, T0, Tf float64, npts int) {
	T := utl.LinSpace(T0, Tf, npts)
	g := make([]float64, npts)
	f := make([]float64, npts)
	gs := make([]float64, npts)
	for i := 0; i < npts; i++ {
		w := solvent.Calc(T[i], P)
		g[i] = Gfcn(&w, Val)
		f[i] = Ffcn(T[i], P, Val)
		gs[i] = Gstar(&w, Val)
	}
	plt.Reset(false, nil)
	plt.Plot(T, g, &plt.A{C: "r", Ls: "-", L: "g"})
	plt.Plot(T, f, &plt.A{C: "b", Ls: "--", L: "f"})
	plt.Plot(T, gs, &plt.A{C: "k", Ls: "-", L: "g*"})
	plt.Gll("$T\\,[K]$", "$[\\AA]$", nil)
	plt.Save(dirout, fnkey)
}
