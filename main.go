// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
	"github.com/cpmech/hkft/inp"
	"github.com/cpmech/hkft/mdl/stdstate"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v", err)
			io.Pf("See location of error below:\n")
			chk.Verbose = true
			for i := 5; i > 3; i-- {
				chk.CallerInfo(i)
			}
		}
	}()

	// read input parameters
	fnamepath, fnkey := io.ArgToFilename(0, "", ".spc", true)
	spcname := io.ArgToString(1, "")
	cfg, err := LoadSettings()
	if err != nil {
		chk.Panic("%v", err)
	}

	// message
	io.PfWhite("\nHKFT -- standard-state properties of aqueous species\n")
	io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
		"species file", "fnamepath", fnamepath,
		"species (all if empty)", "spcname", spcname,
	))
	io.Pf("%v\n", cfg)

	// species database
	sdb, err := inp.ReadSpc(filepath.Dir(fnamepath), filepath.Base(fnamepath))
	if err != nil {
		chk.Panic("cannot read species database:\n%v", err)
	}
	names := sdb.Names()
	if spcname != "" {
		if sdb.Get(spcname) == nil {
			chk.Panic("cannot find species %q in %q", spcname, fnamepath)
		}
		names = []string{spcname}
	}

	// tables
	T := utl.LinSpace(cfg.Tmin, cfg.Tmax, cfg.Npts)
	for _, name := range names {
		s := sdb.Get(name)
		io.Pf("\n%s\n", table(s, T, cfg.Pressure))
		if cfg.Plot {
			stdstate.Plot(s.Std, cfg.DirOut, io.Sf("%s_%s", fnkey, safeName(name)), cfg.Pressure, cfg.Tmin, cfg.Tmax, 101)
		}
	}
}

// table returns the properties of one species along an isobar
//  Units: kJ/mol, J/(mol・K) and cm³/mol
func table(s *inp.Species, T []float64, P float64) (l string) {
	l = io.Sf("%s (%s) at P = %g MPa\n", s.Name, s.Model, P*1e-6)
	l += io.Sf("%8s%14s%14s%12s%12s%12s%12s\n", "T [K]", "G [kJ/mol]", "H [kJ/mol]", "S [J/molK]", "Cp [J/molK]", "Cv [J/molK]", "V [cm³/mol]")
	for _, t := range T {
		s.Std.SetStateTP(t, P)
		l += io.Sf("%8.2f%14.4f%14.4f%12.4f%12.4f%12.4f%12.4f\n", t,
			s.Std.GibbsMole()*1e-6, s.Std.EnthalpyMole()*1e-6, s.Std.EntropyMole()*1e-3,
			s.Std.CpMole()*1e-3, s.Std.CvMole()*1e-3, s.Std.MolarVolume()*1e3)
	}
	return
}

// safeName replaces characters that are not suitable for filenames
func safeName(name string) string {
	b := []byte(name)
	for i, c := range b {
		switch c {
		case '+':
			b[i] = 'p'
		case '-':
			b[i] = 'm'
		case '(', ')', ' ', '/':
			b[i] = '_'
		}
	}
	return string(b)
}
