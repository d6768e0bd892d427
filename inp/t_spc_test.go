// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/hkft/mdl/stdstate"
	"github.com/cpmech/hkft/mdl/water"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_spc01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("spc01. read species database")

	sdb, err := ReadSpc("data", "aqueous.spc")
	if err != nil {
		tst.Errorf("ReadSpc failed:\n%v", err)
		return
	}
	chk.Int(tst, "number of species", len(sdb.Species), 3)
	chk.String(tst, io.Sf("%v", sdb.Names()), "[CO2(aq) Cl- Na+]")

	na := sdb.Get("Na+")
	if na == nil {
		tst.Errorf("cannot find Na+\n")
		return
	}
	io.Pforan("%v\n", na)
	chk.String(tst, na.Model, "hkft")
	chk.Float64(tst, "n(Na)", 1e-17, na.Comp["Na"], 1)
	chk.Float64(tst, "z", 1e-17, na.Prms.Find("z").V, 1)
	if sdb.Get("K+") != nil {
		tst.Errorf("K+ should not be found\n")
	}

	// same values as a model initialised directly
	var direct stdstate.HKFT
	err = direct.Init(direct.GetPrms(true), stdstate.Composition{"Na": 1}, water.NewHandle(sdb.Water.Model))
	if err != nil {
		tst.Errorf("Init failed:\n%v", err)
		return
	}
	sdb.SetStateTP(423.15, 1e7)
	direct.SetStateTP(423.15, 1e7)
	chk.Float64(tst, "G ", 1e-17, na.Std.GibbsMole(), direct.GibbsMole())
	chk.Float64(tst, "Cp", 1e-17, na.Std.CpMole(), direct.CpMole())
	chk.Float64(tst, "V ", 1e-17, na.Std.MolarVolume(), direct.MolarVolume())

	// all species share the solvent
	for _, s := range sdb.Species {
		chk.Float64(tst, s.Name+" T", 1e-15, s.Std.Temperature(), 423.15)
		chk.Float64(tst, s.Name+" P", 1e-15, s.Std.Pressure(), 1e7)
	}
	chk.Float64(tst, "solvent T", 1e-15, sdb.Water.State().T, 423.15)
}

func Test_spc02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("spc02. errors")

	_, err := ReadSpc("data", "notfound.spc")
	if err == nil {
		tst.Errorf("ReadSpc should have failed with missing file\n")
		return
	}
	io.Pforan("err = %v\n", err)

	_, err = ReadSpc("data", "dup.spc")
	if err == nil {
		tst.Errorf("ReadSpc should have failed with duplicated species\n")
		return
	}
	io.Pforan("err = %v\n", err)

	dir := tst.TempDir()
	for key, str := range map[string]string{
		"syntax":   `{"solvent": {"model": "if97"}, "species": [`,
		"nosolv":   `{"species": [{"name": "H+", "model": "hkft"}]}`,
		"badsolv":  `{"solvent": {"model": "steam"}, "species": [{"name": "H+", "model": "hkft"}]}`,
		"empty":    `{"solvent": {"model": "if97"}, "species": []}`,
		"noname":   `{"solvent": {"model": "if97"}, "species": [{"model": "hkft"}]}`,
		"badmodel": `{"solvent": {"model": "if97"}, "species": [{"name": "H+", "model": "ideal"}]}`,
		"noprms":   `{"solvent": {"model": "if97"}, "species": [{"name": "H+", "model": "hkft", "comp": {"H": 1}}]}`,
	} {
		fn := key + ".spc"
		if err = os.WriteFile(filepath.Join(dir, fn), []byte(str), 0644); err != nil {
			tst.Errorf("cannot write file:\n%v", err)
			return
		}
		_, err = ReadSpc(dir, fn)
		if err == nil {
			tst.Errorf("ReadSpc should have failed with %q\n", key)
			continue
		}
		io.Pforan("%-8s: %v\n", key, err)
	}
}

func Test_spc03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("spc03. linearised solvent")

	str := `{
  "solvent" : { "model" : "lin", "prms" : [
    { "n" : "R0", "v" : 997.05 }, { "n" : "T0", "v" : 298.15 }, { "n" : "P0", "v" : 101325 },
    { "n" : "C",  "v" : 4.49e-7 }, { "n" : "A",  "v" : 0.257 } ] },
  "species" : [
    { "name" : "Na+", "model" : "hkft", "comp" : { "Na" : 1 }, "prms" : [
      { "n" : "z",  "v" : 1      }, { "n" : "a1", "v" : 0.1839 }, { "n" : "a2", "v" : -228.5 },
      { "n" : "a3", "v" : 3.256  }, { "n" : "a4", "v" : -27260 }, { "n" : "c1", "v" : 18.18  },
      { "n" : "c2", "v" : -29810 }, { "n" : "omega", "v" : 33060 }, { "n" : "dGf", "v" : -62591 },
      { "n" : "dHf", "v" : -57433 }, { "n" : "S0", "v" : 13.96 }, { "n" : "mw", "v" : 22.98922 } ] }
  ]
}`
	dir := tst.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "lin.spc"), []byte(str), 0644); err != nil {
		tst.Errorf("cannot write file:\n%v", err)
		return
	}
	sdb, err := ReadSpc(dir, "lin.spc")
	if err != nil {
		tst.Errorf("ReadSpc failed:\n%v", err)
		return
	}
	lin, ok := sdb.Water.Model.(*water.Lin)
	if !ok {
		tst.Errorf("solvent model should be lin\n")
		return
	}
	chk.Float64(tst, "C", 1e-17, lin.C, 4.49e-7)

	// after Init the state is at the reference point
	chk.Float64(tst, "ρ", 1e-12, sdb.Water.State().Rho, 997.05)
	sdb.SetStateTP(350, 5e6)
	na := sdb.Get("Na+")
	io.Pforan("%v\n", na)
	chk.Float64(tst, "ρ", 1e-10, sdb.Water.State().Rho, 997.05+4.49e-7*(5e6-101325)-0.257*(350-298.15))
	chk.Float64(tst, "T", 1e-15, na.Std.Temperature(), 350)
}
