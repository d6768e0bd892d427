// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"strings"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
	"github.com/cpmech/hkft/inp"
)

func Test_settings01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("settings01. defaults and environment")

	cfg, err := LoadSettings()
	if err != nil {
		tst.Errorf("LoadSettings failed:\n%v", err)
		return
	}
	chk.Float64(tst, "Tmin", 1e-15, cfg.Tmin, 273.15)
	chk.Float64(tst, "P   ", 1e-15, cfg.Pressure, 25e6)
	chk.Int(tst, "Npts", cfg.Npts, 7)

	tst.Setenv("HKFT_TMIN", "300")
	tst.Setenv("HKFT_NPTS", "3")
	tst.Setenv("HKFT_PRESSURE", "1e7")
	cfg, err = LoadSettings()
	if err != nil {
		tst.Errorf("LoadSettings failed:\n%v", err)
		return
	}
	io.Pforan("%v\n", cfg)
	chk.Float64(tst, "Tmin", 1e-15, cfg.Tmin, 300)
	chk.Float64(tst, "P   ", 1e-15, cfg.Pressure, 1e7)
	chk.Int(tst, "Npts", cfg.Npts, 3)

	for key, val := range map[string]string{"HKFT_NPTS": "1", "HKFT_TMIN": "200", "HKFT_PRESSURE": "-1", "HKFT_PLOT": "maybe"} {
		tst.Setenv(key, val)
		_, err = LoadSettings()
		if err == nil {
			tst.Errorf("LoadSettings should have failed with %s=%s\n", key, val)
		}
		tst.Setenv(key, map[string]string{"HKFT_NPTS": "3", "HKFT_TMIN": "300", "HKFT_PRESSURE": "1e7", "HKFT_PLOT": "false"}[key])
	}
}

func Test_table01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("table01. property table")

	sdb, err := inp.ReadSpc("inp/data", "aqueous.spc")
	if err != nil {
		tst.Errorf("ReadSpc failed:\n%v", err)
		return
	}
	l := table(sdb.Get("Na+"), utl.LinSpace(298.15, 373.15, 4), 1e7)
	io.Pf("%s", l)
	lines := strings.Split(strings.TrimSpace(l), "\n")
	chk.Int(tst, "number of lines", len(lines), 6)
	chk.String(tst, strings.Fields(lines[2])[0], "298.15")
	chk.String(tst, safeName("CO2(aq)"), "CO2_aq_")
	chk.String(tst, safeName("Na+"), "Nap")
}
