// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/caarlos0/env/v11"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Settings holds the sampling settings of the property tables
type Settings struct {
	Tmin     float64 `env:"HKFT_TMIN"     envDefault:"273.15"`    // first temperature [K]
	Tmax     float64 `env:"HKFT_TMAX"     envDefault:"573.15"`    // last temperature [K]
	Npts     int     `env:"HKFT_NPTS"     envDefault:"7"`         // number of temperatures
	Pressure float64 `env:"HKFT_PRESSURE" envDefault:"25e6"`      // pressure [Pa]
	Plot     bool    `env:"HKFT_PLOT"     envDefault:"false"`     // save figures
	DirOut   string  `env:"HKFT_DIROUT"   envDefault:"/tmp/hkft"` // directory for figures
}

// LoadSettings loads the settings from environment variables
func LoadSettings() (cfg Settings, err error) {
	if err = env.Parse(&cfg); err != nil {
		return cfg, chk.Err("cannot parse settings:\n%v", err)
	}
	if cfg.Tmin <= 228 || cfg.Tmax < cfg.Tmin {
		return cfg, chk.Err("temperature range [%g, %g] is invalid", cfg.Tmin, cfg.Tmax)
	}
	if cfg.Npts < 2 {
		return cfg, chk.Err("number of points must be at least 2. %d is invalid", cfg.Npts)
	}
	if cfg.Pressure <= 0 {
		return cfg, chk.Err("pressure must be positive. %g is invalid", cfg.Pressure)
	}
	return
}

// String returns a table with the settings
func (o Settings) String() string {
	return io.ArgsTable("SETTINGS",
		"first temperature [K]", "HKFT_TMIN", o.Tmin,
		"last temperature [K]", "HKFT_TMAX", o.Tmax,
		"number of temperatures", "HKFT_NPTS", o.Npts,
		"pressure [Pa]", "HKFT_PRESSURE", o.Pressure,
		"save figures", "HKFT_PLOT", o.Plot,
		"directory for figures", "HKFT_DIROUT", o.DirOut,
	)
}
