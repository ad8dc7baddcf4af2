// Copyright © 2019 Genome Research Limited
// Author: Sendu Bala <sb10@sanger.ac.uk>.
//
//  This file is part of ssub.
//
//  ssub is free software: you can redistribute it and/or modify
//  it under the terms of the GNU Lesser General Public License as published by
//  the Free Software Foundation, either version 3 of the License, or
//  (at your option) any later version.
//
//  ssub is distributed in the hope that it will be useful,
//  but WITHOUT ANY WARRANTY; without even the implied warranty of
//  MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
//  GNU Lesser General Public License for more details.
//
//  You should have received a copy of the GNU Lesser General Public License
//  along with ssub. If not, see <http://www.gnu.org/licenses/>.

package internal

// this file implements the config system used by the cmd package

import (
	"os"
	"path/filepath"

	"github.com/creasty/defaults"
	"github.com/inconshreveable/log15"
	"github.com/jinzhu/configor"
)

const configCommonBasename = ".ssub_config.yml"

// Config holds the configuration options shared by the ssub subcommands.
// Commands take the leader address, memory sizing and so on from here when
// the corresponding command line options aren't supplied. Cloud credentials
// are only ever taken from here (or the standard AWS environment variables),
// never from the command line, so they don't end up in shell histories or
// process listings.
type Config struct {
	MasterAddr     string `default:"" env:"SSUB_MASTER_ADDR"`
	CloudCIDR      string `default:"" env:"SSUB_CLOUD_CIDR"`
	MemoryGB       int    `default:"8" env:"SSUB_MEMORY_GB"`
	WorkDir        string `default:"" env:"SSUB_WORK_DIR"`
	BrowserPort    int    `default:"8080" env:"SSUB_BROWSER_PORT"`
	NotebookPort   int    `default:"8888" env:"SSUB_NOTEBOOK_PORT"`
	ConductorImage string `default:"" env:"SSUB_CONDUCTOR_IMAGE"`
	ADAMImage      string `default:"" env:"SSUB_ADAM_IMAGE"`
	DECAImage      string `default:"" env:"SSUB_DECA_IMAGE"`
	MangoImage     string `default:"" env:"SSUB_MANGO_IMAGE"`
	AccessKey      string `default:"" env:"AWS_ACCESS_KEY_ID"`
	SecretKey      string `default:"" env:"AWS_SECRET_ACCESS_KEY"`
}

// ConfigLoad loads and returns the config, in increasing order of precedence:
// hard-coded defaults, then a .ssub_config.yml in the user's home directory,
// then one in the current directory, then environment variables. Problems
// with config files are logged as warnings and the remaining sources still
// apply; we never fail here.
func ConfigLoad(logger log15.Logger) Config {
	config := Config{}
	if err := defaults.Set(&config); err != nil {
		logger.Warn("failed to set config defaults", "err", err)
	}

	var paths []string
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, configCommonBasename))
	}
	if wd, err := os.Getwd(); err == nil {
		paths = append(paths, filepath.Join(wd, configCommonBasename))
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := configor.New(&configor.Config{ENVPrefix: "SSUB"}).Load(&config, path); err != nil {
			logger.Warn("failed to load config file", "path", path, "err", err)
		}
	}

	if err := configor.New(&configor.Config{ENVPrefix: "SSUB"}).Load(&config); err != nil {
		logger.Warn("failed to load config from environment", "err", err)
	}

	return config
}
