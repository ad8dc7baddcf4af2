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

package tools

// This file contains the DECA invocation.

import (
	"context"

	"github.com/VertebrateResequencing/ssub/container"
	"github.com/VertebrateResequencing/ssub/spark"
)

// DECA invokes the DECA container to call copy number variants from read
// coverage. Find DECA at https://github.com/bigdatagenomics/deca.
//
// Credentials in opts become both container environment variables and engine
// configuration entries; an access key without a secret key fails before
// anything runs. opts.WorkDir, if set, is mounted at /data in the container.
func DECA(ctx context.Context, log container.Logger, runner container.Runner, master spark.MasterAddress, args []string, opts *Opts) error {
	if opts == nil {
		opts = &Opts{}
	}
	if err := opts.Creds.validate("deca"); err != nil {
		return err
	}

	defaults := append(s3ToolDefaults(opts.RunLocal), opts.Creds.sparkConf()...)
	if opts.RunLocal {
		master = spark.MasterAddress{}
	}

	params, err := spark.Parameters(master, defaults, opts.MemoryGB, args, opts.Overrides)
	if err != nil {
		return err
	}

	ropts := &container.RunOpts{
		HostNetwork:      true,
		DisableLogDriver: true,
		Env:              opts.Creds.env(),
		ExtraHosts:       master.ExtraHosts(nil),
		Log:              log,
	}
	if opts.WorkDir != "" {
		ropts.Binds = []string{opts.WorkDir + ":" + dataMount}
	}

	return runner.Run(ctx, opts.image(decaImage), params, ropts)
}
