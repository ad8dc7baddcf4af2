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

// This file contains the ADAM invocation.

import (
	"context"
	"path/filepath"

	"github.com/VertebrateResequencing/ssub/container"
	"github.com/VertebrateResequencing/ssub/spark"
)

// ADAM invokes the ADAM container with the given tool arguments. Find ADAM at
// https://github.com/bigdatagenomics/adam.
//
// With opts.RunLocal the engine runs with all local cores and master is
// ignored. With opts.NativePath a native ADAM installation is submitted via
// its bin/adam-submit instead of a container; that path still gets the leader
// connection entries, but the native launcher applies its own memory sizing,
// so opts.MemoryGB and opts.Overrides are not used there.
func ADAM(ctx context.Context, log container.Logger, runner container.Runner, master spark.MasterAddress, args []string, opts *Opts) error {
	if opts == nil {
		opts = &Opts{}
	}

	defaults := adamDefaults(opts.RunLocal)
	if opts.RunLocal {
		master = spark.MasterAddress{}
	}

	if opts.NativePath != "" {
		params := defaults
		if !master.IsZero() {
			params = append([]string{
				"--master", master.URL(),
				"--conf", "spark.hadoop.fs.default.name=" + master.HDFSURL(),
			}, defaults...)
		}

		executor := opts.Exec
		if executor == nil {
			executor = container.LocalExec{Log: log}
		}
		return executor.Execute(ctx, filepath.Join(opts.NativePath, "bin", "adam-submit"),
			append(params, args...))
	}

	params, err := spark.Parameters(master, defaults, opts.MemoryGB, args, opts.Overrides)
	if err != nil {
		return err
	}

	return runner.Run(ctx, opts.image(adamImage), params, &container.RunOpts{
		HostNetwork:      true,
		DisableLogDriver: true,
		ExtraHosts:       master.ExtraHosts(nil),
		Log:              log,
	})
}
