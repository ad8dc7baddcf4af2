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

// This file contains the Mango browser and notebook invocations.

import (
	"context"

	"github.com/VertebrateResequencing/ssub/container"
	"github.com/VertebrateResequencing/ssub/spark"
)

// MangoBrowser invokes the Mango genome browser container. Find Mango at
// https://github.com/bigdatagenomics/mango.
//
// The browser is an interactive convenience, so this is a best-effort call:
// precondition problems still return an error before anything runs, but a
// failure of the container itself is appended to the job log and returned
// inside the BestEffort result rather than as an error, and the calling job
// carries on.
func MangoBrowser(ctx context.Context, log container.Logger, runner container.Runner, master spark.MasterAddress, args []string, opts *Opts) (BestEffort, error) {
	if opts == nil {
		opts = &Opts{}
	}
	if err := opts.Creds.validate("mango browser"); err != nil {
		return BestEffort{}, err
	}

	defaults := append(s3ToolDefaults(opts.RunLocal), opts.Creds.sparkConf()...)
	if opts.RunLocal {
		master = spark.MasterAddress{}
	}

	params, err := spark.Parameters(master, defaults, opts.MemoryGB, args, opts.Overrides)
	if err != nil {
		return BestEffort{}, err
	}

	ropts := mangoRunOpts(log, master, opts, BrowserPort, nil)
	if err := runner.Run(ctx, opts.image(mangoImage), params, ropts); err != nil {
		if log != nil {
			log.Log("mango browser exited: " + err.Error())
		}
		return BestEffort{Err: err}, nil
	}

	return BestEffort{}, nil
}

// MangoNotebook invokes the Mango container with its entrypoint switched to
// the jupyter notebook server. Unlike MangoBrowser this is fail-fast: a
// container failure is returned as an error.
func MangoNotebook(ctx context.Context, log container.Logger, runner container.Runner, master spark.MasterAddress, args []string, opts *Opts) error {
	if opts == nil {
		opts = &Opts{}
	}
	if err := opts.Creds.validate("mango notebook"); err != nil {
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

	ropts := mangoRunOpts(log, master, opts, NotebookPort, []string{mangoNotebookEntrypoint})

	return runner.Run(ctx, opts.image(mangoImage), params, ropts)
}
