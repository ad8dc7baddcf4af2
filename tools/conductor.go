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

// This file contains the Conductor invocation.

import (
	"context"

	"github.com/VertebrateResequencing/ssub/container"
	"github.com/VertebrateResequencing/ssub/spark"
)

// CopyFiles invokes the Conductor container to copy a file between S3 and
// HDFS or vice versa; src and dst are URLs. Find Conductor at
// https://github.com/BD2KGenomics/conductor.
func CopyFiles(ctx context.Context, log container.Logger, runner container.Runner, master spark.MasterAddress, src, dst string, opts *Opts) error {
	if opts == nil {
		opts = &Opts{}
	}

	// no conductor specific engine configuration
	params, err := spark.Parameters(master, nil, opts.MemoryGB, []string{"-C", src, dst}, opts.Overrides)
	if err != nil {
		return err
	}

	return runner.Run(ctx, opts.image(conductorImage), params, &container.RunOpts{
		HostNetwork:      true,
		DisableLogDriver: true,
		ExtraHosts:       master.ExtraHosts(nil),
		Log:              log,
	})
}
