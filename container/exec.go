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

package container

// this file has the local process implementation of Executor

import (
	"context"
	"os"
	"os/exec"
)

// LocalExec is an Executor that runs executables directly on this machine,
// for tools that are natively installed instead of containerised.
type LocalExec struct {
	// Log receives the process's combined output a line at a time, if set;
	// otherwise output goes to our own stdout and stderr.
	Log Logger
}

// Execute runs the executable at path with the given arguments, blocking
// until it exits, and returning an error (*exec.ExitError for a non-zero
// exit) if it fails.
func (l LocalExec) Execute(ctx context.Context, path string, args []string) error {
	cmd := exec.CommandContext(ctx, path, args...) // #nosec the caller chooses what to run, that's the whole point
	if l.Log == nil {
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
		return cmd.Run()
	}

	lw := &lineWriter{log: l.Log}
	cmd.Stdout = lw
	cmd.Stderr = lw
	err := cmd.Run()
	lw.flush()
	return err
}
