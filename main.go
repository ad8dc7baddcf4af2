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

/*
Package main is a stub for ssub's command line interface, with the actual
implementation in the cmd package.

ssub runs the containerised tools of the Big Data Genomics tool chain
(Conductor, ADAM, DECA and Mango) against a Spark cluster. It assembles the
spark-submit style argument vector each tool needs (leader connection,
driver/executor memory sizing, tool defaults, then the tool's own arguments
after a "--"), and runs the tool's prebuilt container via docker, so that a
workflow manager (or you at a shell) can treat each tool run as one blocking
command.

Package Overview

The spark package is the core: the MasterAddress value type distinguishes the
leader address the engine advertises from the address actually reachable from
inside a container, and Parameters assembles the argument vector in the order
the engine requires.

The container package wraps the docker daemon as a synchronous Runner (pull,
create, start, stream output to the job log, wait, remove), and provides the
equivalent Executor for natively installed tools.

The tools package composes those two for each tool of the chain, adding the
per-tool engine defaults, cloud credential injection, and the container
options (networking, ports, mounts, entrypoint) each tool needs.

The internal package contains general utility functions, and config.go holds
the code for how the command line interface deals with config options.
*/
package main

import (
	"github.com/VertebrateResequencing/ssub/cmd"
)

func main() {
	cmd.Execute()
}
