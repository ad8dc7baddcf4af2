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
Package container provides the primitives ssub uses to run external processes:
a container Runner backed by docker, and a local Executor for tools that are
installed natively.

A Run() is synchronous: it pulls the image if needed, creates and starts the
container, copies the container's output to the job log, and waits for the
container to exit, returning an *ExitError if it exited non-zero. The
container is always removed afterwards.

Tools take the Runner interface rather than the Docker struct so that tests
can substitute a recording implementation.
*/
package container
