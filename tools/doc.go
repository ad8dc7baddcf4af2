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
Package tools invokes the containerised genomics tools of the UCSC CGL / Big
Data Genomics tool chain: Conductor for copying files between S3 and HDFS,
ADAM for distributed genomic data processing, DECA for coverage and CNV
calling, and the Mango browser and notebook for visualisation.

Each function assembles the tool's engine configuration with spark.Parameters
and runs the tool's image to completion with a container.Runner, passing
container output to the given job log. Calls are synchronous and fail-fast:
precondition problems (memory vs overrides, incomplete credentials) are
returned before anything external starts, and a non-zero container exit
surfaces as a *container.ExitError. The one exception is MangoBrowser, whose
container failures are deliberately swallowed; see BestEffort.
*/
package tools
