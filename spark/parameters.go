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

package spark

// This file contains the implementation of the parameter assembler.

import (
	"strconv"
)

// ArgSeparator is the marker argument that spark-submit requires between its
// own configuration flags and the submitted tool's positional arguments.
const ArgSeparator = "--"

// Parameters assembles a spark-submit style argument vector, in the order the
// engine requires: leader connection entries first (omitted when master is
// the zero MasterAddress, ie. when running in local mode), then driver and
// executor memory sizing, then the tool-specific defaults, then ArgSeparator,
// then the tool's own arguments.
//
// memoryGB and overrides are mutually exclusive and one is required: either
// we size driver and executor memory to memoryGB gigabytes each, or the
// caller supplies the complete replacement engine configuration in overrides,
// which is emitted verbatim. Supplying both or neither returns an Error
// before anything else is considered. (A non-nil empty overrides slice counts
// as supplied.)
func Parameters(master MasterAddress, defaults []string, memoryGB int, args []string, overrides []string) ([]string, error) {
	if (memoryGB > 0) == (overrides != nil) {
		return nil, Error{Op: "parameters", Err: ErrBadMemory}
	}

	var params []string
	if !master.IsZero() {
		params = append(params,
			"--master", master.URL(),
			"--conf", "spark.hadoop.fs.default.name="+master.HDFSURL())
	}

	if memoryGB > 0 {
		mem := strconv.Itoa(memoryGB) + "g"
		params = append(params,
			"--conf", "spark.driver.memory="+mem,
			"--conf", "spark.executor.memory="+mem)
	} else {
		params = append(params, overrides...)
	}

	params = append(params, defaults...)
	params = append(params, ArgSeparator)
	params = append(params, args...)

	return params, nil
}
