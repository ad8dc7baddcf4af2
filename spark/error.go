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

// This file contains error handling code.

import (
	"fmt"
)

// spark has some typical errors
const (
	ErrBadMemory = "either a memory setting or override parameters must be supplied, but not both"
	ErrNoAddress = "the machine's primary IP address could not be determined"
)

// Error records an error and the operation that caused it.
type Error struct {
	Op  string // name of the method
	Err string // one of our Err constants
}

func (e Error) Error() string {
	return fmt.Sprintf("spark %s: %s", e.Op, e.Err)
}
