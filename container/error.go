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

// This file contains error handling code.

import (
	"fmt"
)

// ExitError is returned by a Runner when the container ran but exited
// non-zero.
type ExitError struct {
	Image string // the image that was run
	Code  int64  // the container's exit code
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("container %s exited with code %d", e.Image, e.Code)
}
