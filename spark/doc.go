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
Package spark provides the pieces needed to form a spark-submit style command
line addressed at a Spark cluster leader.

A MasterAddress names the cluster leader. The leader expects its own advertised
address to match what a driver uses to connect to it: if the leader advertises
a hostname, a driver can't reach it by IP, and vice versa. When the two differ
(as happens with auto-discovery), MasterAddress carries both, and its
ExtraHosts method produces the single container host-alias mapping needed to
make the advertised name resolvable from inside a container.

Parameters then assembles the full argument vector: leader connection entries,
driver/executor memory sizing (or caller-supplied overrides, exactly one of
the two), tool-specific configuration, a "--" separator, and finally the
tool's own positional arguments. spark-submit requires that exact order.

    master := spark.NewMasterAddress("node1")
    params, err := spark.Parameters(master, defaults, 8, args, nil)
*/
package spark
