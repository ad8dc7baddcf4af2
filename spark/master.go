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

// This file contains the implementation of the MasterAddress value type.

import (
	"github.com/VertebrateResequencing/ssub/internal"
)

const (
	// MasterPort is the well-known port the Spark leader listens for drivers
	// on.
	MasterPort = "7077"

	// HDFSPort is the well-known port of the HDFS namenode that runs
	// alongside the leader.
	HDFSPort = "8020"

	// MasterAlias is the hostname we tell containers to resolve to a
	// leader's actual address when its advertised address differs.
	MasterAlias = "spark-master"

	// AutoAddress is the special address that requests auto-discovery of the
	// leader via the machine's primary IP.
	AutoAddress = "auto"
)

// MasterAddress is the network identity of a Spark cluster leader. Nominal is
// the address the leader advertises and that drivers must therefore connect
// with; Actual is the address that is really reachable from here, which is
// normally the same. The zero value means "no leader": run locally.
type MasterAddress struct {
	Nominal string
	Actual  string
}

// NewMasterAddress returns a MasterAddress whose Actual address is the same
// as its Nominal one, which is the common case.
func NewMasterAddress(addr string) MasterAddress {
	return MasterAddress{Nominal: addr, Actual: addr}
}

// ResolveMasterAddress is like NewMasterAddress, but understands the special
// address AutoAddress ("auto"): the leader is taken to be on this machine,
// advertised under MasterAlias, with the machine's primary IP as the Actual
// address. The cidr argument can be blank, or the CIDR of the network the
// leader is on, to disambiguate between multiple network interfaces.
func ResolveMasterAddress(addr, cidr string) (MasterAddress, error) {
	if addr != AutoAddress {
		return NewMasterAddress(addr), nil
	}
	ip := internal.CurrentIP(cidr)
	if ip == "" {
		return MasterAddress{}, Error{Op: "resolve", Err: ErrNoAddress}
	}
	return MasterAddress{Nominal: MasterAlias, Actual: ip}, nil
}

// WithActual returns a copy of this MasterAddress with the Actual address
// replaced, for when you know the advertised address isn't reachable.
func (m MasterAddress) WithActual(actual string) MasterAddress {
	m.Actual = actual
	return m
}

// IsZero tells you if this is the zero MasterAddress, ie. there is no leader
// and the engine should run in local mode.
func (m MasterAddress) IsZero() bool {
	return m.Nominal == ""
}

// URL returns the spark:// connection URL of the leader.
func (m MasterAddress) URL() string {
	return "spark://" + m.Nominal + ":" + MasterPort
}

// HDFSURL returns the hdfs:// URL of the filesystem namenode that accompanies
// the leader.
func (m MasterAddress) HDFSURL() string {
	return "hdfs://" + m.Nominal + ":" + HDFSPort
}

// ExtraHosts augments a list of container host mappings ("host:ip" strings,
// as per `docker run --add-host`) with the one needed to make our Nominal
// address resolve to our Actual address, if they differ. Otherwise the given
// list is returned unchanged.
func (m MasterAddress) ExtraHosts(hosts []string) []string {
	if m.Nominal == m.Actual {
		return hosts
	}
	return append(hosts, m.Nominal+":"+m.Actual)
}
