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

package internal

// this file has general utility functions

import (
	"net"
	"os/exec"
)

// CurrentIP returns the IP address of the machine we're running on right now.
// The cidr argument can be an empty string, but if set to the CIDR of the
// machine's primary network, it helps us be sure of getting the correct IP
// address (for when there are multiple network interfaces on the machine).
func CurrentIP(cidr string) (ip string) {
	var ipNet *net.IPNet
	if cidr != "" {
		_, ipn, err := net.ParseCIDR(cidr)
		if err == nil {
			ipNet = ipn
		}
		// *** ignoring error since I don't want to change the return value of
		// this method...
	}

	// first just hope http://stackoverflow.com/a/25851186/675083 gives us a
	// cross-linux&MacOS solution that works reliably...
	out, err := exec.Command("sh", "-c", "ip -4 route get 8.8.8.8 | head -1 | cut -d' ' -f8 | tr -d '\\n'").Output() // #nosec
	if err == nil {
		ip = string(out)

		// paranoid confirmation this ip is in our CIDR
		if ip != "" && ipNet != nil {
			pip := net.ParseIP(ip)
			if pip != nil {
				if !ipNet.Contains(pip) {
					ip = ""
				}
			}
		}
	}

	// if the above fails, fall back on manually going through all our network
	// interfaces
	if ip == "" {
		addrs, err := net.InterfaceAddrs()
		if err != nil {
			return
		}
		for _, address := range addrs {
			if thisIPNet, ok := address.(*net.IPNet); ok && !thisIPNet.IP.IsLoopback() {
				if thisIPNet.IP.To4() != nil {
					if ipNet != nil {
						if ipNet.Contains(thisIPNet.IP) {
							ip = thisIPNet.IP.String()
							break
						}
					} else {
						ip = thisIPNet.IP.String()
						break
					}
				}
			}
		}
	}

	return
}
