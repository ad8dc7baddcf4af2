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

// This file contains the Runner interface and its supporting types.

import (
	"bytes"
	"context"
	"strconv"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/strslice"
	"github.com/docker/go-connections/nat"
)

// Logger is how we append messages to the shared job log of whatever workflow
// manager invoked us. Logging is fire-and-forget: implementations must not
// fail, and we never wait on them.
type Logger interface {
	Log(msg string)
}

// LogFunc is an adapter to allow the use of an ordinary function as a Logger.
type LogFunc func(msg string)

// Log calls f(msg).
func (f LogFunc) Log(msg string) {
	f(msg)
}

// Runner is something that can run a container image with the given command
// line arguments to completion. Run blocks until the container exits, and
// returns an error if it exited non-zero.
type Runner interface {
	Run(ctx context.Context, image string, args []string, opts *RunOpts) error
}

// Executor is something that can run a named executable directly on this
// machine, blocking until it exits and failing on non-zero exit.
type Executor interface {
	Execute(ctx context.Context, path string, args []string) error
}

// PortBinding publishes a container port on a host port.
type PortBinding struct {
	HostPort      int
	ContainerPort int
}

// RunOpts are the container-runtime options for a single Run. The zero value
// is usable: default networking, no mounts, no extra environment, the image's
// own entrypoint.
type RunOpts struct {
	// Name for the created container; one is generated if blank.
	Name string

	// HostNetwork runs the container in the host's network namespace.
	HostNetwork bool

	// Ports are ignored when HostNetwork is set.
	Ports []PortBinding

	// Binds are "hostpath:containerpath" volume mounts.
	Binds []string

	// Env entries are "KEY=value" environment variables for the container
	// process.
	Env []string

	// Entrypoint overrides the image's entrypoint when non-nil.
	Entrypoint []string

	// ExtraHosts are "host:ip" mappings added to the container's hosts file.
	ExtraHosts []string

	// DisableLogDriver turns off the docker log driver, for tools whose
	// output is too voluminous to keep.
	DisableLogDriver bool

	// Log receives the container's output a line at a time, if set.
	Log Logger
}

// configs translates our options in to the docker API's creation structs.
func (opts *RunOpts) configs(image string, args []string) (*container.Config, *container.HostConfig, error) {
	config := &container.Config{
		Image: image,
		Cmd:   strslice.StrSlice(args),
		Env:   opts.Env,
	}
	if opts.Entrypoint != nil {
		config.Entrypoint = strslice.StrSlice(opts.Entrypoint)
	}

	hostConfig := &container.HostConfig{
		Binds:      opts.Binds,
		ExtraHosts: opts.ExtraHosts,
	}
	if opts.HostNetwork {
		hostConfig.NetworkMode = "host"
	}
	if opts.DisableLogDriver {
		hostConfig.LogConfig = container.LogConfig{Type: "none"}
	}

	if !opts.HostNetwork && len(opts.Ports) > 0 {
		config.ExposedPorts = make(nat.PortSet)
		hostConfig.PortBindings = make(nat.PortMap)
		for _, pb := range opts.Ports {
			port, err := nat.NewPort("tcp", strconv.Itoa(pb.ContainerPort))
			if err != nil {
				return nil, nil, err
			}
			config.ExposedPorts[port] = struct{}{}
			hostConfig.PortBindings[port] = append(hostConfig.PortBindings[port],
				nat.PortBinding{HostPort: strconv.Itoa(pb.HostPort)})
		}
	}

	return config, hostConfig, nil
}

// lineWriter is an io.Writer that passes complete lines to a Logger.
type lineWriter struct {
	log Logger
	buf []byte
}

func (w *lineWriter) Write(p []byte) (int, error) {
	w.buf = append(w.buf, p...)
	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			break
		}
		w.log.Log(string(w.buf[:i]))
		w.buf = w.buf[i+1:]
	}
	return len(p), nil
}

// flush logs any unterminated final line.
func (w *lineWriter) flush() {
	if len(w.buf) > 0 {
		w.log.Log(string(w.buf))
		w.buf = nil
	}
}
