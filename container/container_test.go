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

import (
	"context"
	"os/exec"
	"testing"

	"github.com/docker/go-connections/nat"
	. "github.com/smartystreets/goconvey/convey"
)

func TestRunOpts(t *testing.T) {
	image := "quay.io/ucsc_cgl/adam"
	args := []string{"--conf", "spark.driver.memory=4g", "--", "transformAlignments"}

	Convey("The zero RunOpts translates to a plain container", t, func() {
		opts := &RunOpts{}
		config, hostConfig, err := opts.configs(image, args)
		So(err, ShouldBeNil)
		So(config.Image, ShouldEqual, image)
		So([]string(config.Cmd), ShouldResemble, args)
		So(config.Entrypoint, ShouldBeNil)
		So(config.Env, ShouldBeNil)
		So(string(hostConfig.NetworkMode), ShouldEqual, "")
		So(hostConfig.LogConfig.Type, ShouldEqual, "")
		So(hostConfig.PortBindings, ShouldBeNil)
	})

	Convey("Host networking, binds, env, extra hosts and the log driver translate", t, func() {
		opts := &RunOpts{
			HostNetwork:      true,
			Binds:            []string{"/tmp/work:/data"},
			Env:              []string{"AWS_ACCESS_KEY_ID=AKID"},
			ExtraHosts:       []string{"spark-master:10.0.0.7"},
			DisableLogDriver: true,
		}
		config, hostConfig, err := opts.configs(image, args)
		So(err, ShouldBeNil)
		So(config.Env, ShouldResemble, []string{"AWS_ACCESS_KEY_ID=AKID"})
		So(string(hostConfig.NetworkMode), ShouldEqual, "host")
		So(hostConfig.Binds, ShouldResemble, []string{"/tmp/work:/data"})
		So(hostConfig.ExtraHosts, ShouldResemble, []string{"spark-master:10.0.0.7"})
		So(hostConfig.LogConfig.Type, ShouldEqual, "none")
	})

	Convey("Port bindings expose and publish the container port", t, func() {
		opts := &RunOpts{Ports: []PortBinding{{HostPort: 9090, ContainerPort: 8080}}}
		config, hostConfig, err := opts.configs(image, args)
		So(err, ShouldBeNil)

		port := nat.Port("8080/tcp")
		_, exposed := config.ExposedPorts[port]
		So(exposed, ShouldBeTrue)
		So(hostConfig.PortBindings[port], ShouldResemble, []nat.PortBinding{{HostPort: "9090"}})

		Convey("But are ignored under host networking", func() {
			opts.HostNetwork = true
			config, hostConfig, err = opts.configs(image, args)
			So(err, ShouldBeNil)
			So(config.ExposedPorts, ShouldBeNil)
			So(hostConfig.PortBindings, ShouldBeNil)
		})
	})

	Convey("An entrypoint override translates", t, func() {
		opts := &RunOpts{Entrypoint: []string{"/home/mango/bin/mango-notebook"}}
		config, _, err := opts.configs(image, args)
		So(err, ShouldBeNil)
		So([]string(config.Entrypoint), ShouldResemble, []string{"/home/mango/bin/mango-notebook"})
	})
}

// memLog collects log messages.
type memLog struct {
	msgs []string
}

func (m *memLog) Log(msg string) {
	m.msgs = append(m.msgs, msg)
}

func TestLineWriter(t *testing.T) {
	Convey("lineWriter splits writes in to log lines", t, func() {
		log := &memLog{}
		lw := &lineWriter{log: log}

		n, err := lw.Write([]byte("first line\nsecond "))
		So(err, ShouldBeNil)
		So(n, ShouldEqual, 18)
		So(log.msgs, ShouldResemble, []string{"first line"})

		_, err = lw.Write([]byte("line\nthird"))
		So(err, ShouldBeNil)
		So(log.msgs, ShouldResemble, []string{"first line", "second line"})

		Convey("And flush logs any unterminated final line", func() {
			lw.flush()
			So(log.msgs, ShouldResemble, []string{"first line", "second line", "third"})

			lw.flush()
			So(log.msgs, ShouldHaveLength, 3)
		})
	})
}

func TestLocalExec(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("no sh available")
	}

	Convey("LocalExec runs an executable and captures its output", t, func() {
		log := &memLog{}
		err := LocalExec{Log: log}.Execute(context.Background(), "sh", []string{"-c", "echo hello; echo world"})
		So(err, ShouldBeNil)
		So(log.msgs, ShouldResemble, []string{"hello", "world"})
	})

	Convey("LocalExec fails on non-zero exit", t, func() {
		err := LocalExec{Log: &memLog{}}.Execute(context.Background(), "sh", []string{"-c", "exit 3"})
		So(err, ShouldNotBeNil)
		ee, ok := err.(*exec.ExitError)
		So(ok, ShouldBeTrue)
		So(ee.ExitCode(), ShouldEqual, 3)
	})

	Convey("LocalExec fails when the executable doesn't exist", t, func() {
		err := LocalExec{Log: &memLog{}}.Execute(context.Background(), "/no/such/executable", nil)
		So(err, ShouldNotBeNil)
	})
}
