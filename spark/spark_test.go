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

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestMasterAddress(t *testing.T) {
	Convey("Given a MasterAddress made with NewMasterAddress", t, func() {
		master := NewMasterAddress("node1")
		So(master.Nominal, ShouldEqual, "node1")
		So(master.Actual, ShouldEqual, "node1")
		So(master.IsZero(), ShouldBeFalse)

		Convey("Its URLs use the well-known ports", func() {
			So(master.URL(), ShouldEqual, "spark://node1:7077")
			So(master.HDFSURL(), ShouldEqual, "hdfs://node1:8020")
		})

		Convey("ExtraHosts returns the given list unchanged when addresses match", func() {
			So(master.ExtraHosts(nil), ShouldBeNil)
			hosts := []string{"foo:1.2.3.4"}
			So(master.ExtraHosts(hosts), ShouldResemble, []string{"foo:1.2.3.4"})
		})

		Convey("After WithActual, ExtraHosts appends exactly one mapping to the actual address", func() {
			remapped := master.WithActual("10.0.0.7")
			So(remapped.Nominal, ShouldEqual, "node1")
			So(remapped.Actual, ShouldEqual, "10.0.0.7")

			hosts := remapped.ExtraHosts(nil)
			So(hosts, ShouldResemble, []string{"node1:10.0.0.7"})

			hosts = remapped.ExtraHosts([]string{"foo:1.2.3.4"})
			So(hosts, ShouldResemble, []string{"foo:1.2.3.4", "node1:10.0.0.7"})

			Convey("And the original is unchanged", func() {
				So(master.Actual, ShouldEqual, "node1")
			})
		})
	})

	Convey("The zero MasterAddress means local mode", t, func() {
		var master MasterAddress
		So(master.IsZero(), ShouldBeTrue)
	})

	Convey("ResolveMasterAddress passes ordinary addresses through", t, func() {
		master, err := ResolveMasterAddress("node1", "")
		So(err, ShouldBeNil)
		So(master, ShouldResemble, NewMasterAddress("node1"))
	})

	Convey("ResolveMasterAddress with 'auto' discovers this machine's IP", t, func() {
		master, err := ResolveMasterAddress(AutoAddress, "")
		if err != nil {
			// no usable interface on this test machine
			So(master.IsZero(), ShouldBeTrue)
		} else {
			So(master.Nominal, ShouldEqual, MasterAlias)
			So(master.Actual, ShouldNotBeBlank)
			So(master.Actual, ShouldNotEqual, MasterAlias)
			So(master.ExtraHosts(nil), ShouldResemble, []string{MasterAlias + ":" + master.Actual})
		}
	})
}

func TestParameters(t *testing.T) {
	defaults := []string{"--conf", "spark.driver.maxResultSize=0"}
	args := []string{"transformAlignments", "in.bam", "out.adam"}

	Convey("Exactly one of memory and overrides must be supplied", t, func() {
		_, err := Parameters(MasterAddress{}, defaults, 0, args, nil)
		So(err, ShouldNotBeNil)
		So(err, ShouldResemble, Error{Op: "parameters", Err: ErrBadMemory})

		_, err = Parameters(MasterAddress{}, defaults, 4, args, []string{"--conf", "spark.driver.memory=1g"})
		So(err, ShouldResemble, Error{Op: "parameters", Err: ErrBadMemory})

		Convey("And a non-nil empty overrides slice counts as supplied", func() {
			params, err := Parameters(MasterAddress{}, nil, 0, args, []string{})
			So(err, ShouldBeNil)
			So(params, ShouldResemble, []string{"--", "transformAlignments", "in.bam", "out.adam"})
		})
	})

	Convey("Given memory 4 and no leader address", t, func() {
		params, err := Parameters(MasterAddress{}, nil, 4, args, nil)
		So(err, ShouldBeNil)

		Convey("The list sizes driver and executor memory to 4g and has no connection entries", func() {
			So(params, ShouldResemble, []string{
				"--conf", "spark.driver.memory=4g",
				"--conf", "spark.executor.memory=4g",
				"--",
				"transformAlignments", "in.bam", "out.adam",
			})
		})
	})

	Convey("Given a leader address node1 and memory 8", t, func() {
		params, err := Parameters(NewMasterAddress("node1"), defaults, 8, args, nil)
		So(err, ShouldBeNil)

		Convey("Everything is in the engine's required order", func() {
			So(params, ShouldResemble, []string{
				"--master", "spark://node1:7077",
				"--conf", "spark.hadoop.fs.default.name=hdfs://node1:8020",
				"--conf", "spark.driver.memory=8g",
				"--conf", "spark.executor.memory=8g",
				"--conf", "spark.driver.maxResultSize=0",
				"--",
				"transformAlignments", "in.bam", "out.adam",
			})
		})
	})

	Convey("Overrides are emitted verbatim in place of the memory entries", t, func() {
		overrides := []string{"--conf", "spark.driver.memory=2g", "--conf", "spark.executor.memory=30g"}
		params, err := Parameters(NewMasterAddress("node1"), defaults, 0, args, overrides)
		So(err, ShouldBeNil)
		So(params, ShouldResemble, []string{
			"--master", "spark://node1:7077",
			"--conf", "spark.hadoop.fs.default.name=hdfs://node1:8020",
			"--conf", "spark.driver.memory=2g",
			"--conf", "spark.executor.memory=30g",
			"--conf", "spark.driver.maxResultSize=0",
			"--",
			"transformAlignments", "in.bam", "out.adam",
		})
	})

	Convey("The separator appears exactly once, with all tool arguments after it in order", t, func() {
		params, err := Parameters(NewMasterAddress("node1"), defaults, 8, args, nil)
		So(err, ShouldBeNil)

		seps := 0
		sepAt := -1
		for i, param := range params {
			if param == ArgSeparator {
				seps++
				sepAt = i
			}
		}
		So(seps, ShouldEqual, 1)
		So(params[sepAt+1:], ShouldResemble, args)
	})

	Convey("Tool arguments containing the separator don't confuse anything before them", t, func() {
		params, err := Parameters(MasterAddress{}, nil, 4, []string{"--", "weird"}, nil)
		So(err, ShouldBeNil)
		So(params, ShouldResemble, []string{
			"--conf", "spark.driver.memory=4g",
			"--conf", "spark.executor.memory=4g",
			"--",
			"--", "weird",
		})
	})
}
