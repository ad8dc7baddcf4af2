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

package tools

// This file contains the types and helpers shared by the tool functions.

import (
	"github.com/VertebrateResequencing/ssub/container"
	"github.com/VertebrateResequencing/ssub/spark"
)

// the prebuilt tool images we invoke, all maintained by UCSC CGL
const (
	conductorImage = "quay.io/ucsc_cgl/conductor"
	adamImage      = "quay.io/ucsc_cgl/adam:962-ehf--6e7085f8cac4b9a927dc9fb06b48007957256b80"
	decaImage      = "quay.io/ucsc_cgl/deca:0.1.0--7d13833a1220001481c4de0489e893c93ee3310f"
	mangoImage     = "quay.io/ucsc_cgl/mango:latest"
)

const (
	// dataMount is where a work dir gets mounted inside tool containers.
	dataMount = "/data"

	// BrowserPort is the port the Mango browser serves on inside its
	// container.
	BrowserPort = 8080

	// NotebookPort is the port the Mango notebook serves on inside its
	// container.
	NotebookPort = 8888

	mangoNotebookEntrypoint = "/home/mango/bin/mango-notebook"
)

// Opts are the per-invocation options shared by the tool functions. The whole
// record is read once at the start of a call; nothing mutates it afterwards.
// A nil *Opts behaves like the zero value (which will fail the memory vs
// overrides precondition, since neither is supplied).
type Opts struct {
	// MemoryGB sizes the engine's driver and executor memory, in gigabytes.
	// Exactly one of MemoryGB and Overrides must be supplied.
	MemoryGB int

	// Overrides replaces the memory-derived engine configuration entirely,
	// and is emitted verbatim.
	Overrides []string

	// WorkDir, if set, is bind-mounted at /data inside the tool's container.
	WorkDir string

	// RunLocal runs the engine with all local cores instead of against a
	// cluster leader; any leader address is ignored.
	RunLocal bool

	// Port publishes a visualisation server's container port on this host
	// port instead of using host networking. 0 means host networking.
	Port int

	// Image overrides the tool's default container image.
	Image string

	// NativePath is the path to a native ADAM installation; when set, ADAM
	// is submitted via its bin/adam-submit instead of a container.
	NativePath string

	// Exec runs the native ADAM submission; defaults to container.LocalExec.
	Exec container.Executor

	// Creds are the cloud credentials for tools that read S3 data.
	Creds *Credentials
}

// image returns the image to run, preferring an override over the tool's
// default.
func (o *Opts) image(def string) string {
	if o.Image != "" {
		return o.Image
	}
	return def
}

// BestEffort is the result of an invocation that deliberately does not fail
// the calling job when the tool's container fails: the failure is appended to
// the job log and recorded here instead. This is distinct from the fail-fast
// contract of every other tool function; callers that do care can still
// inspect Err.
type BestEffort struct {
	// Err is the container failure that was logged and swallowed, if any.
	Err error
}

// Failed tells you whether the invocation actually failed.
func (b BestEffort) Failed() bool {
	return b.Err != nil
}

// localMaster is the engine configuration for running with all local cores.
func localMaster() []string {
	return []string{"--master", "local[*]"}
}

// adamDefaults are ADAM's engine defaults. The memory tunings reduce the
// amount of memory dedicated to caching, which ADAM doesn't take advantage
// of, and the network timeout reduces job failures under heavy gc load.
func adamDefaults(runLocal bool) []string {
	var defaults []string
	if runLocal {
		defaults = localMaster()
	}
	return append(defaults,
		"--conf", "spark.driver.maxResultSize=0",
		"--conf", "spark.storage.memoryFraction=0.3",
		"--conf", "spark.storage.unrollFraction=0.1",
		"--conf", "spark.network.timeout=300s")
}

// s3ToolDefaults are the engine defaults shared by DECA and Mango, which read
// BAM data over S3: unlimited result size, the BAI splitter, and the hadoop
// S3A adapter.
func s3ToolDefaults(runLocal bool) []string {
	var defaults []string
	if runLocal {
		defaults = localMaster()
	}
	return append(defaults,
		"--conf", "spark.driver.maxResultSize=0",
		"--conf", "spark.hadoop.hadoopbam.bam.enable-bai-splitter=true",
		"--packages", "com.amazonaws:aws-java-sdk-pom:1.10.34,org.apache.hadoop:hadoop-aws:2.7.4",
		"--conf", "spark.hadoop.fs.s3a.impl=org.apache.hadoop.fs.s3a.S3AFileSystem")
}

// mangoRunOpts builds the complete container-runtime options for a Mango
// server: host networking by default, or a port publish when opts.Port is
// set, plus credentials, work dir mount and the leader host alias.
func mangoRunOpts(log container.Logger, master spark.MasterAddress, opts *Opts, containerPort int, entrypoint []string) *container.RunOpts {
	ropts := &container.RunOpts{
		Env:        opts.Creds.env(),
		Entrypoint: entrypoint,
		ExtraHosts: master.ExtraHosts(nil),
		Log:        log,
	}
	if opts.Port > 0 {
		ropts.Ports = []container.PortBinding{{HostPort: opts.Port, ContainerPort: containerPort}}
	} else {
		ropts.HostNetwork = true
	}
	if opts.WorkDir != "" {
		ropts.Binds = []string{opts.WorkDir + ":" + dataMount}
	}
	return ropts
}
