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

package cmd

// this is the cobra file that enables subcommands and handles command-line args

import (
	"fmt"
	"os"

	"code.cloudfoundry.org/bytefmt"
	"github.com/VertebrateResequencing/ssub/container"
	"github.com/VertebrateResequencing/ssub/internal"
	"github.com/VertebrateResequencing/ssub/spark"
	"github.com/VertebrateResequencing/ssub/tools"
	"github.com/inconshreveable/log15"
	"github.com/sb10/l15h"
	"github.com/spf13/cobra"
)

// appLogger is used for logging events in our commands
var appLogger = log15.New()

// these variables are accessible by all subcommands.
var config internal.Config

// these are shared by most of the subcommands.
var masterAddr string
var memoryStr string
var sparkConf []string
var workDir string
var runLocal bool
var debug bool

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "ssub",
	Short: "ssub runs containerised Spark genomics tools.",
	Long: `ssub runs the containerised tools of the Big Data Genomics tool chain
(Conductor, ADAM, DECA and Mango) against a Spark cluster, taking care of the
spark-submit argument assembly and the docker plumbing for you.

Point it at your cluster leader and copy your input in to HDFS:
$ ssub --master node1 copy s3://bucket/my.bam hdfs:///my.bam

Then process it, putting the tool's own arguments after a --:
$ ssub --master node1 adam -- transformAlignments hdfs:///my.bam hdfs:///my.adam

If the leader advertises an address that isn't reachable from containers (or
you give --master auto to use a leader on this machine), ssub maps the
advertised name to the reachable address inside each tool container.`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main(). It only needs to happen once
// to the rootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		die(err.Error())
	}
}

func init() {
	// set up logging to stderr
	appLogger.SetHandler(log15.LvlFilterHandler(log15.LvlInfo, log15.StderrHandler))

	// global flags
	RootCmd.PersistentFlags().StringVar(&masterAddr, "master", "", "address of the Spark cluster leader; 'auto' to use a leader on this machine")
	RootCmd.PersistentFlags().StringVar(&memoryStr, "memory", "", "driver and executor memory each, eg. 8G (default from config)")
	RootCmd.PersistentFlags().StringArrayVar(&sparkConf, "spark_conf", nil, "replacement engine configuration argument, repeatable; mutually exclusive with --memory")
	RootCmd.PersistentFlags().StringVar(&workDir, "workdir", "", "host directory to mount at /data in tool containers")
	RootCmd.PersistentFlags().BoolVar(&runLocal, "local", false, "run the engine with all local cores, ignoring --master")
	RootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "include debug messages and caller info in logging")

	cobra.OnInitialize(initConfig)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if debug {
		appLogger.SetHandler(l15h.CallerInfoHandler(log15.LvlFilterHandler(log15.LvlDebug, log15.StderrHandler)))
	}

	config = internal.ConfigLoad(appLogger)
	if masterAddr == "" {
		masterAddr = config.MasterAddr
	}
	if workDir == "" {
		workDir = config.WorkDir
	}
}

// master resolves the --master option, with support for the special address
// "auto". The zero MasterAddress is returned when no leader was configured,
// which the tools take to mean local mode.
func master() spark.MasterAddress {
	if masterAddr == "" {
		return spark.MasterAddress{}
	}
	m, err := spark.ResolveMasterAddress(masterAddr, config.CloudCIDR)
	if err != nil {
		die("could not resolve the leader address: %s", err)
	}
	return m
}

// toolOpts builds the tool options shared by all the subcommands from the
// global flags and config.
func toolOpts() *tools.Opts {
	opts := &tools.Opts{
		WorkDir:  workDir,
		RunLocal: runLocal,
	}

	if len(sparkConf) > 0 {
		if memoryStr != "" {
			die("--memory and --spark_conf are mutually exclusive")
		}
		opts.Overrides = sparkConf
	} else {
		opts.MemoryGB = memoryGB()
	}

	if config.AccessKey != "" {
		opts.Creds = &tools.Credentials{AccessKey: config.AccessKey, SecretKey: config.SecretKey}
	}

	return opts
}

// memoryGB converts the --memory option (or the config default) to whole
// gigabytes.
func memoryGB() int {
	if memoryStr == "" {
		return config.MemoryGB
	}
	bytes, err := bytefmt.ToBytes(memoryStr)
	if err != nil {
		die("invalid --memory value '%s': %s", memoryStr, err)
	}
	gb := int(bytes / bytefmt.GIGABYTE)
	if gb < 1 {
		gb = 1
	}
	return gb
}

// dockerRunner connects to the local docker daemon.
func dockerRunner() *container.Docker {
	d, err := container.NewDocker(appLogger)
	if err != nil {
		die("could not connect to docker: %s", err)
	}
	return d
}

// cmdLog satisfies container.Logger by appending tool output to our own log,
// standing in for the job log of a workflow manager.
type cmdLog struct{}

// Log implements container.Logger.
func (cmdLog) Log(msg string) {
	appLogger.Info(msg)
}

// info is a convenience to log a message at the Info level.
func info(msg string, a ...interface{}) {
	appLogger.Info(fmt.Sprintf(msg, a...))
}

// warn is a convenience to log a message at the Warn level.
func warn(msg string, a ...interface{}) {
	appLogger.Warn(fmt.Sprintf(msg, a...))
}

// die is a convenience to log a message at the Error level and exit non zero.
func die(msg string, a ...interface{}) {
	appLogger.Error(fmt.Sprintf(msg, a...))
	os.Exit(1)
}
