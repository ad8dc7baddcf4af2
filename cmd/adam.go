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

import (
	"context"

	"github.com/VertebrateResequencing/ssub/container"
	"github.com/VertebrateResequencing/ssub/tools"
	"github.com/spf13/cobra"
)

// options for this cmd
var adamImage string
var adamNativePath string

// adamCmd represents the adam command.
var adamCmd = &cobra.Command{
	Use:   "adam -- <adam arguments>",
	Short: "Process genomic data with ADAM",
	Long: `Process genomic data with ADAM, the distributed genomics engine.

Everything after a -- is passed to ADAM itself, eg.:
$ ssub --master node1 --memory 8G adam -- transformAlignments hdfs:///my.bam hdfs:///my.adam

With --native_path, a local ADAM installation is used instead of the
container; the native launcher does its own memory sizing, so --memory and
--spark_conf don't apply.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			die("adam requires arguments to pass to ADAM; put them after a --")
		}

		opts := toolOpts()
		opts.NativePath = adamNativePath
		if adamImage != "" {
			opts.Image = adamImage
		} else {
			opts.Image = config.ADAMImage
		}

		// a native submission doesn't need docker at all
		var runner container.Runner
		if adamNativePath == "" {
			runner = dockerRunner()
		}

		if err := tools.ADAM(context.Background(), cmdLog{}, runner, master(), args, opts); err != nil {
			die("adam failed: %s", err)
		}
	},
}

func init() {
	RootCmd.AddCommand(adamCmd)

	adamCmd.Flags().StringVar(&adamImage, "image", "", "override the adam container image")
	adamCmd.Flags().StringVar(&adamNativePath, "native_path", "", "path to a native ADAM installation to use instead of the container")
}
