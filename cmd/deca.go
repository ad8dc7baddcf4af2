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

	"github.com/VertebrateResequencing/ssub/tools"
	"github.com/spf13/cobra"
)

// options for this cmd
var decaImage string

// decaCmd represents the deca command.
var decaCmd = &cobra.Command{
	Use:   "deca -- <deca arguments>",
	Short: "Call copy number variants with DECA",
	Long: `Call copy number variants from read coverage with DECA.

Everything after a -- is passed to DECA itself, eg.:
$ ssub --master node1 deca -- coverage -I hdfs:///targets.bed -o hdfs:///coverage.txt hdfs:///my.bam

S3 credentials are taken from your config file or the standard AWS environment
variables, and passed through to DECA's container and executors. --workdir
mounts a host directory at /data in the container.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			die("deca requires arguments to pass to DECA; put them after a --")
		}

		opts := toolOpts()
		if decaImage != "" {
			opts.Image = decaImage
		} else {
			opts.Image = config.DECAImage
		}

		if err := tools.DECA(context.Background(), cmdLog{}, dockerRunner(), master(), args, opts); err != nil {
			die("deca failed: %s", err)
		}
	},
}

func init() {
	RootCmd.AddCommand(decaCmd)

	decaCmd.Flags().StringVar(&decaImage, "image", "", "override the deca container image")
}
