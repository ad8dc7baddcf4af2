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
var copyImage string

// copyCmd represents the copy command.
var copyCmd = &cobra.Command{
	Use:   "copy <src> <dst>",
	Short: "Copy a file between S3 and HDFS",
	Long: `Copy a file between S3 and HDFS or vice versa, using Conductor.

src and dst are URLs, eg.:
$ ssub --master node1 copy s3://bucket/my.bam hdfs:///my.bam`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 2 {
			die("copy requires source and destination URLs")
		}

		opts := toolOpts()
		if copyImage != "" {
			opts.Image = copyImage
		} else {
			opts.Image = config.ConductorImage
		}

		if err := tools.CopyFiles(context.Background(), cmdLog{}, dockerRunner(), master(), args[0], args[1], opts); err != nil {
			die("copy failed: %s", err)
		}
		info("copied %s to %s", args[0], args[1])
	},
}

func init() {
	RootCmd.AddCommand(copyCmd)

	copyCmd.Flags().StringVar(&copyImage, "image", "", "override the conductor container image")
}
