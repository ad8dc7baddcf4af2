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
var mangoImage string
var mangoPublish bool
var mangoPort int

// mangoCmd represents the mango command.
var mangoCmd = &cobra.Command{
	Use:   "mango",
	Short: "Visualise genomic data with Mango",
	Long: `Visualise genomic data with the Mango browser or notebook.

See the help for the browser and notebook subcommands.`,
}

// mangoBrowserCmd represents the mango browser sub-command.
var mangoBrowserCmd = &cobra.Command{
	Use:   "browser -- <mango arguments>",
	Short: "Serve the Mango genome browser",
	Long: `Serve the Mango genome browser.

Everything after a -- is passed to Mango itself, eg.:
$ ssub --master node1 mango browser -- hdfs:///hg19.fa -reads hdfs:///my.adam

By default the browser uses host networking and serves on its usual port
(8080); use --publish (with an optional --port) if host networking isn't
available, eg. on a mac.

This is a best-effort command: the browser is interactive, so if its container
fails, that is logged but ssub still exits 0.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			die("mango browser requires arguments to pass to Mango; put them after a --")
		}

		result, err := tools.MangoBrowser(context.Background(), cmdLog{}, dockerRunner(), master(), args, mangoOpts(config.BrowserPort))
		if err != nil {
			die("mango browser failed: %s", err)
		}
		if result.Failed() {
			warn("mango browser exited: %s", result.Err)
		}
	},
}

// mangoNotebookCmd represents the mango notebook sub-command.
var mangoNotebookCmd = &cobra.Command{
	Use:   "notebook -- <notebook arguments>",
	Short: "Serve the Mango jupyter notebook",
	Long: `Serve the Mango jupyter notebook.

Everything after a -- is passed to the notebook server. By default it uses
host networking and serves on its usual port (8888); use --publish (with an
optional --port) if host networking isn't available, eg. on a mac.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := tools.MangoNotebook(context.Background(), cmdLog{}, dockerRunner(), master(), args, mangoOpts(config.NotebookPort)); err != nil {
			die("mango notebook failed: %s", err)
		}
	},
}

// mangoOpts builds the tool options for the mango subcommands, resolving the
// --publish and --port flags against the given config default.
func mangoOpts(defaultPort int) *tools.Opts {
	opts := toolOpts()
	if mangoImage != "" {
		opts.Image = mangoImage
	} else {
		opts.Image = config.MangoImage
	}
	if mangoPublish {
		opts.Port = mangoPort
		if opts.Port == 0 {
			opts.Port = defaultPort
		}
	}
	return opts
}

func init() {
	RootCmd.AddCommand(mangoCmd)
	mangoCmd.AddCommand(mangoBrowserCmd)
	mangoCmd.AddCommand(mangoNotebookCmd)

	mangoCmd.PersistentFlags().StringVar(&mangoImage, "image", "", "override the mango container image")
	mangoCmd.PersistentFlags().BoolVar(&mangoPublish, "publish", false, "publish the server's port instead of using host networking")
	mangoCmd.PersistentFlags().IntVar(&mangoPort, "port", 0, "host port to publish the server on with --publish (default from config)")
}
