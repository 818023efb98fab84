// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/shortestpath/core"
	"github.com/katalvlaran/shortestpath/graphfile"
	"github.com/katalvlaran/shortestpath/log"
)

// app carries state shared by every subcommand.
type app struct {
	verbose  bool
	logLevel string
	logger   log.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: log.NoOpLogger{}}

	root := &cobra.Command{
		Use:          "shortestpath",
		Short:        "Shortest paths over labelled, weighted digraphs",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level, ok := log.ParseLevel(a.logLevel)
			if !ok {
				return fmt.Errorf("unknown log level %q", a.logLevel)
			}
			if a.verbose {
				level = log.LogLevelDebug
			}
			a.logger = log.NewGologWriter(cmd.ErrOrStderr(), level)

			return nil
		},
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Trace every settle and relax step (debug level)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "warn", "Log level: debug, info, warn, error or none")

	root.AddCommand(newRouteCmd(a))
	root.AddCommand(newReachCmd(a))
	root.AddCommand(newNodesCmd(a))
	root.AddCommand(newGenerateCmd(a))

	return root
}

// loadGraph reads a graph document and reports its size at info level.
func (a *app) loadGraph(path string) (*core.Graph, error) {
	g, err := graphfile.Load(path)
	if err != nil {
		return nil, err
	}
	a.logger.Info("loaded %s: %d nodes, %d edges", path, g.Order(), g.Size())

	return g, nil
}
