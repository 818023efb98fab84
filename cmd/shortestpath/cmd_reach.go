// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/shortestpath/bfs"
)

func newReachCmd(a *app) *cobra.Command {
	var (
		graph    string
		from     string
		maxDepth int
	)

	cmd := &cobra.Command{
		Use:   "reach",
		Short: "List nodes reachable from a start node with their hop count",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.loadGraph(graph)
			if err != nil {
				return err
			}

			res, err := bfs.BFS(g, from,
				bfs.WithContext(cmd.Context()),
				bfs.WithMaxDepth(maxDepth),
			)
			if err != nil {
				return err
			}
			a.logger.Debug("reach: %d of %d nodes from %q", len(res.Order), g.Order(), from)

			for _, key := range res.Order {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\n", key, res.Depth[key])
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&graph, "graph", "g", "", "Graph YAML file")
	cmd.Flags().StringVar(&from, "from", "", "Start node")
	cmd.Flags().IntVar(&maxDepth, "max-depth", 0, "Stop after this many hops (0 = unlimited)")
	_ = cmd.MarkFlagRequired("graph")
	_ = cmd.MarkFlagRequired("from")

	return cmd
}
