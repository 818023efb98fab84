// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/shortestpath/dijkstra"
)

// errNoRoute is returned by route when the goal cannot be reached.
var errNoRoute = errors.New("no route")

type routeFlags struct {
	graph     string
	from      string
	to        string
	connector string
	edges     bool
	strategy  string
}

func newRouteCmd(a *app) *cobra.Command {
	var f routeFlags

	cmd := &cobra.Command{
		Use:   "route",
		Short: "Print the cheapest path between two nodes",
		Long: `Runs Dijkstra from --from to --to and prints the node path followed by
its total cost. With --edges the edge labels are printed between nodes as
((label)). Exits non-zero when no path exists.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			strategy, err := dijkstra.ParseStrategy(f.strategy)
			if err != nil {
				return err
			}
			g, err := a.loadGraph(f.graph)
			if err != nil {
				return err
			}

			res := dijkstra.ShortestPath(g, f.from, f.to,
				dijkstra.WithStrategy(strategy),
				dijkstra.WithLogger(a.logger),
			)
			if !res.Found() {
				return fmt.Errorf("%w from %q to %q", errNoRoute, f.from, f.to)
			}

			path := res.NodePathString(f.connector)
			if f.edges {
				path = res.NodeEdgePathString(f.connector)
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			fmt.Fprintf(cmd.OutOrStdout(), "cost: %d\n", res.Cost())

			return nil
		},
	}

	cmd.Flags().StringVarP(&f.graph, "graph", "g", "", "Graph YAML file")
	cmd.Flags().StringVar(&f.from, "from", "", "Start node")
	cmd.Flags().StringVar(&f.to, "to", "", "Goal node")
	cmd.Flags().StringVar(&f.connector, "connector", "->", "Separator printed between path elements")
	cmd.Flags().BoolVar(&f.edges, "edges", false, "Include edge labels in the printed path")
	cmd.Flags().StringVar(&f.strategy, "strategy", dijkstra.StrategyScan.String(), "Selection strategy: scan or heap")
	_ = cmd.MarkFlagRequired("graph")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}
