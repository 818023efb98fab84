// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newNodesCmd(a *app) *cobra.Command {
	var graph string

	cmd := &cobra.Command{
		Use:   "nodes",
		Short: "List every node with its out-degree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.loadGraph(graph)
			if err != nil {
				return err
			}
			for _, key := range g.Nodes() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\n", key, len(g.Edges(key)))
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&graph, "graph", "g", "", "Graph YAML file")
	_ = cmd.MarkFlagRequired("graph")

	return cmd
}
