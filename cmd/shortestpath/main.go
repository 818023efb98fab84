// SPDX-License-Identifier: MIT

// Command shortestpath answers single-pair shortest-path queries over graphs
// stored as YAML documents, and can generate such documents.
//
//	shortestpath generate --kind grid --rows 3 --cols 4 --min-cost 1 --max-cost 9 > grid.yaml
//	shortestpath route --graph grid.yaml --from 0,0 --to 2,3 --edges
//	shortestpath reach --graph grid.yaml --from 0,0 --max-depth 2
//	shortestpath nodes --graph grid.yaml
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
