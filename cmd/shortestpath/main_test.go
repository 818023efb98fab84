// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/shortestpath/builder"
	"github.com/katalvlaran/shortestpath/graphfile"
)

const referenceDoc = `
nodes: [island]
edges:
  - {from: s, to: a, cost: 2, name: edge1}
  - {from: s, to: b, cost: 5, name: edge2}
  - {from: a, to: b, cost: 2, name: edge3}
  - {from: a, to: c, cost: 5, name: edge4}
  - {from: b, to: c, cost: 4, name: edge5}
  - {from: b, to: d, cost: 2, name: edge6}
  - {from: c, to: z, cost: 7, name: edge7}
  - {from: d, to: c, cost: 5, name: edge8}
  - {from: d, to: z, cost: 2, name: edge9}
`

// writeGraph stores doc in a temp file and returns its path.
func writeGraph(t *testing.T, doc string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "graph.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	return path
}

// run executes the root command with args and returns stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), errOut.String(), err
}

func TestRoute(t *testing.T) {
	path := writeGraph(t, referenceDoc)

	out, _, err := run(t, "route", "--graph", path, "--from", "s", "--to", "z")
	require.NoError(t, err)
	assert.Equal(t, "s->a->b->d->z\ncost: 8\n", out)

	out, _, err = run(t, "route", "-g", path, "--from", "s", "--to", "z",
		"--edges", "--connector", " ", "--strategy", "heap")
	require.NoError(t, err)
	assert.Equal(t, "s ((edge1)) a ((edge3)) b ((edge6)) d ((edge9)) z\ncost: 8\n", out)
}

func TestRoute_Unreachable(t *testing.T) {
	path := writeGraph(t, referenceDoc)

	out, _, err := run(t, "route", "--graph", path, "--from", "s", "--to", "island")
	assert.ErrorIs(t, err, errNoRoute)
	assert.Empty(t, out)
}

func TestRoute_BadInput(t *testing.T) {
	path := writeGraph(t, referenceDoc)

	_, _, err := run(t, "route", "--graph", path, "--from", "s", "--to", "z", "--strategy", "bogus")
	assert.Error(t, err)

	_, _, err = run(t, "route", "--graph", path, "--from", "s")
	assert.Error(t, err, "--to is required")

	bad := writeGraph(t, "edges:\n  - {from: a, to: b, cost: -1}\n")
	_, _, err = run(t, "route", "--graph", bad, "--from", "a", "--to", "b")
	assert.ErrorIs(t, err, graphfile.ErrNegativeCost)

	_, _, err = run(t, "--log-level", "loud", "route", "--graph", path, "--from", "s", "--to", "z")
	assert.Error(t, err)
}

func TestRoute_VerboseTracesToStderr(t *testing.T) {
	path := writeGraph(t, referenceDoc)

	out, errOut, err := run(t, "route", "--graph", path, "--from", "s", "--to", "b", "--verbose")
	require.NoError(t, err)
	assert.Equal(t, "s->a->b\ncost: 4\n", out)
	assert.Contains(t, errOut, `settled "s" at cost 0`)
	assert.Contains(t, errOut, "loaded "+path)
}

func TestReach(t *testing.T) {
	path := writeGraph(t, referenceDoc)

	out, _, err := run(t, "reach", "--graph", path, "--from", "s", "--max-depth", "1")
	require.NoError(t, err)
	assert.Equal(t, "s\t0\na\t1\nb\t1\n", out)

	out, _, err = run(t, "reach", "--graph", path, "--from", "z")
	require.NoError(t, err)
	assert.Equal(t, "z\t0\n", out)

	_, _, err = run(t, "reach", "--graph", path, "--from", "nowhere")
	assert.Error(t, err)
}

func TestNodes(t *testing.T) {
	path := writeGraph(t, referenceDoc)

	out, _, err := run(t, "nodes", "--graph", path)
	require.NoError(t, err)
	assert.Equal(t, "a\t2\nb\t2\nc\t1\nd\t2\nisland\t0\ns\t2\nz\t0\n", out)
}

func TestGenerate(t *testing.T) {
	out, _, err := run(t, "generate", "--kind", "cycle", "--n", "4", "--prefix", "c")
	require.NoError(t, err)

	g, err := graphfile.Decode(strings.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, []string{"c0", "c1", "c2", "c3"}, g.Nodes())
	assert.Equal(t, 4, g.Size())

	first, _, err := run(t, "generate", "--kind", "random", "--n", "6", "--p", "0.4", "--seed", "9", "--max-cost", "5")
	require.NoError(t, err)
	second, _, err := run(t, "generate", "--kind", "random", "--n", "6", "--p", "0.4", "--seed", "9", "--max-cost", "5")
	require.NoError(t, err)
	assert.Equal(t, first, second)

	out, _, err = run(t, "generate", "--kind", "grid", "--rows", "2", "--cols", "2")
	require.NoError(t, err)
	g, err = graphfile.Decode(strings.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 8, g.Size())
}

func TestGenerate_Errors(t *testing.T) {
	_, _, err := run(t, "generate", "--kind", "star")
	assert.ErrorContains(t, err, "unknown kind")

	_, _, err = run(t, "generate", "--min-cost", "5", "--max-cost", "2")
	assert.ErrorContains(t, err, "invalid cost range")

	_, _, err = run(t, "generate", "--kind", "path", "--n", "1")
	assert.Error(t, err)

	_, _, err = run(t, "generate", "--kind", "random", "--p", "NaN")
	assert.ErrorIs(t, err, builder.ErrInvalidProbability)
}

func TestGenerate_FullCostSpan(t *testing.T) {
	out, _, err := run(t, "generate", "--kind", "path", "--n", "3",
		"--min-cost", "0", "--max-cost", "9223372036854775807")
	require.NoError(t, err)

	g, err := graphfile.Decode(strings.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 2, g.Size())
}

func TestGenerateThenRoute(t *testing.T) {
	doc, _, err := run(t, "generate", "--kind", "grid", "--rows", "3", "--cols", "4")
	require.NoError(t, err)
	path := writeGraph(t, doc)

	out, _, err := run(t, "route", "--graph", path, "--from", "0,0", "--to", "2,3")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(out, "cost: 5\n"), out)
}
