// SPDX-License-Identifier: MIT

// Package graphfile reads and writes core.Graph values as YAML documents.
//
// Document layout:
//
//	nodes: [island]        # optional; nodes that take part in no edge
//	edges:
//	  - from: s
//	    to: a
//	    cost: 2
//	    name: edge1
//
// Decode is the boundary where untrusted input enters the library, so it
// checks what core.Graph.Add does not: both endpoints must be named and
// costs must be non-negative.
package graphfile

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/shortestpath/core"
)

var (
	// ErrMissingEndpoint is returned when an edge has an empty from or to.
	ErrMissingEndpoint = errors.New("graphfile: edge endpoint is empty")

	// ErrNegativeCost is returned when an edge has a cost below zero.
	ErrNegativeCost = errors.New("graphfile: edge cost is negative")

	// ErrMultipleDocuments is returned when the input holds more than one
	// YAML document.
	ErrMultipleDocuments = errors.New("graphfile: more than one document")
)

// Document is the on-disk form of a graph.
type Document struct {
	Nodes []string `yaml:"nodes,omitempty"`
	Edges []Edge   `yaml:"edges"`
}

// Edge is one directed, labelled edge of a Document.
type Edge struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
	Cost int64  `yaml:"cost"`
	Name string `yaml:"name,omitempty"`
}

// Decode reads exactly one YAML document from r and builds a Graph from it.
// Unknown fields are rejected, and so is a second "---" document. An empty
// input yields an empty Graph.
func Decode(r io.Reader) (*core.Graph, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	err := dec.Decode(&doc)
	switch {
	case errors.Is(err, io.EOF):
		return doc.Graph()
	case err != nil:
		return nil, fmt.Errorf("graphfile: decode: %w", err)
	}

	var extra yaml.Node
	if err = dec.Decode(&extra); err == nil {
		return nil, ErrMultipleDocuments
	} else if !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("graphfile: decode: %w", err)
	}

	return doc.Graph()
}

// Load opens path and decodes it with Decode.
func Load(path string) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graphfile: open %s: %w", path, err)
	}
	defer f.Close()

	g, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

// Graph validates d and converts it to a core.Graph. Edges are added in
// document order, so each node keeps its edges in the order they were listed.
func (d Document) Graph() (*core.Graph, error) {
	for i, e := range d.Edges {
		if e.From == "" || e.To == "" {
			return nil, fmt.Errorf("edge %d: %w", i, ErrMissingEndpoint)
		}
		if e.Cost < 0 {
			return nil, fmt.Errorf("edge %d (%s→%s, cost %d): %w", i, e.From, e.To, e.Cost, ErrNegativeCost)
		}
	}

	g := core.NewGraph()
	for _, key := range d.Nodes {
		g.AddNode(key)
	}
	for _, e := range d.Edges {
		g.Add(e.From, e.To, e.Cost, e.Name)
	}

	return g, nil
}

// FromGraph captures g as a Document. Edges are listed by source node in
// sorted order, then in insertion order; Nodes holds only the nodes that no
// edge mentions.
//
// Complexity: O(V·log V + E).
func FromGraph(g *core.Graph) Document {
	var doc Document
	seen := make(map[string]bool)
	keys := g.Nodes()
	for _, k := range keys {
		for _, e := range g.Edges(k) {
			doc.Edges = append(doc.Edges, Edge{From: e.From, To: e.To, Cost: e.Cost, Name: e.Name})
			seen[e.From] = true
			seen[e.To] = true
		}
	}
	for _, k := range keys {
		if !seen[k] {
			doc.Nodes = append(doc.Nodes, k)
		}
	}

	return doc
}

// Encode writes g to w as YAML using a two-space indent.
func Encode(w io.Writer, g *core.Graph) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(FromGraph(g)); err != nil {
		return fmt.Errorf("graphfile: encode: %w", err)
	}

	return enc.Close()
}
