// Package graph defines the element model for node-link graph data.
//
// This package is the serialization boundary of Graphlens: every input format
// (GEXF, element-list JSON) decodes into an ordered []Element, and every
// rendering engine consumes that same slice. The format mirrors the
// Cytoscape.js element list:
//
//	[
//	  {"group": "nodes", "data": {"id": "a", "labels": "Person", "pagerank": 0.04}},
//	  {"group": "nodes", "data": {"id": "b", "labels": "Article"}},
//	  {"group": "edges", "data": {"id": "e_a_b_0", "source": "a", "target": "b"}}
//	]
//
// # Element Order
//
// Element order is significant and preserved through every read/write:
// categorical color assignment depends on first-occurrence order of group
// labels, so reordering elements changes the rendered output.
//
// # Attribute Access
//
// Data bags hold arbitrary JSON values. Use the typed accessors instead of
// indexing the map directly:
//
//	weight, ok := el.Number("pagerank")
//	label := el.String("labels", "Unknown")
//
// Both accessors declare their defaults explicitly; absent or mistyped
// attributes never panic.
package graph
