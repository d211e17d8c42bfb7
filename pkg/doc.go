// Package pkg provides the core libraries for Graphlens graph visualization.
//
// # Overview
//
// Graphlens turns graph files into node-link visualizations where node sizes
// and colors are derived from the graph's own attributes. The pkg directory
// is organized into five main areas:
//
//  1. [graph] - The element model (nodes and edges with data bags) and its
//     JSON serialization
//  2. [gexf] - GEXF graph file decoding
//  3. [style] - Visual encoding derivation (weight ranges, size scaling,
//     categorical colors) and the TOML style config
//  4. [render] - Rendering engines (cytoscape, echarts, dot)
//  5. [pipeline] - Orchestration (decode → encode → render) with caching
//
// # Architecture
//
// The typical data flow through Graphlens:
//
//	GEXF / element JSON
//	         ↓
//	    [gexf] + [graph] packages (decode + prepare elements)
//	         ↓
//	    [style] package (derive the visual encoding)
//	         ↓
//	    [render] engines (cytoscape, echarts, dot)
//	         ↓
//	    HTML/SVG/PNG/DOT/JSON output
//
// # Quick Start
//
// Decode a graph and render an interactive HTML page:
//
//	import (
//	    "os"
//	    "github.com/graphlens/graphlens/pkg/gexf"
//	    "github.com/graphlens/graphlens/pkg/graph"
//	    "github.com/graphlens/graphlens/pkg/render/cytoscape"
//	    "github.com/graphlens/graphlens/pkg/style"
//	)
//
//	// 1. Decode and prepare elements
//	raw, _ := gexf.ParseFile("graph.gexf")
//	elements := graph.Prepare(raw, graph.PrepareOptions{})
//
//	// 2. Derive the visual encoding
//	enc := style.Compute(elements, style.Options{})
//
//	// 3. Render
//	f, _ := os.Create("graph.html")
//	defer f.Close()
//	cytoscape.Render(f, elements, enc, cytoscape.Options{Title: "My Graph"})
//
// # Main Packages
//
// [graph] - Cytoscape.js-style element model: every node and edge is a
// {group, data} pair with typed accessors for optional attributes. Prepare
// annotates raw elements with the canonical visual attributes.
//
// [gexf] - Decoder for GEXF 1.x files with typed node attributes.
//
// [style] - Pure encoding derivation. ExtractRange scans weights, AssignColors
// maps group labels to palette colors in first-occurrence order, and SizeScale
// maps weights linearly into pixel bounds. Engines consume a computed Encoding
// read-only.
//
// [render/cytoscape] - Self-contained interactive HTML pages built on
// Cytoscape.js with explicit stylesheet rules and hover/pin tooltips.
//
// [render/echarts] - Interactive HTML pages built on go-echarts with a force
// layout and a category legend.
//
// [render/dot] - Static SVG/PNG output via Graphviz.
//
// [pipeline] - Complete visualization pipeline used by the CLI. Caches
// rendered artifacts under a content hash of the elements and options.
//
// [cache] - Artifact cache with file-based and null implementations.
//
// [errors] - Structured errors with machine-readable codes and input
// validation helpers.
//
// [observability] - Optional instrumentation hooks with no-op defaults.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/style/...    # Specific package
//
// [graph]: https://pkg.go.dev/github.com/graphlens/graphlens/pkg/graph
// [gexf]: https://pkg.go.dev/github.com/graphlens/graphlens/pkg/gexf
// [style]: https://pkg.go.dev/github.com/graphlens/graphlens/pkg/style
// [render]: https://pkg.go.dev/github.com/graphlens/graphlens/pkg/render
// [render/cytoscape]: https://pkg.go.dev/github.com/graphlens/graphlens/pkg/render/cytoscape
// [render/echarts]: https://pkg.go.dev/github.com/graphlens/graphlens/pkg/render/echarts
// [render/dot]: https://pkg.go.dev/github.com/graphlens/graphlens/pkg/render/dot
// [pipeline]: https://pkg.go.dev/github.com/graphlens/graphlens/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/graphlens/graphlens/pkg/cache
// [errors]: https://pkg.go.dev/github.com/graphlens/graphlens/pkg/errors
// [observability]: https://pkg.go.dev/github.com/graphlens/graphlens/pkg/observability
package pkg
