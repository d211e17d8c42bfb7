// Package render groups the rendering engines that turn an element list and
// its visual encoding into output artifacts.
//
// Layout is always delegated: none of the engines position nodes themselves.
//
//   - cytoscape: self-contained HTML page running Cytoscape.js (COSE layout)
//   - echarts: self-contained HTML page running Apache ECharts (force layout)
//   - dot: Graphviz DOT text, rendered to SVG or PNG via go-graphviz
//
// Each engine consumes the same inputs ([]graph.Element plus style.Encoding)
// and differs only in its output surface. The engines never derive encodings
// themselves; separating derivation (testable) from rendering keeps the
// encoding logic independent of any browser or Graphviz runtime.
package render
