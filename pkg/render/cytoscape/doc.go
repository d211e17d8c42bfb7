// Package cytoscape renders element lists as self-contained Cytoscape.js
// HTML pages.
//
// The page embeds three explicit configuration objects, all derived in Go:
//
//   - the element list (nodes and edges with their data bags)
//   - the stylesheet: a base node rule plus one rule per group label
//     carrying its assigned palette color, and edge rules
//   - the COSE layout parameters passed to the engine
//
// Node sizes use Cytoscape's mapData() linear mapping over the observed
// weight range, so the browser applies exactly the interpolation computed
// by the style package. Hovering a node shows a floating tooltip fed by a
// prioritized field list; tapping pins it, Escape or a background tap
// releases it.
package cytoscape
