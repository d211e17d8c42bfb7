// Package style computes visual encodings for graph elements.
//
// The package maps semantic node attributes to visual attributes before any
// rendering engine is involved:
//
//   - [ExtractRange] derives the observed numeric range of a weight attribute
//   - [AssignColors] gives each categorical group label a stable palette color
//   - [Scale] maps a weight into a configured visual size range
//
// All three are pure functions over an element list; an [Encoding] bundles
// their results for the rendering engines. Recomputation is total: encodings
// carry no state between calls, and a label absent from the current input
// simply drops out of the color map.
//
// # Determinism
//
// Color assignment follows first-occurrence order of labels in the element
// list, not sorted order. Rendering the same input twice yields identical
// colors; reordering the input may not. This matches how the palette cycles
// in the generated pages, so tests can pin exact colors.
package style
