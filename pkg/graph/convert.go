package graph

import "fmt"

// Source attribute names read during preparation.
const (
	srcAttrLabels      = "labels"
	srcAttrPagerank    = "pagerank"
	srcAttrDescription = "description"
	srcAttrLabel       = "label"
)

// Defaults applied when a source attribute is absent.
const (
	// DefaultDisplayAttr is the node attribute used for display labels.
	DefaultDisplayAttr = "name"

	// DefaultUnknownGroup is the group label for nodes without one.
	DefaultUnknownGroup = "Unknown"

	// DefaultDescription is shown for nodes without a description.
	DefaultDescription = "No description available."

	// defaultWeight stands in for missing or unparsable weights, floored
	// at minWeight so size scaling never sees a zero.
	defaultWeight = 0.0001
	minWeight     = 0.00001
)

// PrepareOptions configures element preparation.
type PrepareOptions struct {
	// DisplayAttr is the node attribute used for display labels.
	// Defaults to "name"; falls back to "label", then the node id.
	DisplayAttr string
}

// Prepare annotates raw elements with the canonical visual attributes the
// rendering engines read: AttrDisplay, AttrGroupColor, AttrSizeMetric and
// AttrDescription for nodes; AttrID for edges lacking one. Raw attributes
// are carried through untouched, and element order is preserved.
//
// Prepare does not mutate its input; each returned element holds a fresh
// data bag.
func Prepare(elements []Element, opts PrepareOptions) []Element {
	displayAttr := opts.DisplayAttr
	if displayAttr == "" {
		displayAttr = DefaultDisplayAttr
	}

	out := make([]Element, 0, len(elements))
	edgeIndex := 0
	for _, el := range elements {
		switch {
		case el.IsNode():
			out = append(out, prepareNode(el, displayAttr))
		case el.IsEdge():
			out = append(out, prepareEdge(el, edgeIndex))
			edgeIndex++
		default:
			out = append(out, el)
		}
	}
	return out
}

func prepareNode(el Element, displayAttr string) Element {
	id := el.ID()
	data := map[string]any{
		AttrID:          id,
		AttrDisplay:     el.String(displayAttr, el.String(srcAttrLabel, id)),
		AttrGroupColor:  el.String(srcAttrLabels, DefaultUnknownGroup),
		AttrSizeMetric:  nodeWeight(el),
		AttrDescription: el.String(srcAttrDescription, DefaultDescription),
	}
	copyRemaining(data, el.Data)
	return NewNode(data)
}

func prepareEdge(el Element, index int) Element {
	source := el.String(AttrSource, "")
	target := el.String(AttrTarget, "")
	id := el.ID()
	if id == "" {
		id = fmt.Sprintf("e_%s_%s_%d", source, target, index)
	}
	data := map[string]any{
		AttrID:     id,
		AttrSource: source,
		AttrTarget: target,
	}
	copyRemaining(data, el.Data)
	return NewEdge(data)
}

// nodeWeight reads the pagerank attribute, defaulting and flooring so the
// derived value is always a positive number.
func nodeWeight(el Element) float64 {
	v, ok := el.Number(srcAttrPagerank)
	if !ok {
		v = defaultWeight
	}
	if v < minWeight {
		v = minWeight
	}
	return v
}

// copyRemaining carries raw attributes into the prepared bag without
// overwriting the canonical keys.
func copyRemaining(dst map[string]any, src map[string]any) {
	for k, v := range src {
		if _, taken := dst[k]; !taken {
			dst[k] = v
		}
	}
}
