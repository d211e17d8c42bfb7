package graph

import "encoding/json"

// Element groups.
const (
	GroupNodes = "nodes"
	GroupEdges = "edges"
)

// Well-known data attributes. Input converters populate these keys and the
// rendering engines read them; raw attributes are carried alongside.
const (
	AttrID          = "id"
	AttrSource      = "source"
	AttrTarget      = "target"
	AttrDisplay     = "label_for_display"
	AttrGroupColor  = "node_group_for_color"
	AttrSizeMetric  = "pagerank_for_size"
	AttrDescription = "description_for_hover"
)

// Element is a single entry in a graph element list: a node or an edge with
// a bag of named attributes.
type Element struct {
	Group string         `json:"group"`
	Data  map[string]any `json:"data"`
}

// IsNode returns true if the element belongs to the nodes group.
func (e Element) IsNode() bool { return e.Group == GroupNodes }

// IsEdge returns true if the element belongs to the edges group.
func (e Element) IsEdge() bool { return e.Group == GroupEdges }

// ID returns the element's id attribute, or "" when absent.
func (e Element) ID() string { return e.String(AttrID, "") }

// Number reads a numeric attribute from the data bag.
// JSON numbers decode as float64; int and json.Number values from
// programmatic construction are accepted too. Strings are not coerced.
func (e Element) Number(key string) (float64, bool) {
	v, ok := e.Data[key]
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// String reads a string attribute from the data bag, returning def when the
// attribute is absent, not a string, or empty.
func (e Element) String(key, def string) string {
	if v, ok := e.Data[key]; ok {
		if s, ok := v.(string); ok && s != "" {
			return s
		}
	}
	return def
}

// NewNode creates a node element with the given data bag.
func NewNode(data map[string]any) Element {
	return Element{Group: GroupNodes, Data: data}
}

// NewEdge creates an edge element with the given data bag.
func NewEdge(data map[string]any) Element {
	return Element{Group: GroupEdges, Data: data}
}

// Nodes returns the node elements of the list, preserving order.
func Nodes(elements []Element) []Element {
	var nodes []Element
	for _, el := range elements {
		if el.IsNode() {
			nodes = append(nodes, el)
		}
	}
	return nodes
}

// Edges returns the edge elements of the list, preserving order.
func Edges(elements []Element) []Element {
	var edges []Element
	for _, el := range elements {
		if el.IsEdge() {
			edges = append(edges, el)
		}
	}
	return edges
}
