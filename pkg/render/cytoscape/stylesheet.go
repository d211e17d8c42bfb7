package cytoscape

import (
	"fmt"
	"strconv"

	"github.com/graphlens/graphlens/pkg/graph"
	"github.com/graphlens/graphlens/pkg/style"
)

// StyleRule is one entry of a Cytoscape.js stylesheet: a selector and the
// style properties applied to matching elements.
type StyleRule struct {
	Selector string         `json:"selector"`
	Style    map[string]any `json:"style"`
}

// Edge highlight applied to edges flagged with edge_color = "blue".
// Kept for graphs that mark a path or subset to emphasize.
const (
	highlightAttr  = "edge_color"
	highlightValue = "blue"
	highlightColor = "#0066FF"
)

// Stylesheet builds the explicit style configuration for an encoding.
//
// The base node rule binds the display label and the mapData() size mapping;
// its background color is the fallback, overridden by one rule per group
// label in first-occurrence order. Emitting per-label rules instead of a
// style function keeps the whole stylesheet serializable and testable.
func Stylesheet(enc style.Encoding) []StyleRule {
	rules := []StyleRule{
		{
			Selector: "node",
			Style: map[string]any{
				"background-color":   enc.Colors.FallbackColor(),
				"label":              fmt.Sprintf("data(%s)", graph.AttrDisplay),
				"width":              sizeMapping(enc),
				"height":             sizeMapping(enc),
				"font-size":          "10px",
				"color":              "#000",
				"text-valign":        "center",
				"text-halign":        "center",
				"text-outline-width": 1,
				"text-outline-color": "#fff",
				"border-width":       1,
				"border-color":       "#555",
			},
		},
	}

	for _, label := range enc.Colors.Labels {
		rules = append(rules, StyleRule{
			Selector: fmt.Sprintf("node[%s = %s]", enc.ColorKey, strconv.Quote(label)),
			Style: map[string]any{
				"background-color": enc.Colors.Colors[label],
			},
		})
	}

	rules = append(rules,
		StyleRule{
			Selector: "edge",
			Style: map[string]any{
				"width":              1.5,
				"line-color":         "#ccc",
				"target-arrow-shape": "none",
				"curve-style":        "bezier",
				"opacity":            0.7,
			},
		},
		StyleRule{
			Selector: fmt.Sprintf("edge[%s = %q]", highlightAttr, highlightValue),
			Style: map[string]any{
				"line-color":         highlightColor,
				"width":              3,
				"target-arrow-color": highlightColor,
				"opacity":            0.95,
			},
		},
	)

	return rules
}

// sizeMapping renders the Cytoscape mapData() expression for the encoding's
// weight range and size bounds.
func sizeMapping(enc style.Encoding) string {
	return fmt.Sprintf("mapData(%s, %g, %g, %g, %g)",
		enc.SizeKey, enc.Range.Min, enc.Range.Max, enc.Scale.MinSize, enc.Scale.MaxSize)
}

// LayoutConfig holds the parameters handed to the COSE force-directed
// layout. Layout itself is entirely the engine's concern.
type LayoutConfig struct {
	Name             string  `json:"name"`
	IdealEdgeLength  int     `json:"idealEdgeLength"`
	NodeOverlap      int     `json:"nodeOverlap"`
	Refresh          int     `json:"refresh"`
	Fit              bool    `json:"fit"`
	Padding          int     `json:"padding"`
	Randomize        bool    `json:"randomize"`
	ComponentSpacing int     `json:"componentSpacing"`
	NodeRepulsion    int     `json:"nodeRepulsion"`
	EdgeElasticity   int     `json:"edgeElasticity"`
	NestingFactor    int     `json:"nestingFactor"`
	Gravity          int     `json:"gravity"`
	NumIter          int     `json:"numIter"`
	InitialTemp      int     `json:"initialTemp"`
	CoolingFactor    float64 `json:"coolingFactor"`
	MinTemp          float64 `json:"minTemp"`
}

// DefaultLayout returns the COSE parameters used by the generated pages.
func DefaultLayout() LayoutConfig {
	return LayoutConfig{
		Name:             "cose",
		IdealEdgeLength:  100,
		NodeOverlap:      20,
		Refresh:          20,
		Fit:              true,
		Padding:          30,
		Randomize:        false,
		ComponentSpacing: 100,
		NodeRepulsion:    400000,
		EdgeElasticity:   100,
		NestingFactor:    5,
		Gravity:          80,
		NumIter:          1000,
		InitialTemp:      200,
		CoolingFactor:    0.95,
		MinTemp:          1.0,
	}
}

// TooltipField is one entry of the prioritized tooltip field list: the data
// attribute to read and the heading shown next to it.
type TooltipField struct {
	Key   string `json:"key"`
	Title string `json:"title"`
}

// DefaultTooltipFields returns the tooltip content in display precedence:
// name first, then description, then the group labels.
func DefaultTooltipFields() []TooltipField {
	return []TooltipField{
		{Key: "name", Title: "Name"},
		{Key: "description", Title: "Description"},
		{Key: "labels", Title: "Labels"},
	}
}
