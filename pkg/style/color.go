package style

import "github.com/graphlens/graphlens/pkg/graph"

// UnknownLabel is the group label assigned to nodes without a categorical
// label attribute.
const UnknownLabel = "Unknown"

// FallbackColor is used for any label that has no palette assignment,
// e.g. when a stylesheet is applied to elements it was not derived from.
const FallbackColor = "#808080"

// DefaultPalette is the fixed ordered color palette for categorical group
// labels. Labels beyond the palette length wrap around.
var DefaultPalette = []string{
	"#e41a1c", "#377eb8", "#4daf4a", "#984ea3", "#ff7f00",
	"#ffff33", "#a65628", "#f781bf", "#999999", "#66c2a5",
	"#fc8d62", "#8da0cb", "#e78ac3", "#a6d854", "#ffd92f",
}

// ColorAssignment maps group labels to palette colors and remembers the
// order in which labels were first seen.
type ColorAssignment struct {
	Colors   map[string]string // label → hex color
	Labels   []string          // distinct labels in first-occurrence order
	Fallback string            // overrides FallbackColor when non-empty
}

// Color returns the assigned color for label, or the fallback when the
// label was not present in the input the assignment was derived from.
func (a ColorAssignment) Color(label string) string {
	if c, ok := a.Colors[label]; ok {
		return c
	}
	return a.FallbackColor()
}

// FallbackColor returns the color used for labels without an assignment.
func (a ColorAssignment) FallbackColor() string {
	if a.Fallback != "" {
		return a.Fallback
	}
	return FallbackColor
}

// AssignColors walks the node elements and assigns each distinct value of
// the categorical attribute at key a color from the palette.
//
// Labels are collected in first-occurrence order; the i-th distinct label
// receives palette[i % len(palette)]. Nodes without the attribute count
// under [UnknownLabel]. A nil or empty palette falls back to
// [DefaultPalette].
func AssignColors(elements []graph.Element, key string, palette []string) ColorAssignment {
	if len(palette) == 0 {
		palette = DefaultPalette
	}

	assignment := ColorAssignment{Colors: make(map[string]string)}
	for _, el := range elements {
		if !el.IsNode() {
			continue
		}
		label := el.String(key, UnknownLabel)
		if _, seen := assignment.Colors[label]; seen {
			continue
		}
		assignment.Colors[label] = palette[len(assignment.Labels)%len(palette)]
		assignment.Labels = append(assignment.Labels, label)
	}
	return assignment
}
