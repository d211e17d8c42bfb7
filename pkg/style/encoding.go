package style

import "github.com/graphlens/graphlens/pkg/graph"

// Options configures how an encoding is derived from an element list.
// Zero values select the conventional attribute keys and defaults.
type Options struct {
	SizeKey  string   // weight attribute, default graph.AttrSizeMetric
	ColorKey string   // categorical attribute, default graph.AttrGroupColor
	MinSize  float64  // minimum node size in pixels, default DefaultMinSize
	MaxSize  float64  // maximum node size in pixels, default DefaultMaxSize
	Palette  []string // ordered color palette, default DefaultPalette
	Fallback string   // color for unassigned labels, default FallbackColor
}

// withDefaults returns a copy of o with zero fields replaced by defaults.
func (o Options) withDefaults() Options {
	if o.SizeKey == "" {
		o.SizeKey = graph.AttrSizeMetric
	}
	if o.ColorKey == "" {
		o.ColorKey = graph.AttrGroupColor
	}
	if o.MinSize <= 0 {
		o.MinSize = DefaultMinSize
	}
	if o.MaxSize <= 0 {
		o.MaxSize = DefaultMaxSize
	}
	if len(o.Palette) == 0 {
		o.Palette = DefaultPalette
	}
	return o
}

// Encoding bundles the derived visual encodings for one element list.
// It is a pure function of the elements and options; rendering engines
// consume it read-only.
type Encoding struct {
	SizeKey  string
	ColorKey string
	Range    WeightRange
	Scale    SizeScale
	Colors   ColorAssignment
}

// Compute derives the full visual encoding for elements.
func Compute(elements []graph.Element, opts Options) Encoding {
	opts = opts.withDefaults()

	r := ExtractRange(elements, opts.SizeKey)
	colors := AssignColors(elements, opts.ColorKey, opts.Palette)
	colors.Fallback = opts.Fallback
	return Encoding{
		SizeKey:  opts.SizeKey,
		ColorKey: opts.ColorKey,
		Range:    r,
		Scale:    NewSizeScale(r, opts.MinSize, opts.MaxSize),
		Colors:   colors,
	}
}

// NodeSize returns the visual size for a node element. Nodes without a
// usable weight get the minimum size.
func (e Encoding) NodeSize(el graph.Element) float64 {
	v, ok := el.Number(e.SizeKey)
	if !ok {
		return e.Scale.MinSize
	}
	return e.Scale.Value(v)
}

// NodeColor returns the assigned color for a node element.
func (e Encoding) NodeColor(el graph.Element) string {
	return e.Colors.Color(el.String(e.ColorKey, UnknownLabel))
}
