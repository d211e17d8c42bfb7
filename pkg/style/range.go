package style

import "github.com/graphlens/graphlens/pkg/graph"

// WeightRange is the observed numeric range of a node weight attribute.
type WeightRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// DefaultRange is returned when no usable weights exist or all weights are
// equal. It keeps downstream linear scaling away from division by zero.
var DefaultRange = WeightRange{Min: 0, Max: 1}

// ExtractRange scans the node elements carrying a numeric value at key and
// returns the observed minimum and maximum.
//
// Degenerate inputs collapse to [DefaultRange]: an empty element list, nodes
// without a numeric value at key, or a single distinct weight value.
func ExtractRange(elements []graph.Element, key string) WeightRange {
	var (
		min, max float64
		seen     bool
	)
	for _, el := range elements {
		if !el.IsNode() {
			continue
		}
		v, ok := el.Number(key)
		if !ok {
			continue
		}
		if !seen {
			min, max = v, v
			seen = true
			continue
		}
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	if !seen || min == max {
		return DefaultRange
	}
	return WeightRange{Min: min, Max: max}
}
