package style

import (
	"testing"

	"github.com/graphlens/graphlens/pkg/graph"
)

func weightedNode(v float64) graph.Element {
	return graph.NewNode(map[string]any{"weight": v})
}

func TestExtractRange(t *testing.T) {
	tests := []struct {
		name     string
		elements []graph.Element
		want     WeightRange
	}{
		{
			name:     "empty input collapses to default",
			elements: nil,
			want:     DefaultRange,
		},
		{
			name: "no numeric weights collapses to default",
			elements: []graph.Element{
				graph.NewNode(map[string]any{"weight": "heavy"}),
				graph.NewNode(map[string]any{"other": 1.0}),
			},
			want: DefaultRange,
		},
		{
			name: "single distinct value collapses to default",
			elements: []graph.Element{
				weightedNode(4), weightedNode(4), weightedNode(4),
			},
			want: DefaultRange,
		},
		{
			name: "observed min and max",
			elements: []graph.Element{
				weightedNode(2), weightedNode(5), weightedNode(3),
			},
			want: WeightRange{Min: 2, Max: 5},
		},
		{
			name: "edges are ignored",
			elements: []graph.Element{
				weightedNode(2),
				weightedNode(5),
				graph.NewEdge(map[string]any{"source": "a", "target": "b", "weight": 100.0}),
			},
			want: WeightRange{Min: 2, Max: 5},
		},
		{
			name: "negative weights",
			elements: []graph.Element{
				weightedNode(-3), weightedNode(7),
			},
			want: WeightRange{Min: -3, Max: 7},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractRange(tt.elements, "weight")
			if got != tt.want {
				t.Errorf("ExtractRange() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
