package dot

import (
	"strings"
	"testing"

	"github.com/graphlens/graphlens/pkg/graph"
	"github.com/graphlens/graphlens/pkg/style"
)

func dotElements() []graph.Element {
	return []graph.Element{
		graph.NewNode(map[string]any{
			graph.AttrID:         "a",
			graph.AttrDisplay:    "alpha",
			graph.AttrGroupColor: "Service",
			graph.AttrSizeMetric: 0.0,
		}),
		graph.NewNode(map[string]any{
			graph.AttrID:         "b",
			graph.AttrDisplay:    "beta",
			graph.AttrGroupColor: "Database",
			graph.AttrSizeMetric: 10.0,
		}),
		graph.NewEdge(map[string]any{
			graph.AttrID:     "e_a_b_0",
			graph.AttrSource: "a",
			graph.AttrTarget: "b",
		}),
	}
}

func TestToDOT(t *testing.T) {
	elements := dotElements()
	enc := style.Compute(elements, style.Options{})

	dot := ToDOT(elements, enc, Options{})

	if !strings.HasPrefix(dot, "graph G {") {
		t.Errorf("unexpected header: %q", dot[:20])
	}
	if !strings.Contains(dot, `"a" [label="alpha"`) {
		t.Error("missing node a with display label")
	}
	if !strings.Contains(dot, `fillcolor="`+style.DefaultPalette[0]+`"`) {
		t.Error("missing first palette color")
	}
	if !strings.Contains(dot, `fillcolor="`+style.DefaultPalette[1]+`"`) {
		t.Error("missing second palette color")
	}
	// 15px and 70px at 72 dpi.
	if !strings.Contains(dot, "width=0.208") {
		t.Error("missing min node width")
	}
	if !strings.Contains(dot, "width=0.972") {
		t.Error("missing max node width")
	}
	if !strings.Contains(dot, `"a" -- "b";`) {
		t.Error("missing edge")
	}
}

func TestToDOTDetailed(t *testing.T) {
	elements := dotElements()
	enc := style.Compute(elements, style.Options{})

	dot := ToDOT(elements, enc, Options{Detailed: true})
	if !strings.Contains(dot, "alpha\\nService\\n0") {
		t.Errorf("detailed label missing group and weight:\n%s", dot)
	}
}

func TestToDOTSkipsDanglingEdges(t *testing.T) {
	elements := []graph.Element{
		graph.NewEdge(map[string]any{graph.AttrID: "e", graph.AttrSource: "a"}),
	}
	enc := style.Compute(elements, style.Options{})

	dot := ToDOT(elements, enc, Options{})
	if strings.Contains(dot, "--") {
		t.Error("edge without target should be dropped")
	}
}
