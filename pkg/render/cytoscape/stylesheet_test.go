package cytoscape

import (
	"strings"
	"testing"

	"github.com/graphlens/graphlens/pkg/graph"
	"github.com/graphlens/graphlens/pkg/style"
)

func sampleElements() []graph.Element {
	return []graph.Element{
		graph.NewNode(map[string]any{
			graph.AttrID:         "a",
			graph.AttrDisplay:    "alpha",
			graph.AttrGroupColor: "Service",
			graph.AttrSizeMetric: 2.0,
		}),
		graph.NewNode(map[string]any{
			graph.AttrID:         "b",
			graph.AttrDisplay:    "beta",
			graph.AttrGroupColor: "Database",
			graph.AttrSizeMetric: 5.0,
		}),
		graph.NewNode(map[string]any{
			graph.AttrID:         "c",
			graph.AttrDisplay:    "gamma",
			graph.AttrGroupColor: "Service",
			graph.AttrSizeMetric: 3.0,
		}),
		graph.NewEdge(map[string]any{
			graph.AttrID:     "e_a_b_0",
			graph.AttrSource: "a",
			graph.AttrTarget: "b",
		}),
	}
}

func TestStylesheetBaseNodeRule(t *testing.T) {
	enc := style.Compute(sampleElements(), style.Options{})
	rules := Stylesheet(enc)

	if len(rules) == 0 {
		t.Fatal("expected at least one rule")
	}
	base := rules[0]
	if base.Selector != "node" {
		t.Fatalf("first selector = %q, want node", base.Selector)
	}
	if got := base.Style["background-color"]; got != style.FallbackColor {
		t.Errorf("base background = %v, want %v", got, style.FallbackColor)
	}
	if got := base.Style["label"]; got != "data(label_for_display)" {
		t.Errorf("label = %v", got)
	}
	wantMap := "mapData(pagerank_for_size, 2, 5, 15, 70)"
	if got := base.Style["width"]; got != wantMap {
		t.Errorf("width = %v, want %v", got, wantMap)
	}
	if base.Style["width"] != base.Style["height"] {
		t.Error("width and height mappings differ")
	}
}

func TestStylesheetConfiguredFallback(t *testing.T) {
	enc := style.Compute(sampleElements(), style.Options{Fallback: "#444444"})
	rules := Stylesheet(enc)

	if got := rules[0].Style["background-color"]; got != "#444444" {
		t.Errorf("base background = %v, want configured fallback #444444", got)
	}
}

func TestStylesheetPerLabelRules(t *testing.T) {
	enc := style.Compute(sampleElements(), style.Options{})
	rules := Stylesheet(enc)

	// One rule per label, in first-occurrence order, after the base rule.
	want := []struct {
		selector string
		color    string
	}{
		{`node[node_group_for_color = "Service"]`, style.DefaultPalette[0]},
		{`node[node_group_for_color = "Database"]`, style.DefaultPalette[1]},
	}
	for i, w := range want {
		rule := rules[1+i]
		if rule.Selector != w.selector {
			t.Errorf("rule %d selector = %q, want %q", i, rule.Selector, w.selector)
		}
		if got := rule.Style["background-color"]; got != w.color {
			t.Errorf("rule %d color = %v, want %v", i, got, w.color)
		}
	}
}

func TestStylesheetEdgeRules(t *testing.T) {
	enc := style.Compute(sampleElements(), style.Options{})
	rules := Stylesheet(enc)

	var edge, highlight *StyleRule
	for i := range rules {
		switch rules[i].Selector {
		case "edge":
			edge = &rules[i]
		case `edge[edge_color = "blue"]`:
			highlight = &rules[i]
		}
	}
	if edge == nil {
		t.Fatal("missing edge rule")
	}
	if got := edge.Style["line-color"]; got != "#ccc" {
		t.Errorf("edge line-color = %v", got)
	}
	if got := edge.Style["target-arrow-shape"]; got != "none" {
		t.Errorf("edge arrow = %v", got)
	}
	if highlight == nil {
		t.Fatal("missing highlight rule")
	}
	if got := highlight.Style["line-color"]; got != highlightColor {
		t.Errorf("highlight color = %v, want %v", got, highlightColor)
	}
}

func TestStylesheetQuotesLabels(t *testing.T) {
	elements := []graph.Element{
		graph.NewNode(map[string]any{
			graph.AttrID:         "a",
			graph.AttrGroupColor: `Odd "Label"`,
		}),
	}
	enc := style.Compute(elements, style.Options{})
	rules := Stylesheet(enc)

	found := false
	for _, r := range rules {
		if strings.Contains(r.Selector, `\"Label\"`) {
			found = true
		}
	}
	if !found {
		t.Error("label quotes not escaped in selector")
	}
}

func TestDefaultLayout(t *testing.T) {
	l := DefaultLayout()
	if l.Name != "cose" {
		t.Errorf("layout name = %q, want cose", l.Name)
	}
	if l.NodeRepulsion != 400000 {
		t.Errorf("nodeRepulsion = %d", l.NodeRepulsion)
	}
	if !l.Fit || l.Randomize {
		t.Error("expected fit=true randomize=false")
	}
}

func TestDefaultTooltipFields(t *testing.T) {
	fields := DefaultTooltipFields()
	wantKeys := []string{"name", "description", "labels"}
	if len(fields) != len(wantKeys) {
		t.Fatalf("got %d fields, want %d", len(fields), len(wantKeys))
	}
	for i, k := range wantKeys {
		if fields[i].Key != k {
			t.Errorf("field %d key = %q, want %q", i, fields[i].Key, k)
		}
	}
}
