// Package echarts renders element lists as interactive go-echarts graph
// pages. It is an alternative HTML engine to the cytoscape package with a
// built-in force layout and legend.
package echarts

import (
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	echartsopts "github.com/go-echarts/go-echarts/v2/opts"

	"github.com/graphlens/graphlens/pkg/graph"
	"github.com/graphlens/graphlens/pkg/style"
)

// Options configures the generated chart.
type Options struct {
	// Title is the page title. Defaults to "Graph".
	Title string

	// Repulsion is the force-layout node repulsion. Defaults to 400.
	Repulsion float32
}

func (o Options) withDefaults() Options {
	if o.Title == "" {
		o.Title = "Graph"
	}
	if o.Repulsion <= 0 {
		o.Repulsion = 400
	}
	return o
}

// Render writes a standalone HTML page with a force-directed graph chart.
// Node sizes and category colors come from the encoding.
func Render(w io.Writer, elements []graph.Element, enc style.Encoding, opts Options) error {
	opts = opts.withDefaults()

	nodes, links, categories := buildSeries(elements, enc)

	chart := charts.NewGraph()
	chart.SetGlobalOptions(
		charts.WithInitializationOpts(echartsopts.Initialization{
			PageTitle: opts.Title,
			Height:    "100vh",
			Width:     "100vw",
		}),
		charts.WithTitleOpts(echartsopts.Title{
			Title: opts.Title,
		}),
		charts.WithLegendOpts(echartsopts.Legend{
			Show: echartsopts.Bool(true),
		}),
		charts.WithTooltipOpts(echartsopts.Tooltip{
			Show: echartsopts.Bool(true),
		}),
	)
	chart.AddSeries(
		"graph",
		nodes,
		links,
		charts.WithGraphChartOpts(
			echartsopts.GraphChart{
				Draggable:  echartsopts.Bool(true),
				Roam:       echartsopts.Bool(true),
				Force:      &echartsopts.GraphForce{Repulsion: opts.Repulsion},
				Categories: categories,
			},
		),
		charts.WithLabelOpts(echartsopts.Label{
			Show:     echartsopts.Bool(true),
			Color:    "black",
			Position: "top",
		}),
	)

	page := components.NewPage()
	page.SetPageTitle(opts.Title)
	page.AddCharts(chart)
	return page.Render(w)
}

// buildSeries converts elements into echarts series data. Series links
// reference nodes by name, so edges carrying node ids are remapped to the
// display names the nodes were registered under.
func buildSeries(elements []graph.Element, enc style.Encoding) ([]echartsopts.GraphNode, []echartsopts.GraphLink, []*echartsopts.GraphCategory) {
	categoryIndex := make(map[string]int, len(enc.Colors.Labels))
	categories := make([]*echartsopts.GraphCategory, 0, len(enc.Colors.Labels))
	for i, label := range enc.Colors.Labels {
		categoryIndex[label] = i
		categories = append(categories, &echartsopts.GraphCategory{
			Name: label,
		})
	}

	nameByID := make(map[string]string)
	var nodes []echartsopts.GraphNode
	for _, el := range elements {
		if !el.IsNode() {
			continue
		}
		name := el.String(graph.AttrDisplay, el.ID())
		if _, taken := nameByID[el.ID()]; taken {
			continue
		}
		nameByID[el.ID()] = name

		label := el.String(enc.ColorKey, style.UnknownLabel)
		idx, ok := categoryIndex[label]
		if !ok {
			idx = 0
		}
		weight, _ := el.Number(enc.SizeKey)
		nodes = append(nodes, echartsopts.GraphNode{
			Name:       name,
			Value:      float32(weight),
			SymbolSize: float32(enc.NodeSize(el)),
			Category:   idx,
			ItemStyle: &echartsopts.ItemStyle{
				Color: enc.NodeColor(el),
			},
		})
	}

	var links []echartsopts.GraphLink
	for _, el := range elements {
		if !el.IsEdge() {
			continue
		}
		source := el.String(graph.AttrSource, "")
		target := el.String(graph.AttrTarget, "")
		if name, ok := nameByID[source]; ok {
			source = name
		}
		if name, ok := nameByID[target]; ok {
			target = name
		}
		links = append(links, echartsopts.GraphLink{
			Source: source,
			Target: target,
		})
	}

	return nodes, links, categories
}
