// Package dot converts element lists to Graphviz DOT and renders them to
// static SVG or PNG images. It is the non-interactive engine; the HTML
// engines live in the cytoscape and echarts packages.
package dot

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/graphlens/graphlens/pkg/graph"
	"github.com/graphlens/graphlens/pkg/style"
)

// Options configures DOT generation.
type Options struct {
	// Detailed includes the group label and weight under each node label.
	Detailed bool
}

// ToDOT converts elements to Graphviz DOT. Node fill colors follow the
// encoding's color assignment and node dimensions follow its size scale,
// converted from pixels to inches at 72 dpi.
func ToDOT(elements []graph.Element, enc style.Encoding, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  overlap=false;\n")
	buf.WriteString("  node [shape=circle, style=filled, fontsize=10, fixedsize=true];\n")
	buf.WriteString("  edge [color=\"#cccccc\"];\n")
	buf.WriteString("\n")

	for _, el := range graph.Nodes(elements) {
		label := fmtLabel(el, enc, opts.Detailed)
		size := enc.NodeSize(el) / 72.0
		fmt.Fprintf(&buf, "  %q [label=%q, fillcolor=%q, width=%.3f, height=%.3f];\n",
			el.ID(), label, enc.NodeColor(el), size, size)
	}

	buf.WriteString("\n")
	for _, el := range graph.Edges(elements) {
		src := el.String(graph.AttrSource, "")
		tgt := el.String(graph.AttrTarget, "")
		if src == "" || tgt == "" {
			continue
		}
		fmt.Fprintf(&buf, "  %q -- %q;\n", src, tgt)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(el graph.Element, enc style.Encoding, detailed bool) string {
	label := el.String(graph.AttrDisplay, el.ID())
	if !detailed {
		return label
	}

	parts := []string{label}
	if group := el.String(enc.ColorKey, ""); group != "" {
		parts = append(parts, group)
	}
	if weight, ok := el.Number(enc.SizeKey); ok {
		parts = append(parts, strconv.FormatFloat(weight, 'g', 4, 64))
	}
	return strings.Join(parts, "\n")
}

// RenderSVG renders a DOT graph to SVG using Graphviz. The viewBox is
// normalized so the image scales cleanly when embedded.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

// RenderPNG renders a DOT graph to PNG using Graphviz.
func RenderPNG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
