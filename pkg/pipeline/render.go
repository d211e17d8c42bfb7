package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/graphlens/graphlens/pkg/graph"
	"github.com/graphlens/graphlens/pkg/render/cytoscape"
	"github.com/graphlens/graphlens/pkg/render/dot"
	"github.com/graphlens/graphlens/pkg/render/echarts"
	"github.com/graphlens/graphlens/pkg/style"
)

// renderFormat produces one output format with the selected engine.
// Formats are assumed validated by ValidateForRender.
func renderFormat(ctx context.Context, elements []graph.Element, enc style.Encoding, opts Options, format string) ([]byte, error) {
	if format == FormatJSON {
		return graph.MarshalElements(elements)
	}

	switch opts.Engine {
	case EngineCytoscape:
		return cytoscape.RenderBytes(elements, enc, cytoscape.Options{
			Title:         opts.Title,
			TooltipFields: ParseTooltipFields(opts.TooltipFields),
		})

	case EngineECharts:
		var buf bytes.Buffer
		err := echarts.Render(&buf, elements, enc, echarts.Options{Title: opts.Title})
		if err != nil {
			return nil, err
		}
		return buf.Bytes(), nil

	case EngineDOT:
		src := dot.ToDOT(elements, enc, dot.Options{Detailed: opts.Detailed})
		switch format {
		case FormatDOT:
			return []byte(src), nil
		case FormatSVG:
			return dot.RenderSVG(ctx, src)
		case FormatPNG:
			return dot.RenderPNG(ctx, src)
		}
	}

	if err := ValidateFormat(opts.Engine, format); err != nil {
		return nil, err
	}
	return nil, fmt.Errorf("unhandled format %q for engine %q", format, opts.Engine)
}

// ParseTooltipFields converts "key" or "key=Title" strings into tooltip
// fields. A bare key uses a capitalized copy of itself as the title.
func ParseTooltipFields(specs []string) []cytoscape.TooltipField {
	if len(specs) == 0 {
		return nil
	}
	fields := make([]cytoscape.TooltipField, 0, len(specs))
	for _, spec := range specs {
		key, title, ok := strings.Cut(spec, "=")
		if !ok || title == "" {
			title = capitalize(key)
		}
		fields = append(fields, cytoscape.TooltipField{Key: key, Title: title})
	}
	return fields
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
