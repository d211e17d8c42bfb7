package cytoscape

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"text/template"

	"github.com/graphlens/graphlens/pkg/graph"
	"github.com/graphlens/graphlens/pkg/style"
)

// Options configures page generation.
type Options struct {
	// Title is the page heading. Defaults to "Graph".
	Title string

	// TooltipFields is the prioritized tooltip field list.
	// Defaults to DefaultTooltipFields.
	TooltipFields []TooltipField

	// Layout overrides the COSE parameters. Zero value uses DefaultLayout.
	Layout *LayoutConfig
}

// pageData is the template context. All JSON payloads are pre-marshaled so
// the template only splices strings.
type pageData struct {
	Title         string
	Elements      string
	Stylesheet    string
	Layout        string
	TooltipFields string
}

// Render writes a self-contained HTML page visualizing the elements with
// the given encoding.
func Render(w io.Writer, elements []graph.Element, enc style.Encoding, opts Options) error {
	if opts.Title == "" {
		opts.Title = "Graph"
	}
	if len(opts.TooltipFields) == 0 {
		opts.TooltipFields = DefaultTooltipFields()
	}
	layout := DefaultLayout()
	if opts.Layout != nil {
		layout = *opts.Layout
	}

	data := pageData{Title: opts.Title}
	var err error
	// json.Marshal escapes <, > and & inside strings, so the embedded JSON
	// cannot terminate the surrounding <script> block early.
	if data.Elements, err = marshalJS(elements); err != nil {
		return fmt.Errorf("marshal elements: %w", err)
	}
	if data.Stylesheet, err = marshalJS(Stylesheet(enc)); err != nil {
		return fmt.Errorf("marshal stylesheet: %w", err)
	}
	if data.Layout, err = marshalJS(layout); err != nil {
		return fmt.Errorf("marshal layout: %w", err)
	}
	if data.TooltipFields, err = marshalJS(opts.TooltipFields); err != nil {
		return fmt.Errorf("marshal tooltip fields: %w", err)
	}

	return pageTemplate.Execute(w, data)
}

// RenderBytes renders the page into a byte slice.
func RenderBytes(elements []graph.Element, enc style.Encoding, opts Options) ([]byte, error) {
	var buf bytes.Buffer
	if err := Render(&buf, elements, enc, opts); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func marshalJS(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<script src="https://unpkg.com/cytoscape/dist/cytoscape.min.js"></script>
<style>
    body { font-family: helvetica, arial, sans-serif; font-size: 14px; margin: 0; padding: 0; }
    #cy {
        width: 100%;
        height: 100vh;
        display: block;
        position: absolute;
        top: 0; left: 0; z-index: 999;
    }
    h1 {
        font-size: 1.5em; font-weight: normal; opacity: 0.8;
        position: absolute; left: 10px; top: 10px; z-index: 1000;
    }
    #cy-tooltip td { vertical-align: top; padding-right: 10px; }
</style>
</head>
<body>
    <h1>{{.Title}}</h1>
    <div id="cy-tooltip" style="
        display: none;
        position: absolute;
        pointer-events: none;
        background: #fffbe9;
        border: 1px solid #aaa;
        padding: 8px 12px;
        border-radius: 8px;
        font-size: 13px;
        color: #222;
        box-shadow: 2px 2px 8px #bbb;
        z-index: 2000;
        max-width: 340px;
    "></div>
    <div id="cy"></div>
    <script>
        document.addEventListener('DOMContentLoaded', function() {

            var graphElements = {{.Elements}};
            var graphStyle = {{.Stylesheet}};
            var graphLayout = {{.Layout}};
            var tooltipFields = {{.TooltipFields}};

            function buildTooltipContent(nodeData) {
                let html = "<table>";
                tooltipFields.forEach(field => {
                    if (nodeData[field.key] !== undefined) {
                        html += ` + "`" + `<tr><td><b>${field.title}</b></td><td>${nodeData[field.key]}</td></tr>` + "`" + `;
                    }
                });
                html += "</table>";
                return html;
            }

            var cy = cytoscape({
                container: document.getElementById('cy'),
                elements: graphElements,
                style: graphStyle,
                layout: graphLayout
            });

            const tooltip = document.getElementById('cy-tooltip');
            let fixedTooltip = false;

            function moveTooltip(e) {
                if (!fixedTooltip) {
                    tooltip.style.left = (e.clientX + 16) + 'px';
                    tooltip.style.top = (e.clientY + 16) + 'px';
                }
            }

            function showTooltipNearNode(node) {
                const pos = node.renderedPosition();
                const containerRect = cy.container().getBoundingClientRect();
                tooltip.style.left = (containerRect.left + pos.x + 24) + 'px';
                tooltip.style.top = (containerRect.top + pos.y - 16) + 'px';
                tooltip.style.display = 'block';
            }

            cy.on('mouseover', 'node', function(evt) {
                if (!fixedTooltip) {
                    evt.target.style('border-color', 'black');
                    evt.target.style('border-width', 3);
                    tooltip.innerHTML = buildTooltipContent(evt.target.data());
                    tooltip.style.display = 'block';
                    cy.container().addEventListener('mousemove', moveTooltip);
                }
            });

            cy.on('mouseout', 'node', function(evt) {
                if (!fixedTooltip) {
                    evt.target.style('border-color', '#555');
                    evt.target.style('border-width', 1);
                    tooltip.style.display = 'none';
                    cy.container().removeEventListener('mousemove', moveTooltip);
                }
            });

            cy.on('tap', 'node', function(evt) {
                evt.target.select();
                fixedTooltip = true;
                tooltip.innerHTML = buildTooltipContent(evt.target.data());
                showTooltipNearNode(evt.target);
            });

            cy.on('tap', function(evt) {
                if (evt.target === cy) {
                    cy.nodes().unselect();
                    fixedTooltip = false;
                    tooltip.style.display = 'none';
                }
            });

            document.addEventListener('keydown', function(e) {
                if (e.key === 'Escape') {
                    cy.nodes().unselect();
                    fixedTooltip = false;
                    tooltip.style.display = 'none';
                }
            });
        });
    </script>
</body>
</html>
`))
