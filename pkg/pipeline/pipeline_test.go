package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/graphlens/graphlens/pkg/cache"
	"github.com/graphlens/graphlens/pkg/graph"
)

func TestValidateEngine(t *testing.T) {
	for _, engine := range []string{EngineCytoscape, EngineECharts, EngineDOT} {
		if err := ValidateEngine(engine); err != nil {
			t.Errorf("ValidateEngine(%q) = %v", engine, err)
		}
	}
	if err := ValidateEngine("plotly"); err == nil {
		t.Error("expected error for unknown engine")
	}
}

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		engine, format string
		wantErr        bool
	}{
		{EngineCytoscape, FormatHTML, false},
		{EngineCytoscape, FormatJSON, false},
		{EngineCytoscape, FormatSVG, true},
		{EngineECharts, FormatHTML, false},
		{EngineDOT, FormatSVG, false},
		{EngineDOT, FormatPNG, false},
		{EngineDOT, FormatDOT, false},
		{EngineDOT, FormatHTML, true},
		{"plotly", FormatHTML, true},
	}
	for _, tt := range tests {
		err := ValidateFormat(tt.engine, tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q, %q) = %v, wantErr %v", tt.engine, tt.format, err, tt.wantErr)
		}
	}
}

func TestOptionsDefaults(t *testing.T) {
	opts := Options{Input: "graph.gexf"}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults: %v", err)
	}
	if opts.Engine != EngineCytoscape {
		t.Errorf("engine = %q, want cytoscape", opts.Engine)
	}
	if len(opts.Formats) != 1 || opts.Formats[0] != FormatHTML {
		t.Errorf("formats = %v, want [html]", opts.Formats)
	}
	if opts.Title != DefaultTitle {
		t.Errorf("title = %q", opts.Title)
	}
	if opts.Logger == nil {
		t.Error("logger should be defaulted")
	}
}

func TestOptionsDefaultFormatPerEngine(t *testing.T) {
	opts := Options{Input: "graph.json", Engine: EngineDOT}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults: %v", err)
	}
	if len(opts.Formats) != 1 || opts.Formats[0] != FormatSVG {
		t.Errorf("formats = %v, want [svg]", opts.Formats)
	}
}

func TestOptionsValidation(t *testing.T) {
	tests := []struct {
		name string
		opts Options
	}{
		{"missing input", Options{}},
		{"unsupported extension", Options{Input: "graph.xml"}},
		{"bad engine", Options{Input: "g.gexf", Engine: "plotly"}},
		{"bad format for engine", Options{Input: "g.gexf", Engine: EngineECharts, Formats: []string{FormatPNG}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.opts.ValidateAndSetDefaults(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestInputFormat(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"graph.gexf", InputGEXF},
		{"GRAPH.GEXF", InputGEXF},
		{"elements.json", InputJSON},
		{"graph.graphml", InputUnknown},
		{"noext", InputUnknown},
	}
	for _, tt := range tests {
		if got := InputFormat(tt.path); got != tt.want {
			t.Errorf("InputFormat(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestParseTooltipFields(t *testing.T) {
	fields := ParseTooltipFields([]string{"name", "degree=In-Degree", "labels="})
	if len(fields) != 3 {
		t.Fatalf("got %d fields", len(fields))
	}
	if fields[0].Key != "name" || fields[0].Title != "Name" {
		t.Errorf("bare key: %+v", fields[0])
	}
	if fields[1].Key != "degree" || fields[1].Title != "In-Degree" {
		t.Errorf("explicit title: %+v", fields[1])
	}
	if fields[2].Key != "labels" || fields[2].Title != "Labels" {
		t.Errorf("empty title: %+v", fields[2])
	}
	if ParseTooltipFields(nil) != nil {
		t.Error("nil specs should return nil")
	}
}

// writeTestElements writes a small element JSON file and returns its path.
func writeTestElements(t *testing.T) string {
	t.Helper()
	elements := []graph.Element{
		graph.NewNode(map[string]any{
			"id": "a", "name": "alpha", "labels": "Service", "pagerank": 0.4,
		}),
		graph.NewNode(map[string]any{
			"id": "b", "name": "beta", "labels": "Database", "pagerank": 0.1,
		}),
		graph.NewEdge(map[string]any{
			"id": "e1", "source": "a", "target": "b",
		}),
	}
	path := filepath.Join(t.TempDir(), "elements.json")
	if err := graph.WriteElementsFile(elements, path); err != nil {
		t.Fatalf("write elements: %v", err)
	}
	return path
}

func TestExecuteEndToEnd(t *testing.T) {
	runner := NewRunner(nil, nil)
	defer runner.Close()

	result, err := runner.Execute(context.Background(), Options{
		Input:   writeTestElements(t),
		Title:   "Test",
		Formats: []string{FormatHTML, FormatJSON},
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if result.RunID == "" {
		t.Error("missing run id")
	}
	if result.Stats.NodeCount != 2 || result.Stats.EdgeCount != 1 {
		t.Errorf("counts = %d nodes, %d edges", result.Stats.NodeCount, result.Stats.EdgeCount)
	}
	if result.Stats.LabelCount != 2 {
		t.Errorf("label count = %d, want 2", result.Stats.LabelCount)
	}
	if result.ElementsHash == "" {
		t.Error("missing elements hash")
	}

	html := string(result.Artifacts[FormatHTML])
	if !strings.Contains(html, "alpha") || !strings.Contains(html, "cose") {
		t.Error("html artifact missing content")
	}
	var roundtrip []graph.Element
	roundtrip, err = graph.UnmarshalElements(result.Artifacts[FormatJSON])
	if err != nil || len(roundtrip) != 3 {
		t.Errorf("json artifact: %d elements, err %v", len(roundtrip), err)
	}
	// Prepared elements carry the canonical attributes.
	if got := roundtrip[0].String(graph.AttrDisplay, ""); got != "alpha" {
		t.Errorf("display attr = %q", got)
	}
	if got := roundtrip[0].String(graph.AttrGroupColor, ""); got != "Service" {
		t.Errorf("group attr = %q", got)
	}
}

func TestExecuteCachesArtifacts(t *testing.T) {
	fc, err := cache.NewFileCache(filepath.Join(t.TempDir(), "cache"))
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	runner := NewRunner(fc, nil)
	defer runner.Close()

	input := writeTestElements(t)
	opts := Options{Input: input, Formats: []string{FormatHTML}}

	first, err := runner.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	if first.CacheInfo.RenderHit {
		t.Error("first run should miss the cache")
	}

	second, err := runner.Execute(context.Background(), Options{Input: input, Formats: []string{FormatHTML}})
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if !second.CacheInfo.RenderHit {
		t.Error("second run should hit the cache")
	}
	if string(first.Artifacts[FormatHTML]) != string(second.Artifacts[FormatHTML]) {
		t.Error("cached artifact differs from rendered artifact")
	}

	// Refresh bypasses the cache.
	third, err := runner.Execute(context.Background(), Options{Input: input, Formats: []string{FormatHTML}, Refresh: true})
	if err != nil {
		t.Fatalf("third run: %v", err)
	}
	if third.CacheInfo.RenderHit {
		t.Error("refresh run should not hit the cache")
	}
}

func TestExecuteKeysCacheOnDetailedLabels(t *testing.T) {
	fc, err := cache.NewFileCache(filepath.Join(t.TempDir(), "cache"))
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	runner := NewRunner(fc, nil)
	defer runner.Close()

	input := writeTestElements(t)

	plain, err := runner.Execute(context.Background(), Options{
		Input:   input,
		Engine:  EngineDOT,
		Formats: []string{FormatDOT},
	})
	if err != nil {
		t.Fatalf("plain run: %v", err)
	}

	detailed, err := runner.Execute(context.Background(), Options{
		Input:    input,
		Engine:   EngineDOT,
		Formats:  []string{FormatDOT},
		Detailed: true,
	})
	if err != nil {
		t.Fatalf("detailed run: %v", err)
	}

	if detailed.CacheInfo.RenderHit {
		t.Error("detailed run must not reuse the plain artifact")
	}
	if string(plain.Artifacts[FormatDOT]) == string(detailed.Artifacts[FormatDOT]) {
		t.Error("detailed rendering produced the plain artifact")
	}
	if !strings.Contains(string(detailed.Artifacts[FormatDOT]), `\n`) {
		t.Error("detailed artifact is missing multi-line labels")
	}
}

func TestArtifactKeyOptsCoverRenderOptions(t *testing.T) {
	base := Options{Input: "g.json", Engine: EngineDOT, Formats: []string{FormatDOT}}
	baseKey := cache.ArtifactKey("hash", base.ArtifactKeyOpts(FormatDOT))

	tests := []struct {
		name   string
		mutate func(*Options)
	}{
		{"detailed", func(o *Options) { o.Detailed = true }},
		{"fallback", func(o *Options) { o.Fallback = "#123456" }},
		{"display attr", func(o *Options) { o.DisplayAttr = "name" }},
		{"title", func(o *Options) { o.Title = "Other" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := base
			tt.mutate(&opts)
			if key := cache.ArtifactKey("hash", opts.ArtifactKeyOpts(FormatDOT)); key == baseKey {
				t.Errorf("changing %s did not change the artifact key", tt.name)
			}
		})
	}
}

func TestExecuteDecodesGEXF(t *testing.T) {
	const doc = `<?xml version="1.0" encoding="UTF-8"?>
<gexf xmlns="http://gexf.net/1.3" version="1.3">
  <graph defaultedgetype="directed">
    <attributes class="node">
      <attribute id="0" title="labels" type="string"/>
      <attribute id="1" title="pagerank" type="double"/>
    </attributes>
    <nodes>
      <node id="a" label="alpha">
        <attvalues>
          <attvalue for="0" value="Service"/>
          <attvalue for="1" value="0.5"/>
        </attvalues>
      </node>
      <node id="b" label="beta"/>
    </nodes>
    <edges>
      <edge id="0" source="a" target="b"/>
    </edges>
  </graph>
</gexf>`

	path := filepath.Join(t.TempDir(), "graph.gexf")
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	runner := NewRunner(nil, nil)
	defer runner.Close()

	elements, err := runner.Decode(context.Background(), Options{Input: path})
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(elements) != 3 {
		t.Fatalf("got %d elements, want 3", len(elements))
	}
	if got := elements[0].String(graph.AttrGroupColor, ""); got != "Service" {
		t.Errorf("group = %q", got)
	}
	if got := elements[1].String(graph.AttrGroupColor, ""); got != "Unknown" {
		t.Errorf("default group = %q", got)
	}
}
