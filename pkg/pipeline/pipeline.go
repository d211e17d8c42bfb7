// Package pipeline provides the core visualization pipeline for Graphlens.
//
// This package implements the complete decode → encode → render pipeline that
// can be used by CLI and library consumers. By centralizing this logic, we
// ensure consistent behavior across all entry points and avoid code
// duplication.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Decode: Read a graph from GEXF or an element JSON file and prepare
//     the canonical visual attributes
//  2. Encode: Derive the visual encoding (weight range, size scale, color
//     assignment) from the prepared elements
//  3. Render: Generate output with the selected engine and formats
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, logger)
//	opts := pipeline.Options{
//	    Input:   "graph.gexf",
//	    Engine:  pipeline.EngineCytoscape,
//	    Formats: []string{pipeline.FormatHTML},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	html := result.Artifacts[pipeline.FormatHTML]
//
// Run individual stages:
//
//	// Decode only
//	elements, err := runner.Decode(ctx, opts)
//
//	// Render with existing elements and encoding
//	artifacts, err := runner.Render(ctx, elements, enc, opts)
package pipeline

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/graphlens/graphlens/pkg/cache"
	"github.com/graphlens/graphlens/pkg/graph"
	"github.com/graphlens/graphlens/pkg/style"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Library Consumers
// =============================================================================

// DefaultEngine is the default rendering engine.
const DefaultEngine = EngineCytoscape

// DefaultTitle is the page title used when none is given.
const DefaultTitle = "Graph"

// Engine constants for rendering engines.
const (
	EngineCytoscape = "cytoscape"
	EngineECharts   = "echarts"
	EngineDOT       = "dot"
)

// Format constants for output formats.
const (
	FormatHTML = "html"
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatDOT  = "dot"
	FormatJSON = "json"
)

// ValidEngines is the set of supported rendering engines.
var ValidEngines = map[string]bool{
	EngineCytoscape: true,
	EngineECharts:   true,
	EngineDOT:       true,
}

// engineFormats maps each engine to the formats it can produce. FormatJSON
// is the prepared element list and is available from every engine.
var engineFormats = map[string]map[string]bool{
	EngineCytoscape: {FormatHTML: true, FormatJSON: true},
	EngineECharts:   {FormatHTML: true, FormatJSON: true},
	EngineDOT:       {FormatSVG: true, FormatPNG: true, FormatDOT: true, FormatJSON: true},
}

// defaultFormat is the format selected per engine when none is given.
var defaultFormat = map[string]string{
	EngineCytoscape: FormatHTML,
	EngineECharts:   FormatHTML,
	EngineDOT:       FormatSVG,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the visualization pipeline.
// This struct supports JSON serialization.
type Options struct {
	// Decode options
	Input       string `json:"input"`
	DisplayAttr string `json:"display_attr,omitempty"` // Node attribute used for display labels

	// Encoding options
	SizeKey  string   `json:"size_key,omitempty"`
	ColorKey string   `json:"color_key,omitempty"`
	MinSize  float64  `json:"min_size,omitempty"`
	MaxSize  float64  `json:"max_size,omitempty"`
	Palette  []string `json:"palette,omitempty"`
	Fallback string   `json:"fallback,omitempty"` // Color for groups without a palette assignment

	// Render options
	Engine        string   `json:"engine,omitempty"`
	Formats       []string `json:"formats,omitempty"`
	Title         string   `json:"title,omitempty"`
	TooltipFields []string `json:"tooltip_fields,omitempty"` // Prioritized node attributes shown in tooltips
	Detailed      bool     `json:"detailed,omitempty"`       // Include group and weight in static labels
	Refresh       bool     `json:"refresh,omitempty"`        // Bypass the artifact cache

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// RunID uniquely identifies this pipeline execution.
	RunID string

	// Elements is the prepared element list.
	Elements []graph.Element

	// ElementsHash is the content hash of the prepared elements.
	ElementsHash string

	// Encoding is the derived visual encoding.
	Encoding style.Encoding

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	NodeCount  int
	EdgeCount  int
	LabelCount int
	DecodeTime time.Duration
	EncodeTime time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	RenderHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateEngine checks that an engine name is valid.
func ValidateEngine(engine string) error {
	if !ValidEngines[engine] {
		return fmt.Errorf("invalid engine: %q (must be one of: cytoscape, echarts, dot)", engine)
	}
	return nil
}

// ValidateFormat checks that a format is supported by the engine.
func ValidateFormat(engine, format string) error {
	formats, ok := engineFormats[engine]
	if !ok {
		return ValidateEngine(engine)
	}
	if !formats[format] {
		return fmt.Errorf("invalid format %q for engine %q", format, engine)
	}
	return nil
}

// ValidateFormats checks that all formats are supported by the engine.
func ValidateFormats(engine string, formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(engine, f); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults for the full pipeline.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForDecode(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForDecode checks required fields for decoding.
func (o *Options) ValidateForDecode() error {
	if o.Input == "" {
		return fmt.Errorf("input is required")
	}
	switch InputFormat(o.Input) {
	case InputGEXF, InputJSON:
	default:
		return fmt.Errorf("unsupported input file %q (must be .gexf or .json)", o.Input)
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return nil
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if o.Engine == "" {
		o.Engine = DefaultEngine
	}
	if len(o.Formats) == 0 {
		if f, ok := defaultFormat[o.Engine]; ok {
			o.Formats = []string{f}
		}
	}
	if o.Title == "" {
		o.Title = DefaultTitle
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	if err := ValidateEngine(o.Engine); err != nil {
		return err
	}
	return ValidateFormats(o.Engine, o.Formats)
}

// StyleOptions returns the encoding options derived from the pipeline options.
func (o *Options) StyleOptions() style.Options {
	return style.Options{
		SizeKey:  o.SizeKey,
		ColorKey: o.ColorKey,
		MinSize:  o.MinSize,
		MaxSize:  o.MaxSize,
		Palette:  o.Palette,
		Fallback: o.Fallback,
	}
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
// Every option that can change rendered bytes must appear here.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Engine:    o.Engine,
		Format:    format,
		SizeKey:   o.SizeKey,
		ColorKey:  o.ColorKey,
		MinSize:   o.MinSize,
		MaxSize:   o.MaxSize,
		Palette:   o.Palette,
		Title:     o.Title,
		Tooltip:   o.TooltipFields,
		Fallback:  o.Fallback,
		LabelAttr: o.DisplayAttr,
		Detailed:  o.Detailed,
	}
}

// Input format constants.
const (
	InputGEXF    = "gexf"
	InputJSON    = "json"
	InputUnknown = ""
)

// InputFormat infers the input format from a file path extension.
func InputFormat(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gexf":
		return InputGEXF
	case ".json":
		return InputJSON
	default:
		return InputUnknown
	}
}
