package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/graphlens/graphlens/pkg/cache"
	"github.com/graphlens/graphlens/pkg/gexf"
	"github.com/graphlens/graphlens/pkg/graph"
	"github.com/graphlens/graphlens/pkg/observability"
	"github.com/graphlens/graphlens/pkg/style"
)

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Logger: logger,
	}
}

// Execute runs the complete decode → encode → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	r.applyLogger(&opts)

	result := &Result{
		RunID:     uuid.NewString(),
		Artifacts: make(map[string][]byte),
	}
	logger := opts.Logger.With("run_id", result.RunID)

	// Stage 1: Decode
	decodeStart := time.Now()
	elements, err := r.Decode(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	result.Elements = elements
	result.Stats.DecodeTime = time.Since(decodeStart)
	result.Stats.NodeCount = len(graph.Nodes(elements))
	result.Stats.EdgeCount = len(graph.Edges(elements))

	// Compute element hash for cache keys
	if data, err := graph.MarshalElements(elements); err == nil {
		result.ElementsHash = cache.Hash(data)
	}

	logger.Info("decoded graph",
		"nodes", result.Stats.NodeCount,
		"edges", result.Stats.EdgeCount,
		"duration", result.Stats.DecodeTime)

	// Stage 2: Encode
	encodeStart := time.Now()
	enc := r.Encode(ctx, elements, opts)
	result.Encoding = enc
	result.Stats.EncodeTime = time.Since(encodeStart)
	result.Stats.LabelCount = len(enc.Colors.Labels)

	logger.Info("computed encoding",
		"labels", result.Stats.LabelCount,
		"range", enc.Range,
		"duration", result.Stats.EncodeTime)

	// Stage 3: Render
	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, elements, enc, result.ElementsHash, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	logger.Info("rendered outputs",
		"engine", opts.Engine,
		"formats", opts.Formats,
		"cached", renderHit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Decode reads the input file and prepares the canonical visual attributes.
func (r *Runner) Decode(ctx context.Context, opts Options) ([]graph.Element, error) {
	if err := opts.ValidateForDecode(); err != nil {
		return nil, err
	}
	r.applyLogger(&opts)

	format := InputFormat(opts.Input)
	start := time.Now()
	observability.Pipeline().OnDecodeStart(ctx, format, opts.Input)

	var elements []graph.Element
	var err error
	switch format {
	case InputGEXF:
		elements, err = gexf.ParseFile(opts.Input)
	case InputJSON:
		elements, err = graph.ReadElementsFile(opts.Input)
	default:
		err = fmt.Errorf("unsupported input file %q", opts.Input)
	}
	observability.Pipeline().OnDecodeComplete(ctx, format, opts.Input, len(elements), time.Since(start), err)
	if err != nil {
		return nil, err
	}

	return graph.Prepare(elements, graph.PrepareOptions{DisplayAttr: opts.DisplayAttr}), nil
}

// Encode derives the visual encoding for prepared elements.
func (r *Runner) Encode(ctx context.Context, elements []graph.Element, opts Options) style.Encoding {
	styleOpts := opts.StyleOptions()
	start := time.Now()
	observability.Pipeline().OnEncodeStart(ctx, styleOpts.SizeKey, styleOpts.ColorKey, len(elements))

	enc := style.Compute(elements, styleOpts)
	observability.Pipeline().OnEncodeComplete(ctx, len(enc.Colors.Labels), time.Since(start))
	return enc
}

// RenderWithCacheInfo generates artifacts with caching and returns cache hit info.
// elementsHash keys the cache; pass an empty string to disable caching for
// this call.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, elements []graph.Element, enc style.Encoding, elementsHash string, opts Options) (map[string][]byte, bool, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	// Try to get all formats from cache
	if elementsHash != "" && !opts.Refresh {
		allCached := true
		artifacts := make(map[string][]byte)
		for _, format := range opts.Formats {
			cacheKey := cache.ArtifactKey(elementsHash, opts.ArtifactKeyOpts(format))
			data, hit, err := r.Cache.Get(ctx, cacheKey)
			if err != nil || !hit {
				observability.Cache().OnCacheMiss(ctx, "artifact")
				allCached = false
				break
			}
			observability.Cache().OnCacheHit(ctx, "artifact")
			artifacts[format] = data
		}
		if allCached && len(artifacts) == len(opts.Formats) {
			return artifacts, true, nil // All artifacts from cache
		}
	}

	// Render all formats
	start := time.Now()
	observability.Pipeline().OnRenderStart(ctx, opts.Engine, opts.Formats)
	rendered := make(map[string][]byte, len(opts.Formats))
	var renderErr error
	for _, format := range opts.Formats {
		data, err := renderFormat(ctx, elements, enc, opts, format)
		if err != nil {
			renderErr = fmt.Errorf("render %s/%s: %w", opts.Engine, format, err)
			break
		}
		rendered[format] = data
	}
	observability.Pipeline().OnRenderComplete(ctx, opts.Engine, opts.Formats, time.Since(start), renderErr)
	if renderErr != nil {
		return nil, false, renderErr
	}

	// Cache each format
	if elementsHash != "" {
		for format, data := range rendered {
			cacheKey := cache.ArtifactKey(elementsHash, opts.ArtifactKeyOpts(format))
			if err := r.Cache.Set(ctx, cacheKey, data, cache.TTLArtifact); err == nil {
				observability.Cache().OnCacheSet(ctx, "artifact", len(data))
			}
		}
	}

	return rendered, false, nil // Cache miss
}

// Render is a convenience wrapper that calls RenderWithCacheInfo and discards the cache hit info.
func (r *Runner) Render(ctx context.Context, elements []graph.Element, enc style.Encoding, opts Options) (map[string][]byte, error) {
	var hash string
	if data, err := graph.MarshalElements(elements); err == nil {
		hash = cache.Hash(data)
	}
	artifacts, _, err := r.RenderWithCacheInfo(ctx, elements, enc, hash, opts)
	return artifacts, err
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
