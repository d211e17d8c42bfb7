package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/graphlens/graphlens/pkg/errors"
	"github.com/graphlens/graphlens/pkg/pipeline"
	"github.com/graphlens/graphlens/pkg/style"
)

// renderCommand creates the render command for generating visualizations.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		formatsStr  string
		paletteStr  string
		tooltipStr  string
		configPath  string
		output      string
		noCache     bool
		interactive bool
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "render [graph.gexf|elements.json]",
		Short: "Render a graph file to a visualization",
		Long: `Render a graph file to a visualization.

The render command reads a GEXF graph or an element JSON file, derives the
visual encoding (node sizes from a weight attribute, node colors from a
categorical attribute), and renders it with the selected engine:

  cytoscape  interactive HTML with hover tooltips (default)
  echarts    interactive HTML with a force layout and legend
  dot        static SVG, PNG, or DOT via Graphviz

Results are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Formats = parseFormats(formatsStr)
			opts.Palette = parseList(paletteStr)
			opts.TooltipFields = parseList(tooltipStr)
			if len(opts.Palette) > 0 {
				if err := errors.ValidatePalette(opts.Palette); err != nil {
					return err
				}
			}
			if opts.Fallback != "" {
				if err := errors.ValidateHexColor(opts.Fallback); err != nil {
					return err
				}
			}
			if configPath != "" {
				if err := applyConfig(configPath, &opts); err != nil {
					return err
				}
			}
			return c.runRender(cmd.Context(), args[0], opts, output, noCache, interactive)
		},
	}

	// Common flags
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "re-render even when a cached artifact exists")

	// Encoding flags
	cmd.Flags().StringVar(&opts.SizeKey, "size-key", "", "node attribute holding the size weight")
	cmd.Flags().StringVar(&opts.ColorKey, "color-key", "", "node attribute holding the group label")
	cmd.Flags().Float64Var(&opts.MinSize, "min-size", 0, "minimum node size in pixels")
	cmd.Flags().Float64Var(&opts.MaxSize, "max-size", 0, "maximum node size in pixels")
	cmd.Flags().StringVar(&paletteStr, "palette", "", "hex colors for group labels (comma-separated)")
	cmd.Flags().StringVar(&opts.Fallback, "fallback", "", "hex color for groups without a palette assignment")
	cmd.Flags().StringVar(&opts.DisplayAttr, "display-attr", "", "node attribute used for display labels")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "pick encoding attributes interactively")

	// Render flags
	cmd.Flags().StringVarP(&opts.Engine, "engine", "e", "", "rendering engine: cytoscape (default), echarts, dot")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): html, svg, png, dot, json (comma-separated)")
	cmd.Flags().StringVar(&opts.Title, "title", "", "page title")
	cmd.Flags().StringVar(&tooltipStr, "tooltip", "", "tooltip fields as key or key=Title (comma-separated)")
	cmd.Flags().BoolVar(&opts.Detailed, "detailed", false, "include group and weight in static labels (dot)")
	cmd.Flags().StringVar(&configPath, "config", "", "TOML style config file")

	return cmd
}

// applyConfig overlays a TOML style config onto the pipeline options.
// Explicit flags win over the config file.
func applyConfig(path string, opts *pipeline.Options) error {
	cfg, err := style.LoadConfig(path)
	if err != nil {
		return err
	}

	styleOpts := opts.StyleOptions()
	flagged := styleOpts
	cfg.Apply(&styleOpts)

	if flagged.SizeKey == "" {
		opts.SizeKey = styleOpts.SizeKey
	}
	if flagged.ColorKey == "" {
		opts.ColorKey = styleOpts.ColorKey
	}
	if flagged.MinSize == 0 {
		opts.MinSize = styleOpts.MinSize
	}
	if flagged.MaxSize == 0 {
		opts.MaxSize = styleOpts.MaxSize
	}
	if len(flagged.Palette) == 0 {
		opts.Palette = styleOpts.Palette
	}
	if flagged.Fallback == "" {
		opts.Fallback = styleOpts.Fallback
	}
	if opts.DisplayAttr == "" {
		opts.DisplayAttr = cfg.Display.Attr
	}
	if len(opts.TooltipFields) == 0 {
		opts.TooltipFields = tooltipSpecs(cfg)
	}
	return nil
}

// tooltipSpecs converts the config's tooltip section into key=Title specs.
func tooltipSpecs(cfg style.Config) []string {
	specs := make([]string, 0, len(cfg.Tooltip.Fields))
	for _, field := range cfg.Tooltip.Fields {
		if title, ok := cfg.Tooltip.Titles[field]; ok {
			specs = append(specs, field+"="+title)
			continue
		}
		specs = append(specs, field)
	}
	return specs
}

// runRender executes the full pipeline and writes the artifacts.
func (c *CLI) runRender(ctx context.Context, input string, opts pipeline.Options, output string, noCache, interactive bool) error {
	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Input = input
	opts.Logger = c.Logger
	if opts.Title == "" {
		opts.Title = strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	}

	if interactive {
		if err := c.pickEncoding(ctx, runner, &opts); err != nil {
			return err
		}
	}

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %s...", filepath.Base(input)))
	spinner.Start()

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		spinner.StopWithError("Render failed")
		return fmt.Errorf("render: %w", err)
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	if err := writeArtifacts(result.Artifacts, opts.Formats, input, output); err != nil {
		return err
	}

	printSuccess("Render complete")
	for _, format := range opts.Formats {
		printFile(outputPathFor(output, input, format, len(opts.Formats) > 1))
	}
	printStats(result.Stats.NodeCount, result.Stats.EdgeCount, result.Stats.LabelCount, result.CacheInfo.RenderHit)

	return nil
}

// pickEncoding runs the interactive attribute picker and stores the chosen
// size and color attributes on opts.
func (c *CLI) pickEncoding(ctx context.Context, runner *pipeline.Runner, opts *pipeline.Options) error {
	elements, err := runner.Decode(ctx, *opts)
	if err != nil {
		return fmt.Errorf("load %s: %w", opts.Input, err)
	}

	sizeKey, err := pickAttribute("Select the size attribute", numericAttributes(elements))
	if err != nil {
		return err
	}
	colorKey, err := pickAttribute("Select the color attribute", stringAttributes(elements))
	if err != nil {
		return err
	}

	if sizeKey != "" {
		opts.SizeKey = sizeKey
	}
	if colorKey != "" {
		opts.ColorKey = colorKey
	}
	return nil
}

// outputPathFor derives the output path for one format.
// Single format: use output as-is, or <input base>.<format>.
// Multiple formats: output (or input) becomes a base path, format appended.
func outputPathFor(output, input, format string, multi bool) string {
	if !multi && output != "" {
		return output
	}
	base := output
	if base == "" {
		base = strings.TrimSuffix(input, filepath.Ext(input))
	} else if ext := filepath.Ext(base); ext != "" {
		base = strings.TrimSuffix(base, ext)
	}
	return base + "." + format
}

// writeArtifacts writes each rendered format to its output path.
func writeArtifacts(artifacts map[string][]byte, formats []string, input, output string) error {
	multi := len(formats) > 1
	for _, format := range formats {
		data, ok := artifacts[format]
		if !ok {
			continue
		}
		path := outputPathFor(output, input, format, multi)
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
	}
	return nil
}
