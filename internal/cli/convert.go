package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/graphlens/graphlens/pkg/graph"
	"github.com/graphlens/graphlens/pkg/pipeline"
)

// convertCommand creates the convert command for producing element JSON.
func (c *CLI) convertCommand() *cobra.Command {
	var (
		output      string
		displayAttr string
	)

	cmd := &cobra.Command{
		Use:   "convert [graph.gexf]",
		Short: "Convert a graph file into element JSON",
		Long: `Convert a graph file into the element JSON format.

The convert command reads a GEXF graph (or an existing element JSON file),
prepares the visual attributes that the rendering engines read, and writes
the result as an element JSON file.

Use 'render' to go directly from a graph file to visual output.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runConvert(cmd.Context(), args[0], output, displayAttr)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.elements.json)")
	cmd.Flags().StringVar(&displayAttr, "display-attr", "", "node attribute used for display labels (default: name)")

	return cmd
}

// runConvert decodes the input and writes prepared elements.
func (c *CLI) runConvert(ctx context.Context, input, output, displayAttr string) error {
	runner := pipeline.NewRunner(nil, c.Logger)
	defer runner.Close()

	elements, err := runner.Decode(ctx, pipeline.Options{
		Input:       input,
		DisplayAttr: displayAttr,
	})
	if err != nil {
		return fmt.Errorf("convert %s: %w", input, err)
	}

	outputPath := output
	if outputPath == "" {
		base := strings.TrimSuffix(input, filepath.Ext(input))
		outputPath = base + ".elements.json"
	}

	if err := graph.WriteElementsFile(elements, outputPath); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}

	printSuccess("Conversion complete")
	printFile(outputPath)
	printStats(len(graph.Nodes(elements)), len(graph.Edges(elements)), 0, false)
	printNewline()
	printNextStep("Render", "graphlens render "+outputPath)

	return nil
}
