package cli

import (
	"context"
	"fmt"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/graphlens/graphlens/pkg/graph"
	"github.com/graphlens/graphlens/pkg/pipeline"
	"github.com/graphlens/graphlens/pkg/style"
)

// inspectCommand creates the inspect command for summarizing a graph.
func (c *CLI) inspectCommand() *cobra.Command {
	var (
		sizeKey  string
		colorKey string
	)

	cmd := &cobra.Command{
		Use:   "inspect [graph.gexf|elements.json]",
		Short: "Summarize a graph and its derived visual encoding",
		Long: `Summarize a graph and its derived visual encoding.

The inspect command reads a graph file and prints node and edge counts, the
weight range used for size scaling, and the group labels with their assigned
colors, without rendering anything.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runInspect(cmd.Context(), args[0], sizeKey, colorKey)
		},
	}

	cmd.Flags().StringVar(&sizeKey, "size-key", "", "node attribute holding the size weight")
	cmd.Flags().StringVar(&colorKey, "color-key", "", "node attribute holding the group label")

	return cmd
}

// runInspect decodes the input, derives the encoding, and prints a summary.
func (c *CLI) runInspect(ctx context.Context, input, sizeKey, colorKey string) error {
	runner := pipeline.NewRunner(nil, c.Logger)
	defer runner.Close()

	opts := pipeline.Options{Input: input, SizeKey: sizeKey, ColorKey: colorKey}
	elements, err := runner.Decode(ctx, opts)
	if err != nil {
		return fmt.Errorf("inspect %s: %w", input, err)
	}
	enc := runner.Encode(ctx, elements, opts)

	nodes := graph.Nodes(elements)
	edges := graph.Edges(elements)

	fmt.Println(StyleTitle.Render(input))
	printDetail("%d nodes, %d edges", len(nodes), len(edges))
	printDetail("size: %s in [%g, %g] → [%g, %g] px",
		enc.SizeKey, enc.Range.Min, enc.Range.Max, enc.Scale.MinSize, enc.Scale.MaxSize)
	printDetail("color: %s, %d groups", enc.ColorKey, len(enc.Colors.Labels))
	printNewline()

	if len(enc.Colors.Labels) > 0 {
		fmt.Println(groupTable(elements, enc.ColorKey, enc.Colors.Labels, enc.Colors.Colors))
	}

	return nil
}

// groupTable renders group labels, node counts, and assigned colors.
func groupTable(elements []graph.Element, colorKey string, labels []string, colors map[string]string) string {
	// Bucket unlabeled nodes the same way color assignment does.
	counts := make(map[string]int, len(labels))
	for _, el := range graph.Nodes(elements) {
		counts[el.String(colorKey, style.UnknownLabel)]++
	}

	// Largest groups first; ties keep first-occurrence order.
	ordered := make([]string, len(labels))
	copy(ordered, labels)
	sort.SliceStable(ordered, func(i, j int) bool {
		return counts[ordered[i]] > counts[ordered[j]]
	})

	rows := make([][]string, 0, len(ordered))
	for _, label := range ordered {
		color := colors[label]
		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render("■")
		rows = append(rows, []string{swatch, label, fmt.Sprintf("%d", counts[label]), color})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Group", "Nodes", "Color").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			return lipgloss.NewStyle().Padding(0, 1)
		}).
		String()
}
