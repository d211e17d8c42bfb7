package cli

import (
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/graphlens/graphlens/pkg/graph"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// AttributeListModel - Interactive attribute selection
// =============================================================================

// AttributeItem is one selectable node attribute with a small usage summary.
type AttributeItem struct {
	Key   string
	Count int // nodes carrying the attribute
}

// AttributeListModel is the bubbletea model for interactive attribute selection.
type AttributeListModel struct {
	Title    string
	Items    []AttributeItem
	Cursor   int
	Selected string
	Aborted  bool
	Height   int
	Offset   int
}

// NewAttributeListModel creates a new attribute list model.
func NewAttributeListModel(title string, items []AttributeItem) AttributeListModel {
	return AttributeListModel{
		Title:  title,
		Items:  items,
		Cursor: 0,
		Height: 15,
		Offset: 0,
	}
}

func (m AttributeListModel) Init() tea.Cmd {
	return nil
}

func (m AttributeListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.Aborted = true
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Items)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			if len(m.Items) > 0 {
				m.Selected = m.Items[m.Cursor].Key
			}
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m AttributeListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(m.Title) + "\n\n")

	end := m.Offset + m.Height
	if end > len(m.Items) {
		end = len(m.Items)
	}
	for i := m.Offset; i < end; i++ {
		item := m.Items[i]
		line := fmt.Sprintf("%s %s", item.Key, listDimStyle.Render(fmt.Sprintf("(%d nodes)", item.Count)))
		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render("> "+line) + "\n")
		} else {
			b.WriteString(listNormalStyle.Render("  "+line) + "\n")
		}
	}

	b.WriteString("\n" + listDimStyle.Render("↑/↓ move · enter select · esc keep default"))
	return b.String()
}

// pickAttribute runs the interactive picker and returns the chosen key.
// Returns an empty key when the user aborts or no attributes are available.
func pickAttribute(title string, items []AttributeItem) (string, error) {
	if len(items) == 0 {
		return "", nil
	}

	program := tea.NewProgram(NewAttributeListModel(title, items))
	final, err := program.Run()
	if err != nil {
		return "", fmt.Errorf("attribute picker: %w", err)
	}

	model, ok := final.(AttributeListModel)
	if !ok || model.Aborted {
		return "", nil
	}
	return model.Selected, nil
}

// =============================================================================
// Attribute Discovery
// =============================================================================

// numericAttributes lists node attributes with numeric values, most common first.
func numericAttributes(elements []graph.Element) []AttributeItem {
	return collectAttributes(elements, func(el graph.Element, key string) bool {
		_, ok := el.Number(key)
		return ok
	})
}

// stringAttributes lists node attributes with non-empty string values, most common first.
func stringAttributes(elements []graph.Element) []AttributeItem {
	return collectAttributes(elements, func(el graph.Element, key string) bool {
		return el.String(key, "") != ""
	})
}

func collectAttributes(elements []graph.Element, usable func(graph.Element, string) bool) []AttributeItem {
	counts := make(map[string]int)
	for _, el := range graph.Nodes(elements) {
		for key := range el.Data {
			if key == graph.AttrID {
				continue
			}
			if usable(el, key) {
				counts[key]++
			}
		}
	}

	items := make([]AttributeItem, 0, len(counts))
	for key, count := range counts {
		items = append(items, AttributeItem{Key: key, Count: count})
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Count != items[j].Count {
			return items[i].Count > items[j].Count
		}
		return items[i].Key < items[j].Key
	})
	return items
}
