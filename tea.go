package flow

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Model presents a flow of pre-styled string items as a tea.Model, for
// programs built on Bubble Tea rather than the cell-buffer component
// tree. Items are measured with lipgloss (ANSI-aware), padded with the
// flow spacing, and wrapped with the same placement core as Flow.
// The zero value is not usable; construct with NewModel.
type Model struct {
	items     []string
	spacing   int
	width     int
	maxHeight int
}

// NewModel creates a model over the given items. The width is learned
// from the first tea.WindowSizeMsg; until then everything lands on its
// own row, which self-corrects as soon as the real width arrives.
func NewModel(items ...string) Model {
	return Model{
		items:   items,
		spacing: DefaultSpacing,
	}
}

// Spacing returns a copy of the model with the given item padding.
func (m Model) Spacing(n int) Model {
	m.spacing = n
	return m
}

// MaxHeight returns a copy of the model capped at n rows of output.
func (m Model) MaxHeight(n int) Model {
	m.maxHeight = n
	return m
}

// Width returns a copy of the model with an explicit width, for use
// outside a running program (e.g. rendering to a plain writer).
func (m Model) Width(n int) Model {
	m.width = n
	return m
}

// SetItems returns a copy of the model with the items replaced.
func (m Model) SetItems(items ...string) Model {
	m.items = items
	return m
}

// Append returns a copy of the model with items added at the end.
func (m Model) Append(items ...string) Model {
	m.items = append(m.items[:len(m.items):len(m.items)], items...)
	return m
}

// Items returns the current items.
func (m Model) Items() []string {
	return m.items
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model. Only the window size is of interest;
// everything else is the host program's business.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = ws.Width
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	out := Wrap(m.items, m.spacing, m.width)
	// A scrolling ancestor owns overflow; in string form the best a
	// capped model can do is truncate.
	if m.maxHeight > 0 && lipgloss.Height(out) > m.maxHeight {
		lines := strings.Split(out, "\n")
		out = strings.Join(lines[:m.maxHeight], "\n")
	}
	return out
}

// Wrap lays the items out with the flow placement and joins them into
// one string. Each item is padded on all sides by spacing, rows are
// split exactly where Place breaks them, and rows stack top to bottom.
func Wrap(items []string, spacing, width int) string {
	if len(items) == 0 {
		return ""
	}

	sizes := make([]Size, len(items))
	for i, item := range items {
		sizes[i] = Size{Width: lipgloss.Width(item), Height: lipgloss.Height(item)}
	}
	offsets := Place(sizes, spacing, width)

	pad := lipgloss.NewStyle().Padding(spacing)
	var rows []string
	var row []string
	for i, item := range items {
		if i > 0 && offsets[i].Y > offsets[i-1].Y {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row = row[:0]
		}
		row = append(row, pad.Render(item))
	}
	rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
