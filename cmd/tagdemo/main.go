// Command tagdemo renders an interactive tag cloud: chips wrap to the
// terminal width and rewrap live as tags are added, removed, or the
// window is resized.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	flow "github.com/kungfusheep/flow"
)

var tagNames = []string{
	"go", "tui", "layout", "flow", "wrap", "chips", "lipgloss",
	"bubbletea", "terminal", "render", "observable", "binding",
	"spacing", "intrinsic", "bounded", "probe", "measure",
}

var palette = []lipgloss.Color{
	lipgloss.Color("63"), lipgloss.Color("205"), lipgloss.Color("86"),
	lipgloss.Color("214"), lipgloss.Color("203"), lipgloss.Color("111"),
}

func chip(i int, label string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("230")).
		Background(palette[i%len(palette)]).
		Padding(0, 1).
		Render(label)
}

type app struct {
	cloud flow.Model
	count int
}

func newApp(width int) app {
	a := app{count: 5}
	a.cloud = flow.NewModel().Spacing(1).Width(width)
	return a.retag()
}

func (a app) retag() app {
	items := make([]string, a.count)
	for i := range items {
		items[i] = chip(i, tagNames[i%len(tagNames)])
	}
	a.cloud = a.cloud.SetItems(items...)
	return a
}

func (a app) Init() tea.Cmd {
	return nil
}

func (a app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return a, tea.Quit
		case "a", "+":
			a.count++
			return a.retag(), nil
		case "d", "-", "backspace":
			if a.count > 0 {
				a.count--
			}
			return a.retag(), nil
		}
	case tea.WindowSizeMsg:
		next, _ := a.cloud.Update(msg)
		a.cloud = next.(flow.Model)
		return a, nil
	}
	return a, nil
}

func (a app) View() string {
	help := lipgloss.NewStyle().Faint(true).
		Render("a: add tag   d: drop tag   q: quit")
	return a.cloud.View() + "\n" + help + "\n"
}

func main() {
	// Seed the width so the first frame wraps correctly even before
	// the program delivers a WindowSizeMsg.
	width := 80
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		width = w
	}

	if _, err := tea.NewProgram(newApp(width)).Run(); err != nil {
		fmt.Fprintln(os.Stderr, "tagdemo:", err)
		os.Exit(1)
	}
}
