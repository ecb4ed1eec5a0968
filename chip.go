package flow

import (
	"fmt"

	"github.com/mattn/go-runewidth"
)

// ChipComponent is a tag-like element: a label with one cell of
// horizontal padding, drawn inverse by default or inside a rounded
// border. This is the kind of child a Flow exists to arrange.
type ChipComponent struct {
	Base
	label    string
	bordered bool
	border   BorderStyle
}

// Chip creates a new chip with the given label.
func Chip(label string) *ChipComponent {
	c := &ChipComponent{label: label}
	c.style = DefaultStyle().Inverse()
	c.updateSize()
	return c
}

// Chipf creates a chip from a printf-style format.
func Chipf(format string, args ...any) *ChipComponent {
	return Chip(fmt.Sprintf(format, args...))
}

// updateSize recalculates the natural size from the label.
func (c *ChipComponent) updateSize() {
	c.minW = runewidth.StringWidth(c.label) + 2
	c.minH = 1
	if c.bordered {
		c.minH = 3
	}
}

// SetLabel updates the chip's label.
func (c *ChipComponent) SetLabel(label string) *ChipComponent {
	c.label = label
	c.updateSize()
	return c
}

// Label returns the chip's label.
func (c *ChipComponent) Label() string {
	return c.label
}

// Border draws the chip inside the given border instead of inverse.
func (c *ChipComponent) Border(b BorderStyle) *ChipComponent {
	c.bordered = true
	c.border = b
	c.style = DefaultStyle()
	c.updateSize()
	return c
}

// Color sets the foreground color.
func (c *ChipComponent) Color(col Color) *ChipComponent {
	c.style.FG = col
	return c
}

// Bg sets the background color.
func (c *ChipComponent) Bg(col Color) *ChipComponent {
	c.style.BG = col
	return c
}

// Style sets the complete style.
func (c *ChipComponent) Style(s Style) *ChipComponent {
	c.style = s
	return c
}

// SetConstraints implements Component. Chips keep their natural size.
func (c *ChipComponent) SetConstraints(width, height int) {
	c.Base.SetConstraints(width, height)
	c.width = c.minW
	c.height = c.minH
}

// Render implements Component.
func (c *ChipComponent) Render(buf *Buffer, x, y int) {
	if c.bordered {
		buf.DrawBorder(x, y, c.width, c.height, c.border, c.style)
		buf.WriteStringClipped(x+1, y+1, c.label, c.style, c.width-2)
		return
	}
	buf.FillRect(x, y, c.width, c.height, NewCell(' ', c.style))
	buf.WriteStringClipped(x+1, y, c.label, c.style, c.width-2)
}
