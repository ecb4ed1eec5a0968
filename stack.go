package flow

import "sync"

// Direction specifies the layout direction.
type Direction int

const (
	Vertical Direction = iota
	Horizontal
)

// StackComponent arranges children in a line (vertical or horizontal).
// A vertical stack is the usual host for an intrinsic flow; a bounded
// flow normally sits inside a scrolling ancestor instead.
type StackComponent struct {
	BaseContainer
	direction Direction

	// Optional decoration
	border     *BorderStyle
	background *Color
}

// Pool for StackComponent reuse
var stackPool = sync.Pool{
	New: func() any { return &StackComponent{} },
}

// VStack creates a vertical stack from children.
func VStack(children ...Component) *StackComponent {
	s := stackPool.Get().(*StackComponent)
	s.Reset()
	s.direction = Vertical
	s.style = DefaultStyle()
	s.Add(children...)
	return s
}

// HStack creates a horizontal stack from children.
func HStack(children ...Component) *StackComponent {
	s := stackPool.Get().(*StackComponent)
	s.Reset()
	s.direction = Horizontal
	s.style = DefaultStyle()
	s.Add(children...)
	return s
}

// Reset clears the component for reuse.
func (s *StackComponent) Reset() {
	s.children = s.children[:0] // Keep capacity
	s.Base = Base{}
	s.gap = 0
	s.padding = 0
	s.direction = Vertical
	s.border = nil
	s.background = nil
}

// Add adds children to the stack. Returns self for chaining.
func (s *StackComponent) Add(children ...Component) Container {
	for _, child := range children {
		child.SetParent(s)
		s.AddChild(child)
	}
	return s
}

// SetConstraints implements Component.
func (s *StackComponent) SetConstraints(width, height int) {
	s.Base.SetConstraints(width, height)

	// Account for padding and border
	innerW := width - s.padding*2
	innerH := height - s.padding*2
	if s.border != nil {
		innerW -= 2
		innerH -= 2
	}

	for _, child := range s.children {
		w, h := child.MinSize()
		if s.direction == Vertical {
			// Vertical children get the full inner width.
			child.SetConstraints(innerW, h)
		} else {
			child.SetConstraints(w, innerH)
		}
	}

	s.calculateSize()
}

// calculateSize determines our size based on children.
func (s *StackComponent) calculateSize() {
	var totalMain, maxCross int

	for _, child := range s.children {
		w, h := child.Size()
		if s.direction == Vertical {
			totalMain += h
			if w > maxCross {
				maxCross = w
			}
		} else {
			totalMain += w
			if h > maxCross {
				maxCross = h
			}
		}
	}

	// Add gaps
	if len(s.children) > 1 {
		totalMain += s.gap * (len(s.children) - 1)
	}

	// Apply padding and border
	extra := s.padding * 2
	if s.border != nil {
		extra += 2
	}

	if s.direction == Vertical {
		s.width = maxCross + extra
		s.height = totalMain + extra
	} else {
		s.width = totalMain + extra
		s.height = maxCross + extra
	}

	s.minW = s.width
	s.minH = s.height
}

// MinSize implements Component.
func (s *StackComponent) MinSize() (int, int) {
	var totalMain, maxCross int

	for _, child := range s.children {
		w, h := child.MinSize()
		if s.direction == Vertical {
			totalMain += h
			if w > maxCross {
				maxCross = w
			}
		} else {
			totalMain += w
			if h > maxCross {
				maxCross = h
			}
		}
	}

	if len(s.children) > 1 {
		totalMain += s.gap * (len(s.children) - 1)
	}

	extra := s.padding * 2
	if s.border != nil {
		extra += 2
	}

	if s.direction == Vertical {
		return maxCross + extra, totalMain + extra
	}
	return totalMain + extra, maxCross + extra
}

// Render implements Component.
func (s *StackComponent) Render(buf *Buffer, x, y int) {
	// Draw background
	if s.background != nil {
		cell := NewCell(' ', DefaultStyle().Background(*s.background))
		buf.FillRect(x, y, s.width, s.height, cell)
	}

	// Draw border
	if s.border != nil {
		buf.DrawBorder(x, y, s.width, s.height, *s.border, s.style)
	}

	// Calculate content area
	contentX := x + s.padding
	contentY := y + s.padding
	if s.border != nil {
		contentX++
		contentY++
	}

	// Render children
	pos := 0
	for _, child := range s.children {
		childW, childH := child.Size()

		var childX, childY int
		if s.direction == Vertical {
			childX = contentX
			childY = contentY + pos
			pos += childH + s.gap
		} else {
			childX = contentX + pos
			childY = contentY
			pos += childW + s.gap
		}

		child.Render(buf, childX, childY)
	}
}

// --- Fluent API ---

// Gap sets the gap between children.
func (s *StackComponent) Gap(g int) *StackComponent {
	s.gap = g
	return s
}

// Padding sets the padding inside the stack.
func (s *StackComponent) Padding(p int) *StackComponent {
	s.padding = p
	return s
}

// Border adds a border around the stack.
func (s *StackComponent) Border(b BorderStyle) *StackComponent {
	s.border = &b
	return s
}

// Background sets the background color.
func (s *StackComponent) Background(c Color) *StackComponent {
	s.background = &c
	return s
}

// Ref stores a reference to this component.
func (s *StackComponent) Ref(ref **StackComponent) *StackComponent {
	*ref = s
	return s
}

// --- Slice helpers ---

// Map transforms a slice into components.
func Map[T any](items []T, fn func(T) Component) []Component {
	out := make([]Component, len(items))
	for i, item := range items {
		out[i] = fn(item)
	}
	return out
}

// MapIndex transforms a slice into components with index.
func MapIndex[T any](items []T, fn func(int, T) Component) []Component {
	out := make([]Component, len(items))
	for i, item := range items {
		out[i] = fn(i, item)
	}
	return out
}
