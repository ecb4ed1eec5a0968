package flow

import "sync"

// SpacerComponent is invisible fixed-size space, useful for separating
// items inside a stack or padding out a flow's host.
type SpacerComponent struct {
	Base
}

// Pool for SpacerComponent reuse
var spacerPool = sync.Pool{
	New: func() any { return &SpacerComponent{} },
}

// Spacer creates a spacer with a fixed size in both dimensions.
func Spacer(size int) *SpacerComponent {
	s := spacerPool.Get().(*SpacerComponent)
	s.Reset()
	s.minW = size
	s.minH = size
	return s
}

// Reset clears the component for reuse.
func (s *SpacerComponent) Reset() {
	*s = SpacerComponent{}
}

// SetConstraints implements Component.
func (s *SpacerComponent) SetConstraints(width, height int) {
	s.Base.SetConstraints(width, height)
	s.width = s.minW
	s.height = s.minH
}

// Render implements Component. Spacers are invisible.
func (s *SpacerComponent) Render(buf *Buffer, x, y int) {}

// --- Fluent API ---

// MinWidth sets the width.
func (s *SpacerComponent) MinWidth(w int) *SpacerComponent {
	s.minW = w
	return s
}

// MinHeight sets the height.
func (s *SpacerComponent) MinHeight(h int) *SpacerComponent {
	s.minH = h
	return s
}
