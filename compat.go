package flow

// Compatibility shims for the pre-rename API. Pure aliases: every name
// here maps 1:1 onto the current surface with no behavioral difference.
// Kept for one migration window, then removed. Nothing in this file is
// used by the core.

// Deprecated: use Bounded.
const ModeScrollable = Bounded

// Deprecated: use Intrinsic.
const ModeVStack = Intrinsic

// Deprecated: use State.
type Binding[T comparable] = State[T]

// Deprecated: use NewState.
func NewBinding[T comparable](initial T) *Binding[T] {
	return NewState(initial)
}

// FlowStack is the old constructor: gridSize was renamed to spacing and
// content to render.
//
// Deprecated: use NewFlow followed by Spacing.
func FlowStack[T any](mode Mode, data Collection[T], gridSize int, content func(T) Component) *Flow[T] {
	return NewFlow(mode, data, content).Spacing(gridSize)
}

// GridSize is the old name for Spacing.
//
// Deprecated: use Spacing.
func (f *Flow[T]) GridSize(n int) *Flow[T] {
	return f.Spacing(n)
}

// TotalHeight is the old name for HeightState.
//
// Deprecated: use HeightState.
func (f *Flow[T]) TotalHeight() *State[int] {
	return f.HeightState()
}

// WithBinding is the old name for BindHeight.
//
// Deprecated: use BindHeight.
func (f *Flow[T]) WithBinding(s *State[int]) *Flow[T] {
	return f.BindHeight(s)
}
