// Package flow provides a wrapping "tag cloud" layout component for
// terminal UIs: items are packed left to right and wrap onto a new row
// when the available width runs out, like inline text.
package flow

// Mode selects how a Flow reports its outer height.
type Mode int

const (
	// Bounded flows report a fixed height (the measured content height)
	// and expect to be embedded in a scrolling ancestor.
	Bounded Mode = iota

	// Intrinsic flows size themselves to their content, capped by the
	// measured-height state and any configured maximum.
	Intrinsic
)

// Collection is an ordered, finite, random-access sequence of items.
// Len must be O(1); it is consulted once per layout pass.
type Collection[T any] interface {
	Len() int
	At(i int) T
}

// Slice adapts a plain slice to the Collection interface.
type Slice[T any] []T

// Len returns the number of items.
func (s Slice[T]) Len() int { return len(s) }

// At returns the item at index i.
func (s Slice[T]) At(i int) T { return s[i] }

// Range is a Collection of the integers [From, To).
type Range struct {
	From int
	To   int
}

// Len returns the number of integers in the range.
func (r Range) Len() int {
	if r.To <= r.From {
		return 0
	}
	return r.To - r.From
}

// At returns the i-th integer in the range.
func (r Range) At(i int) int { return r.From + i }

// unbounded is the initial measured height for intrinsic flows.
const unbounded = int(^uint(0) >> 1)

// Flow arranges rendered items left to right, wrapping to a new row
// when the running width would exceed the available width. The item
// values are opaque: the flow only invokes the render function and
// measures the component it returns. The render function must be pure;
// it can be invoked again for the same item on a later pass.
//
// Spacing is applied as symmetric padding around every item, so
// adjacent items sit 2x spacing apart while the container edge gets a
// single spacing. Each child is pinned at its computed offset relative
// to the flow's top-left corner; rows are a product of the offsets, not
// of nested row containers.
type Flow[T any] struct {
	BaseContainer
	mode      Mode
	items     Collection[T]
	render    func(T) Component
	spacing   int
	maxHeight int

	// measured is the height-feedback state: written by the probe,
	// read by Size. Swapped out when the caller binds their own.
	measured *State[int]
	probe    *HeightProbe

	offsets []Point
	stale   bool
}

// NewFlow creates a flow over the given collection. Each item is turned
// into a child component by render during the layout pass.
func NewFlow[T any](mode Mode, items Collection[T], render func(T) Component) *Flow[T] {
	f := &Flow[T]{
		mode:    mode,
		items:   items,
		render:  render,
		spacing: DefaultSpacing,
		stale:   true,
	}
	f.style = DefaultStyle()
	initial := 0
	if mode == Intrinsic {
		initial = unbounded
	}
	f.measured = NewState(initial)
	f.probe = NewHeightProbe(f.measured)
	return f
}

// Of creates a flow over a plain slice.
func Of[T any](mode Mode, items []T, render func(T) Component) *Flow[T] {
	return NewFlow(mode, Slice[T](items), render)
}

// Spacing sets the padding applied around every item. Defaults to
// DefaultSpacing. Negative values are accepted and produce overlapping
// boxes; that is a caller error, not a guarded condition.
func (f *Flow[T]) Spacing(n int) *Flow[T] {
	f.spacing = n
	return f
}

// MaxHeight caps the reported height of an intrinsic flow. Zero means
// no explicit cap.
func (f *Flow[T]) MaxHeight(n int) *Flow[T] {
	f.maxHeight = n
	return f
}

// BindHeight replaces the internal height state with an externally
// owned one, letting the caller observe the measured height or force a
// different value. The current measured value is carried over.
func (f *Flow[T]) BindHeight(s *State[int]) *Flow[T] {
	if s == nil {
		return f
	}
	f.measured = s
	f.probe.Retarget(s)
	return f
}

// HeightState returns the height-feedback state. Bind to it to be
// notified when the packed content height changes.
func (f *Flow[T]) HeightState() *State[int] {
	return f.measured
}

// Ref stores a reference to this flow in the provided pointer.
func (f *Flow[T]) Ref(ref **Flow[T]) *Flow[T] {
	*ref = f
	return f
}

// SetItems replaces the collection and schedules a rebuild on the next
// layout pass.
func (f *Flow[T]) SetItems(items Collection[T]) {
	f.items = items
	f.stale = true
}

// Invalidate schedules a rebuild of the children on the next layout
// pass. Call it after mutating the underlying collection in place.
func (f *Flow[T]) Invalidate() {
	f.stale = true
}

// Offsets returns the padded-box offset of every item from the last
// layout pass, in item order.
func (f *Flow[T]) Offsets() []Point {
	return f.offsets
}

// rebuild regenerates child components from the collection.
func (f *Flow[T]) rebuild() {
	if !f.stale {
		return
	}
	f.BaseContainer.Clear()
	n := f.items.Len()
	for i := 0; i < n; i++ {
		f.AddChild(f.render(f.items.At(i)))
	}
	f.stale = false
}

// SetConstraints implements Component. This is the layout pass: build
// children, measure them, run the placement, feed the bounding box to
// the probe, and size the flow itself.
//
// The measured height is applied within the same pass rather than on a
// scheduled follow-up: the probe's write is change-gated, so reading
// the height state straight back cannot feed another write, and the
// loop still settles at depth one.
func (f *Flow[T]) SetConstraints(width, height int) {
	f.Base.SetConstraints(width, height)
	f.rebuild()

	sizes := make([]Size, len(f.children))
	for i, child := range f.children {
		w, h := child.MinSize()
		// Children take their natural size; the flow positions them.
		child.SetConstraints(w, h)
		sizes[i] = Size{Width: w, Height: h}
	}

	f.offsets = Place(sizes, f.spacing, width)
	content := ContentSize(sizes, f.spacing, width)

	// Measurement feedback. The probe only writes when the height
	// actually changed, so a settled layout produces no notification.
	f.probe.Observe(content)

	f.width = width
	f.height = f.outerHeight(content.Height)
	f.minW = content.Width
	f.minH = f.height
}

// outerHeight applies the mode's sizing rule to the measured state.
func (f *Flow[T]) outerHeight(contentHeight int) int {
	switch f.mode {
	case Bounded:
		// Fixed frame: exactly the height the probe reported.
		return f.measured.Get()
	default:
		// Intrinsic: natural height capped by the height state and any
		// explicit maximum.
		h := contentHeight
		if m := f.measured.Get(); m < h {
			h = m
		}
		if f.maxHeight > 0 && f.maxHeight < h {
			h = f.maxHeight
		}
		return h
	}
}

// MinSize implements Component. Meaningful only after a layout pass;
// a flow cannot know its height until it has been given a width.
func (f *Flow[T]) MinSize() (int, int) {
	return f.minW, f.minH
}

// Render implements Component. Every child is drawn at its computed
// offset from the shared top-left anchor, inset by the spacing so the
// padded boxes stay aligned with the placement math.
func (f *Flow[T]) Render(buf *Buffer, x, y int) {
	for i, child := range f.children {
		if i >= len(f.offsets) {
			break
		}
		off := f.offsets[i]
		child.Render(buf, x+off.X+f.spacing, y+off.Y+f.spacing)
	}
}
