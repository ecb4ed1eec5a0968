package flow

// Placement core for the wrapping layout. Pure functions only: given the
// measured item sizes, a spacing value and the available width, compute
// where every item goes. Nothing in this file touches components, state
// or the buffer, which keeps the row-break arithmetic independently
// testable.

// DefaultSpacing is the spacing applied when none is configured.
const DefaultSpacing = 4

// Size is a width/height pair in cells.
type Size struct {
	Width  int
	Height int
}

// Point is an x/y offset in cells, relative to the container's
// top-left anchor.
type Point struct {
	X int
	Y int
}

// PlacementState is the transient cursor used during a single placement
// pass: the running horizontal offset, the running vertical offset, and
// the padded height of the previously placed item. It is reset at the
// start of every pass and never persisted.
type PlacementState struct {
	width      int
	height     int
	lastHeight int
}

// Place computes an offset for each item. Items are placed left to
// right in input order; when the next item's padded box would extend
// past availableWidth, the cursor drops to a new row. spacing is
// applied as symmetric padding around every item, so the box reserved
// for item i is (Width+2*spacing) x (Height+2*spacing) and adjacent
// items end up 2*spacing apart while the container edge gets a single
// spacing. The returned offsets address the padded boxes; add spacing
// to both axes to get the visual position of the item itself.
//
// On wrap the vertical cursor advances by the padded height of the
// last item placed on the row being closed. Placing the final item
// flushes both cursors so no trailing offset leaks into a following
// pass.
//
// Degenerate input degrades instead of failing: an empty slice yields
// an empty result, zero availableWidth puts one item per row, and
// negative spacing shrinks the boxes (a caller error, not guarded).
func Place(sizes []Size, spacing, availableWidth int) []Point {
	offsets := make([]Point, len(sizes))
	var cursor PlacementState

	n := len(sizes)
	for i, size := range sizes {
		w := size.Width + spacing*2
		h := size.Height + spacing*2

		// Row break: the padded box doesn't fit after the running width.
		if cursor.width+w > availableWidth {
			cursor.width = 0
			cursor.height += cursor.lastHeight
		}
		cursor.lastHeight = h

		offsets[i] = Point{X: cursor.width, Y: cursor.height}

		if i == n-1 {
			// Trailing flush.
			cursor.width = 0
			cursor.height = 0
		} else {
			cursor.width += w
		}
	}

	return offsets
}

// ContentSize returns the bounding box of the placement produced by
// Place for the same inputs: the union of all padded item boxes.
func ContentSize(sizes []Size, spacing, availableWidth int) Size {
	offsets := Place(sizes, spacing, availableWidth)

	var bounds Size
	for i, size := range sizes {
		right := offsets[i].X + size.Width + spacing*2
		bottom := offsets[i].Y + size.Height + spacing*2
		if right > bounds.Width {
			bounds.Width = right
		}
		if bottom > bounds.Height {
			bounds.Height = bottom
		}
	}
	return bounds
}
