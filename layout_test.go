package flow

import (
	"reflect"
	"testing"
)

func TestPlace(t *testing.T) {
	t.Run("single row", func(t *testing.T) {
		sizes := []Size{{40, 1}, {40, 1}}
		got := Place(sizes, 0, 100)
		want := []Point{{0, 0}, {40, 0}}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("breaks before third item", func(t *testing.T) {
		// 40+40 fits in 100, 40+40+40 does not.
		sizes := []Size{{40, 1}, {40, 1}, {40, 1}}
		got := Place(sizes, 0, 100)
		want := []Point{{0, 0}, {40, 0}, {0, 1}}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("spacing pads every side", func(t *testing.T) {
		// 2-wide items padded by 1 become 4-wide boxes; two fit in 10,
		// the third wraps and lands one padded height (3) down.
		sizes := []Size{{2, 1}, {2, 1}, {2, 1}}
		got := Place(sizes, 1, 10)
		want := []Point{{0, 0}, {4, 0}, {0, 3}}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("exact fit does not wrap", func(t *testing.T) {
		sizes := []Size{{5, 1}, {5, 1}}
		got := Place(sizes, 0, 10)
		want := []Point{{0, 0}, {5, 0}}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("wrap advances by last item height", func(t *testing.T) {
		// The row is closed by the 2-tall item, so the next row starts
		// 2 down, not at the row's tallest (3).
		sizes := []Size{{4, 3}, {4, 2}, {4, 1}}
		got := Place(sizes, 0, 8)
		want := []Point{{0, 0}, {4, 0}, {0, 2}}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("empty input", func(t *testing.T) {
		got := Place(nil, 1, 100)
		if len(got) != 0 {
			t.Errorf("expected no offsets, got %v", got)
		}
	})

	t.Run("zero width puts one item per row", func(t *testing.T) {
		sizes := []Size{{2, 1}, {2, 1}, {2, 1}}
		got := Place(sizes, 0, 0)
		want := []Point{{0, 0}, {0, 1}, {0, 2}}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("item wider than container", func(t *testing.T) {
		// The oversized item still gets placed, overflowing to the
		// right; the next item starts a fresh row below it.
		sizes := []Size{{10, 1}, {2, 1}}
		got := Place(sizes, 0, 5)
		want := []Point{{0, 0}, {0, 1}}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("every item is placed exactly once", func(t *testing.T) {
		sizes := make([]Size, 17)
		for i := range sizes {
			sizes[i] = Size{Width: 3 + i%5, Height: 1}
		}
		got := Place(sizes, 1, 24)
		if len(got) != len(sizes) {
			t.Fatalf("expected %d offsets, got %d", len(sizes), len(got))
		}
		seen := map[Point]int{}
		for _, p := range got {
			seen[p]++
		}
		for p, n := range seen {
			if n > 1 {
				t.Errorf("offset %v assigned %d times", p, n)
			}
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		sizes := []Size{{7, 1}, {3, 2}, {9, 1}, {4, 1}, {12, 3}}
		first := Place(sizes, 2, 30)
		second := Place(sizes, 2, 30)
		if !reflect.DeepEqual(first, second) {
			t.Errorf("placement drifted: %v vs %v", first, second)
		}
	})

	t.Run("negative spacing shrinks boxes", func(t *testing.T) {
		// Not guarded; the boxes just overlap.
		sizes := []Size{{4, 1}, {4, 1}}
		got := Place(sizes, -1, 10)
		want := []Point{{0, 0}, {2, 0}}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})
}

func TestContentSize(t *testing.T) {
	t.Run("bounding box covers padded items", func(t *testing.T) {
		sizes := []Size{{2, 1}, {2, 1}, {2, 1}}
		got := ContentSize(sizes, 1, 10)
		want := Size{Width: 8, Height: 6}
		if got != want {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("three uniform rows", func(t *testing.T) {
		// One 6-wide item per row at width 10: total height is
		// 3 * (h + 2*spacing).
		sizes := []Size{{6, 1}, {6, 1}, {6, 1}}
		got := ContentSize(sizes, 1, 10)
		if got.Height != 9 {
			t.Errorf("expected height 9, got %d", got.Height)
		}
		if got.Width != 8 {
			t.Errorf("expected width 8, got %d", got.Width)
		}
	})

	t.Run("empty is zero", func(t *testing.T) {
		got := ContentSize(nil, 4, 100)
		if got != (Size{}) {
			t.Errorf("expected zero size, got %v", got)
		}
	})
}
