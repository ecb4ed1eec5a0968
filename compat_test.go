package flow

import (
	"reflect"
	"testing"
)

func TestCompatAliases(t *testing.T) {
	t.Run("mode constants", func(t *testing.T) {
		if ModeScrollable != Bounded {
			t.Error("ModeScrollable should alias Bounded")
		}
		if ModeVStack != Intrinsic {
			t.Error("ModeVStack should alias Intrinsic")
		}
	})

	t.Run("FlowStack matches NewFlow", func(t *testing.T) {
		items := []string{"abcd", "efgh", "ij"}

		old := FlowStack(ModeScrollable, Slice[string](items), 1, render)
		old.SetConstraints(12, 0)

		current := Of(Bounded, items, render).Spacing(1)
		current.SetConstraints(12, 0)

		if !reflect.DeepEqual(old.Offsets(), current.Offsets()) {
			t.Errorf("offsets differ: %v vs %v", old.Offsets(), current.Offsets())
		}
		_, oldH := old.Size()
		_, curH := current.Size()
		if oldH != curH {
			t.Errorf("heights differ: %d vs %d", oldH, curH)
		}
	})

	t.Run("GridSize aliases Spacing", func(t *testing.T) {
		items := []string{"aa", "bb", "cc"}

		old := Of(Bounded, items, render).GridSize(2)
		old.SetConstraints(10, 0)

		current := Of(Bounded, items, render).Spacing(2)
		current.SetConstraints(10, 0)

		if !reflect.DeepEqual(old.Offsets(), current.Offsets()) {
			t.Errorf("offsets differ: %v vs %v", old.Offsets(), current.Offsets())
		}
	})

	t.Run("TotalHeight aliases HeightState", func(t *testing.T) {
		f := Of(Bounded, []string{"a"}, render)
		if f.TotalHeight() != f.HeightState() {
			t.Error("TotalHeight should return the height state")
		}
	})

	t.Run("WithBinding aliases BindHeight", func(t *testing.T) {
		b := NewBinding(0)
		f := Of(Bounded, []string{"abcd"}, render).WithBinding(b)
		f.SetConstraints(40, 0)
		if b.Get() == 0 {
			t.Error("binding should have received the measured height")
		}
	})
}
