package flow

import "testing"

func TestState(t *testing.T) {
	t.Run("get and set", func(t *testing.T) {
		s := NewState(10)
		if s.Get() != 10 {
			t.Errorf("expected 10, got %d", s.Get())
		}
		s.Set(20)
		if s.Get() != 20 {
			t.Errorf("expected 20, got %d", s.Get())
		}
	})

	t.Run("bind fires on change", func(t *testing.T) {
		s := NewState(0)
		var got []int
		s.Bind(func(v int) { got = append(got, v) })

		s.Set(1)
		s.Set(2)

		if len(got) != 2 || got[0] != 1 || got[1] != 2 {
			t.Errorf("expected [1 2], got %v", got)
		}
	})

	t.Run("equal value is a no-op", func(t *testing.T) {
		s := NewState(5)
		calls := 0
		s.Bind(func(int) { calls++ })

		s.Set(5)
		s.Set(5)

		if calls != 0 {
			t.Errorf("expected no notifications, got %d", calls)
		}
	})

	t.Run("unbind stops notifications", func(t *testing.T) {
		s := NewState(0)
		calls := 0
		unbind := s.Bind(func(int) { calls++ })

		s.Set(1)
		unbind()
		s.Set(2)

		if calls != 1 {
			t.Errorf("expected 1 call, got %d", calls)
		}
	})

	t.Run("bindings fire in registration order", func(t *testing.T) {
		s := NewState(0)
		var order []string
		s.Bind(func(int) { order = append(order, "first") })
		s.Bind(func(int) { order = append(order, "second") })

		s.Set(1)

		if len(order) != 2 || order[0] != "first" || order[1] != "second" {
			t.Errorf("unexpected order %v", order)
		}
	})
}
