package parallax

import "testing"

func TestEvents_EmitInOrder(t *testing.T) {
	e := NewEvents[ScrollEvent]()
	var got []string

	e.Subscribe(func(ev ScrollEvent) { got = append(got, "first") })
	e.Subscribe(nil)
	e.Subscribe(func(ev ScrollEvent) { got = append(got, "second") })

	e.Emit(ScrollEvent{OffsetY: 3})
	if len(got) != 2 || got[0] != "first" || got[1] != "second" {
		t.Errorf("listeners ran as %v, want [first second]", got)
	}
}

func TestEvents_EmitWithoutListeners(t *testing.T) {
	e := NewEvents[int]()
	e.Emit(1)
}
