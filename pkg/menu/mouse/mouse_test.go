package mouse

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func TestRectContains(t *testing.T) {
	r := Rect{X: 2, Y: 1, W: 20, H: 1}

	cases := []struct {
		x, y     int
		expected bool
	}{
		{2, 1, true},   // Left edge
		{21, 1, true},  // Right edge (exclusive width)
		{22, 1, false}, // Just right
		{1, 1, false},  // Just left
		{5, 0, false},  // Row above
		{5, 2, false},  // Row below (exclusive height)
	}

	for _, tc := range cases {
		got := r.Contains(tc.x, tc.y)
		if got != tc.expected {
			t.Errorf("Rect(%+v).Contains(%d, %d) = %v, want %v", r, tc.x, tc.y, got, tc.expected)
		}
	}
}

func TestHitMapRows(t *testing.T) {
	hm := NewHitMap()
	hm.AddRect("ann", 0, 0, 10, 1, "ann")
	hm.AddRect("bob", 0, 1, 10, 1, "bob")

	r := hm.Test(3, 1)
	if r == nil || r.ID != "bob" || r.Data != "bob" {
		t.Errorf("expected hit on bob, got %v", r)
	}
	if r := hm.Test(3, 2); r != nil {
		t.Errorf("expected no hit below list, got %v", r)
	}
}

func TestHitMapPriority(t *testing.T) {
	hm := NewHitMap()
	hm.AddRect("list", 0, 0, 20, 5, nil)
	hm.AddRect("row", 0, 2, 20, 1, nil)

	if r := hm.Test(5, 2); r == nil || r.ID != "row" {
		t.Errorf("expected hit on row, got %v", r)
	}
	if r := hm.Test(5, 0); r == nil || r.ID != "list" {
		t.Errorf("expected hit on list, got %v", r)
	}
}

func TestHitMapClear(t *testing.T) {
	hm := NewHitMap()
	hm.AddRect("a", 0, 0, 5, 1, nil)
	hm.AddRect("b", 0, 1, 5, 1, nil)
	if r := hm.Test(1, 1); r == nil || r.ID != "b" {
		t.Errorf("expected hit on b, got %v", r)
	}
	hm.Clear()
	for _, y := range []int{0, 1} {
		if r := hm.Test(1, y); r != nil {
			t.Errorf("expected no hit after clear, got %v", r)
		}
	}
}

// fakeClock returns a handler clock advancing by step on every call.
func fakeClock(step time.Duration) func() time.Time {
	now := time.Unix(0, 0)
	return func() time.Time {
		now = now.Add(step)
		return now
	}
}

func TestHandlerDoubleClick(t *testing.T) {
	h := NewHandler()
	h.now = fakeClock(100 * time.Millisecond)
	h.HitMap.AddRect("button", 10, 10, 30, 10, nil)

	if res := h.HandleClick(20, 15); res.IsDoubleClick {
		t.Error("first click should not be double-click")
	}
	if res := h.HandleClick(20, 15); !res.IsDoubleClick {
		t.Error("second quick click should be double-click")
	}
	if res := h.HandleClick(20, 15); res.IsDoubleClick {
		t.Error("third click should not be double-click (reset after double)")
	}

	if res := h.HandleClick(5, 5); res.Region != nil {
		t.Errorf("expected no region on miss, got %v", res.Region)
	}
}

func TestHandlerSlowClicks(t *testing.T) {
	h := NewHandler()
	h.now = fakeClock(time.Second)
	h.HitMap.AddRect("button", 0, 0, 5, 1, nil)

	h.HandleClick(1, 0)
	if res := h.HandleClick(1, 0); res.IsDoubleClick {
		t.Error("clicks a second apart should not be double-click")
	}
}

func TestHandleMouseActions(t *testing.T) {
	h := NewHandler()
	h.HitMap.AddRect("row", 0, 3, 30, 1, nil)

	tests := []struct {
		name string
		msg  tea.MouseMsg
		want ActionType
		hit  bool
	}{
		{"click", tea.MouseMsg{X: 4, Y: 3, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, ActionClick, true},
		{"hover", tea.MouseMsg{X: 4, Y: 3, Action: tea.MouseActionMotion}, ActionHover, true},
		{"hover miss", tea.MouseMsg{X: 4, Y: 9, Action: tea.MouseActionMotion}, ActionHover, false},
		{"wheel up", tea.MouseMsg{X: 4, Y: 3, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp}, ActionScrollUp, true},
		{"wheel down", tea.MouseMsg{X: 4, Y: 3, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown}, ActionScrollDown, true},
		{"release", tea.MouseMsg{X: 4, Y: 3, Action: tea.MouseActionRelease}, ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action := h.HandleMouse(tt.msg)
			if action.Type != tt.want {
				t.Errorf("type = %v, want %v", action.Type, tt.want)
			}
			if (action.Region != nil) != tt.hit {
				t.Errorf("region = %v, want hit=%v", action.Region, tt.hit)
			}
		})
	}
}

func TestHandlerHover(t *testing.T) {
	h := NewHandler()
	a := &Region{ID: "a"}
	b := &Region{ID: "b"}

	left, entered := h.Hover(a)
	if left != nil || entered == nil || entered.ID != "a" {
		t.Errorf("enter a: left=%v entered=%v", left, entered)
	}

	left, entered = h.Hover(&Region{ID: "a"})
	if left != nil || entered != nil {
		t.Errorf("staying on a should report nothing, got left=%v entered=%v", left, entered)
	}

	left, entered = h.Hover(b)
	if left == nil || left.ID != "a" || entered == nil || entered.ID != "b" {
		t.Errorf("a to b: left=%v entered=%v", left, entered)
	}
	if h.HoverID() != "b" {
		t.Errorf("HoverID = %q, want b", h.HoverID())
	}

	left, entered = h.Hover(nil)
	if left == nil || left.ID != "b" || entered != nil {
		t.Errorf("leave b: left=%v entered=%v", left, entered)
	}

	left, entered = h.Hover(nil)
	if left != nil || entered != nil {
		t.Errorf("nothing hovered should report nothing, got left=%v entered=%v", left, entered)
	}
}

func TestHandlerClearKeepsHover(t *testing.T) {
	h := NewHandler()
	h.HitMap.AddRect("a", 0, 0, 5, 1, nil)
	h.Hover(h.HitMap.Test(0, 0))

	h.Clear()

	if r := h.HitMap.Test(0, 0); r != nil {
		t.Errorf("expected no hit after Clear, got %v", r)
	}
	if h.HoverID() != "a" {
		t.Errorf("HoverID = %q after Clear, want a", h.HoverID())
	}
}
