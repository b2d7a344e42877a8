// Package mouse provides hit testing and hover tracking for terminal lists.
package mouse

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DoubleClickThreshold is the maximum gap between two clicks on the same
// region for them to count as a double click.
const DoubleClickThreshold = 400 * time.Millisecond

// Rect is a screen rectangle. Width and height are exclusive.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether (x, y) lies within the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Region is a named clickable area carrying arbitrary data.
type Region struct {
	ID   string
	Rect Rect
	Data any
}

// HitMap holds regions in insertion order. Later regions take priority.
type HitMap struct {
	regions []Region
}

// NewHitMap returns an empty hit map.
func NewHitMap() *HitMap {
	return &HitMap{}
}

// AddRect registers a region.
func (m *HitMap) AddRect(id string, x, y, w, h int, data any) {
	m.regions = append(m.regions, Region{ID: id, Rect: Rect{X: x, Y: y, W: w, H: h}, Data: data})
}

// Test returns the highest-priority region containing (x, y), or nil.
func (m *HitMap) Test(x, y int) *Region {
	for i := len(m.regions) - 1; i >= 0; i-- {
		if m.regions[i].Rect.Contains(x, y) {
			return &m.regions[i]
		}
	}
	return nil
}

// Clear removes all regions.
func (m *HitMap) Clear() {
	m.regions = m.regions[:0]
}

// ActionType classifies a mouse event.
type ActionType int

const (
	ActionNone ActionType = iota
	ActionClick
	ActionDoubleClick
	ActionHover
	ActionScrollUp
	ActionScrollDown
)

// Action is the result of translating a tea.MouseMsg.
type Action struct {
	Type   ActionType
	Region *Region
	X, Y   int
}

// ClickResult describes a click.
type ClickResult struct {
	Region        *Region
	IsDoubleClick bool
}

// Handler turns raw mouse events into actions using its hit map.
type Handler struct {
	HitMap *HitMap

	now          func() time.Time
	lastClickID  string
	lastClickAt  time.Time
	hoverID      string
	hoverRegion  *Region
	hoverPresent bool
}

// NewHandler returns a handler with an empty hit map.
func NewHandler() *Handler {
	return &Handler{HitMap: NewHitMap(), now: time.Now}
}

// HandleClick records a click at (x, y).
func (h *Handler) HandleClick(x, y int) ClickResult {
	r := h.HitMap.Test(x, y)
	if r == nil {
		h.lastClickID = ""
		return ClickResult{}
	}
	now := h.now()
	double := h.lastClickID == r.ID && now.Sub(h.lastClickAt) <= DoubleClickThreshold
	if double {
		// A third click starts a new sequence.
		h.lastClickID = ""
	} else {
		h.lastClickID = r.ID
		h.lastClickAt = now
	}
	return ClickResult{Region: r, IsDoubleClick: double}
}

// HandleMouse translates msg into an action.
func (h *Handler) HandleMouse(msg tea.MouseMsg) Action {
	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		return Action{Type: ActionScrollUp, Region: h.HitMap.Test(msg.X, msg.Y), X: msg.X, Y: msg.Y}
	case msg.Button == tea.MouseButtonWheelDown:
		return Action{Type: ActionScrollDown, Region: h.HitMap.Test(msg.X, msg.Y), X: msg.X, Y: msg.Y}
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		res := h.HandleClick(msg.X, msg.Y)
		t := ActionClick
		if res.IsDoubleClick {
			t = ActionDoubleClick
		}
		return Action{Type: t, Region: res.Region, X: msg.X, Y: msg.Y}
	case msg.Action == tea.MouseActionMotion:
		return Action{Type: ActionHover, Region: h.HitMap.Test(msg.X, msg.Y), X: msg.X, Y: msg.Y}
	}
	return Action{Type: ActionNone, X: msg.X, Y: msg.Y}
}

// Hover moves the hover pointer to r (nil for none) and returns the region
// that was left and the region that was entered, if the pointer changed.
func (h *Handler) Hover(r *Region) (left, entered *Region) {
	switch {
	case r == nil && !h.hoverPresent:
		return nil, nil
	case r != nil && h.hoverPresent && r.ID == h.hoverID:
		return nil, nil
	}
	if h.hoverPresent {
		left = h.hoverRegion
	}
	if r != nil {
		cp := *r
		entered = &cp
		h.hoverID, h.hoverRegion, h.hoverPresent = r.ID, entered, true
	} else {
		h.hoverID, h.hoverRegion, h.hoverPresent = "", nil, false
	}
	return left, entered
}

// HoverID returns the id of the hovered region, or "".
func (h *Handler) HoverID() string {
	return h.hoverID
}

// Clear removes all regions. Hover and click tracking are kept so that a
// re-render does not produce spurious enter/leave events.
func (h *Handler) Clear() {
	h.HitMap.Clear()
}
