package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/marcus/menu/pkg/menu"
	"github.com/marcus/menu/pkg/menu/mouse"
)

// Mouse turns pointer events over a rendered list into menu messages.
type Mouse[Item comparable] struct {
	handler *mouse.Handler
}

// NewMouse returns a tracker with no registered rows.
func NewMouse[Item comparable]() *Mouse[Item] {
	return &Mouse[Item]{handler: mouse.NewHandler()}
}

// Register replaces the hit regions with the rows of r, whose top-left
// corner is drawn at screen position (x, y).
func (m *Mouse[Item]) Register(r Rendered[Item], x, y int) {
	m.handler.Clear()
	for _, row := range r.Rows {
		m.handler.HitMap.AddRect(row.ID, x+row.Col, y+row.Line, row.Width, row.Height, row.Item)
	}
}

// Hovered returns the id of the row under the pointer, or "".
func (m *Mouse[Item]) Hovered() string {
	return m.handler.HoverID()
}

// Translate converts msg into zero or more menu messages, in the order they
// must be applied. Moving between rows yields a leave followed by an enter;
// a click on a row not yet hovered is preceded by the same pair. The wheel
// moves the keyboard selection like the arrow keys.
func (m *Mouse[Item]) Translate(msg tea.MouseMsg) []menu.Msg {
	action := m.handler.HandleMouse(msg)
	switch action.Type {
	case mouse.ActionHover:
		return m.hover(action.Region)
	case mouse.ActionScrollUp:
		return []menu.Msg{menu.KeyDownMsg{Code: menu.KeyUp}}
	case mouse.ActionScrollDown:
		return []menu.Msg{menu.KeyDownMsg{Code: menu.KeyDown}}
	case mouse.ActionClick, mouse.ActionDoubleClick:
		if action.Region == nil {
			return nil
		}
		out := m.hover(action.Region)
		if item, ok := action.Region.Data.(Item); ok {
			out = append(out, menu.MouseClickMsg[Item]{Item: item})
		}
		return out
	}
	return nil
}

func (m *Mouse[Item]) hover(r *mouse.Region) []menu.Msg {
	left, entered := m.handler.Hover(r)
	var out []menu.Msg
	if left != nil {
		if item, ok := left.Data.(Item); ok {
			out = append(out, menu.MouseLeaveMsg[Item]{Item: item})
		}
	}
	if entered != nil {
		if item, ok := entered.Data.(Item); ok {
			out = append(out, menu.MouseEnterMsg[Item]{Item: item})
		}
	}
	return out
}
