// Package tui renders menu state as terminal lines and translates bubbletea
// input into menu messages.
//
// # Quick Start
//
//	view := tui.NewViewConfig(toID, func(key, mouse bool, it string) string {
//	    return tui.ItemLine(it, key, mouse)
//	})
//	m := tui.NewMouse[string]()
//
//	// In View():
//	r := tui.View(view, visible, state, items)
//	m.Register(r, listX, listY)
//	return r.Content
//
//	// In Update():
//	switch msg := msg.(type) {
//	case tea.KeyMsg:
//	    state, out, ok = menu.Update(cfg, tui.Subscription(tui.DefaultKeyMap(), msg), visible, state, items)
//	case tea.MouseMsg:
//	    for _, mm := range m.Translate(msg) {
//	        state, out, ok = menu.Update(cfg, mm, visible, state, items)
//	    }
//	}
//
// Positions passed to Register are the screen coordinates of the rendered
// block's top-left corner; the list style's margin, border and padding are
// accounted for automatically.
package tui
