// Package menu tracks keyboard and mouse selection over an ordered list of
// items owned by the caller.
//
// The package is pure: Update and the Reset family take the current State
// and return a new one, together with an optional notification produced by
// the caller's UpdateConfig callbacks. Nothing is rendered here; see
// package tui for a terminal presentation built on bubbletea and lipgloss.
//
// # Quick Start
//
//	cfg := menu.NewUpdateConfig[appMsg](func(s string) string { return s }).
//	    OnKeyDown(func(code int, item string, ok bool) (appMsg, bool) {
//	        return appMsg{highlight: item}, ok
//	    }).
//	    OnTooLow(func() (appMsg, bool) { return appMsg{wrap: true}, true })
//
//	state := menu.ResetToFirstItem(cfg, items, 5, menu.Empty[string]())
//
//	// In Update():
//	state, out, ok := menu.Update(cfg, menu.KeyDownMsg{Code: menu.KeyDown}, 5, state, items)
//	if ok {
//	    return handle(out)
//	}
//
// # Visible window
//
// Every operation receives a visibleCount. Navigation only ever considers
// items[:visibleCount]; moving past either end of that window is reported
// through OnTooHigh / OnTooLow rather than by moving into hidden items.
//
// # Coupled and separate selections
//
// With WithSeparateSelections(false) (the default) the keyboard and mouse
// selections always mirror each other. With separate selections each pointer
// moves on its own and Reset clears only the keyboard one.
//
// State is not safe for concurrent use; feed messages through Update in the
// order they occur, as a bubbletea program does.
package menu
