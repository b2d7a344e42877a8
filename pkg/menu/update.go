package menu

// Update applies msg to state and returns the new state together with the
// notification produced by the matching callback in cfg, if any.
//
// Only the first visibleCount items are considered for keyboard navigation.
// A message carrying an item of a different type than Item is ignored.
func Update[Out any, Item comparable](cfg UpdateConfig[Out, Item], msg Msg, visibleCount int, state State[Item], items []Item) (State[Item], Out, bool) {
	switch msg := msg.(type) {
	case KeyDownMsg:
		return keyDown(cfg, msg.Code, visibleCount, state, items)

	case TooHighMsg:
		out, ok := cfg.tooHigh()
		return state, out, ok

	case TooLowMsg:
		out, ok := cfg.tooLow()
		return state, out, ok

	case MouseEnterMsg[Item]:
		out, ok := call(cfg.onMouseEnter, msg.Item)
		return mouseSelect(cfg, state, msg.Item), out, ok

	case MouseLeaveMsg[Item]:
		out, ok := call(cfg.onMouseLeave, msg.Item)
		return mouseSelect(cfg, state, msg.Item), out, ok

	case MouseClickMsg[Item]:
		out, ok := call(cfg.onMouseClick, msg.Item)
		return mouseSelect(cfg, state, msg.Item), out, ok
	}

	out, ok := none[Out]()
	return state, out, ok
}

func keyDown[Out any, Item comparable](cfg UpdateConfig[Out, Item], code, visibleCount int, state State[Item], items []Item) (State[Item], Out, bool) {
	current, hasCurrent := state.KeySelected()
	resolved, hasResolved := navigate(code, take(items, visibleCount), current, hasCurrent)
	unchanged := hasResolved == hasCurrent && resolved == current

	if unchanged {
		switch code {
		case KeyUp:
			return Update(cfg, TooHighMsg{}, visibleCount, state, items)
		case KeyDown:
			return Update(cfg, TooLowMsg{}, visibleCount, state, items)
		}
		// Other keys leave the selection alone but are still reported.
		out, ok := cfg.keyDown(code, current, hasCurrent)
		return state, out, ok
	}

	updated := state.withKey(resolved, hasResolved)
	if !cfg.separateSelections {
		updated = both(resolved, hasResolved)
	}
	out, ok := cfg.keyDown(code, resolved, hasResolved)
	return updated, out, ok
}

// mouseSelect applies the pointer coupling rule.
func mouseSelect[Out any, Item comparable](cfg UpdateConfig[Out, Item], state State[Item], item Item) State[Item] {
	if cfg.separateSelections {
		return state.withMouse(item, true)
	}
	return both(item, true)
}
