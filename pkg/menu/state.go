package menu

// State holds the keyboard-selected and mouse-selected items.
// The zero value is the empty state.
type State[Item comparable] struct {
	key      Item
	hasKey   bool
	mouse    Item
	hasMouse bool
}

// Empty returns a state with no selection.
func Empty[Item comparable]() State[Item] {
	return State[Item]{}
}

// KeySelected returns the item highlighted via keyboard navigation.
func (s State[Item]) KeySelected() (Item, bool) {
	return s.key, s.hasKey
}

// MouseSelected returns the item highlighted via pointer interaction.
func (s State[Item]) MouseSelected() (Item, bool) {
	return s.mouse, s.hasMouse
}

// IsKeySelected reports whether item is the keyboard selection.
func (s State[Item]) IsKeySelected(item Item) bool {
	return s.hasKey && s.key == item
}

// IsMouseSelected reports whether item is the mouse selection.
func (s State[Item]) IsMouseSelected(item Item) bool {
	return s.hasMouse && s.mouse == item
}

func (s State[Item]) withKey(item Item, ok bool) State[Item] {
	var zero Item
	if !ok {
		item = zero
	}
	s.key, s.hasKey = item, ok
	return s
}

func (s State[Item]) withMouse(item Item, ok bool) State[Item] {
	var zero Item
	if !ok {
		item = zero
	}
	s.mouse, s.hasMouse = item, ok
	return s
}

// both returns a state where both selections point at item.
func both[Item comparable](item Item, ok bool) State[Item] {
	return Empty[Item]().withKey(item, ok).withMouse(item, ok)
}

// Reset clears the keyboard selection. With coupled selections the mouse
// selection is cleared too.
func Reset[Out any, Item comparable](cfg UpdateConfig[Out, Item], state State[Item]) State[Item] {
	if cfg.separateSelections {
		var zero Item
		return state.withKey(zero, false)
	}
	return Empty[Item]()
}

// ResetToFirstItem selects the first of the visible items.
// An empty visible window yields the empty state.
func ResetToFirstItem[Out any, Item comparable](cfg UpdateConfig[Out, Item], items []Item, visibleCount int, state State[Item]) State[Item] {
	return resetToFirst(cfg, take(items, visibleCount), state)
}

// ResetToLastItem selects the last of the visible items.
func ResetToLastItem[Out any, Item comparable](cfg UpdateConfig[Out, Item], items []Item, visibleCount int, state State[Item]) State[Item] {
	return resetToFirst(cfg, reversed(take(items, visibleCount)), state)
}

func resetToFirst[Out any, Item comparable](cfg UpdateConfig[Out, Item], bounded []Item, state State[Item]) State[Item] {
	if len(bounded) == 0 {
		return Empty[Item]()
	}
	first := bounded[0]
	if cfg.separateSelections {
		return Reset(cfg, state).withKey(first, true)
	}
	return both(first, true)
}
