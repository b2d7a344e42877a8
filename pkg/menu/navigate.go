package menu

// take returns the first n items. n <= 0 yields nil.
func take[Item any](items []Item, n int) []Item {
	if n <= 0 {
		return nil
	}
	if n >= len(items) {
		return items
	}
	return items[:n]
}

func reversed[Item any](items []Item) []Item {
	out := make([]Item, len(items))
	for i, item := range items {
		out[len(items)-1-i] = item
	}
	return out
}

// indexOf returns the position of the first occurrence of item, or -1.
func indexOf[Item comparable](items []Item, item Item) int {
	for i, it := range items {
		if it == item {
			return i
		}
	}
	return -1
}

// navigate resolves a key code against the bounded list. The current
// selection is returned unchanged when there is none, when the code is not
// a navigation key, or when no neighbour exists in the requested direction.
func navigate[Item comparable](code int, bounded []Item, current Item, ok bool) (Item, bool) {
	if !ok {
		return current, false
	}
	switch code {
	case KeyUp:
		return previous(bounded, current), true
	case KeyDown:
		return next(bounded, current), true
	default:
		return current, true
	}
}

func previous[Item comparable](bounded []Item, current Item) Item {
	i := indexOf(bounded, current)
	if i <= 0 {
		return current
	}
	return bounded[i-1]
}

func next[Item comparable](bounded []Item, current Item) Item {
	i := indexOf(bounded, current)
	if i < 0 || i >= len(bounded)-1 {
		return current
	}
	return bounded[i+1]
}
