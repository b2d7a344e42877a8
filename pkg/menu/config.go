package menu

// UpdateConfig bundles the id projection, notification callbacks and the
// selection coupling used by Update and the Reset family.
//
// Out is the caller's own message type. Each callback returns the
// notification and whether there is one; an unset callback produces none.
// Setters return a modified copy, so a config can be shared freely once built.
type UpdateConfig[Out any, Item comparable] struct {
	toID               func(Item) string
	onKeyDown          func(code int, item Item, ok bool) (Out, bool)
	onTooLow           func() (Out, bool)
	onTooHigh          func() (Out, bool)
	onMouseEnter       func(Item) (Out, bool)
	onMouseLeave       func(Item) (Out, bool)
	onMouseClick       func(Item) (Out, bool)
	separateSelections bool
}

// NewUpdateConfig creates a config with no callbacks and coupled selections.
func NewUpdateConfig[Out any, Item comparable](toID func(Item) string) UpdateConfig[Out, Item] {
	return UpdateConfig[Out, Item]{toID: toID}
}

// OnKeyDown sets the callback invoked for every key press with the resolved
// keyboard selection. ok is false when there is no selection.
func (c UpdateConfig[Out, Item]) OnKeyDown(fn func(code int, item Item, ok bool) (Out, bool)) UpdateConfig[Out, Item] {
	c.onKeyDown = fn
	return c
}

// OnTooLow sets the callback invoked when navigating down past the last
// visible item.
func (c UpdateConfig[Out, Item]) OnTooLow(fn func() (Out, bool)) UpdateConfig[Out, Item] {
	c.onTooLow = fn
	return c
}

// OnTooHigh sets the callback invoked when navigating up past the first
// visible item.
func (c UpdateConfig[Out, Item]) OnTooHigh(fn func() (Out, bool)) UpdateConfig[Out, Item] {
	c.onTooHigh = fn
	return c
}

// OnMouseEnter sets the callback invoked when the pointer enters an item.
func (c UpdateConfig[Out, Item]) OnMouseEnter(fn func(Item) (Out, bool)) UpdateConfig[Out, Item] {
	c.onMouseEnter = fn
	return c
}

// OnMouseLeave sets the callback invoked when the pointer leaves an item.
func (c UpdateConfig[Out, Item]) OnMouseLeave(fn func(Item) (Out, bool)) UpdateConfig[Out, Item] {
	c.onMouseLeave = fn
	return c
}

// OnMouseClick sets the callback invoked when an item is clicked.
func (c UpdateConfig[Out, Item]) OnMouseClick(fn func(Item) (Out, bool)) UpdateConfig[Out, Item] {
	c.onMouseClick = fn
	return c
}

// WithSeparateSelections controls whether keyboard and mouse selections move
// independently (true) or mirror each other (false).
func (c UpdateConfig[Out, Item]) WithSeparateSelections(separate bool) UpdateConfig[Out, Item] {
	c.separateSelections = separate
	return c
}

// SeparateSelections reports whether the selections are independent.
func (c UpdateConfig[Out, Item]) SeparateSelections() bool {
	return c.separateSelections
}

// ToID returns the unique id of item. Without an id projection it returns "".
func (c UpdateConfig[Out, Item]) ToID(item Item) string {
	if c.toID == nil {
		return ""
	}
	return c.toID(item)
}

func (c UpdateConfig[Out, Item]) keyDown(code int, item Item, ok bool) (Out, bool) {
	if c.onKeyDown == nil {
		return none[Out]()
	}
	return c.onKeyDown(code, item, ok)
}

func (c UpdateConfig[Out, Item]) tooLow() (Out, bool) {
	if c.onTooLow == nil {
		return none[Out]()
	}
	return c.onTooLow()
}

func (c UpdateConfig[Out, Item]) tooHigh() (Out, bool) {
	if c.onTooHigh == nil {
		return none[Out]()
	}
	return c.onTooHigh()
}

func call[Out any, Item comparable](fn func(Item) (Out, bool), item Item) (Out, bool) {
	if fn == nil {
		return none[Out]()
	}
	return fn(item)
}

func none[Out any]() (Out, bool) {
	var zero Out
	return zero, false
}
