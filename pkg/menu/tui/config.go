package tui

import "github.com/charmbracelet/lipgloss"

// ItemFunc renders one item given its keyboard and mouse highlight flags.
type ItemFunc[Item any] func(keySelected, mouseSelected bool, item Item) string

// ViewConfig describes how a flat list is rendered.
type ViewConfig[Item comparable] struct {
	toID  func(Item) string
	item  ItemFunc[Item]
	list  lipgloss.Style
	width int
	empty string
}

// NewViewConfig creates a view config. A nil item renderer falls back to
// ItemLine with the item's id as label.
func NewViewConfig[Item comparable](toID func(Item) string, item ItemFunc[Item]) ViewConfig[Item] {
	return ViewConfig[Item]{
		toID:  toID,
		item:  item,
		list:  ListBox,
		empty: "(no items)",
	}
}

// WithListStyle sets the style wrapping the rendered rows.
func (c ViewConfig[Item]) WithListStyle(s lipgloss.Style) ViewConfig[Item] {
	c.list = s
	return c
}

// WithWidth truncates each rendered row to w cells. Zero disables truncation.
func (c ViewConfig[Item]) WithWidth(w int) ViewConfig[Item] {
	if w >= 0 {
		c.width = w
	}
	return c
}

// WithEmptyText sets the placeholder shown when no item is visible.
func (c ViewConfig[Item]) WithEmptyText(s string) ViewConfig[Item] {
	c.empty = s
	return c
}

func (c ViewConfig[Item]) id(item Item) string {
	if c.toID == nil {
		return ""
	}
	return c.toID(item)
}

func (c ViewConfig[Item]) render(keySelected, mouseSelected bool, item Item) string {
	if c.item == nil {
		return ItemLine(c.id(item), keySelected, mouseSelected)
	}
	return c.item(keySelected, mouseSelected, item)
}

// SectionConfig describes how sections group items.
type SectionConfig[Item comparable, Section any] struct {
	toID    func(Section) string
	getData func(Section) []Item
	header  func(Section) string
}

// NewSectionConfig creates a section config. A nil header renderer uses the
// section id in the SectionHeader style.
func NewSectionConfig[Item comparable, Section any](toID func(Section) string, getData func(Section) []Item, header func(Section) string) SectionConfig[Item, Section] {
	return SectionConfig[Item, Section]{toID: toID, getData: getData, header: header}
}

func (c SectionConfig[Item, Section]) items(s Section) []Item {
	if c.getData == nil {
		return nil
	}
	return c.getData(s)
}

func (c SectionConfig[Item, Section]) render(s Section) string {
	if c.header != nil {
		return c.header(s)
	}
	if c.toID == nil {
		return ""
	}
	return SectionHeader.Render(c.toID(s))
}

// ViewWithSectionsConfig combines item rendering with section grouping.
type ViewWithSectionsConfig[Item comparable, Section any] struct {
	View    ViewConfig[Item]
	Section SectionConfig[Item, Section]
}

// NewViewWithSectionsConfig bundles a view config and a section config.
func NewViewWithSectionsConfig[Item comparable, Section any](view ViewConfig[Item], section SectionConfig[Item, Section]) ViewWithSectionsConfig[Item, Section] {
	return ViewWithSectionsConfig[Item, Section]{View: view, Section: section}
}
