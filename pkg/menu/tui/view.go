package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/marcus/menu/pkg/menu"
)

// Row locates one rendered item inside Rendered.Content.
type Row[Item comparable] struct {
	ID     string
	Item   Item
	Line   int // first line of the item, relative to the block top
	Col    int
	Height int
	Width  int
}

// Rendered is the output of View and ViewWithSections.
type Rendered[Item comparable] struct {
	Content string
	Rows    []Row[Item]
}

// View renders the first visibleCount items, the same window the engine
// navigates over.
func View[Item comparable](cfg ViewConfig[Item], visibleCount int, state menu.State[Item], items []Item) Rendered[Item] {
	var b rowBuilder[Item]
	for _, item := range bounded(items, visibleCount) {
		b.item(cfg, state, item)
	}
	return b.finish(cfg)
}

// ViewWithSections renders sections in order, spending the visibleCount
// budget across the items of all sections. Sections left without visible
// items are omitted.
func ViewWithSections[Item comparable, Section any](cfg ViewWithSectionsConfig[Item, Section], visibleCount int, state menu.State[Item], sections []Section) Rendered[Item] {
	var b rowBuilder[Item]
	remaining := visibleCount
	for _, section := range sections {
		if remaining <= 0 {
			break
		}
		items := bounded(cfg.Section.items(section), remaining)
		if len(items) == 0 {
			continue
		}
		remaining -= len(items)

		b.header(cfg.View, cfg.Section.render(section))
		for _, item := range items {
			b.item(cfg.View, state, item)
		}
	}
	return b.finish(cfg.View)
}

// SectionItems flattens the items of all sections in render order, which is
// the item list to pass to menu.Update alongside ViewWithSections.
func SectionItems[Item comparable, Section any](cfg SectionConfig[Item, Section], sections []Section) []Item {
	var out []Item
	for _, s := range sections {
		out = append(out, cfg.items(s)...)
	}
	return out
}

func bounded[Item any](items []Item, n int) []Item {
	if n <= 0 {
		return nil
	}
	if n >= len(items) {
		return items
	}
	return items[:n]
}

type rowBuilder[Item comparable] struct {
	lines []string
	rows  []Row[Item]
}

func (b *rowBuilder[Item]) header(cfg ViewConfig[Item], s string) {
	if s == "" {
		return
	}
	b.lines = append(b.lines, clip(s, cfg.width))
}

func (b *rowBuilder[Item]) item(cfg ViewConfig[Item], state menu.State[Item], item Item) {
	line := clip(cfg.render(state.IsKeySelected(item), state.IsMouseSelected(item), item), cfg.width)
	b.rows = append(b.rows, Row[Item]{
		ID:     cfg.id(item),
		Item:   item,
		Line:   len(b.lines),
		Height: lipgloss.Height(line),
		Width:  lipgloss.Width(line),
	})
	b.lines = append(b.lines, strings.Split(line, "\n")...)
}

func (b *rowBuilder[Item]) finish(cfg ViewConfig[Item]) Rendered[Item] {
	if len(b.rows) == 0 {
		return Rendered[Item]{Content: cfg.list.Render(MutedText.Render(cfg.empty))}
	}

	// Rows span the full inner width so hovering beside short labels still hits.
	inner := 0
	for _, l := range b.lines {
		inner = max(inner, lipgloss.Width(l))
	}
	top := cfg.list.GetMarginTop() + cfg.list.GetBorderTopSize() + cfg.list.GetPaddingTop()
	left := cfg.list.GetMarginLeft() + cfg.list.GetBorderLeftSize() + cfg.list.GetPaddingLeft()
	for i := range b.rows {
		b.rows[i].Line += top
		b.rows[i].Col = left
		b.rows[i].Width = inner
	}

	return Rendered[Item]{
		Content: cfg.list.Render(strings.Join(b.lines, "\n")),
		Rows:    b.rows,
	}
}

func clip(s string, width int) string {
	if width <= 0 || lipgloss.Width(s) <= width {
		return s
	}
	return ansi.Truncate(s, width, "…")
}
