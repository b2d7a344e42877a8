// Package demo is an autocomplete prompt built on the menu engine.
package demo

import (
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/marcus/menu/pkg/menu"
	"github.com/marcus/menu/pkg/menu/tui"
	"github.com/sahilm/fuzzy"
)

type eventKind int

const (
	eventWrapTop eventKind = iota
	eventWrapBottom
	eventChoose
	eventClose
)

// event is the notification type the engine hands back to the prompt.
type event struct {
	kind eventKind
	item string
}

// Options configure the prompt.
type Options struct {
	Visible  int
	Separate bool
	Width    int
}

// Model is the bubbletea model for the prompt.
type Model struct {
	keys  tui.KeyMap
	cfg   menu.UpdateConfig[event, string]
	view  tui.ViewConfig[string]
	mouse *tui.Mouse[string]
	input textinput.Model

	all     []string
	matches []string
	visible int
	state   menu.State[string]

	chosen   string
	quitting bool
}

func updateConfig(separate bool) menu.UpdateConfig[event, string] {
	return menu.NewUpdateConfig[event](func(s string) string { return s }).
		OnKeyDown(func(code int, item string, ok bool) (event, bool) {
			switch code {
			case menu.KeyEnter:
				return event{kind: eventChoose, item: item}, ok
			case menu.KeyEscape:
				return event{kind: eventClose}, true
			}
			return event{}, false
		}).
		OnTooLow(func() (event, bool) { return event{kind: eventWrapBottom}, true }).
		OnTooHigh(func() (event, bool) { return event{kind: eventWrapTop}, true }).
		OnMouseClick(func(item string) (event, bool) { return event{kind: eventChoose, item: item}, true }).
		WithSeparateSelections(separate)
}

// New creates a prompt over items.
func New(items []string, opts Options) Model {
	visible := opts.Visible
	if visible <= 0 {
		visible = 5
	}

	in := textinput.New()
	in.Placeholder = "type to filter"
	in.Prompt = "› "
	in.Focus()

	view := tui.NewViewConfig(func(s string) string { return s }, nil)
	if opts.Width > 0 {
		view = view.WithWidth(opts.Width)
	}

	return Model{
		keys:    tui.DefaultKeyMap(),
		cfg:     updateConfig(opts.Separate),
		view:    view,
		mouse:   tui.NewMouse[string](),
		input:   in,
		all:     items,
		matches: items,
		visible: visible,
		state:   menu.Empty[string](),
	}
}

// Chosen returns the accepted item, or "" if the prompt was dismissed.
func (m Model) Chosen() string {
	return m.chosen
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.quitting = true
			return m, tea.Quit
		}
		if key.Matches(msg, m.keys.Up, m.keys.Down, m.keys.Enter, m.keys.Escape) {
			return m.apply(tui.Subscription(m.keys, msg))
		}
		return m.typed(msg)

	case tea.MouseMsg:
		var cmd tea.Cmd
		for _, mm := range m.mouse.Translate(msg) {
			var next tea.Model
			next, cmd = m.apply(mm)
			m = next.(Model)
			if cmd != nil {
				break
			}
		}
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// typed forwards msg to the query input and refilters when the query changed.
func (m Model) typed(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if q := m.input.Value(); q != before {
		m.matches = filter(m.all, q)
		m.state = menu.Reset(m.cfg, m.state)
		slog.Debug("query changed", "query", q, "matches", len(m.matches))
	}
	return m, cmd
}

// apply runs a menu message through the engine and acts on its notification.
func (m Model) apply(msg menu.Msg) (tea.Model, tea.Cmd) {
	var ev event
	var ok bool
	m.state, ev, ok = menu.Update(m.cfg, msg, m.visible, m.state, m.matches)
	if !ok {
		return m, nil
	}

	switch ev.kind {
	case eventWrapTop:
		m.state = menu.ResetToLastItem(m.cfg, m.matches, m.visible, m.state)
	case eventWrapBottom:
		m.state = menu.ResetToFirstItem(m.cfg, m.matches, m.visible, m.state)
	case eventChoose:
		slog.Debug("item chosen", "item", ev.item)
		m.chosen = ev.item
		m.quitting = true
		return m, tea.Quit
	case eventClose:
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(m.input.View())
	sb.WriteString("\n")

	r := tui.View(m.view, m.visible, m.state, m.matches)
	m.mouse.Register(r, 0, 1)
	sb.WriteString(r.Content)
	sb.WriteString("\n")
	sb.WriteString(tui.MutedText.Render(helpLine(m.keys)))
	return sb.String()
}

func helpLine(km tui.KeyMap) string {
	var parts []string
	for _, b := range km.ShortHelp() {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, "  ")
}

// filter narrows items to fuzzy matches of query, best match first.
func filter(items []string, query string) []string {
	if strings.TrimSpace(query) == "" {
		return items
	}
	found := fuzzy.Find(query, items)
	out := make([]string, 0, len(found))
	for _, f := range found {
		out = append(out, f.Str)
	}
	return out
}
