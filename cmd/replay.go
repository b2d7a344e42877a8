package cmd

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/marcus/menu/pkg/menu"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var errUnknownEvent = errors.New("unknown event")

type resetKind int

const (
	noReset resetKind = iota
	resetPlain
	resetFirst
	resetLast
)

// replayEvent is one parsed token of a replay script.
type replayEvent struct {
	token string
	msg   menu.Msg
	reset resetKind
}

// replayStep records the state after one event.
type replayStep struct {
	Event        string
	Key          string
	Mouse        string
	Notification string
}

func parseEvent(tok string) (replayEvent, error) {
	ev := replayEvent{token: tok}
	name, arg, hasArg := strings.Cut(tok, ":")

	switch {
	case tok == "up":
		ev.msg = menu.KeyDownMsg{Code: menu.KeyUp}
	case tok == "down":
		ev.msg = menu.KeyDownMsg{Code: menu.KeyDown}
	case tok == "noop":
		ev.msg = menu.NoOpMsg{}
	case tok == "too-high":
		ev.msg = menu.TooHighMsg{}
	case tok == "too-low":
		ev.msg = menu.TooLowMsg{}
	case tok == "reset":
		ev.reset = resetPlain
	case tok == "first":
		ev.reset = resetFirst
	case tok == "last":
		ev.reset = resetLast
	case name == "key" && hasArg:
		code, err := strconv.Atoi(arg)
		if err != nil {
			return ev, fmt.Errorf("%w %q: bad key code: %w", errUnknownEvent, tok, err)
		}
		ev.msg = menu.KeyDownMsg{Code: code}
	case name == "enter" && hasArg:
		ev.msg = menu.MouseEnterMsg[string]{Item: arg}
	case name == "leave" && hasArg:
		ev.msg = menu.MouseLeaveMsg[string]{Item: arg}
	case name == "click" && hasArg:
		ev.msg = menu.MouseClickMsg[string]{Item: arg}
	default:
		return ev, fmt.Errorf("%w %q", errUnknownEvent, tok)
	}
	return ev, nil
}

// replayConfig reports every callback as a short description.
func replayConfig(separate bool) menu.UpdateConfig[string, string] {
	return menu.NewUpdateConfig[string](func(s string) string { return s }).
		OnKeyDown(func(code int, item string, ok bool) (string, bool) {
			if !ok {
				return fmt.Sprintf("key %d", code), true
			}
			return fmt.Sprintf("key %d -> %s", code, item), true
		}).
		OnTooHigh(func() (string, bool) { return "too high", true }).
		OnTooLow(func() (string, bool) { return "too low", true }).
		OnMouseEnter(func(item string) (string, bool) { return "mouse enter " + item, true }).
		OnMouseLeave(func(item string) (string, bool) { return "mouse leave " + item, true }).
		OnMouseClick(func(item string) (string, bool) { return "mouse click " + item, true }).
		WithSeparateSelections(separate)
}

// replay runs events through the engine starting from the empty state.
func replay(cfg menu.UpdateConfig[string, string], items []string, visible int, events []replayEvent) []replayStep {
	state := menu.Empty[string]()
	steps := make([]replayStep, 0, len(events))

	for _, ev := range events {
		var note string
		switch ev.reset {
		case resetPlain:
			state = menu.Reset(cfg, state)
		case resetFirst:
			state = menu.ResetToFirstItem(cfg, items, visible, state)
		case resetLast:
			state = menu.ResetToLastItem(cfg, items, visible, state)
		default:
			var out string
			var ok bool
			state, out, ok = menu.Update(cfg, ev.msg, visible, state, items)
			if ok {
				note = out
			}
		}
		steps = append(steps, replayStep{
			Event:        ev.token,
			Key:          show(state.KeySelected()),
			Mouse:        show(state.MouseSelected()),
			Notification: note,
		})
	}
	return steps
}

func show(item string, ok bool) string {
	if !ok {
		return "-"
	}
	return item
}

func renderSteps(w io.Writer, steps []replayStep) {
	data := make([][]string, 0, len(steps))
	for i, s := range steps {
		data = append(data, []string{strconv.Itoa(i + 1), s.Event, s.Key, s.Mouse, s.Notification})
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"STEP", "EVENT", "KEY", "MOUSE", "NOTIFICATION"})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoFormatHeaders(false)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("    ")
	table.AppendBulk(data)
	table.Render()
}

var replayCmd = &cobra.Command{
	Use:   "replay [events...]",
	Short: "Feed scripted events through the engine and print each transition",
	Long: `Feed scripted events through the selection engine, starting from an
empty state, and print the keyboard and mouse selection after each one.

Events:
  up, down         arrow keys (codes 38 and 40)
  key:<code>       any other key code
  enter:<item>     pointer enters item
  leave:<item>     pointer leaves item
  click:<item>     item clicked
  first, last      select the first/last visible item
  reset            clear the selection
  too-high, too-low, noop`,
	Example: `  menu replay --items ann,bob,cid -n 2 first down down`,
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := settings(cmd)
		if err != nil {
			return err
		}

		items, _ := cmd.Flags().GetStringSlice("items")
		if len(items) == 0 {
			items = cfg.Items
		}

		events := make([]replayEvent, 0, len(args))
		for _, a := range args {
			ev, err := parseEvent(a)
			if err != nil {
				return err
			}
			events = append(events, ev)
		}

		steps := replay(replayConfig(cfg.SeparateSelections), items, cfg.VisibleCount, events)
		renderSteps(cmd.OutOrStdout(), steps)
		return nil
	},
}

func init() {
	addMenuFlags(replayCmd)
	replayCmd.Flags().StringSlice("items", nil, "comma-separated items (default: config file items)")
	rootCmd.AddCommand(replayCmd)
}
