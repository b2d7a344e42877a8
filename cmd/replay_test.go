package cmd

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/marcus/menu/pkg/menu"
)

func mustParse(t *testing.T, toks ...string) []replayEvent {
	t.Helper()
	var out []replayEvent
	for _, tok := range toks {
		ev, err := parseEvent(tok)
		if err != nil {
			t.Fatalf("parseEvent(%q): %v", tok, err)
		}
		out = append(out, ev)
	}
	return out
}

func TestParseEvent(t *testing.T) {
	tests := []struct {
		tok   string
		msg   menu.Msg
		reset resetKind
	}{
		{"up", menu.KeyDownMsg{Code: 38}, noReset},
		{"down", menu.KeyDownMsg{Code: 40}, noReset},
		{"key:13", menu.KeyDownMsg{Code: 13}, noReset},
		{"enter:bob", menu.MouseEnterMsg[string]{Item: "bob"}, noReset},
		{"leave:bob", menu.MouseLeaveMsg[string]{Item: "bob"}, noReset},
		{"click:a:b", menu.MouseClickMsg[string]{Item: "a:b"}, noReset},
		{"noop", menu.NoOpMsg{}, noReset},
		{"too-high", menu.TooHighMsg{}, noReset},
		{"too-low", menu.TooLowMsg{}, noReset},
		{"first", nil, resetFirst},
		{"last", nil, resetLast},
		{"reset", nil, resetPlain},
	}
	for _, tt := range tests {
		t.Run(tt.tok, func(t *testing.T) {
			ev, err := parseEvent(tt.tok)
			if err != nil {
				t.Fatalf("parseEvent: %v", err)
			}
			if ev.msg != tt.msg || ev.reset != tt.reset {
				t.Errorf("parseEvent(%q) = %#v / %d, want %#v / %d", tt.tok, ev.msg, ev.reset, tt.msg, tt.reset)
			}
		})
	}
}

func TestParseEventErrors(t *testing.T) {
	for _, tok := range []string{"sideways", "key:abc", "enter", "click"} {
		if _, err := parseEvent(tok); !errors.Is(err, errUnknownEvent) {
			t.Errorf("parseEvent(%q) error = %v, want errUnknownEvent", tok, err)
		}
	}
}

func TestReplayVisibleWindow(t *testing.T) {
	events := mustParse(t, "first", "down", "down", "key:13")
	steps := replay(replayConfig(false), []string{"ann", "bob", "cid"}, 2, events)

	want := []replayStep{
		{Event: "first", Key: "ann", Mouse: "ann"},
		{Event: "down", Key: "bob", Mouse: "bob", Notification: "key 40 -> bob"},
		{Event: "down", Key: "bob", Mouse: "bob", Notification: "too low"},
		{Event: "key:13", Key: "bob", Mouse: "bob", Notification: "key 13 -> bob"},
	}
	if diff := cmp.Diff(want, steps); diff != "" {
		t.Errorf("steps (-want +got):\n%s", diff)
	}
}

func TestReplaySeparateSelections(t *testing.T) {
	events := mustParse(t, "last", "enter:ann", "up", "reset", "click:cid")
	steps := replay(replayConfig(true), []string{"ann", "bob", "cid"}, 3, events)

	want := []replayStep{
		{Event: "last", Key: "cid", Mouse: "-"},
		{Event: "enter:ann", Key: "cid", Mouse: "ann", Notification: "mouse enter ann"},
		{Event: "up", Key: "bob", Mouse: "ann", Notification: "key 38 -> bob"},
		{Event: "reset", Key: "-", Mouse: "ann"},
		{Event: "click:cid", Key: "-", Mouse: "cid", Notification: "mouse click cid"},
	}
	if diff := cmp.Diff(want, steps); diff != "" {
		t.Errorf("steps (-want +got):\n%s", diff)
	}
}

func TestRenderSteps(t *testing.T) {
	var buf bytes.Buffer
	renderSteps(&buf, []replayStep{{Event: "first", Key: "ann", Mouse: "ann"}})

	out := buf.String()
	for _, want := range []string{"STEP", "NOTIFICATION", "first", "ann"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestReplayCommand(t *testing.T) {
	dir := t.TempDir()
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{"replay", "--dir", dir, "--items", "ann,bob,cid", "-n", "2", "first", "down", "down"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("replay failed: %v", err)
	}
	if !strings.Contains(buf.String(), "too low") {
		t.Errorf("expected too-low transition in output:\n%s", buf.String())
	}
	if strings.Contains(buf.String(), "cid") {
		t.Errorf("cid is outside the window and should never be selected:\n%s", buf.String())
	}
}
