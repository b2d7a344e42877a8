package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoad(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		cfg, err := Load(t.TempDir())
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if cfg.VisibleCount != DefaultVisibleCount {
			t.Errorf("VisibleCount: got %d, want %d", cfg.VisibleCount, DefaultVisibleCount)
		}
		if cfg.SeparateSelections {
			t.Error("SeparateSelections: got true, want false")
		}
	})

	t.Run("round trip", func(t *testing.T) {
		dir := t.TempDir()
		want := &Config{VisibleCount: 3, SeparateSelections: true, Items: []string{"ann", "bob"}}
		if err := Save(dir, want); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
		got, err := Load(dir)
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("config mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("zero visible count gets default", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, `{"separate_selections": true}`)
		cfg, err := Load(dir)
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if cfg.VisibleCount != DefaultVisibleCount || !cfg.SeparateSelections {
			t.Errorf("got %+v", cfg)
		}
	})

	t.Run("malformed json", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, `{not json`)
		if _, err := Load(dir); err == nil {
			t.Error("expected error for malformed config")
		}
	})
}

func writeConfig(t *testing.T, dir, body string) {
	t.Helper()
	path := Path(dir)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("setup: mkdir failed: %v", err)
	}
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("setup: write failed: %v", err)
	}
}
