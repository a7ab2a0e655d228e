package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_MissingFile(t *testing.T) {
	home := t.TempDir()
	path := filepath.Join(home, "nonexistent.toml")
	cfg, err := loadFrom(path, home)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.ExportRoot != filepath.Join(home, "Downloads") {
		t.Errorf("ExportRoot: got %s", cfg.ExportRoot)
	}
	if cfg.MediaPlaceholder != "<Media omitted>" {
		t.Errorf("MediaPlaceholder: got %q", cfg.MediaPlaceholder)
	}
	if cfg.TopWords != 20 || cfg.TopUsers != 5 || cfg.TopEmojis != 5 {
		t.Errorf("limits: got %d/%d/%d", cfg.TopWords, cfg.TopUsers, cfg.TopEmojis)
	}
	if cfg.CenturyPivot != 69 || cfg.LogLevel != "warn" {
		t.Errorf("got pivot=%d level=%s", cfg.CenturyPivot, cfg.LogLevel)
	}
	if cfg.Path() != path {
		t.Errorf("Path: got %s, want %s", cfg.Path(), path)
	}
}

func TestLoad_PartialFile(t *testing.T) {
	home := t.TempDir()
	path := writeConfig(t, `
export_root = "~/chats"
stop_words_file = "~/stop.txt"
top_words = 10
`)
	cfg, err := loadFrom(path, home)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.ExportRoot != filepath.Join(home, "chats") {
		t.Errorf("ExportRoot: got %s", cfg.ExportRoot)
	}
	if cfg.StopWordsFile != filepath.Join(home, "stop.txt") {
		t.Errorf("StopWordsFile: got %s", cfg.StopWordsFile)
	}
	if cfg.TopWords != 10 {
		t.Errorf("TopWords: got %d, want 10", cfg.TopWords)
	}
	if cfg.TopUsers != 5 {
		t.Errorf("TopUsers: got %d, want default 5", cfg.TopUsers)
	}
}

func TestLoad_Malformed(t *testing.T) {
	path := writeConfig(t, `top_words = [not toml`)
	if _, err := loadFrom(path, t.TempDir()); err == nil {
		t.Error("expected parse error")
	}
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"zero top words", `top_words = 0`},
		{"pivot too large", `century_pivot = 101`},
		{"unknown log level", `log_level = "loud"`},
		{"empty placeholder", `media_placeholder = ""`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loadFrom(writeConfig(t, tt.body), t.TempDir())
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), "invalid config") {
				t.Errorf("got %v", err)
			}
		})
	}
}

func TestExpandHome(t *testing.T) {
	if got := expandHome("~/x", "/home/u"); got != filepath.Join("/home/u", "x") {
		t.Errorf("got %s", got)
	}
	if got := expandHome("/abs", "/home/u"); got != "/abs" {
		t.Errorf("got %s", got)
	}
	if got := expandHome("", "/home/u"); got != "" {
		t.Errorf("got %q", got)
	}
}
