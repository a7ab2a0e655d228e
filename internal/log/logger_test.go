package log

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zerolog.Level{
		"debug":   zerolog.DebugLevel,
		"INFO":    zerolog.InfoLevel,
		"warning": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"bogus":   zerolog.InfoLevel,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q): got %v, want %v", in, got, want)
		}
	}
}

func TestNew_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New("warn", &buf)
	logger.Info().Msg("hidden")
	logger.Warn().Str("path", "chat.txt").Msg("skipped")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info line leaked at warn level: %s", out)
	}
	if !strings.Contains(out, "skipped") || !strings.Contains(out, "path=chat.txt") {
		t.Errorf("missing warn line: %s", out)
	}
}

func TestNew_LeavesGlobalsAlone(t *testing.T) {
	before := zerolog.TimeFieldFormat
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	defer func() { zerolog.TimeFieldFormat = before }()

	New("info", &bytes.Buffer{})
	if zerolog.TimeFieldFormat != zerolog.TimeFormatUnix {
		t.Errorf("TimeFieldFormat: got %q, want it untouched", zerolog.TimeFieldFormat)
	}
}
