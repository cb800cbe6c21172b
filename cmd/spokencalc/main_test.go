package main

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want slog.Level
		ok   bool
	}{
		{"debug", slog.LevelDebug, true},
		{"info", slog.LevelInfo, true},
		{"warn", slog.LevelWarn, true},
		{"error", slog.LevelError, true},
		{"", 0, false},
		{"DEBUG", 0, false},
		{"verbose", 0, false},
	}
	for _, c := range cases {
		got, err := parseLevel(c.in)
		if (err == nil) != c.ok {
			t.Errorf("parseLevel(%q) gave error %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("parseLevel(%q): want %v, got %v", c.in, c.want, got)
		}
	}
}

func TestInfile(t *testing.T) {
	name := filepath.Join(t.TempDir(), "utterances.txt")
	if err := os.WriteFile(name, []byte("two plus two\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	f, err := infile(name, false)
	if err != nil {
		t.Fatal(err)
	}
	b, err := io.ReadAll(f)
	f.Close()
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "two plus two\n" {
		t.Errorf("read %q from file", b)
	}

	if f, err := infile("", false); f != nil || err != nil {
		t.Errorf("no input with arguments gave %v, %v", f, err)
	}
	if f, err := infile("", true); f == nil || err != nil {
		t.Errorf("no input without arguments gave %v, %v", f, err)
	}
	if f, err := infile("-", false); f == nil || err != nil {
		t.Errorf("- gave %v, %v", f, err)
	}
	if _, err := infile(filepath.Join(t.TempDir(), "missing"), false); err == nil {
		t.Error("missing file gave no error")
	}
}

func TestNewLogger(t *testing.T) {
	name := filepath.Join(t.TempDir(), "calc.log")
	lg, closer, err := newLogger(name, "info")
	if err != nil {
		t.Fatal(err)
	}
	lg.Info("evaluated", slog.String("expr", "2 + 2"))
	if err := closer.Close(); err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(name)
	if err != nil {
		t.Fatal(err)
	}
	if len(b) == 0 || b[0] != '{' {
		t.Errorf("log file is not JSON lines: %q", b)
	}

	if _, _, err := newLogger("", "loud"); err == nil {
		t.Error("bad level gave no error")
	}
}
