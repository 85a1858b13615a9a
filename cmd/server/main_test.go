package main

import (
	"flag"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func TestSanitizeName(t *testing.T) {
	cases := []struct {
		name   string
		input  string
		expect string
	}{
		{"normal short name", "Alice", "Alice"},
		{"exactly 16 chars", "1234567890123456", "1234567890123456"},
		{"long name truncated", "ThisIsAVeryLongUsername", "ThisIsAVeryLongU"},
		{"control chars stripped", "he\x00ll\x1bo", "hello"},
		{"ansi escape partial", "he\x1b[31mllo", "he[31mllo"},
		{"empty input", "", ""},
		{"pure control chars", "\x00\x01\x02\x1b", ""},
		{"multi-byte runes truncated by byte limit", "日本語のテスト名前です", "日本語のテ"},
		{"emoji truncated by byte limit", "🎮Player🎮Name🎮", "🎮Player🎮Na"},
		{"mixed printable and control", "a\x00b\x01c\x02d", "abcd"},
		{"tabs stripped", "hello\tworld", "helloworld"},
		{"newlines stripped", "hello\nworld", "helloworld"},
		{"invalid utf-8 dropped", "ok\xffok", "okok"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := sanitizeName(tc.input)
			if got != tc.expect {
				t.Errorf("sanitizeName(%q) = %q, want %q", tc.input, got, tc.expect)
			}
		})
	}
}

func TestAllowedTerms(t *testing.T) {
	cases := []struct {
		name    string
		term    string
		allowed bool
	}{
		{"xterm-256color", "xterm-256color", true},
		{"tmux", "tmux", true},
		{"linux", "linux", true},
		{"vt100", "vt100", true},
		{"screen", "screen", true},
		{"rxvt-unicode-256color", "rxvt-unicode-256color", true},
		{"unknown term", "evil-term", false},
		{"path traversal", "../../../etc/passwd", false},
		{"empty string", "", false},
		{"xterm-kitty", "xterm-kitty", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := allowedTerms[tc.term]
			if got != tc.allowed {
				t.Errorf("allowedTerms[%q] = %v, want %v", tc.term, got, tc.allowed)
			}
		})
	}
}

func TestTermOf(t *testing.T) {
	cases := []struct {
		name    string
		ptyTerm string
		environ []string
		want    string
	}{
		{"pty term wins", "tmux", []string{"TERM=linux"}, "tmux"},
		{"environment used when pty term is empty", "", []string{"LANG=C", "TERM=screen"}, "screen"},
		{"unknown pty term falls through to env", "evil-term", []string{"TERM=vt100"}, "vt100"},
		{"nothing allowed falls back", "xterm-kitty", []string{"TERM=../../x"}, fallbackTerm},
		{"no information", "", nil, fallbackTerm},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := termOf(tc.ptyTerm, tc.environ); got != tc.want {
				t.Errorf("termOf(%q, %v) = %q, want %q", tc.ptyTerm, tc.environ, got, tc.want)
			}
		})
	}
}

func TestParseSettingsEnvThenFlags(t *testing.T) {
	t.Setenv("DISTRICT9_PORT", "3022")
	t.Setenv("DISTRICT9_SEED", "7")
	t.Setenv("DISTRICT9_LOG_LEVEL", "DEBUG")

	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	s, err := parseSettings(fs, []string{"--seed", "9"})
	if err != nil {
		t.Fatalf("parseSettings: %v", err)
	}
	if s.Port != 3022 {
		t.Errorf("port = %d, want 3022 from env", s.Port)
	}
	if s.Seed != 9 {
		t.Errorf("seed = %d, want 9 from flag", s.Seed)
	}
	if s.HostKey != "server_host_key" || s.MaxSessions != 32 {
		t.Errorf("defaults not applied: %+v", s)
	}
	if s.LogLevel != slog.LevelDebug {
		t.Errorf("log level = %v, want DEBUG", s.LogLevel)
	}
}

func TestParseSettingsRejectsBadValues(t *testing.T) {
	t.Setenv("DISTRICT9_PORT", "not-a-port")
	if _, err := parseSettings(flag.NewFlagSet("server", flag.ContinueOnError), nil); err == nil {
		t.Error("expected env parse error")
	}

	os.Unsetenv("DISTRICT9_PORT")
	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	if _, err := parseSettings(fs, []string{"--max-sessions", "0"}); err == nil {
		t.Error("expected max-sessions error")
	}
}

func TestSessionSeed(t *testing.T) {
	h := &host{seed: 100}
	if got := h.sessionSeed(1); got != 100 {
		t.Errorf("first session seed = %d, want 100", got)
	}
	if h.sessionSeed(1) == h.sessionSeed(2) {
		t.Error("sessions should not share a layout")
	}
}

func TestLoadOrCreateHostKeyPersists(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	path := filepath.Join(t.TempDir(), "host_key")

	first, err := loadOrCreateHostKey(path, log)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("key not persisted: %v", err)
	}
	second, err := loadOrCreateHostKey(path, log)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(first.PublicKey().Marshal()) != string(second.PublicKey().Marshal()) {
		t.Error("reloaded key differs from the generated one")
	}
}
