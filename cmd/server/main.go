// district9-server serves the District 9 scene over SSH. Every connection
// gets its own independent scene. Build:
//
//	go build -o district9-server ./cmd/server
//
// Usage:
//
//	./district9-server [--port 2222] [--key server_host_key] [--tuning tuning.yaml]
//
// Connect:
//
//	ssh -t -p 2222 localhost
package main

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	mrand "math/rand"
	"os"
	"os/signal"
	"strings"
	"sync"
	"sync/atomic"
	"syscall"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/caarlos0/env/v11"
	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
	xssh "golang.org/x/crypto/ssh"
	"golang.org/x/sync/errgroup"

	"district9/internal/config"
	"district9/internal/game"
	internalssh "district9/internal/ssh"
)

// settings are read from the environment, then overridden by flags.
type settings struct {
	Port        int        `env:"DISTRICT9_PORT"         envDefault:"2222"`
	HostKey     string     `env:"DISTRICT9_HOST_KEY"     envDefault:"server_host_key"`
	Tuning      string     `env:"DISTRICT9_TUNING"`
	Seed        int64      `env:"DISTRICT9_SEED"`
	MaxSessions int        `env:"DISTRICT9_MAX_SESSIONS" envDefault:"32"`
	LogLevel    slog.Level `env:"DISTRICT9_LOG_LEVEL"    envDefault:"INFO"`
}

func parseSettings(fs *flag.FlagSet, args []string) (settings, error) {
	var s settings
	if err := env.Parse(&s); err != nil {
		return s, fmt.Errorf("parse env: %w", err)
	}
	fs.IntVar(&s.Port, "port", s.Port, "SSH server port")
	fs.StringVar(&s.HostKey, "key", s.HostKey, "Path to the PEM-encoded host key (auto-generated if absent)")
	fs.StringVar(&s.Tuning, "tuning", s.Tuning, "YAML file overriding scene tuning")
	fs.Int64Var(&s.Seed, "seed", s.Seed, "Random seed for NPC layout and dialogue (0 = time based)")
	fs.IntVar(&s.MaxSessions, "max-sessions", s.MaxSessions, "Concurrent connections allowed")
	if err := fs.Parse(args); err != nil {
		return s, err
	}
	if s.MaxSessions < 1 {
		return s, fmt.Errorf("max-sessions must be at least 1, got %d", s.MaxSessions)
	}
	return s, nil
}

func main() {
	cfg, err := parseSettings(flag.CommandLine, os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))

	tuning, err := config.Load(cfg.Tuning)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	signer, err := loadOrCreateHostKey(cfg.HostKey, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := serve(ctx, cfg, tuning, signer, log); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// serve runs the SSH server until ctx is done, then shuts it down.
func serve(ctx context.Context, cfg settings, tuning config.Tuning, signer gossh.Signer, log *slog.Logger) error {
	h := &host{
		tuning: tuning,
		seed:   cfg.Seed,
		slots:  make(chan struct{}, cfg.MaxSessions),
		log:    log,
	}
	srv := &gossh.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: h.handleSession,
		// Accept PTY requests from any client.
		PtyCallback: func(_ gossh.Context, _ gossh.Pty) bool { return true },
		// Accept any authentication; add gossh.PublicKeyAuth for real auth.
		HostSigners: []gossh.Signer{signer},
	}

	grp, ctx := errgroup.WithContext(ctx)
	grp.Go(func() error {
		log.Info("district9 SSH server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, gossh.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})
	grp.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		log.Info("shutting down")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			_ = srv.Close()
		}
		return nil
	})
	return grp.Wait()
}

// ─── sessions ───────────────────────────────────────────────────────────────

// host runs one scene per SSH connection.
type host struct {
	tuning config.Tuning
	seed   int64
	slots  chan struct{}
	nextID atomic.Uint64
	log    *slog.Logger
}

// handleSession is the gliderlabs SSH handler for one connection.
// It blocks for the duration of the connection so the SSH session stays open.
func (h *host) handleSession(s gossh.Session) {
	id := h.nextID.Add(1)
	log := h.log.With("session", id, "player", sanitizeName(s.User()), "remote", s.RemoteAddr().String())

	pty, winCh, hasPTY := s.Pty()
	if !hasPTY {
		fmt.Fprintln(s, "District 9 needs a terminal. Connect with: ssh -t -p <port> <host>")
		return
	}

	select {
	case h.slots <- struct{}{}:
		defer func() { <-h.slots }()
	default:
		fmt.Fprintln(s, "The district is full. Try again in a minute.")
		log.Warn("connection refused: server full")
		return
	}

	screen, err := newSessionScreen(s, pty, winCh)
	if err != nil {
		fmt.Fprintf(s, "Terminal setup failed: %v\n", err)
		log.Warn("terminal setup failed", "err", err)
		return
	}
	defer screen.Fini()

	log.Info("player connected", "term", termOf(pty.Term, s.Environ()))
	start := time.Now()

	g := game.New(screen, h.tuning, mrand.New(mrand.NewSource(h.sessionSeed(id))), log)
	if err := g.Run(s.Context()); err != nil {
		log.Warn("scene stopped", "err", err)
	}
	rl := g.RunLog()
	log.Info("player disconnected",
		"duration", time.Since(start).Round(time.Second),
		"ticks", rl.Ticks,
		"talks", rl.Talks,
		"dismissals", rl.Dismissals)
}

// sessionSeed keeps each connection's layout distinct while a fixed --seed
// still makes the whole run reproducible.
func (h *host) sessionSeed(id uint64) int64 {
	if h.seed == 0 {
		return time.Now().UnixNano() + int64(id)
	}
	return h.seed + int64(id) - 1
}

// termMu protects os.Setenv("TERM") around screen creation.
var termMu sync.Mutex

// newSessionScreen creates a tcell screen backed by the SSH session.
// TERM must be set in the process environment before NewTerminfoScreenFromTty.
func newSessionScreen(s gossh.Session, pty gossh.Pty, winCh <-chan gossh.Window) (tcell.Screen, error) {
	tty := internalssh.NewSessionTty(s, pty.Window, winCh)
	termMu.Lock()
	_ = os.Setenv("TERM", termOf(pty.Term, s.Environ()))
	screen, err := tcell.NewTerminfoScreenFromTty(tty)
	termMu.Unlock()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnableMouse()
	return screen, nil
}

// allowedTerms are the terminal types clients may select. Anything else
// falls back to xterm-256color so a client cannot point terminfo lookups at
// arbitrary names.
var allowedTerms = map[string]bool{
	"xterm":                 true,
	"xterm-256color":        true,
	"screen":                true,
	"screen-256color":       true,
	"tmux":                  true,
	"tmux-256color":         true,
	"linux":                 true,
	"vt100":                 true,
	"vt220":                 true,
	"rxvt-unicode":          true,
	"rxvt-unicode-256color": true,
}

const fallbackTerm = "xterm-256color"

// termOf picks the terminal type from the PTY request, then the session
// environment.
func termOf(ptyTerm string, environ []string) string {
	if allowedTerms[ptyTerm] {
		return ptyTerm
	}
	for _, e := range environ {
		if v, ok := strings.CutPrefix(e, "TERM="); ok && allowedTerms[v] {
			return v
		}
	}
	return fallbackTerm
}

// maxNameBytes caps player names shown in logs.
const maxNameBytes = 16

// sanitizeName strips control characters from an SSH user name and caps it
// at maxNameBytes without splitting a rune.
func sanitizeName(name string) string {
	var b strings.Builder
	for _, r := range name {
		if unicode.IsControl(r) || r == utf8.RuneError {
			continue
		}
		if b.Len()+utf8.RuneLen(r) > maxNameBytes {
			break
		}
		b.WriteRune(r)
	}
	return b.String()
}

// ─── host key ───────────────────────────────────────────────────────────────

// loadOrCreateHostKey loads a PEM private key from path, or generates and
// persists a new ed25519 key if the file is absent or unreadable.
func loadOrCreateHostKey(path string, log *slog.Logger) (gossh.Signer, error) {
	if data, err := os.ReadFile(path); err == nil {
		if signer, err := xssh.ParsePrivateKey(data); err == nil {
			log.Info("loaded host key", "path", path)
			return signer, nil
		}
	}

	log.Info("generating new ed25519 host key", "path", path)
	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generate host key: %w", err)
	}
	signer, err := xssh.NewSignerFromKey(key)
	if err != nil {
		return nil, fmt.Errorf("create signer: %w", err)
	}
	// Persist for next run (non-fatal if it fails).
	if pemBlock, err := xssh.MarshalPrivateKey(key, "district9 server"); err == nil {
		if err := os.WriteFile(path, pem.EncodeToMemory(pemBlock), 0o600); err != nil {
			log.Warn("could not persist host key", "path", path, "err", err)
		}
	}
	return signer, nil
}
