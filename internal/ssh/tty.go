// Package ssh adapts an SSH session channel to tcell so every connected
// client can run its own scene.
package ssh

import (
	"io"
	"sync"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
)

// Fallback size for clients that request a PTY without dimensions.
const (
	defaultCols = 80
	defaultRows = 24
)

// SessionTty implements tcell.Tty over an SSH session channel.
// Each connected SSH client gets its own SessionTty → tcell.Screen pair.
type SessionTty struct {
	conn  io.ReadWriteCloser
	winCh <-chan gossh.Window

	mu     sync.Mutex
	window gossh.Window
	cb     func() // resize callback registered by tcell
	watch  sync.Once
}

// NewSessionTty wraps an SSH channel as a tcell Tty. win is the size from
// the PTY request; winCh delivers later resizes. A gliderlabs session is
// passed as conn directly.
func NewSessionTty(conn io.ReadWriteCloser, win gossh.Window, winCh <-chan gossh.Window) *SessionTty {
	return &SessionTty{
		conn:   conn,
		window: win,
		winCh:  winCh,
	}
}

// Read reads raw bytes from the client (keyboard and mouse reports).
func (t *SessionTty) Read(b []byte) (int, error) { return t.conn.Read(b) }

// Write writes rendered output to the client.
func (t *SessionTty) Write(b []byte) (int, error) { return t.conn.Write(b) }

// Close closes the SSH channel.
func (t *SessionTty) Close() error { return t.conn.Close() }

// Start is a no-op: the SSH channel is already open.
func (t *SessionTty) Start() error { return nil }

// Stop is a no-op: the channel belongs to the server handler goroutine.
func (t *SessionTty) Stop() error { return nil }

// Drain is a no-op: SSH flushes writes immediately.
func (t *SessionTty) Drain() error { return nil }

// WindowSize returns the current terminal dimensions.
func (t *SessionTty) WindowSize() (tcell.WindowSize, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	w, h := t.window.Width, t.window.Height
	if w <= 0 || h <= 0 {
		w, h = defaultCols, defaultRows
	}
	return tcell.WindowSize{Width: w, Height: h}, nil
}

// NotifyResize registers the callback invoked on every window change. The
// first call starts draining the window-change channel for the lifetime of
// the session; later calls only swap the callback.
func (t *SessionTty) NotifyResize(cb func()) {
	t.mu.Lock()
	t.cb = cb
	t.mu.Unlock()

	if t.winCh == nil {
		return
	}
	t.watch.Do(func() {
		go func() {
			for win := range t.winCh {
				t.mu.Lock()
				t.window = win
				localCb := t.cb
				t.mu.Unlock()
				if localCb != nil {
					localCb()
				}
			}
		}()
	})
}
