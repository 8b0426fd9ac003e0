// Package ssh adapts gliderlabs SSH sessions to tcell terminals.
package ssh

import (
	"sync"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
)

// SessionTty is a tcell.Tty over one SSH channel. Keyboard and mouse bytes
// come from the session's stdin; frames go back out on its stdout.
type SessionTty struct {
	gossh.Session

	mu       sync.Mutex
	size     gossh.Window
	resizes  <-chan gossh.Window
	onResize func()
	watching bool
}

var _ tcell.Tty = (*SessionTty)(nil)

// NewSessionTty wraps s. pty carries the initial size; resizes delivers
// later window changes.
func NewSessionTty(s gossh.Session, pty gossh.Pty, resizes <-chan gossh.Window) *SessionTty {
	return &SessionTty{Session: s, size: pty.Window, resizes: resizes}
}

// Start, Stop and Drain have nothing to do: the channel is opened and torn
// down by the SSH server.
func (t *SessionTty) Start() error { return nil }
func (t *SessionTty) Stop() error  { return nil }
func (t *SessionTty) Drain() error { return nil }

// WindowSize reports the client's last announced terminal size.
func (t *SessionTty) WindowSize() (tcell.WindowSize, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return tcell.WindowSize{Width: t.size.Width, Height: t.size.Height}, nil
}

// NotifyResize sets the callback tcell uses to learn about window changes.
// The first call starts draining the resize channel for the session's life.
func (t *SessionTty) NotifyResize(cb func()) {
	t.mu.Lock()
	t.onResize = cb
	start := !t.watching && t.resizes != nil
	t.watching = true
	t.mu.Unlock()

	if start {
		go t.watch()
	}
}

func (t *SessionTty) watch() {
	for win := range t.resizes {
		t.mu.Lock()
		t.size = win
		cb := t.onResize
		t.mu.Unlock()
		if cb != nil {
			cb()
		}
	}
}
