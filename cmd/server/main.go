// boundless-server serves the terrain viewer over SSH. Every connection gets
// its own world and camera. Build:
//
//	go build -o boundless-server ./cmd/server
//
// Usage:
//
//	./boundless-server [--config boundless.yaml] [--port 2222] [--key server_host_key]
//
// Connect with:
//
//	ssh -t -p 2222 localhost
package main

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"flag"
	"fmt"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"unicode"

	"boundless/internal/config"
	"boundless/internal/game"
	internalssh "boundless/internal/ssh"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	xssh "golang.org/x/crypto/ssh"
)

func main() {
	cfgPath := flag.String("config", "", "Path to a YAML/TOML/JSON config file")
	port := flag.Int("port", 0, "SSH server port (overrides server.port)")
	keyFile := flag.String("key", "", "PEM host key path, generated if absent (overrides server.host_key)")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		logrus.Fatalf("config: %v", err)
	}
	if *port != 0 {
		cfg.Server.Port = *port
	}
	if *keyFile != "" {
		cfg.Server.HostKey = *keyFile
	}
	log, err := cfg.Log.NewLogger(os.Stderr)
	if err != nil {
		logrus.Fatalf("logger: %v", err)
	}

	signer, err := loadOrCreateHostKey(cfg.Server.HostKey, log)
	if err != nil {
		log.WithError(err).Fatal("host key")
	}
	h := &handler{opts: game.OptionsFrom(cfg), log: log}

	srv := &gossh.Server{
		Addr:        fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:     h.handleSession,
		PtyCallback: func(_ gossh.Context, _ gossh.Pty) bool { return true },
		HostSigners: []gossh.Signer{signer},
	}

	log.WithField("addr", srv.Addr).Info("boundless SSH server listening")
	log.Fatal(srv.ListenAndServe())
}

// handler runs one viewer per SSH session.
type handler struct {
	opts game.Options
	log  logrus.FieldLogger
	next atomic.Uint64
}

// allowedTerms are the TERM values a client may request. Anything else falls
// back to xterm-256color so a hostile TERM cannot point terminfo elsewhere.
var allowedTerms = map[string]bool{
	"xterm":                 true,
	"xterm-256color":        true,
	"screen":                true,
	"screen-256color":       true,
	"tmux":                  true,
	"tmux-256color":         true,
	"linux":                 true,
	"vt100":                 true,
	"rxvt-unicode-256color": true,
}

const defaultTerm = "xterm-256color"

// sessionTerm picks the terminal type. The pty request's term wins; a TERM
// variable in the session environment is the fallback.
func sessionTerm(ptyTerm string, environ []string) string {
	if allowedTerms[ptyTerm] {
		return ptyTerm
	}
	for _, env := range environ {
		if t, ok := strings.CutPrefix(env, "TERM="); ok && allowedTerms[t] {
			return t
		}
	}
	return defaultTerm
}

// sanitizeName strips control characters from a client-supplied user name and
// caps it at 16 bytes without splitting a rune.
func sanitizeName(s string) string {
	const maxLen = 16
	var b strings.Builder
	for _, r := range s {
		if unicode.IsControl(r) || r == unicode.ReplacementChar {
			continue
		}
		if b.Len()+len(string(r)) > maxLen {
			break
		}
		b.WriteRune(r)
	}
	return b.String()
}

// termMu serializes os.Setenv("TERM") around terminfo screen creation.
var termMu sync.Mutex

func (h *handler) handleSession(s gossh.Session) {
	log := h.log.WithFields(logrus.Fields{
		"session": h.next.Add(1),
		"user":    sanitizeName(s.User()),
		"remote":  s.RemoteAddr().String(),
	})

	pty, winCh, hasPTY := s.Pty()
	if !hasPTY {
		fmt.Fprintln(s, "boundless needs a terminal. Connect with: ssh -t -p <port> <host>")
		log.Info("rejected session without pty")
		return
	}

	tty := internalssh.NewSessionTty(s, pty, winCh)
	termMu.Lock()
	_ = os.Setenv("TERM", sessionTerm(pty.Term, s.Environ()))
	screen, err := tcell.NewTerminfoScreenFromTty(tty)
	termMu.Unlock()
	if err != nil {
		fmt.Fprintf(s, "Terminal setup failed: %v\n", err)
		log.WithError(err).Warn("terminal setup")
		return
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(s, "Screen init failed: %v\n", err)
		log.WithError(err).Warn("screen init")
		return
	}
	screen.EnableMouse()

	log.Info("session started")
	if err := game.New(screen, h.opts, log).Run(); err != nil {
		log.WithError(err).Error("viewer stopped")
		_ = s.Exit(1)
		return
	}
	log.Info("session ended")
}

// loadOrCreateHostKey loads a PEM private key from path, or generates and
// persists a new ed25519 key if the file is absent or unreadable.
func loadOrCreateHostKey(path string, log logrus.FieldLogger) (gossh.Signer, error) {
	if data, err := os.ReadFile(path); err == nil {
		if signer, err := xssh.ParsePrivateKey(data); err == nil {
			log.WithField("path", path).Info("loaded host key")
			return signer, nil
		}
	}

	log.WithField("path", path).Info("generating ed25519 host key")
	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generate host key: %w", err)
	}
	signer, err := xssh.NewSignerFromKey(key)
	if err != nil {
		return nil, fmt.Errorf("create signer: %w", err)
	}
	if block, err := xssh.MarshalPrivateKey(key, "boundless server"); err == nil {
		if err := os.WriteFile(path, pem.EncodeToMemory(block), 0o600); err != nil {
			log.WithError(err).Warn("host key not persisted")
		}
	}
	return signer, nil
}
