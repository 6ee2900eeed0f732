// Package capture runs named shell sessions on PTYs and retains the tail of
// their output so clients can fetch the last N bytes for decoding.
package capture

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"sync"
	"time"

	"github.com/creack/pty"

	"termtap/internal/system"
)

// DefaultRetain is how much trailing output a session keeps, per target.
const DefaultRetain = 256 * 1024

// Session is one named terminal target: a shell on a PTY with its recent
// output retained in a tail buffer and fanned out to live subscribers.
type Session struct {
	Name    string    `json:"name"`
	Created time.Time `json:"created"`

	tail *TailBuffer
	ptmx *os.File

	mu   sync.Mutex
	subs map[chan []byte]struct{}
}

// NewSession builds a session with buffers but no process. The PTY pump (or
// a test) feeds output in via Feed.
func NewSession(name string) *Session {
	return &Session{
		Name:    name,
		Created: time.Now(),
		tail:    NewTailBuffer(DefaultRetain),
		subs:    map[chan []byte]struct{}{},
	}
}

// StartShell launches the platform shell on a PTY under the given name and
// begins pumping its output into the session.
func StartShell(name, cwd string) (*Session, error) {
	sh, shArgs := defaultShell()
	cmd := exec.Command(sh, shArgs...)
	if cwd != "" {
		cmd.Dir = cwd
	}
	ptmx, err := pty.Start(cmd)
	if err != nil {
		return nil, fmt.Errorf("starting shell: %w", err)
	}
	s := NewSession(name)
	s.ptmx = ptmx
	go s.pump()
	system.Logger.Info("session started", "name", name, "shell", sh)
	return s, nil
}

func (s *Session) pump() {
	buf := make([]byte, 4096)
	for {
		n, err := s.ptmx.Read(buf)
		if n > 0 {
			s.Feed(buf[:n])
		}
		if err != nil {
			system.Logger.Debug("pty closed", "name", s.Name, "err", err)
			return
		}
	}
}

// Feed records output bytes into the tail buffer and broadcasts a copy to
// subscribers. Slow subscribers drop chunks rather than stall the pump.
func (s *Session) Feed(p []byte) {
	_, _ = s.tail.Write(p)
	out := make([]byte, len(p))
	copy(out, p)
	s.mu.Lock()
	for ch := range s.subs {
		select {
		case ch <- out:
		default:
		}
	}
	s.mu.Unlock()
}

// Tail returns a copy of up to size trailing output bytes.
func (s *Session) Tail(size int) []byte {
	return s.tail.Tail(size)
}

// Retained reports how many output bytes the session currently holds.
func (s *Session) Retained() int {
	return s.tail.Len()
}

// Subscribe registers a live output channel. The returned cancel func
// closes the channel; Feed sends under the same lock, so close cannot race
// a broadcast.
func (s *Session) Subscribe() (<-chan []byte, func()) {
	ch := make(chan []byte, 16)
	s.mu.Lock()
	s.subs[ch] = struct{}{}
	s.mu.Unlock()
	return ch, func() {
		s.mu.Lock()
		if _, ok := s.subs[ch]; ok {
			delete(s.subs, ch)
			close(ch)
		}
		s.mu.Unlock()
	}
}

// Write sends input bytes to the session's PTY.
func (s *Session) Write(p []byte) (int, error) {
	if s.ptmx == nil {
		return 0, fmt.Errorf("session %q has no pty", s.Name)
	}
	return s.ptmx.Write(p)
}

// Resize sets the PTY window size.
func (s *Session) Resize(cols, rows int) error {
	if s.ptmx == nil {
		return fmt.Errorf("session %q has no pty", s.Name)
	}
	return pty.Setsize(s.ptmx, &pty.Winsize{Cols: uint16(cols), Rows: uint16(rows)})
}

// Close tears the session down. Closing the PTY kills the child shell.
func (s *Session) Close() error {
	if s.ptmx == nil {
		return nil
	}
	return s.ptmx.Close()
}

// defaultShell returns the platform-appropriate shell and arguments.
func defaultShell() (string, []string) {
	if runtime.GOOS == "windows" {
		pwsh := os.Getenv("COMSPEC")
		if pwsh == "" {
			pwsh = "powershell.exe"
		}
		return pwsh, []string{}
	}
	if sh := os.Getenv("SHELL"); sh != "" {
		return sh, []string{"-l"}
	}
	if _, err := os.Stat("/bin/bash"); err == nil {
		return "/bin/bash", []string{"-l"}
	}
	return "/bin/sh", []string{"-l"}
}
