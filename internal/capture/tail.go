package capture

import "sync"

// TailBuffer keeps the most recent bytes written to it, up to a fixed
// capacity. Writes past capacity discard the oldest bytes. Safe for
// concurrent use; the PTY pump writes while HTTP handlers read tails.
type TailBuffer struct {
	mu  sync.Mutex
	buf []byte
	max int
}

// NewTailBuffer returns a buffer retaining at most max bytes.
func NewTailBuffer(max int) *TailBuffer {
	if max <= 0 {
		max = 1
	}
	return &TailBuffer{max: max}
}

// Write implements io.Writer. It never fails.
func (t *TailBuffer) Write(p []byte) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(p) >= t.max {
		t.buf = append(t.buf[:0], p[len(p)-t.max:]...)
		return len(p), nil
	}
	t.buf = append(t.buf, p...)
	if over := len(t.buf) - t.max; over > 0 {
		// copy down rather than re-slice so the backing array stays bounded
		t.buf = append(t.buf[:0], t.buf[over:]...)
	}
	return len(p), nil
}

// Tail returns a copy of up to size trailing bytes. A size larger than the
// retained content returns everything retained.
func (t *TailBuffer) Tail(size int) []byte {
	t.mu.Lock()
	defer t.mu.Unlock()
	if size <= 0 {
		return nil
	}
	start := 0
	if size < len(t.buf) {
		start = len(t.buf) - size
	}
	out := make([]byte, len(t.buf)-start)
	copy(out, t.buf[start:])
	return out
}

// Len reports how many bytes are currently retained.
func (t *TailBuffer) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.buf)
}
