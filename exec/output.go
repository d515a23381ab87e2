package exec

import (
	"bytes"
	"sync"
)

// capture buffers one output stream and mirrors every write into the shared
// combined buffer so interleaving order is preserved.
type capture struct {
	buffer   bytes.Buffer
	combined *combinedWriter
	limit    int
}

func newCapture(combined *combinedWriter, limit int) *capture {
	return &capture{combined: combined, limit: limit}
}

// Write never fails. Bytes past the limit are dropped.
func (c *capture) Write(p []byte) (int, error) {
	c.combined.mu.Lock()
	defer c.combined.mu.Unlock()

	kept := p
	if c.limit > 0 {
		room := c.limit - c.buffer.Len()
		if room <= 0 {
			return len(p), nil
		}
		if len(kept) > room {
			kept = kept[:room]
		}
	}
	c.buffer.Write(kept)
	c.combined.buffer.Write(kept)
	return len(p), nil
}

// String returns the captured output as a string.
func (c *capture) String() string {
	c.combined.mu.Lock()
	defer c.combined.mu.Unlock()
	return c.buffer.String()
}

// combinedWriter combines stdout and stderr into a single output stream.
type combinedWriter struct {
	buffer bytes.Buffer
	mu     sync.Mutex
}

// String returns the combined output as a string.
func (cw *combinedWriter) String() string {
	cw.mu.Lock()
	defer cw.mu.Unlock()
	return cw.buffer.String()
}
