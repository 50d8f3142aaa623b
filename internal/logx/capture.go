package logx

import (
	"bytes"
	"sync"

	"github.com/tidwall/gjson"
)

// Entry is one parsed structured log line.
type Entry struct {
	Level   string
	Message string
	Raw     string
}

// Field returns the value of a field in the entry.
func (e Entry) Field(name string) gjson.Result {
	return gjson.Get(e.Raw, name)
}

// Capture is an io.Writer that splits structured log output into lines.
// Tests pair it with New(capture, Config{JSON: true}).
type Capture struct {
	mu    sync.Mutex
	buf   bytes.Buffer
	lines []string
}

// Write implements io.Writer.
func (c *Capture) Write(p []byte) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, _ = c.buf.Write(p)
	for {
		data := c.buf.Bytes()
		idx := bytes.IndexByte(data, '\n')
		if idx == -1 {
			break
		}
		c.lines = append(c.lines, string(data[:idx]))
		c.buf.Next(idx + 1)
	}
	return len(p), nil
}

// Lines returns the complete lines written so far.
func (c *Capture) Lines() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, len(c.lines))
	copy(out, c.lines)
	return out
}

// Entries parses every captured line. Lines that are not JSON keep only Raw.
func (c *Capture) Entries() []Entry {
	lines := c.Lines()
	entries := make([]Entry, 0, len(lines))
	for _, line := range lines {
		entries = append(entries, parseEntry(line))
	}
	return entries
}

// Find returns the first entry with the given message.
func (c *Capture) Find(message string) (Entry, bool) {
	for _, e := range c.Entries() {
		if e.Message == message {
			return e, true
		}
	}
	return Entry{}, false
}

func parseEntry(line string) Entry {
	if !gjson.Valid(line) {
		return Entry{Raw: line}
	}
	level := gjson.Get(line, "level")
	if !level.Exists() {
		level = gjson.Get(line, "lvl")
	}
	msg := gjson.Get(line, "message")
	if !msg.Exists() {
		msg = gjson.Get(line, "msg")
	}
	return Entry{Level: level.String(), Message: msg.String(), Raw: line}
}
