package statusline

import (
	"time"

	"github.com/mattn/go-runewidth"

	"github.com/dshills/milli/internal/renderer/backend"
	"github.com/dshills/milli/internal/renderer/core"
)

// DefaultMessageTimeout is how long a message stays on screen.
const DefaultMessageTimeout = 5 * time.Second

// Message is a one-line notice stamped with the time it was set.
type Message struct {
	Text string
	Time time.Time
}

// NewMessage creates a message stamped at now.
func NewMessage(text string, now time.Time) Message {
	return Message{Text: text, Time: now}
}

// Visible reports whether the message is younger than ttl at now.
func (m Message) Visible(now time.Time, ttl time.Duration) bool {
	return m.Text != "" && now.Sub(m.Time) < ttl
}

// MessageBar shows the current message until it expires.
type MessageBar struct {
	message Message
	timeout time.Duration
}

// NewMessageBar creates a message bar. A non-positive timeout selects
// DefaultMessageTimeout.
func NewMessageBar(timeout time.Duration) *MessageBar {
	if timeout <= 0 {
		timeout = DefaultMessageTimeout
	}
	return &MessageBar{timeout: timeout}
}

// SetMessage replaces the current message.
func (m *MessageBar) SetMessage(msg Message) {
	m.message = msg
}

// Message returns the current message.
func (m *MessageBar) Message() Message {
	return m.message
}

// Timeout returns how long messages stay visible.
func (m *MessageBar) Timeout() time.Duration {
	return m.timeout
}

// Render clears the row and draws the message if it has not expired.
func (m *MessageBar) Render(b backend.Backend, row int, now time.Time) {
	width, _ := b.Size()
	backend.ClearLine(b, row, core.DefaultStyle())
	if !m.message.Visible(now, m.timeout) {
		return
	}
	backend.DrawString(b, 0, row, runewidth.Truncate(m.message.Text, width, ""), core.DefaultStyle())
}
