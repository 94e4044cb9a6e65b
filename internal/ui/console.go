package ui

import (
	"context"
	"fmt"
	"sync"

	"github.com/atomicstack/chatmenu/internal/component"
)

// Message is the menu message as the console currently shows it.
type Message struct {
	ID      int64
	Payload component.RenderResult
}

// Console is the transport the dispatcher delivers to when the menu runs in a
// terminal. It keeps the single menu message and the notices raised since the
// model last looked.
type Console struct {
	mu      sync.Mutex
	nextID  int64
	current Message
	notices []string
}

// NewConsole returns an empty console transport.
func NewConsole() *Console {
	return &Console{}
}

func (c *Console) Send(_ context.Context, _ string, payload component.RenderResult) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.nextID++
	c.current = Message{ID: c.nextID, Payload: payload}
	return c.nextID, nil
}

// Edit replaces the message on screen. A console with nothing on screen adopts
// messageID, which happens when a stored session outlives the process.
func (c *Console) Edit(_ context.Context, _ string, messageID int64, payload component.RenderResult) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.current.ID == 0 {
		c.current.ID = messageID
		if messageID > c.nextID {
			c.nextID = messageID
		}
	}
	if messageID != c.current.ID {
		return fmt.Errorf("edit message %d: only message %d is on screen", messageID, c.current.ID)
	}
	c.current.Payload = payload
	return nil
}

func (c *Console) Notify(_ context.Context, _ string, text string) error {
	c.mu.Lock()
	c.notices = append(c.notices, text)
	c.mu.Unlock()
	return nil
}

// Current returns the message on screen.
func (c *Console) Current() Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// TakeNotices returns and clears pending notices.
func (c *Console) TakeNotices() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := c.notices
	c.notices = nil
	return out
}
