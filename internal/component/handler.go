package component

import (
	"context"
	"encoding/json"
	"fmt"
)

// HandlerFunc reacts to one inbound event addressed to a component.
type HandlerFunc func(ctx context.Context, ev Event) error

// Handler pairs a handler function with the permanent ID embedded in
// addresses. The permanent ID must not change between renders of the same
// logical control.
type Handler struct {
	Name        string
	PermanentID string
	Fn          HandlerFunc
}

// Call invokes the handler. A nil function is a no-op.
func (h *Handler) Call(ctx context.Context, ev Event) error {
	if h == nil || h.Fn == nil {
		return nil
	}
	return h.Fn(ctx, ev)
}

// Event is what a handler receives: the decoded button argument for button
// presses, or the free-form message for captured input.
type Event struct {
	ChatID  string
	Arg     Arg
	Message *Message
}

// Arg is the serialized argument carried by a button address.
type Arg struct {
	raw     string
	present bool
}

// NewArg wraps a raw argument decoded from an address.
func NewArg(raw string, present bool) Arg {
	return Arg{raw: raw, present: present}
}

// Present reports whether the button carried an argument.
func (a Arg) Present() bool { return a.present }

// Raw returns the serialized argument.
func (a Arg) Raw() string { return a.raw }

// Decode unmarshals the argument into v. Failures wrap ErrMalformedAddress:
// the button data did not come from a render of this tree.
func (a Arg) Decode(v any) error {
	if !a.present {
		return fmt.Errorf("decode argument: %w: %w", ErrMalformedAddress, ErrMissingArg)
	}
	if err := json.Unmarshal([]byte(a.raw), v); err != nil {
		return fmt.Errorf("decode argument %q: %w: %w", a.raw, ErrMalformedAddress, err)
	}
	return nil
}

// MessageKind declares which free-form messages a pending input request
// accepts.
type MessageKind int

const (
	KindText MessageKind = iota + 1
	KindMedia
	KindAny
)

func (k MessageKind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindMedia:
		return "media"
	case KindAny:
		return "any"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Accepts reports whether msg is of this kind.
func (k MessageKind) Accepts(msg Message) bool {
	switch k {
	case KindText:
		return msg.Media == nil && msg.Text != ""
	case KindMedia:
		return msg.Media != nil
	case KindAny:
		return true
	default:
		return false
	}
}

// MediaRef is the transport's description of an attachment.
type MediaRef struct {
	Type   string `json:"type"`
	FileID string `json:"file_id"`
}

// Message is an inbound free-form message. Raw carries the transport payload
// for collaborators that need more than text and attachment.
type Message struct {
	ID    int64
	Text  string
	Media *MediaRef
	Raw   any
}
