package component

import "github.com/atomicstack/chatmenu/internal/address"

// PendingInput names the handler that should receive the chat's next
// free-form message of the declared kind.
type PendingInput struct {
	Path        address.Path `json:"path"`
	PermanentID string       `json:"pid"`
	Kind        MessageKind  `json:"kind"`
}

// Env is shared by every component of one tree for one cycle. It carries the
// chat identity and collects pending input requests raised while rendering.
type Env struct {
	ChatID   string
	requests []PendingInput
}

// NewEnv returns an environment for chatID.
func NewEnv(chatID string) *Env {
	return &Env{ChatID: chatID}
}

// Requests returns the pending input requests raised since the last Reset, in
// render order.
func (e *Env) Requests() []PendingInput {
	out := make([]PendingInput, len(e.requests))
	copy(out, e.requests)
	return out
}

// Reset drops collected requests. The dispatcher calls it before each render
// pass so requests from an earlier pass never leak into the next one.
func (e *Env) Reset() {
	e.requests = nil
}

func (e *Env) add(req PendingInput) {
	e.requests = append(e.requests, req)
}
