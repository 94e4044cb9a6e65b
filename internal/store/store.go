// Package store persists per-chat menu sessions.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/atomicstack/chatmenu/internal/component"
)

// ErrClosed is returned by a store used after Close.
var ErrClosed = errors.New("store closed")

// Record is everything kept between updates for one chat.
type Record struct {
	// State is the root component's state. It is stored as JSON, so numbers
	// come back as float64.
	State component.State
	// MessageID identifies the menu message to edit. Zero means none was sent.
	MessageID int64
	// Pending is the handler awaiting the chat's next free-form message.
	Pending *component.PendingInput
	// Fingerprint is the canonical digest of the last payload sent.
	Fingerprint string
}

// Store loads and saves records by chat ID.
type Store interface {
	Load(ctx context.Context, chatID string) (Record, bool, error)
	Save(ctx context.Context, chatID string, rec Record) error
	Delete(ctx context.Context, chatID string) error
	Close() error
}

type encodedRecord struct {
	state       string
	messageID   int64
	pending     string
	fingerprint string
}

func encode(rec Record) (encodedRecord, error) {
	state := rec.State
	if state == nil {
		state = component.State{}
	}
	rawState, err := json.Marshal(state)
	if err != nil {
		return encodedRecord{}, fmt.Errorf("encode state: %w", err)
	}
	out := encodedRecord{state: string(rawState), messageID: rec.MessageID, fingerprint: rec.Fingerprint}
	if rec.Pending != nil {
		rawPending, err := json.Marshal(rec.Pending)
		if err != nil {
			return encodedRecord{}, fmt.Errorf("encode pending input: %w", err)
		}
		out.pending = string(rawPending)
	}
	return out, nil
}

func decode(enc encodedRecord) (Record, error) {
	rec := Record{MessageID: enc.messageID, Fingerprint: enc.fingerprint}
	if err := json.Unmarshal([]byte(enc.state), &rec.State); err != nil {
		return Record{}, fmt.Errorf("decode state: %w", err)
	}
	if enc.pending != "" {
		var pending component.PendingInput
		if err := json.Unmarshal([]byte(enc.pending), &pending); err != nil {
			return Record{}, fmt.Errorf("decode pending input: %w", err)
		}
		rec.Pending = &pending
	}
	return rec, nil
}
