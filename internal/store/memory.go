package store

import (
	"context"
	"sync"

	"github.com/atomicstack/chatmenu/internal/logging/events"
)

const memoryBackend = "memory"

type memoryStore struct {
	mu      sync.Mutex
	records map[string]encodedRecord
	closed  bool
}

// NewMemory returns a store that keeps records in process memory. Records are
// held encoded, so a loaded record never aliases the saved one.
func NewMemory() Store {
	events.Store.Open(memoryBackend, "")
	return &memoryStore{records: make(map[string]encodedRecord)}
}

func (s *memoryStore) Load(_ context.Context, chatID string) (Record, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return Record{}, false, ErrClosed
	}
	enc, ok := s.records[chatID]
	events.Store.Load(memoryBackend, chatID, ok)
	if !ok {
		return Record{}, false, nil
	}
	rec, err := decode(enc)
	if err != nil {
		events.Store.Error(memoryBackend, "load", err)
		return Record{}, false, err
	}
	return rec, true, nil
}

func (s *memoryStore) Save(_ context.Context, chatID string, rec Record) error {
	enc, err := encode(rec)
	if err != nil {
		events.Store.Error(memoryBackend, "save", err)
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	s.records[chatID] = enc
	events.Store.Save(memoryBackend, chatID)
	return nil
}

func (s *memoryStore) Delete(_ context.Context, chatID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	delete(s.records, chatID)
	return nil
}

func (s *memoryStore) Close() error {
	s.mu.Lock()
	s.closed = true
	s.records = nil
	s.mu.Unlock()
	return nil
}
