package events

import "github.com/atomicstack/chatmenu/internal/logging"

type StoreTracer struct{}

var Store = StoreTracer{}

func (StoreTracer) Open(backend, location string) {
	logging.Trace("store.open", map[string]interface{}{"backend": backend, "location": location})
}

func (StoreTracer) Load(backend, chat string, found bool) {
	logging.Trace("store.load", map[string]interface{}{"backend": backend, "chat": chat, "found": found})
}

func (StoreTracer) Save(backend, chat string) {
	logging.Trace("store.save", map[string]interface{}{"backend": backend, "chat": chat})
}

func (StoreTracer) Error(backend, op string, err error) {
	if err == nil {
		return
	}
	logging.Trace("store.error", map[string]interface{}{"backend": backend, "op": op, "error": err.Error()})
}
