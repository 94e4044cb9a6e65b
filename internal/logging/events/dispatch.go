package events

import "github.com/atomicstack/chatmenu/internal/logging"

type DispatchTracer struct{}

type unroutedReason string

const (
	UnroutedNoPending    unroutedReason = "no-pending"
	UnroutedKindMismatch unroutedReason = "kind-mismatch"
)

var Dispatch = DispatchTracer{}

func (DispatchTracer) Update(chat, kind, data string) {
	logging.Trace("dispatch.update", map[string]interface{}{"chat": chat, "kind": kind, "data": data})
}

func (DispatchTracer) Handled(chat, target, handler string) {
	logging.Trace("dispatch.handled", map[string]interface{}{"chat": chat, "target": target, "handler": handler})
}

func (DispatchTracer) Rejected(chat, target, key string) {
	logging.Trace("dispatch.rejected", map[string]interface{}{"chat": chat, "target": target, "key": key})
}

func (DispatchTracer) Expired(chat, data string) {
	logging.Trace("dispatch.expired", map[string]interface{}{"chat": chat, "data": data})
}

func (DispatchTracer) Unrouted(chat string, reason unroutedReason) {
	logging.Trace("dispatch.unrouted", map[string]interface{}{"chat": chat, "reason": string(reason)})
}

func (DispatchTracer) Error(chat string, err error) {
	if err == nil {
		return
	}
	logging.Trace("dispatch.error", map[string]interface{}{"chat": chat, "error": err.Error()})
}
