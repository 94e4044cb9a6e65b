package events

import "github.com/atomicstack/chatmenu/internal/logging"

type InputTracer struct{}

var Input = InputTracer{}

func (InputTracer) Pending(chat, target, pid, kind string) {
	logging.Trace("input.pending", map[string]interface{}{"chat": chat, "target": target, "pid": pid, "kind": kind})
}

func (InputTracer) Dropped(chat, target, pid string) {
	logging.Trace("input.dropped", map[string]interface{}{"chat": chat, "target": target, "pid": pid})
}

func (InputTracer) Cleared(chat string) {
	logging.Trace("input.cleared", map[string]interface{}{"chat": chat})
}
