package events

import "github.com/atomicstack/chatmenu/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Stop(chat string, err error) {
	payload := map[string]interface{}{"chat": chat}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("app.stop", payload)
}

func (AppTracer) Submit(chat string, values interface{}) {
	logging.Trace("app.submit", map[string]interface{}{"chat": chat, "values": values})
}
