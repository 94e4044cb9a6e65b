package events

import "github.com/atomicstack/chatmenu/internal/logging"

type RenderTracer struct{}

var Render = RenderTracer{}

func (RenderTracer) Done(chat, fingerprint string, rows int) {
	logging.Trace("render.done", map[string]interface{}{"chat": chat, "fingerprint": fingerprint, "rows": rows})
}

func (RenderTracer) Skipped(chat, fingerprint string) {
	logging.Trace("render.skipped", map[string]interface{}{"chat": chat, "fingerprint": fingerprint})
}

func (RenderTracer) Sent(chat string, messageID int64, edit bool) {
	logging.Trace("render.sent", map[string]interface{}{"chat": chat, "message": messageID, "edit": edit})
}
