package events

import "github.com/atomicstack/chatmenu/internal/logging"

type UITracer struct{}

type ComposerTracer struct{}

var (
	UI       = UITracer{}
	Composer = ComposerTracer{}
)

func (UITracer) Cursor(row, col int) {
	logging.Trace("ui.cursor", map[string]interface{}{"row": row, "col": col})
}

func (UITracer) Press(label, data string) {
	logging.Trace("ui.press", map[string]interface{}{"label": label, "data": data})
}

func (UITracer) Notice(text string) {
	logging.Trace("ui.notice", map[string]interface{}{"text": text})
}

func (UITracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("ui.error", map[string]interface{}{"error": err.Error()})
}

func (ComposerTracer) Focus(focused bool) {
	logging.Trace("composer.focus", map[string]interface{}{"focused": focused})
}

func (ComposerTracer) Text(text string) {
	logging.Trace("composer.text", map[string]interface{}{"text": text})
}

func (ComposerTracer) Attach(mediaType, fileID string) {
	logging.Trace("composer.attach", map[string]interface{}{"type": mediaType, "file": fileID})
}

type CommandTracer struct{}

var Command = CommandTracer{}

func (CommandTracer) Queue(id, label string) {
	logging.Trace("command.queue", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Result(id, label, status string) {
	logging.Trace("command.result", map[string]interface{}{"id": id, "label": label, "status": status})
}

func (CommandTracer) Error(id, label string, err error) {
	if err == nil {
		return
	}
	logging.Trace("command.error", map[string]interface{}{"id": id, "label": label, "error": err.Error()})
}
