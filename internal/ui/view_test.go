package ui

import (
	"strings"
	"testing"

	"github.com/atomicstack/chatmenu/internal/component"
	uistate "github.com/atomicstack/chatmenu/internal/ui/state"
)

func TestViewTruncatesLongButtonLabels(t *testing.T) {
	m := &Model{chatID: "c", width: 20, grid: uistate.NewGrid(nil), composer: newComposer()}
	m.message = Message{ID: 1, Payload: component.RenderResult{
		Text:     "hi",
		Keyboard: component.Keyboard{{{Label: "a very long button label", Data: "x"}}},
	}}
	m.grid.SetWidths(rowWidths(m.message.Payload.Keyboard))

	view := m.View()
	if strings.Contains(view, "a very long button label") {
		t.Fatalf("expected label to be truncated:\n%s", view)
	}
	if !strings.Contains(view, "…") {
		t.Fatalf("expected ellipsis in view:\n%s", view)
	}
}

func TestViewLimitsHeight(t *testing.T) {
	m := &Model{chatID: "c", height: 4, grid: uistate.NewGrid(nil), composer: newComposer()}
	m.message = Message{ID: 1, Payload: component.RenderResult{Text: "1\n2\n3\n4\n5\n6"}}

	lines := strings.Split(m.View(), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d:\n%s", len(lines), strings.Join(lines, "\n"))
	}
}

func TestButtonWidth(t *testing.T) {
	if got := buttonWidth(0, 3); got != 0 {
		t.Fatalf("expected unlimited width, got %d", got)
	}
	if got := buttonWidth(30, 2); got != 12 {
		t.Fatalf("expected 12, got %d", got)
	}
	if got := buttonWidth(10, 5); got != buttonMinWidth {
		t.Fatalf("expected minimum width, got %d", got)
	}
}

func TestTruncateText(t *testing.T) {
	if got := truncateText("abcdef", 4); got != "abc…" {
		t.Fatalf("unexpected truncation %q", got)
	}
	if got := truncateText("abc", 4); got != "abc" {
		t.Fatalf("unexpected truncation %q", got)
	}
}
