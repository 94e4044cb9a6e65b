package media

import (
	"testing"

	"github.com/atomicstack/chatmenu/internal/component"
)

func TestInspect(t *testing.T) {
	if _, ok := Inspect(component.Message{Text: "hello"}); ok {
		t.Fatalf("expected no media for a text message")
	}
	if _, ok := Inspect(component.Message{Media: &component.MediaRef{Type: "photo"}}); ok {
		t.Fatalf("expected no media without a file reference")
	}
	info, ok := Inspect(component.Message{Media: &component.MediaRef{Type: "video", FileID: "abc"}})
	if !ok {
		t.Fatalf("expected media")
	}
	if info.Type != Video || info.FileID != "abc" {
		t.Fatalf("unexpected info %#v", info)
	}
}

func TestIconFallsBackForUnknownTypes(t *testing.T) {
	if got := Icon(Photo); got != "🖼" {
		t.Fatalf("expected photo icon, got %q", got)
	}
	if got := Icon(Type("sticker")); got != "📎" {
		t.Fatalf("expected fallback icon, got %q", got)
	}
}

func TestContains(t *testing.T) {
	if !Contains(AllTypes, Document) {
		t.Fatalf("expected document in all types")
	}
	if Contains([]Type{Photo}, Video) {
		t.Fatalf("did not expect video")
	}
}
