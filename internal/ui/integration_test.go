package ui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/chatmenu/internal/demo"
	"github.com/atomicstack/chatmenu/internal/dispatcher"
	"github.com/atomicstack/chatmenu/internal/i18n"
	"github.com/atomicstack/chatmenu/internal/store"
)

func newTestHarness(t *testing.T) *Harness {
	t.Helper()
	st := store.NewMemory()
	t.Cleanup(func() { _ = st.Close() })
	console := NewConsole()
	d := dispatcher.New(demo.Root(demo.Props{PerPage: 10, Columns: 3}), st, console, i18n.Default())
	h := NewHarness(NewModel(context.Background(), "c", d, console, 80, 40))
	h.Start()
	return h
}

func stubFileID(t *testing.T, id string) {
	t.Helper()
	orig := newFileID
	newFileID = func() string { return id }
	t.Cleanup(func() { newFileID = orig })
}

func TestOpenRendersMenu(t *testing.T) {
	h := newTestHarness(t)

	view := h.View()
	for _, want := range []string{"chat c", "Profile", "name: —", "avatar: 🌫", "✅ Save"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in view:\n%s", want, view)
		}
	}
	if h.Model().loading {
		t.Fatalf("expected loading to finish after open")
	}
	if h.Model().message.ID != 1 {
		t.Fatalf("expected message 1, got %d", h.Model().message.ID)
	}
}

func TestTextInputRoundTrip(t *testing.T) {
	h := newTestHarness(t)

	h.Press(tea.KeyEnter)
	if h.Model().pending == nil {
		t.Fatalf("expected pending input after expanding name")
	}
	if view := h.View(); !strings.Contains(view, "awaiting text for n") {
		t.Fatalf("expected pending hint, view:\n%s", view)
	}

	h.Press(tea.KeyTab)
	if h.Model().mode != ModeComposer {
		t.Fatalf("expected composer mode")
	}
	h.Type("Ada")
	h.Press(tea.KeyEnter)

	if h.Model().pending != nil {
		t.Fatalf("expected pending input cleared, got %+v", h.Model().pending)
	}
	if view := h.View(); !strings.Contains(view, "name: Ada") {
		t.Fatalf("expected name in view:\n%s", view)
	}
	if h.Model().composer.Value() != "" {
		t.Fatalf("expected composer to be cleared")
	}
}

func TestMediaAttachmentFromComposer(t *testing.T) {
	stubFileID(t, "file-1")
	h := newTestHarness(t)

	h.Press(tea.KeyDown)
	if h.Model().grid.Row != 1 {
		t.Fatalf("expected cursor on row 1, got %d", h.Model().grid.Row)
	}
	h.Press(tea.KeyEnter)
	h.Press(tea.KeyTab)

	h.Type("hello")
	h.Press(tea.KeyEnter)
	if info := h.Model().currentInfo(); !strings.Contains(info, "Please send a photo") {
		t.Fatalf("expected media-required notice, got %q", info)
	}
	if h.Model().pending == nil {
		t.Fatalf("expected field to keep waiting after rejection")
	}

	h.Type("/photo")
	h.Press(tea.KeyEnter)
	if view := h.View(); !strings.Contains(view, "avatar: 🖼") {
		t.Fatalf("expected photo icon in view:\n%s", view)
	}
}

func TestMessageWithoutPendingTargetIsUnrouted(t *testing.T) {
	h := newTestHarness(t)

	h.Press(tea.KeyTab)
	h.Type("hello")
	h.Press(tea.KeyEnter)

	if info := h.Model().currentInfo(); info != "Nothing is waiting for a message." {
		t.Fatalf("expected unrouted info, got %q", info)
	}
}

func TestSubmitWithoutNameShowsNotice(t *testing.T) {
	h := newTestHarness(t)

	h.Press(tea.KeyEnd)
	h.Press(tea.KeyHome)
	h.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'G'}})
	h.Press(tea.KeyLeft)
	if btn, _ := h.Model().focusedButton(); btn.Label != "✅ Save" {
		t.Fatalf("expected save focused, got %q", btn.Label)
	}
	h.Press(tea.KeyEnter)

	if info := h.Model().currentInfo(); info != "Please fill in the name before submitting." {
		t.Fatalf("expected rejection notice, got %q", info)
	}
}

func TestEscapeReturnsToKeyboard(t *testing.T) {
	h := newTestHarness(t)

	h.Press(tea.KeyTab)
	h.Press(tea.KeyEsc)
	if h.Model().mode != ModeKeyboard {
		t.Fatalf("expected keyboard mode after esc")
	}
}

func TestQuitKeys(t *testing.T) {
	for _, key := range []tea.KeyMsg{
		{Type: tea.KeyCtrlC},
		{Type: tea.KeyRunes, Runes: []rune{'q'}},
		{Type: tea.KeyEsc},
	} {
		h := newTestHarness(t)
		_, cmd := h.Model().Update(key)
		if cmd == nil {
			t.Fatalf("expected quit command for %q", key.String())
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Fatalf("expected quit message for %q", key.String())
		}
	}
}

func TestWindowSizeIgnoredWhenFixed(t *testing.T) {
	h := newTestHarness(t)
	h.Send(tea.WindowSizeMsg{Width: 120, Height: 50})
	if h.Model().width != 80 || h.Model().height != 40 {
		t.Fatalf("expected fixed size 80x40, got %dx%d", h.Model().width, h.Model().height)
	}
}

func TestInitialSizeUntilWindowSize(t *testing.T) {
	console := NewConsole()
	m := NewModel(context.Background(), "c", nil, console, 0, 24)
	m.SetInitialSize(100, 50)
	if m.width != 100 || m.height != 24 {
		t.Fatalf("expected initial size 100x24, got %dx%d", m.width, m.height)
	}
	if m.composer.Width != m.composerWidth() {
		t.Fatalf("expected composer width %d, got %d", m.composerWidth(), m.composer.Width)
	}

	m.Update(tea.WindowSizeMsg{Width: 70, Height: 30})
	if m.width != 70 || m.height != 24 {
		t.Fatalf("expected resized width 70 with fixed height 24, got %dx%d", m.width, m.height)
	}
}
