package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/chatmenu/internal/component"
	"github.com/atomicstack/chatmenu/internal/dispatcher"
	"github.com/atomicstack/chatmenu/internal/logging/events"
	"github.com/atomicstack/chatmenu/internal/media"
	"github.com/atomicstack/chatmenu/internal/ui/command"
)

const composerCharLimit = 512

func newComposer() textinput.Model {
	ti := textinput.New()
	ti.Prompt = "› "
	ti.CharLimit = composerCharLimit
	ti.Placeholder = composerPlaceholder(nil)
	ti.PromptStyle = *styles.ComposerPrompt
	ti.TextStyle = *styles.ComposerText
	ti.PlaceholderStyle = *styles.Placeholder
	ti.Cursor.SetMode(cursor.CursorStatic)
	return ti
}

func composerPlaceholder(pending *component.PendingInput) string {
	if pending == nil {
		return "type a message"
	}
	switch pending.Kind {
	case component.KindText:
		return "send text"
	case component.KindMedia:
		return "send /photo, /video, /audio, /animation or /document"
	default:
		return "send text or /photo, /video, …"
	}
}

func (m *Model) composerWidth() int {
	if m.width <= 0 {
		return 0
	}
	w := m.width - len([]rune(m.composer.Prompt)) - 1
	if w < 1 {
		return 1
	}
	return w
}

func (m *Model) focusComposer() tea.Cmd {
	m.mode = ModeComposer
	events.Composer.Focus(true)
	return m.composer.Focus()
}

func (m *Model) blurComposer() {
	m.mode = ModeKeyboard
	m.composer.Blur()
	events.Composer.Focus(false)
}

func (m *Model) handleComposerKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc", "tab":
		m.blurComposer()
		return nil
	case "ctrl+u":
		m.composer.SetValue("")
		m.composer.CursorStart()
		return nil
	case "enter":
		return m.submitComposer()
	}
	var cmd tea.Cmd
	m.composer, cmd = m.composer.Update(msg)
	return cmd
}

func (m *Model) submitComposer() tea.Cmd {
	if m.loading {
		return nil
	}
	msg, ok := parseComposer(m.composer.Value())
	if !ok {
		return nil
	}
	m.nextMsgID++
	msg.ID = m.nextMsgID
	m.composer.SetValue("")
	if msg.Media != nil {
		events.Composer.Attach(msg.Media.Type, msg.Media.FileID)
	} else {
		events.Composer.Text(msg.Text)
	}
	return m.execute(command.Request{
		ID:     fmt.Sprintf("message:%d", msg.ID),
		Label:  describeMessage(msg),
		Update: dispatcher.Update{Kind: dispatcher.UpdateMessage, Message: &msg},
	})
}

// parseComposer turns composer input into a chat message. "/photo caption"
// and the other media commands attach a synthetic file of that type.
func parseComposer(input string) (component.Message, bool) {
	text := strings.TrimSpace(input)
	if text == "" {
		return component.Message{}, false
	}
	if strings.HasPrefix(text, "/") {
		name, caption, _ := strings.Cut(text[1:], " ")
		for _, t := range media.AllTypes {
			if strings.EqualFold(name, string(t)) {
				return component.Message{
					Text:  strings.TrimSpace(caption),
					Media: &component.MediaRef{Type: string(t), FileID: newFileID()},
				}, true
			}
		}
	}
	return component.Message{Text: text}, true
}

func describeMessage(msg component.Message) string {
	if msg.Media != nil {
		return media.Icon(media.Type(msg.Media.Type)) + " " + msg.Media.Type
	}
	return msg.Text
}
