package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/chatmenu/internal/component"
	"github.com/atomicstack/chatmenu/internal/dispatcher"
	"github.com/atomicstack/chatmenu/internal/logging/events"
	"github.com/atomicstack/chatmenu/internal/ui/command"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if keyMsg.String() == "ctrl+c" {
		return tea.Quit
	}
	if m.mode == ModeComposer {
		return m.handleComposerKey(keyMsg)
	}
	moved := false
	switch keyMsg.String() {
	case "q", "esc":
		return tea.Quit
	case "tab", "i":
		return m.focusComposer()
	case "enter", " ":
		return m.pressFocused()
	case "up", "k":
		moved = m.grid.MoveUp()
	case "down", "j":
		moved = m.grid.MoveDown()
	case "left", "h":
		moved = m.grid.MoveLeft()
	case "right", "l":
		moved = m.grid.MoveRight()
	case "home", "g":
		moved = m.grid.MoveHome()
	case "end", "G":
		moved = m.grid.MoveEnd()
	}
	if moved {
		events.UI.Cursor(m.grid.Row, m.grid.Col)
	}
	return nil
}

// focusedButton returns the button under the cursor.
func (m *Model) focusedButton() (component.Button, bool) {
	kb := m.message.Payload.Keyboard
	if m.grid.Empty() || m.grid.Row >= len(kb) || m.grid.Col >= len(kb[m.grid.Row]) {
		return component.Button{}, false
	}
	return kb[m.grid.Row][m.grid.Col], true
}

func (m *Model) pressFocused() tea.Cmd {
	if m.loading {
		return nil
	}
	btn, ok := m.focusedButton()
	if !ok {
		return nil
	}
	events.UI.Press(btn.Label, btn.Data)
	return m.execute(command.Request{
		ID:     "button:" + btn.Data,
		Label:  btn.Label,
		Update: dispatcher.Update{Kind: dispatcher.UpdateButton, Data: btn.Data},
	})
}
