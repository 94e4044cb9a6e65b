package ui

import (
	"context"
	"fmt"
	"reflect"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/atomicstack/chatmenu/internal/component"
	"github.com/atomicstack/chatmenu/internal/dispatcher"
	"github.com/atomicstack/chatmenu/internal/logging/events"
	"github.com/atomicstack/chatmenu/internal/theme"
	"github.com/atomicstack/chatmenu/internal/ui/command"
	uistate "github.com/atomicstack/chatmenu/internal/ui/state"
)

type Mode int

const (
	ModeKeyboard Mode = iota
	ModeComposer
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// newFileID names attachments sent from the composer.
var newFileID = func() string {
	return "console-" + uuid.NewString()
}

// Model implements the Bubble Tea model for the console chat.
type Model struct {
	chatID      string
	console     *Console
	bus         *command.Bus
	message     Message
	pending     *component.PendingInput
	grid        *uistate.Grid
	composer    textinput.Model
	mode        Mode
	loading     bool
	pendingID   string
	errMsg      string
	infoMsg     string
	infoExpire  time.Time
	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	nextMsgID   int64

	handlers map[reflect.Type]msgHandler
}

// NewModel initialises the console for chatID. The dispatcher must deliver to
// console.
func NewModel(ctx context.Context, chatID string, d command.Dispatcher, console *Console, width, height int) *Model {
	m := &Model{
		chatID:   chatID,
		console:  console,
		bus:      command.New(ctx, d),
		grid:     uistate.NewGrid(nil),
		composer: newComposer(),
		mode:     ModeKeyboard,
	}
	if width > 0 {
		m.width = width
		m.fixedWidth = true
	}
	if height > 0 {
		m.height = height
		m.fixedHeight = true
	}
	m.composer.Width = m.composerWidth()
	m.registerHandlers()
	return m
}

// SetInitialSize sizes the view until the first window size message arrives.
// Dimensions fixed by NewModel are kept.
func (m *Model) SetInitialSize(width, height int) {
	if !m.fixedWidth && width > 0 {
		m.width = width
	}
	if !m.fixedHeight && height > 0 {
		m.height = height
	}
	m.composer.Width = m.composerWidth()
}

// Init is part of the tea.Model interface. It opens the menu.
func (m *Model) Init() tea.Cmd {
	return m.execute(command.Request{ID: "open", Label: "open", Open: true})
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	return m, nil
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(command.ResultMsg{}): m.handleResultMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) execute(req command.Request) tea.Cmd {
	m.loading = true
	m.pendingID = req.ID
	return m.bus.Execute(m.chatID, req)
}

// handleResultMsg refreshes the screen from the console transport after a
// dispatcher cycle.
func (m *Model) handleResultMsg(msg tea.Msg) tea.Cmd {
	res, ok := msg.(command.ResultMsg)
	if !ok {
		return nil
	}
	m.loading = false
	m.pendingID = ""
	if res.Err != nil {
		events.UI.Error(res.Err)
		m.errMsg = res.Err.Error()
		return nil
	}
	m.errMsg = ""
	// Unrouted messages render nothing, so the screen and pending request
	// stay as they were.
	if res.Result.Status == dispatcher.StatusUnrouted {
		if m.pending != nil {
			m.setInfo(fmt.Sprintf("Waiting for %s, not this message.", m.pending.Kind))
		} else {
			m.setInfo("Nothing is waiting for a message.")
		}
		return nil
	}
	m.message = m.console.Current()
	m.pending = res.Result.Pending
	m.grid.SetWidths(rowWidths(m.message.Payload.Keyboard))
	if notices := m.console.TakeNotices(); len(notices) > 0 {
		events.UI.Notice(notices[len(notices)-1])
		m.setInfo(notices[len(notices)-1])
	}
	m.composer.Placeholder = composerPlaceholder(m.pending)
	return nil
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	size, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = size.Width
	}
	if !m.fixedHeight {
		m.height = size.Height
	}
	m.composer.Width = m.composerWidth()
	return nil
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(5 * time.Second)
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.infoMsg = ""
		m.infoExpire = time.Time{}
	}
	return m.infoMsg
}

func rowWidths(kb component.Keyboard) []int {
	widths := make([]int, len(kb))
	for i, row := range kb {
		widths[i] = len(row)
	}
	return widths
}
