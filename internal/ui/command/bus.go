package command

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/chatmenu/internal/dispatcher"
	"github.com/atomicstack/chatmenu/internal/logging/events"
)

// Dispatcher is the part of dispatcher.Dispatcher the console drives.
type Dispatcher interface {
	Open(ctx context.Context, chatID string) (dispatcher.Result, error)
	Handle(ctx context.Context, upd dispatcher.Update) (dispatcher.Result, error)
}

// Request encapsulates one update sent from the console.
type Request struct {
	ID    string
	Label string
	// Open renders the menu as a new message instead of handling Update.
	Open   bool
	Update dispatcher.Update
}

// ResultMsg is delivered to the Bubble Tea model once a request completes.
type ResultMsg struct {
	Request Request
	Result  dispatcher.Result
	Err     error
}

// Bus runs dispatcher cycles off the Bubble Tea event loop.
type Bus struct {
	ctx        context.Context
	dispatcher Dispatcher
}

// New initialises a command bus instance.
func New(ctx context.Context, d Dispatcher) *Bus {
	if ctx == nil {
		ctx = context.Background()
	}
	return &Bus{ctx: ctx, dispatcher: d}
}

// Execute wraps a dispatcher call into a Bubble Tea command while emitting
// trace logs.
func (b *Bus) Execute(chatID string, req Request) tea.Cmd {
	events.Command.Queue(req.ID, req.Label)
	return func() tea.Msg {
		var (
			res dispatcher.Result
			err error
		)
		if req.Open {
			res, err = b.dispatcher.Open(b.ctx, chatID)
		} else {
			req.Update.ChatID = chatID
			res, err = b.dispatcher.Handle(b.ctx, req.Update)
		}
		if err != nil {
			events.Command.Error(req.ID, req.Label, err)
			return ResultMsg{Request: req, Err: err}
		}
		events.Command.Result(req.ID, req.Label, res.Status.String())
		return ResultMsg{Request: req, Result: res}
	}
}
