// Package dispatcher runs one update cycle for a chat: it rebuilds the menu
// tree from stored state, routes the update to the addressed handler,
// renders the result and hands it to the transport.
package dispatcher

import (
	"context"
	"errors"
	"fmt"

	"github.com/atomicstack/chatmenu/internal/address"
	"github.com/atomicstack/chatmenu/internal/component"
	"github.com/atomicstack/chatmenu/internal/fingerprint"
	"github.com/atomicstack/chatmenu/internal/logging/events"
	"github.com/atomicstack/chatmenu/internal/store"
)

// ErrKeyExpired is the message key reported for stale buttons and pending
// targets that no longer exist.
const ErrKeyExpired = "errors.expired"

// UpdateKind tells button presses from free-form messages.
type UpdateKind int

const (
	UpdateButton UpdateKind = iota + 1
	UpdateMessage
)

func (k UpdateKind) String() string {
	switch k {
	case UpdateButton:
		return "button"
	case UpdateMessage:
		return "message"
	default:
		return fmt.Sprintf("update(%d)", int(k))
	}
}

// Update is one inbound event for a chat.
type Update struct {
	ChatID string
	Kind   UpdateKind
	// Data is the button payload of a press.
	Data string
	// Message is the free-form message of a message update.
	Message *component.Message
}

// Status summarises how an update was handled.
type Status int

const (
	StatusHandled Status = iota + 1
	StatusRejected
	StatusExpired
	StatusUnrouted
)

func (s Status) String() string {
	switch s {
	case StatusHandled:
		return "handled"
	case StatusRejected:
		return "rejected"
	case StatusExpired:
		return "expired"
	case StatusUnrouted:
		return "unrouted"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Result describes a completed cycle.
type Result struct {
	Status Status
	// Target is the address path of the handler that ran.
	Target string
	// Rejection is set when Status is StatusRejected.
	Rejection *component.RejectionError
	// Notice is the localized text sent to the user, if any.
	Notice string
	// Payload is the rendered message. It is empty for unrouted updates.
	Payload component.RenderResult
	// Pending is the input request recorded by the render, if any.
	Pending *component.PendingInput
	// Skipped is true when the payload matched the last one sent and the
	// message was left untouched.
	Skipped   bool
	MessageID int64
}

// Transport delivers rendered menus and notices to the chat.
type Transport interface {
	Send(ctx context.Context, chatID string, payload component.RenderResult) (messageID int64, err error)
	Edit(ctx context.Context, chatID string, messageID int64, payload component.RenderResult) error
	Notify(ctx context.Context, chatID, text string) error
}

// Localizer turns message keys into user-facing text.
type Localizer interface {
	Localize(key string, vars map[string]any) string
}

// RootFunc builds the menu tree for one cycle. It must not run handlers or
// touch anything but the mount's state.
type RootFunc func(m component.Mount) component.Component

// Dispatcher processes updates. Updates for one chat must be handed to
// Handle one at a time; different chats share nothing.
type Dispatcher struct {
	root      RootFunc
	store     store.Store
	transport Transport
	localizer Localizer
}

// New returns a dispatcher.
func New(root RootFunc, st store.Store, tr Transport, loc Localizer) *Dispatcher {
	return &Dispatcher{root: root, store: st, transport: tr, localizer: loc}
}

// cycle is the working set of one update.
type cycle struct {
	chatID    string
	rec       store.Record
	committed component.State
	snap      *component.Snapshot
	env       *component.Env
	root      component.Component
}

func (d *Dispatcher) begin(ctx context.Context, chatID string) (*cycle, error) {
	rec, _, err := d.store.Load(ctx, chatID)
	if err != nil {
		return nil, fmt.Errorf("load chat %s: %w", chatID, err)
	}
	c := &cycle{
		chatID:    chatID,
		rec:       rec,
		committed: rec.State,
		snap:      component.NewSnapshot(rec.State),
		env:       component.NewEnv(chatID),
	}
	c.root = d.root(component.Mount{State: c.snap, Env: c.env})
	return c, nil
}

// Open renders the menu from stored state and sends it as a new message.
func (d *Dispatcher) Open(ctx context.Context, chatID string) (Result, error) {
	c, err := d.begin(ctx, chatID)
	if err != nil {
		return Result{}, err
	}
	c.rec.MessageID = 0
	return d.finish(ctx, c, Result{Status: StatusHandled})
}

// Handle processes one update. Malformed button data and handler failures
// other than rejections are returned as errors and leave stored state as it
// was.
func (d *Dispatcher) Handle(ctx context.Context, upd Update) (Result, error) {
	events.Dispatch.Update(upd.ChatID, upd.Kind.String(), upd.Data)
	c, err := d.begin(ctx, upd.ChatID)
	if err != nil {
		events.Dispatch.Error(upd.ChatID, err)
		return Result{}, err
	}

	var (
		h  *component.Handler
		ev = component.Event{ChatID: upd.ChatID, Message: upd.Message}
		at address.Path
	)
	switch upd.Kind {
	case UpdateButton:
		addr, err := address.Decode(upd.Data)
		if err != nil {
			err = fmt.Errorf("button data %q: %w", upd.Data, err)
			events.Dispatch.Error(upd.ChatID, err)
			return Result{}, err
		}
		at = addr.Path
		ev.Arg = component.NewArg(addr.Arg, addr.HasArg)
		h, err = component.ResolveHandler(c.root, addr.Path, addr.PermanentID)
		if errors.Is(err, component.ErrHandlerNotFound) {
			events.Dispatch.Expired(upd.ChatID, upd.Data)
			return d.expired(ctx, c)
		}
		if err != nil {
			return Result{}, err
		}
	case UpdateMessage:
		pending := c.rec.Pending
		if pending == nil {
			events.Dispatch.Unrouted(upd.ChatID, events.UnroutedNoPending)
			return Result{Status: StatusUnrouted}, nil
		}
		if upd.Message == nil || !pending.Kind.Accepts(*upd.Message) {
			events.Dispatch.Unrouted(upd.ChatID, events.UnroutedKindMismatch)
			return Result{Status: StatusUnrouted}, nil
		}
		at = pending.Path
		h, err = component.ResolveHandler(c.root, pending.Path, pending.PermanentID)
		if errors.Is(err, component.ErrHandlerNotFound) {
			events.Dispatch.Expired(upd.ChatID, pending.Path.String())
			return d.expired(ctx, c)
		}
		if err != nil {
			return Result{}, err
		}
	default:
		return Result{}, fmt.Errorf("unsupported update kind %s", upd.Kind)
	}

	res := Result{Status: StatusHandled, Target: at.String()}
	if err := h.Call(ctx, ev); err != nil {
		rej, ok := component.AsRejection(err)
		if !ok {
			err = fmt.Errorf("handler %s at %q: %w", h.Name, at, err)
			events.Dispatch.Error(upd.ChatID, err)
			return Result{}, err
		}
		events.Dispatch.Rejected(upd.ChatID, at.String(), rej.Key)
		c.snap.SetState(c.committed)
		res.Status = StatusRejected
		res.Rejection = rej
		res.Notice = d.localizer.Localize(rej.Key, rej.Vars)
		if err := d.transport.Notify(ctx, upd.ChatID, res.Notice); err != nil {
			return Result{}, fmt.Errorf("notify rejection: %w", err)
		}
	} else {
		events.Dispatch.Handled(upd.ChatID, at.String(), h.Name)
	}
	return d.finish(ctx, c, res)
}

// expired tells the user the control is gone and refreshes the menu from the
// unchanged state. The refresh also rewrites the pending marker.
func (d *Dispatcher) expired(ctx context.Context, c *cycle) (Result, error) {
	res := Result{Status: StatusExpired, Notice: d.localizer.Localize(ErrKeyExpired, nil)}
	if err := d.transport.Notify(ctx, c.chatID, res.Notice); err != nil {
		return Result{}, fmt.Errorf("notify expired: %w", err)
	}
	return d.finish(ctx, c, res)
}

// finish renders the tree, records the pending input request, delivers the
// payload unless it is unchanged and persists the record.
func (d *Dispatcher) finish(ctx context.Context, c *cycle, res Result) (Result, error) {
	c.env.Reset()
	payload, err := c.root.Render(ctx)
	if err != nil {
		err = fmt.Errorf("render chat %s: %w", c.chatID, err)
		events.Dispatch.Error(c.chatID, err)
		return Result{}, err
	}
	res.Payload = payload

	pending := choosePending(c.chatID, c.env.Requests())
	if pending == nil && c.rec.Pending != nil {
		events.Input.Cleared(c.chatID)
	}
	c.rec.Pending = pending
	res.Pending = pending

	fp, err := fingerprint.Of(payload)
	if err != nil {
		return Result{}, fmt.Errorf("fingerprint payload: %w", err)
	}
	events.Render.Done(c.chatID, fp, len(payload.Keyboard))

	switch {
	case c.rec.MessageID != 0 && fp == c.rec.Fingerprint:
		res.Skipped = true
		events.Render.Skipped(c.chatID, fp)
	case c.rec.MessageID != 0:
		if err := d.transport.Edit(ctx, c.chatID, c.rec.MessageID, payload); err != nil {
			return Result{}, fmt.Errorf("edit message %d: %w", c.rec.MessageID, err)
		}
		events.Render.Sent(c.chatID, c.rec.MessageID, true)
	default:
		id, err := d.transport.Send(ctx, c.chatID, payload)
		if err != nil {
			return Result{}, fmt.Errorf("send message: %w", err)
		}
		c.rec.MessageID = id
		events.Render.Sent(c.chatID, id, false)
	}
	c.rec.Fingerprint = fp
	c.rec.State = c.snap.GetState()
	res.MessageID = c.rec.MessageID

	if err := d.store.Save(ctx, c.chatID, c.rec); err != nil {
		return Result{}, fmt.Errorf("save chat %s: %w", c.chatID, err)
	}
	return res, nil
}

// choosePending keeps the first request in render order. A chat waits for one
// message at a time.
func choosePending(chatID string, reqs []component.PendingInput) *component.PendingInput {
	if len(reqs) == 0 {
		return nil
	}
	first := reqs[0]
	events.Input.Pending(chatID, first.Path.String(), first.PermanentID, first.Kind.String())
	for _, dropped := range reqs[1:] {
		events.Input.Dropped(chatID, dropped.Path.String(), dropped.PermanentID)
	}
	return &first
}
