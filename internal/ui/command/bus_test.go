package command

import (
	"context"
	"errors"
	"testing"

	"github.com/atomicstack/chatmenu/internal/dispatcher"
)

type fakeDispatcher struct {
	opened  []string
	updates []dispatcher.Update
	err     error
}

func (f *fakeDispatcher) Open(_ context.Context, chatID string) (dispatcher.Result, error) {
	f.opened = append(f.opened, chatID)
	return dispatcher.Result{Status: dispatcher.StatusHandled, MessageID: 1}, f.err
}

func (f *fakeDispatcher) Handle(_ context.Context, upd dispatcher.Update) (dispatcher.Result, error) {
	f.updates = append(f.updates, upd)
	return dispatcher.Result{Status: dispatcher.StatusExpired}, f.err
}

func TestExecuteOpen(t *testing.T) {
	d := &fakeDispatcher{}
	bus := New(context.Background(), d)

	msg := bus.Execute("c", Request{ID: "open", Open: true})()
	res, ok := msg.(ResultMsg)
	if !ok {
		t.Fatalf("expected ResultMsg, got %T", msg)
	}
	if res.Err != nil || res.Result.MessageID != 1 {
		t.Fatalf("unexpected result %+v", res)
	}
	if len(d.opened) != 1 || d.opened[0] != "c" {
		t.Fatalf("expected open for chat c, got %v", d.opened)
	}
}

func TestExecuteStampsChatID(t *testing.T) {
	d := &fakeDispatcher{}
	bus := New(context.Background(), d)

	req := Request{ID: "button:x", Update: dispatcher.Update{Kind: dispatcher.UpdateButton, Data: "x"}}
	res := bus.Execute("c", req)().(ResultMsg)
	if res.Result.Status != dispatcher.StatusExpired {
		t.Fatalf("unexpected status %v", res.Result.Status)
	}
	if len(d.updates) != 1 || d.updates[0].ChatID != "c" || d.updates[0].Data != "x" {
		t.Fatalf("unexpected updates %+v", d.updates)
	}
	if res.Request.ID != "button:x" {
		t.Fatalf("expected request to be echoed, got %+v", res.Request)
	}
}

func TestExecuteReportsErrors(t *testing.T) {
	boom := errors.New("boom")
	bus := New(context.Background(), &fakeDispatcher{err: boom})

	res := bus.Execute("c", Request{ID: "message:1", Update: dispatcher.Update{Kind: dispatcher.UpdateMessage}})().(ResultMsg)
	if !errors.Is(res.Err, boom) {
		t.Fatalf("expected boom, got %v", res.Err)
	}
}
