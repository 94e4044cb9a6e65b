package widgets_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/atomicstack/chatmenu/internal/address"
	"github.com/atomicstack/chatmenu/internal/component"
)

func rootMount() (component.Mount, *component.Snapshot) {
	snap := component.NewSnapshot(nil)
	return component.Mount{State: snap, Env: component.NewEnv("chat-1")}, snap
}

func render(t *testing.T, c component.Component) component.RenderResult {
	t.Helper()
	c.Core().Env().Reset()
	out, err := c.Render(context.Background())
	require.NoError(t, err)
	return out
}

func labels(kb component.Keyboard) [][]string {
	out := make([][]string, len(kb))
	for i, row := range kb {
		out[i] = make([]string, len(row))
		for j, btn := range row {
			out[i][j] = btn.Label
		}
	}
	return out
}

func findButton(t *testing.T, kb component.Keyboard, label string) component.Button {
	t.Helper()
	for _, row := range kb {
		for _, btn := range row {
			if btn.Label == label {
				return btn
			}
		}
	}
	t.Fatalf("no button %q in %v", label, labels(kb))
	return component.Button{}
}

func press(t *testing.T, root component.Component, btn component.Button) error {
	t.Helper()
	addr, err := address.Decode(btn.Data)
	require.NoError(t, err)
	h, err := component.ResolveHandler(root, addr.Path, addr.PermanentID)
	require.NoError(t, err)
	return h.Call(context.Background(), component.Event{ChatID: "chat-1", Arg: component.NewArg(addr.Arg, addr.HasArg)})
}

// send delivers msg to the single pending input request of the last render.
func send(t *testing.T, root component.Component, msg component.Message) error {
	t.Helper()
	reqs := root.Core().Env().Requests()
	require.Len(t, reqs, 1)
	req := reqs[0]
	require.True(t, req.Kind.Accepts(msg), "kind %s does not accept %+v", req.Kind, msg)
	h, err := component.ResolveHandler(root, req.Path, req.PermanentID)
	require.NoError(t, err)
	return h.Call(context.Background(), component.Event{ChatID: "chat-1", Message: &msg})
}
