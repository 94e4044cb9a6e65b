package component

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/atomicstack/chatmenu/internal/address"
)

type counter struct {
	*Base
	Toggle
	inc *Handler
}

func newCounter(m Mount, label string) *counter {
	c := &counter{}
	c.Base = NewBase(m, c.DefaultState)
	c.Toggle = NewToggle(c.Base)
	c.inc = c.Handle("increment", "i", func(ctx context.Context, ev Event) error {
		step := 1
		if ev.Arg.Present() {
			if err := ev.Arg.Decode(&step); err != nil {
				return err
			}
		}
		c.PatchState(State{"n": Int(c.GetState(), "n") + step})
		return nil
	})
	return c
}

func (c *counter) DefaultState() State {
	return State{"n": 0, ExpandedKey: false}
}

func (c *counter) Render(ctx context.Context) (RenderResult, error) {
	btn, err := c.Button("+1", c.inc)
	if err != nil {
		return RenderResult{}, err
	}
	return Empty().Row(btn), nil
}

type group struct {
	*Base
}

func newGroup(m Mount, ids ...string) *group {
	g := &group{}
	g.Base = NewBase(m, g.DefaultState)
	for _, id := range ids {
		MakeChild(g.Base, id, newCounter, id)
	}
	return g
}

func (g *group) DefaultState() State { return State{} }

func (g *group) Render(ctx context.Context) (RenderResult, error) {
	return g.RenderChildren(ctx)
}

func TestPatchStateIsShallowMerge(t *testing.T) {
	snap := NewSnapshot(State{"a": 0, "c": 3})
	b := NewBase(Mount{State: snap}, nil)
	b.PatchState(State{"a": 1})
	b.PatchState(State{"b": 2})
	require.Equal(t, State{"a": 1, "b": 2, "c": 3}, snap.GetState())
}

func TestGetStateOverlaysDefaults(t *testing.T) {
	snap := NewSnapshot(State{"n": float64(4)})
	c := newCounter(Mount{State: snap}, "x")
	require.Equal(t, 4, Int(c.GetState(), "n"))
	require.False(t, c.IsExpanded())
}

func TestChildStateIsNamespacedAndImmediatelyVisible(t *testing.T) {
	snap := NewSnapshot(nil)
	g := newGroup(Mount{State: snap}, "a", "b")

	a, ok := g.Child("a")
	require.True(t, ok)
	require.NoError(t, a.Core().Handler("increment").Call(context.Background(), Event{}))
	require.Equal(t, 1, Int(a.Core().GetState(), "n"))

	b, _ := g.Child("b")
	require.Equal(t, 0, Int(b.Core().GetState(), "n"))

	stored := AsState(snap.GetState()["a"])
	require.Equal(t, 1, Int(stored, "n"))
}

func TestButtonAddressResolvesToHandler(t *testing.T) {
	g := newGroup(Mount{}, "a", "b")
	r, err := g.Render(context.Background())
	require.NoError(t, err)
	require.Len(t, r.Keyboard, 2)
	require.Equal(t, "a|i", r.Keyboard[0][0].Data)
	require.Equal(t, "b|i", r.Keyboard[1][0].Data)

	addr, err := address.Decode(r.Keyboard[1][0].Data)
	require.NoError(t, err)
	h, err := ResolveHandler(g, addr.Path, addr.PermanentID)
	require.NoError(t, err)
	require.Equal(t, "increment", h.Name)
}

func TestResolveHandlerReportsStaleAddresses(t *testing.T) {
	g := newGroup(Mount{}, "a")
	_, err := ResolveHandler(g, address.Path{"zz"}, "i")
	require.True(t, errors.Is(err, ErrHandlerNotFound))
	_, err = ResolveHandler(g, address.Path{"a"}, "q")
	require.True(t, errors.Is(err, ErrHandlerNotFound))
}

func TestButtonArgumentReachesHandler(t *testing.T) {
	c := newCounter(Mount{Path: address.Path{"c"}}, "c")
	btn, err := c.Button("+5", c.inc, 5)
	require.NoError(t, err)
	addr, err := address.Decode(btn.Data)
	require.NoError(t, err)
	require.NoError(t, c.inc.Call(context.Background(), Event{Arg: NewArg(addr.Arg, addr.HasArg)}))
	require.Equal(t, 5, Int(c.GetState(), "n"))
}

func TestButtonFailsLoudlyWhenTooLong(t *testing.T) {
	c := newCounter(Mount{Path: address.Path{"c"}}, "c")
	_, err := c.Button("long", c.inc, string(make([]byte, 70)))
	require.ErrorIs(t, err, ErrAddressTooLong)
}

func TestButtonRejectsForeignHandler(t *testing.T) {
	a := newCounter(Mount{Path: address.Path{"a"}}, "a")
	b := newCounter(Mount{Path: address.Path{"b"}}, "b")
	_, err := a.Button("x", b.inc)
	require.ErrorIs(t, err, ErrHandlerNotFound)
}

func TestDuplicateRegistrationsPanic(t *testing.T) {
	g := newGroup(Mount{}, "a")
	require.Panics(t, func() { MakeChild(g.Base, "a", newCounter, "again") })
	require.Panics(t, func() { g.Handle("other", "x", nil); g.Handle("another", "x", nil) })
	require.Panics(t, func() { MakeChild(g.Base, "a/b", newCounter, "bad") })
	require.Panics(t, func() { AddChild(g.Base, "m", newCounter(g.Mount("other"), "m")) })
}

func TestOverrideHandlerKeepsPermanentID(t *testing.T) {
	c := newCounter(Mount{Path: address.Path{"c"}}, "c")
	before, err := c.Button("+1", c.inc)
	require.NoError(t, err)

	called := false
	c.OverrideHandler("increment", func(ctx context.Context, ev Event) error {
		called = true
		return nil
	})
	after, err := c.Button("+1", c.Handler("increment"))
	require.NoError(t, err)
	require.Equal(t, before.Data, after.Data)

	h, ok := c.HandlerByPermanentID("i")
	require.True(t, ok)
	require.NoError(t, h.Call(context.Background(), Event{}))
	require.True(t, called)
	require.Equal(t, 0, Int(c.GetState(), "n"))
}

func TestConcatFoldsInDeclarationOrder(t *testing.T) {
	a := RenderResult{Text: "a", Keyboard: Keyboard{{{Label: "1"}}}}
	b := Empty()
	c := RenderResult{Text: "c", Keyboard: Keyboard{{{Label: "2"}}, {{Label: "3"}}}}
	got := Concat(a, b, c)
	want := RenderResult{Text: "ac", Keyboard: Keyboard{{{Label: "1"}}, {{Label: "2"}}, {{Label: "3"}}}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected fold (-want +got):\n%s", diff)
	}
	require.NotNil(t, Concat().Keyboard)
}

func TestToggleTwiceRestoresStateAndRender(t *testing.T) {
	c := newCounter(Mount{Path: address.Path{"c"}}, "c")
	first, err := c.Render(context.Background())
	require.NoError(t, err)

	c.ToggleExpanded()
	require.True(t, c.IsExpanded())
	c.ToggleExpanded()
	require.False(t, c.IsExpanded())

	second, err := c.Render(context.Background())
	require.NoError(t, err)
	require.Equal(t, first, second)

	c.Expand()
	require.True(t, c.IsExpanded())
	c.Collapse()
	require.False(t, c.IsExpanded())

	var e Expandable = c
	_, ok := AsExpandable(c)
	require.True(t, ok)
	require.NotNil(t, e)
}

func TestInputRequestsReachEnvOrCapturingParent(t *testing.T) {
	env := NewEnv("chat")
	g := newGroup(Mount{Env: env}, "a", "b")
	a, _ := g.Child("a")
	b, _ := g.Child("b")
	g.CaptureInputRequests(b)

	a.Core().RequestMessageInput(a.Core().Handler("increment"), KindText)
	b.Core().RequestMessageInput(b.Core().Handler("increment"), KindText)

	require.Equal(t, []PendingInput{{Path: address.Path{"a"}, PermanentID: "i", Kind: KindText}}, env.Requests())
	require.True(t, g.RequestedMessageInput("b"))
	require.False(t, g.RequestedMessageInput("b"))

	env.Reset()
	require.Empty(t, env.Requests())
}

func TestMessageKindAccepts(t *testing.T) {
	text := Message{Text: "hi"}
	photo := Message{Media: &MediaRef{Type: "photo", FileID: "f"}}
	require.True(t, KindText.Accepts(text))
	require.False(t, KindText.Accepts(photo))
	require.True(t, KindMedia.Accepts(photo))
	require.False(t, KindMedia.Accepts(text))
	require.True(t, KindAny.Accepts(text))
	require.True(t, KindAny.Accepts(photo))
}

func TestRejectionErrorUnwraps(t *testing.T) {
	err := error(Reject("errors.media-type-not-accepted", map[string]any{"type": "photo"}))
	rej, ok := AsRejection(err)
	require.True(t, ok)
	require.Equal(t, "photo", rej.Vars["type"])
	require.Equal(t, "rejected: errors.media-type-not-accepted (type=photo)", err.Error())
}

func TestArgDecodeFailuresAreMalformed(t *testing.T) {
	var n int
	require.NoError(t, NewArg("3", true).Decode(&n))
	require.Equal(t, 3, n)

	err := NewArg("x", true).Decode(&n)
	require.ErrorIs(t, err, ErrMalformedAddress)

	err = NewArg("", false).Decode(&n)
	require.ErrorIs(t, err, ErrMalformedAddress)
	require.ErrorIs(t, err, ErrMissingArg)
}
