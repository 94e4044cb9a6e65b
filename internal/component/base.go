package component

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/atomicstack/chatmenu/internal/address"
)

// Component is a node of the menu tree.
type Component interface {
	// Core exposes the embedded Base.
	Core() *Base
	// DefaultState returns the state used when nothing was persisted yet. It
	// must be pure.
	DefaultState() State
	// Render folds the component and its children into one fragment.
	Render(ctx context.Context) (RenderResult, error)
}

// Mount describes where a component sits in the tree and how it reaches its
// state.
type Mount struct {
	Path  address.Path
	State Accessor
	Env   *Env
}

// Base carries the machinery every component shares: state access, the
// handler table, children and pending input requests. Components embed a
// *Base created by NewBase.
type Base struct {
	path     address.Path
	state    Accessor
	env      *Env
	defaults func() State

	handlers map[string]*Handler
	pids     map[string]*Handler

	children []Component
	byID     map[string]Component

	interceptor func()
	requested   map[string]bool
}

// NewBase mounts a component. defaults supplies the default state and may be
// nil.
func NewBase(m Mount, defaults func() State) *Base {
	env := m.Env
	if env == nil {
		env = NewEnv("")
	}
	acc := m.State
	if acc == nil {
		acc = NewSnapshot(nil)
	}
	return &Base{
		path:      m.Path,
		state:     acc,
		env:       env,
		defaults:  defaults,
		handlers:  make(map[string]*Handler),
		pids:      make(map[string]*Handler),
		byID:      make(map[string]Component),
		requested: make(map[string]bool),
	}
}

// Core returns b. It lets embedding types satisfy Component.
func (b *Base) Core() *Base { return b }

// Path returns the component's path from the root.
func (b *Base) Path() address.Path { return b.path }

// LocalID returns the last path segment, or "" for the root.
func (b *Base) LocalID() string {
	if len(b.path) == 0 {
		return ""
	}
	return b.path[len(b.path)-1]
}

// Env returns the cycle environment.
func (b *Base) Env() *Env { return b.env }

// GetState returns the persisted state overlaid on the defaults, so keys added
// after a state was first stored still read their default value.
func (b *Base) GetState() State {
	stored := b.state.GetState()
	if b.defaults == nil {
		if stored == nil {
			return State{}
		}
		return stored
	}
	return Merge(b.defaults(), stored)
}

// SetState replaces the component's state.
func (b *Base) SetState(s State) {
	b.state.SetState(s)
}

// PatchState shallow-merges partial into the current state.
func (b *Base) PatchState(partial State) {
	b.SetState(Merge(b.GetState(), partial))
}

// ChildAccessor returns an accessor for the slice of b's state stored under
// localID.
func (b *Base) ChildAccessor(localID string) Accessor {
	return AccessorFuncs{
		Get: func() State { return AsState(b.GetState()[localID]) },
		Set: func(s State) { b.PatchState(State{localID: s}) },
	}
}

// SharedAccessor returns an accessor over b's own state whose writes are
// patches, for children that extend their parent's state instead of owning a
// slice of it.
func (b *Base) SharedAccessor() Accessor {
	return AccessorFuncs{
		Get: b.GetState,
		Set: b.PatchState,
	}
}

// Mount returns the mount point for a child owning a namespaced state slice.
func (b *Base) Mount(localID string) Mount {
	return Mount{Path: b.path.Append(localID), State: b.ChildAccessor(localID), Env: b.env}
}

// SharedMount returns the mount point for a child sharing b's state.
func (b *Base) SharedMount(localID string) Mount {
	return Mount{Path: b.path.Append(localID), State: b.SharedAccessor(), Env: b.env}
}

// AddChild registers c as a child of b. Children render and resolve in
// registration order. It panics on an invalid or duplicate local ID, or when c
// was mounted at a different path.
func AddChild[C Component](b *Base, localID string, c C) C {
	if !address.ValidID(localID) {
		panic(fmt.Sprintf("component: invalid local id %q under %q", localID, b.path))
	}
	if _, dup := b.byID[localID]; dup {
		panic(fmt.Sprintf("component: duplicate local id %q under %q", localID, b.path))
	}
	if want := b.path.Append(localID); !c.Core().path.Equal(want) {
		panic(fmt.Sprintf("component: child %q mounted at %q, want %q", localID, c.Core().path, want))
	}
	b.children = append(b.children, c)
	b.byID[localID] = c
	return c
}

// MakeChild constructs a child with a namespaced state slice and registers it.
func MakeChild[C Component, P any](b *Base, localID string, factory func(Mount, P) C, props P) C {
	return AddChild(b, localID, factory(b.Mount(localID), props))
}

// Children returns the registered children in order.
func (b *Base) Children() []Component {
	out := make([]Component, len(b.children))
	copy(out, b.children)
	return out
}

// Child returns the child registered under localID.
func (b *Base) Child(localID string) (Component, bool) {
	c, ok := b.byID[localID]
	return c, ok
}

// RenderChildren renders every child in registration order and folds the
// results.
func (b *Base) RenderChildren(ctx context.Context) (RenderResult, error) {
	parts := make([]RenderResult, 0, len(b.children))
	for _, c := range b.children {
		r, err := c.Render(ctx)
		if err != nil {
			return RenderResult{}, err
		}
		parts = append(parts, r)
	}
	return Concat(parts...), nil
}

// Handle registers a handler under a logical name. It panics when the name or
// permanent ID is already taken on this component.
func (b *Base) Handle(name, permanentID string, fn HandlerFunc) *Handler {
	if !address.ValidID(permanentID) {
		panic(fmt.Sprintf("component: invalid permanent id %q for %q at %q", permanentID, name, b.path))
	}
	if _, dup := b.handlers[name]; dup {
		panic(fmt.Sprintf("component: duplicate handler %q at %q", name, b.path))
	}
	if prev, dup := b.pids[permanentID]; dup {
		panic(fmt.Sprintf("component: permanent id %q of %q already used by %q at %q", permanentID, name, prev.Name, b.path))
	}
	h := &Handler{Name: name, PermanentID: permanentID, Fn: fn}
	b.handlers[name] = h
	b.pids[permanentID] = h
	return h
}

// Handler returns the handler registered under name, or nil.
func (b *Base) Handler(name string) *Handler {
	return b.handlers[name]
}

// HandlerByPermanentID looks a handler up the way dispatch does.
func (b *Base) HandlerByPermanentID(permanentID string) (*Handler, bool) {
	h, ok := b.pids[permanentID]
	return h, ok
}

// OverrideHandler replaces the function of a registered handler. The permanent
// ID is kept, so addresses already sent still reach the new function.
func (b *Base) OverrideHandler(name string, fn HandlerFunc) {
	h, ok := b.handlers[name]
	if !ok {
		panic(fmt.Sprintf("component: override of unknown handler %q at %q", name, b.path))
	}
	h.Fn = fn
}

// Button builds a button triggering h with an optional argument. The argument
// is JSON-encoded into the address.
func (b *Base) Button(label string, h *Handler, arg ...any) (Button, error) {
	if h == nil {
		return Button{}, fmt.Errorf("button %q at %q: %w", label, b.path, ErrHandlerNotFound)
	}
	if owned, ok := b.pids[h.PermanentID]; !ok || owned != h {
		return Button{}, fmt.Errorf("button %q: handler %q is not registered at %q: %w", label, h.Name, b.path, ErrHandlerNotFound)
	}
	var raw string
	hasArg := len(arg) > 0
	if hasArg {
		encoded, err := json.Marshal(arg[0])
		if err != nil {
			return Button{}, fmt.Errorf("button %q: encode argument: %w", label, err)
		}
		raw = string(encoded)
	}
	data, err := address.Encode(b.path, h.PermanentID, raw, hasArg)
	if err != nil {
		return Button{}, fmt.Errorf("button %q: %w", label, err)
	}
	return Button{Label: label, Data: data}, nil
}

// RequestMessageInput asks for the chat's next free-form message of kind to be
// routed to h. When the parent captures this component's requests, the parent
// is notified instead and decides how to listen.
func (b *Base) RequestMessageInput(h *Handler, kind MessageKind) {
	if b.interceptor != nil {
		b.interceptor()
		return
	}
	b.ListenForMessageInput(h, kind)
}

// ListenForMessageInput records a pending input request targeting h on b.
func (b *Base) ListenForMessageInput(h *Handler, kind MessageKind) {
	if h == nil {
		return
	}
	b.env.add(PendingInput{Path: b.path, PermanentID: h.PermanentID, Kind: kind})
}

// CaptureInputRequests makes child report its input requests to b instead of
// the dispatcher. Check them with RequestedMessageInput after rendering the
// child.
func (b *Base) CaptureInputRequests(child Component) {
	id := child.Core().LocalID()
	child.Core().interceptor = func() { b.requested[id] = true }
}

// RequestedMessageInput reports whether the captured child localID requested
// input during its last render, and clears the flag.
func (b *Base) RequestedMessageInput(localID string) bool {
	requested := b.requested[localID]
	delete(b.requested, localID)
	return requested
}

// Resolve walks path from root and returns the addressed component.
func Resolve(root Component, path address.Path) (Component, bool) {
	cur := root
	for _, id := range path {
		next, ok := cur.Core().Child(id)
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, true
}

// ResolveHandler finds the handler named by a decoded address.
func ResolveHandler(root Component, path address.Path, permanentID string) (*Handler, error) {
	target, ok := Resolve(root, path)
	if !ok {
		return nil, fmt.Errorf("no component at %q: %w", path, ErrHandlerNotFound)
	}
	h, ok := target.Core().HandlerByPermanentID(permanentID)
	if !ok {
		return nil, fmt.Errorf("no handler %q at %q: %w", permanentID, path, ErrHandlerNotFound)
	}
	return h, nil
}
