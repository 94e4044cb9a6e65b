package component

// ExpandedKey is the state key holding the expanded flag.
const ExpandedKey = "expanded"

// Expandable is the capability of switching between a compact and a detailed
// render. Toggling flips exactly one flag in the component's own state.
type Expandable interface {
	IsExpanded() bool
	Expand()
	Collapse()
	ToggleExpanded()
}

// AsExpandable reports whether c has the expandable capability.
func AsExpandable(c Component) (Expandable, bool) {
	e, ok := c.(Expandable)
	return e, ok
}

// Toggle implements Expandable over the ExpandedKey of a component's state.
type Toggle struct {
	base *Base
}

// NewToggle returns the expandable capability for b.
func NewToggle(b *Base) Toggle {
	return Toggle{base: b}
}

func (t Toggle) IsExpanded() bool {
	return Bool(t.base.GetState(), ExpandedKey)
}

func (t Toggle) Expand() {
	t.base.PatchState(State{ExpandedKey: true})
}

func (t Toggle) Collapse() {
	t.base.PatchState(State{ExpandedKey: false})
}

func (t Toggle) ToggleExpanded() {
	t.base.PatchState(State{ExpandedKey: !t.IsExpanded()})
}
