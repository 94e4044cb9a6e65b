// Package component implements the tree engine behind a chat menu message.
//
// A menu is a tree of components rebuilt from scratch for every inbound update.
// Nothing survives between updates except what components persist through the
// state accessor they were mounted with, so a button tapped days after the
// message was sent still resolves: its address is the component's path plus a
// permanent handler ID, and rebuilding the tree from the same state recreates
// the same paths.
//
// Lifecycle of one update:
//   - The dispatcher mounts the root with an accessor over the chat's state.
//   - Constructors build children top-down (AddChild, MakeChild). Construction
//     only reads state; it never runs handlers.
//   - The addressed handler runs and may PatchState. Patches are visible to every
//     later read in the same cycle.
//   - Render folds the tree bottom-up into one RenderResult. Components that need
//     the next free-form message raise a pending input request while rendering.
//
// Handlers are data: each Base holds a table of logical name to Handler, looked
// up by permanent ID at dispatch time. A parent may override a child's handler
// function while keeping its permanent ID, which keeps buttons already sent
// valid.
package component
