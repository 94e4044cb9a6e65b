// Package ui contains the Bubble Tea program that stands in for the chat client
// when the menu runs in a terminal.
//
// Message flow:
//   - The Console type implements the dispatcher's transport. It holds the one
//     menu message (text plus keyboard) and any notices raised since the model
//     last refreshed.
//   - Model.Update routes each tea.Msg through a typed handler registry.
//     Key presses move the cursor over the keyboard grid (internal/ui/state.Grid)
//     or feed the composer. Pressing a button or submitting the composer queues
//     an update on the command bus (internal/ui/command).
//   - When the dispatcher finishes, the bus returns a ResultMsg and the model
//     re-reads the console: message, pending input request and notices.
//
// The composer sends plain text. "/photo caption" and the other media
// commands send a message with a synthetic attachment of that type, so media
// fields can be exercised without a real chat platform.
package ui
