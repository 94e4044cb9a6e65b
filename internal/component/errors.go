package component

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/atomicstack/chatmenu/internal/address"
)

var (
	// ErrHandlerNotFound reports a well-formed address with no living target,
	// typically a button left over from an earlier version of the tree.
	ErrHandlerNotFound = errors.New("handler not found")
	// ErrMalformedAddress reports button data that is not an address.
	ErrMalformedAddress = address.ErrMalformed
	// ErrAddressTooLong reports a button whose address exceeds the byte budget.
	ErrAddressTooLong = address.ErrTooLong
	// ErrMissingArg reports a handler that expected a button argument.
	ErrMissingArg = errors.New("missing argument")
)

// RejectionError is raised by a handler when user input fails a business
// rule. It carries a message key and interpolation variables for the
// localization collaborator. Handlers must raise it before mutating state.
type RejectionError struct {
	Key  string
	Vars map[string]any
}

// Reject builds a RejectionError. vars may be nil.
func Reject(key string, vars map[string]any) *RejectionError {
	if vars == nil {
		vars = map[string]any{}
	}
	return &RejectionError{Key: key, Vars: vars}
}

func (e *RejectionError) Error() string {
	if len(e.Vars) == 0 {
		return "rejected: " + e.Key
	}
	keys := make([]string, 0, len(e.Vars))
	for k := range e.Vars {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, fmt.Sprintf("%s=%v", k, e.Vars[k]))
	}
	return fmt.Sprintf("rejected: %s (%s)", e.Key, strings.Join(pairs, ", "))
}

// AsRejection unwraps a RejectionError from err.
func AsRejection(err error) (*RejectionError, bool) {
	var rej *RejectionError
	if errors.As(err, &rej) {
		return rej, true
	}
	return nil, false
}

// LayoutError reports a malformed button in a textual keyboard layout. It is
// a configuration error and is not recovered per request.
type LayoutError struct {
	Row    int
	Col    int
	Button string
	Err    error
}

func (e *LayoutError) Error() string {
	msg := fmt.Sprintf("malformed '%s' at %d.%d", e.Button, e.Row, e.Col)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *LayoutError) Unwrap() error { return e.Err }
