// Package address builds and parses the compact identifiers embedded in
// inline buttons. An address names a handler on a component by the component's
// path in the tree and the handler's permanent ID, optionally followed by a
// serialized argument:
//
//	f/p|o|3
//	^^^ ^ ^
//	path pid arg
//
// Path segments and permanent IDs are restricted to [A-Za-z0-9_-], so the two
// separators can never appear inside them and decoding never needs a lookup.
// The argument is the unsplit tail and may contain anything.
package address

import (
	"errors"
	"fmt"
	"strings"
)

// MaxBytes is the platform limit for inbound button payloads.
const MaxBytes = 64

const (
	pathSep  = "/"
	fieldSep = "|"
)

var (
	// ErrTooLong reports an address that would exceed MaxBytes.
	ErrTooLong = errors.New("address exceeds byte budget")
	// ErrMalformed reports input that is not an address at all.
	ErrMalformed = errors.New("malformed address")
	// ErrInvalidID reports a local or permanent ID using reserved characters.
	ErrInvalidID = errors.New("invalid identifier")
)

// Path is the ordered list of local IDs from the root to a component. The
// root component has an empty path.
type Path []string

// Append returns a new path with id appended. The receiver is never aliased.
func (p Path) Append(id string) Path {
	out := make(Path, len(p), len(p)+1)
	copy(out, p)
	return append(out, id)
}

// Equal reports whether both paths name the same component.
func (p Path) Equal(other Path) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if p[i] != other[i] {
			return false
		}
	}
	return true
}

func (p Path) String() string {
	return strings.Join(p, pathSep)
}

// Address is the decoded form of a button payload.
type Address struct {
	Path        Path
	PermanentID string
	Arg         string
	HasArg      bool
}

func (a Address) String() string {
	s, err := Encode(a.Path, a.PermanentID, a.Arg, a.HasArg)
	if err != nil {
		return fmt.Sprintf("<invalid address: %v>", err)
	}
	return s
}

// ValidID reports whether id may be used as a path segment or permanent ID.
func ValidID(id string) bool {
	if id == "" {
		return false
	}
	for i := 0; i < len(id); i++ {
		c := id[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '_', c == '-':
		default:
			return false
		}
	}
	return true
}

// Encode serializes an address. It fails instead of truncating when the
// result does not fit MaxBytes.
func Encode(path Path, permanentID string, arg string, hasArg bool) (string, error) {
	for _, seg := range path {
		if !ValidID(seg) {
			return "", fmt.Errorf("%w: path segment %q", ErrInvalidID, seg)
		}
	}
	if !ValidID(permanentID) {
		return "", fmt.Errorf("%w: permanent id %q", ErrInvalidID, permanentID)
	}
	var b strings.Builder
	b.WriteString(path.String())
	b.WriteString(fieldSep)
	b.WriteString(permanentID)
	if hasArg {
		b.WriteString(fieldSep)
		b.WriteString(arg)
	}
	out := b.String()
	if len(out) > MaxBytes {
		return "", fmt.Errorf("%w: %d bytes for %q (limit %d)", ErrTooLong, len(out), out, MaxBytes)
	}
	return out, nil
}

// Decode parses an encoded address. Input that was not produced by Encode
// fails with ErrMalformed.
func Decode(raw string) (Address, error) {
	if raw == "" || len(raw) > MaxBytes {
		return Address{}, fmt.Errorf("%w: %q", ErrMalformed, raw)
	}
	// SplitN keeps the argument as an unsplit tail.
	parts := strings.SplitN(raw, fieldSep, 3)
	if len(parts) < 2 {
		return Address{}, fmt.Errorf("%w: missing separator in %q", ErrMalformed, raw)
	}
	var path Path
	if parts[0] != "" {
		path = strings.Split(parts[0], pathSep)
		for _, seg := range path {
			if !ValidID(seg) {
				return Address{}, fmt.Errorf("%w: bad path segment %q in %q", ErrMalformed, seg, raw)
			}
		}
	}
	if !ValidID(parts[1]) {
		return Address{}, fmt.Errorf("%w: bad permanent id %q in %q", ErrMalformed, parts[1], raw)
	}
	addr := Address{Path: path, PermanentID: parts[1]}
	if len(parts) == 3 {
		addr.Arg = parts[2]
		addr.HasArg = true
	}
	return addr, nil
}
