// Package fingerprint reduces structured values to a stable string so callers
// can tell whether anything visible changed between two render cycles.
package fingerprint

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// Canonical returns a canonical JSON encoding of v. Object keys are sorted at
// every nesting depth, so values that differ only in construction order
// produce identical output. Structs are treated as the objects they marshal
// to, and numbers are normalized through their JSON form.
func Canonical(v any) (string, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("fingerprint: marshal: %w", err)
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var generic any
	if err := dec.Decode(&generic); err != nil {
		return "", fmt.Errorf("fingerprint: normalize: %w", err)
	}
	// encoding/json writes map keys in sorted order, recursively.
	out, err := json.Marshal(generic)
	if err != nil {
		return "", fmt.Errorf("fingerprint: encode: %w", err)
	}
	return string(out), nil
}

// Of returns the hex SHA-256 digest of the canonical form of v.
func Of(v any) (string, error) {
	canonical, err := Canonical(v)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256([]byte(canonical))
	return hex.EncodeToString(sum[:]), nil
}

// Equal reports whether a and b have the same canonical form. Values that
// cannot be encoded are never equal.
func Equal(a, b any) bool {
	ca, err := Canonical(a)
	if err != nil {
		return false
	}
	cb, err := Canonical(b)
	if err != nil {
		return false
	}
	return ca == cb
}
