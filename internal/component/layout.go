package component

import (
	"errors"
	"fmt"
	"strings"
)

var errLayoutSyntax = errors.New("expected [label](handler) or [label](handler:arg)")

// ParseTextKeyboard builds a keyboard from a textual layout. Each non-blank
// line is a row of buttons written as [label](handler) or
// [label](handler:arg), where handler is a logical handler name on b and arg
// is passed to the handler as a string.
//
//	[✅ Submit](submit) [↺ Reset](reset)
//	[Page 2](page:2)
func (b *Base) ParseTextKeyboard(layout string) (Keyboard, error) {
	kb := Keyboard{}
	row := 0
	for _, line := range strings.Split(layout, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		buttons, err := b.parseLayoutRow(row, line)
		if err != nil {
			return nil, err
		}
		kb = append(kb, buttons)
		row++
	}
	return kb, nil
}

func (b *Base) parseLayoutRow(row int, line string) ([]Button, error) {
	var buttons []Button
	rest := line
	for col := 0; rest != ""; col++ {
		token, tail, err := nextLayoutToken(rest)
		if err != nil {
			return nil, &LayoutError{Row: row, Col: col, Button: token, Err: err}
		}
		rest = strings.TrimSpace(tail)

		label, target := splitLayoutToken(token)
		name, arg, hasArg := strings.Cut(target, ":")
		h := b.Handler(name)
		if h == nil {
			return nil, &LayoutError{Row: row, Col: col, Button: token, Err: fmt.Errorf("handler %q: %w", name, ErrHandlerNotFound)}
		}
		var btn Button
		if hasArg {
			btn, err = b.Button(label, h, arg)
		} else {
			btn, err = b.Button(label, h)
		}
		if err != nil {
			return nil, &LayoutError{Row: row, Col: col, Button: token, Err: err}
		}
		buttons = append(buttons, btn)
	}
	return buttons, nil
}

// nextLayoutToken splits "[label](target) rest" into the token and the rest.
// On error the returned token is the malformed fragment.
func nextLayoutToken(s string) (token, rest string, err error) {
	if !strings.HasPrefix(s, "[") {
		return firstField(s), "", errLayoutSyntax
	}
	closeLabel := strings.Index(s, "](")
	if closeLabel <= 1 {
		return firstField(s), "", errLayoutSyntax
	}
	closeTarget := strings.Index(s[closeLabel+2:], ")")
	if closeTarget <= 0 {
		return s, "", errLayoutSyntax
	}
	end := closeLabel + 2 + closeTarget + 1
	return s[:end], s[end:], nil
}

func splitLayoutToken(token string) (label, target string) {
	i := strings.Index(token, "](")
	return token[1:i], token[i+2 : len(token)-1]
}

func firstField(s string) string {
	if f := strings.Fields(s); len(f) > 0 {
		return f[0]
	}
	return s
}
