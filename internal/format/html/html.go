// Package html formats message text for the chat platform's HTML parse mode.
// Only the two inline emphasis tokens used by the widgets are produced.
package html

import "strings"

var escaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// Escape replaces the characters the parse mode treats as markup.
func Escape(text string) string {
	return escaper.Replace(text)
}

// Underline wraps already-escaped text in the underline token.
func Underline(text string) string {
	return "<u>" + text + "</u>"
}

// Italic wraps already-escaped text in the italic token.
func Italic(text string) string {
	return "<i>" + text + "</i>"
}

// SelectedButtonText surrounds text with bullets when matched is true.
func SelectedButtonText(text string, matched bool) string {
	if matched {
		return "• " + text + " •"
	}
	return text
}
