package ui

import (
	"html"
	"strings"
)

// span is a run of message text sharing one emphasis.
type span struct {
	text      string
	underline bool
	italic    bool
}

// parseMarkup splits chat HTML into spans. Only <u> and <i> are markup;
// anything else is literal text with entities decoded.
func parseMarkup(s string) []span {
	var (
		spans             []span
		underline, italic bool
		literal           strings.Builder
	)
	flush := func() {
		if literal.Len() == 0 {
			return
		}
		spans = append(spans, span{text: html.UnescapeString(literal.String()), underline: underline, italic: italic})
		literal.Reset()
	}
	for s != "" {
		switch {
		case strings.HasPrefix(s, "<u>"):
			flush()
			underline = true
			s = s[len("<u>"):]
		case strings.HasPrefix(s, "</u>"):
			flush()
			underline = false
			s = s[len("</u>"):]
		case strings.HasPrefix(s, "<i>"):
			flush()
			italic = true
			s = s[len("<i>"):]
		case strings.HasPrefix(s, "</i>"):
			flush()
			italic = false
			s = s[len("</i>"):]
		default:
			next := strings.IndexByte(s[1:], '<')
			if next < 0 {
				literal.WriteString(s)
				s = ""
				continue
			}
			literal.WriteString(s[:next+1])
			s = s[next+1:]
		}
	}
	flush()
	return spans
}

// plainMarkup drops emphasis and decodes entities.
func plainMarkup(s string) string {
	var b strings.Builder
	for _, sp := range parseMarkup(s) {
		b.WriteString(sp.text)
	}
	return b.String()
}

// renderMarkup styles chat HTML for the terminal.
func renderMarkup(s string) string {
	var b strings.Builder
	for _, sp := range parseMarkup(s) {
		style := *styles.Message
		switch {
		case sp.underline:
			style = *styles.Underline
			if sp.italic {
				style = style.Italic(true)
			}
		case sp.italic:
			style = *styles.Italic
		}
		lines := strings.Split(sp.text, "\n")
		for i, line := range lines {
			if i > 0 {
				b.WriteByte('\n')
			}
			if line != "" {
				b.WriteString(style.Render(line))
			}
		}
	}
	return b.String()
}
