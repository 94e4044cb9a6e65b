package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
)

const (
	buttonGap      = 1
	buttonMinWidth = 3
)

type styledLine struct {
	text  string
	style *lipgloss.Style
	raw   bool // text contains ANSI escapes; skip style wrapping, use ANSI-aware truncation
}

// View renders the chat message, its keyboard and the composer.
func (m *Model) View() string {
	lines := make([]styledLine, 0, 16)
	lines = append(lines, styledLine{text: m.header(), style: styles.Header})
	if m.message.ID == 0 && m.loading {
		lines = append(lines, styledLine{text: "loading…", style: styles.Loading})
		return renderLines(applyWidth(limitHeight(lines, m.height, m.width), m.width))
	}

	lines = append(lines, m.messageLines()...)
	lines = append(lines, styledLine{})
	lines = append(lines, m.keyboardLines()...)

	if m.pending != nil {
		lines = append(lines, styledLine{
			text:  fmt.Sprintf("awaiting %s for %s", m.pending.Kind, m.pending.Path),
			style: styles.Pending,
		})
	}
	if info := m.currentInfo(); info != "" {
		lines = append(lines, styledLine{text: info, style: styles.Notice})
	}
	if m.errMsg != "" {
		lines = append(lines, styledLine{text: "error: " + m.errMsg, style: styles.Error})
	}

	footer := m.footerLines()
	if m.height > 0 {
		lines = limitHeight(lines, m.height-len(footer), m.width)
	}
	lines = append(lines, footer...)
	return renderLines(applyWidth(lines, m.width))
}

func (m *Model) header() string {
	header := "chat " + m.chatID
	if m.loading {
		header += " …"
	}
	return header
}

func (m *Model) messageLines() []styledLine {
	text := renderMarkup(strings.TrimRight(m.message.Payload.Text, "\n"))
	if m.width > 0 {
		text = wordwrap.String(text, m.width)
	}
	parts := strings.Split(text, "\n")
	lines := make([]styledLine, len(parts))
	for i, part := range parts {
		lines[i] = styledLine{text: part, raw: true}
	}
	return lines
}

func (m *Model) keyboardLines() []styledLine {
	kb := m.message.Payload.Keyboard
	lines := make([]styledLine, 0, len(kb))
	for r, row := range kb {
		if len(row) == 0 {
			continue
		}
		limit := buttonWidth(m.width, len(row))
		cells := make([]string, len(row))
		for c, btn := range row {
			label := btn.Label
			if limit > 0 && lipgloss.Width(label) > limit {
				label = truncate.StringWithTail(label, uint(limit), "…")
			}
			style := styles.Button
			if m.mode == ModeKeyboard && r == m.grid.Row && c == m.grid.Col {
				style = styles.SelectedButton
			}
			cells[c] = style.Render(" " + label + " ")
		}
		lines = append(lines, styledLine{text: strings.Join(cells, strings.Repeat(" ", buttonGap)), raw: true})
	}
	return lines
}

// buttonWidth is the label budget for each of n buttons sharing a row.
func buttonWidth(width, n int) int {
	if width <= 0 || n == 0 {
		return 0
	}
	w := (width-(n-1)*buttonGap)/n - 2
	if w < buttonMinWidth {
		return buttonMinWidth
	}
	return w
}

func (m *Model) footerLines() []styledLine {
	if m.mode == ModeComposer {
		return []styledLine{
			{text: m.composer.View(), raw: true},
			{text: "enter send · esc keyboard", style: styles.Footer},
		}
	}
	return []styledLine{{text: "←↑↓→ move · enter press · tab compose · q quit", style: styles.Footer}}
}

func limitHeight(lines []styledLine, height, width int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []styledLine{{text: truncateText("…", width)}}
	}
	trimmed := make([]styledLine, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	trimmed = append(trimmed, styledLine{text: truncateText("…", width)})
	return trimmed
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			if lipgloss.Width(text) > width {
				text = truncate.StringWithTail(text, uint(width-1), "…")
			}
		} else {
			text = truncateText(text, width)
		}
		result[i] = styledLine{text: text, style: line.style, raw: line.raw}
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		if !line.raw && line.style != nil && text != "" {
			text = line.style.Render(text)
		}
		out[i] = text
	}
	return strings.Join(out, "\n")
}

func truncateText(text string, width int) string {
	if width <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= width {
		return text
	}
	if width == 1 {
		return string(runes[:1])
	}
	return string(runes[:width-1]) + "…"
}
