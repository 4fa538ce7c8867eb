package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/Zuo-Peng/chat-affinity/internal/search"
)

// linesPerItem is the number of terminal lines each message occupies.
const linesPerItem = 2

// renderList renders the filtered messages with scrolling.
func (m model) renderList(width, height int) string {
	if len(m.results) == 0 {
		return lipgloss.NewStyle().
			Foreground(colorDim).
			Width(width).
			Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Render("No messages")
	}

	var lines []string
	for i, r := range m.results {
		if i < m.listOffset {
			continue
		}
		if len(lines)+linesPerItem > height {
			break
		}
		lines = append(lines, formatResultLine(r, width, i == m.cursor)...)
	}

	for len(lines) < height {
		lines = append(lines, strings.Repeat(" ", width))
	}
	return strings.Join(lines, "\n")
}

// formatResultLine formats a single message as two lines:
//
//	line 1: [>] date time  sender
//	line 2:    snippet (dimmed)
func formatResultLine(r search.Result, width int, selected bool) []string {
	stamp := r.Message.Timestamp.Format("2006-01-02 15:04")

	sender := r.Message.Sender
	if sender == "" {
		sender = "(unknown)"
	}
	senderMax := max(width-2-len(stamp)-2, 0)
	if runewidth.StringWidth(sender) > senderMax {
		sender = runewidth.Truncate(sender, senderMax, "")
	}

	line1 := fmt.Sprintf("%s  %s", stamp, styleListSender.Render(sender))
	if selected {
		line1 = styleListSelected.Render("> ") + line1
	} else {
		line1 = "  " + line1
	}

	snippet := strings.ReplaceAll(r.Snippet, "\t", " ")
	snippet = strings.ReplaceAll(snippet, ">>>", "")
	snippet = strings.ReplaceAll(snippet, "<<<", "")
	snippetMax := max(width-4, 0)
	if runewidth.StringWidth(snippet) > snippetMax {
		snippet = runewidth.Truncate(snippet, snippetMax, "")
	}
	line2 := "    " + styleListSnippet.Render(snippet)

	return []string{line1, line2}
}

// adjustListScroll keeps the cursor visible within the list viewport.
func (m *model) adjustListScroll(listHeight int) {
	visibleItems := max(listHeight/linesPerItem, 1)
	if m.cursor < m.listOffset {
		m.listOffset = m.cursor
	}
	if m.cursor >= m.listOffset+visibleItems {
		m.listOffset = m.cursor - visibleItems + 1
	}
}
