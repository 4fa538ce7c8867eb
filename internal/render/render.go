package render

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"

	"github.com/Zuo-Peng/chat-affinity/internal/analyze"
)

const (
	defaultWidth       = 80
	defaultDailyWindow = 30
	defaultTopEmojis   = 10
	minBarWidth        = 10
	topSenders         = 5
	barGlyph           = "█"
)

type Options struct {
	Width       int // 0 = 80 columns
	DailyWindow int // most recent days in the daily chart
	TopEmojis   int // rows in the emoji chart
	NoColor     bool
}

func (o Options) withDefaults() Options {
	if o.Width <= 0 {
		o.Width = defaultWidth
	}
	if o.DailyWindow <= 0 {
		o.DailyWindow = defaultDailyWindow
	}
	if o.TopEmojis <= 0 {
		o.TopEmojis = defaultTopEmojis
	}
	return o
}

// Report renders every section one after another.
func Report(a *analyze.ChatAnalysis, opts Options) string {
	return strings.Join([]string{
		Overview(a, opts),
		Daily(a, opts),
		Emoji(a, opts),
	}, "\n\n") + "\n"
}

// Summary is a one-line description of the analysis.
func Summary(a *analyze.ChatAnalysis) string {
	return fmt.Sprintf("Love score %d/100: %s messages over %d days, longest streak %d days, top emoji %s",
		a.LoveScore, humanize.Comma(int64(a.TotalMessages)), a.TotalDays,
		a.Insights.LongestStreak, a.Insights.TopEmoji)
}

// Overview renders the score, scalar cards, insights and score breakdown.
func Overview(a *analyze.ChatAnalysis, opts Options) string {
	opts = opts.withDefaults()
	st := newStyles(opts.NoColor)

	var b strings.Builder

	scoreW := max(opts.Width-20, minBarWidth)
	b.WriteString(st.title.Render("LOVE SCORE") + "  " +
		st.score.Render(fmt.Sprintf("%d/100", a.LoveScore)) + "  " +
		st.loveBar.Render(bar(a.LoveScore, 100, scoreW)))
	b.WriteString("\n\n")

	cards := []string{
		card(st, "Messages", humanize.Comma(int64(a.TotalMessages))),
		card(st, "Active days", strconv.Itoa(a.TotalDays)),
		card(st, "Per day", fmt.Sprintf("%.1f", a.AverageMessagesPerDay)),
		card(st, "Avg length", fmt.Sprintf("%d chars", a.AverageMessageLength)),
		card(st, "Emojis", humanize.Comma(int64(a.TotalEmojis))),
		card(st, "Love emojis", humanize.Comma(int64(a.LoveEmojis))),
	}
	b.WriteString(flowCards(cards, opts.Width))
	b.WriteString("\n\n")

	b.WriteString(st.title.Render("INSIGHTS"))
	b.WriteString("\n")
	rows := [][2]string{
		{"Most active day", a.Insights.MostActiveDay},
		{"Longest streak", fmt.Sprintf("%d days", a.Insights.LongestStreak)},
		{"Top emoji", a.Insights.TopEmoji},
		{"Consistency", fmt.Sprintf("%d%%", a.Insights.Consistency)},
		{"Span", span(a)},
	}
	for _, r := range rows {
		b.WriteString(fmt.Sprintf("  %s %s\n", st.label.Render(padRight(r[0], 16)), st.value.Render(r[1])))
	}

	b.WriteString("\n")
	b.WriteString(st.title.Render("SCORE BREAKDOWN"))
	b.WriteString("\n")
	parts := []struct {
		name  string
		value float64
		cap   int
	}{
		{"Frequency", a.Breakdown.Frequency, 30},
		{"Love emojis", a.Breakdown.Affection, 25},
		{"Consistency", a.Breakdown.Consistency, 20},
		{"Length", a.Breakdown.Length, 15},
		{"Duration", a.Breakdown.Duration, 10},
	}
	for _, p := range parts {
		b.WriteString(fmt.Sprintf("  %s %5.1f %s\n",
			st.label.Render(padRight(p.name, 16)), p.value, st.dim.Render(fmt.Sprintf("/ %d", p.cap))))
	}

	if len(a.Senders) > 0 {
		b.WriteString("\n")
		b.WriteString(st.title.Render("SENDERS"))
		b.WriteString("\n")
		for i, s := range a.Senders {
			if i == topSenders {
				b.WriteString(st.dim.Render(fmt.Sprintf("  ... (%d more)", len(a.Senders)-topSenders)))
				b.WriteString("\n")
				break
			}
			name := s.Sender
			if name == "" {
				name = "(unknown)"
			}
			b.WriteString(fmt.Sprintf("  %s %s\n",
				st.label.Render(padRight(runewidth.Truncate(name, 16, "…"), 16)),
				st.value.Render(humanize.Comma(int64(s.Messages)))))
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

// Daily renders the most recent DailyWindow entries of the daily histogram.
func Daily(a *analyze.ChatAnalysis, opts Options) string {
	opts = opts.withDefaults()
	st := newStyles(opts.NoColor)

	days := a.DailyMessages
	if len(days) > opts.DailyWindow {
		days = days[len(days)-opts.DailyWindow:]
	}

	var b strings.Builder
	b.WriteString(st.title.Render(fmt.Sprintf("DAILY MESSAGES (last %d active days)", len(days))))
	b.WriteString("\n")

	peak := 0
	for _, d := range days {
		peak = max(peak, d.Messages)
	}
	countW := len(strconv.Itoa(peak))
	barW := max(opts.Width-10-countW-4, minBarWidth)

	for _, d := range days {
		b.WriteString(fmt.Sprintf("  %s %s %*d\n",
			st.label.Render(d.Date),
			st.bar.Render(padRight(bar(d.Messages, peak, barW), barW)),
			countW, d.Messages))
	}
	return strings.TrimRight(b.String(), "\n")
}

// Emoji renders the TopEmojis most used emoji as a ranked bar chart.
func Emoji(a *analyze.ChatAnalysis, opts Options) string {
	opts = opts.withDefaults()
	st := newStyles(opts.NoColor)

	var b strings.Builder
	b.WriteString(st.title.Render("TOP EMOJI"))
	b.WriteString("\n")
	if len(a.EmojiStats) == 0 {
		b.WriteString(st.dim.Render("  no emoji used"))
		return b.String()
	}

	top := a.EmojiStats
	if len(top) > opts.TopEmojis {
		top = top[:opts.TopEmojis]
	}
	peak := top[0].Count
	countW := len(strconv.Itoa(peak))
	rankW := len(strconv.Itoa(len(top)))
	barW := max(opts.Width-rankW-countW-10, minBarWidth)

	for i, e := range top {
		b.WriteString(fmt.Sprintf("  %*d. %s %s %*d\n",
			rankW, i+1,
			runewidth.FillRight(e.Emoji, 2),
			st.loveBar.Render(padRight(bar(e.Count, peak, barW), barW)),
			countW, e.Count))
	}
	return strings.TrimRight(b.String(), "\n")
}

// bar scales n against peak into at most width cells; any n > 0 gets one.
func bar(n, peak, width int) string {
	if n <= 0 || peak <= 0 || width <= 0 {
		return ""
	}
	cells := int(math.Round(float64(n) / float64(peak) * float64(width)))
	cells = min(max(cells, 1), width)
	return strings.Repeat(barGlyph, cells)
}

func card(st styles, label, value string) string {
	return st.card.Render(st.label.Render(label) + "\n" + st.value.Render(value))
}

// flowCards lays cards left to right, wrapping to a new row at width.
func flowCards(cards []string, width int) string {
	var rows []string
	var row []string
	rowW := 0
	for _, c := range cards {
		w := lipgloss.Width(c)
		if len(row) > 0 && rowW+w > width {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row, rowW = nil, 0
		}
		row = append(row, c)
		rowW += w
	}
	if len(row) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func span(a *analyze.ChatAnalysis) string {
	first := a.FirstMessageAt.Format("Jan 2, 2006")
	last := a.LastMessageAt.Format("Jan 2, 2006")
	if first == last {
		return first
	}
	rel := strings.TrimSpace(humanize.RelTime(a.FirstMessageAt, a.LastMessageAt, "", ""))
	return fmt.Sprintf("%s to %s (%s)", first, last, rel)
}

func padRight(s string, width int) string {
	return runewidth.FillRight(s, width)
}
