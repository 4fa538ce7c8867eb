package render

import "github.com/charmbracelet/lipgloss"

var (
	colorPrimary   = lipgloss.Color("12")  // bright blue
	colorSecondary = lipgloss.Color("10")  // bright green
	colorLove      = lipgloss.Color("205") // pink
	colorDim       = lipgloss.Color("240") // gray
	colorBorder    = lipgloss.Color("238") // dark gray
)

type styles struct {
	title   lipgloss.Style
	label   lipgloss.Style
	value   lipgloss.Style
	score   lipgloss.Style
	bar     lipgloss.Style
	loveBar lipgloss.Style
	dim     lipgloss.Style
	card    lipgloss.Style
}

func newStyles(noColor bool) styles {
	if noColor {
		plain := lipgloss.NewStyle()
		return styles{
			title:   plain,
			label:   plain,
			value:   plain,
			score:   plain,
			bar:     plain,
			loveBar: plain,
			dim:     plain,
			card:    plain.Border(lipgloss.NormalBorder()).Padding(0, 1),
		}
	}
	return styles{
		title:   lipgloss.NewStyle().Foreground(colorDim).Bold(true),
		label:   lipgloss.NewStyle().Foreground(colorDim),
		value:   lipgloss.NewStyle().Foreground(colorPrimary).Bold(true),
		score:   lipgloss.NewStyle().Foreground(colorLove).Bold(true),
		bar:     lipgloss.NewStyle().Foreground(colorSecondary),
		loveBar: lipgloss.NewStyle().Foreground(colorLove),
		dim:     lipgloss.NewStyle().Foreground(colorDim),
		card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1),
	}
}
