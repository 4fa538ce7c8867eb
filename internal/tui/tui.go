package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Zuo-Peng/chat-affinity/internal/analyze"
	"github.com/Zuo-Peng/chat-affinity/internal/parse"
	"github.com/Zuo-Peng/chat-affinity/internal/render"
	"github.com/Zuo-Peng/chat-affinity/internal/search"
)

const debounceDelay = 200 * time.Millisecond

type tab int

const (
	tabOverview tab = iota
	tabDaily
	tabEmoji
	tabMessages
	tabCount
)

var tabNames = [tabCount]string{"Overview", "Daily", "Emoji", "Messages"}

// message types

type filterResultMsg struct {
	query   string
	results []search.Result
	err     error
}

type debounceTickMsg struct {
	query string
}

type copiedMsg struct {
	err error
}

// model

type model struct {
	analysis    *analyze.ChatAnalysis
	messages    []parse.Message
	opts        render.Options
	active      tab
	body        viewport.Model
	filterInput textinput.Model
	query       string
	results     []search.Result
	cursor      int
	listOffset  int
	status      string
	width       int
	height      int
	ready       bool
	quitting    bool
	selected    *parse.Message
}

func initialModel(a *analyze.ChatAnalysis, msgs []parse.Message, opts render.Options) model {
	ti := textinput.New()
	ti.Placeholder = "Filter messages..."
	ti.Prompt = "> "
	ti.PromptStyle = styleInputPrompt
	ti.TextStyle = styleInput
	ti.CharLimit = 256

	return model{
		analysis:    a,
		messages:    msgs,
		opts:        opts,
		body:        viewport.New(0, 0),
		filterInput: ti,
	}
}

// Run starts the TUI and blocks until it exits. It returns the message
// picked from the Messages tab, or nil if the user quit without picking.
func Run(a *analyze.ChatAnalysis, msgs []parse.Message, opts render.Options) (*parse.Message, error) {
	m := initialModel(a, msgs, opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	finalModel, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("tui: %w", err)
	}
	return finalModel.(model).selected, nil
}

// Init loads the unfiltered message list.
func (m model) Init() tea.Cmd {
	return m.doFilter("")
}

// Update handles messages.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.body = viewport.New(m.panelWidth(), m.panelHeight())
		m.refreshBody()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, keys.NextTab):
			return m.switchTab((m.active + 1) % tabCount)

		case key.Matches(msg, keys.PrevTab):
			return m.switchTab((m.active + tabCount - 1) % tabCount)

		case key.Matches(msg, keys.Copy):
			return m, copySummary(m.analysis)
		}

		if m.active == tabMessages {
			return m.updateMessages(msg)
		}

		switch {
		case key.Matches(msg, keys.Up):
			m.body.LineUp(1)
		case key.Matches(msg, keys.Down):
			m.body.LineDown(1)
		case key.Matches(msg, keys.HalfUp):
			m.body.LineUp(m.panelHeight() / 2)
		case key.Matches(msg, keys.HalfDown):
			m.body.LineDown(m.panelHeight() / 2)
		case key.Matches(msg, keys.PageUp):
			m.body.LineUp(m.panelHeight())
		case key.Matches(msg, keys.PageDown):
			m.body.LineDown(m.panelHeight())
		}
		return m, nil

	case tea.MouseMsg:
		if !m.ready {
			return m, nil
		}
		if m.active != tabMessages {
			var vpCmd tea.Cmd
			m.body, vpCmd = m.body.Update(msg)
			return m, vpCmd
		}
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			if m.listOffset > 0 {
				m.listOffset--
			}
		case tea.MouseButtonWheelDown:
			visibleItems := m.listHeight() / linesPerItem
			if m.listOffset < max(len(m.results)-visibleItems, 0) {
				m.listOffset++
			}
		}
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.status = "Copy failed: " + msg.err.Error()
		} else {
			m.status = "Copied summary to clipboard"
		}
		return m, nil

	case debounceTickMsg:
		// Only filter if the query hasn't changed since the tick was scheduled
		if msg.query == m.query {
			cmds = append(cmds, m.doFilter(msg.query))
		}
		return m, tea.Batch(cmds...)

	case filterResultMsg:
		if msg.query != m.query {
			return m, nil
		}
		m.cursor = 0
		m.listOffset = 0
		if msg.err != nil {
			m.results = nil
			m.status = "Error: " + msg.err.Error()
			return m, nil
		}
		m.results = msg.results
		m.status = ""
		return m, nil
	}

	return m, tea.Batch(cmds...)
}

func (m model) updateMessages(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Enter):
		if m.cursor < len(m.results) {
			picked := m.results[m.cursor].Message
			m.selected = &picked
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case key.Matches(msg, keys.Up):
		if m.cursor > 0 {
			m.cursor--
			m.adjustListScroll(m.listHeight())
		}
		return m, nil

	case key.Matches(msg, keys.Down):
		if m.cursor < len(m.results)-1 {
			m.cursor++
			m.adjustListScroll(m.listHeight())
		}
		return m, nil
	}

	var tiCmd tea.Cmd
	m.filterInput, tiCmd = m.filterInput.Update(msg)
	cmds := []tea.Cmd{tiCmd}

	if q := m.filterInput.Value(); q != m.query {
		m.query = q
		cmds = append(cmds, m.scheduleDebouncedFilter(q))
	}
	return m, tea.Batch(cmds...)
}

func (m model) switchTab(t tab) (tea.Model, tea.Cmd) {
	m.active = t
	m.status = ""
	if t == tabMessages {
		m.filterInput.Focus()
		return m, textinput.Blink
	}
	m.filterInput.Blur()
	m.refreshBody()
	return m, nil
}

// refreshBody re-renders the active analysis tab into the viewport.
func (m *model) refreshBody() {
	opts := m.opts
	opts.Width = m.panelWidth()

	var content string
	switch m.active {
	case tabOverview:
		content = render.Overview(m.analysis, opts)
	case tabDaily:
		content = render.Daily(m.analysis, opts)
	case tabEmoji:
		content = render.Emoji(m.analysis, opts)
	default:
		return
	}
	m.body.SetContent(content)
	m.body.GotoTop()
}

// View renders the full TUI.
func (m model) View() string {
	if m.quitting || !m.ready {
		return ""
	}

	var inner string
	if m.active == tabMessages {
		inner = lipgloss.JoinVertical(lipgloss.Left,
			m.filterInput.View(),
			m.renderList(m.panelWidth(), m.listHeight()))
	} else {
		m.body.Width = m.panelWidth()
		m.body.Height = m.panelHeight()
		inner = m.body.View()
	}

	panel := stylePanelBorder.
		Width(m.panelWidth()).
		Height(m.panelHeight()).
		Render(inner)

	return lipgloss.JoinVertical(lipgloss.Left, m.tabBar(), panel, m.statusBar())
}

// helper methods

func (m model) panelWidth() int {
	if m.width <= 0 {
		return 78
	}
	return max(m.width-2, 20)
}

func (m model) panelHeight() int {
	if m.height <= 0 {
		return 20
	}
	// Subtract tab bar (1) + status bar (1) + borders (2)
	return max(m.height-4, 5)
}

// listHeight leaves room for the filter input above the message list.
func (m model) listHeight() int {
	return max(m.panelHeight()-1, linesPerItem)
}

func (m model) tabBar() string {
	parts := make([]string, 0, tabCount)
	for i, name := range tabNames {
		if tab(i) == m.active {
			parts = append(parts, styleTabActive.Render(name))
		} else {
			parts = append(parts, styleTabInactive.Render(name))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m model) statusBar() string {
	parts := []string{fmt.Sprintf("score %d/100", m.analysis.LoveScore)}
	if m.active == tabMessages {
		parts = append(parts, fmt.Sprintf("%d messages", len(m.results)), "Enter open in editor")
	} else {
		parts = append(parts, "up/dn C-u/C-d scroll")
	}
	parts = append(parts, "Tab switch", "C-y copy", "Esc quit")
	if m.status != "" {
		parts = append(parts, m.status)
	}
	return styleStatusBar.Render(strings.Join(parts, " | "))
}

func (m model) doFilter(query string) tea.Cmd {
	msgs := m.messages
	return func() tea.Msg {
		results, err := search.Filter(msgs, search.Options{Query: query})
		return filterResultMsg{query: query, results: results, err: err}
	}
}

func (m model) scheduleDebouncedFilter(query string) tea.Cmd {
	return tea.Tick(debounceDelay, func(time.Time) tea.Msg {
		return debounceTickMsg{query: query}
	})
}

func copySummary(a *analyze.ChatAnalysis) tea.Cmd {
	summary := render.Summary(a)
	return func() tea.Msg {
		return copiedMsg{err: clipboard.WriteAll(summary)}
	}
}
