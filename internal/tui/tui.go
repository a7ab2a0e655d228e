package tui

import (
	"fmt"
	"strings"

	"github.com/Zuo-Peng/wa-chat-stats/internal/parse"
	"github.com/Zuo-Peng/wa-chat-stats/internal/render"
	"github.com/Zuo-Peng/wa-chat-stats/internal/stats"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// model

type model struct {
	msgs         []parse.Message
	opts         stats.Options
	title        string
	participants []participant // Overall first, then sorted names
	visible      []participant
	cursor       int
	listOffset   int
	filterInput  textinput.Model
	preview      viewport.Model
	previewUser  string // user whose report is in the viewport
	content      string
	width        int
	height       int
	ready        bool
	quitting     bool
	copyText     string
}

func initialModel(msgs []parse.Message, opts stats.Options, title, user string) model {
	ti := textinput.New()
	ti.Placeholder = "Filter participants..."
	ti.Focus()
	ti.Prompt = "> "
	ti.PromptStyle = styleInputPrompt
	ti.TextStyle = styleInput
	ti.CharLimit = 256

	counts := make(map[string]int)
	for _, msg := range msgs {
		if !msg.System {
			counts[msg.Sender]++
		}
	}
	ps := []participant{{Name: stats.Overall, Messages: len(msgs)}}
	for _, name := range stats.Participants(msgs) {
		ps = append(ps, participant{Name: name, Messages: counts[name]})
	}

	m := model{
		msgs:         msgs,
		opts:         opts,
		title:        title,
		participants: ps,
		visible:      ps,
		filterInput:  ti,
		preview:      viewport.New(0, 0),
	}
	for i, p := range ps {
		if p.Name == user {
			m.cursor = i
		}
	}
	return m
}

// Run starts the dashboard and blocks until it exits. If the user pressed
// enter, the selected report is copied to the clipboard.
func Run(msgs []parse.Message, opts stats.Options, title, user string) error {
	m := initialModel(msgs, opts, title, user)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}

	fm := finalModel.(model)
	if fm.copyText != "" {
		return copyReport(fm.copyText)
	}
	return nil
}

// copyReport puts the plain report on the clipboard, printing it instead
// when no clipboard is available.
func copyReport(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		fmt.Print(text)
		return nil
	}
	fmt.Println("Copied report to clipboard.")
	return nil
}

// Init starts the cursor blink; the first report renders once the window
// size is known.
func (m model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.preview = newViewport(m.previewWidth(), m.panelHeight())
		m.adjustListScroll(m.panelHeight())
		// width changed, so the current report has to be re-rendered
		m.previewUser = ""
		return m, m.loadCurrentReport()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, keys.Enter):
			if m.content != "" {
				m.copyText = render.Plain(m.content)
				m.quitting = true
				return m, tea.Quit
			}
			return m, nil

		case key.Matches(msg, keys.Up):
			if m.cursor > 0 {
				m.cursor--
				m.adjustListScroll(m.panelHeight())
				return m, m.loadCurrentReport()
			}
			return m, nil

		case key.Matches(msg, keys.Down):
			if m.cursor < len(m.visible)-1 {
				m.cursor++
				m.adjustListScroll(m.panelHeight())
				return m, m.loadCurrentReport()
			}
			return m, nil

		case key.Matches(msg, keys.PreviewUp):
			m.preview.LineUp(m.panelHeight() / 2)
			return m, nil

		case key.Matches(msg, keys.PreviewDn):
			m.preview.LineDown(m.panelHeight() / 2)
			return m, nil

		case key.Matches(msg, keys.PageUp):
			m.preview.LineUp(m.panelHeight())
			return m, nil

		case key.Matches(msg, keys.PageDown):
			m.preview.LineDown(m.panelHeight())
			return m, nil
		}

		// Pass remaining keys to the filter input
		before := m.filterInput.Value()
		var tiCmd tea.Cmd
		m.filterInput, tiCmd = m.filterInput.Update(msg)
		if m.filterInput.Value() != before {
			m.applyFilter(m.filterInput.Value())
			if len(m.visible) == 0 {
				m.content = ""
				m.previewUser = ""
				m.preview.SetContent("")
			}
			return m, tea.Batch(tiCmd, m.loadCurrentReport())
		}
		return m, tiCmd

	case tea.MouseMsg:
		if !m.ready || len(m.visible) == 0 {
			return m, nil
		}

		region, itemIdx := m.hitTest(msg.X, msg.Y)

		switch {
		case region == regionList && msg.Button == tea.MouseButtonWheelUp:
			if m.listOffset > 0 {
				m.listOffset--
			}
			return m, nil

		case region == regionList && msg.Button == tea.MouseButtonWheelDown:
			maxOffset := len(m.visible) - m.panelHeight()
			if maxOffset < 0 {
				maxOffset = 0
			}
			if m.listOffset < maxOffset {
				m.listOffset++
			}
			return m, nil

		case region == regionList && msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionPress:
			if itemIdx >= 0 && itemIdx < len(m.visible) && m.cursor != itemIdx {
				m.cursor = itemIdx
				m.adjustListScroll(m.panelHeight())
				return m, m.loadCurrentReport()
			}
			return m, nil

		case region == regionPreview && (msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown):
			var vpCmd tea.Cmd
			m.preview, vpCmd = m.preview.Update(msg)
			return m, vpCmd
		}

		return m, nil

	case reportRenderedMsg:
		// Drop stale renders for a participant no longer selected
		if msg.user != m.selectedUser() {
			return m, nil
		}
		if msg.err != nil {
			m.content = ""
			m.preview.SetContent("Report error: " + msg.err.Error())
		} else {
			m.content = msg.content
			m.preview.SetContent(msg.content)
			m.preview.GotoTop()
		}
		m.previewUser = msg.user
		return m, nil
	}

	return m, nil
}

// View renders the full TUI.
func (m model) View() string {
	if m.quitting || !m.ready {
		return ""
	}

	listW := m.listWidth()
	previewW := m.previewWidth()
	panelH := m.panelHeight()

	inputRow := m.filterInput.View()

	listPanel := stylePanelBorder.
		Width(listW).
		Height(panelH).
		Render(m.renderList(listW, panelH))

	m.preview.Width = previewW
	m.preview.Height = panelH
	previewPanel := styleActiveBorder.
		Width(previewW).
		Height(panelH).
		Render(m.preview.View())

	panels := lipgloss.JoinHorizontal(lipgloss.Top, listPanel, previewPanel)

	return lipgloss.JoinVertical(lipgloss.Left, inputRow, panels, m.statusBar())
}

// helper methods

func (m model) selectedUser() string {
	if m.cursor < 0 || m.cursor >= len(m.visible) {
		return ""
	}
	return m.visible[m.cursor].Name
}

func (m model) listWidth() int {
	if m.width <= 0 {
		return 30
	}
	// 30% for list, minus border padding
	w := m.width*30/100 - 4
	if w < 16 {
		w = 16
	}
	return w
}

func (m model) previewWidth() int {
	if m.width <= 0 {
		return 70
	}
	// 70% for the report, minus border padding
	w := m.width*70/100 - 4
	if w < 20 {
		w = 20
	}
	return w
}

func (m model) panelHeight() int {
	if m.height <= 0 {
		return 20
	}
	// Subtract input row (1) + status bar (1) + borders (4)
	h := m.height - 6
	if h < 5 {
		h = 5
	}
	return h
}

type mouseRegion int

const (
	regionNone mouseRegion = iota
	regionList
	regionPreview
)

// hitTest maps terminal coordinates to a panel region and list item index.
func (m model) hitTest(x, y int) (mouseRegion, int) {
	pH := m.panelHeight()
	contentYStart := 2 // input row (1) + top border (1)
	contentYEnd := contentYStart + pH - 1

	if y < contentYStart || y > contentYEnd {
		return regionNone, -1
	}
	relY := y - contentYStart

	lw := m.listWidth()
	listBoxRight := lw + 1 // col 0=border, 1..lw=content, lw+1=border

	if x >= 1 && x <= lw {
		return regionList, m.listOffset + relY
	}

	if x > listBoxRight+1 {
		return regionPreview, -1
	}

	return regionNone, -1
}

func (m model) statusBar() string {
	var parts []string
	if m.title != "" {
		parts = append(parts, m.title)
	}
	parts = append(parts, fmt.Sprintf("%d messages", len(m.msgs)))
	parts = append(parts, "click/up/dn select")
	parts = append(parts, "scroll/C-u/C-d report")
	parts = append(parts, "Enter copy report")
	parts = append(parts, "Esc quit")
	return styleStatusBar.Render(strings.Join(parts, " | "))
}

func (m model) loadCurrentReport() tea.Cmd {
	user := m.selectedUser()
	if user == "" || user == m.previewUser {
		return nil
	}
	return loadReportCmd(m.msgs, m.opts, user, m.previewWidth()-2)
}
