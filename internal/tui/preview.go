package tui

import (
	"github.com/Zuo-Peng/wa-chat-stats/internal/parse"
	"github.com/Zuo-Peng/wa-chat-stats/internal/render"
	"github.com/Zuo-Peng/wa-chat-stats/internal/stats"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// reportRenderedMsg is sent when an async report render completes.
type reportRenderedMsg struct {
	user    string
	content string
	err     error
}

// loadReportCmd returns a tea.Cmd that builds and renders user's report.
// msgs is never mutated, so rendering off the update loop is safe.
func loadReportCmd(msgs []parse.Message, opts stats.Options, user string, width int) tea.Cmd {
	return func() tea.Msg {
		r, err := stats.Build(user, msgs, opts)
		if err != nil {
			return reportRenderedMsg{user: user, err: err}
		}
		return reportRenderedMsg{
			user:    user,
			content: render.Report(r, render.Options{Width: width, Color: true}),
		}
	}
}

// newViewport creates a new viewport model with the given dimensions.
func newViewport(width, height int) viewport.Model {
	vp := viewport.New(width, height)
	vp.Style = stylePanelBorder
	return vp
}
