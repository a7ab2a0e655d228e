package tui

import (
	"strings"
	"testing"

	"github.com/Zuo-Peng/wa-chat-stats/internal/parse"
	"github.com/Zuo-Peng/wa-chat-stats/internal/stats"
	tea "github.com/charmbracelet/bubbletea"
)

const export = "1/5/24, 10:00 AM - Alice: pizza tonight?\n" +
	"1/5/24, 10:01 AM - Bob: yes pizza 😀\n" +
	"1/5/24, 10:02 AM - Bob added Carol\n" +
	"1/6/24, 9:00 PM - Carol: hi all\n" +
	"1/6/24, 9:05 PM - Alice: welcome\n"

func newTestModel(t *testing.T, user string) model {
	t.Helper()
	msgs := parse.Parse(export)
	if len(msgs) != 5 {
		t.Fatalf("fixture parsed to %d messages, want 5", len(msgs))
	}
	m := initialModel(msgs, stats.DefaultOptions(), "chat.txt", user)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return next.(model)
}

func update(t *testing.T, m model, msg tea.Msg) (model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(model), cmd
}

func TestInitialModel_Participants(t *testing.T) {
	m := newTestModel(t, "")
	want := []participant{
		{Name: stats.Overall, Messages: 5},
		{Name: "Alice", Messages: 2},
		{Name: "Bob", Messages: 1},
		{Name: "Carol", Messages: 1},
	}
	if len(m.participants) != len(want) {
		t.Fatalf("got %d participants, want %d", len(m.participants), len(want))
	}
	for i, p := range want {
		if m.participants[i] != p {
			t.Errorf("participant %d = %+v, want %+v", i, m.participants[i], p)
		}
	}
	if m.selectedUser() != stats.Overall {
		t.Errorf("selected = %q, want Overall", m.selectedUser())
	}
}

func TestInitialModel_PreselectsUser(t *testing.T) {
	m := newTestModel(t, "Bob")
	if got := m.selectedUser(); got != "Bob" {
		t.Errorf("selected = %q, want Bob", got)
	}
}

func TestUpdate_DownRendersReport(t *testing.T) {
	m := newTestModel(t, "")
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	if m.selectedUser() != "Alice" {
		t.Fatalf("selected = %q, want Alice", m.selectedUser())
	}
	if cmd == nil {
		t.Fatal("expected a render command")
	}
	msg, ok := cmd().(reportRenderedMsg)
	if !ok {
		t.Fatalf("command produced %T, want reportRenderedMsg", cmd())
	}
	if msg.user != "Alice" || msg.err != nil {
		t.Fatalf("rendered %q err=%v", msg.user, msg.err)
	}

	m, _ = update(t, m, msg)
	if m.previewUser != "Alice" {
		t.Errorf("previewUser = %q, want Alice", m.previewUser)
	}
	if !strings.Contains(m.content, "Top Statistics") {
		t.Errorf("content missing summary section:\n%s", m.content)
	}
}

func TestUpdate_CursorBounds(t *testing.T) {
	m := newTestModel(t, "")
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if m.cursor != 0 || cmd != nil {
		t.Errorf("up at top: cursor=%d cmd=%v", m.cursor, cmd != nil)
	}
	for i := 0; i < 10; i++ {
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	if m.cursor != len(m.visible)-1 {
		t.Errorf("cursor = %d, want %d", m.cursor, len(m.visible)-1)
	}
}

func TestUpdate_StaleRenderDropped(t *testing.T) {
	m := newTestModel(t, "")
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = update(t, m, reportRenderedMsg{user: "Carol", content: "stale"})
	if m.content == "stale" {
		t.Error("render for an unselected participant was applied")
	}
}

func TestUpdate_FilterByTyping(t *testing.T) {
	m := newTestModel(t, "")
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("car")})
	if len(m.visible) != 1 || m.visible[0].Name != "Carol" {
		t.Fatalf("visible = %+v, want only Carol", m.visible)
	}
	if len(m.participants) != 4 {
		t.Errorf("filtering changed participants: %+v", m.participants)
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("zz")})
	if len(m.visible) != 0 {
		t.Errorf("visible = %+v, want none", m.visible)
	}
	if m.content != "" {
		t.Errorf("content = %q, want cleared", m.content)
	}
}

func TestUpdate_EscQuits(t *testing.T) {
	m := newTestModel(t, "")
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.quitting || cmd == nil {
		t.Fatal("esc did not quit")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestUpdate_EnterCopiesPlainReport(t *testing.T) {
	m := newTestModel(t, "")
	m, _ = update(t, m, reportRenderedMsg{user: stats.Overall, content: "\x1b[1mTop Statistics\x1b[0m"})
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil || !m.quitting {
		t.Fatal("enter did not quit")
	}
	if m.copyText != "Top Statistics" {
		t.Errorf("copyText = %q", m.copyText)
	}
}

func TestHitTest(t *testing.T) {
	m := newTestModel(t, "")
	if region, idx := m.hitTest(3, 3); region != regionList || idx != 1 {
		t.Errorf("hitTest(3,3) = %v,%d, want list,1", region, idx)
	}
	if region, _ := m.hitTest(m.listWidth()+5, 3); region != regionPreview {
		t.Errorf("hitTest in report = %v, want preview", region)
	}
	if region, _ := m.hitTest(3, 0); region != regionNone {
		t.Errorf("hitTest on input row = %v, want none", region)
	}
}
