package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/bluray-menu-control/internal/menu"
)

func (m *Model) handleDiscForm(msg tea.Msg) (bool, tea.Cmd) {
	if m.discForm == nil {
		return false, nil
	}
	cmd, done, cancel := m.discForm.Update(msg)
	if cancel {
		m.discForm = nil
		m.mode = ModeMenu
		return true, cmd
	}
	if done {
		m.discForm = nil
		m.mode = ModeMenu
		m.loading = true
		m.pendingID = "open"
		m.errMsg = ""
		m.forceClearInfo()
		return true, cmd
	}
	return true, cmd
}

func (m *Model) handleDiscPromptMsg(msg tea.Msg) tea.Cmd {
	prompt, ok := msg.(menu.DiscPrompt)
	if !ok {
		return nil
	}
	m.loading = false
	m.pendingID = ""
	m.pendingLabel = ""
	m.discForm = menu.NewDiscForm(prompt)
	m.mode = ModeDiscForm
	return nil
}

func (m *Model) viewDiscFormWithHeader(header string) string {
	lines := []string{}
	if header != "" {
		lines = append(lines, header)
	}
	lines = append(lines, m.discForm.Title(), "", m.discForm.InputView())
	if err := m.discForm.Error(); err != "" {
		lines = append(lines, "", styles.Error.Render(err))
	}
	lines = append(lines, "", m.discForm.Help())
	return strings.Join(lines, "\n")
}
