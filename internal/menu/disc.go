package menu

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/bluray-menu-control/internal/bluray"
	"github.com/atomicstack/bluray-menu-control/internal/logging/events"
)

// DiscPromptAction opens the disc-path entry form.
func DiscPromptAction(ctx Context, item Item) tea.Cmd {
	return func() tea.Msg {
		events.Disc.PromptOpen()
		return DiscPrompt{Context: ctx, Initial: ctx.DiscRoot}
	}
}

// DiscOpenCommand resolves the given path to a BDMV root and asks the app to
// load it.
func DiscOpenCommand(path string) tea.Cmd {
	return func() tea.Msg {
		root, err := bluray.ResolveDiscRoot(path)
		if err != nil {
			events.Disc.LoadFailed(path, err)
			return ActionResult{Err: err}
		}
		events.Disc.Load(root)
		return DiscOpenedMsg{Root: root}
	}
}

// DiscForm is the inline text prompt for opening a disc by path.
type DiscForm struct {
	input textinput.Model
	ctx   Context
	err   string
}

func NewDiscForm(prompt DiscPrompt) *DiscForm {
	ti := textinput.New()
	ti.Placeholder = "/path/to/disc"
	ti.CharLimit = 512
	ti.Focus()
	if prompt.Initial != "" {
		ti.SetValue(prompt.Initial)
	}
	return &DiscForm{input: ti, ctx: prompt.Context}
}

func (f *DiscForm) Context() Context  { return f.ctx }
func (f *DiscForm) Value() string     { return strings.TrimSpace(f.input.Value()) }
func (f *DiscForm) InputView() string { return f.input.View() }
func (f *DiscForm) Error() string     { return f.err }
func (f *DiscForm) Title() string     { return "Open Disc" }
func (f *DiscForm) Help() string      { return "Press Enter to open. Esc to cancel." }

// Update feeds a message to the form. It returns a command to run, whether
// the form submitted, and whether it was cancelled.
func (f *DiscForm) Update(msg tea.Msg) (tea.Cmd, bool, bool) {
	switch m := msg.(type) {
	case tea.KeyMsg:
		switch m.String() {
		case "ctrl+u":
			if f.input.Value() != "" {
				f.input.SetValue("")
				f.input.CursorStart()
				f.err = ""
			}
			return nil, false, false
		}
		switch m.Type {
		case tea.KeyEsc:
			events.Disc.PromptCancel("escape")
			return nil, false, true
		case tea.KeyEnter:
			value := f.Value()
			if value == "" {
				f.err = "Disc path required"
				return nil, false, false
			}
			if _, err := bluray.ResolveDiscRoot(value); err != nil {
				f.err = fmt.Sprintf("No disc at %s", value)
				return nil, false, false
			}
			f.err = ""
			events.Disc.PromptSubmit(value)
			return DiscOpenCommand(value), true, false
		}
	}

	updated, cmd := f.input.Update(msg)
	f.input = updated
	return cmd, false, false
}
