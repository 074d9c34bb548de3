package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mvbuuren/donatui/internal/i18n"
	"github.com/mvbuuren/donatui/internal/prompt"
)

type confirmKeys struct {
	Toggle  key.Binding
	Confirm key.Binding
	Cancel  key.Binding
}

func defaultConfirmKeys() confirmKeys {
	return confirmKeys{
		Toggle:  key.NewBinding(key.WithKeys("left", "right", "tab", "h", "l"), key.WithHelp("←/→", "switch")),
		Confirm: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "choose")),
		Cancel:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

// ConfirmWidget shows a yes/no question with two localized buttons.
type ConfirmWidget struct {
	text     string
	okLabel  string
	noLabel  string
	keys     confirmKeys
	ctx      prompt.Context
	okActive bool
	errText  string
}

// NewConfirmWidget builds the widget from the variant's fields and the
// shared interaction context.
func NewConfirmWidget(body prompt.Confirm, ctx prompt.Context) *ConfirmWidget {
	return &ConfirmWidget{
		text:     i18n.Translate(body.Text, ctx.Locale),
		okLabel:  i18n.Translate(body.OK, ctx.Locale),
		noLabel:  i18n.Translate(body.Cancel, ctx.Locale),
		keys:     defaultConfirmKeys(),
		ctx:      ctx,
		okActive: true,
	}
}

func (w *ConfirmWidget) Init() tea.Cmd { return nil }

func (w *ConfirmWidget) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return w, nil
	}
	switch {
	case key.Matches(keyMsg, w.keys.Toggle):
		w.okActive = !w.okActive
	case key.Matches(keyMsg, w.keys.Confirm):
		if err := w.ctx.Resolve.Resolve(prompt.Confirmed{OK: w.okActive}); err != nil {
			w.errText = err.Error()
		}
	case key.Matches(keyMsg, w.keys.Cancel):
		if err := w.ctx.Resolve.Resolve(prompt.Confirmed{OK: false}); err != nil {
			w.errText = err.Error()
		}
	}
	return w, nil
}

func (w *ConfirmWidget) View() string {
	ok := buttonStyle.Render(w.okLabel)
	no := buttonFocusStyle.Render(w.noLabel)
	if w.okActive {
		ok = buttonFocusStyle.Render(w.okLabel)
		no = buttonStyle.Render(w.noLabel)
	}
	parts := []string{
		descStyle.Render(w.text),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, ok, "  ", no),
	}
	if w.errText != "" {
		parts = append(parts, errorStyle.Render(w.errText))
	}
	parts = append(parts, hintStyle.Render("←/→ switch  enter choose"))
	return bodyBoxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}
