package tui

import (
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mvbuuren/donatui/internal/i18n"
	"github.com/mvbuuren/donatui/internal/prompt"
)

type fileInputKeys struct {
	Confirm key.Binding
	Skip    key.Binding
}

func defaultFileInputKeys() fileInputKeys {
	return fileInputKeys{
		Confirm: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		Skip:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "skip")),
	}
}

// FileInputWidget lets the participant type the path of their export file.
type FileInputWidget struct {
	description string
	extensions  []string
	input       textinput.Model
	keys        fileInputKeys
	ctx         prompt.Context
	errText     string
}

// NewFileInputWidget builds the widget from the variant's fields and the
// shared interaction context, passed separately by the dispatcher.
func NewFileInputWidget(body prompt.FileInput, ctx prompt.Context) *FileInputWidget {
	ti := textinput.New()
	ti.Placeholder = "~/Downloads/export.zip"
	ti.Prompt = "> "
	ti.Focus()
	return &FileInputWidget{
		description: i18n.Translate(body.Description, ctx.Locale),
		extensions:  body.Extensions,
		input:       ti,
		keys:        defaultFileInputKeys(),
		ctx:         ctx,
	}
}

func (w *FileInputWidget) Init() tea.Cmd {
	return textinput.Blink
}

func (w *FileInputWidget) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, w.keys.Confirm):
			path := strings.TrimSpace(w.input.Value())
			if path == "" {
				w.errText = "Enter a file path first"
				return w, nil
			}
			if !w.acceptsExtension(path) {
				w.errText = "Expected a " + strings.Join(w.extensions, " or ") + " file"
				return w, nil
			}
			if err := w.ctx.Resolve.Resolve(prompt.FileChosen{Path: path}); err != nil {
				w.errText = err.Error()
			}
			return w, nil
		case key.Matches(keyMsg, w.keys.Skip):
			if err := w.ctx.Resolve.Resolve(prompt.Skipped{}); err != nil {
				w.errText = err.Error()
			}
			return w, nil
		}
		w.errText = "" // typing clears a stale validation error
	}
	var cmd tea.Cmd
	w.input, cmd = w.input.Update(msg)
	return w, cmd
}

func (w *FileInputWidget) acceptsExtension(path string) bool {
	if len(w.extensions) == 0 {
		return true
	}
	ext := strings.ToLower(filepath.Ext(path))
	for _, allowed := range w.extensions {
		if ext == strings.ToLower(allowed) {
			return true
		}
	}
	return false
}

func (w *FileInputWidget) View() string {
	parts := []string{
		descStyle.Render(w.description),
		"",
		w.input.View(),
	}
	if w.errText != "" {
		parts = append(parts, errorStyle.Render(w.errText))
	}
	parts = append(parts, hintStyle.Render("enter select  esc skip"))
	return bodyBoxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}
