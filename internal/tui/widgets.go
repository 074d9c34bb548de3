package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mvbuuren/donatui/internal/prompt"
)

// WidgetSet is the concrete widget factory handed to the prompt dispatcher.
type WidgetSet struct{}

func (WidgetSet) FileInput(body prompt.FileInput, ctx prompt.Context) tea.Model {
	return NewFileInputWidget(body, ctx)
}

func (WidgetSet) Confirm(body prompt.Confirm, ctx prompt.Context) tea.Model {
	return NewConfirmWidget(body, ctx)
}

func (WidgetSet) ConsentForm(body prompt.ConsentForm, ctx prompt.Context) tea.Model {
	return NewConsentFormWidget(body, ctx)
}
