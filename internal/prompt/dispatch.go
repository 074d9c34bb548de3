package prompt

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mvbuuren/donatui/internal/i18n"
)

// ErrUnrecognizedPrompt is returned when a Body value is not one of the
// three known variants. This is a contract violation by whoever produced
// the body; it is never recovered here and no widget is rendered.
var ErrUnrecognizedPrompt = errors.New("unrecognized prompt type")

// Context is the shared interaction context threaded into every widget:
// the page locale and the one-shot resolver the widget must fire.
type Context struct {
	Locale  i18n.Locale
	Resolve *Resolver
}

// Renderer constructs the concrete widget for each prompt variant. Each
// constructor receives the variant's own fields and the shared context as
// separate, named parameters; no field merging happens anywhere.
type Renderer interface {
	FileInput(body FileInput, ctx Context) tea.Model
	Confirm(body Confirm, ctx Context) tea.Model
	ConsentForm(body ConsentForm, ctx Context) tea.Model
}

// Dispatch selects the widget for body. Variants are matched in a fixed
// order (FileInput, Confirm, ConsentForm); an unknown dynamic type fails
// with ErrUnrecognizedPrompt.
func Dispatch(body Body, ctx Context, r Renderer) (tea.Model, error) {
	switch b := body.(type) {
	case FileInput:
		return r.FileInput(b, ctx), nil
	case Confirm:
		return r.Confirm(b, ctx), nil
	case ConsentForm:
		return r.ConsentForm(b, ctx), nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnrecognizedPrompt, body)
	}
}
