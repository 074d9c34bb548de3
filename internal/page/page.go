// Package page composes one donation page out of a localized title, an
// interactive prompt body and a busy spinner overlay.
package page

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mvbuuren/donatui/internal/i18n"
	"github.com/mvbuuren/donatui/internal/prompt"
)

// SpinnerProps configures the busy overlay.
type SpinnerProps struct {
	Label i18n.Translatable
}

// Props is the single input to the composer, owned by the flow driver.
// Busy is an explicit input: the overlay shows whenever the driver reports
// pending work, the composer keeps no visibility state of its own.
type Props struct {
	Header   i18n.Header
	Locale   i18n.Locale
	Body     prompt.Body
	Resolve  *prompt.Resolver
	Spinner  SpinnerProps
	Busy     bool
	Progress int // 0..100, shown in the footer
}

// Page is the composed output: title, then body, then spinner overlay.
type Page struct {
	Title        string
	Body         tea.Model
	SpinnerLabel string
	Busy         bool
	Progress     int
}

// Compose resolves the title, dispatches the body to its widget and returns
// the ordered page. Errors from dispatch propagate unhandled.
func Compose(props Props, widgets prompt.Renderer) (Page, error) {
	header := i18n.PrepareHeader(props.Header, props.Locale)
	body, err := prompt.Dispatch(props.Body, prompt.Context{
		Locale:  props.Locale,
		Resolve: props.Resolve,
	}, widgets)
	if err != nil {
		return Page{}, err
	}
	return Page{
		Title:        header.Title,
		Body:         body,
		SpinnerLabel: i18n.Translate(props.Spinner.Label, props.Locale),
		Busy:         props.Busy,
		Progress:     props.Progress,
	}, nil
}
