// Package prompt defines the interactive prompt bodies a donation page can
// carry and the dispatch that turns a body into a concrete widget.
package prompt

import "github.com/mvbuuren/donatui/internal/i18n"

// Body is the closed set of prompt variants. The union is sealed: only the
// three variants in this package implement it, and dispatch matches them
// exhaustively (FileInput, Confirm, ConsentForm).
type Body interface {
	promptBody()
}

// FileInput asks the participant to select a file from their device.
type FileInput struct {
	Description i18n.Translatable
	Extensions  []string // accepted file extensions, e.g. ".zip"
}

// Confirm asks a yes/no question with localized button labels.
type Confirm struct {
	Text   i18n.Translatable
	OK     i18n.Translatable
	Cancel i18n.Translatable
}

// ConsentTable is one reviewable table shown on a consent form.
type ConsentTable struct {
	Name    string // stable identifier, e.g. "ihealth_step_counts"
	Title   i18n.Translatable
	Columns []string
	Rows    [][]string
}

// ConsentForm asks the participant to review extracted data and consent to
// donating it. MetaTables carry process information (log messages) shown
// alongside the data tables.
type ConsentForm struct {
	Tables     []ConsentTable
	MetaTables []ConsentTable
}

func (FileInput) promptBody()   {}
func (Confirm) promptBody()     {}
func (ConsentForm) promptBody() {}

// Outcome is what a widget reports back through the resolver when the
// participant completes (or skips) a prompt.
type Outcome interface {
	promptOutcome()
}

// FileChosen reports the path the participant selected.
type FileChosen struct {
	Path string
}

// Confirmed reports which confirm button was chosen.
type Confirmed struct {
	OK bool
}

// ConsentGiven reports the consented data as a JSON document.
type ConsentGiven struct {
	JSON string
}

// Skipped reports that the participant declined the prompt.
type Skipped struct{}

func (FileChosen) promptOutcome()   {}
func (Confirmed) promptOutcome()    {}
func (ConsentGiven) promptOutcome() {}
func (Skipped) promptOutcome()      {}
