package flow

import (
	"errors"
	"fmt"

	"github.com/mvbuuren/donatui/internal/health"
	"github.com/mvbuuren/donatui/internal/i18n"
	"github.com/mvbuuren/donatui/internal/prompt"
)

// ErrUnexpectedOutcome is returned when a prompt resolves with an outcome
// the current flow step cannot accept. Like an unrecognized prompt body,
// this is a contract violation, not a user condition.
var ErrUnexpectedOutcome = errors.New("flow: unexpected prompt outcome for current step")

// Extractor turns a selected export file into a donatable result.
type Extractor func(path string) (health.ExtractionResult, error)

// Lister builds a review table from an archive's raw contents. It is the
// fallback when extraction fails but the participant still wants to donate.
type Lister func(path string) (prompt.ConsentTable, error)

type step int

const (
	stepFile step = iota
	stepRetry
	stepConsent
	stepDone
)

const (
	progressFile    = 33
	progressConsent = 67
)

// LogEntry is one tracked flow event; the collected entries become the
// consent form's meta table.
type LogEntry struct {
	Kind    string
	Message string
}

// Engine is the donation flow state machine. One engine drives one
// participant session; it is not safe for concurrent use.
type Engine struct {
	sessionID string
	platform  string
	extract   Extractor
	list      Lister
	step      step
	lastPath  string
	table     *prompt.ConsentTable
	log       []LogEntry
}

// NewEngine builds an engine for one session. platform labels the data
// source in page headers and donation keys (e.g. "Apple Health").
func NewEngine(sessionID, platform string, extract Extractor, list Lister) *Engine {
	return &Engine{sessionID: sessionID, platform: platform, extract: extract, list: list}
}

// Start begins the flow: a tracking donation plus the file prompt.
func (e *Engine) Start() []Command {
	return []Command{
		Donate{
			Key:  e.sessionID + "-tracking",
			JSON: `[{"message": "user entered flow"}]`,
		},
		e.renderFilePrompt(),
	}
}

// Next advances the flow with the outcome of the previously rendered page.
// It returns the commands to execute, ending in either another RenderPage
// or an Exit.
func (e *Engine) Next(outcome prompt.Outcome) ([]Command, error) {
	switch e.step {
	case stepFile:
		return e.afterFilePrompt(outcome)
	case stepRetry:
		return e.afterRetryPrompt(outcome)
	case stepConsent:
		return e.afterConsentPrompt(outcome)
	default:
		return nil, fmt.Errorf("%w: flow already finished", ErrUnexpectedOutcome)
	}
}

// Log returns the tracked flow events so far.
func (e *Engine) Log() []LogEntry {
	return e.log
}

func (e *Engine) afterFilePrompt(outcome prompt.Outcome) ([]Command, error) {
	switch o := outcome.(type) {
	case prompt.FileChosen:
		e.track("debug", "extracting file")
		e.lastPath = o.Path
		res, err := e.extract(o.Path)
		if err != nil {
			e.track("debug", "prompt confirmation to retry file selection")
			e.step = stepRetry
			return []Command{e.renderRetryPrompt()}, nil
		}
		e.track("debug", "extraction successful, go to consent form")
		e.table = &res.Table
		e.step = stepConsent
		return []Command{e.renderConsentPrompt()}, nil
	case prompt.Skipped:
		e.track("debug", "file selection skipped")
		return e.finish()
	default:
		return nil, fmt.Errorf("%w: %T at file step", ErrUnexpectedOutcome, outcome)
	}
}

func (e *Engine) afterRetryPrompt(outcome prompt.Outcome) ([]Command, error) {
	o, ok := outcome.(prompt.Confirmed)
	if !ok {
		return nil, fmt.Errorf("%w: %T at retry step", ErrUnexpectedOutcome, outcome)
	}
	if o.OK {
		e.track("debug", "retry prompt file")
		e.step = stepFile
		return []Command{e.renderFilePrompt()}, nil
	}
	// The file could not be processed; the participant can still review the
	// archive's raw contents and donate those.
	e.track("debug", "extraction impossible, review archive contents")
	table, err := e.list(e.lastPath)
	if err != nil {
		e.track("debug", "listing archive contents failed")
		return e.finish()
	}
	e.table = &table
	e.step = stepConsent
	return []Command{e.renderConsentPrompt()}, nil
}

func (e *Engine) afterConsentPrompt(outcome prompt.Outcome) ([]Command, error) {
	switch o := outcome.(type) {
	case prompt.ConsentGiven:
		e.track("debug", "donate consent data")
		donation := Donate{Key: e.sessionID + "-" + e.platform, JSON: o.JSON}
		cmds, err := e.finish()
		if err != nil {
			return nil, err
		}
		return append([]Command{donation}, cmds...), nil
	case prompt.Skipped:
		e.track("debug", "consent declined")
		return e.finish()
	default:
		return nil, fmt.Errorf("%w: %T at consent step", ErrUnexpectedOutcome, outcome)
	}
}

func (e *Engine) finish() ([]Command, error) {
	e.step = stepDone
	return []Command{Exit{Code: 0, Info: "Success"}}, nil
}

func (e *Engine) track(kind, message string) {
	e.log = append(e.log, LogEntry{Kind: kind, Message: message})
}

func (e *Engine) header() i18n.Header {
	return i18n.Header{Title: i18n.Translatable{
		i18n.LocaleEN: e.platform,
		i18n.LocaleNL: e.platform,
	}}
}

func (e *Engine) renderFilePrompt() RenderPage {
	return RenderPage{
		Header: e.header(),
		Body: prompt.FileInput{
			Description: i18n.NewTranslatable(
				"Please follow the download instructions and choose the file that you stored on your device. Click “Skip” at the right bottom, if you do not have an Apple Health file.",
				"Volg de download instructies en kies het bestand dat u opgeslagen heeft op uw apparaat. Als u geen Apple Health bestand heeft klik dan op “Overslaan” rechts onder.",
			),
			Extensions: []string{".zip"},
		},
		Progress: progressFile,
	}
}

func (e *Engine) renderRetryPrompt() RenderPage {
	return RenderPage{
		Header: e.header(),
		Body: prompt.Confirm{
			Text: i18n.NewTranslatable(
				"Unfortunately, we cannot process your file. Continue, if you are sure that you selected the right file. Try again to select a different file.",
				"Helaas, kunnen we uw bestand niet verwerken. Weet u zeker dat u het juiste bestand heeft gekozen? Ga dan verder. Probeer opnieuw als u een ander bestand wilt kiezen.",
			),
			OK:     i18n.NewTranslatable("Try again", "Probeer opnieuw"),
			Cancel: i18n.NewTranslatable("Continue", "Verder"),
		},
		Progress: progressFile,
	}
}

func (e *Engine) renderConsentPrompt() RenderPage {
	return RenderPage{
		Header: e.header(),
		Body: prompt.ConsentForm{
			Tables:     []prompt.ConsentTable{*e.table},
			MetaTables: []prompt.ConsentTable{e.metaTable()},
		},
		Progress: progressConsent,
	}
}

func (e *Engine) metaTable() prompt.ConsentTable {
	rows := make([][]string, 0, len(e.log))
	for _, entry := range e.log {
		rows = append(rows, []string{entry.Kind, entry.Message})
	}
	return prompt.ConsentTable{
		Name:    "log_messages",
		Title:   i18n.NewTranslatable("Log messages", "Log berichten"),
		Columns: []string{"type", "message"},
		Rows:    rows,
	}
}
