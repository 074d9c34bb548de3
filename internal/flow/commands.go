// Package flow drives the donation flow: which prompt to show next, what to
// donate, and when to finish.
package flow

import (
	"github.com/mvbuuren/donatui/internal/i18n"
	"github.com/mvbuuren/donatui/internal/prompt"
)

// Command is one instruction from the engine to its driver. The set is
// closed: RenderPage, Donate, Exit.
type Command interface {
	flowCommand()
}

// RenderPage asks the driver to show a donation page and wait for its
// prompt to resolve.
type RenderPage struct {
	Header   i18n.Header
	Body     prompt.Body
	Progress int // 0..100
}

// Donate asks the driver to persist a donation payload under Key.
type Donate struct {
	Key  string
	JSON string
}

// Exit ends the flow.
type Exit struct {
	Code int
	Info string
}

func (RenderPage) flowCommand() {}
func (Donate) flowCommand()     {}
func (Exit) flowCommand()       {}
