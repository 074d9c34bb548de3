// Package tui renders the donation flow in the terminal.
package tui

import (
	"context"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/mvbuuren/donatui/internal/database/repository"
	"github.com/mvbuuren/donatui/internal/flow"
	"github.com/mvbuuren/donatui/internal/i18n"
	"github.com/mvbuuren/donatui/internal/page"
	"github.com/mvbuuren/donatui/internal/prompt"
)

// DonationStore persists donations and flow events.
type DonationStore interface {
	Insert(ctx context.Context, sessionID, key, payload string) (string, error)
	InsertEvents(ctx context.Context, events []repository.FlowEvent) error
}

// stepMsg carries the result of advancing the flow engine.
type stepMsg struct {
	page *flow.RenderPage
	exit *flow.Exit
	err  error
}

// App drives the flow engine and renders one donation page at a time.
type App struct {
	ctx       context.Context
	engine    *flow.Engine
	store     DonationStore
	widgets   prompt.Renderer
	sessionID string
	locale    i18n.Locale

	outcomes  chan prompt.Outcome
	current   page.Page
	hasPage   bool
	spin      spinner.Model
	status    string
	statusErr bool
	width     int
	height    int
	quitting  bool
	exitInfo  string
	fatal     error
}

// New builds the app for one participant session.
func New(ctx context.Context, engine *flow.Engine, store DonationStore, sessionID string, locale i18n.Locale) *App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = spinnerStyle
	return &App{
		ctx:       ctx,
		engine:    engine,
		store:     store,
		widgets:   WidgetSet{},
		sessionID: sessionID,
		locale:    locale,
		outcomes:  make(chan prompt.Outcome, 1),
		spin:      sp,
		status:    "Ready",
		width:     100,
		height:    32,
	}
}

// Err reports the fatal error that ended the program, if any. Checked by
// main after the program exits: contract violations surface here instead of
// being swallowed by the UI.
func (a *App) Err() error { return a.fatal }

func (a *App) Init() tea.Cmd {
	return func() tea.Msg { return a.execute(a.engine.Start()) }
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case spinner.TickMsg:
		if !a.hasPage || !a.current.Busy {
			return a, nil
		}
		var cmd tea.Cmd
		a.spin, cmd = a.spin.Update(msg)
		return a, cmd

	case stepMsg:
		return a.applyStep(msg)

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			a.quitting = true
			return a, tea.Quit
		}
		if !a.hasPage || a.current.Busy {
			return a, nil
		}
	}

	if !a.hasPage {
		return a, nil
	}
	var cmd tea.Cmd
	a.current.Body, cmd = a.current.Body.Update(msg)
	if outcome, ok := a.takeOutcome(); ok {
		a.current.Busy = true
		a.status = "Working..."
		return a, tea.Batch(cmd, a.spin.Tick, a.advanceCmd(outcome))
	}
	return a, cmd
}

// takeOutcome drains the resolver channel without blocking.
func (a *App) takeOutcome() (prompt.Outcome, bool) {
	select {
	case o := <-a.outcomes:
		return o, true
	default:
		return nil, false
	}
}

// mintResolver creates the one-shot resolver for the next page. The
// callback runs inside the widget's Update, so the buffered channel is
// drained in the same Update pass.
func (a *App) mintResolver() *prompt.Resolver {
	return prompt.NewResolver(func(o prompt.Outcome) {
		select {
		case a.outcomes <- o:
		default:
		}
	})
}

func (a *App) advanceCmd(outcome prompt.Outcome) tea.Cmd {
	return func() tea.Msg {
		cmds, err := a.engine.Next(outcome)
		if err != nil {
			return stepMsg{err: err}
		}
		return a.execute(cmds)
	}
}

// execute runs the engine's commands: donations are persisted, the
// trailing RenderPage or Exit is handed back to Update.
func (a *App) execute(cmds []flow.Command) stepMsg {
	var res stepMsg
	for _, c := range cmds {
		switch c := c.(type) {
		case flow.Donate:
			if _, err := a.store.Insert(a.ctx, a.sessionID, c.Key, c.JSON); err != nil {
				res.err = err
				return res
			}
		case flow.RenderPage:
			rp := c
			res.page = &rp
		case flow.Exit:
			ex := c
			res.exit = &ex
			a.persistLog()
		}
	}
	return res
}

// persistLog stores the engine's tracked events in one transaction; failures
// here do not block the exit.
func (a *App) persistLog() {
	entries := a.engine.Log()
	events := make([]repository.FlowEvent, 0, len(entries))
	for _, entry := range entries {
		events = append(events, repository.FlowEvent{
			SessionID: a.sessionID,
			Kind:      entry.Kind,
			Message:   entry.Message,
		})
	}
	_ = a.store.InsertEvents(a.ctx, events)
}

func (a *App) applyStep(msg stepMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		a.fatal = msg.err
		a.quitting = true
		return a, tea.Quit
	}
	if msg.exit != nil {
		a.exitInfo = msg.exit.Info
		a.quitting = true
		return a, tea.Quit
	}
	if msg.page == nil {
		return a, nil
	}
	composed, err := page.Compose(page.Props{
		Header:   msg.page.Header,
		Locale:   a.locale,
		Body:     msg.page.Body,
		Resolve:  a.mintResolver(),
		Spinner:  page.SpinnerProps{Label: i18n.NewTranslatable("One moment...", "Een moment geduld...")},
		Busy:     false,
		Progress: msg.page.Progress,
	}, a.widgets)
	if err != nil {
		// Unrecognized prompt body: a contract violation, surfaced fatally.
		a.fatal = err
		a.quitting = true
		return a, tea.Quit
	}
	a.current = composed
	a.hasPage = true
	a.status = "Ready"
	a.statusErr = false
	return a, a.current.Body.Init()
}

func (a *App) View() string {
	if a.quitting {
		if a.fatal != nil {
			return errorStyle.Render("fatal: "+a.fatal.Error()) + "\n"
		}
		if a.exitInfo != "" {
			return descStyle.Render("Thank you. "+a.exitInfo) + "\n"
		}
		return ""
	}
	if !a.hasPage {
		return statusBarStyle.Render("Loading...")
	}

	header := renderBar(headerBarStyle, a.width, titleStyle.Render(a.current.Title))
	body := a.current.Body.View()
	status := renderBar(statusBarStyle, a.width, a.status)
	if a.statusErr {
		status = renderBar(statusErrBarStyle, a.width, a.status)
	}
	footer := renderBar(footerStyle, a.width, renderProgress(a.current.Progress, a.width-12))

	base := lipgloss.JoinVertical(lipgloss.Left, header, body, status, footer)
	if !a.current.Busy {
		return base
	}
	card := lipgloss.JoinHorizontal(lipgloss.Top,
		a.spin.View(), " ", spinnerTextStyle.Render(a.current.SpinnerLabel))
	return renderSpinnerOverlay(base, card, a.width, lipgloss.Height(base))
}

// renderProgress draws the flow progress as a fixed-width bar.
func renderProgress(percent, width int) string {
	if width < 10 {
		width = 10
	}
	filled := width * percent / 100
	if filled > width {
		filled = width
	}
	bar := progressDoneStyle.Render(strings.Repeat("█", filled)) +
		progressRestStyle.Render(strings.Repeat("░", width-filled))
	return bar + " " + hintStyle.Render(strconv.Itoa(percent) + "%")
}

func renderBar(style lipgloss.Style, width int, text string) string {
	line := ansi.Truncate(text, width, "")
	return style.Width(width).MaxWidth(width).Render(line)
}
