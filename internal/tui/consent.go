package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mvbuuren/donatui/internal/flow"
	"github.com/mvbuuren/donatui/internal/i18n"
	"github.com/mvbuuren/donatui/internal/prompt"
)

type consentKeys struct {
	NextTable key.Binding
	Accept    key.Binding
	Decline   key.Binding
}

func defaultConsentKeys() consentKeys {
	return consentKeys{
		NextTable: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next table")),
		Accept:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "donate")),
		Decline:   key.NewBinding(key.WithKeys("d", "esc"), key.WithHelp("d", "decline")),
	}
}

type consentTableView struct {
	title string
	model table.Model
}

// ConsentFormWidget shows the extracted data plus flow log tables and asks
// the participant to donate or decline.
type ConsentFormWidget struct {
	tables  []prompt.ConsentTable // donated on accept; meta tables are shown but reviewed only
	views   []consentTableView
	active  int
	keys    consentKeys
	ctx     prompt.Context
	errText string
}

// NewConsentFormWidget builds the widget from the variant's fields and the
// shared interaction context.
func NewConsentFormWidget(body prompt.ConsentForm, ctx prompt.Context) *ConsentFormWidget {
	w := &ConsentFormWidget{
		tables: body.Tables,
		keys:   defaultConsentKeys(),
		ctx:    ctx,
	}
	for _, t := range append(append([]prompt.ConsentTable{}, body.Tables...), body.MetaTables...) {
		w.views = append(w.views, consentTableView{
			title: i18n.Translate(t.Title, ctx.Locale),
			model: newConsentTable(t),
		})
	}
	if len(w.views) > 0 {
		w.views[0].model.Focus()
	}
	return w
}

func newConsentTable(t prompt.ConsentTable) table.Model {
	cols := make([]table.Column, 0, len(t.Columns))
	for _, c := range t.Columns {
		width := len(c)
		for _, row := range t.Rows {
			for i, cell := range row {
				if i < len(t.Columns) && t.Columns[i] == c && len(cell) > width {
					width = len(cell)
				}
			}
		}
		if width > 40 {
			width = 40
		}
		cols = append(cols, table.Column{Title: c, Width: width + 2})
	}
	rows := make([]table.Row, 0, len(t.Rows))
	for _, r := range t.Rows {
		rows = append(rows, table.Row(r))
	}
	height := len(rows)
	if height > 8 {
		height = 8
	}
	if height < 1 {
		height = 1
	}
	m := table.New(table.WithColumns(cols), table.WithRows(rows), table.WithHeight(height))
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true).Foreground(colorSubtext1)
	styles.Selected = styles.Selected.Foreground(colorText)
	m.SetStyles(styles)
	return m
}

func (w *ConsentFormWidget) Init() tea.Cmd { return nil }

func (w *ConsentFormWidget) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, isKey := msg.(tea.KeyMsg)
	if isKey {
		switch {
		case key.Matches(keyMsg, w.keys.NextTable):
			if len(w.views) > 1 {
				w.views[w.active].model.Blur()
				w.active = (w.active + 1) % len(w.views)
				w.views[w.active].model.Focus()
			}
			return w, nil
		case key.Matches(keyMsg, w.keys.Accept):
			payload, err := flow.ConsentJSON(w.tables, w.ctx.Locale)
			if err != nil {
				w.errText = err.Error()
				return w, nil
			}
			if err := w.ctx.Resolve.Resolve(prompt.ConsentGiven{JSON: payload}); err != nil {
				w.errText = err.Error()
			}
			return w, nil
		case key.Matches(keyMsg, w.keys.Decline):
			if err := w.ctx.Resolve.Resolve(prompt.Skipped{}); err != nil {
				w.errText = err.Error()
			}
			return w, nil
		}
	}
	if len(w.views) == 0 {
		return w, nil
	}
	var cmd tea.Cmd
	w.views[w.active].model, cmd = w.views[w.active].model.Update(msg)
	return w, cmd
}

func (w *ConsentFormWidget) View() string {
	parts := make([]string, 0, 2*len(w.views)+2)
	for i, v := range w.views {
		title := v.title
		if i == w.active {
			title = "▸ " + title
		} else {
			title = "  " + title
		}
		parts = append(parts, tableTitleStyle.Render(title), v.model.View(), "")
	}
	if w.errText != "" {
		parts = append(parts, errorStyle.Render(w.errText))
	}
	parts = append(parts, hintStyle.Render("tab next table  a donate  d decline"))
	return bodyBoxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}
