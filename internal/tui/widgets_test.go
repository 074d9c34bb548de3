package tui

import (
	"encoding/json"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/mvbuuren/donatui/internal/i18n"
	"github.com/mvbuuren/donatui/internal/prompt"
)

func captureResolver() (*prompt.Resolver, *[]prompt.Outcome) {
	var got []prompt.Outcome
	r := prompt.NewResolver(func(o prompt.Outcome) { got = append(got, o) })
	return r, &got
}

func typeString(m tea.Model, s string) tea.Model {
	for _, r := range s {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func press(m tea.Model, t tea.KeyType) tea.Model {
	m, _ = m.Update(tea.KeyMsg{Type: t})
	return m
}

func TestFileInputResolvesValidPath(t *testing.T) {
	r, got := captureResolver()
	ctx := prompt.Context{Locale: i18n.LocaleEN, Resolve: r}
	var m tea.Model = NewFileInputWidget(prompt.FileInput{
		Description: i18n.NewTranslatable("Choose your export", "Kies uw export"),
		Extensions:  []string{".zip"},
	}, ctx)

	m = typeString(m, "/tmp/export.zip")
	m = press(m, tea.KeyEnter)
	if len(*got) != 1 {
		t.Fatalf("expected one outcome, got %d", len(*got))
	}
	chosen, ok := (*got)[0].(prompt.FileChosen)
	if !ok || chosen.Path != "/tmp/export.zip" {
		t.Fatalf("unexpected outcome: %+v", (*got)[0])
	}
	_ = m
}

func TestFileInputRejectsWrongExtension(t *testing.T) {
	r, got := captureResolver()
	ctx := prompt.Context{Locale: i18n.LocaleEN, Resolve: r}
	var m tea.Model = NewFileInputWidget(prompt.FileInput{Extensions: []string{".zip"}}, ctx)

	m = typeString(m, "/tmp/export.csv")
	m = press(m, tea.KeyEnter)
	if len(*got) != 0 {
		t.Fatalf("wrong extension must not resolve: %+v", *got)
	}
	if !strings.Contains(m.View(), ".zip") {
		t.Fatalf("validation error should mention the accepted extension")
	}
}

func TestFileInputEscSkips(t *testing.T) {
	r, got := captureResolver()
	ctx := prompt.Context{Locale: i18n.LocaleEN, Resolve: r}
	var m tea.Model = NewFileInputWidget(prompt.FileInput{Extensions: []string{".zip"}}, ctx)

	press(m, tea.KeyEsc)
	if len(*got) != 1 {
		t.Fatalf("expected skip outcome, got %d", len(*got))
	}
	if _, ok := (*got)[0].(prompt.Skipped); !ok {
		t.Fatalf("unexpected outcome: %+v", (*got)[0])
	}
}

func TestConfirmTogglesAndResolves(t *testing.T) {
	r, got := captureResolver()
	ctx := prompt.Context{Locale: i18n.LocaleNL, Resolve: r}
	var m tea.Model = NewConfirmWidget(prompt.Confirm{
		Text:   i18n.NewTranslatable("Sure?", "Zeker?"),
		OK:     i18n.NewTranslatable("Try again", "Probeer opnieuw"),
		Cancel: i18n.NewTranslatable("Continue", "Verder"),
	}, ctx)

	if !strings.Contains(m.View(), "Probeer opnieuw") {
		t.Fatalf("confirm labels not localized: %s", m.View())
	}

	// default selection is OK; toggle to cancel, then back.
	m = press(m, tea.KeyTab)
	m = press(m, tea.KeyTab)
	m = press(m, tea.KeyEnter)
	if len(*got) != 1 {
		t.Fatalf("expected one outcome, got %d", len(*got))
	}
	c, ok := (*got)[0].(prompt.Confirmed)
	if !ok || !c.OK {
		t.Fatalf("expected OK confirmation, got %+v", (*got)[0])
	}
}

func TestConfirmSecondResolveIsRejected(t *testing.T) {
	r, got := captureResolver()
	ctx := prompt.Context{Locale: i18n.LocaleEN, Resolve: r}
	var m tea.Model = NewConfirmWidget(prompt.Confirm{
		Text: i18n.NewTranslatable("Sure?", "Zeker?"),
		OK:   i18n.NewTranslatable("Yes", "Ja"),
	}, ctx)

	m = press(m, tea.KeyEnter)
	m = press(m, tea.KeyEnter)
	if len(*got) != 1 {
		t.Fatalf("resolver must fire exactly once, fired %d times", len(*got))
	}
	if !strings.Contains(m.View(), "resolve invoked more than once") {
		t.Fatalf("reuse error not surfaced: %s", m.View())
	}
}

func TestConsentAcceptDonatesTables(t *testing.T) {
	r, got := captureResolver()
	ctx := prompt.Context{Locale: i18n.LocaleNL, Resolve: r}
	body := prompt.ConsentForm{
		Tables: []prompt.ConsentTable{{
			Name:    "ihealth_step_counts",
			Title:   i18n.NewTranslatable("Steps", "Stappen"),
			Columns: []string{"Date", "Steps"},
			Rows:    [][]string{{"2023-05-01", "200"}},
		}},
		MetaTables: []prompt.ConsentTable{{
			Name:    "log_messages",
			Title:   i18n.NewTranslatable("Log messages", "Log berichten"),
			Columns: []string{"type", "message"},
			Rows:    [][]string{{"debug", "extracting file"}},
		}},
	}
	var m tea.Model = NewConsentFormWidget(body, ctx)

	view := m.View()
	if !strings.Contains(view, "Stappen") || !strings.Contains(view, "Log berichten") {
		t.Fatalf("consent view missing localized table titles: %s", view)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})
	if len(*got) != 1 {
		t.Fatalf("expected consent outcome, got %d", len(*got))
	}
	given, ok := (*got)[0].(prompt.ConsentGiven)
	if !ok {
		t.Fatalf("unexpected outcome: %+v", (*got)[0])
	}
	var decoded []map[string]any
	if err := json.Unmarshal([]byte(given.JSON), &decoded); err != nil {
		t.Fatalf("consent payload not JSON: %v", err)
	}
	if len(decoded) != 1 || decoded[0]["name"] != "ihealth_step_counts" {
		t.Fatalf("meta tables must not be donated: %v", decoded)
	}
}

func TestConsentDeclineSkips(t *testing.T) {
	r, got := captureResolver()
	ctx := prompt.Context{Locale: i18n.LocaleEN, Resolve: r}
	var m tea.Model = NewConsentFormWidget(prompt.ConsentForm{}, ctx)

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}})
	if len(*got) != 1 {
		t.Fatalf("expected decline outcome, got %d", len(*got))
	}
	if _, ok := (*got)[0].(prompt.Skipped); !ok {
		t.Fatalf("unexpected outcome: %+v", (*got)[0])
	}
}

func TestSpinnerOverlayKeepsCanvasSize(t *testing.T) {
	base := strings.TrimRight(strings.Repeat(strings.Repeat(".", 40)+"\n", 10), "\n")
	out := renderSpinnerOverlay(base, "busy", 40, 10)
	lines := strings.Split(out, "\n")
	if len(lines) != 10 {
		t.Fatalf("overlay changed canvas height: %d", len(lines))
	}
	if !strings.Contains(out, "busy") {
		t.Fatalf("overlay card not composited")
	}
	if !strings.Contains(out, ".") {
		t.Fatalf("base canvas should remain visible around the card")
	}
}

func TestSpinnerOverlayPreservesBaseRightOfCard(t *testing.T) {
	// The card's rounded border is multibyte; the base to its right must
	// survive untouched.
	row := strings.Repeat("0123456789", 4)
	base := strings.TrimRight(strings.Repeat(row+"\n", 10), "\n")
	out := renderSpinnerOverlay(base, "busy", 40, 10)
	for i, line := range strings.Split(out, "\n") {
		if w := ansi.StringWidth(line); w != 40 {
			t.Fatalf("line %d width %d, want 40", i, w)
		}
		plain := strings.TrimRight(ansi.Strip(line), " ")
		if !strings.HasSuffix(plain, "0123456789") {
			t.Fatalf("line %d lost base content right of the card: %q", i, plain)
		}
	}
}
