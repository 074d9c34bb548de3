package flow

import (
	"encoding/json"
	"fmt"

	"github.com/mvbuuren/donatui/internal/i18n"
	"github.com/mvbuuren/donatui/internal/prompt"
)

// consentTableJSON is the donation wire shape of one reviewed table.
type consentTableJSON struct {
	Name    string     `json:"name"`
	Title   string     `json:"title"`
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// ConsentJSON serializes the reviewed tables into the donation payload.
// Titles are resolved for loc so the payload is self-describing.
func ConsentJSON(tables []prompt.ConsentTable, loc i18n.Locale) (string, error) {
	out := make([]consentTableJSON, 0, len(tables))
	for _, t := range tables {
		out = append(out, consentTableJSON{
			Name:    t.Name,
			Title:   i18n.Translate(t.Title, loc),
			Columns: t.Columns,
			Rows:    t.Rows,
		})
	}
	b, err := json.Marshal(out)
	if err != nil {
		return "", fmt.Errorf("marshal consent payload: %w", err)
	}
	return string(b), nil
}
