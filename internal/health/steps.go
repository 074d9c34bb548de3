package health

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"time"

	"github.com/mvbuuren/donatui/internal/i18n"
	"github.com/mvbuuren/donatui/internal/prompt"
)

// Records before this date are discarded; the study window starts in 2017.
var filterStartDate = time.Date(2017, 1, 1, 0, 0, 0, 0, time.UTC)

const (
	stepCountType    = "HKQuantityTypeIdentifierStepCount"
	exportTimeLayout = "2006-01-02 15:04:05 -0700"
)

var (
	// ErrInvalidXML reports malformed or empty XML input.
	ErrInvalidXML = errors.New("health: invalid or empty XML input")
	// ErrNoHealthData reports an export without any step count records.
	ErrNoHealthData = errors.New("health: no step count records found")
)

// stepSample is one raw StepCount record from the export.
type stepSample struct {
	start time.Time // naive: export timezone offset is dropped
	steps int
}

// ExtractionResult is the donatable outcome of a successful extraction.
type ExtractionResult struct {
	ID    string
	Title i18n.Translatable
	Table prompt.ConsentTable
}

// parseSteps stream-decodes the export XML and collects StepCount samples
// on or after the filter start date. The decoder never buffers the whole
// document; Apple Health exports routinely run to gigabytes.
func parseSteps(r io.Reader) ([]stepSample, error) {
	dec := xml.NewDecoder(r)
	var samples []stepSample
	seenElement := false
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidXML, err)
		}
		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		seenElement = true
		if start.Name.Local != "Record" {
			continue
		}
		sample, ok, err := recordSample(start)
		if err != nil {
			return nil, err
		}
		if ok {
			samples = append(samples, sample)
		}
		if err := dec.Skip(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidXML, err)
		}
	}
	if !seenElement {
		return nil, ErrInvalidXML
	}
	return samples, nil
}

// recordSample reads one Record element's attributes. Returns ok=false for
// records of other quantity types or outside the study window.
func recordSample(el xml.StartElement) (stepSample, bool, error) {
	var typ, value, startDate string
	for _, attr := range el.Attr {
		switch attr.Name.Local {
		case "type":
			typ = attr.Value
		case "value":
			value = attr.Value
		case "startDate":
			startDate = attr.Value
		}
	}
	if typ != stepCountType {
		return stepSample{}, false, nil
	}
	steps, err := strconv.Atoi(value)
	if err != nil {
		return stepSample{}, false, fmt.Errorf("%w: bad step value %q", ErrInvalidXML, value)
	}
	ts, err := time.Parse(exportTimeLayout, startDate)
	if err != nil {
		return stepSample{}, false, fmt.Errorf("%w: bad start date %q", ErrInvalidXML, startDate)
	}
	// Drop the export's zone offset: the study compares naive local days.
	naive := time.Date(ts.Year(), ts.Month(), ts.Day(), ts.Hour(), ts.Minute(), ts.Second(), 0, time.UTC)
	if naive.Before(filterStartDate) {
		return stepSample{}, false, nil
	}
	return stepSample{start: naive, steps: steps}, true, nil
}

// AggregateDailySteps parses the export XML from r and sums steps per
// calendar day, ascending by date.
func AggregateDailySteps(r io.Reader) (prompt.ConsentTable, error) {
	samples, err := parseSteps(r)
	if err != nil {
		return prompt.ConsentTable{}, err
	}
	if len(samples) == 0 {
		return prompt.ConsentTable{}, ErrNoHealthData
	}

	totals := make(map[string]int)
	for _, s := range samples {
		totals[s.start.Format("2006-01-02")] += s.steps
	}
	days := make([]string, 0, len(totals))
	for day := range totals {
		days = append(days, day)
	}
	sort.Strings(days)

	rows := make([][]string, 0, len(days))
	for _, day := range days {
		rows = append(rows, []string{day, strconv.Itoa(totals[day])})
	}
	return prompt.ConsentTable{
		Name:    "ihealth_step_counts",
		Title:   i18n.NewTranslatable("Steps", "Stappen"),
		Columns: []string{"Date", "Steps"},
		Rows:    rows,
	}, nil
}

// ExtractDailySteps opens the export archive at path and aggregates its
// daily step counts into a donatable result.
func ExtractDailySteps(path string) (ExtractionResult, error) {
	entry, closeArchive, err := openExportEntry(path)
	if err != nil {
		return ExtractionResult{}, err
	}
	defer closeArchive()
	defer entry.Close()

	table, err := AggregateDailySteps(entry)
	if err != nil {
		return ExtractionResult{}, err
	}
	return ExtractionResult{
		ID:    "ihealth_step_counts",
		Title: i18n.NewTranslatable("Steps", "Stappen"),
		Table: table,
	}, nil
}
