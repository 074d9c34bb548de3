// Package health extracts daily step counts from an Apple Health export
// archive (export.zip).
package health

import (
	"archive/zip"
	"fmt"
	"io"
	"strconv"

	"github.com/agnivade/levenshtein"

	"github.com/mvbuuren/donatui/internal/i18n"
	"github.com/mvbuuren/donatui/internal/prompt"
)

// ExportEntryName is where Apple Health places the data inside export.zip.
const ExportEntryName = "apple_health_export/export.xml"

// FileNotInArchiveError reports that the expected entry is missing from the
// archive. Hint carries the closest entry name, if any entry is reasonably
// close, to help the participant spot a repackaged or renamed export.
type FileNotInArchiveError struct {
	Entry string
	Hint  string
}

func (e *FileNotInArchiveError) Error() string {
	if e.Hint != "" {
		return fmt.Sprintf("%q not found in archive (closest entry: %q)", e.Entry, e.Hint)
	}
	return fmt.Sprintf("%q not found in archive", e.Entry)
}

// openExportEntry opens ExportEntryName inside the zip at path. The caller
// closes both the entry reader and the archive via the returned closer.
func openExportEntry(path string) (io.ReadCloser, func() error, error) {
	archive, err := zip.OpenReader(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open archive: %w", err)
	}
	for _, f := range archive.File {
		if f.Name == ExportEntryName {
			rc, err := f.Open()
			if err != nil {
				archive.Close()
				return nil, nil, fmt.Errorf("open %s: %w", ExportEntryName, err)
			}
			return rc, archive.Close, nil
		}
	}
	hint := closestEntryName(archive, ExportEntryName)
	archive.Close()
	return nil, nil, &FileNotInArchiveError{Entry: ExportEntryName, Hint: hint}
}

// closestEntryName returns the archive entry nearest to want by edit
// distance, or "" when nothing is close enough to be a useful hint.
func closestEntryName(archive *zip.ReadCloser, want string) string {
	best := ""
	bestDist := len(want) // anything further than a full rewrite is noise
	for _, f := range archive.File {
		d := levenshtein.ComputeDistance(f.Name, want)
		if d < bestDist {
			best = f.Name
			bestDist = d
		}
	}
	return best
}

// ZipContents lists the archive's entries as a consent table (name,
// compressed size, size). Used as the fallback review table when step
// extraction is impossible but the participant still wants to donate.
func ZipContents(path string) (prompt.ConsentTable, error) {
	archive, err := zip.OpenReader(path)
	if err != nil {
		return prompt.ConsentTable{}, fmt.Errorf("open archive: %w", err)
	}
	defer archive.Close()

	rows := make([][]string, 0, len(archive.File))
	for _, f := range archive.File {
		rows = append(rows, []string{
			f.Name,
			strconv.FormatUint(f.CompressedSize64, 10),
			strconv.FormatUint(f.UncompressedSize64, 10),
		})
	}
	return prompt.ConsentTable{
		Name:    "zip_content",
		Title:   i18n.NewTranslatable("Zip file contents", "Inhoud zip bestand"),
		Columns: []string{"filename", "compressed size", "size"},
		Rows:    rows,
	}, nil
}
