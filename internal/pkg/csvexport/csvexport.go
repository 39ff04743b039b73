// Package csvexport serializes filtered collections into CSV attachments.
// Output is RFC 4180 quoted (commas, quotes and embedded newlines are all
// escaped) and prefixed with a UTF-8 byte-order-mark so spreadsheet tools
// pick up accented characters.
package csvexport

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/jobhubs/backoffice/internal/pkg/apperrors"
)

// utf8BOM makes Excel detect the encoding of exported files.
const utf8BOM = "\uFEFF"

// Write serializes a header row plus data rows to w. An export with zero
// data rows fails with ErrNoExportData; the console surfaces that instead
// of downloading an empty file.
func Write(w io.Writer, headers []string, rows [][]string) error {
	if len(rows) == 0 {
		return apperrors.ErrNoExportData
	}

	if _, err := io.WriteString(w, utf8BOM); err != nil {
		return fmt.Errorf("failed to write BOM: %w", err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(headers); err != nil {
		return fmt.Errorf("failed to write header row: %w", err)
	}

	for _, row := range rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush csv: %w", err)
	}
	return nil
}

// Filename builds the conventional export name: {resource}_export_{ISO-date}.csv
func Filename(resource string, now time.Time) string {
	return fmt.Sprintf("%s_export_%s.csv", resource, now.Format("2006-01-02"))
}

// Optional renders a nullable string field, using N/A for missing values
// the way the console always has.
func Optional(s *string) string {
	if s == nil || *s == "" {
		return "N/A"
	}
	return *s
}

// OptionalString renders a possibly empty string field.
func OptionalString(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

// ActiveFlag renders a cellule's active flag.
func ActiveFlag(active bool) string {
	if active {
		return "Actif"
	}
	return "Inactif"
}

// Date renders timestamps in the dd/mm/yyyy form the console exported.
func Date(t time.Time) string {
	if t.IsZero() {
		return "N/A"
	}
	return t.Format("02/01/2006")
}
