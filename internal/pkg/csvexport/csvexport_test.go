package csvexport

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobhubs/backoffice/internal/pkg/apperrors"
)

func TestWriteRoundTrip(t *testing.T) {
	headers := []string{"ID", "Nom", "Description"}
	rows := [][]string{
		{"1", "Diallo, Aminata", `dit "bonjour"`},
		{"2", "Ba", "ligne une\nligne deux"},
		{"3", "Ndiaye", "N/A"},
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, headers, rows))

	out := buf.String()
	require.True(t, strings.HasPrefix(out, "\uFEFF"), "export must start with a UTF-8 BOM")

	// Parsing back what we wrote must yield the exact field values,
	// including the comma, quote and newline cases.
	r := csv.NewReader(strings.NewReader(strings.TrimPrefix(out, "\uFEFF")))
	records, err := r.ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4)
	assert.Equal(t, headers, records[0])
	assert.Equal(t, rows[0], records[1])
	assert.Equal(t, rows[1], records[2])
	assert.Equal(t, rows[2], records[3])
}

func TestWriteEmptyCollection(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, []string{"ID"}, nil)
	assert.ErrorIs(t, err, apperrors.ErrNoExportData)
	assert.Zero(t, buf.Len())
}

func TestFilename(t *testing.T) {
	now := time.Date(2026, 8, 28, 13, 45, 0, 0, time.UTC)
	assert.Equal(t, "cellules_export_2026-08-28.csv", Filename("cellules", now))
	assert.Equal(t, "users_export_2026-08-28.csv", Filename("users", now))
}

func TestFieldFormatting(t *testing.T) {
	assert.Equal(t, "N/A", Optional(nil))
	empty := ""
	assert.Equal(t, "N/A", Optional(&empty))
	v := "18h30"
	assert.Equal(t, "18h30", Optional(&v))

	assert.Equal(t, "Actif", ActiveFlag(true))
	assert.Equal(t, "Inactif", ActiveFlag(false))

	assert.Equal(t, "N/A", Date(time.Time{}))
	assert.Equal(t, "05/03/2024", Date(time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)))
}
