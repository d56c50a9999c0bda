package ledger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/outlay-dev/outlay/internal/model"
)

func TestWriteCSV(t *testing.T) {
	expenses := []model.Expense{
		{Date: date(2024, 1, 15), Category: "Groceries", Amount: dec("42.5"), Description: "Weekly shop"},
		{Date: date(2024, 1, 16), Category: "Transport", Amount: dec("30"), Description: "Bus, tram"},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, expenses))

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 3)
	assert.Equal(t, CSVHeader, string(lines[0]))
	assert.Equal(t, "2024-01-15,Groceries,42.50,Weekly shop", string(lines[1]))
	// Embedded comma gets quoted.
	assert.Equal(t, `2024-01-16,Transport,30.00,"Bus, tram"`, string(lines[2]))
}

func TestWriteCSV_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))
	assert.Equal(t, CSVHeader, string(bytes.TrimSpace(buf.Bytes())))
}
