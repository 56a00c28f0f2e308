package excelize_test

import (
	"bytes"
	"strings"
	"testing"

	xlsx "github.com/xuri/excelize/v2"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studyhall"
	"studyhall/excelize"
)

// buildWorkbook writes an in-memory workbook with the given cells.
func buildWorkbook(t *testing.T, cells map[string]string) *bytes.Reader {
	t.Helper()

	f := xlsx.NewFile()
	defer f.Close()
	for ref, value := range cells {
		require.NoError(t, f.SetCellValue("Sheet1", ref, value))
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return bytes.NewReader(buf.Bytes())
}

func TestExtractor_JoinsCellsAndRows(t *testing.T) {
	t.Parallel()

	workbook := buildWorkbook(t, map[string]string{
		"A1": "Term",
		"B1": "Definition",
		"A2": "Osmosis",
		"B2": "Diffusion of water",
	})
	e := excelize.NewExtractor()

	text, err := e.Extract(workbook)

	require.NoError(t, err)
	assert.Equal(t, "Term Definition\nOsmosis Diffusion of water", text)
}

func TestExtractor_SkipsBlankRows(t *testing.T) {
	t.Parallel()

	workbook := buildWorkbook(t, map[string]string{
		"A1": "first",
		"A2": "   ",
		"A4": "fourth",
	})
	e := excelize.NewExtractor()

	text, err := e.Extract(workbook)

	require.NoError(t, err)
	assert.Equal(t, "first\nfourth", text)
}

func TestExtractor_EmptyWorkbook(t *testing.T) {
	t.Parallel()

	workbook := buildWorkbook(t, nil)
	e := excelize.NewExtractor()

	text, err := e.Extract(workbook)

	require.NoError(t, err)
	assert.Empty(t, text)
}

func TestExtractor_RejectsNonSpreadsheet(t *testing.T) {
	t.Parallel()

	e := excelize.NewExtractor()

	_, err := e.Extract(strings.NewReader("not a workbook"))

	require.Error(t, err)
	assert.Equal(t, studyhall.EINVALID, studyhall.ErrorCode(err))
}
