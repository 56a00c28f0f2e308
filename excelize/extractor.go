// Package excelize provides a studyhall.Extractor for spreadsheets
// using github.com/xuri/excelize/v2.
package excelize

import (
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"studyhall"
)

// Ensure Extractor implements studyhall.Extractor at compile time.
var _ studyhall.Extractor = (*Extractor)(nil)

// Extractor flattens workbook cells to text.
type Extractor struct{}

// NewExtractor returns a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract visits every row of every sheet, joining non-empty cell
// values with spaces. Rows that produce only whitespace are skipped;
// surviving rows are joined with newlines.
func (e *Extractor) Extract(r io.Reader) (string, error) {
	workbook, err := excelize.OpenReader(r)
	if err != nil {
		return "", studyhall.Errorf(studyhall.EINVALID, "failed to open spreadsheet: %v", err)
	}
	defer workbook.Close()

	var lines []string
	for _, sheet := range workbook.GetSheetList() {
		rows, err := workbook.GetRows(sheet)
		if err != nil {
			return "", studyhall.Errorf(studyhall.EINVALID, "failed to read sheet %q: %v", sheet, err)
		}
		for _, row := range rows {
			cells := make([]string, 0, len(row))
			for _, cell := range row {
				if cell != "" {
					cells = append(cells, cell)
				}
			}
			line := strings.Join(cells, " ")
			if strings.TrimSpace(line) == "" {
				continue
			}
			lines = append(lines, line)
		}
	}

	return strings.Join(lines, "\n"), nil
}
