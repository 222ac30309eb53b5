// Package csv reads tabular schedule exports into ordered in-memory rows.
//
// Files exported from spreadsheet tools carry artifacts that trip up naive
// parsing: UTF-8 BOMs, formula-guard prefixes on cells, stray quoting, and
// junk rows above the real header. CleanHeader and CleanCell strip these so
// downstream validation sees canonical values.
package csv

import (
	stdcsv "encoding/csv"
	"fmt"
	"os"
	"strings"
)

// Read loads an entire CSV file into memory as ordered rows.
// Rows may have varying widths; width checks belong to the caller.
func Read(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := stdcsv.NewReader(f)
	r.FieldsPerRecord = -1 // tolerate ragged rows
	r.LazyQuotes = true

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return rows, nil
}

// FindHeaderRow locates the header row among the leading rows of the file.
// Export tools sometimes emit title or date rows above the real header, so
// the first row containing any of the wanted column names (after cleaning)
// wins. Falls back to row 0 so that column validation can still report
// exactly which columns are missing.
func FindHeaderRow(rows [][]string, want []string) (int, error) {
	if len(rows) == 0 {
		return 0, fmt.Errorf("file has no rows")
	}

	wanted := make(map[string]bool, len(want))
	for _, w := range want {
		wanted[CleanHeader(w)] = true
	}

	for i, row := range rows {
		for _, cell := range row {
			if wanted[CleanHeader(cell)] {
				return i, nil
			}
		}
	}

	return 0, nil
}

// CleanHeader normalizes a header cell for name comparison: cleans the cell
// and lowercases it.
func CleanHeader(s string) string {
	return strings.ToLower(CleanCell(s))
}

// CleanCell strips spreadsheet export artifacts from a cell value:
// UTF-8 BOM, the ="..." formula guard Excel uses to preserve leading zeros,
// surrounding quotes, and whitespace. Case is preserved.
func CleanCell(s string) string {
	s = strings.TrimPrefix(s, "\uFEFF")
	s = strings.TrimSpace(s)

	// Excel formula guard: ="0042"
	if strings.HasPrefix(s, `="`) && strings.HasSuffix(s, `"`) && len(s) >= 3 {
		s = s[2 : len(s)-1]
	}

	if len(s) >= 2 && strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`) {
		s = s[1 : len(s)-1]
	}

	return strings.TrimSpace(s)
}
