// Package importer implements the schedule import pipeline: read the export,
// validate schema, vocabulary, and team references, derive kickoff instants,
// and load rows into the games table inside one transaction.
//
// Control flow is strictly linear. The only state shared between phases is
// the read-only team directory snapshot.
package importer

import (
	"github.com/poolsapp/schedule-loader/internal/csv"
)

// TeamRef is one side of a fixture: the numeric directory id and the
// human-readable abbreviation that came with it in the export.
type TeamRef struct {
	ID   int32
	Code string
}

// GameRecord is one fixture row, normalized to concrete types at the
// ingestion boundary. Date and time-of-day stay raw until kickoff
// derivation, where a bad value is a per-row (non-fatal) failure.
type GameRecord struct {
	Line       int // CSV line number, 1-indexed, for reporting
	GameID     string
	SeasonYear int32
	Week       int32
	GameType   string
	Home       TeamRef
	Away       TeamRef
	RawDate    string
	RawTime    string
}

// HeaderIndex maps cleaned column names to their position in a CSV row.
type HeaderIndex map[string]int

// MakeHeaderIndex builds a HeaderIndex from a header row.
// Call once per file, then reuse for all rows.
func MakeHeaderIndex(header []string) HeaderIndex {
	idx := make(HeaderIndex, len(header))
	for i, h := range header {
		idx[csv.CleanHeader(h)] = i
	}
	return idx
}

// cell returns the cleaned value of the named column in row, or "" when the
// column is absent or the row is too short.
func cell(row []string, idx HeaderIndex, name string) string {
	pos, ok := idx[name]
	if !ok || pos >= len(row) {
		return ""
	}
	return csv.CleanCell(row[pos])
}

// emptyRow reports whether every cell of the row is blank.
func emptyRow(row []string) bool {
	for _, v := range row {
		if csv.CleanCell(v) != "" {
			return false
		}
	}
	return true
}
