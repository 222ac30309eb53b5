package importer

import (
	"fmt"
	"strings"
)

// The four pre-write error types below are fatal: each aborts the run before
// anything is written. Each one aggregates every finding of its phase rather
// than stopping at the first, so one failed run shows the whole picture.

// SchemaError reports required columns missing from the export header.
type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("missing required columns: %s", strings.Join(e.Missing, ", "))
}

// VocabularyError reports game_type values outside the fixed vocabulary.
// Invalid holds each offending value once, in first-seen order.
type VocabularyError struct {
	Invalid []string
	Allowed []string
}

func (e *VocabularyError) Error() string {
	return fmt.Sprintf("invalid game_type values: %s (must be one of: %s)",
		strings.Join(e.Invalid, ", "), strings.Join(e.Allowed, ", "))
}

// RecordError reports rows that could not be normalized into typed records
// (non-numeric ids, season, or week).
type RecordError struct {
	Problems []string
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("found %d malformed rows", len(e.Problems))
}

// Details returns the per-row problem descriptions.
func (e *RecordError) Details() []string { return e.Problems }

// ConnectivityError reports that the destination store was unreachable or a
// query against it failed. Single attempt, no retries.
type ConnectivityError struct {
	Op  string
	Err error
}

func (e *ConnectivityError) Error() string {
	return fmt.Sprintf("database %s failed: %v", e.Op, e.Err)
}

func (e *ConnectivityError) Unwrap() error { return e.Err }

// ReferentialError reports team references that did not resolve against the
// directory. Problems carries every finding; display capping is the
// reporter's concern, the count is always exact.
type ReferentialError struct {
	Problems []string
}

func (e *ReferentialError) Error() string {
	return fmt.Sprintf("found %d team validation errors", len(e.Problems))
}

// Details returns the per-row problem descriptions.
func (e *ReferentialError) Details() []string { return e.Problems }

// RowError is a non-fatal, per-row load failure: either kickoff derivation
// or the insert itself failed. The row is skipped, the run continues.
type RowError struct {
	Line   int
	GameID string
	Msg    string
}

func (e RowError) String() string {
	if e.GameID != "" {
		return fmt.Sprintf("row %d (%s): %s", e.Line, e.GameID, e.Msg)
	}
	return fmt.Sprintf("row %d: %s", e.Line, e.Msg)
}

// capProblems returns at most max entries; when more exist, the last entry
// summarizes how many were omitted.
func capProblems(problems []string, max int) []string {
	if max <= 0 || len(problems) <= max {
		return problems
	}
	out := make([]string, 0, max+1)
	out = append(out, problems[:max]...)
	out = append(out, fmt.Sprintf("... and %d more errors", len(problems)-max))
	return out
}
