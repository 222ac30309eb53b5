package importer

import (
	"fmt"

	"github.com/poolsapp/schedule-loader/internal/schema"
)

// ValidateColumns checks that every required schedule column is present in
// the header. Every missing column is reported, not just the first.
func ValidateColumns(header []string, specs []schema.FieldSpec) error {
	idx := MakeHeaderIndex(header)

	var missing []string
	for _, spec := range specs {
		if !spec.Required {
			continue
		}
		if _, ok := idx[spec.Name]; !ok {
			missing = append(missing, spec.Name)
		}
	}

	if len(missing) > 0 {
		return &SchemaError{Missing: missing}
	}
	return nil
}

// ValidateGameTypes checks every value in the game_type column against the
// fixed vocabulary. Each offending distinct value is reported exactly once,
// in first-seen order.
func ValidateGameTypes(dataRows [][]string, idx HeaderIndex) error {
	seen := make(map[string]bool)
	var invalid []string

	for _, row := range dataRows {
		if emptyRow(row) {
			continue
		}
		v := cell(row, idx, "game_type")
		if schema.IsGameType(v) || seen[v] {
			continue
		}
		seen[v] = true
		invalid = append(invalid, v)
	}

	if len(invalid) > 0 {
		return &VocabularyError{Invalid: invalid, Allowed: schema.GameTypes}
	}
	return nil
}

// ValidateTeams cross-checks both sides of every record against the team
// directory: the numeric id must exist, and the directory's canonical
// abbreviation for that id must equal the code supplied in the export.
// Validation is exhaustive; every problem on every row is recorded.
func ValidateTeams(records []GameRecord, dir *TeamDirectory) error {
	var problems []string

	for _, rec := range records {
		problems = appendTeamProblems(problems, rec.Line, "home", rec.Home, dir)
		problems = appendTeamProblems(problems, rec.Line, "away", rec.Away, dir)
	}

	if len(problems) > 0 {
		return &ReferentialError{Problems: problems}
	}
	return nil
}

func appendTeamProblems(problems []string, line int, side string, ref TeamRef, dir *TeamDirectory) []string {
	canonical, ok := dir.CodeForID(ref.ID)
	if !ok {
		return append(problems,
			fmt.Sprintf("row %d: %s team_id %d not found in database", line, side, ref.ID))
	}
	if canonical != ref.Code {
		return append(problems,
			fmt.Sprintf("row %d: %s team_id %d doesn't match abbreviation %q (should be %q)",
				line, side, ref.ID, ref.Code, canonical))
	}
	return problems
}
