package importer

import (
	"fmt"
	"strconv"
)

// BuildRecords normalizes raw data rows into typed GameRecords. Fully empty
// rows are skipped. Numeric fields that fail to parse are accumulated into
// one RecordError covering every malformed row; no partially-typed record
// leaves this function.
//
// headerLine is the 0-based index of the header row in the file, so that
// record line numbers match what a spreadsheet shows (1-indexed, header
// included).
func BuildRecords(dataRows [][]string, idx HeaderIndex, headerLine int) ([]GameRecord, error) {
	records := make([]GameRecord, 0, len(dataRows))
	var problems []string

	for i, row := range dataRows {
		if emptyRow(row) {
			continue
		}
		line := headerLine + i + 2

		rec := GameRecord{
			Line:     line,
			GameID:   cell(row, idx, "nfl_game_id"),
			GameType: cell(row, idx, "game_type"),
			RawDate:  cell(row, idx, "game_date"),
			RawTime:  cell(row, idx, "game_time_et"),
		}
		rec.Home.Code = cell(row, idx, "home_team")
		rec.Away.Code = cell(row, idx, "away_team")

		var rowProblems []string
		rec.SeasonYear = parseIntField("season_year", cell(row, idx, "season_year"), &rowProblems)
		rec.Week = parseIntField("week", cell(row, idx, "week"), &rowProblems)
		rec.Home.ID = parseIntField("home_team_id", cell(row, idx, "home_team_id"), &rowProblems)
		rec.Away.ID = parseIntField("away_team_id", cell(row, idx, "away_team_id"), &rowProblems)

		if len(rowProblems) > 0 {
			for _, p := range rowProblems {
				problems = append(problems, fmt.Sprintf("row %d: %s", line, p))
			}
			continue
		}

		records = append(records, rec)
	}

	if len(problems) > 0 {
		return nil, &RecordError{Problems: problems}
	}
	return records, nil
}

func parseIntField(name, raw string, problems *[]string) int32 {
	v, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		*problems = append(*problems, fmt.Sprintf("invalid %s %q", name, raw))
		return 0
	}
	return int32(v)
}
