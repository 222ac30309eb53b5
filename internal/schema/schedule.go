package schema

// GameTypes is the fixed vocabulary for the game_type column.
// Order matters only for error messages.
var GameTypes = []string{"regular", "wildcard", "divisional", "conference", "superbowl"}

// ScheduleFieldSpecs defines the expected CSV columns for an NFL schedule
// export. Extra columns in the file are tolerated and ignored.
var ScheduleFieldSpecs = []FieldSpec{
	{Name: "nfl_game_id", Type: FieldText, Required: true},
	{Name: "season_year", Type: FieldInt, Required: true},
	{Name: "week", Type: FieldInt, Required: true},
	{Name: "game_type", Type: FieldEnum, Required: true, EnumValues: GameTypes},
	{Name: "home_team_id", Type: FieldInt, Required: true},
	{Name: "home_team", Type: FieldText, Required: true},
	{Name: "away_team_id", Type: FieldInt, Required: true},
	{Name: "away_team", Type: FieldText, Required: true},
	{Name: "game_date", Type: FieldDate, Required: true},
	{Name: "game_time_et", Type: FieldTime, Required: true},
}

// RequiredColumns returns the names of all required schedule columns.
func RequiredColumns() []string {
	cols := make([]string, 0, len(ScheduleFieldSpecs))
	for _, spec := range ScheduleFieldSpecs {
		if spec.Required {
			cols = append(cols, spec.Name)
		}
	}
	return cols
}

// IsGameType reports whether v is a member of the game type vocabulary.
func IsGameType(v string) bool {
	for _, gt := range GameTypes {
		if v == gt {
			return true
		}
	}
	return false
}
