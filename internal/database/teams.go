package database

import "context"

const listActiveTeams = `
SELECT team_id, abbreviation
FROM teams
WHERE active = TRUE
`

// Team is one active row of the team directory.
type Team struct {
	TeamID       int32
	Abbreviation string
}

// ListActiveTeams returns all active entries of the team directory.
func (q *Queries) ListActiveTeams(ctx context.Context) ([]Team, error) {
	rows, err := q.db.Query(ctx, listActiveTeams)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var teams []Team
	for rows.Next() {
		var t Team
		if err := rows.Scan(&t.TeamID, &t.Abbreviation); err != nil {
			return nil, err
		}
		teams = append(teams, t)
	}
	return teams, rows.Err()
}
