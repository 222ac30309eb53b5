package database

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const insertGame = `
INSERT INTO games (
	nfl_game_id, season_year, week, game_type, home_team_id, away_team_id,
	game_date, game_time, kickoff_timestamp, status
) VALUES (
	$1, $2, $3, $4, $5, $6, $7, $8, $9, $10
)
`

// InsertGameParams is one row of the games table.
type InsertGameParams struct {
	NflGameID        string
	SeasonYear       int32
	Week             int32
	GameType         string
	HomeTeamID       int32
	AwayTeamID       int32
	GameDate         pgtype.Date
	GameTime         pgtype.Time
	KickoffTimestamp pgtype.Timestamptz
	Status           string
}

// InsertGame writes one game row. Rows are never updated or deleted by this
// tool; re-running an import against a populated table is the operator's
// responsibility.
func (q *Queries) InsertGame(ctx context.Context, arg InsertGameParams) error {
	_, err := q.db.Exec(ctx, insertGame,
		arg.NflGameID,
		arg.SeasonYear,
		arg.Week,
		arg.GameType,
		arg.HomeTeamID,
		arg.AwayTeamID,
		arg.GameDate,
		arg.GameTime,
		arg.KickoffTimestamp,
		arg.Status,
	)
	return err
}
