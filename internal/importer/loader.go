package importer

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/poolsapp/schedule-loader/internal/database"
)

// TxBeginner opens a transaction. Satisfied by *pgx.Conn.
type TxBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// Result reports the outcome of a load: per-row successes and failures with
// the ordered failure descriptions. Errors is never capped here.
type Result struct {
	Succeeded int
	Failed    int
	Errors    []RowError
}

// statusScheduled is the lifecycle status every imported game starts in.
const statusScheduled = "scheduled"

// Load inserts records into the games table inside one transaction.
//
// Each row is attempted independently: a kickoff derivation failure or an
// insert error is recorded and the loop continues with the next row. Rows
// that succeed become durable together at the final commit. Any error
// escaping the loop itself (savepoint bookkeeping, commit) discards the
// whole transaction, including rows that had inserted cleanly, and
// propagates to the caller. Counts are returned on both paths.
func Load(ctx context.Context, db TxBeginner, records []GameRecord, loc *time.Location) (Result, error) {
	var res Result

	tx, err := db.Begin(ctx)
	if err != nil {
		return res, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx) // No-op if already committed

	q := database.New(tx)

	for i, rec := range records {
		kickoff, err := DeriveKickoff(rec.RawDate, rec.RawTime, loc)
		if err != nil {
			slog.Warn("could not calculate kickoff timestamp",
				"game_id", rec.GameID,
				"game_date", rec.RawDate,
				"game_time", rec.RawTime,
				"error", err,
			)
			res.Failed++
			res.Errors = append(res.Errors, RowError{
				Line:   rec.Line,
				GameID: rec.GameID,
				Msg:    fmt.Sprintf("could not calculate kickoff timestamp: %v", err),
			})
			continue
		}

		arg := database.InsertGameParams{
			NflGameID:        rec.GameID,
			SeasonYear:       rec.SeasonYear,
			Week:             rec.Week,
			GameType:         rec.GameType,
			HomeTeamID:       rec.Home.ID,
			AwayTeamID:       rec.Away.ID,
			GameDate:         pgtype.Date{Time: kickoff.Date, Valid: true},
			GameTime:         pgtype.Time{Microseconds: kickoff.Clock.Microseconds(), Valid: true},
			KickoffTimestamp: pgtype.Timestamptz{Time: kickoff.UTC, Valid: true},
			Status:           statusScheduled,
		}

		// Savepoint isolates each insert - PostgreSQL aborts the entire
		// transaction on any statement error.
		savepointName := fmt.Sprintf("sp_%d", i)
		if _, err := tx.Exec(ctx, "SAVEPOINT "+savepointName); err != nil {
			return res, fmt.Errorf("failed to create savepoint at row %d: %w", rec.Line, err)
		}

		if err := q.InsertGame(ctx, arg); err != nil {
			// Rollback to savepoint to recover transaction state
			if _, rbErr := tx.Exec(ctx, "ROLLBACK TO SAVEPOINT "+savepointName); rbErr != nil {
				return res, fmt.Errorf("failed to rollback savepoint at row %d: %w", rec.Line, rbErr)
			}
			res.Failed++
			res.Errors = append(res.Errors, RowError{
				Line:   rec.Line,
				GameID: rec.GameID,
				Msg:    fmt.Sprintf("insert failed: %v", err),
			})
			continue
		}

		if _, err := tx.Exec(ctx, "RELEASE SAVEPOINT "+savepointName); err != nil {
			return res, fmt.Errorf("failed to release savepoint at row %d: %w", rec.Line, err)
		}

		res.Succeeded++
	}

	if err := tx.Commit(ctx); err != nil {
		return res, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return res, nil
}
