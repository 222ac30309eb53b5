package importer

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/poolsapp/schedule-loader/internal/config"
	"github.com/poolsapp/schedule-loader/internal/csv"
	"github.com/poolsapp/schedule-loader/internal/logging"
	"github.com/poolsapp/schedule-loader/internal/schema"
)

// detailer is implemented by aggregate errors carrying per-row findings.
type detailer interface {
	Details() []string
}

// Run executes the whole import pipeline against one schedule file:
// read, validate columns, validate game types, normalize rows, connect,
// load the team directory, validate team references, then load.
//
// A nil return means the run completed; per-row load failures are reported
// but do not fail the run. Any validation failure, connectivity failure, or
// error escaping the load transaction returns non-nil.
func Run(ctx context.Context, cfg *config.Config, path string) error {
	logger := logging.WithFields("run_id", uuid.NewString(), "file", filepath.Base(path))

	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("file not found: %s", path)
	}

	loc, err := time.LoadLocation(cfg.Import.Timezone)
	if err != nil {
		return fmt.Errorf("loading timezone %q: %w", cfg.Import.Timezone, err)
	}

	logger.Info("starting schedule import")

	rows, err := csv.Read(path)
	if err != nil {
		return fmt.Errorf("reading schedule file: %w", err)
	}

	headerLine, err := csv.FindHeaderRow(rows, schema.RequiredColumns())
	if err != nil {
		return fmt.Errorf("reading schedule file: %w", err)
	}
	header := rows[headerLine]
	dataRows := rows[headerLine+1:]
	logger.Info("schedule file read", "rows", len(dataRows))

	if err := ValidateColumns(header, schema.ScheduleFieldSpecs); err != nil {
		return report(logger, err, cfg.Import.MaxDisplayErrors)
	}
	logger.Info("all required columns present")

	idx := MakeHeaderIndex(header)
	if err := ValidateGameTypes(dataRows, idx); err != nil {
		return report(logger, err, cfg.Import.MaxDisplayErrors)
	}
	logger.Info("all game types valid")

	records, err := BuildRecords(dataRows, idx, headerLine)
	if err != nil {
		return report(logger, err, cfg.Import.MaxDisplayErrors)
	}
	logger.Info("rows normalized", "records", len(records))

	// Validation that needs no database is done; only now open the
	// connection. One connection, one transaction, closed before return.
	conn, err := pgx.Connect(ctx, cfg.Database.URL)
	if err != nil {
		return &ConnectivityError{Op: "connect", Err: err}
	}
	defer conn.Close(ctx)
	logger.Info("connected to database", "name", databaseName(cfg.Database.URL))

	dir, err := LoadTeamDirectory(ctx, conn)
	if err != nil {
		return err
	}
	logger.Info("team directory loaded", "teams", dir.Len())

	if err := ValidateTeams(records, dir); err != nil {
		return report(logger, err, cfg.Import.MaxDisplayErrors)
	}
	logger.Info("all team ids and abbreviations valid")

	result, err := Load(ctx, conn, records, loc)
	if err != nil {
		return err
	}

	logger.Info("import complete",
		"processed", len(records),
		"succeeded", result.Succeeded,
		"failed", result.Failed,
	)
	if result.Failed > 0 {
		for _, p := range capProblems(rowErrorStrings(result.Errors), cfg.Import.MaxDisplayErrors) {
			logger.Warn("row failed", "detail", p)
		}
	}

	return nil
}

// report logs the capped details of an aggregate validation error before
// returning it. The returned error always carries the exact total.
func report(logger *slog.Logger, err error, maxDisplay int) error {
	if d, ok := err.(detailer); ok {
		for _, p := range capProblems(d.Details(), maxDisplay) {
			logger.Error("validation error", "detail", p)
		}
	}
	return err
}

func rowErrorStrings(errs []RowError) []string {
	out := make([]string, len(errs))
	for i, e := range errs {
		out[i] = e.String()
	}
	return out
}

// databaseName extracts the database name from a connection URL for logging.
func databaseName(dbURL string) string {
	u, err := url.Parse(dbURL)
	if err != nil {
		return ""
	}
	return strings.TrimPrefix(u.Path, "/")
}
