package database

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

type fakeRows struct {
	rows [][]any
	i    int
	err  error
}

func (r *fakeRows) Close()                                       {}
func (r *fakeRows) Err() error                                   { return r.err }
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRows) Values() ([]any, error)                       { return nil, nil }
func (r *fakeRows) RawValues() [][]byte                          { return nil }
func (r *fakeRows) Conn() *pgx.Conn                              { return nil }

func (r *fakeRows) Next() bool {
	r.i++
	return r.i <= len(r.rows)
}

func (r *fakeRows) Scan(dest ...any) error {
	row := r.rows[r.i-1]
	*(dest[0].(*int32)) = row[0].(int32)
	*(dest[1].(*string)) = row[1].(string)
	return nil
}

type fakeDBTX struct {
	queryRows *fakeRows
	queryErr  error
	execSQL   string
	execArgs  []any
	execErr   error
}

func (f *fakeDBTX) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	f.execSQL = sql
	f.execArgs = args
	return pgconn.NewCommandTag("INSERT 0 1"), f.execErr
}

func (f *fakeDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	return f.queryRows, nil
}

func (f *fakeDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row { return nil }

func TestListActiveTeams(t *testing.T) {
	db := &fakeDBTX{queryRows: &fakeRows{rows: [][]any{
		{int32(1), "KC"},
		{int32(2), "BUF"},
	}}}

	teams, err := New(db).ListActiveTeams(context.Background())
	if err != nil {
		t.Fatalf("ListActiveTeams() error = %v", err)
	}
	if len(teams) != 2 {
		t.Fatalf("len(teams) = %d, want 2", len(teams))
	}
	if teams[0].TeamID != 1 || teams[0].Abbreviation != "KC" {
		t.Errorf("teams[0] = %+v, want {1 KC}", teams[0])
	}
	if teams[1].TeamID != 2 || teams[1].Abbreviation != "BUF" {
		t.Errorf("teams[1] = %+v, want {2 BUF}", teams[1])
	}
}

func TestListActiveTeams_QueryError(t *testing.T) {
	db := &fakeDBTX{queryErr: errors.New("connection refused")}

	_, err := New(db).ListActiveTeams(context.Background())
	if err == nil {
		t.Fatal("ListActiveTeams() expected error")
	}
}

func TestListActiveTeams_RowsError(t *testing.T) {
	db := &fakeDBTX{queryRows: &fakeRows{err: errors.New("read timeout")}}

	_, err := New(db).ListActiveTeams(context.Background())
	if err == nil {
		t.Fatal("ListActiveTeams() expected rows error")
	}
}

func TestInsertGame(t *testing.T) {
	db := &fakeDBTX{}
	arg := InsertGameParams{
		NflGameID:  "2025_01_KC_BUF",
		SeasonYear: 2025,
		Week:       1,
		GameType:   "regular",
		HomeTeamID: 1,
		AwayTeamID: 2,
		GameDate:   pgtype.Date{Valid: true},
		GameTime:   pgtype.Time{Valid: true},
		Status:     "scheduled",
	}

	if err := New(db).InsertGame(context.Background(), arg); err != nil {
		t.Fatalf("InsertGame() error = %v", err)
	}
	if !strings.Contains(db.execSQL, "INSERT INTO games") {
		t.Errorf("unexpected SQL: %s", db.execSQL)
	}
	if len(db.execArgs) != 10 {
		t.Fatalf("len(args) = %d, want 10", len(db.execArgs))
	}
	if db.execArgs[0] != "2025_01_KC_BUF" {
		t.Errorf("args[0] = %v, want game id", db.execArgs[0])
	}
	if db.execArgs[9] != "scheduled" {
		t.Errorf("args[9] = %v, want status", db.execArgs[9])
	}
}

func TestInsertGame_Error(t *testing.T) {
	db := &fakeDBTX{execErr: errors.New("duplicate key")}

	err := New(db).InsertGame(context.Background(), InsertGameParams{})
	if err == nil {
		t.Fatal("InsertGame() expected error")
	}
}
