package importer

import (
	"context"

	"github.com/poolsapp/schedule-loader/internal/database"
)

// TeamDirectory is a read-only snapshot of the active team directory:
// abbreviation→id and its inverse. Built once per run, never mutated.
type TeamDirectory struct {
	byCode map[string]int32
	byID   map[int32]string
}

// NewTeamDirectory builds both lookup directions from the directory rows.
func NewTeamDirectory(teams []database.Team) *TeamDirectory {
	dir := &TeamDirectory{
		byCode: make(map[string]int32, len(teams)),
		byID:   make(map[int32]string, len(teams)),
	}
	for _, t := range teams {
		dir.byCode[t.Abbreviation] = t.TeamID
		dir.byID[t.TeamID] = t.Abbreviation
	}
	return dir
}

// LoadTeamDirectory queries active teams and builds the lookup snapshot.
// A query failure surfaces immediately as a ConnectivityError; no retries.
func LoadTeamDirectory(ctx context.Context, db database.DBTX) (*TeamDirectory, error) {
	teams, err := database.New(db).ListActiveTeams(ctx)
	if err != nil {
		return nil, &ConnectivityError{Op: "team lookup", Err: err}
	}
	return NewTeamDirectory(teams), nil
}

// CodeForID returns the canonical abbreviation for a team id.
func (d *TeamDirectory) CodeForID(id int32) (string, bool) {
	code, ok := d.byID[id]
	return code, ok
}

// IDForCode returns the team id for a canonical abbreviation.
func (d *TeamDirectory) IDForCode(code string) (int32, bool) {
	id, ok := d.byCode[code]
	return id, ok
}

// Len returns the number of active directory entries.
func (d *TeamDirectory) Len() int {
	return len(d.byID)
}
