package csv

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "schedule.csv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing temp file: %v", err)
	}
	return path
}

func TestRead(t *testing.T) {
	path := writeTemp(t, "a,b,c\n1,2,3\n4,5\n")

	rows, err := Read(path)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("Read() returned %d rows, want 3", len(rows))
	}
	// Ragged row widths are tolerated
	if len(rows[2]) != 2 {
		t.Errorf("rows[2] has %d fields, want 2", len(rows[2]))
	}
}

func TestRead_MissingFile(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "nope.csv"))
	if err == nil {
		t.Fatal("Read() expected error for missing file")
	}
}

func TestFindHeaderRow(t *testing.T) {
	tests := []struct {
		name string
		rows [][]string
		want int
	}{
		{
			name: "header first",
			rows: [][]string{{"nfl_game_id", "week"}, {"2025_01", "1"}},
			want: 0,
		},
		{
			name: "junk rows above header",
			rows: [][]string{{"2025 Season Export"}, {""}, {"nfl_game_id", "week"}, {"2025_01", "1"}},
			want: 2,
		},
		{
			name: "header with BOM and casing",
			rows: [][]string{{"\uFEFFNFL_Game_ID", "Week"}},
			want: 0,
		},
		{
			name: "no match falls back to first row",
			rows: [][]string{{"x", "y"}, {"1", "2"}},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FindHeaderRow(tt.rows, []string{"nfl_game_id", "week"})
			if err != nil {
				t.Fatalf("FindHeaderRow() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("FindHeaderRow() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestFindHeaderRow_Empty(t *testing.T) {
	_, err := FindHeaderRow(nil, []string{"nfl_game_id"})
	if err == nil {
		t.Fatal("FindHeaderRow() expected error for empty input")
	}
}

func TestCleanCell(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{"  padded  ", "padded"},
		{"\uFEFFbom", "bom"},
		{`="0042"`, "0042"},
		{`"quoted"`, "quoted"},
		{"KC", "KC"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := CleanCell(tt.in); got != tt.want {
			t.Errorf("CleanCell(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCleanHeader(t *testing.T) {
	if got := CleanHeader(" Game_Type "); got != "game_type" {
		t.Errorf("CleanHeader() = %q, want %q", got, "game_type")
	}
}
