package importer

import (
	"strings"
	"testing"
	"time"
)

func eastern(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatalf("loading America/New_York: %v", err)
	}
	return loc
}

func TestDeriveKickoff_DaylightTime(t *testing.T) {
	// September 4, daylight saving in effect (UTC-4):
	// 20:20 ET is 00:20 UTC the next day.
	k, err := DeriveKickoff("2025-09-04", "20:20:00", eastern(t))
	if err != nil {
		t.Fatalf("DeriveKickoff() error = %v", err)
	}

	want := time.Date(2025, 9, 5, 0, 20, 0, 0, time.UTC)
	if !k.UTC.Equal(want) {
		t.Errorf("UTC = %v, want %v", k.UTC, want)
	}
	if k.Clock != 20*time.Hour+20*time.Minute {
		t.Errorf("Clock = %v, want 20h20m", k.Clock)
	}
	if y, m, d := k.Date.Date(); y != 2025 || m != time.September || d != 4 {
		t.Errorf("Date = %v, want 2025-09-04", k.Date)
	}
}

func TestDeriveKickoff_StandardTime(t *testing.T) {
	// January 11, standard time (UTC-5): 13:00 ET is 18:00 UTC.
	k, err := DeriveKickoff("2026-01-11", "13:00:00", eastern(t))
	if err != nil {
		t.Fatalf("DeriveKickoff() error = %v", err)
	}

	want := time.Date(2026, 1, 11, 18, 0, 0, 0, time.UTC)
	if !k.UTC.Equal(want) {
		t.Errorf("UTC = %v, want %v", k.UTC, want)
	}
}

func TestDeriveKickoff_Formats(t *testing.T) {
	loc := eastern(t)
	want := time.Date(2025, 9, 5, 0, 20, 0, 0, time.UTC)

	tests := []struct {
		date string
		tod  string
	}{
		{"2025-09-04", "20:20:00"},
		{"9/4/2025", "20:20"},
		{"09/04/2025", "8:20 PM"},
		{"9/4/25", "8:20PM"},
		{"Sep 4, 2025", "8:20 pm"},
		{"2025-09-04 00:00:00", "20:20:00"},
	}

	for _, tt := range tests {
		k, err := DeriveKickoff(tt.date, tt.tod, loc)
		if err != nil {
			t.Errorf("DeriveKickoff(%q, %q) error = %v", tt.date, tt.tod, err)
			continue
		}
		if !k.UTC.Equal(want) {
			t.Errorf("DeriveKickoff(%q, %q) = %v, want %v", tt.date, tt.tod, k.UTC, want)
		}
	}
}

func TestDeriveKickoff_BadInput(t *testing.T) {
	loc := eastern(t)

	tests := []struct {
		name string
		date string
		tod  string
		want string // substring the error must carry
	}{
		{"bad date", "soon", "20:20:00", `game_date "soon"`},
		{"bad time", "2025-09-04", "kickoff tbd", `game_time "kickoff tbd"`},
		{"empty date", "", "20:20:00", "empty date"},
		{"empty time", "2025-09-04", "", "empty time"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DeriveKickoff(tt.date, tt.tod, loc)
			if err == nil {
				t.Fatal("DeriveKickoff() expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q should contain %q", err, tt.want)
			}
		})
	}
}

func TestParseDate_TwoDigitYears(t *testing.T) {
	// "99" resolves to 1999 and stays below the pivot.
	d, err := parseDate("1/2/99")
	if err != nil {
		t.Fatalf("parseDate() error = %v", err)
	}
	if d.Year() != 1999 {
		t.Errorf("Year = %d, want 1999", d.Year())
	}

	d, err = parseDate("1/2/25")
	if err != nil {
		t.Fatalf("parseDate() error = %v", err)
	}
	if d.Year() != 2025 {
		t.Errorf("Year = %d, want 2025", d.Year())
	}
}
