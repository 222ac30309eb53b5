package importer

import (
	"fmt"
	"strings"
	"time"
)

// TwoDigitYearPivot defines how 2-digit years are interpreted.
// Years that would land more than this many years in the future are assumed
// to be in the previous century.
var TwoDigitYearPivot = 20

// Date layouts split by year format for proper 2-digit year handling
var (
	// 2-digit year layouts - require pivot year adjustment
	twoDigitYearLayouts = []string{
		"1/2/06", "01/02/06", "1-2-06", "1.2.06", "01.02.06",
	}
	// 4-digit year layouts - no adjustment needed
	fourDigitYearLayouts = []string{
		"2006-01-02", "2006/01/02", "2006.01.02",
		"1/2/2006", "01/02/2006", "1-2-2006", "01-02-2006", "1.2.2006", "01.02.2006",
		"Jan 2, 2006", "2 Jan 2006",
		"20060102",
	}
)

// Time-of-day layouts, 24-hour and AM/PM forms. Values are uppercased
// before parsing so "8:20pm" matches.
var timeOfDayLayouts = []string{
	"15:04:05", "15:04",
	"3:04:05 PM", "3:04 PM", "3:04PM", "3 PM", "3PM",
}

// LocalKickoff is the result of combining a fixture's calendar date and
// local time-of-day.
type LocalKickoff struct {
	Date  time.Time     // calendar date (midnight UTC, a parse artifact)
	Clock time.Duration // time-of-day offset from local midnight
	UTC   time.Time     // the absolute kickoff instant
}

// DeriveKickoff combines a calendar date and a local time-of-day into an
// absolute instant. The naive local datetime is interpreted as wall-clock
// time in loc (with that zone's historical DST rules) and converted to UTC.
//
// Local times falling inside a DST transition are resolved by time.Date's
// normalization; nonexistent times are shifted across the gap.
func DeriveKickoff(rawDate, rawTime string, loc *time.Location) (LocalKickoff, error) {
	date, err := parseDate(rawDate)
	if err != nil {
		return LocalKickoff{}, fmt.Errorf("game_date %q: %w", rawDate, err)
	}

	clock, err := parseTimeOfDay(rawTime)
	if err != nil {
		return LocalKickoff{}, fmt.Errorf("game_time %q: %w", rawTime, err)
	}

	hh := int(clock / time.Hour)
	mm := int(clock % time.Hour / time.Minute)
	ss := int(clock % time.Minute / time.Second)

	local := time.Date(date.Year(), date.Month(), date.Day(), hh, mm, ss, 0, loc)

	return LocalKickoff{Date: date, Clock: clock, UTC: local.UTC()}, nil
}

// parseDate normalizes a date string to a pure calendar date.
func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}

	// Spreadsheet exports sometimes serialize dates with a midnight suffix.
	if t, err := time.Parse("2006-01-02 15:04:05", s); err == nil {
		return t.Truncate(24 * time.Hour), nil
	}

	// Try 4-digit year layouts first (unambiguous)
	for _, layout := range fourDigitYearLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}

	// Try 2-digit year layouts with pivot year adjustment
	pivotYear := time.Now().Year() + TwoDigitYearPivot
	for _, layout := range twoDigitYearLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			if t.Year() > pivotYear {
				t = t.AddDate(-100, 0, 0)
			}
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized date format")
}

// parseTimeOfDay normalizes a time string to an offset from midnight.
func parseTimeOfDay(s string) (time.Duration, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return 0, fmt.Errorf("empty time")
	}

	for _, layout := range timeOfDayLayouts {
		t, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		return time.Duration(t.Hour())*time.Hour +
			time.Duration(t.Minute())*time.Minute +
			time.Duration(t.Second())*time.Second, nil
	}

	return 0, fmt.Errorf("unrecognized time format")
}
