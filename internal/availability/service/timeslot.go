package service

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	apperrors "fundi/pkg/errors"
)

const dateLayout = "2006-01-02"

// timeSlotPattern accepts clock times like "9:00 AM" or "12:30 PM".
// Minutes are two digits, the meridiem is mandatory and uppercase.
var timeSlotPattern = regexp.MustCompile(`^(\d{1,2}):([0-5][0-9]) (AM|PM)$`)

// ParseDate parses a calendar day into UTC midnight. Anything that is
// not an exact "YYYY-MM-DD" is rejected rather than guessed at.
func ParseDate(value string) (time.Time, error) {
	day, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, apperrors.InvalidInput(fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", value))
	}
	return day.UTC(), nil
}

// ParseTimeSlot combines a day with a 12-hour clock time into the exact
// UTC timestamp that identifies a slot. Malformed input never resolves
// to a default time; it fails.
func ParseTimeSlot(day time.Time, value string) (time.Time, error) {
	matches := timeSlotPattern.FindStringSubmatch(value)
	if matches == nil {
		return time.Time{}, apperrors.InvalidInput(fmt.Sprintf("invalid time slot %q, expected h:mm AM or h:mm PM", value))
	}

	hour, err := strconv.Atoi(matches[1])
	if err != nil || hour < 1 || hour > 12 {
		return time.Time{}, apperrors.InvalidInput(fmt.Sprintf("invalid time slot %q: hour must be 1-12", value))
	}
	minute, _ := strconv.Atoi(matches[2])

	// 12 AM is midnight, 12 PM is noon.
	if matches[3] == "AM" {
		if hour == 12 {
			hour = 0
		}
	} else if hour != 12 {
		hour += 12
	}

	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, time.UTC), nil
}

// DayRange returns the half-open interval covering one calendar day.
func DayRange(day time.Time) (time.Time, time.Time) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	return start, start.Add(24 * time.Hour)
}
