package model

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

// Date layouts used on the wire.
const (
	// DateInputLayout is the layout accepted for dates in requests.
	DateInputLayout = "2006-01-02"
	// DateOutputLayout renders dates as "Mon Jan 01 2024".
	DateOutputLayout = "Mon Jan 02 2006"
)

// ErrInvalidDate is returned when a date string is not a calendar date.
var ErrInvalidDate = errors.New("invalid date")

// Exercise is a single logged activity.
//
// Username is copied from the owning user at creation time and is the only
// link back to it. Duration is nil when the supplied value was not a number.
type Exercise struct {
	ID          string    `json:"_id"`
	Username    string    `json:"username"`
	Description string    `json:"description"`
	Duration    *int      `json:"duration"`
	Date        time.Time `json:"date"`
	CreatedAt   time.Time `json:"-"`
}

// FormattedDate returns the exercise date in the response layout.
func (e *Exercise) FormattedDate() string {
	return FormatDate(e.Date)
}

// DateOf truncates t to midnight UTC of its UTC calendar day.
func DateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a yyyy-mm-dd calendar date.
// Full RFC 3339 timestamps are accepted and truncated to their date.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(DateInputLayout, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return DateOf(t), nil
	}
	return time.Time{}, ErrInvalidDate
}

// FormatDate renders a calendar date as "Mon Jan 02 2006".
func FormatDate(t time.Time) string {
	return DateOf(t).Format(DateOutputLayout)
}

// ParseMinutes reads the leading integer of s, ignoring leading whitespace
// and anything after the digits ("25min" is 25). It returns nil when s does
// not start with a number.
func ParseMinutes(s string) *int {
	s = strings.TrimLeft(s, " \t\n\r")

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return nil
	}

	n, err := strconv.Atoi(s[:end])
	if err != nil {
		// out of range for int
		return nil
	}
	return &n
}
