package weather

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// dateRegex matches a YYYY-MM-DD date string and captures the year,
// month, and day.
var dateRegex = regexp.MustCompile(`^([12]\d{3})-(0[1-9]|1[0-2])-(0[1-9]|[12]\d|3[01])$`)

// yearRegex matches a four digit year.
var yearRegex = regexp.MustCompile(`^[12]\d{3}$`)

const (
	// DateRangeLength is the exact length of a date range string,
	// YYYY-MM-DD|YYYY-MM-DD.
	DateRangeLength = 21

	// YearRangeLength is the exact length of a year range string,
	// YYYY|YYYY.
	YearRangeLength = 9
)

var (
	ErrMalformedDate      = errors.New("malformed date, expected YYYY-MM-DD")
	ErrMalformedDateRange = errors.New("malformed date range, expected YYYY-MM-DD|YYYY-MM-DD with start <= end")
	ErrMalformedYearRange = errors.New("malformed year range, expected YYYY|YYYY with start <= end")
)

// DateToUnix converts a YYYY-MM-DD date string to Unix seconds at
// 00:00:00 UTC of that day. It reports false when the string does not
// match the format or names an impossible calendar date.
func DateToUnix(date string) (int64, bool) {
	m := dateRegex.FindStringSubmatch(date)
	if m == nil {
		return 0, false
	}

	// The regex guarantees these parse.
	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	day, _ := strconv.Atoi(m[3])

	return UnixForDay(year, time.Month(month), day)
}

// UnixToDate converts a day-truncated Unix timestamp back to its
// YYYY-MM-DD string.
func UnixToDate(unixSec int64) string {
	return time.Unix(unixSec, 0).UTC().Format("2006-01-02")
}

// UnixForDay returns the Unix timestamp for 00:00:00 UTC of the given
// calendar day. It reports false when the combination is not a real
// date, e.g. February 29th of a non-leap year.
func UnixForDay(year int, month time.Month, day int) (int64, bool) {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes out-of-range days instead of failing, so an
	// impossible date shows up as a different day after the round trip.
	if t.Year() != year || t.Month() != month || t.Day() != day {
		return 0, false
	}
	return t.Unix(), true
}

// DateRange is an inclusive range of calendar days, held as
// day-truncated Unix timestamps with Begin <= End.
type DateRange struct {
	Begin int64
	End   int64
}

// ParseDateRange parses a YYYY-MM-DD|YYYY-MM-DD string. The string must
// be exactly DateRangeLength characters, both halves must be valid
// dates, and the first date must not be after the second.
func ParseDateRange(s string) (DateRange, error) {
	if len(s) != DateRangeLength || s[10] != '|' {
		return DateRange{}, fmt.Errorf("%w: %q", ErrMalformedDateRange, s)
	}

	begin, ok := DateToUnix(s[:10])
	if !ok {
		return DateRange{}, fmt.Errorf("%w: %q", ErrMalformedDateRange, s)
	}
	end, ok := DateToUnix(s[11:])
	if !ok || begin > end {
		return DateRange{}, fmt.Errorf("%w: %q", ErrMalformedDateRange, s)
	}

	return DateRange{Begin: begin, End: end}, nil
}

// String formats the range back into its YYYY-MM-DD|YYYY-MM-DD form.
func (r DateRange) String() string {
	return UnixToDate(r.Begin) + "|" + UnixToDate(r.End)
}

// YearRange is an inclusive range of calendar years with Start <= Finish.
type YearRange struct {
	Start  int
	Finish int
}

// ParseYearRange parses a YYYY|YYYY string. The string must be exactly
// YearRangeLength characters and the first year must not be after the
// second.
func ParseYearRange(s string) (YearRange, error) {
	if len(s) != YearRangeLength {
		return YearRange{}, fmt.Errorf("%w: %q", ErrMalformedYearRange, s)
	}

	parts := strings.SplitN(s, "|", 2)
	if len(parts) != 2 || !yearRegex.MatchString(parts[0]) || !yearRegex.MatchString(parts[1]) {
		return YearRange{}, fmt.Errorf("%w: %q", ErrMalformedYearRange, s)
	}

	start, _ := strconv.Atoi(parts[0])
	finish, _ := strconv.Atoi(parts[1])
	if start > finish {
		return YearRange{}, fmt.Errorf("%w: %q", ErrMalformedYearRange, s)
	}

	return YearRange{Start: start, Finish: finish}, nil
}

// Years returns every year in the range in ascending order.
func (r YearRange) Years() []int {
	years := make([]int, 0, r.Finish-r.Start+1)
	for y := r.Start; y <= r.Finish; y++ {
		years = append(years, y)
	}
	return years
}
