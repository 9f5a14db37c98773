package weather

import (
	"testing"
	"time"
)

func TestDateToUnixRoundTrip(t *testing.T) {
	dates := []string{
		"1970-01-01",
		"2016-01-01",
		"2016-02-29",
		"2022-12-31",
		"1999-06-15",
	}

	for _, d := range dates {
		ts, ok := DateToUnix(d)
		if !ok {
			t.Fatalf("DateToUnix(%q) unexpectedly failed", d)
		}
		if got := UnixToDate(ts); got != d {
			t.Errorf("UnixToDate(DateToUnix(%q)) = %q, want %q", d, got, d)
		}
	}
}

func TestDateToUnixTruncatesToDay(t *testing.T) {
	ts, ok := DateToUnix("2022-06-01")
	if !ok {
		t.Fatal("DateToUnix failed for a valid date")
	}
	want := time.Date(2022, time.June, 1, 0, 0, 0, 0, time.UTC).Unix()
	if ts != want {
		t.Errorf("DateToUnix = %d, want %d", ts, want)
	}
}

func TestDateToUnixInvalid(t *testing.T) {
	invalid := []string{
		"",
		"2022-6-1",
		"2022/06/01",
		"06-01-2022",
		"2022-13-01",
		"2022-00-10",
		"2022-01-32",
		"2022-02-30", // matches the regex but is not a real date
		"2023-02-29", // not a leap year
		"2022-01-01x",
	}

	for _, d := range invalid {
		if _, ok := DateToUnix(d); ok {
			t.Errorf("DateToUnix(%q) succeeded, want failure", d)
		}
	}
}

func TestUnixForDayRejectsImpossibleDates(t *testing.T) {
	if _, ok := UnixForDay(2023, time.February, 29); ok {
		t.Error("expected Feb 29 2023 to be rejected")
	}
	if _, ok := UnixForDay(2022, time.April, 31); ok {
		t.Error("expected Apr 31 2022 to be rejected")
	}
	if _, ok := UnixForDay(2024, time.February, 29); !ok {
		t.Error("expected Feb 29 2024 to be accepted")
	}
}

func TestParseDateRange(t *testing.T) {
	r, err := ParseDateRange("2016-01-01|2016-01-10")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	begin, _ := DateToUnix("2016-01-01")
	end, _ := DateToUnix("2016-01-10")
	if r.Begin != begin || r.End != end {
		t.Errorf("ParseDateRange = %+v, want Begin=%d End=%d", r, begin, end)
	}

	if got := r.String(); got != "2016-01-01|2016-01-10" {
		t.Errorf("String() = %q", got)
	}

	// A single-day range is valid.
	if _, err := ParseDateRange("2022-06-01|2022-06-01"); err != nil {
		t.Errorf("single-day range rejected: %v", err)
	}
}

func TestParseDateRangeInvalid(t *testing.T) {
	invalid := []string{
		"",
		"2016-01-01",
		"2016-01-01|2016-1-10",
		"2016-01-01x2016-01-10", // right length, wrong separator
		"2016-01-01|2016-01-100",
		"2016-01-10|2016-01-01", // start after end
		"2016-01-01/2016-01-10",
	}

	for _, s := range invalid {
		if _, err := ParseDateRange(s); err == nil {
			t.Errorf("ParseDateRange(%q) succeeded, want error", s)
		}
	}
}

func TestParseYearRange(t *testing.T) {
	r, err := ParseYearRange("2018|2022")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Start != 2018 || r.Finish != 2022 {
		t.Errorf("ParseYearRange = %+v", r)
	}

	years := r.Years()
	want := []int{2018, 2019, 2020, 2021, 2022}
	if len(years) != len(want) {
		t.Fatalf("Years() = %v, want %v", years, want)
	}
	for i := range want {
		if years[i] != want[i] {
			t.Fatalf("Years() = %v, want %v", years, want)
		}
	}

	// A single-year range is valid.
	if _, err := ParseYearRange("2022|2022"); err != nil {
		t.Errorf("single-year range rejected: %v", err)
	}
}

func TestParseYearRangeInvalid(t *testing.T) {
	invalid := []string{
		"",
		"2018",
		"2018|22",
		"2018-2022",
		"2022|2018", // start after end
		"2018|2022x",
		"018|20222",
	}

	for _, s := range invalid {
		if _, err := ParseYearRange(s); err == nil {
			t.Errorf("ParseYearRange(%q) succeeded, want error", s)
		}
	}
}
