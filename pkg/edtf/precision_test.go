package edtf

import (
	"errors"
	"testing"
)

func TestPrecisionDecoding(t *testing.T) {
	tests := []struct {
		input string
		want  Precision
	}{
		{"20XX", CenturyPrecision(2000)},
		{"193X", DecadePrecision(1930)},
		{"1936", YearPrecision(1936)},
		{"1933-22", SeasonPrecision(1933, Summer)},
		{"1936-08", MonthPrecision(1936, 8)},
		{"1931-08-19", DayPrecision(1931, 8, 19)},
		{"2019-XX", MonthOfYearPrecision(2019)},
		{"1931-XX-XX", DayOfYearPrecision(1931)},
		{"1931-08-XX", DayOfMonthPrecision(1931, 8)},
	}
	for _, tc := range tests {
		d := mustParseDate(t, tc.input)
		if got := d.Precision(); got != tc.want {
			t.Errorf("ParseDate(%q).Precision() = %+v, want %+v", tc.input, got, tc.want)
		}
	}
}

func TestDateFromPrecisionRoundTrip(t *testing.T) {
	precisions := []Precision{
		CenturyPrecision(1900),
		DecadePrecision(2010),
		YearPrecision(-43),
		SeasonPrecision(2019, Winter),
		MonthPrecision(2019, 12),
		DayPrecision(2019, 2, 28),
		MonthOfYearPrecision(2019),
		DayOfYearPrecision(2019),
		DayOfMonthPrecision(2019, 7),
	}
	for _, p := range precisions {
		d, err := DateFromPrecision(p)
		if err != nil {
			t.Errorf("DateFromPrecision(%+v): %v", p, err)
			continue
		}
		if got := d.Precision(); got != p {
			t.Errorf("DateFromPrecision(%+v).Precision() = %+v", p, got)
		}
	}
}

func TestDateFromPrecisionRounds(t *testing.T) {
	// Those two constructors round towards the start of the span.
	d, err := DateFromPrecision(CenturyPrecision(2019))
	if err != nil {
		t.Fatal(err)
	}
	if d != mustParseDate(t, "20XX") {
		t.Errorf("CenturyPrecision(2019) built %s", d)
	}

	d, err = DateFromPrecision(DecadePrecision(2019))
	if err != nil {
		t.Fatal(err)
	}
	if d != mustParseDate(t, "201X") {
		t.Errorf("DecadePrecision(2019) built %s", d)
	}
}

func TestDateFromPrecisionInvalid(t *testing.T) {
	if _, err := DateFromPrecision(DayPrecision(2019, 2, 29)); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("nonexistent leap day = %v, want ErrOutOfRange", err)
	}
	if _, err := DateFromPrecision(MonthPrecision(2019, 13)); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("month 13 = %v, want ErrOutOfRange", err)
	}
	if _, err := DateFromPrecision(Precision{}); !errors.Is(err, ErrInvalid) {
		t.Errorf("zero precision = %v, want ErrInvalid", err)
	}
}

func TestComplete(t *testing.T) {
	c, ok := mustParseDate(t, "2019-08-17").Complete()
	if !ok {
		t.Fatal("complete date not recognized")
	}
	if c != DateCompleteFromYMD(2019, 8, 17) {
		t.Errorf("Complete() = %+v", c)
	}

	incomplete := []string{"2019", "2019-08", "2019-XX", "2019-08-XX", "2019-XX-XX", "201X", "2019-22"}
	for _, input := range incomplete {
		if _, ok := mustParseDate(t, input).Complete(); ok {
			t.Errorf("ParseDate(%q).Complete() should be absent", input)
		}
	}
}

func TestComponents(t *testing.T) {
	d := mustParseDate(t, "2019-XX")
	if d.Year() != 2019 {
		t.Errorf("Year() = %d", d.Year())
	}
	m, ok := d.Month()
	if !ok || !m.Unspecified {
		t.Errorf("Month() = (%+v, %v)", m, ok)
	}
	if m.String() != "XX" {
		t.Errorf("Component.String() = %q", m)
	}
	if _, ok := d.Day(); ok {
		t.Error("Day() should be absent")
	}

	d = mustParseDate(t, "2019-07-09")
	m, _ = d.Month()
	day, _ := d.Day()
	if v, ok := m.Get(); !ok || v != 7 {
		t.Errorf("month Get() = (%d, %v)", v, ok)
	}
	if v, ok := day.Get(); !ok || v != 9 {
		t.Errorf("day Get() = (%d, %v)", v, ok)
	}

	if s, ok := mustParseDate(t, "2019-23").Season(); !ok || s != Autumn {
		t.Errorf("Season() = (%v, %v)", s, ok)
	}
}

func TestSeasonNames(t *testing.T) {
	tests := []struct {
		s    Season
		name string
	}{
		{Spring, "Spring"},
		{Summer, "Summer"},
		{Autumn, "Autumn"},
		{Winter, "Winter"},
	}
	for _, tc := range tests {
		if tc.s.String() != tc.name {
			t.Errorf("%d.String() = %q, want %q", tc.s, tc.s, tc.name)
		}
	}
}
