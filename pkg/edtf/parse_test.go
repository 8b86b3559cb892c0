package edtf

import (
	"errors"
	"testing"
)

func mustParse(t *testing.T, input string) Edtf {
	t.Helper()
	v, err := Parse(input)
	if err != nil {
		t.Fatalf("Parse(%q): %v", input, err)
	}
	return v
}

func TestParseKinds(t *testing.T) {
	tests := []struct {
		input string
		kind  EdtfKind
	}{
		{"2019", KindDate},
		{"2019-08-17", KindDate},
		{"2019-XX", KindDate},
		{"201X", KindDate},
		{"1984?", KindDate},
		{"2019-08-17T23:59:30Z", KindDateTime},
		{"Y170000002", KindYYear},
		{"Y17E7S3", KindYYear},
		{"1950S2", KindYYear},
		{"1964/2008", KindInterval},
		{"2004-06/2006-08", KindInterval},
		{"2019/..", KindIntervalFrom},
		{"2019/", KindIntervalFrom},
		{"../2019", KindIntervalTo},
		{"/2019", KindIntervalTo},
	}
	for _, tc := range tests {
		v := mustParse(t, tc.input)
		if v.Kind() != tc.kind {
			t.Errorf("Parse(%q).Kind() = %v, want %v", tc.input, v.Kind(), tc.kind)
		}
	}
}

func TestParseBasicDate(t *testing.T) {
	v := mustParse(t, "1985-04-12")
	d, ok := v.AsDate()
	if !ok {
		t.Fatal("not a date")
	}
	c, ok := d.Complete()
	if !ok {
		t.Fatal("not complete")
	}
	year, month, day := c.YMD()
	if year != 1985 || month != 4 || day != 12 {
		t.Errorf("got %d-%d-%d", year, month, day)
	}
	if v.String() != "1985-04-12" {
		t.Errorf("String() = %q", v)
	}
}

func TestParseIntervalTerminals(t *testing.T) {
	from, term, ok := mustParse(t, "2019/..").AsIntervalFrom()
	if !ok || term != TerminalOpen || from.Year() != 2019 {
		t.Errorf("AsIntervalFrom(2019/..) = (%v, %v, %v)", from, term, ok)
	}

	term, to, ok := mustParse(t, "/2019").AsIntervalTo()
	if !ok || term != TerminalUnknown || to.Year() != 2019 {
		t.Errorf("AsIntervalTo(/2019) = (%v, %v, %v)", term, to, ok)
	}

	left, right, ok := mustParse(t, "2019?/2021-08~").Terminals()
	if !ok {
		t.Fatal("Terminals() failed on a closed interval")
	}
	if left.Kind != MatchFixed || left.Certainty != Uncertain || left.Precision != YearPrecision(2019) {
		t.Errorf("left terminal = %+v", left)
	}
	if right.Kind != MatchFixed || right.Certainty != Approximate || right.Precision != MonthPrecision(2021, 8) {
		t.Errorf("right terminal = %+v", right)
	}
}

func TestParseIntervalCertainty(t *testing.T) {
	from, to, ok := mustParse(t, "2020?/2021").AsInterval()
	if !ok {
		t.Fatal("not an interval")
	}
	if from != DateFromYear(2020).AndCertainty(Uncertain) {
		t.Errorf("from = %+v", from)
	}
	if to != DateFromYear(2021) {
		t.Errorf("to = %+v", to)
	}
}

func TestParseRejectsTrailingInput(t *testing.T) {
	inputs := []string{
		"2019 ",
		" 2019",
		"2019-08-17x",
		"2019/2020/2021",
		"2019//2020",
		"../..",   // no date side at all
		"..",      // bare terminal
		"",        // empty
		"2019-8",  // single-digit month
		"2019-008",
		"Y12345extra",
		"2019-08-17T23:59",
		"2019-08-17T23:59:30ZZ",
		"2019-XX-09?trail",
	}
	for _, input := range inputs {
		if _, err := Parse(input); !errors.Is(err, ErrInvalid) {
			t.Errorf("Parse(%q) = %v, want ErrInvalid", input, err)
		}
	}
}

func TestParsePartialMasksRejected(t *testing.T) {
	// Level 1 masks whole components or trailing year digits only.
	inputs := []string{"2019-1X", "2019-X1", "2019-08-1X", "1XXX", "XXXX", "X019"}
	for _, input := range inputs {
		if _, err := Parse(input); !errors.Is(err, ErrInvalid) {
			t.Errorf("Parse(%q) = %v, want ErrInvalid", input, err)
		}
	}
}

func TestParseDateRejectsNonDates(t *testing.T) {
	for _, input := range []string{"2019/2020", "2019-08-17T23:59:30Z", "Y17000"} {
		if _, err := ParseDate(input); !errors.Is(err, ErrInvalid) {
			t.Errorf("ParseDate(%q) = %v, want ErrInvalid", input, err)
		}
	}
}
