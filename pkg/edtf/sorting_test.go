package edtf

import (
	"sort"
	"testing"
)

// checkOrdered parses the inputs and asserts Compare agrees with the
// given order for every pair, in both directions.
func checkOrdered(t *testing.T, inputs []string) {
	t.Helper()
	vals := make([]Edtf, len(inputs))
	for i, input := range inputs {
		vals[i] = mustParse(t, input)
	}
	for i := range vals {
		for j := range vals {
			want := 0
			if i < j {
				want = -1
			} else if i > j {
				want = 1
			}
			if got := Compare(vals[i], vals[j]); got != want {
				t.Errorf("Compare(%q, %q) = %d, want %d", inputs[i], inputs[j], got, want)
			}
		}
	}
}

func TestCompareSingleDates(t *testing.T) {
	checkOrdered(t, []string{
		"2009",
		"2009-12",
		"2009-12-31",
		"2010",
		"2010-01",
		"2010-01-01",
		"2010-02",
		"2011",
	})
}

func TestCompareIntervalsByStart(t *testing.T) {
	checkOrdered(t, []string{
		"2008/2010",
		"2009",
		"2009/2010",
		"2009/2011",
		"2010",
		"2010/2011",
	})
}

func TestCompareOpenSides(t *testing.T) {
	// An open or unknown left side precedes everything; an open right
	// side extends past everything with the same start.
	checkOrdered(t, []string{
		"../2000",
		"/2010",
		"1999",
		"2009",
		"2009/2011",
		"2009/..",
		"2010",
	})
}

func TestCompareScientificYears(t *testing.T) {
	checkOrdered(t, []string{
		"Y-17E7",
		"Y-170000",
		"1950",
		"Y170000",
		"Y17E7",
	})
}

func TestCompareScientificYearInPackedRange(t *testing.T) {
	// A scientific year small enough to pack compares like the plain year.
	if got := Compare(mustParse(t, "Y17000"), mustParse(t, "2010")); got != 1 {
		t.Errorf("Y17000 vs 2010 = %d, want 1", got)
	}
}

func TestCompareDateTimes(t *testing.T) {
	checkOrdered(t, []string{
		"2010-08-12T10:00:00Z",
		"2010-08-12T11:00:00Z",
		"2010-08-12T11:00:00-05:00",
		"2010-08-13",
		"2010-08-12T23:50:00-01:00",
	})
}

func TestCompareDateTimeEqualsMidnightDate(t *testing.T) {
	a := mustParse(t, "2010-08-12")
	b := mustParse(t, "2010-08-12T00:00:00Z")
	if got := Compare(a, b); got != 0 {
		t.Errorf("date vs midnight datetime = %d, want 0", got)
	}
}

func TestCompareSortsSlice(t *testing.T) {
	inputs := []string{"2010", "1999", "2009/2011", "../2000", "Y-17E7", "2009"}
	vals := make([]Edtf, len(inputs))
	for i, input := range inputs {
		vals[i] = mustParse(t, input)
	}
	sort.Slice(vals, func(i, j int) bool { return Compare(vals[i], vals[j]) < 0 })
	want := []string{"Y-17E7", "../2000", "1999", "2009", "2009/2011", "2010"}
	for i, v := range vals {
		if v.String() != want[i] {
			t.Errorf("sorted[%d] = %q, want %q", i, v, want[i])
		}
	}
}
