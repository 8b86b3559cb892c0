package edtf

import "fmt"

// DateComplete is a full calendar date: year, month 1-12 and a day valid
// for that month and year. Values are valid by construction; use it
// wherever full precision is required.
type DateComplete struct {
	year  int32
	month uint8
	day   uint8
}

// NewDateComplete builds a complete date, checking it against the proleptic
// Gregorian calendar.
func NewDateComplete(year int32, month, day int) (DateComplete, error) {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return DateComplete{}, ErrOutOfRange
	}
	m, d := uint8(month), uint8(day)
	if err := validCompleteDate(year, m, d); err != nil {
		return DateComplete{}, err
	}
	return DateComplete{year: year, month: m, day: d}, nil
}

// DateCompleteFromYMD is NewDateComplete for compile-time-known-valid
// input: it panics on invalid input.
func DateCompleteFromYMD(year int32, month, day int) DateComplete {
	c, err := NewDateComplete(year, month, day)
	if err != nil {
		panic(fmt.Sprintf("edtf: date not valid: %04d-%02d-%02d", year, month, day))
	}
	return c
}

// Year returns the year.
func (c DateComplete) Year() int32 { return c.year }

// Month returns the month, 1-12.
func (c DateComplete) Month() uint8 { return c.month }

// Day returns the day of the month.
func (c DateComplete) Day() uint8 { return c.day }

// YMD returns all three fields at once, for handing to calendar libraries.
func (c DateComplete) YMD() (year int32, month, day int) {
	return c.year, int(c.month), int(c.day)
}

// String renders the date as "YYYY-MM-DD".
func (c DateComplete) String() string {
	return fmt.Sprintf("%s-%02d-%02d", formatYear(c.year), c.month, c.day)
}
