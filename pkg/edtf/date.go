package edtf

import "fmt"

// Date is a single EDTF Level 1 date: a year with optional month and day
// components, each possibly masked, plus a whole-date certainty qualifier.
//
// The representation is packed: a Date fits in eight bytes and is meant to
// be passed by value. Construct one by parsing, or with the DateFrom* /
// NewDate* constructors; a zero Date is not a valid value.
//
// Dates are ordered by their packed representation. That ordering is total
// and consistent, but comparisons involving masked components do not always
// mean much ("2021-XX" sorts before "2021-06-09").
type Date struct {
	year      packedYear
	month     packedDM // zero byte = absent
	day       packedDM // zero byte = absent
	certainty Certainty
}

// ParseDate parses a standalone date. This is a convenience beyond the EDTF
// grammar itself, useful for constructing Edtf values programmatically; it
// accepts none of the interval or datetime forms.
func ParseDate(input string) (Date, error) {
	u, rest, ok := scanDateCertainty(input)
	if !ok || rest != "" {
		return Date{}, ErrInvalid
	}
	return u.validate()
}

// NewDate builds a date from numeric fields. Zero means "component not
// present", so NewDate(2019, 7, 0) is "2019-07"; a day without a month is
// rejected. Month accepts the season slots 21-24 when day is zero. Invalid
// combinations and nonexistent calendar dates return an error.
func NewDate(year int32, month, day int) (Date, error) {
	u, err := unvalidatedFromYMD(year, month, day)
	if err != nil {
		return Date{}, err
	}
	return u.validate()
}

// DateFromYMD is NewDate for compile-time-known-valid input: it panics on
// invalid input.
func DateFromYMD(year int32, month, day int) Date {
	d, err := NewDate(year, month, day)
	if err != nil {
		panic(fmt.Sprintf("edtf: date not valid: %04d-%02d-%02d", year, month, day))
	}
	return d
}

// DateFromYear builds a year-only date like "2021". Panics if out of range.
func DateFromYear(year int32) Date {
	return DateFromYMD(year, 0, 0)
}

// DateFromYM builds a date with no day component, like "2021-04". Panics on
// invalid input.
func DateFromYM(year int32, month int) Date {
	return DateFromYMD(year, month, 0)
}

// DateFromComplete converts a full calendar date.
func DateFromComplete(c DateComplete) Date {
	return DateFromYMD(c.Year(), int(c.Month()), int(c.Day()))
}

// YearInRange reports whether a year is representable. The bound is
// narrower than int32 because four bits of the word carry flags.
func YearInRange(year int32) bool {
	return yearInRange(year)
}

// AndCertainty returns a copy of the date with the given whole-date
// certainty.
func (d Date) AndCertainty(c Certainty) Date {
	d.certainty = c
	return d
}

// Year returns the year. Dates always have one. For masked years this is
// the start of the denoted decade or century ("19XX" yields 1900).
func (d Date) Year() int32 {
	y, _ := d.year.unpack()
	return y
}

// Certainty returns the whole-date certainty qualifier.
func (d Date) Certainty() Certainty {
	return d.certainty
}

// Season returns the season slot, if the month component holds one.
func (d Date) Season() (Season, bool) {
	if !d.month.present() {
		return 0, false
	}
	m, ok := d.month.value()
	if !ok {
		return 0, false
	}
	return seasonFromValue(m)
}

// Month returns the month component. The bool is false when there is none,
// or when the slot holds a season; a masked month ("-XX") is returned as an
// unspecified Component.
func (d Date) Month() (Component, bool) {
	if !d.month.present() {
		return Component{}, false
	}
	v, flags := d.month.unpack()
	if flags.isMasked() {
		return Component{Unspecified: true}, true
	}
	if v < 1 || v > 12 {
		return Component{}, false
	}
	return Component{Value: v}, true
}

// Day returns the day component, masked or not.
func (d Date) Day() (Component, bool) {
	if !d.day.present() {
		return Component{}, false
	}
	v, flags := d.day.unpack()
	if flags.isMasked() {
		return Component{Unspecified: true}, true
	}
	return Component{Value: v}, true
}

// Complete returns the full calendar form of the date, if it has unmasked
// year, month and day and the month is a true calendar month rather than a
// season.
func (d Date) Complete() (DateComplete, bool) {
	year, yflags := d.year.unpack()
	if yflags.mask != yearMaskNone {
		return DateComplete{}, false
	}
	if !d.month.present() || !d.day.present() {
		return DateComplete{}, false
	}
	month, mok := d.month.value()
	day, dok := d.day.value()
	if !mok || !dok || month > 12 {
		return DateComplete{}, false
	}
	return DateComplete{year: year, month: month, day: day}, true
}

// Precision decodes the packed fields into the tagged Precision view. It is
// total for any validly constructed Date.
func (d Date) Precision() Precision {
	y, yflags := d.year.unpack()
	switch {
	case d.month.present() && d.day.present():
		m, mok := d.month.value()
		_, dok := d.day.value()
		switch {
		case !mok && !dok:
			return DayOfYearPrecision(y)
		case mok && !dok:
			return DayOfMonthPrecision(y, m)
		case !mok && dok:
			panic("edtf: date holds a masked month with an unmasked day")
		default:
			dv, _ := d.day.value()
			return DayPrecision(y, m, dv)
		}
	case d.month.present():
		m, ok := d.month.value()
		if !ok {
			return MonthOfYearPrecision(y)
		}
		if m >= 21 && m <= 24 {
			s, _ := seasonFromValue(m)
			return SeasonPrecision(y, s)
		}
		return MonthPrecision(y, m)
	case d.day.present():
		panic("edtf: date holds a day but no month")
	default:
		switch yflags.mask {
		case yearMaskOneDigit:
			return DecadePrecision(y)
		case yearMaskTwoDigits:
			return CenturyPrecision(y)
		default:
			return YearPrecision(y)
		}
	}
}

// PrecisionCertainty returns the precision view together with the
// whole-date certainty, which is the pair most matching code wants.
func (d Date) PrecisionCertainty() (Precision, Certainty) {
	return d.Precision(), d.certainty
}

// compare orders dates by packed representation: year word, then month
// byte, then day byte, then certainty. Absent components (zero bytes) sort
// before present ones.
func (d Date) compare(other Date) int {
	if c := compareInt32(d.year.v, other.year.v); c != 0 {
		return c
	}
	if c := compareUint8(d.month.v, other.month.v); c != 0 {
		return c
	}
	if c := compareUint8(d.day.v, other.day.v); c != 0 {
		return c
	}
	return compareUint8(uint8(d.certainty), uint8(other.certainty))
}

func compareInt32(a, b int32) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func compareUint8(a, b uint8) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Component is a possibly-unspecified month or day component: either a
// value that was written out, or an "XX" mask.
type Component struct {
	// Value is the numeric component; meaningful only when Unspecified is
	// false.
	Value uint8
	// Unspecified marks an "XX" masked component.
	Unspecified bool
}

// Get returns the value and whether one is present.
func (c Component) Get() (uint8, bool) {
	if c.Unspecified {
		return 0, false
	}
	return c.Value, true
}

// String renders the component as it appears inside a date: two digits, or
// "XX" when unspecified.
func (c Component) String() string {
	if c.Unspecified {
		return "XX"
	}
	return fmt.Sprintf("%02d", c.Value)
}
