package edtf

import "fmt"

// Season is a month-slot value 21-24 standing for a season. Seasons are
// mutually exclusive with a day component.
type Season uint8

const (
	Spring Season = 21
	Summer Season = 22
	Autumn Season = 23
	Winter Season = 24
)

func seasonFromValue(v uint8) (Season, bool) {
	if v >= 21 && v <= 24 {
		return Season(v), true
	}
	return 0, false
}

// String returns the season name.
func (s Season) String() string {
	switch s {
	case Spring:
		return "Spring"
	case Summer:
		return "Summer"
	case Autumn:
		return "Autumn"
	case Winter:
		return "Winter"
	default:
		return fmt.Sprintf("Season(%d)", uint8(s))
	}
}

// PrecisionKind discriminates the Precision view.
type PrecisionKind uint8

const (
	// PrecisionCentury is "19XX": a year ending in two masked digits.
	PrecisionCentury PrecisionKind = iota + 1
	// PrecisionDecade is "193X": a year ending in one masked digit.
	PrecisionDecade
	// PrecisionYear is a plain year, "1936".
	PrecisionYear
	// PrecisionSeason is a season in a year, "1933-22".
	PrecisionSeason
	// PrecisionMonth is a month in a year, "1936-08".
	PrecisionMonth
	// PrecisionDay is a full date, "1931-08-19".
	PrecisionDay
	// PrecisionMonthOfYear is a masked month in a year, "1931-XX".
	PrecisionMonthOfYear
	// PrecisionDayOfYear is "1931-XX-XX": some day in a year.
	PrecisionDayOfYear
	// PrecisionDayOfMonth is "1931-08-XX": some day in a known month.
	PrecisionDayOfMonth
)

// Precision is a decoded, comparable view of a Date, convenient to switch
// on. It is computed on demand by Date.Precision and never stored. Only the
// fields relevant to Kind are set; masked years are carried as the start of
// their decade or century.
type Precision struct {
	Kind   PrecisionKind
	Year   int32
	Month  uint8  // PrecisionMonth, PrecisionDay, PrecisionDayOfMonth
	Day    uint8  // PrecisionDay
	Season Season // PrecisionSeason
}

// CenturyPrecision denotes "19XX"-style dates; the year is rounded down to
// a multiple of 100.
func CenturyPrecision(year int32) Precision {
	return Precision{Kind: PrecisionCentury, Year: beginningOfCentury(year)}
}

// DecadePrecision denotes "193X"-style dates; the year is rounded down to a
// multiple of 10.
func DecadePrecision(year int32) Precision {
	return Precision{Kind: PrecisionDecade, Year: beginningOfDecade(year)}
}

// YearPrecision denotes a plain year.
func YearPrecision(year int32) Precision {
	return Precision{Kind: PrecisionYear, Year: year}
}

// SeasonPrecision denotes a season within a year.
func SeasonPrecision(year int32, s Season) Precision {
	return Precision{Kind: PrecisionSeason, Year: year, Season: s}
}

// MonthPrecision denotes a month within a year.
func MonthPrecision(year int32, month uint8) Precision {
	return Precision{Kind: PrecisionMonth, Year: year, Month: month}
}

// DayPrecision denotes a full date.
func DayPrecision(year int32, month, day uint8) Precision {
	return Precision{Kind: PrecisionDay, Year: year, Month: month, Day: day}
}

// MonthOfYearPrecision denotes "1931-XX": an unspecified month in a year.
func MonthOfYearPrecision(year int32) Precision {
	return Precision{Kind: PrecisionMonthOfYear, Year: year}
}

// DayOfYearPrecision denotes "1931-XX-XX": an unspecified day in a year.
func DayOfYearPrecision(year int32) Precision {
	return Precision{Kind: PrecisionDayOfYear, Year: year}
}

// DayOfMonthPrecision denotes "1931-08-XX": an unspecified day in a known
// month.
func DayOfMonthPrecision(year int32, month uint8) Precision {
	return Precision{Kind: PrecisionDayOfMonth, Year: year, Month: month}
}

// DateFromPrecision builds the Date a Precision value denotes, with Certain
// certainty. Errors mirror NewDate's.
func DateFromPrecision(p Precision) (Date, error) {
	var u unvalidatedDate
	u.year = p.Year
	switch p.Kind {
	case PrecisionCentury:
		u.year = beginningOfCentury(p.Year)
		u.yearFlags.mask = yearMaskTwoDigits
	case PrecisionDecade:
		u.year = beginningOfDecade(p.Year)
		u.yearFlags.mask = yearMaskOneDigit
	case PrecisionYear:
	case PrecisionSeason:
		u.month = unvalidatedDM{present: true, value: uint8(p.Season)}
	case PrecisionMonth:
		u.month = unvalidatedDM{present: true, value: p.Month}
	case PrecisionDay:
		u.month = unvalidatedDM{present: true, value: p.Month}
		u.day = unvalidatedDM{present: true, value: p.Day}
	case PrecisionMonthOfYear:
		u.month = unvalidatedDM{present: true, masked: true}
	case PrecisionDayOfMonth:
		u.month = unvalidatedDM{present: true, value: p.Month}
		u.day = unvalidatedDM{present: true, masked: true}
	case PrecisionDayOfYear:
		u.month = unvalidatedDM{present: true, masked: true}
		u.day = unvalidatedDM{present: true, masked: true}
	default:
		return Date{}, ErrInvalid
	}
	return u.validate()
}

// MustDateFromPrecision is DateFromPrecision for compile-time-known-valid
// input: it panics on error.
func MustDateFromPrecision(p Precision) Date {
	d, err := DateFromPrecision(p)
	if err != nil {
		panic(fmt.Sprintf("edtf: values out of range in precision %+v", p))
	}
	return d
}
