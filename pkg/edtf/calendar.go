package edtf

// Proleptic Gregorian day counts per month, common and leap years.
var (
	monthDaycount     = [12]uint8{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}
	monthDaycountLeap = [12]uint8{31, 29, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}
)

// IsLeapYear reports whether year is a leap year under the proleptic
// Gregorian rule, which extends to zero and negative years: -400 is a leap
// year, -100 is not.
func IsLeapYear(year int32) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// daysInMonth returns the day count of a calendar month (1-12) in a year.
func daysInMonth(year int32, month uint8) uint8 {
	if IsLeapYear(year) {
		return monthDaycountLeap[month-1]
	}
	return monthDaycount[month-1]
}

// validCompleteDate checks a full year-month-day triple against the
// calendar.
func validCompleteDate(year int32, month, day uint8) error {
	if month < 1 || month > 12 {
		return ErrOutOfRange
	}
	if day < 1 || day > daysInMonth(year, month) {
		return ErrOutOfRange
	}
	return nil
}

// beginningOfCentury rounds a year towards negative infinity to a multiple
// of 100.
func beginningOfCentury(year int32) int32 {
	return year - floorMod(year, 100)
}

// beginningOfDecade rounds a year towards negative infinity to a multiple
// of 10.
func beginningOfDecade(year int32) int32 {
	return year - floorMod(year, 10)
}

// floorMod is the Euclidean remainder: always in [0, m) for positive m.
func floorMod(x, m int32) int32 {
	r := x % m
	if r < 0 {
		r += m
	}
	return r
}

func inside9999(n int64) bool {
	return n >= -9999 && n <= 9999
}
