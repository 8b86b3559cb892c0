package edtf

import "strings"

// The parser is split from validation: scanners below recognize the Level 1
// surface grammar and produce unvalidated intermediate values, and
// validate.go decides whether those values denote legal dates. Alternatives
// are tried in a fixed order and each must consume the whole input.

// unvalidatedDM is a scanned month or day component before validation.
type unvalidatedDM struct {
	present bool
	masked  bool
	value   uint8
}

// unvalidatedDate is a scanned date before validation.
type unvalidatedDate struct {
	year      int32
	yearFlags yearFlags
	month     unvalidatedDM
	day       unvalidatedDM
	certainty Certainty
}

// unvalidatedTime is a scanned time of day before validation.
type unvalidatedTime struct {
	hh, mm, ss uint8
	tz         TzOffset
}

// unvalidatedYYear is a scanned scientific year before validation.
type unvalidatedYYear struct {
	mantissa int64
	exponent uint16
	sig      uint16
	hasExp   bool
	hasSig   bool
}

// parsedEdtf is the output of the grammar pass, before validation.
type parsedEdtf struct {
	kind EdtfKind
	from unvalidatedDate
	to   unvalidatedDate
	term Terminal

	// KindDateTime only
	dtYear  int32
	dtMonth uint8
	dtDay   uint8
	dtTime  unvalidatedTime

	yy unvalidatedYYear
}

// parseLevel1 recognizes the Level 1 grammar. Alternatives are tried in
// order: scientific year, single date, datetime, then the interval forms.
func parseLevel1(input string) (parsedEdtf, error) {
	if yy, rest, ok := scanScientific(input); ok && rest == "" {
		return parsedEdtf{kind: KindYYear, yy: yy}, nil
	}
	if d, rest, ok := scanDateCertainty(input); ok {
		switch {
		case rest == "":
			return parsedEdtf{kind: KindDate, from: d}, nil
		case strings.HasPrefix(rest, "/"):
			right := rest[1:]
			if to, r2, ok := scanDateCertainty(right); ok && r2 == "" {
				return parsedEdtf{kind: KindInterval, from: d, to: to}, nil
			}
			switch right {
			case "":
				return parsedEdtf{kind: KindIntervalFrom, from: d, term: TerminalUnknown}, nil
			case "..":
				return parsedEdtf{kind: KindIntervalFrom, from: d, term: TerminalOpen}, nil
			}
		}
	}
	if p, ok := scanDateTime(input); ok {
		return p, nil
	}
	if rest, found := strings.CutPrefix(input, "../"); found {
		if to, r2, ok := scanDateCertainty(rest); ok && r2 == "" {
			return parsedEdtf{kind: KindIntervalTo, term: TerminalOpen, to: to}, nil
		}
	}
	if rest, found := strings.CutPrefix(input, "/"); found {
		if to, r2, ok := scanDateCertainty(rest); ok && r2 == "" {
			return parsedEdtf{kind: KindIntervalTo, term: TerminalUnknown, to: to}, nil
		}
	}
	return parsedEdtf{}, ErrInvalid
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// scanDigits consumes exactly n ASCII digits and returns their value.
func scanDigits(s string, n int) (int64, string, bool) {
	if len(s) < n {
		return 0, s, false
	}
	var v int64
	for i := 0; i < n; i++ {
		if !isDigit(s[i]) {
			return 0, s, false
		}
		v = v*10 + int64(s[i]-'0')
	}
	return v, s[n:], true
}

// scanDigitsVar consumes one or more ASCII digits, refusing leading zeros
// (which could not be written back) and more than 18 digits (which could
// overflow int64).
func scanDigitsVar(s string) (int64, string, bool) {
	n := 0
	for n < len(s) && isDigit(s[n]) {
		n++
	}
	if n == 0 || n > 18 {
		return 0, s, false
	}
	if n > 1 && s[0] == '0' {
		return 0, s, false
	}
	v, rest, _ := scanDigits(s, n)
	return v, rest, true
}

// scanYearMaybeMask recognizes the four-character year field with an
// optional leading sign: "2019", "201X", "20XX". A single masked digit
// yields the start of the decade, two the start of the century. Negative
// zero years are rejected here so every parsed year formats back to itself.
func scanYearMaybeMask(s string) (int32, yearMask, string, bool) {
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	if len(s) < 4 {
		return 0, 0, s, false
	}
	var year int64
	var mask yearMask
	switch {
	case isDigit(s[0]) && isDigit(s[1]) && isDigit(s[2]) && isDigit(s[3]):
		year, _, _ = scanDigits(s, 4)
	case isDigit(s[0]) && isDigit(s[1]) && isDigit(s[2]) && s[3] == 'X':
		year, _, _ = scanDigits(s, 3)
		year *= 10
		mask = yearMaskOneDigit
	case isDigit(s[0]) && isDigit(s[1]) && s[2] == 'X' && s[3] == 'X':
		year, _, _ = scanDigits(s, 2)
		year *= 100
		mask = yearMaskTwoDigits
	default:
		return 0, 0, s, false
	}
	if neg {
		if year == 0 {
			return 0, 0, s, false
		}
		year = -year
	}
	return int32(year), mask, s[4:], true
}

// scanTwoDigitsMaybeMask recognizes a month or day field: two digits or the
// fully masked "XX". Partial masks like "1X" are not part of Level 1.
func scanTwoDigitsMaybeMask(s string) (unvalidatedDM, string, bool) {
	if strings.HasPrefix(s, "XX") {
		return unvalidatedDM{present: true, masked: true}, s[2:], true
	}
	if v, rest, ok := scanDigits(s, 2); ok {
		return unvalidatedDM{present: true, value: uint8(v)}, rest, true
	}
	return unvalidatedDM{}, s, false
}

// scanCertainty consumes a trailing certainty marker if one is next.
func scanCertainty(s string) (Certainty, string) {
	if len(s) == 0 {
		return Certain, s
	}
	switch s[0] {
	case '?':
		return Uncertain, s[1:]
	case '~':
		return Approximate, s[1:]
	case '%':
		return ApproximateUncertain, s[1:]
	default:
		return Certain, s
	}
}

// scanDateCertainty recognizes year["-"month["-"day]] followed by an
// optional certainty marker. Whether the combination of masks is legal is
// validation's problem, not the scanner's.
func scanDateCertainty(s string) (unvalidatedDate, string, bool) {
	year, ymask, rest, ok := scanYearMaybeMask(s)
	if !ok {
		return unvalidatedDate{}, s, false
	}
	u := unvalidatedDate{year: year, yearFlags: yearFlags{mask: ymask}}
	if r, found := strings.CutPrefix(rest, "-"); found {
		if m, r2, ok := scanTwoDigitsMaybeMask(r); ok {
			u.month = m
			rest = r2
			if r3, found := strings.CutPrefix(rest, "-"); found {
				if d, r4, ok := scanTwoDigitsMaybeMask(r3); ok {
					u.day = d
					rest = r4
				}
			}
		}
	}
	u.certainty, rest = scanCertainty(rest)
	return u, rest, true
}

// scanDateComplete recognizes a strict "[-]YYYY-MM-DD" with no masks and no
// certainty, the date half of a timestamp.
func scanDateComplete(s string) (year int32, month, day uint8, rest string, ok bool) {
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	y, s, ok := scanDigits(s, 4)
	if !ok {
		return 0, 0, 0, s, false
	}
	if neg {
		if y == 0 {
			return 0, 0, 0, s, false
		}
		y = -y
	}
	s, found := strings.CutPrefix(s, "-")
	if !found {
		return 0, 0, 0, s, false
	}
	m, s, ok := scanDigits(s, 2)
	if !ok {
		return 0, 0, 0, s, false
	}
	s, found = strings.CutPrefix(s, "-")
	if !found {
		return 0, 0, 0, s, false
	}
	d, s, ok := scanDigits(s, 2)
	if !ok {
		return 0, 0, 0, s, false
	}
	return int32(y), uint8(m), uint8(d), s, true
}

// scanDateTime recognizes a full timestamp and returns it as a parsedEdtf,
// consuming the whole input.
func scanDateTime(s string) (parsedEdtf, bool) {
	year, month, day, rest, ok := scanDateComplete(s)
	if !ok {
		return parsedEdtf{}, false
	}
	rest, found := strings.CutPrefix(rest, "T")
	if !found {
		return parsedEdtf{}, false
	}
	tm, rest, ok := scanTime(rest)
	if !ok || rest != "" {
		return parsedEdtf{}, false
	}
	return parsedEdtf{
		kind:    KindDateTime,
		dtYear:  year,
		dtMonth: uint8(month),
		dtDay:   uint8(day),
		dtTime:  tm,
	}, true
}

// scanTime recognizes "HH:MM:SS" plus an optional timezone suffix.
func scanTime(s string) (unvalidatedTime, string, bool) {
	hh, s, ok := scanDigits(s, 2)
	if !ok {
		return unvalidatedTime{}, s, false
	}
	s, found := strings.CutPrefix(s, ":")
	if !found {
		return unvalidatedTime{}, s, false
	}
	mm, s, ok := scanDigits(s, 2)
	if !ok {
		return unvalidatedTime{}, s, false
	}
	s, found = strings.CutPrefix(s, ":")
	if !found {
		return unvalidatedTime{}, s, false
	}
	ss, s, ok := scanDigits(s, 2)
	if !ok {
		return unvalidatedTime{}, s, false
	}
	tz, s, ok := scanTzOffset(s)
	if !ok {
		return unvalidatedTime{}, s, false
	}
	return unvalidatedTime{hh: uint8(hh), mm: uint8(mm), ss: uint8(ss), tz: tz}, s, true
}

// scanTzOffset recognizes the timezone suffix: empty, "Z", "±HH" or
// "±HH:MM". The two numeric shapes stay distinct so formatting can write
// back exactly what was read.
func scanTzOffset(s string) (TzOffset, string, bool) {
	if s == "" {
		return TzOffset{}, s, true
	}
	if rest, found := strings.CutPrefix(s, "Z"); found {
		return TzOffsetUTC(), rest, true
	}
	var sign int32
	switch s[0] {
	case '+':
		sign = 1
	case '-':
		sign = -1
	default:
		return TzOffset{}, s, false
	}
	hh, rest, ok := scanDigits(s[1:], 2)
	if !ok {
		return TzOffset{}, s, false
	}
	r2, found := strings.CutPrefix(rest, ":")
	if !found {
		return TzOffsetHours(sign * int32(hh)), rest, true
	}
	mm, r3, ok := scanDigits(r2, 2)
	if !ok {
		return TzOffset{}, s, false
	}
	return TzOffsetMinutes(sign * (int32(hh)*60 + int32(mm))), r3, true
}

// scanScientific recognizes the scientific-year forms: "Y" years with at
// least five digits or an exponent, optionally with significant digits, and
// the four-digit "1950S2" form.
func scanScientific(s string) (unvalidatedYYear, string, bool) {
	if rest, found := strings.CutPrefix(s, "Y"); found {
		return scanYForm(rest)
	}
	return scanFourDigitSig(s)
}

func scanYForm(s string) (unvalidatedYYear, string, bool) {
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	start := len(s)
	mantissa, s, ok := scanDigitsVar(s)
	if !ok {
		return unvalidatedYYear{}, s, false
	}
	digits := start - len(s)
	if neg {
		if mantissa == 0 {
			return unvalidatedYYear{}, s, false
		}
		mantissa = -mantissa
	}
	u := unvalidatedYYear{mantissa: mantissa}
	if rest, found := strings.CutPrefix(s, "E"); found {
		exp, r2, ok := scanDigitsVar(rest)
		if !ok || exp > 1<<16-1 {
			return unvalidatedYYear{}, s, false
		}
		u.exponent = uint16(exp)
		u.hasExp = true
		s = r2
	} else if digits < 5 {
		// A plain "Y" year needs at least five digits; shorter years are
		// ordinary dates.
		return unvalidatedYYear{}, s, false
	}
	if rest, found := strings.CutPrefix(s, "S"); found {
		sig, r2, ok := scanDigitsVar(rest)
		if !ok || sig > 1<<16-1 {
			return unvalidatedYYear{}, s, false
		}
		u.sig = uint16(sig)
		u.hasSig = true
		s = r2
	}
	return u, s, true
}

func scanFourDigitSig(s string) (unvalidatedYYear, string, bool) {
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	mantissa, s, ok := scanDigits(s, 4)
	if !ok {
		return unvalidatedYYear{}, s, false
	}
	if neg {
		if mantissa == 0 {
			return unvalidatedYYear{}, s, false
		}
		mantissa = -mantissa
	}
	rest, found := strings.CutPrefix(s, "S")
	if !found {
		return unvalidatedYYear{}, s, false
	}
	sig, r2, ok := scanDigitsVar(rest)
	if !ok || sig > 1<<16-1 {
		return unvalidatedYYear{}, s, false
	}
	return unvalidatedYYear{mantissa: mantissa, sig: uint16(sig), hasSig: true}, r2, true
}
