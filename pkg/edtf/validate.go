package edtf

// pack turns a scanned component into its packed form. Masked components
// carry a placeholder value; nobody reads the value of a masked component.
func (u unvalidatedDM) pack() (packedDM, error) {
	if !u.present {
		return packedDM{}, nil
	}
	if u.masked {
		p, _ := packDM(1, dmFlags{mask: dmMaskUnspecified})
		return p, nil
	}
	p, ok := packDM(u.value, dmFlags{})
	if !ok {
		return packedDM{}, ErrOutOfRange
	}
	return p, nil
}

// unvalidatedFromYMD adapts numeric fields to the scanned shape so the
// numeric constructors share the parser's validation path. Zero means the
// component is not present.
func unvalidatedFromYMD(year int32, month, day int) (unvalidatedDate, error) {
	if month < 0 || month > 255 || day < 0 || day > 255 {
		return unvalidatedDate{}, ErrOutOfRange
	}
	u := unvalidatedDate{year: year}
	if month != 0 {
		u.month = unvalidatedDM{present: true, value: uint8(month)}
	}
	if day != 0 {
		u.day = unvalidatedDM{present: true, value: uint8(day)}
	}
	return u, nil
}

// validate runs the staged checks that make an unvalidated date a Date:
// component packing, day-without-month, the masking whitelist, value
// semantics, and finally year packing.
func (u unvalidatedDate) validate() (Date, error) {
	month, err := u.month.pack()
	if err != nil {
		return Date{}, err
	}
	day, err := u.day.pack()
	if err != nil {
		return Date{}, err
	}

	if u.day.present && !u.month.present {
		return Date{}, ErrOutOfRange
	}

	// Masking is monotonic from the right: a masked year forbids any
	// components, and a masked month forbids an unmasked day.
	yearMasked := u.yearFlags.mask != yearMaskNone
	if yearMasked && u.month.present {
		return Date{}, ErrInvalid
	}
	if u.month.masked && u.day.present && !u.day.masked {
		return Date{}, ErrInvalid
	}

	if u.month.present && !u.month.masked {
		m := u.month.value
		dayUnmasked := u.day.present && !u.day.masked
		switch {
		case m >= 1 && m <= 12:
			if dayUnmasked {
				if err := validCompleteDate(u.year, m, u.day.value); err != nil {
					return Date{}, err
				}
			}
		case m >= 21 && m <= 24:
			// A season never has a day.
			if u.day.present {
				return Date{}, ErrInvalid
			}
		default:
			// Not a month and not a season. A day attached to it is a
			// structural problem, the value alone a range problem.
			if dayUnmasked {
				return Date{}, ErrInvalid
			}
			return Date{}, ErrOutOfRange
		}
	}

	year, ok := packYear(u.year, u.yearFlags)
	if !ok {
		return Date{}, ErrOutOfRange
	}
	return Date{year: year, month: month, day: day, certainty: u.certainty}, nil
}

// validate applies the time-of-day rules: hour 0-23, minute 0-59, and the
// leap second 60 only at 23:59.
func (u unvalidatedTime) validate() (Time, error) {
	if u.hh > 23 || u.mm > 59 || u.ss > 60 {
		return Time{}, ErrOutOfRange
	}
	if u.ss == 60 && !(u.hh == 23 && u.mm == 59) {
		return Time{}, ErrOutOfRange
	}
	if err := validateTzRange(u.tz); err != nil {
		return Time{}, err
	}
	return Time{hh: u.hh, mm: u.mm, ss: u.ss, tz: u.tz}, nil
}

// validateTzRange caps offsets below a day: hours within ±23, minutes
// within ±23:59.
func validateTzRange(tz TzOffset) error {
	switch tz.kind {
	case TzHours:
		if tz.val < -23 || tz.val > 23 {
			return ErrOutOfRange
		}
	case TzMinutes:
		if tz.val < -(23*60+59) || tz.val > 23*60+59 {
			return ErrOutOfRange
		}
	}
	return nil
}

// validate applies the scientific-year rules: the decoded value must fit
// int64, significant digits must be a positive count no larger than the
// value's digit count, and a year with neither exponent nor significant
// digits must lie outside ±9999 (inside that range it is an ordinary date).
func (u unvalidatedYYear) validate() (YYear, error) {
	if u.hasExp && u.exponent == 0 {
		return YYear{}, ErrInvalid
	}
	if u.hasSig && u.sig == 0 {
		return YYear{}, ErrInvalid
	}
	y := YYear{
		mantissa: u.mantissa,
		exponent: u.exponent,
		sig:      u.sig,
		hasExp:   u.hasExp,
		hasSig:   u.hasSig,
	}
	v, ok := y.value()
	if !ok {
		return YYear{}, ErrInvalid
	}
	if u.hasSig && u.sig > base10Digits(v) {
		return YYear{}, ErrInvalid
	}
	if !u.hasExp && !u.hasSig && inside9999(v) {
		return YYear{}, ErrInvalid
	}
	return y, nil
}

// validate assembles the validated Edtf from a parse tree.
func (p parsedEdtf) validate() (Edtf, error) {
	switch p.kind {
	case KindDate:
		d, err := p.from.validate()
		if err != nil {
			return Edtf{}, err
		}
		return EdtfFromDate(d), nil
	case KindDateTime:
		dc, err := NewDateComplete(p.dtYear, int(p.dtMonth), int(p.dtDay))
		if err != nil {
			return Edtf{}, err
		}
		t, err := p.dtTime.validate()
		if err != nil {
			return Edtf{}, err
		}
		return EdtfFromDateTime(DateTime{date: dc, time: t}), nil
	case KindYYear:
		y, err := p.yy.validate()
		if err != nil {
			return Edtf{}, err
		}
		return EdtfFromYYear(y), nil
	case KindInterval:
		from, err := p.from.validate()
		if err != nil {
			return Edtf{}, err
		}
		to, err := p.to.validate()
		if err != nil {
			return Edtf{}, err
		}
		return EdtfFromInterval(from, to), nil
	case KindIntervalFrom:
		from, err := p.from.validate()
		if err != nil {
			return Edtf{}, err
		}
		return EdtfFromIntervalFrom(from, p.term), nil
	case KindIntervalTo:
		to, err := p.to.validate()
		if err != nil {
			return Edtf{}, err
		}
		return EdtfFromIntervalTo(p.term, to), nil
	default:
		return Edtf{}, ErrInvalid
	}
}
