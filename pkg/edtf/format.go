package edtf

import (
	"fmt"
	"strings"
)

// Formatting is the inverse of parsing: for any parsed value, String
// returns exactly the text it was parsed from.

// formatYear writes a year with at least four digits. Go's %04d counts the
// sign towards the width, so the sign is handled separately.
func formatYear(y int32) string {
	if y < 0 {
		return fmt.Sprintf("-%04d", -int64(y))
	}
	return fmt.Sprintf("%04d", y)
}

// formatYearMasked writes a year field with its masked trailing digits.
func formatYearMasked(y int32, mask yearMask) string {
	switch mask {
	case yearMaskOneDigit:
		v := y / 10
		if v < 0 {
			return fmt.Sprintf("-%03dX", -int64(v))
		}
		return fmt.Sprintf("%03dX", v)
	case yearMaskTwoDigits:
		v := y / 100
		if v < 0 {
			return fmt.Sprintf("-%02dXX", -int64(v))
		}
		return fmt.Sprintf("%02dXX", v)
	default:
		return formatYear(y)
	}
}

func (p packedDM) format() string {
	v, flags := p.unpack()
	if flags.isMasked() {
		return "XX"
	}
	return fmt.Sprintf("%02d", v)
}

// String renders the date as written: "2019", "201X", "2019-XX-XX",
// "2019-07-09%".
func (d Date) String() string {
	var b strings.Builder
	year, yflags := d.year.unpack()
	b.WriteString(formatYearMasked(year, yflags.mask))
	if d.month.present() {
		b.WriteByte('-')
		b.WriteString(d.month.format())
		if d.day.present() {
			b.WriteByte('-')
			b.WriteString(d.day.format())
		}
	}
	b.WriteString(d.certainty.String())
	return b.String()
}

// String renders the time of day with its offset suffix, like "23:59:60Z".
func (t Time) String() string {
	return fmt.Sprintf("%02d:%02d:%02d%s", t.hh, t.mm, t.ss, t.tz)
}

// String renders the full timestamp, like "2019-07-15T01:56:00Z".
func (dt DateTime) String() string {
	return fmt.Sprintf("%sT%s", dt.date, dt.time)
}

// String renders the scientific year: the four-digit significant-digits
// form when that is what was written, otherwise the "Y" form.
func (y YYear) String() string {
	if !y.hasExp && y.hasSig && inside9999(y.mantissa) {
		return fmt.Sprintf("%sS%d", formatYear(int32(y.mantissa)), y.sig)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Y%d", y.mantissa)
	if y.hasExp {
		fmt.Fprintf(&b, "E%d", y.exponent)
	}
	if y.hasSig {
		fmt.Fprintf(&b, "S%d", y.sig)
	}
	return b.String()
}

// String renders the value as EDTF text. Parsing the result gives back an
// equal value; for parsed values the text is byte-identical to the input.
func (e Edtf) String() string {
	switch e.kind {
	case KindDate:
		return e.from.String()
	case KindDateTime:
		return e.dt.String()
	case KindYYear:
		return e.yy.String()
	case KindInterval:
		return fmt.Sprintf("%s/%s", e.from, e.to)
	case KindIntervalFrom:
		return fmt.Sprintf("%s/%s", e.from, e.term)
	case KindIntervalTo:
		return fmt.Sprintf("%s/%s", e.term, e.to)
	default:
		return ""
	}
}
