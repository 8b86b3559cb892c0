package edtf

import "fmt"

// YYear is a scientific-notation year: a mantissa with an optional base-10
// exponent and an optional count of significant digits. It covers years of
// large magnitude that the packed Date representation was never meant for:
// "Y170000002", "Y-17E7", "1950S2".
//
// Plain "Y" years must have five or more digits; years inside ±9999 belong
// in a Date instead and are excluded by construction.
type YYear struct {
	mantissa int64
	exponent uint16 // meaningful when hasExp
	sig      uint16 // meaningful when hasSig
	hasExp   bool
	hasSig   bool
}

// NewYYear builds a plain scientific year from a value outside ±9999.
func NewYYear(value int64) (YYear, error) {
	if inside9999(value) {
		return YYear{}, ErrInvalid
	}
	return YYear{mantissa: value}, nil
}

// YYearFromParts builds a year from mantissa, exponent and significant
// digits, with zero meaning "not present" for the latter two; the same
// checks run as for parsed input. It panics on invalid input.
func YYearFromParts(mantissa int64, exponent, sigDigits uint16) YYear {
	u := unvalidatedYYear{
		mantissa: mantissa,
		exponent: exponent,
		sig:      sigDigits,
		hasExp:   exponent != 0,
		hasSig:   sigDigits != 0,
	}
	y, err := u.validate()
	if err != nil {
		panic(fmt.Sprintf("edtf: invalid scientific year Y%dE%dS%d", mantissa, exponent, sigDigits))
	}
	return y
}

// Value returns the denoted year, mantissa × 10^exponent. Validation
// guarantees the multiplication does not overflow.
func (y YYear) Value() int64 {
	v, ok := y.value()
	if !ok {
		panic("edtf: scientific year value overflows int64")
	}
	return v
}

func (y YYear) value() (int64, bool) {
	v := y.mantissa
	if !y.hasExp {
		return v, true
	}
	for i := uint16(0); i < y.exponent; i++ {
		next := v * 10
		if v != 0 && next/10 != v {
			return 0, false
		}
		v = next
	}
	return v, true
}

// Exponent returns the exponent and whether one was written.
func (y YYear) Exponent() (uint16, bool) {
	return y.exponent, y.hasExp
}

// SignificantDigits returns the significant-digit count and whether one was
// written.
func (y YYear) SignificantDigits() (uint16, bool) {
	return y.sig, y.hasSig
}

// Range returns the inclusive range of years covered once significant
// digits are taken into account: "Y171010000S3" means some year in
// 171000000-171999999. Without significant digits the range is the value
// alone.
func (y YYear) Range() (min, max int64) {
	v := y.Value()
	if !y.hasSig || y.sig == 0 {
		return v, v
	}
	ninesWidth := int(base10Digits(v)) - int(y.sig)
	if ninesWidth <= 0 {
		return v, v
	}
	tens := int64(1)
	for i := 0; i < ninesWidth; i++ {
		tens *= 10
	}
	start := v - v%tens
	return start, start + tens - 1
}

// base10Digits counts the decimal digits of n's magnitude; zero has one.
func base10Digits(n int64) uint16 {
	var count uint16
	if n < 0 {
		n = -n
	}
	for n != 0 {
		n /= 10
		count++
	}
	if count == 0 {
		count = 1
	}
	return count
}
