package edtf

import "math"

// Certainty qualifies a whole date: no marker, "?", "~" or "%".
type Certainty uint8

const (
	// Certain has no marker.
	Certain Certainty = 0b00
	// Uncertain is written "?".
	Uncertain Certainty = 0b01
	// Approximate is written "~".
	Approximate Certainty = 0b10
	// ApproximateUncertain is written "%".
	ApproximateUncertain Certainty = 0b11
)

// String returns the marker as written in EDTF: "" for Certain.
func (c Certainty) String() string {
	switch c {
	case Uncertain:
		return "?"
	case Approximate:
		return "~"
	case ApproximateUncertain:
		return "%"
	default:
		return ""
	}
}

// yearMask is the number of masked trailing digits in a year: "2019",
// "201X", "20XX".
type yearMask uint8

const (
	yearMaskNone      yearMask = 0b00
	yearMaskOneDigit  yearMask = 0b01
	yearMaskTwoDigits yearMask = 0b10
)

// dmMask marks a day or month component as fully unspecified ("XX").
type dmMask uint8

const (
	dmMaskNone        dmMask = 0b0
	dmMaskUnspecified dmMask = 0b1
)

// yearFlags are the modifiers carried alongside a year value.
type yearFlags struct {
	certainty Certainty
	mask      yearMask
}

// dmFlags are the modifiers carried alongside a day or month value.
type dmFlags struct {
	certainty Certainty
	mask      dmMask
}

func (f dmFlags) isMasked() bool { return f.mask != dmMaskNone }

// packedYear packs a year and its flags into one int32: the year value
// shifted left four bits, the low four bits holding the 2-bit certainty and
// the 2-bit mask. Construct only through packYear.
type packedYear struct {
	v int32
}

// The year range representable once four flag bits are reserved.
const (
	maxYear = math.MaxInt32 >> 4
	minYear = math.MinInt32 >> 4
)

// yearInRange reports whether a year fits the packed representation.
func yearInRange(year int32) bool {
	return year >= minYear && year <= maxYear
}

func packYear(year int32, flags yearFlags) (packedYear, bool) {
	if !yearInRange(year) {
		return packedYear{}, false
	}
	v := year<<4 | int32(flags.mask)<<2 | int32(flags.certainty)
	return packedYear{v}, true
}

func (p packedYear) unpack() (int32, yearFlags) {
	// arithmetic shift keeps the sign
	year := p.v >> 4
	flags := yearFlags{
		certainty: Certainty(p.v & 0b11),
		mask:      yearMask(p.v >> 2 & 0b11),
	}
	return year, flags
}

// packedDM packs a day or month component and its flags into one nonzero
// byte: the value shifted left three bits, the low three bits holding the
// 2-bit certainty and the 1-bit unspecified mask. The zero byte never
// occurs for a packed component, so Date uses it to mean "absent".
// Construct only through packDM.
type packedDM struct {
	v uint8
}

// maxDM is the largest packable component value once three flag bits are
// reserved. Days top out at 31 and months at 24, so nothing legal is lost.
const maxDM = math.MaxUint8 >> 3

func packDM(value uint8, flags dmFlags) (packedDM, bool) {
	if value < 1 || value > maxDM {
		return packedDM{}, false
	}
	v := value<<3 | uint8(flags.mask)<<2 | uint8(flags.certainty)
	return packedDM{v}, true
}

func (p packedDM) unpack() (uint8, dmFlags) {
	value := p.v >> 3
	flags := dmFlags{
		certainty: Certainty(p.v & 0b11),
		mask:      dmMask(p.v >> 2 & 0b1),
	}
	return value, flags
}

// present reports whether a component is there at all: the nonzero
// guarantee means the zero byte is free to encode absence.
func (p packedDM) present() bool { return p.v != 0 }

func (p packedDM) isMasked() bool {
	_, flags := p.unpack()
	return flags.isMasked()
}

// value returns the component value, or false if the component is masked.
func (p packedDM) value() (uint8, bool) {
	v, flags := p.unpack()
	if flags.isMasked() {
		return 0, false
	}
	return v, true
}
