package edtf

import (
	"testing"
	"unsafe"
)

func TestPackYearRoundTrip(t *testing.T) {
	years := []int32{0, 1, -1, 2019, -2019, 9999, -9999, maxYear, minYear}
	masks := []yearMask{yearMaskNone, yearMaskOneDigit, yearMaskTwoDigits}
	certs := []Certainty{Certain, Uncertain, Approximate, ApproximateUncertain}

	for _, year := range years {
		for _, mask := range masks {
			for _, cert := range certs {
				flags := yearFlags{certainty: cert, mask: mask}
				p, ok := packYear(year, flags)
				if !ok {
					t.Fatalf("packYear(%d, %+v) failed for in-range year", year, flags)
				}
				gotYear, gotFlags := p.unpack()
				if gotYear != year || gotFlags != flags {
					t.Errorf("unpack(pack(%d, %+v)) = (%d, %+v)", year, flags, gotYear, gotFlags)
				}
			}
		}
	}
}

func TestPackYearOutOfRange(t *testing.T) {
	for _, year := range []int32{maxYear + 1, minYear - 1} {
		if _, ok := packYear(year, yearFlags{}); ok {
			t.Errorf("packYear(%d) should fail", year)
		}
	}
}

func TestPackDMRoundTrip(t *testing.T) {
	for value := uint8(1); value <= maxDM; value++ {
		for _, mask := range []dmMask{dmMaskNone, dmMaskUnspecified} {
			for _, cert := range []Certainty{Certain, Uncertain, Approximate, ApproximateUncertain} {
				flags := dmFlags{certainty: cert, mask: mask}
				p, ok := packDM(value, flags)
				if !ok {
					t.Fatalf("packDM(%d, %+v) failed for in-range value", value, flags)
				}
				if p.v == 0 {
					t.Fatalf("packDM(%d, %+v) produced the zero byte", value, flags)
				}
				gotValue, gotFlags := p.unpack()
				if gotValue != value || gotFlags != flags {
					t.Errorf("unpack(pack(%d, %+v)) = (%d, %+v)", value, flags, gotValue, gotFlags)
				}
			}
		}
	}
}

func TestPackDMOutOfRange(t *testing.T) {
	for _, value := range []uint8{0, maxDM + 1, 255} {
		if _, ok := packDM(value, dmFlags{}); ok {
			t.Errorf("packDM(%d) should fail", value)
		}
	}
}

func TestDateFitsInEightBytes(t *testing.T) {
	if size := unsafe.Sizeof(Date{}); size > 8 {
		t.Errorf("Date is %d bytes, want at most 8", size)
	}
}

func TestAbsentComponentIsZeroByte(t *testing.T) {
	d, err := ParseDate("2019")
	if err != nil {
		t.Fatal(err)
	}
	if d.month.present() || d.day.present() {
		t.Errorf("year-only date has present components: %+v", d)
	}
	if d.month.v != 0 || d.day.v != 0 {
		t.Errorf("absent components should be the zero byte: %+v", d)
	}
}
