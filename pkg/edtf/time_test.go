package edtf

import (
	"errors"
	"testing"
	"time"
)

func TestDateTimeAccessors(t *testing.T) {
	e := mustParse(t, "2004-02-29T13:47:09+05:30")
	dt, ok := e.AsDateTime()
	if !ok {
		t.Fatal("not a datetime")
	}
	if dt.Date() != DateCompleteFromYMD(2004, 2, 29) {
		t.Errorf("Date() = %v", dt.Date())
	}
	tm := dt.Time()
	if tm.Hour() != 13 || tm.Minute() != 47 || tm.Second() != 9 {
		t.Errorf("Time() = %02d:%02d:%02d", tm.Hour(), tm.Minute(), tm.Second())
	}
	secs, ok := tm.Offset().Seconds()
	if !ok || secs != (5*60+30)*60 {
		t.Errorf("offset seconds = (%d, %v)", secs, ok)
	}
}

func TestTzOffsetSeconds(t *testing.T) {
	tests := []struct {
		tz   TzOffset
		secs int32
		ok   bool
	}{
		{TzOffset{}, 0, false},
		{TzOffsetUTC(), 0, true},
		{TzOffsetHours(5), 5 * 3600, true},
		{TzOffsetHours(-8), -8 * 3600, true},
		{TzOffsetMinutes(330), 330 * 60, true},
		{TzOffsetMinutes(-90), -90 * 60, true},
	}
	for _, tc := range tests {
		secs, ok := tc.tz.Seconds()
		if ok != tc.ok || secs != tc.secs {
			t.Errorf("%v.Seconds() = (%d, %v), want (%d, %v)", tc.tz, secs, ok, tc.secs, tc.ok)
		}
	}
}

func TestAsTimeRoundTrip(t *testing.T) {
	inputs := []string{
		"2004-02-29T13:47:09Z",
		"2004-02-29T13:47:09+05:30",
		"0985-11-01T04:00:00Z",
	}
	for _, input := range inputs {
		dt, ok := mustParse(t, input).AsDateTime()
		if !ok {
			t.Fatalf("Parse(%q) is not a datetime", input)
		}
		got := DateTimeFromTime(dt.AsTime())
		if got.String() != dt.String() {
			t.Errorf("round trip of %q through time.Time = %q", input, got)
		}
	}

	// An hours-only offset survives as the same instant, written with
	// minutes.
	dt, _ := mustParse(t, "2004-02-29T13:47:09-08").AsDateTime()
	got := DateTimeFromTime(dt.AsTime())
	if got.String() != "2004-02-29T13:47:09-08:00" {
		t.Errorf("hours-only offset = %q", got)
	}
	if !got.AsTime().Equal(dt.AsTime()) {
		t.Error("instant changed through time.Time round trip")
	}
}

func TestAsTimeOffsetConversion(t *testing.T) {
	dt, _ := mustParse(t, "2010-08-12T23:50:00-01:00").AsDateTime()
	u := dt.AsTime().UTC()
	if u.Year() != 2010 || u.Month() != time.August || u.Day() != 13 {
		t.Errorf("UTC date = %v", u)
	}
	if u.Hour() != 0 || u.Minute() != 50 {
		t.Errorf("UTC time = %v", u)
	}
}

func TestDateTimeFromTime(t *testing.T) {
	loc := time.FixedZone("", 3600)
	dt := DateTimeFromTime(time.Date(2019, time.July, 9, 8, 30, 0, 0, loc))
	if dt.String() != "2019-07-09T08:30:00+01:00" {
		t.Errorf("DateTimeFromTime = %q", dt)
	}

	dt = DateTimeFromTime(time.Date(2019, time.July, 9, 8, 30, 0, 0, time.UTC))
	if dt.String() != "2019-07-09T08:30:00Z" {
		t.Errorf("DateTimeFromTime UTC = %q", dt)
	}
}

func TestDateCompleteAsTime(t *testing.T) {
	c := DateCompleteFromYMD(2019, 7, 9)
	got := c.AsTime()
	want := time.Date(2019, time.July, 9, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("AsTime() = %v, want %v", got, want)
	}
	if DateCompleteFromTime(got) != c {
		t.Errorf("DateCompleteFromTime(%v) != %v", got, c)
	}
}

func TestNewDateTimeValidation(t *testing.T) {
	date := DateCompleteFromYMD(2019, 7, 9)
	if _, err := NewDateTime(date, 24, 0, 0, TzOffsetUTC()); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("hour 24 = %v, want ErrOutOfRange", err)
	}
	if _, err := NewDateTime(date, 23, 59, 60, TzOffsetUTC()); err != nil {
		t.Errorf("leap second: %v", err)
	}
	if _, err := NewDateTime(date, 12, 0, 60, TzOffsetUTC()); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("second 60 at noon = %v, want ErrOutOfRange", err)
	}
	if _, err := NewDateTime(date, 12, 0, 0, TzOffsetHours(24)); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("offset +24h = %v, want ErrOutOfRange", err)
	}
	if _, err := NewDateTime(date, 12, 0, 0, TzOffsetMinutes(1440)); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("offset 1440m = %v, want ErrOutOfRange", err)
	}
}
