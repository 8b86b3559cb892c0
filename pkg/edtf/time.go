package edtf

import (
	"fmt"
	"time"
)

// TzKind discriminates TzOffset.
type TzKind uint8

const (
	// TzUnspecified is a timestamp with no timezone information at all.
	TzUnspecified TzKind = iota
	// TzUTC is a trailing "Z".
	TzUTC
	// TzHours is an hours-only offset like "+04".
	TzHours
	// TzMinutes is an hours-and-minutes offset like "-04:30", carried as
	// total minutes.
	TzMinutes
)

// TzOffset is a fixed numeric timezone offset. The hours-only and
// hours-and-minutes forms are kept apart so formatting is lossless.
type TzOffset struct {
	kind TzKind
	val  int32 // hours for TzHours, minutes for TzMinutes
}

// TzOffsetUTC returns the "Z" offset.
func TzOffsetUTC() TzOffset { return TzOffset{kind: TzUTC} }

// TzOffsetHours returns an hours-only offset.
func TzOffsetHours(hours int32) TzOffset { return TzOffset{kind: TzHours, val: hours} }

// TzOffsetMinutes returns an offset in total minutes east of UTC.
func TzOffsetMinutes(minutes int32) TzOffset { return TzOffset{kind: TzMinutes, val: minutes} }

// Kind returns the offset form.
func (o TzOffset) Kind() TzKind { return o.kind }

// Seconds returns the offset east of UTC in seconds; the bool is false for
// an unspecified offset.
func (o TzOffset) Seconds() (int32, bool) {
	switch o.kind {
	case TzUTC:
		return 0, true
	case TzHours:
		return o.val * 3600, true
	case TzMinutes:
		return o.val * 60, true
	default:
		return 0, false
	}
}

// Location converts the offset for use with the time package. Unspecified
// offsets map to UTC; callers that care should check Kind first.
func (o TzOffset) Location() *time.Location {
	secs, ok := o.Seconds()
	if !ok || secs == 0 {
		return time.UTC
	}
	return time.FixedZone(o.String(), int(secs))
}

// String renders the offset suffix as written: "", "Z", "+04", "-04:30".
func (o TzOffset) String() string {
	switch o.kind {
	case TzUTC:
		return "Z"
	case TzHours:
		return fmt.Sprintf("%+03d", o.val%24)
	case TzMinutes:
		h := o.val / 60 % 24
		m := o.val % 60
		if m < 0 {
			m = -m
		}
		return fmt.Sprintf("%+03d:%02d", h, m)
	default:
		return ""
	}
}

// Time is a time of day: hour 0-23, minute 0-59, second 0-60 where 60 is a
// leap second and legal only at 23:59, plus an optional fixed offset.
type Time struct {
	hh, mm, ss uint8
	tz         TzOffset
}

// Hour returns the hour.
func (t Time) Hour() int { return int(t.hh) }

// Minute returns the minute.
func (t Time) Minute() int { return int(t.mm) }

// Second returns the second; 60 is a leap second.
func (t Time) Second() int { return int(t.ss) }

// Offset returns the timezone offset, possibly unspecified.
func (t Time) Offset() TzOffset { return t.tz }

// DateTime is a complete date with a time of day: "2019-07-15T01:56:00Z".
type DateTime struct {
	date DateComplete
	time Time
}

// NewDateTime builds a timestamp from already-validated parts, applying the
// same time-of-day checks as parsing (leap-second rule, offset caps).
func NewDateTime(date DateComplete, hour, minute, second int, tz TzOffset) (DateTime, error) {
	if hour < 0 || hour > 255 || minute < 0 || minute > 255 || second < 0 || second > 255 {
		return DateTime{}, ErrOutOfRange
	}
	u := unvalidatedTime{hh: uint8(hour), mm: uint8(minute), ss: uint8(second)}
	t, err := u.validate()
	if err != nil {
		return DateTime{}, err
	}
	if err := validateTzRange(tz); err != nil {
		return DateTime{}, err
	}
	t.tz = tz
	return DateTime{date: date, time: t}, nil
}

// Date returns the calendar date.
func (dt DateTime) Date() DateComplete { return dt.date }

// Time returns the time of day.
func (dt DateTime) Time() Time { return dt.time }

// DateTimeFromTime converts a time.Time. A UTC location becomes a "Z"
// offset, anything else the fixed hours-and-minutes offset in force at
// that instant. Sub-second precision is dropped; EDTF has no digits for it.
func DateTimeFromTime(t time.Time) DateTime {
	date := DateComplete{
		year:  int32(t.Year()),
		month: uint8(t.Month()),
		day:   uint8(t.Day()),
	}
	var tz TzOffset
	if t.Location() == time.UTC {
		tz = TzOffsetUTC()
	} else {
		_, secs := t.Zone()
		tz = TzOffsetMinutes(int32(secs / 60))
	}
	return DateTime{
		date: date,
		time: Time{hh: uint8(t.Hour()), mm: uint8(t.Minute()), ss: uint8(t.Second()), tz: tz},
	}
}

// AsTime converts to a time.Time in the offset's location; an unspecified
// offset is treated as UTC. A leap second (:60) does not exist in the time
// package and normalizes into the next minute.
func (dt DateTime) AsTime() time.Time {
	return time.Date(
		int(dt.date.year), time.Month(dt.date.month), int(dt.date.day),
		int(dt.time.hh), int(dt.time.mm), int(dt.time.ss), 0,
		dt.time.tz.Location(),
	)
}

// AsTime returns midnight UTC of the calendar date, the usual anchor for
// date arithmetic with the time package.
func (c DateComplete) AsTime() time.Time {
	return time.Date(int(c.year), time.Month(c.month), int(c.day), 0, 0, 0, 0, time.UTC)
}

// DateCompleteFromTime converts the calendar date of a time.Time.
func DateCompleteFromTime(t time.Time) DateComplete {
	return DateComplete{year: int32(t.Year()), month: uint8(t.Month()), day: uint8(t.Day())}
}
