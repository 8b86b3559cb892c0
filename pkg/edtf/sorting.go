package edtf

// Timeline comparison. Edtf equality distinguishes "2010-08-12" from
// "2010-08-12T00:00:00Z"; Compare instead orders values by the points in
// time they represent, so those two compare equal. Datetimes are converted
// to UTC first; a missing offset is presumed UTC.

// Ranks of a sort key, ordered. Scientific years outside the packed year
// range sit beyond every packable date on their side of the timeline.
const (
	rankNegInfinity int8 = iota
	rankYYearNegative
	rankValue
	rankYYearPositive
	rankInfinity
)

type sortKey struct {
	rank int8
	yy   int64 // rankYYearNegative, rankYYearPositive
	date Date  // rankValue
	secs int32 // rankValue: seconds since midnight UTC
}

func dateKey(d Date) sortKey {
	return sortKey{rank: rankValue, date: d}
}

func yyearKey(y YYear) sortKey {
	v := y.Value()
	if v >= int64(minYear) && v <= int64(maxYear) {
		return dateKey(DateFromYear(int32(v)))
	}
	if v < 0 {
		return sortKey{rank: rankYYearNegative, yy: v}
	}
	return sortKey{rank: rankYYearPositive, yy: v}
}

func dateTimeKey(dt DateTime) sortKey {
	t := dt.AsTime().UTC()
	d := DateFromComplete(DateCompleteFromTime(t))
	secs := int32(t.Hour())*3600 + int32(t.Minute())*60 + int32(t.Second())
	return sortKey{rank: rankValue, date: d, secs: secs}
}

func (e Edtf) startKey() sortKey {
	switch e.kind {
	case KindDate, KindInterval, KindIntervalFrom:
		return dateKey(e.from)
	case KindIntervalTo:
		// An open or unknown left side starts before everything.
		return sortKey{rank: rankNegInfinity}
	case KindDateTime:
		return dateTimeKey(e.dt)
	case KindYYear:
		return yyearKey(e.yy)
	default:
		return sortKey{rank: rankNegInfinity}
	}
}

func (e Edtf) endKey() sortKey {
	switch e.kind {
	case KindInterval, KindIntervalTo:
		return dateKey(e.to)
	case KindIntervalFrom:
		return sortKey{rank: rankInfinity}
	default:
		return e.startKey()
	}
}

func compareKeys(a, b sortKey) int {
	if c := compareInt8(a.rank, b.rank); c != 0 {
		return c
	}
	switch a.rank {
	case rankYYearNegative, rankYYearPositive:
		return compareInt64(a.yy, b.yy)
	case rankValue:
		if c := a.date.compare(b.date); c != 0 {
			return c
		}
		return compareInt32(a.secs, b.secs)
	default:
		return 0
	}
}

// Compare orders two values on the timeline by their start point, breaking
// ties with their end point. It reports -1, 0 or 1 and is suitable for
// slices.SortFunc.
func Compare(a, b Edtf) int {
	if c := compareKeys(a.startKey(), b.startKey()); c != 0 {
		return c
	}
	return compareKeys(a.endKey(), b.endKey())
}

func compareInt8(a, b int8) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func compareInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
