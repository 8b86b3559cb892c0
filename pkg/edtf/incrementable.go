package edtf

import "math"

// The stepping engine mirrors column arithmetic: plain steppers move a
// whole storage value one step, cyclic helpers move a wrapping calendar
// field and signal a carry for the enclosing one. Each granularity is a
// stepPolicy; stepIter drives a policy from both ends of a bounded range.

// stepPolicy is one granularity of calendar stepping over storage S
// producing outputs O. increment and decrement report false when the step
// would leave the representable range.
type stepPolicy[S, O any] interface {
	increment(S) (S, bool)
	decrement(S) (S, bool)
	output(S) O
	compare(a, b S) int
}

// stepIter walks a policy between two cursors. Either end may be consumed
// independently; when the cursors would cross, both ends are exhausted at
// once. A back-unbounded iterator only ever steps forward.
type stepIter[S, O any] struct {
	policy    stepPolicy[S, O]
	front     S
	back      S
	unbounded bool
	done      bool
}

func newStepIter[S, O any](p stepPolicy[S, O], from, to S) stepIter[S, O] {
	return stepIter[S, O]{policy: p, front: from, back: to, done: p.compare(from, to) > 0}
}

func newUnboundedStepIter[S, O any](p stepPolicy[S, O], from S) stepIter[S, O] {
	return stepIter[S, O]{policy: p, front: from, unbounded: true}
}

// next yields the front element and advances the front cursor.
func (it *stepIter[S, O]) next() (O, bool) {
	var zero O
	if it.done {
		return zero, false
	}
	out := it.policy.output(it.front)
	next, ok := it.policy.increment(it.front)
	if !ok || (!it.unbounded && it.policy.compare(next, it.back) > 0) {
		it.done = true
	} else {
		it.front = next
	}
	return out, true
}

// nextBack yields the back element and retreats the back cursor. An
// unbounded iterator has no back element.
func (it *stepIter[S, O]) nextBack() (O, bool) {
	var zero O
	if it.done || it.unbounded {
		return zero, false
	}
	out := it.policy.output(it.back)
	prev, ok := it.policy.decrement(it.back)
	if !ok || it.policy.compare(it.front, prev) > 0 {
		it.done = true
	} else {
		it.back = prev
	}
	return out, true
}

func addYears(y, n int32) (int32, bool) {
	if n > 0 && y > math.MaxInt32-n {
		return 0, false
	}
	if n < 0 && y < math.MinInt32-n {
		return 0, false
	}
	return y + n, true
}

// yearsStep steps a bare year by a fixed span: 1 for years, 10 for
// decades, 100 for centuries.
type yearsStep struct {
	span int32
}

func (s yearsStep) increment(y int32) (int32, bool) { return addYears(y, s.span) }
func (s yearsStep) decrement(y int32) (int32, bool) { return addYears(y, -s.span) }
func (s yearsStep) output(y int32) int32            { return y }
func (s yearsStep) compare(a, b int32) int          { return compareInt32(a, b) }

// monthUp returns the month after m, with carried set when it wrapped past
// December into January.
func monthUp(m uint8) (next uint8, carried bool) {
	if m >= 12 {
		return 1, true
	}
	return m + 1, false
}

// monthDown returns the month before m, with borrowed set when it wrapped
// past January into December.
func monthDown(m uint8) (prev uint8, borrowed bool) {
	if m <= 1 {
		return 12, true
	}
	return m - 1, false
}

// dayUp returns the day after d in a month of max days, carrying into the
// next month's first day.
func dayUp(max, d uint8) (next uint8, carried bool) {
	if d >= max {
		return 1, true
	}
	return d + 1, false
}

// dayDown returns the day before d, borrowing the previous month's last
// day prevMax when d is the first.
func dayDown(prevMax, d uint8) (prev uint8, borrowed bool) {
	if d <= 1 {
		return prevMax, true
	}
	return d - 1, false
}

// yearMonth is the storage of month-granularity stepping.
type yearMonth struct {
	year  int32
	month uint8
}

type yearMonthStep struct{}

func (yearMonthStep) increment(s yearMonth) (yearMonth, bool) {
	m, carried := monthUp(s.month)
	if carried {
		y, ok := addYears(s.year, 1)
		if !ok {
			return yearMonth{}, false
		}
		return yearMonth{year: y, month: m}, true
	}
	return yearMonth{year: s.year, month: m}, true
}

func (yearMonthStep) decrement(s yearMonth) (yearMonth, bool) {
	m, borrowed := monthDown(s.month)
	if borrowed {
		y, ok := addYears(s.year, -1)
		if !ok {
			return yearMonth{}, false
		}
		return yearMonth{year: y, month: m}, true
	}
	return yearMonth{year: s.year, month: m}, true
}

func (yearMonthStep) output(s yearMonth) YearMonth {
	return YearMonth{Year: s.year, Month: s.month}
}

func (yearMonthStep) compare(a, b yearMonth) int {
	if c := compareInt32(a.year, b.year); c != 0 {
		return c
	}
	return compareUint8(a.month, b.month)
}

// yearMonthDay is the storage of day-granularity stepping. The leap flag
// caches the leap-year rule so stepping within a year never recomputes it.
type yearMonthDay struct {
	year  int32
	leap  bool
	month uint8
	day   uint8
}

func liftYMD(year int32, month, day uint8) yearMonthDay {
	return yearMonthDay{year: year, leap: IsLeapYear(year), month: month, day: day}
}

type yearMonthDayStep struct{}

func (yearMonthDayStep) increment(s yearMonthDay) (yearMonthDay, bool) {
	lut := &monthDaycount
	if s.leap {
		lut = &monthDaycountLeap
	}
	d, carried := dayUp(lut[s.month-1], s.day)
	if !carried {
		s.day = d
		return s, true
	}
	m, carried := monthUp(s.month)
	if !carried {
		s.month, s.day = m, d
		return s, true
	}
	y, ok := addYears(s.year, 1)
	if !ok {
		return yearMonthDay{}, false
	}
	return liftYMD(y, m, d), true
}

func (yearMonthDayStep) decrement(s yearMonthDay) (yearMonthDay, bool) {
	lut := &monthDaycount
	if s.leap {
		lut = &monthDaycountLeap
	}
	// Borrowing needs the previous month's day count; January borrows
	// December's 31.
	prevMax := uint8(31)
	if s.month > 1 {
		prevMax = lut[s.month-2]
	}
	d, borrowed := dayDown(prevMax, s.day)
	if !borrowed {
		s.day = d
		return s, true
	}
	m, borrowed := monthDown(s.month)
	if !borrowed {
		s.month, s.day = m, d
		return s, true
	}
	y, ok := addYears(s.year, -1)
	if !ok {
		return yearMonthDay{}, false
	}
	return liftYMD(y, m, d), true
}

func (yearMonthDayStep) output(s yearMonthDay) DateComplete {
	return DateComplete{year: s.year, month: s.month, day: s.day}
}

func (yearMonthDayStep) compare(a, b yearMonthDay) int {
	if c := compareInt32(a.year, b.year); c != 0 {
		return c
	}
	if c := compareUint8(a.month, b.month); c != 0 {
		return c
	}
	return compareUint8(a.day, b.day)
}
