package edtf

// YearMonth is the output of month-granularity iteration.
type YearMonth struct {
	Year  int32
	Month uint8
}

// CenturyIter yields the starting year of every century that overlaps a
// year range: 1905..2000 yields 1900, 2000. Iterators are consumable from
// either end; the two ends never cross. Recreate the iterator to restart.
type CenturyIter struct {
	it stepIter[int32, int32]
}

// NewCenturyIter iterates the centuries overlapping the inclusive year
// range.
func NewCenturyIter(from, to int32) *CenturyIter {
	from = beginningOfCentury(from)
	to = beginningOfCentury(to)
	return &CenturyIter{it: newStepIter[int32, int32](yearsStep{span: 100}, from, to)}
}

// Next yields the next century start from the front.
func (c *CenturyIter) Next() (int32, bool) { return c.it.next() }

// NextBack yields the next century start from the back.
func (c *CenturyIter) NextBack() (int32, bool) { return c.it.nextBack() }

// DecadeIter yields the starting year of every decade overlapping a year
// range: 1905..1939 yields 1900, 1910, 1920, 1930.
type DecadeIter struct {
	it stepIter[int32, int32]
}

// NewDecadeIter iterates the decades overlapping the inclusive year range.
func NewDecadeIter(from, to int32) *DecadeIter {
	from = beginningOfDecade(from)
	to = beginningOfDecade(to)
	return &DecadeIter{it: newStepIter[int32, int32](yearsStep{span: 10}, from, to)}
}

// Next yields the next decade start from the front.
func (d *DecadeIter) Next() (int32, bool) { return d.it.next() }

// NextBack yields the next decade start from the back.
func (d *DecadeIter) NextBack() (int32, bool) { return d.it.nextBack() }

// YearIter yields every year in an inclusive range.
type YearIter struct {
	it stepIter[int32, int32]
}

// NewYearIter iterates the inclusive year range.
func NewYearIter(from, to int32) *YearIter {
	return &YearIter{it: newStepIter[int32, int32](yearsStep{span: 1}, from, to)}
}

// Next yields the next year from the front.
func (y *YearIter) Next() (int32, bool) { return y.it.next() }

// NextBack yields the next year from the back.
func (y *YearIter) NextBack() (int32, bool) { return y.it.nextBack() }

// YearMonthIter yields every (year, month) pair in an inclusive range,
// rolling over year boundaries.
type YearMonthIter struct {
	it stepIter[yearMonth, YearMonth]
}

func newYearMonthIter(from, to yearMonth) *YearMonthIter {
	return &YearMonthIter{it: newStepIter[yearMonth, YearMonth](yearMonthStep{}, from, to)}
}

func newForwardYearMonthIter(from yearMonth) *YearMonthIter {
	return &YearMonthIter{it: newUnboundedStepIter[yearMonth, YearMonth](yearMonthStep{}, from)}
}

// Next yields the next year-month from the front.
func (m *YearMonthIter) Next() (YearMonth, bool) { return m.it.next() }

// NextBack yields the next year-month from the back.
func (m *YearMonthIter) NextBack() (YearMonth, bool) { return m.it.nextBack() }

// YearMonthDayIter yields every calendar day in an inclusive range,
// rolling over month and year boundaries with the proleptic Gregorian day
// counts.
type YearMonthDayIter struct {
	it stepIter[yearMonthDay, DateComplete]
}

func newYearMonthDayIter(from, to yearMonthDay) *YearMonthDayIter {
	return &YearMonthDayIter{it: newStepIter[yearMonthDay, DateComplete](yearMonthDayStep{}, from, to)}
}

func newForwardYearMonthDayIter(from yearMonthDay) *YearMonthDayIter {
	return &YearMonthDayIter{it: newUnboundedStepIter[yearMonthDay, DateComplete](yearMonthDayStep{}, from)}
}

// Next yields the next day from the front.
func (d *YearMonthDayIter) Next() (DateComplete, bool) { return d.it.next() }

// NextBack yields the next day from the back.
func (d *YearMonthDayIter) NextBack() (DateComplete, bool) { return d.it.nextBack() }

// StepSize is an iteration granularity, ordered from finest to coarsest.
type StepSize uint8

const (
	StepDay StepSize = iota + 1
	StepMonth
	StepSeason
	StepYear
	StepDecade
	StepCentury
)

// String names the granularity.
func (s StepSize) String() string {
	switch s {
	case StepDay:
		return "day"
	case StepMonth:
		return "month"
	case StepSeason:
		return "season"
	case StepYear:
		return "year"
	case StepDecade:
		return "decade"
	case StepCentury:
		return "century"
	default:
		return "unknown"
	}
}

// SmallestStep is the iterator for the finest granularity both ends of an
// interval support. Size says which of the iterator fields is set; the
// others are nil.
type SmallestStep struct {
	Size      StepSize
	Centuries *CenturyIter
	Decades   *DecadeIter
	Years     *YearIter
	Months    *YearMonthIter
	Days      *YearMonthDayIter
}

// intervalPrecision is an interval endpoint reduced to its maximal
// certain, unmasked precision.
type intervalPrecision struct {
	size  StepSize
	year  int32
	month uint8 // StepDay, StepMonth, StepSeason
	day   uint8 // StepDay
}

// maxIntervalPrecision reduces an endpoint for stepping. A masked month or
// day, or a non-Certain qualifier, leaves nothing reliable to step from.
func (d Date) maxIntervalPrecision() (intervalPrecision, bool) {
	if d.certainty != Certain {
		return intervalPrecision{}, false
	}
	y, yflags := d.year.unpack()
	if d.month.present() {
		m, ok := d.month.value()
		if !ok {
			return intervalPrecision{}, false
		}
		if d.day.present() {
			day, ok := d.day.value()
			if !ok {
				return intervalPrecision{}, false
			}
			return intervalPrecision{size: StepDay, year: y, month: m, day: day}, true
		}
		if m <= 12 {
			return intervalPrecision{size: StepMonth, year: y, month: m}, true
		}
		return intervalPrecision{size: StepSeason, year: y, month: m}, true
	}
	switch yflags.mask {
	case yearMaskOneDigit:
		return intervalPrecision{size: StepDecade, year: y}, true
	case yearMaskTwoDigits:
		return intervalPrecision{size: StepCentury, year: y}, true
	default:
		return intervalPrecision{size: StepYear, year: y}, true
	}
}

// monthValue returns the calendar month, absent for season and coarser
// precisions.
func (p intervalPrecision) monthValue() (uint8, bool) {
	if p.size == StepDay || p.size == StepMonth {
		return p.month, true
	}
	return 0, false
}

func (p intervalPrecision) ymd() (yearMonthDay, bool) {
	if p.size != StepDay {
		return yearMonthDay{}, false
	}
	return liftYMD(p.year, p.month, p.day), true
}

// roundWith builds the iterator stepping from p to other at the given
// size, coarsening the finer endpoint to its year where needed.
func (p intervalPrecision) roundWith(other intervalPrecision, size StepSize) (SmallestStep, error) {
	switch size {
	case StepCentury:
		return SmallestStep{Size: size, Centuries: NewCenturyIter(p.year, other.year)}, nil
	case StepDecade:
		return SmallestStep{Size: size, Decades: NewDecadeIter(p.year, other.year)}, nil
	case StepYear:
		return SmallestStep{Size: size, Years: NewYearIter(p.year, other.year)}, nil
	case StepMonth:
		fm, ok1 := p.monthValue()
		tm, ok2 := other.monthValue()
		if !ok1 || !ok2 {
			return SmallestStep{}, ErrNoIteration
		}
		from := yearMonth{year: p.year, month: fm}
		to := yearMonth{year: other.year, month: tm}
		return SmallestStep{Size: size, Months: newYearMonthIter(from, to)}, nil
	case StepDay:
		from, ok1 := p.ymd()
		to, ok2 := other.ymd()
		if !ok1 || !ok2 {
			return SmallestStep{}, ErrNoIteration
		}
		return SmallestStep{Size: size, Days: newYearMonthDayIter(from, to)}, nil
	case StepSeason:
		return SmallestStep{}, ErrSeasonInterval
	default:
		return SmallestStep{}, ErrNoIteration
	}
}

// closedInterval returns the two dates of a closed interval.
func (e Edtf) closedInterval() (Date, Date, bool) {
	if e.kind != KindInterval {
		return Date{}, Date{}, false
	}
	return e.from, e.to, true
}

func (e Edtf) iterAt(size StepSize) (SmallestStep, error) {
	from, to, ok := e.closedInterval()
	if !ok {
		return SmallestStep{}, ErrNoIteration
	}
	fp, ok := from.maxIntervalPrecision()
	if !ok {
		return SmallestStep{}, ErrNoIteration
	}
	tp, ok := to.maxIntervalPrecision()
	if !ok {
		return SmallestStep{}, ErrNoIteration
	}
	return fp.roundWith(tp, size)
}

// IterSmallest returns the iterator stepping at the finest granularity
// both ends of a closed interval support: pairing a day-precision start
// with a year-precision end steps by years, with the finer endpoint
// coarsened to its year. Non-interval values, open or unknown sides,
// masked components and non-certain endpoints yield ErrNoIteration; an
// interval whose coarsest endpoint is a season yields ErrSeasonInterval.
func (e Edtf) IterSmallest() (SmallestStep, error) {
	from, to, ok := e.closedInterval()
	if !ok {
		return SmallestStep{}, ErrNoIteration
	}
	fp, ok := from.maxIntervalPrecision()
	if !ok {
		return SmallestStep{}, ErrNoIteration
	}
	tp, ok := to.maxIntervalPrecision()
	if !ok {
		return SmallestStep{}, ErrNoIteration
	}
	size := fp.size
	if tp.size > size {
		size = tp.size
	}
	return fp.roundWith(tp, size)
}

// IterCenturies iterates every century overlapping a closed interval.
func (e Edtf) IterCenturies() (*CenturyIter, bool) {
	s, err := e.iterAt(StepCentury)
	if err != nil {
		return nil, false
	}
	return s.Centuries, true
}

// IterDecades iterates every decade overlapping a closed interval.
func (e Edtf) IterDecades() (*DecadeIter, bool) {
	s, err := e.iterAt(StepDecade)
	if err != nil {
		return nil, false
	}
	return s.Decades, true
}

// IterYears iterates every year overlapping a closed interval.
func (e Edtf) IterYears() (*YearIter, bool) {
	s, err := e.iterAt(StepYear)
	if err != nil {
		return nil, false
	}
	return s.Years, true
}

// IterMonths iterates every year-month overlapping a closed interval.
// Both ends need month precision or better: "2019-11-30/2020-01" iterates
// 2019-11, 2019-12, 2020-01, while "2020-11/2021" cannot be iterated.
func (e Edtf) IterMonths() (*YearMonthIter, bool) {
	s, err := e.iterAt(StepMonth)
	if err != nil {
		return nil, false
	}
	return s.Months, true
}

// IterDays iterates every day of a closed interval. Both ends need day
// precision.
func (e Edtf) IterDays() (*YearMonthDayIter, bool) {
	s, err := e.iterAt(StepDay)
	if err != nil {
		return nil, false
	}
	return s.Days, true
}

// iterLevel is the finest component granularity a date truncation must
// support.
type iterLevel uint8

const (
	iterLevelDay iterLevel = iota + 1
	iterLevelMonth
)

// truncTo collapses masked components of a date to concrete bounds: 1/1
// for a range start, December/last-day-of-month for a range end. A date
// whose precision does not reach level yields false; an unmasked date
// comes back unchanged.
func (d Date) truncTo(level iterLevel, capMonth uint8, monthEnd func(int32, uint8) uint8, capDay uint8) (Date, bool) {
	y, _ := d.year.unpack()
	out := d
	if !d.month.present() {
		return Date{}, false
	}
	m, mflags := d.month.unpack()
	switch {
	case d.day.present() && level == iterLevelDay:
		_, dflags := d.day.unpack()
		switch {
		case mflags.mask == dmMaskNone && dflags.mask == dmMaskUnspecified:
			out.day, _ = packDM(monthEnd(y, m), dmFlags{certainty: dflags.certainty})
		case mflags.mask == dmMaskUnspecified && dflags.mask == dmMaskUnspecified:
			out.month, _ = packDM(capMonth, dmFlags{certainty: mflags.certainty})
			out.day, _ = packDM(capDay, dmFlags{certainty: mflags.certainty})
		}
	case !d.day.present() && level == iterLevelMonth:
		if mflags.mask == dmMaskUnspecified {
			out.month, _ = packDM(capMonth, dmFlags{certainty: mflags.certainty})
		}
	default:
		// The date is coarser or finer than the requested level, e.g.
		// asking a full date for its possible months.
		return Date{}, false
	}
	return out, true
}

func (d Date) iterRangeStart(level iterLevel) (Date, bool) {
	return d.truncTo(level, 1, func(int32, uint8) uint8 { return 1 }, 1)
}

func (d Date) iterRangeEnd(level iterLevel) (Date, bool) {
	return d.truncTo(level, 12, daysInMonth, 31)
}

// IterPossibleDays iterates every concrete day a date may denote:
// "2021-05-XX" yields the days of May 2021, "2021-XX-XX" all 365 days of
// 2021, and a complete date just itself. Dates without a day component
// cannot be expanded.
func (d Date) IterPossibleDays() (*YearMonthDayIter, bool) {
	start, ok := d.iterRangeStart(iterLevelDay)
	if !ok {
		return nil, false
	}
	end, ok := d.iterRangeEnd(iterLevelDay)
	if !ok {
		return nil, false
	}
	return EdtfFromInterval(start, end).IterDays()
}

// IterForwardDays iterates unbounded from the earliest day the date may
// denote; consume it from the front only.
func (d Date) IterForwardDays() (*YearMonthDayIter, bool) {
	start, ok := d.iterRangeStart(iterLevelDay)
	if !ok {
		return nil, false
	}
	c, ok := start.Complete()
	if !ok {
		return nil, false
	}
	return newForwardYearMonthDayIter(liftYMD(c.year, c.month, c.day)), true
}

// IterPossibleMonths iterates every (year, month) a date may denote:
// "2020-XX" yields all twelve months of 2020, "2020-09" just itself.
func (d Date) IterPossibleMonths() (*YearMonthIter, bool) {
	start, ok := d.iterRangeStart(iterLevelMonth)
	if !ok {
		return nil, false
	}
	end, ok := d.iterRangeEnd(iterLevelMonth)
	if !ok {
		return nil, false
	}
	return EdtfFromInterval(start, end).IterMonths()
}

// IterForwardMonths iterates unbounded from the earliest month the date
// may denote; consume it from the front only.
func (d Date) IterForwardMonths() (*YearMonthIter, bool) {
	start, ok := d.iterRangeStart(iterLevelMonth)
	if !ok {
		return nil, false
	}
	p := start.Precision()
	if p.Kind != PrecisionMonth {
		return nil, false
	}
	return newForwardYearMonthIter(yearMonth{year: p.Year, month: p.Month}), true
}
