package edtf

// EdtfKind discriminates the Edtf union.
type EdtfKind uint8

const (
	// KindDate is a single date: "2018", "2019-07-09%", "1956-XX".
	KindDate EdtfKind = iota + 1
	// KindDateTime is a full timestamp: "2019-07-15T01:56:00Z".
	KindDateTime
	// KindYYear is a scientific year: "Y170000002", "Y17E7S3", "1950S2".
	KindYYear
	// KindInterval is a closed interval: "2018/2019".
	KindInterval
	// KindIntervalFrom has a date on the left and an open or unknown right
	// terminal: "2019/..", "2019/".
	KindIntervalFrom
	// KindIntervalTo has an open or unknown left terminal and a date on the
	// right: "../2019", "/2019".
	KindIntervalTo
)

// Terminal is the non-date side of a half-open interval.
type Terminal uint8

const (
	// TerminalUnknown is the empty string before or after a slash: the side
	// is unspecified, not unbounded.
	TerminalUnknown Terminal = iota
	// TerminalOpen is "..": the side is unbounded.
	TerminalOpen
)

// String renders the terminal as written in an interval.
func (t Terminal) String() string {
	if t == TerminalOpen {
		return ".."
	}
	return ""
}

// Edtf is a parsed EDTF Level 1 value: a single date, a timestamp, a
// scientific year, or one of the interval forms. The representation is
// lossless; String gives back exactly the text that was parsed.
//
// Values are immutable. Only the fields of the active Kind are meaningful;
// use the As* accessors.
type Edtf struct {
	kind EdtfKind
	from Date // KindDate, KindInterval start, KindIntervalFrom start
	to   Date // KindInterval end, KindIntervalTo end
	term Terminal
	dt   DateTime
	yy   YYear
}

// Parse parses a Level 1 EDTF string.
func Parse(input string) (Edtf, error) {
	p, err := parseLevel1(input)
	if err != nil {
		return Edtf{}, err
	}
	return p.validate()
}

// Kind returns the active variant.
func (e Edtf) Kind() EdtfKind { return e.kind }

// EdtfFromDate wraps a single date.
func EdtfFromDate(d Date) Edtf {
	return Edtf{kind: KindDate, from: d}
}

// EdtfFromInterval wraps a closed interval.
func EdtfFromInterval(from, to Date) Edtf {
	return Edtf{kind: KindInterval, from: from, to: to}
}

// EdtfFromIntervalFrom wraps an interval whose right side is open or
// unknown.
func EdtfFromIntervalFrom(from Date, t Terminal) Edtf {
	return Edtf{kind: KindIntervalFrom, from: from, term: t}
}

// EdtfFromIntervalTo wraps an interval whose left side is open or unknown.
func EdtfFromIntervalTo(t Terminal, to Date) Edtf {
	return Edtf{kind: KindIntervalTo, to: to, term: t}
}

// EdtfFromDateTime wraps a timestamp.
func EdtfFromDateTime(dt DateTime) Edtf {
	return Edtf{kind: KindDateTime, dt: dt}
}

// EdtfFromYYear wraps a scientific year.
func EdtfFromYYear(y YYear) Edtf {
	return Edtf{kind: KindYYear, yy: y}
}

// AsDate returns the date if this is a single-date value.
func (e Edtf) AsDate() (Date, bool) {
	if e.kind != KindDate {
		return Date{}, false
	}
	return e.from, true
}

// AsDateTime returns the timestamp if this is a datetime value.
func (e Edtf) AsDateTime() (DateTime, bool) {
	if e.kind != KindDateTime {
		return DateTime{}, false
	}
	return e.dt, true
}

// AsYYear returns the scientific year if this is one.
func (e Edtf) AsYYear() (YYear, bool) {
	if e.kind != KindYYear {
		return YYear{}, false
	}
	return e.yy, true
}

// AsInterval returns both dates of a closed interval.
func (e Edtf) AsInterval() (from, to Date, ok bool) {
	if e.kind != KindInterval {
		return Date{}, Date{}, false
	}
	return e.from, e.to, true
}

// AsIntervalFrom returns the date and right terminal of a "date/.." or
// "date/" interval.
func (e Edtf) AsIntervalFrom() (Date, Terminal, bool) {
	if e.kind != KindIntervalFrom {
		return Date{}, 0, false
	}
	return e.from, e.term, true
}

// AsIntervalTo returns the left terminal and date of a "../date" or
// "/date" interval.
func (e Edtf) AsIntervalTo() (Terminal, Date, bool) {
	if e.kind != KindIntervalTo {
		return 0, Date{}, false
	}
	return e.term, e.to, true
}

// MatchTerminalKind discriminates MatchTerminal.
type MatchTerminalKind uint8

const (
	// MatchFixed is an actual date in an interval.
	MatchFixed MatchTerminalKind = iota + 1
	// MatchOpen is "..".
	MatchOpen
	// MatchUnknown is the empty terminal, as in "/2020".
	MatchUnknown
)

// MatchTerminal is one side of an interval decoded for matching: a fixed
// date reduced to its precision and certainty, or an open or unknown
// terminal.
type MatchTerminal struct {
	Kind      MatchTerminalKind
	Precision Precision // MatchFixed only
	Certainty Certainty // MatchFixed only
}

func (d Date) asMatchTerminal() MatchTerminal {
	return MatchTerminal{Kind: MatchFixed, Precision: d.Precision(), Certainty: d.certainty}
}

func (t Terminal) asMatchTerminal() MatchTerminal {
	if t == TerminalOpen {
		return MatchTerminal{Kind: MatchOpen}
	}
	return MatchTerminal{Kind: MatchUnknown}
}

// Terminals decodes any of the three interval kinds into a pair of
// MatchTerminals; at least one side is always MatchFixed. The bool is false
// for non-interval values.
func (e Edtf) Terminals() (left, right MatchTerminal, ok bool) {
	switch e.kind {
	case KindInterval:
		return e.from.asMatchTerminal(), e.to.asMatchTerminal(), true
	case KindIntervalFrom:
		return e.from.asMatchTerminal(), e.term.asMatchTerminal(), true
	case KindIntervalTo:
		return e.term.asMatchTerminal(), e.to.asMatchTerminal(), true
	default:
		return MatchTerminal{}, MatchTerminal{}, false
	}
}
