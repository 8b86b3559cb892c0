// Package edtf parses, validates, formats and iterates Extended Date/Time
// Format (EDTF) Level 1 values.
//
// EDTF is a textual date notation for dates with varying precision and
// certainty: partial dates ("2019", "2019-08"), masked digits ("201X",
// "2019-XX"), uncertainty markers ("1984?", "2004-06~"), intervals
// ("1964/2008", "2019/..", "/1985"), timestamps with fixed offsets, and
// scientific-notation years for large magnitudes ("Y170000002", "Y17E7S3").
//
// The entry point is Parse, which returns an Edtf value, a discriminated
// union over single dates, datetimes, scientific years and intervals.
// Validated values are small, immutable and copyable; a Date occupies eight
// bytes. Closed intervals can be walked at century, decade, year, month or
// day granularity in either direction, and a partially masked Date can be
// expanded into the concrete dates it may denote.
//
// Only the proleptic Gregorian calendar is implemented. Timezones are fixed
// numeric offsets; there are no timezone database lookups.
package edtf
