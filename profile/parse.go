package profile

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// Datetime layouts tried in order. The first match wins. ISO forms
// come first, then the common explicit day-first and slash forms.
var dateTimeFormats = []string{
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"02/01/2006",
	"02.01.2006",
	"02-01-2006",
	"2006/01/02",
	"20060102T150405",
}

// ParseInt parses a base-10 integer with an optional leading sign.
// Fractional parts, exponents and thousands separators all fail.
func ParseInt(s string) (int64, bool) {
	s = strings.TrimSpace(s)

	i, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}

	return i, true
}

// ParseNumber parses a floating-point literal. The IEEE inf/NaN
// spellings are rejected: NaN belongs to the missing vocabulary and
// infinities have no usable bounds.
func ParseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, false
	}

	return f, true
}

// ParseDateTime parses a value against the fixed layout list.
func ParseDateTime(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)

	for _, layout := range dateTimeFormats {
		if v, err := time.Parse(layout, s); err == nil {
			return v, true
		}
	}

	return time.Time{}, false
}

// Classify determines the type of a single cell value. The value is
// trimmed and matched against the vocabulary first; after that the
// parsers are tried strictest first, with string as the unconditional
// fallback. Pure: the same value and vocabulary always classify the
// same way.
func Classify(value string, vocab Vocabulary) ValueType {
	v := strings.TrimSpace(value)

	if vocab.Contains(v) {
		return MissingType
	}

	if _, ok := ParseInt(v); ok {
		return IntegerType
	}

	if _, ok := ParseNumber(v); ok {
		return NumberType
	}

	if _, ok := ParseDateTime(v); ok {
		return DateTimeType
	}

	return StringType
}
