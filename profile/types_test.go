package profile

import (
	"testing"
	"time"
)

func assertType(t *testing.T, e, a ValueType) {
	t.Helper()

	if e != a {
		t.Errorf("expected %s, got %s", e, a)
	}
}

func TestClassify(t *testing.T) {
	vocab := DefaultVocabulary()

	tests := map[string]struct {
		Raw  string
		Type ValueType
	}{
		"int":            {"10", IntegerType},
		"negative-int":   {"-3", IntegerType},
		"float":          {"1.20", NumberType},
		"exponent":       {"1e5", NumberType},
		"date":           {"2014-02-01", DateTimeType},
		"timestamp":      {"2014-02-01 10:00:00", DateTimeType},
		"slash-date":     {"01/02/2014", DateTimeType},
		"string":         {"bar", StringType},
		"empty":          {"", MissingType},
		"na":             {"NA", MissingType},
		"nan":            {"NaN", MissingType},
		"case-sensitive": {"na", StringType},
		"padded-int":     {"  7 ", IntegerType},
		"padded-missing": {" NA ", MissingType},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assertType(t, test.Type, Classify(test.Raw, vocab))
		})
	}
}

func TestClassifyCustomNodata(t *testing.T) {
	vocab := NewVocabulary("-999")

	assertType(t, MissingType, Classify("-999", vocab))
	assertType(t, IntegerType, Classify("-998", vocab))

	// The default vocabulary still treats -999 as a legitimate integer.
	assertType(t, IntegerType, Classify("-999", DefaultVocabulary()))
}

func TestValueTypeJSON(t *testing.T) {
	b, err := IntegerType.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}

	if string(b) != `"integer"` {
		t.Errorf(`expected "integer", got %s`, b)
	}

	var v ValueType
	if err := v.UnmarshalJSON([]byte(`"datetime"`)); err != nil {
		t.Fatal(err)
	}

	assertType(t, DateTimeType, v)
}

func TestFormatValue(t *testing.T) {
	tests := map[string]struct {
		Val interface{}
		Exp string
	}{
		"nil":      {nil, ""},
		"int":      {int64(-3), "-3"},
		"float":    {2.5, "2.5"},
		"whole":    {float64(2), "2"},
		"datetime": {time.Date(2021, time.January, 1, 0, 0, 0, 0, time.UTC), "2021-01-01T00:00:00"},
		"string":   {"x", "x"},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			if got := FormatValue(test.Val); got != test.Exp {
				t.Errorf("expected %q, got %q", test.Exp, got)
			}
		})
	}
}
