package profile

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

const (
	UnknownType ValueType = iota
	MissingType
	IntegerType
	NumberType
	DateTimeType
	StringType
)

// ValueType is the classification outcome for a single cell, and the
// committed type of a whole column. MissingType only ever applies to
// cells; columns commit to one of the four data types.
type ValueType uint8

func (v ValueType) String() string {
	switch v {
	case MissingType:
		return "missing"
	case IntegerType:
		return "integer"
	case NumberType:
		return "number"
	case DateTimeType:
		return "datetime"
	case StringType:
		return "string"
	}

	return ""
}

func (v ValueType) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.String())
}

func (v *ValueType) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}

	var t ValueType

	switch strings.ToLower(s) {
	case "missing":
		t = MissingType
	case "integer":
		t = IntegerType
	case "number":
		t = NumberType
	case "datetime":
		t = DateTimeType
	case "string":
		t = StringType
	}

	*v = t

	return nil
}

// DateTimeLayout is the layout used to render datetime bounds in both
// descriptors. It matches the layouts accepted by ParseDateTime with
// any zone information dropped.
const DateTimeLayout = "2006-01-02T15:04:05"

// FormatValue renders a bound value produced by the profiler as a
// string. Nil renders as the empty string.
func FormatValue(v interface{}) string {
	switch x := v.(type) {
	case nil:
		return ""
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case time.Time:
		return x.Format(DateTimeLayout)
	case string:
		return x
	}

	return ""
}
