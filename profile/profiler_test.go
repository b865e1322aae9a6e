package profile

import (
	"reflect"
	"testing"
	"time"
)

func profileRows(t *testing.T, header []string, rows [][]string) *Table {
	t.Helper()

	p := NewProfiler(DefaultVocabulary())
	return p.Profile(ColumnNames(header), NormalizeWidth(rows, len(header), ""))
}

func TestProfileMixedColumns(t *testing.T) {
	tbl := profileRows(t,
		[]string{"a", "b", "c"},
		[][]string{
			{"1", "2.5", "x"},
			{"2", "-3", "y"},
		},
	)

	if tbl.RecordCount != 2 {
		t.Fatalf("expected 2 records, got %d", tbl.RecordCount)
	}

	a := tbl.Columns[0]
	assertType(t, IntegerType, a.Type)
	if a.Min != int64(1) || a.Max != int64(2) {
		t.Errorf("a: expected bounds 1/2, got %v/%v", a.Min, a.Max)
	}

	b := tbl.Columns[1]
	assertType(t, NumberType, b.Type)
	if b.Min != float64(-3) || b.Max != float64(2.5) {
		t.Errorf("b: expected bounds -3/2.5, got %v/%v", b.Min, b.Max)
	}

	c := tbl.Columns[2]
	assertType(t, StringType, c.Type)
	if c.HasBounds() {
		t.Errorf("c: expected no bounds, got %v/%v", c.Min, c.Max)
	}

	for _, col := range tbl.Columns {
		if !col.Required || col.MissingCount != 0 {
			t.Errorf("%s: expected required with no missing cells", col.Name)
		}
	}
}

func TestProfileMissingCells(t *testing.T) {
	tbl := profileRows(t,
		[]string{"n"},
		[][]string{{""}, {"5"}, {"7"}},
	)

	n := tbl.Columns[0]
	assertType(t, IntegerType, n.Type)

	if n.MissingCount != 1 {
		t.Errorf("expected 1 missing, got %d", n.MissingCount)
	}

	if n.Required {
		t.Error("expected optional column")
	}

	if n.Min != int64(5) || n.Max != int64(7) {
		t.Errorf("expected bounds 5/7, got %v/%v", n.Min, n.Max)
	}
}

func TestProfileAllMissing(t *testing.T) {
	tbl := profileRows(t,
		[]string{"m"},
		[][]string{{""}, {""}, {""}},
	)

	m := tbl.Columns[0]
	assertType(t, StringType, m.Type)

	if m.MissingCount != 3 {
		t.Errorf("expected 3 missing, got %d", m.MissingCount)
	}

	if m.Required {
		t.Error("expected optional column")
	}

	if m.HasBounds() {
		t.Errorf("expected no bounds, got %v/%v", m.Min, m.Max)
	}
}

func TestProfileDateTimeColumn(t *testing.T) {
	tbl := profileRows(t,
		[]string{"ts"},
		[][]string{
			{"2021-01-01T01:00:00"},
			{"2021-01-01T00:00:00"},
			{"2021-01-02"},
		},
	)

	ts := tbl.Columns[0]
	assertType(t, DateTimeType, ts.Type)

	min := time.Date(2021, time.January, 1, 0, 0, 0, 0, time.UTC)
	max := time.Date(2021, time.January, 2, 0, 0, 0, 0, time.UTC)

	if !ts.Min.(time.Time).Equal(min) {
		t.Errorf("expected min %s, got %v", min, ts.Min)
	}
	if !ts.Max.(time.Time).Equal(max) {
		t.Errorf("expected max %s, got %v", max, ts.Max)
	}
}

// A single unparsable non-missing value demotes the whole column.
func TestProfileDemotion(t *testing.T) {
	tests := map[string]struct {
		Values []string
		Type   ValueType
	}{
		"int-to-number":    {[]string{"1", "2", "1.5"}, NumberType},
		"number-to-string": {[]string{"1", "2.5", "x"}, StringType},
		"date-to-string":   {[]string{"2021-01-01", "5"}, StringType},
		"all-int":          {[]string{"1", "", "2", "NA"}, IntegerType},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			rows := make([][]string, len(test.Values))
			for i, v := range test.Values {
				rows[i] = []string{v}
			}

			tbl := profileRows(t, []string{"v"}, rows)
			assertType(t, test.Type, tbl.Columns[0].Type)
		})
	}
}

// Committed types may not depend on row order.
func TestProfileOrderIndependent(t *testing.T) {
	forward := [][]string{{"1"}, {"2"}, {"1.5"}, {"x"}}
	backward := [][]string{{"x"}, {"1.5"}, {"2"}, {"1"}}

	a := profileRows(t, []string{"v"}, forward)
	b := profileRows(t, []string{"v"}, backward)

	if a.Columns[0].Type != b.Columns[0].Type {
		t.Errorf("type depends on row order: %s vs %s", a.Columns[0].Type, b.Columns[0].Type)
	}
}

// A single-value column must commit to exactly the type Classify
// assigns that value; the profiler and the classifier share one parse
// sequence and may never disagree.
func TestProfileMatchesClassify(t *testing.T) {
	vocab := DefaultVocabulary()

	values := []string{
		"1", "-3", "2.5", "1e5", "2021-01-01",
		"2021-01-01 10:30:00", "24/02/2008", "bar", " 7 ",
	}

	for _, v := range values {
		tbl := NewProfiler(vocab).Profile([]string{"v"}, [][]string{{v}})
		assertType(t, Classify(v, vocab), tbl.Columns[0].Type)
	}
}

// Integer cells contribute to the number bounds, so a late fractional
// value demotes the column without losing the integer extremes.
func TestProfileDemotedNumberBounds(t *testing.T) {
	tbl := profileRows(t,
		[]string{"v"},
		[][]string{{"-7"}, {"2.5"}, {"1"}},
	)

	v := tbl.Columns[0]
	assertType(t, NumberType, v.Type)

	if v.Min != float64(-7) || v.Max != float64(2.5) {
		t.Errorf("expected bounds -7/2.5, got %v/%v", v.Min, v.Max)
	}
}

func TestProfileZeroRows(t *testing.T) {
	tbl := profileRows(t, []string{"a", "b"}, nil)

	if tbl.RecordCount != 0 {
		t.Fatalf("expected 0 records, got %d", tbl.RecordCount)
	}

	for _, col := range tbl.Columns {
		assertType(t, StringType, col.Type)
		if col.MissingCount != 0 {
			t.Errorf("%s: expected 0 missing, got %d", col.Name, col.MissingCount)
		}
		if col.HasBounds() {
			t.Errorf("%s: expected no bounds", col.Name)
		}
	}
}

func TestProfileIdempotent(t *testing.T) {
	rows := func() [][]string {
		return [][]string{
			{"1", "2.5", "2021-01-01", ""},
			{"2", "NA", "2021-02-01", "x"},
		}
	}
	header := []string{"a", "b", "c", "d"}

	a := profileRows(t, header, rows())
	b := profileRows(t, header, rows())

	if !reflect.DeepEqual(a, b) {
		t.Error("profiles differ across runs on identical input")
	}
}

func TestProfileObservedNodata(t *testing.T) {
	p := NewProfiler(NewVocabulary("-999"))

	tbl := p.Profile([]string{"a", "b"}, [][]string{
		{"-999", "1"},
		{"-999", "NA"},
		{"3", "2"},
	})

	if tbl.Nodata != "-999" {
		t.Errorf("expected observed nodata -999, got %q", tbl.Nodata)
	}
}

func TestNormalizeWidth(t *testing.T) {
	rows := [][]string{
		{"1", "2", "3", "4"},
		{"1"},
		{"1", "2"},
	}

	out := NormalizeWidth(rows, 2, "NA")

	exp := [][]string{
		{"1", "2"},
		{"1", "NA"},
		{"1", "2"},
	}

	if !reflect.DeepEqual(out, exp) {
		t.Errorf("expected %v, got %v", exp, out)
	}
}

func TestColumnNames(t *testing.T) {
	names := ColumnNames([]string{" a ", "", "c"})

	exp := []string{"a", "c1", "c"}
	if !reflect.DeepEqual(names, exp) {
		t.Errorf("expected %v, got %v", exp, names)
	}
}

func TestSyntheticHeader(t *testing.T) {
	exp := []string{"c0", "c1", "c2"}
	if got := SyntheticHeader(3); !reflect.DeepEqual(got, exp) {
		t.Errorf("expected %v, got %v", exp, got)
	}
}
