package profile

import (
	"fmt"
	"strings"
	"time"
)

// Profiler derives a Table from buffered rows. Rows must be width
// normalized first (see NormalizeWidth); profiling itself never
// mutates cell values.
type Profiler struct {
	vocab Vocabulary
}

func NewProfiler(vocab Vocabulary) *Profiler {
	return &Profiler{vocab: vocab}
}

// Profile classifies every cell of every column, commits each column
// to the weakest type that accepts all of its non-missing values, and
// computes bounds under the committed type. All rows are seen before
// any type is committed, so the result is independent of row order.
func (p *Profiler) Profile(names []string, rows [][]string) *Table {
	states := make([]*columnState, len(names))
	for i, n := range names {
		states[i] = newColumnState(n)
	}

	observed := make(map[string]int64)

	for _, row := range rows {
		for i, st := range states {
			// Short rows should not occur after normalization, but an
			// absent cell still counts as missing rather than panicking.
			if i < len(row) {
				st.record(row[i], p.vocab, observed)
			} else {
				st.missing++
				observed[""]++
			}
		}
	}

	t := &Table{
		Columns:     make([]*Column, len(states)),
		RecordCount: int64(len(rows)),
		Nodata:      mostObserved(observed),
		Vocabulary:  p.vocab,
	}

	for i, st := range states {
		t.Columns[i] = st.column(i)
	}

	return t
}

// columnState accumulates, per column, whether every non-missing value
// so far still parses under each candidate type, along with running
// bounds per candidate. Commitment happens only after all rows.
type columnState struct {
	name       string
	missing    int64
	nonMissing int64

	intOK bool
	numOK bool
	dtOK  bool

	intMin, intMax int64
	numMin, numMax float64
	dtMin, dtMax   time.Time
}

func newColumnState(name string) *columnState {
	return &columnState{
		name:  name,
		intOK: true,
		numOK: true,
		dtOK:  true,
	}
}

// record accumulates one cell. Classify is the single source of truth
// for the cell type; the branches only maintain the per-type AND-flags
// and bounds. A cell of one type never parses under a stricter one
// (Classify tries strictest first), and the layout list shares no
// spelling with integer or number literals, so the stricter and looser
// flags can be cleared wholesale per branch.
func (s *columnState) record(raw string, vocab Vocabulary, observed map[string]int64) {
	v := strings.TrimSpace(raw)

	t := Classify(v, vocab)

	if t == MissingType {
		s.missing++
		observed[v]++
		return
	}

	s.nonMissing++
	first := s.nonMissing == 1

	switch t {
	case IntegerType:
		iv, _ := ParseInt(v)
		if first || iv < s.intMin {
			s.intMin = iv
		}
		if first || iv > s.intMax {
			s.intMax = iv
		}

		// Integers feed the number bounds too, in case a later
		// fractional value demotes the column.
		fv := float64(iv)
		if first || fv < s.numMin {
			s.numMin = fv
		}
		if first || fv > s.numMax {
			s.numMax = fv
		}

		s.dtOK = false
	case NumberType:
		fv, _ := ParseNumber(v)
		if first || fv < s.numMin {
			s.numMin = fv
		}
		if first || fv > s.numMax {
			s.numMax = fv
		}

		s.intOK = false
		s.dtOK = false
	case DateTimeType:
		tv, _ := ParseDateTime(v)
		if first || tv.Before(s.dtMin) {
			s.dtMin = tv
		}
		if first || tv.After(s.dtMax) {
			s.dtMax = tv
		}

		s.intOK = false
		s.numOK = false
	default:
		s.intOK = false
		s.numOK = false
		s.dtOK = false
	}
}

func (s *columnState) column(index int) *Column {
	c := &Column{
		Name:         s.name,
		Index:        index,
		MissingCount: s.missing,
		Required:     s.missing == 0,
	}

	// A column with no non-missing values carries no evidence for any
	// stricter type and commits to string with absent bounds.
	switch {
	case s.nonMissing == 0:
		c.Type = StringType
	case s.intOK:
		c.Type = IntegerType
		c.Min, c.Max = s.intMin, s.intMax
	case s.numOK:
		c.Type = NumberType
		c.Min, c.Max = s.numMin, s.numMax
	case s.dtOK:
		c.Type = DateTimeType
		c.Min, c.Max = s.dtMin, s.dtMax
	default:
		c.Type = StringType
	}

	return c
}

// mostObserved picks the vocabulary token seen most often, breaking
// ties on the smaller token so the choice is deterministic.
func mostObserved(observed map[string]int64) string {
	var (
		token string
		count int64
	)

	for t, n := range observed {
		if n > count || (n == count && count > 0 && t < token) {
			token = t
			count = n
		}
	}

	return token
}

// ColumnNames returns usable column names for a header row: trimmed
// header cells, with blank cells replaced by a synthesized positional
// name.
func ColumnNames(header []string) []string {
	names := make([]string, len(header))

	for i, h := range header {
		h = strings.TrimSpace(h)
		if h == "" {
			h = fmt.Sprintf("c%d", i)
		}
		names[i] = h
	}

	return names
}

// SyntheticHeader returns positional names for headerless input.
func SyntheticHeader(n int) []string {
	names := make([]string, n)

	for i := range names {
		names[i] = fmt.Sprintf("c%d", i)
	}

	return names
}

// NormalizeWidth pads short rows with the nodata token and truncates
// long rows so every row has exactly width cells. This is the only
// data-altering step in the pipeline.
func NormalizeWidth(rows [][]string, width int, nodata string) [][]string {
	for i, row := range rows {
		switch {
		case len(row) > width:
			rows[i] = row[:width]
		case len(row) < width:
			padded := make([]string, width)
			copy(padded, row)
			for j := len(row); j < width; j++ {
				padded[j] = nodata
			}
			rows[i] = padded
		}
	}

	return rows
}
