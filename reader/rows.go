package reader

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"icsvgen/profile"
)

// RowSet is the common currency between row sources and the profiler:
// a header row and the raw data rows, cells untouched.
type RowSet struct {
	Header []string
	Rows   [][]string
}

// ReadDelimited reads all records split on delim. The whitespace
// delimiter splits on runs of spaces and tabs without quote handling;
// everything else goes through a CSV reader so quoted fields survive.
// Without a header row, positional names are synthesized and the first
// record is kept as data.
func ReadDelimited(r io.Reader, delim byte, hasHeader bool) (*RowSet, error) {
	var (
		records [][]string
		err     error
	)

	if delim == profile.WhitespaceDelimiter {
		records, err = readWhitespace(r)
	} else {
		cr := csv.NewReader(r)
		cr.Comma = rune(delim)
		cr.FieldsPerRecord = -1
		cr.LazyQuotes = true

		records, err = cr.ReadAll()
	}

	if err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}

	if len(records) == 0 {
		return &RowSet{}, nil
	}

	if hasHeader {
		return &RowSet{Header: records[0], Rows: records[1:]}, nil
	}

	return &RowSet{
		Header: profile.SyntheticHeader(len(records[0])),
		Rows:   records,
	}, nil
}

func readWhitespace(r io.Reader) ([][]string, error) {
	var records [][]string

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		records = append(records, strings.Fields(line))
	}

	return records, sc.Err()
}

// SampleLines returns up to n leading non-empty lines of raw input for
// delimiter detection.
func SampleLines(data []byte, n int) []string {
	var lines []string

	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() && len(lines) < n {
		if line := sc.Text(); line != "" {
			lines = append(lines, line)
		}
	}

	return lines
}
