// Package icsv builds the two descriptors derived from a table
// profile: the annotated-header iCSV document and the table schema.
package icsv

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"icsvgen/profile"
)

// Version of the iCSV convention the document declares.
const Version = "1.0"

// ErrDelimiterConflict is returned when every output delimiter
// candidate collides with cell content. Emitting an ambiguous header
// is worse than failing.
var ErrDelimiterConflict = errors.New("icsv: no field delimiter free of cell content")

// Delimiters tried after the preferred one collides with cell content.
var fallbackDelimiters = []byte{'|', ';', '\t', ':', '/'}

// Options carries the run configuration the document embeds.
type Options struct {
	// ApplicationProfile is an optional label for the metadata section.
	ApplicationProfile string

	// Generator identifies the producing tool. Defaults to "icsvgen".
	Generator string

	// Created is the creation timestamp recorded in the metadata.
	Created time.Time
}

// MetaEntry is one ordered key = value line of a commented section.
type MetaEntry struct {
	Key   string
	Value string
}

// Document is the in-memory annotated-header descriptor. It is built
// once per run and never updated.
type Document struct {
	Metadata  []MetaEntry
	Fields    []MetaEntry
	Delimiter byte
	Header    []string
	Rows      [][]string
}

// Build assembles the document from a table profile and the width
// normalized data rows. Rows are carried as-is and re-delimited on
// render.
func Build(t *profile.Table, rows [][]string, opts Options) (*Document, error) {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}

	delim, err := selectDelimiter(t.Delimiter, names, rows)
	if err != nil {
		return nil, err
	}

	d := &Document{
		Delimiter: delim,
		Header:    names,
		Rows:      rows,
	}

	d.Metadata = append(d.Metadata, MetaEntry{"iCSV_version", Version})
	if opts.ApplicationProfile != "" {
		d.Metadata = append(d.Metadata, MetaEntry{"application_profile", opts.ApplicationProfile})
	}
	d.Metadata = append(d.Metadata,
		MetaEntry{"field_delimiter", string(rune(delim))},
		MetaEntry{"rows", strconv.FormatInt(t.RecordCount, 10)},
		MetaEntry{"columns", strconv.Itoa(len(t.Columns))},
		MetaEntry{"creation_date", opts.Created.UTC().Format(profile.DateTimeLayout) + "Z"},
		MetaEntry{"nodata", t.Nodata},
	)

	if geometry, srid := DetectGeometry(names); geometry != "" {
		d.Metadata = append(d.Metadata, MetaEntry{"geometry", geometry})
		if srid != "" {
			d.Metadata = append(d.Metadata, MetaEntry{"srid", srid})
		}
	}

	generator := opts.Generator
	if generator == "" {
		generator = "icsvgen"
	}
	d.Metadata = append(d.Metadata, MetaEntry{"generator", generator})

	d.Fields = fieldLines(t, delim)

	return d, nil
}

// selectDelimiter picks the output delimiter: the input delimiter,
// except comma and whitespace input prefer pipe. A space is never a
// usable output delimiter: the metadata value would render as
// trailing whitespace and empty padded cells would vanish on a
// whitespace re-split. A candidate occurring inside any column name
// or cell value is ambiguous in the pipe-joined field lines, so
// collisions fall back through the fixed candidate list.
func selectDelimiter(input byte, names []string, rows [][]string) (byte, error) {
	preferred := input
	if input == ',' || input == profile.WhitespaceDelimiter || input == 0 {
		preferred = '|'
	}

	if !contentContains(preferred, names, rows) {
		return preferred, nil
	}

	for _, cand := range fallbackDelimiters {
		if cand == preferred {
			continue
		}
		if !contentContains(cand, names, rows) {
			return cand, nil
		}
	}

	return 0, ErrDelimiterConflict
}

func contentContains(c byte, names []string, rows [][]string) bool {
	for _, n := range names {
		if strings.IndexByte(n, c) >= 0 {
			return true
		}
	}

	for _, row := range rows {
		for _, cell := range row {
			if strings.IndexByte(cell, c) >= 0 {
				return true
			}
		}
	}

	return false
}

func fieldLines(t *profile.Table, delim byte) []MetaEntry {
	sep := string(rune(delim))

	join := func(pick func(*profile.Column) string) string {
		vals := make([]string, len(t.Columns))
		for i, c := range t.Columns {
			vals[i] = pick(c)
		}
		return strings.Join(vals, sep)
	}

	return []MetaEntry{
		{"fields", join(func(c *profile.Column) string { return c.Name })},
		{"types", join(func(c *profile.Column) string { return c.Type.String() })},
		{"min", join(func(c *profile.Column) string { return profile.FormatValue(c.Min) })},
		{"max", join(func(c *profile.Column) string { return profile.FormatValue(c.Max) })},
		{"missing_count", join(func(c *profile.Column) string { return strconv.FormatInt(c.MissingCount, 10) })},
		{"description", join(func(c *profile.Column) string { return c.Description })},
	}
}

// WriteTo renders the document: a firstline, the commented METADATA
// and FIELDS sections, and the DATA section re-delimited with the
// chosen delimiter.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	bw := bufio.NewWriter(cw)

	fmt.Fprintf(bw, "# iCSV %s UTF-8\n", Version)

	fmt.Fprintln(bw, "# [METADATA]")
	writeEntries(bw, d.Metadata)
	fmt.Fprintln(bw)

	fmt.Fprintln(bw, "# [FIELDS]")
	writeEntries(bw, d.Fields)
	fmt.Fprintln(bw)

	fmt.Fprintln(bw, "# [DATA]")

	dw := csv.NewWriter(bw)
	dw.Comma = rune(d.Delimiter)

	if len(d.Header) > 0 {
		if err := dw.Write(d.Header); err != nil {
			return cw.n, err
		}
	}
	for _, row := range d.Rows {
		if err := dw.Write(row); err != nil {
			return cw.n, err
		}
	}
	dw.Flush()

	if err := dw.Error(); err != nil {
		return cw.n, err
	}

	err := bw.Flush()
	return cw.n, err
}

// writeEntries renders key = value lines, with no trailing space when
// the value is empty.
func writeEntries(w io.Writer, entries []MetaEntry) {
	for _, e := range entries {
		if e.Value == "" {
			fmt.Fprintf(w, "# %s =\n", e.Key)
		} else {
			fmt.Fprintf(w, "# %s = %s\n", e.Key, e.Value)
		}
	}
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(b []byte) (int, error) {
	n, err := c.w.Write(b)
	c.n += int64(n)
	return n, err
}
