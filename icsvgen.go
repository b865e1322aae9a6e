// Package icsvgen turns tabular input into a self-documented iCSV
// file plus a machine-validatable schema descriptor.
package icsvgen

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"icsvgen/format"
	"icsvgen/icsv"
	"icsvgen/profile"
	"icsvgen/reader"
)

// Generator recorded in the metadata section of produced documents.
const Generator = "icsvgen"

// Number of leading lines sampled for delimiter detection.
const sampleSize = 10

type Request struct {
	// Input path. Empty or "-" reads delimited text from stdin.
	Path string

	// Output paths. Defaulted from Path when empty.
	OutPath    string
	SchemaPath string

	// Forced input delimiter. Empty means detect.
	Delimiter string

	// Header indicates the first record holds column names.
	Header bool

	// Compression of the input, detected from the path when empty.
	Compression string

	// Spreadsheet inputs: sheet name or 0-based index, and the
	// 1-based header row (0 means none).
	Sheet     string
	HeaderRow int

	// Nodata is an extra missing-value token, also used to pad short
	// rows and reported in the metadata.
	Nodata string

	// ApplicationProfile is an optional metadata label.
	ApplicationProfile string

	// Summary, when set, receives a rendered profile table.
	Summary io.Writer
}

// Run loads the input, profiles it and writes both descriptors.
func Run(r *Request) error {
	fileType, fileComp := reader.DetectType(r.Path)

	if r.Compression == "" {
		r.Compression = fileComp
	}

	if fileType == "xlsx" {
		rs, err := reader.ReadSheet(r.Path, r.Sheet, xlsxHeaderRow(r))
		if err != nil {
			return err
		}

		// Spreadsheets have no text delimiter; comma stands in and
		// steers the output toward a pipe.
		return RunRowSet(rs, ',', r)
	}

	in, err := reader.Open(r.Path, r.Compression)
	if err != nil {
		return fmt.Errorf("cannot open input: %w", err)
	}
	defer in.Close()

	data, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("cannot read input: %w", err)
	}

	var forced byte
	switch {
	case r.Delimiter != "":
		forced = r.Delimiter[0]
	case fileType == "tsv":
		forced = '\t'
	}

	delim := profile.DetectDelimiter(reader.SampleLines(data, sampleSize), forced)
	slog.Debug("input delimiter", "delimiter", string(rune(delim)))

	rs, err := reader.ReadDelimited(bytes.NewReader(data), delim, r.Header)
	if err != nil {
		return err
	}

	return RunRowSet(rs, delim, r)
}

// RunRowSet profiles an already-loaded row set and writes both
// descriptors. The delimiter is the one the rows were split on and
// informs the output delimiter choice only.
func RunRowSet(rs *reader.RowSet, delim byte, r *Request) error {
	vocab := profile.DefaultVocabulary()
	if r.Nodata != "" {
		vocab = profile.NewVocabulary(r.Nodata)
	}

	names := profile.ColumnNames(rs.Header)
	rows := profile.NormalizeWidth(rs.Rows, len(names), r.Nodata)

	table := profile.NewProfiler(vocab).Profile(names, rows)
	table.Delimiter = delim
	if r.Nodata != "" {
		table.Nodata = r.Nodata
	}

	slog.Info("profiled input", "rows", table.RecordCount, "columns", len(table.Columns))

	doc, err := icsv.Build(table, rows, icsv.Options{
		ApplicationProfile: r.ApplicationProfile,
		Generator:          Generator,
		Created:            time.Now().UTC(),
	})
	if err != nil {
		return err
	}

	outPath, schemaPath, err := outputPaths(r)
	if err != nil {
		return err
	}

	if err := writeFile(outPath, func(w io.Writer) error {
		_, err := doc.WriteTo(w)
		return err
	}); err != nil {
		return err
	}
	slog.Info("wrote annotated header", "path", outPath)

	if err := writeFile(schemaPath, icsv.BuildSchema(table).Encode); err != nil {
		return err
	}
	slog.Info("wrote schema", "path", schemaPath)

	if r.Summary != nil {
		return format.Summary(table, r.Summary)
	}

	return nil
}

func xlsxHeaderRow(r *Request) int {
	if r.HeaderRow > 0 {
		return r.HeaderRow
	}
	if r.Header {
		return 1
	}
	return 0
}

// outputPaths defaults the artifact paths next to the input:
// <input>.icsv and <input>_schema.json.
func outputPaths(r *Request) (string, string, error) {
	outPath := r.OutPath
	schemaPath := r.SchemaPath

	if outPath != "" && schemaPath != "" {
		return outPath, schemaPath, nil
	}

	if r.Path == "" || r.Path == "-" {
		return "", "", fmt.Errorf("output paths required when the input has no file path")
	}

	stem := strings.TrimSuffix(r.Path, filepath.Ext(r.Path))

	if outPath == "" {
		outPath = stem + ".icsv"
	}
	if schemaPath == "" {
		schemaPath = stem + "_schema.json"
	}

	return outPath, schemaPath, nil
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}

	return f.Close()
}
