package reader

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"icsvgen/profile"
)

// ReadSheet reads one workbook sheet into a RowSet. The sheet is
// selected by name or 0-based index ("" means the first sheet).
// headerRow is the 1-based row holding the column names; rows above it
// are skipped and 0 means no header, with names synthesized. Fully
// blank rows are dropped.
func ReadSheet(path, sheet string, headerRow int) (*RowSet, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	name, err := resolveSheet(f, sheet)
	if err != nil {
		return nil, err
	}

	raw, err := f.GetRows(name)
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", name, err)
	}

	var rows [][]string
	for _, row := range raw {
		if !blankRow(row) {
			rows = append(rows, row)
		}
	}

	if headerRow > len(rows) {
		return nil, fmt.Errorf("header row %d beyond sheet %s (%d rows)", headerRow, name, len(rows))
	}

	if headerRow < 1 {
		if len(rows) == 0 {
			return &RowSet{}, nil
		}
		return &RowSet{
			Header: profile.SyntheticHeader(len(rows[0])),
			Rows:   rows,
		}, nil
	}

	return &RowSet{
		Header: rows[headerRow-1],
		Rows:   rows[headerRow:],
	}, nil
}

// SheetNames lists the sheets of a workbook in order.
func SheetNames(path string) ([]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	return f.GetSheetList(), nil
}

// ConvertSheets writes the selected sheets (names or 0-based indexes,
// empty means all) of a workbook to one CSV file each, and returns the
// paths written. File names are <workbook>_<sheet>.csv with the sheet
// name sanitized.
func ConvertSheets(path, outdir string, sheets []string, headerRow int) ([]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	names := f.GetSheetList()

	if len(sheets) > 0 {
		selected := make([]string, 0, len(sheets))
		for _, s := range sheets {
			name, err := resolveSheet(f, s)
			if err != nil {
				return nil, err
			}
			selected = append(selected, name)
		}
		names = selected
	}

	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	var written []string
	for _, name := range names {
		rs, err := ReadSheet(path, name, headerRow)
		if err != nil {
			return nil, err
		}

		out := filepath.Join(outdir, fmt.Sprintf("%s_%s.csv", base, sanitizeSheetName(name)))
		if err := writeCSV(out, rs); err != nil {
			return nil, err
		}

		written = append(written, out)
	}

	return written, nil
}

func resolveSheet(f *excelize.File, sheet string) (string, error) {
	names := f.GetSheetList()

	if len(names) == 0 {
		return "", fmt.Errorf("workbook has no sheets")
	}

	if sheet == "" {
		return names[0], nil
	}

	if idx, err := strconv.Atoi(sheet); err == nil {
		if idx < 0 || idx >= len(names) {
			return "", fmt.Errorf("sheet index %d out of range", idx)
		}
		return names[idx], nil
	}

	for _, n := range names {
		if n == sheet {
			return n, nil
		}
	}

	return "", fmt.Errorf("sheet %q not found", sheet)
}

func blankRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}

	return true
}

func sanitizeSheetName(name string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == ' ', r == '_', r == '-':
			return r
		}
		return '_'
	}, name)
}

func writeCSV(path string, rs *RowSet) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)

	if len(rs.Header) > 0 {
		if err := w.Write(rs.Header); err != nil {
			return err
		}
	}
	for _, row := range rs.Rows {
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()

	if err := w.Error(); err != nil {
		return err
	}

	return f.Close()
}
