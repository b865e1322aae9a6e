// Package reader provides the row sources: delimited text files,
// spreadsheet sheets and SQL result sets. Each yields a header plus
// raw string rows; nothing here classifies or mutates cell values.
package reader

import (
	"bytes"
	"compress/bzip2"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
)

var bom = []byte{0xef, 0xbb, 0xbf}

// UniversalReader wraps an io.Reader to strip a UTF-8 BOM and replace
// carriage returns with newlines, so line-oriented readers can split
// classic Mac and DOS files.
type UniversalReader struct {
	r     io.Reader
	begun bool
}

func (r *UniversalReader) Read(buf []byte) (int, error) {
	n, err := r.r.Read(buf)

	// A BOM is only meaningful at the start of the stream; the same
	// byte sequence later on is data.
	if !r.begun {
		r.begun = true

		if n >= len(bom) && bytes.Equal(buf[:len(bom)], bom) {
			copy(buf, buf[len(bom):n])
			n -= len(bom)
		}
	}

	// Replace carriage returns with newlines.
	for i := 0; i < n; i++ {
		if buf[i] == '\r' {
			buf[i] = '\n'
		}
	}

	return n, err
}

func (r *UniversalReader) Close() error {
	if rc, ok := r.r.(io.Closer); ok {
		return rc.Close()
	}
	return nil
}

func NewUniversalReader(r io.Reader) *UniversalReader {
	return &UniversalReader{r: r}
}

// DetectType attempts to detect the file format and compression type
// by looking at the file path extensions.
func DetectType(url string) (string, string) {
	_, name := path.Split(url)

	exts := strings.Split(name, ".")[1:]

	var (
		compression string
		format      string
	)

	for _, ext := range exts {
		switch ext {
		case "gz", "gzip":
			compression = "gzip"

		case "bz2", "bzip2":
			compression = "bzip2"

		case "csv", "icsv":
			format = "csv"

		case "tsv":
			format = "tsv"

		case "xlsx", "xlsm":
			format = "xlsx"
		}
	}

	return format, compression
}

func detectCompression(name string) string {
	switch filepath.Ext(name) {
	case ".gzip", ".gz":
		return "gzip"
	case ".bzip2", ".bz2":
		return "bzip2"
	}

	return ""
}

// Reader encapsulates a file or stdin stream with optional
// decompression and newline normalization.
type Reader struct {
	Name        string
	Compression string

	reader io.Reader
	file   *os.File
}

// Read implements the io.Reader interface.
func (r *Reader) Read(buf []byte) (int, error) {
	return r.reader.Read(buf)
}

// Close implements the io.Closer interface.
func (r *Reader) Close() {
	if r.file != nil {
		r.file.Close()
	}
}

// Open a reader by name with optional compression. If no name is
// specified, STDIN is used.
func Open(name, compr string) (*Reader, error) {
	r := &Reader{Name: name}

	if compr == "" {
		compr = detectCompression(name)
	}

	// Validate the compression method before touching files.
	switch compr {
	case "bzip2", "gzip", "":
	default:
		return nil, fmt.Errorf("unknown compression type %s", compr)
	}

	if name == "" || name == "-" {
		r.reader = os.Stdin
	} else {
		file, err := os.Open(name)
		if err != nil {
			return nil, err
		}

		r.file = file
		r.reader = file
	}

	switch compr {
	case "gzip":
		reader, err := gzip.NewReader(r.reader)
		if err != nil {
			r.Close()
			return nil, err
		}

		r.reader = reader
	case "bzip2":
		r.reader = bzip2.NewReader(r.reader)
	}

	r.Compression = compr

	r.reader = NewUniversalReader(r.reader)

	return r, nil
}
