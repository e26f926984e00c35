// Package csvio reads and writes the CSV files handled by the cleaner.
//
// Reading is header-keyed: the first row names the columns and every data
// row becomes a Record mapping column name to raw cell value. Column names
// match case-sensitively. A UTF-8 BOM, commonly added by Windows exports,
// is stripped before parsing so the first header still matches exactly.
package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// Record is one raw CSV row keyed by header column name.
type Record map[string]string

// Get returns the value for a column, or "" if the column is absent.
func (r Record) Get(col string) string {
	return r[col]
}

// ReadFile loads every record from the CSV file at path.
// It fails with an error naming the path if the file does not exist.
func ReadFile(path string) ([]Record, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("contacts file not found: %s", path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	return ReadAll(f)
}

// ReadAll parses header-keyed CSV records from r.
// Rows shorter than the header yield empty strings for the missing
// columns; extra cells beyond the header are ignored.
func ReadAll(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(newBOMSkippingReader(r))
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading csv header: %w", err)
	}

	var records []Record
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading csv row: %w", err)
		}

		rec := make(Record, len(header))
		for i, col := range header {
			if i < len(row) {
				rec[col] = row[i]
			} else {
				rec[col] = ""
			}
		}
		records = append(records, rec)
	}

	return records, nil
}

// bomSkippingReader wraps an io.Reader and skips a leading UTF-8 BOM
// (0xEF 0xBB 0xBF) if present.
type bomSkippingReader struct {
	reader  io.Reader
	checked bool
	pending []byte
}

func newBOMSkippingReader(r io.Reader) *bomSkippingReader {
	return &bomSkippingReader{reader: r}
}

// Read implements io.Reader. The first call checks for and drops the BOM;
// non-BOM lead bytes are buffered and served before further reads.
func (b *bomSkippingReader) Read(p []byte) (int, error) {
	if !b.checked {
		b.checked = true

		var buf [3]byte
		n, err := io.ReadFull(b.reader, buf[:])
		if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
			return 0, err
		}

		if !(n == 3 && buf[0] == 0xEF && buf[1] == 0xBB && buf[2] == 0xBF) {
			b.pending = append(b.pending, buf[:n]...)
		}
	}

	if len(b.pending) > 0 {
		n := copy(p, b.pending)
		b.pending = b.pending[n:]
		return n, nil
	}

	return b.reader.Read(p)
}
