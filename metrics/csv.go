package metrics

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/katalvlaran/majority/majority"
)

// ErrExport indicates that records could not be written. It wraps the
// underlying I/O error.
var ErrExport = errors.New("metrics: export failed")

// Header is the fixed CSV column order.
var Header = []string{
	"Algorithm",
	"InputSize",
	"InputType",
	"ArrayAccesses",
	"Comparisons",
	"MemoryAllocations",
	"ExecutionTimeNs",
}

// WriteCSV writes Header followed by one row per record.
func WriteCSV(w io.Writer, records []majority.Metrics) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("%w: header: %w", ErrExport, err)
	}

	row := make([]string, len(Header))
	for i, m := range records {
		row[0] = m.Algorithm
		row[1] = strconv.Itoa(m.InputSize)
		row[2] = m.InputType
		row[3] = strconv.FormatInt(m.ArrayAccesses, 10)
		row[4] = strconv.FormatInt(m.Comparisons, 10)
		row[5] = strconv.FormatInt(m.MemoryAllocations, 10)
		row[6] = strconv.FormatInt(m.ExecutionTimeNs(), 10)
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("%w: row %d: %w", ErrExport, i, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("%w: %w", ErrExport, err)
	}
	return nil
}

// ExportCSV creates (or truncates) path and writes records to it.
func ExportCSV(path string, records []majority.Metrics) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExport, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: close %s: %w", ErrExport, path, cerr)
		}
	}()

	return WriteCSV(f, records)
}
