// Package csvlog reads machine state logs from comma-delimited text.
package csvlog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/huangsam/statelog/internal/contract"
	"github.com/huangsam/statelog/schema"
)

// Source is a pull-based row source over a CSV stream.
type Source struct {
	reader *csv.Reader
	closer io.Closer
}

// Open checks that path names a readable regular file and returns a Source over it.
// Any failure is classified as SourceUnavailable.
func Open(path string) (*Source, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, unavailable(path, err)
	}
	if info.IsDir() {
		return nil, unavailable(path, errors.New("is a directory"))
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, unavailable(path, err)
	}
	src := FromReader(file)
	src.closer = file
	return src, nil
}

// FromReader returns a Source over an arbitrary stream. The caller owns r.
func FromReader(r io.Reader) *Source {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // field count is validated per row by the decoder
	return &Source{reader: reader}
}

// Read returns the next record, or io.EOF when the stream is exhausted.
// Syntax errors in the stream are reported as malformed records.
func (s *Source) Read() ([]string, error) {
	record, err := s.reader.Read()
	if err == nil || errors.Is(err, io.EOF) {
		return record, err
	}
	var parseErr *csv.ParseError
	if errors.As(err, &parseErr) {
		return nil, fmt.Errorf("%w: %w", schema.ErrMalformedRecord, parseErr.Err)
	}
	return nil, err
}

// Close releases the underlying file, if any.
func (s *Source) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}

func unavailable(path string, err error) error {
	return schema.NewAnalysisError(schema.SourceUnavailable, 0,
		fmt.Errorf("%w: %s: %w", schema.ErrSourceUnavailable, path, err))
}

// records is an in-memory row source.
type records struct {
	rows [][]string
	next int
}

// FromRecords returns a row source that yields the given records in order.
func FromRecords(rows [][]string) contract.RowSource {
	return &records{rows: rows}
}

func (r *records) Read() ([]string, error) {
	if r.next >= len(r.rows) {
		return nil, io.EOF
	}
	row := r.rows[r.next]
	r.next++
	return row, nil
}
