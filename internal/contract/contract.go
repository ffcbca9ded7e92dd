// Package contract provides interfaces and shared utilities for internal architecture.
package contract

// RowSource yields raw log records one at a time, in file order.
// Read returns io.EOF once the input is exhausted. *csv.Reader satisfies it.
type RowSource interface {
	Read() ([]string, error)
}
