package folio

import (
	"context"
	"errors"
)

// ErrTransient marks store errors that are expected under contention
// (serialization failures, unique-constraint races, dropped connections).
// The allocator retries these a bounded number of times; everything else
// propagates immediately.
var ErrTransient = errors.New("transient store error")

// Repository defines persistence for folios.
//
// NextNumber is the heart of the concurrency discipline: it must bump the
// per-year counter atomically with respect to concurrent callers (a single
// increment-and-return statement on the counter row), never read-then-write.
type Repository interface {
	// NextNumber atomically increments and returns the sequence counter
	// for the given year. The first call for a year returns 1.
	NextNumber(ctx context.Context, year int) (int64, error)

	// Insert persists a new folio row and fills in ID and CreatedAt.
	Insert(ctx context.Context, f *Folio) error

	// GetByNumber returns the folio with the given composite public number.
	GetByNumber(ctx context.Context, composite int64) (*Folio, error)

	// GetByID returns the folio with the given internal id.
	GetByID(ctx context.Context, id int64) (*Folio, error)
}
