// Package folio provides sequential receipt-number generation.
// Each calendar year owns an independent, gap-free sequence starting at 1;
// the public folio number is the sequence number with a two-digit year
// suffix appended.
package folio

import (
	"fmt"
	"strconv"
	"time"
)

// Folio is a receipt number issued once per reservation, immutable after
// creation. (year, number) is the canonical identity; the composite public
// number is a display and lookup key.
type Folio struct {
	// ID is the primary key, assigned by the store.
	ID int64 `db:"id" json:"id"`

	// Year is the four-digit calendar year the folio belongs to.
	Year int `db:"year" json:"year"`

	// Number is the position within the year's sequence, starting at 1.
	Number int64 `db:"number" json:"number"`

	// Folio is the composite public number, e.g. sequence 7 in 2025 -> 725.
	Folio int64 `db:"folio" json:"folio"`

	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

// Issued is the result of allocating a new folio.
type Issued struct {
	ID    int64 `json:"id"`
	Folio int64 `json:"folio"`
}

// Compose builds the public folio number: the decimal digits of the sequence
// number concatenated with the zero-padded two-digit year suffix, parsed back
// as an integer (sequence 1 in 2025 -> 125, sequence 12 in 2025 -> 1225).
//
// The sequence number is NOT zero-padded, so the mapping from a composite
// back to (year, number) is not bijective for every suffix once sequences
// grow past one digit. Callers must treat the composite as opaque and never
// derive (year, number) from it.
func Compose(number int64, year int) int64 {
	composite, err := strconv.ParseInt(fmt.Sprintf("%d%02d", number, year%100), 10, 64)
	if err != nil {
		// Only reachable if number itself overflows int64 digits; the
		// per-year sequence can never get there in practice.
		return 0
	}
	return composite
}
