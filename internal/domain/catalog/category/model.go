// Package category provides the product category catalogs (yacht categories,
// tour categories, club types). All three share the same shape, so one
// kind-discriminated entity covers them.
package category

import (
	"context"
	"strings"
	"time"

	"nautica/internal/core/apperror"
)

// Kind identifies which product family a category belongs to.
type Kind string

const (
	KindYacht Kind = "yacht"
	KindTour  Kind = "tour"
	KindClub  Kind = "club"
)

// Category is a named grouping of catalog products.
type Category struct {
	ID        int64     `db:"id" json:"id"`
	Kind      Kind      `db:"kind" json:"kind"`
	Name      string    `db:"name" json:"name"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// Validate implements self-validation.
func (c *Category) Validate(ctx context.Context) error {
	if strings.TrimSpace(c.Name) == "" {
		return apperror.NewValidation("category name is required").
			WithDetail("field", "name")
	}
	if !isValidKind(c.Kind) {
		return apperror.NewValidation("invalid category kind").
			WithDetail("field", "kind").
			WithDetail("value", string(c.Kind))
	}
	return nil
}

func isValidKind(k Kind) bool {
	switch k {
	case KindYacht, KindTour, KindClub:
		return true
	}
	return false
}
