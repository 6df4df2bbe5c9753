// Package tour provides the Tour catalog: guided excursions with nested
// images and characteristics.
package tour

import (
	"context"
	"strings"
	"time"

	"nautica/internal/core/apperror"
	"nautica/internal/core/types"
	"nautica/internal/domain/catalog/category"
	"nautica/internal/domain/catalog/media"
)

// Status values for a tour listing.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// Tour is a bookable excursion.
type Tour struct {
	ID          int64       `db:"id" json:"id"`
	Name        string      `db:"name" json:"name"`
	Description string      `db:"description" json:"description"`
	Price       types.Money `db:"price" json:"price"`
	Location    string      `db:"location" json:"location"`
	Status      string      `db:"status" json:"status"`
	Schedule    *string     `db:"schedule" json:"schedule,omitempty"`
	Duration    *string     `db:"duration" json:"duration,omitempty"`
	MinimumAge  *string     `db:"minimum_age" json:"minimumAge,omitempty"`
	Transport   *string     `db:"transport" json:"transport,omitempty"`
	CategoryID  int64       `db:"category_id" json:"categoryId"`
	CreatedAt   time.Time   `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time   `db:"updated_at" json:"updatedAt"`

	Category        *category.Category     `db:"-" json:"category,omitempty"`
	Images          []media.Image          `db:"-" json:"images,omitempty"`
	Characteristics []media.Characteristic `db:"-" json:"characteristics,omitempty"`
}

// Validate implements self-validation.
func (t *Tour) Validate(ctx context.Context) error {
	if strings.TrimSpace(t.Name) == "" {
		return apperror.NewValidation("tour name is required").
			WithDetail("field", "name")
	}
	if t.CategoryID <= 0 {
		return apperror.NewValidation("category is required").
			WithDetail("field", "categoryId")
	}
	if t.Status == "" {
		t.Status = StatusActive
	}
	return nil
}
