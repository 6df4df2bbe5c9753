// Package yacht provides the Yacht catalog: bookable vessels with nested
// images and characteristics.
package yacht

import (
	"context"
	"strings"
	"time"

	"nautica/internal/core/apperror"
	"nautica/internal/core/types"
	"nautica/internal/domain/catalog/category"
	"nautica/internal/domain/catalog/media"
)

// Status values for a yacht listing.
const (
	StatusActive      = "active"
	StatusMaintenance = "maintenance"
	StatusInactive    = "inactive"
)

// Yacht is a bookable vessel.
type Yacht struct {
	ID          int64       `db:"id" json:"id"`
	Name        string      `db:"name" json:"name"`
	Capacity    int         `db:"capacity" json:"capacity"`
	Length      string      `db:"length" json:"length"`
	Location    string      `db:"location" json:"location"`
	Description string      `db:"description" json:"description"`
	Features    *string     `db:"features" json:"features,omitempty"`
	Price       types.Money `db:"price" json:"price"`
	Status      string      `db:"status" json:"status"`
	CategoryID  int64       `db:"category_id" json:"categoryId"`
	CreatedAt   time.Time   `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time   `db:"updated_at" json:"updatedAt"`

	// Loaded on detail reads, not stored on the yachts table.
	Category        *category.Category     `db:"-" json:"category,omitempty"`
	Images          []media.Image          `db:"-" json:"images,omitempty"`
	Characteristics []media.Characteristic `db:"-" json:"characteristics,omitempty"`
}

// Validate implements self-validation.
func (y *Yacht) Validate(ctx context.Context) error {
	if strings.TrimSpace(y.Name) == "" {
		return apperror.NewValidation("yacht name is required").
			WithDetail("field", "name")
	}
	if y.Capacity <= 0 {
		return apperror.NewValidation("capacity must be positive").
			WithDetail("field", "capacity").
			WithDetail("value", y.Capacity)
	}
	if y.CategoryID <= 0 {
		return apperror.NewValidation("category is required").
			WithDetail("field", "categoryId")
	}
	if y.Status == "" {
		y.Status = StatusActive
	}
	return nil
}
