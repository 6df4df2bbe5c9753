// Package club provides the Club catalog: beach clubs anchored to the
// geographic taxonomy, with nested images and characteristics.
package club

import (
	"context"
	"strings"
	"time"

	"nautica/internal/core/apperror"
	"nautica/internal/domain/catalog/category"
	"nautica/internal/domain/catalog/media"
	"nautica/internal/domain/geo"
)

// Club is a bookable beach club venue.
type Club struct {
	ID             int64     `db:"id" json:"id"`
	Name           string    `db:"name" json:"name"`
	Description    *string   `db:"description" json:"description,omitempty"`
	Address        *string   `db:"address" json:"address,omitempty"`
	Phone          *string   `db:"phone" json:"phone,omitempty"`
	Website        *string   `db:"website" json:"website,omitempty"`
	CategoryID     int64     `db:"category_id" json:"categoryId"`
	StateID        int64     `db:"state_id" json:"stateId"`
	MunicipalityID int64     `db:"municipality_id" json:"municipalityId"`
	LocalityID     int64     `db:"locality_id" json:"localityId"`
	CreatedAt      time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt      time.Time `db:"updated_at" json:"updatedAt"`

	Category        *category.Category     `db:"-" json:"category,omitempty"`
	State           *geo.State             `db:"-" json:"state,omitempty"`
	Municipality    *geo.Municipality      `db:"-" json:"municipality,omitempty"`
	Locality        *geo.Locality          `db:"-" json:"locality,omitempty"`
	Images          []media.Image          `db:"-" json:"images,omitempty"`
	Characteristics []media.Characteristic `db:"-" json:"characteristics,omitempty"`
}

// Validate implements self-validation.
func (c *Club) Validate(ctx context.Context) error {
	if strings.TrimSpace(c.Name) == "" {
		return apperror.NewValidation("club name is required").
			WithDetail("field", "name")
	}
	if c.CategoryID <= 0 {
		return apperror.NewValidation("category is required").
			WithDetail("field", "categoryId")
	}
	if c.StateID <= 0 || c.MunicipalityID <= 0 || c.LocalityID <= 0 {
		return apperror.NewValidation("state, municipality and locality are required")
	}
	return nil
}
