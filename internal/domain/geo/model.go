// Package geo provides the geographic taxonomy: states, their
// municipalities, and the localities inside each municipality.
package geo

import (
	"context"
	"strings"
	"time"

	"nautica/internal/core/apperror"
)

// State is a top-level administrative region.
type State struct {
	ID        int64     `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// Municipality belongs to a state.
type Municipality struct {
	ID        int64     `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	StateID   int64     `db:"state_id" json:"stateId"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`

	State *State `db:"-" json:"state,omitempty"`
}

// Locality belongs to a municipality.
type Locality struct {
	ID             int64     `db:"id" json:"id"`
	Name           string    `db:"name" json:"name"`
	MunicipalityID int64     `db:"municipality_id" json:"municipalityId"`
	CreatedAt      time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt      time.Time `db:"updated_at" json:"updatedAt"`

	Municipality *Municipality `db:"-" json:"municipality,omitempty"`
}

func validateName(name, entity string) error {
	if strings.TrimSpace(name) == "" {
		return apperror.NewValidation(entity + " name is required").
			WithDetail("field", "name")
	}
	return nil
}

// Validate implements self-validation.
func (s *State) Validate(ctx context.Context) error {
	return validateName(s.Name, "state")
}

// Validate implements self-validation.
func (m *Municipality) Validate(ctx context.Context) error {
	if err := validateName(m.Name, "municipality"); err != nil {
		return err
	}
	if m.StateID <= 0 {
		return apperror.NewValidation("state is required").
			WithDetail("field", "stateId")
	}
	return nil
}

// Validate implements self-validation.
func (l *Locality) Validate(ctx context.Context) error {
	if err := validateName(l.Name, "locality"); err != nil {
		return err
	}
	if l.MunicipalityID <= 0 {
		return apperror.NewValidation("municipality is required").
			WithDetail("field", "municipalityId")
	}
	return nil
}
