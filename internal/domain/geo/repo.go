package geo

import "context"

// Repository defines the interface for geographic taxonomy persistence.
type Repository interface {
	CreateState(ctx context.Context, s *State) error
	GetState(ctx context.Context, id int64) (*State, error)
	ListStates(ctx context.Context) ([]*State, error)
	UpdateState(ctx context.Context, s *State) error
	DeleteState(ctx context.Context, id int64) error

	CreateMunicipality(ctx context.Context, m *Municipality) error
	GetMunicipality(ctx context.Context, id int64) (*Municipality, error)
	// ListMunicipalities filters by state when stateID > 0.
	ListMunicipalities(ctx context.Context, stateID int64) ([]*Municipality, error)
	UpdateMunicipality(ctx context.Context, m *Municipality) error
	DeleteMunicipality(ctx context.Context, id int64) error

	CreateLocality(ctx context.Context, l *Locality) error
	GetLocality(ctx context.Context, id int64) (*Locality, error)
	// ListLocalities filters by municipality when municipalityID > 0.
	ListLocalities(ctx context.Context, municipalityID int64) ([]*Locality, error)
	UpdateLocality(ctx context.Context, l *Locality) error
	DeleteLocality(ctx context.Context, id int64) error
}
