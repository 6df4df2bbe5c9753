package postgres

import (
	"context"

	"github.com/Masterminds/squirrel"

	"nautica/internal/domain/geo"
)

// GeoRepo persists the geographic taxonomy: states, municipalities and
// localities.
type GeoRepo struct {
	states         baseRepo[geo.State]
	municipalities baseRepo[geo.Municipality]
	localities     baseRepo[geo.Locality]
}

var _ geo.Repository = (*GeoRepo)(nil)

func NewGeoRepo(tx *TxManager) *GeoRepo {
	return &GeoRepo{
		states:         newBaseRepo[geo.State](tx, "states"),
		municipalities: newBaseRepo[geo.Municipality](tx, "municipalities"),
		localities:     newBaseRepo[geo.Locality](tx, "localities"),
	}
}

func (r *GeoRepo) CreateState(ctx context.Context, s *geo.State) error {
	id, err := r.states.insert(ctx, s)
	if err != nil {
		return err
	}
	s.ID = id
	return nil
}

func (r *GeoRepo) GetState(ctx context.Context, id int64) (*geo.State, error) {
	return r.states.getByID(ctx, id)
}

func (r *GeoRepo) ListStates(ctx context.Context) ([]*geo.State, error) {
	return r.states.selectMany(ctx, r.states.baseSelect().OrderBy("name ASC"))
}

func (r *GeoRepo) UpdateState(ctx context.Context, s *geo.State) error {
	return r.states.update(ctx, s)
}

func (r *GeoRepo) DeleteState(ctx context.Context, id int64) error {
	return r.states.delete(ctx, id)
}

func (r *GeoRepo) CreateMunicipality(ctx context.Context, m *geo.Municipality) error {
	id, err := r.municipalities.insert(ctx, m)
	if err != nil {
		return err
	}
	m.ID = id
	return nil
}

func (r *GeoRepo) GetMunicipality(ctx context.Context, id int64) (*geo.Municipality, error) {
	return r.municipalities.getByID(ctx, id)
}

// ListMunicipalities filters by state when stateID > 0.
func (r *GeoRepo) ListMunicipalities(ctx context.Context, stateID int64) ([]*geo.Municipality, error) {
	q := r.municipalities.baseSelect().OrderBy("name ASC")
	if stateID > 0 {
		q = q.Where(squirrel.Eq{"state_id": stateID})
	}
	return r.municipalities.selectMany(ctx, q)
}

func (r *GeoRepo) UpdateMunicipality(ctx context.Context, m *geo.Municipality) error {
	return r.municipalities.update(ctx, m)
}

func (r *GeoRepo) DeleteMunicipality(ctx context.Context, id int64) error {
	return r.municipalities.delete(ctx, id)
}

func (r *GeoRepo) CreateLocality(ctx context.Context, l *geo.Locality) error {
	id, err := r.localities.insert(ctx, l)
	if err != nil {
		return err
	}
	l.ID = id
	return nil
}

func (r *GeoRepo) GetLocality(ctx context.Context, id int64) (*geo.Locality, error) {
	return r.localities.getByID(ctx, id)
}

// ListLocalities filters by municipality when municipalityID > 0.
func (r *GeoRepo) ListLocalities(ctx context.Context, municipalityID int64) ([]*geo.Locality, error) {
	q := r.localities.baseSelect().OrderBy("name ASC")
	if municipalityID > 0 {
		q = q.Where(squirrel.Eq{"municipality_id": municipalityID})
	}
	return r.localities.selectMany(ctx, q)
}

func (r *GeoRepo) UpdateLocality(ctx context.Context, l *geo.Locality) error {
	return r.localities.update(ctx, l)
}

func (r *GeoRepo) DeleteLocality(ctx context.Context, id int64) error {
	return r.localities.delete(ctx, id)
}
