package geo

import (
	"context"
)

// Service provides business logic for the geographic taxonomy.
// Mutations check referential existence of the parent level.
type Service struct {
	repo Repository
}

// NewService creates a new geo service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// --- States ---

func (s *Service) CreateState(ctx context.Context, st *State) error {
	if err := st.Validate(ctx); err != nil {
		return err
	}
	return s.repo.CreateState(ctx, st)
}

func (s *Service) GetState(ctx context.Context, id int64) (*State, error) {
	return s.repo.GetState(ctx, id)
}

func (s *Service) ListStates(ctx context.Context) ([]*State, error) {
	return s.repo.ListStates(ctx)
}

func (s *Service) UpdateState(ctx context.Context, st *State) error {
	if err := st.Validate(ctx); err != nil {
		return err
	}
	if _, err := s.repo.GetState(ctx, st.ID); err != nil {
		return err
	}
	return s.repo.UpdateState(ctx, st)
}

func (s *Service) DeleteState(ctx context.Context, id int64) error {
	if _, err := s.repo.GetState(ctx, id); err != nil {
		return err
	}
	return s.repo.DeleteState(ctx, id)
}

// --- Municipalities ---

func (s *Service) CreateMunicipality(ctx context.Context, m *Municipality) error {
	if err := m.Validate(ctx); err != nil {
		return err
	}
	if _, err := s.repo.GetState(ctx, m.StateID); err != nil {
		return err
	}
	return s.repo.CreateMunicipality(ctx, m)
}

func (s *Service) GetMunicipality(ctx context.Context, id int64) (*Municipality, error) {
	return s.repo.GetMunicipality(ctx, id)
}

func (s *Service) ListMunicipalities(ctx context.Context, stateID int64) ([]*Municipality, error) {
	return s.repo.ListMunicipalities(ctx, stateID)
}

func (s *Service) UpdateMunicipality(ctx context.Context, m *Municipality) error {
	if err := m.Validate(ctx); err != nil {
		return err
	}
	if _, err := s.repo.GetMunicipality(ctx, m.ID); err != nil {
		return err
	}
	if _, err := s.repo.GetState(ctx, m.StateID); err != nil {
		return err
	}
	return s.repo.UpdateMunicipality(ctx, m)
}

func (s *Service) DeleteMunicipality(ctx context.Context, id int64) error {
	if _, err := s.repo.GetMunicipality(ctx, id); err != nil {
		return err
	}
	return s.repo.DeleteMunicipality(ctx, id)
}

// --- Localities ---

func (s *Service) CreateLocality(ctx context.Context, l *Locality) error {
	if err := l.Validate(ctx); err != nil {
		return err
	}
	if _, err := s.repo.GetMunicipality(ctx, l.MunicipalityID); err != nil {
		return err
	}
	return s.repo.CreateLocality(ctx, l)
}

func (s *Service) GetLocality(ctx context.Context, id int64) (*Locality, error) {
	return s.repo.GetLocality(ctx, id)
}

func (s *Service) ListLocalities(ctx context.Context, municipalityID int64) ([]*Locality, error) {
	return s.repo.ListLocalities(ctx, municipalityID)
}

func (s *Service) UpdateLocality(ctx context.Context, l *Locality) error {
	if err := l.Validate(ctx); err != nil {
		return err
	}
	if _, err := s.repo.GetLocality(ctx, l.ID); err != nil {
		return err
	}
	if _, err := s.repo.GetMunicipality(ctx, l.MunicipalityID); err != nil {
		return err
	}
	return s.repo.UpdateLocality(ctx, l)
}

func (s *Service) DeleteLocality(ctx context.Context, id int64) error {
	if _, err := s.repo.GetLocality(ctx, id); err != nil {
		return err
	}
	return s.repo.DeleteLocality(ctx, id)
}
