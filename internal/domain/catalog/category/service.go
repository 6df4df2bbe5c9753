package category

import (
	"context"

	"nautica/internal/core/apperror"
	"nautica/pkg/logger"
)

// Service provides business logic for product categories.
type Service struct {
	repo Repository
}

// NewService creates a new category service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create validates and persists a category, enforcing name uniqueness
// within the kind.
func (s *Service) Create(ctx context.Context, c *Category) error {
	if err := c.Validate(ctx); err != nil {
		return err
	}

	if existing, err := s.repo.GetByName(ctx, c.Kind, c.Name); err == nil && existing != nil {
		return apperror.NewDuplicate("category", "name", c.Name)
	} else if err != nil && !apperror.IsNotFound(err) {
		return err
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return err
	}

	logger.Info(ctx, "category created", "id", c.ID, "kind", c.Kind, "name", c.Name)
	return nil
}

// GetByID retrieves a category.
func (s *Service) GetByID(ctx context.Context, id int64) (*Category, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns all categories of a kind, or all when kind is empty.
func (s *Service) List(ctx context.Context, kind Kind) ([]*Category, error) {
	if kind != "" && !isValidKind(kind) {
		return nil, apperror.NewValidation("invalid category kind").
			WithDetail("value", string(kind))
	}
	return s.repo.List(ctx, kind)
}

// Update validates and persists category changes.
func (s *Service) Update(ctx context.Context, c *Category) error {
	if err := c.Validate(ctx); err != nil {
		return err
	}
	if _, err := s.repo.GetByID(ctx, c.ID); err != nil {
		return err
	}
	return s.repo.Update(ctx, c)
}

// Delete removes a category.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
