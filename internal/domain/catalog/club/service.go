package club

import (
	"context"
	"fmt"

	"nautica/internal/core/apperror"
	"nautica/internal/domain/catalog/category"
	"nautica/internal/domain/catalog/media"
	"nautica/internal/domain/geo"
	"nautica/pkg/logger"
)

// Service provides business logic for the Club catalog.
type Service struct {
	repo       Repository
	categories category.Repository
	geo        geo.Repository
	uploader   media.Uploader
}

// NewService creates a new club service.
func NewService(repo Repository, categories category.Repository, geoRepo geo.Repository, uploader media.Uploader) *Service {
	return &Service{repo: repo, categories: categories, geo: geoRepo, uploader: uploader}
}

// Create validates the club, its category kind, and the geographic chain
// (locality belongs to municipality belongs to state).
func (s *Service) Create(ctx context.Context, c *Club) error {
	if err := c.Validate(ctx); err != nil {
		return err
	}

	cat, err := s.categories.GetByID(ctx, c.CategoryID)
	if err != nil {
		return err
	}
	if cat.Kind != category.KindClub {
		return apperror.NewValidation("category is not a club category").
			WithDetail("categoryId", c.CategoryID)
	}

	if err := s.checkGeography(ctx, c); err != nil {
		return err
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return err
	}

	logger.Info(ctx, "club created", "id", c.ID, "name", c.Name)
	return nil
}

func (s *Service) checkGeography(ctx context.Context, c *Club) error {
	if _, err := s.geo.GetState(ctx, c.StateID); err != nil {
		return err
	}
	mun, err := s.geo.GetMunicipality(ctx, c.MunicipalityID)
	if err != nil {
		return err
	}
	if mun.StateID != c.StateID {
		return apperror.NewValidation("municipality does not belong to state").
			WithDetail("municipalityId", c.MunicipalityID).
			WithDetail("stateId", c.StateID)
	}
	loc, err := s.geo.GetLocality(ctx, c.LocalityID)
	if err != nil {
		return err
	}
	if loc.MunicipalityID != c.MunicipalityID {
		return apperror.NewValidation("locality does not belong to municipality").
			WithDetail("localityId", c.LocalityID).
			WithDetail("municipalityId", c.MunicipalityID)
	}
	return nil
}

// GetByID retrieves a club with nested details.
func (s *Service) GetByID(ctx context.Context, id int64) (*Club, error) {
	return s.repo.GetDetailed(ctx, id)
}

// List returns all clubs (without nested collections).
func (s *Service) List(ctx context.Context) ([]*Club, error) {
	return s.repo.List(ctx)
}

// Update validates and persists club changes.
func (s *Service) Update(ctx context.Context, c *Club) error {
	if err := c.Validate(ctx); err != nil {
		return err
	}
	if _, err := s.repo.GetByID(ctx, c.ID); err != nil {
		return err
	}
	if err := s.checkGeography(ctx, c); err != nil {
		return err
	}
	return s.repo.Update(ctx, c)
}

// Delete removes a club.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// AddImage uploads image bytes to the bucket service and records the URL.
func (s *Service) AddImage(ctx context.Context, clubID int64, name, contentType string, data []byte) (*media.Image, error) {
	if _, err := s.repo.GetByID(ctx, clubID); err != nil {
		return nil, err
	}

	url, err := s.uploader.Upload(ctx, fmt.Sprintf("clubs/%d/%s", clubID, name), contentType, data)
	if err != nil {
		return nil, fmt.Errorf("upload image: %w", err)
	}

	img := &media.Image{URL: url, OwnerID: clubID}
	if err := s.repo.AddImage(ctx, img); err != nil {
		return nil, err
	}
	return img, nil
}

// RemoveImage deletes an image record.
func (s *Service) RemoveImage(ctx context.Context, imageID int64) error {
	return s.repo.DeleteImage(ctx, imageID)
}

// AddCharacteristic attaches a named characteristic to a club.
func (s *Service) AddCharacteristic(ctx context.Context, clubID int64, name string) (*media.Characteristic, error) {
	if _, err := s.repo.GetByID(ctx, clubID); err != nil {
		return nil, err
	}
	ch := &media.Characteristic{Name: name, OwnerID: clubID}
	if err := s.repo.AddCharacteristic(ctx, ch); err != nil {
		return nil, err
	}
	return ch, nil
}

// RemoveCharacteristic deletes a characteristic.
func (s *Service) RemoveCharacteristic(ctx context.Context, characteristicID int64) error {
	return s.repo.DeleteCharacteristic(ctx, characteristicID)
}
