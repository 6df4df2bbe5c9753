package tour

import (
	"context"
	"fmt"

	"nautica/internal/core/apperror"
	"nautica/internal/domain/catalog/category"
	"nautica/internal/domain/catalog/media"
	"nautica/pkg/logger"
)

// Service provides business logic for the Tour catalog.
type Service struct {
	repo       Repository
	categories category.Repository
	uploader   media.Uploader
}

// NewService creates a new tour service.
func NewService(repo Repository, categories category.Repository, uploader media.Uploader) *Service {
	return &Service{repo: repo, categories: categories, uploader: uploader}
}

// Create validates the tour and checks the referenced category exists.
func (s *Service) Create(ctx context.Context, t *Tour) error {
	if err := t.Validate(ctx); err != nil {
		return err
	}

	cat, err := s.categories.GetByID(ctx, t.CategoryID)
	if err != nil {
		return err
	}
	if cat.Kind != category.KindTour {
		return apperror.NewValidation("category is not a tour category").
			WithDetail("categoryId", t.CategoryID)
	}

	if err := s.repo.Create(ctx, t); err != nil {
		return err
	}

	logger.Info(ctx, "tour created", "id", t.ID, "name", t.Name)
	return nil
}

// GetByID retrieves a tour with category, images and characteristics.
func (s *Service) GetByID(ctx context.Context, id int64) (*Tour, error) {
	return s.repo.GetDetailed(ctx, id)
}

// List returns all tours (without nested collections).
func (s *Service) List(ctx context.Context) ([]*Tour, error) {
	return s.repo.List(ctx)
}

// Update validates and persists tour changes.
func (s *Service) Update(ctx context.Context, t *Tour) error {
	if err := t.Validate(ctx); err != nil {
		return err
	}
	if _, err := s.repo.GetByID(ctx, t.ID); err != nil {
		return err
	}
	return s.repo.Update(ctx, t)
}

// Delete removes a tour.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// AddImage uploads image bytes to the bucket service and records the URL.
func (s *Service) AddImage(ctx context.Context, tourID int64, name, contentType string, data []byte) (*media.Image, error) {
	if _, err := s.repo.GetByID(ctx, tourID); err != nil {
		return nil, err
	}

	url, err := s.uploader.Upload(ctx, fmt.Sprintf("tours/%d/%s", tourID, name), contentType, data)
	if err != nil {
		return nil, fmt.Errorf("upload image: %w", err)
	}

	img := &media.Image{URL: url, OwnerID: tourID}
	if err := s.repo.AddImage(ctx, img); err != nil {
		return nil, err
	}
	return img, nil
}

// RemoveImage deletes an image record.
func (s *Service) RemoveImage(ctx context.Context, imageID int64) error {
	return s.repo.DeleteImage(ctx, imageID)
}

// AddCharacteristic attaches a named characteristic to a tour.
func (s *Service) AddCharacteristic(ctx context.Context, tourID int64, name string) (*media.Characteristic, error) {
	if _, err := s.repo.GetByID(ctx, tourID); err != nil {
		return nil, err
	}
	ch := &media.Characteristic{Name: name, OwnerID: tourID}
	if err := s.repo.AddCharacteristic(ctx, ch); err != nil {
		return nil, err
	}
	return ch, nil
}

// RemoveCharacteristic deletes a characteristic.
func (s *Service) RemoveCharacteristic(ctx context.Context, characteristicID int64) error {
	return s.repo.DeleteCharacteristic(ctx, characteristicID)
}
