package yacht

import (
	"context"
	"fmt"

	"nautica/internal/core/apperror"
	"nautica/internal/domain/catalog/category"
	"nautica/internal/domain/catalog/media"
	"nautica/pkg/logger"
)

// Service provides business logic for the Yacht catalog.
type Service struct {
	repo       Repository
	categories category.Repository
	uploader   media.Uploader
}

// NewService creates a new yacht service.
func NewService(repo Repository, categories category.Repository, uploader media.Uploader) *Service {
	return &Service{repo: repo, categories: categories, uploader: uploader}
}

// Create validates the yacht and checks the referenced category exists.
func (s *Service) Create(ctx context.Context, y *Yacht) error {
	if err := y.Validate(ctx); err != nil {
		return err
	}

	cat, err := s.categories.GetByID(ctx, y.CategoryID)
	if err != nil {
		return err
	}
	if cat.Kind != category.KindYacht {
		return apperror.NewValidation("category is not a yacht category").
			WithDetail("categoryId", y.CategoryID)
	}

	if err := s.repo.Create(ctx, y); err != nil {
		return err
	}

	logger.Info(ctx, "yacht created", "id", y.ID, "name", y.Name)
	return nil
}

// GetByID retrieves a yacht with category, images and characteristics.
func (s *Service) GetByID(ctx context.Context, id int64) (*Yacht, error) {
	return s.repo.GetDetailed(ctx, id)
}

// List returns all yachts (without nested collections).
func (s *Service) List(ctx context.Context) ([]*Yacht, error) {
	return s.repo.List(ctx)
}

// Update validates and persists yacht changes.
func (s *Service) Update(ctx context.Context, y *Yacht) error {
	if err := y.Validate(ctx); err != nil {
		return err
	}
	if _, err := s.repo.GetByID(ctx, y.ID); err != nil {
		return err
	}
	return s.repo.Update(ctx, y)
}

// Delete removes a yacht.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// AddImage uploads image bytes to the bucket service and records the URL.
func (s *Service) AddImage(ctx context.Context, yachtID int64, name, contentType string, data []byte) (*media.Image, error) {
	if _, err := s.repo.GetByID(ctx, yachtID); err != nil {
		return nil, err
	}

	url, err := s.uploader.Upload(ctx, fmt.Sprintf("yachts/%d/%s", yachtID, name), contentType, data)
	if err != nil {
		return nil, fmt.Errorf("upload image: %w", err)
	}

	img := &media.Image{URL: url, OwnerID: yachtID}
	if err := s.repo.AddImage(ctx, img); err != nil {
		return nil, err
	}
	return img, nil
}

// RemoveImage deletes an image record. The hosted file is left to the
// bucket's lifecycle rules.
func (s *Service) RemoveImage(ctx context.Context, imageID int64) error {
	return s.repo.DeleteImage(ctx, imageID)
}

// AddCharacteristic attaches a named characteristic to a yacht.
func (s *Service) AddCharacteristic(ctx context.Context, yachtID int64, name string) (*media.Characteristic, error) {
	if _, err := s.repo.GetByID(ctx, yachtID); err != nil {
		return nil, err
	}
	ch := &media.Characteristic{Name: name, OwnerID: yachtID}
	if err := s.repo.AddCharacteristic(ctx, ch); err != nil {
		return nil, err
	}
	return ch, nil
}

// RemoveCharacteristic deletes a characteristic.
func (s *Service) RemoveCharacteristic(ctx context.Context, characteristicID int64) error {
	return s.repo.DeleteCharacteristic(ctx, characteristicID)
}
