package club

import (
	"context"

	"nautica/internal/domain/catalog/media"
)

// Repository defines the interface for Club persistence.
type Repository interface {
	Create(ctx context.Context, c *Club) error
	GetByID(ctx context.Context, id int64) (*Club, error)
	// GetDetailed loads the club with category, geography, images and
	// characteristics.
	GetDetailed(ctx context.Context, id int64) (*Club, error)
	List(ctx context.Context) ([]*Club, error)
	Update(ctx context.Context, c *Club) error
	Delete(ctx context.Context, id int64) error

	AddImage(ctx context.Context, img *media.Image) error
	DeleteImage(ctx context.Context, imageID int64) error
	AddCharacteristic(ctx context.Context, ch *media.Characteristic) error
	DeleteCharacteristic(ctx context.Context, characteristicID int64) error
}
