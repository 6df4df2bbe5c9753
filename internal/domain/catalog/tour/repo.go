package tour

import (
	"context"

	"nautica/internal/domain/catalog/media"
)

// Repository defines the interface for Tour persistence.
type Repository interface {
	Create(ctx context.Context, t *Tour) error
	GetByID(ctx context.Context, id int64) (*Tour, error)
	// GetDetailed loads the tour with category, images and characteristics.
	GetDetailed(ctx context.Context, id int64) (*Tour, error)
	List(ctx context.Context) ([]*Tour, error)
	Update(ctx context.Context, t *Tour) error
	Delete(ctx context.Context, id int64) error

	AddImage(ctx context.Context, img *media.Image) error
	DeleteImage(ctx context.Context, imageID int64) error
	AddCharacteristic(ctx context.Context, ch *media.Characteristic) error
	DeleteCharacteristic(ctx context.Context, characteristicID int64) error
}
