package yacht

import (
	"context"

	"nautica/internal/domain/catalog/media"
)

// Repository defines the interface for Yacht persistence.
type Repository interface {
	Create(ctx context.Context, y *Yacht) error
	GetByID(ctx context.Context, id int64) (*Yacht, error)
	// GetDetailed loads the yacht with category, images and characteristics.
	GetDetailed(ctx context.Context, id int64) (*Yacht, error)
	List(ctx context.Context) ([]*Yacht, error)
	Update(ctx context.Context, y *Yacht) error
	Delete(ctx context.Context, id int64) error

	AddImage(ctx context.Context, img *media.Image) error
	DeleteImage(ctx context.Context, imageID int64) error
	AddCharacteristic(ctx context.Context, ch *media.Characteristic) error
	DeleteCharacteristic(ctx context.Context, characteristicID int64) error
}
