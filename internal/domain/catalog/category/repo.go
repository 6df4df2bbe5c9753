package category

import "context"

// Repository defines the interface for Category persistence.
type Repository interface {
	Create(ctx context.Context, c *Category) error
	GetByID(ctx context.Context, id int64) (*Category, error)
	GetByName(ctx context.Context, kind Kind, name string) (*Category, error)
	List(ctx context.Context, kind Kind) ([]*Category, error)
	Update(ctx context.Context, c *Category) error
	Delete(ctx context.Context, id int64) error
}
