package reservation

import (
	"context"

	"nautica/internal/domain/catalog/club"
	"nautica/internal/domain/catalog/tour"
	"nautica/internal/domain/catalog/yacht"
)

// Repository defines the interface for Reservation persistence.
// List results are ordered by creation time descending.
type Repository interface {
	Insert(ctx context.Context, r *Reservation) error
	GetByID(ctx context.Context, id int64) (*Reservation, error)
	List(ctx context.Context) ([]*Reservation, error)
	FindByProduct(ctx context.Context, productID int64, typ ProductType) ([]*Reservation, error)
	FindByStatus(ctx context.Context, status Status) ([]*Reservation, error)
	FindByEmail(ctx context.Context, email string) ([]*Reservation, error)
	FindByFolioID(ctx context.Context, folioID int64) ([]*Reservation, error)
	Update(ctx context.Context, r *Reservation) error
	Delete(ctx context.Context, id int64) error
}

// CatalogLookup resolves the catalog entity a reservation points at, with
// images and characteristics loaded. Implemented over the catalog services.
type CatalogLookup interface {
	Yacht(ctx context.Context, id int64) (*yacht.Yacht, error)
	Tour(ctx context.Context, id int64) (*tour.Tour, error)
	Club(ctx context.Context, id int64) (*club.Club, error)
}

// AuditRecorder records reservation mutations for the audit trail.
// Recording is best-effort; failures never abort the mutation.
type AuditRecorder interface {
	Record(ctx context.Context, entityType string, entityID int64, action string, changes any) error
}
