// Package media holds the nested collections shared by all catalog products:
// hosted images and free-form characteristics.
package media

import (
	"context"
	"time"
)

// Image is a hosted picture attached to a catalog product. The file itself
// lives in a managed bucket service; only the public URL is stored.
type Image struct {
	ID        int64     `db:"id" json:"id"`
	URL       string    `db:"url" json:"url"`
	OwnerID   int64     `db:"owner_id" json:"-"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// Characteristic is a named feature of a catalog product ("air conditioning",
// "life vests included").
type Characteristic struct {
	ID        int64     `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	OwnerID   int64     `db:"owner_id" json:"-"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// Uploader pushes image bytes to the managed storage backend and returns
// the public URL. Implementations live in infrastructure.
type Uploader interface {
	Upload(ctx context.Context, name string, contentType string, data []byte) (string, error)
}
