package postgres

import (
	"context"

	"nautica/internal/domain/catalog/category"
	"nautica/internal/domain/catalog/yacht"
	"nautica/pkg/logger"
)

// YachtRepo persists yachts together with their nested media collections.
type YachtRepo struct {
	baseRepo[yacht.Yacht]
	mediaRepo
	categories *CategoryRepo
}

var _ yacht.Repository = (*YachtRepo)(nil)

func NewYachtRepo(tx *TxManager, categories *CategoryRepo) *YachtRepo {
	return &YachtRepo{
		baseRepo:   newBaseRepo[yacht.Yacht](tx, "yachts"),
		mediaRepo:  newMediaRepo(tx, "yacht_images", "yacht_characteristics"),
		categories: categories,
	}
}

func (r *YachtRepo) Create(ctx context.Context, y *yacht.Yacht) error {
	id, err := r.insert(ctx, y)
	if err != nil {
		return err
	}
	y.ID = id
	return nil
}

func (r *YachtRepo) GetByID(ctx context.Context, id int64) (*yacht.Yacht, error) {
	return r.getByID(ctx, id)
}

// GetDetailed loads the yacht with its category, images and characteristics.
func (r *YachtRepo) GetDetailed(ctx context.Context, id int64) (*yacht.Yacht, error) {
	y, err := r.getByID(ctx, id)
	if err != nil {
		return nil, err
	}
	r.attach(ctx, y)
	return y, nil
}

func (r *YachtRepo) List(ctx context.Context) ([]*yacht.Yacht, error) {
	items, err := r.selectMany(ctx, r.baseSelect().OrderBy("name ASC"))
	if err != nil {
		return nil, err
	}
	for _, y := range items {
		r.attach(ctx, y)
	}
	return items, nil
}

func (r *YachtRepo) Update(ctx context.Context, y *yacht.Yacht) error {
	return r.update(ctx, y)
}

func (r *YachtRepo) Delete(ctx context.Context, id int64) error {
	return r.delete(ctx, id)
}

// attach loads relations best-effort; a failed relation load degrades to
// the bare row rather than failing the read.
func (r *YachtRepo) attach(ctx context.Context, y *yacht.Yacht) {
	var err error
	if y.Images, err = r.loadImages(ctx, y.ID); err != nil {
		logger.Warn(ctx, "load yacht images failed", "yacht_id", y.ID, "error", err)
	}
	if y.Characteristics, err = r.loadCharacteristics(ctx, y.ID); err != nil {
		logger.Warn(ctx, "load yacht characteristics failed", "yacht_id", y.ID, "error", err)
	}
	var cat *category.Category
	if cat, err = r.categories.GetByID(ctx, y.CategoryID); err == nil {
		y.Category = cat
	}
}
