package postgres

import (
	"context"

	"nautica/internal/domain/catalog/tour"
	"nautica/pkg/logger"
)

// TourRepo persists tours together with their nested media collections.
type TourRepo struct {
	baseRepo[tour.Tour]
	mediaRepo
	categories *CategoryRepo
}

var _ tour.Repository = (*TourRepo)(nil)

func NewTourRepo(tx *TxManager, categories *CategoryRepo) *TourRepo {
	return &TourRepo{
		baseRepo:   newBaseRepo[tour.Tour](tx, "tours"),
		mediaRepo:  newMediaRepo(tx, "tour_images", "tour_characteristics"),
		categories: categories,
	}
}

func (r *TourRepo) Create(ctx context.Context, t *tour.Tour) error {
	id, err := r.insert(ctx, t)
	if err != nil {
		return err
	}
	t.ID = id
	return nil
}

func (r *TourRepo) GetByID(ctx context.Context, id int64) (*tour.Tour, error) {
	return r.getByID(ctx, id)
}

// GetDetailed loads the tour with its category, images and characteristics.
func (r *TourRepo) GetDetailed(ctx context.Context, id int64) (*tour.Tour, error) {
	t, err := r.getByID(ctx, id)
	if err != nil {
		return nil, err
	}
	r.attach(ctx, t)
	return t, nil
}

func (r *TourRepo) List(ctx context.Context) ([]*tour.Tour, error) {
	items, err := r.selectMany(ctx, r.baseSelect().OrderBy("name ASC"))
	if err != nil {
		return nil, err
	}
	for _, t := range items {
		r.attach(ctx, t)
	}
	return items, nil
}

func (r *TourRepo) Update(ctx context.Context, t *tour.Tour) error {
	return r.update(ctx, t)
}

func (r *TourRepo) Delete(ctx context.Context, id int64) error {
	return r.delete(ctx, id)
}

func (r *TourRepo) attach(ctx context.Context, t *tour.Tour) {
	var err error
	if t.Images, err = r.loadImages(ctx, t.ID); err != nil {
		logger.Warn(ctx, "load tour images failed", "tour_id", t.ID, "error", err)
	}
	if t.Characteristics, err = r.loadCharacteristics(ctx, t.ID); err != nil {
		logger.Warn(ctx, "load tour characteristics failed", "tour_id", t.ID, "error", err)
	}
	if cat, err := r.categories.GetByID(ctx, t.CategoryID); err == nil {
		t.Category = cat
	}
}
