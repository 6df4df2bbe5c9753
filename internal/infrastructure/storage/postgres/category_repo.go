package postgres

import (
	"context"

	"github.com/Masterminds/squirrel"

	"nautica/internal/domain/catalog/category"
)

// CategoryRepo persists kind-discriminated product categories.
type CategoryRepo struct {
	baseRepo[category.Category]
}

var _ category.Repository = (*CategoryRepo)(nil)

func NewCategoryRepo(tx *TxManager) *CategoryRepo {
	return &CategoryRepo{baseRepo: newBaseRepo[category.Category](tx, "categories")}
}

func (r *CategoryRepo) Create(ctx context.Context, c *category.Category) error {
	id, err := r.insert(ctx, c)
	if err != nil {
		return err
	}
	c.ID = id
	return nil
}

func (r *CategoryRepo) GetByID(ctx context.Context, id int64) (*category.Category, error) {
	return r.getByID(ctx, id)
}

func (r *CategoryRepo) GetByName(ctx context.Context, kind category.Kind, name string) (*category.Category, error) {
	q := r.baseSelect().
		Where(squirrel.Eq{"kind": kind, "name": name}).
		Limit(1)
	return r.getOne(ctx, q, name)
}

func (r *CategoryRepo) List(ctx context.Context, kind category.Kind) ([]*category.Category, error) {
	q := r.baseSelect().
		Where(squirrel.Eq{"kind": kind}).
		OrderBy("name ASC")
	return r.selectMany(ctx, q)
}

func (r *CategoryRepo) Update(ctx context.Context, c *category.Category) error {
	return r.update(ctx, c)
}

func (r *CategoryRepo) Delete(ctx context.Context, id int64) error {
	return r.delete(ctx, id)
}
