package postgres

import (
	"context"

	"nautica/internal/domain/catalog/club"
	"nautica/pkg/logger"
)

// ClubRepo persists clubs together with their geography and nested media.
type ClubRepo struct {
	baseRepo[club.Club]
	mediaRepo
	categories *CategoryRepo
	geo        *GeoRepo
}

var _ club.Repository = (*ClubRepo)(nil)

func NewClubRepo(tx *TxManager, categories *CategoryRepo, geo *GeoRepo) *ClubRepo {
	return &ClubRepo{
		baseRepo:   newBaseRepo[club.Club](tx, "clubs"),
		mediaRepo:  newMediaRepo(tx, "club_images", "club_characteristics"),
		categories: categories,
		geo:        geo,
	}
}

func (r *ClubRepo) Create(ctx context.Context, c *club.Club) error {
	id, err := r.insert(ctx, c)
	if err != nil {
		return err
	}
	c.ID = id
	return nil
}

func (r *ClubRepo) GetByID(ctx context.Context, id int64) (*club.Club, error) {
	return r.getByID(ctx, id)
}

// GetDetailed loads the club with its category, geography, images and
// characteristics.
func (r *ClubRepo) GetDetailed(ctx context.Context, id int64) (*club.Club, error) {
	c, err := r.getByID(ctx, id)
	if err != nil {
		return nil, err
	}
	r.attach(ctx, c)
	return c, nil
}

func (r *ClubRepo) List(ctx context.Context) ([]*club.Club, error) {
	items, err := r.selectMany(ctx, r.baseSelect().OrderBy("name ASC"))
	if err != nil {
		return nil, err
	}
	for _, c := range items {
		r.attach(ctx, c)
	}
	return items, nil
}

func (r *ClubRepo) Update(ctx context.Context, c *club.Club) error {
	return r.update(ctx, c)
}

func (r *ClubRepo) Delete(ctx context.Context, id int64) error {
	return r.delete(ctx, id)
}

func (r *ClubRepo) attach(ctx context.Context, c *club.Club) {
	var err error
	if c.Images, err = r.loadImages(ctx, c.ID); err != nil {
		logger.Warn(ctx, "load club images failed", "club_id", c.ID, "error", err)
	}
	if c.Characteristics, err = r.loadCharacteristics(ctx, c.ID); err != nil {
		logger.Warn(ctx, "load club characteristics failed", "club_id", c.ID, "error", err)
	}
	if cat, err := r.categories.GetByID(ctx, c.CategoryID); err == nil {
		c.Category = cat
	}
	if st, err := r.geo.GetState(ctx, c.StateID); err == nil {
		c.State = st
	}
	if mun, err := r.geo.GetMunicipality(ctx, c.MunicipalityID); err == nil {
		c.Municipality = mun
	}
	if loc, err := r.geo.GetLocality(ctx, c.LocalityID); err == nil {
		c.Locality = loc
	}
}
