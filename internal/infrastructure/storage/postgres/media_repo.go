package postgres

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"nautica/internal/core/apperror"
	"nautica/internal/domain/catalog/media"
)

// mediaRepo handles the image and characteristic collections nested under
// a catalog product. Each product family has its own pair of tables
// (yacht_images, yacht_characteristics, ...) with identical shapes.
type mediaRepo struct {
	tx         *TxManager
	imagesTbl  string
	charsTbl   string
}

func newMediaRepo(tx *TxManager, imagesTbl, charsTbl string) mediaRepo {
	return mediaRepo{tx: tx, imagesTbl: imagesTbl, charsTbl: charsTbl}
}

func (r *mediaRepo) builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// AddImage records a hosted image URL against its owner.
func (r *mediaRepo) AddImage(ctx context.Context, img *media.Image) error {
	sql, args, err := r.builder().
		Insert(r.imagesTbl).
		Columns("url", "owner_id").
		Values(img.URL, img.OwnerID).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build image insert: %w", err)
	}

	err = r.tx.GetQuerier(ctx).QueryRow(ctx, sql, args...).
		Scan(&img.ID, &img.CreatedAt, &img.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert %s: %w", r.imagesTbl, err)
	}
	return nil
}

// DeleteImage removes an image record. The hosted file is left to the
// bucket's lifecycle rules.
func (r *mediaRepo) DeleteImage(ctx context.Context, imageID int64) error {
	return r.deleteRow(ctx, r.imagesTbl, imageID)
}

// AddCharacteristic records a named feature against its owner.
func (r *mediaRepo) AddCharacteristic(ctx context.Context, ch *media.Characteristic) error {
	sql, args, err := r.builder().
		Insert(r.charsTbl).
		Columns("name", "owner_id").
		Values(ch.Name, ch.OwnerID).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build characteristic insert: %w", err)
	}

	err = r.tx.GetQuerier(ctx).QueryRow(ctx, sql, args...).
		Scan(&ch.ID, &ch.CreatedAt, &ch.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert %s: %w", r.charsTbl, err)
	}
	return nil
}

// DeleteCharacteristic removes a characteristic record.
func (r *mediaRepo) DeleteCharacteristic(ctx context.Context, characteristicID int64) error {
	return r.deleteRow(ctx, r.charsTbl, characteristicID)
}

// loadImages returns all images for one owner, oldest first.
func (r *mediaRepo) loadImages(ctx context.Context, ownerID int64) ([]media.Image, error) {
	sql, args, err := r.builder().
		Select("id", "url", "owner_id", "created_at", "updated_at").
		From(r.imagesTbl).
		Where(squirrel.Eq{"owner_id": ownerID}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build images query: %w", err)
	}

	var items []media.Image
	if err := pgxscan.Select(ctx, r.tx.GetQuerier(ctx), &items, sql, args...); err != nil {
		return nil, fmt.Errorf("load %s: %w", r.imagesTbl, err)
	}
	return items, nil
}

// loadCharacteristics returns all characteristics for one owner, oldest first.
func (r *mediaRepo) loadCharacteristics(ctx context.Context, ownerID int64) ([]media.Characteristic, error) {
	sql, args, err := r.builder().
		Select("id", "name", "owner_id", "created_at", "updated_at").
		From(r.charsTbl).
		Where(squirrel.Eq{"owner_id": ownerID}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build characteristics query: %w", err)
	}

	var items []media.Characteristic
	if err := pgxscan.Select(ctx, r.tx.GetQuerier(ctx), &items, sql, args...); err != nil {
		return nil, fmt.Errorf("load %s: %w", r.charsTbl, err)
	}
	return items, nil
}

func (r *mediaRepo) deleteRow(ctx context.Context, table string, id int64) error {
	sql, args, err := r.builder().
		Delete(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	result, err := r.tx.GetQuerier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("delete from %s: %w", table, err)
	}
	if result.RowsAffected() == 0 {
		return apperror.NewNotFound(table, id)
	}
	return nil
}
