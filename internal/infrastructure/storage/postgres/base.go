package postgres

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"

	"nautica/internal/core/apperror"
)

// columns the repo manages itself; never part of INSERT or UPDATE SET maps.
var managedCols = map[string]struct{}{
	"id":         {},
	"created_at": {},
	"updated_at": {},
}

// baseRepo provides common CRUD operations for int64-keyed entities.
// Embed it in specific repositories.
type baseRepo[T any] struct {
	tx         *TxManager
	tableName  string
	selectCols []string
}

func newBaseRepo[T any](tx *TxManager, tableName string) baseRepo[T] {
	return baseRepo[T]{
		tx:         tx,
		tableName:  tableName,
		selectCols: ExtractDBColumns[T](),
	}
}

// builder returns a squirrel builder with PostgreSQL placeholder format.
func (r *baseRepo[T]) builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

func (r *baseRepo[T]) baseSelect() squirrel.SelectBuilder {
	return r.builder().
		Select(r.selectCols...).
		From(r.tableName)
}

// insert persists entity using its "db" tags and returns the generated id.
// The entity's own id and timestamps are left to the database.
func (r *baseRepo[T]) insert(ctx context.Context, entity any) (int64, error) {
	data := StructToMap(entity)
	if len(data) == 0 {
		return 0, fmt.Errorf("no db tags found in entity")
	}

	values := make(map[string]any, len(data))
	for _, col := range r.selectCols {
		if _, managed := managedCols[col]; managed {
			continue
		}
		if val, ok := data[col]; ok {
			values[col] = val
		}
	}

	sql, args, err := r.builder().
		Insert(r.tableName).
		SetMap(values).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build insert: %w", err)
	}

	var id int64
	if err := r.tx.GetQuerier(ctx).QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if isUniqueViolation(err) {
			return 0, apperror.NewConflict(r.tableName + " already exists").WithCause(err)
		}
		return 0, fmt.Errorf("insert %s: %w", r.tableName, err)
	}
	return id, nil
}

// update rewrites all managed columns of the row with the entity's id.
func (r *baseRepo[T]) update(ctx context.Context, entity any) error {
	data := StructToMap(entity)
	entityID, ok := data["id"]
	if !ok {
		return fmt.Errorf("entity has no 'id' field with db tag")
	}

	values := make(map[string]any, len(data))
	for _, col := range r.selectCols {
		if _, managed := managedCols[col]; managed {
			continue
		}
		if val, ok := data[col]; ok {
			values[col] = val
		}
	}

	sql, args, err := r.builder().
		Update(r.tableName).
		SetMap(values).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": entityID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}

	result, err := r.tx.GetQuerier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("update %s: %w", r.tableName, err)
	}
	if result.RowsAffected() == 0 {
		return apperror.NewNotFound(r.tableName, entityID)
	}
	return nil
}

// getByID retrieves the entity with the given id.
func (r *baseRepo[T]) getByID(ctx context.Context, id int64) (*T, error) {
	sql, args, err := r.baseSelect().
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var entity T
	if err := pgxscan.Get(ctx, r.tx.GetQuerier(ctx), &entity, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound(r.tableName, id)
		}
		return nil, fmt.Errorf("get %s by id: %w", r.tableName, err)
	}
	return &entity, nil
}

// getOne runs q and returns a single entity.
func (r *baseRepo[T]) getOne(ctx context.Context, q squirrel.SelectBuilder, key any) (*T, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var entity T
	if err := pgxscan.Get(ctx, r.tx.GetQuerier(ctx), &entity, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound(r.tableName, key)
		}
		return nil, fmt.Errorf("find %s: %w", r.tableName, err)
	}
	return &entity, nil
}

// selectMany runs q and scans all rows.
func (r *baseRepo[T]) selectMany(ctx context.Context, q squirrel.SelectBuilder) ([]*T, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var items []*T
	if err := pgxscan.Select(ctx, r.tx.GetQuerier(ctx), &items, sql, args...); err != nil {
		return nil, fmt.Errorf("list %s: %w", r.tableName, err)
	}
	return items, nil
}

// exists checks whether a row with the given id exists.
func (r *baseRepo[T]) exists(ctx context.Context, id int64) (bool, error) {
	sql, args, err := r.builder().
		Select("1").
		From(r.tableName).
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build query: %w", err)
	}

	var one int
	err = r.tx.GetQuerier(ctx).QueryRow(ctx, sql, args...).Scan(&one)
	if err == pgx.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("exists %s: %w", r.tableName, err)
	}
	return true, nil
}

// delete performs physical removal from the database.
func (r *baseRepo[T]) delete(ctx context.Context, id int64) error {
	sql, args, err := r.builder().
		Delete(r.tableName).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	result, err := r.tx.GetQuerier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		if isForeignKeyViolation(err) {
			return apperror.NewConflict("cannot delete: record is referenced by other records").
				WithDetail("entity", r.tableName).
				WithDetail("id", id).
				WithCause(err)
		}
		return fmt.Errorf("execute delete %s: %w", r.tableName, err)
	}
	if result.RowsAffected() == 0 {
		return apperror.NewNotFound(r.tableName, id)
	}
	return nil
}
