package postgres

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"nautica/internal/core/apperror"
	"nautica/internal/domain/folio"
)

// FolioRepo persists folios and their per-year counters.
//
// The counter lives in folio_sequences (year PK, current_val). NextNumber
// bumps it with a single UPSERT + RETURNING, so concurrent allocations
// serialize on the row lock and every caller sees a distinct value with no
// gaps. folios carries UNIQUE (year, number) and UNIQUE (folio) as a
// backstop; a violation there surfaces as transient and the allocator
// retries with a fresh counter value.
type FolioRepo struct {
	tx *TxManager
}

var _ folio.Repository = (*FolioRepo)(nil)

func NewFolioRepo(tx *TxManager) *FolioRepo {
	return &FolioRepo{tx: tx}
}

func (r *FolioRepo) builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// NextNumber atomically increments and returns the counter for year.
// The first call for a year creates the row and returns 1.
func (r *FolioRepo) NextNumber(ctx context.Context, year int) (int64, error) {
	var num int64
	err := r.tx.GetQuerier(ctx).QueryRow(ctx, `
        INSERT INTO folio_sequences (year, current_val)
        VALUES ($1, 1)
        ON CONFLICT (year) DO UPDATE SET current_val = folio_sequences.current_val + 1
        RETURNING current_val
	`, year).Scan(&num)
	if err != nil {
		return 0, r.classify(fmt.Errorf("next folio number for %d: %w", year, err))
	}
	return num, nil
}

// Insert persists a folio row and fills in ID and CreatedAt.
func (r *FolioRepo) Insert(ctx context.Context, f *folio.Folio) error {
	sql, args, err := r.builder().
		Insert("folios").
		Columns("year", "number", "folio").
		Values(f.Year, f.Number, f.Folio).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build folio insert: %w", err)
	}

	err = r.tx.GetQuerier(ctx).QueryRow(ctx, sql, args...).Scan(&f.ID, &f.CreatedAt)
	if err != nil {
		return r.classify(fmt.Errorf("insert folio %d: %w", f.Folio, err))
	}
	return nil
}

// GetByNumber returns the folio with the given composite public number.
func (r *FolioRepo) GetByNumber(ctx context.Context, composite int64) (*folio.Folio, error) {
	return r.getWhere(ctx, squirrel.Eq{"folio": composite}, composite)
}

// GetByID returns the folio with the given internal id.
func (r *FolioRepo) GetByID(ctx context.Context, id int64) (*folio.Folio, error) {
	return r.getWhere(ctx, squirrel.Eq{"id": id}, id)
}

func (r *FolioRepo) getWhere(ctx context.Context, cond squirrel.Eq, key any) (*folio.Folio, error) {
	sql, args, err := r.builder().
		Select("id", "year", "number", "folio", "created_at").
		From("folios").
		Where(cond).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build folio query: %w", err)
	}

	var f folio.Folio
	if err := pgxscan.Get(ctx, r.tx.GetQuerier(ctx), &f, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound("folio", key)
		}
		return nil, fmt.Errorf("get folio: %w", err)
	}
	return &f, nil
}

// classify wraps retryable store failures so the allocator can tell them
// apart from fatal ones.
func (r *FolioRepo) classify(err error) error {
	if isRetryable(err) {
		return fmt.Errorf("%w: %w", folio.ErrTransient, err)
	}
	return err
}
