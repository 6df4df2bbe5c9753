package postgres

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"nautica/internal/core/apperror"
	"nautica/internal/domain/reservation"
)

// ReservationRepo persists reservations.
type ReservationRepo struct {
	baseRepo[reservation.Reservation]
}

var _ reservation.Repository = (*ReservationRepo)(nil)

func NewReservationRepo(tx *TxManager) *ReservationRepo {
	return &ReservationRepo{baseRepo: newBaseRepo[reservation.Reservation](tx, "reservations")}
}

// Insert persists a reservation and fills in ID and timestamps.
func (r *ReservationRepo) Insert(ctx context.Context, res *reservation.Reservation) error {
	data := StructToMap(res)
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
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build reservation insert: %w", err)
	}

	err = r.tx.GetQuerier(ctx).QueryRow(ctx, sql, args...).
		Scan(&res.ID, &res.CreatedAt, &res.UpdatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return apperror.NewValidation("referenced product or user does not exist").
				WithCause(err)
		}
		return fmt.Errorf("insert reservation: %w", err)
	}
	return nil
}

func (r *ReservationRepo) GetByID(ctx context.Context, id int64) (*reservation.Reservation, error) {
	return r.getByID(ctx, id)
}

func (r *ReservationRepo) List(ctx context.Context) ([]*reservation.Reservation, error) {
	return r.selectMany(ctx, r.newestFirst())
}

func (r *ReservationRepo) FindByProduct(ctx context.Context, productID int64, typ reservation.ProductType) ([]*reservation.Reservation, error) {
	q := r.newestFirst().
		Where(squirrel.Eq{"product_id": productID, "type": typ})
	return r.selectMany(ctx, q)
}

func (r *ReservationRepo) FindByStatus(ctx context.Context, status reservation.Status) ([]*reservation.Reservation, error) {
	return r.selectMany(ctx, r.newestFirst().Where(squirrel.Eq{"status": status}))
}

func (r *ReservationRepo) FindByEmail(ctx context.Context, email string) ([]*reservation.Reservation, error) {
	return r.selectMany(ctx, r.newestFirst().Where(squirrel.Eq{"email": email}))
}

func (r *ReservationRepo) FindByFolioID(ctx context.Context, folioID int64) ([]*reservation.Reservation, error) {
	return r.selectMany(ctx, r.newestFirst().Where(squirrel.Eq{"folio_id": folioID}))
}

func (r *ReservationRepo) Update(ctx context.Context, res *reservation.Reservation) error {
	return r.update(ctx, res)
}

func (r *ReservationRepo) Delete(ctx context.Context, id int64) error {
	return r.delete(ctx, id)
}

func (r *ReservationRepo) newestFirst() squirrel.SelectBuilder {
	return r.baseSelect().OrderBy("created_at DESC")
}
