package postgres

import (
	"context"

	"github.com/Masterminds/squirrel"

	"nautica/internal/core/apperror"
	"nautica/internal/domain/auth"
)

// UserRepo persists user accounts.
type UserRepo struct {
	baseRepo[auth.User]
}

var _ auth.Repository = (*UserRepo)(nil)

func NewUserRepo(tx *TxManager) *UserRepo {
	return &UserRepo{baseRepo: newBaseRepo[auth.User](tx, "users")}
}

func (r *UserRepo) Insert(ctx context.Context, u *auth.User) error {
	id, err := r.insert(ctx, u)
	if err != nil {
		if appErr, ok := apperror.AsAppError(err); ok && appErr.Code == apperror.CodeConflict {
			return apperror.NewDuplicate("user", "email", u.Email)
		}
		return err
	}
	u.ID = id
	return nil
}

func (r *UserRepo) GetByID(ctx context.Context, id int64) (*auth.User, error) {
	return r.getByID(ctx, id)
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*auth.User, error) {
	q := r.baseSelect().
		Where(squirrel.Eq{"email": email}).
		Limit(1)
	return r.getOne(ctx, q, email)
}

func (r *UserRepo) List(ctx context.Context) ([]*auth.User, error) {
	return r.selectMany(ctx, r.baseSelect().OrderBy("created_at DESC"))
}

func (r *UserRepo) Update(ctx context.Context, u *auth.User) error {
	return r.update(ctx, u)
}

func (r *UserRepo) Delete(ctx context.Context, id int64) error {
	return r.delete(ctx, id)
}
