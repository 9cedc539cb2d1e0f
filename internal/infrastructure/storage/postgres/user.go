package postgres

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"insural/internal/core/apperror"
	"insural/internal/domain/user"
)

const userTable = "users"

// UserRepo implements user.Repository.
type UserRepo struct {
	*BaseRepo[*user.User]
}

// Compile-time check.
var _ user.Repository = (*UserRepo)(nil)

// NewUserRepo creates a new user repository.
func NewUserRepo(txm *TxManager) *UserRepo {
	return &UserRepo{
		BaseRepo: NewBaseRepo(
			txm,
			userTable,
			ExtractDBColumns[user.User](),
			func() *user.User { return &user.User{} },
		),
	}
}

// GetByEmail retrieves a user by email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	u := &user.User{}

	q := r.Builder().
		Select(ExtractDBColumns[user.User]()...).
		From(userTable).
		Where(squirrel.Eq{"email": email}).
		Limit(1)

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	if err := pgxscan.Get(ctx, r.Querier(ctx), u, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound(userTable, email)
		}
		return nil, fmt.Errorf("get by email: %w", err)
	}

	return u, nil
}
