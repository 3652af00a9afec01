package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"pourup/internal/infra"
)

type UserRepository struct {
	db DB
}

func NewUserRepository(db DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, userID uuid.UUID) error {
	query, args, err := qb.Update("users").
		Set("last_login_at", sq.Expr("NOW()")).
		Where("id = ?", userID).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build last login update", err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return infra.WrapRepoErr("failed to update last login", err)
	}
	return nil
}
