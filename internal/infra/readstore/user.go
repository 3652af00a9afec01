package readstore

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"pourup/internal/infra"
	"pourup/internal/pkg/pgconv"
	"pourup/internal/usecase/queries"
)

type UserReadStore struct {
	db DB
}

func NewUserReadStore(db DB) *UserReadStore {
	return &UserReadStore{db: db}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	query, args, err := qb.Select("id", "email", "first_name", "last_name", "role", "is_active").
		From("users").
		Where("id = ?", id).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build user select", err)
	}

	view, _, err := scanUser(r.db.QueryRow(ctx, query, args...), false)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return view, nil
}

func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	query, args, err := qb.Select("id", "email", "first_name", "last_name", "role", "is_active", "password_hash").
		From("users").
		Where("email = ?", email).
		ToSql()
	if err != nil {
		return nil, "", infra.WrapRepoErr("failed to build user select", err)
	}

	view, passwordHash, err := scanUser(r.db.QueryRow(ctx, query, args...), true)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}
	return view, passwordHash, nil
}

func scanUser(row pgx.Row, withPassword bool) (*queries.AuthorizedUserView, string, error) {
	var (
		view         queries.AuthorizedUserView
		passwordHash string
	)

	dests := []any{&view.ID, &view.Email, &view.FirstName, &view.LastName, &view.Role, &view.IsActive}
	if withPassword {
		dests = append(dests, &passwordHash)
	}

	if err := row.Scan(dests...); err != nil {
		return nil, "", err
	}
	return &view, passwordHash, nil
}
