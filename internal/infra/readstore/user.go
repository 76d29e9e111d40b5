package readstore

import (
	"context"

	"carhive/internal/infra"
	"carhive/internal/infra/db"
	"carhive/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(dbtx db.DBTX) *UserReadStore {
	return &UserReadStore{db: dbtx}
}

// FindByEmail returns the authorized-user view plus the password hash for
// credential verification. The hash never leaves the auth use case.
func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, username, email, phone, role, password_hash FROM users WHERE email = $1`, email)

	var (
		view queries.AuthorizedUserView
		hash string
	)
	if err := row.Scan(&view.ID, &view.Username, &view.Email, &view.Phone, &view.Role, &hash); err != nil {
		if infra.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}

	return &view, hash, nil
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, username, email, phone, role FROM users WHERE id = $1`, id)

	var view queries.AuthorizedUserView
	if err := row.Scan(&view.ID, &view.Username, &view.Email, &view.Phone, &view.Role); err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}

	return &view, nil
}
