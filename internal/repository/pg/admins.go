package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/papakado/store/internal/model"
)

func (r *Repository) GetAdminByLogin(ctx context.Context, login string) (*model.Admin, error) {
	var admin model.Admin
	err := r.db.QueryRowContext(ctx,
		`SELECT id, login, password, created_at FROM admins WHERE login = $1`,
		login,
	).Scan(&admin.ID, &admin.Login, &admin.Password, &admin.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrAdminNotFound
		}
		return nil, fmt.Errorf("get admin: %w", err)
	}

	return &admin, nil
}
