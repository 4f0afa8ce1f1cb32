package repository

import (
	"context"
	"time"

	"bikeshare-api/internal/domain/user"
	"bikeshare-api/internal/infra"
	"bikeshare-api/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO users (id, email, password_hash, role, is_active)
		VALUES ($1, $2, $3, $4, $5)`,
		u.ID().String(),
		u.Email().Value(),
		u.PasswordHash(),
		u.Role().String(),
		u.IsActive(),
	)
	if err != nil {
		return mapPgError("failed to insert user", err)
	}
	return nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*commands.UserSnapshot, error) {
	var (
		snapshot commands.UserSnapshot
		id       string
	)
	err := r.pool.QueryRow(ctx, `
		SELECT id::text, email, password_hash, role, is_active
		FROM users WHERE email = $1`,
		email,
	).Scan(&id, &snapshot.Email, &snapshot.PasswordHash, &snapshot.Role, &snapshot.IsActive)
	if err != nil {
		return nil, mapPgError("failed to find user by email", err)
	}

	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt user id", err)
	}
	snapshot.ID = parsed
	return &snapshot, nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE users SET last_login = $1, updated_at = now() WHERE id = $2`,
		at, id.String(),
	)
	if err != nil {
		return mapPgError("failed to update last login", err)
	}
	return nil
}
