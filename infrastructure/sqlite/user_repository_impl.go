package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"taskmanager-api/domain/models"
	"taskmanager-api/domain/repositories"
)

type UserRepositoryImpl struct {
	db *sql.DB
}

func NewUserRepository(store *Store) repositories.UserRepository {
	return &UserRepositoryImpl{db: store.DB()}
}

func (r *UserRepositoryImpl) Create(ctx context.Context, user *models.User) error {
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}

	result, err := r.db.ExecContext(ctx,
		`INSERT INTO users (username, password_hash, created_at) VALUES (?, ?, ?)`,
		user.Username, user.PasswordHash, toMillis(user.CreatedAt),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return repositories.ErrDuplicateUsername
		}
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	user.ID = uint(id)
	return nil
}

func (r *UserRepositoryImpl) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	var (
		user      models.User
		createdAt int64
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT id, username, password_hash, created_at FROM users WHERE username = ?`,
		username,
	).Scan(&user.ID, &user.Username, &user.PasswordHash, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repositories.ErrNotFound
		}
		return nil, err
	}
	user.CreatedAt = fromMillis(createdAt)
	return &user, nil
}
