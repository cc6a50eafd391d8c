package storage

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/divineverse/divineverse-api/internal/models"

	"modernc.org/sqlite"
)

// sqlite extended result code for a UNIQUE constraint violation
const sqliteConstraintUnique = 2067

func (s *Store) CreateUser(ctx context.Context, user models.User) error {
	stmt, err := s.db.PrepareContext(ctx, "INSERT INTO users(id, name, email, password_hash, created_at) VALUES(?, ?, ?, ?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	_, err = stmt.ExecContext(ctx, user.ID, user.Name, user.Email, user.PasswordHash, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		var sqliteErr *sqlite.Error
		if errors.As(err, &sqliteErr) && sqliteErr.Code() == sqliteConstraintUnique {
			return ErrEmailExists
		}
		return err
	}
	return nil
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	return s.getUser(ctx, "SELECT id, name, email, password_hash FROM users WHERE email = ?", email)
}

func (s *Store) GetUserByID(ctx context.Context, id string) (models.User, error) {
	return s.getUser(ctx, "SELECT id, name, email, password_hash FROM users WHERE id = ?", id)
}

func (s *Store) getUser(ctx context.Context, query, key string) (models.User, error) {
	var user models.User
	row := s.db.QueryRowContext(ctx, query, key)
	if err := row.Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash); err != nil {
		if err == sql.ErrNoRows {
			return user, ErrNotFound
		}
		return user, err
	}
	return user, nil
}
