package repositories

import (
	"database/sql"

	intconfig "dashboard/internal/config"
	"dashboard/internal/domain/models"
)

type UserRepository struct {
	DB *sql.DB
}

func (r UserRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// FindByEmail returns the user plus the stored bcrypt hash for sign-in.
// sql.ErrNoRows passes through so the auth service can categorize it.
func (r UserRepository) FindByEmail(email string) (models.User, string, error) {
	var (
		user models.User
		hash string
	)
	err := r.db().QueryRow(`
        SELECT id, name, email, status, password_hash
        FROM users
        WHERE email = ? LIMIT 1
    `, email).Scan(&user.ID, &user.Name, &user.Email, &user.Status, &hash)
	if err != nil {
		return models.User{}, "", err
	}
	return user, hash, nil
}
