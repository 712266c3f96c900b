package repositories

import (
	"database/sql"

	intconfig "travelapp/internal/config"
	"travelapp/internal/domain/models"
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

// GetCredentials looks a user up by email or username and returns the
// stored bcrypt hash alongside the profile.
func (r UserRepository) GetCredentials(login string) (models.User, string, error) {
	var (
		u    models.User
		hash string
	)
	err := r.db().QueryRow(`
		SELECT id, COALESCE(name,''), username, email, COALESCE(phone,''), password_hash, role, status, created_at
		FROM users
		WHERE email=? OR username=?
		LIMIT 1`, login, login).
		Scan(&u.ID, &u.Name, &u.Username, &u.Email, &u.Phone, &hash, &u.Role, &u.Status, &u.CreatedAt)
	return u, hash, err
}

func (r UserRepository) GetByID(id int64) (models.User, error) {
	var u models.User
	err := r.db().QueryRow(`
		SELECT id, COALESCE(name,''), username, email, COALESCE(phone,''), role, status, created_at
		FROM users WHERE id=? LIMIT 1`, id).
		Scan(&u.ID, &u.Name, &u.Username, &u.Email, &u.Phone, &u.Role, &u.Status, &u.CreatedAt)
	return u, err
}

func (r UserRepository) Create(u models.User, passwordHash string) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO users (name, username, email, phone, password_hash, role, status)
		VALUES (?,?,?,?,?,?,?)`,
		u.Name, u.Username, u.Email, u.Phone, passwordHash, u.Role, u.Status,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}
