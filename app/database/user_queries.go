package database

import (
	"database/sql"

	"github.com/MITHLESH24364/fee-management-system-educo/app/models"
)

// GetUserByEmail returns the active user for a login email.
func GetUserByEmail(db *sql.DB, email string) (*models.User, error) {
	u := &models.User{}
	err := db.QueryRow(
		`SELECT id, email, password, first_name, last_name, is_active, created_at
		 FROM users WHERE email = $1 AND is_active = true`,
		email,
	).Scan(&u.ID, &u.Email, &u.Password, &u.FirstName, &u.LastName, &u.IsActive, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	return u, nil
}

// CreateUser inserts an operator account with an already-hashed password.
func CreateUser(db *sql.DB, u *models.User) error {
	return db.QueryRow(
		`INSERT INTO users (email, password, first_name, last_name)
		 VALUES ($1, $2, $3, $4) RETURNING id, created_at`,
		u.Email, u.Password, u.FirstName, u.LastName,
	).Scan(&u.ID, &u.CreatedAt)
}
