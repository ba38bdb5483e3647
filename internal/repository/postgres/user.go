package postgres

import (
	"database/sql"

	"studjournal/internal/domain"
)

// UserRepo implements repository.UserRepository
type UserRepo struct {
	db *sql.DB
}

// NewUserRepo creates a new user repository
func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

// GetUser returns the user profile, or nil if it doesn't exist yet
func (r *UserRepo) GetUser(userID int64) (*domain.User, error) {
	var u domain.User
	query := `SELECT id, "group" FROM users WHERE id = $1`
	err := r.db.QueryRow(query, userID).Scan(&u.ID, &u.Group)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &u, nil
}

// AddUser creates a user profile if it doesn't exist
func (r *UserRepo) AddUser(user domain.User) error {
	query := `
		INSERT INTO users (id, "group")
		VALUES ($1, $2)
		ON CONFLICT (id) DO NOTHING
	`
	_, err := r.db.Exec(query, user.ID, user.Group)
	return err
}

// UpdateGroup sets the user's group name
func (r *UserRepo) UpdateGroup(userID int64, group string) error {
	query := `
		UPDATE users
		SET "group" = $2
		WHERE id = $1
	`
	_, err := r.db.Exec(query, userID, group)
	return err
}
