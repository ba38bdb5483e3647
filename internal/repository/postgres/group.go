package postgres

import (
	"database/sql"

	"studjournal/internal/domain"
)

// GroupRepo implements repository.GroupRepository
type GroupRepo struct {
	db *sql.DB
}

// NewGroupRepo creates a new group repository
func NewGroupRepo(db *sql.DB) *GroupRepo {
	return &GroupRepo{db: db}
}

// GetGroup returns the shared group record of a chat, or nil if none exists
func (r *GroupRepo) GetGroup(chatID int64) (*domain.StudyGroup, error) {
	var g domain.StudyGroup
	var deputies, members sql.NullString
	query := `SELECT id, captain, deputies, members FROM groups WHERE id = $1`
	err := r.db.QueryRow(query, chatID).Scan(&g.ChatID, &g.Captain, &deputies, &members)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	g.Deputies = deputies.String
	g.Members = members.String
	return &g, nil
}

// UpsertGroup creates or replaces the shared group record of a chat
func (r *GroupRepo) UpsertGroup(group domain.StudyGroup) error {
	query := `
		INSERT INTO groups (id, captain, deputies, members)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id)
		DO UPDATE SET captain = $2, deputies = $3, members = $4
	`
	_, err := r.db.Exec(query, group.ChatID, group.Captain, group.Deputies, group.Members)
	return err
}
