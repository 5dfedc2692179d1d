package database

import (
	"database/sql"

	"github.com/TontunHi/it-fund-vr/app/models"
)

// GetActiveMembers returns the roster in registry (creation) order.
func GetActiveMembers(db *sql.DB) ([]*models.Member, error) {
	query := `SELECT id, name, nickname, avatar_color, is_active, created_at
			  FROM members WHERE is_active = true
			  ORDER BY created_at`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	members := []*models.Member{} // Initialize to empty slice for non-null JSON
	for rows.Next() {
		m := &models.Member{}
		if err := rows.Scan(&m.ID, &m.Name, &m.Nickname, &m.AvatarColor, &m.IsActive, &m.CreatedAt); err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

func CreateMember(db *sql.DB, m *models.Member) error {
	if m.AvatarColor == "" {
		m.AvatarColor = models.DefaultAvatarColor
	}
	query := `INSERT INTO members (name, nickname, avatar_color)
			  VALUES ($1, $2, $3)
			  RETURNING id, is_active, created_at`

	return db.QueryRow(query, m.Name, m.Nickname, m.AvatarColor).
		Scan(&m.ID, &m.IsActive, &m.CreatedAt)
}

// DeactivateMember soft-deletes a member. Payment and expense history stays
// intact; the overdue list keeps reporting rows of deactivated members.
func DeactivateMember(db *sql.DB, id string) error {
	result, err := db.Exec(`UPDATE members SET is_active = false WHERE id = $1`, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
