package storage

import (
	"context"
	"time"

	"github.com/divineverse/divineverse-api/internal/models"
)

// AppendTurns appends turns to the user's history in the given order.
// The rowid preserves insertion order, so reads come back as appended.
func (s *Store) AppendTurns(ctx context.Context, userID string, turns ...models.ChatTurn) error {
	stmt, err := s.db.PrepareContext(ctx, "INSERT INTO chat_turns(user_id, role, content, created_at) VALUES(?, ?, ?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, turn := range turns {
		created := turn.CreatedAt
		if created.IsZero() {
			created = time.Now().UTC()
		}
		if _, err := stmt.ExecContext(ctx, userID, turn.Role, turn.Content, created.Format(time.RFC3339)); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) GetHistory(ctx context.Context, userID string) ([]models.ChatTurn, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT role, content, created_at FROM chat_turns WHERE user_id = ? ORDER BY id ASC", userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var turns []models.ChatTurn
	for rows.Next() {
		var t models.ChatTurn
		var createdStr string // SQLite stores timestamps as text
		if err := rows.Scan(&t.Role, &t.Content, &createdStr); err != nil {
			return nil, err
		}
		t.CreatedAt, _ = time.Parse(time.RFC3339, createdStr)
		turns = append(turns, t)
	}
	return turns, rows.Err()
}
