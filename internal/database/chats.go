package database

import (
	"context"
	"errors"
	"fmt"

	"rehab-app/internal/models"

	"github.com/jackc/pgx/v5"
)

// Chat Repository Implementation

func (db *PostgresDB) GetOrCreateChat(ctx context.Context, professionalID, participantID int) (int, error) {
	query := `
		INSERT INTO chats (professional_id, participant_id)
		VALUES ($1, $2)
		ON CONFLICT (professional_id, participant_id)
		DO UPDATE SET professional_id = EXCLUDED.professional_id
		RETURNING id`

	var chatID int
	err := db.pool.QueryRow(ctx, query, professionalID, participantID).Scan(&chatID)
	if err != nil {
		return 0, fmt.Errorf("failed to create chat: %w", err)
	}
	return chatID, nil
}

func (db *PostgresDB) ListUserChats(ctx context.Context, userID int) ([]*models.Chat, error) {
	query := `
		SELECT c.id, c.professional_id, c.participant_id,
		       prof.name, part.name,
		       COALESCE((SELECT message FROM messages WHERE chat_id = c.id ORDER BY created_at DESC LIMIT 1), ''),
		       COALESCE((SELECT created_at FROM messages WHERE chat_id = c.id ORDER BY created_at DESC LIMIT 1), 'epoch'::timestamptz)
		FROM chats c
		JOIN users prof ON c.professional_id = prof.id
		JOIN users part ON c.participant_id = part.id
		WHERE c.professional_id = $1 OR c.participant_id = $1
		ORDER BY 7 DESC`

	rows, err := db.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var chats []*models.Chat
	for rows.Next() {
		c := &models.Chat{}
		if err := rows.Scan(&c.ID, &c.ProfessionalID, &c.ParticipantID,
			&c.ProfessionalName, &c.ParticipantName,
			&c.LastMessage, &c.LastMessageTime); err != nil {
			return nil, err
		}
		chats = append(chats, c)
	}

	return chats, rows.Err()
}

// GetChatHistory returns all messages for a chat, oldest first. This is
// the fallback read path for receivers who were offline during delivery.
func (db *PostgresDB) GetChatHistory(ctx context.Context, chatID int) ([]*models.Message, error) {
	query := `
		SELECT m.id, m.chat_id, m.sender_id, u.name, m.message, m.status, m.created_at
		FROM messages m
		JOIN users u ON m.sender_id = u.id
		WHERE m.chat_id = $1
		ORDER BY m.created_at ASC`

	rows, err := db.pool.Query(ctx, query, chatID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []*models.Message
	for rows.Next() {
		m := &models.Message{}
		if err := rows.Scan(&m.ID, &m.ChatID, &m.SenderID, &m.SenderName,
			&m.Message, &m.Status, &m.CreatedAt); err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}

	return messages, rows.Err()
}

func (db *PostgresDB) InsertMessage(ctx context.Context, chatID, senderID int, text, status string) (int, error) {
	query := `
		INSERT INTO messages (chat_id, sender_id, message, status, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id`

	var messageID int
	err := db.pool.QueryRow(ctx, query, chatID, senderID, text, status).Scan(&messageID)
	if err != nil {
		return 0, fmt.Errorf("failed to insert message: %w", err)
	}
	return messageID, nil
}

func (db *PostgresDB) GetChatParticipants(ctx context.Context, chatID int) (int, int, error) {
	query := `SELECT professional_id, participant_id FROM chats WHERE id = $1`

	var professionalID, participantID int
	err := db.pool.QueryRow(ctx, query, chatID).Scan(&professionalID, &participantID)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, 0, ErrNotFound
	}
	if err != nil {
		return 0, 0, err
	}
	return professionalID, participantID, nil
}

func (db *PostgresDB) UpdateMessageStatus(ctx context.Context, messageID int, status string) error {
	tag, err := db.pool.Exec(ctx, `UPDATE messages SET status = $1 WHERE id = $2`, status, messageID)
	if err != nil {
		return fmt.Errorf("failed to update message status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (db *PostgresDB) ListChatUsers(ctx context.Context, excludeUserID int) ([]*models.ChatUser, error) {
	query := `SELECT id, name, role FROM users WHERE id != $1 ORDER BY name`

	rows, err := db.pool.Query(ctx, query, excludeUserID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*models.ChatUser
	for rows.Next() {
		u := &models.ChatUser{}
		if err := rows.Scan(&u.ID, &u.Name, &u.Role); err != nil {
			return nil, err
		}
		users = append(users, u)
	}

	return users, rows.Err()
}
