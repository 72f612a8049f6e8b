// Package notifications persists creator-facing alerts, currently only
// viral threshold crossings reported by the feed engine.
package notifications

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/davidkimai/promptpad/internal/feed"
)

func New(db *pgxpool.Pool) *Service {
	return &Service{db: db}
}

func (s *Service) Create(ctx context.Context, req *CreateRequest) (*Notification, error) {
	var n Notification
	var dataJSON *string

	if req.Data != nil {
		bytes, err := json.Marshal(req.Data)
		if err != nil {
			return nil, err
		}

		str := string(bytes)
		dataJSON = &str
	}

	err := s.db.QueryRow(
		ctx,
		queryCreate,
		req.CreatorID,
		req.Type,
		req.Title,
		req.Body,
		dataJSON,
	).Scan(
		&n.ID,
		&n.CreatorID,
		&n.Type,
		&n.Title,
		&n.Body,
		&n.Read,
		&n.CreatedAt,
	)

	if err != nil {
		return nil, err
	}

	return &n, nil
}

// CreateViral records a viral crossing for the prompt's creator.
func (s *Service) CreateViral(ctx context.Context, crossing feed.ViralCrossing) (*Notification, error) {
	return s.Create(ctx, &CreateRequest{
		CreatorID: crossing.CreatorID,
		Type:      TypePromptViral,
		Title:     "Your prompt is going viral",
		Body:      fmt.Sprintf("Remix rate hit %.0f%% and triggered trend amplification.", crossing.RemixRate*100),
		Data: map[string]any{
			"prompt_id":  crossing.ItemID,
			"remix_rate": crossing.RemixRate,
			"momentum":   crossing.Momentum,
		},
	})
}

func (s *Service) ListForCreator(ctx context.Context, creatorID string, limit int, unreadOnly bool) ([]Notification, error) {
	query := queryListForCreator
	if unreadOnly {
		query = queryListUnreadForCreator
	}

	rows, err := s.db.Query(ctx, query, creatorID, limit)
	if err != nil {
		return nil, err
	}

	defer rows.Close()
	var notifications []Notification

	for rows.Next() {
		var n Notification
		var dataJSON []byte

		err := rows.Scan(
			&n.ID,
			&n.CreatorID,
			&n.Type,
			&n.Title,
			&n.Body,
			&dataJSON,
			&n.Read,
			&n.CreatedAt,
		)

		if err != nil {
			return nil, err
		}

		if len(dataJSON) > 0 {
			if err := json.Unmarshal(dataJSON, &n.Data); err != nil {
				n.Data = nil // ignore malformed JSON
			}
		}

		notifications = append(notifications, n)
	}

	return notifications, rows.Err()
}

func (s *Service) MarkRead(ctx context.Context, creatorID, notificationID string) error {
	_, err := s.db.Exec(ctx, queryMarkRead, notificationID, creatorID)
	return err
}

func (s *Service) MarkAllRead(ctx context.Context, creatorID string) error {
	_, err := s.db.Exec(ctx, queryMarkAllRead, creatorID)
	return err
}

func (s *Service) GetUnreadCount(ctx context.Context, creatorID string) (int, error) {
	var count int
	err := s.db.QueryRow(ctx, queryUnreadCount, creatorID).Scan(&count)
	return count, err
}
