package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Vcortez99-hub/essentia/backend/internal/models"
	"github.com/Vcortez99-hub/essentia/backend/pkg/supabase"
)

type entryRepository struct {
	client *supabase.Client
}

// NewEntryRepository creates a new diary entry repository
func NewEntryRepository(client *supabase.Client) EntryRepository {
	return &entryRepository{client: client}
}

func (r *entryRepository) GetByUserIDSince(ctx context.Context, userID string, since time.Time) ([]models.DiaryEntry, error) {
	query := map[string]interface{}{
		"user_id":    fmt.Sprintf("eq.%s", userID),
		"created_at": fmt.Sprintf("gte.%s", since.Format(time.RFC3339)),
		"order":      "created_at.desc",
	}

	body, err := r.client.Query("diary_entries", query)
	if err != nil {
		return nil, fmt.Errorf("failed to get diary entries: %w", err)
	}

	var entries []models.DiaryEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return entries, nil
}
