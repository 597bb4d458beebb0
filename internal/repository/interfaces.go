package repository

import (
	"context"
	"time"

	"github.com/Vcortez99-hub/essentia/backend/internal/models"
)

// EntryRepository defines the interface for diary entry data access.
// The forecasting core only reads; writes happen through the journaling
// services that own the diary tables.
type EntryRepository interface {
	// GetByUserIDSince returns all entries created at or after the given
	// time, newest first.
	GetByUserIDSince(ctx context.Context, userID string, since time.Time) ([]models.DiaryEntry, error)
}

// UserRepository defines the interface for user data access
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
	// ListByFilter returns users matching the optional company and
	// department filters. Nil filters match everyone.
	ListByFilter(ctx context.Context, companyID, departmentID *string) ([]models.User, error)
}
