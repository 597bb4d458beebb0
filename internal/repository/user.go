package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Vcortez99-hub/essentia/backend/internal/models"
	"github.com/Vcortez99-hub/essentia/backend/pkg/supabase"
)

type userRepository struct {
	client *supabase.Client
}

// NewUserRepository creates a new user repository
func NewUserRepository(client *supabase.Client) UserRepository {
	return &userRepository{client: client}
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	query := map[string]interface{}{
		"id": fmt.Sprintf("eq.%s", id),
	}

	body, err := r.client.Query("users", query)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	var users []models.User
	if err := json.Unmarshal(body, &users); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if len(users) == 0 {
		return nil, fmt.Errorf("user not found")
	}

	return &users[0], nil
}

func (r *userRepository) ListByFilter(ctx context.Context, companyID, departmentID *string) ([]models.User, error) {
	query := map[string]interface{}{}
	if companyID != nil {
		query["company_id"] = fmt.Sprintf("eq.%s", *companyID)
	}
	if departmentID != nil {
		query["department_id"] = fmt.Sprintf("eq.%s", *departmentID)
	}

	body, err := r.client.Query("users", query)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	var users []models.User
	if err := json.Unmarshal(body, &users); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return users, nil
}
