package auth

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// UserDirectoryAdapter resolves user IDs to email recipients using the
// auth repository. It implements notifications.RecipientDirectory without
// creating an import cycle.
type UserDirectoryAdapter struct {
	repo Repository
}

// NewUserDirectoryAdapter creates a new user directory adapter
func NewUserDirectoryAdapter(repo Repository) *UserDirectoryAdapter {
	return &UserDirectoryAdapter{
		repo: repo,
	}
}

// GetRecipient fetches a user's email address and display name by ID
func (uda *UserDirectoryAdapter) GetRecipient(ctx context.Context, userID uuid.UUID) (string, string, error) {
	user, err := uda.repo.GetUserByID(ctx, userID.String())
	if err != nil {
		return "", "", fmt.Errorf("failed to fetch user %s: %w", userID, err)
	}

	return user.Email, user.FirstName + " " + user.LastName, nil
}
