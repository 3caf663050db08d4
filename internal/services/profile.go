package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-auth-service/internal/logger"
	"github.com/sbilibin2017/gw-auth-service/internal/models"
	"github.com/sbilibin2017/gw-auth-service/internal/repositories"
)

// ProfileService handles the one-shot profile completion step.
type ProfileService struct {
	reader UserReader
	writer UserWriter
}

// NewProfileService creates a new ProfileService instance.
func NewProfileService(reader UserReader, writer UserWriter) *ProfileService {
	return &ProfileService{
		reader: reader,
		writer: writer,
	}
}

// Complete sets the user's username and optional profile fields.
// Re-running with the same values is a no-op write.
func (svc *ProfileService) Complete(ctx context.Context, userID uuid.UUID, username, fullName, bio string) error {
	err := svc.writer.UpdateProfile(ctx, userID, username, fullName, bio)
	if errors.Is(err, repositories.ErrDuplicateKey) {
		logger.Log.Infow("username already taken", "user_id", userID, "username", username)
		return ErrUsernameTaken
	}
	if err != nil {
		logger.Log.Errorw("failed to update profile", "user_id", userID, "err", err)
		return err
	}

	return nil
}

// Profile returns the user's current profile record.
func (svc *ProfileService) Profile(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "user_id", userID, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	return user, nil
}
