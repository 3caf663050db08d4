package services

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/sbilibin2017/gw-auth-service/internal/logger"
	"github.com/sbilibin2017/gw-auth-service/internal/models"
	"github.com/sbilibin2017/gw-auth-service/internal/repositories"
)

// ClaimsExchanger swaps an authorization code for verified identity claims.
type ClaimsExchanger interface {
	Exchange(ctx context.Context, code string) (*models.Claims, error)
}

// FederatedService reconciles provider identities with local user records.
type FederatedService struct {
	client          ClaimsExchanger
	reader          UserReader
	writer          UserWriter
	encryptor       FieldEncryptor
	kafkaWriter     KafkaWriter
	exchangeTimeout time.Duration
}

// NewFederatedService creates a new FederatedService instance.
func NewFederatedService(
	client ClaimsExchanger,
	reader UserReader,
	writer UserWriter,
	encryptor FieldEncryptor,
	kafkaWriter KafkaWriter,
	exchangeTimeout time.Duration,
) *FederatedService {
	return &FederatedService{
		client:          client,
		reader:          reader,
		writer:          writer,
		encryptor:       encryptor,
		kafkaWriter:     kafkaWriter,
		exchangeTimeout: exchangeTimeout,
	}
}

// HandleCallback completes a federated login: exchanges the authorization
// code, then finds or creates the user for the provider subject id.
// The returned flag is true when a new account was created. An exchange or
// verification failure fails closed: no row is created and no session can
// be established.
func (svc *FederatedService) HandleCallback(ctx context.Context, code string) (*models.UserDB, bool, error) {
	exchangeCtx, cancel := context.WithTimeout(ctx, svc.exchangeTimeout)
	defer cancel()

	claims, err := svc.client.Exchange(exchangeCtx, code)
	if err != nil {
		logger.Log.Errorw("token exchange failed", "err", err)
		return nil, false, ErrAuthProvider
	}

	user, err := svc.reader.GetByExternalID(ctx, claims.Subject)
	if err != nil {
		logger.Log.Errorw("failed to look up external id", "err", err)
		return nil, false, err
	}

	if user != nil {
		if err := svc.writer.UpdateLastLogin(ctx, user.UserID); err != nil {
			logger.Log.Errorw("failed to update last_login", "user_id", user.UserID, "err", err)
			return nil, false, err
		}
		publishAuthEvent(ctx, svc.kafkaWriter, user.UserID, user.Email, models.ActionFederatedLogin)
		return user, false, nil
	}

	user, err = svc.createFromClaims(ctx, claims)
	if err != nil {
		return nil, false, err
	}

	publishAuthEvent(ctx, svc.kafkaWriter, user.UserID, user.Email, models.ActionFederatedLogin)

	return user, true, nil
}

// createFromClaims creates a user row for a first-time federated sign-in.
// The schema requires a password, so a random never-usable placeholder is
// hashed in; the default confidential uid mirrors the account email.
func (svc *FederatedService) createFromClaims(ctx context.Context, claims *models.Claims) (*models.UserDB, error) {
	placeholder := make([]byte, 24)
	if _, err := rand.Read(placeholder); err != nil {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword(
		[]byte(base64.StdEncoding.EncodeToString(placeholder)), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	encryptedUID, err := svc.encryptor.Encrypt("oauth_" + claims.Email)
	if err != nil {
		logger.Log.Errorw("failed to encrypt default uid", "err", err)
		return nil, err
	}

	user := &models.UserDB{
		Email:        claims.Email,
		PasswordHash: string(hashedPassword),
		ExternalID:   &claims.Subject,
		EncryptedUID: encryptedUID,
	}
	if claims.Nickname != "" {
		user.Username = &claims.Nickname
	}
	if claims.Name != "" {
		user.FullName = &claims.Name
	}

	userID, err := svc.writer.Save(ctx, user)
	if errors.Is(err, repositories.ErrDuplicateKey) && user.Username != nil {
		// Nickname seed may collide with an existing username; the profile
		// completion step picks a unique one later.
		user.Username = nil
		userID, err = svc.writer.Save(ctx, user)
	}
	if errors.Is(err, repositories.ErrDuplicateKey) {
		// Email already held by another account. Linking a federated
		// identity onto an existing local account requires the local
		// credentials, so the sign-in is rejected.
		logger.Log.Infow("federated account collides with existing account", "external_id", claims.Subject)
		return nil, ErrUserAlreadyExists
	}
	if err != nil {
		logger.Log.Errorw("failed to create federated user", "err", err)
		return nil, err
	}

	user.UserID = userID
	return user, nil
}
