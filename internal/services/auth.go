package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/sbilibin2017/gw-auth-service/internal/logger"
	"github.com/sbilibin2017/gw-auth-service/internal/models"
	"github.com/sbilibin2017/gw-auth-service/internal/repositories"
)

// Error variables
var (
	ErrUserAlreadyExists  = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrUserNotFound       = errors.New("user not found")
	ErrAuthProvider       = errors.New("authentication provider error")
)

// placeholderHash is a bcrypt hash compared against when the email is
// unknown, so that path costs the same as a wrong-password check and the
// response does not reveal whether the account exists.
var placeholderHash = []byte("$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy")

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
	GetByExternalID(ctx context.Context, externalID string) (*models.UserDB, error)
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, user *models.UserDB) (uuid.UUID, error)
	UpdateLastLogin(ctx context.Context, userID uuid.UUID) error
	UpdateProfile(ctx context.Context, userID uuid.UUID, username, fullName, bio string) error
}

// FieldEncryptor encrypts and decrypts confidential user fields.
type FieldEncryptor interface {
	Encrypt(plaintext string) ([]byte, error)
	Decrypt(data []byte) (string, error)
}

// AuthService handles local registration and credential login.
type AuthService struct {
	reader      UserReader
	writer      UserWriter
	encryptor   FieldEncryptor
	kafkaWriter KafkaWriter
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, encryptor FieldEncryptor, kafkaWriter KafkaWriter) *AuthService {
	return &AuthService{
		reader:      reader,
		writer:      writer,
		encryptor:   encryptor,
		kafkaWriter: kafkaWriter,
	}
}

// Register creates a local account. The raw password is hashed and the
// confidential uid is stored encrypted only.
func (svc *AuthService) Register(ctx context.Context, email, password, confidentialUID string) (uuid.UUID, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return uuid.Nil, err
	}

	encryptedUID, err := svc.encryptor.Encrypt(confidentialUID)
	if err != nil {
		logger.Log.Errorw("failed to encrypt confidential uid", "err", err)
		return uuid.Nil, err
	}

	userID, err := svc.writer.Save(ctx, &models.UserDB{
		Email:        email,
		PasswordHash: string(hashedPassword),
		EncryptedUID: encryptedUID,
	})
	if errors.Is(err, repositories.ErrDuplicateKey) {
		logger.Log.Infow("email already registered", "email", email)
		return uuid.Nil, ErrUserAlreadyExists
	}
	if err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return uuid.Nil, err
	}

	publishAuthEvent(ctx, svc.kafkaWriter, userID, email, models.ActionRegistered)

	return userID, nil
}

// Authenticate validates an email/password pair. Unknown email and wrong
// password fail with the same error.
func (svc *AuthService) Authenticate(ctx context.Context, email, password string) (*models.UserDB, error) {
	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, err
	}
	if user == nil {
		bcrypt.CompareHashAndPassword(placeholderHash, []byte(password))
		logger.Log.Infow("login attempt for unknown email")
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Infow("invalid credentials", "user_id", user.UserID)
		return nil, ErrInvalidCredentials
	}

	publishAuthEvent(ctx, svc.kafkaWriter, user.UserID, user.Email, models.ActionLogin)

	return user, nil
}

// RevealUID decrypts and returns the user's confidential uid. This is the
// only place the plaintext exists; it is never persisted or logged.
func (svc *AuthService) RevealUID(ctx context.Context, userID uuid.UUID) (string, error) {
	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", err
	}
	if user == nil {
		return "", ErrUserNotFound
	}
	if len(user.EncryptedUID) == 0 {
		return "", nil
	}

	uid, err := svc.encryptor.Decrypt(user.EncryptedUID)
	if err != nil {
		logger.Log.Errorw("failed to decrypt confidential uid", "user_id", userID, "err", err)
		return "", err
	}

	return uid, nil
}
