package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/gw-auth-service/internal/logger"
	"github.com/sbilibin2017/gw-auth-service/internal/models"
)

// ErrDuplicateKey is returned when an insert or update violates a unique
// constraint (email, external_id or username).
var ErrDuplicateKey = errors.New("duplicate key")

const pgUniqueViolation = "23505"

// asDuplicateKey maps a Postgres unique-violation error to ErrDuplicateKey.
func asDuplicateKey(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return ErrDuplicateKey
	}
	return err
}

const userColumns = `
	user_id, email, password_hash, external_id, encrypted_uid,
	username, full_name, bio, is_active, created_at, last_login, updated_at
`

// UserReadRepository reads user records from Postgres.
type UserReadRepository struct {
	db *sqlx.DB
}

// NewUserReadRepository creates a new UserReadRepository.
func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

func (r *UserReadRepository) getOne(ctx context.Context, query string, arg any) (*models.UserDB, error) {
	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, arg)

	logger.Log.Infow("user query",
		"query", strings.Join(strings.Fields(query), " "),
		"arg", arg,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// GetByEmail returns the user with the given email, or nil if absent.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE email = $1 LIMIT 1`
	return r.getOne(ctx, query, email)
}

// GetByExternalID returns the user with the given provider subject id,
// or nil if absent.
func (r *UserReadRepository) GetByExternalID(ctx context.Context, externalID string) (*models.UserDB, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE external_id = $1 LIMIT 1`
	return r.getOne(ctx, query, externalID)
}

// GetByID returns the user with the given surrogate id, or nil if absent.
func (r *UserReadRepository) GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE user_id = $1 LIMIT 1`
	return r.getOne(ctx, query, userID)
}

// UserWriteRepository writes user records to Postgres.
// Uniqueness of email, external_id and username is enforced by the schema;
// violations surface as ErrDuplicateKey so concurrent duplicate attempts
// resolve to exactly one success.
type UserWriteRepository struct {
	db *sqlx.DB
}

// NewUserWriteRepository creates a new UserWriteRepository.
func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Save inserts a new user row and returns its generated id.
func (r *UserWriteRepository) Save(ctx context.Context, user *models.UserDB) (uuid.UUID, error) {
	const query = `
		INSERT INTO users (email, password_hash, external_id, encrypted_uid, username, full_name)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING user_id
	`

	var userID uuid.UUID
	err := r.db.QueryRowxContext(ctx, query,
		user.Email, user.PasswordHash, user.ExternalID,
		user.EncryptedUID, user.Username, user.FullName,
	).Scan(&userID)

	logger.Log.Infow("user insert",
		"query", strings.Join(strings.Fields(query), " "),
		"email", user.Email,
		"error", err,
	)

	if err != nil {
		return uuid.Nil, asDuplicateKey(err)
	}

	return userID, nil
}

// UpdateLastLogin stamps the user's last_login with the current time.
func (r *UserWriteRepository) UpdateLastLogin(ctx context.Context, userID uuid.UUID) error {
	const query = `
		UPDATE users
		SET last_login = NOW(), updated_at = NOW()
		WHERE user_id = $1
	`

	_, err := r.db.ExecContext(ctx, query, userID)

	logger.Log.Infow("user last_login update",
		"query", strings.Join(strings.Fields(query), " "),
		"user_id", userID,
		"error", err,
	)

	return err
}

// UpdateProfile sets the profile attributes of a user.
func (r *UserWriteRepository) UpdateProfile(ctx context.Context, userID uuid.UUID, username, fullName, bio string) error {
	const query = `
		UPDATE users
		SET username = $2, full_name = $3, bio = $4, updated_at = NOW()
		WHERE user_id = $1
	`

	_, err := r.db.ExecContext(ctx, query, userID, username, fullName, bio)

	logger.Log.Infow("user profile update",
		"query", strings.Join(strings.Fields(query), " "),
		"user_id", userID,
		"username", username,
		"error", err,
	)

	if err != nil {
		return asDuplicateKey(err)
	}

	return nil
}
