package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-auth-service/internal/models"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return sqlx.NewDb(db, "pgx"), mock
}

func userRows(user models.UserDB) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"user_id", "email", "password_hash", "external_id", "encrypted_uid",
		"username", "full_name", "bio", "is_active", "created_at", "last_login", "updated_at",
	}).AddRow(
		user.UserID, user.Email, user.PasswordHash, user.ExternalID, user.EncryptedUID,
		user.Username, user.FullName, user.Bio, user.IsActive, user.CreatedAt, user.LastLogin, user.UpdatedAt,
	)
}

func TestUserReadRepository_GetByEmail_Found(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserReadRepository(db)

	userID := uuid.New()
	now := time.Now()
	mock.ExpectQuery("SELECT(.+)FROM users WHERE email").
		WithArgs("alice@example.com").
		WillReturnRows(userRows(models.UserDB{
			UserID:       userID,
			Email:        "alice@example.com",
			PasswordHash: "hash",
			IsActive:     true,
			CreatedAt:    now,
			UpdatedAt:    now,
		}))

	user, err := repo.GetByEmail(context.Background(), "alice@example.com")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, userID, user.UserID)
	assert.Equal(t, "alice@example.com", user.Email)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserReadRepository_GetByEmail_Absent(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserReadRepository(db)

	mock.ExpectQuery("SELECT(.+)FROM users WHERE email").
		WithArgs("nobody@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}))

	user, err := repo.GetByEmail(context.Background(), "nobody@example.com")
	assert.NoError(t, err)
	assert.Nil(t, user)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserReadRepository_GetByID_QueryError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserReadRepository(db)

	userID := uuid.New()
	mock.ExpectQuery("SELECT(.+)FROM users WHERE user_id").
		WithArgs(userID).
		WillReturnError(errors.New("connection reset"))

	user, err := repo.GetByID(context.Background(), userID)
	assert.Error(t, err)
	assert.Nil(t, user)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserWriteRepository_Save_DuplicateMapped(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserWriteRepository(db)

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})

	_, err := repo.Save(context.Background(), &models.UserDB{Email: "alice@example.com", PasswordHash: "hash"})
	assert.ErrorIs(t, err, ErrDuplicateKey)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserWriteRepository_Save_OtherErrorPassedThrough(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserWriteRepository(db)

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(errors.New("connection reset"))

	_, err := repo.Save(context.Background(), &models.UserDB{Email: "alice@example.com", PasswordHash: "hash"})
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrDuplicateKey)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserWriteRepository_UpdateProfile_DuplicateMapped(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserWriteRepository(db)

	userID := uuid.New()
	mock.ExpectExec("UPDATE users").
		WithArgs(userID, "alice", "Alice Anderson", "Hello!").
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_username_key"})

	err := repo.UpdateProfile(context.Background(), userID, "alice", "Alice Anderson", "Hello!")
	assert.ErrorIs(t, err, ErrDuplicateKey)

	assert.NoError(t, mock.ExpectationsWereMet())
}
