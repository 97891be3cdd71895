package user

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/dbpg"
)

func setupMockDB(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open mock db: %v", err)
	}

	wrappedDB := &dbpg.DB{Master: db}
	repo := NewRepository(wrappedDB)

	return repo, mock
}

func TestGetCredentials(t *testing.T) {
	repo, mock := setupMockDB(t)

	id := uuid.New()
	hash := "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

	mock.ExpectQuery(regexp.QuoteMeta("SELECT user_id, password_hash")).
		WithArgs("admin").
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "password_hash"}).AddRow(id, hash))

	gotID, gotHash, err := repo.GetCredentials(context.Background(), "admin")
	assert.NoError(t, err)
	assert.Equal(t, id, gotID)
	assert.Equal(t, hash, gotHash)
	assert.NoError(t, mock.ExpectationsWereMet())

	mock.ExpectQuery(regexp.QuoteMeta("SELECT user_id, password_hash")).
		WithArgs("nobody").
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "password_hash"}))

	gotID, gotHash, err = repo.GetCredentials(context.Background(), "nobody")
	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.Equal(t, uuid.Nil, gotID)
	assert.Equal(t, "", gotHash)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetUsername(t *testing.T) {
	repo, mock := setupMockDB(t)

	id := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT username")).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"username"}).AddRow("admin"))

	username, err := repo.GetUsername(context.Background(), id)
	assert.NoError(t, err)
	assert.Equal(t, "admin", username)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdatePassword(t *testing.T) {
	repo, mock := setupMockDB(t)

	id := uuid.New()
	hash := "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

	mock.ExpectExec(regexp.QuoteMeta("UPDATE users")).
		WithArgs(hash, id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdatePassword(context.Background(), id, hash)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())

	mock.ExpectExec(regexp.QuoteMeta("UPDATE users")).
		WithArgs(hash, id).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = repo.UpdatePassword(context.Background(), id, hash)
	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
